package domain

import "time"

type Admin struct {
	ID                 int64
	Name               string
	Email              string
	Phone              string
	Organization       string
	Username           string
	PasswordHash       string // argon2id PHC string, or bcrypt for rows imported from the legacy schema
	SecurityQuestion   string
	SecurityAnswerHash string     // argon2id of the normalised answer
	MFAEnabled         *time.Time // Timestamp when TOTP was enabled (nullable)
	MFASecret          *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Session is a server-side sign-in session. ID is the fingerprint of the
// opaque cookie token, never the token itself.
type Session struct {
	ID        string
	AdminID   int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

type MFAEnrollment struct {
	Secret  string // Base32 encoded secret for TOTP
	URL     string // otpauth:// URL
	QRCode  string // PNG data URL of URL
	Issuer  string
	Account string
}
