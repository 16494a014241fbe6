package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

// QRService renders employee badge and MFA enrolment QR codes as PNG data URLs.
type QRService struct {
	Size int // pixels, defaults to 256
}

type qrPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BuildQRPayload returns the badge payload {"id":<id>,"name":"<name>"}.
func BuildQRPayload(id int64, name string) (string, error) {
	raw, err := json.Marshal(qrPayload{ID: id, Name: name})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Render encodes content with high error correction.
func (s *QRService) Render(content string) (string, error) {
	size := defaultQRSize
	if s != nil && s.Size > 0 {
		size = s.Size
	}

	png, err := qrcode.Encode(content, qrcode.High, size)
	if err != nil {
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
