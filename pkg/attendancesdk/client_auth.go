package attendancesdk

import (
	"context"
	"net/http"
	"net/url"
)

// SignUp registers a new admin.
func (c *SDKClient) SignUp(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignIn authenticates and stores the session cookie in the client's jar.
func (c *SDKClient) SignIn(ctx context.Context, req SigninRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/signin", req, nil, http.StatusOK)
}

// SignOut ends the current session.
func (c *SDKClient) SignOut(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, http.StatusOK)
}

// CheckSession reports whether the client holds a live session. A 401 is
// not an error here.
func (c *SDKClient) CheckSession(ctx context.Context) (*CheckResponse, error) {
	var out CheckResponse
	err := c.doJSON(ctx, http.MethodGet, "/auth/check", nil, &out, http.StatusOK)
	if IsStatus(err, http.StatusUnauthorized) {
		return &CheckResponse{Authenticated: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetProfile(ctx context.Context) (*Admin, error) {
	var out ProfileResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Admin, nil
}

func (c *SDKClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.doJSON(ctx, http.MethodPut, "/auth/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.doJSON(ctx, http.MethodPut, "/auth/password", req, nil, http.StatusOK)
}

// GetSecurityQuestion returns the recovery question registered for username.
func (c *SDKClient) GetSecurityQuestion(ctx context.Context, username string) (string, error) {
	var out SecurityQuestionResponse
	path := "/auth/security-question?" + url.Values{"username": {username}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.SecurityQuestion, nil
}

// ResetPassword sets a new password using the security answer. All sessions
// of the admin are revoked.
func (c *SDKClient) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/reset-password", req, nil, http.StatusOK)
}

// EnrollTOTP generates a new TOTP secret for the signed-in admin.
func (c *SDKClient) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	var out TOTPEnrollResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/mfa/enroll", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTOTP confirms enrollment and enables MFA.
func (c *SDKClient) VerifyTOTP(ctx context.Context, code string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/mfa/verify", TOTPCodeRequest{Code: code}, nil, http.StatusOK)
}

// DisableTOTP turns MFA off after checking a current code.
func (c *SDKClient) DisableTOTP(ctx context.Context, code string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/mfa/disable", TOTPCodeRequest{Code: code}, nil, http.StatusOK)
}
