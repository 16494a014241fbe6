package http

import (
	"encoding/json"
	"net/http"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/robera20/employee-attendance-management/pkg/slogx"
)

// AuthHandler handles admin registration, sessions and profile endpoints.
type AuthHandler struct {
	AuthService  *service.AuthService
	CookieSecure bool
	errors       errorWriter
}

// HandleSignup handles POST /auth/signup
//
//	@Summary		Register an admin
//	@Description	Creates an admin account. Username and email must be unused.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.SignupRequest		true	"Admin details"
//	@Success		201		{object}	attendancesdk.SignupResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing fields or username/email taken"
//	@Failure		429		{object}	attendancesdk.ErrorResponse	"Rate limited"
//	@Failure		500		{object}	attendancesdk.ErrorResponse
//	@Router			/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req attendancesdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	id, err := h.AuthService.Signup(r.Context(), service.SignupParams{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Organization:     req.Organization,
		Username:         req.Username,
		Password:         req.Password,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, attendancesdk.SignupResponse{
		Message: "Admin registered successfully",
		AdminID: id,
	})
}

// HandleSignin handles POST /auth/signin
//
//	@Summary		Sign in
//	@Description	Verifies credentials and sets the session cookie. Admins with MFA enabled must send totp_code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.SigninRequest		true	"Credentials"
//	@Success		200		{object}	attendancesdk.MessageResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Invalid JSON body"
//	@Failure		401		{object}	attendancesdk.ErrorResponse	"Invalid credentials or TOTP code"
//	@Failure		429		{object}	attendancesdk.ErrorResponse	"Rate limited"
//	@Router			/auth/signin [post].
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req attendancesdk.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	grant, err := h.AuthService.Signin(r.Context(), req.Username, req.Password, req.TOTPCode)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	setSessionCookie(w, grant.Token, grant.ExpiresAt, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, attendancesdk.MessageResponse{Message: "Signin successful"})
}

// HandleLogout handles POST /auth/logout
//
//	@Summary		Sign out
//	@Description	Ends the current session and clears the cookie. Succeeds without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	attendancesdk.MessageResponse
//	@Failure		500	{object}	attendancesdk.ErrorResponse	"Could not log out"
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := httpx.SessionIDFromContext(ctx)
	if token == "" {
		if c, err := r.Cookie(SessionCookieName); err == nil {
			token = c.Value
		}
	}

	if err := h.AuthService.Logout(ctx, token); err != nil {
		slogx.FromContext(ctx).Error("failed to end session", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Could not log out")
		return
	}

	clearSessionCookie(w, h.CookieSecure)
	httpx.WriteJSON(w, http.StatusOK, attendancesdk.MessageResponse{Message: "Logged out successfully"})
}

// HandleCheck handles GET /auth/check
//
//	@Summary		Check session
//	@Description	Reports whether the request carries a live session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	attendancesdk.CheckResponse
//	@Failure		401	{object}	attendancesdk.CheckResponse	"authenticated: false"
//	@Router			/auth/check [get].
func (h *AuthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.AdminIDFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, attendancesdk.CheckResponse{Authenticated: false})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, attendancesdk.CheckResponse{Authenticated: true, AdminID: id})
}

// HandleGetProfile handles GET /auth/profile
//
//	@Summary		Get profile
//	@Tags			Auth
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.ProfileResponse
//	@Failure		401	{object}	attendancesdk.ErrorResponse
//	@Failure		404	{object}	attendancesdk.ErrorResponse	"Admin not found"
//	@Router			/auth/profile [get].
func (h *AuthHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	admin, err := h.AuthService.GetProfile(r.Context(), id)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.ProfileResponse{Success: true, Admin: toAdmin(admin)})
}

// HandleUpdateProfile handles PUT /auth/profile
//
//	@Summary		Update profile
//	@Description	Name, email and username are required; email and username must stay unique.
//	@Tags			Auth
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	attendancesdk.ProfileResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing fields, email or username in use"
//	@Failure		401		{object}	attendancesdk.ErrorResponse
//	@Router			/auth/profile [put].
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	admin, err := h.AuthService.UpdateProfile(r.Context(), id, service.ProfileParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Username:     req.Username,
	})
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		Admin:   toAdmin(admin),
	})
}

// HandleChangePassword handles PUT /auth/password
//
//	@Summary		Change password
//	@Tags			Auth
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	attendancesdk.MessageResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Missing or short password"
//	@Failure		401		{object}	attendancesdk.ErrorResponse	"Current password is incorrect"
//	@Router			/auth/password [put].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	if err := h.AuthService.ChangePassword(r.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.MessageResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

// HandleSecurityQuestion handles GET /auth/security-question
//
//	@Summary		Get recovery question
//	@Tags			Auth
//	@Produce		json
//	@Param			username	query		string	true	"Admin username"
//	@Success		200			{object}	attendancesdk.SecurityQuestionResponse
//	@Failure		400			{object}	attendancesdk.ErrorResponse
//	@Failure		404			{object}	attendancesdk.ErrorResponse	"Admin not found"
//	@Router			/auth/security-question [get].
func (h *AuthHandler) HandleSecurityQuestion(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	question, err := h.AuthService.SecurityQuestion(r.Context(), username)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.SecurityQuestionResponse{
		Username:         username,
		SecurityQuestion: question,
	})
}

// HandleResetPassword handles POST /auth/reset-password
//
//	@Summary		Reset password
//	@Description	Sets a new password after checking the security answer. Revokes every session of the admin.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.ResetPasswordRequest	true	"Username, answer and new password"
//	@Success		200		{object}	attendancesdk.MessageResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse
//	@Failure		401		{object}	attendancesdk.ErrorResponse	"Wrong answer"
//	@Router			/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req attendancesdk.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Username, req.SecurityAnswer, req.NewPassword); err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.MessageResponse{
		Success: true,
		Message: "Password reset successfully",
	})
}
