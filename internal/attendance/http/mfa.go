package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/robera20/employee-attendance-management/internal/attendance/service"
	"github.com/robera20/employee-attendance-management/pkg/attendancesdk"
	"github.com/robera20/employee-attendance-management/pkg/httpx"
)

// MFAHandler handles all MFA-related endpoints.
type MFAHandler struct {
	MFAService *service.MFAService
	errors     errorWriter
}

// HandleEnroll handles POST /auth/mfa/enroll
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret for the signed-in admin and returns it with a QR code.
//	@Tags			MFA
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	attendancesdk.TOTPEnrollResponse	"TOTP secret and QR code"
//	@Failure		400	{object}	attendancesdk.ErrorResponse		"MFA already enabled"
//	@Failure		401	{object}	attendancesdk.ErrorResponse		"No session"
//	@Failure		500	{object}	attendancesdk.ErrorResponse		"Internal server error"
//	@Router			/auth/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	enrollment, err := h.MFAService.EnrollTOTP(r.Context(), id)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.TOTPEnrollResponse{
		Secret:  enrollment.Secret,
		URL:     enrollment.URL,
		QRCode:  enrollment.QRCode,
		Issuer:  enrollment.Issuer,
		Account: enrollment.Account,
	})
}

// HandleVerify handles POST /auth/mfa/verify
//
//	@Summary		Verify TOTP code and enable MFA
//	@Tags			MFA
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.TOTPCodeRequest	true	"TOTP code"
//	@Success		200		{object}	attendancesdk.MessageResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"Not enrolled or already enabled"
//	@Failure		401		{object}	attendancesdk.ErrorResponse	"Invalid TOTP code"
//	@Router			/auth/mfa/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	h.withCode(w, r, h.MFAService.VerifyTOTP, "MFA enabled successfully")
}

// HandleDisable handles POST /auth/mfa/disable
//
//	@Summary		Disable TOTP MFA
//	@Description	Removes TOTP MFA for the admin. Requires a current code.
//	@Tags			MFA
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attendancesdk.TOTPCodeRequest	true	"TOTP code"
//	@Success		200		{object}	attendancesdk.MessageResponse
//	@Failure		400		{object}	attendancesdk.ErrorResponse	"MFA not enabled"
//	@Failure		401		{object}	attendancesdk.ErrorResponse	"Invalid TOTP code"
//	@Router			/auth/mfa/disable [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	h.withCode(w, r, h.MFAService.DisableTOTP, "MFA disabled successfully")
}

func (h *MFAHandler) withCode(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, adminID int64, code string) error,
	message string,
) {
	id, err := adminID(r)
	if err != nil {
		h.errors.write(w, r, err)
		return
	}

	var req attendancesdk.TOTPCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, err)
		return
	}

	if err := apply(r.Context(), id, req.Code); err != nil {
		h.errors.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, attendancesdk.MessageResponse{Success: true, Message: message})
}
