package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/service"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.ReadJSON(w, r, &request); err != nil {
		h.writeError(w, r, opRegister, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}
	request.Email = utils.NormalizeEmail(request.Email)

	result, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.writeError(w, r, opRegister, err)
		return
	}

	log.Info().Str("user_id", result.User.ID).Msg("user registered")

	h.writeAuthResponse(w, r, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.ReadJSON(w, r, &request); err != nil {
		h.writeError(w, r, opLogin, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}
	request.Email = utils.NormalizeEmail(request.Email)

	result, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, opLogin, err)
		return
	}

	log.Debug().Str("user_id", result.Token.UserID).Msg("user successfully logged in")

	if _, err = utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Token:   result.Token.SignedString,
		Role:    result.Role,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, opMe, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		h.writeError(w, r, opMe, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.CurrentUserResponse{
		Success: true,
		Data:    models.UserData{User: user},
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing current user response")
	}
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ForgotPasswordRequest
	if err := utils.ReadJSON(w, r, &request); err != nil {
		h.writeError(w, r, opForgotPassword, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}
	request.Email = utils.NormalizeEmail(request.Email)

	resetToken, err := h.services.AuthService.ForgotPassword(ctx, request)
	if err != nil {
		h.writeError(w, r, opForgotPassword, err)
		return
	}

	// The token is handed back in the body in place of an email.
	if _, err = utils.WriteJSON(w, models.ForgotPasswordResponse{
		Success:    true,
		Message:    MsgResetTokenSent,
		ResetToken: resetToken.Plaintext,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing forgot password response")
	}
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ResetPasswordRequest
	if err := utils.ReadJSON(w, r, &request); err != nil {
		h.writeError(w, r, opResetPassword, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}
	request.Token = chi.URLParam(r, "token")

	result, err := h.services.AuthService.ResetPassword(ctx, request)
	if err != nil {
		h.writeError(w, r, opResetPassword, err)
		return
	}

	log.Info().Str("user_id", result.User.ID).Msg("password reset")

	h.writeAuthResponse(w, r, result, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.UpdatePasswordRequest
	if err := utils.ReadJSON(w, r, &request); err != nil {
		h.writeError(w, r, opUpdatePassword, fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	// the subject comes from the verified token, never from the body
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, opUpdatePassword, service.ErrTokenIsExpiredOrInvalid)
		return
	}
	request.UserID = userID

	result, err := h.services.AuthService.UpdatePassword(ctx, request)
	if err != nil {
		h.writeError(w, r, opUpdatePassword, err)
		return
	}

	h.writeAuthResponse(w, r, result, http.StatusOK)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, result models.AuthResult, status int) {
	if _, err := utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Token:   result.Token.SignedString,
		Data:    models.UserData{User: result.User},
	}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing auth response")
	}
}
