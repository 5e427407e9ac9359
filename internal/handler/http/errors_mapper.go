package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/service"
	"github.com/MKhiriev/campus-auth/internal/store"
	"github.com/MKhiriev/campus-auth/internal/utils"
	"github.com/MKhiriev/campus-auth/internal/validators"
	"github.com/MKhiriev/campus-auth/models"
	"github.com/samber/oops"
)

// operation names the endpoint an error is reported for. Some errors read
// differently depending on where they happen.
type operation string

const (
	opRegister       operation = "register"
	opLogin          operation = "login"
	opMe             operation = "me"
	opForgotPassword operation = "forgot_password"
	opResetPassword  operation = "reset_password"
	opUpdatePassword operation = "update_password"
	opAuth           operation = "auth"
)

// Public messages of the error responses.
const (
	MsgIncorrectCredentials = "Incorrect email or password"
	MsgMissingCredentials   = "Please provide email and password"
	MsgWrongCurrentPassword = "Your current password is wrong"
	MsgRoleEscalation       = "Only students can register. Faculty and admin accounts must be created by an admin."
	MsgNoUserWithEmail      = "There is no user with this email address"
	MsgResetTokenInvalid    = "Token is invalid or has expired"
	MsgRegistrationFailed   = "Registration failed"
	MsgEmailAlreadyExists   = "Registration failed: email is already registered"
	MsgNotLoggedIn          = "You are not logged in! Please log in to get access."
	MsgSessionInvalid       = "Invalid token or session has expired. Please log in again."
	MsgInvalidInput         = "Invalid input data"
	MsgInvalidJSON          = "Invalid JSON was passed"
	MsgResetTokenSent       = "Token sent to email"
	MsgInternalServerError  = "Internal Server Error"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrRoleEscalationDenied:    http.StatusBadRequest,
	service.ErrRegistrationFailed:      http.StatusBadRequest,
	service.ErrTokenInvalidOrExpired:   http.StatusBadRequest,
	service.ErrAuthenticationFailed:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusNotFound,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	errInvalidJSON:                      http.StatusBadRequest,
}

// errInvalidJSON marks request bodies that could not be decoded.
var errInvalidJSON = errors.New("invalid JSON body")

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the public message of err for op. Internal
// details never reach the message.
func messageFromError(op operation, err error) string {
	switch {
	case errors.Is(err, errInvalidJSON):
		return MsgInvalidJSON
	case errors.Is(err, service.ErrAuthenticationFailed):
		if op == opUpdatePassword {
			return MsgWrongCurrentPassword
		}
		return MsgIncorrectCredentials
	case errors.Is(err, service.ErrInvalidDataProvided):
		if op == opLogin {
			return MsgMissingCredentials
		}
		return MsgInvalidInput
	case errors.Is(err, service.ErrRoleEscalationDenied):
		return MsgRoleEscalation
	case errors.Is(err, service.ErrUserNotFound):
		return MsgNoUserWithEmail
	case errors.Is(err, service.ErrTokenInvalidOrExpired):
		return MsgResetTokenInvalid
	case errors.Is(err, service.ErrRegistrationFailed):
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return MsgEmailAlreadyExists
		}
		return MsgRegistrationFailed
	case errors.Is(err, ErrEmptyAuthorizationHeader):
		return MsgNotLoggedIn
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, utils.ErrInvalidAuthorizationHeader):
		return MsgSessionInvalid
	default:
		return MsgInternalServerError
	}
}

// fieldErrors lists the rejected fields carried by err, if any.
func fieldErrors(err error) []models.FieldError {
	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return fields
}

// writeError maps err to its status and envelope and writes it. 5xx errors
// are logged with their cause; in development mode they also carry the
// stack trace.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op operation, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	response := models.ErrorResponse{
		Success: false,
		Message: messageFromError(op, err),
		Errors:  fieldErrors(err),
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("operation", string(op)).Msg("request failed")
		if h.development {
			response.Stack = stackFromError(err)
		}
	} else {
		log.Info().Str("operation", string(op)).Int("status", status).Str("reason", err.Error()).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, response, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

func stackFromError(err error) string {
	if oopsErr, ok := oops.AsOops(err); ok {
		return oopsErr.Stacktrace()
	}
	return err.Error()
}
