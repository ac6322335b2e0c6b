package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	collaborationdomain "github.com/opusline/royaltyd/internal/collaboration/domain"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	"github.com/opusline/royaltyd/internal/identity"
	ledgerdomain "github.com/opusline/royaltyd/internal/ledger/domain"
	repdomain "github.com/opusline/royaltyd/internal/representative/domain"
	transactiondomain "github.com/opusline/royaltyd/internal/transaction/domain"
	workdomain "github.com/opusline/royaltyd/internal/work/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrForbidden),
		errors.Is(err, transactiondomain.ErrDeleteForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, ledgerdomain.ErrDuplicateEntry),
		errors.Is(err, collaborationdomain.ErrAlreadyBound):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isUnprocessableError(err):
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "unprocessable",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, identity.ErrInvalidRole),
		errors.Is(err, creatordomain.ErrInvalidName),
		errors.Is(err, creatordomain.ErrInvalidID),
		errors.Is(err, repdomain.ErrInvalidName),
		errors.Is(err, repdomain.ErrInvalidCommission),
		errors.Is(err, repdomain.ErrInvalidID),
		errors.Is(err, workdomain.ErrInvalidTitle),
		errors.Is(err, workdomain.ErrInvalidAmount),
		errors.Is(err, workdomain.ErrInvalidCreator),
		errors.Is(err, workdomain.ErrInvalidID),
		errors.Is(err, ledgerdomain.ErrInvalidID),
		errors.Is(err, transactiondomain.ErrInvalidAmount),
		errors.Is(err, transactiondomain.ErrInvalidID),
		errors.Is(err, collaborationdomain.ErrInvalidDecision),
		errors.Is(err, collaborationdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func isUnprocessableError(err error) bool {
	switch {
	case errors.Is(err, transactiondomain.ErrOverpayment),
		errors.Is(err, transactiondomain.ErrRepresentativeNotFound),
		errors.Is(err, transactiondomain.ErrInvalidStateTransition),
		errors.Is(err, collaborationdomain.ErrInvalidStateTransition):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, creatordomain.ErrNotFound),
		errors.Is(err, repdomain.ErrNotFound),
		errors.Is(err, workdomain.ErrNotFound),
		errors.Is(err, ledgerdomain.ErrNotFound),
		errors.Is(err, ledgerdomain.ErrWorkNotFound),
		errors.Is(err, transactiondomain.ErrNotFound),
		errors.Is(err, transactiondomain.ErrLedgerNotFound),
		errors.Is(err, collaborationdomain.ErrNotFound),
		errors.Is(err, collaborationdomain.ErrCreatorNotFound),
		errors.Is(err, collaborationdomain.ErrRepresentativeNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
