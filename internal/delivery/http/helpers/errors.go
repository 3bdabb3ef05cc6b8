package helpers

import (
	"errors"
	"net/http"

	"mezcaltasting/internal/domain"
)

// WriteDomainError maps a service error onto the response envelope.
// Controllers handle their flow-specific errors first and fall back to this
// for the shared taxonomy: local validation (400), not found (404), the
// capacity/stock/verification conflicts (409), partial two-step failures
// (502, distinct code so clients can tell "created but not updated" apart
// from a plain backend error), and everything else (500).
func WriteDomainError(w http.ResponseWriter, err error) {
	var partial *domain.PartialFailure
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrNoCapacity),
		errors.Is(err, domain.ErrExperienceInactive),
		errors.Is(err, domain.ErrStockExceeded):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrEmailMismatch),
		errors.Is(err, domain.ErrVerificationRequired):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.As(err, &partial):
		WriteJSONError(w, http.StatusBadGateway, ErrCodePartialFailure, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
	}
}
