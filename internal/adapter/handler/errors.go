package handler

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/rl1809/warehouse-ledger/internal/core/domain"
)

const internalMessage = "An unexpected error occurred"

func httpStatus(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindInvalidArgument, domain.KindInvalidState, domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindCapacityExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func grpcCode(kind domain.ErrorKind) codes.Code {
	switch kind {
	case domain.KindNotFound:
		return codes.NotFound
	case domain.KindConflict:
		return codes.AlreadyExists
	case domain.KindInvalidArgument, domain.KindValidation:
		return codes.InvalidArgument
	case domain.KindInvalidState:
		return codes.FailedPrecondition
	case domain.KindCapacityExceeded:
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}

// publicMessage hides internal error detail from callers.
func publicMessage(err error) string {
	if domain.KindOf(err) == domain.KindInternal {
		return internalMessage
	}
	var e *domain.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
