package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/store"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	err = translateStoreErr(err)
	status := statusFor(err)

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	s.respondJSON(w, status, errorBody{Code: string(code), Error: errors.UserMessage(err)})
}

// translateStoreErr lifts the store sentinel into a coded error so the
// status mapping below stays in one place.
func translateStoreErr(err error) error {
	if stderrors.Is(err, store.ErrNotFound) {
		return errors.Wrap(errors.ErrCodeBoardNotFound, err, "board not found")
	}
	return err
}

// statusFor maps error codes onto HTTP statuses. Rejections are conflicts:
// the request was well-formed but the board's current layout refuses it.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidBoard,
		errors.ErrCodeInvalidComponent,
		errors.ErrCodeInvalidOperation,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest

	case errors.ErrCodeBoardNotFound,
		errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound

	case errors.ErrCodeRejectedNoPlacement,
		errors.ErrCodeRejectedOutOfBounds,
		errors.ErrCodeRejectedDuplicate,
		errors.ErrCodeComponentNotFound:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
