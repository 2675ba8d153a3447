package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause so errors.Is/As can reach domain sentinels
// and driver errors through the usecase layer.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// BadRequestWrap is BadRequest with a cause attached.
func BadRequestWrap(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func NotFoundWrap(message string, err error) *AppError {
	return New(http.StatusNotFound, message, err)
}

// Conflict is reported to clients as 400, matching how duplicate assignments
// have always been surfaced by the API.
func Conflict(message string, err error) *AppError {
	return New(http.StatusBadRequest, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
