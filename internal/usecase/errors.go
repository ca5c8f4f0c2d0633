package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "github.com/tsizion/DokaBackend/internal/repository"
)

// 項目ごとの入力エラー
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handlerがそのままレスポンスにするエラー
type HTTPError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 400 Validation failed
func NewValidationError(errs ...FieldError) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ErrNotFoundなら404、それ以外はそのまま返す
func notFoundAs(err error, message string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, message)
	}
	return err
}
