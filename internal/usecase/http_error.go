package usecase

import (
	"errors"
	"fmt"
)

// handlerでそのままステータスとメッセージにする業務エラー
// これ以外のエラーはDB障害などとして上位（echoのエラーハンドラ）へ流す
type HTTPError struct {
	Status  int
	Message string
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

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
