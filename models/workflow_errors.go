package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// Ошибки workflow согласования. Каждая категория сохраняет текст для
// пользователя, контроллеры по категории выбирают http-код ответа.

type StateError struct {
	msg string
}

func (e *StateError) Error() string { return e.msg }

func NewStateError(format string, args ...interface{}) error {
	return &StateError{msg: fmt.Sprintf(format, args...)}
}

func IsStateError(err error) bool {
	target := &StateError{}
	return errors.As(err, &target)
}

type AuthorizationError struct {
	msg string
}

func (e *AuthorizationError) Error() string { return e.msg }

func NewAuthorizationError(format string, args ...interface{}) error {
	return &AuthorizationError{msg: fmt.Sprintf(format, args...)}
}

func IsAuthorizationError(err error) bool {
	target := &AuthorizationError{}
	return errors.As(err, &target)
}

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	target := &ValidationError{}
	return errors.As(err, &target)
}

type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string { return e.msg }

func NewConflictError(format string, args ...interface{}) error {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}

func IsConflictError(err error) bool {
	target := &ConflictError{}
	return errors.As(err, &target)
}
