package model

import (
	"errors"
	"fmt"
)

var ErrorInvalidUsernameOrPassword = errors.New("username or password is invalid")
var ErrorUsernameExists = errors.New("username already exists")
var ErrorUnauthorized = errors.New("unauthorized")
var ErrorUserNotFound = errors.New("user is not found")
var ErrorContactNotFound = errors.New("contact is not found")
var ErrorAddressNotFound = errors.New("address is not found")

// ValidationError reports the first request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalidField(field string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
