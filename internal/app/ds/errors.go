package ds

import (
	"errors"
	"fmt"
)

// ErrShipNotFound — корабль с запрошенным id отсутствует в хранилище
var ErrShipNotFound = errors.New("ship not found")

// ValidationError — нарушение ограничения на входные данные, транслируется в 400
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
