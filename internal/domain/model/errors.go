package model

import (
	"errors"

	"todo-api/pkg/msg"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidID     = errors.New("invalid id")
	ErrNotFound      = errors.New("not found")
	ErrBadAttachment = errors.New("bad attachment")
)

// ValidationError reports a missing or malformed request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidIDError reports an identifier the store cannot parse
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return msg.GetMessage("db.invalid-id", e.ID)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}

// NotFoundError reports an identifier that resolves to no document.
// Resource is the message catalog prefix, e.g. "todo" or "category".
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return msg.GetMessage(e.Resource+".error.not-found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AttachmentError reports a rejected upload
type AttachmentError struct {
	Message string
}

func (e *AttachmentError) Error() string {
	return e.Message
}

func (e *AttachmentError) Is(target error) bool {
	return target == ErrBadAttachment
}
