package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUnknownEventType   = errors.New("unknown event type")
	ErrUnknownParticipant = errors.New("unknown participant category")
)

var (
	ErrQuotaExceeded = errors.New("value exceeds storage quota")
)

var (
	ErrValidation = errors.New("validation error")
)
