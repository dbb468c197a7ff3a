package services

import "errors"

type ErrorCode string

const (
	ErrorInvalid           ErrorCode = "invalid"
	ErrorDuplicateEmail    ErrorCode = "duplicate_email"
	ErrorNotFound          ErrorCode = "not_found"
	ErrorSuspended         ErrorCode = "suspended"
	ErrorBadCredential     ErrorCode = "bad_credential"
	ErrorNotAuthenticated  ErrorCode = "not_authenticated"
	ErrorNotAuthorized     ErrorCode = "not_authorized"
	ErrorInvalidRating     ErrorCode = "invalid_rating"
	ErrorRecipientNotFound ErrorCode = "recipient_not_found"
	ErrorRecipientBanned   ErrorCode = "recipient_suspended"
	ErrorSkillNotOwned     ErrorCode = "offered_skill_not_owned"
	ErrorSkillNotOffered   ErrorCode = "requested_skill_not_offered"
	ErrorNotRecipient      ErrorCode = "not_recipient"
	ErrorAlreadyResolved   ErrorCode = "already_resolved"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error  { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }

func NewDuplicateEmailError(msg string) error {
	return &ServiceError{Code: ErrorDuplicateEmail, Message: msg}
}

func NewSuspendedError(msg string) error {
	return &ServiceError{Code: ErrorSuspended, Message: msg}
}

func NewBadCredentialError(msg string) error {
	return &ServiceError{Code: ErrorBadCredential, Message: msg}
}

func NewNotAuthenticatedError(msg string) error {
	return &ServiceError{Code: ErrorNotAuthenticated, Message: msg}
}

func NewNotAuthorizedError(msg string) error {
	return &ServiceError{Code: ErrorNotAuthorized, Message: msg}
}

func NewInvalidRatingError(msg string) error {
	return &ServiceError{Code: ErrorInvalidRating, Message: msg}
}

func NewRecipientNotFoundError(msg string) error {
	return &ServiceError{Code: ErrorRecipientNotFound, Message: msg}
}

func NewRecipientBannedError(msg string) error {
	return &ServiceError{Code: ErrorRecipientBanned, Message: msg}
}

func NewSkillNotOwnedError(msg string) error {
	return &ServiceError{Code: ErrorSkillNotOwned, Message: msg}
}

func NewSkillNotOfferedError(msg string) error {
	return &ServiceError{Code: ErrorSkillNotOffered, Message: msg}
}

func NewNotRecipientError(msg string) error {
	return &ServiceError{Code: ErrorNotRecipient, Message: msg}
}

func NewAlreadyResolvedError(msg string) error {
	return &ServiceError{Code: ErrorAlreadyResolved, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// CodeOf returns the error code carried by err, or empty when err is not a
// ServiceError.
func CodeOf(err error) ErrorCode {
	if se, ok := AsServiceError(err); ok {
		return se.Code
	}
	return ""
}
