package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error codes
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeMalformedQuestion = "MALFORMED_QUESTION"
	ErrCodeQuizRunning       = "QUIZ_ALREADY_RUNNING"
	ErrCodeNoActiveQuiz      = "NO_ACTIVE_QUIZ"
	ErrCodeAlreadyAnswered   = "ALREADY_ANSWERED"
	ErrCodeInvalidToken      = "INVALID_TOKEN"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
)
