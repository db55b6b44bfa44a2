package errors

import "github.com/muhammadheryan/compose-demos/constant"

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Fields returns per-field messages, keyed by the request's json field name.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetFieldErrors wraps field messages into an ErrValidation error.
func SetFieldErrors(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}

// Is matches another CustomError of the same type, ignoring field messages.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}
