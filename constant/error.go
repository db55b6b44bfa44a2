package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrInvalidCredentials
	ErrInvalidTransition
	ErrCodeLength
	ErrInvalidCode
	ErrCodeNotIssued
	ErrResendNotReady
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrValidation:         "validation failed",
	ErrInvalidCredentials: "Email atau password salah",
	ErrInvalidTransition:  "action not available on current screen",
	ErrCodeLength:         "Kode OTP harus 6 digit",
	ErrInvalidCode:        "Kode OTP tidak valid",
	ErrCodeNotIssued:      "Kode OTP belum dikirim",
	ErrResendNotReady:     "Kode OTP belum dapat dikirim ulang",
	ErrForbidden:          "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrValidation:         http.StatusUnprocessableEntity,
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrInvalidTransition:  http.StatusConflict,
	ErrCodeLength:         http.StatusBadRequest,
	ErrInvalidCode:        http.StatusBadRequest,
	ErrCodeNotIssued:      http.StatusConflict,
	ErrResendNotReady:     http.StatusTooManyRequests,
	ErrForbidden:          http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrValidation:         "0005",
	ErrInvalidCredentials: "0006",
	ErrInvalidTransition:  "0007",
	ErrCodeLength:         "0008",
	ErrInvalidCode:        "0009",
	ErrCodeNotIssued:      "0010",
	ErrResendNotReady:     "0011",
	ErrForbidden:          "0012",
}
