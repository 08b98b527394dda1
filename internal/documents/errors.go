package documents

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("user not identified")
	ErrNotOwner      = errors.New("not document owner")
	ErrNotFound      = errors.New("not found")
	ErrGateway       = errors.New("model gateway failure")
	ErrBadExtraction = errors.New("model output does not match contract")
	ErrStorage       = errors.New("storage failure")
)

const (
	ErrorCodeValidation   = "VALIDATION_ERROR"
	ErrorCodeUnauthorized = "UNAUTHORIZED"
	ErrorCodeNotFound     = "NOT_FOUND"
	ErrorCodeGateway      = "GATEWAY_ERROR"
	ErrorCodeParse        = "PARSE_ERROR"
	ErrorCodeStorage      = "STORAGE_ERROR"
)
