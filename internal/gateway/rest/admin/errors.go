package admin

import "errors"

var (
	ErrRequestFailed  = errors.New("admin api request failed")
	ErrUnavailable    = errors.New("admin api unavailable")
	ErrNotFound       = errors.New("not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrDecodeResponse = errors.New("decode admin api response")
)
