package position

import "errors"

var (
	ErrUnsupported        = errors.New("geolocation is not supported on this device")
	ErrPermissionDenied   = errors.New("geolocation permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout            = errors.New("position request timed out")
)
