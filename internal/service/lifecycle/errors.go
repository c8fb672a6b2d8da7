package lifecycle

import "errors"

var (
	ErrUnsupported = errors.New("geolocation is not supported on this device")
	ErrNotInZone   = errors.New("not in the required zone yet")
	ErrNoOrder     = errors.New("no active order")
	ErrDeclined    = errors.New("confirmation declined")
)
