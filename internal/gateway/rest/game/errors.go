package game

import "errors"

var (
	ErrRequestFailed  = errors.New("game api request failed")
	ErrRejected       = errors.New("rejected by game server")
	ErrDecodeResponse = errors.New("decode game api response")
)
