package ir

import "errors"

var (
	ErrNotFinite = errors.New("number is not finite")
	ErrNotDict   = errors.New("not a dict")
	ErrNotList   = errors.New("not a list")
)
