package source

import "errors"

var (
	ErrInputOpen       = errors.New("error opening input")
	ErrInputClose      = errors.New("error closing input")
	ErrInputUnreadable = errors.New("input is unreadable")
	ErrReleased        = errors.New("buffer already released")
)
