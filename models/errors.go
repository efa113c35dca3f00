package models

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrUnknownSport = errors.New("unknown sport")
	ErrNoStats      = errors.New("no stats available")
	ErrInvalidMatch = errors.New("invalid match")
)
