package models

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("time slot already booked")
	ErrValidation = errors.New("validation error")
)
