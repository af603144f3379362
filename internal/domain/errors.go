package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("resource conflict")
	ErrAlreadySubmittedToday = errors.New("assessment already submitted today")
	ErrNoPartner             = errors.New("user has no linked partner")
	ErrSelfPartner           = errors.New("cannot link user as their own partner")
	ErrInvalidInput          = errors.New("invalid input")
)
