package service

import "errors"

// Sentinel errors controllers translate into HTTP statuses. Invalid
// transitions are client mistakes, not system failures, so none of
// these ever produce an ERROR level activity entry.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNoSiteOpen        = errors.New("no project open")
	ErrNoPendingQuestion = errors.New("no question has been submitted")
	ErrJobNotFound       = errors.New("processing job not found")
	ErrInvalidUpload     = errors.New("invalid upload")
)
