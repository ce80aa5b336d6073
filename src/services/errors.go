package services

import "errors"

// Sentinel errors controllers translate into per-route status codes.
var (
	ErrNotFound           = errors.New("record not found or not authorized")
	ErrJobNotFound        = errors.New("processing job not found")
	ErrFileNotFound       = errors.New("uploaded file not found or not authorized")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrMissingFileName    = errors.New("either uploadedFileId or fileName must be provided")
)
