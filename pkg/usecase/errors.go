package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the use case layer
var (
	// ErrInvalidInput marks user-supplied data that failed validation.
	// The HTTP controller maps it to a 400 response.
	ErrInvalidInput = goerr.New("invalid input")
)
