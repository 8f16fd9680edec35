package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig       = goerr.New("invalid configuration")
	ErrDuplicateCategoryID = goerr.New("duplicate category ID")
	ErrDuplicateScaleID    = goerr.New("duplicate scale level ID")
	ErrDuplicateScaleScore = goerr.New("duplicate scale level score")
)
