package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidCategory   = errors.New("invalid signal category")
	ErrInvalidConfidence = errors.New("invalid signal confidence")
	ErrEmptySignalName   = errors.New("signal name is required")
	ErrEmptyLaneName     = errors.New("lane name is required")
)
