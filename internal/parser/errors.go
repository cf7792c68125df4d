package parser

import "errors"

// Domain-specific errors for the parser package.
var (
	ErrEmptyInput = errors.New("input text is empty")
)
