package lead

import "errors"

var (
	errNoRoom     = errors.New("maximum length must be positive")
	errEmptyInput = errors.New("no text to summarize")
)
