package logger

import "errors"

// ErrInvalidFormat is returned when a configured format is neither json nor text.
var ErrInvalidFormat = errors.New("logger: format must be json or text")
