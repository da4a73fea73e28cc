package task

import (
	"fmt"
	"strings"
)

// Result is the terminal outcome of one execution attempt.
// The numeric codes are part of the wire format and must not change.
type Result int

const (
	ResultSuccess  Result = 0
	ResultFailure  Result = 1
	ResultCanceled Result = 2
	ResultMerged   Result = 3
	ResultRejected Result = 4
)

var resultNames = [...]string{
	ResultSuccess:  "SUCCESS",
	ResultFailure:  "FAILURE",
	ResultCanceled: "CANCELED",
	ResultMerged:   "MERGED",
	ResultRejected: "REJECTED",
}

// Code returns the stable numeric code of the result.
func (r Result) Code() int {
	return int(r)
}

// Valid reports whether r is one of the declared results.
func (r Result) Valid() bool {
	return r >= ResultSuccess && r <= ResultRejected
}

func (r Result) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Result(%d)", int(r))
	}
	return resultNames[r]
}

// ParseResult resolves a result by its name, case-insensitively.
func ParseResult(s string) (Result, error) {
	for i, name := range resultNames {
		if strings.EqualFold(name, s) {
			return Result(i), nil
		}
	}
	return ResultFailure, fmt.Errorf("%w: unknown result %q", ErrInvalidValue, s)
}
