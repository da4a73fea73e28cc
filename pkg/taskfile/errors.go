package taskfile

import "errors"

var (
	ErrParsingCancelled  = errors.New("taskfile: parsing cancelled")
	ErrFailedToParseYAML = errors.New("taskfile: failed to parse yaml")
	ErrFailedToReadFile  = errors.New("taskfile: failed to read file")
	ErrInvalidDefinition = errors.New("taskfile: invalid task definition")
	ErrUnknownKind       = errors.New("taskfile: unknown parameter kind")
	ErrNoTasks           = errors.New("taskfile: no tasks defined")
)
