package taskfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

// Parse decodes a YAML document and builds every task it defines.
// Plan options such as task.WithClock apply to every plan.
func Parse(ctx context.Context, content []byte, opts ...task.PlanOption) ([]*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	if len(file.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	tasks := make([]*task.Task, 0, len(file.Tasks))
	for i, def := range file.Tasks {
		t, err := def.Task(opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: task #%d: %w", ErrInvalidDefinition, i+1, err)
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// Load reads and parses the file at path.
func Load(ctx context.Context, path string, opts ...task.PlanOption) ([]*task.Task, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, content, opts...)
}
