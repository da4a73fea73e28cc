package taskfile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/taskengine/pkg/task"
)

// File is the root of a task definition document.
type File struct {
	Tasks []Definition `yaml:"tasks"`
}

// Definition describes a single task.
type Definition struct {
	Type       int           `yaml:"type"`
	Priority   *int          `yaml:"priority,omitempty"`
	StartAfter time.Duration `yaml:"start_after,omitempty"`
	Params     []Param       `yaml:"params,omitempty"`
	Schedule   *Repeat       `yaml:"schedule,omitempty"`
	Retry      *Repeat       `yaml:"retry,omitempty"`
}

// Param is a typed task parameter. Value holds the scalar as written.
type Param struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// Repeat describes a schedule or retry policy.
type Repeat struct {
	Max           int           `yaml:"max"`
	Interval      time.Duration `yaml:"interval,omitempty"`
	DeadlineAfter time.Duration `yaml:"deadline_after,omitempty"`
	Disabled      bool          `yaml:"disabled,omitempty"`
}

// Task builds the task described by d.
func (d Definition) Task(opts ...task.PlanOption) (*task.Task, error) {
	content, err := d.content()
	if err != nil {
		return nil, err
	}

	plan, err := d.plan(opts)
	if err != nil {
		return nil, err
	}

	return task.New(content, plan)
}

func (d Definition) content() (*task.Content, error) {
	b := task.NewContentBuilder(d.Type)
	for _, p := range d.Params {
		if err := addParam(b, p); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func addParam(b *task.ContentBuilder, p Param) error {
	switch p.Kind {
	case task.KindString.String(), "":
		b.AddString(p.Name, p.Value)
	case task.KindInt.String():
		v, err := strconv.ParseInt(p.Value, 10, 32)
		if err != nil {
			return paramError(p, err)
		}
		b.AddInt(p.Name, int32(v))
	case task.KindLong.String():
		v, err := strconv.ParseInt(p.Value, 10, 64)
		if err != nil {
			return paramError(p, err)
		}
		b.AddLong(p.Name, v)
	case task.KindBool.String():
		v, err := strconv.ParseBool(p.Value)
		if err != nil {
			return paramError(p, err)
		}
		b.AddBool(p.Name, v)
	case task.KindDouble.String():
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return paramError(p, err)
		}
		b.AddDouble(p.Name, v)
	default:
		return fmt.Errorf("%w: %q for parameter %q", ErrUnknownKind, p.Kind, p.Name)
	}
	return nil
}

func paramError(p Param, err error) error {
	return fmt.Errorf("%w: parameter %q is not a valid %s: %w", ErrInvalidDefinition, p.Name, p.Kind, err)
}

func (d Definition) plan(opts []task.PlanOption) (*task.Plan, error) {
	b := task.NewPlanBuilder(opts...)
	if d.Priority != nil {
		b.Priority(task.Priority(*d.Priority))
	}
	if d.StartAfter > 0 {
		b.StartAfter(d.StartAfter)
	}
	if d.Schedule != nil {
		d.Schedule.apply(b.EnableSchedule())
	}
	if d.Retry != nil {
		d.Retry.apply(b.EnableRetry())
	}
	return b.Build()
}

func (r Repeat) apply(b *task.RepeatBuilder) {
	b.Max(r.Max)
	if r.Interval > 0 {
		b.Interval(r.Interval)
	}
	if r.DeadlineAfter > 0 {
		b.DeadlineAfter(r.DeadlineAfter)
	}
	if r.Disabled {
		b.Disabled()
	}
}
