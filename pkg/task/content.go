package task

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Content describes what a task does: a positive type code, for example
// 10001 for "remove a user by id", and the parameters that operation needs,
// such as uid=245001. Content is immutable after construction.
type Content struct {
	typ    int
	params []Parameter
}

// NewContent creates content of the given type. The type must be greater than zero.
func NewContent(typ int, params ...Parameter) (*Content, error) {
	if typ <= 0 {
		return nil, fmt.Errorf("%w: content type=%d must be greater than zero", ErrInvalidValue, typ)
	}
	for i, p := range params {
		if p.name == "" {
			return nil, fmt.Errorf("%w: parameter #%d has no name", ErrNilArgument, i)
		}
	}

	cloned := make([]Parameter, len(params))
	copy(cloned, params)

	return &Content{typ: typ, params: cloned}, nil
}

// Type returns the task type code.
func (c *Content) Type() int { return c.typ }

// Len returns the number of parameters.
func (c *Content) Len() int { return len(c.params) }

// Parameters returns a copy of the parameters in insertion order.
func (c *Content) Parameters() []Parameter {
	return slices.Clone(c.params)
}

// Parameter returns the first parameter with the given name.
func (c *Content) Parameter(name string) (Parameter, bool) {
	for _, p := range c.params {
		if p.name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// String returns the canonical form TaskContent[type=<n>,<name>=<value>,...].
func (c *Content) String() string {
	var sb strings.Builder
	sb.WriteString("TaskContent[type=")
	sb.WriteString(strconv.Itoa(c.typ))
	for _, p := range c.params {
		sb.WriteByte(',')
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(p.FormatValue())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ContentBuilder accumulates typed parameters and freezes them into a Content.
// The first error encountered is kept and returned by Build.
type ContentBuilder struct {
	typ    int
	params []Parameter
	err    error
}

// NewContentBuilder starts a builder for content of the given type.
func NewContentBuilder(typ int) *ContentBuilder {
	return &ContentBuilder{typ: typ}
}

func (b *ContentBuilder) add(p Parameter, err error) *ContentBuilder {
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.params = append(b.params, p)
	return b
}

func (b *ContentBuilder) AddString(name, value string) *ContentBuilder {
	return b.add(StringParam(name, value))
}

func (b *ContentBuilder) AddInt(name string, value int32) *ContentBuilder {
	return b.add(IntParam(name, value))
}

func (b *ContentBuilder) AddLong(name string, value int64) *ContentBuilder {
	return b.add(LongParam(name, value))
}

func (b *ContentBuilder) AddBool(name string, value bool) *ContentBuilder {
	return b.add(BoolParam(name, value))
}

func (b *ContentBuilder) AddDouble(name string, value float64) *ContentBuilder {
	return b.add(DoubleParam(name, value))
}

// Build returns a new Content holding a snapshot of the accumulated parameters.
func (b *ContentBuilder) Build() (*Content, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewContent(b.typ, b.params...)
}
