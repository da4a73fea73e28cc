package task

import (
	"fmt"
	"maps"
	"slices"
)

// Context is a property bag carried by a RuntimeTask during one execution attempt.
// It is not safe for concurrent writers.
type Context struct {
	properties map[string]any
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{properties: make(map[string]any)}
}

// Set stores a property. A nil value removes the key.
func (c *Context) Set(key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: context key is empty", ErrNilArgument)
	}
	if value == nil {
		delete(c.properties, key)
		return nil
	}
	c.properties[key] = value
	return nil
}

// Get returns the property stored under key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.properties[key]
	return v, ok
}

func (c *Context) Delete(key string) {
	delete(c.properties, key)
}

// Keys returns the stored keys in sorted order.
func (c *Context) Keys() []string {
	return slices.Sorted(maps.Keys(c.properties))
}

func (c *Context) Len() int {
	return len(c.properties)
}
