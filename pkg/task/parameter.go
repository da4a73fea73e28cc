package task

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the value type carried by a Parameter.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindLong
	KindBool
	KindDouble
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Parameter is a named value attached to a task's content.
// The value kind is fixed at construction.
type Parameter struct {
	name string
	kind Kind
	str  string
	num  int64
	flag bool
	real float64
}

func newParameter(name string, kind Kind) (Parameter, error) {
	if name == "" {
		return Parameter{}, fmt.Errorf("%w: parameter name is empty", ErrNilArgument)
	}
	return Parameter{name: name, kind: kind}, nil
}

// StringParam creates a string parameter.
func StringParam(name, value string) (Parameter, error) {
	p, err := newParameter(name, KindString)
	p.str = value
	return p, err
}

// IntParam creates a 32-bit integer parameter.
func IntParam(name string, value int32) (Parameter, error) {
	p, err := newParameter(name, KindInt)
	p.num = int64(value)
	return p, err
}

// LongParam creates a 64-bit integer parameter.
func LongParam(name string, value int64) (Parameter, error) {
	p, err := newParameter(name, KindLong)
	p.num = value
	return p, err
}

// BoolParam creates a boolean parameter.
func BoolParam(name string, value bool) (Parameter, error) {
	p, err := newParameter(name, KindBool)
	p.flag = value
	return p, err
}

// DoubleParam creates a floating point parameter.
func DoubleParam(name string, value float64) (Parameter, error) {
	p, err := newParameter(name, KindDouble)
	p.real = value
	return p, err
}

func (p Parameter) Name() string { return p.name }
func (p Parameter) Kind() Kind   { return p.kind }

// Value returns the value as string, int32, int64, bool or float64 depending on Kind.
// The zero Parameter returns nil.
func (p Parameter) Value() any {
	switch p.kind {
	case KindString:
		return p.str
	case KindInt:
		return int32(p.num)
	case KindLong:
		return p.num
	case KindBool:
		return p.flag
	case KindDouble:
		return p.real
	}
	return nil
}

func (p Parameter) StringValue() (string, bool) {
	return p.str, p.kind == KindString
}

func (p Parameter) IntValue() (int32, bool) {
	if p.kind != KindInt {
		return 0, false
	}
	return int32(p.num), true
}

func (p Parameter) LongValue() (int64, bool) {
	if p.kind != KindLong {
		return 0, false
	}
	return p.num, true
}

func (p Parameter) BoolValue() (bool, bool) {
	if p.kind != KindBool {
		return false, false
	}
	return p.flag, true
}

func (p Parameter) DoubleValue() (float64, bool) {
	if p.kind != KindDouble {
		return 0, false
	}
	return p.real, true
}

// FormatValue renders the value in its canonical text form.
// Doubles always carry a fractional part, so 2 renders as "2.0".
func (p Parameter) FormatValue() string {
	switch p.kind {
	case KindString:
		return p.str
	case KindInt, KindLong:
		return strconv.FormatInt(p.num, 10)
	case KindBool:
		return strconv.FormatBool(p.flag)
	case KindDouble:
		return formatDouble(p.real)
	}
	return ""
}

// String returns "name=value".
func (p Parameter) String() string {
	return p.name + "=" + p.FormatValue()
}

// formatDouble renders v the way the canonical task text expects: plain
// decimal with at least one fractional digit for magnitudes in [1e-3, 1e7),
// otherwise shortest scientific form such as 1.0E20 or 1.2345E-5.
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if abs := math.Abs(v); v == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}
