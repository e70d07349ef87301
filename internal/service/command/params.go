package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ParamType tags the declared type of a handler parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInt     ParamType = "int"
	ParamFloat32 ParamType = "float32"
	ParamFloat64 ParamType = "float64"
	ParamBool    ParamType = "bool"
	// ParamRaw binds the whole unsplit remainder. Only valid as the sole parameter.
	ParamRaw ParamType = "raw"
)

// ParserFunc converts a token into a value of an extension type. Returning
// an *ArgumentFormatError gives the invoker a precise message; any other
// error is wrapped into one.
type ParserFunc func(token string) (any, error)

// Coercer converts string tokens into typed values.
type Coercer struct {
	mu      sync.RWMutex
	parsers map[ParamType]ParserFunc
}

func NewCoercer() *Coercer {
	return &Coercer{
		parsers: make(map[ParamType]ParserFunc),
	}
}

func isBuiltin(t ParamType) bool {
	switch t {
	case ParamString, ParamInt, ParamFloat32, ParamFloat64, ParamBool, ParamRaw:
		return true
	}
	return false
}

// Register adds or replaces the parser for an extension type.
func (c *Coercer) Register(t ParamType, fn ParserFunc) error {
	if t == "" || fn == nil {
		return &ConfigurationError{Type: t, Reason: "type and parser are required"}
	}
	if isBuiltin(t) {
		return &ConfigurationError{Type: t, Reason: "built-in types can't be overridden"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.parsers[t] = fn
	return nil
}

// Supports reports whether tokens can be converted into t.
func (c *Coercer) Supports(t ParamType) bool {
	if isBuiltin(t) {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.parsers[t]
	return ok
}

// Parse converts token into the target type.
func (c *Coercer) Parse(token string, t ParamType) (any, error) {
	switch t {
	case ParamString, ParamRaw:
		return token, nil
	case ParamInt:
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, formatError(token, t, fmt.Sprintf("'%s' must be a whole number.", token))
		}
		return v, nil
	case ParamFloat32:
		v, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return nil, formatError(token, t, fmt.Sprintf("'%s' must be a number. Ex: 3.14", token))
		}
		return float32(v), nil
	case ParamFloat64:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, formatError(token, t, fmt.Sprintf("'%s' must be a number. Ex: 3.14", token))
		}
		return v, nil
	case ParamBool:
		switch strings.ToLower(token) {
		case "on", "true", "yes":
			return true, nil
		case "off", "false", "no":
			return false, nil
		}
		return nil, formatError(token, t, fmt.Sprintf("'%s' must be true or false.", token))
	}

	c.mu.RLock()
	fn, ok := c.parsers[t]
	c.mu.RUnlock()
	if !ok {
		return nil, &ConfigurationError{Type: t, Reason: "no parser registered"}
	}

	v, err := callParser(t, fn, token)
	if err != nil {
		var ce *ConfigurationError
		if errors.As(err, &ce) {
			return nil, ce
		}
		var fe *ArgumentFormatError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, formatError(token, t, fmt.Sprintf("'%s' is not a valid %s.", token, t))
	}
	return v, nil
}

// callParser turns a panicking extension parser into a ConfigurationError.
func callParser(t ParamType, fn ParserFunc, token string) (v any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v = nil
			err = &ConfigurationError{Type: t, Reason: fmt.Sprintf("parser panicked: %v", rec)}
		}
	}()
	return fn(token)
}

func formatError(token string, t ParamType, reason string) *ArgumentFormatError {
	return &ArgumentFormatError{Token: token, Type: t, Reason: reason}
}
