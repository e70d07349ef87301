package command

import "fmt"

// Code is a machine-readable error code.
type Code string

const (
	CodeArgumentFormat Code = "ARGUMENT_FORMAT"
	CodeArity          Code = "ARITY"
	CodeConfiguration  Code = "CONFIGURATION"
)

// ArgumentFormatError is returned when a single token cannot be converted
// into its declared parameter type. The invoker can fix it.
type ArgumentFormatError struct {
	Token  string
	Type   ParamType
	Reason string
	// Usage is filled in once the failing descriptor is known.
	Usage string
}

func (e *ArgumentFormatError) Error() string {
	return fmt.Sprintf("can't parse argument '%s' to %s", e.Token, e.Type)
}

func (e *ArgumentFormatError) Code() Code { return CodeArgumentFormat }

func (e *ArgumentFormatError) DisplayMessage() string {
	return withUsage(e.Reason, e.Usage)
}

// ArityError is returned when fewer tokens than declared parameters were
// supplied, or more when the descriptor is strict.
type ArityError struct {
	Want  int
	Got   int
	Usage string
}

func (e *ArityError) Error() string {
	if e.Got > e.Want {
		return fmt.Sprintf("too many arguments provided: want %d, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("not enough arguments provided to satisfy handler requirements: want %d, got %d", e.Want, e.Got)
}

func (e *ArityError) Code() Code { return CodeArity }

func (e *ArityError) DisplayMessage() string {
	msg := "Not enough arguments provided."
	if e.Got > e.Want {
		msg = "Too many arguments provided."
	}
	return withUsage(msg, e.Usage)
}

// ConfigurationError is a developer mistake: an unsupported parameter type
// or an invalid descriptor. It is logged, never shown to the invoker.
type ConfigurationError struct {
	Type   ParamType
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("unsupported parameter type %q: %s", e.Type, e.Reason)
	}
	return "invalid command configuration: " + e.Reason
}

func (e *ConfigurationError) Code() Code { return CodeConfiguration }

// UserError is implemented by errors whose message may be shown to the invoker.
type UserError interface {
	error
	DisplayMessage() string
}

func withUsage(msg, usage string) string {
	if usage == "" {
		return msg
	}
	return msg + "\n**Usage**: `" + usage + "`"
}
