// Package environment describes the deployment environments a command
// variant may run in. A Flag is a bit set; the active environment of a
// process is a single bit chosen once at startup.
package environment

import (
	"fmt"
	"strings"
)

type Flag uint8

const (
	// Local is a feature being tested on a developer machine.
	Local Flag = 1 << iota
	// Dev is the integration environment of the develop branch.
	Dev
	// Release is a release candidate, bug fixes only.
	Release
	// Prod is the live environment end users access.
	Prod

	All = Local | Dev | Release | Prod
)

// Default is used when no environment is configured or the configured one is invalid.
const Default = Prod

// Has reports whether every bit of flag is set in f.
func (f Flag) Has(flag Flag) bool {
	return f&flag == flag
}

func (f Flag) String() string {
	if f == All {
		return "ALL"
	}

	var names []string
	for _, e := range []struct {
		flag Flag
		name string
	}{
		{Local, "LOCAL"},
		{Dev, "DEV"},
		{Release, "RELEASE"},
		{Prod, "PROD"},
	} {
		if f&e.flag != 0 {
			names = append(names, e.name)
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "|")
}

// Parse converts an environment name into its flag. Names are case
// insensitive and accept the usual branch aliases.
func Parse(input string) (Flag, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "LOCAL", "FEATURE":
		return Local, nil
	case "DEV", "DEVELOP", "DEVELOPMENT":
		return Dev, nil
	case "RELEASE", "REL":
		return Release, nil
	case "PROD", "PRODUCTION", "LIVE", "MASTER":
		return Prod, nil
	case "ALL":
		return All, nil
	default:
		return 0, fmt.Errorf("invalid environment type %q", input)
	}
}

// ParseMask parses a list of environment names separated by '|' or ','.
func ParseMask(input string) (Flag, error) {
	var mask Flag
	for _, part := range strings.FieldsFunc(input, func(r rune) bool { return r == '|' || r == ',' }) {
		f, err := Parse(part)
		if err != nil {
			return 0, err
		}
		mask |= f
	}
	if mask == 0 {
		return 0, fmt.Errorf("empty environment mask %q", input)
	}
	return mask, nil
}

// UnmarshalText lets a Flag be decoded from configuration.
func (f *Flag) UnmarshalText(text []byte) error {
	parsed, err := ParseMask(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
