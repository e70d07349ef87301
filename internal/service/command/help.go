package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/environment"
)

// ForEnvironment drops the descriptors that can't run in env, and the
// groups left empty by that.
func ForEnvironment(groups []Group, env environment.Flag) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		var ds []Descriptor
		for _, d := range g.Descriptors {
			if d.Environments.Has(env) {
				ds = append(ds, d)
			}
		}
		if len(ds) > 0 {
			out = append(out, Group{Base: g.Base, Descriptors: ds})
		}
	}
	return out
}

// DetailedHelp renders every command with its description and usage.
// Aliases share their descriptor's command and are listed once.
func DetailedHelp(groups []Group, inv core.Invoker, showPermission bool) string {
	f := NewResponseFormatter()
	seen := make(map[string]bool)

	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(f.Separator())
		for _, d := range g.Descriptors {
			if seen[d.Command] {
				continue
			}
			seen[d.Command] = true

			sb.WriteString(f.Label("Command", "/"+d.Command))
			if len(d.Aliases) > 0 {
				sb.WriteString(f.Label("Aliases", strings.Join(d.Aliases, ", ")))
			}
			sb.WriteString(fmt.Sprintf("**Description**: %s\n", d.Description))
			sb.WriteString(f.Usage(d.Usage))
			if showPermission {
				sb.WriteString(fmt.Sprintf("**Required Permission**: %s\n", permissionStatus(d.Permission, inv)))
			}
			sb.WriteString(f.Separator())
		}
	}
	return sb.String()
}

// SimpleHelp lists the commands the invoker is allowed to run, one per line.
func SimpleHelp(groups []Group, inv core.Invoker) string {
	seen := make(map[string]bool)

	var lines []string
	for _, g := range groups {
		for _, d := range g.Descriptors {
			if d.Permission != "" && !inv.HasPermission(d.Permission) {
				continue
			}
			if !d.Invokers.Accepts(inv.Kind()) {
				continue
			}
			if seen[d.Command] {
				continue
			}
			seen[d.Command] = true
			lines = append(lines, fmt.Sprintf("`/%s` - %s", d.Command, d.Description))
		}
	}
	return strings.Join(lines, "\n")
}

func permissionStatus(node string, inv core.Invoker) string {
	switch {
	case node == "":
		return "none"
	case inv != nil && inv.HasPermission(node):
		return "✅ `" + node + "`"
	default:
		return "❌ `" + node + "`"
	}
}
