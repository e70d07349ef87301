package telegram

import "strings"

// parseCommand splits "/base@bot arg..." into the base command and its
// tokens. Plain text and commands addressed to another bot are not ok.
func parseCommand(text, botName string) (base string, args []string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", nil, false
	}

	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", nil, false
	}

	base = fields[0]
	if name, mention, found := strings.Cut(base, "@"); found {
		if botName != "" && !strings.EqualFold(mention, botName) {
			return "", nil, false
		}
		base = name
	}
	if base == "" {
		return "", nil, false
	}
	return base, fields[1:], true
}
