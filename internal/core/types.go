package core

const (
	TuskName          = "TuskCmd"
	TuskRepositoryURL = "https://github.com/sandevgo/tuskcmd"
	TuskVersion       = "0.2.0"
)

// Permission nodes used by the built-in commands.
const (
	PermissionAdmin    = "tusk.admin"
	PermissionHelpAll  = "tusk.help.all"
	PermissionWildcard = "*"
)
