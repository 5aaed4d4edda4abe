package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates an ExecCommand.
func NewCommand(program, dir string, args ...string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Dir:     dir,
		Args:    args,
	}
}

// Argv returns the program followed by its arguments.
func (c *ExecCommand) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// String renders the command the way it would be typed, without quoting.
func (c *ExecCommand) String() string {
	return strings.Join(c.Argv(), " ")
}

// ExecResult holds the captured streams of a finished command.
type ExecResult struct {
	Stdout []byte
	Stderr []byte
}
