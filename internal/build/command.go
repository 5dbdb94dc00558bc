package build

import "strings"

// Command is a structured build command: an environment prefix, a template
// with {{bin}} and {{src}} placeholders, and the two paths substituted into
// them. It stays a value until rendered at the executor boundary.
type Command struct {
	Env      string
	Template string
	Bin      string
	Src      string
}

// Render produces the shell line handed to the executor.
func (c Command) Render() string {
	line := strings.NewReplacer("{{bin}}", c.Bin, "{{src}}", c.Src).Replace(c.Template)
	if c.Env == "" {
		return line
	}
	return c.Env + " " + line
}

// TestCommand is a structured test invocation: a template with a {{test}}
// placeholder and the test target substituted into it.
type TestCommand struct {
	Template string
	Target   string
}

// Render produces the shell line handed to the executor.
func (c TestCommand) Render() string {
	return strings.ReplaceAll(c.Template, "{{test}}", c.Target)
}
