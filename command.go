package interactiveclap

// Command marks a mirror as selected. Every generated mirror embeds it.
//
// A mirror standing for a union variant or a named argument is a subcommand
// of its parent mirror. The command line parser selects it through
// [Command.AfterApply]. The conversions select it after resolving the variant
// interactively.
type Command struct {
	selected bool
}

// Select marks the command as selected.
func (c *Command) Select() { c.selected = true }

// Selected reports whether the command is selected.
func (c Command) Selected() bool { return c.selected }

// AfterApply is called by the command line parser when the command appears
// on the command line.
func (c *Command) AfterApply() error {
	c.Select()
	return nil
}
