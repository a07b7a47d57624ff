package diagnostics

import (
	"fmt"
	"os"
	"os/exec"
)

// Checker verifies external tools and storage directories at startup. Every
// finding is a warning, never a startup failure: the tools are invoked again
// by the first real job, which produces the authoritative error.
type Checker struct {
	lookPath   func(string) (string, error)
	createTemp func(dir, pattern string) (*os.File, error)
	remove     func(string) error
}

// NewChecker builds a checker using real OS dependencies.
func NewChecker() *Checker {
	return &Checker{
		lookPath:   exec.LookPath,
		createTemp: os.CreateTemp,
		remove:     os.Remove,
	}
}

// Warning is one startup check that did not pass.
type Warning struct {
	Subject string
	Detail  string
}

// Run checks that each tool is on PATH and each directory is writable,
// returning one warning per problem found.
func (c *Checker) Run(tools, dirs []string) []Warning {
	var warnings []Warning

	for _, tool := range tools {
		if _, err := c.lookPath(tool); err != nil {
			warnings = append(warnings, Warning{
				Subject: tool,
				Detail:  "not found in PATH",
			})
		}
	}

	for _, dir := range dirs {
		f, err := c.createTemp(dir, ".write-check-*")
		if err != nil {
			warnings = append(warnings, Warning{
				Subject: dir,
				Detail:  fmt.Sprintf("not writable: %v", err),
			})
			continue
		}
		name := f.Name()
		f.Close()
		c.remove(name)
	}

	return warnings
}
