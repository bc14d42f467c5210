package driven

import "context"

// Runner executes a shell command, used for the site build/deploy step.
type Runner interface {
	// Run executes command in dir and returns its combined output.
	// A non-zero exit status is an error; the context bounds execution.
	Run(ctx context.Context, dir, command string) (string, error)
}
