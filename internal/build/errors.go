package build

import "fmt"

// GenerateError reports a wrapper that could not be produced. Nothing is
// compiled once one occurs: wrapper generation is a precondition of the
// whole build phase.
type GenerateError struct {
	Handler string
	Err     error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generating wrapper for %s: %v", e.Handler, e.Err)
}

func (e *GenerateError) Unwrap() error { return e.Err }

// CompileError reports a failed build command. Command is the literal line
// that failed so it can be re-run by hand.
type CompileError struct {
	Command string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("build command failed: %s: %v", e.Command, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// TestError reports a failed test command; later test targets are skipped.
type TestError struct {
	Command string
	Err     error
}

func (e *TestError) Error() string {
	return fmt.Sprintf("test command failed: %s: %v", e.Command, e.Err)
}

func (e *TestError) Unwrap() error { return e.Err }
