package module

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a render failure caused by an internal inconsistency
// rather than by user input.
var ErrInvariant = errors.New("module invariant violated")

// CompileError is a hard render failure with enough context to be reported
// as a diagnostic.
type CompileError struct {
	ModuleID   string
	URI        string
	SourceType SourceType
	Err        error
}

// NewCompileError wraps err with the identity of node. An err that already
// is a *CompileError is returned unchanged.
func NewCompileError(node *GraphModule, st SourceType, err error) *CompileError {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce
	}
	return &CompileError{
		ModuleID:   node.ID(),
		URI:        node.URI(),
		SourceType: st,
		Err:        err,
	}
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to render module %q (%s) as %s: %v", e.ModuleID, e.URI, e.SourceType, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
