package compilation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/specialistvlad/modgraph/internal/dependency"
)

// Warning is a non-fatal finding, such as a specifier that did not resolve.
type Warning struct {
	ModuleID   string
	Dependency dependency.ModuleDependency
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.ModuleID, w.Dependency, w.Message)
}

// Diagnostics collects errors and warnings from both phases. It is safe for
// concurrent use by render workers.
type Diagnostics struct {
	mu       sync.Mutex
	errs     []error
	warnings []Warning
}

func (d *Diagnostics) AddError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errs = append(d.errs, err)
}

func (d *Diagnostics) AddWarning(w Warning) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings = append(d.warnings, w)
}

// Errors returns a snapshot of the collected errors.
func (d *Diagnostics) Errors() []error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]error(nil), d.errs...)
}

// Warnings returns a snapshot of the collected warnings.
func (d *Diagnostics) Warnings() []Warning {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Warning(nil), d.warnings...)
}

// Err joins every collected error, or returns nil.
func (d *Diagnostics) Err() error {
	return errors.Join(d.Errors()...)
}
