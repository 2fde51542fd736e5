package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks the options for problems that would make a build
// meaningless. All problems are reported together.
func (o *Options) Validate() error {
	var errs []error
	if o.Context == "" {
		errs = append(errs, errors.New("context is not set"))
	} else if !filepath.IsAbs(o.Context) {
		errs = append(errs, fmt.Errorf("context %q is not an absolute path", o.Context))
	}
	if len(o.Entries) == 0 {
		errs = append(errs, errors.New("at least one entry is required"))
	}
	seen := make(map[string]struct{}, len(o.Entries))
	for _, e := range o.Entries {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("entry for %q has no name", e.Import))
		}
		if e.Import == "" {
			errs = append(errs, fmt.Errorf("entry %q has no import", e.Name))
		}
		if _, dup := seen[e.Name]; dup {
			errs = append(errs, fmt.Errorf("entry %q is declared more than once", e.Name))
		}
		seen[e.Name] = struct{}{}
	}
	for _, ext := range o.Resolve.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("resolve extension %q must start with a dot", ext))
		}
	}
	return errors.Join(errs...)
}
