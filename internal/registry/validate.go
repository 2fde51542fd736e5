package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/modgraph/internal/ctxlog"
)

// Validate checks that every extension maps to a type with a factory.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for ext, typ := range r.extensions {
		if _, ok := r.factories[typ]; !ok {
			errs = append(errs, fmt.Sprintf("extension '%s' maps to module type '%s' which has no factory", ext, typ))
		}
	}
	if len(r.factories) == 0 {
		logger.Warn("No module kinds registered; every file will fail to load.")
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "types", len(r.factories), "extensions", len(r.extensions))
	return nil
}
