package app

import (
	"github.com/specialistvlad/modgraph/internal/registry"
	"github.com/specialistvlad/modgraph/modules/asset"
	"github.com/specialistvlad/modgraph/modules/css"
	"github.com/specialistvlad/modgraph/modules/javascript"
)

// coreModules is the definitive list of all module kinds that are compiled
// into the modgraph binary.
var coreModules = []registry.Module{
	javascript.Kind{},
	css.Kind{},
	asset.Kind{},
}
