package app

import (
	"os"
	"path/filepath"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/fsutil"
	"github.com/specialistvlad/modgraph/internal/hcl_adapter"
	"github.com/specialistvlad/modgraph/internal/yaml_adapter"
)

// LoaderForPath picks the configuration loader for path. A YAML file, or a
// directory holding YAML files and no HCL files, is read as YAML; everything
// else as HCL.
func LoaderForPath(path string) config.Loader {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		hclFiles, _ := fsutil.FindConfigFiles([]string{path}, ".hcl")
		yamlFiles, _ := fsutil.FindConfigFiles([]string{path}, yaml_adapter.Extensions...)
		if len(hclFiles) == 0 && len(yamlFiles) > 0 {
			return yaml_adapter.NewLoader()
		}
		return hcl_adapter.NewLoader()
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader()
	default:
		return hcl_adapter.NewLoader()
	}
}
