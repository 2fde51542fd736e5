package yaml_adapter

type fileRoot struct {
	Context *string     `yaml:"context"`
	Entries []entryDoc  `yaml:"entries"`
	Module  *moduleDoc  `yaml:"module"`
	Resolve *resolveDoc `yaml:"resolve"`
	CSS     *cssDoc     `yaml:"css"`
}

type entryDoc struct {
	Name   string `yaml:"name"`
	Import string `yaml:"import"`
}

type moduleDoc struct {
	Rules  []ruleDoc  `yaml:"rules"`
	Parser *parserDoc `yaml:"parser"`
}

type ruleDoc struct {
	Test          string   `yaml:"test"`
	Resource      string   `yaml:"resource"`
	ResourceQuery string   `yaml:"resourceQuery"`
	Type          string   `yaml:"type"`
	Use           []useDoc `yaml:"use"`
}

type useDoc struct {
	Loader  string `yaml:"loader"`
	Options any    `yaml:"options"`
}

type parserDoc struct {
	DataURLCondition *struct {
		MaxSize *int `yaml:"maxSize"`
	} `yaml:"dataUrlCondition"`
}

type resolveDoc struct {
	Extensions []string `yaml:"extensions"`
}

type cssDoc struct {
	EmitJSStub bool `yaml:"emitJsStub"`
}
