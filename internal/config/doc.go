// Package config defines the format-agnostic project configuration model
// (entries, module rules, parser and resolve options) along with the Loader
// interface that concrete formats implement.
//
// `config.Options` is the single source of truth for the `compilation`
// package and for module kinds that read options during render. Concrete
// loaders, such as for HCL and YAML, are provided in separate packages.
package config
