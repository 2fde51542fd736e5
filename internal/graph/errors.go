package graph

import "errors"

var (
	// ErrDuplicateURI is returned when a node's uri is already in the graph.
	ErrDuplicateURI = errors.New("module uri already in graph")
	// ErrDuplicateID is returned when a node's id is already in the graph.
	ErrDuplicateID = errors.New("module id already in graph")
	// ErrModuleNotFound is returned when a resolution target is not in the graph.
	ErrModuleNotFound = errors.New("module not found in graph")
	// ErrSealed is returned by writes after Seal.
	ErrSealed = errors.New("module graph is sealed")
)
