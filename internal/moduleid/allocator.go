package moduleid

import (
	"fmt"
	"sync"
)

// Allocator hands out ids for uris under a single project root.
type Allocator struct {
	root string

	mu    sync.Mutex
	byURI map[string]string
	taken map[string]string // id -> uri
}

// NewAllocator creates an allocator for ids relative to root.
func NewAllocator(root string) *Allocator {
	return &Allocator{
		root:  root,
		byURI: make(map[string]string),
		taken: make(map[string]string),
	}
}

// Assign returns the id for uri, computing it on first use. Later calls
// with the same uri return the same id. If the natural id is already held
// by another uri a numeric suffix is appended.
func (a *Allocator) Assign(uri string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if id, ok := a.byURI[uri]; ok {
		return id, nil
	}
	base, err := FromURI(a.root, uri)
	if err != nil {
		return "", err
	}
	id := base
	for n := 1; ; n++ {
		if _, clash := a.taken[id]; !clash {
			break
		}
		id = fmt.Sprintf("%s~%d", base, n)
	}
	a.byURI[uri] = id
	a.taken[id] = uri
	return id, nil
}
