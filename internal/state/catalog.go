package state

import "github.com/glfs/glfs-client/internal/api"

// Binding ties a rendered catalog entry to the snapshot it was rendered from.
type Binding struct {
	Path       string
	Generation uint64
}

// CatalogStore holds the last successful shader catalog snapshot. Every
// Replace starts a new generation; bindings from older generations no longer
// resolve.
type CatalogStore interface {
	Entries() []api.Shader
	Generation() uint64
	Replace([]api.Shader) uint64
	Bind(api.Shader) Binding
	Resolve(Binding) (api.Shader, bool)
}

type catalogStore struct {
	entries    []api.Shader
	generation uint64
}

func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

func (s *catalogStore) Entries() []api.Shader {
	return cloneShaders(s.entries)
}

func (s *catalogStore) Generation() uint64 {
	return s.generation
}

func (s *catalogStore) Replace(entries []api.Shader) uint64 {
	s.entries = cloneShaders(entries)
	s.generation++
	return s.generation
}

func (s *catalogStore) Bind(shader api.Shader) Binding {
	return Binding{Path: shader.Path, Generation: s.generation}
}

func (s *catalogStore) Resolve(b Binding) (api.Shader, bool) {
	return ResolveIn(s.entries, s.generation, b)
}

// ResolveIn looks up b within a snapshot taken at generation.
func ResolveIn(entries []api.Shader, generation uint64, b Binding) (api.Shader, bool) {
	if b.Generation == 0 || b.Generation != generation {
		return api.Shader{}, false
	}
	for _, entry := range entries {
		if entry.Path == b.Path {
			return entry, true
		}
	}
	return api.Shader{}, false
}

func cloneShaders(entries []api.Shader) []api.Shader {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]api.Shader, len(entries))
	copy(dup, entries)
	return dup
}
