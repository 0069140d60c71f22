package cluster

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mce-sre/cluster-generator/pkg/model"
	"gopkg.in/yaml.v3"
)

// MirrorStore resolves an OCP version to the image content sources descriptors
// of that version reference. Tables are loaded from <dir>/<version>.yaml on
// first use and cached for the process lifetime; they are immutable on disk so
// the cache never invalidates.
type MirrorStore struct {
	catalog Catalog
	dir     string

	mu    sync.Mutex
	cache map[string][]model.ImageContentSource
}

func NewMirrorStore(catalog Catalog, dir string) *MirrorStore {
	return &MirrorStore{
		catalog: catalog,
		dir:     dir,
		cache:   make(map[string][]model.ImageContentSource),
	}
}

type mirrorTable struct {
	ImageContentSources []model.ImageContentSource `yaml:"imageContentSources"`
}

// Lookup returns the ordered image content sources for version. Safe for
// concurrent use.
func (s *MirrorStore) Lookup(version string) ([]model.ImageContentSource, error) {
	if !s.catalog.HasVersion(version) {
		return nil, NewUnknownVersion(version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sources, ok := s.cache[version]; ok {
		return sources, nil
	}

	file := filepath.Join(s.dir, version+".yaml")
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read image content sources for version %s: %v", version, err)
	}

	var table mirrorTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse image content sources file %q: %v", file, err)
	}
	if len(table.ImageContentSources) == 0 {
		return nil, fmt.Errorf("image content sources file %q contains no entries", file)
	}

	s.cache[version] = table.ImageContentSources
	return table.ImageContentSources, nil
}
