// Package catalog holds the hero dataset shipped with herodex and the
// decoding of alternate dataset files.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/HerbHall/herodex/pkg/models"
)

//go:embed heroes.yaml
var heroesRawData []byte

// datasetFile is the top-level structure of a hero dataset YAML document.
type datasetFile struct {
	Heroes []models.Hero `yaml:"heroes"`
}

// Dataset provides lazy-loaded access to a hero dataset.
type Dataset struct {
	once   sync.Once
	raw    []byte
	source string
	heroes []models.Hero
	err    error
}

// NewDataset creates a Dataset backed by the embedded hero list. The YAML is
// parsed on first access.
func NewDataset() *Dataset {
	return &Dataset{raw: heroesRawData, source: "embedded"}
}

// LoadFile reads a hero dataset from disk. The file uses the same layout as
// the embedded dataset.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}
	return &Dataset{raw: data, source: path}, nil
}

// FromBytes creates a Dataset over raw YAML. Mostly useful in tests.
func FromBytes(data []byte) *Dataset {
	return &Dataset{raw: data, source: "bytes"}
}

// Source describes where the dataset came from ("embedded" or a file path).
func (d *Dataset) Source() string {
	return d.source
}

// Heroes returns a copy of all heroes in dataset order.
func (d *Dataset) Heroes() ([]models.Hero, error) {
	d.once.Do(d.load)
	if d.err != nil {
		return nil, d.err
	}
	cp := make([]models.Hero, len(d.heroes))
	copy(cp, d.heroes)
	return cp, nil
}

// normalize replaces missing lists with empty ones so they encode as [].
func normalize(h *models.Hero) {
	if h.Family == nil {
		h.Family = []string{}
	}
	if h.Abilities == nil {
		h.Abilities = []string{}
	}
	if h.NatureTypes == nil {
		h.NatureTypes = []string{}
	}
}

// load parses the raw YAML and checks hero ids are unique.
func (d *Dataset) load() {
	var f datasetFile
	if err := yaml.Unmarshal(d.raw, &f); err != nil {
		d.err = fmt.Errorf("catalog: parse yaml (%s): %w", d.source, err)
		return
	}

	seen := make(map[int]struct{}, len(f.Heroes))
	for i := range f.Heroes {
		id := f.Heroes[i].ID
		if _, dup := seen[id]; dup {
			d.err = fmt.Errorf("catalog: duplicate hero id %d (%s)", id, d.source)
			return
		}
		seen[id] = struct{}{}
		normalize(&f.Heroes[i])
	}
	d.heroes = f.Heroes
}
