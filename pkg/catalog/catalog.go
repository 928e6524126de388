// Package catalog is a read-only directory of known API services. It maps the
// display names attributed by the parser to stable service ids.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed services.yaml
var defaultServices []byte

var (
	ErrEmptyID     = errors.New("service id cannot be empty")
	ErrDuplicateID = errors.New("duplicate service id")
)

// Service describes one known API provider.
type Service struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	KeyName     string   `yaml:"keyName" json:"keyName"`
	Description string   `yaml:"description" json:"description"`
	Website     string   `yaml:"website" json:"website"`
	DocsURL     string   `yaml:"docsUrl,omitempty" json:"docsUrl,omitempty"`
	KeyURL      string   `yaml:"keyUrl,omitempty" json:"keyUrl,omitempty"`
	Category    string   `yaml:"category" json:"category"`
	Aliases     []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

type document struct {
	Services []Service `yaml:"services"`
}

// Catalog is an immutable, indexed list of services.
type Catalog struct {
	services []Service
	byID     map[string]int
	byName   map[string]int
	byKey    map[string]int
}

// Load parses a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse service catalog: %w", err)
	}

	c := &Catalog{
		services: doc.Services,
		byID:     make(map[string]int, len(doc.Services)),
		byName:   make(map[string]int, len(doc.Services)),
		byKey:    make(map[string]int, len(doc.Services)),
	}

	for i, s := range doc.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("service #%d: %w", i, ErrEmptyID)
		}
		if _, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		c.byID[s.ID] = i

		for _, name := range append([]string{s.Name}, s.Aliases...) {
			if name == "" {
				continue
			}
			// first definition wins
			if _, ok := c.byName[normalize(name)]; !ok {
				c.byName[normalize(name)] = i
			}
		}
		if s.KeyName != "" {
			c.byKey[strings.ToUpper(s.KeyName)] = i
		}
	}

	return c, nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the embedded catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := Load(defaultServices)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Services returns all services in catalog order.
func (c *Catalog) Services() []Service {
	return slices.Clone(c.services)
}

func (c *Catalog) ByID(id string) (Service, bool) {
	return c.lookup(c.byID, id)
}

// ByKeyName finds the service whose conventional variable name is keyName.
func (c *Catalog) ByKeyName(keyName string) (Service, bool) {
	return c.lookup(c.byKey, strings.ToUpper(strings.TrimSpace(keyName)))
}

// Resolve maps a display name or alias, ignoring case, to a service.
func (c *Catalog) Resolve(displayName string) (Service, bool) {
	return c.lookup(c.byName, normalize(displayName))
}

// ByCategory returns the services of one category in catalog order.
func (c *Catalog) ByCategory(category string) []Service {
	var result []Service
	for _, s := range c.services {
		if s.Category == category {
			result = append(result, s)
		}
	}
	return result
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	var categories []string
	for _, s := range c.services {
		if !slices.Contains(categories, s.Category) {
			categories = append(categories, s.Category)
		}
	}
	return categories
}

func (c *Catalog) lookup(index map[string]int, key string) (Service, bool) {
	i, ok := index[key]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
