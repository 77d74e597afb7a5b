package models

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/n0madic/go-playground/internal/types"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var (
	// ErrUnknownProvider is returned when the catalog has no entry for a provider.
	ErrUnknownProvider = errors.New("provider not in catalog")
	// ErrInvalidCatalog wraps catalog decoding and validation failures.
	ErrInvalidCatalog = errors.New("invalid model catalog")
)

// ProviderEntry groups the models and invocation parameters of one provider.
type ProviderEntry struct {
	Provider             types.Provider              `json:"provider" yaml:"provider"`
	Models               []string                    `json:"models" yaml:"models"`
	InvocationParameters []types.InvocationParameter `json:"invocationParameters" yaml:"invocation_parameters"`
}

// Catalog supplies invocation parameter definitions per model.
type Catalog struct {
	Providers []ProviderEntry `json:"providers" yaml:"providers"`
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
})

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path yields DefaultCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for _, entry := range c.Providers {
		if _, ok := types.ParseProvider(string(entry.Provider)); !ok {
			return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidCatalog, entry.Provider)
		}
		for _, p := range entry.InvocationParameters {
			if p.InvocationName == "" {
				return nil, fmt.Errorf("%w: %s parameter without invocation_name", ErrInvalidCatalog, entry.Provider)
			}
			if p.InvocationInputField != "" && !slices.Contains(types.InputFields(), p.InvocationInputField) {
				return nil, fmt.Errorf("%w: %s.%s has unknown input field %q",
					ErrInvalidCatalog, entry.Provider, p.InvocationName, p.InvocationInputField)
			}
		}
	}
	return &c, nil
}

// ProviderFor returns the provider a model belongs to: the provider listing
// it, or the one inferred from its name.
func (c *Catalog) ProviderFor(modelName string) types.Provider {
	for _, entry := range c.Providers {
		if slices.Contains(entry.Models, modelName) {
			return entry.Provider
		}
	}
	return ProviderFromModelName(modelName)
}

// Definitions returns the invocation parameter definitions for a model.
func (c *Catalog) Definitions(modelName string) (types.Provider, []types.InvocationParameter, error) {
	provider := c.ProviderFor(modelName)
	for _, entry := range c.Providers {
		if entry.Provider == provider {
			return provider, slices.Clone(entry.InvocationParameters), nil
		}
	}
	return provider, nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
}
