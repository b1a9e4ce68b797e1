// Package file loads state definitions from YAML, TOML or JSON documents.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/voie/pkg/adapters/memory"
	"github.com/aretw0/voie/pkg/domain"
)

// Format identifies a definition document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// StateDefinition is the serialized form of a state.
type StateDefinition struct {
	Name      string         `mapstructure:"name"`
	Parent    string         `mapstructure:"parent"`
	Path      string         `mapstructure:"path"`
	Params    map[string]any `mapstructure:"params"`
	Redirect  any            `mapstructure:"redirect"`
	Component string         `mapstructure:"component"`
}

// RedirectDefinition is the object form of a redirect.
type RedirectDefinition struct {
	Name   string         `mapstructure:"name"`
	Params map[string]any `mapstructure:"params"`
}

type document struct {
	States []StateDefinition `mapstructure:"states"`
}

// Loader implements ports.DefinitionLoader for a single definition file.
type Loader struct {
	path string
}

// NewLoader creates a loader for path. The format follows the extension
// (.yaml, .yml, .toml or .json).
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and decodes the file.
func (l *Loader) Load(ctx context.Context) ([]domain.StateSpec, error) {
	format, err := FormatFromPath(l.path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	specs, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return memory.NewLoader(specs...).Load(ctx)
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported definition file %q (want .yaml, .toml or .json)", path)
	}
}

// Parse decodes a definition document in file order.
func Parse(data []byte, format Format) ([]domain.StateSpec, error) {
	raw := make(map[string]any)
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	var doc document
	if err := decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}

	specs := make([]domain.StateSpec, 0, len(doc.States))
	for i, def := range doc.States {
		spec, err := def.Spec()
		if err != nil {
			return nil, fmt.Errorf("state #%d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Spec converts the definition into a StateSpec. The component name is kept
// as the opaque component marker.
func (d StateDefinition) Spec() (domain.StateSpec, error) {
	if d.Name == "" {
		return domain.StateSpec{}, &domain.InvalidStateError{Reason: "name is required"}
	}

	redirect, err := decodeRedirect(d.Redirect)
	if err != nil {
		return domain.StateSpec{}, &domain.InvalidStateError{Name: d.Name, Reason: "bad redirect", Err: err}
	}

	spec := domain.StateSpec{
		Name:     d.Name,
		Parent:   d.Parent,
		Path:     d.Path,
		Params:   domain.Params(d.Params),
		Redirect: redirect,
	}
	if d.Component != "" {
		spec.Component = d.Component
	}
	return spec, nil
}

// decodeRedirect accepts a state name or a {name, params} object.
func decodeRedirect(v any) (domain.Redirect, error) {
	switch r := v.(type) {
	case nil:
		return domain.NoRedirect(), nil
	case string:
		if r == "" {
			return domain.NoRedirect(), nil
		}
		return domain.RedirectTo(r), nil
	case map[string]any:
		var def RedirectDefinition
		if err := decode(r, &def); err != nil {
			return domain.Redirect{}, err
		}
		if def.Name == "" {
			return domain.Redirect{}, fmt.Errorf("redirect object requires a name")
		}
		if len(def.Params) == 0 {
			return domain.RedirectTo(def.Name), nil
		}
		return domain.RedirectWith(def.Name, domain.Params(def.Params)), nil
	default:
		return domain.Redirect{}, fmt.Errorf("unsupported redirect type %T", v)
	}
}

func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
