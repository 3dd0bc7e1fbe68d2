package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/chartlink/errs"
)

// FileProvider is a Provider backed by a YAML document mapping group names to
// option maps.
type FileProvider struct {
	path   string
	groups map[string]Group
}

var _ Provider = (*FileProvider)(nil)

// Parse parses a YAML configuration document.
func Parse(data []byte) (*FileProvider, error) {
	return parse("", data)
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errs.ErrConfigRead, path, err)
	}

	return parse(path, data)
}

func parse(path string, data []byte) (*FileProvider, error) {
	groups := make(map[string]Group)
	if err := yaml.Unmarshal(data, &groups); err != nil {
		if path == "" {
			return nil, fmt.Errorf("%w: %w", errs.ErrConfigParse, err)
		}

		return nil, fmt.Errorf("%w %q: %w", errs.ErrConfigParse, path, err)
	}

	return &FileProvider{path: path, groups: groups}, nil
}

// Group implements Provider.
func (p *FileProvider) Group(name string) (Group, bool) {
	g, ok := p.groups[name]
	return g, ok
}

// Names returns the group names in sorted order.
func (p *FileProvider) Names() []string {
	names := make([]string, 0, len(p.groups))
	for name := range p.groups {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Path returns the file the provider was loaded from, or "" if it was parsed
// from memory.
func (p *FileProvider) Path() string {
	return p.path
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Numeric scalars whose text does not survive a round trip through a number,
// such as the color 008000 or the grid step 1.0, keep their original text.
func (g *Group) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
		*g = nil
		return nil
	}
	if resolveAlias(value).Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: group must be a mapping", value.Line)
	}

	decoded, err := decodeNode(value)
	if err != nil {
		return err
	}
	m, _ := decoded.(map[string]any)
	*g = Group(m)

	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func decodeNode(n *yaml.Node) (any, error) {
	n = resolveAlias(n)

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return decodeNode(n.Content[0])
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}

func decodeMapping(n *yaml.Node) (map[string]any, error) {
	out := make(map[string]any, len(n.Content)/2)
	var merges []*yaml.Node

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: keys must be scalars", key.Line)
		}
		if key.ShortTag() == "!!merge" {
			merges = append(merges, val)
			continue
		}

		v, err := decodeNode(val)
		if err != nil {
			return nil, err
		}
		out[key.Value] = v
	}

	// Explicit keys win over merged ones; earlier merge sources win over later ones.
	for _, src := range merges {
		src = resolveAlias(src)
		sources := []*yaml.Node{src}
		if src.Kind == yaml.SequenceNode {
			sources = src.Content
		}

		for _, item := range sources {
			v, err := decodeNode(item)
			if err != nil {
				return nil, err
			}
			merged, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("line %d: merge value must be a mapping", item.Line)
			}
			for k, mv := range merged {
				if _, exists := out[k]; !exists {
					out[k] = mv
				}
			}
		}
	}

	return out, nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}

	switch n.ShortTag() {
	case "!!int":
		if i, ok := v.(int); ok && strconv.Itoa(i) == n.Value {
			return v, nil
		}

		return n.Value, nil
	case "!!float":
		if f, ok := v.(float64); ok && strconv.FormatFloat(f, 'f', -1, 64) == n.Value {
			return v, nil
		}

		return n.Value, nil
	default:
		return v, nil
	}
}
