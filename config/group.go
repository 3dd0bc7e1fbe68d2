package config

import (
	"fmt"
	"maps"

	"github.com/arloliu/chartlink/errs"
)

const (
	// ParentKey is the option naming a group's parent group.
	ParentKey = "group"

	// DefaultGroup is the group resolved when no name is given.
	DefaultGroup = "default"

	// MaxGroupDepth bounds the length of a parent chain.
	MaxGroupDepth = 64
)

// Group is a named set of chart options.
type Group map[string]any

// Clone returns a shallow copy of g.
func (g Group) Clone() Group {
	if g == nil {
		return Group{}
	}

	return maps.Clone(g)
}

// Parent returns the name of the parent group, if g has one.
func (g Group) Parent() (string, bool) {
	raw, ok := g[ParentKey]
	if !ok || raw == nil {
		return "", false
	}

	name := fmt.Sprint(raw)
	if name == "" {
		return "", false
	}

	return name, true
}

// Provider looks up configuration groups by name.
type Provider interface {
	// Group returns the group with the given name, unmerged.
	Group(name string) (Group, bool)
}

// MapProvider is a Provider backed by an in-memory map.
type MapProvider map[string]Group

var _ Provider = MapProvider(nil)

// Group implements Provider.
func (p MapProvider) Group(name string) (Group, bool) {
	g, ok := p[name]
	return g, ok
}

// Merge resolves the named group and all its ancestors into a single group.
//
// Keys of a group take precedence over the same keys of its ancestors. The
// parent key itself is removed from the result. An unknown group resolves to an
// empty group, and a chain stops quietly at the first unknown parent.
//
// Returns errs.ErrConfigCycle if the chain visits a group twice or is longer
// than MaxGroupDepth.
func Merge(p Provider, name string) (Group, error) {
	if name == "" {
		name = DefaultGroup
	}

	merged := Group{}
	visited := make(map[string]struct{}, 4)
	next, hasNext := name, true

	for hasNext {
		if _, seen := visited[next]; seen {
			return nil, fmt.Errorf("%w: group %q is its own ancestor", errs.ErrConfigCycle, next)
		}

		group, ok := p.Group(next)
		if !ok {
			break
		}

		if len(visited) >= MaxGroupDepth {
			return nil, fmt.Errorf("%w: chain from %q exceeds %d groups", errs.ErrConfigCycle, name, MaxGroupDepth)
		}
		visited[next] = struct{}{}

		for k, v := range group {
			if k == ParentKey {
				continue
			}
			if _, exists := merged[k]; !exists {
				merged[k] = v
			}
		}

		next, hasNext = group.Parent()
	}

	return merged, nil
}
