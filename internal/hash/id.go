// Package hash computes identifiers for config group names.
package hash

import "github.com/cespare/xxhash/v2"

// GroupID returns the xxHash64 of a config group name.
func GroupID(name string) uint64 {
	return xxhash.Sum64String(name)
}
