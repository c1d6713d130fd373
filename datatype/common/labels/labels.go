/*
	Package labels supports label-based volumes where each voxel holds a 32 or 64-bit
	segment id and 0 marks background.  It holds the neighborhood vote used when building
	lower-resolution pyramid levels as well as simple whole-volume passes (allow-list
	filtering, shaving, relabeling, recoloring) that run before or after downres.
*/
package labels

import (
	"fmt"
	"strings"
)

// Label is the set of voxel types that hold segment ids.
type Label interface {
	~uint32 | ~uint64
}

// VoteFunc collapses a 2x2 neighborhood, given in priority order (y,x), (y,x+1),
// (y+1,x), (y+1,x+1), into one representative label.
type VoteFunc[T Label] func(v00, v01, v10, v11 T) T

// Names of the available vote rules.
const (
	ConsensusVote = "consensus"
	LegacyVote    = "legacy"
)

// ResolveLabel4 returns the representative label for a 2x2 neighborhood.  The first
// nonzero label of v00, v01 is the initial candidate.  A later nonzero label replaces
// a background candidate, and replaces a non-background candidate only if it exactly
// matches one of the labels scanned before it.  Background is returned only when all
// four inputs are background.
func ResolveLabel4[T Label](v00, v01, v10, v11 T) T {
	value := v00
	if value == 0 {
		value = v01
	}
	if v10 != 0 {
		if value == 0 || v10 == v00 || v10 == v01 {
			value = v10
		}
	}
	if v11 != 0 {
		if value == 0 || v11 == v00 || v11 == v01 || v11 == v10 {
			value = v11
		}
	}
	return value
}

// ResolveLabel4Legacy is ResolveLabel4 as computed by older pyramid builds: when
// only v11 is nonzero, the v10 label (background) is kept instead of v11.  Use it to
// reproduce previously generated levels exactly.
func ResolveLabel4Legacy[T Label](v00, v01, v10, v11 T) T {
	value := v00
	if value == 0 {
		value = v01
	}
	if v10 != 0 {
		if value == 0 || v10 == v00 || v10 == v01 {
			value = v10
		}
	}
	if v11 != 0 {
		if value == 0 {
			value = v10
		} else if v11 == v00 || v11 == v01 || v11 == v10 {
			value = v11
		}
	}
	return value
}

// VoteRule returns the vote function with the given name.  An empty name selects the
// consensus rule.
func VoteRule[T Label](name string) (VoteFunc[T], error) {
	switch strings.ToLower(name) {
	case "", ConsensusVote:
		return ResolveLabel4[T], nil
	case LegacyVote:
		return ResolveLabel4Legacy[T], nil
	default:
		return nil, fmt.Errorf("unknown label vote rule %q, expected %q or %q", name, ConsensusVote, LegacyVote)
	}
}
