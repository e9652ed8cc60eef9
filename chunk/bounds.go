package chunk

import (
	"github.com/freadblangks/wowchunk/chunkio"
)

// bounds is a declared [min, max] element-count range. The zero value is
// unbounded. Shared by Array and the string blocks.
type bounds struct {
	min, max int
	declared bool
}

func declaredBounds(min, max int) bounds {
	chunkio.Ensure(min >= 0 && min <= max, "bounds [%v, %v] are not a valid range", min, max)
	return bounds{min: min, max: max, declared: true}
}

// check enforces the full range; for reads and initializers, where the count
// is final.
func (b bounds) check(n int) {
	if !b.declared {
		return
	}
	chunkio.Ensure(n >= b.min && n <= b.max, "element count %v outside declared bounds [%v, %v]", n, b.min, b.max)
}

// checkGrow enforces only the upper bound; growing toward a minimum not yet
// reached is legal.
func (b bounds) checkGrow(n int) {
	if !b.declared {
		return
	}
	chunkio.Ensure(n <= b.max, "element count %v above declared maximum %v", n, b.max)
}

// checkShrink enforces only the lower bound.
func (b bounds) checkShrink(n int) {
	if !b.declared {
		return
	}
	chunkio.Ensure(n >= b.min, "element count %v below declared minimum %v", n, b.min)
}
