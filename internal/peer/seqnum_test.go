package peer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

func TestRelativeDistanceRange(t *testing.T) {
	// spec.md §8 "Sequence lift": delta must land in (-32768, +32768].
	for base := 0; base < 65536; base += 997 {
		for offset := -40000; offset <= 40000; offset += 4001 {
			seq := uint16(int64(base) + int64(offset))
			d := RelativeDistance(uint16(base), seq)
			require.True(t, d > -32768 && d <= 32768, "delta %d out of range for base %d, seq %d", d, base, seq)
		}
	}
}

func TestRelToAbsMonotoneAcrossWrap(t *testing.T) {
	// Five full 65536-cycles of consecutive wire seqnums must lift to a
	// 64-bit stream position that never moves backwards.
	base := uint64(wire.SeqnumInitial)
	prev := base
	for i := 0; i < 5*65536; i++ {
		seq := uint16(uint64(wire.SeqnumInitial) + uint64(i))
		abs := RelToAbs(prev, seq)
		require.Greater(t, abs, prev-1)
		prev = abs
	}
}
