package peer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// TestReliableReceiverShuffledInOrder covers spec.md §8 "Reliable
// in-order": a shuffled run of N reliable bodies must drain in
// seqnum order exactly once.
func TestReliableReceiverShuffledInOrder(t *testing.T) {
	const n = 500
	start := wire.SeqnumInitial

	bodies := make([]wire.ReliableBody, n)
	for i := 0; i < n; i++ {
		seqnum := uint16(start + i)
		bodies[i] = wire.ReliableBody{
			Seqnum: seqnum,
			Inner: wire.InnerBody{
				Kind:     wire.InnerOriginal,
				Original: wire.OriginalBody{CommandPayload: []byte{byte(i), byte(i >> 8)}},
			},
		}
	}
	rand.Shuffle(len(bodies), func(i, j int) { bodies[i], bodies[j] = bodies[j], bodies[i] })

	r := NewReliableReceiver()
	var drained []wire.InnerBody
	for _, b := range bodies {
		r.Push(b)
		for {
			inner, ok := r.Pop()
			if !ok {
				break
			}
			drained = append(drained, inner)
		}
	}

	require.Len(t, drained, n)
	for i, inner := range drained {
		require.Equal(t, byte(i), inner.Original.CommandPayload[0])
		require.Equal(t, byte(i>>8), inner.Original.CommandPayload[1])
	}
}

// TestReliableReceiverDropsDuplicates checks that re-pushing an
// already-delivered seqnum is a no-op.
func TestReliableReceiverDropsDuplicates(t *testing.T) {
	r := NewReliableReceiver()
	first := wire.ReliableBody{Seqnum: wire.SeqnumInitial, Inner: wire.InnerBody{Kind: wire.InnerOriginal}}
	r.Push(first)
	_, ok := r.Pop()
	require.True(t, ok)

	r.Push(first) // already delivered
	_, ok = r.Pop()
	require.False(t, ok)
}
