package peer

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// TestSplitReceiverReassemblesAnyOrder covers spec.md §8 "Split
// reassembly": fragments delivered in any order reassemble correctly.
func TestSplitReceiverReassemblesAnyOrder(t *testing.T) {
	const chunkCount = 15
	original := make([]byte, 0, chunkCount*33)
	frags := make([]wire.SplitBody, chunkCount)
	for i := 0; i < chunkCount; i++ {
		chunk := bytes.Repeat([]byte{byte(i + 1)}, 33)
		original = append(original, chunk...)
		frags[i] = wire.SplitBody{Seqnum: 42, ChunkCount: chunkCount, ChunkNum: uint16(i), ChunkData: chunk}
	}
	rand.Shuffle(len(frags), func(i, j int) { frags[i], frags[j] = frags[j], frags[i] })

	r := NewSplitReceiver()
	now := time.Now()
	var assembled []byte
	for _, f := range frags {
		out, err := r.Push(now, f)
		require.NoError(t, err)
		if out != nil {
			assembled = out
		}
	}
	require.Equal(t, original, assembled)
}

func TestSplitReceiverDuplicateFragmentIgnored(t *testing.T) {
	r := NewSplitReceiver()
	now := time.Now()
	f := wire.SplitBody{Seqnum: 1, ChunkCount: 2, ChunkNum: 0, ChunkData: []byte("a")}
	out, err := r.Push(now, f)
	require.NoError(t, err)
	require.Nil(t, out)

	// Re-push the same chunk with different data; first write wins.
	dup := wire.SplitBody{Seqnum: 1, ChunkCount: 2, ChunkNum: 0, ChunkData: []byte("z")}
	out, err = r.Push(now, dup)
	require.NoError(t, err)
	require.Nil(t, out)

	final := wire.SplitBody{Seqnum: 1, ChunkCount: 2, ChunkNum: 1, ChunkData: []byte("b")}
	out, err = r.Push(now, final)
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), out)
}

func TestSplitReceiverRejectsChunkNumOverflow(t *testing.T) {
	r := NewSplitReceiver()
	_, err := r.Push(time.Now(), wire.SplitBody{Seqnum: 1, ChunkCount: 2, ChunkNum: 5})
	require.Error(t, err)
}
