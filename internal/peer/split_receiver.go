package peer

import (
	"time"

	"github.com/kawogi/luanti-go-proto/internal/wire"
)

// SplitTimeout is how long a split-reassembly group waits for its next
// fragment before expiring (spec.md §4.5, §5).
const SplitTimeout = 30 * time.Second

type incomingBuffer struct {
	chunkCount uint16
	chunks     map[uint16][]byte
	deadline   time.Time
}

// SplitReceiver reassembles Split fragments sharing a split-seqnum into
// the original command buffer.
type SplitReceiver struct {
	groups map[uint16]*incomingBuffer
}

// NewSplitReceiver creates an empty split receiver.
func NewSplitReceiver() *SplitReceiver {
	return &SplitReceiver{groups: make(map[uint16]*incomingBuffer)}
}

// Push ingests one fragment. It returns the assembled buffer once every
// chunk index for its group has been seen, refreshing the group's
// deadline on each fragment (first-write-wins per chunk index).
func (r *SplitReceiver) Push(now time.Time, frag wire.SplitBody) ([]byte, error) {
	r.expireStale(now)
	if frag.ChunkNum >= frag.ChunkCount {
		return nil, wire.Errorf(wire.KindProtocol, "split_receiver", "chunk_num %d >= chunk_count %d", frag.ChunkNum, frag.ChunkCount)
	}
	g, ok := r.groups[frag.Seqnum]
	if !ok {
		g = &incomingBuffer{chunkCount: frag.ChunkCount, chunks: make(map[uint16][]byte)}
		r.groups[frag.Seqnum] = g
	} else if g.chunkCount != frag.ChunkCount {
		return nil, wire.Errorf(wire.KindProtocol, "split_receiver", "chunk_count mismatch for group %d: %d vs %d", frag.Seqnum, g.chunkCount, frag.ChunkCount)
	}
	g.deadline = now.Add(SplitTimeout)
	if _, exists := g.chunks[frag.ChunkNum]; !exists {
		g.chunks[frag.ChunkNum] = frag.ChunkData
	}
	if uint16(len(g.chunks)) < g.chunkCount {
		return nil, nil
	}
	delete(r.groups, frag.Seqnum)
	out := make([]byte, 0, estimateSize(g))
	for i := uint16(0); i < g.chunkCount; i++ {
		out = append(out, g.chunks[i]...)
	}
	return out, nil
}

func estimateSize(g *incomingBuffer) int {
	total := 0
	for _, c := range g.chunks {
		total += len(c)
	}
	return total
}

func (r *SplitReceiver) expireStale(now time.Time) {
	for seqnum, g := range r.groups {
		if now.After(g.deadline) && !g.deadline.IsZero() {
			delete(r.groups, seqnum)
		}
	}
}
