package peer

import "github.com/kawogi/luanti-go-proto/internal/wire"

// SplitSender measures a command's serialized size and only fragments
// it across multiple Split bodies when it doesn't fit a single
// Original body (spec.md §4.5).
type SplitSender struct {
	nextSplitSeqnum uint16
}

// NewSplitSender creates a split sender with its group counter at zero.
func NewSplitSender() *SplitSender { return &SplitSender{} }

// Push takes an already-serialized command payload and returns the
// InnerBody(s) needed to transmit it: one Original if it fits, or a
// set of Split fragments sharing one split-seqnum otherwise.
func (s *SplitSender) Push(payload []byte) []wire.InnerBody {
	if len(payload) <= wire.MaxOriginalBodySize {
		return []wire.InnerBody{{
			Kind:     wire.InnerOriginal,
			Original: wire.OriginalBody{CommandPayload: payload},
		}}
	}
	seqnum := s.nextSplitSeqnum
	s.nextSplitSeqnum++
	chunkCount := (len(payload) + wire.MaxSplitBodySize - 1) / wire.MaxSplitBodySize
	bodies := make([]wire.InnerBody, 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		start := i * wire.MaxSplitBodySize
		end := start + wire.MaxSplitBodySize
		if end > len(payload) {
			end = len(payload)
		}
		bodies = append(bodies, wire.InnerBody{
			Kind: wire.InnerSplit,
			Split: wire.SplitBody{
				Seqnum:     seqnum,
				ChunkCount: uint16(chunkCount),
				ChunkNum:   uint16(i),
				ChunkData:  payload[start:end],
			},
		})
	}
	return bodies
}
