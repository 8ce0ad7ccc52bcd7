package peer

// ChannelID is the ordinal in {0 Default, 1 Init, 2 Response}
// (spec.md §3 "ChannelId"). Ordering and reliable-sequence state are
// per-channel; there is no cross-channel ordering guarantee.
type ChannelID uint8

const (
	ChannelDefault  ChannelID = 0
	ChannelInit     ChannelID = 1
	ChannelResponse ChannelID = 2
)

func (c ChannelID) String() string {
	switch c {
	case ChannelDefault:
		return "Default"
	case ChannelInit:
		return "Init"
	case ChannelResponse:
		return "Response"
	default:
		return "Unknown"
	}
}
