package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawogi/luanti-go-proto/internal/mapdata"
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

func toClientTestCtx() wire.ProtocolContext {
	return wire.ProtocolContext{Direction: wire.ToClient, ProtocolVersion: wire.LatestProtocolVersion, SerFmt: wire.SerFmtHighestWrite}
}

func roundTripToClient(t *testing.T, cmd ToClientCommand) ToClientCommand {
	s := wire.NewSerializer(toClientTestCtx())
	require.NoError(t, EncodeToClientCommand(cmd, s))

	d := wire.NewDeserializer(toClientTestCtx(), s.Bytes())
	got, err := DecodeToClientCommand(d)
	require.NoError(t, err)
	require.Equal(t, cmd.Tag, got.Tag)
	return got
}

func TestToClientHelloRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagHello,
		Hello: HelloPayload{
			SerializationVer: wire.SerFmtHighestWrite,
			CompressionMode:  0,
			ProtoVer:         wire.LatestProtocolVersion,
			AuthMechs:        types.AuthMechsBitset(types.AuthMechFirstSRP),
			UsernameLegacy:   "",
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.Hello, got.Hello)
}

func TestToClientAuthAcceptRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagAuthAccept,
		AuthAccept: AuthAcceptPayload{
			PlayerPos:               types.V3F{X: 1, Y: 2, Z: 3},
			MapSeed:                 123456789,
			RecommendedSendInterval: 0.1,
			SudoAuthMethods:         uint32(types.AuthMechFirstSRP),
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.AuthAccept, got.AuthAccept)
}

func TestToClientAcceptSudoModeRoundTrip(t *testing.T) {
	got := roundTripToClient(t, ToClientCommand{Tag: TagAcceptSudoMode})
	require.Equal(t, TagAcceptSudoMode, got.Tag)
}

func TestToClientDenySudoModeRoundTrip(t *testing.T) {
	got := roundTripToClient(t, ToClientCommand{Tag: TagDenySudoMode})
	require.Equal(t, TagDenySudoMode, got.Tag)
}

func TestToClientAccessDeniedRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagAccessDenied,
		AccessDenied: AccessDeniedPayload{
			Code:      types.AccessDeniedCode{Kind: types.AccessDeniedTooManyUsers},
			Reason:    "server full",
			Reconnect: false,
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.AccessDenied.Code.Kind, got.AccessDenied.Code.Kind)
	require.Equal(t, cmd.AccessDenied.Reason, got.AccessDenied.Reason)
	require.Equal(t, cmd.AccessDenied.Reconnect, got.AccessDenied.Reconnect)
}

func TestToClientRemovenodeRoundTrip(t *testing.T) {
	cmd := ToClientCommand{Tag: TagRemovenode, Removenode: RemovenodePayload{Pos: mapdata.MapNodePos{X: 1, Y: -2, Z: 3}}}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.Removenode, got.Removenode)
}

func TestToClientTimeOfDayRoundTrip(t *testing.T) {
	speed := float32(1.5)
	cmd := ToClientCommand{Tag: TagTimeOfDay, TimeOfDay: TimeOfDayPayload{TimeOfDay: 12000, TimeSpeed: &speed}}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.TimeOfDay.TimeOfDay, got.TimeOfDay.TimeOfDay)
	require.NotNil(t, got.TimeOfDay.TimeSpeed)
	require.Equal(t, speed, *got.TimeOfDay.TimeSpeed)
}

func TestToClientMediaPushRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagMediaPush,
		MediaPush: MediaPushPayload{
			RawHash:  "deadbeef",
			Filename: "texture.png",
			Cached:   true,
			Token:    7,
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.MediaPush, got.MediaPush)
}

func TestToClientChatMessageRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagTCChatMessage,
		TCChatMessage: TCChatMessagePayload{
			Version:     1,
			MessageType: 0,
			Sender:      "server",
			Message:     "welcome",
			Timestamp:   1700000000,
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.TCChatMessage, got.TCChatMessage)
}

func TestToClientHpRoundTrip(t *testing.T) {
	damage := true
	cmd := ToClientCommand{Tag: TagHp, Hp: HpPayload{Hp: 18, DamageEffect: &damage}}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.Hp.Hp, got.Hp.Hp)
	require.NotNil(t, got.Hp.DamageEffect)
	require.Equal(t, damage, *got.Hp.DamageEffect)
}

func TestToClientMovePlayerRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagMovePlayer,
		MovePlayer: MovePlayerPayload{
			Pos:   types.V3F{X: 1, Y: 2, Z: 3},
			Pitch: 10,
			Yaw:   20,
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.MovePlayer, got.MovePlayer)
}

func TestToClientPrivilegesRoundTrip(t *testing.T) {
	cmd := ToClientCommand{Tag: TagPrivileges, Privileges: PrivilegesPayload{Privileges: []string{"interact", "shout"}}}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.Privileges, got.Privileges)
}

func TestToClientInventoryFormspecRoundTrip(t *testing.T) {
	cmd := ToClientCommand{Tag: TagInventoryFormspec, InventoryFormspec: InventoryFormspecPayload{Formspec: "size[8,9]"}}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.InventoryFormspec, got.InventoryFormspec)
}

func TestToClientMovementRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagMovement,
		Movement: MovementPayload{
			AccelerationDefault:  3,
			AccelerationAir:      2,
			AccelerationFast:     10,
			SpeedWalk:            4,
			SpeedCrouch:          1.35,
			SpeedFast:            20,
			SpeedClimb:           3,
			SpeedJump:            6.5,
			LiquidFluidity:       1,
			LiquidFluiditySmooth: 0.5,
			LiquidSink:           10,
			Gravity:              9.81,
		},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.Movement, got.Movement)
}

func TestToClientSetLightingRoundTrip(t *testing.T) {
	cmd := ToClientCommand{
		Tag: TagSetLighting,
		SetLighting: SetLightingPayload{Lighting: Lighting{
			ShadowIntensity: 0.33,
			Saturation:      1,
			Exposure: AutoExposure{
				LuminanceMin:       -3,
				LuminanceMax:       0.1,
				ExposureCorrection: 0,
				SpeedDarkBright:    1000,
				SpeedBrightDark:    1000,
				CenterWeightPower:  1.5,
			},
		}},
	}
	got := roundTripToClient(t, cmd)
	require.Equal(t, cmd.SetLighting, got.SetLighting)
}

func TestDecodeToClientCommandUnknownTagIsFatal(t *testing.T) {
	s := wire.NewSerializer(toClientTestCtx())
	s.WriteU16(0xF00D)
	d := wire.NewDeserializer(toClientTestCtx(), s.Bytes())
	_, err := DecodeToClientCommand(d)
	require.Error(t, err)
}
