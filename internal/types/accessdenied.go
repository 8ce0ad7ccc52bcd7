package types

import "github.com/kawogi/luanti-go-proto/internal/wire"

// AccessDeniedKind tags the AccessDeniedCode variant
// (original_source/luanti-protocol/src/commands/server_to_client/access_denied.rs).
type AccessDeniedKind uint8

const (
	AccessDeniedWrongPassword AccessDeniedKind = iota
	AccessDeniedUnexpectedData
	AccessDeniedSingleplayer
	AccessDeniedWrongVersion
	AccessDeniedWrongCharsInName
	AccessDeniedWrongName
	AccessDeniedTooManyUsers
	AccessDeniedEmptyPassword
	AccessDeniedAlreadyConnected
	AccessDeniedServerFail
	AccessDeniedCustomString
	AccessDeniedShutdown
	AccessDeniedCrash
)

// AccessDeniedCode is the tagged union AccessDenied carries; unknown
// wire tags decode as CustomString, matching the original's fallback.
type AccessDeniedCode struct {
	Kind      AccessDeniedKind
	Message   string // CustomString/Shutdown/Crash
	Reconnect bool   // Shutdown/Crash
}

func EncodeAccessDeniedCode(v AccessDeniedCode, s *wire.Serializer) error {
	switch v.Kind {
	case AccessDeniedWrongPassword, AccessDeniedUnexpectedData, AccessDeniedSingleplayer,
		AccessDeniedWrongVersion, AccessDeniedWrongCharsInName, AccessDeniedWrongName,
		AccessDeniedTooManyUsers, AccessDeniedEmptyPassword, AccessDeniedAlreadyConnected,
		AccessDeniedServerFail:
		s.WriteU8(uint8(v.Kind))
	case AccessDeniedCustomString:
		s.WriteU8(10)
		if err := wire.EncodeString(v.Message, s); err != nil {
			return err
		}
	case AccessDeniedShutdown:
		s.WriteU8(11)
		if err := wire.EncodeString(v.Message, s); err != nil {
			return err
		}
		s.WriteBool(v.Reconnect)
	case AccessDeniedCrash:
		s.WriteU8(12)
		if err := wire.EncodeString(v.Message, s); err != nil {
			return err
		}
		s.WriteBool(v.Reconnect)
	default:
		return wire.Errorf(wire.KindCodec, "access_denied_code", "unknown kind %d", v.Kind)
	}
	return nil
}

func DecodeAccessDeniedCode(d *wire.Deserializer) (AccessDeniedCode, error) {
	var v AccessDeniedCode
	tag, err := d.ReadU8()
	if err != nil {
		return v, err
	}
	switch tag {
	case 0, 1, 2, 3, 4, 5, 6, 7, 8, 9:
		v.Kind = AccessDeniedKind(tag)
	case 10:
		v.Kind = AccessDeniedCustomString
		if v.Message, err = wire.DecodeString(d); err != nil {
			return v, err
		}
	case 11:
		v.Kind = AccessDeniedShutdown
		if v.Message, err = wire.DecodeString(d); err != nil {
			return v, err
		}
		if v.Reconnect, err = d.ReadBool(); err != nil {
			return v, err
		}
	case 12:
		v.Kind = AccessDeniedCrash
		if v.Message, err = wire.DecodeString(d); err != nil {
			return v, err
		}
		if v.Reconnect, err = d.ReadBool(); err != nil {
			return v, err
		}
	default:
		// Unknown deny codes fall back to CustomString, per the original.
		v.Kind = AccessDeniedCustomString
		if v.Message, err = wire.DecodeString(d); err != nil {
			return v, err
		}
	}
	return v, nil
}

// DefaultMessage returns the human-readable default for codes whose
// carried message is empty, matching to_str()'s fallback text.
func (v AccessDeniedCode) DefaultMessage() string {
	switch v.Kind {
	case AccessDeniedWrongPassword:
		return "Invalid password"
	case AccessDeniedUnexpectedData:
		return "Your client sent something the server didn't expect.  Try reconnecting or updating your client."
	case AccessDeniedSingleplayer:
		return "The server is running in simple singleplayer mode.  You cannot connect."
	case AccessDeniedWrongVersion:
		return "Your client's version is not supported.\nPlease contact the server administrator."
	case AccessDeniedWrongCharsInName:
		return "Player name contains disallowed characters"
	case AccessDeniedWrongName:
		return "Player name not allowed"
	case AccessDeniedTooManyUsers:
		return "Too many users"
	case AccessDeniedEmptyPassword:
		return "Empty passwords are disallowed.  Set a password and try again."
	case AccessDeniedAlreadyConnected:
		return "Another client is connected with this name.  If your client closed unexpectedly, try again in a minute."
	case AccessDeniedServerFail:
		return "Internal server error"
	case AccessDeniedCustomString:
		if v.Message == "" {
			return "unknown"
		}
		return v.Message
	case AccessDeniedShutdown:
		if v.Message == "" {
			return "Server shutting down"
		}
		return v.Message
	case AccessDeniedCrash:
		if v.Message == "" {
			return "The server has experienced an internal error.  You will now be disconnected."
		}
		return v.Message
	default:
		return "unknown"
	}
}
