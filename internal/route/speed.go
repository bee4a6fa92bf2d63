package route

// Packed speed codes as stored in legacy save streams. Positive codes below
// 256 are FTL speeds, codes from 256 up carry the regular speed in bits 8..15.
const (
	CodeDefend   = 0
	CodeFix      = -1
	CodeBombed   = -2
	CodeExplored = -3

	maxFTLCode = 0xff
)

// DecodeSpeed splits a packed speed code into a mode and its two speeds.
// Unknown negative codes decode as Defend.
func DecodeSpeed(code int) (mode Mode, ftl, regular int) {
	switch {
	case code == CodeFix:
		return ModeFix, 0, 0
	case code == CodeBombed:
		return ModeBombed, 0, 0
	case code == CodeExplored:
		return ModeExplored, 0, 0
	case code <= CodeDefend:
		return ModeDefend, 0, 0
	case code <= maxFTLCode:
		return ModeTravel, code, 0
	default:
		return ModeTravel, 0, (code >> 8) & 0xff
	}
}

// FTLSpeedOf is the FTL speed carried by code; 0 for packed regular speeds.
func FTLSpeedOf(code int) int {
	_, ftl, _ := DecodeSpeed(code)
	return ftl
}

// RegularSpeedOf is the regular speed carried by code.
func RegularSpeedOf(code int) int {
	_, _, regular := DecodeSpeed(code)
	return regular
}

// SpeedCode packs the route's mode and speed. A single code cannot hold
// both speeds, so FTL wins when both are set.
func (r *Route) SpeedCode() int {
	switch r.Mode {
	case ModeDefend:
		return CodeDefend
	case ModeFix:
		return CodeFix
	case ModeBombed:
		return CodeBombed
	case ModeExplored:
		return CodeExplored
	}
	if r.FTLSpeed > 0 {
		return min(r.FTLSpeed, maxFTLCode)
	}
	if r.RegularSpeed > 0 {
		return (min(r.RegularSpeed, 0xff)) << 8
	}
	return CodeDefend
}

// ApplySpeedCode sets mode and speeds from a packed code.
func (r *Route) ApplySpeedCode(code int) {
	r.Mode, r.FTLSpeed, r.RegularSpeed = DecodeSpeed(code)
}
