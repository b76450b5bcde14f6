// Package prompt builds the system and user prompts sent to the
// generation service.
//
// Each tone is a closed variant carrying its own bundle of instructional
// blocks. Tone selection can never fail: unrecognized identifiers resolve
// to the Regular tone.
package prompt

// Tone represents a supported writing-style persona.
type Tone int

const (
	// ToneRegular is professional but personable email writing (the default).
	ToneRegular Tone = iota
	// ToneProfessional is formal, polished business writing.
	ToneProfessional
	// ToneFriendly is warm and approachable writing.
	ToneFriendly
	// ToneConfident is assertive, direct writing.
	ToneConfident
	// ToneBitcamp is hackathon sponsorship outreach for Bitcamp organizers.
	ToneBitcamp
	// ToneCustom uses caller-supplied tone preferences in place of built-in
	// guidance; with no preferences it behaves like ToneRegular.
	ToneCustom
)

// String returns the tone identifier as stored in settings.
func (t Tone) String() string {
	switch t {
	case ToneRegular:
		return "Regular"
	case ToneProfessional:
		return "Professional"
	case ToneFriendly:
		return "Friendly"
	case ToneConfident:
		return "Confident"
	case ToneBitcamp:
		return "Bitcamp"
	case ToneCustom:
		return "Custom"
	default:
		return "Regular"
	}
}

// ParseTone resolves a tone identifier by exact match.
// Unrecognized identifiers resolve to ToneRegular; parsing never fails.
func ParseTone(s string) Tone {
	switch s {
	case "Regular":
		return ToneRegular
	case "Professional":
		return ToneProfessional
	case "Friendly":
		return ToneFriendly
	case "Confident":
		return ToneConfident
	case "Bitcamp":
		return ToneBitcamp
	case "Custom":
		return ToneCustom
	default:
		return ToneRegular
	}
}

// Tones returns all supported tones.
func Tones() []Tone {
	return []Tone{
		ToneRegular,
		ToneProfessional,
		ToneFriendly,
		ToneConfident,
		ToneBitcamp,
		ToneCustom,
	}
}

// Profile is a tone's bundle of prompt fragments. All fields except
// SenderIdentity are required; an empty SenderIdentity omits the block.
type Profile struct {
	Persona        string
	SenderIdentity string
	ToneGuidance   string
	WritingStyle   string
	TaskPolish     string
	TaskReply      string
	TaskCompose    string
	NoPlaceholders string
	Examples       string
}

// Profile returns the prompt fragment bundle for the tone.
// ToneCustom carries the Regular bundle; its guidance is overridden by the
// composer when custom preferences are present.
func (t Tone) Profile() Profile {
	switch t {
	case ToneRegular, ToneCustom:
		return regularProfile
	case ToneProfessional:
		return professionalProfile
	case ToneFriendly:
		return friendlyProfile
	case ToneConfident:
		return confidentProfile
	case ToneBitcamp:
		return bitcampProfile
	default:
		return regularProfile
	}
}
