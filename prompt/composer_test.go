package prompt

import (
	"strings"
	"testing"

	"github.com/manitmishra/ghostwriter/model"
)

// guidanceMarker returns a substring unique to each tone's built-in guidance.
func guidanceMarker(t Tone) string {
	switch t {
	case ToneRegular, ToneCustom:
		return "Write in a regular tone"
	case ToneProfessional:
		return "Write in a professional tone"
	case ToneFriendly:
		return "Write in a friendly tone"
	case ToneConfident:
		return "Write in a confident tone"
	case ToneBitcamp:
		return "Write in a Bitcamp sponsorship tone"
	default:
		return ""
	}
}

func TestSystemPromptContainsOnlyOwnGuidance(t *testing.T) {
	tones := []Tone{ToneRegular, ToneProfessional, ToneFriendly, ToneConfident, ToneBitcamp}
	for _, tone := range tones {
		got := BuildSystemPrompt(tone, model.ModePolish, model.ContextReply, "")
		if !strings.Contains(got, guidanceMarker(tone)) {
			t.Errorf("%s: system prompt missing its own guidance marker %q", tone, guidanceMarker(tone))
		}
		for _, other := range tones {
			if other == tone {
				continue
			}
			if strings.Contains(got, guidanceMarker(other)) {
				t.Errorf("%s: system prompt contains %s guidance", tone, other)
			}
		}
	}
}

func TestCustomToneEmptyPreferencesFallsBack(t *testing.T) {
	got := BuildSystemPrompt(ToneCustom, model.ModePolish, model.ContextReply, "")
	if !strings.Contains(got, guidanceMarker(ToneRegular)) {
		t.Error("empty custom preferences should fall back to the default tone guidance")
	}
}

func TestCustomToneOverridesGuidance(t *testing.T) {
	got := BuildSystemPrompt(ToneCustom, model.ModePolish, model.ContextReply, "Be terse.")
	if !strings.Contains(got, "Be terse.") {
		t.Error("custom preferences text missing from system prompt")
	}
	if strings.Contains(got, guidanceMarker(ToneRegular)) {
		t.Error("custom preferences should replace the default tone guidance entirely")
	}
	if !strings.Contains(got, "<tone_guidance>\nBe terse.\n</tone_guidance>") {
		t.Error("custom preferences should be wrapped in a tone_guidance block")
	}
}

func TestCustomToneWhitespacePreferencesFallsBack(t *testing.T) {
	got := BuildSystemPrompt(ToneCustom, model.ModePolish, model.ContextReply, "   \n\t")
	if !strings.Contains(got, guidanceMarker(ToneRegular)) {
		t.Error("whitespace-only custom preferences should fall back to the default guidance")
	}
}

func TestOutputFormatByContextType(t *testing.T) {
	for _, tone := range Tones() {
		reply := BuildSystemPrompt(tone, model.ModeGenerate, model.ContextReply, "")
		if !strings.Contains(reply, "Do NOT include a subject line") {
			t.Errorf("%s: reply prompt must forbid a subject line", tone)
		}
		if strings.Contains(reply, `{"subject"`) {
			t.Errorf("%s: reply prompt must not request structured JSON", tone)
		}

		compose := BuildSystemPrompt(tone, model.ModeGenerate, model.ContextCompose, "")
		if !strings.Contains(compose, "Return ONLY a raw JSON object") {
			t.Errorf("%s: compose prompt must request a raw JSON object", tone)
		}
		if !strings.Contains(compose, `{"subject": "Subject text here", "body": "<p>Email body HTML here</p>"}`) {
			t.Errorf("%s: compose prompt must show the two-field format", tone)
		}
	}
}

func TestTaskInstructionByMode(t *testing.T) {
	polish := BuildSystemPrompt(ToneRegular, model.ModePolish, model.ContextCompose, "")
	if !strings.Contains(polish, "Polish the user's draft") {
		t.Error("polish mode must instruct to polish the draft")
	}

	reply := BuildSystemPrompt(ToneRegular, model.ModeGenerate, model.ContextReply, "")
	if !strings.Contains(reply, "Generate a reply based on the email thread context") {
		t.Error("generate mode with reply context must instruct a contextual reply")
	}

	compose := BuildSystemPrompt(ToneRegular, model.ModeGenerate, model.ContextCompose, "")
	if !strings.Contains(compose, "Generate an email from the user's notes") {
		t.Error("generate mode with compose context must instruct writing from notes")
	}
}

func TestSectionOrderIsFixed(t *testing.T) {
	got := BuildSystemPrompt(ToneBitcamp, model.ModePolish, model.ContextCompose, "")

	markers := []string{
		"<role>",
		"<sender>",
		"<tone_guidance>",
		"<writing_style>",
		"<task>",
		"<output_format>",
		"<format>",
		"<completion_requirements>",
		"<examples>",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("system prompt missing section %q", marker)
		}
		if idx <= last {
			t.Errorf("section %q out of order", marker)
		}
		last = idx
	}

	// Examples carry the most recent-context weight and must come last.
	if end := strings.Index(got, "</examples>"); end < 0 || strings.TrimSpace(got[end+len("</examples>"):]) != "" {
		t.Error("examples block must be the final section")
	}
}

func TestSenderIdentityOnlyForBitcamp(t *testing.T) {
	if got := BuildSystemPrompt(ToneRegular, model.ModePolish, model.ContextReply, ""); strings.Contains(got, "<sender>") {
		t.Error("Regular tone must not include a sender identity block")
	}
	got := BuildSystemPrompt(ToneBitcamp, model.ModePolish, model.ContextReply, "")
	if !strings.Contains(got, "Manit Mishra") {
		t.Error("Bitcamp tone must include the sender identity block")
	}
}

func TestWritingStyleListSurvivesVerbatim(t *testing.T) {
	got := BuildSystemPrompt(ToneRegular, model.ModePolish, model.ContextReply, "")
	banned := []string{
		`"I hope this email finds you well"`,
		`"leverage," "utilize" (use "use" instead)`,
		`"Circle back," "Touch base," "Loop in"`,
	}
	for _, phrase := range banned {
		if !strings.Contains(got, phrase) {
			t.Errorf("banned-phrase list entry missing: %s", phrase)
		}
	}
}

func TestUserMessageThreadOrder(t *testing.T) {
	ctx := model.Context{
		Type: model.ContextReply,
		Messages: []model.ThreadMessage{
			{Sender: "A", Body: "m1"},
			{Sender: "B", Body: "m2"},
		},
	}
	got := BuildUserMessage("", ctx, model.ModeGenerate)

	fromA := strings.Index(got, "From A:")
	fromB := strings.Index(got, "From B:")
	if fromA < 0 || fromB < 0 {
		t.Fatalf("transcript labels missing:\n%s", got)
	}
	if fromA > fromB {
		t.Error("thread messages must appear in chronological order")
	}
	if !strings.Contains(got, "m1") || !strings.Contains(got, "m2") {
		t.Error("message bodies must appear verbatim")
	}
	if !strings.Contains(got, "---") {
		t.Error("transcript must end with a separator line")
	}
	if !strings.Contains(got, "Write a reply based on the thread above.") {
		t.Error("empty draft in generate mode must instruct a thread-based reply")
	}
}

func TestUserMessagePolishEmbedsDraft(t *testing.T) {
	got := BuildUserMessage("fix the thing", model.Context{Type: model.ContextCompose}, model.ModePolish)
	if !strings.Contains(got, "fix the thing") {
		t.Error("draft text must appear verbatim")
	}
	if !strings.Contains(got, "Polish this into a ready-to-send email.") {
		t.Error("polish mode must include the polish instruction")
	}
	if strings.Contains(got, "Email thread for context") {
		t.Error("compose context must not include a transcript header")
	}
}

func TestUserMessageNotesMode(t *testing.T) {
	got := BuildUserMessage("ask about invoice 42", model.Context{Type: model.ContextCompose}, model.ModeGenerate)
	if !strings.Contains(got, "Here's what I want to say:\nask about invoice 42") {
		t.Error("notes must appear verbatim under the notes header")
	}
	if !strings.Contains(got, "Write the email.") {
		t.Error("generate mode with notes must instruct writing the email")
	}
}

// End-to-end prompt scenario: polishing a draft for a brand new email.
func TestPolishComposeScenario(t *testing.T) {
	system := BuildSystemPrompt(ToneRegular, model.ModePolish, model.ContextCompose, "")
	user := BuildUserMessage("fix the thing", model.Context{Type: model.ContextCompose}, model.ModePolish)

	if !strings.Contains(user, "fix the thing") {
		t.Error("user message must contain the draft")
	}
	if !strings.Contains(user, "Polish this") {
		t.Error("user message must instruct polishing")
	}
	if !strings.Contains(system, "Return ONLY a raw JSON object") {
		t.Error("system prompt must request structured JSON for compose context")
	}
}
