package interpret

import (
	"testing"

	"github.com/manitmishra/ghostwriter/model"
)

func TestComposeFencedJSONBecomesNewEmail(t *testing.T) {
	raw := "```json\n{\"subject\":\"Hi\",\"body\":\"<p>ok</p>\"}\n```"
	got := Interpret(raw, model.ContextCompose)

	if !got.Success || !got.IsNewEmail {
		t.Fatalf("expected structured success, got %+v", got)
	}
	if got.Subject != "Hi" {
		t.Errorf("subject = %q, want %q", got.Subject, "Hi")
	}
	if got.Body != "<p>ok</p>" {
		t.Errorf("body = %q, want %q", got.Body, "<p>ok</p>")
	}
}

func TestComposeRawJSONBecomesNewEmail(t *testing.T) {
	got := Interpret(`{"subject":"Quick question","body":"<p>Hey</p>"}`, model.ContextCompose)
	if !got.IsNewEmail || got.Subject != "Quick question" {
		t.Fatalf("expected structured result, got %+v", got)
	}
}

func TestComposeNonJSONFallsBackToPlainBody(t *testing.T) {
	raw := "Not JSON at all"
	got := Interpret(raw, model.ContextCompose)

	if !got.Success {
		t.Fatal("fallback must still succeed")
	}
	if got.IsNewEmail {
		t.Error("fallback must not claim structured output")
	}
	if got.Body != raw {
		t.Errorf("body = %q, want the original raw text", got.Body)
	}
	if got.Subject != "" {
		t.Errorf("subject should be empty, got %q", got.Subject)
	}
}

// The fallback must carry the original text, not the trimmed or
// fence-stripped intermediate.
func TestComposeFallbackPreservesOriginalText(t *testing.T) {
	raw := "  \n```json\n{\"subject\":\"Hi\"}\n```\n"
	got := Interpret(raw, model.ContextCompose)

	if got.IsNewEmail {
		t.Fatal("object missing body must not be treated as structured")
	}
	if got.Body != raw {
		t.Errorf("body = %q, want the untouched original %q", got.Body, raw)
	}
}

func TestComposeMissingFieldsFallsBack(t *testing.T) {
	cases := []string{
		`{"subject":"Hi"}`,
		`{"body":"<p>ok</p>"}`,
		`{"subject":"","body":"<p>ok</p>"}`,
		`{"subject":"Hi","body":"   "}`,
		`{}`,
	}
	for _, raw := range cases {
		got := Interpret(raw, model.ContextCompose)
		if got.IsNewEmail {
			t.Errorf("%s: must fall back to plain body", raw)
		}
		if got.Body != raw {
			t.Errorf("%s: fallback body must be the original text", raw)
		}
	}
}

func TestReplyIsAlwaysPlainBody(t *testing.T) {
	// Even JSON-looking reply output stays a plain body.
	for _, raw := range []string{
		"<p>Thanks!</p>",
		`{"subject":"Hi","body":"<p>ok</p>"}`,
	} {
		got := Interpret(raw, model.ContextReply)
		if !got.Success || got.IsNewEmail {
			t.Errorf("%s: reply must be a plain body, got %+v", raw, got)
		}
		if got.Body != raw {
			t.Errorf("%s: reply body must be unchanged", raw)
		}
		if got.Subject != "" {
			t.Errorf("%s: reply must not carry a subject", raw)
		}
	}
}

func TestInterpretNeverFails(t *testing.T) {
	for _, raw := range []string{"", "   ", "```", "```json\n```", "[1,2,3]", `"just a string"`} {
		got := Interpret(raw, model.ContextCompose)
		if !got.Success {
			t.Errorf("%q: interpretation must never produce a failure", raw)
		}
	}
}
