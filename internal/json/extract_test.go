package json

import (
	"strings"
	"testing"
)

type testEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func TestStripCodeFenceWithLanguageTag(t *testing.T) {
	in := "```json\n{\"subject\":\"Hi\"}\n```"
	if got := StripCodeFence(in); got != `{"subject":"Hi"}` {
		t.Errorf("got %q", got)
	}
}

func TestStripCodeFenceBare(t *testing.T) {
	in := "```\n{\"subject\":\"Hi\"}\n```"
	if got := StripCodeFence(in); got != `{"subject":"Hi"}` {
		t.Errorf("got %q", got)
	}
}

func TestStripCodeFenceNoTrailingFence(t *testing.T) {
	in := "```json\n{\"subject\":\"Hi\"}"
	if got := StripCodeFence(in); got != `{"subject":"Hi"}` {
		t.Errorf("got %q", got)
	}
}

func TestStripCodeFenceSingleLine(t *testing.T) {
	in := "```json{\"subject\":\"Hi\"}```"
	if got := StripCodeFence(in); got != `{"subject":"Hi"}` {
		t.Errorf("got %q", got)
	}
}

func TestStripCodeFencePlainTextUntouched(t *testing.T) {
	in := "  just some text  "
	if got := StripCodeFence(in); got != "just some text" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeObjectPureJSON(t *testing.T) {
	got, err := DecodeObject[testEmail](`{"subject":"Hi","body":"<p>ok</p>"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subject != "Hi" || got.Body != "<p>ok</p>" {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeObjectFencedJSON(t *testing.T) {
	got, err := DecodeObject[testEmail]("```json\n{\"subject\":\"Hi\",\"body\":\"<p>ok</p>\"}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subject != "Hi" || got.Body != "<p>ok</p>" {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeObjectNotJSON(t *testing.T) {
	_, err := DecodeObject[testEmail]("Not JSON at all")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not a JSON object") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestDecodeObjectLongPreviewTruncated(t *testing.T) {
	_, err := DecodeObject[testEmail](strings.Repeat("x", 500))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "...") {
		t.Errorf("long input should be truncated in the error: %v", err)
	}
}
