package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFailureWireShape(t *testing.T) {
	result := Failure(ErrRateLimited, "Rate limit exceeded. Please wait a moment and try again.")

	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	got := string(raw)

	if !strings.Contains(got, `"success":false`) {
		t.Errorf("failure must carry success:false: %s", got)
	}
	if !strings.Contains(got, `"error":"Rate limit`) {
		t.Errorf("failure must carry the message: %s", got)
	}
	// The classification kind is internal; the wire shape carries only the message.
	if strings.Contains(got, "rate_limited") || strings.Contains(got, "Kind") {
		t.Errorf("kind must not appear on the wire: %s", got)
	}
	if strings.Contains(got, "subject") || strings.Contains(got, "body") {
		t.Errorf("failure must omit content fields: %s", got)
	}
}

func TestNewEmailResultWireShape(t *testing.T) {
	raw, err := json.Marshal(NewEmailResult("Hi", "<p>ok</p>"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	got := string(raw)

	for _, want := range []string{`"success":true`, `"isNewEmail":true`, `"subject":"Hi"`, `"body":"<p>ok</p>"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("success must omit the error field: %s", got)
	}
}

func TestBodyResultWireShape(t *testing.T) {
	raw, err := json.Marshal(BodyResult("plain text"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	got := string(raw)

	if !strings.Contains(got, `"success":true`) || !strings.Contains(got, `"body":"plain text"`) {
		t.Errorf("unexpected shape: %s", got)
	}
	if strings.Contains(got, "isNewEmail") || strings.Contains(got, "subject") {
		t.Errorf("plain body must omit structured fields: %s", got)
	}
}
