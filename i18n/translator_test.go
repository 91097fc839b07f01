package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("type", map[string]string{"type": "string"}); msg != "must be string" {
		t.Fatalf("expected interpolated english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "is required" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := ForLanguage("en").Message("x-custom", nil); msg != "x-custom" {
		t.Fatalf("expected code fallback, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "UPPER:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("minimum", nil); msg != "UPPER:minimum" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("minimum", map[string]string{"limit": "3"}); msg != "must be >= 3" {
		t.Fatalf("expected default translator after reset, got %q", msg)
	}
}
