package core

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Identifier
	}{
		{"vanity url", "https://steamcommunity.com/id/gaben", Identifier{Kind: KindVanity, Value: "gaben", FromURL: true}},
		{"vanity url trailing slash", "https://steamcommunity.com/id/gaben/", Identifier{Kind: KindVanity, Value: "gaben", FromURL: true}},
		{"profiles url", "https://steamcommunity.com/profiles/76561197960287930", Identifier{Kind: KindNumericID, Value: "76561197960287930", FromURL: true}},
		{"url without scheme", "steamcommunity.com/profiles/76561197960287930/", Identifier{Kind: KindNumericID, Value: "76561197960287930", FromURL: true}},
		{"url with whitespace", "  https://steamcommunity.com/id/rustacean \n", Identifier{Kind: KindVanity, Value: "rustacean", FromURL: true}},
		{"numeric id", "76561197960287930", NumericID("76561197960287930")},
		{"numeric id trimmed", "\t76561197960287930  ", NumericID("76561197960287930")},
		{"vanity name", "gaben", Vanity("gaben")},
		{"vanity with digits", "gaben42", Vanity("gaben42")},
		{"empty input", "   ", Vanity("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.input)
			if err != nil {
				t.Fatalf("classify %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("classify %q = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidProfileURL(t *testing.T) {
	inputs := []string{
		"https://steamcommunity.com/groups/rust",
		"https://steamcommunity.com/id/",
		"https://steamcommunity.com/profiles",
		"https://steamcommunity.com/",
		"steamcommunity.com",
	}
	for _, in := range inputs {
		_, err := Classify(in)
		if err == nil {
			t.Fatalf("classify %q: expected error", in)
		}
		if !errors.Is(err, ErrInvalidProfileURL) {
			t.Fatalf("classify %q: expected invalid profile url, got %v", in, err)
		}
		if CodeOf(err) != CodeInvalidProfileURL {
			t.Fatalf("classify %q: code = %s", in, CodeOf(err))
		}
	}
}

func TestClassifyIDMarkerWinsOverProfiles(t *testing.T) {
	got, err := Classify("https://steamcommunity.com/profiles/id/someone")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if got.Kind != KindVanity || got.Value != "someone" {
		t.Fatalf("expected vanity someone, got %v", got)
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(nil) != "" {
		t.Fatal("expected empty code for nil")
	}
	if CodeOf(errors.New("boom")) != CodeTransport {
		t.Fatal("expected plain errors to map to transport")
	}
	wrapped := WrapError(CodeProfileNotFound, "no players", errors.New("empty"))
	if CodeOf(wrapped) != CodeProfileNotFound {
		t.Fatalf("code = %s", CodeOf(wrapped))
	}
	if !errors.Is(wrapped, ErrProfileNotFound) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(wrapped, ErrVanityNotFound) {
		t.Fatal("expected different codes not to match")
	}
}
