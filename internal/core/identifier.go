package core

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// CommunityDomain marks an input as a Steam community profile URL.
const CommunityDomain = "steamcommunity.com"

type IdentifierKind int

const (
	KindVanity IdentifierKind = iota + 1
	KindNumericID
)

func (k IdentifierKind) String() string {
	switch k {
	case KindVanity:
		return "vanity"
	case KindNumericID:
		return "numeric_id"
	default:
		return "unknown"
	}
}

// Identifier is a classified player identifier. FromURL is set when the
// value was taken out of a community profile URL.
type Identifier struct {
	Kind    IdentifierKind
	Value   string
	FromURL bool
}

func Vanity(name string) Identifier {
	return Identifier{Kind: KindVanity, Value: name}
}

func NumericID(id string) Identifier {
	return Identifier{Kind: KindNumericID, Value: id}
}

func (id Identifier) String() string {
	return fmt.Sprintf("%s(%s)", id.Kind, id.Value)
}

// Classify decides which identifier shape input has. Every input yields
// exactly one Identifier or ErrInvalidProfileURL; an empty input is a vanity
// name and fails later at resolution.
func Classify(input string) (Identifier, error) {
	in := strings.TrimSpace(input)

	if strings.Contains(in, CommunityDomain) {
		return classifyProfileURL(in)
	}
	if isInteger(in) {
		return NumericID(in), nil
	}
	return Vanity(in), nil
}

func classifyProfileURL(raw string) (Identifier, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Identifier{}, WrapError(CodeInvalidProfileURL, "invalid steam profile url", err)
	}

	segments := strings.Split(u.Path, "/")
	kind := KindVanity
	at := slices.Index(segments, "id")
	if at < 0 {
		kind = KindNumericID
		at = slices.Index(segments, "profiles")
	}
	if at < 0 || at+1 >= len(segments) || segments[at+1] == "" {
		return Identifier{}, NewError(CodeInvalidProfileURL, fmt.Sprintf("invalid steam profile url %q", raw))
	}
	return Identifier{Kind: kind, Value: segments[at+1], FromURL: true}, nil
}

func isInteger(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
