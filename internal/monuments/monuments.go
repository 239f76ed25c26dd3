package monuments

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Keycard string

const (
	Green Keycard = "green"
	Blue  Keycard = "blue"
	Red   Keycard = "red"
)

type Monument struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Keycards []Keycard `json:"keycards"`
	Fuse     bool      `json:"fuse"`
	Radsuit  bool      `json:"radsuit"`
}

// Requires reports whether the puzzle needs the given keycard.
func (m Monument) Requires(card Keycard) bool {
	for _, k := range m.Keycards {
		if k == card {
			return true
		}
	}
	return false
}

var monuments = []Monument{
	{ID: "water", Name: "Water Treatment Plant", Keycards: []Keycard{Blue}, Fuse: true, Radsuit: true},
	{ID: "power", Name: "Power Plant", Keycards: []Keycard{Green, Blue}, Fuse: true, Radsuit: true},
	{ID: "harbor", Name: "Harbor", Keycards: []Keycard{Green}, Fuse: true},
	{ID: "airfield", Name: "Airfield", Keycards: []Keycard{Blue}, Fuse: true, Radsuit: true},
	{ID: "junkyard", Name: "Junkyard", Keycards: []Keycard{Green}},
	{ID: "launch", Name: "Launch Site", Keycards: []Keycard{Red}, Fuse: true, Radsuit: true},
	{ID: "lighthouse", Name: "Lighthouse", Keycards: []Keycard{Green}},
	{ID: "tunel", Name: "Train Tunnel", Keycards: []Keycard{Green, Blue}, Fuse: true, Radsuit: true},
	{ID: "silo", Name: "Military Tunnel", Keycards: []Keycard{Blue}, Fuse: true, Radsuit: true},
	{ID: "satelite", Name: "Satellite Dish", Keycards: []Keycard{Green}, Fuse: true, Radsuit: true},
	{ID: "sewer", Name: "Sewer Branch", Keycards: []Keycard{Green}, Fuse: true, Radsuit: true},
	{ID: "train", Name: "Train Yard", Keycards: []Keycard{Blue}, Fuse: true, Radsuit: true},
}

func init() {
	for i := range monuments {
		monuments[i].Image = "/static/resources/monuments/" + monuments[i].ID + ".png"
	}
}

// clone copies m so callers cannot reach the shared table through Keycards.
func (m Monument) clone() Monument {
	m.Keycards = slices.Clone(m.Keycards)
	return m
}

func All() []Monument {
	out := make([]Monument, len(monuments))
	for i, m := range monuments {
		out[i] = m.clone()
	}
	return out
}

// Find matches query against ids and names, tolerating small typos.
func Find(query string) (Monument, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Monument{}, false
	}
	for _, m := range monuments {
		if m.ID == q || strings.ToLower(m.Name) == q {
			return m.clone(), true
		}
	}

	best, bestDist := -1, 0
	for i, m := range monuments {
		name := strings.ToLower(m.Name)
		dist := levenshtein.ComputeDistance(q, name)
		if dist > len(name)/4 {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Monument{}, false
	}
	return monuments[best].clone(), true
}

// RequiringKeycard lists the monuments whose puzzle uses card.
func RequiringKeycard(card Keycard) []Monument {
	var out []Monument
	for _, m := range monuments {
		if m.Requires(card) {
			out = append(out, m.clone())
		}
	}
	return out
}

// ParseKeycard accepts a keycard color in any case.
func ParseKeycard(s string) (Keycard, bool) {
	switch k := Keycard(strings.ToLower(strings.TrimSpace(s))); k {
	case Green, Blue, Red:
		return k, true
	}
	return "", false
}
