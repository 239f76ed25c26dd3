// Package decay estimates how long a building block or door lasts once its
// tool cupboard is empty.
package decay

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

type Material struct {
	Name      string        `json:"name"`
	MaxHealth float64       `json:"max_health"`
	FullDecay time.Duration `json:"-"`
	Image     string        `json:"image"`
}

// FullDecayHours is the full-decay duration in hours, as served to clients.
func (m Material) FullDecayHours() float64 {
	return m.FullDecay.Hours()
}

var materials = []Material{
	{Name: "Twig", MaxHealth: 10, FullDecay: 1 * time.Hour, Image: "/static/resources/decay/twig.png"},
	{Name: "Wood", MaxHealth: 250, FullDecay: 3 * time.Hour, Image: "/static/resources/decay/wood.png"},
	{Name: "Stone", MaxHealth: 500, FullDecay: 5 * time.Hour, Image: "/static/resources/decay/stone.png"},
	{Name: "Sheet Metal", MaxHealth: 1000, FullDecay: 8 * time.Hour, Image: "/static/resources/decay/metal.png"},
	{Name: "Armored", MaxHealth: 2000, FullDecay: 12 * time.Hour, Image: "/static/resources/decay/armored.png"},
	{Name: "Wooden Door", MaxHealth: 200, FullDecay: 3 * time.Hour, Image: "/static/resources/decay/wooden_door.png"},
	{Name: "Sheet Metal Door", MaxHealth: 250, FullDecay: 8 * time.Hour, Image: "/static/resources/decay/metal_door.png"},
	{Name: "Garage Door", MaxHealth: 600, FullDecay: 8 * time.Hour, Image: "/static/resources/decay/garage_door.png"},
	{Name: "Armored Door", MaxHealth: 1000, FullDecay: 12 * time.Hour, Image: "/static/resources/decay/armored_door.png"},
}

// Materials returns the reference list in display order.
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}

type Estimate struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (e Estimate) String() string {
	return fmt.Sprintf("%dh %dm", e.Hours, e.Minutes)
}

// Duration returns the estimate as a time.Duration.
func (e Estimate) Duration() time.Duration {
	return time.Duration(e.Hours)*time.Hour + time.Duration(e.Minutes)*time.Minute
}

// Project estimates the time left until currentHealth decays to zero.
// currentHealth is expected in [0, m.MaxHealth]; Project does not clamp, see
// Clamp.
func Project(m Material, currentHealth float64) Estimate {
	remaining := currentHealth / m.MaxHealth * m.FullDecay.Hours()
	hours := math.Floor(remaining)
	minutes := math.Round((remaining - hours) * 60)
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return Estimate{Hours: int(hours), Minutes: int(minutes)}
}

// Clamp limits health to the range Project accepts for m.
func Clamp(m Material, health float64) float64 {
	if math.IsNaN(health) || health < 0 {
		return 0
	}
	return math.Min(health, m.MaxHealth)
}

// Find looks a material up by name: exact, then case-insensitive, then the
// closest name within a small edit distance.
func Find(name string) (Material, bool) {
	query := strings.TrimSpace(name)
	if query == "" {
		return Material{}, false
	}
	for _, m := range materials {
		if m.Name == query {
			return m, true
		}
	}
	lower := strings.ToLower(query)
	for _, m := range materials {
		if strings.ToLower(m.Name) == lower {
			return m, true
		}
	}

	best, bestDist := -1, 0
	for i, m := range materials {
		candidate := strings.ToLower(m.Name)
		dist := levenshtein.ComputeDistance(lower, candidate)
		if dist > distanceLimit(len(candidate)) {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return Material{}, false
	}
	return materials[best], true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
