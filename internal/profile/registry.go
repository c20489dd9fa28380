package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/athlyze/athlyze/internal/segment"
)

// Registry holds the scoring profiles keyed by sport. It is built once at
// startup (builtins plus optional overrides) and read-only afterwards, so
// it is safe for concurrent use without locking.
type Registry struct {
	order    []string
	profiles map[string]Profile
}

// NewRegistry returns a registry seeded with the builtin profiles.
func NewRegistry() (*Registry, error) {
	r := &Registry{profiles: make(map[string]Profile)}
	for _, p := range builtins() {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("builtin profile %q: %w", p.Sport, err)
		}
		if _, dup := r.profiles[p.Sport]; dup {
			return nil, fmt.Errorf("builtin profile %q registered twice", p.Sport)
		}
		r.profiles[p.Sport] = p
		r.order = append(r.order, p.Sport)
	}
	sort.Strings(r.order)
	return r, nil
}

// Get returns the profile for a sport.
func (r *Registry) Get(sport string) (Profile, bool) {
	p, ok := r.profiles[sport]
	return p, ok
}

// Sports returns the supported sport identifiers in sorted order.
func (r *Registry) Sports() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// List returns all profiles in sport order.
func (r *Registry) List() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, sport := range r.order {
		out = append(out, r.profiles[sport])
	}
	return out
}

// Patch is a partial override for one sport's profile, loaded from a JSON
// file. Fields are pointers so that an absent key leaves the builtin value
// untouched while an explicit zero still applies.
type Patch struct {
	Sport    string           `json:"sport"`
	Criteria []CriterionPatch `json:"criteria,omitempty"`
	Phases   []PhasePatch     `json:"phases,omitempty"`
}

// CriterionPatch overrides scoring bounds of a single criterion.
type CriterionPatch struct {
	ID        string   `json:"id"`
	Threshold *float64 `json:"threshold,omitempty"`
	NoCredit  *float64 `json:"no_credit,omitempty"`
	RangeLo   *float64 `json:"range_lo,omitempty"`
	RangeHi   *float64 `json:"range_hi,omitempty"`
	Margin    *float64 `json:"margin,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Feedback  *string  `json:"feedback,omitempty"`
}

// PhasePatch overrides the entry guard of a single phase.
type PhasePatch struct {
	Name      string   `json:"name"`
	Threshold *float64 `json:"threshold,omitempty"`
	MinHold   *int     `json:"min_hold,omitempty"`
}

// LoadOverrides applies every *.json patch file found in dir, in file name
// order, and returns how many were applied. Patched profiles are
// re-validated so a bad override fails at startup rather than at scoring
// time.
func (r *Registry) LoadOverrides(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading override directory: %w", err)
	}

	applied := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return applied, fmt.Errorf("reading override %s: %w", entry.Name(), err)
		}
		var patch Patch
		if err := json.Unmarshal(data, &patch); err != nil {
			return applied, fmt.Errorf("parsing override %s: %w", entry.Name(), err)
		}
		if err := r.apply(patch); err != nil {
			return applied, fmt.Errorf("applying override %s: %w", entry.Name(), err)
		}
		applied++
	}
	return applied, nil
}

func (r *Registry) apply(patch Patch) error {
	stored, ok := r.profiles[patch.Sport]
	if !ok {
		return fmt.Errorf("unknown sport %q", patch.Sport)
	}

	// Patch a copy with its own slices so a failed validation leaves the
	// stored profile untouched.
	p := stored
	p.Criteria = append([]Criterion(nil), stored.Criteria...)
	p.Phases = append([]segment.PhaseSpec(nil), stored.Phases...)

	for _, cp := range patch.Criteria {
		idx := -1
		for i := range p.Criteria {
			if p.Criteria[i].ID == cp.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("sport %q has no criterion %q", patch.Sport, cp.ID)
		}
		c := &p.Criteria[idx]
		if cp.Threshold != nil {
			c.Threshold = *cp.Threshold
		}
		if cp.NoCredit != nil {
			c.NoCredit = *cp.NoCredit
		}
		if cp.RangeLo != nil {
			c.RangeLo = *cp.RangeLo
		}
		if cp.RangeHi != nil {
			c.RangeHi = *cp.RangeHi
		}
		if cp.Margin != nil {
			c.Margin = *cp.Margin
		}
		if cp.Weight != nil {
			c.Weight = *cp.Weight
		}
		if cp.Feedback != nil {
			c.Feedback = *cp.Feedback
		}
	}

	for _, pp := range patch.Phases {
		idx := -1
		for i := range p.Phases {
			if p.Phases[i].Name == pp.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("sport %q has no phase %q", patch.Sport, pp.Name)
		}
		g := &p.Phases[idx].Enter
		if pp.Threshold != nil {
			g.Threshold = *pp.Threshold
		}
		if pp.MinHold != nil {
			g.MinHold = *pp.MinHold
		}
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("patched profile invalid: %w", err)
	}
	r.profiles[patch.Sport] = p
	return nil
}
