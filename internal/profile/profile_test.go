package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/metrics"
	"github.com/athlyze/athlyze/internal/pose"
	"github.com/athlyze/athlyze/internal/profile"
	"github.com/athlyze/athlyze/internal/segment"
)

func validProfile() profile.Profile {
	return profile.Profile{
		Sport: "test_sport",
		Name:  "Test sport",
		Phases: []segment.PhaseSpec{
			{
				Name: "only",
				Enter: segment.Guard{
					Metric: metrics.Spec{
						Kind:   metrics.KindHorizontalSpeed,
						Points: []metrics.Point{metrics.Mid(pose.LeftHip, pose.RightHip)},
					},
					Op:        segment.OpGTE,
					Threshold: 1,
					MinHold:   1,
				},
			},
		},
		Criteria: []profile.Criterion{
			{
				ID:    "leg_extension",
				Name:  "Leg extension",
				Phase: "only",
				Metric: metrics.Spec{
					Kind: metrics.KindAngle,
					Points: []metrics.Point{
						metrics.P(pose.LeftHip), metrics.P(pose.LeftKnee), metrics.P(pose.LeftAnkle),
					},
				},
				Op:        profile.OpGTE,
				Agg:       metrics.AggMax,
				Threshold: 160,
				NoCredit:  120,
				Weight:    1,
				Feedback:  "Extend the leg fully.",
			},
		},
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*profile.Profile)
		wantErr string
	}{
		{
			name:   "valid profile passes",
			mutate: func(p *profile.Profile) {},
		},
		{
			name:    "empty sport",
			mutate:  func(p *profile.Profile) { p.Sport = "" },
			wantErr: "empty sport",
		},
		{
			name:    "no criteria",
			mutate:  func(p *profile.Profile) { p.Criteria = nil },
			wantErr: "no criteria",
		},
		{
			name: "duplicate criterion ids",
			mutate: func(p *profile.Profile) {
				p.Criteria = append(p.Criteria, p.Criteria[0])
			},
			wantErr: "duplicate criterion",
		},
		{
			name:    "criterion references unknown phase",
			mutate:  func(p *profile.Profile) { p.Criteria[0].Phase = "nowhere" },
			wantErr: "unknown phase",
		},
		{
			name:    "zero weight",
			mutate:  func(p *profile.Profile) { p.Criteria[0].Weight = 0 },
			wantErr: "weight",
		},
		{
			name:    "gte with no_credit above threshold",
			mutate:  func(p *profile.Profile) { p.Criteria[0].NoCredit = 170 },
			wantErr: "no_credit",
		},
		{
			name: "lte with no_credit below threshold",
			mutate: func(p *profile.Profile) {
				p.Criteria[0].Op = profile.OpLTE
				p.Criteria[0].Threshold = 120
				p.Criteria[0].NoCredit = 100
			},
			wantErr: "no_credit",
		},
		{
			name: "empty range",
			mutate: func(p *profile.Profile) {
				p.Criteria[0].Op = profile.OpRange
				p.Criteria[0].RangeLo = 100
				p.Criteria[0].RangeHi = 90
				p.Criteria[0].Margin = 10
			},
			wantErr: "range",
		},
		{
			name: "range without margin",
			mutate: func(p *profile.Profile) {
				p.Criteria[0].Op = profile.OpRange
				p.Criteria[0].RangeLo = 80
				p.Criteria[0].RangeHi = 100
				p.Criteria[0].Margin = 0
			},
			wantErr: "margin",
		},
		{
			name:    "unknown op",
			mutate:  func(p *profile.Profile) { p.Criteria[0].Op = "near" },
			wantErr: "unknown op",
		},
		{
			name:    "unknown aggregation",
			mutate:  func(p *profile.Profile) { p.Criteria[0].Agg = "median" },
			wantErr: "aggregation",
		},
		{
			name: "alternate kind mismatch",
			mutate: func(p *profile.Profile) {
				p.Criteria[0].Alternates = []metrics.Spec{
					{Kind: metrics.KindDistance, Points: []metrics.Point{metrics.P(pose.LeftWrist), metrics.P(pose.Nose)}},
				}
			},
			wantErr: "alternate kind",
		},
		{
			name:    "duplicate phase names",
			mutate:  func(p *profile.Profile) { p.Phases = append(p.Phases, p.Phases[0]) },
			wantErr: "duplicate phase",
		},
		{
			name: "reserved phase name",
			mutate: func(p *profile.Profile) {
				p.Phases[0].Name = segment.PhaseUnclassified
				p.Criteria[0].Phase = segment.PhaseUnclassified
			},
			wantErr: "reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfileCriterionLookup(t *testing.T) {
	p := validProfile()

	c, ok := p.Criterion("leg_extension")
	require.True(t, ok)
	assert.Equal(t, "Leg extension", c.Name)

	_, ok = p.Criterion("missing")
	assert.False(t, ok)
}

func TestNewRegistry_SeedsBuiltins(t *testing.T) {
	r, err := profile.NewRegistry()
	require.NoError(t, err)

	want := []string{
		profile.SportDiscus,
		profile.SportHighJump,
		profile.SportJavelin,
		profile.SportLongJump,
		profile.SportShotPut,
		profile.SportSprintRunning,
		profile.SportSprintStart,
	}
	assert.Equal(t, want, r.Sports())

	list := r.List()
	require.Len(t, list, len(want))
	for i, p := range list {
		assert.Equal(t, want[i], p.Sport)
		assert.NoError(t, p.Validate(), "builtin %s", p.Sport)
		assert.NotEmpty(t, p.Criteria, "builtin %s", p.Sport)
		for _, c := range p.Criteria {
			assert.NotEmpty(t, c.Feedback, "criterion %s/%s", p.Sport, c.ID)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := profile.NewRegistry()
	require.NoError(t, err)

	p, ok := r.Get(profile.SportLongJump)
	require.True(t, ok)
	assert.Equal(t, profile.SportLongJump, p.Sport)
	require.Len(t, p.Phases, 4)
	assert.Equal(t, "approach", p.Phases[0].Name)
	assert.Equal(t, "landing", p.Phases[3].Name)

	_, ok = r.Get("curling")
	assert.False(t, ok)
}

func writeOverride(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadOverrides_AppliesPatch(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "long_jump.json", `{
		"sport": "long_jump",
		"criteria": [
			{"id": "takeoff_extension", "threshold": 170, "weight": 2},
			{"id": "takeoff_gaze", "feedback": "Chin up at the board."}
		],
		"phases": [
			{"name": "approach", "threshold": 2.0, "min_hold": 2}
		]
	}`)
	writeOverride(t, dir, "notes.txt", "ignored")

	r, err := profile.NewRegistry()
	require.NoError(t, err)

	applied, err := r.LoadOverrides(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	p, ok := r.Get(profile.SportLongJump)
	require.True(t, ok)

	c, ok := p.Criterion("takeoff_extension")
	require.True(t, ok)
	assert.Equal(t, 170.0, c.Threshold)
	assert.Equal(t, 2.0, c.Weight)
	assert.Equal(t, 135.0, c.NoCredit, "unpatched field keeps builtin value")

	c, ok = p.Criterion("takeoff_gaze")
	require.True(t, ok)
	assert.Equal(t, "Chin up at the board.", c.Feedback)

	assert.Equal(t, 2.0, p.Phases[0].Enter.Threshold)
	assert.Equal(t, 2, p.Phases[0].Enter.MinHold)
}

func TestLoadOverrides_ExplicitZeroApplies(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "sprint.json", `{
		"sport": "sprint_running",
		"criteria": [{"id": "forward_lean", "no_credit": 0}]
	}`)

	r, err := profile.NewRegistry()
	require.NoError(t, err)

	_, err = r.LoadOverrides(dir)
	require.NoError(t, err)

	p, _ := r.Get(profile.SportSprintRunning)
	c, ok := p.Criterion("forward_lean")
	require.True(t, ok)
	assert.Equal(t, 0.0, c.NoCredit)
}

func TestLoadOverrides_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown sport",
			body:    `{"sport": "curling"}`,
			wantErr: "unknown sport",
		},
		{
			name:    "unknown criterion",
			body:    `{"sport": "javelin", "criteria": [{"id": "nope", "weight": 2}]}`,
			wantErr: "no criterion",
		},
		{
			name:    "unknown phase",
			body:    `{"sport": "javelin", "phases": [{"name": "nope", "min_hold": 2}]}`,
			wantErr: "no phase",
		},
		{
			name:    "patch breaks validation",
			body:    `{"sport": "javelin", "criteria": [{"id": "block_leg", "no_credit": 999}]}`,
			wantErr: "invalid",
		},
		{
			name:    "malformed json",
			body:    `{"sport": "javelin",`,
			wantErr: "parsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeOverride(t, dir, "patch.json", tt.body)

			r, err := profile.NewRegistry()
			require.NoError(t, err)

			_, err = r.LoadOverrides(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadOverrides_MissingDirectory(t *testing.T) {
	r, err := profile.NewRegistry()
	require.NoError(t, err)

	_, err = r.LoadOverrides(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
