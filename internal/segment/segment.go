// Package segment turns a keypoint sequence into an ordered list of technique
// phases by running a declarative forward-only state machine. The machine and
// its thresholds come from the sport profile; this package only interprets
// them, so sports differ in data rather than code.
package segment

import (
	"fmt"

	"github.com/athlyze/athlyze/internal/metrics"
)

// Op compares a guard metric against its threshold.
type Op string

const (
	OpGTE Op = "gte"
	OpLTE Op = "lte"
)

// Guard is a phase entry condition: a metric predicate that must hold for
// MinHold consecutive frames before the transition commits. The commit is
// retroactive to the first frame of the qualifying run, so the phase begins
// where the motion began, not where the debounce ended.
type Guard struct {
	Metric    metrics.Spec `json:"metric"`
	Op        Op           `json:"op"`
	Threshold float64      `json:"threshold"`
	MinHold   int          `json:"min_hold"`
}

func (g Guard) holds(v float64) bool {
	switch g.Op {
	case OpGTE:
		return v >= g.Threshold
	case OpLTE:
		return v <= g.Threshold
	}
	return false
}

// PhaseSpec declares one phase of a sport in performance order.
type PhaseSpec struct {
	Name  string `json:"name"`
	Enter Guard  `json:"enter"`
}

// Phase is a classified frame range, inclusive on both ends.
type Phase struct {
	Name       string `json:"name"`
	StartFrame int    `json:"start_frame"`
	EndFrame   int    `json:"end_frame"`
}

// PhaseUnclassified labels frames when the machine never left its initial
// state. It is the only phase name a plan may not declare.
const PhaseUnclassified = "unclassified"

// Result is a segmentation outcome. Phases are contiguous, non-overlapping,
// ordered, and cover every frame. Incomplete reports that at least one
// declared phase never committed; analysis continues on the phases that did.
type Result struct {
	Phases     []Phase
	Incomplete bool
}

// Phase returns the committed phase with the given name.
func (r Result) Phase(name string) (Phase, bool) {
	for _, p := range r.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return Phase{}, false
}

// ValidatePlan checks a phase plan before it enters the registry: at least
// one phase, unique names, no reserved name, well-formed guard metrics.
func ValidatePlan(plan []PhaseSpec) error {
	if len(plan) == 0 {
		return fmt.Errorf("plan declares no phases")
	}
	seen := make(map[string]struct{}, len(plan))
	for _, ps := range plan {
		if ps.Name == "" {
			return fmt.Errorf("phase with empty name")
		}
		if ps.Name == PhaseUnclassified {
			return fmt.Errorf("phase name %q is reserved", PhaseUnclassified)
		}
		if _, dup := seen[ps.Name]; dup {
			return fmt.Errorf("duplicate phase %q", ps.Name)
		}
		seen[ps.Name] = struct{}{}
		if ps.Enter.Op != OpGTE && ps.Enter.Op != OpLTE {
			return fmt.Errorf("phase %q: unknown guard op %q", ps.Name, ps.Enter.Op)
		}
		if ps.Enter.MinHold < 0 {
			return fmt.Errorf("phase %q: negative min_hold", ps.Name)
		}
		if err := ps.Enter.Metric.Validate(); err != nil {
			return fmt.Errorf("phase %q: %w", ps.Name, err)
		}
	}
	return nil
}

// Segment runs the machine over the sequence held by the metric context.
//
// The machine starts before the first phase and walks forward only. Each
// phase's guard is consulted only after the previous phase has committed;
// earlier crossings of a later guard are ignored. The first committed phase
// is pinned to frame 0 (setup frames belong to it), and the phase active at
// the end of the sequence runs to the last frame. Frames where a guard
// metric has no sample break its debounce run: missing data never advances
// the machine.
func Segment(mctx *metrics.Context, plan []PhaseSpec) Result {
	n := len(mctx.Seq.Frames)
	if n == 0 {
		return Result{Incomplete: true}
	}

	commits := make([]int, 0, len(plan))
	searchFrom := 0
	for _, ps := range plan {
		commit, ok := findCommit(mctx, ps.Enter, searchFrom, n)
		if !ok {
			break
		}
		commits = append(commits, commit)
		searchFrom = commit + 1
	}

	if len(commits) == 0 {
		return Result{
			Phases:     []Phase{{Name: PhaseUnclassified, StartFrame: 0, EndFrame: n - 1}},
			Incomplete: true,
		}
	}

	phases := make([]Phase, 0, len(commits))
	for k, c := range commits {
		start := c
		if k == 0 {
			start = 0
		}
		end := n - 1
		if k+1 < len(commits) {
			end = commits[k+1] - 1
		}
		phases = append(phases, Phase{Name: plan[k].Name, StartFrame: start, EndFrame: end})
	}

	return Result{Phases: phases, Incomplete: len(commits) < len(plan)}
}

// findCommit scans [from, n) for the first run of MinHold consecutive frames
// where the guard holds, returning the run's first frame.
func findCommit(mctx *metrics.Context, g Guard, from, n int) (int, bool) {
	if from >= n {
		return 0, false
	}
	hold := g.MinHold
	if hold < 1 {
		hold = 1
	}

	series := mctx.EvaluateAll(g.Metric)
	values := make([]float64, n)
	present := make([]bool, n)
	for _, s := range series {
		values[s.Index] = s.Value
		present[s.Index] = true
	}

	run := 0
	for i := from; i < n; i++ {
		if present[i] && g.holds(values[i]) {
			run++
			if run >= hold {
				return i - hold + 1, true
			}
		} else {
			run = 0
		}
	}
	return 0, false
}
