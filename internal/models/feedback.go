package models

import "sort"

// FeedbackLines gathers the coaching lines of failed criteria, worst
// sub-score first; ties keep the input order. Rebuilding the list from
// criterion rows keeps stored reports and freshly computed ones identical.
func FeedbackLines(criteria []CriterionResult) []string {
	var failed []CriterionResult
	for _, c := range criteria {
		if c.Evaluable && !c.Passed && c.Feedback != "" {
			failed = append(failed, c)
		}
	}
	sort.SliceStable(failed, func(i, j int) bool { return *failed[i].SubScore < *failed[j].SubScore })

	lines := make([]string, 0, len(failed))
	for _, c := range failed {
		lines = append(lines, c.Feedback)
	}
	return lines
}
