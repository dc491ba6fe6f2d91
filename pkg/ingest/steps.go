package ingest

import "construction-deepwiki-be/internal/constant"

// Step is one stage of the fake processing pipeline, with the progress
// fraction reported once the stage completes.
type Step struct {
	Name     string
	Progress float64
}

// Steps expands the fixed stage list into (name, completion fraction)
// pairs. The final step always reports 1.0.
func Steps() []Step {
	total := len(constant.ProcessingSteps)
	steps := make([]Step, 0, total)
	for i, name := range constant.ProcessingSteps {
		steps = append(steps, Step{
			Name:     name,
			Progress: float64(i+1) / float64(total),
		})
	}
	return steps
}
