// Package validation screens user-facing generation requests before they
// reach the engine. It reports every violation at once so a form or CLI can
// surface the full list, where the engine itself stops at the first.
package validation

import (
	"strings"

	"synthgen/internal/errors"
)

// Request carries the raw user inputs for one generation.
type Request struct {
	NumGroups          int
	SampleSizePerGroup int
	GroupPrefix        string
	FileName           string
}

// Check returns all violations in input order, or nil when the request is
// acceptable.
func Check(r Request) []string {
	var problems []string

	if r.NumGroups <= 0 {
		problems = append(problems, "Number of Groups must be greater than 0")
	}
	if r.SampleSizePerGroup <= 0 {
		problems = append(problems, "Sample Size Per Group must be greater than 0")
	}
	if strings.TrimSpace(r.GroupPrefix) == "" {
		problems = append(problems, "Group Label Prefix cannot be empty")
	}
	if strings.TrimSpace(r.FileName) == "" {
		problems = append(problems, "File Name cannot be empty")
	} else if !strings.HasSuffix(r.FileName, ".csv") {
		problems = append(problems, "File Name must end with .csv")
	}

	return problems
}

// Validate collapses Check into a single VALIDATION_ERROR.
func Validate(r Request) error {
	problems := Check(r)
	if len(problems) == 0 {
		return nil
	}
	return errors.ValidationError(strings.Join(problems, "; "))
}
