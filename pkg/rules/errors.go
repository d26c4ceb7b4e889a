package rules

import "fmt"

// InvalidRulesError is returned by Parse/Validate whenever a rules document
// fails schema validation, declares an empty betting_structures set,
// references an undeclared subset, or whose betting_order is inconsistent
// with forced_bets (spec.md §4.3's failure mode list). It is treated as a
// defect in the rules document, never a user error.
type InvalidRulesError struct {
	Reason string
}

func (e *InvalidRulesError) Error() string {
	return fmt.Sprintf("rules: invalid rules document: %s", e.Reason)
}

func invalid(format string, args ...any) *InvalidRulesError {
	return &InvalidRulesError{Reason: fmt.Sprintf(format, args...)}
}
