package engine

import "fmt"

// UserError is returned by PlayerAction for a rejected action: state is left
// unmutated and the caller may retry with a corrected payload (spec.md §7).
type UserError struct {
	Code    string
	Message string
}

func (e *UserError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func userErr(code, format string, args ...any) *UserError {
	return &UserError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// RulesError indicates a bug in the rules document; fatal for the Game
// instance (spec.md §7).
type RulesError struct {
	Code    string
	Message string
}

func (e *RulesError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func rulesErr(code, format string, args ...any) *RulesError {
	return &RulesError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// EngineError is a fatal internal assertion failure; the caller should log
// and terminate the hand (spec.md §7).
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func engineErr(code, format string, args ...any) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf(format, args...)}
}
