package config

import (
	"sync"
)

// ErrorState tracks the process-wide settings health: whether the last
// validation pass found errors, whether a check is pending, and the
// one-shot suppression flag that keeps the handler's own writes from
// being reported as external damage.
//
// One instance is shared by every ConfigHandler in the process so the
// error signal is authoritative; tests construct their own via
// NewErrorState and inject it with WithErrorState.
type ErrorState struct {
	mu sync.Mutex

	hasError           bool
	errorCheckPending  bool
	skipNextErrorCheck bool
}

// NewErrorState creates an independent error state, initially OK.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// sharedState is the process-wide default instance.
var sharedState = NewErrorState()

// SharedErrorState returns the process-wide error state used by handlers
// that were not given an explicit one.
func SharedErrorState() *ErrorState {
	return sharedState
}

// HasError reports whether the settings are currently in the error state.
func (s *ErrorState) HasError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasError
}

// setError records the new state and reports whether it changed.
func (s *ErrorState) setError(hasError bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.hasError != hasError
	s.hasError = hasError
	return changed
}

// CheckPending reports whether a validation pass is owed.
func (s *ErrorState) CheckPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorCheckPending
}

// setCheckPending marks or clears the owed validation pass.
func (s *ErrorState) setCheckPending(pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorCheckPending = pending
}

// SkipNextErrorCheck arms the one-shot suppression: the next
// consumeSkip call returns true exactly once and disarms the flag.
func (s *ErrorState) SkipNextErrorCheck() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipNextErrorCheck = true
}

// consumeSkip disarms and reports the suppression flag atomically.
func (s *ErrorState) consumeSkip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	skip := s.skipNextErrorCheck
	s.skipNextErrorCheck = false
	return skip
}
