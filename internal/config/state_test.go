package config

import "testing"

func TestErrorState_SetError(t *testing.T) {
	s := NewErrorState()

	if s.HasError() {
		t.Fatal("fresh state reports an error")
	}
	if !s.setError(true) {
		t.Error("OK to ERROR should report a change")
	}
	if s.setError(true) {
		t.Error("re-confirming ERROR should not report a change")
	}
	if !s.setError(false) {
		t.Error("ERROR to OK should report a change")
	}
	if s.HasError() {
		t.Error("HasError() = true after resolving")
	}
}

func TestErrorState_SkipIsOneShot(t *testing.T) {
	s := NewErrorState()

	if s.consumeSkip() {
		t.Fatal("unarmed skip flag consumed as armed")
	}
	s.SkipNextErrorCheck()
	s.SkipNextErrorCheck() // arming twice still suppresses once
	if !s.consumeSkip() {
		t.Fatal("armed skip flag not consumed")
	}
	if s.consumeSkip() {
		t.Error("skip flag survived consumption")
	}
}

func TestErrorState_CheckPending(t *testing.T) {
	s := NewErrorState()

	if s.CheckPending() {
		t.Fatal("fresh state owes a check")
	}
	s.setCheckPending(true)
	if !s.CheckPending() {
		t.Error("pending flag not set")
	}
	s.setCheckPending(false)
	if s.CheckPending() {
		t.Error("pending flag not cleared")
	}
}

func TestSharedErrorState(t *testing.T) {
	if SharedErrorState() != SharedErrorState() {
		t.Error("SharedErrorState is not a singleton")
	}
}
