package model

import "testing"

func TestInteractionState_IsActive(t *testing.T) {
	tests := []struct {
		state    InteractionState
		expected bool
	}{
		{StateIdle, false},
		{StateDownloading, true},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("InteractionState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestInteractionState_AcceptsTap(t *testing.T) {
	if !StateIdle.AcceptsTap() {
		t.Error("Idle state should accept taps")
	}
	if StateDownloading.AcceptsTap() {
		t.Error("Downloading state should ignore taps")
	}
}

func TestInteractionState_String(t *testing.T) {
	tests := []struct {
		state    InteractionState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateDownloading, "Downloading"},
		{InteractionState(42), "Unknown"},
	}

	for _, test := range tests {
		if result := test.state.String(); result != test.expected {
			t.Errorf("InteractionState.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestInteractionState_ZeroValueIsIdle(t *testing.T) {
	var s InteractionState
	if s != StateIdle {
		t.Errorf("Expected zero value to be StateIdle, got %s", s)
	}
}
