package engine

import (
	"testing"

	"github.com/claude/liftplan/internal/models"
)

var targetsProtocol = models.ProtocolConfig{
	ID:                   "pyramid_classic",
	Reps:                 []int{12, 10, 8, 6},
	IntensityAdjustments: []float64{-0.1, -0.05, 0, 0.05},
	RestBetweenSets:      []int{90, 120, 150},
	RPE:                  []float64{7, 7.5, 8, 8.5},
}

// TestTargetReps verifies 1-indexed set access with absent results
// outside the prescribed range.
func TestTargetReps(t *testing.T) {
	tests := []struct {
		setNumber int
		want      int
		wantOK    bool
	}{
		{1, 12, true},
		{4, 6, true},
		{0, 0, false},
		{5, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := TargetReps(targetsProtocol, tt.setNumber)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("TargetReps(set %d) = %d, %v; want %d, %v", tt.setNumber, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestIntensityAdjustment verifies per-set offsets by set number.
func TestIntensityAdjustment(t *testing.T) {
	if got, ok := IntensityAdjustment(targetsProtocol, 2); !ok || got != -0.05 {
		t.Errorf("IntensityAdjustment(set 2) = %v, %v", got, ok)
	}
	if _, ok := IntensityAdjustment(targetsProtocol, 5); ok {
		t.Error("IntensityAdjustment beyond prescribed sets should be absent")
	}
}

// TestRestTime verifies a rest sequence shorter than the rep sequence
// is valid data: the uncovered set simply has no prescribed rest.
func TestRestTime(t *testing.T) {
	if got, ok := RestTime(targetsProtocol, 3); !ok || got != 150 {
		t.Errorf("RestTime(set 3) = %v, %v", got, ok)
	}
	if _, ok := RestTime(targetsProtocol, 4); ok {
		t.Error("set 4 has no prescribed rest")
	}
}

// TestTargetRPE verifies optional RPE prescriptions.
func TestTargetRPE(t *testing.T) {
	if got, ok := TargetRPE(targetsProtocol, 4); !ok || got != 8.5 {
		t.Errorf("TargetRPE(set 4) = %v, %v", got, ok)
	}
	noRPE := models.ProtocolConfig{Reps: []int{8, 8, 8}}
	if _, ok := TargetRPE(noRPE, 1); ok {
		t.Error("protocol without RPE should return absent for every set")
	}
}
