package models

// LoadingPattern describes how load changes across the sets of a protocol.
type LoadingPattern string

const (
	LoadingStraight   LoadingPattern = "straight"
	LoadingAscending  LoadingPattern = "ascending"
	LoadingDescending LoadingPattern = "descending"
	LoadingWave       LoadingPattern = "wave"
)

// ProtocolConfig is one set/rep/intensity/tempo/rest scheme from the
// protocol catalog. All per-set slices are aligned by index: entry i
// describes set number i+1. Reps determines the set count; the other
// per-set slices may be shorter, in which case the value for that set
// is simply absent.
type ProtocolConfig struct {
	ID          string `json:"id" yaml:"id"`
	Family      string `json:"family,omitempty" yaml:"family,omitempty"`
	VariantName string `json:"variant_name" yaml:"variant_name"`

	Reps []int `json:"reps" yaml:"reps"`
	// IntensityAdjustments are per-set offsets applied on top of the
	// session's base intensity (fractions of 1RM, may be negative).
	IntensityAdjustments []float64 `json:"intensity_adjustments" yaml:"intensity_adjustments"`
	RestBetweenSets      []int     `json:"rest_between_sets" yaml:"rest_between_sets"`
	RPE                  []float64 `json:"rpe,omitempty" yaml:"rpe,omitempty"`

	Tempo              string         `json:"tempo,omitempty" yaml:"tempo,omitempty"`
	LoadingPattern     LoadingPattern `json:"loading_pattern" yaml:"loading_pattern"`
	PreferredEquipment []Equipment    `json:"preferred_equipment,omitempty" yaml:"preferred_equipment,omitempty"`
	ExecutionNotes     string         `json:"execution_notes,omitempty" yaml:"execution_notes,omitempty"`
	Methodology        string         `json:"methodology,omitempty" yaml:"methodology,omitempty"`
}

// SetCount returns the number of sets the protocol prescribes.
func (p ProtocolConfig) SetCount() int {
	return len(p.Reps)
}

// PrefersEquipment reports whether the protocol names the given
// equipment in its preferred list.
func (p ProtocolConfig) PrefersEquipment(eq Equipment) bool {
	for _, pe := range p.PreferredEquipment {
		if pe == eq {
			return true
		}
	}
	return false
}
