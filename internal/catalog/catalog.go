// Package catalog loads the read-only exercise and protocol reference
// data. A Snapshot is immutable once loaded; refreshing means loading a
// new Snapshot and swapping the pointer, so concurrent readers never
// need locking.
package catalog

import (
	"fmt"
	"os"

	"github.com/claude/liftplan/internal/models"
	"gopkg.in/yaml.v3"
)

// Snapshot is an immutable view of both catalogs.
type Snapshot struct {
	exercises   []models.Exercise
	exerciseIdx map[string]int
	protocols   []models.ProtocolConfig
	protocolIdx map[string]int
}

type exerciseFile struct {
	Exercises []models.Exercise `yaml:"exercises"`
}

type protocolFile struct {
	Protocols []models.ProtocolConfig `yaml:"protocols"`
}

// Load reads both catalog files and validates them.
func Load(exercisesPath, protocolsPath string) (*Snapshot, error) {
	var ef exerciseFile
	if err := readYAML(exercisesPath, &ef); err != nil {
		return nil, fmt.Errorf("loading exercise catalog: %w", err)
	}
	var pf protocolFile
	if err := readYAML(protocolsPath, &pf); err != nil {
		return nil, fmt.Errorf("loading protocol catalog: %w", err)
	}
	return New(ef.Exercises, pf.Protocols)
}

// New builds a validated Snapshot from in-memory catalogs. Tests and
// the CLI use this directly.
func New(exercises []models.Exercise, protocols []models.ProtocolConfig) (*Snapshot, error) {
	s := &Snapshot{
		exercises:   exercises,
		exerciseIdx: make(map[string]int, len(exercises)),
		protocols:   protocols,
		protocolIdx: make(map[string]int, len(protocols)),
	}

	for i, ex := range exercises {
		if ex.ID == "" {
			return nil, fmt.Errorf("exercise at index %d has no id", i)
		}
		if _, dup := s.exerciseIdx[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		if _, known := models.NormalizeExperienceLevel(string(ex.ExperienceLevel)); !known {
			return nil, fmt.Errorf("exercise %q: unknown experience level %q", ex.ID, ex.ExperienceLevel)
		}
		s.exerciseIdx[ex.ID] = i
	}

	for i, p := range protocols {
		if p.ID == "" {
			return nil, fmt.Errorf("protocol at index %d has no id", i)
		}
		if _, dup := s.protocolIdx[p.ID]; dup {
			return nil, fmt.Errorf("duplicate protocol id %q", p.ID)
		}
		if len(p.Reps) == 0 {
			return nil, fmt.Errorf("protocol %q has no sets", p.ID)
		}
		if len(p.IntensityAdjustments) != len(p.Reps) {
			return nil, fmt.Errorf("protocol %q: %d intensity adjustments for %d sets",
				p.ID, len(p.IntensityAdjustments), len(p.Reps))
		}
		if len(p.RPE) != 0 && len(p.RPE) != len(p.Reps) {
			return nil, fmt.Errorf("protocol %q: %d RPE values for %d sets", p.ID, len(p.RPE), len(p.Reps))
		}
		s.protocolIdx[p.ID] = i
	}

	return s, nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Exercise looks up one exercise by id.
func (s *Snapshot) Exercise(id string) (models.Exercise, bool) {
	i, ok := s.exerciseIdx[id]
	if !ok {
		return models.Exercise{}, false
	}
	return s.exercises[i], true
}

// Exercises returns all exercises in catalog order. Callers must not
// mutate the returned slice.
func (s *Snapshot) Exercises() []models.Exercise {
	return s.exercises
}

// Protocol looks up one protocol by id.
func (s *Snapshot) Protocol(id string) (models.ProtocolConfig, bool) {
	i, ok := s.protocolIdx[id]
	if !ok {
		return models.ProtocolConfig{}, false
	}
	return s.protocols[i], true
}

// Protocols returns all protocols in catalog order. Callers must not
// mutate the returned slice.
func (s *Snapshot) Protocols() []models.ProtocolConfig {
	return s.protocols
}
