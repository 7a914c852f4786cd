package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/liftplan/internal/calibration"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/models"
	"github.com/go-chi/chi/v5"
)

type generateRequest struct {
	UserID    string          `json:"user_id"`
	Goal      string          `json:"goal"`
	Intensity float64         `json:"intensity"`
	Criteria  engine.Criteria `json:"criteria"`
}

func (s *Server) handleGenerateSession(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
		return
	}
	if req.Intensity < 0 || req.Intensity > 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "intensity must be in [0,1]"})
		return
	}

	goal, known := models.NormalizeGoal(req.Goal)
	if !known {
		s.log.Warn("unknown goal in generation request", "goal", req.Goal)
	}

	lib, err := s.lib.Library(r.Context(), req.UserID)
	if err != nil {
		s.log.Error("loading library", "user", req.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	plan, err := s.planner.Generate(r.Context(), engine.Request{
		UserID:    req.UserID,
		Goal:      goal,
		Intensity: req.Intensity,
		Library:   lib,
		Criteria:  req.Criteria,
	})
	if err != nil {
		var compErr *engine.InsufficientCompoundError
		var isoErr *engine.InsufficientIsolationError
		switch {
		case errors.As(err, &compErr):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":          "insufficient_compound",
				"message":        compErr.Error(),
				"needed":         compErr.Needed,
				"available":      compErr.Available,
				"muscle_targets": compErr.MuscleTargets,
				"equipment":      compErr.Equipment,
			})
		case errors.As(err, &isoErr):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":          "insufficient_isolation",
				"message":        isoErr.Error(),
				"needed":         isoErr.Needed,
				"available":      isoErr.Available,
				"muscle_targets": isoErr.MuscleTargets,
				"equipment":      isoErr.Equipment,
			})
		default:
			s.log.Error("generation failed", "user", req.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Exercises())
}

func (s *Server) handleListProtocols(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Protocols())
}

func (s *Server) handleGetLibrary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	lib, err := s.lib.Library(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, lib)
}

func (s *Server) handleAddExercises(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var body struct {
		ExerciseIDs []string `json:"exercise_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	for _, id := range body.ExerciseIDs {
		if _, ok := s.catalog.Exercise(id); !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown exercise: " + id})
			return
		}
	}

	added, err := s.lib.AddExercises(r.Context(), userID, body.ExerciseIDs)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}

func (s *Server) handleUnstarExercise(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	exerciseID := chi.URLParam(r, "exerciseID")

	if err := s.lib.UnstarExercise(r.Context(), userID, exerciseID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStarProtocol(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var entry models.ProtocolLibraryEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if _, ok := s.catalog.Protocol(entry.ProtocolID); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown protocol: " + entry.ProtocolID})
		return
	}

	if err := s.lib.StarProtocol(r.Context(), userID, entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePatchProtocol(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	protocolID := chi.URLParam(r, "protocolID")

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.Enabled == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "enabled field is required"})
		return
	}

	if err := s.lib.SetProtocolEnabled(r.Context(), userID, protocolID, *body.Enabled); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePutCalibration(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	exerciseID := chi.URLParam(r, "exerciseID")

	if _, ok := s.catalog.Exercise(exerciseID); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown exercise: " + exerciseID})
		return
	}

	var rec calibration.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	rec.UserID = userID
	rec.ExerciseID = exerciseID
	rec.UpdatedAt = time.Now().UTC()

	if err := s.cal.PutCalibrationRecord(r.Context(), rec); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
