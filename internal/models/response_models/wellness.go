package response_models

import (
	"time"

	"github.com/google/uuid"

	dm "vitatrack/internal/models/domain_models"
)

// WellnessEntryResponse flattens a wellness entry; Kind tells which of the
// optional fields are set.
type WellnessEntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Kind         dm.WellnessKind `json:"kind"`
	Mood         string          `json:"mood,omitempty"`
	EnergyLevel  int             `json:"energy_level"`
	SleepHours   *float64        `json:"sleep_hours,omitempty"`
	SleepQuality *int            `json:"sleep_quality,omitempty"`
	StressLevel  *int            `json:"stress_level,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewWellnessEntryResponse(entry dm.WellnessEntry) WellnessEntryResponse {
	meta := entry.Meta()
	out := WellnessEntryResponse{
		ID:          meta.ID,
		UserID:      meta.UserID,
		Kind:        entry.Kind(),
		EnergyLevel: meta.EnergyLevel,
		Notes:       meta.Notes,
		CreatedAt:   meta.CreatedAt,
	}
	switch e := entry.(type) {
	case dm.MoodEntry:
		out.Mood = e.Mood
	case dm.SleepEntry:
		quality := e.Quality
		out.SleepQuality = &quality
		if !e.HoursMissing {
			hours := e.Hours
			out.SleepHours = &hours
		}
	case dm.StressEntry:
		level := e.Level
		out.StressLevel = &level
	}
	return out
}

func NewWellnessEntryResponses(entries []dm.WellnessEntry) []WellnessEntryResponse {
	out := make([]WellnessEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewWellnessEntryResponse(e))
	}
	return out
}
