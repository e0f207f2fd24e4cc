package domain_models

import (
	"time"

	"github.com/google/uuid"
)

type WellnessKind string

const (
	KindMood   WellnessKind = "mood"
	KindSleep  WellnessKind = "sleep"
	KindStress WellnessKind = "stress"
)

const DefaultEnergyLevel = 5

var MoodLabels = []string{"contento", "cansado", "estresado", "triste", "tranquilo", "motivado"}

func IsMoodLabel(s string) bool {
	for _, label := range MoodLabels {
		if label == s {
			return true
		}
	}
	return false
}

// WellnessEntry is one of MoodEntry, SleepEntry or StressEntry.
type WellnessEntry interface {
	Kind() WellnessKind
	Meta() EntryMeta
}

// EntryMeta is shared by every wellness entry. EnergyLevel is recorded on
// all kinds.
type EntryMeta struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EnergyLevel int
	Notes       *string
	CreatedAt   time.Time
}

type MoodEntry struct {
	EntryMeta
	Mood string
}

// SleepEntry.HoursMissing is set for stored rows without hours; such
// entries are left out of sleep averages.
type SleepEntry struct {
	EntryMeta
	Hours        float64
	Quality      int
	HoursMissing bool
}

type StressEntry struct {
	EntryMeta
	Level int
}

func (MoodEntry) Kind() WellnessKind   { return KindMood }
func (SleepEntry) Kind() WellnessKind  { return KindSleep }
func (StressEntry) Kind() WellnessKind { return KindStress }

func (e MoodEntry) Meta() EntryMeta   { return e.EntryMeta }
func (e SleepEntry) Meta() EntryMeta  { return e.EntryMeta }
func (e StressEntry) Meta() EntryMeta { return e.EntryMeta }
