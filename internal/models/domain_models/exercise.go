package domain_models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityRunning    ActivityType = "running"
	ActivityWalking    ActivityType = "walking"
	ActivityCycling    ActivityType = "cycling"
	ActivitySwimming   ActivityType = "swimming"
	ActivityFootball   ActivityType = "football"
	ActivityBasketball ActivityType = "basketball"
	ActivityYoga       ActivityType = "yoga"
	ActivityOther      ActivityType = "other"
)

type ExerciseLog struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	ActivityType    ActivityType `json:"activity_type"`
	DurationMinutes int          `json:"duration"`
	DistanceKm      *float64     `json:"distance,omitempty"`
	Calories        *int         `json:"calories,omitempty"`
	GPSTrack        *GPSTrack    `json:"gps_data,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// GPSTrack holds (longitude, latitude) pairs with a parallel elevation list.
type GPSTrack struct {
	Coordinates [][2]float64 `json:"coordinates"`
	Elevation   []float64    `json:"elevation"`
}

const earthRadiusKm = 6371.0

// DistanceKm sums the great circle distance between consecutive points.
func (g GPSTrack) DistanceKm() float64 {
	total := 0.0
	for i := 1; i < len(g.Coordinates); i++ {
		total += haversine(g.Coordinates[i-1], g.Coordinates[i])
	}
	return total
}

func haversine(a, b [2]float64) float64 {
	lon1, lat1 := a[0]*math.Pi/180, a[1]*math.Pi/180
	lon2, lat2 := b[0]*math.Pi/180, b[1]*math.Pi/180
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}
