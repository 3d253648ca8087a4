package service

import (
	"math"
	"time"
)

const hoursPerNight = 24

// Nights returns the stay length in nights from the calendar dates of
// check-in and check-out. Both ends are normalized to UTC midnight first, so
// the count ignores time of day and stays exact across DST transitions, where
// a wall-clock span is not a whole multiple of 24 hours.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(math.Ceil(out.Sub(in).Hours() / hoursPerNight))
}

// ComputeTotal derives the flat charge for a stay: nights times the room's
// nightly price. Callers reject non-positive date ranges before invoking.
func ComputeTotal(pricePerNight float64, checkIn, checkOut time.Time) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}
