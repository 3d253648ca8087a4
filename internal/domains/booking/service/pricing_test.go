package service_test

import (
	"testing"
	"time"

	"lodge/internal/domains/booking/service"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "five full nights",
			checkIn:  date(2024, time.January, 15),
			checkOut: date(2024, time.January, 20),
			want:     5,
		},
		{
			name:     "single night",
			checkIn:  date(2024, time.January, 15),
			checkOut: date(2024, time.January, 16),
			want:     1,
		},
		{
			name:     "time of day is ignored",
			checkIn:  time.Date(2024, time.January, 15, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, time.January, 16, 16, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "crossing a month boundary",
			checkIn:  date(2024, time.January, 30),
			checkOut: date(2024, time.February, 2),
			want:     3,
		},
		{
			name:     "fall-back DST transition does not add a night",
			checkIn:  time.Date(2024, time.November, 1, 0, 0, 0, 0, time.FixedZone("EDT", -4*60*60)),
			checkOut: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.FixedZone("EST", -5*60*60)),
			want:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		checkIn  time.Time
		checkOut time.Time
		want     float64
	}{
		{
			name:     "nights times price",
			price:    100,
			checkIn:  date(2024, time.January, 15),
			checkOut: date(2024, time.January, 20),
			want:     500,
		},
		{
			name:     "suite rate",
			price:    350,
			checkIn:  date(2024, time.March, 1),
			checkOut: date(2024, time.March, 8),
			want:     2450,
		},
		{
			name:     "zero price room",
			price:    0,
			checkIn:  date(2024, time.January, 15),
			checkOut: date(2024, time.January, 20),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ComputeTotal(tt.price, tt.checkIn, tt.checkOut))
		})
	}
}
