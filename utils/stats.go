package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	LastStepTime         time.Duration
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. interval is the wall time since the previous
// generation and stepTime the time Advance took.
func (s *Stats) Update(population int, interval, stepTime time.Duration) {
	s.TotalGenerations++
	s.Population = population
	s.LastStepTime = stepTime
	if interval > 0 {
		s.GenerationsPerSecond = 1.0 / interval.Seconds()
	}

	// Exponential moving average, seeded with the first sample
	if s.TotalGenerations == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
