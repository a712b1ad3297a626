package utils

import "time"

// Stats tracks performance and population over a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	MinPopulation        int
	MaxPopulation        int
	TotalGenerations     uint64
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now(), MinPopulation: -1}
}

// Update records one generation that took duration to compute
func (s *Stats) Update(generation uint64, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	if s.MinPopulation < 0 || population < s.MinPopulation {
		s.MinPopulation = population
	}
	s.MaxPopulation = max(s.MaxPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
