package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	Population           int
	Width                int
	Height               int
	Nodes                int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation, population, width, height, nodes int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.Width, s.Height = width, height
	s.Nodes = nodes
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Density returns the share of materialized cells that are alive, in percent
func (s *Stats) Density() float64 {
	if s.Width == 0 || s.Height == 0 {
		return 0
	}
	return float64(s.Population) / float64(s.Width*s.Height) * 100
}
