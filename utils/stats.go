package utils

import "time"

// populationSmoothing is the weight of the newest sample in the moving average
const populationSmoothing = 0.1

// Stats tracks simulation throughput and population across generations
type Stats struct {
	StartTime            time.Time
	Generations          int
	GenerationsPerSecond float64
	Population           int
	AveragePopulation    float64
	Density              float64
	Restarts             int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. cells is the total number of cells in the universe.
func (s *Stats) Update(generation, population, cells int, frame time.Duration) {
	s.Generations = generation
	s.Population = population
	if frame > 0 {
		s.GenerationsPerSecond = 1.0 / frame.Seconds()
	}
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	} else {
		s.Density = 0
	}

	// Exponential moving average, seeded with the first sample
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*(1-populationSmoothing) + float64(population)*populationSmoothing
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
