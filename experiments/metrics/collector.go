package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm    string
	Duration     time.Duration
	Episodes     int // Simulations, annealing samples or searched nodes
	Cutoff       int // Rollout cap or search depth
	FullPlayouts int // Rollouts that reached a finished game
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingStrategy string
	Winner           int // Player ID, 0 on a draw
	Reason           string
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
	TotalMoves       int
}

type Collector interface {
	Start(algorithm string, cutoff int)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	algorithm    string
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, cutoff int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:    m.algorithm,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, cutoff int) {}
func (m *dummyCollector) AddFullPlayout()                    {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
