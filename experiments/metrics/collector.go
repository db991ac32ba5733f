package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Episodes     int
	Cutoff       int
	Exploration  float64
	Duration     time.Duration
	FullPlayouts int // Rollouts that ended in a knockout before the cutoff
	TreeSize     int
	RootVisits   int
}

type StepMetric struct {
	Step      int
	Action    string
	Health    int
	OppHealth int
	SearchMetric
}

type BoutMetric struct {
	Winner         string // "little_mac", "opponent" or "" when the step limit was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalSteps     int
	FinalHealth    int
	FinalOppHealth int
}

type AgentConfig struct {
	ID          int
	Episodes    int
	Cutoff      int
	Exploration float64
}

type Collector interface {
	Start(cutoff int, exploration float64)
	AddFullPlayout()
	AddEpisode()
	SetTree(size, rootVisits int)
	Complete() SearchMetric
}

type collector struct {
	cutoff       int
	exploration  float64
	startTime    time.Time
	completed    atomic.Int32
	fullPlayouts atomic.Int32
	treeSize     atomic.Int32
	rootVisits   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cutoff int, exploration float64) {
	m.startTime = time.Now()
	m.cutoff = cutoff
	m.exploration = exploration
	m.completed.Store(0)
	m.fullPlayouts.Store(0)
	m.treeSize.Store(0)
	m.rootVisits.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.completed.Add(1)
}

func (m *collector) SetTree(size, rootVisits int) {
	m.treeSize.Store(int32(size))
	m.rootVisits.Store(int32(rootVisits))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Episodes:     int(m.completed.Load()),
		Cutoff:       m.cutoff,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		FullPlayouts: int(m.fullPlayouts.Load()),
		TreeSize:     int(m.treeSize.Load()),
		RootVisits:   int(m.rootVisits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int, exploration float64) {}
func (m *dummyCollector) AddFullPlayout()                       {}
func (m *dummyCollector) AddEpisode()                           {}
func (m *dummyCollector) SetTree(size, rootVisits int)          {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
