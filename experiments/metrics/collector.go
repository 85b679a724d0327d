package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	AlphaBeta  bool
	Duration   time.Duration
	Nodes      int // Positions visited below the root
	Leaves     int // Positions scored by the evaluator
	Cutoffs    int // Alpha-beta prunes
	Branches   int // Root candidates
}

type MoveMetric struct {
	Step   int
	Player string // Color
	Move   string
	Value  float64
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Color
	Winner         string // Color, "remise" for a draw, empty if unfinished
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, goroutines int, alphaBeta bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetBranches(n int)
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	alphaBeta  bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
	branches   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int, alphaBeta bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.alphaBeta = alphaBeta
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.branches.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetBranches(n int) {
	m.branches.Store(int32(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		AlphaBeta:  m.alphaBeta,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Branches:   int(m.branches.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int, alphaBeta bool) {}
func (m *dummyCollector) AddNode()                                    {}
func (m *dummyCollector) AddLeaf()                                    {}
func (m *dummyCollector) AddCutoff()                                  {}
func (m *dummyCollector) SetBranches(n int)                           {}
func (m *dummyCollector) Complete() SearchMetric                      { return SearchMetric{} }
