package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Children   int // Successors of the searched position
	Nodes      int // Positions visited, leaves included
	Leaves     int // Static evaluations
	Cutoffs    int // Alpha-beta cuts
}

type MoveMetric struct {
	Step int
	Side string
	Hash uint64 // Position after the move
	SearchMetric
}

type GameMetric struct {
	StartingSide string
	Winner       string // "" when stopped without a winner
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Dwarves      int // Dwarves left at the end
	Trolls       int // Trolls left at the end
}

type Collector interface {
	Start(depth, goroutines, children int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	children   int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines, children int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.children = children
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
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

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Children:   m.children,
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines, children int) {}
func (m *dummyCollector) AddNode()                             {}
func (m *dummyCollector) AddLeaf()                             {}
func (m *dummyCollector) AddCutoff()                           {}
func (m *dummyCollector) Complete() SearchMetric               { return SearchMetric{} }
