package searcher

import (
	"time"
)

// SearchMetrics describes one full tree search.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // interior states expanded
	Leaves    int64 // terminal states whose utilities were read
	MaxDepth  int   // deepest recursion reached, root at 0
}

type MetricsCollector interface {
	Start()
	AddNode(depth int)
	AddLeaf()
	Complete() SearchMetrics
}

// The search is a single synchronous recursion, so plain counters suffice.
type metricsCollector struct {
	startTime time.Time
	nodes     int64
	leaves    int64
	maxDepth  int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.leaves = 0
	m.maxDepth = 0
}

func (m *metricsCollector) AddNode(depth int) {
	m.nodes++
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		MaxDepth:  m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNode(depth int)       {}
func (m *noMetricsCollector) AddLeaf()                {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
