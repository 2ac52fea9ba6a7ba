package arbor

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FrameStats holds per-tick measurements. Timings are only populated when
// the director runs in debug mode.
type FrameStats struct {
	Frame          uint64
	UpdateTime     time.Duration
	LateUpdateTime time.Duration
	WidgetTime     time.Duration
	SyncTime       time.Duration
	Aligned        int // widgets aligned this tick
	Tasks          int // deferred tasks drained this tick
	Nodes          int // nodes in the running scene
}

// Total returns the sum of the phase timings.
func (s FrameStats) Total() time.Duration {
	return s.UpdateTime + s.LateUpdateTime + s.WidgetTime + s.SyncTime
}

// logStats writes the tick stats at debug level.
func (d *Director) logStats(s FrameStats) {
	if !d.cfg.Debug {
		return
	}
	d.log.WithFields(logrus.Fields{
		"component": "arbor",
		"frame":     s.Frame,
		"update":    s.UpdateTime,
		"late":      s.LateUpdateTime,
		"widget":    s.WidgetTime,
		"sync":      s.SyncTime,
		"total":     s.Total(),
		"aligned":   s.Aligned,
		"tasks":     s.Tasks,
		"nodes":     s.Nodes,
	}).Debug("frame")
}

// debugMaxTreeDepth is the depth above which debug mode warns.
const debugMaxTreeDepth = 32

func (d *Director) checkTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		d.nodeLog(n).WithField("depth", depth).Warnf("tree depth exceeds %d", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the sibling count above which debug mode warns.
const debugMaxChildCount = 1000

func (d *Director) checkChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		d.nodeLog(n).WithField("children", len(n.children)).Warnf("child count exceeds %d", debugMaxChildCount)
	}
}

func countNodes(n *Node) int {
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}
