package arbor

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Sentinel errors attached to warning log entries. Scene and layout
// operations never return them; they are logged and the operation is skipped.
var (
	ErrObjectDestroyed = errors.New("arbor: object already destroyed")
	ErrChildHasParent  = errors.New("arbor: child already added, it can't be added again")
	ErrInvalidNumber   = errors.New("arbor: invalid number")
	ErrUnknownChild    = errors.New("arbor: internal error, should not remove unknown node from parent")
	ErrHierarchyCycle  = errors.New("arbor: reparenting would create a cycle")
	ErrSceneAccessor   = errors.New("arbor: accessor is not defined on the Scene, only on child nodes")
	ErrInvalidLookup   = errors.New("arbor: invalid lookup key")
)

// newLogger builds the director logger. Output defaults to stderr, matching
// the debug output of the rest of the framework.
func newLogger(level string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// nodeLog returns an entry scoped to the given node.
func (d *Director) nodeLog(n *Node) *logrus.Entry {
	e := d.log.WithField("component", "arbor")
	if n != nil {
		e = e.WithField("node", n.Name())
	}
	return e
}
