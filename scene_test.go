package arbor

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewSceneDefaults(t *testing.T) {
	d, _ := newTestDirector(t)
	s := d.NewScene("main")
	assert.Equal(t, "main", s.Name())
	assert.Equal(t, Vec2{}, s.AnchorPoint())
	assert.Equal(t, Size{960, 640}, s.ContentSize())
	assert.False(t, s.ActiveInHierarchy())
	assert.False(t, s.Active())
}

func TestSceneActivatedByRunScene(t *testing.T) {
	d, _ := newTestDirector(t)
	s := d.NewScene("main")
	n := d.NewNode("n")
	s.AddChild(n)
	assert.False(t, n.ActiveInHierarchy())

	var flips []any
	s.On(EventActiveInHierarchyChanged, "t", func(e Event) { flips = append(flips, e.Detail) })
	d.RunScene(s)
	assert.True(t, s.Active())
	assert.True(t, s.ActiveInHierarchy())
	assert.True(t, n.ActiveInHierarchy())
	assert.Equal(t, []any{true}, flips)
}

func TestSceneSetActiveRejected(t *testing.T) {
	_, s, hook := newRunningScene(t)
	s.SetActive(false)
	assert.True(t, s.ActiveInHierarchy())
	assertWarned(t, hook, ErrSceneAccessor)
}

func TestSceneSetParentRejected(t *testing.T) {
	d, s, hook := newRunningScene(t)
	s.SetParent(d.NewNode("p"))
	assert.Nil(t, s.Parent())
	assertWarned(t, hook, ErrSceneAccessor)
}

func TestSceneAccessorsRejectedInEditorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EditorMode = true
	d, hook := newTestDirectorWith(t, cfg)
	s := d.NewScene("edit")
	d.RunScene(s)

	assert.False(t, s.Active())
	assert.False(t, s.ActiveInHierarchy())
	assert.Nil(t, s.AddComponent(&phaseRecorder{}))
	_, ok := GetComponent[*phaseRecorder](&s.Node)
	assert.False(t, ok)
	assert.Nil(t, GetComponents[*phaseRecorder](&s.Node))

	errs := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Data[logrus.ErrorKey] == ErrSceneAccessor {
			errs++
		}
	}
	assert.Equal(t, 5, errs)

	// Child nodes keep their accessors.
	n := d.NewNode("n")
	s.AddChild(n)
	assert.True(t, n.ActiveInHierarchy())
	assert.NotNil(t, n.AddComponent(&phaseRecorder{log: new([]string)}))
}

func TestSceneOwnComponentsActivatedByRunScene(t *testing.T) {
	d, _ := newTestDirector(t)
	s := d.NewScene("main")
	var log []string
	s.AddComponent(newRecorder(&log, "s"))
	assert.Empty(t, log)

	d.RunScene(s)
	assert.Equal(t, []string{"s:load", "s:enable"}, log)

	d.Tick(testDT)
	assert.Equal(t, []string{"s:load", "s:enable", "s:start", "s:update", "s:late"}, log)
}

func TestSceneNodeAccessorsRejected(t *testing.T) {
	d, s, hook := newRunningScene(t)
	p := d.NewNode("p")

	p.AddChild(&s.Node)
	assert.Nil(t, s.Parent())
	assert.Empty(t, p.Children())

	s.Node.SetParent(p)
	assert.Nil(t, s.Parent())

	s.Node.SetActive(false)
	assert.True(t, s.ActiveInHierarchy())
	assertWarned(t, hook, ErrSceneAccessor)
}
