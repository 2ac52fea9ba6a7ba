package arbor

import (
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WrapMode controls what an animation state does when its time passes the
// clip duration.
type WrapMode uint8

const (
	WrapNormal   WrapMode = iota // play once and stop on the last frame
	WrapLoop                     // restart from the first frame
	WrapPingPong                 // alternate forward and backward
)

// AnimatedProperty names a node property a clip track drives.
type AnimatedProperty uint8

const (
	PropX AnimatedProperty = iota
	PropY
	PropRotation
	PropScaleX
	PropScaleY
	PropSkewX
	PropSkewY
	PropOpacity
	PropWidth
	PropHeight
	PropAnchorX
	PropAnchorY
)

var animatedPropertyNames = [...]string{
	PropX:        "x",
	PropY:        "y",
	PropRotation: "rotation",
	PropScaleX:   "scaleX",
	PropScaleY:   "scaleY",
	PropSkewX:    "skewX",
	PropSkewY:    "skewY",
	PropOpacity:  "opacity",
	PropWidth:    "width",
	PropHeight:   "height",
	PropAnchorX:  "anchorX",
	PropAnchorY:  "anchorY",
}

func (p AnimatedProperty) String() string {
	if int(p) < len(animatedPropertyNames) {
		return animatedPropertyNames[p]
	}
	return "unknown"
}

// apply writes v through the node's public setter so change events fire.
func (p AnimatedProperty) apply(n *Node, v float64) {
	switch p {
	case PropX:
		n.SetX(v)
	case PropY:
		n.SetY(v)
	case PropRotation:
		n.SetRotation(v)
	case PropScaleX:
		n.SetScaleX(v)
	case PropScaleY:
		n.SetScaleY(v)
	case PropSkewX:
		n.SetSkewX(v)
	case PropSkewY:
		n.SetSkewY(v)
	case PropOpacity:
		n.SetOpacity(uint8(math.Round(math.Max(0, math.Min(255, v)))))
	case PropWidth:
		n.SetWidth(v)
	case PropHeight:
		n.SetHeight(v)
	case PropAnchorX:
		n.SetAnchorX(v)
	case PropAnchorY:
		n.SetAnchorY(v)
	}
}

// Keyframe is a value at a point in clip time. Ease shapes the segment from
// this keyframe to the next; nil means linear.
type Keyframe struct {
	Time  float64
	Value float64
	Ease  ease.TweenFunc
}

// Track animates one property of the animated node or of a descendant.
type Track struct {
	// Path is a slash-separated list of child names below the animated node.
	// Empty targets the node itself.
	Path     string
	Property AnimatedProperty
	Keys     []Keyframe
}

// AnimationClip is a named set of keyframe tracks.
type AnimationClip struct {
	Name string
	// Duration defaults to the time of the last keyframe.
	Duration float64
	// Speed defaults to 1.
	Speed    float64
	WrapMode WrapMode
	Tracks   []Track
}

// Length returns the clip duration in seconds.
func (c *AnimationClip) Length() float64 {
	if c.Duration > 0 {
		return c.Duration
	}
	var end float64
	for _, t := range c.Tracks {
		if len(t.Keys) > 0 {
			end = math.Max(end, t.Keys[len(t.Keys)-1].Time)
		}
	}
	return end
}

// curve is a track bound to its target node, one tween per segment.
type curve struct {
	target *Node
	prop   AnimatedProperty
	keys   []Keyframe
	tweens []*gween.Tween
}

func newCurve(target *Node, t Track) *curve {
	keys := append([]Keyframe(nil), t.Keys...)
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Time < keys[j].Time })
	c := &curve{target: target, prop: t.Property, keys: keys}
	for i := 0; i+1 < len(keys); i++ {
		fn := keys[i].Ease
		if fn == nil {
			fn = ease.Linear
		}
		c.tweens = append(c.tweens, gween.New(
			float32(keys[i].Value), float32(keys[i+1].Value),
			float32(keys[i+1].Time-keys[i].Time), fn))
	}
	return c
}

func (c *curve) value(t float64) float64 {
	last := len(c.keys) - 1
	switch {
	case t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[last].Time:
		return c.keys[last].Value
	}
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > t }) - 1
	v, _ := c.tweens[i].Set(float32(t - c.keys[i].Time))
	return float64(v)
}

func (c *curve) sample(t float64) {
	if len(c.keys) == 0 || !c.target.IsValid() {
		return
	}
	c.prop.apply(c.target, c.value(t))
}

// AnimationState is the playback state of one clip under a name.
type AnimationState struct {
	name     string
	clip     *AnimationClip
	time     float64
	speed    float64
	wrapMode WrapMode
	playing  bool
	paused   bool

	curves      []*curve
	curveLoaded bool
}

func newAnimationState(clip *AnimationClip, name string) *AnimationState {
	if name == "" {
		name = clip.Name
	}
	speed := clip.Speed
	if speed == 0 {
		speed = 1
	}
	return &AnimationState{name: name, clip: clip, speed: speed, wrapMode: clip.WrapMode}
}

// Name returns the name the state is registered under.
func (s *AnimationState) Name() string { return s.name }

// Clip returns the clip the state plays.
func (s *AnimationState) Clip() *AnimationClip { return s.clip }

// Duration returns the clip duration in seconds.
func (s *AnimationState) Duration() float64 { return s.clip.Length() }

// Time returns the unwrapped play time in seconds.
func (s *AnimationState) Time() float64 { return s.time }

func (s *AnimationState) Speed() float64     { return s.speed }
func (s *AnimationState) SetSpeed(v float64) { s.speed = v }

func (s *AnimationState) WrapMode() WrapMode     { return s.wrapMode }
func (s *AnimationState) SetWrapMode(m WrapMode) { s.wrapMode = m }

// IsPlaying reports whether the state is playing, paused or not.
func (s *AnimationState) IsPlaying() bool { return s.playing }

// IsPaused reports whether the state is paused.
func (s *AnimationState) IsPaused() bool { return s.paused }

// CurveLoaded reports whether the clip tracks are bound to nodes.
func (s *AnimationState) CurveLoaded() bool { return s.curveLoaded }

// load binds each track to its target node. Tracks whose path does not
// resolve are skipped.
func (s *AnimationState) load(root *Node) {
	s.curves = s.curves[:0]
	s.curveLoaded = root != nil
	if root == nil {
		return
	}
	for _, t := range s.clip.Tracks {
		target := resolvePath(root, t.Path)
		if target == nil {
			root.director.nodeLog(root).WithField("path", t.Path).Warn("animation track target not found")
			continue
		}
		s.curves = append(s.curves, newCurve(target, t))
	}
}

func resolvePath(root *Node, path string) *Node {
	n := root
	if path == "" {
		return n
	}
	for _, name := range strings.Split(path, "/") {
		if n = n.ChildByName(name); n == nil {
			return nil
		}
	}
	return n
}

// wrappedTime maps the play time into clip time.
func (s *AnimationState) wrappedTime() float64 {
	d := s.Duration()
	if d <= 0 {
		return 0
	}
	t := math.Max(s.time, 0)
	switch s.wrapMode {
	case WrapLoop:
		return math.Mod(t, d)
	case WrapPingPong:
		t = math.Mod(t, 2*d)
		if t > d {
			t = 2*d - t
		}
		return t
	default:
		return math.Min(t, d)
	}
}

func (s *AnimationState) sample() {
	t := s.wrappedTime()
	for _, c := range s.curves {
		c.sample(t)
	}
}

func (s *AnimationState) finished() bool {
	return s.wrapMode == WrapNormal && s.time >= s.Duration()
}

// animator advances the playing states of one Animation.
type animator struct {
	owner   *Animation
	playing []*AnimationState
	paused  bool
}

func (a *animator) isPlaying() bool { return len(a.playing) > 0 }

func (a *animator) emit(typ EventType, s *AnimationState) {
	if n := a.owner.node; n != nil {
		n.Emit(typ, s)
	}
}

func (a *animator) reload(s *AnimationState) {
	s.load(a.owner.node)
}

func (a *animator) playState(s *AnimationState, startTime float64) {
	if !s.curveLoaded {
		a.reload(s)
	}
	s.time = startTime
	s.paused = false
	if !s.playing {
		s.playing = true
		a.playing = append(a.playing, s)
	}
	s.sample()
	a.emit(EventAnimationPlay, s)
}

func (a *animator) stopState(s *AnimationState) {
	if !s.playing {
		return
	}
	s.playing = false
	s.paused = false
	for i, p := range a.playing {
		if p == s {
			a.playing = append(a.playing[:i], a.playing[i+1:]...)
			break
		}
	}
	a.emit(EventAnimationStop, s)
}

func (a *animator) pauseState(s *AnimationState) {
	if !s.playing || s.paused {
		return
	}
	s.paused = true
	a.emit(EventAnimationPause, s)
}

func (a *animator) resumeState(s *AnimationState) {
	if !s.playing || !s.paused {
		return
	}
	s.paused = false
	a.emit(EventAnimationResume, s)
}

func (a *animator) setStateTime(s *AnimationState, t float64) {
	if !s.curveLoaded {
		a.reload(s)
	}
	s.time = t
	s.sample()
}

func (a *animator) stop() {
	for _, s := range append([]*AnimationState(nil), a.playing...) {
		a.stopState(s)
	}
}

func (a *animator) pause() {
	a.paused = true
	for _, s := range a.playing {
		a.pauseState(s)
	}
}

func (a *animator) resume() {
	a.paused = false
	for _, s := range a.playing {
		a.resumeState(s)
	}
}

func (a *animator) sample() {
	for _, s := range a.playing {
		s.sample()
	}
}

func (a *animator) update(dt float64) {
	for _, s := range append([]*AnimationState(nil), a.playing...) {
		if s.paused || !s.playing {
			continue
		}
		s.time += dt * s.speed
		s.sample()
		if s.finished() {
			a.stopState(s)
			a.emit(EventAnimationFinished, s)
		}
	}
}

// Animation plays named clips on its node. Clips are registered with AddClip
// and looked up by name; each name maps to one AnimationState.
type Animation struct {
	BaseComponent

	// PlayOnLoad plays the default clip when the component loads.
	PlayOnLoad bool

	clips       []*AnimationClip
	defaultClip *AnimationClip
	currentClip *AnimationClip
	nameToState map[string]*AnimationState
	anim        *animator
	didInit     bool
}

// NewAnimation returns an animation holding clips. The first clip becomes
// the default.
func NewAnimation(clips ...*AnimationClip) *Animation {
	a := &Animation{}
	for _, c := range clips {
		if c != nil {
			a.clips = append(a.clips, c)
		}
	}
	if len(a.clips) > 0 {
		a.defaultClip = a.clips[0]
	}
	return a
}

func equalClips(a, b *AnimationClip) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.Name == b.Name
}

// init creates the animator and one state per clip. Public methods call it
// because OnLoad only runs once the node is active.
func (a *Animation) init() {
	if a.didInit {
		return
	}
	a.didInit = true
	a.anim = &animator{owner: a}
	a.nameToState = make(map[string]*AnimationState)
	hasDefault := false
	for _, c := range a.clips {
		s := newAnimationState(c, "")
		a.nameToState[s.name] = s
		if equalClips(a.defaultClip, c) {
			hasDefault = true
		}
	}
	if a.defaultClip != nil && !hasDefault {
		s := newAnimationState(a.defaultClip, "")
		a.nameToState[s.name] = s
	}
}

// OnLoad registers the clips and starts the default clip when PlayOnLoad is set.
func (a *Animation) OnLoad() {
	a.init()
	if a.PlayOnLoad && a.defaultClip != nil {
		if s := a.GetAnimationState(a.defaultClip.Name); s != nil {
			a.anim.playState(s, 0)
		}
	}
}

// OnEnable resumes every state.
func (a *Animation) OnEnable() { a.Resume("") }

// OnDisable pauses every playing state.
func (a *Animation) OnDisable() { a.Pause("") }

// Update advances every playing state by dt.
func (a *Animation) Update(dt float64) {
	if a.didInit && !a.anim.paused {
		a.anim.update(dt)
	}
}

// OnDestroy stops every playing state.
func (a *Animation) OnDestroy() {
	if a.didInit {
		a.anim.stop()
	}
}

// Clips returns the registered clips. The returned slice MUST NOT be mutated
// by the caller.
func (a *Animation) Clips() []*AnimationClip { return a.clips }

// DefaultClip returns the clip played by Play("") and PlayOnLoad.
func (a *Animation) DefaultClip() *AnimationClip { return a.defaultClip }

// SetDefaultClip sets the default clip, registering it if needed.
func (a *Animation) SetDefaultClip(c *AnimationClip) {
	a.defaultClip = c
	if c == nil {
		return
	}
	for _, existing := range a.clips {
		if equalClips(c, existing) {
			return
		}
	}
	a.AddClip(c, "")
}

// IsPlaying reports whether any state is playing.
func (a *Animation) IsPlaying() bool { return a.didInit && a.anim.isPlaying() }

// CurrentClip returns the clip most recently played.
func (a *Animation) CurrentClip() *AnimationClip { return a.currentClip }

// Play plays the named clip from startTime and stops every other state. An
// empty name plays the default clip. Returns nil when no state matches.
func (a *Animation) Play(name string, startTime float64) *AnimationState {
	s := a.PlayAdditive(name, startTime)
	for _, p := range append([]*AnimationState(nil), a.anim.playing...) {
		if p != s {
			a.anim.stopState(p)
		}
	}
	return s
}

// PlayAdditive plays the named clip without stopping other states. A paused
// state is resumed; a running one restarts at startTime.
func (a *Animation) PlayAdditive(name string, startTime float64) *AnimationState {
	a.init()
	if name == "" {
		if a.defaultClip == nil {
			return nil
		}
		name = a.defaultClip.Name
	}
	s := a.GetAnimationState(name)
	if s == nil {
		return nil
	}
	switch {
	case s.playing && s.paused:
		a.anim.resumeState(s)
	case s.playing:
		a.anim.stopState(s)
		a.anim.playState(s, startTime)
	default:
		a.anim.playState(s, startTime)
	}
	a.currentClip = s.clip
	return s
}

// Stop stops the named state, or every state when name is empty.
func (a *Animation) Stop(name string) {
	if !a.didInit {
		return
	}
	if name == "" {
		a.anim.stop()
		return
	}
	if s := a.nameToState[name]; s != nil {
		a.anim.stopState(s)
	}
}

// Pause pauses the named state, or every state when name is empty.
func (a *Animation) Pause(name string) {
	if !a.didInit {
		return
	}
	if name == "" {
		a.anim.pause()
		return
	}
	if s := a.nameToState[name]; s != nil {
		a.anim.pauseState(s)
	}
}

// Resume resumes the named state, or every state when name is empty.
func (a *Animation) Resume(name string) {
	if !a.didInit {
		return
	}
	if name == "" {
		a.anim.resume()
		return
	}
	if s := a.nameToState[name]; s != nil {
		a.anim.resumeState(s)
	}
}

// SetCurrentTime moves the named state, or every state when name is empty,
// to t and samples it.
func (a *Animation) SetCurrentTime(t float64, name string) {
	a.init()
	if name != "" {
		if s := a.nameToState[name]; s != nil {
			a.anim.setStateTime(s, t)
		}
		return
	}
	for _, s := range a.nameToState {
		a.anim.setStateTime(s, t)
	}
}

// GetAnimationState returns the state registered under name, binding its
// tracks to nodes on first use.
func (a *Animation) GetAnimationState(name string) *AnimationState {
	a.init()
	s := a.nameToState[name]
	if s == nil {
		return nil
	}
	if !s.curveLoaded {
		a.anim.reload(s)
	}
	return s
}

// AddClip registers clip under name (the clip's own name when empty) and
// returns its state. A different clip already registered under the same name
// is replaced.
func (a *Animation) AddClip(clip *AnimationClip, name string) *AnimationState {
	if clip == nil {
		a.warn("invalid clip to add")
		return nil
	}
	a.init()
	found := false
	for _, c := range a.clips {
		if c == clip {
			found = true
			break
		}
	}
	if !found {
		a.clips = append(a.clips, clip)
	}
	if name == "" {
		name = clip.Name
	}
	if old := a.nameToState[name]; old != nil {
		if old.clip == clip {
			return old
		}
		a.clips = removeClip(a.clips, old.clip)
		a.anim.stopState(old)
	}
	s := newAnimationState(clip, name)
	a.nameToState[name] = s
	return s
}

// RemoveClip unregisters clip. Its states are dropped unless the clip is
// still the default; force drops them regardless.
func (a *Animation) RemoveClip(clip *AnimationClip, force bool) {
	if clip == nil {
		a.warn("invalid clip to remove")
		return
	}
	a.init()
	a.clips = removeClip(a.clips, clip)
	for name, s := range a.nameToState {
		if s.clip != clip {
			continue
		}
		if force || s.clip != a.defaultClip {
			a.anim.stopState(s)
			delete(a.nameToState, name)
		}
	}
}

// Sample applies the current time of every playing state to the nodes.
func (a *Animation) Sample() {
	a.init()
	a.anim.sample()
}

func (a *Animation) warn(msg string) {
	if a.node != nil {
		a.node.director.nodeLog(a.node).Warn(msg)
	}
}

func removeClip(clips []*AnimationClip, clip *AnimationClip) []*AnimationClip {
	out := make([]*AnimationClip, 0, len(clips))
	for _, c := range clips {
		if c != clip {
			out = append(out, c)
		}
	}
	return out
}
