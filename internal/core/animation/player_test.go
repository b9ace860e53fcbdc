package animation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

func TestPlayRewindsToStart(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	clip := NewClip("walk", 5, 35)

	p.Play(a, clip)
	require.True(t, a.Playing)
	require.Equal(t, 5, a.Frame)
	require.Equal(t, "walk", a.CurrentClip)

	p.Stop(a)
	require.False(t, a.Playing)
}

func TestAdvanceStepsWholeFrames(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	clip := NewClip("walk", 0, 100)

	p.Play(a, clip)

	// a tenth of a second at 30fps is three whole frames
	p.Advance(a, clip, nil, 0.1)
	require.Equal(t, 3, a.Frame)

	// partial steps accumulate across calls
	p.Advance(a, clip, nil, 0.02)
	require.Equal(t, 3, a.Frame)
	p.Advance(a, clip, nil, 0.02)
	require.Equal(t, 4, a.Frame)
}

func TestAdvanceFiresEvents(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	clip := NewClip("attack", 0, 100)
	clip.AddEvent("swing", 1)
	clip.AddEvent("hit", 3)

	p.Play(a, clip)
	fired := p.Advance(a, clip, nil, 0.1) // frames 1..3
	require.Len(t, fired, 2)
	require.Equal(t, "swing", fired[0].Name)
	require.Equal(t, "hit", fired[1].Name)

	// events are not re-fired while standing still
	fired = p.Advance(a, clip, nil, 0)
	require.Empty(t, fired)
}

func TestAdvanceOneShotClampsAndStops(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	clip := NewClip("die", 0, 2)

	p.Play(a, clip)
	p.Advance(a, clip, nil, 1.0)
	require.False(t, a.Playing)
	require.Equal(t, 2, a.Frame)

	// advancing a stopped animator does nothing
	fired := p.Advance(a, clip, nil, 1.0)
	require.Empty(t, fired)
	require.Equal(t, 2, a.Frame)
}

func TestAdvanceLoopingWraps(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	clip := NewClip("idle", 0, 2)
	clip.Looping = true
	clip.AddEvent("tick", 0)

	p.Play(a, clip)
	// 6 frames over a 3-frame loop: wraps twice, firing the frame-0 event
	fired := p.Advance(a, clip, nil, 0.2)
	require.True(t, a.Playing)
	require.Len(t, fired, 2)
}

func TestAdvanceAppliesKeyframes(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	tr := components.NewTransform()
	clip := NewClip("slide", 0, 10)
	clip.SetKeyframe(Keyframe{Frame: 0, Position: mathf.V3(0, 0, 0), Scale: mathf.One()})
	clip.SetKeyframe(Keyframe{Frame: 10, Position: mathf.V3(10, 0, 0), Scale: mathf.One()})

	p.Play(a, clip)
	p.Advance(a, clip, tr, 0.1) // frame 3
	require.True(t, tr.Position.Equals(mathf.V3(3, 0, 0)))
}

func TestPlaybackSpeedScales(t *testing.T) {
	p := NewPlayer(30, nil)
	a := components.NewAnimator()
	a.PlaybackSpeed = 2
	clip := NewClip("walk", 0, 100)

	p.Play(a, clip)
	p.Advance(a, clip, nil, 0.1)
	require.Equal(t, 6, a.Frame)
}

func newSequencerWorld(t *testing.T) (*ecs.World, ecs.Entity, *components.Transform) {
	t.Helper()
	reg := schema.NewRegistry()
	require.NoError(t, components.RegisterAll(reg))
	w := ecs.NewWorld(reg, nil)
	e, err := w.Create("rig")
	require.NoError(t, err)
	comp, err := e.Add(components.TypeTransform)
	require.NoError(t, err)
	return w, e, comp.(*components.Transform)
}

func TestSequencerRecordsTransformSnapshots(t *testing.T) {
	_, e, tr := newSequencerWorld(t)
	s := NewSequencer(nil)
	clip := NewClip("recorded", 0, 30)

	tr.Position = mathf.V3(1, 0, 0)
	require.NoError(t, s.StartRecording(e, clip, 0))
	require.True(t, s.IsRecording())
	require.Len(t, clip.Keyframes, 1)

	tr.Position = mathf.V3(2, 0, 0)
	require.NoError(t, s.RecordKeyframe(10))
	require.Len(t, clip.Keyframes, 2)
	require.True(t, clip.Keyframes[1].Position.Equals(mathf.V3(2, 0, 0)))

	// frames outside the clip range are clamped
	tr.Position = mathf.V3(3, 0, 0)
	require.NoError(t, s.RecordKeyframe(99))
	last := clip.Keyframes[len(clip.Keyframes)-1]
	require.Equal(t, 30, last.Frame)

	s.StopRecording()
	require.False(t, s.IsRecording())
	require.ErrorIs(t, s.RecordKeyframe(5), ErrNotRecording)
}

func TestSequencerRejectsStaleEntity(t *testing.T) {
	w, e, _ := newSequencerWorld(t)
	require.NoError(t, w.Destroy(e))

	s := NewSequencer(nil)
	require.ErrorIs(t, s.StartRecording(e, NewClip("x", 0, 10), 0), ecs.ErrStaleEntity)
	require.False(t, s.IsRecording())
}

func TestSequencerFrameRange(t *testing.T) {
	s := NewSequencer(nil)
	s.SetFrameRange(-5, 3)
	require.Equal(t, 0, s.FrameMin())
	require.Equal(t, 3, s.FrameMax())

	s.SetFrameRange(10, 5)
	require.Equal(t, 10, s.FrameMin())
	require.Equal(t, 10, s.FrameMax())
}
