package animation

import (
	"errors"
	"fmt"

	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
)

var ErrNotRecording = errors.New("sequencer is not recording")

// Sequencer is the recording side of the animation timeline: while armed it
// snapshots the target entity's transform into clip keyframes. Starting
// playback stops recording and starting recording stops playback; the two
// modes never run together.
type Sequencer struct {
	logger log.Log

	recording bool
	entity    ecs.Entity
	clip      *Clip
	frameMin  int
	frameMax  int
}

func NewSequencer(logger log.Log) *Sequencer {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Sequencer{
		logger:   logger.With(log.String("component", "sequencer")),
		frameMax: DefaultFrameRate * 4,
	}
}

// StartRecording arms the sequencer on an entity and clip, capturing an
// initial keyframe at the given frame.
func (s *Sequencer) StartRecording(e ecs.Entity, clip *Clip, frame int) error {
	if !e.Valid() {
		return ecs.ErrStaleEntity
	}
	s.recording = true
	s.entity = e
	s.clip = clip
	s.logger.Info("Recording started",
		log.String("clip", clip.Name),
		log.Int("frame", frame))
	return s.RecordKeyframe(frame)
}

// StopRecording disarms the sequencer, keeping the recorded clip.
func (s *Sequencer) StopRecording() {
	if !s.recording {
		return
	}
	s.recording = false
	if s.clip != nil {
		s.logger.Info("Recording stopped",
			log.String("clip", s.clip.Name),
			log.Int("keyframes", len(s.clip.Keyframes)))
	}
	s.entity = ecs.Entity{}
}

func (s *Sequencer) IsRecording() bool {
	return s.recording
}

// Clip returns the clip being recorded, nil when idle.
func (s *Sequencer) Clip() *Clip {
	return s.clip
}

// RecordKeyframe snapshots the target entity's current transform at the
// frame. The frame is clamped into the clip's range.
func (s *Sequencer) RecordKeyframe(frame int) error {
	if !s.recording || s.clip == nil {
		return ErrNotRecording
	}
	comp, err := s.entity.Get(components.TypeTransform)
	if err != nil {
		return fmt.Errorf("record keyframe: %w", err)
	}
	tr, ok := comp.(*components.Transform)
	if !ok {
		return fmt.Errorf("record keyframe: unexpected component type")
	}

	frame = s.clip.ClampFrame(frame)
	s.clip.SetKeyframe(Keyframe{
		Frame:    frame,
		Position: tr.Position,
		Rotation: tr.Rotation,
		Scale:    tr.Scale,
	})
	s.logger.Debug("Keyframe recorded",
		log.String("clip", s.clip.Name),
		log.Int("frame", frame))
	return nil
}

// SetFrameRange adjusts the visible timeline bounds.
func (s *Sequencer) SetFrameRange(min, max int) {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	s.frameMin = min
	s.frameMax = max
}

func (s *Sequencer) FrameMin() int {
	return s.frameMin
}

func (s *Sequencer) FrameMax() int {
	return s.frameMax
}
