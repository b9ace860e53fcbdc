package animation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sceneforge/sceneforge/internal/core/mathf"
)

var (
	ErrInvalidClip = errors.New("invalid animation clip")
	ErrNoKeyframes = errors.New("clip has no keyframes")
)

// Event is a named marker fired when playback reaches its frame.
type Event struct {
	Name  string `json:"name"`
	Frame int    `json:"frame"`
}

// Keyframe snapshots a transform at one frame. Keyframes are kept sorted by
// frame; playback interpolates between the bracketing pair.
type Keyframe struct {
	Frame    int        `json:"frame"`
	Position mathf.Vec3 `json:"position"`
	Rotation mathf.Vec3 `json:"rotation"`
	Scale    mathf.Vec3 `json:"scale"`
}

// Clip is one animation asset: a frame range, playback settings, frame
// events and transform keyframes.
type Clip struct {
	Name       string     `json:"name"`
	StartFrame int        `json:"start_frame"`
	EndFrame   int        `json:"end_frame"`
	Speed      float64    `json:"speed"`
	Looping    bool       `json:"looping"`
	Events     []Event    `json:"events,omitempty"`
	Keyframes  []Keyframe `json:"keyframes,omitempty"`
}

func NewClip(name string, startFrame, endFrame int) *Clip {
	return &Clip{
		Name:       name,
		StartFrame: startFrame,
		EndFrame:   endFrame,
		Speed:      1,
	}
}

// Validate checks the frame range and playback speed.
func (c *Clip) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidClip)
	}
	if c.StartFrame < 0 {
		return fmt.Errorf("%w: start frame %d is negative", ErrInvalidClip, c.StartFrame)
	}
	if c.EndFrame < c.StartFrame {
		return fmt.Errorf("%w: end frame %d before start frame %d", ErrInvalidClip, c.EndFrame, c.StartFrame)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %g must be positive", ErrInvalidClip, c.Speed)
	}
	return nil
}

// ClampFrame clamps a frame into the clip's range.
func (c *Clip) ClampFrame(frame int) int {
	if frame < c.StartFrame {
		return c.StartFrame
	}
	if frame > c.EndFrame {
		return c.EndFrame
	}
	return frame
}

// Length returns the clip's frame count, inclusive of both ends.
func (c *Clip) Length() int {
	return c.EndFrame - c.StartFrame + 1
}

// AddEvent appends a frame event.
func (c *Clip) AddEvent(name string, frame int) {
	c.Events = append(c.Events, Event{Name: name, Frame: frame})
}

// RemoveEvent drops the first event matching name and frame. Reports
// whether one was removed.
func (c *Clip) RemoveEvent(name string, frame int) bool {
	for i, ev := range c.Events {
		if ev.Name == name && ev.Frame == frame {
			c.Events = append(c.Events[:i], c.Events[i+1:]...)
			return true
		}
	}
	return false
}

// EventsAt returns every event on the given frame.
func (c *Clip) EventsAt(frame int) []Event {
	var out []Event
	for _, ev := range c.Events {
		if ev.Frame == frame {
			out = append(out, ev)
		}
	}
	return out
}

// SetKeyframe inserts or replaces the keyframe for a frame, keeping the
// list sorted.
func (c *Clip) SetKeyframe(kf Keyframe) {
	i := sort.Search(len(c.Keyframes), func(i int) bool {
		return c.Keyframes[i].Frame >= kf.Frame
	})
	if i < len(c.Keyframes) && c.Keyframes[i].Frame == kf.Frame {
		c.Keyframes[i] = kf
		return
	}
	c.Keyframes = append(c.Keyframes, Keyframe{})
	copy(c.Keyframes[i+1:], c.Keyframes[i:])
	c.Keyframes[i] = kf
}

// RemoveKeyframe drops the keyframe at a frame. Reports whether one
// existed.
func (c *Clip) RemoveKeyframe(frame int) bool {
	i := sort.Search(len(c.Keyframes), func(i int) bool {
		return c.Keyframes[i].Frame >= frame
	})
	if i < len(c.Keyframes) && c.Keyframes[i].Frame == frame {
		c.Keyframes = append(c.Keyframes[:i], c.Keyframes[i+1:]...)
		return true
	}
	return false
}

// KeyframeAt samples the clip at a frame: the exact keyframe when one
// exists, otherwise the interpolation between the bracketing pair. Before
// the first or after the last keyframe the nearest one is returned as is.
func (c *Clip) KeyframeAt(frame int) (Keyframe, error) {
	if len(c.Keyframes) == 0 {
		return Keyframe{}, ErrNoKeyframes
	}

	i := sort.Search(len(c.Keyframes), func(i int) bool {
		return c.Keyframes[i].Frame >= frame
	})
	if i < len(c.Keyframes) && c.Keyframes[i].Frame == frame {
		return c.Keyframes[i], nil
	}
	if i == 0 {
		kf := c.Keyframes[0]
		kf.Frame = frame
		return kf, nil
	}
	if i == len(c.Keyframes) {
		kf := c.Keyframes[len(c.Keyframes)-1]
		kf.Frame = frame
		return kf, nil
	}

	prev, next := c.Keyframes[i-1], c.Keyframes[i]
	t := float64(frame-prev.Frame) / float64(next.Frame-prev.Frame)
	return Keyframe{
		Frame:    frame,
		Position: prev.Position.Lerp(next.Position, t),
		Rotation: prev.Rotation.Lerp(next.Rotation, t),
		Scale:    prev.Scale.Lerp(next.Scale, t),
	}, nil
}
