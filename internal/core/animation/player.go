package animation

import (
	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
)

// DefaultFrameRate is the fixed animation step rate in frames per second.
const DefaultFrameRate = 30

// Player advances animator components through clips at a fixed frame rate.
// Playback state lives on the component; the player itself is stateless
// between calls.
type Player struct {
	fps    int
	logger log.Log
}

func NewPlayer(fps int, logger log.Log) *Player {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Player{fps: fps, logger: logger.With(log.String("component", "animation"))}
}

// Play rewinds the animator to the clip's start and begins playback.
func (p *Player) Play(a *components.Animator, clip *Clip) {
	a.CurrentClip = clip.Name
	a.Playing = true
	a.Frame = clip.StartFrame
	a.Accumulator = 0
	p.logger.Debug("Playback started", log.String("clip", clip.Name))
}

// Stop halts playback, keeping the current frame.
func (p *Player) Stop(a *components.Animator) {
	if a.Playing {
		a.Playing = false
		p.logger.Debug("Playback stopped", log.String("clip", a.CurrentClip))
	}
}

// Advance accumulates wall time and steps the animator through whole
// frames, firing the events of every frame crossed. A looping clip wraps
// to the start frame past the end; a one-shot clip clamps at the end and
// stops. When the clip carries keyframes the sampled placement is applied
// to the transform.
func (p *Player) Advance(a *components.Animator, clip *Clip, tr *components.Transform, dt float64) []Event {
	if !a.Playing {
		return nil
	}

	speed := a.PlaybackSpeed
	if speed <= 0 {
		speed = 1
	}
	a.Accumulator += dt * speed * clip.Speed
	step := 1.0 / float64(p.fps)

	var fired []Event
	for a.Accumulator >= step {
		a.Accumulator -= step
		a.Frame++

		if a.Frame > clip.EndFrame {
			if clip.Looping {
				a.Frame = clip.StartFrame
			} else {
				a.Frame = clip.EndFrame
				a.Playing = false
				p.logger.Debug("Playback finished", log.String("clip", clip.Name))
				break
			}
		}
		fired = append(fired, clip.EventsAt(a.Frame)...)
	}

	if tr != nil && len(clip.Keyframes) > 0 {
		if kf, err := clip.KeyframeAt(a.Frame); err == nil {
			tr.Position = kf.Position
			tr.Rotation = kf.Rotation
			tr.Scale = kf.Scale
		}
	}
	return fired
}
