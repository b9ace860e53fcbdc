package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sceneforge/sceneforge/internal/core/animation"
	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/config"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/events"
	"github.com/sceneforge/sceneforge/internal/core/history"
	"github.com/sceneforge/sceneforge/internal/core/mathf"
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
	"github.com/sceneforge/sceneforge/internal/core/prefab"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

// Session is the editing surface the UI talks to: every user-visible edit
// goes through the command history, prefab synchronization is an explicit
// action, and notable state changes are published on the event bus.
type Session struct {
	logger    log.Log
	world     *ecs.World
	registry  *schema.Registry
	history   *history.Manager
	assets    *assets.Manager
	syncer    *prefab.Synchronizer
	player    *animation.Player
	sequencer *animation.Sequencer
	bus       *events.Bus

	clips   map[string]*animation.Clip
	clipDir string
	excl    prefab.Exclusions
}

func NewSession(cfg config.Config, registry *schema.Registry, world *ecs.World, assetMgr *assets.Manager, bus *events.Bus, logger log.Log) *Session {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Session{
		logger:    logger.With(log.String("component", "session")),
		world:     world,
		registry:  registry,
		history:   history.NewManager(logger),
		assets:    assetMgr,
		syncer:    prefab.NewSynchronizer(registry, assetMgr, cfg.Sync.Exclusions, logger),
		player:    animation.NewPlayer(cfg.Playback.FPS, logger),
		sequencer: animation.NewSequencer(logger),
		bus:       bus,
		clips:     make(map[string]*animation.Clip),
		clipDir:   cfg.Clips.Dir,
		excl:      cfg.Sync.Exclusions,
	}
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) History() *history.Manager {
	return s.history
}

func (s *Session) Assets() *assets.Manager {
	return s.assets
}

func (s *Session) Bus() *events.Bus {
	return s.bus
}

// CreateEntity creates an entity through the command history, so the
// creation is undoable.
func (s *Session) CreateEntity(name string) (ecs.Entity, error) {
	cmd := history.NewCreateEntityCommand(s.world, name)
	if err := s.history.Submit(cmd); err != nil {
		return ecs.Entity{}, err
	}
	e, ok := cmd.Entity()
	if !ok {
		return ecs.Entity{}, ecs.ErrStaleEntity
	}
	s.bus.Publish(events.New(events.EntityCreated, "session", e.ID()))
	return e, nil
}

// DestroyEntity removes the entity immediately. Destruction is not routed
// through history; commands still referencing the entity report a stale
// target when undone instead of touching recycled state.
func (s *Session) DestroyEntity(e ecs.Entity) error {
	id := e.ID()
	if err := s.world.Destroy(e); err != nil {
		return err
	}
	s.bus.Publish(events.New(events.EntityDestroyed, "session", id))
	return nil
}

// MoveEntity records the entity's current placement and submits a
// reversible transform command to the new one.
func (s *Session) MoveEntity(e ecs.Entity, position, rotation, scale mathf.Vec3) error {
	comp, err := e.Get(components.TypeTransform)
	if err != nil {
		return fmt.Errorf("move entity: %w", err)
	}
	tr, ok := comp.(*components.Transform)
	if !ok {
		return fmt.Errorf("move entity: unexpected component type")
	}

	old := history.Placement{Position: tr.Position, Rotation: tr.Rotation, Scale: tr.Scale}
	next := history.Placement{Position: position, Rotation: rotation, Scale: scale}
	return s.history.Submit(history.NewTransformEntityCommand(e, old, next))
}

// SetMaterialSlot swaps one material slot on the entity's mesh renderer
// through the command history.
func (s *Session) SetMaterialSlot(e ecs.Entity, index int, material assets.Handle) error {
	comp, err := e.Get(components.TypeMeshRenderer)
	if err != nil {
		return fmt.Errorf("set material: %w", err)
	}
	mr, ok := comp.(*components.MeshRenderer)
	if !ok {
		return fmt.Errorf("set material: unexpected component type")
	}
	if index < 0 || index >= len(mr.Materials) {
		return fmt.Errorf("set material: slot %d of %d: %w", index, len(mr.Materials), history.ErrSlotOutOfRange)
	}

	cmd := history.NewChangeMaterialSlotCommand(e,
		components.TypeMeshRenderer, components.PropMaterials, index, mr.Materials[index], material)
	return s.history.Submit(cmd)
}

func (s *Session) Undo() error {
	return s.history.Undo()
}

func (s *Session) Redo() error {
	return s.history.Redo()
}

// SyncPrefab reconciles every instance of the master against its current
// content.
func (s *Session) SyncPrefab(handle assets.Handle) (prefab.Report, error) {
	report, err := s.syncer.SyncAll(handle, s.world)
	if err != nil {
		return report, err
	}
	s.bus.Publish(events.New(events.PrefabSynced, "session", report))
	return report, nil
}

// SyncModifiedPrefabs fingerprints every registered prefab asset and syncs
// the ones whose content changed. A failing master aborts only its own
// pass; the rest still run.
func (s *Session) SyncModifiedPrefabs() ([]prefab.Report, error) {
	var reports []prefab.Report
	var errs []error
	for _, h := range s.assets.Handles() {
		path, err := s.assets.SourcePath(h)
		if err != nil || !strings.EqualFold(filepath.Ext(path), assets.ExtPrefab) {
			continue
		}
		modified, err := s.assets.Modified(h)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !modified {
			continue
		}
		report, err := s.SyncPrefab(h)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, errors.Join(errs...)
}

// CapturePrefab writes a new master document built from the entity and
// registers it as an asset.
func (s *Session) CapturePrefab(e ecs.Entity, path string) (assets.Handle, error) {
	doc, err := prefab.Capture(e, s.registry, s.excl)
	if err != nil {
		return assets.Handle{}, err
	}
	data, err := prefab.EncodeDocument(doc)
	if err != nil {
		return assets.Handle{}, err
	}
	if err := writeFile(path, data); err != nil {
		return assets.Handle{}, fmt.Errorf("capture prefab: %w", err)
	}
	return s.assets.Register(path)
}

// AddClip puts a clip into the session's library.
func (s *Session) AddClip(clip *animation.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}
	if _, exists := s.clips[clip.Name]; exists {
		return fmt.Errorf("add clip %q: %w", clip.Name, animation.ErrClipExists)
	}
	s.clips[clip.Name] = clip
	return nil
}

// Clip returns a library clip by name.
func (s *Session) Clip(name string) (*animation.Clip, error) {
	clip, ok := s.clips[name]
	if !ok {
		return nil, fmt.Errorf("clip %q: %w", name, ErrUnknownClip)
	}
	return clip, nil
}

// ClipNames lists the library, sorted.
func (s *Session) ClipNames() []string {
	names := make([]string, 0, len(s.clips))
	for name := range s.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SaveClip persists a library clip to the project's clip directory. The
// save dialog surfaces each failure distinctly: empty name, unknown clip,
// duplicate file.
func (s *Session) SaveClip(name string, overwrite bool) error {
	if name == "" {
		return ErrEmptyClipName
	}
	clip, err := s.Clip(name)
	if err != nil {
		return err
	}
	if err := animation.SaveClip(s.clipDir, clip, overwrite); err != nil {
		return err
	}
	s.bus.Publish(events.New(events.ClipSaved, "session", name))
	return nil
}

// LoadClips fills the library from the project's clip directory, skipping
// files that fail to load.
func (s *Session) LoadClips() (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.clipDir, "*"+assets.ExtClip))
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, path := range matches {
		clip, err := animation.LoadClip(path)
		if err != nil {
			s.logger.Warn("Clip failed to load, skipping",
				log.String("path", path),
				log.Error(err))
			continue
		}
		if _, exists := s.clips[clip.Name]; exists {
			continue
		}
		s.clips[clip.Name] = clip
		loaded++
	}
	return loaded, nil
}

// DeleteClip removes a clip from the library and from disk.
func (s *Session) DeleteClip(name string) error {
	if _, err := s.Clip(name); err != nil {
		return err
	}
	delete(s.clips, name)
	return animation.DeleteClip(s.clipDir, name)
}

// SelectClip points the entity's animator at a library clip.
func (s *Session) SelectClip(e ecs.Entity, name string) error {
	if _, err := s.Clip(name); err != nil {
		return err
	}
	a, err := s.animator(e)
	if err != nil {
		return err
	}
	a.CurrentClip = name
	return nil
}

// PlayClip starts playback of a library clip on the entity. Recording
// stops first; the two modes never run together.
func (s *Session) PlayClip(e ecs.Entity, name string) error {
	clip, err := s.Clip(name)
	if err != nil {
		return err
	}
	a, err := s.animator(e)
	if err != nil {
		return err
	}
	s.sequencer.StopRecording()
	s.player.Play(a, clip)
	return nil
}

// StopPlayback halts the entity's animator.
func (s *Session) StopPlayback(e ecs.Entity) error {
	a, err := s.animator(e)
	if err != nil {
		return err
	}
	s.player.Stop(a)
	return nil
}

// AdvancePlayback steps the entity's animator by wall time, publishing
// every fired frame event.
func (s *Session) AdvancePlayback(e ecs.Entity, dt float64) ([]animation.Event, error) {
	a, err := s.animator(e)
	if err != nil {
		return nil, err
	}
	clip, err := s.Clip(a.CurrentClip)
	if err != nil {
		return nil, err
	}

	var tr *components.Transform
	if comp, err := e.Get(components.TypeTransform); err == nil {
		tr, _ = comp.(*components.Transform)
	}

	fired := s.player.Advance(a, clip, tr, dt)
	for _, ev := range fired {
		s.bus.Publish(events.New(events.AnimationEvent, "session", ev))
	}
	return fired, nil
}

// StartRecording arms the sequencer on the entity and the named library
// clip, creating the clip when it does not exist yet. Playback on the
// entity stops first.
func (s *Session) StartRecording(e ecs.Entity, clipName string, frame int) error {
	if clipName == "" {
		return ErrEmptyClipName
	}
	clip, ok := s.clips[clipName]
	if !ok {
		clip = animation.NewClip(clipName, 0, s.sequencer.FrameMax())
		s.clips[clipName] = clip
	}
	if a, err := s.animator(e); err == nil {
		s.player.Stop(a)
	}
	return s.sequencer.StartRecording(e, clip, frame)
}

// RecordKeyframe snapshots the recorded entity's transform at the frame.
func (s *Session) RecordKeyframe(frame int) error {
	return s.sequencer.RecordKeyframe(frame)
}

// StopRecording disarms the sequencer.
func (s *Session) StopRecording() {
	s.sequencer.StopRecording()
}

func (s *Session) IsRecording() bool {
	return s.sequencer.IsRecording()
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Session) animator(e ecs.Entity) (*components.Animator, error) {
	comp, err := e.Get(components.TypeAnimator)
	if err != nil {
		return nil, err
	}
	a, ok := comp.(*components.Animator)
	if !ok {
		return nil, fmt.Errorf("unexpected animator component type")
	}
	return a, nil
}
