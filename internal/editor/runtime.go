package editor

import (
	"context"
	"fmt"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/config"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/events"
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

// Runtime brings the editor subsystems up in dependency order and tears
// them down in reverse: logger, assets, schema, world, bus, session. Each
// step logs what it did; the first failure aborts the start.
type Runtime struct {
	cfg    config.Config
	logger *log.Logger

	registry *schema.Registry
	assets   *assets.Manager
	library  *assets.Library
	world    *ecs.World
	bus      *events.Bus
	session  *Session

	started bool
}

func NewRuntime(cfg config.Config) *Runtime {
	return &Runtime{cfg: cfg}
}

// Start wires the subsystems. The asset scan honors ctx; everything else
// is synchronous setup.
func (r *Runtime) Start(ctx context.Context) error {
	if r.started {
		return ErrAlreadyStarted
	}
	if err := r.cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(r.cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("start editor: %w", err)
	}
	r.logger = log.New(level)
	r.logger.Info("Editor starting", log.String("project", r.cfg.Project))

	r.assets = assets.NewManager(r.logger)
	r.library = assets.NewLibrary(r.assets, r.logger)
	scanned, err := r.library.Scan(ctx, r.cfg.Assets.Root)
	if err != nil {
		r.logger.Error("Asset scan failed", log.Error(err))
		return fmt.Errorf("start editor: %w", err)
	}

	r.registry = schema.NewRegistry()
	if err := components.RegisterAll(r.registry); err != nil {
		r.logger.Error("Component registration failed", log.Error(err))
		return fmt.Errorf("start editor: %w", err)
	}
	r.logger.Info("Component types registered", log.Int("types", r.registry.Len()))

	r.world = ecs.NewWorld(r.registry, r.logger)
	r.bus = events.NewBus()
	r.session = NewSession(r.cfg, r.registry, r.world, r.assets, r.bus, r.logger)

	if loaded, err := r.session.LoadClips(); err != nil {
		r.logger.Warn("Clip library load failed", log.Error(err))
	} else if loaded > 0 {
		r.logger.Info("Clip library loaded", log.Int("clips", loaded))
	}

	r.started = true
	r.logger.Info("Editor started",
		log.String("project", r.cfg.Project),
		log.Int("assets", scanned))
	return nil
}

// Stop tears down in reverse order. The world and stacks just drop; the
// logger flushes last.
func (r *Runtime) Stop() error {
	if !r.started {
		return ErrNotStarted
	}
	r.started = false

	r.session.StopRecording()
	r.session.History().Clear()
	r.logger.Info("Editor stopped", log.String("project", r.cfg.Project))
	_ = r.logger.Sync()
	return nil
}

// Session returns the editing surface, nil before Start.
func (r *Runtime) Session() *Session {
	return r.session
}

func (r *Runtime) Started() bool {
	return r.started
}
