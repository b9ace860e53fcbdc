package prefab

import (
	"fmt"

	"github.com/sceneforge/sceneforge/internal/core/assets"
	"github.com/sceneforge/sceneforge/internal/core/components"
	"github.com/sceneforge/sceneforge/internal/core/ecs"
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
	"github.com/sceneforge/sceneforge/internal/core/schema"
)

// Report summarizes one synchronization pass for the editor's log surface.
type Report struct {
	Handle            assets.Handle
	Instances         int
	ComponentsAdded   int
	ComponentsRemoved int
	PropertiesWritten int
	Skipped           int
}

// Synchronizer reconciles live prefab instances against their master
// document. It borrows the world and asset data for the duration of one
// call and owns nothing persistent. It reads the override ledger on each
// instance and never writes it.
type Synchronizer struct {
	registry *schema.Registry
	assets   *assets.Manager
	excl     Exclusions
	logger   log.Log
}

func NewSynchronizer(reg *schema.Registry, mgr *assets.Manager, excl Exclusions, logger log.Log) *Synchronizer {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Synchronizer{
		registry: reg,
		assets:   mgr,
		excl:     excl,
		logger:   logger.With(log.String("component", "prefab_sync")),
	}
}

// SyncAll brings every instance of the master identified by handle into
// conformance with the master's current content, except where the
// instance's override ledger protects a component or property.
//
// An unreadable or unparsable master aborts the whole pass before any
// instance is touched. Per-component and per-property failures are logged
// and skipped; the pass continues.
func (s *Synchronizer) SyncAll(handle assets.Handle, world *ecs.World) (Report, error) {
	report := Report{Handle: handle}

	data, err := s.assets.ReadDocument(handle)
	if err != nil {
		s.logger.Error("Master prefab unreadable",
			log.String("handle", handle.String()),
			log.Error(err))
		return report, fmt.Errorf("sync %s: %w", handle, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		s.logger.Error("Master prefab unparsable",
			log.String("handle", handle.String()),
			log.Error(err))
		return report, fmt.Errorf("sync %s: %w", handle, err)
	}

	// full-registry scan filtered by handle equality; synchronization is
	// an explicit user action, not a per-frame operation
	world.Each(func(e ecs.Entity) bool {
		comp, err := e.Get(components.TypePrefabLink)
		if err != nil {
			return true
		}
		link, ok := comp.(*components.PrefabLink)
		if !ok || link.Master != handle {
			return true
		}
		report.Instances++
		s.syncInstance(e, link, doc, &report)
		return true
	})

	s.logger.Info("Prefab synchronized",
		log.String("handle", handle.String()),
		log.Int("instances", report.Instances),
		log.Int("components_added", report.ComponentsAdded),
		log.Int("components_removed", report.ComponentsRemoved),
		log.Int("properties_written", report.PropertiesWritten),
		log.Int("skipped", report.Skipped))
	return report, nil
}

func (s *Synchronizer) syncInstance(e ecs.Entity, link *components.PrefabLink, doc *Document, report *Report) {
	entityID := e.ID().String()

	for _, typ := range s.registry.Types() {
		name := typ.Name
		if s.excl.SkipType(name) {
			continue
		}

		inMaster := doc.Has(name)
		onInstance := e.Has(name)
		locallyAdded := link.IsLocallyAdded(name)

		switch {
		case inMaster && !onInstance && !locallyAdded:
			if s.excl.NoAutoAddType(name) {
				break
			}
			if _, err := e.Add(name); err != nil {
				s.logger.Warn("Cannot attach component",
					log.String("entity_id", entityID),
					log.String("type", name),
					log.Error(err))
				report.Skipped++
				continue
			}
			report.ComponentsAdded++
			onInstance = true

		case !inMaster && onInstance && !locallyAdded && !s.excl.ProtectedType(name):
			if err := e.Remove(name); err != nil {
				s.logger.Warn("Cannot detach component",
					log.String("entity_id", entityID),
					log.String("type", name),
					log.Error(err))
				report.Skipped++
			} else {
				report.ComponentsRemoved++
			}
			continue
		}

		if !inMaster || !onInstance {
			continue
		}

		comp, err := e.Get(name)
		if err != nil {
			s.logger.Warn("Component lookup failed, skipping",
				log.String("entity_id", entityID),
				log.String("type", name),
				log.Error(err))
			report.Skipped++
			continue
		}
		s.syncProperties(entityID, typ, comp, link, doc, report)
	}
}

func (s *Synchronizer) syncProperties(entityID string, typ *schema.Type, comp any, link *components.PrefabLink, doc *Document, report *Report) {
	for i := range typ.Properties {
		p := &typ.Properties[i]
		path := components.OverridePath(typ.Name, p.Name)

		if s.excl.SkipProperty(path) {
			continue
		}
		// a ledgered path is never overwritten, regardless of master content
		if link.IsPropertyOverridden(path) {
			continue
		}
		raw, defined := doc.Value(typ.Name, p.Name)
		if !defined {
			continue
		}

		value, err := schema.DecodeValue(p.Kind, raw)
		if err != nil {
			s.logger.Warn("Master value does not deserialize, skipping",
				log.String("entity_id", entityID),
				log.String("path", path),
				log.Error(err))
			report.Skipped++
			continue
		}
		if err := p.Set(comp, value); err != nil {
			s.logger.Warn("Property write failed, skipping",
				log.String("entity_id", entityID),
				log.String("path", path),
				log.Error(err))
			report.Skipped++
			continue
		}
		report.PropertiesWritten++
	}
}
