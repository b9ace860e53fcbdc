//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/sceneforge/sceneforge/internal/core/config"
	"github.com/sceneforge/sceneforge/internal/editor"
)

func ProvideRuntime(cfg config.Config) *editor.Runtime {
	wire.Build(editor.NewRuntime)
	return nil
}
