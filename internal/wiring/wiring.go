// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/memo/internal/adapters/config"
	_ "go.trai.ch/memo/internal/adapters/fs"
	_ "go.trai.ch/memo/internal/adapters/linear"
	_ "go.trai.ch/memo/internal/adapters/localrepo"
	_ "go.trai.ch/memo/internal/adapters/logger"
	_ "go.trai.ch/memo/internal/adapters/remote"
	_ "go.trai.ch/memo/internal/adapters/shell"
	_ "go.trai.ch/memo/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/memo/internal/app"
)
