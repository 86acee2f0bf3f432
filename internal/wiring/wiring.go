// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/squeeze/internal/adapters/cssmin"
	_ "go.trai.ch/squeeze/internal/adapters/fs"
	_ "go.trai.ch/squeeze/internal/adapters/jsmin"
	_ "go.trai.ch/squeeze/internal/adapters/logger"
	_ "go.trai.ch/squeeze/internal/adapters/report"
	_ "go.trai.ch/squeeze/internal/adapters/telemetry"
	_ "go.trai.ch/squeeze/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/squeeze/internal/app"
)
