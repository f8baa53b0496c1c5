// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dataloader/internal/adapters/config"
	_ "go.trai.ch/dataloader/internal/adapters/fs"
	_ "go.trai.ch/dataloader/internal/adapters/logger"
	_ "go.trai.ch/dataloader/internal/adapters/parser"
	_ "go.trai.ch/dataloader/internal/adapters/telemetry"
	_ "go.trai.ch/dataloader/internal/adapters/vault"
	// Register app and engine nodes.
	_ "go.trai.ch/dataloader/internal/app"
	_ "go.trai.ch/dataloader/internal/engine/loader"
)
