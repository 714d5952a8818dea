// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/glean/internal/adapters/cache"
	_ "go.trai.ch/glean/internal/adapters/config"
	_ "go.trai.ch/glean/internal/adapters/logger"
	_ "go.trai.ch/glean/internal/adapters/nlp"
	_ "go.trai.ch/glean/internal/adapters/tabular"
	// Register app nodes.
	_ "go.trai.ch/glean/internal/app"
)
