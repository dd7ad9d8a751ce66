package events

import "github.com/atomicstack/rentroll/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(width, height int) {
	logging.Trace("app.exit", map[string]interface{}{"width": width, "height": height})
}
