package events

import "github.com/atomicstack/rentroll/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) HelpOpen() {
	logging.Trace("ui.help-open", nil)
}

func (UITracer) HelpClose() {
	logging.Trace("ui.help-close", nil)
}

func (UITracer) ListCursor(cursor int) {
	logging.Trace("ui.list-cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Applied(query string, matches int) {
	logging.Trace("filter.applied", map[string]interface{}{"query": query, "matches": matches})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
