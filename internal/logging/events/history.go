package events

import "github.com/atomicstack/rentroll/internal/logging"

type HistoryTracer struct{}

type BookTracer struct{}

var (
	History = HistoryTracer{}
	Book    = BookTracer{}
)

func (HistoryTracer) Record(text string) {
	logging.Trace("history.record", map[string]interface{}{"text": text})
}

func (HistoryTracer) Cursor(position, total int) {
	logging.Trace("history.cursor", map[string]interface{}{"position": position, "total": total})
}

func (BookTracer) Loaded(path string, clients int) {
	logging.Trace("book.loaded", map[string]interface{}{"path": path, "clients": clients})
}

func (BookTracer) Saved(path string, clients int) {
	logging.Trace("book.saved", map[string]interface{}{"path": path, "clients": clients})
}

func (BookTracer) Reloaded(path string, clients int) {
	logging.Trace("book.reloaded", map[string]interface{}{"path": path, "clients": clients})
}
