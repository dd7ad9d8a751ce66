package events

import "github.com/atomicstack/rentroll/internal/logging"

type CommandTracer struct{}

type PromptTracer struct{}

var (
	Command = CommandTracer{}
	Prompt  = PromptTracer{}
)

func (CommandTracer) Queue(text string) {
	logging.Trace("command.queue", map[string]interface{}{"text": text})
}

func (CommandTracer) Result(text, kind string) {
	logging.Trace("command.result", map[string]interface{}{"text": text, "kind": kind})
}

func (CommandTracer) Error(text string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"text": text, "error": err.Error()})
}

func (PromptTracer) Open(feedback string) {
	logging.Trace("prompt.open", map[string]interface{}{"feedback": feedback})
}

func (PromptTracer) Confirm(input string) {
	logging.Trace("prompt.confirm", map[string]interface{}{"input": input})
}

func (PromptTracer) Cancel(input string) {
	logging.Trace("prompt.cancel", map[string]interface{}{"input": input})
}
