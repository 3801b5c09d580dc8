package agent

// EventSink receives the turn's observable events. The console renderer
// implements it; tests record it.
type EventSink interface {
	// AssistantText delivers a streamed chunk of assistant output
	AssistantText(chunk string)
	// AssistantDone marks the end of one assistant message
	AssistantDone()
	// ToolIssued fires when a tool call is about to execute
	ToolIssued(id, name, arguments string)
	// ToolCompleted fires with the result payload for a tool call
	ToolCompleted(id, name, result string, failed bool)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) AssistantText(string)                       {}
func (NopSink) AssistantDone()                             {}
func (NopSink) ToolIssued(string, string, string)          {}
func (NopSink) ToolCompleted(string, string, string, bool) {}
