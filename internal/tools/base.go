package tools

// BaseTool provides the common plumbing for all built-in tools
type BaseTool struct{}

func (t *BaseTool) SetContext(ctx any) {}
func (t *BaseTool) GetType() string    { return "native" }
func (t *BaseTool) GetSource() string  { return "builtin" }
