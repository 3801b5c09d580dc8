package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/google/jsonschema-go/jsonschema"
)

// EvalTool evaluates small expressions in a closed environment. The
// evaluator sees only the captured log helpers and the expression
// language's builtins; there is no ambient scope, no I/O and no way to
// reach the host program. No execution time or memory cap is applied.
type EvalTool struct {
	BaseTool
}

func NewEvalTool() *EvalTool {
	return &EvalTool{}
}

func (t *EvalTool) GetName() string {
	return "code_eval"
}

func (t *EvalTool) GetSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       "code_eval",
		Description: "Evaluate an expression and return its value plus any captured log output. Supports arithmetic, strings, arrays, maps, conditionals and the log/warn/error capture functions.",
		Type:        "object",
		Properties: map[string]*jsonschema.Schema{
			"code": {
				Type:        "string",
				Description: "The expression to evaluate",
			},
			"return_value": {
				Type:        "boolean",
				Description: "Whether to include the evaluated value in the result (default true)",
			},
		},
		Required: []string{"code"},
	}
}

func (t *EvalTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	code, ok := args["code"].(string)
	if !ok || strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("code must be a non-empty string")
	}

	returnValue := true
	if v, ok := args["return_value"].(bool); ok {
		returnValue = v
	}

	// Models often send statements like "return 1 + 1"
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(code, "return ")

	var console []string
	capture := func(level string) func(args ...any) any {
		return func(args ...any) any {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = fmt.Sprintf("%v", a)
			}
			line := strings.Join(parts, " ")
			if level != "log" {
				line = "[" + level + "] " + line
			}
			console = append(console, line)
			return nil
		}
	}

	env := map[string]any{
		"log":   capture("log"),
		"warn":  capture("warn"),
		"error": capture("error"),
	}

	program, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return evalFailure(err, console)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return evalFailure(err, console)
	}

	slog.Debug("eval complete", "code_len", len(code), "console_lines", len(console))

	if console == nil {
		console = []string{}
	}
	result := map[string]any{
		"result":         nil,
		"console_output": console,
		"success":        true,
	}
	if returnValue {
		result["result"] = out
	}

	payload, err := json.Marshal(result)
	if err != nil {
		// Values like functions don't marshal; report that as an eval failure
		return evalFailure(fmt.Errorf("result not serializable: %w", err), console)
	}
	return string(payload), nil
}

// evalFailure reports compile and runtime errors inside the payload so
// the model can react to them; the tool call itself still succeeds.
func evalFailure(err error, console []string) (string, error) {
	if console == nil {
		console = []string{}
	}
	payload, merr := json.Marshal(map[string]any{
		"error":          err.Error(),
		"console_output": console,
		"success":        false,
	})
	if merr != nil {
		return "", merr
	}
	return string(payload), nil
}
