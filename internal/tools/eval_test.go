package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func runEval(t *testing.T, args map[string]any) map[string]any {
	t.Helper()
	tool := NewEvalTool()
	out, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	return payload
}

func TestEvalArithmetic(t *testing.T) {
	payload := runEval(t, map[string]any{"code": "1 + 1"})
	if payload["success"] != true {
		t.Errorf("success = %v", payload["success"])
	}
	if payload["result"] != float64(2) {
		t.Errorf("result = %v, want 2", payload["result"])
	}
}

func TestEvalStripsReturnPrefix(t *testing.T) {
	payload := runEval(t, map[string]any{"code": `return "hi " + "there"`})
	if payload["result"] != "hi there" {
		t.Errorf("result = %v", payload["result"])
	}
}

func TestEvalConsoleCapture(t *testing.T) {
	payload := runEval(t, map[string]any{"code": `log("checking", 42) ?? warn("low disk") ?? error("boom") ?? "done"`})

	console, ok := payload["console_output"].([]any)
	if !ok || len(console) != 3 {
		t.Fatalf("console_output = %v", payload["console_output"])
	}
	if console[0] != "checking 42" {
		t.Errorf("log line = %v", console[0])
	}
	if console[1] != "[warn] low disk" {
		t.Errorf("warn line = %v", console[1])
	}
	if console[2] != "[error] boom" {
		t.Errorf("error line = %v", console[2])
	}
	if payload["result"] != "done" {
		t.Errorf("result = %v", payload["result"])
	}
}

func TestEvalSuppressedReturnValue(t *testing.T) {
	payload := runEval(t, map[string]any{"code": "40 + 2", "return_value": false})
	if payload["result"] != nil {
		t.Errorf("result = %v, want null", payload["result"])
	}
	if payload["success"] != true {
		t.Errorf("success = %v", payload["success"])
	}
}

func TestEvalCompileErrorIsPayload(t *testing.T) {
	payload := runEval(t, map[string]any{"code": "1 +"})
	if payload["success"] != false {
		t.Errorf("success = %v, want false", payload["success"])
	}
	if payload["error"] == nil || payload["error"] == "" {
		t.Error("expected an error message in the payload")
	}
}

func TestEvalRuntimeErrorIsPayload(t *testing.T) {
	payload := runEval(t, map[string]any{"code": "1 / 0"})
	if payload["success"] != false {
		t.Errorf("success = %v, want false", payload["success"])
	}
}

func TestEvalRejectsEmptyCode(t *testing.T) {
	tool := NewEvalTool()
	if _, err := tool.Execute(context.Background(), map[string]any{"code": "  "}); err == nil {
		t.Error("expected error for blank code")
	}
	if _, err := tool.Execute(context.Background(), map[string]any{}); err == nil {
		t.Error("expected error for missing code")
	}
}

func TestEvalHasNoAmbientScope(t *testing.T) {
	payload := runEval(t, map[string]any{"code": `os.Getenv("HOME")`})
	if payload["success"] != false {
		t.Error("host access should fail to compile")
	}
}
