package core

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type greetInput struct {
	Name string `json:"name" jsonschema:"required,description=who to greet"`
}

type greetOutput struct {
	Message string `json:"message"`
}

func TestNewFuncTool(t *testing.T) {
	tool, err := NewFuncTool("greet", "greets someone", func(ctx context.Context, in greetInput) (greetOutput, error) {
		return greetOutput{Message: "hello " + in.Name}, nil
	})
	if err != nil {
		t.Fatalf("NewFuncTool: %v", err)
	}

	if tool.GetName() != "greet" {
		t.Fatalf("got name %q", tool.GetName())
	}
	desc := tool.GetToolDescriptor()
	if !strings.Contains(string(desc.Parameters), `"name"`) {
		t.Fatalf("schema missing input field: %s", desc.Parameters)
	}

	out, err := tool.Execute(context.Background(), `{"name": "sam"}`)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != `{"message":"hello sam"}` {
		t.Fatalf("got %q", out)
	}
}

func TestFuncToolErrorGoesBackAsText(t *testing.T) {
	tool, err := NewFuncTool("boom", "always fails", func(ctx context.Context, in greetInput) (greetOutput, error) {
		return greetOutput{}, errors.New("no such user")
	})
	if err != nil {
		t.Fatalf("NewFuncTool: %v", err)
	}

	out, err := tool.Execute(context.Background(), `{"name": "sam"}`)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "no such user") {
		t.Fatalf("expected the handler error in the output, got %q", out)
	}
}

func TestFuncToolRejectsBadInput(t *testing.T) {
	tool, err := NewFuncTool("greet", "greets someone", func(ctx context.Context, in greetInput) (greetOutput, error) {
		return greetOutput{}, nil
	})
	if err != nil {
		t.Fatalf("NewFuncTool: %v", err)
	}
	if _, err := tool.Execute(context.Background(), "not json"); err == nil {
		t.Fatal("expected an unmarshal error")
	}
}

func TestNewFuncToolRejectsBadShapes(t *testing.T) {
	if _, err := NewFuncTool("x", "", "not a function"); err == nil {
		t.Fatal("expected an error for a non-function handler")
	}
	if _, err := NewFuncTool("x", "", func(in greetInput) (greetOutput, error) {
		return greetOutput{}, nil
	}); err == nil {
		t.Fatal("expected an error for a handler without ctx")
	}
	if _, err := NewFuncTool("x", "", func(ctx context.Context, in greetInput) greetOutput {
		return greetOutput{}
	}); err == nil {
		t.Fatal("expected an error for a handler without an error return")
	}
}

func TestRegistry(t *testing.T) {
	registry := NewToolRegistry()
	err := registry.RegisterFunc("greet", "greets someone", func(ctx context.Context, in greetInput) (greetOutput, error) {
		return greetOutput{Message: "hi"}, nil
	})
	if err != nil {
		t.Fatalf("RegisterFunc: %v", err)
	}

	if registry.Get("greet") == nil {
		t.Fatal("registered tool not found")
	}
	if registry.Get("missing") != nil {
		t.Fatal("unknown tool should be nil")
	}
	if len(registry.Descriptors()) != 1 {
		t.Fatalf("got %d descriptors", len(registry.Descriptors()))
	}
}
