package core

import "fmt"

// ToolRegistry is an explicit table of named tool executors. It is populated
// at startup and read-only afterwards, so concurrent agent runs can share it.
type ToolRegistry struct {
	tools map[string]ToolExecutor
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{tools: make(map[string]ToolExecutor)}
}

func (tr *ToolRegistry) Register(executor ToolExecutor) {
	tr.tools[executor.GetName()] = executor
}

// RegisterFunc wraps handler via NewFuncTool and registers it.
func (tr *ToolRegistry) RegisterFunc(name string, description string, handler any) error {
	executor, err := NewFuncTool(name, description, handler)
	if err != nil {
		return fmt.Errorf("register tool %s: %w", name, err)
	}
	tr.Register(executor)
	return nil
}

func (tr *ToolRegistry) Get(name string) ToolExecutor {
	return tr.tools[name]
}

func (tr *ToolRegistry) Descriptors() []ToolDescriptor {
	var list []ToolDescriptor
	for _, item := range tr.tools {
		list = append(list, item.GetToolDescriptor())
	}
	return list
}
