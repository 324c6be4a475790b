package core

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

type ToolExecutor interface {
	GetName() string
	GetDescription() string
	Execute(ctx context.Context, input string) (string, error)
	GetToolDescriptor() ToolDescriptor
}

// NewFuncTool wraps a plain Go function of the shape
// func(ctx context.Context, input T) (O, error) as a ToolExecutor, reflecting
// a JSON schema for T into the tool descriptor.
func NewFuncTool(name string, description string, handler any) (ToolExecutor, error) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		return nil, fmt.Errorf("handler is not a function")
	}
	if handlerType.NumIn() != 2 {
		return nil, fmt.Errorf("handler function must have two parameters")
	}
	if handlerType.NumOut() != 2 {
		return nil, fmt.Errorf("handler function must have two return values")
	}

	inputType := handlerType.In(1)
	inputPtr := reflect.New(inputType)

	schema, err := GetSchema(inputPtr.Interface())
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	return &funcTool{
		descriptor: ToolDescriptor{
			Name:        name,
			Description: description,
			Parameters:  json.RawMessage(b),
		},
		inputType: inputType,
		handler:   handlerValue,
	}, nil
}

type funcTool struct {
	descriptor ToolDescriptor
	inputType  reflect.Type
	handler    reflect.Value
}

func (f *funcTool) GetName() string {
	return f.descriptor.Name
}

func (f *funcTool) GetDescription() string {
	return f.descriptor.Description
}

func (f *funcTool) GetToolDescriptor() ToolDescriptor {
	return f.descriptor
}

func (f *funcTool) Execute(ctx context.Context, input string) (string, error) {
	inputPtr := reflect.New(f.inputType)
	if err := json.Unmarshal([]byte(input), inputPtr.Interface()); err != nil {
		return "", fmt.Errorf("failed to unmarshal JSON input: %w", err)
	}

	args := []reflect.Value{reflect.ValueOf(ctx), inputPtr.Elem()}
	results := f.handler.Call(args)

	errInterface := results[1].Interface()
	if errInterface != nil {
		err, ok := errInterface.(error)
		if !ok {
			return "", fmt.Errorf("handler function's second return value is not an error")
		}
		// Tool failures go back to the model as text so it can recover.
		return "error :" + err.Error(), nil
	}

	result := results[0].Interface()
	if result == nil {
		return "", nil
	}
	b, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
