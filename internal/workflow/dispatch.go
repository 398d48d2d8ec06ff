package workflow

import (
	"context"
	"fmt"
)

// Action is one user gesture bound to an orchestrator method. The id is
// the resource identifier the gesture refers to, empty for list-level
// actions.
type Action func(ctx context.Context, id string) error

// Dispatcher is an explicit action table: the rendering layer resolves
// gestures by name instead of knowing orchestrator methods directly.
type Dispatcher struct {
	actions map[string]Action
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{actions: make(map[string]Action)}
}

func (d *Dispatcher) Register(name string, action Action) {
	d.actions[name] = action
}

func (d *Dispatcher) Known(name string) bool {
	_, ok := d.actions[name]
	return ok
}

func (d *Dispatcher) Dispatch(ctx context.Context, name, id string) error {
	action, ok := d.actions[name]
	if !ok {
		return fmt.Errorf("unknown action: %s", name)
	}
	return action(ctx, id)
}
