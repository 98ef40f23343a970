package connector

import (
	"context"
	"fmt"

	"github.com/tphakala/go-sigsci/internal/ctxlog"
)

// Registry holds step definitions keyed by ID and resolves their
// declared dependencies into a sequential execution order.
type Registry struct {
	steps map[string]*Step
	order []string
}

// NewRegistry creates an empty step registry.
func NewRegistry() *Registry {
	return &Registry{
		steps: make(map[string]*Step),
	}
}

// Register adds a step definition. Registering two steps with the same
// ID is a programming error and panics, in line with the fail-at-startup
// contract of the registry.
func (r *Registry) Register(step *Step) {
	if _, exists := r.steps[step.ID]; exists {
		panic(fmt.Sprintf("step with ID '%s' already registered", step.ID))
	}
	r.steps[step.ID] = step
	r.order = append(r.order, step.ID)
}

// Step returns the registered step with the given ID.
func (r *Registry) Step(id string) (*Step, bool) {
	step, ok := r.steps[id]
	return step, ok
}

// ExecutionOrder returns all registered steps sorted so that every step
// runs after the steps it depends on. Registration order breaks ties.
// Unknown dependencies and dependency cycles are reported as errors.
func (r *Registry) ExecutionOrder() ([]*Step, error) {
	for _, id := range r.order {
		for _, dep := range r.steps[id].DependsOn {
			if _, ok := r.steps[dep]; !ok {
				return nil, fmt.Errorf("step %q depends on unknown step %q", id, dep)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[string]int, len(r.steps))
	ordered := make([]*Step, 0, len(r.steps))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("dependency cycle involving step %q", id)
		}
		state[id] = visiting
		for _, dep := range r.steps[id].DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		ordered = append(ordered, r.steps[id])
		return nil
	}

	for _, id := range r.order {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	return ordered, nil
}

// Run executes every registered step sequentially in dependency order.
// The first step failure aborts the run and propagates unchanged.
func (r *Registry) Run(ctx context.Context, ec *ExecutionContext) error {
	logger := ctxlog.FromContext(ctx)

	steps, err := r.ExecutionOrder()
	if err != nil {
		return err
	}

	for _, step := range steps {
		logger.Info("executing step", "id", step.ID, "name", step.Name)
		if err := step.Execute(ctx, ec); err != nil {
			return fmt.Errorf("step %q: %w", step.ID, err)
		}
	}

	return nil
}
