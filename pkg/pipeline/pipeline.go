package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/smallnest/langgraphgo/graph"
)

// Pipeline drives one event through a fixed ordered chain of stages. The
// chain is compiled once into a graph runnable; Run is safe for concurrent
// use because all per-request state lives on the event.
type Pipeline struct {
	name     string
	runnable *graph.StateRunnable[*Event]
}

// New compiles stages, in order, into a pipeline.
func New(name string, stages ...Stage) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, errors.New("pipeline requires at least one stage")
	}

	g := graph.NewStateGraph[*Event]()
	for _, stage := range stages {
		stage := stage
		g.AddNode(stage.Name(), stage.Name(), func(ctx context.Context, event *Event) (*Event, error) {
			return stage.Run(ctx, event)
		})
	}
	for i := 0; i < len(stages)-1; i++ {
		g.AddEdge(stages[i].Name(), stages[i+1].Name())
	}
	g.AddEdge(stages[len(stages)-1].Name(), graph.END)
	g.SetEntryPoint(stages[0].Name())

	runnable, err := g.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile pipeline %q: %w", name, err)
	}
	return &Pipeline{name: name, runnable: runnable}, nil
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Run drives event through the chain and returns the accumulated results.
// It blocks until the terminal stage completes or a stage fails; a failure
// before the saver stage leaves the session untouched.
func (p *Pipeline) Run(ctx context.Context, event *Event) (map[string]any, error) {
	slog.Debug("Running pipeline", "pipeline", p.name, "event_id", event.ID, "session_id", event.SessionID)
	final, err := p.runnable.Invoke(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("pipeline %q failed: %w", p.name, err)
	}
	return final.Results, nil
}
