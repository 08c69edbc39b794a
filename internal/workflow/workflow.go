// Package workflow implements the question-answering pipeline as a state
// graph: classify the question into an intent, authorize it against the
// caller's role, dispatch the deterministic store query, and render a
// natural-language answer. Nodes run strictly sequentially; any node error
// terminates the graph and fails the request.
package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/taskpoint/assist/internal/identity"
	"github.com/taskpoint/assist/internal/intents"
)

// State bag keys shared between pipeline nodes.
const (
	KeyUser     = "user"
	KeyQuestion = "question"
	KeyIntent   = "intent"
	KeyRows     = "rows"
	KeyResponse = "response"
)

// Result is the outcome of a completed pipeline run.
type Result struct {
	Intent      intents.Intent
	Rows        []map[string]any
	Response    string
	CompletedAt time.Time
}

// Execute runs the question pipeline for a single caller. It builds the
// state graph (classify → authorize → dispatch → respond), executes it,
// and extracts the Result from the final state.
func Execute(
	ctx context.Context,
	rt *Runtime,
	user identity.User,
	question string,
) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyUser, user)
	initialState = initialState.Set(KeyQuestion, question)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("assist-chat")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("authorize", AuthorizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("dispatch", DispatchNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("respond", RespondNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("classify", "authorize", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("authorize", "dispatch", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("dispatch", "respond", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("respond"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	intent, err := extractIntent(s)
	if err != nil {
		return nil, err
	}

	rowsVal, ok := s.Get(KeyRows)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyRows)
	}

	rows, ok := rowsVal.([]map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is not []map[string]any", KeyRows)
	}

	responseVal, ok := s.Get(KeyResponse)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyResponse)
	}

	response, ok := responseVal.(string)
	if !ok {
		return nil, fmt.Errorf("%s is not string", KeyResponse)
	}

	return &Result{
		Intent:      intent,
		Rows:        rows,
		Response:    response,
		CompletedAt: time.Now(),
	}, nil
}

func extractIntent(s state.State) (intents.Intent, error) {
	val, ok := s.Get(KeyIntent)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyIntent)
	}

	intent, ok := val.(intents.Intent)
	if !ok {
		return nil, fmt.Errorf("%s is not intents.Intent", KeyIntent)
	}

	return intent, nil
}

func extractUser(s state.State) (identity.User, error) {
	val, ok := s.Get(KeyUser)
	if !ok {
		return identity.User{}, fmt.Errorf("missing %s in state", KeyUser)
	}

	user, ok := val.(identity.User)
	if !ok {
		return identity.User{}, fmt.Errorf("%s is not identity.User", KeyUser)
	}

	return user, nil
}

func extractQuestion(s state.State) (string, error) {
	val, ok := s.Get(KeyQuestion)
	if !ok {
		return "", fmt.Errorf("missing %s in state", KeyQuestion)
	}

	question, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", KeyQuestion)
	}

	return question, nil
}
