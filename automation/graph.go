// ABOUTME: Event dependency graph for the automation rule set
// ABOUTME: Documents which reactions dispatch further events; must stay acyclic
package automation

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/harperreed/careops/events"
)

// dependencies records, per event type, the events its reactions dispatch.
// Re-entrant dispatch means a cycle here would recurse until the stack
// blows; keep this table in sync with the rule set and rely on the
// acyclicity test to catch mistakes.
var dependencies = map[events.Type][]events.Type{
	events.LeadCreated:       nil,
	events.LeadStatusChanged: nil,
	events.BookingCreated:    nil,
	events.BookingConfirmed:  {events.IntakeFormSent},
	events.IntakeFormSent:    nil,
	events.MessageSent:       nil,
	events.InventoryLow:      nil,
}

// EventTypes returns the closed enumeration of event types the rule set
// covers.
func EventTypes() []events.Type {
	return []events.Type{
		events.LeadCreated,
		events.LeadStatusChanged,
		events.BookingCreated,
		events.BookingConfirmed,
		events.IntakeFormSent,
		events.MessageSent,
		events.InventoryLow,
	}
}

// Acyclic reports whether the event dependency graph has no cycles.
func Acyclic() bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[events.Type]int)

	var visit func(t events.Type) bool
	visit = func(t events.Type) bool {
		switch state[t] {
		case visiting:
			return false
		case done:
			return true
		}
		state[t] = visiting
		for _, dep := range dependencies[t] {
			if !visit(dep) {
				return false
			}
		}
		state[t] = done
		return true
	}

	for _, t := range EventTypes() {
		if !visit(t) {
			return false
		}
	}
	return true
}

// GenerateGraph renders the event dependency graph as DOT source.
func GenerateGraph() (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetLayout("dot")

	nodes := make(map[events.Type]*cgraph.Node)
	for _, t := range EventTypes() {
		node, err := graph.CreateNodeByName(string(t))
		if err != nil {
			return "", fmt.Errorf("failed to create node: %w", err)
		}
		nodes[t] = node
	}

	for _, t := range EventTypes() {
		for _, dep := range dependencies[t] {
			edge, err := graph.CreateEdgeByName("", nodes[t], nodes[dep])
			if err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
			edge.SetLabel("dispatches")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
