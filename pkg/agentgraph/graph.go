package agentgraph

import (
	"context"
	"fmt"
)

// START and END are the distinguished graph boundaries. START is implicit
// (set with SetStart); a node routing to END terminates the run.
const (
	START = "__start__"
	END   = "__end__"
)

// DecisionDraft is one LLM call made inside a node, persisted under the
// step record once the step itself is written.
type DecisionDraft struct {
	PromptFingerprint string
	ResponsePayload   map[string]interface{}
	Confidence        float64
	TokensIn          int
	TokensOut         int
	ToolsInvoked      []string
}

// NodeResult is what a node returns: a partial state update plus everything
// the runtime needs to persist and route.
type NodeResult struct {
	// Updates is merged into the run state.
	Updates State

	// Decisions are the LLM calls made by this node.
	Decisions []DecisionDraft

	// Tokens spent outside of Decisions (rarely needed; decision tokens
	// are counted automatically).
	Tokens int

	// NeedsSuspension parks the run after this node until an external
	// event arrives or the timeout expires.
	NeedsSuspension bool

	// ResumeCondition tags what the suspension waits for,
	// e.g. "awaiting_bill_approval". Required when NeedsSuspension is set.
	ResumeCondition string
}

// NodeFunc is one graph node. It may block on LLM, ERP or persistence
// calls; the runtime does not preempt it.
type NodeFunc func(ctx context.Context, state State) (*NodeResult, error)

// RouterFunc picks the label of the outgoing conditional edge from the
// current state.
type RouterFunc func(state State) string

// Graph is a named directed graph under construction. Build with the Add*
// methods, then Compile once; compiled graphs are immutable and cached.
type Graph struct {
	name        string
	start       string
	nodes       map[string]NodeFunc
	edges       map[string]string
	conditional map[string]*conditionalEdge
}

type conditionalEdge struct {
	router RouterFunc
	cases  map[string]string
}

// NewGraph creates an empty graph.
func NewGraph(name string) *Graph {
	return &Graph{
		name:        name,
		nodes:       make(map[string]NodeFunc),
		edges:       make(map[string]string),
		conditional: make(map[string]*conditionalEdge),
	}
}

// AddNode registers a node under a unique name.
func (g *Graph) AddNode(name string, fn NodeFunc) *Graph {
	g.nodes[name] = fn
	return g
}

// AddEdge adds a static edge from → to. to may be END.
func (g *Graph) AddEdge(from, to string) *Graph {
	g.edges[from] = to
	return g
}

// AddConditionalEdge routes from through router: the router's output is
// looked up in cases to pick the target node.
func (g *Graph) AddConditionalEdge(from string, router RouterFunc, cases map[string]string) *Graph {
	g.conditional[from] = &conditionalEdge{router: router, cases: cases}
	return g
}

// SetStart marks the entry node.
func (g *Graph) SetStart(name string) *Graph {
	g.start = name
	return g
}

// CompiledGraph is a validated, immutable graph ready for execution.
type CompiledGraph struct {
	name        string
	start       string
	nodes       map[string]NodeFunc
	edges       map[string]string
	conditional map[string]*conditionalEdge
}

// Compile validates the graph: a start node exists, every edge references a
// known node, and every node has a way out.
func (g *Graph) Compile() (*CompiledGraph, error) {
	if len(g.nodes) == 0 {
		return nil, fmt.Errorf("graph %q has no nodes", g.name)
	}
	if g.start == "" {
		return nil, fmt.Errorf("graph %q has no start node", g.name)
	}
	if _, ok := g.nodes[g.start]; !ok {
		return nil, fmt.Errorf("graph %q: start node %q not defined", g.name, g.start)
	}
	for from, to := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			return nil, fmt.Errorf("graph %q: edge from unknown node %q", g.name, from)
		}
		if to != END {
			if _, ok := g.nodes[to]; !ok {
				return nil, fmt.Errorf("graph %q: edge %q -> unknown node %q", g.name, from, to)
			}
		}
	}
	for from, ce := range g.conditional {
		if _, ok := g.nodes[from]; !ok {
			return nil, fmt.Errorf("graph %q: conditional edge from unknown node %q", g.name, from)
		}
		if _, dup := g.edges[from]; dup {
			return nil, fmt.Errorf("graph %q: node %q has both a static and a conditional edge", g.name, from)
		}
		for label, to := range ce.cases {
			if to != END {
				if _, ok := g.nodes[to]; !ok {
					return nil, fmt.Errorf("graph %q: case %q -> unknown node %q", g.name, label, to)
				}
			}
		}
	}
	for name := range g.nodes {
		_, hasStatic := g.edges[name]
		_, hasConditional := g.conditional[name]
		if !hasStatic && !hasConditional {
			return nil, fmt.Errorf("graph %q: node %q has no outgoing edge", g.name, name)
		}
	}

	return &CompiledGraph{
		name:        g.name,
		start:       g.start,
		nodes:       g.nodes,
		edges:       g.edges,
		conditional: g.conditional,
	}, nil
}

// Name returns the graph's name.
func (c *CompiledGraph) Name() string { return c.name }

// next resolves the node following from, given the post-merge state.
func (c *CompiledGraph) next(from string, state State) (string, error) {
	if to, ok := c.edges[from]; ok {
		return to, nil
	}
	if ce, ok := c.conditional[from]; ok {
		label := ce.router(state)
		to, ok := ce.cases[label]
		if !ok {
			return "", fmt.Errorf("graph %q: router at %q returned unmapped case %q", c.name, from, label)
		}
		return to, nil
	}
	return "", fmt.Errorf("graph %q: node %q has no outgoing edge", c.name, from)
}
