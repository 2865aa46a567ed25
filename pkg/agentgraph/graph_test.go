package agentgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, State) (*NodeResult, error) {
	return &NodeResult{}, nil
}

func TestGraph_Compile(t *testing.T) {
	t.Run("valid linear graph", func(t *testing.T) {
		g := NewGraph("linear").
			AddNode("a", noop).
			AddNode("b", noop).
			AddEdge("a", "b").
			AddEdge("b", END).
			SetStart("a")
		compiled, err := g.Compile()
		require.NoError(t, err)
		assert.Equal(t, "linear", compiled.Name())
	})

	t.Run("no start", func(t *testing.T) {
		g := NewGraph("g").AddNode("a", noop).AddEdge("a", END)
		_, err := g.Compile()
		assert.ErrorContains(t, err, "no start node")
	})

	t.Run("edge to unknown node", func(t *testing.T) {
		g := NewGraph("g").AddNode("a", noop).AddEdge("a", "ghost").SetStart("a")
		_, err := g.Compile()
		assert.ErrorContains(t, err, "unknown node")
	})

	t.Run("node without outgoing edge", func(t *testing.T) {
		g := NewGraph("g").
			AddNode("a", noop).
			AddNode("b", noop).
			AddEdge("a", "b").
			SetStart("a")
		_, err := g.Compile()
		assert.ErrorContains(t, err, "no outgoing edge")
	})

	t.Run("static and conditional edge conflict", func(t *testing.T) {
		g := NewGraph("g").
			AddNode("a", noop).
			AddEdge("a", END).
			AddConditionalEdge("a", func(State) string { return "x" }, map[string]string{"x": END}).
			SetStart("a")
		_, err := g.Compile()
		assert.ErrorContains(t, err, "both a static and a conditional edge")
	})

	t.Run("conditional case to unknown node", func(t *testing.T) {
		g := NewGraph("g").
			AddNode("a", noop).
			AddConditionalEdge("a", func(State) string { return "x" }, map[string]string{"x": "ghost"}).
			SetStart("a")
		_, err := g.Compile()
		assert.ErrorContains(t, err, "unknown node")
	})
}

func TestCompiledGraph_Routing(t *testing.T) {
	g := NewGraph("route").
		AddNode("decide", noop).
		AddNode("high", noop).
		AddNode("low", noop).
		AddConditionalEdge("decide", func(s State) string {
			if s.Float("amount") >= 1000 {
				return "high"
			}
			return "low"
		}, map[string]string{"high": "high", "low": "low"}).
		AddEdge("high", END).
		AddEdge("low", END).
		SetStart("decide")
	compiled, err := g.Compile()
	require.NoError(t, err)

	next, err := compiled.next("decide", State{"amount": 2500.0})
	require.NoError(t, err)
	assert.Equal(t, "high", next)

	next, err = compiled.next("decide", State{"amount": 10.0})
	require.NoError(t, err)
	assert.Equal(t, "low", next)

	t.Run("unmapped router output", func(t *testing.T) {
		g := NewGraph("bad").
			AddNode("a", noop).
			AddConditionalEdge("a", func(State) string { return "mystery" }, map[string]string{"x": END}).
			SetStart("a")
		compiled, err := g.Compile()
		require.NoError(t, err)
		_, err = compiled.next("a", State{})
		assert.ErrorContains(t, err, "unmapped case")
	})
}

func TestState(t *testing.T) {
	s := State{"a": 1.5, "n": 3, "name": "acme", "flag": true}
	assert.Equal(t, 1.5, s.Float("a"))
	assert.Equal(t, 3, s.Int("n"))
	assert.Equal(t, "acme", s.Str("name"))
	assert.True(t, s.Bool("flag"))
	assert.Equal(t, 0.0, s.Float("missing"))

	clone := s.Clone()
	clone["a"] = 9.0
	assert.Equal(t, 1.5, s.Float("a"))

	s.Merge(State{"a": 2.0, "new": "x"})
	assert.Equal(t, 2.0, s.Float("a"))
	assert.Equal(t, "x", s.Str("new"))

	// Visit counters survive a JSON-style round trip (float64 values).
	assert.Equal(t, 1, s.visit("node"))
	assert.Equal(t, 2, s.visit("node"))
	s[visitsKey] = map[string]interface{}{"node": 2.0}
	assert.Equal(t, 3, s.visit("node"))
}
