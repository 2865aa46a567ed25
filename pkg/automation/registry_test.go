package automation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAutomation struct {
	typ      string
	models   []string
	handlers map[HandlerKey]Handler
}

func (s *stubAutomation) Type() string                   { return s.typ }
func (s *stubAutomation) WatchedModels() []string        { return s.models }
func (s *stubAutomation) Handlers() map[HandlerKey]Handler { return s.handlers }
func (s *stubAutomation) Scans() map[string]ScanFunc     { return nil }
func (s *stubAutomation) Execute(context.Context, Action) (map[string]interface{}, error) {
	return nil, nil
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubAutomation{typ: "accounting", models: []string{"account.move"}}))
	require.NoError(t, r.Register(&stubAutomation{typ: "crm", models: []string{"crm.lead", "res.partner"}}))

	t.Run("duplicate type rejected", func(t *testing.T) {
		err := r.Register(&stubAutomation{typ: "accounting"})
		assert.Error(t, err)
	})

	t.Run("empty type rejected", func(t *testing.T) {
		assert.Error(t, r.Register(&stubAutomation{}))
	})

	a, err := r.Get("accounting")
	require.NoError(t, err)
	assert.Equal(t, "accounting", a.Type())

	_, err = r.Get("payroll")
	assert.Error(t, err)

	assert.Len(t, r.ForModel("res.partner"), 1)
	assert.Empty(t, r.ForModel("stock.picking"))

	all := r.All()
	require.Len(t, all, 2)
	// Sorted by type for stable iteration.
	assert.Equal(t, "accounting", all[0].Type())
	assert.Equal(t, "crm", all[1].Type())
}

func TestResolveHandler(t *testing.T) {
	exact := func(context.Context, Event) (*Result, error) {
		return &Result{ActionName: "exact"}, nil
	}
	generic := func(context.Context, Event) (*Result, error) {
		return &Result{ActionName: "generic"}, nil
	}
	a := &stubAutomation{
		typ: "accounting",
		handlers: map[HandlerKey]Handler{
			{EventType: "create", Model: "account.move"}: exact,
			{EventType: "create"}:                        generic,
		},
	}

	h, ok := ResolveHandler(a, "create", "account.move")
	require.True(t, ok)
	res, _ := h(context.Background(), Event{})
	assert.Equal(t, "exact", res.ActionName)

	h, ok = ResolveHandler(a, "create", "account.payment")
	require.True(t, ok)
	res, _ = h(context.Background(), Event{})
	assert.Equal(t, "generic", res.ActionName)

	_, ok = ResolveHandler(a, "unlink", "account.move")
	assert.False(t, ok)
}
