package automations

import (
	"context"
	"fmt"
	"sync"

	"github.com/steward-ai/steward/pkg/erp"
)

type writeCall struct {
	Model  string
	IDs    []int64
	Values map[string]any
}

type methodCall struct {
	Model  string
	Method string
	IDs    []int64
	Args   []any
}

type createCall struct {
	Model  string
	Values map[string]any
}

// fakeERP is an in-memory erp.Client. Records are seeded per model; search
// domains evaluate condition triples with implicit AND (the only form the
// automations build). Mutations are recorded, not applied.
type fakeERP struct {
	mu      sync.Mutex
	records map[string][]erp.Record
	nextID  int64

	writes  []writeCall
	methods []methodCall
	creates []createCall

	err error
}

func newFakeERP() *fakeERP {
	return &fakeERP{records: make(map[string][]erp.Record), nextID: 1000}
}

func (f *fakeERP) seed(model string, recs ...erp.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[model] = append(f.records[model], recs...)
}

func (f *fakeERP) Search(_ context.Context, model string, domain erp.Domain, limit int) ([]int64, error) {
	recs, err := f.SearchRead(nil, model, domain, erp.SearchOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, erp.Int(r["id"]))
	}
	return ids, nil
}

func (f *fakeERP) Read(_ context.Context, model string, id int64, _ []string) (erp.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.records[model] {
		if erp.Int(r["id"]) == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("fake erp: %s record %d not found", model, id)
}

func (f *fakeERP) SearchRead(_ context.Context, model string, domain erp.Domain, opts erp.SearchOptions) ([]erp.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []erp.Record
	for _, r := range f.records[model] {
		if matchesDomain(r, domain) {
			out = append(out, r)
		}
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (f *fakeERP) SearchCount(ctx context.Context, model string, domain erp.Domain) (int, error) {
	recs, err := f.SearchRead(ctx, model, domain, erp.SearchOptions{})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (f *fakeERP) Create(_ context.Context, model string, values map[string]any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.nextID++
	f.creates = append(f.creates, createCall{Model: model, Values: values})
	return f.nextID, nil
}

func (f *fakeERP) Write(_ context.Context, model string, ids []int64, values map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, writeCall{Model: model, IDs: ids, Values: values})
	return nil
}

func (f *fakeERP) ExecuteMethod(_ context.Context, model, method string, ids []int64, args ...any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.methods = append(f.methods, methodCall{Model: model, Method: method, IDs: ids, Args: args})
	return true, nil
}

// matchesDomain evaluates condition triples with implicit AND. Prefix
// operators are not evaluated; the automations never emit them.
func matchesDomain(rec erp.Record, domain erp.Domain) bool {
	for _, item := range domain {
		cond, ok := item.([]any)
		if !ok || len(cond) != 3 {
			continue
		}
		field, _ := cond[0].(string)
		op, _ := cond[1].(string)
		if !evalCondition(rec[field], op, cond[2]) {
			return false
		}
	}
	return true
}

func evalCondition(have any, op string, want any) bool {
	switch op {
	case "=":
		return compareValues(have, want) == 0
	case "!=":
		return compareValues(have, want) != 0
	case ">":
		return compareValues(have, want) > 0
	case ">=":
		return compareValues(have, want) >= 0
	case "<":
		return compareValues(have, want) < 0
	case "<=":
		return compareValues(have, want) <= 0
	case "in":
		items, _ := want.([]any)
		for _, item := range items {
			if compareValues(have, item) == 0 {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// compareValues compares numerically when both sides look numeric, by
// string otherwise. Many-to-one values compare on their id.
func compareValues(have, want any) int {
	if b, ok := have.(bool); ok {
		wb, _ := want.(bool)
		if b == wb {
			return 0
		}
		return 1
	}
	if pair, ok := have.([]any); ok && len(pair) == 2 {
		have = pair[0]
	}
	hf, hNum := asFloat(have)
	wf, wNum := asFloat(want)
	if hNum && wNum {
		switch {
		case hf < wf:
			return -1
		case hf > wf:
			return 1
		default:
			return 0
		}
	}
	hs, ws := erp.Str(have), fmt.Sprintf("%v", want)
	switch {
	case hs < ws:
		return -1
	case hs > ws:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
