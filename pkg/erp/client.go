// Package erp provides the client port for the ERP system.
// All orchestrator components talk to the ERP exclusively through Client;
// the concrete implementation speaks Odoo-style JSON-RPC.
package erp

import "context"

// Record is a single ERP record as returned by read/search_read.
// Many-to-one fields arrive as [id, display_name] pairs.
type Record map[string]any

// Client is the uniform data-access port over the ERP.
type Client interface {
	// Search returns the ids of records matching the domain filter.
	Search(ctx context.Context, model string, domain Domain, limit int) ([]int64, error)

	// Read returns one record projected to the given fields (nil = all).
	Read(ctx context.Context, model string, id int64, fields []string) (Record, error)

	// SearchRead combines search and read in one round trip.
	SearchRead(ctx context.Context, model string, domain Domain, opts SearchOptions) ([]Record, error)

	// SearchCount returns the number of records matching the domain.
	SearchCount(ctx context.Context, model string, domain Domain) (int, error)

	// Create inserts a record and returns its id.
	Create(ctx context.Context, model string, values map[string]any) (int64, error)

	// Write updates the given records.
	Write(ctx context.Context, model string, ids []int64, values map[string]any) error

	// ExecuteMethod calls an arbitrary model method (e.g. action_post).
	ExecuteMethod(ctx context.Context, model, method string, ids []int64, args ...any) (any, error)
}

// SearchOptions narrows a SearchRead call.
type SearchOptions struct {
	Fields []string
	Limit  int
	Order  string
}

// Many2One extracts the id from a many-to-one field value, which the ERP
// returns as [id, display_name]. Returns 0, "" when the field is unset
// (false in the wire format) or malformed.
func Many2One(v any) (int64, string) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return 0, ""
	}
	id, ok := toInt64(pair[0])
	if !ok {
		return 0, ""
	}
	name, _ := pair[1].(string)
	return id, name
}

// Float reads a numeric field, tolerating the int/float ambiguity of JSON.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

// Str reads a string field, mapping the ERP's false-for-empty to "".
func Str(v any) string {
	s, _ := v.(string)
	return s
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// Int reads an integer field.
func Int(v any) int64 {
	n, _ := toInt64(v)
	return n
}
