package erp

// Domain is an ERP search filter: a polish-notation sequence of condition
// triples optionally interleaved with the prefix operators "|", "&", "!".
// The zero value matches all records.
type Domain []any

// Condition builds a single (field, operator, value) triple.
func Condition(field, operator string, value any) []any {
	return []any{field, operator, value}
}

// NewDomain builds a domain from condition triples joined by implicit AND.
func NewDomain(conditions ...[]any) Domain {
	d := make(Domain, 0, len(conditions))
	for _, c := range conditions {
		d = append(d, c)
	}
	return d
}

// And appends a condition (implicit AND in polish notation).
func (d Domain) And(field, operator string, value any) Domain {
	return append(d, Condition(field, operator, value))
}

// Or prefixes the disjunction operator and appends two conditions.
func (d Domain) Or(a, b []any) Domain {
	return append(d, "|", a, b)
}

// Not prefixes the negation operator and appends a condition.
func (d Domain) Not(field, operator string, value any) Domain {
	return append(d, "!", Condition(field, operator, value))
}

// wire returns the JSON-RPC representation. Conditions stay as 3-element
// arrays, prefix operators as bare strings.
func (d Domain) wire() []any {
	if d == nil {
		return []any{}
	}
	return []any(d)
}
