// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskFactorQuery is the builder for querying SupplierRiskFactor entities.
type SupplierRiskFactorQuery struct {
	config
	ctx           *QueryContext
	order         []supplierriskfactor.OrderOption
	inters        []Interceptor
	predicates    []predicate.SupplierRiskFactor
	withRiskScore *SupplierRiskScoreQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SupplierRiskFactorQuery builder.
func (_q *SupplierRiskFactorQuery) Where(ps ...predicate.SupplierRiskFactor) *SupplierRiskFactorQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SupplierRiskFactorQuery) Limit(limit int) *SupplierRiskFactorQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SupplierRiskFactorQuery) Offset(offset int) *SupplierRiskFactorQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SupplierRiskFactorQuery) Unique(unique bool) *SupplierRiskFactorQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SupplierRiskFactorQuery) Order(o ...supplierriskfactor.OrderOption) *SupplierRiskFactorQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRiskScore chains the current query on the "risk_score" edge.
func (_q *SupplierRiskFactorQuery) QueryRiskScore() *SupplierRiskScoreQuery {
	query := (&SupplierRiskScoreClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(supplierriskfactor.Table, supplierriskfactor.FieldID, selector),
			sqlgraph.To(supplierriskscore.Table, supplierriskscore.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, supplierriskfactor.RiskScoreTable, supplierriskfactor.RiskScoreColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SupplierRiskFactor entity from the query.
// Returns a *NotFoundError when no SupplierRiskFactor was found.
func (_q *SupplierRiskFactorQuery) First(ctx context.Context) (*SupplierRiskFactor, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{supplierriskfactor.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) FirstX(ctx context.Context) *SupplierRiskFactor {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SupplierRiskFactor ID from the query.
// Returns a *NotFoundError when no SupplierRiskFactor ID was found.
func (_q *SupplierRiskFactorQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{supplierriskfactor.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SupplierRiskFactor entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SupplierRiskFactor entity is found.
// Returns a *NotFoundError when no SupplierRiskFactor entities are found.
func (_q *SupplierRiskFactorQuery) Only(ctx context.Context) (*SupplierRiskFactor, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{supplierriskfactor.Label}
	default:
		return nil, &NotSingularError{supplierriskfactor.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) OnlyX(ctx context.Context) *SupplierRiskFactor {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SupplierRiskFactor ID in the query.
// Returns a *NotSingularError when more than one SupplierRiskFactor ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SupplierRiskFactorQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{supplierriskfactor.Label}
	default:
		err = &NotSingularError{supplierriskfactor.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SupplierRiskFactors.
func (_q *SupplierRiskFactorQuery) All(ctx context.Context) ([]*SupplierRiskFactor, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SupplierRiskFactor, *SupplierRiskFactorQuery]()
	return withInterceptors[[]*SupplierRiskFactor](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) AllX(ctx context.Context) []*SupplierRiskFactor {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SupplierRiskFactor IDs.
func (_q *SupplierRiskFactorQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(supplierriskfactor.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SupplierRiskFactorQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SupplierRiskFactorQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SupplierRiskFactorQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SupplierRiskFactorQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SupplierRiskFactorQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SupplierRiskFactorQuery) Clone() *SupplierRiskFactorQuery {
	if _q == nil {
		return nil
	}
	return &SupplierRiskFactorQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]supplierriskfactor.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.SupplierRiskFactor{}, _q.predicates...),
		withRiskScore: _q.withRiskScore.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRiskScore tells the query-builder to eager-load the nodes that are connected to
// the "risk_score" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SupplierRiskFactorQuery) WithRiskScore(opts ...func(*SupplierRiskScoreQuery)) *SupplierRiskFactorQuery {
	query := (&SupplierRiskScoreClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRiskScore = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RiskScoreID string `json:"risk_score_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SupplierRiskFactor.Query().
//		GroupBy(supplierriskfactor.FieldRiskScoreID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SupplierRiskFactorQuery) GroupBy(field string, fields ...string) *SupplierRiskFactorGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SupplierRiskFactorGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = supplierriskfactor.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RiskScoreID string `json:"risk_score_id,omitempty"`
//	}
//
//	client.SupplierRiskFactor.Query().
//		Select(supplierriskfactor.FieldRiskScoreID).
//		Scan(ctx, &v)
func (_q *SupplierRiskFactorQuery) Select(fields ...string) *SupplierRiskFactorSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SupplierRiskFactorSelect{SupplierRiskFactorQuery: _q}
	sbuild.label = supplierriskfactor.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SupplierRiskFactorSelect configured with the given aggregations.
func (_q *SupplierRiskFactorQuery) Aggregate(fns ...AggregateFunc) *SupplierRiskFactorSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SupplierRiskFactorQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !supplierriskfactor.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SupplierRiskFactorQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SupplierRiskFactor, error) {
	var (
		nodes       = []*SupplierRiskFactor{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withRiskScore != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SupplierRiskFactor).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SupplierRiskFactor{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRiskScore; query != nil {
		if err := _q.loadRiskScore(ctx, query, nodes, nil,
			func(n *SupplierRiskFactor, e *SupplierRiskScore) { n.Edges.RiskScore = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SupplierRiskFactorQuery) loadRiskScore(ctx context.Context, query *SupplierRiskScoreQuery, nodes []*SupplierRiskFactor, init func(*SupplierRiskFactor), assign func(*SupplierRiskFactor, *SupplierRiskScore)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SupplierRiskFactor)
	for i := range nodes {
		fk := nodes[i].RiskScoreID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(supplierriskscore.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "risk_score_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SupplierRiskFactorQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SupplierRiskFactorQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(supplierriskfactor.Table, supplierriskfactor.Columns, sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplierriskfactor.FieldID)
		for i := range fields {
			if fields[i] != supplierriskfactor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRiskScore != nil {
			_spec.Node.AddColumnOnce(supplierriskfactor.FieldRiskScoreID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SupplierRiskFactorQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(supplierriskfactor.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = supplierriskfactor.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *SupplierRiskFactorQuery) ForUpdate(opts ...sql.LockOption) *SupplierRiskFactorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *SupplierRiskFactorQuery) ForShare(opts ...sql.LockOption) *SupplierRiskFactorQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// SupplierRiskFactorGroupBy is the group-by builder for SupplierRiskFactor entities.
type SupplierRiskFactorGroupBy struct {
	selector
	build *SupplierRiskFactorQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SupplierRiskFactorGroupBy) Aggregate(fns ...AggregateFunc) *SupplierRiskFactorGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SupplierRiskFactorGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SupplierRiskFactorQuery, *SupplierRiskFactorGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SupplierRiskFactorGroupBy) sqlScan(ctx context.Context, root *SupplierRiskFactorQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SupplierRiskFactorSelect is the builder for selecting fields of SupplierRiskFactor entities.
type SupplierRiskFactorSelect struct {
	*SupplierRiskFactorQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SupplierRiskFactorSelect) Aggregate(fns ...AggregateFunc) *SupplierRiskFactorSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SupplierRiskFactorSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SupplierRiskFactorQuery, *SupplierRiskFactorSelect](ctx, _s.SupplierRiskFactorQuery, _s, _s.inters, v)
}

func (_s *SupplierRiskFactorSelect) sqlScan(ctx context.Context, root *SupplierRiskFactorQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
