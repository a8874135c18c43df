// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/recallset"
)

// RecallPointQuery is the builder for querying RecallPoint entities.
type RecallPointQuery struct {
	config
	ctx           *QueryContext
	order         []recallpoint.OrderOption
	inters        []Interceptor
	predicates    []predicate.RecallPoint
	withRecallSet *RecallSetQuery
	withOutcomes  *RecallOutcomeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecallPointQuery builder.
func (_q *RecallPointQuery) Where(ps ...predicate.RecallPoint) *RecallPointQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecallPointQuery) Limit(limit int) *RecallPointQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecallPointQuery) Offset(offset int) *RecallPointQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecallPointQuery) Unique(unique bool) *RecallPointQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecallPointQuery) Order(o ...recallpoint.OrderOption) *RecallPointQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRecallSet chains the current query on the "recall_set" edge.
func (_q *RecallPointQuery) QueryRecallSet() *RecallSetQuery {
	query := (&RecallSetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recallpoint.Table, recallpoint.FieldID, selector),
			sqlgraph.To(recallset.Table, recallset.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recallpoint.RecallSetTable, recallpoint.RecallSetColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutcomes chains the current query on the "outcomes" edge.
func (_q *RecallPointQuery) QueryOutcomes() *RecallOutcomeQuery {
	query := (&RecallOutcomeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recallpoint.Table, recallpoint.FieldID, selector),
			sqlgraph.To(recalloutcome.Table, recalloutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recallpoint.OutcomesTable, recallpoint.OutcomesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RecallPoint entity from the query.
// Returns a *NotFoundError when no RecallPoint was found.
func (_q *RecallPointQuery) First(ctx context.Context) (*RecallPoint, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recallpoint.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecallPointQuery) FirstX(ctx context.Context) *RecallPoint {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RecallPoint ID from the query.
// Returns a *NotFoundError when no RecallPoint ID was found.
func (_q *RecallPointQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recallpoint.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecallPointQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RecallPoint entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RecallPoint entity is found.
// Returns a *NotFoundError when no RecallPoint entities are found.
func (_q *RecallPointQuery) Only(ctx context.Context) (*RecallPoint, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recallpoint.Label}
	default:
		return nil, &NotSingularError{recallpoint.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecallPointQuery) OnlyX(ctx context.Context) *RecallPoint {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RecallPoint ID in the query.
// Returns a *NotSingularError when more than one RecallPoint ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecallPointQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recallpoint.Label}
	default:
		err = &NotSingularError{recallpoint.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecallPointQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RecallPoints.
func (_q *RecallPointQuery) All(ctx context.Context) ([]*RecallPoint, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RecallPoint, *RecallPointQuery]()
	return withInterceptors[[]*RecallPoint](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecallPointQuery) AllX(ctx context.Context) []*RecallPoint {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RecallPoint IDs.
func (_q *RecallPointQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(recallpoint.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecallPointQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecallPointQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecallPointQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecallPointQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecallPointQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RecallPointQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecallPointQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecallPointQuery) Clone() *RecallPointQuery {
	if _q == nil {
		return nil
	}
	return &RecallPointQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]recallpoint.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.RecallPoint{}, _q.predicates...),
		withRecallSet: _q.withRecallSet.Clone(),
		withOutcomes:  _q.withOutcomes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRecallSet tells the query-builder to eager-load the nodes that are connected to
// the "recall_set" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecallPointQuery) WithRecallSet(opts ...func(*RecallSetQuery)) *RecallPointQuery {
	query := (&RecallSetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecallSet = query
	return _q
}

// WithOutcomes tells the query-builder to eager-load the nodes that are connected to
// the "outcomes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecallPointQuery) WithOutcomes(opts ...func(*RecallOutcomeQuery)) *RecallPointQuery {
	query := (&RecallOutcomeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutcomes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RecallSetID string `json:"recall_set_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RecallPoint.Query().
//		GroupBy(recallpoint.FieldRecallSetID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RecallPointQuery) GroupBy(field string, fields ...string) *RecallPointGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecallPointGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = recallpoint.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RecallSetID string `json:"recall_set_id,omitempty"`
//	}
//
//	client.RecallPoint.Query().
//		Select(recallpoint.FieldRecallSetID).
//		Scan(ctx, &v)
func (_q *RecallPointQuery) Select(fields ...string) *RecallPointSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecallPointSelect{RecallPointQuery: _q}
	sbuild.label = recallpoint.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecallPointSelect configured with the given aggregations.
func (_q *RecallPointQuery) Aggregate(fns ...AggregateFunc) *RecallPointSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecallPointQuery) prepareQuery(ctx context.Context) error {
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
		if !recallpoint.ValidColumn(f) {
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

func (_q *RecallPointQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RecallPoint, error) {
	var (
		nodes       = []*RecallPoint{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRecallSet != nil,
			_q.withOutcomes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RecallPoint).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RecallPoint{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withRecallSet; query != nil {
		if err := _q.loadRecallSet(ctx, query, nodes, nil,
			func(n *RecallPoint, e *RecallSet) { n.Edges.RecallSet = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutcomes; query != nil {
		if err := _q.loadOutcomes(ctx, query, nodes,
			func(n *RecallPoint) { n.Edges.Outcomes = []*RecallOutcome{} },
			func(n *RecallPoint, e *RecallOutcome) { n.Edges.Outcomes = append(n.Edges.Outcomes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecallPointQuery) loadRecallSet(ctx context.Context, query *RecallSetQuery, nodes []*RecallPoint, init func(*RecallPoint), assign func(*RecallPoint, *RecallSet)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*RecallPoint)
	for i := range nodes {
		fk := nodes[i].RecallSetID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(recallset.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recall_set_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecallPointQuery) loadOutcomes(ctx context.Context, query *RecallOutcomeQuery, nodes []*RecallPoint, init func(*RecallPoint), assign func(*RecallPoint, *RecallOutcome)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RecallPoint)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(recalloutcome.FieldRecallPointID)
	}
	query.Where(predicate.RecallOutcome(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recallpoint.OutcomesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecallPointID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recall_point_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RecallPointQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecallPointQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recallpoint.Table, recallpoint.Columns, sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recallpoint.FieldID)
		for i := range fields {
			if fields[i] != recallpoint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRecallSet != nil {
			_spec.Node.AddColumnOnce(recallpoint.FieldRecallSetID)
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

func (_q *RecallPointQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(recallpoint.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = recallpoint.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// RecallPointGroupBy is the group-by builder for RecallPoint entities.
type RecallPointGroupBy struct {
	selector
	build *RecallPointQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecallPointGroupBy) Aggregate(fns ...AggregateFunc) *RecallPointGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecallPointGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecallPointQuery, *RecallPointGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecallPointGroupBy) sqlScan(ctx context.Context, root *RecallPointQuery, v any) error {
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

// RecallPointSelect is the builder for selecting fields of RecallPoint entities.
type RecallPointSelect struct {
	*RecallPointQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecallPointSelect) Aggregate(fns ...AggregateFunc) *RecallPointSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecallPointSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecallPointQuery, *RecallPointSelect](ctx, _s.RecallPointQuery, _s, _s.inters, v)
}

func (_s *RecallPointSelect) sqlScan(ctx context.Context, root *RecallPointQuery, v any) error {
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
