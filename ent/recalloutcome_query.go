// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// RecallOutcomeQuery is the builder for querying RecallOutcome entities.
type RecallOutcomeQuery struct {
	config
	ctx         *QueryContext
	order       []recalloutcome.OrderOption
	inters      []Interceptor
	predicates  []predicate.RecallOutcome
	withSession *StudySessionQuery
	withPoint   *RecallPointQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecallOutcomeQuery builder.
func (_q *RecallOutcomeQuery) Where(ps ...predicate.RecallOutcome) *RecallOutcomeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecallOutcomeQuery) Limit(limit int) *RecallOutcomeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecallOutcomeQuery) Offset(offset int) *RecallOutcomeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecallOutcomeQuery) Unique(unique bool) *RecallOutcomeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecallOutcomeQuery) Order(o ...recalloutcome.OrderOption) *RecallOutcomeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySession chains the current query on the "session" edge.
func (_q *RecallOutcomeQuery) QuerySession() *StudySessionQuery {
	query := (&StudySessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recalloutcome.Table, recalloutcome.FieldID, selector),
			sqlgraph.To(studysession.Table, studysession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recalloutcome.SessionTable, recalloutcome.SessionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPoint chains the current query on the "point" edge.
func (_q *RecallOutcomeQuery) QueryPoint() *RecallPointQuery {
	query := (&RecallPointClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recalloutcome.Table, recalloutcome.FieldID, selector),
			sqlgraph.To(recallpoint.Table, recallpoint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recalloutcome.PointTable, recalloutcome.PointColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RecallOutcome entity from the query.
// Returns a *NotFoundError when no RecallOutcome was found.
func (_q *RecallOutcomeQuery) First(ctx context.Context) (*RecallOutcome, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recalloutcome.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecallOutcomeQuery) FirstX(ctx context.Context) *RecallOutcome {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RecallOutcome ID from the query.
// Returns a *NotFoundError when no RecallOutcome ID was found.
func (_q *RecallOutcomeQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recalloutcome.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecallOutcomeQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RecallOutcome entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RecallOutcome entity is found.
// Returns a *NotFoundError when no RecallOutcome entities are found.
func (_q *RecallOutcomeQuery) Only(ctx context.Context) (*RecallOutcome, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recalloutcome.Label}
	default:
		return nil, &NotSingularError{recalloutcome.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecallOutcomeQuery) OnlyX(ctx context.Context) *RecallOutcome {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RecallOutcome ID in the query.
// Returns a *NotSingularError when more than one RecallOutcome ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecallOutcomeQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recalloutcome.Label}
	default:
		err = &NotSingularError{recalloutcome.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecallOutcomeQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RecallOutcomes.
func (_q *RecallOutcomeQuery) All(ctx context.Context) ([]*RecallOutcome, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RecallOutcome, *RecallOutcomeQuery]()
	return withInterceptors[[]*RecallOutcome](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecallOutcomeQuery) AllX(ctx context.Context) []*RecallOutcome {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RecallOutcome IDs.
func (_q *RecallOutcomeQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(recalloutcome.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecallOutcomeQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecallOutcomeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecallOutcomeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecallOutcomeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecallOutcomeQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RecallOutcomeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecallOutcomeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecallOutcomeQuery) Clone() *RecallOutcomeQuery {
	if _q == nil {
		return nil
	}
	return &RecallOutcomeQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]recalloutcome.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.RecallOutcome{}, _q.predicates...),
		withSession: _q.withSession.Clone(),
		withPoint:   _q.withPoint.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSession tells the query-builder to eager-load the nodes that are connected to
// the "session" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecallOutcomeQuery) WithSession(opts ...func(*StudySessionQuery)) *RecallOutcomeQuery {
	query := (&StudySessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSession = query
	return _q
}

// WithPoint tells the query-builder to eager-load the nodes that are connected to
// the "point" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecallOutcomeQuery) WithPoint(opts ...func(*RecallPointQuery)) *RecallOutcomeQuery {
	query := (&RecallPointClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPoint = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RecallOutcome.Query().
//		GroupBy(recalloutcome.FieldSessionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RecallOutcomeQuery) GroupBy(field string, fields ...string) *RecallOutcomeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecallOutcomeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = recalloutcome.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//	}
//
//	client.RecallOutcome.Query().
//		Select(recalloutcome.FieldSessionID).
//		Scan(ctx, &v)
func (_q *RecallOutcomeQuery) Select(fields ...string) *RecallOutcomeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecallOutcomeSelect{RecallOutcomeQuery: _q}
	sbuild.label = recalloutcome.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecallOutcomeSelect configured with the given aggregations.
func (_q *RecallOutcomeQuery) Aggregate(fns ...AggregateFunc) *RecallOutcomeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecallOutcomeQuery) prepareQuery(ctx context.Context) error {
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
		if !recalloutcome.ValidColumn(f) {
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

func (_q *RecallOutcomeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RecallOutcome, error) {
	var (
		nodes       = []*RecallOutcome{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSession != nil,
			_q.withPoint != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RecallOutcome).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RecallOutcome{config: _q.config}
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
	if query := _q.withSession; query != nil {
		if err := _q.loadSession(ctx, query, nodes, nil,
			func(n *RecallOutcome, e *StudySession) { n.Edges.Session = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPoint; query != nil {
		if err := _q.loadPoint(ctx, query, nodes, nil,
			func(n *RecallOutcome, e *RecallPoint) { n.Edges.Point = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecallOutcomeQuery) loadSession(ctx context.Context, query *StudySessionQuery, nodes []*RecallOutcome, init func(*RecallOutcome), assign func(*RecallOutcome, *StudySession)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*RecallOutcome)
	for i := range nodes {
		fk := nodes[i].SessionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(studysession.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "session_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecallOutcomeQuery) loadPoint(ctx context.Context, query *RecallPointQuery, nodes []*RecallOutcome, init func(*RecallOutcome), assign func(*RecallOutcome, *RecallPoint)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*RecallOutcome)
	for i := range nodes {
		fk := nodes[i].RecallPointID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(recallpoint.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recall_point_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RecallOutcomeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecallOutcomeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recalloutcome.Table, recalloutcome.Columns, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recalloutcome.FieldID)
		for i := range fields {
			if fields[i] != recalloutcome.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSession != nil {
			_spec.Node.AddColumnOnce(recalloutcome.FieldSessionID)
		}
		if _q.withPoint != nil {
			_spec.Node.AddColumnOnce(recalloutcome.FieldRecallPointID)
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

func (_q *RecallOutcomeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(recalloutcome.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = recalloutcome.Columns
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

// RecallOutcomeGroupBy is the group-by builder for RecallOutcome entities.
type RecallOutcomeGroupBy struct {
	selector
	build *RecallOutcomeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecallOutcomeGroupBy) Aggregate(fns ...AggregateFunc) *RecallOutcomeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecallOutcomeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecallOutcomeQuery, *RecallOutcomeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecallOutcomeGroupBy) sqlScan(ctx context.Context, root *RecallOutcomeQuery, v any) error {
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

// RecallOutcomeSelect is the builder for selecting fields of RecallOutcome entities.
type RecallOutcomeSelect struct {
	*RecallOutcomeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecallOutcomeSelect) Aggregate(fns ...AggregateFunc) *RecallOutcomeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecallOutcomeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecallOutcomeQuery, *RecallOutcomeSelect](ctx, _s.RecallOutcomeQuery, _s, _s.inters, v)
}

func (_s *RecallOutcomeSelect) sqlScan(ctx context.Context, root *RecallOutcomeQuery, v any) error {
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
