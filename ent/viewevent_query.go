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
	"github.com/tanmay/wordtrail/ent/predicate"
	"github.com/tanmay/wordtrail/ent/viewevent"
)

// ViewEventQuery is the builder for querying ViewEvent entities.
type ViewEventQuery struct {
	config
	ctx        *QueryContext
	order      []viewevent.OrderOption
	inters     []Interceptor
	predicates []predicate.ViewEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ViewEventQuery builder.
func (veq *ViewEventQuery) Where(ps ...predicate.ViewEvent) *ViewEventQuery {
	veq.predicates = append(veq.predicates, ps...)
	return veq
}

// Limit the number of records to be returned by this query.
func (veq *ViewEventQuery) Limit(limit int) *ViewEventQuery {
	veq.ctx.Limit = &limit
	return veq
}

// Offset to start from.
func (veq *ViewEventQuery) Offset(offset int) *ViewEventQuery {
	veq.ctx.Offset = &offset
	return veq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (veq *ViewEventQuery) Unique(unique bool) *ViewEventQuery {
	veq.ctx.Unique = &unique
	return veq
}

// Order specifies how the records should be ordered.
func (veq *ViewEventQuery) Order(o ...viewevent.OrderOption) *ViewEventQuery {
	veq.order = append(veq.order, o...)
	return veq
}

// First returns the first ViewEvent entity from the query.
// Returns a *NotFoundError when no ViewEvent was found.
func (veq *ViewEventQuery) First(ctx context.Context) (*ViewEvent, error) {
	nodes, err := veq.Limit(1).All(setContextOp(ctx, veq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{viewevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (veq *ViewEventQuery) FirstX(ctx context.Context) *ViewEvent {
	node, err := veq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ViewEvent ID from the query.
// Returns a *NotFoundError when no ViewEvent ID was found.
func (veq *ViewEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = veq.Limit(1).IDs(setContextOp(ctx, veq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{viewevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (veq *ViewEventQuery) FirstIDX(ctx context.Context) int {
	id, err := veq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ViewEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ViewEvent entity is found.
// Returns a *NotFoundError when no ViewEvent entities are found.
func (veq *ViewEventQuery) Only(ctx context.Context) (*ViewEvent, error) {
	nodes, err := veq.Limit(2).All(setContextOp(ctx, veq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{viewevent.Label}
	default:
		return nil, &NotSingularError{viewevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (veq *ViewEventQuery) OnlyX(ctx context.Context) *ViewEvent {
	node, err := veq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ViewEvent ID in the query.
// Returns a *NotSingularError when more than one ViewEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (veq *ViewEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = veq.Limit(2).IDs(setContextOp(ctx, veq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{viewevent.Label}
	default:
		err = &NotSingularError{viewevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (veq *ViewEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := veq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ViewEvents.
func (veq *ViewEventQuery) All(ctx context.Context) ([]*ViewEvent, error) {
	ctx = setContextOp(ctx, veq.ctx, ent.OpQueryAll)
	if err := veq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ViewEvent, *ViewEventQuery]()
	return withInterceptors[[]*ViewEvent](ctx, veq, qr, veq.inters)
}

// AllX is like All, but panics if an error occurs.
func (veq *ViewEventQuery) AllX(ctx context.Context) []*ViewEvent {
	nodes, err := veq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ViewEvent IDs.
func (veq *ViewEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if veq.ctx.Unique == nil && veq.path != nil {
		veq.Unique(true)
	}
	ctx = setContextOp(ctx, veq.ctx, ent.OpQueryIDs)
	if err = veq.Select(viewevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (veq *ViewEventQuery) IDsX(ctx context.Context) []int {
	ids, err := veq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (veq *ViewEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, veq.ctx, ent.OpQueryCount)
	if err := veq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, veq, querierCount[*ViewEventQuery](), veq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (veq *ViewEventQuery) CountX(ctx context.Context) int {
	count, err := veq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (veq *ViewEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, veq.ctx, ent.OpQueryExist)
	switch _, err := veq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (veq *ViewEventQuery) ExistX(ctx context.Context) bool {
	exist, err := veq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ViewEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (veq *ViewEventQuery) Clone() *ViewEventQuery {
	if veq == nil {
		return nil
	}
	return &ViewEventQuery{
		config:     veq.config,
		ctx:        veq.ctx.Clone(),
		order:      append([]viewevent.OrderOption{}, veq.order...),
		inters:     append([]Interceptor{}, veq.inters...),
		predicates: append([]predicate.ViewEvent{}, veq.predicates...),
		// clone intermediate query.
		sql:  veq.sql.Clone(),
		path: veq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ViewEvent.Query().
//		GroupBy(viewevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (veq *ViewEventQuery) GroupBy(field string, fields ...string) *ViewEventGroupBy {
	veq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ViewEventGroupBy{build: veq}
	grbuild.flds = &veq.ctx.Fields
	grbuild.label = viewevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.ViewEvent.Query().
//		Select(viewevent.FieldSequence).
//		Scan(ctx, &v)
func (veq *ViewEventQuery) Select(fields ...string) *ViewEventSelect {
	veq.ctx.Fields = append(veq.ctx.Fields, fields...)
	sbuild := &ViewEventSelect{ViewEventQuery: veq}
	sbuild.label = viewevent.Label
	sbuild.flds, sbuild.scan = &veq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ViewEventSelect configured with the given aggregations.
func (veq *ViewEventQuery) Aggregate(fns ...AggregateFunc) *ViewEventSelect {
	return veq.Select().Aggregate(fns...)
}

func (veq *ViewEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range veq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, veq); err != nil {
				return err
			}
		}
	}
	for _, f := range veq.ctx.Fields {
		if !viewevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if veq.path != nil {
		prev, err := veq.path(ctx)
		if err != nil {
			return err
		}
		veq.sql = prev
	}
	return nil
}

func (veq *ViewEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ViewEvent, error) {
	var (
		nodes = []*ViewEvent{}
		_spec = veq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ViewEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ViewEvent{config: veq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, veq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (veq *ViewEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := veq.querySpec()
	_spec.Node.Columns = veq.ctx.Fields
	if len(veq.ctx.Fields) > 0 {
		_spec.Unique = veq.ctx.Unique != nil && *veq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, veq.driver, _spec)
}

func (veq *ViewEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(viewevent.Table, viewevent.Columns, sqlgraph.NewFieldSpec(viewevent.FieldID, field.TypeInt))
	_spec.From = veq.sql
	if unique := veq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if veq.path != nil {
		_spec.Unique = true
	}
	if fields := veq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, viewevent.FieldID)
		for i := range fields {
			if fields[i] != viewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := veq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := veq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := veq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := veq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (veq *ViewEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(veq.driver.Dialect())
	t1 := builder.Table(viewevent.Table)
	columns := veq.ctx.Fields
	if len(columns) == 0 {
		columns = viewevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if veq.sql != nil {
		selector = veq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if veq.ctx.Unique != nil && *veq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range veq.predicates {
		p(selector)
	}
	for _, p := range veq.order {
		p(selector)
	}
	if offset := veq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := veq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ViewEventGroupBy is the group-by builder for ViewEvent entities.
type ViewEventGroupBy struct {
	selector
	build *ViewEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vegb *ViewEventGroupBy) Aggregate(fns ...AggregateFunc) *ViewEventGroupBy {
	vegb.fns = append(vegb.fns, fns...)
	return vegb
}

// Scan applies the selector query and scans the result into the given value.
func (vegb *ViewEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vegb.build.ctx, ent.OpQueryGroupBy)
	if err := vegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ViewEventQuery, *ViewEventGroupBy](ctx, vegb.build, vegb, vegb.build.inters, v)
}

func (vegb *ViewEventGroupBy) sqlScan(ctx context.Context, root *ViewEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vegb.fns))
	for _, fn := range vegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vegb.flds)+len(vegb.fns))
		for _, f := range *vegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ViewEventSelect is the builder for selecting fields of ViewEvent entities.
type ViewEventSelect struct {
	*ViewEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ves *ViewEventSelect) Aggregate(fns ...AggregateFunc) *ViewEventSelect {
	ves.fns = append(ves.fns, fns...)
	return ves
}

// Scan applies the selector query and scans the result into the given value.
func (ves *ViewEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ves.ctx, ent.OpQuerySelect)
	if err := ves.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ViewEventQuery, *ViewEventSelect](ctx, ves.ViewEventQuery, ves, ves.inters, v)
}

func (ves *ViewEventSelect) sqlScan(ctx context.Context, root *ViewEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ves.fns))
	for _, fn := range ves.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ves.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ves.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
