// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudySessionUpdate) SetStatus(v studysession.Status) *StudySessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStatus(v *studysession.Status) *StudySessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetPointIds sets the "target_point_ids" field.
func (_u *StudySessionUpdate) SetTargetPointIds(v []string) *StudySessionUpdate {
	_u.mutation.SetTargetPointIds(v)
	return _u
}

// AppendTargetPointIds appends value to the "target_point_ids" field.
func (_u *StudySessionUpdate) AppendTargetPointIds(v []string) *StudySessionUpdate {
	_u.mutation.AppendTargetPointIds(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *StudySessionUpdate) SetEndedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableEndedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *StudySessionUpdate) ClearEndedAt() *StudySessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StudySessionUpdate) SetLastActivityAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableLastActivityAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *StudySessionUpdate) ClearLastActivityAt() *StudySessionUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *StudySessionUpdate) SetMetrics(v map[string]interface{}) *StudySessionUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *StudySessionUpdate) ClearMetrics() *StudySessionUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// AddMessageIDs adds the "messages" edge to the SessionMessage entity by IDs.
func (_u *StudySessionUpdate) AddMessageIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the SessionMessage entity.
func (_u *StudySessionUpdate) AddMessages(v ...*SessionMessage) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by IDs.
func (_u *StudySessionUpdate) AddOutcomeIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the RecallOutcome entity.
func (_u *StudySessionUpdate) AddOutcomes(v ...*RecallOutcome) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// AddRabbitholeIDs adds the "rabbitholes" edge to the RabbitholeEvent entity by IDs.
func (_u *StudySessionUpdate) AddRabbitholeIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.AddRabbitholeIDs(ids...)
	return _u
}

// AddRabbitholes adds the "rabbitholes" edges to the RabbitholeEvent entity.
func (_u *StudySessionUpdate) AddRabbitholes(v ...*RabbitholeEvent) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRabbitholeIDs(ids...)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the SessionMessage entity.
func (_u *StudySessionUpdate) ClearMessages() *StudySessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to SessionMessage entities by IDs.
func (_u *StudySessionUpdate) RemoveMessageIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to SessionMessage entities.
func (_u *StudySessionUpdate) RemoveMessages(v ...*SessionMessage) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearOutcomes clears all "outcomes" edges to the RecallOutcome entity.
func (_u *StudySessionUpdate) ClearOutcomes() *StudySessionUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to RecallOutcome entities by IDs.
func (_u *StudySessionUpdate) RemoveOutcomeIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to RecallOutcome entities.
func (_u *StudySessionUpdate) RemoveOutcomes(v ...*RecallOutcome) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// ClearRabbitholes clears all "rabbitholes" edges to the RabbitholeEvent entity.
func (_u *StudySessionUpdate) ClearRabbitholes() *StudySessionUpdate {
	_u.mutation.ClearRabbitholes()
	return _u
}

// RemoveRabbitholeIDs removes the "rabbitholes" edge to RabbitholeEvent entities by IDs.
func (_u *StudySessionUpdate) RemoveRabbitholeIDs(ids ...string) *StudySessionUpdate {
	_u.mutation.RemoveRabbitholeIDs(ids...)
	return _u
}

// RemoveRabbitholes removes "rabbitholes" edges to RabbitholeEvent entities.
func (_u *StudySessionUpdate) RemoveRabbitholes(v ...*RabbitholeEvent) *StudySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRabbitholeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := studysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudySession.status": %w`, err)}
		}
	}
	if _u.mutation.RecallSetCleared() && len(_u.mutation.RecallSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StudySession.recall_set"`)
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetPointIds(); ok {
		_spec.SetField(studysession.FieldTargetPointIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetPointIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldTargetPointIds, value)
		})
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(studysession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(studysession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(studysession.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(studysession.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(studysession.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(studysession.FieldMetrics, field.TypeJSON)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RabbitholesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholesTable,
			Columns: []string{studysession.RabbitholesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRabbitholesIDs(); len(nodes) > 0 && !_u.mutation.RabbitholesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholesTable,
			Columns: []string{studysession.RabbitholesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RabbitholesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholesTable,
			Columns: []string{studysession.RabbitholesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetStatus sets the "status" field.
func (_u *StudySessionUpdateOne) SetStatus(v studysession.Status) *StudySessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStatus(v *studysession.Status) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetPointIds sets the "target_point_ids" field.
func (_u *StudySessionUpdateOne) SetTargetPointIds(v []string) *StudySessionUpdateOne {
	_u.mutation.SetTargetPointIds(v)
	return _u
}

// AppendTargetPointIds appends value to the "target_point_ids" field.
func (_u *StudySessionUpdateOne) AppendTargetPointIds(v []string) *StudySessionUpdateOne {
	_u.mutation.AppendTargetPointIds(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *StudySessionUpdateOne) SetEndedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableEndedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *StudySessionUpdateOne) ClearEndedAt() *StudySessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StudySessionUpdateOne) SetLastActivityAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableLastActivityAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *StudySessionUpdateOne) ClearLastActivityAt() *StudySessionUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *StudySessionUpdateOne) SetMetrics(v map[string]interface{}) *StudySessionUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *StudySessionUpdateOne) ClearMetrics() *StudySessionUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// AddMessageIDs adds the "messages" edge to the SessionMessage entity by IDs.
func (_u *StudySessionUpdateOne) AddMessageIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the SessionMessage entity.
func (_u *StudySessionUpdateOne) AddMessages(v ...*SessionMessage) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by IDs.
func (_u *StudySessionUpdateOne) AddOutcomeIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the RecallOutcome entity.
func (_u *StudySessionUpdateOne) AddOutcomes(v ...*RecallOutcome) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// AddRabbitholeIDs adds the "rabbitholes" edge to the RabbitholeEvent entity by IDs.
func (_u *StudySessionUpdateOne) AddRabbitholeIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.AddRabbitholeIDs(ids...)
	return _u
}

// AddRabbitholes adds the "rabbitholes" edges to the RabbitholeEvent entity.
func (_u *StudySessionUpdateOne) AddRabbitholes(v ...*RabbitholeEvent) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRabbitholeIDs(ids...)
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the SessionMessage entity.
func (_u *StudySessionUpdateOne) ClearMessages() *StudySessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to SessionMessage entities by IDs.
func (_u *StudySessionUpdateOne) RemoveMessageIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to SessionMessage entities.
func (_u *StudySessionUpdateOne) RemoveMessages(v ...*SessionMessage) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearOutcomes clears all "outcomes" edges to the RecallOutcome entity.
func (_u *StudySessionUpdateOne) ClearOutcomes() *StudySessionUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to RecallOutcome entities by IDs.
func (_u *StudySessionUpdateOne) RemoveOutcomeIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to RecallOutcome entities.
func (_u *StudySessionUpdateOne) RemoveOutcomes(v ...*RecallOutcome) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// ClearRabbitholes clears all "rabbitholes" edges to the RabbitholeEvent entity.
func (_u *StudySessionUpdateOne) ClearRabbitholes() *StudySessionUpdateOne {
	_u.mutation.ClearRabbitholes()
	return _u
}

// RemoveRabbitholeIDs removes the "rabbitholes" edge to RabbitholeEvent entities by IDs.
func (_u *StudySessionUpdateOne) RemoveRabbitholeIDs(ids ...string) *StudySessionUpdateOne {
	_u.mutation.RemoveRabbitholeIDs(ids...)
	return _u
}

// RemoveRabbitholes removes "rabbitholes" edges to RabbitholeEvent entities.
func (_u *StudySessionUpdateOne) RemoveRabbitholes(v ...*RabbitholeEvent) *StudySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRabbitholeIDs(ids...)
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := studysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudySession.status": %w`, err)}
		}
	}
	if _u.mutation.RecallSetCleared() && len(_u.mutation.RecallSetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StudySession.recall_set"`)
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetPointIds(); ok {
		_spec.SetField(studysession.FieldTargetPointIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetPointIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldTargetPointIds, value)
		})
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(studysession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(studysession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(studysession.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(studysession.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(studysession.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(studysession.FieldMetrics, field.TypeJSON)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.MessagesTable,
			Columns: []string{studysession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.OutcomesTable,
			Columns: []string{studysession.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RabbitholesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholesTable,
			Columns: []string{studysession.RabbitholesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRabbitholesIDs(); len(nodes) > 0 && !_u.mutation.RabbitholesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholesTable,
			Columns: []string{studysession.RabbitholesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RabbitholesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   studysession.RabbitholesTable,
			Columns: []string{studysession.RabbitholesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
