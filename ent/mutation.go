// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recollect-ai/recollect/ent/event"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/ent/studysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent           = "Event"
	TypeRabbitholeEvent = "RabbitholeEvent"
	TypeRecallOutcome   = "RecallOutcome"
	TypeRecallPoint     = "RecallPoint"
	TypeRecallSet       = "RecallSet"
	TypeSessionMessage  = "SessionMessage"
	TypeStudySession    = "StudySession"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_id    *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// RabbitholeEventMutation represents an operation that mutates the RabbitholeEvent nodes in the graph.
type RabbitholeEventMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	topic                      *string
	depth                      *int
	adddepth                   *int
	trigger_message_index      *int
	addtrigger_message_index   *int
	return_message_index       *int
	addreturn_message_index    *int
	conversation_history       *[]map[string]interface{}
	appendconversation_history []map[string]interface{}
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	session                    *string
	clearedsession             bool
	done                       bool
	oldValue                   func(context.Context) (*RabbitholeEvent, error)
	predicates                 []predicate.RabbitholeEvent
}

var _ ent.Mutation = (*RabbitholeEventMutation)(nil)

// rabbitholeeventOption allows management of the mutation configuration using functional options.
type rabbitholeeventOption func(*RabbitholeEventMutation)

// newRabbitholeEventMutation creates new mutation for the RabbitholeEvent entity.
func newRabbitholeEventMutation(c config, op Op, opts ...rabbitholeeventOption) *RabbitholeEventMutation {
	m := &RabbitholeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRabbitholeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRabbitholeEventID sets the ID field of the mutation.
func withRabbitholeEventID(id string) rabbitholeeventOption {
	return func(m *RabbitholeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RabbitholeEvent
		)
		m.oldValue = func(ctx context.Context) (*RabbitholeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RabbitholeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRabbitholeEvent sets the old RabbitholeEvent of the mutation.
func withRabbitholeEvent(node *RabbitholeEvent) rabbitholeeventOption {
	return func(m *RabbitholeEventMutation) {
		m.oldValue = func(context.Context) (*RabbitholeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RabbitholeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RabbitholeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RabbitholeEvent entities.
func (m *RabbitholeEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RabbitholeEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RabbitholeEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RabbitholeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RabbitholeEventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RabbitholeEventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RabbitholeEventMutation) ResetSessionID() {
	m.session = nil
}

// SetTopic sets the "topic" field.
func (m *RabbitholeEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *RabbitholeEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *RabbitholeEventMutation) ResetTopic() {
	m.topic = nil
}

// SetDepth sets the "depth" field.
func (m *RabbitholeEventMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *RabbitholeEventMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *RabbitholeEventMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *RabbitholeEventMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *RabbitholeEventMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetTriggerMessageIndex sets the "trigger_message_index" field.
func (m *RabbitholeEventMutation) SetTriggerMessageIndex(i int) {
	m.trigger_message_index = &i
	m.addtrigger_message_index = nil
}

// TriggerMessageIndex returns the value of the "trigger_message_index" field in the mutation.
func (m *RabbitholeEventMutation) TriggerMessageIndex() (r int, exists bool) {
	v := m.trigger_message_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerMessageIndex returns the old "trigger_message_index" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldTriggerMessageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerMessageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerMessageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerMessageIndex: %w", err)
	}
	return oldValue.TriggerMessageIndex, nil
}

// AddTriggerMessageIndex adds i to the "trigger_message_index" field.
func (m *RabbitholeEventMutation) AddTriggerMessageIndex(i int) {
	if m.addtrigger_message_index != nil {
		*m.addtrigger_message_index += i
	} else {
		m.addtrigger_message_index = &i
	}
}

// AddedTriggerMessageIndex returns the value that was added to the "trigger_message_index" field in this mutation.
func (m *RabbitholeEventMutation) AddedTriggerMessageIndex() (r int, exists bool) {
	v := m.addtrigger_message_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTriggerMessageIndex resets all changes to the "trigger_message_index" field.
func (m *RabbitholeEventMutation) ResetTriggerMessageIndex() {
	m.trigger_message_index = nil
	m.addtrigger_message_index = nil
}

// SetReturnMessageIndex sets the "return_message_index" field.
func (m *RabbitholeEventMutation) SetReturnMessageIndex(i int) {
	m.return_message_index = &i
	m.addreturn_message_index = nil
}

// ReturnMessageIndex returns the value of the "return_message_index" field in the mutation.
func (m *RabbitholeEventMutation) ReturnMessageIndex() (r int, exists bool) {
	v := m.return_message_index
	if v == nil {
		return
	}
	return *v, true
}

// OldReturnMessageIndex returns the old "return_message_index" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldReturnMessageIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReturnMessageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReturnMessageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReturnMessageIndex: %w", err)
	}
	return oldValue.ReturnMessageIndex, nil
}

// AddReturnMessageIndex adds i to the "return_message_index" field.
func (m *RabbitholeEventMutation) AddReturnMessageIndex(i int) {
	if m.addreturn_message_index != nil {
		*m.addreturn_message_index += i
	} else {
		m.addreturn_message_index = &i
	}
}

// AddedReturnMessageIndex returns the value that was added to the "return_message_index" field in this mutation.
func (m *RabbitholeEventMutation) AddedReturnMessageIndex() (r int, exists bool) {
	v := m.addreturn_message_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearReturnMessageIndex clears the value of the "return_message_index" field.
func (m *RabbitholeEventMutation) ClearReturnMessageIndex() {
	m.return_message_index = nil
	m.addreturn_message_index = nil
	m.clearedFields[rabbitholeevent.FieldReturnMessageIndex] = struct{}{}
}

// ReturnMessageIndexCleared returns if the "return_message_index" field was cleared in this mutation.
func (m *RabbitholeEventMutation) ReturnMessageIndexCleared() bool {
	_, ok := m.clearedFields[rabbitholeevent.FieldReturnMessageIndex]
	return ok
}

// ResetReturnMessageIndex resets all changes to the "return_message_index" field.
func (m *RabbitholeEventMutation) ResetReturnMessageIndex() {
	m.return_message_index = nil
	m.addreturn_message_index = nil
	delete(m.clearedFields, rabbitholeevent.FieldReturnMessageIndex)
}

// SetConversationHistory sets the "conversation_history" field.
func (m *RabbitholeEventMutation) SetConversationHistory(value []map[string]interface{}) {
	m.conversation_history = &value
	m.appendconversation_history = nil
}

// ConversationHistory returns the value of the "conversation_history" field in the mutation.
func (m *RabbitholeEventMutation) ConversationHistory() (r []map[string]interface{}, exists bool) {
	v := m.conversation_history
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationHistory returns the old "conversation_history" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldConversationHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationHistory: %w", err)
	}
	return oldValue.ConversationHistory, nil
}

// AppendConversationHistory adds value to the "conversation_history" field.
func (m *RabbitholeEventMutation) AppendConversationHistory(value []map[string]interface{}) {
	m.appendconversation_history = append(m.appendconversation_history, value...)
}

// AppendedConversationHistory returns the list of values that were appended to the "conversation_history" field in this mutation.
func (m *RabbitholeEventMutation) AppendedConversationHistory() ([]map[string]interface{}, bool) {
	if len(m.appendconversation_history) == 0 {
		return nil, false
	}
	return m.appendconversation_history, true
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (m *RabbitholeEventMutation) ClearConversationHistory() {
	m.conversation_history = nil
	m.appendconversation_history = nil
	m.clearedFields[rabbitholeevent.FieldConversationHistory] = struct{}{}
}

// ConversationHistoryCleared returns if the "conversation_history" field was cleared in this mutation.
func (m *RabbitholeEventMutation) ConversationHistoryCleared() bool {
	_, ok := m.clearedFields[rabbitholeevent.FieldConversationHistory]
	return ok
}

// ResetConversationHistory resets all changes to the "conversation_history" field.
func (m *RabbitholeEventMutation) ResetConversationHistory() {
	m.conversation_history = nil
	m.appendconversation_history = nil
	delete(m.clearedFields, rabbitholeevent.FieldConversationHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *RabbitholeEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RabbitholeEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RabbitholeEvent entity.
// If the RabbitholeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RabbitholeEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RabbitholeEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *RabbitholeEventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[rabbitholeevent.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *RabbitholeEventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RabbitholeEventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RabbitholeEventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the RabbitholeEventMutation builder.
func (m *RabbitholeEventMutation) Where(ps ...predicate.RabbitholeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RabbitholeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RabbitholeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RabbitholeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RabbitholeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RabbitholeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RabbitholeEvent).
func (m *RabbitholeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RabbitholeEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, rabbitholeevent.FieldSessionID)
	}
	if m.topic != nil {
		fields = append(fields, rabbitholeevent.FieldTopic)
	}
	if m.depth != nil {
		fields = append(fields, rabbitholeevent.FieldDepth)
	}
	if m.trigger_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldTriggerMessageIndex)
	}
	if m.return_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldReturnMessageIndex)
	}
	if m.conversation_history != nil {
		fields = append(fields, rabbitholeevent.FieldConversationHistory)
	}
	if m.created_at != nil {
		fields = append(fields, rabbitholeevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RabbitholeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rabbitholeevent.FieldSessionID:
		return m.SessionID()
	case rabbitholeevent.FieldTopic:
		return m.Topic()
	case rabbitholeevent.FieldDepth:
		return m.Depth()
	case rabbitholeevent.FieldTriggerMessageIndex:
		return m.TriggerMessageIndex()
	case rabbitholeevent.FieldReturnMessageIndex:
		return m.ReturnMessageIndex()
	case rabbitholeevent.FieldConversationHistory:
		return m.ConversationHistory()
	case rabbitholeevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RabbitholeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rabbitholeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case rabbitholeevent.FieldTopic:
		return m.OldTopic(ctx)
	case rabbitholeevent.FieldDepth:
		return m.OldDepth(ctx)
	case rabbitholeevent.FieldTriggerMessageIndex:
		return m.OldTriggerMessageIndex(ctx)
	case rabbitholeevent.FieldReturnMessageIndex:
		return m.OldReturnMessageIndex(ctx)
	case rabbitholeevent.FieldConversationHistory:
		return m.OldConversationHistory(ctx)
	case rabbitholeevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RabbitholeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RabbitholeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rabbitholeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case rabbitholeevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case rabbitholeevent.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case rabbitholeevent.FieldTriggerMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerMessageIndex(v)
		return nil
	case rabbitholeevent.FieldReturnMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReturnMessageIndex(v)
		return nil
	case rabbitholeevent.FieldConversationHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationHistory(v)
		return nil
	case rabbitholeevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RabbitholeEventMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, rabbitholeevent.FieldDepth)
	}
	if m.addtrigger_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldTriggerMessageIndex)
	}
	if m.addreturn_message_index != nil {
		fields = append(fields, rabbitholeevent.FieldReturnMessageIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RabbitholeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rabbitholeevent.FieldDepth:
		return m.AddedDepth()
	case rabbitholeevent.FieldTriggerMessageIndex:
		return m.AddedTriggerMessageIndex()
	case rabbitholeevent.FieldReturnMessageIndex:
		return m.AddedReturnMessageIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RabbitholeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rabbitholeevent.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case rabbitholeevent.FieldTriggerMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriggerMessageIndex(v)
		return nil
	case rabbitholeevent.FieldReturnMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReturnMessageIndex(v)
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RabbitholeEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rabbitholeevent.FieldReturnMessageIndex) {
		fields = append(fields, rabbitholeevent.FieldReturnMessageIndex)
	}
	if m.FieldCleared(rabbitholeevent.FieldConversationHistory) {
		fields = append(fields, rabbitholeevent.FieldConversationHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RabbitholeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RabbitholeEventMutation) ClearField(name string) error {
	switch name {
	case rabbitholeevent.FieldReturnMessageIndex:
		m.ClearReturnMessageIndex()
		return nil
	case rabbitholeevent.FieldConversationHistory:
		m.ClearConversationHistory()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RabbitholeEventMutation) ResetField(name string) error {
	switch name {
	case rabbitholeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case rabbitholeevent.FieldTopic:
		m.ResetTopic()
		return nil
	case rabbitholeevent.FieldDepth:
		m.ResetDepth()
		return nil
	case rabbitholeevent.FieldTriggerMessageIndex:
		m.ResetTriggerMessageIndex()
		return nil
	case rabbitholeevent.FieldReturnMessageIndex:
		m.ResetReturnMessageIndex()
		return nil
	case rabbitholeevent.FieldConversationHistory:
		m.ResetConversationHistory()
		return nil
	case rabbitholeevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RabbitholeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, rabbitholeevent.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RabbitholeEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rabbitholeevent.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RabbitholeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RabbitholeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RabbitholeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, rabbitholeevent.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RabbitholeEventMutation) EdgeCleared(name string) bool {
	switch name {
	case rabbitholeevent.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RabbitholeEventMutation) ClearEdge(name string) error {
	switch name {
	case rabbitholeevent.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RabbitholeEventMutation) ResetEdge(name string) error {
	switch name {
	case rabbitholeevent.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown RabbitholeEvent edge %s", name)
}

// RecallOutcomeMutation represents an operation that mutates the RecallOutcome nodes in the graph.
type RecallOutcomeMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	success                *bool
	confidence             *float64
	addconfidence          *float64
	rating                 *recalloutcome.Rating
	reasoning              *string
	message_index_start    *int
	addmessage_index_start *int
	message_index_end      *int
	addmessage_index_end   *int
	time_spent_ms          *int64
	addtime_spent_ms       *int64
	created_at             *time.Time
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	point                  *string
	clearedpoint           bool
	done                   bool
	oldValue               func(context.Context) (*RecallOutcome, error)
	predicates             []predicate.RecallOutcome
}

var _ ent.Mutation = (*RecallOutcomeMutation)(nil)

// recalloutcomeOption allows management of the mutation configuration using functional options.
type recalloutcomeOption func(*RecallOutcomeMutation)

// newRecallOutcomeMutation creates new mutation for the RecallOutcome entity.
func newRecallOutcomeMutation(c config, op Op, opts ...recalloutcomeOption) *RecallOutcomeMutation {
	m := &RecallOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypeRecallOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecallOutcomeID sets the ID field of the mutation.
func withRecallOutcomeID(id string) recalloutcomeOption {
	return func(m *RecallOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *RecallOutcome
		)
		m.oldValue = func(ctx context.Context) (*RecallOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecallOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecallOutcome sets the old RecallOutcome of the mutation.
func withRecallOutcome(node *RecallOutcome) recalloutcomeOption {
	return func(m *RecallOutcomeMutation) {
		m.oldValue = func(context.Context) (*RecallOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecallOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecallOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecallOutcome entities.
func (m *RecallOutcomeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecallOutcomeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecallOutcomeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecallOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RecallOutcomeMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RecallOutcomeMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RecallOutcomeMutation) ResetSessionID() {
	m.session = nil
}

// SetRecallPointID sets the "recall_point_id" field.
func (m *RecallOutcomeMutation) SetRecallPointID(s string) {
	m.point = &s
}

// RecallPointID returns the value of the "recall_point_id" field in the mutation.
func (m *RecallOutcomeMutation) RecallPointID() (r string, exists bool) {
	v := m.point
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallPointID returns the old "recall_point_id" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldRecallPointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallPointID: %w", err)
	}
	return oldValue.RecallPointID, nil
}

// ResetRecallPointID resets all changes to the "recall_point_id" field.
func (m *RecallOutcomeMutation) ResetRecallPointID() {
	m.point = nil
}

// SetSuccess sets the "success" field.
func (m *RecallOutcomeMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *RecallOutcomeMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *RecallOutcomeMutation) ResetSuccess() {
	m.success = nil
}

// SetConfidence sets the "confidence" field.
func (m *RecallOutcomeMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RecallOutcomeMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RecallOutcomeMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RecallOutcomeMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RecallOutcomeMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRating sets the "rating" field.
func (m *RecallOutcomeMutation) SetRating(r recalloutcome.Rating) {
	m.rating = &r
}

// Rating returns the value of the "rating" field in the mutation.
func (m *RecallOutcomeMutation) Rating() (r recalloutcome.Rating, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldRating(ctx context.Context) (v recalloutcome.Rating, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// ResetRating resets all changes to the "rating" field.
func (m *RecallOutcomeMutation) ResetRating() {
	m.rating = nil
}

// SetReasoning sets the "reasoning" field.
func (m *RecallOutcomeMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *RecallOutcomeMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *RecallOutcomeMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetMessageIndexStart sets the "message_index_start" field.
func (m *RecallOutcomeMutation) SetMessageIndexStart(i int) {
	m.message_index_start = &i
	m.addmessage_index_start = nil
}

// MessageIndexStart returns the value of the "message_index_start" field in the mutation.
func (m *RecallOutcomeMutation) MessageIndexStart() (r int, exists bool) {
	v := m.message_index_start
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIndexStart returns the old "message_index_start" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldMessageIndexStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIndexStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIndexStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIndexStart: %w", err)
	}
	return oldValue.MessageIndexStart, nil
}

// AddMessageIndexStart adds i to the "message_index_start" field.
func (m *RecallOutcomeMutation) AddMessageIndexStart(i int) {
	if m.addmessage_index_start != nil {
		*m.addmessage_index_start += i
	} else {
		m.addmessage_index_start = &i
	}
}

// AddedMessageIndexStart returns the value that was added to the "message_index_start" field in this mutation.
func (m *RecallOutcomeMutation) AddedMessageIndexStart() (r int, exists bool) {
	v := m.addmessage_index_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageIndexStart resets all changes to the "message_index_start" field.
func (m *RecallOutcomeMutation) ResetMessageIndexStart() {
	m.message_index_start = nil
	m.addmessage_index_start = nil
}

// SetMessageIndexEnd sets the "message_index_end" field.
func (m *RecallOutcomeMutation) SetMessageIndexEnd(i int) {
	m.message_index_end = &i
	m.addmessage_index_end = nil
}

// MessageIndexEnd returns the value of the "message_index_end" field in the mutation.
func (m *RecallOutcomeMutation) MessageIndexEnd() (r int, exists bool) {
	v := m.message_index_end
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIndexEnd returns the old "message_index_end" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldMessageIndexEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIndexEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIndexEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIndexEnd: %w", err)
	}
	return oldValue.MessageIndexEnd, nil
}

// AddMessageIndexEnd adds i to the "message_index_end" field.
func (m *RecallOutcomeMutation) AddMessageIndexEnd(i int) {
	if m.addmessage_index_end != nil {
		*m.addmessage_index_end += i
	} else {
		m.addmessage_index_end = &i
	}
}

// AddedMessageIndexEnd returns the value that was added to the "message_index_end" field in this mutation.
func (m *RecallOutcomeMutation) AddedMessageIndexEnd() (r int, exists bool) {
	v := m.addmessage_index_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageIndexEnd resets all changes to the "message_index_end" field.
func (m *RecallOutcomeMutation) ResetMessageIndexEnd() {
	m.message_index_end = nil
	m.addmessage_index_end = nil
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (m *RecallOutcomeMutation) SetTimeSpentMs(i int64) {
	m.time_spent_ms = &i
	m.addtime_spent_ms = nil
}

// TimeSpentMs returns the value of the "time_spent_ms" field in the mutation.
func (m *RecallOutcomeMutation) TimeSpentMs() (r int64, exists bool) {
	v := m.time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMs returns the old "time_spent_ms" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldTimeSpentMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMs: %w", err)
	}
	return oldValue.TimeSpentMs, nil
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (m *RecallOutcomeMutation) AddTimeSpentMs(i int64) {
	if m.addtime_spent_ms != nil {
		*m.addtime_spent_ms += i
	} else {
		m.addtime_spent_ms = &i
	}
}

// AddedTimeSpentMs returns the value that was added to the "time_spent_ms" field in this mutation.
func (m *RecallOutcomeMutation) AddedTimeSpentMs() (r int64, exists bool) {
	v := m.addtime_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMs resets all changes to the "time_spent_ms" field.
func (m *RecallOutcomeMutation) ResetTimeSpentMs() {
	m.time_spent_ms = nil
	m.addtime_spent_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecallOutcomeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecallOutcomeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecallOutcome entity.
// If the RecallOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallOutcomeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecallOutcomeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *RecallOutcomeMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[recalloutcome.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *RecallOutcomeMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RecallOutcomeMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RecallOutcomeMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// SetPointID sets the "point" edge to the RecallPoint entity by id.
func (m *RecallOutcomeMutation) SetPointID(id string) {
	m.point = &id
}

// ClearPoint clears the "point" edge to the RecallPoint entity.
func (m *RecallOutcomeMutation) ClearPoint() {
	m.clearedpoint = true
	m.clearedFields[recalloutcome.FieldRecallPointID] = struct{}{}
}

// PointCleared reports if the "point" edge to the RecallPoint entity was cleared.
func (m *RecallOutcomeMutation) PointCleared() bool {
	return m.clearedpoint
}

// PointID returns the "point" edge ID in the mutation.
func (m *RecallOutcomeMutation) PointID() (id string, exists bool) {
	if m.point != nil {
		return *m.point, true
	}
	return
}

// PointIDs returns the "point" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PointID instead. It exists only for internal usage by the builders.
func (m *RecallOutcomeMutation) PointIDs() (ids []string) {
	if id := m.point; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPoint resets all changes to the "point" edge.
func (m *RecallOutcomeMutation) ResetPoint() {
	m.point = nil
	m.clearedpoint = false
}

// Where appends a list predicates to the RecallOutcomeMutation builder.
func (m *RecallOutcomeMutation) Where(ps ...predicate.RecallOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecallOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecallOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecallOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecallOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecallOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecallOutcome).
func (m *RecallOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecallOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session != nil {
		fields = append(fields, recalloutcome.FieldSessionID)
	}
	if m.point != nil {
		fields = append(fields, recalloutcome.FieldRecallPointID)
	}
	if m.success != nil {
		fields = append(fields, recalloutcome.FieldSuccess)
	}
	if m.confidence != nil {
		fields = append(fields, recalloutcome.FieldConfidence)
	}
	if m.rating != nil {
		fields = append(fields, recalloutcome.FieldRating)
	}
	if m.reasoning != nil {
		fields = append(fields, recalloutcome.FieldReasoning)
	}
	if m.message_index_start != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexStart)
	}
	if m.message_index_end != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexEnd)
	}
	if m.time_spent_ms != nil {
		fields = append(fields, recalloutcome.FieldTimeSpentMs)
	}
	if m.created_at != nil {
		fields = append(fields, recalloutcome.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecallOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recalloutcome.FieldSessionID:
		return m.SessionID()
	case recalloutcome.FieldRecallPointID:
		return m.RecallPointID()
	case recalloutcome.FieldSuccess:
		return m.Success()
	case recalloutcome.FieldConfidence:
		return m.Confidence()
	case recalloutcome.FieldRating:
		return m.Rating()
	case recalloutcome.FieldReasoning:
		return m.Reasoning()
	case recalloutcome.FieldMessageIndexStart:
		return m.MessageIndexStart()
	case recalloutcome.FieldMessageIndexEnd:
		return m.MessageIndexEnd()
	case recalloutcome.FieldTimeSpentMs:
		return m.TimeSpentMs()
	case recalloutcome.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecallOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recalloutcome.FieldSessionID:
		return m.OldSessionID(ctx)
	case recalloutcome.FieldRecallPointID:
		return m.OldRecallPointID(ctx)
	case recalloutcome.FieldSuccess:
		return m.OldSuccess(ctx)
	case recalloutcome.FieldConfidence:
		return m.OldConfidence(ctx)
	case recalloutcome.FieldRating:
		return m.OldRating(ctx)
	case recalloutcome.FieldReasoning:
		return m.OldReasoning(ctx)
	case recalloutcome.FieldMessageIndexStart:
		return m.OldMessageIndexStart(ctx)
	case recalloutcome.FieldMessageIndexEnd:
		return m.OldMessageIndexEnd(ctx)
	case recalloutcome.FieldTimeSpentMs:
		return m.OldTimeSpentMs(ctx)
	case recalloutcome.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecallOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recalloutcome.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case recalloutcome.FieldRecallPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallPointID(v)
		return nil
	case recalloutcome.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case recalloutcome.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case recalloutcome.FieldRating:
		v, ok := value.(recalloutcome.Rating)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case recalloutcome.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case recalloutcome.FieldMessageIndexStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIndexStart(v)
		return nil
	case recalloutcome.FieldMessageIndexEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIndexEnd(v)
		return nil
	case recalloutcome.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMs(v)
		return nil
	case recalloutcome.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecallOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, recalloutcome.FieldConfidence)
	}
	if m.addmessage_index_start != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexStart)
	}
	if m.addmessage_index_end != nil {
		fields = append(fields, recalloutcome.FieldMessageIndexEnd)
	}
	if m.addtime_spent_ms != nil {
		fields = append(fields, recalloutcome.FieldTimeSpentMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecallOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recalloutcome.FieldConfidence:
		return m.AddedConfidence()
	case recalloutcome.FieldMessageIndexStart:
		return m.AddedMessageIndexStart()
	case recalloutcome.FieldMessageIndexEnd:
		return m.AddedMessageIndexEnd()
	case recalloutcome.FieldTimeSpentMs:
		return m.AddedTimeSpentMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recalloutcome.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case recalloutcome.FieldMessageIndexStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageIndexStart(v)
		return nil
	case recalloutcome.FieldMessageIndexEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageIndexEnd(v)
		return nil
	case recalloutcome.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecallOutcomeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecallOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecallOutcomeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RecallOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecallOutcomeMutation) ResetField(name string) error {
	switch name {
	case recalloutcome.FieldSessionID:
		m.ResetSessionID()
		return nil
	case recalloutcome.FieldRecallPointID:
		m.ResetRecallPointID()
		return nil
	case recalloutcome.FieldSuccess:
		m.ResetSuccess()
		return nil
	case recalloutcome.FieldConfidence:
		m.ResetConfidence()
		return nil
	case recalloutcome.FieldRating:
		m.ResetRating()
		return nil
	case recalloutcome.FieldReasoning:
		m.ResetReasoning()
		return nil
	case recalloutcome.FieldMessageIndexStart:
		m.ResetMessageIndexStart()
		return nil
	case recalloutcome.FieldMessageIndexEnd:
		m.ResetMessageIndexEnd()
		return nil
	case recalloutcome.FieldTimeSpentMs:
		m.ResetTimeSpentMs()
		return nil
	case recalloutcome.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecallOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, recalloutcome.EdgeSession)
	}
	if m.point != nil {
		edges = append(edges, recalloutcome.EdgePoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecallOutcomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recalloutcome.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case recalloutcome.EdgePoint:
		if id := m.point; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecallOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecallOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecallOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, recalloutcome.EdgeSession)
	}
	if m.clearedpoint {
		edges = append(edges, recalloutcome.EdgePoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecallOutcomeMutation) EdgeCleared(name string) bool {
	switch name {
	case recalloutcome.EdgeSession:
		return m.clearedsession
	case recalloutcome.EdgePoint:
		return m.clearedpoint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecallOutcomeMutation) ClearEdge(name string) error {
	switch name {
	case recalloutcome.EdgeSession:
		m.ClearSession()
		return nil
	case recalloutcome.EdgePoint:
		m.ClearPoint()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecallOutcomeMutation) ResetEdge(name string) error {
	switch name {
	case recalloutcome.EdgeSession:
		m.ResetSession()
		return nil
	case recalloutcome.EdgePoint:
		m.ResetPoint()
		return nil
	}
	return fmt.Errorf("unknown RecallOutcome edge %s", name)
}

// RecallPointMutation represents an operation that mutates the RecallPoint nodes in the graph.
type RecallPointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	content              *string
	context              *string
	difficulty           *float64
	adddifficulty        *float64
	stability            *float64
	addstability         *float64
	due                  *time.Time
	last_review          *time.Time
	reps                 *int
	addreps              *int
	lapses               *int
	addlapses            *int
	state                *recallpoint.State
	recall_history       *[]map[string]interface{}
	appendrecall_history []map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	recall_set           *string
	clearedrecall_set    bool
	outcomes             map[string]struct{}
	removedoutcomes      map[string]struct{}
	clearedoutcomes      bool
	done                 bool
	oldValue             func(context.Context) (*RecallPoint, error)
	predicates           []predicate.RecallPoint
}

var _ ent.Mutation = (*RecallPointMutation)(nil)

// recallpointOption allows management of the mutation configuration using functional options.
type recallpointOption func(*RecallPointMutation)

// newRecallPointMutation creates new mutation for the RecallPoint entity.
func newRecallPointMutation(c config, op Op, opts ...recallpointOption) *RecallPointMutation {
	m := &RecallPointMutation{
		config:        c,
		op:            op,
		typ:           TypeRecallPoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecallPointID sets the ID field of the mutation.
func withRecallPointID(id string) recallpointOption {
	return func(m *RecallPointMutation) {
		var (
			err   error
			once  sync.Once
			value *RecallPoint
		)
		m.oldValue = func(ctx context.Context) (*RecallPoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecallPoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecallPoint sets the old RecallPoint of the mutation.
func withRecallPoint(node *RecallPoint) recallpointOption {
	return func(m *RecallPointMutation) {
		m.oldValue = func(context.Context) (*RecallPoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecallPointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecallPointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecallPoint entities.
func (m *RecallPointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecallPointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecallPointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecallPoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecallSetID sets the "recall_set_id" field.
func (m *RecallPointMutation) SetRecallSetID(s string) {
	m.recall_set = &s
}

// RecallSetID returns the value of the "recall_set_id" field in the mutation.
func (m *RecallPointMutation) RecallSetID() (r string, exists bool) {
	v := m.recall_set
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallSetID returns the old "recall_set_id" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldRecallSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallSetID: %w", err)
	}
	return oldValue.RecallSetID, nil
}

// ResetRecallSetID resets all changes to the "recall_set_id" field.
func (m *RecallPointMutation) ResetRecallSetID() {
	m.recall_set = nil
}

// SetContent sets the "content" field.
func (m *RecallPointMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *RecallPointMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *RecallPointMutation) ResetContent() {
	m.content = nil
}

// SetContext sets the "context" field.
func (m *RecallPointMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *RecallPointMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *RecallPointMutation) ResetContext() {
	m.context = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *RecallPointMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *RecallPointMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *RecallPointMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *RecallPointMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *RecallPointMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetStability sets the "stability" field.
func (m *RecallPointMutation) SetStability(f float64) {
	m.stability = &f
	m.addstability = nil
}

// Stability returns the value of the "stability" field in the mutation.
func (m *RecallPointMutation) Stability() (r float64, exists bool) {
	v := m.stability
	if v == nil {
		return
	}
	return *v, true
}

// OldStability returns the old "stability" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStability: %w", err)
	}
	return oldValue.Stability, nil
}

// AddStability adds f to the "stability" field.
func (m *RecallPointMutation) AddStability(f float64) {
	if m.addstability != nil {
		*m.addstability += f
	} else {
		m.addstability = &f
	}
}

// AddedStability returns the value that was added to the "stability" field in this mutation.
func (m *RecallPointMutation) AddedStability() (r float64, exists bool) {
	v := m.addstability
	if v == nil {
		return
	}
	return *v, true
}

// ResetStability resets all changes to the "stability" field.
func (m *RecallPointMutation) ResetStability() {
	m.stability = nil
	m.addstability = nil
}

// SetDue sets the "due" field.
func (m *RecallPointMutation) SetDue(t time.Time) {
	m.due = &t
}

// Due returns the value of the "due" field in the mutation.
func (m *RecallPointMutation) Due() (r time.Time, exists bool) {
	v := m.due
	if v == nil {
		return
	}
	return *v, true
}

// OldDue returns the old "due" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldDue(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDue: %w", err)
	}
	return oldValue.Due, nil
}

// ResetDue resets all changes to the "due" field.
func (m *RecallPointMutation) ResetDue() {
	m.due = nil
}

// SetLastReview sets the "last_review" field.
func (m *RecallPointMutation) SetLastReview(t time.Time) {
	m.last_review = &t
}

// LastReview returns the value of the "last_review" field in the mutation.
func (m *RecallPointMutation) LastReview() (r time.Time, exists bool) {
	v := m.last_review
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReview returns the old "last_review" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldLastReview(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReview: %w", err)
	}
	return oldValue.LastReview, nil
}

// ClearLastReview clears the value of the "last_review" field.
func (m *RecallPointMutation) ClearLastReview() {
	m.last_review = nil
	m.clearedFields[recallpoint.FieldLastReview] = struct{}{}
}

// LastReviewCleared returns if the "last_review" field was cleared in this mutation.
func (m *RecallPointMutation) LastReviewCleared() bool {
	_, ok := m.clearedFields[recallpoint.FieldLastReview]
	return ok
}

// ResetLastReview resets all changes to the "last_review" field.
func (m *RecallPointMutation) ResetLastReview() {
	m.last_review = nil
	delete(m.clearedFields, recallpoint.FieldLastReview)
}

// SetReps sets the "reps" field.
func (m *RecallPointMutation) SetReps(i int) {
	m.reps = &i
	m.addreps = nil
}

// Reps returns the value of the "reps" field in the mutation.
func (m *RecallPointMutation) Reps() (r int, exists bool) {
	v := m.reps
	if v == nil {
		return
	}
	return *v, true
}

// OldReps returns the old "reps" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldReps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReps: %w", err)
	}
	return oldValue.Reps, nil
}

// AddReps adds i to the "reps" field.
func (m *RecallPointMutation) AddReps(i int) {
	if m.addreps != nil {
		*m.addreps += i
	} else {
		m.addreps = &i
	}
}

// AddedReps returns the value that was added to the "reps" field in this mutation.
func (m *RecallPointMutation) AddedReps() (r int, exists bool) {
	v := m.addreps
	if v == nil {
		return
	}
	return *v, true
}

// ResetReps resets all changes to the "reps" field.
func (m *RecallPointMutation) ResetReps() {
	m.reps = nil
	m.addreps = nil
}

// SetLapses sets the "lapses" field.
func (m *RecallPointMutation) SetLapses(i int) {
	m.lapses = &i
	m.addlapses = nil
}

// Lapses returns the value of the "lapses" field in the mutation.
func (m *RecallPointMutation) Lapses() (r int, exists bool) {
	v := m.lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldLapses returns the old "lapses" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapses: %w", err)
	}
	return oldValue.Lapses, nil
}

// AddLapses adds i to the "lapses" field.
func (m *RecallPointMutation) AddLapses(i int) {
	if m.addlapses != nil {
		*m.addlapses += i
	} else {
		m.addlapses = &i
	}
}

// AddedLapses returns the value that was added to the "lapses" field in this mutation.
func (m *RecallPointMutation) AddedLapses() (r int, exists bool) {
	v := m.addlapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapses resets all changes to the "lapses" field.
func (m *RecallPointMutation) ResetLapses() {
	m.lapses = nil
	m.addlapses = nil
}

// SetState sets the "state" field.
func (m *RecallPointMutation) SetState(r recallpoint.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *RecallPointMutation) State() (r recallpoint.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldState(ctx context.Context) (v recallpoint.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RecallPointMutation) ResetState() {
	m.state = nil
}

// SetRecallHistory sets the "recall_history" field.
func (m *RecallPointMutation) SetRecallHistory(value []map[string]interface{}) {
	m.recall_history = &value
	m.appendrecall_history = nil
}

// RecallHistory returns the value of the "recall_history" field in the mutation.
func (m *RecallPointMutation) RecallHistory() (r []map[string]interface{}, exists bool) {
	v := m.recall_history
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallHistory returns the old "recall_history" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldRecallHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallHistory: %w", err)
	}
	return oldValue.RecallHistory, nil
}

// AppendRecallHistory adds value to the "recall_history" field.
func (m *RecallPointMutation) AppendRecallHistory(value []map[string]interface{}) {
	m.appendrecall_history = append(m.appendrecall_history, value...)
}

// AppendedRecallHistory returns the list of values that were appended to the "recall_history" field in this mutation.
func (m *RecallPointMutation) AppendedRecallHistory() ([]map[string]interface{}, bool) {
	if len(m.appendrecall_history) == 0 {
		return nil, false
	}
	return m.appendrecall_history, true
}

// ClearRecallHistory clears the value of the "recall_history" field.
func (m *RecallPointMutation) ClearRecallHistory() {
	m.recall_history = nil
	m.appendrecall_history = nil
	m.clearedFields[recallpoint.FieldRecallHistory] = struct{}{}
}

// RecallHistoryCleared returns if the "recall_history" field was cleared in this mutation.
func (m *RecallPointMutation) RecallHistoryCleared() bool {
	_, ok := m.clearedFields[recallpoint.FieldRecallHistory]
	return ok
}

// ResetRecallHistory resets all changes to the "recall_history" field.
func (m *RecallPointMutation) ResetRecallHistory() {
	m.recall_history = nil
	m.appendrecall_history = nil
	delete(m.clearedFields, recallpoint.FieldRecallHistory)
}

// SetCreatedAt sets the "created_at" field.
func (m *RecallPointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecallPointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecallPointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecallPointMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecallPointMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecallPoint entity.
// If the RecallPoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallPointMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecallPointMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRecallSet clears the "recall_set" edge to the RecallSet entity.
func (m *RecallPointMutation) ClearRecallSet() {
	m.clearedrecall_set = true
	m.clearedFields[recallpoint.FieldRecallSetID] = struct{}{}
}

// RecallSetCleared reports if the "recall_set" edge to the RecallSet entity was cleared.
func (m *RecallPointMutation) RecallSetCleared() bool {
	return m.clearedrecall_set
}

// RecallSetIDs returns the "recall_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecallSetID instead. It exists only for internal usage by the builders.
func (m *RecallPointMutation) RecallSetIDs() (ids []string) {
	if id := m.recall_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecallSet resets all changes to the "recall_set" edge.
func (m *RecallPointMutation) ResetRecallSet() {
	m.recall_set = nil
	m.clearedrecall_set = false
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by ids.
func (m *RecallPointMutation) AddOutcomeIDs(ids ...string) {
	if m.outcomes == nil {
		m.outcomes = make(map[string]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the RecallOutcome entity.
func (m *RecallPointMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the RecallOutcome entity was cleared.
func (m *RecallPointMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the RecallOutcome entity by IDs.
func (m *RecallPointMutation) RemoveOutcomeIDs(ids ...string) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the RecallOutcome entity.
func (m *RecallPointMutation) RemovedOutcomesIDs() (ids []string) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *RecallPointMutation) OutcomesIDs() (ids []string) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *RecallPointMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// Where appends a list predicates to the RecallPointMutation builder.
func (m *RecallPointMutation) Where(ps ...predicate.RecallPoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecallPointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecallPointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecallPoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecallPointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecallPointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecallPoint).
func (m *RecallPointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecallPointMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.recall_set != nil {
		fields = append(fields, recallpoint.FieldRecallSetID)
	}
	if m.content != nil {
		fields = append(fields, recallpoint.FieldContent)
	}
	if m.context != nil {
		fields = append(fields, recallpoint.FieldContext)
	}
	if m.difficulty != nil {
		fields = append(fields, recallpoint.FieldDifficulty)
	}
	if m.stability != nil {
		fields = append(fields, recallpoint.FieldStability)
	}
	if m.due != nil {
		fields = append(fields, recallpoint.FieldDue)
	}
	if m.last_review != nil {
		fields = append(fields, recallpoint.FieldLastReview)
	}
	if m.reps != nil {
		fields = append(fields, recallpoint.FieldReps)
	}
	if m.lapses != nil {
		fields = append(fields, recallpoint.FieldLapses)
	}
	if m.state != nil {
		fields = append(fields, recallpoint.FieldState)
	}
	if m.recall_history != nil {
		fields = append(fields, recallpoint.FieldRecallHistory)
	}
	if m.created_at != nil {
		fields = append(fields, recallpoint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recallpoint.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecallPointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recallpoint.FieldRecallSetID:
		return m.RecallSetID()
	case recallpoint.FieldContent:
		return m.Content()
	case recallpoint.FieldContext:
		return m.Context()
	case recallpoint.FieldDifficulty:
		return m.Difficulty()
	case recallpoint.FieldStability:
		return m.Stability()
	case recallpoint.FieldDue:
		return m.Due()
	case recallpoint.FieldLastReview:
		return m.LastReview()
	case recallpoint.FieldReps:
		return m.Reps()
	case recallpoint.FieldLapses:
		return m.Lapses()
	case recallpoint.FieldState:
		return m.State()
	case recallpoint.FieldRecallHistory:
		return m.RecallHistory()
	case recallpoint.FieldCreatedAt:
		return m.CreatedAt()
	case recallpoint.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecallPointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recallpoint.FieldRecallSetID:
		return m.OldRecallSetID(ctx)
	case recallpoint.FieldContent:
		return m.OldContent(ctx)
	case recallpoint.FieldContext:
		return m.OldContext(ctx)
	case recallpoint.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case recallpoint.FieldStability:
		return m.OldStability(ctx)
	case recallpoint.FieldDue:
		return m.OldDue(ctx)
	case recallpoint.FieldLastReview:
		return m.OldLastReview(ctx)
	case recallpoint.FieldReps:
		return m.OldReps(ctx)
	case recallpoint.FieldLapses:
		return m.OldLapses(ctx)
	case recallpoint.FieldState:
		return m.OldState(ctx)
	case recallpoint.FieldRecallHistory:
		return m.OldRecallHistory(ctx)
	case recallpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recallpoint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecallPoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallPointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recallpoint.FieldRecallSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallSetID(v)
		return nil
	case recallpoint.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case recallpoint.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case recallpoint.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case recallpoint.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStability(v)
		return nil
	case recallpoint.FieldDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDue(v)
		return nil
	case recallpoint.FieldLastReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReview(v)
		return nil
	case recallpoint.FieldReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReps(v)
		return nil
	case recallpoint.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapses(v)
		return nil
	case recallpoint.FieldState:
		v, ok := value.(recallpoint.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case recallpoint.FieldRecallHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallHistory(v)
		return nil
	case recallpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recallpoint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecallPoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecallPointMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, recallpoint.FieldDifficulty)
	}
	if m.addstability != nil {
		fields = append(fields, recallpoint.FieldStability)
	}
	if m.addreps != nil {
		fields = append(fields, recallpoint.FieldReps)
	}
	if m.addlapses != nil {
		fields = append(fields, recallpoint.FieldLapses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecallPointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recallpoint.FieldDifficulty:
		return m.AddedDifficulty()
	case recallpoint.FieldStability:
		return m.AddedStability()
	case recallpoint.FieldReps:
		return m.AddedReps()
	case recallpoint.FieldLapses:
		return m.AddedLapses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallPointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recallpoint.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case recallpoint.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStability(v)
		return nil
	case recallpoint.FieldReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReps(v)
		return nil
	case recallpoint.FieldLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapses(v)
		return nil
	}
	return fmt.Errorf("unknown RecallPoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecallPointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recallpoint.FieldLastReview) {
		fields = append(fields, recallpoint.FieldLastReview)
	}
	if m.FieldCleared(recallpoint.FieldRecallHistory) {
		fields = append(fields, recallpoint.FieldRecallHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecallPointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecallPointMutation) ClearField(name string) error {
	switch name {
	case recallpoint.FieldLastReview:
		m.ClearLastReview()
		return nil
	case recallpoint.FieldRecallHistory:
		m.ClearRecallHistory()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecallPointMutation) ResetField(name string) error {
	switch name {
	case recallpoint.FieldRecallSetID:
		m.ResetRecallSetID()
		return nil
	case recallpoint.FieldContent:
		m.ResetContent()
		return nil
	case recallpoint.FieldContext:
		m.ResetContext()
		return nil
	case recallpoint.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case recallpoint.FieldStability:
		m.ResetStability()
		return nil
	case recallpoint.FieldDue:
		m.ResetDue()
		return nil
	case recallpoint.FieldLastReview:
		m.ResetLastReview()
		return nil
	case recallpoint.FieldReps:
		m.ResetReps()
		return nil
	case recallpoint.FieldLapses:
		m.ResetLapses()
		return nil
	case recallpoint.FieldState:
		m.ResetState()
		return nil
	case recallpoint.FieldRecallHistory:
		m.ResetRecallHistory()
		return nil
	case recallpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recallpoint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecallPointMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.recall_set != nil {
		edges = append(edges, recallpoint.EdgeRecallSet)
	}
	if m.outcomes != nil {
		edges = append(edges, recallpoint.EdgeOutcomes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecallPointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recallpoint.EdgeRecallSet:
		if id := m.recall_set; id != nil {
			return []ent.Value{*id}
		}
	case recallpoint.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecallPointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoutcomes != nil {
		edges = append(edges, recallpoint.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecallPointMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recallpoint.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecallPointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrecall_set {
		edges = append(edges, recallpoint.EdgeRecallSet)
	}
	if m.clearedoutcomes {
		edges = append(edges, recallpoint.EdgeOutcomes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecallPointMutation) EdgeCleared(name string) bool {
	switch name {
	case recallpoint.EdgeRecallSet:
		return m.clearedrecall_set
	case recallpoint.EdgeOutcomes:
		return m.clearedoutcomes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecallPointMutation) ClearEdge(name string) error {
	switch name {
	case recallpoint.EdgeRecallSet:
		m.ClearRecallSet()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecallPointMutation) ResetEdge(name string) error {
	switch name {
	case recallpoint.EdgeRecallSet:
		m.ResetRecallSet()
		return nil
	case recallpoint.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	}
	return fmt.Errorf("unknown RecallPoint edge %s", name)
}

// RecallSetMutation represents an operation that mutates the RecallSet nodes in the graph.
type RecallSetMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	name                     *string
	description              *string
	status                   *recallset.Status
	discussion_system_prompt *string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	points                   map[string]struct{}
	removedpoints            map[string]struct{}
	clearedpoints            bool
	sessions                 map[string]struct{}
	removedsessions          map[string]struct{}
	clearedsessions          bool
	done                     bool
	oldValue                 func(context.Context) (*RecallSet, error)
	predicates               []predicate.RecallSet
}

var _ ent.Mutation = (*RecallSetMutation)(nil)

// recallsetOption allows management of the mutation configuration using functional options.
type recallsetOption func(*RecallSetMutation)

// newRecallSetMutation creates new mutation for the RecallSet entity.
func newRecallSetMutation(c config, op Op, opts ...recallsetOption) *RecallSetMutation {
	m := &RecallSetMutation{
		config:        c,
		op:            op,
		typ:           TypeRecallSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecallSetID sets the ID field of the mutation.
func withRecallSetID(id string) recallsetOption {
	return func(m *RecallSetMutation) {
		var (
			err   error
			once  sync.Once
			value *RecallSet
		)
		m.oldValue = func(ctx context.Context) (*RecallSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecallSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecallSet sets the old RecallSet of the mutation.
func withRecallSet(node *RecallSet) recallsetOption {
	return func(m *RecallSetMutation) {
		m.oldValue = func(context.Context) (*RecallSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecallSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecallSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecallSet entities.
func (m *RecallSetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecallSetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecallSetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecallSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *RecallSetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecallSetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RecallSetMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *RecallSetMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecallSetMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *RecallSetMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *RecallSetMutation) SetStatus(r recallset.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RecallSetMutation) Status() (r recallset.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldStatus(ctx context.Context) (v recallset.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecallSetMutation) ResetStatus() {
	m.status = nil
}

// SetDiscussionSystemPrompt sets the "discussion_system_prompt" field.
func (m *RecallSetMutation) SetDiscussionSystemPrompt(s string) {
	m.discussion_system_prompt = &s
}

// DiscussionSystemPrompt returns the value of the "discussion_system_prompt" field in the mutation.
func (m *RecallSetMutation) DiscussionSystemPrompt() (r string, exists bool) {
	v := m.discussion_system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscussionSystemPrompt returns the old "discussion_system_prompt" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldDiscussionSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscussionSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscussionSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscussionSystemPrompt: %w", err)
	}
	return oldValue.DiscussionSystemPrompt, nil
}

// ResetDiscussionSystemPrompt resets all changes to the "discussion_system_prompt" field.
func (m *RecallSetMutation) ResetDiscussionSystemPrompt() {
	m.discussion_system_prompt = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecallSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecallSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecallSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecallSetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecallSetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecallSet entity.
// If the RecallSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecallSetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecallSetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPointIDs adds the "points" edge to the RecallPoint entity by ids.
func (m *RecallSetMutation) AddPointIDs(ids ...string) {
	if m.points == nil {
		m.points = make(map[string]struct{})
	}
	for i := range ids {
		m.points[ids[i]] = struct{}{}
	}
}

// ClearPoints clears the "points" edge to the RecallPoint entity.
func (m *RecallSetMutation) ClearPoints() {
	m.clearedpoints = true
}

// PointsCleared reports if the "points" edge to the RecallPoint entity was cleared.
func (m *RecallSetMutation) PointsCleared() bool {
	return m.clearedpoints
}

// RemovePointIDs removes the "points" edge to the RecallPoint entity by IDs.
func (m *RecallSetMutation) RemovePointIDs(ids ...string) {
	if m.removedpoints == nil {
		m.removedpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.points, ids[i])
		m.removedpoints[ids[i]] = struct{}{}
	}
}

// RemovedPoints returns the removed IDs of the "points" edge to the RecallPoint entity.
func (m *RecallSetMutation) RemovedPointsIDs() (ids []string) {
	for id := range m.removedpoints {
		ids = append(ids, id)
	}
	return
}

// PointsIDs returns the "points" edge IDs in the mutation.
func (m *RecallSetMutation) PointsIDs() (ids []string) {
	for id := range m.points {
		ids = append(ids, id)
	}
	return
}

// ResetPoints resets all changes to the "points" edge.
func (m *RecallSetMutation) ResetPoints() {
	m.points = nil
	m.clearedpoints = false
	m.removedpoints = nil
}

// AddSessionIDs adds the "sessions" edge to the StudySession entity by ids.
func (m *RecallSetMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the StudySession entity.
func (m *RecallSetMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the StudySession entity was cleared.
func (m *RecallSetMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the StudySession entity by IDs.
func (m *RecallSetMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the StudySession entity.
func (m *RecallSetMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *RecallSetMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *RecallSetMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the RecallSetMutation builder.
func (m *RecallSetMutation) Where(ps ...predicate.RecallSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecallSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecallSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecallSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecallSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecallSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecallSet).
func (m *RecallSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecallSetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, recallset.FieldName)
	}
	if m.description != nil {
		fields = append(fields, recallset.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, recallset.FieldStatus)
	}
	if m.discussion_system_prompt != nil {
		fields = append(fields, recallset.FieldDiscussionSystemPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, recallset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recallset.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecallSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recallset.FieldName:
		return m.Name()
	case recallset.FieldDescription:
		return m.Description()
	case recallset.FieldStatus:
		return m.Status()
	case recallset.FieldDiscussionSystemPrompt:
		return m.DiscussionSystemPrompt()
	case recallset.FieldCreatedAt:
		return m.CreatedAt()
	case recallset.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecallSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recallset.FieldName:
		return m.OldName(ctx)
	case recallset.FieldDescription:
		return m.OldDescription(ctx)
	case recallset.FieldStatus:
		return m.OldStatus(ctx)
	case recallset.FieldDiscussionSystemPrompt:
		return m.OldDiscussionSystemPrompt(ctx)
	case recallset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recallset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RecallSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recallset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recallset.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recallset.FieldStatus:
		v, ok := value.(recallset.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recallset.FieldDiscussionSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscussionSystemPrompt(v)
		return nil
	case recallset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recallset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RecallSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecallSetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecallSetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecallSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RecallSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecallSetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecallSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecallSetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RecallSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecallSetMutation) ResetField(name string) error {
	switch name {
	case recallset.FieldName:
		m.ResetName()
		return nil
	case recallset.FieldDescription:
		m.ResetDescription()
		return nil
	case recallset.FieldStatus:
		m.ResetStatus()
		return nil
	case recallset.FieldDiscussionSystemPrompt:
		m.ResetDiscussionSystemPrompt()
		return nil
	case recallset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recallset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RecallSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecallSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.points != nil {
		edges = append(edges, recallset.EdgePoints)
	}
	if m.sessions != nil {
		edges = append(edges, recallset.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecallSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recallset.EdgePoints:
		ids := make([]ent.Value, 0, len(m.points))
		for id := range m.points {
			ids = append(ids, id)
		}
		return ids
	case recallset.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecallSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpoints != nil {
		edges = append(edges, recallset.EdgePoints)
	}
	if m.removedsessions != nil {
		edges = append(edges, recallset.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecallSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recallset.EdgePoints:
		ids := make([]ent.Value, 0, len(m.removedpoints))
		for id := range m.removedpoints {
			ids = append(ids, id)
		}
		return ids
	case recallset.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecallSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpoints {
		edges = append(edges, recallset.EdgePoints)
	}
	if m.clearedsessions {
		edges = append(edges, recallset.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecallSetMutation) EdgeCleared(name string) bool {
	switch name {
	case recallset.EdgePoints:
		return m.clearedpoints
	case recallset.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecallSetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RecallSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecallSetMutation) ResetEdge(name string) error {
	switch name {
	case recallset.EdgePoints:
		m.ResetPoints()
		return nil
	case recallset.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown RecallSet edge %s", name)
}

// SessionMessageMutation represents an operation that mutates the SessionMessage nodes in the graph.
type SessionMessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	message_index    *int
	addmessage_index *int
	role             *sessionmessage.Role
	content          *string
	display_content  *string
	token_count      *int
	addtoken_count   *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*SessionMessage, error)
	predicates       []predicate.SessionMessage
}

var _ ent.Mutation = (*SessionMessageMutation)(nil)

// sessionmessageOption allows management of the mutation configuration using functional options.
type sessionmessageOption func(*SessionMessageMutation)

// newSessionMessageMutation creates new mutation for the SessionMessage entity.
func newSessionMessageMutation(c config, op Op, opts ...sessionmessageOption) *SessionMessageMutation {
	m := &SessionMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionMessageID sets the ID field of the mutation.
func withSessionMessageID(id string) sessionmessageOption {
	return func(m *SessionMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionMessage
		)
		m.oldValue = func(ctx context.Context) (*SessionMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionMessage sets the old SessionMessage of the mutation.
func withSessionMessage(node *SessionMessage) sessionmessageOption {
	return func(m *SessionMessageMutation) {
		m.oldValue = func(context.Context) (*SessionMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionMessage entities.
func (m *SessionMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionMessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionMessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionMessageMutation) ResetSessionID() {
	m.session = nil
}

// SetMessageIndex sets the "message_index" field.
func (m *SessionMessageMutation) SetMessageIndex(i int) {
	m.message_index = &i
	m.addmessage_index = nil
}

// MessageIndex returns the value of the "message_index" field in the mutation.
func (m *SessionMessageMutation) MessageIndex() (r int, exists bool) {
	v := m.message_index
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageIndex returns the old "message_index" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldMessageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageIndex: %w", err)
	}
	return oldValue.MessageIndex, nil
}

// AddMessageIndex adds i to the "message_index" field.
func (m *SessionMessageMutation) AddMessageIndex(i int) {
	if m.addmessage_index != nil {
		*m.addmessage_index += i
	} else {
		m.addmessage_index = &i
	}
}

// AddedMessageIndex returns the value that was added to the "message_index" field in this mutation.
func (m *SessionMessageMutation) AddedMessageIndex() (r int, exists bool) {
	v := m.addmessage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageIndex resets all changes to the "message_index" field.
func (m *SessionMessageMutation) ResetMessageIndex() {
	m.message_index = nil
	m.addmessage_index = nil
}

// SetRole sets the "role" field.
func (m *SessionMessageMutation) SetRole(s sessionmessage.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *SessionMessageMutation) Role() (r sessionmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldRole(ctx context.Context) (v sessionmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *SessionMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *SessionMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SessionMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SessionMessageMutation) ResetContent() {
	m.content = nil
}

// SetDisplayContent sets the "display_content" field.
func (m *SessionMessageMutation) SetDisplayContent(s string) {
	m.display_content = &s
}

// DisplayContent returns the value of the "display_content" field in the mutation.
func (m *SessionMessageMutation) DisplayContent() (r string, exists bool) {
	v := m.display_content
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayContent returns the old "display_content" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldDisplayContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayContent: %w", err)
	}
	return oldValue.DisplayContent, nil
}

// ClearDisplayContent clears the value of the "display_content" field.
func (m *SessionMessageMutation) ClearDisplayContent() {
	m.display_content = nil
	m.clearedFields[sessionmessage.FieldDisplayContent] = struct{}{}
}

// DisplayContentCleared returns if the "display_content" field was cleared in this mutation.
func (m *SessionMessageMutation) DisplayContentCleared() bool {
	_, ok := m.clearedFields[sessionmessage.FieldDisplayContent]
	return ok
}

// ResetDisplayContent resets all changes to the "display_content" field.
func (m *SessionMessageMutation) ResetDisplayContent() {
	m.display_content = nil
	delete(m.clearedFields, sessionmessage.FieldDisplayContent)
}

// SetTokenCount sets the "token_count" field.
func (m *SessionMessageMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *SessionMessageMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldTokenCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *SessionMessageMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *SessionMessageMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *SessionMessageMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[sessionmessage.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *SessionMessageMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[sessionmessage.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *SessionMessageMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, sessionmessage.FieldTokenCount)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionMessage entity.
// If the SessionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the StudySession entity.
func (m *SessionMessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessionmessage.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the StudySession entity was cleared.
func (m *SessionMessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionMessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionMessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionMessageMutation builder.
func (m *SessionMessageMutation) Where(ps ...predicate.SessionMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionMessage).
func (m *SessionMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, sessionmessage.FieldSessionID)
	}
	if m.message_index != nil {
		fields = append(fields, sessionmessage.FieldMessageIndex)
	}
	if m.role != nil {
		fields = append(fields, sessionmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, sessionmessage.FieldContent)
	}
	if m.display_content != nil {
		fields = append(fields, sessionmessage.FieldDisplayContent)
	}
	if m.token_count != nil {
		fields = append(fields, sessionmessage.FieldTokenCount)
	}
	if m.created_at != nil {
		fields = append(fields, sessionmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionmessage.FieldSessionID:
		return m.SessionID()
	case sessionmessage.FieldMessageIndex:
		return m.MessageIndex()
	case sessionmessage.FieldRole:
		return m.Role()
	case sessionmessage.FieldContent:
		return m.Content()
	case sessionmessage.FieldDisplayContent:
		return m.DisplayContent()
	case sessionmessage.FieldTokenCount:
		return m.TokenCount()
	case sessionmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionmessage.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionmessage.FieldMessageIndex:
		return m.OldMessageIndex(ctx)
	case sessionmessage.FieldRole:
		return m.OldRole(ctx)
	case sessionmessage.FieldContent:
		return m.OldContent(ctx)
	case sessionmessage.FieldDisplayContent:
		return m.OldDisplayContent(ctx)
	case sessionmessage.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case sessionmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionmessage.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionmessage.FieldMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageIndex(v)
		return nil
	case sessionmessage.FieldRole:
		v, ok := value.(sessionmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case sessionmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case sessionmessage.FieldDisplayContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayContent(v)
		return nil
	case sessionmessage.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case sessionmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMessageMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_index != nil {
		fields = append(fields, sessionmessage.FieldMessageIndex)
	}
	if m.addtoken_count != nil {
		fields = append(fields, sessionmessage.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionmessage.FieldMessageIndex:
		return m.AddedMessageIndex()
	case sessionmessage.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionmessage.FieldMessageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageIndex(v)
		return nil
	case sessionmessage.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionmessage.FieldDisplayContent) {
		fields = append(fields, sessionmessage.FieldDisplayContent)
	}
	if m.FieldCleared(sessionmessage.FieldTokenCount) {
		fields = append(fields, sessionmessage.FieldTokenCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMessageMutation) ClearField(name string) error {
	switch name {
	case sessionmessage.FieldDisplayContent:
		m.ClearDisplayContent()
		return nil
	case sessionmessage.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMessageMutation) ResetField(name string) error {
	switch name {
	case sessionmessage.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionmessage.FieldMessageIndex:
		m.ResetMessageIndex()
		return nil
	case sessionmessage.FieldRole:
		m.ResetRole()
		return nil
	case sessionmessage.FieldContent:
		m.ResetContent()
		return nil
	case sessionmessage.FieldDisplayContent:
		m.ResetDisplayContent()
		return nil
	case sessionmessage.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case sessionmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessionmessage.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionmessage.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessionmessage.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionmessage.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMessageMutation) ClearEdge(name string) error {
	switch name {
	case sessionmessage.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMessageMutation) ResetEdge(name string) error {
	switch name {
	case sessionmessage.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionMessage edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	status                 *studysession.Status
	target_point_ids       *[]string
	appendtarget_point_ids []string
	started_at             *time.Time
	ended_at               *time.Time
	last_activity_at       *time.Time
	metrics                *map[string]interface{}
	clearedFields          map[string]struct{}
	recall_set             *string
	clearedrecall_set      bool
	messages               map[string]struct{}
	removedmessages        map[string]struct{}
	clearedmessages        bool
	outcomes               map[string]struct{}
	removedoutcomes        map[string]struct{}
	clearedoutcomes        bool
	rabbitholes            map[string]struct{}
	removedrabbitholes     map[string]struct{}
	clearedrabbitholes     bool
	done                   bool
	oldValue               func(context.Context) (*StudySession, error)
	predicates             []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id string) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudySession entities.
func (m *StudySessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecallSetID sets the "recall_set_id" field.
func (m *StudySessionMutation) SetRecallSetID(s string) {
	m.recall_set = &s
}

// RecallSetID returns the value of the "recall_set_id" field in the mutation.
func (m *StudySessionMutation) RecallSetID() (r string, exists bool) {
	v := m.recall_set
	if v == nil {
		return
	}
	return *v, true
}

// OldRecallSetID returns the old "recall_set_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldRecallSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecallSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecallSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecallSetID: %w", err)
	}
	return oldValue.RecallSetID, nil
}

// ResetRecallSetID resets all changes to the "recall_set_id" field.
func (m *StudySessionMutation) ResetRecallSetID() {
	m.recall_set = nil
}

// SetStatus sets the "status" field.
func (m *StudySessionMutation) SetStatus(s studysession.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudySessionMutation) Status() (r studysession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStatus(ctx context.Context) (v studysession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudySessionMutation) ResetStatus() {
	m.status = nil
}

// SetTargetPointIds sets the "target_point_ids" field.
func (m *StudySessionMutation) SetTargetPointIds(s []string) {
	m.target_point_ids = &s
	m.appendtarget_point_ids = nil
}

// TargetPointIds returns the value of the "target_point_ids" field in the mutation.
func (m *StudySessionMutation) TargetPointIds() (r []string, exists bool) {
	v := m.target_point_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetPointIds returns the old "target_point_ids" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTargetPointIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetPointIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetPointIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetPointIds: %w", err)
	}
	return oldValue.TargetPointIds, nil
}

// AppendTargetPointIds adds s to the "target_point_ids" field.
func (m *StudySessionMutation) AppendTargetPointIds(s []string) {
	m.appendtarget_point_ids = append(m.appendtarget_point_ids, s...)
}

// AppendedTargetPointIds returns the list of values that were appended to the "target_point_ids" field in this mutation.
func (m *StudySessionMutation) AppendedTargetPointIds() ([]string, bool) {
	if len(m.appendtarget_point_ids) == 0 {
		return nil, false
	}
	return m.appendtarget_point_ids, true
}

// ResetTargetPointIds resets all changes to the "target_point_ids" field.
func (m *StudySessionMutation) ResetTargetPointIds() {
	m.target_point_ids = nil
	m.appendtarget_point_ids = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StudySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StudySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StudySessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *StudySessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *StudySessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *StudySessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[studysession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *StudySessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *StudySessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, studysession.FieldEndedAt)
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *StudySessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *StudySessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *StudySessionMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[studysession.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *StudySessionMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *StudySessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, studysession.FieldLastActivityAt)
}

// SetMetrics sets the "metrics" field.
func (m *StudySessionMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *StudySessionMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *StudySessionMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[studysession.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *StudySessionMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[studysession.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *StudySessionMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, studysession.FieldMetrics)
}

// ClearRecallSet clears the "recall_set" edge to the RecallSet entity.
func (m *StudySessionMutation) ClearRecallSet() {
	m.clearedrecall_set = true
	m.clearedFields[studysession.FieldRecallSetID] = struct{}{}
}

// RecallSetCleared reports if the "recall_set" edge to the RecallSet entity was cleared.
func (m *StudySessionMutation) RecallSetCleared() bool {
	return m.clearedrecall_set
}

// RecallSetIDs returns the "recall_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecallSetID instead. It exists only for internal usage by the builders.
func (m *StudySessionMutation) RecallSetIDs() (ids []string) {
	if id := m.recall_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecallSet resets all changes to the "recall_set" edge.
func (m *StudySessionMutation) ResetRecallSet() {
	m.recall_set = nil
	m.clearedrecall_set = false
}

// AddMessageIDs adds the "messages" edge to the SessionMessage entity by ids.
func (m *StudySessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the SessionMessage entity.
func (m *StudySessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the SessionMessage entity was cleared.
func (m *StudySessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the SessionMessage entity by IDs.
func (m *StudySessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the SessionMessage entity.
func (m *StudySessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *StudySessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *StudySessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by ids.
func (m *StudySessionMutation) AddOutcomeIDs(ids ...string) {
	if m.outcomes == nil {
		m.outcomes = make(map[string]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the RecallOutcome entity.
func (m *StudySessionMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the RecallOutcome entity was cleared.
func (m *StudySessionMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the RecallOutcome entity by IDs.
func (m *StudySessionMutation) RemoveOutcomeIDs(ids ...string) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the RecallOutcome entity.
func (m *StudySessionMutation) RemovedOutcomesIDs() (ids []string) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *StudySessionMutation) OutcomesIDs() (ids []string) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *StudySessionMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// AddRabbitholeIDs adds the "rabbitholes" edge to the RabbitholeEvent entity by ids.
func (m *StudySessionMutation) AddRabbitholeIDs(ids ...string) {
	if m.rabbitholes == nil {
		m.rabbitholes = make(map[string]struct{})
	}
	for i := range ids {
		m.rabbitholes[ids[i]] = struct{}{}
	}
}

// ClearRabbitholes clears the "rabbitholes" edge to the RabbitholeEvent entity.
func (m *StudySessionMutation) ClearRabbitholes() {
	m.clearedrabbitholes = true
}

// RabbitholesCleared reports if the "rabbitholes" edge to the RabbitholeEvent entity was cleared.
func (m *StudySessionMutation) RabbitholesCleared() bool {
	return m.clearedrabbitholes
}

// RemoveRabbitholeIDs removes the "rabbitholes" edge to the RabbitholeEvent entity by IDs.
func (m *StudySessionMutation) RemoveRabbitholeIDs(ids ...string) {
	if m.removedrabbitholes == nil {
		m.removedrabbitholes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rabbitholes, ids[i])
		m.removedrabbitholes[ids[i]] = struct{}{}
	}
}

// RemovedRabbitholes returns the removed IDs of the "rabbitholes" edge to the RabbitholeEvent entity.
func (m *StudySessionMutation) RemovedRabbitholesIDs() (ids []string) {
	for id := range m.removedrabbitholes {
		ids = append(ids, id)
	}
	return
}

// RabbitholesIDs returns the "rabbitholes" edge IDs in the mutation.
func (m *StudySessionMutation) RabbitholesIDs() (ids []string) {
	for id := range m.rabbitholes {
		ids = append(ids, id)
	}
	return
}

// ResetRabbitholes resets all changes to the "rabbitholes" edge.
func (m *StudySessionMutation) ResetRabbitholes() {
	m.rabbitholes = nil
	m.clearedrabbitholes = false
	m.removedrabbitholes = nil
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.recall_set != nil {
		fields = append(fields, studysession.FieldRecallSetID)
	}
	if m.status != nil {
		fields = append(fields, studysession.FieldStatus)
	}
	if m.target_point_ids != nil {
		fields = append(fields, studysession.FieldTargetPointIds)
	}
	if m.started_at != nil {
		fields = append(fields, studysession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, studysession.FieldEndedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, studysession.FieldLastActivityAt)
	}
	if m.metrics != nil {
		fields = append(fields, studysession.FieldMetrics)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldRecallSetID:
		return m.RecallSetID()
	case studysession.FieldStatus:
		return m.Status()
	case studysession.FieldTargetPointIds:
		return m.TargetPointIds()
	case studysession.FieldStartedAt:
		return m.StartedAt()
	case studysession.FieldEndedAt:
		return m.EndedAt()
	case studysession.FieldLastActivityAt:
		return m.LastActivityAt()
	case studysession.FieldMetrics:
		return m.Metrics()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldRecallSetID:
		return m.OldRecallSetID(ctx)
	case studysession.FieldStatus:
		return m.OldStatus(ctx)
	case studysession.FieldTargetPointIds:
		return m.OldTargetPointIds(ctx)
	case studysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case studysession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case studysession.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case studysession.FieldMetrics:
		return m.OldMetrics(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldRecallSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecallSetID(v)
		return nil
	case studysession.FieldStatus:
		v, ok := value.(studysession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studysession.FieldTargetPointIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetPointIds(v)
		return nil
	case studysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case studysession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case studysession.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case studysession.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldEndedAt) {
		fields = append(fields, studysession.FieldEndedAt)
	}
	if m.FieldCleared(studysession.FieldLastActivityAt) {
		fields = append(fields, studysession.FieldLastActivityAt)
	}
	if m.FieldCleared(studysession.FieldMetrics) {
		fields = append(fields, studysession.FieldMetrics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case studysession.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	case studysession.FieldMetrics:
		m.ClearMetrics()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldRecallSetID:
		m.ResetRecallSetID()
		return nil
	case studysession.FieldStatus:
		m.ResetStatus()
		return nil
	case studysession.FieldTargetPointIds:
		m.ResetTargetPointIds()
		return nil
	case studysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case studysession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case studysession.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case studysession.FieldMetrics:
		m.ResetMetrics()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.recall_set != nil {
		edges = append(edges, studysession.EdgeRecallSet)
	}
	if m.messages != nil {
		edges = append(edges, studysession.EdgeMessages)
	}
	if m.outcomes != nil {
		edges = append(edges, studysession.EdgeOutcomes)
	}
	if m.rabbitholes != nil {
		edges = append(edges, studysession.EdgeRabbitholes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgeRecallSet:
		if id := m.recall_set; id != nil {
			return []ent.Value{*id}
		}
	case studysession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeRabbitholes:
		ids := make([]ent.Value, 0, len(m.rabbitholes))
		for id := range m.rabbitholes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, studysession.EdgeMessages)
	}
	if m.removedoutcomes != nil {
		edges = append(edges, studysession.EdgeOutcomes)
	}
	if m.removedrabbitholes != nil {
		edges = append(edges, studysession.EdgeRabbitholes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case studysession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	case studysession.EdgeRabbitholes:
		ids := make([]ent.Value, 0, len(m.removedrabbitholes))
		for id := range m.removedrabbitholes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrecall_set {
		edges = append(edges, studysession.EdgeRecallSet)
	}
	if m.clearedmessages {
		edges = append(edges, studysession.EdgeMessages)
	}
	if m.clearedoutcomes {
		edges = append(edges, studysession.EdgeOutcomes)
	}
	if m.clearedrabbitholes {
		edges = append(edges, studysession.EdgeRabbitholes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	switch name {
	case studysession.EdgeRecallSet:
		return m.clearedrecall_set
	case studysession.EdgeMessages:
		return m.clearedmessages
	case studysession.EdgeOutcomes:
		return m.clearedoutcomes
	case studysession.EdgeRabbitholes:
		return m.clearedrabbitholes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	switch name {
	case studysession.EdgeRecallSet:
		m.ClearRecallSet()
		return nil
	}
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	switch name {
	case studysession.EdgeRecallSet:
		m.ResetRecallSet()
		return nil
	case studysession.EdgeMessages:
		m.ResetMessages()
		return nil
	case studysession.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	case studysession.EdgeRabbitholes:
		m.ResetRabbitholes()
		return nil
	}
	return fmt.Errorf("unknown StudySession edge %s", name)
}
