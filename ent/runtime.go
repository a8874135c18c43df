// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/recollect-ai/recollect/ent/event"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/ent/schema"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.IDValidator is a validator for the "id" field. It is called by the builders before save.
	event.IDValidator = eventDescID.Validators[0].(func(int) error)
	rabbitholeeventFields := schema.RabbitholeEvent{}.Fields()
	_ = rabbitholeeventFields
	// rabbitholeeventDescDepth is the schema descriptor for depth field.
	rabbitholeeventDescDepth := rabbitholeeventFields[3].Descriptor()
	// rabbitholeevent.DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	rabbitholeevent.DepthValidator = rabbitholeeventDescDepth.Validators[0].(func(int) error)
	// rabbitholeeventDescCreatedAt is the schema descriptor for created_at field.
	rabbitholeeventDescCreatedAt := rabbitholeeventFields[7].Descriptor()
	// rabbitholeevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	rabbitholeevent.DefaultCreatedAt = rabbitholeeventDescCreatedAt.Default.(func() time.Time)
	recalloutcomeFields := schema.RecallOutcome{}.Fields()
	_ = recalloutcomeFields
	// recalloutcomeDescReasoning is the schema descriptor for reasoning field.
	recalloutcomeDescReasoning := recalloutcomeFields[6].Descriptor()
	// recalloutcome.DefaultReasoning holds the default value on creation for the reasoning field.
	recalloutcome.DefaultReasoning = recalloutcomeDescReasoning.Default.(string)
	// recalloutcomeDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	recalloutcomeDescTimeSpentMs := recalloutcomeFields[9].Descriptor()
	// recalloutcome.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	recalloutcome.DefaultTimeSpentMs = recalloutcomeDescTimeSpentMs.Default.(int64)
	// recalloutcomeDescCreatedAt is the schema descriptor for created_at field.
	recalloutcomeDescCreatedAt := recalloutcomeFields[10].Descriptor()
	// recalloutcome.DefaultCreatedAt holds the default value on creation for the created_at field.
	recalloutcome.DefaultCreatedAt = recalloutcomeDescCreatedAt.Default.(func() time.Time)
	recallpointFields := schema.RecallPoint{}.Fields()
	_ = recallpointFields
	// recallpointDescReps is the schema descriptor for reps field.
	recallpointDescReps := recallpointFields[8].Descriptor()
	// recallpoint.DefaultReps holds the default value on creation for the reps field.
	recallpoint.DefaultReps = recallpointDescReps.Default.(int)
	// recallpointDescLapses is the schema descriptor for lapses field.
	recallpointDescLapses := recallpointFields[9].Descriptor()
	// recallpoint.DefaultLapses holds the default value on creation for the lapses field.
	recallpoint.DefaultLapses = recallpointDescLapses.Default.(int)
	// recallpointDescCreatedAt is the schema descriptor for created_at field.
	recallpointDescCreatedAt := recallpointFields[12].Descriptor()
	// recallpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	recallpoint.DefaultCreatedAt = recallpointDescCreatedAt.Default.(func() time.Time)
	// recallpointDescUpdatedAt is the schema descriptor for updated_at field.
	recallpointDescUpdatedAt := recallpointFields[13].Descriptor()
	// recallpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recallpoint.DefaultUpdatedAt = recallpointDescUpdatedAt.Default.(func() time.Time)
	// recallpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recallpoint.UpdateDefaultUpdatedAt = recallpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	recallsetFields := schema.RecallSet{}.Fields()
	_ = recallsetFields
	// recallsetDescDescription is the schema descriptor for description field.
	recallsetDescDescription := recallsetFields[2].Descriptor()
	// recallset.DefaultDescription holds the default value on creation for the description field.
	recallset.DefaultDescription = recallsetDescDescription.Default.(string)
	// recallsetDescCreatedAt is the schema descriptor for created_at field.
	recallsetDescCreatedAt := recallsetFields[5].Descriptor()
	// recallset.DefaultCreatedAt holds the default value on creation for the created_at field.
	recallset.DefaultCreatedAt = recallsetDescCreatedAt.Default.(func() time.Time)
	// recallsetDescUpdatedAt is the schema descriptor for updated_at field.
	recallsetDescUpdatedAt := recallsetFields[6].Descriptor()
	// recallset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recallset.DefaultUpdatedAt = recallsetDescUpdatedAt.Default.(func() time.Time)
	// recallset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recallset.UpdateDefaultUpdatedAt = recallsetDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionmessageFields := schema.SessionMessage{}.Fields()
	_ = sessionmessageFields
	// sessionmessageDescCreatedAt is the schema descriptor for created_at field.
	sessionmessageDescCreatedAt := sessionmessageFields[7].Descriptor()
	// sessionmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmessage.DefaultCreatedAt = sessionmessageDescCreatedAt.Default.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
}
