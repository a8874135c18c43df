// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// RabbitholeEventsColumns holds the columns for the "rabbithole_events" table.
	RabbitholeEventsColumns = []*schema.Column{
		{Name: "rabbithole_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt},
		{Name: "trigger_message_index", Type: field.TypeInt},
		{Name: "return_message_index", Type: field.TypeInt, Nullable: true},
		{Name: "conversation_history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// RabbitholeEventsTable holds the schema information for the "rabbithole_events" table.
	RabbitholeEventsTable = &schema.Table{
		Name:       "rabbithole_events",
		Columns:    RabbitholeEventsColumns,
		PrimaryKey: []*schema.Column{RabbitholeEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rabbithole_events_study_sessions_rabbitholes",
				Columns:    []*schema.Column{RabbitholeEventsColumns[7]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rabbitholeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RabbitholeEventsColumns[7]},
			},
		},
	}
	// RecallOutcomesColumns holds the columns for the "recall_outcomes" table.
	RecallOutcomesColumns = []*schema.Column{
		{Name: "outcome_id", Type: field.TypeString, Unique: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "rating", Type: field.TypeEnum, Enums: []string{"again", "hard", "good", "easy"}},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "message_index_start", Type: field.TypeInt},
		{Name: "message_index_end", Type: field.TypeInt},
		{Name: "time_spent_ms", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recall_point_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
	}
	// RecallOutcomesTable holds the schema information for the "recall_outcomes" table.
	RecallOutcomesTable = &schema.Table{
		Name:       "recall_outcomes",
		Columns:    RecallOutcomesColumns,
		PrimaryKey: []*schema.Column{RecallOutcomesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recall_outcomes_recall_points_outcomes",
				Columns:    []*schema.Column{RecallOutcomesColumns[9]},
				RefColumns: []*schema.Column{RecallPointsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "recall_outcomes_study_sessions_outcomes",
				Columns:    []*schema.Column{RecallOutcomesColumns[10]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recalloutcome_session_id",
				Unique:  false,
				Columns: []*schema.Column{RecallOutcomesColumns[10]},
			},
			{
				Name:    "recalloutcome_recall_point_id",
				Unique:  false,
				Columns: []*schema.Column{RecallOutcomesColumns[9]},
			},
		},
	}
	// RecallPointsColumns holds the columns for the "recall_points" table.
	RecallPointsColumns = []*schema.Column{
		{Name: "recall_point_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Size: 2147483647},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "due", Type: field.TypeTime},
		{Name: "last_review", Type: field.TypeTime, Nullable: true},
		{Name: "reps", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"new", "learning", "review", "relearning"}, Default: "new"},
		{Name: "recall_history", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recall_set_id", Type: field.TypeString},
	}
	// RecallPointsTable holds the schema information for the "recall_points" table.
	RecallPointsTable = &schema.Table{
		Name:       "recall_points",
		Columns:    RecallPointsColumns,
		PrimaryKey: []*schema.Column{RecallPointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recall_points_recall_sets_points",
				Columns:    []*schema.Column{RecallPointsColumns[13]},
				RefColumns: []*schema.Column{RecallSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recallpoint_recall_set_id_due",
				Unique:  false,
				Columns: []*schema.Column{RecallPointsColumns[13], RecallPointsColumns[5]},
			},
		},
	}
	// RecallSetsColumns holds the columns for the "recall_sets" table.
	RecallSetsColumns = []*schema.Column{
		{Name: "recall_set_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "paused", "archived"}, Default: "active"},
		{Name: "discussion_system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecallSetsTable holds the schema information for the "recall_sets" table.
	RecallSetsTable = &schema.Table{
		Name:       "recall_sets",
		Columns:    RecallSetsColumns,
		PrimaryKey: []*schema.Column{RecallSetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recallset_status",
				Unique:  false,
				Columns: []*schema.Column{RecallSetsColumns[3]},
			},
		},
	}
	// SessionMessagesColumns holds the columns for the "session_messages" table.
	SessionMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "message_index", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "display_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// SessionMessagesTable holds the schema information for the "session_messages" table.
	SessionMessagesTable = &schema.Table{
		Name:       "session_messages",
		Columns:    SessionMessagesColumns,
		PrimaryKey: []*schema.Column{SessionMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_messages_study_sessions_messages",
				Columns:    []*schema.Column{SessionMessagesColumns[7]},
				RefColumns: []*schema.Column{StudySessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessionmessage_session_id_message_index",
				Unique:  true,
				Columns: []*schema.Column{SessionMessagesColumns[7], SessionMessagesColumns[1]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed", "abandoned"}, Default: "in_progress"},
		{Name: "target_point_ids", Type: field.TypeJSON},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime, Nullable: true},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "recall_set_id", Type: field.TypeString},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_sessions_recall_sets_sessions",
				Columns:    []*schema.Column{StudySessionsColumns[7]},
				RefColumns: []*schema.Column{RecallSetsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_recall_set_id_status",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[7], StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_started_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		RabbitholeEventsTable,
		RecallOutcomesTable,
		RecallPointsTable,
		RecallSetsTable,
		SessionMessagesTable,
		StudySessionsTable,
	}
)

func init() {
	RabbitholeEventsTable.ForeignKeys[0].RefTable = StudySessionsTable
	RecallOutcomesTable.ForeignKeys[0].RefTable = RecallPointsTable
	RecallOutcomesTable.ForeignKeys[1].RefTable = StudySessionsTable
	RecallPointsTable.ForeignKeys[0].RefTable = RecallSetsTable
	SessionMessagesTable.ForeignKeys[0].RefTable = StudySessionsTable
	StudySessionsTable.ForeignKeys[0].RefTable = RecallSetsTable
}
