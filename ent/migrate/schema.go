// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	QuizSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "document_name", Type: field.TypeString, Default: ""},
		{Name: "final_score", Type: field.TypeFloat64},
		{Name: "mastery_achieved", Type: field.TypeBool},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "finish_reason", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuizSessionsTable holds the schema information for the "quiz_sessions" table.
	QuizSessionsTable = &schema.Table{
		Name:       "quiz_sessions",
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[2]},
			},
			{
				Name:    "quizsession_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionsColumns[8]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "tier", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "seq_in_session", Type: field.TypeInt},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_topic",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[7]},
			},
		},
	}
	// TopicStatsColumns holds the columns for the "topic_stats" table.
	TopicStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "topic", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TopicStatsTable holds the schema information for the "topic_stats" table.
	TopicStatsTable = &schema.Table{
		Name:       "topic_stats",
		Columns:    TopicStatsColumns,
		PrimaryKey: []*schema.Column{TopicStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicstat_user_id_topic",
				Unique:  true,
				Columns: []*schema.Column{TopicStatsColumns[1], TopicStatsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizSessionsTable,
		ResponseEventsTable,
		TopicStatsTable,
		UsersTable,
	}
)

func init() {
}
