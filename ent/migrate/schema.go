// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillEventsColumns holds the columns for the "drill_events" table.
	DrillEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "level_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "target_text", Type: field.TypeString},
		{Name: "attempt_text", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "exact_words", Type: field.TypeInt, Default: 0},
		{Name: "close_words", Type: field.TypeInt, Default: 0},
		{Name: "missed_words", Type: field.TypeInt, Default: 0},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// DrillEventsTable holds the schema information for the "drill_events" table.
	DrillEventsTable = &schema.Table{
		Name:       "drill_events",
		Columns:    DrillEventsColumns,
		PrimaryKey: []*schema.Column{DrillEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drillevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[1]},
			},
			{
				Name:    "drillevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[2]},
			},
			{
				Name:    "drillevent_level_id",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[3]},
			},
			{
				Name:    "drillevent_card_id",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[4]},
			},
			{
				Name:    "drillevent_mode",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[5]},
			},
			{
				Name:    "drillevent_correct",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[8]},
			},
		},
	}
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
	// MediaAssetsColumns holds the columns for the "media_assets" table.
	MediaAssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "data", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MediaAssetsTable holds the schema information for the "media_assets" table.
	MediaAssetsTable = &schema.Table{
		Name:       "media_assets",
		Columns:    MediaAssetsColumns,
		PrimaryKey: []*schema.Column{MediaAssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mediaasset_kind",
				Unique:  false,
				Columns: []*schema.Column{MediaAssetsColumns[2]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "level_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString},
		{Name: "chosen_option", Type: field.TypeString},
		{Name: "correct_option", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_level_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[8]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillEventsTable,
		LlmRequestEventsTable,
		MediaAssetsTable,
		QuizEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
