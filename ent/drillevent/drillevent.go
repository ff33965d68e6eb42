// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillevent type in the database.
	Label = "drill_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLevelID holds the string denoting the level_id field in the database.
	FieldLevelID = "level_id"
	// FieldCardID holds the string denoting the card_id field in the database.
	FieldCardID = "card_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTargetText holds the string denoting the target_text field in the database.
	FieldTargetText = "target_text"
	// FieldAttemptText holds the string denoting the attempt_text field in the database.
	FieldAttemptText = "attempt_text"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldExactWords holds the string denoting the exact_words field in the database.
	FieldExactWords = "exact_words"
	// FieldCloseWords holds the string denoting the close_words field in the database.
	FieldCloseWords = "close_words"
	// FieldMissedWords holds the string denoting the missed_words field in the database.
	FieldMissedWords = "missed_words"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// Table holds the table name of the drillevent in the database.
	Table = "drill_events"
)

// Columns holds all SQL columns for drillevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLevelID,
	FieldCardID,
	FieldMode,
	FieldTargetText,
	FieldAttemptText,
	FieldCorrect,
	FieldExactWords,
	FieldCloseWords,
	FieldMissedWords,
	FieldTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LevelIDValidator is a validator for the "level_id" field. It is called by the builders before save.
	LevelIDValidator func(string) error
	// CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	CardIDValidator func(string) error
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// TargetTextValidator is a validator for the "target_text" field. It is called by the builders before save.
	TargetTextValidator func(string) error
	// DefaultAttemptText holds the default value on creation for the "attempt_text" field.
	DefaultAttemptText string
	// DefaultExactWords holds the default value on creation for the "exact_words" field.
	DefaultExactWords int
	// DefaultCloseWords holds the default value on creation for the "close_words" field.
	DefaultCloseWords int
	// DefaultMissedWords holds the default value on creation for the "missed_words" field.
	DefaultMissedWords int
	// DefaultTimeMs holds the default value on creation for the "time_ms" field.
	DefaultTimeMs int
)

// OrderOption defines the ordering options for the DrillEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLevelID orders the results by the level_id field.
func ByLevelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelID, opts...).ToFunc()
}

// ByCardID orders the results by the card_id field.
func ByCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTargetText orders the results by the target_text field.
func ByTargetText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetText, opts...).ToFunc()
}

// ByAttemptText orders the results by the attempt_text field.
func ByAttemptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptText, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByExactWords orders the results by the exact_words field.
func ByExactWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExactWords, opts...).ToFunc()
}

// ByCloseWords orders the results by the close_words field.
func ByCloseWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCloseWords, opts...).ToFunc()
}

// ByMissedWords orders the results by the missed_words field.
func ByMissedWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissedWords, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}
