// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rahulnair/lingua/ent/drillevent"
)

// DrillEvent is the model entity for the DrillEvent schema.
type DrillEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Course module this card belongs to
	LevelID string `json:"level_id,omitempty"`
	// Flashcard the drill ran against
	CardID string `json:"card_id,omitempty"`
	// dictation or pronunciation
	Mode string `json:"mode,omitempty"`
	// The phrase being drilled
	TargetText string `json:"target_text,omitempty"`
	// What the learner typed or the recognizer heard
	AttemptText string `json:"attempt_text,omitempty"`
	// Dictation: exact normalized match. Pronunciation: every word exact
	Correct bool `json:"correct,omitempty"`
	// Target words matched exactly
	ExactWords int `json:"exact_words,omitempty"`
	// Target words within the near-miss threshold
	CloseWords int `json:"close_words,omitempty"`
	// Target words with no acceptable match
	MissedWords int `json:"missed_words,omitempty"`
	// Milliseconds from drill start to this attempt
	TimeMs       int `json:"time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case drillevent.FieldID, drillevent.FieldSequence, drillevent.FieldExactWords, drillevent.FieldCloseWords, drillevent.FieldMissedWords, drillevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case drillevent.FieldLevelID, drillevent.FieldCardID, drillevent.FieldMode, drillevent.FieldTargetText, drillevent.FieldAttemptText:
			values[i] = new(sql.NullString)
		case drillevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillEvent fields.
func (_m *DrillEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case drillevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case drillevent.FieldLevelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level_id", values[i])
			} else if value.Valid {
				_m.LevelID = value.String
			}
		case drillevent.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case drillevent.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case drillevent.FieldTargetText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_text", values[i])
			} else if value.Valid {
				_m.TargetText = value.String
			}
		case drillevent.FieldAttemptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_text", values[i])
			} else if value.Valid {
				_m.AttemptText = value.String
			}
		case drillevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case drillevent.FieldExactWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exact_words", values[i])
			} else if value.Valid {
				_m.ExactWords = int(value.Int64)
			}
		case drillevent.FieldCloseWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field close_words", values[i])
			} else if value.Valid {
				_m.CloseWords = int(value.Int64)
			}
		case drillevent.FieldMissedWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field missed_words", values[i])
			} else if value.Valid {
				_m.MissedWords = int(value.Int64)
			}
		case drillevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DrillEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillEvent.
// Note that you need to call DrillEvent.Unwrap() before calling this method if this DrillEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillEvent) Update() *DrillEventUpdateOne {
	return NewDrillEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillEvent) Unwrap() *DrillEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DrillEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("level_id=")
	builder.WriteString(_m.LevelID)
	builder.WriteString(", ")
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("target_text=")
	builder.WriteString(_m.TargetText)
	builder.WriteString(", ")
	builder.WriteString("attempt_text=")
	builder.WriteString(_m.AttemptText)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("exact_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExactWords))
	builder.WriteString(", ")
	builder.WriteString("close_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.CloseWords))
	builder.WriteString(", ")
	builder.WriteString("missed_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissedWords))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// DrillEvents is a parsable slice of DrillEvent.
type DrillEvents []*DrillEvent
