// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rahulnair/lingua/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LevelID applies equality check predicate on the "level_id" field. It's identical to LevelIDEQ.
func LevelID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldLevelID, v))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCardID, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldMode, v))
}

// TargetText applies equality check predicate on the "target_text" field. It's identical to TargetTextEQ.
func TargetText(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTargetText, v))
}

// AttemptText applies equality check predicate on the "attempt_text" field. It's identical to AttemptTextEQ.
func AttemptText(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldAttemptText, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCorrect, v))
}

// ExactWords applies equality check predicate on the "exact_words" field. It's identical to ExactWordsEQ.
func ExactWords(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldExactWords, v))
}

// CloseWords applies equality check predicate on the "close_words" field. It's identical to CloseWordsEQ.
func CloseWords(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCloseWords, v))
}

// MissedWords applies equality check predicate on the "missed_words" field. It's identical to MissedWordsEQ.
func MissedWords(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldMissedWords, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LevelIDEQ applies the EQ predicate on the "level_id" field.
func LevelIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldLevelID, v))
}

// LevelIDNEQ applies the NEQ predicate on the "level_id" field.
func LevelIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldLevelID, v))
}

// LevelIDIn applies the In predicate on the "level_id" field.
func LevelIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldLevelID, vs...))
}

// LevelIDNotIn applies the NotIn predicate on the "level_id" field.
func LevelIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldLevelID, vs...))
}

// LevelIDGT applies the GT predicate on the "level_id" field.
func LevelIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldLevelID, v))
}

// LevelIDGTE applies the GTE predicate on the "level_id" field.
func LevelIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldLevelID, v))
}

// LevelIDLT applies the LT predicate on the "level_id" field.
func LevelIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldLevelID, v))
}

// LevelIDLTE applies the LTE predicate on the "level_id" field.
func LevelIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldLevelID, v))
}

// LevelIDContains applies the Contains predicate on the "level_id" field.
func LevelIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldLevelID, v))
}

// LevelIDHasPrefix applies the HasPrefix predicate on the "level_id" field.
func LevelIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldLevelID, v))
}

// LevelIDHasSuffix applies the HasSuffix predicate on the "level_id" field.
func LevelIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldLevelID, v))
}

// LevelIDEqualFold applies the EqualFold predicate on the "level_id" field.
func LevelIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldLevelID, v))
}

// LevelIDContainsFold applies the ContainsFold predicate on the "level_id" field.
func LevelIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldLevelID, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldCardID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldMode, v))
}

// TargetTextEQ applies the EQ predicate on the "target_text" field.
func TargetTextEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTargetText, v))
}

// TargetTextNEQ applies the NEQ predicate on the "target_text" field.
func TargetTextNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTargetText, v))
}

// TargetTextIn applies the In predicate on the "target_text" field.
func TargetTextIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTargetText, vs...))
}

// TargetTextNotIn applies the NotIn predicate on the "target_text" field.
func TargetTextNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTargetText, vs...))
}

// TargetTextGT applies the GT predicate on the "target_text" field.
func TargetTextGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTargetText, v))
}

// TargetTextGTE applies the GTE predicate on the "target_text" field.
func TargetTextGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTargetText, v))
}

// TargetTextLT applies the LT predicate on the "target_text" field.
func TargetTextLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTargetText, v))
}

// TargetTextLTE applies the LTE predicate on the "target_text" field.
func TargetTextLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTargetText, v))
}

// TargetTextContains applies the Contains predicate on the "target_text" field.
func TargetTextContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldTargetText, v))
}

// TargetTextHasPrefix applies the HasPrefix predicate on the "target_text" field.
func TargetTextHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldTargetText, v))
}

// TargetTextHasSuffix applies the HasSuffix predicate on the "target_text" field.
func TargetTextHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldTargetText, v))
}

// TargetTextEqualFold applies the EqualFold predicate on the "target_text" field.
func TargetTextEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldTargetText, v))
}

// TargetTextContainsFold applies the ContainsFold predicate on the "target_text" field.
func TargetTextContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldTargetText, v))
}

// AttemptTextEQ applies the EQ predicate on the "attempt_text" field.
func AttemptTextEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldAttemptText, v))
}

// AttemptTextNEQ applies the NEQ predicate on the "attempt_text" field.
func AttemptTextNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldAttemptText, v))
}

// AttemptTextIn applies the In predicate on the "attempt_text" field.
func AttemptTextIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldAttemptText, vs...))
}

// AttemptTextNotIn applies the NotIn predicate on the "attempt_text" field.
func AttemptTextNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldAttemptText, vs...))
}

// AttemptTextGT applies the GT predicate on the "attempt_text" field.
func AttemptTextGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldAttemptText, v))
}

// AttemptTextGTE applies the GTE predicate on the "attempt_text" field.
func AttemptTextGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldAttemptText, v))
}

// AttemptTextLT applies the LT predicate on the "attempt_text" field.
func AttemptTextLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldAttemptText, v))
}

// AttemptTextLTE applies the LTE predicate on the "attempt_text" field.
func AttemptTextLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldAttemptText, v))
}

// AttemptTextContains applies the Contains predicate on the "attempt_text" field.
func AttemptTextContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldAttemptText, v))
}

// AttemptTextHasPrefix applies the HasPrefix predicate on the "attempt_text" field.
func AttemptTextHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldAttemptText, v))
}

// AttemptTextHasSuffix applies the HasSuffix predicate on the "attempt_text" field.
func AttemptTextHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldAttemptText, v))
}

// AttemptTextEqualFold applies the EqualFold predicate on the "attempt_text" field.
func AttemptTextEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldAttemptText, v))
}

// AttemptTextContainsFold applies the ContainsFold predicate on the "attempt_text" field.
func AttemptTextContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldAttemptText, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ExactWordsEQ applies the EQ predicate on the "exact_words" field.
func ExactWordsEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldExactWords, v))
}

// ExactWordsNEQ applies the NEQ predicate on the "exact_words" field.
func ExactWordsNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldExactWords, v))
}

// ExactWordsIn applies the In predicate on the "exact_words" field.
func ExactWordsIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldExactWords, vs...))
}

// ExactWordsNotIn applies the NotIn predicate on the "exact_words" field.
func ExactWordsNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldExactWords, vs...))
}

// ExactWordsGT applies the GT predicate on the "exact_words" field.
func ExactWordsGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldExactWords, v))
}

// ExactWordsGTE applies the GTE predicate on the "exact_words" field.
func ExactWordsGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldExactWords, v))
}

// ExactWordsLT applies the LT predicate on the "exact_words" field.
func ExactWordsLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldExactWords, v))
}

// ExactWordsLTE applies the LTE predicate on the "exact_words" field.
func ExactWordsLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldExactWords, v))
}

// CloseWordsEQ applies the EQ predicate on the "close_words" field.
func CloseWordsEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldCloseWords, v))
}

// CloseWordsNEQ applies the NEQ predicate on the "close_words" field.
func CloseWordsNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldCloseWords, v))
}

// CloseWordsIn applies the In predicate on the "close_words" field.
func CloseWordsIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldCloseWords, vs...))
}

// CloseWordsNotIn applies the NotIn predicate on the "close_words" field.
func CloseWordsNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldCloseWords, vs...))
}

// CloseWordsGT applies the GT predicate on the "close_words" field.
func CloseWordsGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldCloseWords, v))
}

// CloseWordsGTE applies the GTE predicate on the "close_words" field.
func CloseWordsGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldCloseWords, v))
}

// CloseWordsLT applies the LT predicate on the "close_words" field.
func CloseWordsLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldCloseWords, v))
}

// CloseWordsLTE applies the LTE predicate on the "close_words" field.
func CloseWordsLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldCloseWords, v))
}

// MissedWordsEQ applies the EQ predicate on the "missed_words" field.
func MissedWordsEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldMissedWords, v))
}

// MissedWordsNEQ applies the NEQ predicate on the "missed_words" field.
func MissedWordsNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldMissedWords, v))
}

// MissedWordsIn applies the In predicate on the "missed_words" field.
func MissedWordsIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldMissedWords, vs...))
}

// MissedWordsNotIn applies the NotIn predicate on the "missed_words" field.
func MissedWordsNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldMissedWords, vs...))
}

// MissedWordsGT applies the GT predicate on the "missed_words" field.
func MissedWordsGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldMissedWords, v))
}

// MissedWordsGTE applies the GTE predicate on the "missed_words" field.
func MissedWordsGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldMissedWords, v))
}

// MissedWordsLT applies the LT predicate on the "missed_words" field.
func MissedWordsLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldMissedWords, v))
}

// MissedWordsLTE applies the LTE predicate on the "missed_words" field.
func MissedWordsLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldMissedWords, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.NotPredicates(p))
}
