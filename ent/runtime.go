// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rahulnair/lingua/ent/drillevent"
	"github.com/rahulnair/lingua/ent/llmrequestevent"
	"github.com/rahulnair/lingua/ent/mediaasset"
	"github.com/rahulnair/lingua/ent/quizevent"
	"github.com/rahulnair/lingua/ent/schema"
	"github.com/rahulnair/lingua/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drilleventMixin := schema.DrillEvent{}.Mixin()
	drilleventMixinFields0 := drilleventMixin[0].Fields()
	_ = drilleventMixinFields0
	drilleventFields := schema.DrillEvent{}.Fields()
	_ = drilleventFields
	// drilleventDescTimestamp is the schema descriptor for timestamp field.
	drilleventDescTimestamp := drilleventMixinFields0[1].Descriptor()
	// drillevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillevent.DefaultTimestamp = drilleventDescTimestamp.Default.(func() time.Time)
	// drilleventDescLevelID is the schema descriptor for level_id field.
	drilleventDescLevelID := drilleventFields[0].Descriptor()
	// drillevent.LevelIDValidator is a validator for the "level_id" field. It is called by the builders before save.
	drillevent.LevelIDValidator = drilleventDescLevelID.Validators[0].(func(string) error)
	// drilleventDescCardID is the schema descriptor for card_id field.
	drilleventDescCardID := drilleventFields[1].Descriptor()
	// drillevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	drillevent.CardIDValidator = drilleventDescCardID.Validators[0].(func(string) error)
	// drilleventDescMode is the schema descriptor for mode field.
	drilleventDescMode := drilleventFields[2].Descriptor()
	// drillevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	drillevent.ModeValidator = drilleventDescMode.Validators[0].(func(string) error)
	// drilleventDescTargetText is the schema descriptor for target_text field.
	drilleventDescTargetText := drilleventFields[3].Descriptor()
	// drillevent.TargetTextValidator is a validator for the "target_text" field. It is called by the builders before save.
	drillevent.TargetTextValidator = drilleventDescTargetText.Validators[0].(func(string) error)
	// drilleventDescAttemptText is the schema descriptor for attempt_text field.
	drilleventDescAttemptText := drilleventFields[4].Descriptor()
	// drillevent.DefaultAttemptText holds the default value on creation for the attempt_text field.
	drillevent.DefaultAttemptText = drilleventDescAttemptText.Default.(string)
	// drilleventDescExactWords is the schema descriptor for exact_words field.
	drilleventDescExactWords := drilleventFields[6].Descriptor()
	// drillevent.DefaultExactWords holds the default value on creation for the exact_words field.
	drillevent.DefaultExactWords = drilleventDescExactWords.Default.(int)
	// drilleventDescCloseWords is the schema descriptor for close_words field.
	drilleventDescCloseWords := drilleventFields[7].Descriptor()
	// drillevent.DefaultCloseWords holds the default value on creation for the close_words field.
	drillevent.DefaultCloseWords = drilleventDescCloseWords.Default.(int)
	// drilleventDescMissedWords is the schema descriptor for missed_words field.
	drilleventDescMissedWords := drilleventFields[8].Descriptor()
	// drillevent.DefaultMissedWords holds the default value on creation for the missed_words field.
	drillevent.DefaultMissedWords = drilleventDescMissedWords.Default.(int)
	// drilleventDescTimeMs is the schema descriptor for time_ms field.
	drilleventDescTimeMs := drilleventFields[9].Descriptor()
	// drillevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	drillevent.DefaultTimeMs = drilleventDescTimeMs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	mediaassetFields := schema.MediaAsset{}.Fields()
	_ = mediaassetFields
	// mediaassetDescKey is the schema descriptor for key field.
	mediaassetDescKey := mediaassetFields[0].Descriptor()
	// mediaasset.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	mediaasset.KeyValidator = mediaassetDescKey.Validators[0].(func(string) error)
	// mediaassetDescKind is the schema descriptor for kind field.
	mediaassetDescKind := mediaassetFields[1].Descriptor()
	// mediaasset.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	mediaasset.KindValidator = mediaassetDescKind.Validators[0].(func(string) error)
	// mediaassetDescMimeType is the schema descriptor for mime_type field.
	mediaassetDescMimeType := mediaassetFields[2].Descriptor()
	// mediaasset.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	mediaasset.MimeTypeValidator = mediaassetDescMimeType.Validators[0].(func(string) error)
	// mediaassetDescCreatedAt is the schema descriptor for created_at field.
	mediaassetDescCreatedAt := mediaassetFields[4].Descriptor()
	// mediaasset.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediaasset.DefaultCreatedAt = mediaassetDescCreatedAt.Default.(func() time.Time)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescLevelID is the schema descriptor for level_id field.
	quizeventDescLevelID := quizeventFields[0].Descriptor()
	// quizevent.LevelIDValidator is a validator for the "level_id" field. It is called by the builders before save.
	quizevent.LevelIDValidator = quizeventDescLevelID.Validators[0].(func(string) error)
	// quizeventDescQuestionText is the schema descriptor for question_text field.
	quizeventDescQuestionText := quizeventFields[2].Descriptor()
	// quizevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	quizevent.QuestionTextValidator = quizeventDescQuestionText.Validators[0].(func(string) error)
	// quizeventDescChosenOption is the schema descriptor for chosen_option field.
	quizeventDescChosenOption := quizeventFields[3].Descriptor()
	// quizevent.ChosenOptionValidator is a validator for the "chosen_option" field. It is called by the builders before save.
	quizevent.ChosenOptionValidator = quizeventDescChosenOption.Validators[0].(func(string) error)
	// quizeventDescCorrectOption is the schema descriptor for correct_option field.
	quizeventDescCorrectOption := quizeventFields[4].Descriptor()
	// quizevent.CorrectOptionValidator is a validator for the "correct_option" field. It is called by the builders before save.
	quizevent.CorrectOptionValidator = quizeventDescCorrectOption.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
