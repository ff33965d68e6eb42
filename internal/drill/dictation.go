package drill

import "github.com/rahulnair/lingua/internal/textnorm"

// DictationStatus is the state of the listen-and-type exercise.
type DictationStatus int

const (
	// StatusIdle means no check has run since the last edit.
	StatusIdle DictationStatus = iota
	// StatusCorrect means the input matched the target. Terminal until reset.
	StatusCorrect
	// StatusIncorrect means the last check failed. Cleared on the next edit.
	StatusIncorrect
)

// SubmitResult is the outcome of an Enter keypress in the dictation drill.
type SubmitResult int

const (
	// SubmitChecked means a check ran; consult Status for the result.
	SubmitChecked SubmitResult = iota
	// SubmitAdvance means the drill was already correct and the learner
	// should move to the next card.
	SubmitAdvance
)

// Dictation drives the listen-and-type exercise for one card. Zero
// dependencies and no side effects: callers play reference audio when
// Check reports a match.
type Dictation struct {
	target string
	input  string
	status DictationStatus
}

// NewDictation creates an idle dictation drill for the given target sentence.
func NewDictation(target string) *Dictation {
	return &Dictation{target: target}
}

// SetInput replaces the buffer verbatim. A prior Incorrect flag clears as
// soon as the learner edits. Once Correct, input is locked until the drill
// is rebuilt by a card or mode change.
func (d *Dictation) SetInput(text string) {
	if d.status == StatusCorrect {
		return
	}
	d.input = text
	d.status = StatusIdle
}

// Input returns the current buffer.
func (d *Dictation) Input() string { return d.input }

// Status returns the current drill status.
func (d *Dictation) Status() DictationStatus { return d.status }

// Check compares the normalized buffer against the normalized target and
// returns true on a match. Empty input simply fails to match. Checking an
// already-correct drill stays correct.
func (d *Dictation) Check() bool {
	if d.status == StatusCorrect {
		return true
	}
	if textnorm.Normalize(d.input) != "" &&
		textnorm.Normalize(d.input) == textnorm.Normalize(d.target) {
		d.status = StatusCorrect
		return true
	}
	d.status = StatusIncorrect
	return false
}

// SubmitOnEnter handles the Enter key: advance when already correct,
// otherwise run a check.
func (d *Dictation) SubmitOnEnter() SubmitResult {
	if d.status == StatusCorrect {
		return SubmitAdvance
	}
	d.Check()
	return SubmitChecked
}
