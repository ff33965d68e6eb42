// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulnair/lingua/ent/predicate"
	"github.com/rahulnair/lingua/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevelID sets the "level_id" field.
func (_u *QuizEventUpdate) SetLevelID(v string) *QuizEventUpdate {
	_u.mutation.SetLevelID(v)
	return _u
}

// SetNillableLevelID sets the "level_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableLevelID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetLevelID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *QuizEventUpdate) SetQuestionIndex(v int) *QuizEventUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestionIndex(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *QuizEventUpdate) AddQuestionIndex(v int) *QuizEventUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuizEventUpdate) SetQuestionText(v string) *QuizEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestionText(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetChosenOption sets the "chosen_option" field.
func (_u *QuizEventUpdate) SetChosenOption(v string) *QuizEventUpdate {
	_u.mutation.SetChosenOption(v)
	return _u
}

// SetNillableChosenOption sets the "chosen_option" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableChosenOption(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetChosenOption(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *QuizEventUpdate) SetCorrectOption(v string) *QuizEventUpdate {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrectOption(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizEventUpdate) SetCorrect(v bool) *QuizEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrect(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.LevelID(); ok {
		if err := quizevent.LevelIDValidator(v); err != nil {
			return &ValidationError{Name: "level_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.level_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := quizevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChosenOption(); ok {
		if err := quizevent.ChosenOptionValidator(v); err != nil {
			return &ValidationError{Name: "chosen_option", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.chosen_option": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := quizevent.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LevelID(); ok {
		_spec.SetField(quizevent.FieldLevelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(quizevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(quizevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(quizevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenOption(); ok {
		_spec.SetField(quizevent.FieldChosenOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(quizevent.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetLevelID sets the "level_id" field.
func (_u *QuizEventUpdateOne) SetLevelID(v string) *QuizEventUpdateOne {
	_u.mutation.SetLevelID(v)
	return _u
}

// SetNillableLevelID sets the "level_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableLevelID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetLevelID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *QuizEventUpdateOne) SetQuestionIndex(v int) *QuizEventUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestionIndex(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *QuizEventUpdateOne) AddQuestionIndex(v int) *QuizEventUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuizEventUpdateOne) SetQuestionText(v string) *QuizEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestionText(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetChosenOption sets the "chosen_option" field.
func (_u *QuizEventUpdateOne) SetChosenOption(v string) *QuizEventUpdateOne {
	_u.mutation.SetChosenOption(v)
	return _u
}

// SetNillableChosenOption sets the "chosen_option" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableChosenOption(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetChosenOption(*v)
	}
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *QuizEventUpdateOne) SetCorrectOption(v string) *QuizEventUpdateOne {
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrectOption(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizEventUpdateOne) SetCorrect(v bool) *QuizEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrect(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.LevelID(); ok {
		if err := quizevent.LevelIDValidator(v); err != nil {
			return &ValidationError{Name: "level_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.level_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := quizevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChosenOption(); ok {
		if err := quizevent.ChosenOptionValidator(v); err != nil {
			return &ValidationError{Name: "chosen_option", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.chosen_option": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectOption(); ok {
		if err := quizevent.CorrectOptionValidator(v); err != nil {
			return &ValidationError{Name: "correct_option", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.correct_option": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LevelID(); ok {
		_spec.SetField(quizevent.FieldLevelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(quizevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(quizevent.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(quizevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChosenOption(); ok {
		_spec.SetField(quizevent.FieldChosenOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(quizevent.FieldCorrectOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
