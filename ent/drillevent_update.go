// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulnair/lingua/ent/drillevent"
	"github.com/rahulnair/lingua/ent/predicate"
)

// DrillEventUpdate is the builder for updating DrillEvent entities.
type DrillEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdate) Where(ps ...predicate.DrillEvent) *DrillEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLevelID sets the "level_id" field.
func (_u *DrillEventUpdate) SetLevelID(v string) *DrillEventUpdate {
	_u.mutation.SetLevelID(v)
	return _u
}

// SetNillableLevelID sets the "level_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableLevelID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetLevelID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *DrillEventUpdate) SetCardID(v string) *DrillEventUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableCardID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *DrillEventUpdate) SetMode(v string) *DrillEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableMode(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTargetText sets the "target_text" field.
func (_u *DrillEventUpdate) SetTargetText(v string) *DrillEventUpdate {
	_u.mutation.SetTargetText(v)
	return _u
}

// SetNillableTargetText sets the "target_text" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableTargetText(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetTargetText(*v)
	}
	return _u
}

// SetAttemptText sets the "attempt_text" field.
func (_u *DrillEventUpdate) SetAttemptText(v string) *DrillEventUpdate {
	_u.mutation.SetAttemptText(v)
	return _u
}

// SetNillableAttemptText sets the "attempt_text" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableAttemptText(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetAttemptText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DrillEventUpdate) SetCorrect(v bool) *DrillEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableCorrect(v *bool) *DrillEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetExactWords sets the "exact_words" field.
func (_u *DrillEventUpdate) SetExactWords(v int) *DrillEventUpdate {
	_u.mutation.ResetExactWords()
	_u.mutation.SetExactWords(v)
	return _u
}

// SetNillableExactWords sets the "exact_words" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableExactWords(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetExactWords(*v)
	}
	return _u
}

// AddExactWords adds value to the "exact_words" field.
func (_u *DrillEventUpdate) AddExactWords(v int) *DrillEventUpdate {
	_u.mutation.AddExactWords(v)
	return _u
}

// SetCloseWords sets the "close_words" field.
func (_u *DrillEventUpdate) SetCloseWords(v int) *DrillEventUpdate {
	_u.mutation.ResetCloseWords()
	_u.mutation.SetCloseWords(v)
	return _u
}

// SetNillableCloseWords sets the "close_words" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableCloseWords(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetCloseWords(*v)
	}
	return _u
}

// AddCloseWords adds value to the "close_words" field.
func (_u *DrillEventUpdate) AddCloseWords(v int) *DrillEventUpdate {
	_u.mutation.AddCloseWords(v)
	return _u
}

// SetMissedWords sets the "missed_words" field.
func (_u *DrillEventUpdate) SetMissedWords(v int) *DrillEventUpdate {
	_u.mutation.ResetMissedWords()
	_u.mutation.SetMissedWords(v)
	return _u
}

// SetNillableMissedWords sets the "missed_words" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableMissedWords(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetMissedWords(*v)
	}
	return _u
}

// AddMissedWords adds value to the "missed_words" field.
func (_u *DrillEventUpdate) AddMissedWords(v int) *DrillEventUpdate {
	_u.mutation.AddMissedWords(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *DrillEventUpdate) SetTimeMs(v int) *DrillEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableTimeMs(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *DrillEventUpdate) AddTimeMs(v int) *DrillEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdate) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdate) check() error {
	if v, ok := _u.mutation.LevelID(); ok {
		if err := drillevent.LevelIDValidator(v); err != nil {
			return &ValidationError{Name: "level_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.level_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := drillevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := drillevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetText(); ok {
		if err := drillevent.TargetTextValidator(v); err != nil {
			return &ValidationError{Name: "target_text", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.target_text": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LevelID(); ok {
		_spec.SetField(drillevent.FieldLevelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(drillevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(drillevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetText(); ok {
		_spec.SetField(drillevent.FieldTargetText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptText(); ok {
		_spec.SetField(drillevent.FieldAttemptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExactWords(); ok {
		_spec.SetField(drillevent.FieldExactWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExactWords(); ok {
		_spec.AddField(drillevent.FieldExactWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CloseWords(); ok {
		_spec.SetField(drillevent.FieldCloseWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCloseWords(); ok {
		_spec.AddField(drillevent.FieldCloseWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MissedWords(); ok {
		_spec.SetField(drillevent.FieldMissedWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMissedWords(); ok {
		_spec.AddField(drillevent.FieldMissedWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(drillevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(drillevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillEventUpdateOne is the builder for updating a single DrillEvent entity.
type DrillEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillEventMutation
}

// SetLevelID sets the "level_id" field.
func (_u *DrillEventUpdateOne) SetLevelID(v string) *DrillEventUpdateOne {
	_u.mutation.SetLevelID(v)
	return _u
}

// SetNillableLevelID sets the "level_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableLevelID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetLevelID(*v)
	}
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *DrillEventUpdateOne) SetCardID(v string) *DrillEventUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableCardID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *DrillEventUpdateOne) SetMode(v string) *DrillEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableMode(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTargetText sets the "target_text" field.
func (_u *DrillEventUpdateOne) SetTargetText(v string) *DrillEventUpdateOne {
	_u.mutation.SetTargetText(v)
	return _u
}

// SetNillableTargetText sets the "target_text" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableTargetText(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetTargetText(*v)
	}
	return _u
}

// SetAttemptText sets the "attempt_text" field.
func (_u *DrillEventUpdateOne) SetAttemptText(v string) *DrillEventUpdateOne {
	_u.mutation.SetAttemptText(v)
	return _u
}

// SetNillableAttemptText sets the "attempt_text" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableAttemptText(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetAttemptText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DrillEventUpdateOne) SetCorrect(v bool) *DrillEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableCorrect(v *bool) *DrillEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetExactWords sets the "exact_words" field.
func (_u *DrillEventUpdateOne) SetExactWords(v int) *DrillEventUpdateOne {
	_u.mutation.ResetExactWords()
	_u.mutation.SetExactWords(v)
	return _u
}

// SetNillableExactWords sets the "exact_words" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableExactWords(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetExactWords(*v)
	}
	return _u
}

// AddExactWords adds value to the "exact_words" field.
func (_u *DrillEventUpdateOne) AddExactWords(v int) *DrillEventUpdateOne {
	_u.mutation.AddExactWords(v)
	return _u
}

// SetCloseWords sets the "close_words" field.
func (_u *DrillEventUpdateOne) SetCloseWords(v int) *DrillEventUpdateOne {
	_u.mutation.ResetCloseWords()
	_u.mutation.SetCloseWords(v)
	return _u
}

// SetNillableCloseWords sets the "close_words" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableCloseWords(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetCloseWords(*v)
	}
	return _u
}

// AddCloseWords adds value to the "close_words" field.
func (_u *DrillEventUpdateOne) AddCloseWords(v int) *DrillEventUpdateOne {
	_u.mutation.AddCloseWords(v)
	return _u
}

// SetMissedWords sets the "missed_words" field.
func (_u *DrillEventUpdateOne) SetMissedWords(v int) *DrillEventUpdateOne {
	_u.mutation.ResetMissedWords()
	_u.mutation.SetMissedWords(v)
	return _u
}

// SetNillableMissedWords sets the "missed_words" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableMissedWords(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetMissedWords(*v)
	}
	return _u
}

// AddMissedWords adds value to the "missed_words" field.
func (_u *DrillEventUpdateOne) AddMissedWords(v int) *DrillEventUpdateOne {
	_u.mutation.AddMissedWords(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *DrillEventUpdateOne) SetTimeMs(v int) *DrillEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableTimeMs(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *DrillEventUpdateOne) AddTimeMs(v int) *DrillEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdateOne) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdateOne) Where(ps ...predicate.DrillEvent) *DrillEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillEventUpdateOne) Select(field string, fields ...string) *DrillEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillEvent entity.
func (_u *DrillEventUpdateOne) Save(ctx context.Context) (*DrillEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdateOne) SaveX(ctx context.Context) *DrillEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdateOne) check() error {
	if v, ok := _u.mutation.LevelID(); ok {
		if err := drillevent.LevelIDValidator(v); err != nil {
			return &ValidationError{Name: "level_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.level_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CardID(); ok {
		if err := drillevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := drillevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetText(); ok {
		if err := drillevent.TargetTextValidator(v); err != nil {
			return &ValidationError{Name: "target_text", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.target_text": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillevent.FieldID)
		for _, f := range fields {
			if !drillevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillevent.FieldID {
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
		_spec.SetField(drillevent.FieldLevelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(drillevent.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(drillevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetText(); ok {
		_spec.SetField(drillevent.FieldTargetText, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptText(); ok {
		_spec.SetField(drillevent.FieldAttemptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExactWords(); ok {
		_spec.SetField(drillevent.FieldExactWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExactWords(); ok {
		_spec.AddField(drillevent.FieldExactWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CloseWords(); ok {
		_spec.SetField(drillevent.FieldCloseWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCloseWords(); ok {
		_spec.AddField(drillevent.FieldCloseWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MissedWords(); ok {
		_spec.SetField(drillevent.FieldMissedWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMissedWords(); ok {
		_spec.AddField(drillevent.FieldMissedWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(drillevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(drillevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &DrillEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
