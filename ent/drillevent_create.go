// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rahulnair/lingua/ent/drillevent"
)

// DrillEventCreate is the builder for creating a DrillEvent entity.
type DrillEventCreate struct {
	config
	mutation *DrillEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DrillEventCreate) SetSequence(v int64) *DrillEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DrillEventCreate) SetTimestamp(v time.Time) *DrillEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableTimestamp(v *time.Time) *DrillEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLevelID sets the "level_id" field.
func (_c *DrillEventCreate) SetLevelID(v string) *DrillEventCreate {
	_c.mutation.SetLevelID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *DrillEventCreate) SetCardID(v string) *DrillEventCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *DrillEventCreate) SetMode(v string) *DrillEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetTargetText sets the "target_text" field.
func (_c *DrillEventCreate) SetTargetText(v string) *DrillEventCreate {
	_c.mutation.SetTargetText(v)
	return _c
}

// SetAttemptText sets the "attempt_text" field.
func (_c *DrillEventCreate) SetAttemptText(v string) *DrillEventCreate {
	_c.mutation.SetAttemptText(v)
	return _c
}

// SetNillableAttemptText sets the "attempt_text" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableAttemptText(v *string) *DrillEventCreate {
	if v != nil {
		_c.SetAttemptText(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *DrillEventCreate) SetCorrect(v bool) *DrillEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetExactWords sets the "exact_words" field.
func (_c *DrillEventCreate) SetExactWords(v int) *DrillEventCreate {
	_c.mutation.SetExactWords(v)
	return _c
}

// SetNillableExactWords sets the "exact_words" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableExactWords(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetExactWords(*v)
	}
	return _c
}

// SetCloseWords sets the "close_words" field.
func (_c *DrillEventCreate) SetCloseWords(v int) *DrillEventCreate {
	_c.mutation.SetCloseWords(v)
	return _c
}

// SetNillableCloseWords sets the "close_words" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableCloseWords(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetCloseWords(*v)
	}
	return _c
}

// SetMissedWords sets the "missed_words" field.
func (_c *DrillEventCreate) SetMissedWords(v int) *DrillEventCreate {
	_c.mutation.SetMissedWords(v)
	return _c
}

// SetNillableMissedWords sets the "missed_words" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableMissedWords(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetMissedWords(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *DrillEventCreate) SetTimeMs(v int) *DrillEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *DrillEventCreate) SetNillableTimeMs(v *int) *DrillEventCreate {
	if v != nil {
		_c.SetTimeMs(*v)
	}
	return _c
}

// Mutation returns the DrillEventMutation object of the builder.
func (_c *DrillEventCreate) Mutation() *DrillEventMutation {
	return _c.mutation
}

// Save creates the DrillEvent in the database.
func (_c *DrillEventCreate) Save(ctx context.Context) (*DrillEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillEventCreate) SaveX(ctx context.Context) *DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := drillevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AttemptText(); !ok {
		v := drillevent.DefaultAttemptText
		_c.mutation.SetAttemptText(v)
	}
	if _, ok := _c.mutation.ExactWords(); !ok {
		v := drillevent.DefaultExactWords
		_c.mutation.SetExactWords(v)
	}
	if _, ok := _c.mutation.CloseWords(); !ok {
		v := drillevent.DefaultCloseWords
		_c.mutation.SetCloseWords(v)
	}
	if _, ok := _c.mutation.MissedWords(); !ok {
		v := drillevent.DefaultMissedWords
		_c.mutation.SetMissedWords(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := drillevent.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DrillEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DrillEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LevelID(); !ok {
		return &ValidationError{Name: "level_id", err: errors.New(`ent: missing required field "DrillEvent.level_id"`)}
	}
	if v, ok := _c.mutation.LevelID(); ok {
		if err := drillevent.LevelIDValidator(v); err != nil {
			return &ValidationError{Name: "level_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.level_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "DrillEvent.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := drillevent.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "DrillEvent.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := drillevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetText(); !ok {
		return &ValidationError{Name: "target_text", err: errors.New(`ent: missing required field "DrillEvent.target_text"`)}
	}
	if v, ok := _c.mutation.TargetText(); ok {
		if err := drillevent.TargetTextValidator(v); err != nil {
			return &ValidationError{Name: "target_text", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.target_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptText(); !ok {
		return &ValidationError{Name: "attempt_text", err: errors.New(`ent: missing required field "DrillEvent.attempt_text"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "DrillEvent.correct"`)}
	}
	if _, ok := _c.mutation.ExactWords(); !ok {
		return &ValidationError{Name: "exact_words", err: errors.New(`ent: missing required field "DrillEvent.exact_words"`)}
	}
	if _, ok := _c.mutation.CloseWords(); !ok {
		return &ValidationError{Name: "close_words", err: errors.New(`ent: missing required field "DrillEvent.close_words"`)}
	}
	if _, ok := _c.mutation.MissedWords(); !ok {
		return &ValidationError{Name: "missed_words", err: errors.New(`ent: missing required field "DrillEvent.missed_words"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "DrillEvent.time_ms"`)}
	}
	return nil
}

func (_c *DrillEventCreate) sqlSave(ctx context.Context) (*DrillEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrillEventCreate) createSpec() (*DrillEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DrillEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drillevent.Table, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(drillevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(drillevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LevelID(); ok {
		_spec.SetField(drillevent.FieldLevelID, field.TypeString, value)
		_node.LevelID = value
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(drillevent.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(drillevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.TargetText(); ok {
		_spec.SetField(drillevent.FieldTargetText, field.TypeString, value)
		_node.TargetText = value
	}
	if value, ok := _c.mutation.AttemptText(); ok {
		_spec.SetField(drillevent.FieldAttemptText, field.TypeString, value)
		_node.AttemptText = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ExactWords(); ok {
		_spec.SetField(drillevent.FieldExactWords, field.TypeInt, value)
		_node.ExactWords = value
	}
	if value, ok := _c.mutation.CloseWords(); ok {
		_spec.SetField(drillevent.FieldCloseWords, field.TypeInt, value)
		_node.CloseWords = value
	}
	if value, ok := _c.mutation.MissedWords(); ok {
		_spec.SetField(drillevent.FieldMissedWords, field.TypeInt, value)
		_node.MissedWords = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(drillevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// DrillEventCreateBulk is the builder for creating many DrillEvent entities in bulk.
type DrillEventCreateBulk struct {
	config
	err      error
	builders []*DrillEventCreate
}

// Save creates the DrillEvent entities in the database.
func (_c *DrillEventCreateBulk) Save(ctx context.Context) ([]*DrillEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DrillEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DrillEventCreateBulk) SaveX(ctx context.Context) []*DrillEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
