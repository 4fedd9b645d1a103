// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rnnlab/rnncourse/ent/activityevent"
	"github.com/rnnlab/rnncourse/ent/predicate"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ActivityEventUpdate) SetKind(v string) *ActivityEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableKind(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ActivityEventUpdate) SetModuleID(v int) *ActivityEventUpdate {
	_u.mutation.ResetModuleID()
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableModuleID(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// AddModuleID adds value to the "module_id" field.
func (_u *ActivityEventUpdate) AddModuleID(v int) *ActivityEventUpdate {
	_u.mutation.AddModuleID(v)
	return _u
}

// ClearModuleID clears the value of the "module_id" field.
func (_u *ActivityEventUpdate) ClearModuleID() *ActivityEventUpdate {
	_u.mutation.ClearModuleID()
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ActivityEventUpdate) SetExerciseID(v string) *ActivityEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableExerciseID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// ClearExerciseID clears the value of the "exercise_id" field.
func (_u *ActivityEventUpdate) ClearExerciseID() *ActivityEventUpdate {
	_u.mutation.ClearExerciseID()
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *ActivityEventUpdate) SetQuizID(v string) *ActivityEventUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableQuizID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// ClearQuizID clears the value of the "quiz_id" field.
func (_u *ActivityEventUpdate) ClearQuizID() *ActivityEventUpdate {
	_u.mutation.ClearQuizID()
	return _u
}

// SetPoints sets the "points" field.
func (_u *ActivityEventUpdate) SetPoints(v int) *ActivityEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillablePoints(v *int) *ActivityEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ActivityEventUpdate) AddPoints(v int) *ActivityEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ActivityEventUpdate) SetDetail(v string) *ActivityEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableDetail(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *ActivityEventUpdate) ClearDetail() *ActivityEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(activityevent.FieldModuleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleID(); ok {
		_spec.AddField(activityevent.FieldModuleID, field.TypeInt, value)
	}
	if _u.mutation.ModuleIDCleared() {
		_spec.ClearField(activityevent.FieldModuleID, field.TypeInt)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(activityevent.FieldExerciseID, field.TypeString, value)
	}
	if _u.mutation.ExerciseIDCleared() {
		_spec.ClearField(activityevent.FieldExerciseID, field.TypeString)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(activityevent.FieldQuizID, field.TypeString, value)
	}
	if _u.mutation.QuizIDCleared() {
		_spec.ClearField(activityevent.FieldQuizID, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(activityevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(activityevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(activityevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(activityevent.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetKind sets the "kind" field.
func (_u *ActivityEventUpdateOne) SetKind(v string) *ActivityEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableKind(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ActivityEventUpdateOne) SetModuleID(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetModuleID()
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableModuleID(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// AddModuleID adds value to the "module_id" field.
func (_u *ActivityEventUpdateOne) AddModuleID(v int) *ActivityEventUpdateOne {
	_u.mutation.AddModuleID(v)
	return _u
}

// ClearModuleID clears the value of the "module_id" field.
func (_u *ActivityEventUpdateOne) ClearModuleID() *ActivityEventUpdateOne {
	_u.mutation.ClearModuleID()
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ActivityEventUpdateOne) SetExerciseID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableExerciseID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// ClearExerciseID clears the value of the "exercise_id" field.
func (_u *ActivityEventUpdateOne) ClearExerciseID() *ActivityEventUpdateOne {
	_u.mutation.ClearExerciseID()
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *ActivityEventUpdateOne) SetQuizID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableQuizID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// ClearQuizID clears the value of the "quiz_id" field.
func (_u *ActivityEventUpdateOne) ClearQuizID() *ActivityEventUpdateOne {
	_u.mutation.ClearQuizID()
	return _u
}

// SetPoints sets the "points" field.
func (_u *ActivityEventUpdateOne) SetPoints(v int) *ActivityEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillablePoints(v *int) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ActivityEventUpdateOne) AddPoints(v int) *ActivityEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *ActivityEventUpdateOne) SetDetail(v string) *ActivityEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableDetail(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *ActivityEventUpdateOne) ClearDetail() *ActivityEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := activityevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(activityevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(activityevent.FieldModuleID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleID(); ok {
		_spec.AddField(activityevent.FieldModuleID, field.TypeInt, value)
	}
	if _u.mutation.ModuleIDCleared() {
		_spec.ClearField(activityevent.FieldModuleID, field.TypeInt)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(activityevent.FieldExerciseID, field.TypeString, value)
	}
	if _u.mutation.ExerciseIDCleared() {
		_spec.ClearField(activityevent.FieldExerciseID, field.TypeString)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(activityevent.FieldQuizID, field.TypeString, value)
	}
	if _u.mutation.QuizIDCleared() {
		_spec.ClearField(activityevent.FieldQuizID, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(activityevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(activityevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(activityevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(activityevent.FieldDetail, field.TypeString)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
