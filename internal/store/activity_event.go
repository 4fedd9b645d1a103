package store

import (
	"context"
	"fmt"

	"github.com/rnnlab/rnncourse/ent"
	"github.com/rnnlab/rnncourse/ent/activityevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendActivityEvent(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetPoints(data.Points).
		SetDetail(data.Detail)

	if data.ModuleID != nil {
		builder = builder.SetModuleID(*data.ModuleID)
	}
	if data.ExerciseID != nil {
		builder = builder.SetExerciseID(*data.ExerciseID)
	}
	if data.QuizID != nil {
		builder = builder.SetQuizID(*data.QuizID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryActivityEvents(ctx context.Context, opts QueryOpts) ([]ActivityEventRecord, error) {
	query := r.client.ActivityEvent.Query().
		Order(ent.Desc(activityevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(activityevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(activityevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(activityevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(activityevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	records := make([]ActivityEventRecord, len(events))
	for i, e := range events {
		records[i] = ActivityEventRecord{
			Kind:       e.Kind,
			ModuleID:   e.ModuleID,
			ExerciseID: e.ExerciseID,
			QuizID:     e.QuizID,
			Points:     e.Points,
			Detail:     e.Detail,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
