// Package reflections stores the learner's free-text answers to the
// self-assessment prompts scattered through the course material.
package reflections

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/rnnlab/rnncourse/internal/store"
)

// Response is one saved reflection. Saving again under the same prompt
// replaces the text and refreshes the timestamp.
type Response struct {
	PromptID string    `json:"prompt_id"`
	Text     string    `json:"text"`
	SavedAt  time.Time `json:"saved_at"`
}

// Service owns the reflection blob.
type Service struct {
	responses map[string]Response
	stateRepo store.StateRepo
}

// NewService loads saved reflections. Missing or malformed state falls
// back to an empty record.
func NewService(ctx context.Context, stateRepo store.StateRepo) *Service {
	s := &Service{
		responses: make(map[string]Response),
		stateRepo: stateRepo,
	}

	raw, err := stateRepo.Load(ctx, store.KeyReflections)
	if err != nil {
		return s
	}
	var m map[string]Response
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return s
	}
	s.responses = m
	return s
}

// Save records a response for a prompt, overwriting any earlier one.
// Empty prompt ids are rejected; empty text is allowed (clearing a
// reflection without deleting its timestamp trail).
func (s *Service) Save(ctx context.Context, promptID, text string, now time.Time) error {
	if strings.TrimSpace(promptID) == "" {
		return errors.New("reflections: empty prompt id")
	}
	s.responses[promptID] = Response{
		PromptID: promptID,
		Text:     text,
		SavedAt:  now,
	}
	return s.save(ctx)
}

// Get returns the saved response for a prompt, or false if none.
func (s *Service) Get(promptID string) (Response, bool) {
	r, ok := s.responses[promptID]
	return r, ok
}

// All returns every saved response ordered by prompt id.
func (s *Service) All() []Response {
	out := make([]Response, 0, len(s.responses))
	for _, r := range s.responses {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PromptID < out[j].PromptID
	})
	return out
}

// Delete removes a single response. Deleting an absent prompt is a
// no-op.
func (s *Service) Delete(ctx context.Context, promptID string) error {
	if _, ok := s.responses[promptID]; !ok {
		return nil
	}
	delete(s.responses, promptID)
	return s.save(ctx)
}

// Reset discards all reflections, both in memory and in the store.
func (s *Service) Reset(ctx context.Context) error {
	s.responses = make(map[string]Response)
	if err := s.stateRepo.Delete(ctx, store.KeyReflections); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) save(ctx context.Context) error {
	raw, err := json.Marshal(s.responses)
	if err != nil {
		return err
	}
	return s.stateRepo.Save(ctx, store.KeyReflections, raw)
}
