package store

import (
	"context"
	"fmt"

	"github.com/ascendquiz/ascendquiz/ent"
	"github.com/ascendquiz/ascendquiz/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMRequests(ctx context.Context, limit int) ([]*LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	records := make([]*LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = entLLMEventToRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM request event %d: %w", id, err)
	}
	return entLLMEventToRecord(e), nil
}

func entLLMEventToRecord(e *ent.LLMRequestEvent) *LLMEventRecord {
	return &LLMEventRecord{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
