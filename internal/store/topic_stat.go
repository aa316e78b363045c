package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/ascendquiz/ascendquiz/ent"
	"github.com/ascendquiz/ascendquiz/ent/topicstat"
)

// topicStatRepo implements TopicStatRepo using the ent client.
type topicStatRepo struct {
	client *ent.Client
}

func (r *topicStatRepo) Record(ctx context.Context, userID int, topic string, correct bool) error {
	correctDelta := 0
	if correct {
		correctDelta = 1
	}

	existing, err := r.client.TopicStat.Query().
		Where(topicstat.UserID(userID), topicstat.Topic(topic)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query topic stat: %w", err)
		}
		_, err = r.client.TopicStat.Create().
			SetUserID(userID).
			SetTopic(topic).
			SetAttempts(1).
			SetCorrect(correctDelta).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create topic stat: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		AddAttempts(1).
		AddCorrect(correctDelta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update topic stat: %w", err)
	}
	return nil
}

func (r *topicStatRepo) ByUser(ctx context.Context, userID int) ([]*TopicStat, error) {
	stats, err := r.client.TopicStat.Query().
		Where(topicstat.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic stats: %w", err)
	}

	out := make([]*TopicStat, len(stats))
	for i, s := range stats {
		out[i] = entTopicStatToTopicStat(s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Accuracy > out[j].Accuracy })
	return out, nil
}

func (r *topicStatRepo) Weak(ctx context.Context, userID int, threshold float64, minAttempts int) ([]*TopicStat, error) {
	stats, err := r.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var weak []*TopicStat
	for _, s := range stats {
		if s.Attempts >= minAttempts && s.Accuracy < threshold {
			weak = append(weak, s)
		}
	}
	sort.Slice(weak, func(i, j int) bool { return weak[i].Accuracy < weak[j].Accuracy })
	return weak, nil
}

func entTopicStatToTopicStat(s *ent.TopicStat) *TopicStat {
	stat := &TopicStat{
		Topic:    s.Topic,
		Attempts: s.Attempts,
		Correct:  s.Correct,
	}
	if s.Attempts > 0 {
		stat.Accuracy = float64(s.Correct) * 100.0 / float64(s.Attempts)
	}
	return stat
}
