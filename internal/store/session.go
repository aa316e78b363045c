package store

import (
	"context"
	"fmt"

	"github.com/ascendquiz/ascendquiz/ent"
	"github.com/ascendquiz/ascendquiz/ent/quizsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) Save(ctx context.Context, data SessionData) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.QuizSession.Create().
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetDocumentName(data.DocumentName).
		SetFinalScore(data.FinalScore).
		SetMasteryAchieved(data.MasteryAchieved).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetFinishReason(data.FinishReason).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save quiz session: %w", err)
	}

	for _, resp := range data.Responses {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("next sequence: %w", err)
		}
		_, err = tx.ResponseEvent.Create().
			SetSequence(seqNum).
			SetSessionID(data.SessionID).
			SetUserID(data.UserID).
			SetQuestionID(resp.QuestionID).
			SetQuestionText(resp.QuestionText).
			SetTopic(resp.Topic).
			SetTier(resp.Tier).
			SetCorrect(resp.Correct).
			SetSeqInSession(resp.SeqInSession).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save response event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func (r *sessionRepo) History(ctx context.Context, userID int) ([]*SessionRecord, error) {
	return r.query(ctx, userID, 0)
}

func (r *sessionRepo) Recent(ctx context.Context, userID, limit int) ([]*SessionRecord, error) {
	return r.query(ctx, userID, limit)
}

func (r *sessionRepo) query(ctx context.Context, userID, limit int) ([]*SessionRecord, error) {
	q := r.client.QuizSession.Query().
		Where(quizsession.UserID(userID)).
		Order(ent.Desc(quizsession.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	sessions, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]*SessionRecord, len(sessions))
	for i, s := range sessions {
		out[i] = &SessionRecord{
			SessionID:         s.SessionID,
			UserID:            s.UserID,
			DocumentName:      s.DocumentName,
			FinalScore:        s.FinalScore,
			MasteryAchieved:   s.MasteryAchieved,
			QuestionsAnswered: s.QuestionsAnswered,
			FinishReason:      s.FinishReason,
			CreatedAt:         s.CreatedAt,
		}
	}
	return out, nil
}

func (r *sessionRepo) Overall(ctx context.Context, userID int) (*OverallStats, error) {
	sessions, err := r.client.QuizSession.Query().
		Where(quizsession.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	stats := &OverallStats{TotalSessions: len(sessions)}
	if len(sessions) == 0 {
		return stats, nil
	}

	var scoreSum float64
	for _, s := range sessions {
		scoreSum += s.FinalScore
		stats.TotalQuestions += s.QuestionsAnswered
		if s.MasteryAchieved {
			stats.MasteredSessions++
		}
	}
	stats.AverageScore = scoreSum / float64(len(sessions))
	return stats, nil
}
