package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUsernameTaken is returned by UserRepo.Create for duplicate usernames.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned when a username lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
)

// User is a learner account.
type User struct {
	ID        int
	Username  string
	CreatedAt time.Time
}

// UserRepo manages learner accounts.
type UserRepo interface {
	// Create registers a new user. Returns ErrUsernameTaken if the
	// username exists.
	Create(ctx context.Context, username string) (*User, error)

	// GetByUsername looks up a user. Returns ErrUserNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*User, error)
}

// ResponseData is one answered question within a session being saved.
type ResponseData struct {
	QuestionID   string
	QuestionText string
	Topic        string
	Tier         int
	Correct      bool
	SeqInSession int
}

// SessionData is a completed quiz session ready for persistence.
type SessionData struct {
	SessionID         string
	UserID            int
	DocumentName      string
	FinalScore        float64
	MasteryAchieved   bool
	QuestionsAnswered int
	FinishReason      string
	Responses         []ResponseData
}

// SessionRecord is a persisted quiz session as read back for history.
type SessionRecord struct {
	SessionID         string
	UserID            int
	DocumentName      string
	FinalScore        float64
	MasteryAchieved   bool
	QuestionsAnswered int
	FinishReason      string
	CreatedAt         time.Time
}

// OverallStats aggregates a user's sessions for the dashboard.
type OverallStats struct {
	TotalSessions    int
	MasteredSessions int
	AverageScore     float64
	TotalQuestions   int
}

// SessionRepo persists completed quiz sessions and their responses.
type SessionRepo interface {
	// Save stores a completed session and all its responses.
	Save(ctx context.Context, data SessionData) error

	// History returns the user's sessions, most recent first.
	History(ctx context.Context, userID int) ([]*SessionRecord, error)

	// Recent returns the user's most recent sessions, capped at limit.
	Recent(ctx context.Context, userID, limit int) ([]*SessionRecord, error)

	// Overall aggregates all of the user's sessions.
	Overall(ctx context.Context, userID int) (*OverallStats, error)
}

// TopicStat is a user's cumulative performance on one topic.
type TopicStat struct {
	Topic    string
	Attempts int
	Correct  int
	Accuracy float64 // percentage 0-100
}

// TopicStatRepo accumulates per-topic answer counts across sessions.
type TopicStatRepo interface {
	// Record upserts one answer into the user's stats for the topic.
	Record(ctx context.Context, userID int, topic string, correct bool) error

	// ByUser returns all of the user's topic stats, best accuracy first.
	ByUser(ctx context.Context, userID int) ([]*TopicStat, error)

	// Weak returns topics below the accuracy threshold (percentage)
	// with at least minAttempts answers, weakest first.
	Weak(ctx context.Context, userID int, threshold float64, minAttempts int) ([]*TopicStat, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a persisted LLM request event read back for inspection.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns recent LLM events, newest first.
	QueryLLMRequests(ctx context.Context, limit int) ([]*LLMEventRecord, error)

	// GetLLMRequest returns one LLM event by id, or nil if absent.
	GetLLMRequest(ctx context.Context, id int) (*LLMEventRecord, error)
}
