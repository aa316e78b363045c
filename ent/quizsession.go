// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ascendquiz/ascendquiz/ent/quizsession"
)

// QuizSession is the model entity for the QuizSession schema.
type QuizSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned by the session controller
	SessionID string `json:"session_id,omitempty"`
	// Owning user
	UserID int `json:"user_id,omitempty"`
	// Source document the pool was generated from
	DocumentName string `json:"document_name,omitempty"`
	// Weighted mastery score 0-100 at termination
	FinalScore float64 `json:"final_score,omitempty"`
	// Whether the session ended in mastery
	MasteryAchieved bool `json:"mastery_achieved,omitempty"`
	// Total questions answered
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// Why the session ended: high_tier_accuracy, score, exhausted
	FinishReason string `json:"finish_reason,omitempty"`
	// When the session completed
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizsession.FieldMasteryAchieved:
			values[i] = new(sql.NullBool)
		case quizsession.FieldFinalScore:
			values[i] = new(sql.NullFloat64)
		case quizsession.FieldID, quizsession.FieldUserID, quizsession.FieldQuestionsAnswered:
			values[i] = new(sql.NullInt64)
		case quizsession.FieldSessionID, quizsession.FieldDocumentName, quizsession.FieldFinishReason:
			values[i] = new(sql.NullString)
		case quizsession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizSession fields.
func (_m *QuizSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizsession.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case quizsession.FieldDocumentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_name", values[i])
			} else if value.Valid {
				_m.DocumentName = value.String
			}
		case quizsession.FieldFinalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = value.Float64
			}
		case quizsession.FieldMasteryAchieved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_achieved", values[i])
			} else if value.Valid {
				_m.MasteryAchieved = value.Bool
			}
		case quizsession.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case quizsession.FieldFinishReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finish_reason", values[i])
			} else if value.Valid {
				_m.FinishReason = value.String
			}
		case quizsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizSession.
// This includes values selected through modifiers, order, etc.
func (_m *QuizSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizSession.
// Note that you need to call QuizSession.Unwrap() before calling this method if this QuizSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizSession) Update() *QuizSessionUpdateOne {
	return NewQuizSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizSession) Unwrap() *QuizSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizSession) String() string {
	var builder strings.Builder
	builder.WriteString("QuizSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("document_name=")
	builder.WriteString(_m.DocumentName)
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteString(", ")
	builder.WriteString("mastery_achieved=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAchieved))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("finish_reason=")
	builder.WriteString(_m.FinishReason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizSessions is a parsable slice of QuizSession.
type QuizSessions []*QuizSession
