// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ascendquiz/ascendquiz/ent/responseevent"
)

// ResponseEvent is the model entity for the ResponseEvent schema.
type ResponseEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing, assigned at append time
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the owning quiz session
	SessionID string `json:"session_id,omitempty"`
	// Owning user
	UserID int `json:"user_id,omitempty"`
	// Pool question id
	QuestionID string `json:"question_id,omitempty"`
	// Question prompt as shown to the learner
	QuestionText string `json:"question_text,omitempty"`
	// Topic tag of the question
	Topic string `json:"topic,omitempty"`
	// Difficulty tier 1-8 of the question
	Tier int `json:"tier,omitempty"`
	// Whether the learner answered correctly
	Correct bool `json:"correct,omitempty"`
	// 1-based position within the session
	SeqInSession int `json:"seq_in_session,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResponseEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case responseevent.FieldID, responseevent.FieldSequence, responseevent.FieldUserID, responseevent.FieldTier, responseevent.FieldSeqInSession:
			values[i] = new(sql.NullInt64)
		case responseevent.FieldSessionID, responseevent.FieldQuestionID, responseevent.FieldQuestionText, responseevent.FieldTopic:
			values[i] = new(sql.NullString)
		case responseevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResponseEvent fields.
func (_m *ResponseEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case responseevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case responseevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case responseevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case responseevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case responseevent.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case responseevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case responseevent.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case responseevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case responseevent.FieldTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = int(value.Int64)
			}
		case responseevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case responseevent.FieldSeqInSession:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq_in_session", values[i])
			} else if value.Valid {
				_m.SeqInSession = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResponseEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResponseEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResponseEvent.
// Note that you need to call ResponseEvent.Unwrap() before calling this method if this ResponseEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResponseEvent) Update() *ResponseEventUpdateOne {
	return NewResponseEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResponseEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResponseEvent) Unwrap() *ResponseEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResponseEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResponseEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResponseEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("seq_in_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeqInSession))
	builder.WriteByte(')')
	return builder.String()
}

// ResponseEvents is a parsable slice of ResponseEvent.
type ResponseEvents []*ResponseEvent
