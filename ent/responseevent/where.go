// Code generated by ent, DO NOT EDIT.

package responseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ascendquiz/ascendquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionText, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTopic, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTier, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldCorrect, v))
}

// SeqInSession applies equality check predicate on the "seq_in_session" field. It's identical to SeqInSessionEQ.
func SeqInSession(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSeqInSession, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldQuestionText, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldContainsFold(FieldTopic, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldTier, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldCorrect, v))
}

// SeqInSessionEQ applies the EQ predicate on the "seq_in_session" field.
func SeqInSessionEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldEQ(FieldSeqInSession, v))
}

// SeqInSessionNEQ applies the NEQ predicate on the "seq_in_session" field.
func SeqInSessionNEQ(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNEQ(FieldSeqInSession, v))
}

// SeqInSessionIn applies the In predicate on the "seq_in_session" field.
func SeqInSessionIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldIn(FieldSeqInSession, vs...))
}

// SeqInSessionNotIn applies the NotIn predicate on the "seq_in_session" field.
func SeqInSessionNotIn(vs ...int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldNotIn(FieldSeqInSession, vs...))
}

// SeqInSessionGT applies the GT predicate on the "seq_in_session" field.
func SeqInSessionGT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGT(FieldSeqInSession, v))
}

// SeqInSessionGTE applies the GTE predicate on the "seq_in_session" field.
func SeqInSessionGTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldGTE(FieldSeqInSession, v))
}

// SeqInSessionLT applies the LT predicate on the "seq_in_session" field.
func SeqInSessionLT(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLT(FieldSeqInSession, v))
}

// SeqInSessionLTE applies the LTE predicate on the "seq_in_session" field.
func SeqInSessionLTE(v int) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.FieldLTE(FieldSeqInSession, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResponseEvent) predicate.ResponseEvent {
	return predicate.ResponseEvent(sql.NotPredicates(p))
}
