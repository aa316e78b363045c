// Code generated by ent, DO NOT EDIT.

package quizsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ascendquiz/ascendquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldUserID, v))
}

// DocumentName applies equality check predicate on the "document_name" field. It's identical to DocumentNameEQ.
func DocumentName(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldDocumentName, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldFinalScore, v))
}

// MasteryAchieved applies equality check predicate on the "mastery_achieved" field. It's identical to MasteryAchievedEQ.
func MasteryAchieved(v bool) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldMasteryAchieved, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// FinishReason applies equality check predicate on the "finish_reason" field. It's identical to FinishReasonEQ.
func FinishReason(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldFinishReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldUserID, v))
}

// DocumentNameEQ applies the EQ predicate on the "document_name" field.
func DocumentNameEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldDocumentName, v))
}

// DocumentNameNEQ applies the NEQ predicate on the "document_name" field.
func DocumentNameNEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldDocumentName, v))
}

// DocumentNameIn applies the In predicate on the "document_name" field.
func DocumentNameIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldDocumentName, vs...))
}

// DocumentNameNotIn applies the NotIn predicate on the "document_name" field.
func DocumentNameNotIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldDocumentName, vs...))
}

// DocumentNameGT applies the GT predicate on the "document_name" field.
func DocumentNameGT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldDocumentName, v))
}

// DocumentNameGTE applies the GTE predicate on the "document_name" field.
func DocumentNameGTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldDocumentName, v))
}

// DocumentNameLT applies the LT predicate on the "document_name" field.
func DocumentNameLT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldDocumentName, v))
}

// DocumentNameLTE applies the LTE predicate on the "document_name" field.
func DocumentNameLTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldDocumentName, v))
}

// DocumentNameContains applies the Contains predicate on the "document_name" field.
func DocumentNameContains(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContains(FieldDocumentName, v))
}

// DocumentNameHasPrefix applies the HasPrefix predicate on the "document_name" field.
func DocumentNameHasPrefix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasPrefix(FieldDocumentName, v))
}

// DocumentNameHasSuffix applies the HasSuffix predicate on the "document_name" field.
func DocumentNameHasSuffix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasSuffix(FieldDocumentName, v))
}

// DocumentNameEqualFold applies the EqualFold predicate on the "document_name" field.
func DocumentNameEqualFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEqualFold(FieldDocumentName, v))
}

// DocumentNameContainsFold applies the ContainsFold predicate on the "document_name" field.
func DocumentNameContainsFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContainsFold(FieldDocumentName, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v float64) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldFinalScore, v))
}

// MasteryAchievedEQ applies the EQ predicate on the "mastery_achieved" field.
func MasteryAchievedEQ(v bool) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldMasteryAchieved, v))
}

// MasteryAchievedNEQ applies the NEQ predicate on the "mastery_achieved" field.
func MasteryAchievedNEQ(v bool) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldMasteryAchieved, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// FinishReasonEQ applies the EQ predicate on the "finish_reason" field.
func FinishReasonEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldFinishReason, v))
}

// FinishReasonNEQ applies the NEQ predicate on the "finish_reason" field.
func FinishReasonNEQ(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldFinishReason, v))
}

// FinishReasonIn applies the In predicate on the "finish_reason" field.
func FinishReasonIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldFinishReason, vs...))
}

// FinishReasonNotIn applies the NotIn predicate on the "finish_reason" field.
func FinishReasonNotIn(vs ...string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldFinishReason, vs...))
}

// FinishReasonGT applies the GT predicate on the "finish_reason" field.
func FinishReasonGT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldFinishReason, v))
}

// FinishReasonGTE applies the GTE predicate on the "finish_reason" field.
func FinishReasonGTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldFinishReason, v))
}

// FinishReasonLT applies the LT predicate on the "finish_reason" field.
func FinishReasonLT(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldFinishReason, v))
}

// FinishReasonLTE applies the LTE predicate on the "finish_reason" field.
func FinishReasonLTE(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldFinishReason, v))
}

// FinishReasonContains applies the Contains predicate on the "finish_reason" field.
func FinishReasonContains(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContains(FieldFinishReason, v))
}

// FinishReasonHasPrefix applies the HasPrefix predicate on the "finish_reason" field.
func FinishReasonHasPrefix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasPrefix(FieldFinishReason, v))
}

// FinishReasonHasSuffix applies the HasSuffix predicate on the "finish_reason" field.
func FinishReasonHasSuffix(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldHasSuffix(FieldFinishReason, v))
}

// FinishReasonEqualFold applies the EqualFold predicate on the "finish_reason" field.
func FinishReasonEqualFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEqualFold(FieldFinishReason, v))
}

// FinishReasonContainsFold applies the ContainsFold predicate on the "finish_reason" field.
func FinishReasonContainsFold(v string) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldContainsFold(FieldFinishReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuizSession {
	return predicate.QuizSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizSession) predicate.QuizSession {
	return predicate.QuizSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizSession) predicate.QuizSession {
	return predicate.QuizSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizSession) predicate.QuizSession {
	return predicate.QuizSession(sql.NotPredicates(p))
}
