// Code generated by ent, DO NOT EDIT.

package quizsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizsession type in the database.
	Label = "quiz_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDocumentName holds the string denoting the document_name field in the database.
	FieldDocumentName = "document_name"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldMasteryAchieved holds the string denoting the mastery_achieved field in the database.
	FieldMasteryAchieved = "mastery_achieved"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// FieldFinishReason holds the string denoting the finish_reason field in the database.
	FieldFinishReason = "finish_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the quizsession in the database.
	Table = "quiz_sessions"
)

// Columns holds all SQL columns for quizsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldDocumentName,
	FieldFinalScore,
	FieldMasteryAchieved,
	FieldQuestionsAnswered,
	FieldFinishReason,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultDocumentName holds the default value on creation for the "document_name" field.
	DefaultDocumentName string
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
	// DefaultFinishReason holds the default value on creation for the "finish_reason" field.
	DefaultFinishReason string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuizSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDocumentName orders the results by the document_name field.
func ByDocumentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentName, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByMasteryAchieved orders the results by the mastery_achieved field.
func ByMasteryAchieved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAchieved, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}

// ByFinishReason orders the results by the finish_reason field.
func ByFinishReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
