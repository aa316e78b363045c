// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ascendquiz/ascendquiz/ent/llmrequestevent"
	"github.com/ascendquiz/ascendquiz/ent/quizsession"
	"github.com/ascendquiz/ascendquiz/ent/responseevent"
	"github.com/ascendquiz/ascendquiz/ent/schema"
	"github.com/ascendquiz/ascendquiz/ent/topicstat"
	"github.com/ascendquiz/ascendquiz/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizsessionFields := schema.QuizSession{}.Fields()
	_ = quizsessionFields
	// quizsessionDescSessionID is the schema descriptor for session_id field.
	quizsessionDescSessionID := quizsessionFields[0].Descriptor()
	// quizsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsession.SessionIDValidator = quizsessionDescSessionID.Validators[0].(func(string) error)
	// quizsessionDescDocumentName is the schema descriptor for document_name field.
	quizsessionDescDocumentName := quizsessionFields[2].Descriptor()
	// quizsession.DefaultDocumentName holds the default value on creation for the document_name field.
	quizsession.DefaultDocumentName = quizsessionDescDocumentName.Default.(string)
	// quizsessionDescQuestionsAnswered is the schema descriptor for questions_answered field.
	quizsessionDescQuestionsAnswered := quizsessionFields[5].Descriptor()
	// quizsession.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	quizsession.DefaultQuestionsAnswered = quizsessionDescQuestionsAnswered.Default.(int)
	// quizsessionDescFinishReason is the schema descriptor for finish_reason field.
	quizsessionDescFinishReason := quizsessionFields[6].Descriptor()
	// quizsession.DefaultFinishReason holds the default value on creation for the finish_reason field.
	quizsession.DefaultFinishReason = quizsessionDescFinishReason.Default.(string)
	// quizsessionDescCreatedAt is the schema descriptor for created_at field.
	quizsessionDescCreatedAt := quizsessionFields[7].Descriptor()
	// quizsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizsession.DefaultCreatedAt = quizsessionDescCreatedAt.Default.(func() time.Time)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescQuestionID is the schema descriptor for question_id field.
	responseeventDescQuestionID := responseeventFields[2].Descriptor()
	// responseevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	responseevent.QuestionIDValidator = responseeventDescQuestionID.Validators[0].(func(string) error)
	// responseeventDescQuestionText is the schema descriptor for question_text field.
	responseeventDescQuestionText := responseeventFields[3].Descriptor()
	// responseevent.DefaultQuestionText holds the default value on creation for the question_text field.
	responseevent.DefaultQuestionText = responseeventDescQuestionText.Default.(string)
	// responseeventDescTopic is the schema descriptor for topic field.
	responseeventDescTopic := responseeventFields[4].Descriptor()
	// responseevent.DefaultTopic holds the default value on creation for the topic field.
	responseevent.DefaultTopic = responseeventDescTopic.Default.(string)
	topicstatFields := schema.TopicStat{}.Fields()
	_ = topicstatFields
	// topicstatDescTopic is the schema descriptor for topic field.
	topicstatDescTopic := topicstatFields[1].Descriptor()
	// topicstat.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topicstat.TopicValidator = topicstatDescTopic.Validators[0].(func(string) error)
	// topicstatDescAttempts is the schema descriptor for attempts field.
	topicstatDescAttempts := topicstatFields[2].Descriptor()
	// topicstat.DefaultAttempts holds the default value on creation for the attempts field.
	topicstat.DefaultAttempts = topicstatDescAttempts.Default.(int)
	// topicstatDescCorrect is the schema descriptor for correct field.
	topicstatDescCorrect := topicstatFields[3].Descriptor()
	// topicstat.DefaultCorrect holds the default value on creation for the correct field.
	topicstat.DefaultCorrect = topicstatDescCorrect.Default.(int)
	// topicstatDescUpdatedAt is the schema descriptor for updated_at field.
	topicstatDescUpdatedAt := topicstatFields[4].Descriptor()
	// topicstat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topicstat.DefaultUpdatedAt = topicstatDescUpdatedAt.Default.(func() time.Time)
	// topicstat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topicstat.UpdateDefaultUpdatedAt = topicstatDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
