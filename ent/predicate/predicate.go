// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizSession is the predicate function for quizsession builders.
type QuizSession func(*sql.Selector)

// ResponseEvent is the predicate function for responseevent builders.
type ResponseEvent func(*sql.Selector)

// TopicStat is the predicate function for topicstat builders.
type TopicStat func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
