// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ascendquiz/ascendquiz/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ascendquiz/ascendquiz/ent/llmrequestevent"
	"github.com/ascendquiz/ascendquiz/ent/quizsession"
	"github.com/ascendquiz/ascendquiz/ent/responseevent"
	"github.com/ascendquiz/ascendquiz/ent/topicstat"
	"github.com/ascendquiz/ascendquiz/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuizSession is the client for interacting with the QuizSession builders.
	QuizSession *QuizSessionClient
	// ResponseEvent is the client for interacting with the ResponseEvent builders.
	ResponseEvent *ResponseEventClient
	// TopicStat is the client for interacting with the TopicStat builders.
	TopicStat *TopicStatClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuizSession = NewQuizSessionClient(c.config)
	c.ResponseEvent = NewResponseEventClient(c.config)
	c.TopicStat = NewTopicStatClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuizSession:     NewQuizSessionClient(cfg),
		ResponseEvent:   NewResponseEventClient(cfg),
		TopicStat:       NewTopicStatClient(cfg),
		User:            NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		QuizSession:     NewQuizSessionClient(cfg),
		ResponseEvent:   NewResponseEventClient(cfg),
		TopicStat:       NewTopicStatClient(cfg),
		User:            NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.LLMRequestEvent.Use(hooks...)
	c.QuizSession.Use(hooks...)
	c.ResponseEvent.Use(hooks...)
	c.TopicStat.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.QuizSession.Intercept(interceptors...)
	c.ResponseEvent.Intercept(interceptors...)
	c.TopicStat.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuizSessionMutation:
		return c.QuizSession.mutate(ctx, m)
	case *ResponseEventMutation:
		return c.ResponseEvent.mutate(ctx, m)
	case *TopicStatMutation:
		return c.TopicStat.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuizSessionClient is a client for the QuizSession schema.
type QuizSessionClient struct {
	config
}

// NewQuizSessionClient returns a client for the QuizSession from the given config.
func NewQuizSessionClient(c config) *QuizSessionClient {
	return &QuizSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizsession.Hooks(f(g(h())))`.
func (c *QuizSessionClient) Use(hooks ...Hook) {
	c.hooks.QuizSession = append(c.hooks.QuizSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizsession.Intercept(f(g(h())))`.
func (c *QuizSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizSession = append(c.inters.QuizSession, interceptors...)
}

// Create returns a builder for creating a QuizSession entity.
func (c *QuizSessionClient) Create() *QuizSessionCreate {
	mutation := newQuizSessionMutation(c.config, OpCreate)
	return &QuizSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizSession entities.
func (c *QuizSessionClient) CreateBulk(builders ...*QuizSessionCreate) *QuizSessionCreateBulk {
	return &QuizSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizSessionClient) MapCreateBulk(slice any, setFunc func(*QuizSessionCreate, int)) *QuizSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizSessionCreateBulk{err: fmt.Errorf("calling to QuizSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizSession.
func (c *QuizSessionClient) Update() *QuizSessionUpdate {
	mutation := newQuizSessionMutation(c.config, OpUpdate)
	return &QuizSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizSessionClient) UpdateOne(_m *QuizSession) *QuizSessionUpdateOne {
	mutation := newQuizSessionMutation(c.config, OpUpdateOne, withQuizSession(_m))
	return &QuizSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizSessionClient) UpdateOneID(id int) *QuizSessionUpdateOne {
	mutation := newQuizSessionMutation(c.config, OpUpdateOne, withQuizSessionID(id))
	return &QuizSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizSession.
func (c *QuizSessionClient) Delete() *QuizSessionDelete {
	mutation := newQuizSessionMutation(c.config, OpDelete)
	return &QuizSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizSessionClient) DeleteOne(_m *QuizSession) *QuizSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizSessionClient) DeleteOneID(id int) *QuizSessionDeleteOne {
	builder := c.Delete().Where(quizsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizSessionDeleteOne{builder}
}

// Query returns a query builder for QuizSession.
func (c *QuizSessionClient) Query() *QuizSessionQuery {
	return &QuizSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizSession},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizSession entity by its id.
func (c *QuizSessionClient) Get(ctx context.Context, id int) (*QuizSession, error) {
	return c.Query().Where(quizsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizSessionClient) GetX(ctx context.Context, id int) *QuizSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizSessionClient) Hooks() []Hook {
	return c.hooks.QuizSession
}

// Interceptors returns the client interceptors.
func (c *QuizSessionClient) Interceptors() []Interceptor {
	return c.inters.QuizSession
}

func (c *QuizSessionClient) mutate(ctx context.Context, m *QuizSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizSession mutation op: %q", m.Op())
	}
}

// ResponseEventClient is a client for the ResponseEvent schema.
type ResponseEventClient struct {
	config
}

// NewResponseEventClient returns a client for the ResponseEvent from the given config.
func NewResponseEventClient(c config) *ResponseEventClient {
	return &ResponseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `responseevent.Hooks(f(g(h())))`.
func (c *ResponseEventClient) Use(hooks ...Hook) {
	c.hooks.ResponseEvent = append(c.hooks.ResponseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `responseevent.Intercept(f(g(h())))`.
func (c *ResponseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResponseEvent = append(c.inters.ResponseEvent, interceptors...)
}

// Create returns a builder for creating a ResponseEvent entity.
func (c *ResponseEventClient) Create() *ResponseEventCreate {
	mutation := newResponseEventMutation(c.config, OpCreate)
	return &ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResponseEvent entities.
func (c *ResponseEventClient) CreateBulk(builders ...*ResponseEventCreate) *ResponseEventCreateBulk {
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResponseEventClient) MapCreateBulk(slice any, setFunc func(*ResponseEventCreate, int)) *ResponseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResponseEventCreateBulk{err: fmt.Errorf("calling to ResponseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResponseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResponseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResponseEvent.
func (c *ResponseEventClient) Update() *ResponseEventUpdate {
	mutation := newResponseEventMutation(c.config, OpUpdate)
	return &ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResponseEventClient) UpdateOne(_m *ResponseEvent) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEvent(_m))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResponseEventClient) UpdateOneID(id int) *ResponseEventUpdateOne {
	mutation := newResponseEventMutation(c.config, OpUpdateOne, withResponseEventID(id))
	return &ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResponseEvent.
func (c *ResponseEventClient) Delete() *ResponseEventDelete {
	mutation := newResponseEventMutation(c.config, OpDelete)
	return &ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResponseEventClient) DeleteOne(_m *ResponseEvent) *ResponseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResponseEventClient) DeleteOneID(id int) *ResponseEventDeleteOne {
	builder := c.Delete().Where(responseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResponseEventDeleteOne{builder}
}

// Query returns a query builder for ResponseEvent.
func (c *ResponseEventClient) Query() *ResponseEventQuery {
	return &ResponseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResponseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ResponseEvent entity by its id.
func (c *ResponseEventClient) Get(ctx context.Context, id int) (*ResponseEvent, error) {
	return c.Query().Where(responseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResponseEventClient) GetX(ctx context.Context, id int) *ResponseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResponseEventClient) Hooks() []Hook {
	return c.hooks.ResponseEvent
}

// Interceptors returns the client interceptors.
func (c *ResponseEventClient) Interceptors() []Interceptor {
	return c.inters.ResponseEvent
}

func (c *ResponseEventClient) mutate(ctx context.Context, m *ResponseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResponseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResponseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResponseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResponseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResponseEvent mutation op: %q", m.Op())
	}
}

// TopicStatClient is a client for the TopicStat schema.
type TopicStatClient struct {
	config
}

// NewTopicStatClient returns a client for the TopicStat from the given config.
func NewTopicStatClient(c config) *TopicStatClient {
	return &TopicStatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicstat.Hooks(f(g(h())))`.
func (c *TopicStatClient) Use(hooks ...Hook) {
	c.hooks.TopicStat = append(c.hooks.TopicStat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicstat.Intercept(f(g(h())))`.
func (c *TopicStatClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicStat = append(c.inters.TopicStat, interceptors...)
}

// Create returns a builder for creating a TopicStat entity.
func (c *TopicStatClient) Create() *TopicStatCreate {
	mutation := newTopicStatMutation(c.config, OpCreate)
	return &TopicStatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicStat entities.
func (c *TopicStatClient) CreateBulk(builders ...*TopicStatCreate) *TopicStatCreateBulk {
	return &TopicStatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicStatClient) MapCreateBulk(slice any, setFunc func(*TopicStatCreate, int)) *TopicStatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicStatCreateBulk{err: fmt.Errorf("calling to TopicStatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicStatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicStatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicStat.
func (c *TopicStatClient) Update() *TopicStatUpdate {
	mutation := newTopicStatMutation(c.config, OpUpdate)
	return &TopicStatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicStatClient) UpdateOne(_m *TopicStat) *TopicStatUpdateOne {
	mutation := newTopicStatMutation(c.config, OpUpdateOne, withTopicStat(_m))
	return &TopicStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicStatClient) UpdateOneID(id int) *TopicStatUpdateOne {
	mutation := newTopicStatMutation(c.config, OpUpdateOne, withTopicStatID(id))
	return &TopicStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicStat.
func (c *TopicStatClient) Delete() *TopicStatDelete {
	mutation := newTopicStatMutation(c.config, OpDelete)
	return &TopicStatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicStatClient) DeleteOne(_m *TopicStat) *TopicStatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicStatClient) DeleteOneID(id int) *TopicStatDeleteOne {
	builder := c.Delete().Where(topicstat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicStatDeleteOne{builder}
}

// Query returns a query builder for TopicStat.
func (c *TopicStatClient) Query() *TopicStatQuery {
	return &TopicStatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicStat},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicStat entity by its id.
func (c *TopicStatClient) Get(ctx context.Context, id int) (*TopicStat, error) {
	return c.Query().Where(topicstat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicStatClient) GetX(ctx context.Context, id int) *TopicStat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicStatClient) Hooks() []Hook {
	return c.hooks.TopicStat
}

// Interceptors returns the client interceptors.
func (c *TopicStatClient) Interceptors() []Interceptor {
	return c.inters.TopicStat
}

func (c *TopicStatClient) mutate(ctx context.Context, m *TopicStatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicStatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicStatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicStatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicStatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicStat mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, QuizSession, ResponseEvent, TopicStat, User []ent.Hook
	}
	inters struct {
		LLMRequestEvent, QuizSession, ResponseEvent, TopicStat, User []ent.Interceptor
	}
)
