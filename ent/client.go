// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/akoirala/pathwise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/akoirala/pathwise/ent/assessmentrecord"
	"github.com/akoirala/pathwise/ent/llmrequestevent"
	"github.com/akoirala/pathwise/ent/nodeprogress"
	"github.com/akoirala/pathwise/ent/studentprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentRecord is the client for interacting with the AssessmentRecord builders.
	AssessmentRecord *AssessmentRecordClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// NodeProgress is the client for interacting with the NodeProgress builders.
	NodeProgress *NodeProgressClient
	// StudentProgress is the client for interacting with the StudentProgress builders.
	StudentProgress *StudentProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentRecord = NewAssessmentRecordClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.NodeProgress = NewNodeProgressClient(c.config)
	c.StudentProgress = NewStudentProgressClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AssessmentRecord: NewAssessmentRecordClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		NodeProgress:     NewNodeProgressClient(cfg),
		StudentProgress:  NewStudentProgressClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AssessmentRecord: NewAssessmentRecordClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		NodeProgress:     NewNodeProgressClient(cfg),
		StudentProgress:  NewStudentProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentRecord.
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
	c.AssessmentRecord.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.NodeProgress.Use(hooks...)
	c.StudentProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentRecord.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.NodeProgress.Intercept(interceptors...)
	c.StudentProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentRecordMutation:
		return c.AssessmentRecord.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *NodeProgressMutation:
		return c.NodeProgress.mutate(ctx, m)
	case *StudentProgressMutation:
		return c.StudentProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentRecordClient is a client for the AssessmentRecord schema.
type AssessmentRecordClient struct {
	config
}

// NewAssessmentRecordClient returns a client for the AssessmentRecord from the given config.
func NewAssessmentRecordClient(c config) *AssessmentRecordClient {
	return &AssessmentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentrecord.Hooks(f(g(h())))`.
func (c *AssessmentRecordClient) Use(hooks ...Hook) {
	c.hooks.AssessmentRecord = append(c.hooks.AssessmentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentrecord.Intercept(f(g(h())))`.
func (c *AssessmentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentRecord = append(c.inters.AssessmentRecord, interceptors...)
}

// Create returns a builder for creating a AssessmentRecord entity.
func (c *AssessmentRecordClient) Create() *AssessmentRecordCreate {
	mutation := newAssessmentRecordMutation(c.config, OpCreate)
	return &AssessmentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentRecord entities.
func (c *AssessmentRecordClient) CreateBulk(builders ...*AssessmentRecordCreate) *AssessmentRecordCreateBulk {
	return &AssessmentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentRecordClient) MapCreateBulk(slice any, setFunc func(*AssessmentRecordCreate, int)) *AssessmentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentRecordCreateBulk{err: fmt.Errorf("calling to AssessmentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentRecord.
func (c *AssessmentRecordClient) Update() *AssessmentRecordUpdate {
	mutation := newAssessmentRecordMutation(c.config, OpUpdate)
	return &AssessmentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentRecordClient) UpdateOne(_m *AssessmentRecord) *AssessmentRecordUpdateOne {
	mutation := newAssessmentRecordMutation(c.config, OpUpdateOne, withAssessmentRecord(_m))
	return &AssessmentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentRecordClient) UpdateOneID(id int) *AssessmentRecordUpdateOne {
	mutation := newAssessmentRecordMutation(c.config, OpUpdateOne, withAssessmentRecordID(id))
	return &AssessmentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentRecord.
func (c *AssessmentRecordClient) Delete() *AssessmentRecordDelete {
	mutation := newAssessmentRecordMutation(c.config, OpDelete)
	return &AssessmentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentRecordClient) DeleteOne(_m *AssessmentRecord) *AssessmentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentRecordClient) DeleteOneID(id int) *AssessmentRecordDeleteOne {
	builder := c.Delete().Where(assessmentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentRecordDeleteOne{builder}
}

// Query returns a query builder for AssessmentRecord.
func (c *AssessmentRecordClient) Query() *AssessmentRecordQuery {
	return &AssessmentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentRecord entity by its id.
func (c *AssessmentRecordClient) Get(ctx context.Context, id int) (*AssessmentRecord, error) {
	return c.Query().Where(assessmentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentRecordClient) GetX(ctx context.Context, id int) *AssessmentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssessmentRecordClient) Hooks() []Hook {
	return c.hooks.AssessmentRecord
}

// Interceptors returns the client interceptors.
func (c *AssessmentRecordClient) Interceptors() []Interceptor {
	return c.inters.AssessmentRecord
}

func (c *AssessmentRecordClient) mutate(ctx context.Context, m *AssessmentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentRecord mutation op: %q", m.Op())
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

// NodeProgressClient is a client for the NodeProgress schema.
type NodeProgressClient struct {
	config
}

// NewNodeProgressClient returns a client for the NodeProgress from the given config.
func NewNodeProgressClient(c config) *NodeProgressClient {
	return &NodeProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nodeprogress.Hooks(f(g(h())))`.
func (c *NodeProgressClient) Use(hooks ...Hook) {
	c.hooks.NodeProgress = append(c.hooks.NodeProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nodeprogress.Intercept(f(g(h())))`.
func (c *NodeProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.NodeProgress = append(c.inters.NodeProgress, interceptors...)
}

// Create returns a builder for creating a NodeProgress entity.
func (c *NodeProgressClient) Create() *NodeProgressCreate {
	mutation := newNodeProgressMutation(c.config, OpCreate)
	return &NodeProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NodeProgress entities.
func (c *NodeProgressClient) CreateBulk(builders ...*NodeProgressCreate) *NodeProgressCreateBulk {
	return &NodeProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NodeProgressClient) MapCreateBulk(slice any, setFunc func(*NodeProgressCreate, int)) *NodeProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NodeProgressCreateBulk{err: fmt.Errorf("calling to NodeProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NodeProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NodeProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NodeProgress.
func (c *NodeProgressClient) Update() *NodeProgressUpdate {
	mutation := newNodeProgressMutation(c.config, OpUpdate)
	return &NodeProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NodeProgressClient) UpdateOne(_m *NodeProgress) *NodeProgressUpdateOne {
	mutation := newNodeProgressMutation(c.config, OpUpdateOne, withNodeProgress(_m))
	return &NodeProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NodeProgressClient) UpdateOneID(id int) *NodeProgressUpdateOne {
	mutation := newNodeProgressMutation(c.config, OpUpdateOne, withNodeProgressID(id))
	return &NodeProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NodeProgress.
func (c *NodeProgressClient) Delete() *NodeProgressDelete {
	mutation := newNodeProgressMutation(c.config, OpDelete)
	return &NodeProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NodeProgressClient) DeleteOne(_m *NodeProgress) *NodeProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NodeProgressClient) DeleteOneID(id int) *NodeProgressDeleteOne {
	builder := c.Delete().Where(nodeprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NodeProgressDeleteOne{builder}
}

// Query returns a query builder for NodeProgress.
func (c *NodeProgressClient) Query() *NodeProgressQuery {
	return &NodeProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNodeProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a NodeProgress entity by its id.
func (c *NodeProgressClient) Get(ctx context.Context, id int) (*NodeProgress, error) {
	return c.Query().Where(nodeprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NodeProgressClient) GetX(ctx context.Context, id int) *NodeProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudent queries the student edge of a NodeProgress.
func (c *NodeProgressClient) QueryStudent(_m *NodeProgress) *StudentProgressQuery {
	query := (&StudentProgressClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(nodeprogress.Table, nodeprogress.FieldID, id),
			sqlgraph.To(studentprogress.Table, studentprogress.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, nodeprogress.StudentTable, nodeprogress.StudentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NodeProgressClient) Hooks() []Hook {
	return c.hooks.NodeProgress
}

// Interceptors returns the client interceptors.
func (c *NodeProgressClient) Interceptors() []Interceptor {
	return c.inters.NodeProgress
}

func (c *NodeProgressClient) mutate(ctx context.Context, m *NodeProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NodeProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NodeProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NodeProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NodeProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NodeProgress mutation op: %q", m.Op())
	}
}

// StudentProgressClient is a client for the StudentProgress schema.
type StudentProgressClient struct {
	config
}

// NewStudentProgressClient returns a client for the StudentProgress from the given config.
func NewStudentProgressClient(c config) *StudentProgressClient {
	return &StudentProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentprogress.Hooks(f(g(h())))`.
func (c *StudentProgressClient) Use(hooks ...Hook) {
	c.hooks.StudentProgress = append(c.hooks.StudentProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentprogress.Intercept(f(g(h())))`.
func (c *StudentProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentProgress = append(c.inters.StudentProgress, interceptors...)
}

// Create returns a builder for creating a StudentProgress entity.
func (c *StudentProgressClient) Create() *StudentProgressCreate {
	mutation := newStudentProgressMutation(c.config, OpCreate)
	return &StudentProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentProgress entities.
func (c *StudentProgressClient) CreateBulk(builders ...*StudentProgressCreate) *StudentProgressCreateBulk {
	return &StudentProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentProgressClient) MapCreateBulk(slice any, setFunc func(*StudentProgressCreate, int)) *StudentProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentProgressCreateBulk{err: fmt.Errorf("calling to StudentProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentProgress.
func (c *StudentProgressClient) Update() *StudentProgressUpdate {
	mutation := newStudentProgressMutation(c.config, OpUpdate)
	return &StudentProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentProgressClient) UpdateOne(_m *StudentProgress) *StudentProgressUpdateOne {
	mutation := newStudentProgressMutation(c.config, OpUpdateOne, withStudentProgress(_m))
	return &StudentProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentProgressClient) UpdateOneID(id int) *StudentProgressUpdateOne {
	mutation := newStudentProgressMutation(c.config, OpUpdateOne, withStudentProgressID(id))
	return &StudentProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentProgress.
func (c *StudentProgressClient) Delete() *StudentProgressDelete {
	mutation := newStudentProgressMutation(c.config, OpDelete)
	return &StudentProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentProgressClient) DeleteOne(_m *StudentProgress) *StudentProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentProgressClient) DeleteOneID(id int) *StudentProgressDeleteOne {
	builder := c.Delete().Where(studentprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentProgressDeleteOne{builder}
}

// Query returns a query builder for StudentProgress.
func (c *StudentProgressClient) Query() *StudentProgressQuery {
	return &StudentProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentProgress entity by its id.
func (c *StudentProgressClient) Get(ctx context.Context, id int) (*StudentProgress, error) {
	return c.Query().Where(studentprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentProgressClient) GetX(ctx context.Context, id int) *StudentProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNodes queries the nodes edge of a StudentProgress.
func (c *StudentProgressClient) QueryNodes(_m *StudentProgress) *NodeProgressQuery {
	query := (&NodeProgressClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studentprogress.Table, studentprogress.FieldID, id),
			sqlgraph.To(nodeprogress.Table, nodeprogress.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, studentprogress.NodesTable, studentprogress.NodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudentProgressClient) Hooks() []Hook {
	return c.hooks.StudentProgress
}

// Interceptors returns the client interceptors.
func (c *StudentProgressClient) Interceptors() []Interceptor {
	return c.inters.StudentProgress
}

func (c *StudentProgressClient) mutate(ctx context.Context, m *StudentProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentRecord, LLMRequestEvent, NodeProgress, StudentProgress []ent.Hook
	}
	inters struct {
		AssessmentRecord, LLMRequestEvent, NodeProgress,
		StudentProgress []ent.Interceptor
	}
)
