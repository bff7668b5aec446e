// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/coursecraft/flowengine/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/coursecraft/flowengine/ent/decisionevent"
	"github.com/coursecraft/flowengine/ent/llmrequestevent"
	"github.com/coursecraft/flowengine/ent/phaseevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DecisionEvent is the client for interacting with the DecisionEvent builders.
	DecisionEvent *DecisionEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PhaseEvent is the client for interacting with the PhaseEvent builders.
	PhaseEvent *PhaseEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DecisionEvent = NewDecisionEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PhaseEvent = NewPhaseEventClient(c.config)
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
		DecisionEvent:   NewDecisionEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PhaseEvent:      NewPhaseEventClient(cfg),
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
		DecisionEvent:   NewDecisionEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PhaseEvent:      NewPhaseEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DecisionEvent.
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
	c.DecisionEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.PhaseEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DecisionEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PhaseEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DecisionEventMutation:
		return c.DecisionEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PhaseEventMutation:
		return c.PhaseEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DecisionEventClient is a client for the DecisionEvent schema.
type DecisionEventClient struct {
	config
}

// NewDecisionEventClient returns a client for the DecisionEvent from the given config.
func NewDecisionEventClient(c config) *DecisionEventClient {
	return &DecisionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `decisionevent.Hooks(f(g(h())))`.
func (c *DecisionEventClient) Use(hooks ...Hook) {
	c.hooks.DecisionEvent = append(c.hooks.DecisionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `decisionevent.Intercept(f(g(h())))`.
func (c *DecisionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DecisionEvent = append(c.inters.DecisionEvent, interceptors...)
}

// Create returns a builder for creating a DecisionEvent entity.
func (c *DecisionEventClient) Create() *DecisionEventCreate {
	mutation := newDecisionEventMutation(c.config, OpCreate)
	return &DecisionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DecisionEvent entities.
func (c *DecisionEventClient) CreateBulk(builders ...*DecisionEventCreate) *DecisionEventCreateBulk {
	return &DecisionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DecisionEventClient) MapCreateBulk(slice any, setFunc func(*DecisionEventCreate, int)) *DecisionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DecisionEventCreateBulk{err: fmt.Errorf("calling to DecisionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DecisionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DecisionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DecisionEvent.
func (c *DecisionEventClient) Update() *DecisionEventUpdate {
	mutation := newDecisionEventMutation(c.config, OpUpdate)
	return &DecisionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DecisionEventClient) UpdateOne(_m *DecisionEvent) *DecisionEventUpdateOne {
	mutation := newDecisionEventMutation(c.config, OpUpdateOne, withDecisionEvent(_m))
	return &DecisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DecisionEventClient) UpdateOneID(id int) *DecisionEventUpdateOne {
	mutation := newDecisionEventMutation(c.config, OpUpdateOne, withDecisionEventID(id))
	return &DecisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DecisionEvent.
func (c *DecisionEventClient) Delete() *DecisionEventDelete {
	mutation := newDecisionEventMutation(c.config, OpDelete)
	return &DecisionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DecisionEventClient) DeleteOne(_m *DecisionEvent) *DecisionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DecisionEventClient) DeleteOneID(id int) *DecisionEventDeleteOne {
	builder := c.Delete().Where(decisionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DecisionEventDeleteOne{builder}
}

// Query returns a query builder for DecisionEvent.
func (c *DecisionEventClient) Query() *DecisionEventQuery {
	return &DecisionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDecisionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DecisionEvent entity by its id.
func (c *DecisionEventClient) Get(ctx context.Context, id int) (*DecisionEvent, error) {
	return c.Query().Where(decisionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DecisionEventClient) GetX(ctx context.Context, id int) *DecisionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DecisionEventClient) Hooks() []Hook {
	return c.hooks.DecisionEvent
}

// Interceptors returns the client interceptors.
func (c *DecisionEventClient) Interceptors() []Interceptor {
	return c.inters.DecisionEvent
}

func (c *DecisionEventClient) mutate(ctx context.Context, m *DecisionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DecisionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DecisionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DecisionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DecisionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DecisionEvent mutation op: %q", m.Op())
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

// PhaseEventClient is a client for the PhaseEvent schema.
type PhaseEventClient struct {
	config
}

// NewPhaseEventClient returns a client for the PhaseEvent from the given config.
func NewPhaseEventClient(c config) *PhaseEventClient {
	return &PhaseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phaseevent.Hooks(f(g(h())))`.
func (c *PhaseEventClient) Use(hooks ...Hook) {
	c.hooks.PhaseEvent = append(c.hooks.PhaseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phaseevent.Intercept(f(g(h())))`.
func (c *PhaseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhaseEvent = append(c.inters.PhaseEvent, interceptors...)
}

// Create returns a builder for creating a PhaseEvent entity.
func (c *PhaseEventClient) Create() *PhaseEventCreate {
	mutation := newPhaseEventMutation(c.config, OpCreate)
	return &PhaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhaseEvent entities.
func (c *PhaseEventClient) CreateBulk(builders ...*PhaseEventCreate) *PhaseEventCreateBulk {
	return &PhaseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseEventClient) MapCreateBulk(slice any, setFunc func(*PhaseEventCreate, int)) *PhaseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseEventCreateBulk{err: fmt.Errorf("calling to PhaseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhaseEvent.
func (c *PhaseEventClient) Update() *PhaseEventUpdate {
	mutation := newPhaseEventMutation(c.config, OpUpdate)
	return &PhaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseEventClient) UpdateOne(_m *PhaseEvent) *PhaseEventUpdateOne {
	mutation := newPhaseEventMutation(c.config, OpUpdateOne, withPhaseEvent(_m))
	return &PhaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseEventClient) UpdateOneID(id int) *PhaseEventUpdateOne {
	mutation := newPhaseEventMutation(c.config, OpUpdateOne, withPhaseEventID(id))
	return &PhaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhaseEvent.
func (c *PhaseEventClient) Delete() *PhaseEventDelete {
	mutation := newPhaseEventMutation(c.config, OpDelete)
	return &PhaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseEventClient) DeleteOne(_m *PhaseEvent) *PhaseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseEventClient) DeleteOneID(id int) *PhaseEventDeleteOne {
	builder := c.Delete().Where(phaseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseEventDeleteOne{builder}
}

// Query returns a query builder for PhaseEvent.
func (c *PhaseEventClient) Query() *PhaseEventQuery {
	return &PhaseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhaseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PhaseEvent entity by its id.
func (c *PhaseEventClient) Get(ctx context.Context, id int) (*PhaseEvent, error) {
	return c.Query().Where(phaseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseEventClient) GetX(ctx context.Context, id int) *PhaseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PhaseEventClient) Hooks() []Hook {
	return c.hooks.PhaseEvent
}

// Interceptors returns the client interceptors.
func (c *PhaseEventClient) Interceptors() []Interceptor {
	return c.inters.PhaseEvent
}

func (c *PhaseEventClient) mutate(ctx context.Context, m *PhaseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhaseEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DecisionEvent, LLMRequestEvent, PhaseEvent []ent.Hook
	}
	inters struct {
		DecisionEvent, LLMRequestEvent, PhaseEvent []ent.Interceptor
	}
)
