// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/steward-ai/steward/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/ent/agentsuspension"
	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/ent/automationrule"
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/ent/dailydigest"
	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/disruptionprediction"
	"github.com/steward-ai/steward/ent/documentjob"
	"github.com/steward-ai/steward/ent/duplicategroup"
	"github.com/steward-ai/steward/ent/extractioncorrection"
	"github.com/steward-ai/steward/ent/forecastaccuracylog"
	"github.com/steward-ai/steward/ent/forecastscenario"
	"github.com/steward-ai/steward/ent/monthendclosing"
	"github.com/steward-ai/steward/ent/reconciliationsession"
	"github.com/steward-ai/steward/ent/reportjob"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
	"github.com/steward-ai/steward/ent/supplychainalert"
	"github.com/steward-ai/steward/ent/webhookevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentDecision is the client for interacting with the AgentDecision builders.
	AgentDecision *AgentDecisionClient
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AgentStep is the client for interacting with the AgentStep builders.
	AgentStep *AgentStepClient
	// AgentSuspension is the client for interacting with the AgentSuspension builders.
	AgentSuspension *AgentSuspensionClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// AutomationRule is the client for interacting with the AutomationRule builders.
	AutomationRule *AutomationRuleClient
	// CashForecast is the client for interacting with the CashForecast builders.
	CashForecast *CashForecastClient
	// ClosingStep is the client for interacting with the ClosingStep builders.
	ClosingStep *ClosingStepClient
	// CreditScore is the client for interacting with the CreditScore builders.
	CreditScore *CreditScoreClient
	// DailyDigest is the client for interacting with the DailyDigest builders.
	DailyDigest *DailyDigestClient
	// DedupScan is the client for interacting with the DedupScan builders.
	DedupScan *DedupScanClient
	// DisruptionPrediction is the client for interacting with the DisruptionPrediction builders.
	DisruptionPrediction *DisruptionPredictionClient
	// DocumentJob is the client for interacting with the DocumentJob builders.
	DocumentJob *DocumentJobClient
	// DuplicateGroup is the client for interacting with the DuplicateGroup builders.
	DuplicateGroup *DuplicateGroupClient
	// ExtractionCorrection is the client for interacting with the ExtractionCorrection builders.
	ExtractionCorrection *ExtractionCorrectionClient
	// ForecastAccuracyLog is the client for interacting with the ForecastAccuracyLog builders.
	ForecastAccuracyLog *ForecastAccuracyLogClient
	// ForecastScenario is the client for interacting with the ForecastScenario builders.
	ForecastScenario *ForecastScenarioClient
	// MonthEndClosing is the client for interacting with the MonthEndClosing builders.
	MonthEndClosing *MonthEndClosingClient
	// ReconciliationSession is the client for interacting with the ReconciliationSession builders.
	ReconciliationSession *ReconciliationSessionClient
	// ReportJob is the client for interacting with the ReportJob builders.
	ReportJob *ReportJobClient
	// SupplierRiskFactor is the client for interacting with the SupplierRiskFactor builders.
	SupplierRiskFactor *SupplierRiskFactorClient
	// SupplierRiskScore is the client for interacting with the SupplierRiskScore builders.
	SupplierRiskScore *SupplierRiskScoreClient
	// SupplyChainAlert is the client for interacting with the SupplyChainAlert builders.
	SupplyChainAlert *SupplyChainAlertClient
	// WebhookEvent is the client for interacting with the WebhookEvent builders.
	WebhookEvent *WebhookEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentDecision = NewAgentDecisionClient(c.config)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AgentStep = NewAgentStepClient(c.config)
	c.AgentSuspension = NewAgentSuspensionClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.AutomationRule = NewAutomationRuleClient(c.config)
	c.CashForecast = NewCashForecastClient(c.config)
	c.ClosingStep = NewClosingStepClient(c.config)
	c.CreditScore = NewCreditScoreClient(c.config)
	c.DailyDigest = NewDailyDigestClient(c.config)
	c.DedupScan = NewDedupScanClient(c.config)
	c.DisruptionPrediction = NewDisruptionPredictionClient(c.config)
	c.DocumentJob = NewDocumentJobClient(c.config)
	c.DuplicateGroup = NewDuplicateGroupClient(c.config)
	c.ExtractionCorrection = NewExtractionCorrectionClient(c.config)
	c.ForecastAccuracyLog = NewForecastAccuracyLogClient(c.config)
	c.ForecastScenario = NewForecastScenarioClient(c.config)
	c.MonthEndClosing = NewMonthEndClosingClient(c.config)
	c.ReconciliationSession = NewReconciliationSessionClient(c.config)
	c.ReportJob = NewReportJobClient(c.config)
	c.SupplierRiskFactor = NewSupplierRiskFactorClient(c.config)
	c.SupplierRiskScore = NewSupplierRiskScoreClient(c.config)
	c.SupplyChainAlert = NewSupplyChainAlertClient(c.config)
	c.WebhookEvent = NewWebhookEventClient(c.config)
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
		ctx:                   ctx,
		config:                cfg,
		AgentDecision:         NewAgentDecisionClient(cfg),
		AgentRun:              NewAgentRunClient(cfg),
		AgentStep:             NewAgentStepClient(cfg),
		AgentSuspension:       NewAgentSuspensionClient(cfg),
		AuditLog:              NewAuditLogClient(cfg),
		AutomationRule:        NewAutomationRuleClient(cfg),
		CashForecast:          NewCashForecastClient(cfg),
		ClosingStep:           NewClosingStepClient(cfg),
		CreditScore:           NewCreditScoreClient(cfg),
		DailyDigest:           NewDailyDigestClient(cfg),
		DedupScan:             NewDedupScanClient(cfg),
		DisruptionPrediction:  NewDisruptionPredictionClient(cfg),
		DocumentJob:           NewDocumentJobClient(cfg),
		DuplicateGroup:        NewDuplicateGroupClient(cfg),
		ExtractionCorrection:  NewExtractionCorrectionClient(cfg),
		ForecastAccuracyLog:   NewForecastAccuracyLogClient(cfg),
		ForecastScenario:      NewForecastScenarioClient(cfg),
		MonthEndClosing:       NewMonthEndClosingClient(cfg),
		ReconciliationSession: NewReconciliationSessionClient(cfg),
		ReportJob:             NewReportJobClient(cfg),
		SupplierRiskFactor:    NewSupplierRiskFactorClient(cfg),
		SupplierRiskScore:     NewSupplierRiskScoreClient(cfg),
		SupplyChainAlert:      NewSupplyChainAlertClient(cfg),
		WebhookEvent:          NewWebhookEventClient(cfg),
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
		ctx:                   ctx,
		config:                cfg,
		AgentDecision:         NewAgentDecisionClient(cfg),
		AgentRun:              NewAgentRunClient(cfg),
		AgentStep:             NewAgentStepClient(cfg),
		AgentSuspension:       NewAgentSuspensionClient(cfg),
		AuditLog:              NewAuditLogClient(cfg),
		AutomationRule:        NewAutomationRuleClient(cfg),
		CashForecast:          NewCashForecastClient(cfg),
		ClosingStep:           NewClosingStepClient(cfg),
		CreditScore:           NewCreditScoreClient(cfg),
		DailyDigest:           NewDailyDigestClient(cfg),
		DedupScan:             NewDedupScanClient(cfg),
		DisruptionPrediction:  NewDisruptionPredictionClient(cfg),
		DocumentJob:           NewDocumentJobClient(cfg),
		DuplicateGroup:        NewDuplicateGroupClient(cfg),
		ExtractionCorrection:  NewExtractionCorrectionClient(cfg),
		ForecastAccuracyLog:   NewForecastAccuracyLogClient(cfg),
		ForecastScenario:      NewForecastScenarioClient(cfg),
		MonthEndClosing:       NewMonthEndClosingClient(cfg),
		ReconciliationSession: NewReconciliationSessionClient(cfg),
		ReportJob:             NewReportJobClient(cfg),
		SupplierRiskFactor:    NewSupplierRiskFactorClient(cfg),
		SupplierRiskScore:     NewSupplierRiskScoreClient(cfg),
		SupplyChainAlert:      NewSupplyChainAlertClient(cfg),
		WebhookEvent:          NewWebhookEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentDecision.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentDecision, c.AgentRun, c.AgentStep, c.AgentSuspension, c.AuditLog,
		c.AutomationRule, c.CashForecast, c.ClosingStep, c.CreditScore, c.DailyDigest,
		c.DedupScan, c.DisruptionPrediction, c.DocumentJob, c.DuplicateGroup,
		c.ExtractionCorrection, c.ForecastAccuracyLog, c.ForecastScenario,
		c.MonthEndClosing, c.ReconciliationSession, c.ReportJob, c.SupplierRiskFactor,
		c.SupplierRiskScore, c.SupplyChainAlert, c.WebhookEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentDecision, c.AgentRun, c.AgentStep, c.AgentSuspension, c.AuditLog,
		c.AutomationRule, c.CashForecast, c.ClosingStep, c.CreditScore, c.DailyDigest,
		c.DedupScan, c.DisruptionPrediction, c.DocumentJob, c.DuplicateGroup,
		c.ExtractionCorrection, c.ForecastAccuracyLog, c.ForecastScenario,
		c.MonthEndClosing, c.ReconciliationSession, c.ReportJob, c.SupplierRiskFactor,
		c.SupplierRiskScore, c.SupplyChainAlert, c.WebhookEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentDecisionMutation:
		return c.AgentDecision.mutate(ctx, m)
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AgentStepMutation:
		return c.AgentStep.mutate(ctx, m)
	case *AgentSuspensionMutation:
		return c.AgentSuspension.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *AutomationRuleMutation:
		return c.AutomationRule.mutate(ctx, m)
	case *CashForecastMutation:
		return c.CashForecast.mutate(ctx, m)
	case *ClosingStepMutation:
		return c.ClosingStep.mutate(ctx, m)
	case *CreditScoreMutation:
		return c.CreditScore.mutate(ctx, m)
	case *DailyDigestMutation:
		return c.DailyDigest.mutate(ctx, m)
	case *DedupScanMutation:
		return c.DedupScan.mutate(ctx, m)
	case *DisruptionPredictionMutation:
		return c.DisruptionPrediction.mutate(ctx, m)
	case *DocumentJobMutation:
		return c.DocumentJob.mutate(ctx, m)
	case *DuplicateGroupMutation:
		return c.DuplicateGroup.mutate(ctx, m)
	case *ExtractionCorrectionMutation:
		return c.ExtractionCorrection.mutate(ctx, m)
	case *ForecastAccuracyLogMutation:
		return c.ForecastAccuracyLog.mutate(ctx, m)
	case *ForecastScenarioMutation:
		return c.ForecastScenario.mutate(ctx, m)
	case *MonthEndClosingMutation:
		return c.MonthEndClosing.mutate(ctx, m)
	case *ReconciliationSessionMutation:
		return c.ReconciliationSession.mutate(ctx, m)
	case *ReportJobMutation:
		return c.ReportJob.mutate(ctx, m)
	case *SupplierRiskFactorMutation:
		return c.SupplierRiskFactor.mutate(ctx, m)
	case *SupplierRiskScoreMutation:
		return c.SupplierRiskScore.mutate(ctx, m)
	case *SupplyChainAlertMutation:
		return c.SupplyChainAlert.mutate(ctx, m)
	case *WebhookEventMutation:
		return c.WebhookEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentDecisionClient is a client for the AgentDecision schema.
type AgentDecisionClient struct {
	config
}

// NewAgentDecisionClient returns a client for the AgentDecision from the given config.
func NewAgentDecisionClient(c config) *AgentDecisionClient {
	return &AgentDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentdecision.Hooks(f(g(h())))`.
func (c *AgentDecisionClient) Use(hooks ...Hook) {
	c.hooks.AgentDecision = append(c.hooks.AgentDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentdecision.Intercept(f(g(h())))`.
func (c *AgentDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentDecision = append(c.inters.AgentDecision, interceptors...)
}

// Create returns a builder for creating a AgentDecision entity.
func (c *AgentDecisionClient) Create() *AgentDecisionCreate {
	mutation := newAgentDecisionMutation(c.config, OpCreate)
	return &AgentDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentDecision entities.
func (c *AgentDecisionClient) CreateBulk(builders ...*AgentDecisionCreate) *AgentDecisionCreateBulk {
	return &AgentDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentDecisionClient) MapCreateBulk(slice any, setFunc func(*AgentDecisionCreate, int)) *AgentDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentDecisionCreateBulk{err: fmt.Errorf("calling to AgentDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentDecision.
func (c *AgentDecisionClient) Update() *AgentDecisionUpdate {
	mutation := newAgentDecisionMutation(c.config, OpUpdate)
	return &AgentDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentDecisionClient) UpdateOne(_m *AgentDecision) *AgentDecisionUpdateOne {
	mutation := newAgentDecisionMutation(c.config, OpUpdateOne, withAgentDecision(_m))
	return &AgentDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentDecisionClient) UpdateOneID(id string) *AgentDecisionUpdateOne {
	mutation := newAgentDecisionMutation(c.config, OpUpdateOne, withAgentDecisionID(id))
	return &AgentDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentDecision.
func (c *AgentDecisionClient) Delete() *AgentDecisionDelete {
	mutation := newAgentDecisionMutation(c.config, OpDelete)
	return &AgentDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentDecisionClient) DeleteOne(_m *AgentDecision) *AgentDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentDecisionClient) DeleteOneID(id string) *AgentDecisionDeleteOne {
	builder := c.Delete().Where(agentdecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDecisionDeleteOne{builder}
}

// Query returns a query builder for AgentDecision.
func (c *AgentDecisionClient) Query() *AgentDecisionQuery {
	return &AgentDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentDecision entity by its id.
func (c *AgentDecisionClient) Get(ctx context.Context, id string) (*AgentDecision, error) {
	return c.Query().Where(agentdecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentDecisionClient) GetX(ctx context.Context, id string) *AgentDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStep queries the step edge of a AgentDecision.
func (c *AgentDecisionClient) QueryStep(_m *AgentDecision) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentdecision.Table, agentdecision.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentdecision.StepTable, agentdecision.StepColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentDecisionClient) Hooks() []Hook {
	return c.hooks.AgentDecision
}

// Interceptors returns the client interceptors.
func (c *AgentDecisionClient) Interceptors() []Interceptor {
	return c.inters.AgentDecision
}

func (c *AgentDecisionClient) mutate(ctx context.Context, m *AgentDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentDecision mutation op: %q", m.Op())
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a AgentRun.
func (c *AgentRunClient) QuerySteps(_m *AgentRun) *AgentStepQuery {
	query := (&AgentStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agentstep.Table, agentstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.StepsTable, agentrun.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuspensions queries the suspensions edge of a AgentRun.
func (c *AgentRunClient) QuerySuspensions(_m *AgentRun) *AgentSuspensionQuery {
	query := (&AgentSuspensionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agentsuspension.Table, agentsuspension.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.SuspensionsTable, agentrun.SuspensionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AgentStepClient is a client for the AgentStep schema.
type AgentStepClient struct {
	config
}

// NewAgentStepClient returns a client for the AgentStep from the given config.
func NewAgentStepClient(c config) *AgentStepClient {
	return &AgentStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstep.Hooks(f(g(h())))`.
func (c *AgentStepClient) Use(hooks ...Hook) {
	c.hooks.AgentStep = append(c.hooks.AgentStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstep.Intercept(f(g(h())))`.
func (c *AgentStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentStep = append(c.inters.AgentStep, interceptors...)
}

// Create returns a builder for creating a AgentStep entity.
func (c *AgentStepClient) Create() *AgentStepCreate {
	mutation := newAgentStepMutation(c.config, OpCreate)
	return &AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentStep entities.
func (c *AgentStepClient) CreateBulk(builders ...*AgentStepCreate) *AgentStepCreateBulk {
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStepClient) MapCreateBulk(slice any, setFunc func(*AgentStepCreate, int)) *AgentStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStepCreateBulk{err: fmt.Errorf("calling to AgentStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentStep.
func (c *AgentStepClient) Update() *AgentStepUpdate {
	mutation := newAgentStepMutation(c.config, OpUpdate)
	return &AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStepClient) UpdateOne(_m *AgentStep) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStep(_m))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStepClient) UpdateOneID(id string) *AgentStepUpdateOne {
	mutation := newAgentStepMutation(c.config, OpUpdateOne, withAgentStepID(id))
	return &AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentStep.
func (c *AgentStepClient) Delete() *AgentStepDelete {
	mutation := newAgentStepMutation(c.config, OpDelete)
	return &AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStepClient) DeleteOne(_m *AgentStep) *AgentStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStepClient) DeleteOneID(id string) *AgentStepDeleteOne {
	builder := c.Delete().Where(agentstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStepDeleteOne{builder}
}

// Query returns a query builder for AgentStep.
func (c *AgentStepClient) Query() *AgentStepQuery {
	return &AgentStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentStep},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentStep entity by its id.
func (c *AgentStepClient) Get(ctx context.Context, id string) (*AgentStep, error) {
	return c.Query().Where(agentstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStepClient) GetX(ctx context.Context, id string) *AgentStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentStep.
func (c *AgentStepClient) QueryRun(_m *AgentStep) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentstep.RunTable, agentstep.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDecisions queries the decisions edge of a AgentStep.
func (c *AgentStepClient) QueryDecisions(_m *AgentStep) *AgentDecisionQuery {
	query := (&AgentDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstep.Table, agentstep.FieldID, id),
			sqlgraph.To(agentdecision.Table, agentdecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentstep.DecisionsTable, agentstep.DecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStepClient) Hooks() []Hook {
	return c.hooks.AgentStep
}

// Interceptors returns the client interceptors.
func (c *AgentStepClient) Interceptors() []Interceptor {
	return c.inters.AgentStep
}

func (c *AgentStepClient) mutate(ctx context.Context, m *AgentStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentStep mutation op: %q", m.Op())
	}
}

// AgentSuspensionClient is a client for the AgentSuspension schema.
type AgentSuspensionClient struct {
	config
}

// NewAgentSuspensionClient returns a client for the AgentSuspension from the given config.
func NewAgentSuspensionClient(c config) *AgentSuspensionClient {
	return &AgentSuspensionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsuspension.Hooks(f(g(h())))`.
func (c *AgentSuspensionClient) Use(hooks ...Hook) {
	c.hooks.AgentSuspension = append(c.hooks.AgentSuspension, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsuspension.Intercept(f(g(h())))`.
func (c *AgentSuspensionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSuspension = append(c.inters.AgentSuspension, interceptors...)
}

// Create returns a builder for creating a AgentSuspension entity.
func (c *AgentSuspensionClient) Create() *AgentSuspensionCreate {
	mutation := newAgentSuspensionMutation(c.config, OpCreate)
	return &AgentSuspensionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSuspension entities.
func (c *AgentSuspensionClient) CreateBulk(builders ...*AgentSuspensionCreate) *AgentSuspensionCreateBulk {
	return &AgentSuspensionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSuspensionClient) MapCreateBulk(slice any, setFunc func(*AgentSuspensionCreate, int)) *AgentSuspensionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSuspensionCreateBulk{err: fmt.Errorf("calling to AgentSuspensionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSuspensionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSuspensionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSuspension.
func (c *AgentSuspensionClient) Update() *AgentSuspensionUpdate {
	mutation := newAgentSuspensionMutation(c.config, OpUpdate)
	return &AgentSuspensionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSuspensionClient) UpdateOne(_m *AgentSuspension) *AgentSuspensionUpdateOne {
	mutation := newAgentSuspensionMutation(c.config, OpUpdateOne, withAgentSuspension(_m))
	return &AgentSuspensionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSuspensionClient) UpdateOneID(id string) *AgentSuspensionUpdateOne {
	mutation := newAgentSuspensionMutation(c.config, OpUpdateOne, withAgentSuspensionID(id))
	return &AgentSuspensionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSuspension.
func (c *AgentSuspensionClient) Delete() *AgentSuspensionDelete {
	mutation := newAgentSuspensionMutation(c.config, OpDelete)
	return &AgentSuspensionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSuspensionClient) DeleteOne(_m *AgentSuspension) *AgentSuspensionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSuspensionClient) DeleteOneID(id string) *AgentSuspensionDeleteOne {
	builder := c.Delete().Where(agentsuspension.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSuspensionDeleteOne{builder}
}

// Query returns a query builder for AgentSuspension.
func (c *AgentSuspensionClient) Query() *AgentSuspensionQuery {
	return &AgentSuspensionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSuspension},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSuspension entity by its id.
func (c *AgentSuspensionClient) Get(ctx context.Context, id string) (*AgentSuspension, error) {
	return c.Query().Where(agentsuspension.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSuspensionClient) GetX(ctx context.Context, id string) *AgentSuspension {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentSuspension.
func (c *AgentSuspensionClient) QueryRun(_m *AgentSuspension) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsuspension.Table, agentsuspension.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsuspension.RunTable, agentsuspension.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSuspensionClient) Hooks() []Hook {
	return c.hooks.AgentSuspension
}

// Interceptors returns the client interceptors.
func (c *AgentSuspensionClient) Interceptors() []Interceptor {
	return c.inters.AgentSuspension
}

func (c *AgentSuspensionClient) mutate(ctx context.Context, m *AgentSuspensionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSuspensionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSuspensionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSuspensionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSuspensionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSuspension mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// AutomationRuleClient is a client for the AutomationRule schema.
type AutomationRuleClient struct {
	config
}

// NewAutomationRuleClient returns a client for the AutomationRule from the given config.
func NewAutomationRuleClient(c config) *AutomationRuleClient {
	return &AutomationRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `automationrule.Hooks(f(g(h())))`.
func (c *AutomationRuleClient) Use(hooks ...Hook) {
	c.hooks.AutomationRule = append(c.hooks.AutomationRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `automationrule.Intercept(f(g(h())))`.
func (c *AutomationRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AutomationRule = append(c.inters.AutomationRule, interceptors...)
}

// Create returns a builder for creating a AutomationRule entity.
func (c *AutomationRuleClient) Create() *AutomationRuleCreate {
	mutation := newAutomationRuleMutation(c.config, OpCreate)
	return &AutomationRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AutomationRule entities.
func (c *AutomationRuleClient) CreateBulk(builders ...*AutomationRuleCreate) *AutomationRuleCreateBulk {
	return &AutomationRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AutomationRuleClient) MapCreateBulk(slice any, setFunc func(*AutomationRuleCreate, int)) *AutomationRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AutomationRuleCreateBulk{err: fmt.Errorf("calling to AutomationRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AutomationRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AutomationRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AutomationRule.
func (c *AutomationRuleClient) Update() *AutomationRuleUpdate {
	mutation := newAutomationRuleMutation(c.config, OpUpdate)
	return &AutomationRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AutomationRuleClient) UpdateOne(_m *AutomationRule) *AutomationRuleUpdateOne {
	mutation := newAutomationRuleMutation(c.config, OpUpdateOne, withAutomationRule(_m))
	return &AutomationRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AutomationRuleClient) UpdateOneID(id string) *AutomationRuleUpdateOne {
	mutation := newAutomationRuleMutation(c.config, OpUpdateOne, withAutomationRuleID(id))
	return &AutomationRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AutomationRule.
func (c *AutomationRuleClient) Delete() *AutomationRuleDelete {
	mutation := newAutomationRuleMutation(c.config, OpDelete)
	return &AutomationRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AutomationRuleClient) DeleteOne(_m *AutomationRule) *AutomationRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AutomationRuleClient) DeleteOneID(id string) *AutomationRuleDeleteOne {
	builder := c.Delete().Where(automationrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AutomationRuleDeleteOne{builder}
}

// Query returns a query builder for AutomationRule.
func (c *AutomationRuleClient) Query() *AutomationRuleQuery {
	return &AutomationRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAutomationRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AutomationRule entity by its id.
func (c *AutomationRuleClient) Get(ctx context.Context, id string) (*AutomationRule, error) {
	return c.Query().Where(automationrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AutomationRuleClient) GetX(ctx context.Context, id string) *AutomationRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AutomationRuleClient) Hooks() []Hook {
	return c.hooks.AutomationRule
}

// Interceptors returns the client interceptors.
func (c *AutomationRuleClient) Interceptors() []Interceptor {
	return c.inters.AutomationRule
}

func (c *AutomationRuleClient) mutate(ctx context.Context, m *AutomationRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AutomationRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AutomationRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AutomationRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AutomationRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AutomationRule mutation op: %q", m.Op())
	}
}

// CashForecastClient is a client for the CashForecast schema.
type CashForecastClient struct {
	config
}

// NewCashForecastClient returns a client for the CashForecast from the given config.
func NewCashForecastClient(c config) *CashForecastClient {
	return &CashForecastClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cashforecast.Hooks(f(g(h())))`.
func (c *CashForecastClient) Use(hooks ...Hook) {
	c.hooks.CashForecast = append(c.hooks.CashForecast, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cashforecast.Intercept(f(g(h())))`.
func (c *CashForecastClient) Intercept(interceptors ...Interceptor) {
	c.inters.CashForecast = append(c.inters.CashForecast, interceptors...)
}

// Create returns a builder for creating a CashForecast entity.
func (c *CashForecastClient) Create() *CashForecastCreate {
	mutation := newCashForecastMutation(c.config, OpCreate)
	return &CashForecastCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CashForecast entities.
func (c *CashForecastClient) CreateBulk(builders ...*CashForecastCreate) *CashForecastCreateBulk {
	return &CashForecastCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CashForecastClient) MapCreateBulk(slice any, setFunc func(*CashForecastCreate, int)) *CashForecastCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CashForecastCreateBulk{err: fmt.Errorf("calling to CashForecastClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CashForecastCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CashForecastCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CashForecast.
func (c *CashForecastClient) Update() *CashForecastUpdate {
	mutation := newCashForecastMutation(c.config, OpUpdate)
	return &CashForecastUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CashForecastClient) UpdateOne(_m *CashForecast) *CashForecastUpdateOne {
	mutation := newCashForecastMutation(c.config, OpUpdateOne, withCashForecast(_m))
	return &CashForecastUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CashForecastClient) UpdateOneID(id string) *CashForecastUpdateOne {
	mutation := newCashForecastMutation(c.config, OpUpdateOne, withCashForecastID(id))
	return &CashForecastUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CashForecast.
func (c *CashForecastClient) Delete() *CashForecastDelete {
	mutation := newCashForecastMutation(c.config, OpDelete)
	return &CashForecastDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CashForecastClient) DeleteOne(_m *CashForecast) *CashForecastDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CashForecastClient) DeleteOneID(id string) *CashForecastDeleteOne {
	builder := c.Delete().Where(cashforecast.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CashForecastDeleteOne{builder}
}

// Query returns a query builder for CashForecast.
func (c *CashForecastClient) Query() *CashForecastQuery {
	return &CashForecastQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCashForecast},
		inters: c.Interceptors(),
	}
}

// Get returns a CashForecast entity by its id.
func (c *CashForecastClient) Get(ctx context.Context, id string) (*CashForecast, error) {
	return c.Query().Where(cashforecast.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CashForecastClient) GetX(ctx context.Context, id string) *CashForecast {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScenarios queries the scenarios edge of a CashForecast.
func (c *CashForecastClient) QueryScenarios(_m *CashForecast) *ForecastScenarioQuery {
	query := (&ForecastScenarioClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cashforecast.Table, cashforecast.FieldID, id),
			sqlgraph.To(forecastscenario.Table, forecastscenario.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cashforecast.ScenariosTable, cashforecast.ScenariosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CashForecastClient) Hooks() []Hook {
	return c.hooks.CashForecast
}

// Interceptors returns the client interceptors.
func (c *CashForecastClient) Interceptors() []Interceptor {
	return c.inters.CashForecast
}

func (c *CashForecastClient) mutate(ctx context.Context, m *CashForecastMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CashForecastCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CashForecastUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CashForecastUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CashForecastDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CashForecast mutation op: %q", m.Op())
	}
}

// ClosingStepClient is a client for the ClosingStep schema.
type ClosingStepClient struct {
	config
}

// NewClosingStepClient returns a client for the ClosingStep from the given config.
func NewClosingStepClient(c config) *ClosingStepClient {
	return &ClosingStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `closingstep.Hooks(f(g(h())))`.
func (c *ClosingStepClient) Use(hooks ...Hook) {
	c.hooks.ClosingStep = append(c.hooks.ClosingStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `closingstep.Intercept(f(g(h())))`.
func (c *ClosingStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClosingStep = append(c.inters.ClosingStep, interceptors...)
}

// Create returns a builder for creating a ClosingStep entity.
func (c *ClosingStepClient) Create() *ClosingStepCreate {
	mutation := newClosingStepMutation(c.config, OpCreate)
	return &ClosingStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClosingStep entities.
func (c *ClosingStepClient) CreateBulk(builders ...*ClosingStepCreate) *ClosingStepCreateBulk {
	return &ClosingStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClosingStepClient) MapCreateBulk(slice any, setFunc func(*ClosingStepCreate, int)) *ClosingStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClosingStepCreateBulk{err: fmt.Errorf("calling to ClosingStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClosingStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClosingStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClosingStep.
func (c *ClosingStepClient) Update() *ClosingStepUpdate {
	mutation := newClosingStepMutation(c.config, OpUpdate)
	return &ClosingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClosingStepClient) UpdateOne(_m *ClosingStep) *ClosingStepUpdateOne {
	mutation := newClosingStepMutation(c.config, OpUpdateOne, withClosingStep(_m))
	return &ClosingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClosingStepClient) UpdateOneID(id string) *ClosingStepUpdateOne {
	mutation := newClosingStepMutation(c.config, OpUpdateOne, withClosingStepID(id))
	return &ClosingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClosingStep.
func (c *ClosingStepClient) Delete() *ClosingStepDelete {
	mutation := newClosingStepMutation(c.config, OpDelete)
	return &ClosingStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClosingStepClient) DeleteOne(_m *ClosingStep) *ClosingStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClosingStepClient) DeleteOneID(id string) *ClosingStepDeleteOne {
	builder := c.Delete().Where(closingstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClosingStepDeleteOne{builder}
}

// Query returns a query builder for ClosingStep.
func (c *ClosingStepClient) Query() *ClosingStepQuery {
	return &ClosingStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClosingStep},
		inters: c.Interceptors(),
	}
}

// Get returns a ClosingStep entity by its id.
func (c *ClosingStepClient) Get(ctx context.Context, id string) (*ClosingStep, error) {
	return c.Query().Where(closingstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClosingStepClient) GetX(ctx context.Context, id string) *ClosingStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryClosing queries the closing edge of a ClosingStep.
func (c *ClosingStepClient) QueryClosing(_m *ClosingStep) *MonthEndClosingQuery {
	query := (&MonthEndClosingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(closingstep.Table, closingstep.FieldID, id),
			sqlgraph.To(monthendclosing.Table, monthendclosing.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, closingstep.ClosingTable, closingstep.ClosingColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClosingStepClient) Hooks() []Hook {
	return c.hooks.ClosingStep
}

// Interceptors returns the client interceptors.
func (c *ClosingStepClient) Interceptors() []Interceptor {
	return c.inters.ClosingStep
}

func (c *ClosingStepClient) mutate(ctx context.Context, m *ClosingStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClosingStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClosingStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClosingStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClosingStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClosingStep mutation op: %q", m.Op())
	}
}

// CreditScoreClient is a client for the CreditScore schema.
type CreditScoreClient struct {
	config
}

// NewCreditScoreClient returns a client for the CreditScore from the given config.
func NewCreditScoreClient(c config) *CreditScoreClient {
	return &CreditScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditscore.Hooks(f(g(h())))`.
func (c *CreditScoreClient) Use(hooks ...Hook) {
	c.hooks.CreditScore = append(c.hooks.CreditScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditscore.Intercept(f(g(h())))`.
func (c *CreditScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditScore = append(c.inters.CreditScore, interceptors...)
}

// Create returns a builder for creating a CreditScore entity.
func (c *CreditScoreClient) Create() *CreditScoreCreate {
	mutation := newCreditScoreMutation(c.config, OpCreate)
	return &CreditScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditScore entities.
func (c *CreditScoreClient) CreateBulk(builders ...*CreditScoreCreate) *CreditScoreCreateBulk {
	return &CreditScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditScoreClient) MapCreateBulk(slice any, setFunc func(*CreditScoreCreate, int)) *CreditScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditScoreCreateBulk{err: fmt.Errorf("calling to CreditScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditScore.
func (c *CreditScoreClient) Update() *CreditScoreUpdate {
	mutation := newCreditScoreMutation(c.config, OpUpdate)
	return &CreditScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditScoreClient) UpdateOne(_m *CreditScore) *CreditScoreUpdateOne {
	mutation := newCreditScoreMutation(c.config, OpUpdateOne, withCreditScore(_m))
	return &CreditScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditScoreClient) UpdateOneID(id string) *CreditScoreUpdateOne {
	mutation := newCreditScoreMutation(c.config, OpUpdateOne, withCreditScoreID(id))
	return &CreditScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditScore.
func (c *CreditScoreClient) Delete() *CreditScoreDelete {
	mutation := newCreditScoreMutation(c.config, OpDelete)
	return &CreditScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditScoreClient) DeleteOne(_m *CreditScore) *CreditScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditScoreClient) DeleteOneID(id string) *CreditScoreDeleteOne {
	builder := c.Delete().Where(creditscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditScoreDeleteOne{builder}
}

// Query returns a query builder for CreditScore.
func (c *CreditScoreClient) Query() *CreditScoreQuery {
	return &CreditScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditScore},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditScore entity by its id.
func (c *CreditScoreClient) Get(ctx context.Context, id string) (*CreditScore, error) {
	return c.Query().Where(creditscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditScoreClient) GetX(ctx context.Context, id string) *CreditScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CreditScoreClient) Hooks() []Hook {
	return c.hooks.CreditScore
}

// Interceptors returns the client interceptors.
func (c *CreditScoreClient) Interceptors() []Interceptor {
	return c.inters.CreditScore
}

func (c *CreditScoreClient) mutate(ctx context.Context, m *CreditScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditScore mutation op: %q", m.Op())
	}
}

// DailyDigestClient is a client for the DailyDigest schema.
type DailyDigestClient struct {
	config
}

// NewDailyDigestClient returns a client for the DailyDigest from the given config.
func NewDailyDigestClient(c config) *DailyDigestClient {
	return &DailyDigestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailydigest.Hooks(f(g(h())))`.
func (c *DailyDigestClient) Use(hooks ...Hook) {
	c.hooks.DailyDigest = append(c.hooks.DailyDigest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailydigest.Intercept(f(g(h())))`.
func (c *DailyDigestClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyDigest = append(c.inters.DailyDigest, interceptors...)
}

// Create returns a builder for creating a DailyDigest entity.
func (c *DailyDigestClient) Create() *DailyDigestCreate {
	mutation := newDailyDigestMutation(c.config, OpCreate)
	return &DailyDigestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyDigest entities.
func (c *DailyDigestClient) CreateBulk(builders ...*DailyDigestCreate) *DailyDigestCreateBulk {
	return &DailyDigestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyDigestClient) MapCreateBulk(slice any, setFunc func(*DailyDigestCreate, int)) *DailyDigestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyDigestCreateBulk{err: fmt.Errorf("calling to DailyDigestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyDigestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyDigestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyDigest.
func (c *DailyDigestClient) Update() *DailyDigestUpdate {
	mutation := newDailyDigestMutation(c.config, OpUpdate)
	return &DailyDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyDigestClient) UpdateOne(_m *DailyDigest) *DailyDigestUpdateOne {
	mutation := newDailyDigestMutation(c.config, OpUpdateOne, withDailyDigest(_m))
	return &DailyDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyDigestClient) UpdateOneID(id string) *DailyDigestUpdateOne {
	mutation := newDailyDigestMutation(c.config, OpUpdateOne, withDailyDigestID(id))
	return &DailyDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyDigest.
func (c *DailyDigestClient) Delete() *DailyDigestDelete {
	mutation := newDailyDigestMutation(c.config, OpDelete)
	return &DailyDigestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyDigestClient) DeleteOne(_m *DailyDigest) *DailyDigestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyDigestClient) DeleteOneID(id string) *DailyDigestDeleteOne {
	builder := c.Delete().Where(dailydigest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyDigestDeleteOne{builder}
}

// Query returns a query builder for DailyDigest.
func (c *DailyDigestClient) Query() *DailyDigestQuery {
	return &DailyDigestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyDigest},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyDigest entity by its id.
func (c *DailyDigestClient) Get(ctx context.Context, id string) (*DailyDigest, error) {
	return c.Query().Where(dailydigest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyDigestClient) GetX(ctx context.Context, id string) *DailyDigest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyDigestClient) Hooks() []Hook {
	return c.hooks.DailyDigest
}

// Interceptors returns the client interceptors.
func (c *DailyDigestClient) Interceptors() []Interceptor {
	return c.inters.DailyDigest
}

func (c *DailyDigestClient) mutate(ctx context.Context, m *DailyDigestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyDigestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyDigestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyDigestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyDigestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyDigest mutation op: %q", m.Op())
	}
}

// DedupScanClient is a client for the DedupScan schema.
type DedupScanClient struct {
	config
}

// NewDedupScanClient returns a client for the DedupScan from the given config.
func NewDedupScanClient(c config) *DedupScanClient {
	return &DedupScanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dedupscan.Hooks(f(g(h())))`.
func (c *DedupScanClient) Use(hooks ...Hook) {
	c.hooks.DedupScan = append(c.hooks.DedupScan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dedupscan.Intercept(f(g(h())))`.
func (c *DedupScanClient) Intercept(interceptors ...Interceptor) {
	c.inters.DedupScan = append(c.inters.DedupScan, interceptors...)
}

// Create returns a builder for creating a DedupScan entity.
func (c *DedupScanClient) Create() *DedupScanCreate {
	mutation := newDedupScanMutation(c.config, OpCreate)
	return &DedupScanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DedupScan entities.
func (c *DedupScanClient) CreateBulk(builders ...*DedupScanCreate) *DedupScanCreateBulk {
	return &DedupScanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DedupScanClient) MapCreateBulk(slice any, setFunc func(*DedupScanCreate, int)) *DedupScanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DedupScanCreateBulk{err: fmt.Errorf("calling to DedupScanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DedupScanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DedupScanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DedupScan.
func (c *DedupScanClient) Update() *DedupScanUpdate {
	mutation := newDedupScanMutation(c.config, OpUpdate)
	return &DedupScanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DedupScanClient) UpdateOne(_m *DedupScan) *DedupScanUpdateOne {
	mutation := newDedupScanMutation(c.config, OpUpdateOne, withDedupScan(_m))
	return &DedupScanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DedupScanClient) UpdateOneID(id string) *DedupScanUpdateOne {
	mutation := newDedupScanMutation(c.config, OpUpdateOne, withDedupScanID(id))
	return &DedupScanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DedupScan.
func (c *DedupScanClient) Delete() *DedupScanDelete {
	mutation := newDedupScanMutation(c.config, OpDelete)
	return &DedupScanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DedupScanClient) DeleteOne(_m *DedupScan) *DedupScanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DedupScanClient) DeleteOneID(id string) *DedupScanDeleteOne {
	builder := c.Delete().Where(dedupscan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DedupScanDeleteOne{builder}
}

// Query returns a query builder for DedupScan.
func (c *DedupScanClient) Query() *DedupScanQuery {
	return &DedupScanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDedupScan},
		inters: c.Interceptors(),
	}
}

// Get returns a DedupScan entity by its id.
func (c *DedupScanClient) Get(ctx context.Context, id string) (*DedupScan, error) {
	return c.Query().Where(dedupscan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DedupScanClient) GetX(ctx context.Context, id string) *DedupScan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroups queries the groups edge of a DedupScan.
func (c *DedupScanClient) QueryGroups(_m *DedupScan) *DuplicateGroupQuery {
	query := (&DuplicateGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dedupscan.Table, dedupscan.FieldID, id),
			sqlgraph.To(duplicategroup.Table, duplicategroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dedupscan.GroupsTable, dedupscan.GroupsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DedupScanClient) Hooks() []Hook {
	return c.hooks.DedupScan
}

// Interceptors returns the client interceptors.
func (c *DedupScanClient) Interceptors() []Interceptor {
	return c.inters.DedupScan
}

func (c *DedupScanClient) mutate(ctx context.Context, m *DedupScanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DedupScanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DedupScanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DedupScanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DedupScanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DedupScan mutation op: %q", m.Op())
	}
}

// DisruptionPredictionClient is a client for the DisruptionPrediction schema.
type DisruptionPredictionClient struct {
	config
}

// NewDisruptionPredictionClient returns a client for the DisruptionPrediction from the given config.
func NewDisruptionPredictionClient(c config) *DisruptionPredictionClient {
	return &DisruptionPredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `disruptionprediction.Hooks(f(g(h())))`.
func (c *DisruptionPredictionClient) Use(hooks ...Hook) {
	c.hooks.DisruptionPrediction = append(c.hooks.DisruptionPrediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `disruptionprediction.Intercept(f(g(h())))`.
func (c *DisruptionPredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DisruptionPrediction = append(c.inters.DisruptionPrediction, interceptors...)
}

// Create returns a builder for creating a DisruptionPrediction entity.
func (c *DisruptionPredictionClient) Create() *DisruptionPredictionCreate {
	mutation := newDisruptionPredictionMutation(c.config, OpCreate)
	return &DisruptionPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DisruptionPrediction entities.
func (c *DisruptionPredictionClient) CreateBulk(builders ...*DisruptionPredictionCreate) *DisruptionPredictionCreateBulk {
	return &DisruptionPredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DisruptionPredictionClient) MapCreateBulk(slice any, setFunc func(*DisruptionPredictionCreate, int)) *DisruptionPredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DisruptionPredictionCreateBulk{err: fmt.Errorf("calling to DisruptionPredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DisruptionPredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DisruptionPredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DisruptionPrediction.
func (c *DisruptionPredictionClient) Update() *DisruptionPredictionUpdate {
	mutation := newDisruptionPredictionMutation(c.config, OpUpdate)
	return &DisruptionPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DisruptionPredictionClient) UpdateOne(_m *DisruptionPrediction) *DisruptionPredictionUpdateOne {
	mutation := newDisruptionPredictionMutation(c.config, OpUpdateOne, withDisruptionPrediction(_m))
	return &DisruptionPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DisruptionPredictionClient) UpdateOneID(id string) *DisruptionPredictionUpdateOne {
	mutation := newDisruptionPredictionMutation(c.config, OpUpdateOne, withDisruptionPredictionID(id))
	return &DisruptionPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DisruptionPrediction.
func (c *DisruptionPredictionClient) Delete() *DisruptionPredictionDelete {
	mutation := newDisruptionPredictionMutation(c.config, OpDelete)
	return &DisruptionPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DisruptionPredictionClient) DeleteOne(_m *DisruptionPrediction) *DisruptionPredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DisruptionPredictionClient) DeleteOneID(id string) *DisruptionPredictionDeleteOne {
	builder := c.Delete().Where(disruptionprediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DisruptionPredictionDeleteOne{builder}
}

// Query returns a query builder for DisruptionPrediction.
func (c *DisruptionPredictionClient) Query() *DisruptionPredictionQuery {
	return &DisruptionPredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDisruptionPrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a DisruptionPrediction entity by its id.
func (c *DisruptionPredictionClient) Get(ctx context.Context, id string) (*DisruptionPrediction, error) {
	return c.Query().Where(disruptionprediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DisruptionPredictionClient) GetX(ctx context.Context, id string) *DisruptionPrediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DisruptionPredictionClient) Hooks() []Hook {
	return c.hooks.DisruptionPrediction
}

// Interceptors returns the client interceptors.
func (c *DisruptionPredictionClient) Interceptors() []Interceptor {
	return c.inters.DisruptionPrediction
}

func (c *DisruptionPredictionClient) mutate(ctx context.Context, m *DisruptionPredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DisruptionPredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DisruptionPredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DisruptionPredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DisruptionPredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DisruptionPrediction mutation op: %q", m.Op())
	}
}

// DocumentJobClient is a client for the DocumentJob schema.
type DocumentJobClient struct {
	config
}

// NewDocumentJobClient returns a client for the DocumentJob from the given config.
func NewDocumentJobClient(c config) *DocumentJobClient {
	return &DocumentJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentjob.Hooks(f(g(h())))`.
func (c *DocumentJobClient) Use(hooks ...Hook) {
	c.hooks.DocumentJob = append(c.hooks.DocumentJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentjob.Intercept(f(g(h())))`.
func (c *DocumentJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentJob = append(c.inters.DocumentJob, interceptors...)
}

// Create returns a builder for creating a DocumentJob entity.
func (c *DocumentJobClient) Create() *DocumentJobCreate {
	mutation := newDocumentJobMutation(c.config, OpCreate)
	return &DocumentJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentJob entities.
func (c *DocumentJobClient) CreateBulk(builders ...*DocumentJobCreate) *DocumentJobCreateBulk {
	return &DocumentJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentJobClient) MapCreateBulk(slice any, setFunc func(*DocumentJobCreate, int)) *DocumentJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentJobCreateBulk{err: fmt.Errorf("calling to DocumentJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentJob.
func (c *DocumentJobClient) Update() *DocumentJobUpdate {
	mutation := newDocumentJobMutation(c.config, OpUpdate)
	return &DocumentJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentJobClient) UpdateOne(_m *DocumentJob) *DocumentJobUpdateOne {
	mutation := newDocumentJobMutation(c.config, OpUpdateOne, withDocumentJob(_m))
	return &DocumentJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentJobClient) UpdateOneID(id string) *DocumentJobUpdateOne {
	mutation := newDocumentJobMutation(c.config, OpUpdateOne, withDocumentJobID(id))
	return &DocumentJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentJob.
func (c *DocumentJobClient) Delete() *DocumentJobDelete {
	mutation := newDocumentJobMutation(c.config, OpDelete)
	return &DocumentJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentJobClient) DeleteOne(_m *DocumentJob) *DocumentJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentJobClient) DeleteOneID(id string) *DocumentJobDeleteOne {
	builder := c.Delete().Where(documentjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentJobDeleteOne{builder}
}

// Query returns a query builder for DocumentJob.
func (c *DocumentJobClient) Query() *DocumentJobQuery {
	return &DocumentJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentJob},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentJob entity by its id.
func (c *DocumentJobClient) Get(ctx context.Context, id string) (*DocumentJob, error) {
	return c.Query().Where(documentjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentJobClient) GetX(ctx context.Context, id string) *DocumentJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCorrections queries the corrections edge of a DocumentJob.
func (c *DocumentJobClient) QueryCorrections(_m *DocumentJob) *ExtractionCorrectionQuery {
	query := (&ExtractionCorrectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentjob.Table, documentjob.FieldID, id),
			sqlgraph.To(extractioncorrection.Table, extractioncorrection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentjob.CorrectionsTable, documentjob.CorrectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentJobClient) Hooks() []Hook {
	return c.hooks.DocumentJob
}

// Interceptors returns the client interceptors.
func (c *DocumentJobClient) Interceptors() []Interceptor {
	return c.inters.DocumentJob
}

func (c *DocumentJobClient) mutate(ctx context.Context, m *DocumentJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentJob mutation op: %q", m.Op())
	}
}

// DuplicateGroupClient is a client for the DuplicateGroup schema.
type DuplicateGroupClient struct {
	config
}

// NewDuplicateGroupClient returns a client for the DuplicateGroup from the given config.
func NewDuplicateGroupClient(c config) *DuplicateGroupClient {
	return &DuplicateGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `duplicategroup.Hooks(f(g(h())))`.
func (c *DuplicateGroupClient) Use(hooks ...Hook) {
	c.hooks.DuplicateGroup = append(c.hooks.DuplicateGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `duplicategroup.Intercept(f(g(h())))`.
func (c *DuplicateGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.DuplicateGroup = append(c.inters.DuplicateGroup, interceptors...)
}

// Create returns a builder for creating a DuplicateGroup entity.
func (c *DuplicateGroupClient) Create() *DuplicateGroupCreate {
	mutation := newDuplicateGroupMutation(c.config, OpCreate)
	return &DuplicateGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DuplicateGroup entities.
func (c *DuplicateGroupClient) CreateBulk(builders ...*DuplicateGroupCreate) *DuplicateGroupCreateBulk {
	return &DuplicateGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DuplicateGroupClient) MapCreateBulk(slice any, setFunc func(*DuplicateGroupCreate, int)) *DuplicateGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DuplicateGroupCreateBulk{err: fmt.Errorf("calling to DuplicateGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DuplicateGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DuplicateGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DuplicateGroup.
func (c *DuplicateGroupClient) Update() *DuplicateGroupUpdate {
	mutation := newDuplicateGroupMutation(c.config, OpUpdate)
	return &DuplicateGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DuplicateGroupClient) UpdateOne(_m *DuplicateGroup) *DuplicateGroupUpdateOne {
	mutation := newDuplicateGroupMutation(c.config, OpUpdateOne, withDuplicateGroup(_m))
	return &DuplicateGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DuplicateGroupClient) UpdateOneID(id string) *DuplicateGroupUpdateOne {
	mutation := newDuplicateGroupMutation(c.config, OpUpdateOne, withDuplicateGroupID(id))
	return &DuplicateGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DuplicateGroup.
func (c *DuplicateGroupClient) Delete() *DuplicateGroupDelete {
	mutation := newDuplicateGroupMutation(c.config, OpDelete)
	return &DuplicateGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DuplicateGroupClient) DeleteOne(_m *DuplicateGroup) *DuplicateGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DuplicateGroupClient) DeleteOneID(id string) *DuplicateGroupDeleteOne {
	builder := c.Delete().Where(duplicategroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DuplicateGroupDeleteOne{builder}
}

// Query returns a query builder for DuplicateGroup.
func (c *DuplicateGroupClient) Query() *DuplicateGroupQuery {
	return &DuplicateGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDuplicateGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a DuplicateGroup entity by its id.
func (c *DuplicateGroupClient) Get(ctx context.Context, id string) (*DuplicateGroup, error) {
	return c.Query().Where(duplicategroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DuplicateGroupClient) GetX(ctx context.Context, id string) *DuplicateGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScan queries the scan edge of a DuplicateGroup.
func (c *DuplicateGroupClient) QueryScan(_m *DuplicateGroup) *DedupScanQuery {
	query := (&DedupScanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(duplicategroup.Table, duplicategroup.FieldID, id),
			sqlgraph.To(dedupscan.Table, dedupscan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, duplicategroup.ScanTable, duplicategroup.ScanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DuplicateGroupClient) Hooks() []Hook {
	return c.hooks.DuplicateGroup
}

// Interceptors returns the client interceptors.
func (c *DuplicateGroupClient) Interceptors() []Interceptor {
	return c.inters.DuplicateGroup
}

func (c *DuplicateGroupClient) mutate(ctx context.Context, m *DuplicateGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DuplicateGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DuplicateGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DuplicateGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DuplicateGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DuplicateGroup mutation op: %q", m.Op())
	}
}

// ExtractionCorrectionClient is a client for the ExtractionCorrection schema.
type ExtractionCorrectionClient struct {
	config
}

// NewExtractionCorrectionClient returns a client for the ExtractionCorrection from the given config.
func NewExtractionCorrectionClient(c config) *ExtractionCorrectionClient {
	return &ExtractionCorrectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractioncorrection.Hooks(f(g(h())))`.
func (c *ExtractionCorrectionClient) Use(hooks ...Hook) {
	c.hooks.ExtractionCorrection = append(c.hooks.ExtractionCorrection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractioncorrection.Intercept(f(g(h())))`.
func (c *ExtractionCorrectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionCorrection = append(c.inters.ExtractionCorrection, interceptors...)
}

// Create returns a builder for creating a ExtractionCorrection entity.
func (c *ExtractionCorrectionClient) Create() *ExtractionCorrectionCreate {
	mutation := newExtractionCorrectionMutation(c.config, OpCreate)
	return &ExtractionCorrectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionCorrection entities.
func (c *ExtractionCorrectionClient) CreateBulk(builders ...*ExtractionCorrectionCreate) *ExtractionCorrectionCreateBulk {
	return &ExtractionCorrectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionCorrectionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCorrectionCreate, int)) *ExtractionCorrectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCorrectionCreateBulk{err: fmt.Errorf("calling to ExtractionCorrectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCorrectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCorrectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionCorrection.
func (c *ExtractionCorrectionClient) Update() *ExtractionCorrectionUpdate {
	mutation := newExtractionCorrectionMutation(c.config, OpUpdate)
	return &ExtractionCorrectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionCorrectionClient) UpdateOne(_m *ExtractionCorrection) *ExtractionCorrectionUpdateOne {
	mutation := newExtractionCorrectionMutation(c.config, OpUpdateOne, withExtractionCorrection(_m))
	return &ExtractionCorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionCorrectionClient) UpdateOneID(id string) *ExtractionCorrectionUpdateOne {
	mutation := newExtractionCorrectionMutation(c.config, OpUpdateOne, withExtractionCorrectionID(id))
	return &ExtractionCorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionCorrection.
func (c *ExtractionCorrectionClient) Delete() *ExtractionCorrectionDelete {
	mutation := newExtractionCorrectionMutation(c.config, OpDelete)
	return &ExtractionCorrectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionCorrectionClient) DeleteOne(_m *ExtractionCorrection) *ExtractionCorrectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionCorrectionClient) DeleteOneID(id string) *ExtractionCorrectionDeleteOne {
	builder := c.Delete().Where(extractioncorrection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionCorrectionDeleteOne{builder}
}

// Query returns a query builder for ExtractionCorrection.
func (c *ExtractionCorrectionClient) Query() *ExtractionCorrectionQuery {
	return &ExtractionCorrectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionCorrection},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionCorrection entity by its id.
func (c *ExtractionCorrectionClient) Get(ctx context.Context, id string) (*ExtractionCorrection, error) {
	return c.Query().Where(extractioncorrection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionCorrectionClient) GetX(ctx context.Context, id string) *ExtractionCorrection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ExtractionCorrection.
func (c *ExtractionCorrectionClient) QueryJob(_m *ExtractionCorrection) *DocumentJobQuery {
	query := (&DocumentJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractioncorrection.Table, extractioncorrection.FieldID, id),
			sqlgraph.To(documentjob.Table, documentjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractioncorrection.JobTable, extractioncorrection.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionCorrectionClient) Hooks() []Hook {
	return c.hooks.ExtractionCorrection
}

// Interceptors returns the client interceptors.
func (c *ExtractionCorrectionClient) Interceptors() []Interceptor {
	return c.inters.ExtractionCorrection
}

func (c *ExtractionCorrectionClient) mutate(ctx context.Context, m *ExtractionCorrectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCorrectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionCorrectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionCorrectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionCorrectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionCorrection mutation op: %q", m.Op())
	}
}

// ForecastAccuracyLogClient is a client for the ForecastAccuracyLog schema.
type ForecastAccuracyLogClient struct {
	config
}

// NewForecastAccuracyLogClient returns a client for the ForecastAccuracyLog from the given config.
func NewForecastAccuracyLogClient(c config) *ForecastAccuracyLogClient {
	return &ForecastAccuracyLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `forecastaccuracylog.Hooks(f(g(h())))`.
func (c *ForecastAccuracyLogClient) Use(hooks ...Hook) {
	c.hooks.ForecastAccuracyLog = append(c.hooks.ForecastAccuracyLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `forecastaccuracylog.Intercept(f(g(h())))`.
func (c *ForecastAccuracyLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ForecastAccuracyLog = append(c.inters.ForecastAccuracyLog, interceptors...)
}

// Create returns a builder for creating a ForecastAccuracyLog entity.
func (c *ForecastAccuracyLogClient) Create() *ForecastAccuracyLogCreate {
	mutation := newForecastAccuracyLogMutation(c.config, OpCreate)
	return &ForecastAccuracyLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ForecastAccuracyLog entities.
func (c *ForecastAccuracyLogClient) CreateBulk(builders ...*ForecastAccuracyLogCreate) *ForecastAccuracyLogCreateBulk {
	return &ForecastAccuracyLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ForecastAccuracyLogClient) MapCreateBulk(slice any, setFunc func(*ForecastAccuracyLogCreate, int)) *ForecastAccuracyLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ForecastAccuracyLogCreateBulk{err: fmt.Errorf("calling to ForecastAccuracyLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ForecastAccuracyLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ForecastAccuracyLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ForecastAccuracyLog.
func (c *ForecastAccuracyLogClient) Update() *ForecastAccuracyLogUpdate {
	mutation := newForecastAccuracyLogMutation(c.config, OpUpdate)
	return &ForecastAccuracyLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ForecastAccuracyLogClient) UpdateOne(_m *ForecastAccuracyLog) *ForecastAccuracyLogUpdateOne {
	mutation := newForecastAccuracyLogMutation(c.config, OpUpdateOne, withForecastAccuracyLog(_m))
	return &ForecastAccuracyLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ForecastAccuracyLogClient) UpdateOneID(id string) *ForecastAccuracyLogUpdateOne {
	mutation := newForecastAccuracyLogMutation(c.config, OpUpdateOne, withForecastAccuracyLogID(id))
	return &ForecastAccuracyLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ForecastAccuracyLog.
func (c *ForecastAccuracyLogClient) Delete() *ForecastAccuracyLogDelete {
	mutation := newForecastAccuracyLogMutation(c.config, OpDelete)
	return &ForecastAccuracyLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ForecastAccuracyLogClient) DeleteOne(_m *ForecastAccuracyLog) *ForecastAccuracyLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ForecastAccuracyLogClient) DeleteOneID(id string) *ForecastAccuracyLogDeleteOne {
	builder := c.Delete().Where(forecastaccuracylog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ForecastAccuracyLogDeleteOne{builder}
}

// Query returns a query builder for ForecastAccuracyLog.
func (c *ForecastAccuracyLogClient) Query() *ForecastAccuracyLogQuery {
	return &ForecastAccuracyLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeForecastAccuracyLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ForecastAccuracyLog entity by its id.
func (c *ForecastAccuracyLogClient) Get(ctx context.Context, id string) (*ForecastAccuracyLog, error) {
	return c.Query().Where(forecastaccuracylog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ForecastAccuracyLogClient) GetX(ctx context.Context, id string) *ForecastAccuracyLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ForecastAccuracyLogClient) Hooks() []Hook {
	return c.hooks.ForecastAccuracyLog
}

// Interceptors returns the client interceptors.
func (c *ForecastAccuracyLogClient) Interceptors() []Interceptor {
	return c.inters.ForecastAccuracyLog
}

func (c *ForecastAccuracyLogClient) mutate(ctx context.Context, m *ForecastAccuracyLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ForecastAccuracyLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ForecastAccuracyLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ForecastAccuracyLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ForecastAccuracyLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ForecastAccuracyLog mutation op: %q", m.Op())
	}
}

// ForecastScenarioClient is a client for the ForecastScenario schema.
type ForecastScenarioClient struct {
	config
}

// NewForecastScenarioClient returns a client for the ForecastScenario from the given config.
func NewForecastScenarioClient(c config) *ForecastScenarioClient {
	return &ForecastScenarioClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `forecastscenario.Hooks(f(g(h())))`.
func (c *ForecastScenarioClient) Use(hooks ...Hook) {
	c.hooks.ForecastScenario = append(c.hooks.ForecastScenario, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `forecastscenario.Intercept(f(g(h())))`.
func (c *ForecastScenarioClient) Intercept(interceptors ...Interceptor) {
	c.inters.ForecastScenario = append(c.inters.ForecastScenario, interceptors...)
}

// Create returns a builder for creating a ForecastScenario entity.
func (c *ForecastScenarioClient) Create() *ForecastScenarioCreate {
	mutation := newForecastScenarioMutation(c.config, OpCreate)
	return &ForecastScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ForecastScenario entities.
func (c *ForecastScenarioClient) CreateBulk(builders ...*ForecastScenarioCreate) *ForecastScenarioCreateBulk {
	return &ForecastScenarioCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ForecastScenarioClient) MapCreateBulk(slice any, setFunc func(*ForecastScenarioCreate, int)) *ForecastScenarioCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ForecastScenarioCreateBulk{err: fmt.Errorf("calling to ForecastScenarioClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ForecastScenarioCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ForecastScenarioCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ForecastScenario.
func (c *ForecastScenarioClient) Update() *ForecastScenarioUpdate {
	mutation := newForecastScenarioMutation(c.config, OpUpdate)
	return &ForecastScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ForecastScenarioClient) UpdateOne(_m *ForecastScenario) *ForecastScenarioUpdateOne {
	mutation := newForecastScenarioMutation(c.config, OpUpdateOne, withForecastScenario(_m))
	return &ForecastScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ForecastScenarioClient) UpdateOneID(id string) *ForecastScenarioUpdateOne {
	mutation := newForecastScenarioMutation(c.config, OpUpdateOne, withForecastScenarioID(id))
	return &ForecastScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ForecastScenario.
func (c *ForecastScenarioClient) Delete() *ForecastScenarioDelete {
	mutation := newForecastScenarioMutation(c.config, OpDelete)
	return &ForecastScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ForecastScenarioClient) DeleteOne(_m *ForecastScenario) *ForecastScenarioDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ForecastScenarioClient) DeleteOneID(id string) *ForecastScenarioDeleteOne {
	builder := c.Delete().Where(forecastscenario.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ForecastScenarioDeleteOne{builder}
}

// Query returns a query builder for ForecastScenario.
func (c *ForecastScenarioClient) Query() *ForecastScenarioQuery {
	return &ForecastScenarioQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeForecastScenario},
		inters: c.Interceptors(),
	}
}

// Get returns a ForecastScenario entity by its id.
func (c *ForecastScenarioClient) Get(ctx context.Context, id string) (*ForecastScenario, error) {
	return c.Query().Where(forecastscenario.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ForecastScenarioClient) GetX(ctx context.Context, id string) *ForecastScenario {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryForecast queries the forecast edge of a ForecastScenario.
func (c *ForecastScenarioClient) QueryForecast(_m *ForecastScenario) *CashForecastQuery {
	query := (&CashForecastClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(forecastscenario.Table, forecastscenario.FieldID, id),
			sqlgraph.To(cashforecast.Table, cashforecast.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, forecastscenario.ForecastTable, forecastscenario.ForecastColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ForecastScenarioClient) Hooks() []Hook {
	return c.hooks.ForecastScenario
}

// Interceptors returns the client interceptors.
func (c *ForecastScenarioClient) Interceptors() []Interceptor {
	return c.inters.ForecastScenario
}

func (c *ForecastScenarioClient) mutate(ctx context.Context, m *ForecastScenarioMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ForecastScenarioCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ForecastScenarioUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ForecastScenarioUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ForecastScenarioDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ForecastScenario mutation op: %q", m.Op())
	}
}

// MonthEndClosingClient is a client for the MonthEndClosing schema.
type MonthEndClosingClient struct {
	config
}

// NewMonthEndClosingClient returns a client for the MonthEndClosing from the given config.
func NewMonthEndClosingClient(c config) *MonthEndClosingClient {
	return &MonthEndClosingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monthendclosing.Hooks(f(g(h())))`.
func (c *MonthEndClosingClient) Use(hooks ...Hook) {
	c.hooks.MonthEndClosing = append(c.hooks.MonthEndClosing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monthendclosing.Intercept(f(g(h())))`.
func (c *MonthEndClosingClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonthEndClosing = append(c.inters.MonthEndClosing, interceptors...)
}

// Create returns a builder for creating a MonthEndClosing entity.
func (c *MonthEndClosingClient) Create() *MonthEndClosingCreate {
	mutation := newMonthEndClosingMutation(c.config, OpCreate)
	return &MonthEndClosingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonthEndClosing entities.
func (c *MonthEndClosingClient) CreateBulk(builders ...*MonthEndClosingCreate) *MonthEndClosingCreateBulk {
	return &MonthEndClosingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonthEndClosingClient) MapCreateBulk(slice any, setFunc func(*MonthEndClosingCreate, int)) *MonthEndClosingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonthEndClosingCreateBulk{err: fmt.Errorf("calling to MonthEndClosingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonthEndClosingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonthEndClosingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonthEndClosing.
func (c *MonthEndClosingClient) Update() *MonthEndClosingUpdate {
	mutation := newMonthEndClosingMutation(c.config, OpUpdate)
	return &MonthEndClosingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonthEndClosingClient) UpdateOne(_m *MonthEndClosing) *MonthEndClosingUpdateOne {
	mutation := newMonthEndClosingMutation(c.config, OpUpdateOne, withMonthEndClosing(_m))
	return &MonthEndClosingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonthEndClosingClient) UpdateOneID(id string) *MonthEndClosingUpdateOne {
	mutation := newMonthEndClosingMutation(c.config, OpUpdateOne, withMonthEndClosingID(id))
	return &MonthEndClosingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonthEndClosing.
func (c *MonthEndClosingClient) Delete() *MonthEndClosingDelete {
	mutation := newMonthEndClosingMutation(c.config, OpDelete)
	return &MonthEndClosingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonthEndClosingClient) DeleteOne(_m *MonthEndClosing) *MonthEndClosingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonthEndClosingClient) DeleteOneID(id string) *MonthEndClosingDeleteOne {
	builder := c.Delete().Where(monthendclosing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonthEndClosingDeleteOne{builder}
}

// Query returns a query builder for MonthEndClosing.
func (c *MonthEndClosingClient) Query() *MonthEndClosingQuery {
	return &MonthEndClosingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonthEndClosing},
		inters: c.Interceptors(),
	}
}

// Get returns a MonthEndClosing entity by its id.
func (c *MonthEndClosingClient) Get(ctx context.Context, id string) (*MonthEndClosing, error) {
	return c.Query().Where(monthendclosing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonthEndClosingClient) GetX(ctx context.Context, id string) *MonthEndClosing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a MonthEndClosing.
func (c *MonthEndClosingClient) QuerySteps(_m *MonthEndClosing) *ClosingStepQuery {
	query := (&ClosingStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monthendclosing.Table, monthendclosing.FieldID, id),
			sqlgraph.To(closingstep.Table, closingstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, monthendclosing.StepsTable, monthendclosing.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MonthEndClosingClient) Hooks() []Hook {
	return c.hooks.MonthEndClosing
}

// Interceptors returns the client interceptors.
func (c *MonthEndClosingClient) Interceptors() []Interceptor {
	return c.inters.MonthEndClosing
}

func (c *MonthEndClosingClient) mutate(ctx context.Context, m *MonthEndClosingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonthEndClosingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonthEndClosingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonthEndClosingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonthEndClosingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonthEndClosing mutation op: %q", m.Op())
	}
}

// ReconciliationSessionClient is a client for the ReconciliationSession schema.
type ReconciliationSessionClient struct {
	config
}

// NewReconciliationSessionClient returns a client for the ReconciliationSession from the given config.
func NewReconciliationSessionClient(c config) *ReconciliationSessionClient {
	return &ReconciliationSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reconciliationsession.Hooks(f(g(h())))`.
func (c *ReconciliationSessionClient) Use(hooks ...Hook) {
	c.hooks.ReconciliationSession = append(c.hooks.ReconciliationSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reconciliationsession.Intercept(f(g(h())))`.
func (c *ReconciliationSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReconciliationSession = append(c.inters.ReconciliationSession, interceptors...)
}

// Create returns a builder for creating a ReconciliationSession entity.
func (c *ReconciliationSessionClient) Create() *ReconciliationSessionCreate {
	mutation := newReconciliationSessionMutation(c.config, OpCreate)
	return &ReconciliationSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReconciliationSession entities.
func (c *ReconciliationSessionClient) CreateBulk(builders ...*ReconciliationSessionCreate) *ReconciliationSessionCreateBulk {
	return &ReconciliationSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReconciliationSessionClient) MapCreateBulk(slice any, setFunc func(*ReconciliationSessionCreate, int)) *ReconciliationSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReconciliationSessionCreateBulk{err: fmt.Errorf("calling to ReconciliationSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReconciliationSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReconciliationSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReconciliationSession.
func (c *ReconciliationSessionClient) Update() *ReconciliationSessionUpdate {
	mutation := newReconciliationSessionMutation(c.config, OpUpdate)
	return &ReconciliationSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReconciliationSessionClient) UpdateOne(_m *ReconciliationSession) *ReconciliationSessionUpdateOne {
	mutation := newReconciliationSessionMutation(c.config, OpUpdateOne, withReconciliationSession(_m))
	return &ReconciliationSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReconciliationSessionClient) UpdateOneID(id string) *ReconciliationSessionUpdateOne {
	mutation := newReconciliationSessionMutation(c.config, OpUpdateOne, withReconciliationSessionID(id))
	return &ReconciliationSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReconciliationSession.
func (c *ReconciliationSessionClient) Delete() *ReconciliationSessionDelete {
	mutation := newReconciliationSessionMutation(c.config, OpDelete)
	return &ReconciliationSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReconciliationSessionClient) DeleteOne(_m *ReconciliationSession) *ReconciliationSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReconciliationSessionClient) DeleteOneID(id string) *ReconciliationSessionDeleteOne {
	builder := c.Delete().Where(reconciliationsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReconciliationSessionDeleteOne{builder}
}

// Query returns a query builder for ReconciliationSession.
func (c *ReconciliationSessionClient) Query() *ReconciliationSessionQuery {
	return &ReconciliationSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReconciliationSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ReconciliationSession entity by its id.
func (c *ReconciliationSessionClient) Get(ctx context.Context, id string) (*ReconciliationSession, error) {
	return c.Query().Where(reconciliationsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReconciliationSessionClient) GetX(ctx context.Context, id string) *ReconciliationSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReconciliationSessionClient) Hooks() []Hook {
	return c.hooks.ReconciliationSession
}

// Interceptors returns the client interceptors.
func (c *ReconciliationSessionClient) Interceptors() []Interceptor {
	return c.inters.ReconciliationSession
}

func (c *ReconciliationSessionClient) mutate(ctx context.Context, m *ReconciliationSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReconciliationSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReconciliationSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReconciliationSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReconciliationSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReconciliationSession mutation op: %q", m.Op())
	}
}

// ReportJobClient is a client for the ReportJob schema.
type ReportJobClient struct {
	config
}

// NewReportJobClient returns a client for the ReportJob from the given config.
func NewReportJobClient(c config) *ReportJobClient {
	return &ReportJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reportjob.Hooks(f(g(h())))`.
func (c *ReportJobClient) Use(hooks ...Hook) {
	c.hooks.ReportJob = append(c.hooks.ReportJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reportjob.Intercept(f(g(h())))`.
func (c *ReportJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReportJob = append(c.inters.ReportJob, interceptors...)
}

// Create returns a builder for creating a ReportJob entity.
func (c *ReportJobClient) Create() *ReportJobCreate {
	mutation := newReportJobMutation(c.config, OpCreate)
	return &ReportJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReportJob entities.
func (c *ReportJobClient) CreateBulk(builders ...*ReportJobCreate) *ReportJobCreateBulk {
	return &ReportJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportJobClient) MapCreateBulk(slice any, setFunc func(*ReportJobCreate, int)) *ReportJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportJobCreateBulk{err: fmt.Errorf("calling to ReportJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReportJob.
func (c *ReportJobClient) Update() *ReportJobUpdate {
	mutation := newReportJobMutation(c.config, OpUpdate)
	return &ReportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportJobClient) UpdateOne(_m *ReportJob) *ReportJobUpdateOne {
	mutation := newReportJobMutation(c.config, OpUpdateOne, withReportJob(_m))
	return &ReportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportJobClient) UpdateOneID(id string) *ReportJobUpdateOne {
	mutation := newReportJobMutation(c.config, OpUpdateOne, withReportJobID(id))
	return &ReportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReportJob.
func (c *ReportJobClient) Delete() *ReportJobDelete {
	mutation := newReportJobMutation(c.config, OpDelete)
	return &ReportJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportJobClient) DeleteOne(_m *ReportJob) *ReportJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportJobClient) DeleteOneID(id string) *ReportJobDeleteOne {
	builder := c.Delete().Where(reportjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportJobDeleteOne{builder}
}

// Query returns a query builder for ReportJob.
func (c *ReportJobClient) Query() *ReportJobQuery {
	return &ReportJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReportJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ReportJob entity by its id.
func (c *ReportJobClient) Get(ctx context.Context, id string) (*ReportJob, error) {
	return c.Query().Where(reportjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportJobClient) GetX(ctx context.Context, id string) *ReportJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReportJobClient) Hooks() []Hook {
	return c.hooks.ReportJob
}

// Interceptors returns the client interceptors.
func (c *ReportJobClient) Interceptors() []Interceptor {
	return c.inters.ReportJob
}

func (c *ReportJobClient) mutate(ctx context.Context, m *ReportJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReportJob mutation op: %q", m.Op())
	}
}

// SupplierRiskFactorClient is a client for the SupplierRiskFactor schema.
type SupplierRiskFactorClient struct {
	config
}

// NewSupplierRiskFactorClient returns a client for the SupplierRiskFactor from the given config.
func NewSupplierRiskFactorClient(c config) *SupplierRiskFactorClient {
	return &SupplierRiskFactorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplierriskfactor.Hooks(f(g(h())))`.
func (c *SupplierRiskFactorClient) Use(hooks ...Hook) {
	c.hooks.SupplierRiskFactor = append(c.hooks.SupplierRiskFactor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplierriskfactor.Intercept(f(g(h())))`.
func (c *SupplierRiskFactorClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplierRiskFactor = append(c.inters.SupplierRiskFactor, interceptors...)
}

// Create returns a builder for creating a SupplierRiskFactor entity.
func (c *SupplierRiskFactorClient) Create() *SupplierRiskFactorCreate {
	mutation := newSupplierRiskFactorMutation(c.config, OpCreate)
	return &SupplierRiskFactorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplierRiskFactor entities.
func (c *SupplierRiskFactorClient) CreateBulk(builders ...*SupplierRiskFactorCreate) *SupplierRiskFactorCreateBulk {
	return &SupplierRiskFactorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierRiskFactorClient) MapCreateBulk(slice any, setFunc func(*SupplierRiskFactorCreate, int)) *SupplierRiskFactorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierRiskFactorCreateBulk{err: fmt.Errorf("calling to SupplierRiskFactorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierRiskFactorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierRiskFactorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplierRiskFactor.
func (c *SupplierRiskFactorClient) Update() *SupplierRiskFactorUpdate {
	mutation := newSupplierRiskFactorMutation(c.config, OpUpdate)
	return &SupplierRiskFactorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierRiskFactorClient) UpdateOne(_m *SupplierRiskFactor) *SupplierRiskFactorUpdateOne {
	mutation := newSupplierRiskFactorMutation(c.config, OpUpdateOne, withSupplierRiskFactor(_m))
	return &SupplierRiskFactorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierRiskFactorClient) UpdateOneID(id string) *SupplierRiskFactorUpdateOne {
	mutation := newSupplierRiskFactorMutation(c.config, OpUpdateOne, withSupplierRiskFactorID(id))
	return &SupplierRiskFactorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplierRiskFactor.
func (c *SupplierRiskFactorClient) Delete() *SupplierRiskFactorDelete {
	mutation := newSupplierRiskFactorMutation(c.config, OpDelete)
	return &SupplierRiskFactorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierRiskFactorClient) DeleteOne(_m *SupplierRiskFactor) *SupplierRiskFactorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierRiskFactorClient) DeleteOneID(id string) *SupplierRiskFactorDeleteOne {
	builder := c.Delete().Where(supplierriskfactor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierRiskFactorDeleteOne{builder}
}

// Query returns a query builder for SupplierRiskFactor.
func (c *SupplierRiskFactorClient) Query() *SupplierRiskFactorQuery {
	return &SupplierRiskFactorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplierRiskFactor},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplierRiskFactor entity by its id.
func (c *SupplierRiskFactorClient) Get(ctx context.Context, id string) (*SupplierRiskFactor, error) {
	return c.Query().Where(supplierriskfactor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierRiskFactorClient) GetX(ctx context.Context, id string) *SupplierRiskFactor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRiskScore queries the risk_score edge of a SupplierRiskFactor.
func (c *SupplierRiskFactorClient) QueryRiskScore(_m *SupplierRiskFactor) *SupplierRiskScoreQuery {
	query := (&SupplierRiskScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supplierriskfactor.Table, supplierriskfactor.FieldID, id),
			sqlgraph.To(supplierriskscore.Table, supplierriskscore.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, supplierriskfactor.RiskScoreTable, supplierriskfactor.RiskScoreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupplierRiskFactorClient) Hooks() []Hook {
	return c.hooks.SupplierRiskFactor
}

// Interceptors returns the client interceptors.
func (c *SupplierRiskFactorClient) Interceptors() []Interceptor {
	return c.inters.SupplierRiskFactor
}

func (c *SupplierRiskFactorClient) mutate(ctx context.Context, m *SupplierRiskFactorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierRiskFactorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierRiskFactorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierRiskFactorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierRiskFactorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplierRiskFactor mutation op: %q", m.Op())
	}
}

// SupplierRiskScoreClient is a client for the SupplierRiskScore schema.
type SupplierRiskScoreClient struct {
	config
}

// NewSupplierRiskScoreClient returns a client for the SupplierRiskScore from the given config.
func NewSupplierRiskScoreClient(c config) *SupplierRiskScoreClient {
	return &SupplierRiskScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplierriskscore.Hooks(f(g(h())))`.
func (c *SupplierRiskScoreClient) Use(hooks ...Hook) {
	c.hooks.SupplierRiskScore = append(c.hooks.SupplierRiskScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplierriskscore.Intercept(f(g(h())))`.
func (c *SupplierRiskScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplierRiskScore = append(c.inters.SupplierRiskScore, interceptors...)
}

// Create returns a builder for creating a SupplierRiskScore entity.
func (c *SupplierRiskScoreClient) Create() *SupplierRiskScoreCreate {
	mutation := newSupplierRiskScoreMutation(c.config, OpCreate)
	return &SupplierRiskScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplierRiskScore entities.
func (c *SupplierRiskScoreClient) CreateBulk(builders ...*SupplierRiskScoreCreate) *SupplierRiskScoreCreateBulk {
	return &SupplierRiskScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplierRiskScoreClient) MapCreateBulk(slice any, setFunc func(*SupplierRiskScoreCreate, int)) *SupplierRiskScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplierRiskScoreCreateBulk{err: fmt.Errorf("calling to SupplierRiskScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplierRiskScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplierRiskScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplierRiskScore.
func (c *SupplierRiskScoreClient) Update() *SupplierRiskScoreUpdate {
	mutation := newSupplierRiskScoreMutation(c.config, OpUpdate)
	return &SupplierRiskScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplierRiskScoreClient) UpdateOne(_m *SupplierRiskScore) *SupplierRiskScoreUpdateOne {
	mutation := newSupplierRiskScoreMutation(c.config, OpUpdateOne, withSupplierRiskScore(_m))
	return &SupplierRiskScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplierRiskScoreClient) UpdateOneID(id string) *SupplierRiskScoreUpdateOne {
	mutation := newSupplierRiskScoreMutation(c.config, OpUpdateOne, withSupplierRiskScoreID(id))
	return &SupplierRiskScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplierRiskScore.
func (c *SupplierRiskScoreClient) Delete() *SupplierRiskScoreDelete {
	mutation := newSupplierRiskScoreMutation(c.config, OpDelete)
	return &SupplierRiskScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplierRiskScoreClient) DeleteOne(_m *SupplierRiskScore) *SupplierRiskScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplierRiskScoreClient) DeleteOneID(id string) *SupplierRiskScoreDeleteOne {
	builder := c.Delete().Where(supplierriskscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplierRiskScoreDeleteOne{builder}
}

// Query returns a query builder for SupplierRiskScore.
func (c *SupplierRiskScoreClient) Query() *SupplierRiskScoreQuery {
	return &SupplierRiskScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplierRiskScore},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplierRiskScore entity by its id.
func (c *SupplierRiskScoreClient) Get(ctx context.Context, id string) (*SupplierRiskScore, error) {
	return c.Query().Where(supplierriskscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplierRiskScoreClient) GetX(ctx context.Context, id string) *SupplierRiskScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFactors queries the factors edge of a SupplierRiskScore.
func (c *SupplierRiskScoreClient) QueryFactors(_m *SupplierRiskScore) *SupplierRiskFactorQuery {
	query := (&SupplierRiskFactorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(supplierriskscore.Table, supplierriskscore.FieldID, id),
			sqlgraph.To(supplierriskfactor.Table, supplierriskfactor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, supplierriskscore.FactorsTable, supplierriskscore.FactorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SupplierRiskScoreClient) Hooks() []Hook {
	return c.hooks.SupplierRiskScore
}

// Interceptors returns the client interceptors.
func (c *SupplierRiskScoreClient) Interceptors() []Interceptor {
	return c.inters.SupplierRiskScore
}

func (c *SupplierRiskScoreClient) mutate(ctx context.Context, m *SupplierRiskScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplierRiskScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplierRiskScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplierRiskScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplierRiskScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplierRiskScore mutation op: %q", m.Op())
	}
}

// SupplyChainAlertClient is a client for the SupplyChainAlert schema.
type SupplyChainAlertClient struct {
	config
}

// NewSupplyChainAlertClient returns a client for the SupplyChainAlert from the given config.
func NewSupplyChainAlertClient(c config) *SupplyChainAlertClient {
	return &SupplyChainAlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supplychainalert.Hooks(f(g(h())))`.
func (c *SupplyChainAlertClient) Use(hooks ...Hook) {
	c.hooks.SupplyChainAlert = append(c.hooks.SupplyChainAlert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supplychainalert.Intercept(f(g(h())))`.
func (c *SupplyChainAlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupplyChainAlert = append(c.inters.SupplyChainAlert, interceptors...)
}

// Create returns a builder for creating a SupplyChainAlert entity.
func (c *SupplyChainAlertClient) Create() *SupplyChainAlertCreate {
	mutation := newSupplyChainAlertMutation(c.config, OpCreate)
	return &SupplyChainAlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupplyChainAlert entities.
func (c *SupplyChainAlertClient) CreateBulk(builders ...*SupplyChainAlertCreate) *SupplyChainAlertCreateBulk {
	return &SupplyChainAlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupplyChainAlertClient) MapCreateBulk(slice any, setFunc func(*SupplyChainAlertCreate, int)) *SupplyChainAlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupplyChainAlertCreateBulk{err: fmt.Errorf("calling to SupplyChainAlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupplyChainAlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupplyChainAlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupplyChainAlert.
func (c *SupplyChainAlertClient) Update() *SupplyChainAlertUpdate {
	mutation := newSupplyChainAlertMutation(c.config, OpUpdate)
	return &SupplyChainAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupplyChainAlertClient) UpdateOne(_m *SupplyChainAlert) *SupplyChainAlertUpdateOne {
	mutation := newSupplyChainAlertMutation(c.config, OpUpdateOne, withSupplyChainAlert(_m))
	return &SupplyChainAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupplyChainAlertClient) UpdateOneID(id string) *SupplyChainAlertUpdateOne {
	mutation := newSupplyChainAlertMutation(c.config, OpUpdateOne, withSupplyChainAlertID(id))
	return &SupplyChainAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupplyChainAlert.
func (c *SupplyChainAlertClient) Delete() *SupplyChainAlertDelete {
	mutation := newSupplyChainAlertMutation(c.config, OpDelete)
	return &SupplyChainAlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupplyChainAlertClient) DeleteOne(_m *SupplyChainAlert) *SupplyChainAlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupplyChainAlertClient) DeleteOneID(id string) *SupplyChainAlertDeleteOne {
	builder := c.Delete().Where(supplychainalert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupplyChainAlertDeleteOne{builder}
}

// Query returns a query builder for SupplyChainAlert.
func (c *SupplyChainAlertClient) Query() *SupplyChainAlertQuery {
	return &SupplyChainAlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupplyChainAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a SupplyChainAlert entity by its id.
func (c *SupplyChainAlertClient) Get(ctx context.Context, id string) (*SupplyChainAlert, error) {
	return c.Query().Where(supplychainalert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupplyChainAlertClient) GetX(ctx context.Context, id string) *SupplyChainAlert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SupplyChainAlertClient) Hooks() []Hook {
	return c.hooks.SupplyChainAlert
}

// Interceptors returns the client interceptors.
func (c *SupplyChainAlertClient) Interceptors() []Interceptor {
	return c.inters.SupplyChainAlert
}

func (c *SupplyChainAlertClient) mutate(ctx context.Context, m *SupplyChainAlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupplyChainAlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupplyChainAlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupplyChainAlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupplyChainAlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupplyChainAlert mutation op: %q", m.Op())
	}
}

// WebhookEventClient is a client for the WebhookEvent schema.
type WebhookEventClient struct {
	config
}

// NewWebhookEventClient returns a client for the WebhookEvent from the given config.
func NewWebhookEventClient(c config) *WebhookEventClient {
	return &WebhookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookevent.Hooks(f(g(h())))`.
func (c *WebhookEventClient) Use(hooks ...Hook) {
	c.hooks.WebhookEvent = append(c.hooks.WebhookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookevent.Intercept(f(g(h())))`.
func (c *WebhookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEvent = append(c.inters.WebhookEvent, interceptors...)
}

// Create returns a builder for creating a WebhookEvent entity.
func (c *WebhookEventClient) Create() *WebhookEventCreate {
	mutation := newWebhookEventMutation(c.config, OpCreate)
	return &WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEvent entities.
func (c *WebhookEventClient) CreateBulk(builders ...*WebhookEventCreate) *WebhookEventCreateBulk {
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEventClient) MapCreateBulk(slice any, setFunc func(*WebhookEventCreate, int)) *WebhookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEventCreateBulk{err: fmt.Errorf("calling to WebhookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEvent.
func (c *WebhookEventClient) Update() *WebhookEventUpdate {
	mutation := newWebhookEventMutation(c.config, OpUpdate)
	return &WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEventClient) UpdateOne(_m *WebhookEvent) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEvent(_m))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEventClient) UpdateOneID(id string) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEventID(id))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEvent.
func (c *WebhookEventClient) Delete() *WebhookEventDelete {
	mutation := newWebhookEventMutation(c.config, OpDelete)
	return &WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEventClient) DeleteOne(_m *WebhookEvent) *WebhookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEventClient) DeleteOneID(id string) *WebhookEventDeleteOne {
	builder := c.Delete().Where(webhookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEventDeleteOne{builder}
}

// Query returns a query builder for WebhookEvent.
func (c *WebhookEventClient) Query() *WebhookEventQuery {
	return &WebhookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEvent entity by its id.
func (c *WebhookEventClient) Get(ctx context.Context, id string) (*WebhookEvent, error) {
	return c.Query().Where(webhookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEventClient) GetX(ctx context.Context, id string) *WebhookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEventClient) Hooks() []Hook {
	return c.hooks.WebhookEvent
}

// Interceptors returns the client interceptors.
func (c *WebhookEventClient) Interceptors() []Interceptor {
	return c.inters.WebhookEvent
}

func (c *WebhookEventClient) mutate(ctx context.Context, m *WebhookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentDecision, AgentRun, AgentStep, AgentSuspension, AuditLog, AutomationRule,
		CashForecast, ClosingStep, CreditScore, DailyDigest, DedupScan,
		DisruptionPrediction, DocumentJob, DuplicateGroup, ExtractionCorrection,
		ForecastAccuracyLog, ForecastScenario, MonthEndClosing, ReconciliationSession,
		ReportJob, SupplierRiskFactor, SupplierRiskScore, SupplyChainAlert,
		WebhookEvent []ent.Hook
	}
	inters struct {
		AgentDecision, AgentRun, AgentStep, AgentSuspension, AuditLog, AutomationRule,
		CashForecast, ClosingStep, CreditScore, DailyDigest, DedupScan,
		DisruptionPrediction, DocumentJob, DuplicateGroup, ExtractionCorrection,
		ForecastAccuracyLog, ForecastScenario, MonthEndClosing, ReconciliationSession,
		ReportJob, SupplierRiskFactor, SupplierRiskScore, SupplyChainAlert,
		WebhookEvent []ent.Interceptor
	}
)
