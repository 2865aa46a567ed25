// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/reconciliationsession"
	"github.com/steward-ai/steward/ent/reportjob"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
	"github.com/steward-ai/steward/ent/supplychainalert"
	"github.com/steward-ai/steward/ent/webhookevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentDecision         = "AgentDecision"
	TypeAgentRun              = "AgentRun"
	TypeAgentStep             = "AgentStep"
	TypeAgentSuspension       = "AgentSuspension"
	TypeAuditLog              = "AuditLog"
	TypeAutomationRule        = "AutomationRule"
	TypeCashForecast          = "CashForecast"
	TypeClosingStep           = "ClosingStep"
	TypeCreditScore           = "CreditScore"
	TypeDailyDigest           = "DailyDigest"
	TypeDedupScan             = "DedupScan"
	TypeDisruptionPrediction  = "DisruptionPrediction"
	TypeDocumentJob           = "DocumentJob"
	TypeDuplicateGroup        = "DuplicateGroup"
	TypeExtractionCorrection  = "ExtractionCorrection"
	TypeForecastAccuracyLog   = "ForecastAccuracyLog"
	TypeForecastScenario      = "ForecastScenario"
	TypeMonthEndClosing       = "MonthEndClosing"
	TypeReconciliationSession = "ReconciliationSession"
	TypeReportJob             = "ReportJob"
	TypeSupplierRiskFactor    = "SupplierRiskFactor"
	TypeSupplierRiskScore     = "SupplierRiskScore"
	TypeSupplyChainAlert      = "SupplyChainAlert"
	TypeWebhookEvent          = "WebhookEvent"
)

// AgentDecisionMutation represents an operation that mutates the AgentDecision nodes in the graph.
type AgentDecisionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	run_id              *string
	prompt_fingerprint  *string
	response_payload    *map[string]interface{}
	confidence          *float64
	addconfidence       *float64
	tokens_in           *int
	addtokens_in        *int
	tokens_out          *int
	addtokens_out       *int
	tools_invoked       *[]string
	appendtools_invoked []string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	step                *string
	clearedstep         bool
	done                bool
	oldValue            func(context.Context) (*AgentDecision, error)
	predicates          []predicate.AgentDecision
}

var _ ent.Mutation = (*AgentDecisionMutation)(nil)

// agentdecisionOption allows management of the mutation configuration using functional options.
type agentdecisionOption func(*AgentDecisionMutation)

// newAgentDecisionMutation creates new mutation for the AgentDecision entity.
func newAgentDecisionMutation(c config, op Op, opts ...agentdecisionOption) *AgentDecisionMutation {
	m := &AgentDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentDecisionID sets the ID field of the mutation.
func withAgentDecisionID(id string) agentdecisionOption {
	return func(m *AgentDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentDecision
		)
		m.oldValue = func(ctx context.Context) (*AgentDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentDecision sets the old AgentDecision of the mutation.
func withAgentDecision(node *AgentDecision) agentdecisionOption {
	return func(m *AgentDecisionMutation) {
		m.oldValue = func(context.Context) (*AgentDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentDecision entities.
func (m *AgentDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepID sets the "step_id" field.
func (m *AgentDecisionMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *AgentDecisionMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *AgentDecisionMutation) ResetStepID() {
	m.step = nil
}

// SetRunID sets the "run_id" field.
func (m *AgentDecisionMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentDecisionMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentDecisionMutation) ResetRunID() {
	m.run_id = nil
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (m *AgentDecisionMutation) SetPromptFingerprint(s string) {
	m.prompt_fingerprint = &s
}

// PromptFingerprint returns the value of the "prompt_fingerprint" field in the mutation.
func (m *AgentDecisionMutation) PromptFingerprint() (r string, exists bool) {
	v := m.prompt_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptFingerprint returns the old "prompt_fingerprint" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldPromptFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptFingerprint: %w", err)
	}
	return oldValue.PromptFingerprint, nil
}

// ResetPromptFingerprint resets all changes to the "prompt_fingerprint" field.
func (m *AgentDecisionMutation) ResetPromptFingerprint() {
	m.prompt_fingerprint = nil
}

// SetResponsePayload sets the "response_payload" field.
func (m *AgentDecisionMutation) SetResponsePayload(value map[string]interface{}) {
	m.response_payload = &value
}

// ResponsePayload returns the value of the "response_payload" field in the mutation.
func (m *AgentDecisionMutation) ResponsePayload() (r map[string]interface{}, exists bool) {
	v := m.response_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldResponsePayload returns the old "response_payload" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldResponsePayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponsePayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponsePayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponsePayload: %w", err)
	}
	return oldValue.ResponsePayload, nil
}

// ClearResponsePayload clears the value of the "response_payload" field.
func (m *AgentDecisionMutation) ClearResponsePayload() {
	m.response_payload = nil
	m.clearedFields[agentdecision.FieldResponsePayload] = struct{}{}
}

// ResponsePayloadCleared returns if the "response_payload" field was cleared in this mutation.
func (m *AgentDecisionMutation) ResponsePayloadCleared() bool {
	_, ok := m.clearedFields[agentdecision.FieldResponsePayload]
	return ok
}

// ResetResponsePayload resets all changes to the "response_payload" field.
func (m *AgentDecisionMutation) ResetResponsePayload() {
	m.response_payload = nil
	delete(m.clearedFields, agentdecision.FieldResponsePayload)
}

// SetConfidence sets the "confidence" field.
func (m *AgentDecisionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AgentDecisionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AgentDecisionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AgentDecisionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AgentDecisionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTokensIn sets the "tokens_in" field.
func (m *AgentDecisionMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *AgentDecisionMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *AgentDecisionMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *AgentDecisionMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *AgentDecisionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
}

// SetTokensOut sets the "tokens_out" field.
func (m *AgentDecisionMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *AgentDecisionMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *AgentDecisionMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *AgentDecisionMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *AgentDecisionMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
}

// SetToolsInvoked sets the "tools_invoked" field.
func (m *AgentDecisionMutation) SetToolsInvoked(s []string) {
	m.tools_invoked = &s
	m.appendtools_invoked = nil
}

// ToolsInvoked returns the value of the "tools_invoked" field in the mutation.
func (m *AgentDecisionMutation) ToolsInvoked() (r []string, exists bool) {
	v := m.tools_invoked
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsInvoked returns the old "tools_invoked" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldToolsInvoked(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsInvoked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsInvoked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsInvoked: %w", err)
	}
	return oldValue.ToolsInvoked, nil
}

// AppendToolsInvoked adds s to the "tools_invoked" field.
func (m *AgentDecisionMutation) AppendToolsInvoked(s []string) {
	m.appendtools_invoked = append(m.appendtools_invoked, s...)
}

// AppendedToolsInvoked returns the list of values that were appended to the "tools_invoked" field in this mutation.
func (m *AgentDecisionMutation) AppendedToolsInvoked() ([]string, bool) {
	if len(m.appendtools_invoked) == 0 {
		return nil, false
	}
	return m.appendtools_invoked, true
}

// ClearToolsInvoked clears the value of the "tools_invoked" field.
func (m *AgentDecisionMutation) ClearToolsInvoked() {
	m.tools_invoked = nil
	m.appendtools_invoked = nil
	m.clearedFields[agentdecision.FieldToolsInvoked] = struct{}{}
}

// ToolsInvokedCleared returns if the "tools_invoked" field was cleared in this mutation.
func (m *AgentDecisionMutation) ToolsInvokedCleared() bool {
	_, ok := m.clearedFields[agentdecision.FieldToolsInvoked]
	return ok
}

// ResetToolsInvoked resets all changes to the "tools_invoked" field.
func (m *AgentDecisionMutation) ResetToolsInvoked() {
	m.tools_invoked = nil
	m.appendtools_invoked = nil
	delete(m.clearedFields, agentdecision.FieldToolsInvoked)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentDecision entity.
// If the AgentDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStep clears the "step" edge to the AgentStep entity.
func (m *AgentDecisionMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[agentdecision.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the AgentStep entity was cleared.
func (m *AgentDecisionMutation) StepCleared() bool {
	return m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *AgentDecisionMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *AgentDecisionMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the AgentDecisionMutation builder.
func (m *AgentDecisionMutation) Where(ps ...predicate.AgentDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentDecision).
func (m *AgentDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentDecisionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.step != nil {
		fields = append(fields, agentdecision.FieldStepID)
	}
	if m.run_id != nil {
		fields = append(fields, agentdecision.FieldRunID)
	}
	if m.prompt_fingerprint != nil {
		fields = append(fields, agentdecision.FieldPromptFingerprint)
	}
	if m.response_payload != nil {
		fields = append(fields, agentdecision.FieldResponsePayload)
	}
	if m.confidence != nil {
		fields = append(fields, agentdecision.FieldConfidence)
	}
	if m.tokens_in != nil {
		fields = append(fields, agentdecision.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, agentdecision.FieldTokensOut)
	}
	if m.tools_invoked != nil {
		fields = append(fields, agentdecision.FieldToolsInvoked)
	}
	if m.created_at != nil {
		fields = append(fields, agentdecision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentdecision.FieldStepID:
		return m.StepID()
	case agentdecision.FieldRunID:
		return m.RunID()
	case agentdecision.FieldPromptFingerprint:
		return m.PromptFingerprint()
	case agentdecision.FieldResponsePayload:
		return m.ResponsePayload()
	case agentdecision.FieldConfidence:
		return m.Confidence()
	case agentdecision.FieldTokensIn:
		return m.TokensIn()
	case agentdecision.FieldTokensOut:
		return m.TokensOut()
	case agentdecision.FieldToolsInvoked:
		return m.ToolsInvoked()
	case agentdecision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentdecision.FieldStepID:
		return m.OldStepID(ctx)
	case agentdecision.FieldRunID:
		return m.OldRunID(ctx)
	case agentdecision.FieldPromptFingerprint:
		return m.OldPromptFingerprint(ctx)
	case agentdecision.FieldResponsePayload:
		return m.OldResponsePayload(ctx)
	case agentdecision.FieldConfidence:
		return m.OldConfidence(ctx)
	case agentdecision.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case agentdecision.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case agentdecision.FieldToolsInvoked:
		return m.OldToolsInvoked(ctx)
	case agentdecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentdecision.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case agentdecision.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentdecision.FieldPromptFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptFingerprint(v)
		return nil
	case agentdecision.FieldResponsePayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponsePayload(v)
		return nil
	case agentdecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case agentdecision.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case agentdecision.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case agentdecision.FieldToolsInvoked:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsInvoked(v)
		return nil
	case agentdecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, agentdecision.FieldConfidence)
	}
	if m.addtokens_in != nil {
		fields = append(fields, agentdecision.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, agentdecision.FieldTokensOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentdecision.FieldConfidence:
		return m.AddedConfidence()
	case agentdecision.FieldTokensIn:
		return m.AddedTokensIn()
	case agentdecision.FieldTokensOut:
		return m.AddedTokensOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentdecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case agentdecision.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case agentdecision.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	}
	return fmt.Errorf("unknown AgentDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentdecision.FieldResponsePayload) {
		fields = append(fields, agentdecision.FieldResponsePayload)
	}
	if m.FieldCleared(agentdecision.FieldToolsInvoked) {
		fields = append(fields, agentdecision.FieldToolsInvoked)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentDecisionMutation) ClearField(name string) error {
	switch name {
	case agentdecision.FieldResponsePayload:
		m.ClearResponsePayload()
		return nil
	case agentdecision.FieldToolsInvoked:
		m.ClearToolsInvoked()
		return nil
	}
	return fmt.Errorf("unknown AgentDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentDecisionMutation) ResetField(name string) error {
	switch name {
	case agentdecision.FieldStepID:
		m.ResetStepID()
		return nil
	case agentdecision.FieldRunID:
		m.ResetRunID()
		return nil
	case agentdecision.FieldPromptFingerprint:
		m.ResetPromptFingerprint()
		return nil
	case agentdecision.FieldResponsePayload:
		m.ResetResponsePayload()
		return nil
	case agentdecision.FieldConfidence:
		m.ResetConfidence()
		return nil
	case agentdecision.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case agentdecision.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case agentdecision.FieldToolsInvoked:
		m.ResetToolsInvoked()
		return nil
	case agentdecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.step != nil {
		edges = append(edges, agentdecision.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentdecision.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstep {
		edges = append(edges, agentdecision.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentdecision.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentDecisionMutation) ClearEdge(name string) error {
	switch name {
	case agentdecision.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown AgentDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentDecisionMutation) ResetEdge(name string) error {
	switch name {
	case agentdecision.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown AgentDecision edge %s", name)
}

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	agent_type         *string
	trigger_type       *string
	trigger_id         *string
	status             *agentrun.Status
	created_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	total_steps        *int
	addtotal_steps     *int
	token_usage        *int
	addtoken_usage     *int
	initial_state      *map[string]interface{}
	final_state        *map[string]interface{}
	current_step       *string
	error_message      *string
	pod_id             *string
	last_heartbeat_at  *time.Time
	clearedFields      map[string]struct{}
	steps              map[string]struct{}
	removedsteps       map[string]struct{}
	clearedsteps       bool
	suspensions        map[string]struct{}
	removedsuspensions map[string]struct{}
	clearedsuspensions bool
	done               bool
	oldValue           func(context.Context) (*AgentRun, error)
	predicates         []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentType sets the "agent_type" field.
func (m *AgentRunMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentRunMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentRunMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *AgentRunMutation) SetTriggerType(s string) {
	m.trigger_type = &s
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *AgentRunMutation) TriggerType() (r string, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTriggerType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *AgentRunMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetTriggerID sets the "trigger_id" field.
func (m *AgentRunMutation) SetTriggerID(s string) {
	m.trigger_id = &s
}

// TriggerID returns the value of the "trigger_id" field in the mutation.
func (m *AgentRunMutation) TriggerID() (r string, exists bool) {
	v := m.trigger_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerID returns the old "trigger_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTriggerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerID: %w", err)
	}
	return oldValue.TriggerID, nil
}

// ClearTriggerID clears the value of the "trigger_id" field.
func (m *AgentRunMutation) ClearTriggerID() {
	m.trigger_id = nil
	m.clearedFields[agentrun.FieldTriggerID] = struct{}{}
}

// TriggerIDCleared returns if the "trigger_id" field was cleared in this mutation.
func (m *AgentRunMutation) TriggerIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldTriggerID]
	return ok
}

// ResetTriggerID resets all changes to the "trigger_id" field.
func (m *AgentRunMutation) ResetTriggerID() {
	m.trigger_id = nil
	delete(m.clearedFields, agentrun.FieldTriggerID)
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentrun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentrun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentrun.FieldCompletedAt)
}

// SetTotalSteps sets the "total_steps" field.
func (m *AgentRunMutation) SetTotalSteps(i int) {
	m.total_steps = &i
	m.addtotal_steps = nil
}

// TotalSteps returns the value of the "total_steps" field in the mutation.
func (m *AgentRunMutation) TotalSteps() (r int, exists bool) {
	v := m.total_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSteps returns the old "total_steps" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTotalSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSteps: %w", err)
	}
	return oldValue.TotalSteps, nil
}

// AddTotalSteps adds i to the "total_steps" field.
func (m *AgentRunMutation) AddTotalSteps(i int) {
	if m.addtotal_steps != nil {
		*m.addtotal_steps += i
	} else {
		m.addtotal_steps = &i
	}
}

// AddedTotalSteps returns the value that was added to the "total_steps" field in this mutation.
func (m *AgentRunMutation) AddedTotalSteps() (r int, exists bool) {
	v := m.addtotal_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSteps resets all changes to the "total_steps" field.
func (m *AgentRunMutation) ResetTotalSteps() {
	m.total_steps = nil
	m.addtotal_steps = nil
}

// SetTokenUsage sets the "token_usage" field.
func (m *AgentRunMutation) SetTokenUsage(i int) {
	m.token_usage = &i
	m.addtoken_usage = nil
}

// TokenUsage returns the value of the "token_usage" field in the mutation.
func (m *AgentRunMutation) TokenUsage() (r int, exists bool) {
	v := m.token_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenUsage returns the old "token_usage" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldTokenUsage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenUsage: %w", err)
	}
	return oldValue.TokenUsage, nil
}

// AddTokenUsage adds i to the "token_usage" field.
func (m *AgentRunMutation) AddTokenUsage(i int) {
	if m.addtoken_usage != nil {
		*m.addtoken_usage += i
	} else {
		m.addtoken_usage = &i
	}
}

// AddedTokenUsage returns the value that was added to the "token_usage" field in this mutation.
func (m *AgentRunMutation) AddedTokenUsage() (r int, exists bool) {
	v := m.addtoken_usage
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenUsage resets all changes to the "token_usage" field.
func (m *AgentRunMutation) ResetTokenUsage() {
	m.token_usage = nil
	m.addtoken_usage = nil
}

// SetInitialState sets the "initial_state" field.
func (m *AgentRunMutation) SetInitialState(value map[string]interface{}) {
	m.initial_state = &value
}

// InitialState returns the value of the "initial_state" field in the mutation.
func (m *AgentRunMutation) InitialState() (r map[string]interface{}, exists bool) {
	v := m.initial_state
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialState returns the old "initial_state" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldInitialState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialState: %w", err)
	}
	return oldValue.InitialState, nil
}

// ClearInitialState clears the value of the "initial_state" field.
func (m *AgentRunMutation) ClearInitialState() {
	m.initial_state = nil
	m.clearedFields[agentrun.FieldInitialState] = struct{}{}
}

// InitialStateCleared returns if the "initial_state" field was cleared in this mutation.
func (m *AgentRunMutation) InitialStateCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldInitialState]
	return ok
}

// ResetInitialState resets all changes to the "initial_state" field.
func (m *AgentRunMutation) ResetInitialState() {
	m.initial_state = nil
	delete(m.clearedFields, agentrun.FieldInitialState)
}

// SetFinalState sets the "final_state" field.
func (m *AgentRunMutation) SetFinalState(value map[string]interface{}) {
	m.final_state = &value
}

// FinalState returns the value of the "final_state" field in the mutation.
func (m *AgentRunMutation) FinalState() (r map[string]interface{}, exists bool) {
	v := m.final_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalState returns the old "final_state" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldFinalState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalState: %w", err)
	}
	return oldValue.FinalState, nil
}

// ClearFinalState clears the value of the "final_state" field.
func (m *AgentRunMutation) ClearFinalState() {
	m.final_state = nil
	m.clearedFields[agentrun.FieldFinalState] = struct{}{}
}

// FinalStateCleared returns if the "final_state" field was cleared in this mutation.
func (m *AgentRunMutation) FinalStateCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldFinalState]
	return ok
}

// ResetFinalState resets all changes to the "final_state" field.
func (m *AgentRunMutation) ResetFinalState() {
	m.final_state = nil
	delete(m.clearedFields, agentrun.FieldFinalState)
}

// SetCurrentStep sets the "current_step" field.
func (m *AgentRunMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *AgentRunMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *AgentRunMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[agentrun.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *AgentRunMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *AgentRunMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, agentrun.FieldCurrentStep)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentrun.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *AgentRunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AgentRunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AgentRunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[agentrun.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AgentRunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AgentRunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, agentrun.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *AgentRunMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *AgentRunMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *AgentRunMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[agentrun.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *AgentRunMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *AgentRunMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, agentrun.FieldLastHeartbeatAt)
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by ids.
func (m *AgentRunMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the AgentStep entity.
func (m *AgentRunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the AgentStep entity was cleared.
func (m *AgentRunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the AgentStep entity by IDs.
func (m *AgentRunMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the AgentStep entity.
func (m *AgentRunMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *AgentRunMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *AgentRunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddSuspensionIDs adds the "suspensions" edge to the AgentSuspension entity by ids.
func (m *AgentRunMutation) AddSuspensionIDs(ids ...string) {
	if m.suspensions == nil {
		m.suspensions = make(map[string]struct{})
	}
	for i := range ids {
		m.suspensions[ids[i]] = struct{}{}
	}
}

// ClearSuspensions clears the "suspensions" edge to the AgentSuspension entity.
func (m *AgentRunMutation) ClearSuspensions() {
	m.clearedsuspensions = true
}

// SuspensionsCleared reports if the "suspensions" edge to the AgentSuspension entity was cleared.
func (m *AgentRunMutation) SuspensionsCleared() bool {
	return m.clearedsuspensions
}

// RemoveSuspensionIDs removes the "suspensions" edge to the AgentSuspension entity by IDs.
func (m *AgentRunMutation) RemoveSuspensionIDs(ids ...string) {
	if m.removedsuspensions == nil {
		m.removedsuspensions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.suspensions, ids[i])
		m.removedsuspensions[ids[i]] = struct{}{}
	}
}

// RemovedSuspensions returns the removed IDs of the "suspensions" edge to the AgentSuspension entity.
func (m *AgentRunMutation) RemovedSuspensionsIDs() (ids []string) {
	for id := range m.removedsuspensions {
		ids = append(ids, id)
	}
	return
}

// SuspensionsIDs returns the "suspensions" edge IDs in the mutation.
func (m *AgentRunMutation) SuspensionsIDs() (ids []string) {
	for id := range m.suspensions {
		ids = append(ids, id)
	}
	return
}

// ResetSuspensions resets all changes to the "suspensions" edge.
func (m *AgentRunMutation) ResetSuspensions() {
	m.suspensions = nil
	m.clearedsuspensions = false
	m.removedsuspensions = nil
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.agent_type != nil {
		fields = append(fields, agentrun.FieldAgentType)
	}
	if m.trigger_type != nil {
		fields = append(fields, agentrun.FieldTriggerType)
	}
	if m.trigger_id != nil {
		fields = append(fields, agentrun.FieldTriggerID)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	if m.total_steps != nil {
		fields = append(fields, agentrun.FieldTotalSteps)
	}
	if m.token_usage != nil {
		fields = append(fields, agentrun.FieldTokenUsage)
	}
	if m.initial_state != nil {
		fields = append(fields, agentrun.FieldInitialState)
	}
	if m.final_state != nil {
		fields = append(fields, agentrun.FieldFinalState)
	}
	if m.current_step != nil {
		fields = append(fields, agentrun.FieldCurrentStep)
	}
	if m.error_message != nil {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, agentrun.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, agentrun.FieldLastHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldAgentType:
		return m.AgentType()
	case agentrun.FieldTriggerType:
		return m.TriggerType()
	case agentrun.FieldTriggerID:
		return m.TriggerID()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldCompletedAt:
		return m.CompletedAt()
	case agentrun.FieldTotalSteps:
		return m.TotalSteps()
	case agentrun.FieldTokenUsage:
		return m.TokenUsage()
	case agentrun.FieldInitialState:
		return m.InitialState()
	case agentrun.FieldFinalState:
		return m.FinalState()
	case agentrun.FieldCurrentStep:
		return m.CurrentStep()
	case agentrun.FieldErrorMessage:
		return m.ErrorMessage()
	case agentrun.FieldPodID:
		return m.PodID()
	case agentrun.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentrun.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case agentrun.FieldTriggerID:
		return m.OldTriggerID(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentrun.FieldTotalSteps:
		return m.OldTotalSteps(ctx)
	case agentrun.FieldTokenUsage:
		return m.OldTokenUsage(ctx)
	case agentrun.FieldInitialState:
		return m.OldInitialState(ctx)
	case agentrun.FieldFinalState:
		return m.OldFinalState(ctx)
	case agentrun.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case agentrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentrun.FieldPodID:
		return m.OldPodID(ctx)
	case agentrun.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentrun.FieldTriggerType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case agentrun.FieldTriggerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerID(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentrun.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSteps(v)
		return nil
	case agentrun.FieldTokenUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenUsage(v)
		return nil
	case agentrun.FieldInitialState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialState(v)
		return nil
	case agentrun.FieldFinalState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalState(v)
		return nil
	case agentrun.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case agentrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentrun.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case agentrun.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_steps != nil {
		fields = append(fields, agentrun.FieldTotalSteps)
	}
	if m.addtoken_usage != nil {
		fields = append(fields, agentrun.FieldTokenUsage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldTotalSteps:
		return m.AddedTotalSteps()
	case agentrun.FieldTokenUsage:
		return m.AddedTokenUsage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSteps(v)
		return nil
	case agentrun.FieldTokenUsage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenUsage(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldTriggerID) {
		fields = append(fields, agentrun.FieldTriggerID)
	}
	if m.FieldCleared(agentrun.FieldStartedAt) {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.FieldCleared(agentrun.FieldCompletedAt) {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	if m.FieldCleared(agentrun.FieldInitialState) {
		fields = append(fields, agentrun.FieldInitialState)
	}
	if m.FieldCleared(agentrun.FieldFinalState) {
		fields = append(fields, agentrun.FieldFinalState)
	}
	if m.FieldCleared(agentrun.FieldCurrentStep) {
		fields = append(fields, agentrun.FieldCurrentStep)
	}
	if m.FieldCleared(agentrun.FieldErrorMessage) {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.FieldCleared(agentrun.FieldPodID) {
		fields = append(fields, agentrun.FieldPodID)
	}
	if m.FieldCleared(agentrun.FieldLastHeartbeatAt) {
		fields = append(fields, agentrun.FieldLastHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldTriggerID:
		m.ClearTriggerID()
		return nil
	case agentrun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentrun.FieldInitialState:
		m.ClearInitialState()
		return nil
	case agentrun.FieldFinalState:
		m.ClearFinalState()
		return nil
	case agentrun.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case agentrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentrun.FieldPodID:
		m.ClearPodID()
		return nil
	case agentrun.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentrun.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case agentrun.FieldTriggerID:
		m.ResetTriggerID()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentrun.FieldTotalSteps:
		m.ResetTotalSteps()
		return nil
	case agentrun.FieldTokenUsage:
		m.ResetTokenUsage()
		return nil
	case agentrun.FieldInitialState:
		m.ResetInitialState()
		return nil
	case agentrun.FieldFinalState:
		m.ResetFinalState()
		return nil
	case agentrun.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case agentrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentrun.FieldPodID:
		m.ResetPodID()
		return nil
	case agentrun.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.suspensions != nil {
		edges = append(edges, agentrun.EdgeSuspensions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeSuspensions:
		ids := make([]ent.Value, 0, len(m.suspensions))
		for id := range m.suspensions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.removedsuspensions != nil {
		edges = append(edges, agentrun.EdgeSuspensions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case agentrun.EdgeSuspensions:
		ids := make([]ent.Value, 0, len(m.removedsuspensions))
		for id := range m.removedsuspensions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, agentrun.EdgeSteps)
	}
	if m.clearedsuspensions {
		edges = append(edges, agentrun.EdgeSuspensions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeSteps:
		return m.clearedsteps
	case agentrun.EdgeSuspensions:
		return m.clearedsuspensions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeSteps:
		m.ResetSteps()
		return nil
	case agentrun.EdgeSuspensions:
		m.ResetSuspensions()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// AgentStepMutation represents an operation that mutates the AgentStep nodes in the graph.
type AgentStepMutation struct {
	config
	op               Op
	typ              string
	id               *string
	step_name        *string
	step_index       *int
	addstep_index    *int
	input_snapshot   *map[string]interface{}
	output_snapshot  *map[string]interface{}
	duration_ms      *int
	addduration_ms   *int
	status           *agentstep.Status
	tokens           *int
	addtokens        *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	decisions        map[string]struct{}
	removeddecisions map[string]struct{}
	cleareddecisions bool
	done             bool
	oldValue         func(context.Context) (*AgentStep, error)
	predicates       []predicate.AgentStep
}

var _ ent.Mutation = (*AgentStepMutation)(nil)

// agentstepOption allows management of the mutation configuration using functional options.
type agentstepOption func(*AgentStepMutation)

// newAgentStepMutation creates new mutation for the AgentStep entity.
func newAgentStepMutation(c config, op Op, opts ...agentstepOption) *AgentStepMutation {
	m := &AgentStepMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStepID sets the ID field of the mutation.
func withAgentStepID(id string) agentstepOption {
	return func(m *AgentStepMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentStep
		)
		m.oldValue = func(ctx context.Context) (*AgentStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentStep sets the old AgentStep of the mutation.
func withAgentStep(node *AgentStep) agentstepOption {
	return func(m *AgentStepMutation) {
		m.oldValue = func(context.Context) (*AgentStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentStep entities.
func (m *AgentStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentStepMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentStepMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentStepMutation) ResetRunID() {
	m.run = nil
}

// SetStepName sets the "step_name" field.
func (m *AgentStepMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *AgentStepMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *AgentStepMutation) ResetStepName() {
	m.step_name = nil
}

// SetStepIndex sets the "step_index" field.
func (m *AgentStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *AgentStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *AgentStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *AgentStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *AgentStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetInputSnapshot sets the "input_snapshot" field.
func (m *AgentStepMutation) SetInputSnapshot(value map[string]interface{}) {
	m.input_snapshot = &value
}

// InputSnapshot returns the value of the "input_snapshot" field in the mutation.
func (m *AgentStepMutation) InputSnapshot() (r map[string]interface{}, exists bool) {
	v := m.input_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSnapshot returns the old "input_snapshot" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldInputSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSnapshot: %w", err)
	}
	return oldValue.InputSnapshot, nil
}

// ClearInputSnapshot clears the value of the "input_snapshot" field.
func (m *AgentStepMutation) ClearInputSnapshot() {
	m.input_snapshot = nil
	m.clearedFields[agentstep.FieldInputSnapshot] = struct{}{}
}

// InputSnapshotCleared returns if the "input_snapshot" field was cleared in this mutation.
func (m *AgentStepMutation) InputSnapshotCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldInputSnapshot]
	return ok
}

// ResetInputSnapshot resets all changes to the "input_snapshot" field.
func (m *AgentStepMutation) ResetInputSnapshot() {
	m.input_snapshot = nil
	delete(m.clearedFields, agentstep.FieldInputSnapshot)
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (m *AgentStepMutation) SetOutputSnapshot(value map[string]interface{}) {
	m.output_snapshot = &value
}

// OutputSnapshot returns the value of the "output_snapshot" field in the mutation.
func (m *AgentStepMutation) OutputSnapshot() (r map[string]interface{}, exists bool) {
	v := m.output_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSnapshot returns the old "output_snapshot" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldOutputSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSnapshot: %w", err)
	}
	return oldValue.OutputSnapshot, nil
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (m *AgentStepMutation) ClearOutputSnapshot() {
	m.output_snapshot = nil
	m.clearedFields[agentstep.FieldOutputSnapshot] = struct{}{}
}

// OutputSnapshotCleared returns if the "output_snapshot" field was cleared in this mutation.
func (m *AgentStepMutation) OutputSnapshotCleared() bool {
	_, ok := m.clearedFields[agentstep.FieldOutputSnapshot]
	return ok
}

// ResetOutputSnapshot resets all changes to the "output_snapshot" field.
func (m *AgentStepMutation) ResetOutputSnapshot() {
	m.output_snapshot = nil
	delete(m.clearedFields, agentstep.FieldOutputSnapshot)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentStepMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentStepMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentStepMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentStepMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetStatus sets the "status" field.
func (m *AgentStepMutation) SetStatus(a agentstep.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentStepMutation) Status() (r agentstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldStatus(ctx context.Context) (v agentstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentStepMutation) ResetStatus() {
	m.status = nil
}

// SetTokens sets the "tokens" field.
func (m *AgentStepMutation) SetTokens(i int) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *AgentStepMutation) Tokens() (r int, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *AgentStepMutation) AddTokens(i int) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *AgentStepMutation) AddedTokens() (r int, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *AgentStepMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentStep entity.
// If the AgentStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *AgentStepMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentstep.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *AgentStepMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentStepMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentStepMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddDecisionIDs adds the "decisions" edge to the AgentDecision entity by ids.
func (m *AgentStepMutation) AddDecisionIDs(ids ...string) {
	if m.decisions == nil {
		m.decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the AgentDecision entity.
func (m *AgentStepMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the AgentDecision entity was cleared.
func (m *AgentStepMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the AgentDecision entity by IDs.
func (m *AgentStepMutation) RemoveDecisionIDs(ids ...string) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the AgentDecision entity.
func (m *AgentStepMutation) RemovedDecisionsIDs() (ids []string) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *AgentStepMutation) DecisionsIDs() (ids []string) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *AgentStepMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// Where appends a list predicates to the AgentStepMutation builder.
func (m *AgentStepMutation) Where(ps ...predicate.AgentStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentStep).
func (m *AgentStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStepMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.run != nil {
		fields = append(fields, agentstep.FieldRunID)
	}
	if m.step_name != nil {
		fields = append(fields, agentstep.FieldStepName)
	}
	if m.step_index != nil {
		fields = append(fields, agentstep.FieldStepIndex)
	}
	if m.input_snapshot != nil {
		fields = append(fields, agentstep.FieldInputSnapshot)
	}
	if m.output_snapshot != nil {
		fields = append(fields, agentstep.FieldOutputSnapshot)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentstep.FieldDurationMs)
	}
	if m.status != nil {
		fields = append(fields, agentstep.FieldStatus)
	}
	if m.tokens != nil {
		fields = append(fields, agentstep.FieldTokens)
	}
	if m.created_at != nil {
		fields = append(fields, agentstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldRunID:
		return m.RunID()
	case agentstep.FieldStepName:
		return m.StepName()
	case agentstep.FieldStepIndex:
		return m.StepIndex()
	case agentstep.FieldInputSnapshot:
		return m.InputSnapshot()
	case agentstep.FieldOutputSnapshot:
		return m.OutputSnapshot()
	case agentstep.FieldDurationMs:
		return m.DurationMs()
	case agentstep.FieldStatus:
		return m.Status()
	case agentstep.FieldTokens:
		return m.Tokens()
	case agentstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstep.FieldRunID:
		return m.OldRunID(ctx)
	case agentstep.FieldStepName:
		return m.OldStepName(ctx)
	case agentstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case agentstep.FieldInputSnapshot:
		return m.OldInputSnapshot(ctx)
	case agentstep.FieldOutputSnapshot:
		return m.OldOutputSnapshot(ctx)
	case agentstep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentstep.FieldStatus:
		return m.OldStatus(ctx)
	case agentstep.FieldTokens:
		return m.OldTokens(ctx)
	case agentstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentstep.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case agentstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case agentstep.FieldInputSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSnapshot(v)
		return nil
	case agentstep.FieldOutputSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSnapshot(v)
		return nil
	case agentstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentstep.FieldStatus:
		v, ok := value.(agentstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentstep.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case agentstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, agentstep.FieldStepIndex)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentstep.FieldDurationMs)
	}
	if m.addtokens != nil {
		fields = append(fields, agentstep.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentstep.FieldStepIndex:
		return m.AddedStepIndex()
	case agentstep.FieldDurationMs:
		return m.AddedDurationMs()
	case agentstep.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	case agentstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case agentstep.FieldTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown AgentStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstep.FieldInputSnapshot) {
		fields = append(fields, agentstep.FieldInputSnapshot)
	}
	if m.FieldCleared(agentstep.FieldOutputSnapshot) {
		fields = append(fields, agentstep.FieldOutputSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStepMutation) ClearField(name string) error {
	switch name {
	case agentstep.FieldInputSnapshot:
		m.ClearInputSnapshot()
		return nil
	case agentstep.FieldOutputSnapshot:
		m.ClearOutputSnapshot()
		return nil
	}
	return fmt.Errorf("unknown AgentStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStepMutation) ResetField(name string) error {
	switch name {
	case agentstep.FieldRunID:
		m.ResetRunID()
		return nil
	case agentstep.FieldStepName:
		m.ResetStepName()
		return nil
	case agentstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case agentstep.FieldInputSnapshot:
		m.ResetInputSnapshot()
		return nil
	case agentstep.FieldOutputSnapshot:
		m.ResetOutputSnapshot()
		return nil
	case agentstep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentstep.FieldStatus:
		m.ResetStatus()
		return nil
	case agentstep.FieldTokens:
		m.ResetTokens()
		return nil
	case agentstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, agentstep.EdgeRun)
	}
	if m.decisions != nil {
		edges = append(edges, agentstep.EdgeDecisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstep.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case agentstep.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddecisions != nil {
		edges = append(edges, agentstep.EdgeDecisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentstep.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, agentstep.EdgeRun)
	}
	if m.cleareddecisions {
		edges = append(edges, agentstep.EdgeDecisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStepMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstep.EdgeRun:
		return m.clearedrun
	case agentstep.EdgeDecisions:
		return m.cleareddecisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStepMutation) ClearEdge(name string) error {
	switch name {
	case agentstep.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStepMutation) ResetEdge(name string) error {
	switch name {
	case agentstep.EdgeRun:
		m.ResetRun()
		return nil
	case agentstep.EdgeDecisions:
		m.ResetDecisions()
		return nil
	}
	return fmt.Errorf("unknown AgentStep edge %s", name)
}

// AgentSuspensionMutation represents an operation that mutates the AgentSuspension nodes in the graph.
type AgentSuspensionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	resume_condition  *string
	suspended_at_step *string
	timeout_at        *time.Time
	resume_data       *map[string]interface{}
	suspended_at      *time.Time
	resumed_at        *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*AgentSuspension, error)
	predicates        []predicate.AgentSuspension
}

var _ ent.Mutation = (*AgentSuspensionMutation)(nil)

// agentsuspensionOption allows management of the mutation configuration using functional options.
type agentsuspensionOption func(*AgentSuspensionMutation)

// newAgentSuspensionMutation creates new mutation for the AgentSuspension entity.
func newAgentSuspensionMutation(c config, op Op, opts ...agentsuspensionOption) *AgentSuspensionMutation {
	m := &AgentSuspensionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSuspension,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSuspensionID sets the ID field of the mutation.
func withAgentSuspensionID(id string) agentsuspensionOption {
	return func(m *AgentSuspensionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSuspension
		)
		m.oldValue = func(ctx context.Context) (*AgentSuspension, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSuspension.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSuspension sets the old AgentSuspension of the mutation.
func withAgentSuspension(node *AgentSuspension) agentsuspensionOption {
	return func(m *AgentSuspensionMutation) {
		m.oldValue = func(context.Context) (*AgentSuspension, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSuspensionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSuspensionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSuspension entities.
func (m *AgentSuspensionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSuspensionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSuspensionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSuspension.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentSuspensionMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentSuspensionMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentSuspensionMutation) ResetRunID() {
	m.run = nil
}

// SetResumeCondition sets the "resume_condition" field.
func (m *AgentSuspensionMutation) SetResumeCondition(s string) {
	m.resume_condition = &s
}

// ResumeCondition returns the value of the "resume_condition" field in the mutation.
func (m *AgentSuspensionMutation) ResumeCondition() (r string, exists bool) {
	v := m.resume_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeCondition returns the old "resume_condition" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldResumeCondition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeCondition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeCondition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeCondition: %w", err)
	}
	return oldValue.ResumeCondition, nil
}

// ResetResumeCondition resets all changes to the "resume_condition" field.
func (m *AgentSuspensionMutation) ResetResumeCondition() {
	m.resume_condition = nil
}

// SetSuspendedAtStep sets the "suspended_at_step" field.
func (m *AgentSuspensionMutation) SetSuspendedAtStep(s string) {
	m.suspended_at_step = &s
}

// SuspendedAtStep returns the value of the "suspended_at_step" field in the mutation.
func (m *AgentSuspensionMutation) SuspendedAtStep() (r string, exists bool) {
	v := m.suspended_at_step
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedAtStep returns the old "suspended_at_step" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldSuspendedAtStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedAtStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedAtStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedAtStep: %w", err)
	}
	return oldValue.SuspendedAtStep, nil
}

// ResetSuspendedAtStep resets all changes to the "suspended_at_step" field.
func (m *AgentSuspensionMutation) ResetSuspendedAtStep() {
	m.suspended_at_step = nil
}

// SetTimeoutAt sets the "timeout_at" field.
func (m *AgentSuspensionMutation) SetTimeoutAt(t time.Time) {
	m.timeout_at = &t
}

// TimeoutAt returns the value of the "timeout_at" field in the mutation.
func (m *AgentSuspensionMutation) TimeoutAt() (r time.Time, exists bool) {
	v := m.timeout_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutAt returns the old "timeout_at" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldTimeoutAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutAt: %w", err)
	}
	return oldValue.TimeoutAt, nil
}

// ResetTimeoutAt resets all changes to the "timeout_at" field.
func (m *AgentSuspensionMutation) ResetTimeoutAt() {
	m.timeout_at = nil
}

// SetResumeData sets the "resume_data" field.
func (m *AgentSuspensionMutation) SetResumeData(value map[string]interface{}) {
	m.resume_data = &value
}

// ResumeData returns the value of the "resume_data" field in the mutation.
func (m *AgentSuspensionMutation) ResumeData() (r map[string]interface{}, exists bool) {
	v := m.resume_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeData returns the old "resume_data" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldResumeData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeData: %w", err)
	}
	return oldValue.ResumeData, nil
}

// ClearResumeData clears the value of the "resume_data" field.
func (m *AgentSuspensionMutation) ClearResumeData() {
	m.resume_data = nil
	m.clearedFields[agentsuspension.FieldResumeData] = struct{}{}
}

// ResumeDataCleared returns if the "resume_data" field was cleared in this mutation.
func (m *AgentSuspensionMutation) ResumeDataCleared() bool {
	_, ok := m.clearedFields[agentsuspension.FieldResumeData]
	return ok
}

// ResetResumeData resets all changes to the "resume_data" field.
func (m *AgentSuspensionMutation) ResetResumeData() {
	m.resume_data = nil
	delete(m.clearedFields, agentsuspension.FieldResumeData)
}

// SetSuspendedAt sets the "suspended_at" field.
func (m *AgentSuspensionMutation) SetSuspendedAt(t time.Time) {
	m.suspended_at = &t
}

// SuspendedAt returns the value of the "suspended_at" field in the mutation.
func (m *AgentSuspensionMutation) SuspendedAt() (r time.Time, exists bool) {
	v := m.suspended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedAt returns the old "suspended_at" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldSuspendedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedAt: %w", err)
	}
	return oldValue.SuspendedAt, nil
}

// ResetSuspendedAt resets all changes to the "suspended_at" field.
func (m *AgentSuspensionMutation) ResetSuspendedAt() {
	m.suspended_at = nil
}

// SetResumedAt sets the "resumed_at" field.
func (m *AgentSuspensionMutation) SetResumedAt(t time.Time) {
	m.resumed_at = &t
}

// ResumedAt returns the value of the "resumed_at" field in the mutation.
func (m *AgentSuspensionMutation) ResumedAt() (r time.Time, exists bool) {
	v := m.resumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResumedAt returns the old "resumed_at" field's value of the AgentSuspension entity.
// If the AgentSuspension object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSuspensionMutation) OldResumedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumedAt: %w", err)
	}
	return oldValue.ResumedAt, nil
}

// ClearResumedAt clears the value of the "resumed_at" field.
func (m *AgentSuspensionMutation) ClearResumedAt() {
	m.resumed_at = nil
	m.clearedFields[agentsuspension.FieldResumedAt] = struct{}{}
}

// ResumedAtCleared returns if the "resumed_at" field was cleared in this mutation.
func (m *AgentSuspensionMutation) ResumedAtCleared() bool {
	_, ok := m.clearedFields[agentsuspension.FieldResumedAt]
	return ok
}

// ResetResumedAt resets all changes to the "resumed_at" field.
func (m *AgentSuspensionMutation) ResetResumedAt() {
	m.resumed_at = nil
	delete(m.clearedFields, agentsuspension.FieldResumedAt)
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *AgentSuspensionMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentsuspension.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *AgentSuspensionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentSuspensionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentSuspensionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the AgentSuspensionMutation builder.
func (m *AgentSuspensionMutation) Where(ps ...predicate.AgentSuspension) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSuspensionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSuspensionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSuspension, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSuspensionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSuspensionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSuspension).
func (m *AgentSuspensionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSuspensionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, agentsuspension.FieldRunID)
	}
	if m.resume_condition != nil {
		fields = append(fields, agentsuspension.FieldResumeCondition)
	}
	if m.suspended_at_step != nil {
		fields = append(fields, agentsuspension.FieldSuspendedAtStep)
	}
	if m.timeout_at != nil {
		fields = append(fields, agentsuspension.FieldTimeoutAt)
	}
	if m.resume_data != nil {
		fields = append(fields, agentsuspension.FieldResumeData)
	}
	if m.suspended_at != nil {
		fields = append(fields, agentsuspension.FieldSuspendedAt)
	}
	if m.resumed_at != nil {
		fields = append(fields, agentsuspension.FieldResumedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSuspensionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsuspension.FieldRunID:
		return m.RunID()
	case agentsuspension.FieldResumeCondition:
		return m.ResumeCondition()
	case agentsuspension.FieldSuspendedAtStep:
		return m.SuspendedAtStep()
	case agentsuspension.FieldTimeoutAt:
		return m.TimeoutAt()
	case agentsuspension.FieldResumeData:
		return m.ResumeData()
	case agentsuspension.FieldSuspendedAt:
		return m.SuspendedAt()
	case agentsuspension.FieldResumedAt:
		return m.ResumedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSuspensionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsuspension.FieldRunID:
		return m.OldRunID(ctx)
	case agentsuspension.FieldResumeCondition:
		return m.OldResumeCondition(ctx)
	case agentsuspension.FieldSuspendedAtStep:
		return m.OldSuspendedAtStep(ctx)
	case agentsuspension.FieldTimeoutAt:
		return m.OldTimeoutAt(ctx)
	case agentsuspension.FieldResumeData:
		return m.OldResumeData(ctx)
	case agentsuspension.FieldSuspendedAt:
		return m.OldSuspendedAt(ctx)
	case agentsuspension.FieldResumedAt:
		return m.OldResumedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSuspension field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSuspensionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsuspension.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentsuspension.FieldResumeCondition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeCondition(v)
		return nil
	case agentsuspension.FieldSuspendedAtStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedAtStep(v)
		return nil
	case agentsuspension.FieldTimeoutAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutAt(v)
		return nil
	case agentsuspension.FieldResumeData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeData(v)
		return nil
	case agentsuspension.FieldSuspendedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedAt(v)
		return nil
	case agentsuspension.FieldResumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSuspension field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSuspensionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSuspensionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSuspensionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentSuspension numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSuspensionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsuspension.FieldResumeData) {
		fields = append(fields, agentsuspension.FieldResumeData)
	}
	if m.FieldCleared(agentsuspension.FieldResumedAt) {
		fields = append(fields, agentsuspension.FieldResumedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSuspensionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSuspensionMutation) ClearField(name string) error {
	switch name {
	case agentsuspension.FieldResumeData:
		m.ClearResumeData()
		return nil
	case agentsuspension.FieldResumedAt:
		m.ClearResumedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSuspension nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSuspensionMutation) ResetField(name string) error {
	switch name {
	case agentsuspension.FieldRunID:
		m.ResetRunID()
		return nil
	case agentsuspension.FieldResumeCondition:
		m.ResetResumeCondition()
		return nil
	case agentsuspension.FieldSuspendedAtStep:
		m.ResetSuspendedAtStep()
		return nil
	case agentsuspension.FieldTimeoutAt:
		m.ResetTimeoutAt()
		return nil
	case agentsuspension.FieldResumeData:
		m.ResetResumeData()
		return nil
	case agentsuspension.FieldSuspendedAt:
		m.ResetSuspendedAt()
		return nil
	case agentsuspension.FieldResumedAt:
		m.ResetResumedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSuspension field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSuspensionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, agentsuspension.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSuspensionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsuspension.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSuspensionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSuspensionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSuspensionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, agentsuspension.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSuspensionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsuspension.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSuspensionMutation) ClearEdge(name string) error {
	switch name {
	case agentsuspension.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentSuspension unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSuspensionMutation) ResetEdge(name string) error {
	switch name {
	case agentsuspension.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown AgentSuspension edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	created_at      *time.Time
	automation_type *string
	action_name     *string
	model           *string
	record_id       *int64
	addrecord_id    *int64
	status          *auditlog.Status
	confidence      *float64
	addconfidence   *float64
	reasoning       *string
	input_snapshot  *map[string]interface{}
	output_snapshot *map[string]interface{}
	changes_made    *map[string]interface{}
	error_message   *string
	executed_at     *time.Time
	approved_by     *string
	tokens_used     *int
	addtokens_used  *int
	scan_day        *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AuditLog, error)
	predicates      []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAutomationType sets the "automation_type" field.
func (m *AuditLogMutation) SetAutomationType(s string) {
	m.automation_type = &s
}

// AutomationType returns the value of the "automation_type" field in the mutation.
func (m *AuditLogMutation) AutomationType() (r string, exists bool) {
	v := m.automation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAutomationType returns the old "automation_type" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAutomationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutomationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutomationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutomationType: %w", err)
	}
	return oldValue.AutomationType, nil
}

// ResetAutomationType resets all changes to the "automation_type" field.
func (m *AuditLogMutation) ResetAutomationType() {
	m.automation_type = nil
}

// SetActionName sets the "action_name" field.
func (m *AuditLogMutation) SetActionName(s string) {
	m.action_name = &s
}

// ActionName returns the value of the "action_name" field in the mutation.
func (m *AuditLogMutation) ActionName() (r string, exists bool) {
	v := m.action_name
	if v == nil {
		return
	}
	return *v, true
}

// OldActionName returns the old "action_name" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionName: %w", err)
	}
	return oldValue.ActionName, nil
}

// ResetActionName resets all changes to the "action_name" field.
func (m *AuditLogMutation) ResetActionName() {
	m.action_name = nil
}

// SetModel sets the "model" field.
func (m *AuditLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AuditLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AuditLogMutation) ResetModel() {
	m.model = nil
}

// SetRecordID sets the "record_id" field.
func (m *AuditLogMutation) SetRecordID(i int64) {
	m.record_id = &i
	m.addrecord_id = nil
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *AuditLogMutation) RecordID() (r int64, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldRecordID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// AddRecordID adds i to the "record_id" field.
func (m *AuditLogMutation) AddRecordID(i int64) {
	if m.addrecord_id != nil {
		*m.addrecord_id += i
	} else {
		m.addrecord_id = &i
	}
}

// AddedRecordID returns the value that was added to the "record_id" field in this mutation.
func (m *AuditLogMutation) AddedRecordID() (r int64, exists bool) {
	v := m.addrecord_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *AuditLogMutation) ResetRecordID() {
	m.record_id = nil
	m.addrecord_id = nil
}

// SetStatus sets the "status" field.
func (m *AuditLogMutation) SetStatus(a auditlog.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditLogMutation) Status() (r auditlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldStatus(ctx context.Context) (v auditlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditLogMutation) ResetStatus() {
	m.status = nil
}

// SetConfidence sets the "confidence" field.
func (m *AuditLogMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AuditLogMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AuditLogMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AuditLogMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AuditLogMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetReasoning sets the "reasoning" field.
func (m *AuditLogMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *AuditLogMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *AuditLogMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[auditlog.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *AuditLogMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *AuditLogMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, auditlog.FieldReasoning)
}

// SetInputSnapshot sets the "input_snapshot" field.
func (m *AuditLogMutation) SetInputSnapshot(value map[string]interface{}) {
	m.input_snapshot = &value
}

// InputSnapshot returns the value of the "input_snapshot" field in the mutation.
func (m *AuditLogMutation) InputSnapshot() (r map[string]interface{}, exists bool) {
	v := m.input_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSnapshot returns the old "input_snapshot" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldInputSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSnapshot: %w", err)
	}
	return oldValue.InputSnapshot, nil
}

// ClearInputSnapshot clears the value of the "input_snapshot" field.
func (m *AuditLogMutation) ClearInputSnapshot() {
	m.input_snapshot = nil
	m.clearedFields[auditlog.FieldInputSnapshot] = struct{}{}
}

// InputSnapshotCleared returns if the "input_snapshot" field was cleared in this mutation.
func (m *AuditLogMutation) InputSnapshotCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldInputSnapshot]
	return ok
}

// ResetInputSnapshot resets all changes to the "input_snapshot" field.
func (m *AuditLogMutation) ResetInputSnapshot() {
	m.input_snapshot = nil
	delete(m.clearedFields, auditlog.FieldInputSnapshot)
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (m *AuditLogMutation) SetOutputSnapshot(value map[string]interface{}) {
	m.output_snapshot = &value
}

// OutputSnapshot returns the value of the "output_snapshot" field in the mutation.
func (m *AuditLogMutation) OutputSnapshot() (r map[string]interface{}, exists bool) {
	v := m.output_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputSnapshot returns the old "output_snapshot" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldOutputSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputSnapshot: %w", err)
	}
	return oldValue.OutputSnapshot, nil
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (m *AuditLogMutation) ClearOutputSnapshot() {
	m.output_snapshot = nil
	m.clearedFields[auditlog.FieldOutputSnapshot] = struct{}{}
}

// OutputSnapshotCleared returns if the "output_snapshot" field was cleared in this mutation.
func (m *AuditLogMutation) OutputSnapshotCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldOutputSnapshot]
	return ok
}

// ResetOutputSnapshot resets all changes to the "output_snapshot" field.
func (m *AuditLogMutation) ResetOutputSnapshot() {
	m.output_snapshot = nil
	delete(m.clearedFields, auditlog.FieldOutputSnapshot)
}

// SetChangesMade sets the "changes_made" field.
func (m *AuditLogMutation) SetChangesMade(value map[string]interface{}) {
	m.changes_made = &value
}

// ChangesMade returns the value of the "changes_made" field in the mutation.
func (m *AuditLogMutation) ChangesMade() (r map[string]interface{}, exists bool) {
	v := m.changes_made
	if v == nil {
		return
	}
	return *v, true
}

// OldChangesMade returns the old "changes_made" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldChangesMade(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangesMade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangesMade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangesMade: %w", err)
	}
	return oldValue.ChangesMade, nil
}

// ClearChangesMade clears the value of the "changes_made" field.
func (m *AuditLogMutation) ClearChangesMade() {
	m.changes_made = nil
	m.clearedFields[auditlog.FieldChangesMade] = struct{}{}
}

// ChangesMadeCleared returns if the "changes_made" field was cleared in this mutation.
func (m *AuditLogMutation) ChangesMadeCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldChangesMade]
	return ok
}

// ResetChangesMade resets all changes to the "changes_made" field.
func (m *AuditLogMutation) ResetChangesMade() {
	m.changes_made = nil
	delete(m.clearedFields, auditlog.FieldChangesMade)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[auditlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, auditlog.FieldErrorMessage)
}

// SetExecutedAt sets the "executed_at" field.
func (m *AuditLogMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *AuditLogMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (m *AuditLogMutation) ClearExecutedAt() {
	m.executed_at = nil
	m.clearedFields[auditlog.FieldExecutedAt] = struct{}{}
}

// ExecutedAtCleared returns if the "executed_at" field was cleared in this mutation.
func (m *AuditLogMutation) ExecutedAtCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldExecutedAt]
	return ok
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *AuditLogMutation) ResetExecutedAt() {
	m.executed_at = nil
	delete(m.clearedFields, auditlog.FieldExecutedAt)
}

// SetApprovedBy sets the "approved_by" field.
func (m *AuditLogMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *AuditLogMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *AuditLogMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[auditlog.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *AuditLogMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *AuditLogMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, auditlog.FieldApprovedBy)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AuditLogMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AuditLogMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AuditLogMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AuditLogMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AuditLogMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetScanDay sets the "scan_day" field.
func (m *AuditLogMutation) SetScanDay(t time.Time) {
	m.scan_day = &t
}

// ScanDay returns the value of the "scan_day" field in the mutation.
func (m *AuditLogMutation) ScanDay() (r time.Time, exists bool) {
	v := m.scan_day
	if v == nil {
		return
	}
	return *v, true
}

// OldScanDay returns the old "scan_day" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldScanDay(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanDay: %w", err)
	}
	return oldValue.ScanDay, nil
}

// ClearScanDay clears the value of the "scan_day" field.
func (m *AuditLogMutation) ClearScanDay() {
	m.scan_day = nil
	m.clearedFields[auditlog.FieldScanDay] = struct{}{}
}

// ScanDayCleared returns if the "scan_day" field was cleared in this mutation.
func (m *AuditLogMutation) ScanDayCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldScanDay]
	return ok
}

// ResetScanDay resets all changes to the "scan_day" field.
func (m *AuditLogMutation) ResetScanDay() {
	m.scan_day = nil
	delete(m.clearedFields, auditlog.FieldScanDay)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.automation_type != nil {
		fields = append(fields, auditlog.FieldAutomationType)
	}
	if m.action_name != nil {
		fields = append(fields, auditlog.FieldActionName)
	}
	if m.model != nil {
		fields = append(fields, auditlog.FieldModel)
	}
	if m.record_id != nil {
		fields = append(fields, auditlog.FieldRecordID)
	}
	if m.status != nil {
		fields = append(fields, auditlog.FieldStatus)
	}
	if m.confidence != nil {
		fields = append(fields, auditlog.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, auditlog.FieldReasoning)
	}
	if m.input_snapshot != nil {
		fields = append(fields, auditlog.FieldInputSnapshot)
	}
	if m.output_snapshot != nil {
		fields = append(fields, auditlog.FieldOutputSnapshot)
	}
	if m.changes_made != nil {
		fields = append(fields, auditlog.FieldChangesMade)
	}
	if m.error_message != nil {
		fields = append(fields, auditlog.FieldErrorMessage)
	}
	if m.executed_at != nil {
		fields = append(fields, auditlog.FieldExecutedAt)
	}
	if m.approved_by != nil {
		fields = append(fields, auditlog.FieldApprovedBy)
	}
	if m.tokens_used != nil {
		fields = append(fields, auditlog.FieldTokensUsed)
	}
	if m.scan_day != nil {
		fields = append(fields, auditlog.FieldScanDay)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldAutomationType:
		return m.AutomationType()
	case auditlog.FieldActionName:
		return m.ActionName()
	case auditlog.FieldModel:
		return m.Model()
	case auditlog.FieldRecordID:
		return m.RecordID()
	case auditlog.FieldStatus:
		return m.Status()
	case auditlog.FieldConfidence:
		return m.Confidence()
	case auditlog.FieldReasoning:
		return m.Reasoning()
	case auditlog.FieldInputSnapshot:
		return m.InputSnapshot()
	case auditlog.FieldOutputSnapshot:
		return m.OutputSnapshot()
	case auditlog.FieldChangesMade:
		return m.ChangesMade()
	case auditlog.FieldErrorMessage:
		return m.ErrorMessage()
	case auditlog.FieldExecutedAt:
		return m.ExecutedAt()
	case auditlog.FieldApprovedBy:
		return m.ApprovedBy()
	case auditlog.FieldTokensUsed:
		return m.TokensUsed()
	case auditlog.FieldScanDay:
		return m.ScanDay()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldAutomationType:
		return m.OldAutomationType(ctx)
	case auditlog.FieldActionName:
		return m.OldActionName(ctx)
	case auditlog.FieldModel:
		return m.OldModel(ctx)
	case auditlog.FieldRecordID:
		return m.OldRecordID(ctx)
	case auditlog.FieldStatus:
		return m.OldStatus(ctx)
	case auditlog.FieldConfidence:
		return m.OldConfidence(ctx)
	case auditlog.FieldReasoning:
		return m.OldReasoning(ctx)
	case auditlog.FieldInputSnapshot:
		return m.OldInputSnapshot(ctx)
	case auditlog.FieldOutputSnapshot:
		return m.OldOutputSnapshot(ctx)
	case auditlog.FieldChangesMade:
		return m.OldChangesMade(ctx)
	case auditlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case auditlog.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	case auditlog.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case auditlog.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case auditlog.FieldScanDay:
		return m.OldScanDay(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldAutomationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutomationType(v)
		return nil
	case auditlog.FieldActionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionName(v)
		return nil
	case auditlog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case auditlog.FieldRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case auditlog.FieldStatus:
		v, ok := value.(auditlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditlog.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case auditlog.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case auditlog.FieldInputSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSnapshot(v)
		return nil
	case auditlog.FieldOutputSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputSnapshot(v)
		return nil
	case auditlog.FieldChangesMade:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangesMade(v)
		return nil
	case auditlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case auditlog.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	case auditlog.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case auditlog.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case auditlog.FieldScanDay:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanDay(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_id != nil {
		fields = append(fields, auditlog.FieldRecordID)
	}
	if m.addconfidence != nil {
		fields = append(fields, auditlog.FieldConfidence)
	}
	if m.addtokens_used != nil {
		fields = append(fields, auditlog.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldRecordID:
		return m.AddedRecordID()
	case auditlog.FieldConfidence:
		return m.AddedConfidence()
	case auditlog.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordID(v)
		return nil
	case auditlog.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case auditlog.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldReasoning) {
		fields = append(fields, auditlog.FieldReasoning)
	}
	if m.FieldCleared(auditlog.FieldInputSnapshot) {
		fields = append(fields, auditlog.FieldInputSnapshot)
	}
	if m.FieldCleared(auditlog.FieldOutputSnapshot) {
		fields = append(fields, auditlog.FieldOutputSnapshot)
	}
	if m.FieldCleared(auditlog.FieldChangesMade) {
		fields = append(fields, auditlog.FieldChangesMade)
	}
	if m.FieldCleared(auditlog.FieldErrorMessage) {
		fields = append(fields, auditlog.FieldErrorMessage)
	}
	if m.FieldCleared(auditlog.FieldExecutedAt) {
		fields = append(fields, auditlog.FieldExecutedAt)
	}
	if m.FieldCleared(auditlog.FieldApprovedBy) {
		fields = append(fields, auditlog.FieldApprovedBy)
	}
	if m.FieldCleared(auditlog.FieldScanDay) {
		fields = append(fields, auditlog.FieldScanDay)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldReasoning:
		m.ClearReasoning()
		return nil
	case auditlog.FieldInputSnapshot:
		m.ClearInputSnapshot()
		return nil
	case auditlog.FieldOutputSnapshot:
		m.ClearOutputSnapshot()
		return nil
	case auditlog.FieldChangesMade:
		m.ClearChangesMade()
		return nil
	case auditlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case auditlog.FieldExecutedAt:
		m.ClearExecutedAt()
		return nil
	case auditlog.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case auditlog.FieldScanDay:
		m.ClearScanDay()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldAutomationType:
		m.ResetAutomationType()
		return nil
	case auditlog.FieldActionName:
		m.ResetActionName()
		return nil
	case auditlog.FieldModel:
		m.ResetModel()
		return nil
	case auditlog.FieldRecordID:
		m.ResetRecordID()
		return nil
	case auditlog.FieldStatus:
		m.ResetStatus()
		return nil
	case auditlog.FieldConfidence:
		m.ResetConfidence()
		return nil
	case auditlog.FieldReasoning:
		m.ResetReasoning()
		return nil
	case auditlog.FieldInputSnapshot:
		m.ResetInputSnapshot()
		return nil
	case auditlog.FieldOutputSnapshot:
		m.ResetOutputSnapshot()
		return nil
	case auditlog.FieldChangesMade:
		m.ResetChangesMade()
		return nil
	case auditlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case auditlog.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	case auditlog.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case auditlog.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case auditlog.FieldScanDay:
		m.ResetScanDay()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// AutomationRuleMutation represents an operation that mutates the AutomationRule nodes in the graph.
type AutomationRuleMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	automation_type           *string
	action_name               *string
	enabled                   *bool
	confidence_threshold      *float64
	addconfidence_threshold   *float64
	auto_approve_threshold    *float64
	addauto_approve_threshold *float64
	_config                   *map[string]interface{}
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*AutomationRule, error)
	predicates                []predicate.AutomationRule
}

var _ ent.Mutation = (*AutomationRuleMutation)(nil)

// automationruleOption allows management of the mutation configuration using functional options.
type automationruleOption func(*AutomationRuleMutation)

// newAutomationRuleMutation creates new mutation for the AutomationRule entity.
func newAutomationRuleMutation(c config, op Op, opts ...automationruleOption) *AutomationRuleMutation {
	m := &AutomationRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAutomationRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAutomationRuleID sets the ID field of the mutation.
func withAutomationRuleID(id string) automationruleOption {
	return func(m *AutomationRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AutomationRule
		)
		m.oldValue = func(ctx context.Context) (*AutomationRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AutomationRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAutomationRule sets the old AutomationRule of the mutation.
func withAutomationRule(node *AutomationRule) automationruleOption {
	return func(m *AutomationRuleMutation) {
		m.oldValue = func(context.Context) (*AutomationRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AutomationRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AutomationRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AutomationRule entities.
func (m *AutomationRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AutomationRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AutomationRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AutomationRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAutomationType sets the "automation_type" field.
func (m *AutomationRuleMutation) SetAutomationType(s string) {
	m.automation_type = &s
}

// AutomationType returns the value of the "automation_type" field in the mutation.
func (m *AutomationRuleMutation) AutomationType() (r string, exists bool) {
	v := m.automation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAutomationType returns the old "automation_type" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldAutomationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutomationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutomationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutomationType: %w", err)
	}
	return oldValue.AutomationType, nil
}

// ResetAutomationType resets all changes to the "automation_type" field.
func (m *AutomationRuleMutation) ResetAutomationType() {
	m.automation_type = nil
}

// SetActionName sets the "action_name" field.
func (m *AutomationRuleMutation) SetActionName(s string) {
	m.action_name = &s
}

// ActionName returns the value of the "action_name" field in the mutation.
func (m *AutomationRuleMutation) ActionName() (r string, exists bool) {
	v := m.action_name
	if v == nil {
		return
	}
	return *v, true
}

// OldActionName returns the old "action_name" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldActionName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionName: %w", err)
	}
	return oldValue.ActionName, nil
}

// ResetActionName resets all changes to the "action_name" field.
func (m *AutomationRuleMutation) ResetActionName() {
	m.action_name = nil
}

// SetEnabled sets the "enabled" field.
func (m *AutomationRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AutomationRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AutomationRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConfidenceThreshold sets the "confidence_threshold" field.
func (m *AutomationRuleMutation) SetConfidenceThreshold(f float64) {
	m.confidence_threshold = &f
	m.addconfidence_threshold = nil
}

// ConfidenceThreshold returns the value of the "confidence_threshold" field in the mutation.
func (m *AutomationRuleMutation) ConfidenceThreshold() (r float64, exists bool) {
	v := m.confidence_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceThreshold returns the old "confidence_threshold" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldConfidenceThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceThreshold: %w", err)
	}
	return oldValue.ConfidenceThreshold, nil
}

// AddConfidenceThreshold adds f to the "confidence_threshold" field.
func (m *AutomationRuleMutation) AddConfidenceThreshold(f float64) {
	if m.addconfidence_threshold != nil {
		*m.addconfidence_threshold += f
	} else {
		m.addconfidence_threshold = &f
	}
}

// AddedConfidenceThreshold returns the value that was added to the "confidence_threshold" field in this mutation.
func (m *AutomationRuleMutation) AddedConfidenceThreshold() (r float64, exists bool) {
	v := m.addconfidence_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceThreshold resets all changes to the "confidence_threshold" field.
func (m *AutomationRuleMutation) ResetConfidenceThreshold() {
	m.confidence_threshold = nil
	m.addconfidence_threshold = nil
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (m *AutomationRuleMutation) SetAutoApproveThreshold(f float64) {
	m.auto_approve_threshold = &f
	m.addauto_approve_threshold = nil
}

// AutoApproveThreshold returns the value of the "auto_approve_threshold" field in the mutation.
func (m *AutomationRuleMutation) AutoApproveThreshold() (r float64, exists bool) {
	v := m.auto_approve_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoApproveThreshold returns the old "auto_approve_threshold" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldAutoApproveThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoApproveThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoApproveThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoApproveThreshold: %w", err)
	}
	return oldValue.AutoApproveThreshold, nil
}

// AddAutoApproveThreshold adds f to the "auto_approve_threshold" field.
func (m *AutomationRuleMutation) AddAutoApproveThreshold(f float64) {
	if m.addauto_approve_threshold != nil {
		*m.addauto_approve_threshold += f
	} else {
		m.addauto_approve_threshold = &f
	}
}

// AddedAutoApproveThreshold returns the value that was added to the "auto_approve_threshold" field in this mutation.
func (m *AutomationRuleMutation) AddedAutoApproveThreshold() (r float64, exists bool) {
	v := m.addauto_approve_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetAutoApproveThreshold resets all changes to the "auto_approve_threshold" field.
func (m *AutomationRuleMutation) ResetAutoApproveThreshold() {
	m.auto_approve_threshold = nil
	m.addauto_approve_threshold = nil
}

// SetConfig sets the "config" field.
func (m *AutomationRuleMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *AutomationRuleMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *AutomationRuleMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[automationrule.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *AutomationRuleMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[automationrule.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *AutomationRuleMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, automationrule.FieldConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *AutomationRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AutomationRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AutomationRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AutomationRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AutomationRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AutomationRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AutomationRuleMutation builder.
func (m *AutomationRuleMutation) Where(ps ...predicate.AutomationRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AutomationRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AutomationRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AutomationRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AutomationRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AutomationRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AutomationRule).
func (m *AutomationRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AutomationRuleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.automation_type != nil {
		fields = append(fields, automationrule.FieldAutomationType)
	}
	if m.action_name != nil {
		fields = append(fields, automationrule.FieldActionName)
	}
	if m.enabled != nil {
		fields = append(fields, automationrule.FieldEnabled)
	}
	if m.confidence_threshold != nil {
		fields = append(fields, automationrule.FieldConfidenceThreshold)
	}
	if m.auto_approve_threshold != nil {
		fields = append(fields, automationrule.FieldAutoApproveThreshold)
	}
	if m._config != nil {
		fields = append(fields, automationrule.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, automationrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, automationrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AutomationRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case automationrule.FieldAutomationType:
		return m.AutomationType()
	case automationrule.FieldActionName:
		return m.ActionName()
	case automationrule.FieldEnabled:
		return m.Enabled()
	case automationrule.FieldConfidenceThreshold:
		return m.ConfidenceThreshold()
	case automationrule.FieldAutoApproveThreshold:
		return m.AutoApproveThreshold()
	case automationrule.FieldConfig:
		return m.Config()
	case automationrule.FieldCreatedAt:
		return m.CreatedAt()
	case automationrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AutomationRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case automationrule.FieldAutomationType:
		return m.OldAutomationType(ctx)
	case automationrule.FieldActionName:
		return m.OldActionName(ctx)
	case automationrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case automationrule.FieldConfidenceThreshold:
		return m.OldConfidenceThreshold(ctx)
	case automationrule.FieldAutoApproveThreshold:
		return m.OldAutoApproveThreshold(ctx)
	case automationrule.FieldConfig:
		return m.OldConfig(ctx)
	case automationrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case automationrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AutomationRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case automationrule.FieldAutomationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutomationType(v)
		return nil
	case automationrule.FieldActionName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionName(v)
		return nil
	case automationrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case automationrule.FieldConfidenceThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceThreshold(v)
		return nil
	case automationrule.FieldAutoApproveThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoApproveThreshold(v)
		return nil
	case automationrule.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case automationrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case automationrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AutomationRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AutomationRuleMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_threshold != nil {
		fields = append(fields, automationrule.FieldConfidenceThreshold)
	}
	if m.addauto_approve_threshold != nil {
		fields = append(fields, automationrule.FieldAutoApproveThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AutomationRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case automationrule.FieldConfidenceThreshold:
		return m.AddedConfidenceThreshold()
	case automationrule.FieldAutoApproveThreshold:
		return m.AddedAutoApproveThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case automationrule.FieldConfidenceThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceThreshold(v)
		return nil
	case automationrule.FieldAutoApproveThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoApproveThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown AutomationRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AutomationRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(automationrule.FieldConfig) {
		fields = append(fields, automationrule.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AutomationRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AutomationRuleMutation) ClearField(name string) error {
	switch name {
	case automationrule.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown AutomationRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AutomationRuleMutation) ResetField(name string) error {
	switch name {
	case automationrule.FieldAutomationType:
		m.ResetAutomationType()
		return nil
	case automationrule.FieldActionName:
		m.ResetActionName()
		return nil
	case automationrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case automationrule.FieldConfidenceThreshold:
		m.ResetConfidenceThreshold()
		return nil
	case automationrule.FieldAutoApproveThreshold:
		m.ResetAutoApproveThreshold()
		return nil
	case automationrule.FieldConfig:
		m.ResetConfig()
		return nil
	case automationrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case automationrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AutomationRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AutomationRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AutomationRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AutomationRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AutomationRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AutomationRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AutomationRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AutomationRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AutomationRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AutomationRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AutomationRule edge %s", name)
}

// CashForecastMutation represents an operation that mutates the CashForecast nodes in the graph.
type CashForecastMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	forecast_date        *time.Time
	target_date          *time.Time
	opening_balance      *float64
	addopening_balance   *float64
	expected_inflows     *float64
	addexpected_inflows  *float64
	expected_outflows    *float64
	addexpected_outflows *float64
	projected_balance    *float64
	addprojected_balance *float64
	confidence           *float64
	addconfidence        *float64
	breakdown            *map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	scenarios            map[string]struct{}
	removedscenarios     map[string]struct{}
	clearedscenarios     bool
	done                 bool
	oldValue             func(context.Context) (*CashForecast, error)
	predicates           []predicate.CashForecast
}

var _ ent.Mutation = (*CashForecastMutation)(nil)

// cashforecastOption allows management of the mutation configuration using functional options.
type cashforecastOption func(*CashForecastMutation)

// newCashForecastMutation creates new mutation for the CashForecast entity.
func newCashForecastMutation(c config, op Op, opts ...cashforecastOption) *CashForecastMutation {
	m := &CashForecastMutation{
		config:        c,
		op:            op,
		typ:           TypeCashForecast,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCashForecastID sets the ID field of the mutation.
func withCashForecastID(id string) cashforecastOption {
	return func(m *CashForecastMutation) {
		var (
			err   error
			once  sync.Once
			value *CashForecast
		)
		m.oldValue = func(ctx context.Context) (*CashForecast, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CashForecast.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCashForecast sets the old CashForecast of the mutation.
func withCashForecast(node *CashForecast) cashforecastOption {
	return func(m *CashForecastMutation) {
		m.oldValue = func(context.Context) (*CashForecast, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CashForecastMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CashForecastMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CashForecast entities.
func (m *CashForecastMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CashForecastMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CashForecastMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CashForecast.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetForecastDate sets the "forecast_date" field.
func (m *CashForecastMutation) SetForecastDate(t time.Time) {
	m.forecast_date = &t
}

// ForecastDate returns the value of the "forecast_date" field in the mutation.
func (m *CashForecastMutation) ForecastDate() (r time.Time, exists bool) {
	v := m.forecast_date
	if v == nil {
		return
	}
	return *v, true
}

// OldForecastDate returns the old "forecast_date" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldForecastDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForecastDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForecastDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForecastDate: %w", err)
	}
	return oldValue.ForecastDate, nil
}

// ResetForecastDate resets all changes to the "forecast_date" field.
func (m *CashForecastMutation) ResetForecastDate() {
	m.forecast_date = nil
}

// SetTargetDate sets the "target_date" field.
func (m *CashForecastMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *CashForecastMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldTargetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *CashForecastMutation) ResetTargetDate() {
	m.target_date = nil
}

// SetOpeningBalance sets the "opening_balance" field.
func (m *CashForecastMutation) SetOpeningBalance(f float64) {
	m.opening_balance = &f
	m.addopening_balance = nil
}

// OpeningBalance returns the value of the "opening_balance" field in the mutation.
func (m *CashForecastMutation) OpeningBalance() (r float64, exists bool) {
	v := m.opening_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningBalance returns the old "opening_balance" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldOpeningBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningBalance: %w", err)
	}
	return oldValue.OpeningBalance, nil
}

// AddOpeningBalance adds f to the "opening_balance" field.
func (m *CashForecastMutation) AddOpeningBalance(f float64) {
	if m.addopening_balance != nil {
		*m.addopening_balance += f
	} else {
		m.addopening_balance = &f
	}
}

// AddedOpeningBalance returns the value that was added to the "opening_balance" field in this mutation.
func (m *CashForecastMutation) AddedOpeningBalance() (r float64, exists bool) {
	v := m.addopening_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetOpeningBalance resets all changes to the "opening_balance" field.
func (m *CashForecastMutation) ResetOpeningBalance() {
	m.opening_balance = nil
	m.addopening_balance = nil
}

// SetExpectedInflows sets the "expected_inflows" field.
func (m *CashForecastMutation) SetExpectedInflows(f float64) {
	m.expected_inflows = &f
	m.addexpected_inflows = nil
}

// ExpectedInflows returns the value of the "expected_inflows" field in the mutation.
func (m *CashForecastMutation) ExpectedInflows() (r float64, exists bool) {
	v := m.expected_inflows
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedInflows returns the old "expected_inflows" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldExpectedInflows(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedInflows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedInflows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedInflows: %w", err)
	}
	return oldValue.ExpectedInflows, nil
}

// AddExpectedInflows adds f to the "expected_inflows" field.
func (m *CashForecastMutation) AddExpectedInflows(f float64) {
	if m.addexpected_inflows != nil {
		*m.addexpected_inflows += f
	} else {
		m.addexpected_inflows = &f
	}
}

// AddedExpectedInflows returns the value that was added to the "expected_inflows" field in this mutation.
func (m *CashForecastMutation) AddedExpectedInflows() (r float64, exists bool) {
	v := m.addexpected_inflows
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpectedInflows resets all changes to the "expected_inflows" field.
func (m *CashForecastMutation) ResetExpectedInflows() {
	m.expected_inflows = nil
	m.addexpected_inflows = nil
}

// SetExpectedOutflows sets the "expected_outflows" field.
func (m *CashForecastMutation) SetExpectedOutflows(f float64) {
	m.expected_outflows = &f
	m.addexpected_outflows = nil
}

// ExpectedOutflows returns the value of the "expected_outflows" field in the mutation.
func (m *CashForecastMutation) ExpectedOutflows() (r float64, exists bool) {
	v := m.expected_outflows
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutflows returns the old "expected_outflows" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldExpectedOutflows(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutflows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutflows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutflows: %w", err)
	}
	return oldValue.ExpectedOutflows, nil
}

// AddExpectedOutflows adds f to the "expected_outflows" field.
func (m *CashForecastMutation) AddExpectedOutflows(f float64) {
	if m.addexpected_outflows != nil {
		*m.addexpected_outflows += f
	} else {
		m.addexpected_outflows = &f
	}
}

// AddedExpectedOutflows returns the value that was added to the "expected_outflows" field in this mutation.
func (m *CashForecastMutation) AddedExpectedOutflows() (r float64, exists bool) {
	v := m.addexpected_outflows
	if v == nil {
		return
	}
	return *v, true
}

// ResetExpectedOutflows resets all changes to the "expected_outflows" field.
func (m *CashForecastMutation) ResetExpectedOutflows() {
	m.expected_outflows = nil
	m.addexpected_outflows = nil
}

// SetProjectedBalance sets the "projected_balance" field.
func (m *CashForecastMutation) SetProjectedBalance(f float64) {
	m.projected_balance = &f
	m.addprojected_balance = nil
}

// ProjectedBalance returns the value of the "projected_balance" field in the mutation.
func (m *CashForecastMutation) ProjectedBalance() (r float64, exists bool) {
	v := m.projected_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectedBalance returns the old "projected_balance" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldProjectedBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectedBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectedBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectedBalance: %w", err)
	}
	return oldValue.ProjectedBalance, nil
}

// AddProjectedBalance adds f to the "projected_balance" field.
func (m *CashForecastMutation) AddProjectedBalance(f float64) {
	if m.addprojected_balance != nil {
		*m.addprojected_balance += f
	} else {
		m.addprojected_balance = &f
	}
}

// AddedProjectedBalance returns the value that was added to the "projected_balance" field in this mutation.
func (m *CashForecastMutation) AddedProjectedBalance() (r float64, exists bool) {
	v := m.addprojected_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectedBalance resets all changes to the "projected_balance" field.
func (m *CashForecastMutation) ResetProjectedBalance() {
	m.projected_balance = nil
	m.addprojected_balance = nil
}

// SetConfidence sets the "confidence" field.
func (m *CashForecastMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *CashForecastMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *CashForecastMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *CashForecastMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *CashForecastMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[cashforecast.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *CashForecastMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[cashforecast.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *CashForecastMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, cashforecast.FieldConfidence)
}

// SetBreakdown sets the "breakdown" field.
func (m *CashForecastMutation) SetBreakdown(value map[string]interface{}) {
	m.breakdown = &value
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *CashForecastMutation) Breakdown() (r map[string]interface{}, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldBreakdown(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// ClearBreakdown clears the value of the "breakdown" field.
func (m *CashForecastMutation) ClearBreakdown() {
	m.breakdown = nil
	m.clearedFields[cashforecast.FieldBreakdown] = struct{}{}
}

// BreakdownCleared returns if the "breakdown" field was cleared in this mutation.
func (m *CashForecastMutation) BreakdownCleared() bool {
	_, ok := m.clearedFields[cashforecast.FieldBreakdown]
	return ok
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *CashForecastMutation) ResetBreakdown() {
	m.breakdown = nil
	delete(m.clearedFields, cashforecast.FieldBreakdown)
}

// SetCreatedAt sets the "created_at" field.
func (m *CashForecastMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CashForecastMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CashForecast entity.
// If the CashForecast object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CashForecastMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CashForecastMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddScenarioIDs adds the "scenarios" edge to the ForecastScenario entity by ids.
func (m *CashForecastMutation) AddScenarioIDs(ids ...string) {
	if m.scenarios == nil {
		m.scenarios = make(map[string]struct{})
	}
	for i := range ids {
		m.scenarios[ids[i]] = struct{}{}
	}
}

// ClearScenarios clears the "scenarios" edge to the ForecastScenario entity.
func (m *CashForecastMutation) ClearScenarios() {
	m.clearedscenarios = true
}

// ScenariosCleared reports if the "scenarios" edge to the ForecastScenario entity was cleared.
func (m *CashForecastMutation) ScenariosCleared() bool {
	return m.clearedscenarios
}

// RemoveScenarioIDs removes the "scenarios" edge to the ForecastScenario entity by IDs.
func (m *CashForecastMutation) RemoveScenarioIDs(ids ...string) {
	if m.removedscenarios == nil {
		m.removedscenarios = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scenarios, ids[i])
		m.removedscenarios[ids[i]] = struct{}{}
	}
}

// RemovedScenarios returns the removed IDs of the "scenarios" edge to the ForecastScenario entity.
func (m *CashForecastMutation) RemovedScenariosIDs() (ids []string) {
	for id := range m.removedscenarios {
		ids = append(ids, id)
	}
	return
}

// ScenariosIDs returns the "scenarios" edge IDs in the mutation.
func (m *CashForecastMutation) ScenariosIDs() (ids []string) {
	for id := range m.scenarios {
		ids = append(ids, id)
	}
	return
}

// ResetScenarios resets all changes to the "scenarios" edge.
func (m *CashForecastMutation) ResetScenarios() {
	m.scenarios = nil
	m.clearedscenarios = false
	m.removedscenarios = nil
}

// Where appends a list predicates to the CashForecastMutation builder.
func (m *CashForecastMutation) Where(ps ...predicate.CashForecast) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CashForecastMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CashForecastMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CashForecast, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CashForecastMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CashForecastMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CashForecast).
func (m *CashForecastMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CashForecastMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.forecast_date != nil {
		fields = append(fields, cashforecast.FieldForecastDate)
	}
	if m.target_date != nil {
		fields = append(fields, cashforecast.FieldTargetDate)
	}
	if m.opening_balance != nil {
		fields = append(fields, cashforecast.FieldOpeningBalance)
	}
	if m.expected_inflows != nil {
		fields = append(fields, cashforecast.FieldExpectedInflows)
	}
	if m.expected_outflows != nil {
		fields = append(fields, cashforecast.FieldExpectedOutflows)
	}
	if m.projected_balance != nil {
		fields = append(fields, cashforecast.FieldProjectedBalance)
	}
	if m.confidence != nil {
		fields = append(fields, cashforecast.FieldConfidence)
	}
	if m.breakdown != nil {
		fields = append(fields, cashforecast.FieldBreakdown)
	}
	if m.created_at != nil {
		fields = append(fields, cashforecast.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CashForecastMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cashforecast.FieldForecastDate:
		return m.ForecastDate()
	case cashforecast.FieldTargetDate:
		return m.TargetDate()
	case cashforecast.FieldOpeningBalance:
		return m.OpeningBalance()
	case cashforecast.FieldExpectedInflows:
		return m.ExpectedInflows()
	case cashforecast.FieldExpectedOutflows:
		return m.ExpectedOutflows()
	case cashforecast.FieldProjectedBalance:
		return m.ProjectedBalance()
	case cashforecast.FieldConfidence:
		return m.Confidence()
	case cashforecast.FieldBreakdown:
		return m.Breakdown()
	case cashforecast.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CashForecastMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cashforecast.FieldForecastDate:
		return m.OldForecastDate(ctx)
	case cashforecast.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case cashforecast.FieldOpeningBalance:
		return m.OldOpeningBalance(ctx)
	case cashforecast.FieldExpectedInflows:
		return m.OldExpectedInflows(ctx)
	case cashforecast.FieldExpectedOutflows:
		return m.OldExpectedOutflows(ctx)
	case cashforecast.FieldProjectedBalance:
		return m.OldProjectedBalance(ctx)
	case cashforecast.FieldConfidence:
		return m.OldConfidence(ctx)
	case cashforecast.FieldBreakdown:
		return m.OldBreakdown(ctx)
	case cashforecast.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CashForecast field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CashForecastMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cashforecast.FieldForecastDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForecastDate(v)
		return nil
	case cashforecast.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case cashforecast.FieldOpeningBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningBalance(v)
		return nil
	case cashforecast.FieldExpectedInflows:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedInflows(v)
		return nil
	case cashforecast.FieldExpectedOutflows:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutflows(v)
		return nil
	case cashforecast.FieldProjectedBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectedBalance(v)
		return nil
	case cashforecast.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case cashforecast.FieldBreakdown:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	case cashforecast.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CashForecast field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CashForecastMutation) AddedFields() []string {
	var fields []string
	if m.addopening_balance != nil {
		fields = append(fields, cashforecast.FieldOpeningBalance)
	}
	if m.addexpected_inflows != nil {
		fields = append(fields, cashforecast.FieldExpectedInflows)
	}
	if m.addexpected_outflows != nil {
		fields = append(fields, cashforecast.FieldExpectedOutflows)
	}
	if m.addprojected_balance != nil {
		fields = append(fields, cashforecast.FieldProjectedBalance)
	}
	if m.addconfidence != nil {
		fields = append(fields, cashforecast.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CashForecastMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cashforecast.FieldOpeningBalance:
		return m.AddedOpeningBalance()
	case cashforecast.FieldExpectedInflows:
		return m.AddedExpectedInflows()
	case cashforecast.FieldExpectedOutflows:
		return m.AddedExpectedOutflows()
	case cashforecast.FieldProjectedBalance:
		return m.AddedProjectedBalance()
	case cashforecast.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CashForecastMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cashforecast.FieldOpeningBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpeningBalance(v)
		return nil
	case cashforecast.FieldExpectedInflows:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedInflows(v)
		return nil
	case cashforecast.FieldExpectedOutflows:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedOutflows(v)
		return nil
	case cashforecast.FieldProjectedBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectedBalance(v)
		return nil
	case cashforecast.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown CashForecast numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CashForecastMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cashforecast.FieldConfidence) {
		fields = append(fields, cashforecast.FieldConfidence)
	}
	if m.FieldCleared(cashforecast.FieldBreakdown) {
		fields = append(fields, cashforecast.FieldBreakdown)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CashForecastMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CashForecastMutation) ClearField(name string) error {
	switch name {
	case cashforecast.FieldConfidence:
		m.ClearConfidence()
		return nil
	case cashforecast.FieldBreakdown:
		m.ClearBreakdown()
		return nil
	}
	return fmt.Errorf("unknown CashForecast nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CashForecastMutation) ResetField(name string) error {
	switch name {
	case cashforecast.FieldForecastDate:
		m.ResetForecastDate()
		return nil
	case cashforecast.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case cashforecast.FieldOpeningBalance:
		m.ResetOpeningBalance()
		return nil
	case cashforecast.FieldExpectedInflows:
		m.ResetExpectedInflows()
		return nil
	case cashforecast.FieldExpectedOutflows:
		m.ResetExpectedOutflows()
		return nil
	case cashforecast.FieldProjectedBalance:
		m.ResetProjectedBalance()
		return nil
	case cashforecast.FieldConfidence:
		m.ResetConfidence()
		return nil
	case cashforecast.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	case cashforecast.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CashForecast field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CashForecastMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scenarios != nil {
		edges = append(edges, cashforecast.EdgeScenarios)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CashForecastMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cashforecast.EdgeScenarios:
		ids := make([]ent.Value, 0, len(m.scenarios))
		for id := range m.scenarios {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CashForecastMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedscenarios != nil {
		edges = append(edges, cashforecast.EdgeScenarios)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CashForecastMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cashforecast.EdgeScenarios:
		ids := make([]ent.Value, 0, len(m.removedscenarios))
		for id := range m.removedscenarios {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CashForecastMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscenarios {
		edges = append(edges, cashforecast.EdgeScenarios)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CashForecastMutation) EdgeCleared(name string) bool {
	switch name {
	case cashforecast.EdgeScenarios:
		return m.clearedscenarios
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CashForecastMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CashForecast unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CashForecastMutation) ResetEdge(name string) error {
	switch name {
	case cashforecast.EdgeScenarios:
		m.ResetScenarios()
		return nil
	}
	return fmt.Errorf("unknown CashForecast edge %s", name)
}

// ClosingStepMutation represents an operation that mutates the ClosingStep nodes in the graph.
type ClosingStepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	step_name      *string
	step_index     *int
	addstep_index  *int
	status         *closingstep.Status
	details        *map[string]interface{}
	blocked_reason *string
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	closing        *string
	clearedclosing bool
	done           bool
	oldValue       func(context.Context) (*ClosingStep, error)
	predicates     []predicate.ClosingStep
}

var _ ent.Mutation = (*ClosingStepMutation)(nil)

// closingstepOption allows management of the mutation configuration using functional options.
type closingstepOption func(*ClosingStepMutation)

// newClosingStepMutation creates new mutation for the ClosingStep entity.
func newClosingStepMutation(c config, op Op, opts ...closingstepOption) *ClosingStepMutation {
	m := &ClosingStepMutation{
		config:        c,
		op:            op,
		typ:           TypeClosingStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClosingStepID sets the ID field of the mutation.
func withClosingStepID(id string) closingstepOption {
	return func(m *ClosingStepMutation) {
		var (
			err   error
			once  sync.Once
			value *ClosingStep
		)
		m.oldValue = func(ctx context.Context) (*ClosingStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClosingStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClosingStep sets the old ClosingStep of the mutation.
func withClosingStep(node *ClosingStep) closingstepOption {
	return func(m *ClosingStepMutation) {
		m.oldValue = func(context.Context) (*ClosingStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClosingStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClosingStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClosingStep entities.
func (m *ClosingStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClosingStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClosingStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClosingStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClosingID sets the "closing_id" field.
func (m *ClosingStepMutation) SetClosingID(s string) {
	m.closing = &s
}

// ClosingID returns the value of the "closing_id" field in the mutation.
func (m *ClosingStepMutation) ClosingID() (r string, exists bool) {
	v := m.closing
	if v == nil {
		return
	}
	return *v, true
}

// OldClosingID returns the old "closing_id" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldClosingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosingID: %w", err)
	}
	return oldValue.ClosingID, nil
}

// ResetClosingID resets all changes to the "closing_id" field.
func (m *ClosingStepMutation) ResetClosingID() {
	m.closing = nil
}

// SetStepName sets the "step_name" field.
func (m *ClosingStepMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *ClosingStepMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ResetStepName resets all changes to the "step_name" field.
func (m *ClosingStepMutation) ResetStepName() {
	m.step_name = nil
}

// SetStepIndex sets the "step_index" field.
func (m *ClosingStepMutation) SetStepIndex(i int) {
	m.step_index = &i
	m.addstep_index = nil
}

// StepIndex returns the value of the "step_index" field in the mutation.
func (m *ClosingStepMutation) StepIndex() (r int, exists bool) {
	v := m.step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStepIndex returns the old "step_index" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldStepIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepIndex: %w", err)
	}
	return oldValue.StepIndex, nil
}

// AddStepIndex adds i to the "step_index" field.
func (m *ClosingStepMutation) AddStepIndex(i int) {
	if m.addstep_index != nil {
		*m.addstep_index += i
	} else {
		m.addstep_index = &i
	}
}

// AddedStepIndex returns the value that was added to the "step_index" field in this mutation.
func (m *ClosingStepMutation) AddedStepIndex() (r int, exists bool) {
	v := m.addstep_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepIndex resets all changes to the "step_index" field.
func (m *ClosingStepMutation) ResetStepIndex() {
	m.step_index = nil
	m.addstep_index = nil
}

// SetStatus sets the "status" field.
func (m *ClosingStepMutation) SetStatus(c closingstep.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ClosingStepMutation) Status() (r closingstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldStatus(ctx context.Context) (v closingstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ClosingStepMutation) ResetStatus() {
	m.status = nil
}

// SetDetails sets the "details" field.
func (m *ClosingStepMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ClosingStepMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ClosingStepMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[closingstep.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ClosingStepMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[closingstep.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ClosingStepMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, closingstep.FieldDetails)
}

// SetBlockedReason sets the "blocked_reason" field.
func (m *ClosingStepMutation) SetBlockedReason(s string) {
	m.blocked_reason = &s
}

// BlockedReason returns the value of the "blocked_reason" field in the mutation.
func (m *ClosingStepMutation) BlockedReason() (r string, exists bool) {
	v := m.blocked_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedReason returns the old "blocked_reason" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldBlockedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedReason: %w", err)
	}
	return oldValue.BlockedReason, nil
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (m *ClosingStepMutation) ClearBlockedReason() {
	m.blocked_reason = nil
	m.clearedFields[closingstep.FieldBlockedReason] = struct{}{}
}

// BlockedReasonCleared returns if the "blocked_reason" field was cleared in this mutation.
func (m *ClosingStepMutation) BlockedReasonCleared() bool {
	_, ok := m.clearedFields[closingstep.FieldBlockedReason]
	return ok
}

// ResetBlockedReason resets all changes to the "blocked_reason" field.
func (m *ClosingStepMutation) ResetBlockedReason() {
	m.blocked_reason = nil
	delete(m.clearedFields, closingstep.FieldBlockedReason)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ClosingStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ClosingStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ClosingStep entity.
// If the ClosingStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClosingStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ClosingStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[closingstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ClosingStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[closingstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ClosingStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, closingstep.FieldCompletedAt)
}

// ClearClosing clears the "closing" edge to the MonthEndClosing entity.
func (m *ClosingStepMutation) ClearClosing() {
	m.clearedclosing = true
	m.clearedFields[closingstep.FieldClosingID] = struct{}{}
}

// ClosingCleared reports if the "closing" edge to the MonthEndClosing entity was cleared.
func (m *ClosingStepMutation) ClosingCleared() bool {
	return m.clearedclosing
}

// ClosingIDs returns the "closing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClosingID instead. It exists only for internal usage by the builders.
func (m *ClosingStepMutation) ClosingIDs() (ids []string) {
	if id := m.closing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClosing resets all changes to the "closing" edge.
func (m *ClosingStepMutation) ResetClosing() {
	m.closing = nil
	m.clearedclosing = false
}

// Where appends a list predicates to the ClosingStepMutation builder.
func (m *ClosingStepMutation) Where(ps ...predicate.ClosingStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClosingStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClosingStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClosingStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClosingStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClosingStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClosingStep).
func (m *ClosingStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClosingStepMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.closing != nil {
		fields = append(fields, closingstep.FieldClosingID)
	}
	if m.step_name != nil {
		fields = append(fields, closingstep.FieldStepName)
	}
	if m.step_index != nil {
		fields = append(fields, closingstep.FieldStepIndex)
	}
	if m.status != nil {
		fields = append(fields, closingstep.FieldStatus)
	}
	if m.details != nil {
		fields = append(fields, closingstep.FieldDetails)
	}
	if m.blocked_reason != nil {
		fields = append(fields, closingstep.FieldBlockedReason)
	}
	if m.completed_at != nil {
		fields = append(fields, closingstep.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClosingStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case closingstep.FieldClosingID:
		return m.ClosingID()
	case closingstep.FieldStepName:
		return m.StepName()
	case closingstep.FieldStepIndex:
		return m.StepIndex()
	case closingstep.FieldStatus:
		return m.Status()
	case closingstep.FieldDetails:
		return m.Details()
	case closingstep.FieldBlockedReason:
		return m.BlockedReason()
	case closingstep.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClosingStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case closingstep.FieldClosingID:
		return m.OldClosingID(ctx)
	case closingstep.FieldStepName:
		return m.OldStepName(ctx)
	case closingstep.FieldStepIndex:
		return m.OldStepIndex(ctx)
	case closingstep.FieldStatus:
		return m.OldStatus(ctx)
	case closingstep.FieldDetails:
		return m.OldDetails(ctx)
	case closingstep.FieldBlockedReason:
		return m.OldBlockedReason(ctx)
	case closingstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClosingStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClosingStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case closingstep.FieldClosingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosingID(v)
		return nil
	case closingstep.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case closingstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepIndex(v)
		return nil
	case closingstep.FieldStatus:
		v, ok := value.(closingstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case closingstep.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case closingstep.FieldBlockedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedReason(v)
		return nil
	case closingstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClosingStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClosingStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_index != nil {
		fields = append(fields, closingstep.FieldStepIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClosingStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case closingstep.FieldStepIndex:
		return m.AddedStepIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClosingStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case closingstep.FieldStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ClosingStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClosingStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(closingstep.FieldDetails) {
		fields = append(fields, closingstep.FieldDetails)
	}
	if m.FieldCleared(closingstep.FieldBlockedReason) {
		fields = append(fields, closingstep.FieldBlockedReason)
	}
	if m.FieldCleared(closingstep.FieldCompletedAt) {
		fields = append(fields, closingstep.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClosingStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClosingStepMutation) ClearField(name string) error {
	switch name {
	case closingstep.FieldDetails:
		m.ClearDetails()
		return nil
	case closingstep.FieldBlockedReason:
		m.ClearBlockedReason()
		return nil
	case closingstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ClosingStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClosingStepMutation) ResetField(name string) error {
	switch name {
	case closingstep.FieldClosingID:
		m.ResetClosingID()
		return nil
	case closingstep.FieldStepName:
		m.ResetStepName()
		return nil
	case closingstep.FieldStepIndex:
		m.ResetStepIndex()
		return nil
	case closingstep.FieldStatus:
		m.ResetStatus()
		return nil
	case closingstep.FieldDetails:
		m.ResetDetails()
		return nil
	case closingstep.FieldBlockedReason:
		m.ResetBlockedReason()
		return nil
	case closingstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ClosingStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClosingStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.closing != nil {
		edges = append(edges, closingstep.EdgeClosing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClosingStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case closingstep.EdgeClosing:
		if id := m.closing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClosingStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClosingStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClosingStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclosing {
		edges = append(edges, closingstep.EdgeClosing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClosingStepMutation) EdgeCleared(name string) bool {
	switch name {
	case closingstep.EdgeClosing:
		return m.clearedclosing
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClosingStepMutation) ClearEdge(name string) error {
	switch name {
	case closingstep.EdgeClosing:
		m.ClearClosing()
		return nil
	}
	return fmt.Errorf("unknown ClosingStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClosingStepMutation) ResetEdge(name string) error {
	switch name {
	case closingstep.EdgeClosing:
		m.ResetClosing()
		return nil
	}
	return fmt.Errorf("unknown ClosingStep edge %s", name)
}

// CreditScoreMutation represents an operation that mutates the CreditScore nodes in the graph.
type CreditScoreMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	customer_id            *int64
	addcustomer_id         *int64
	score                  *float64
	addscore               *float64
	risk_tier              *creditscore.RiskTier
	credit_limit           *float64
	addcredit_limit        *float64
	outstanding_balance    *float64
	addoutstanding_balance *float64
	hold_active            *bool
	hold_reason            *string
	factors                *map[string]interface{}
	calculated_at          *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*CreditScore, error)
	predicates             []predicate.CreditScore
}

var _ ent.Mutation = (*CreditScoreMutation)(nil)

// creditscoreOption allows management of the mutation configuration using functional options.
type creditscoreOption func(*CreditScoreMutation)

// newCreditScoreMutation creates new mutation for the CreditScore entity.
func newCreditScoreMutation(c config, op Op, opts ...creditscoreOption) *CreditScoreMutation {
	m := &CreditScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditScoreID sets the ID field of the mutation.
func withCreditScoreID(id string) creditscoreOption {
	return func(m *CreditScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditScore
		)
		m.oldValue = func(ctx context.Context) (*CreditScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditScore sets the old CreditScore of the mutation.
func withCreditScore(node *CreditScore) creditscoreOption {
	return func(m *CreditScoreMutation) {
		m.oldValue = func(context.Context) (*CreditScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditScore entities.
func (m *CreditScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCustomerID sets the "customer_id" field.
func (m *CreditScoreMutation) SetCustomerID(i int64) {
	m.customer_id = &i
	m.addcustomer_id = nil
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *CreditScoreMutation) CustomerID() (r int64, exists bool) {
	v := m.customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldCustomerID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// AddCustomerID adds i to the "customer_id" field.
func (m *CreditScoreMutation) AddCustomerID(i int64) {
	if m.addcustomer_id != nil {
		*m.addcustomer_id += i
	} else {
		m.addcustomer_id = &i
	}
}

// AddedCustomerID returns the value that was added to the "customer_id" field in this mutation.
func (m *CreditScoreMutation) AddedCustomerID() (r int64, exists bool) {
	v := m.addcustomer_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *CreditScoreMutation) ResetCustomerID() {
	m.customer_id = nil
	m.addcustomer_id = nil
}

// SetScore sets the "score" field.
func (m *CreditScoreMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *CreditScoreMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *CreditScoreMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *CreditScoreMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *CreditScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetRiskTier sets the "risk_tier" field.
func (m *CreditScoreMutation) SetRiskTier(ct creditscore.RiskTier) {
	m.risk_tier = &ct
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *CreditScoreMutation) RiskTier() (r creditscore.RiskTier, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldRiskTier(ctx context.Context) (v creditscore.RiskTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *CreditScoreMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetCreditLimit sets the "credit_limit" field.
func (m *CreditScoreMutation) SetCreditLimit(f float64) {
	m.credit_limit = &f
	m.addcredit_limit = nil
}

// CreditLimit returns the value of the "credit_limit" field in the mutation.
func (m *CreditScoreMutation) CreditLimit() (r float64, exists bool) {
	v := m.credit_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditLimit returns the old "credit_limit" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldCreditLimit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditLimit: %w", err)
	}
	return oldValue.CreditLimit, nil
}

// AddCreditLimit adds f to the "credit_limit" field.
func (m *CreditScoreMutation) AddCreditLimit(f float64) {
	if m.addcredit_limit != nil {
		*m.addcredit_limit += f
	} else {
		m.addcredit_limit = &f
	}
}

// AddedCreditLimit returns the value that was added to the "credit_limit" field in this mutation.
func (m *CreditScoreMutation) AddedCreditLimit() (r float64, exists bool) {
	v := m.addcredit_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditLimit resets all changes to the "credit_limit" field.
func (m *CreditScoreMutation) ResetCreditLimit() {
	m.credit_limit = nil
	m.addcredit_limit = nil
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (m *CreditScoreMutation) SetOutstandingBalance(f float64) {
	m.outstanding_balance = &f
	m.addoutstanding_balance = nil
}

// OutstandingBalance returns the value of the "outstanding_balance" field in the mutation.
func (m *CreditScoreMutation) OutstandingBalance() (r float64, exists bool) {
	v := m.outstanding_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldOutstandingBalance returns the old "outstanding_balance" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldOutstandingBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutstandingBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutstandingBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutstandingBalance: %w", err)
	}
	return oldValue.OutstandingBalance, nil
}

// AddOutstandingBalance adds f to the "outstanding_balance" field.
func (m *CreditScoreMutation) AddOutstandingBalance(f float64) {
	if m.addoutstanding_balance != nil {
		*m.addoutstanding_balance += f
	} else {
		m.addoutstanding_balance = &f
	}
}

// AddedOutstandingBalance returns the value that was added to the "outstanding_balance" field in this mutation.
func (m *CreditScoreMutation) AddedOutstandingBalance() (r float64, exists bool) {
	v := m.addoutstanding_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutstandingBalance resets all changes to the "outstanding_balance" field.
func (m *CreditScoreMutation) ResetOutstandingBalance() {
	m.outstanding_balance = nil
	m.addoutstanding_balance = nil
}

// SetHoldActive sets the "hold_active" field.
func (m *CreditScoreMutation) SetHoldActive(b bool) {
	m.hold_active = &b
}

// HoldActive returns the value of the "hold_active" field in the mutation.
func (m *CreditScoreMutation) HoldActive() (r bool, exists bool) {
	v := m.hold_active
	if v == nil {
		return
	}
	return *v, true
}

// OldHoldActive returns the old "hold_active" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldHoldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoldActive: %w", err)
	}
	return oldValue.HoldActive, nil
}

// ResetHoldActive resets all changes to the "hold_active" field.
func (m *CreditScoreMutation) ResetHoldActive() {
	m.hold_active = nil
}

// SetHoldReason sets the "hold_reason" field.
func (m *CreditScoreMutation) SetHoldReason(s string) {
	m.hold_reason = &s
}

// HoldReason returns the value of the "hold_reason" field in the mutation.
func (m *CreditScoreMutation) HoldReason() (r string, exists bool) {
	v := m.hold_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldHoldReason returns the old "hold_reason" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldHoldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoldReason: %w", err)
	}
	return oldValue.HoldReason, nil
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (m *CreditScoreMutation) ClearHoldReason() {
	m.hold_reason = nil
	m.clearedFields[creditscore.FieldHoldReason] = struct{}{}
}

// HoldReasonCleared returns if the "hold_reason" field was cleared in this mutation.
func (m *CreditScoreMutation) HoldReasonCleared() bool {
	_, ok := m.clearedFields[creditscore.FieldHoldReason]
	return ok
}

// ResetHoldReason resets all changes to the "hold_reason" field.
func (m *CreditScoreMutation) ResetHoldReason() {
	m.hold_reason = nil
	delete(m.clearedFields, creditscore.FieldHoldReason)
}

// SetFactors sets the "factors" field.
func (m *CreditScoreMutation) SetFactors(value map[string]interface{}) {
	m.factors = &value
}

// Factors returns the value of the "factors" field in the mutation.
func (m *CreditScoreMutation) Factors() (r map[string]interface{}, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldFactors(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// ClearFactors clears the value of the "factors" field.
func (m *CreditScoreMutation) ClearFactors() {
	m.factors = nil
	m.clearedFields[creditscore.FieldFactors] = struct{}{}
}

// FactorsCleared returns if the "factors" field was cleared in this mutation.
func (m *CreditScoreMutation) FactorsCleared() bool {
	_, ok := m.clearedFields[creditscore.FieldFactors]
	return ok
}

// ResetFactors resets all changes to the "factors" field.
func (m *CreditScoreMutation) ResetFactors() {
	m.factors = nil
	delete(m.clearedFields, creditscore.FieldFactors)
}

// SetCalculatedAt sets the "calculated_at" field.
func (m *CreditScoreMutation) SetCalculatedAt(t time.Time) {
	m.calculated_at = &t
}

// CalculatedAt returns the value of the "calculated_at" field in the mutation.
func (m *CreditScoreMutation) CalculatedAt() (r time.Time, exists bool) {
	v := m.calculated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedAt returns the old "calculated_at" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldCalculatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedAt: %w", err)
	}
	return oldValue.CalculatedAt, nil
}

// ResetCalculatedAt resets all changes to the "calculated_at" field.
func (m *CreditScoreMutation) ResetCalculatedAt() {
	m.calculated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditScore entity.
// If the CreditScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CreditScoreMutation builder.
func (m *CreditScoreMutation) Where(ps ...predicate.CreditScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditScore).
func (m *CreditScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditScoreMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.customer_id != nil {
		fields = append(fields, creditscore.FieldCustomerID)
	}
	if m.score != nil {
		fields = append(fields, creditscore.FieldScore)
	}
	if m.risk_tier != nil {
		fields = append(fields, creditscore.FieldRiskTier)
	}
	if m.credit_limit != nil {
		fields = append(fields, creditscore.FieldCreditLimit)
	}
	if m.outstanding_balance != nil {
		fields = append(fields, creditscore.FieldOutstandingBalance)
	}
	if m.hold_active != nil {
		fields = append(fields, creditscore.FieldHoldActive)
	}
	if m.hold_reason != nil {
		fields = append(fields, creditscore.FieldHoldReason)
	}
	if m.factors != nil {
		fields = append(fields, creditscore.FieldFactors)
	}
	if m.calculated_at != nil {
		fields = append(fields, creditscore.FieldCalculatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditscore.FieldCustomerID:
		return m.CustomerID()
	case creditscore.FieldScore:
		return m.Score()
	case creditscore.FieldRiskTier:
		return m.RiskTier()
	case creditscore.FieldCreditLimit:
		return m.CreditLimit()
	case creditscore.FieldOutstandingBalance:
		return m.OutstandingBalance()
	case creditscore.FieldHoldActive:
		return m.HoldActive()
	case creditscore.FieldHoldReason:
		return m.HoldReason()
	case creditscore.FieldFactors:
		return m.Factors()
	case creditscore.FieldCalculatedAt:
		return m.CalculatedAt()
	case creditscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditscore.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case creditscore.FieldScore:
		return m.OldScore(ctx)
	case creditscore.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case creditscore.FieldCreditLimit:
		return m.OldCreditLimit(ctx)
	case creditscore.FieldOutstandingBalance:
		return m.OldOutstandingBalance(ctx)
	case creditscore.FieldHoldActive:
		return m.OldHoldActive(ctx)
	case creditscore.FieldHoldReason:
		return m.OldHoldReason(ctx)
	case creditscore.FieldFactors:
		return m.OldFactors(ctx)
	case creditscore.FieldCalculatedAt:
		return m.OldCalculatedAt(ctx)
	case creditscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreditScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditscore.FieldCustomerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case creditscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case creditscore.FieldRiskTier:
		v, ok := value.(creditscore.RiskTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case creditscore.FieldCreditLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditLimit(v)
		return nil
	case creditscore.FieldOutstandingBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutstandingBalance(v)
		return nil
	case creditscore.FieldHoldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoldActive(v)
		return nil
	case creditscore.FieldHoldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoldReason(v)
		return nil
	case creditscore.FieldFactors:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	case creditscore.FieldCalculatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedAt(v)
		return nil
	case creditscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreditScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditScoreMutation) AddedFields() []string {
	var fields []string
	if m.addcustomer_id != nil {
		fields = append(fields, creditscore.FieldCustomerID)
	}
	if m.addscore != nil {
		fields = append(fields, creditscore.FieldScore)
	}
	if m.addcredit_limit != nil {
		fields = append(fields, creditscore.FieldCreditLimit)
	}
	if m.addoutstanding_balance != nil {
		fields = append(fields, creditscore.FieldOutstandingBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creditscore.FieldCustomerID:
		return m.AddedCustomerID()
	case creditscore.FieldScore:
		return m.AddedScore()
	case creditscore.FieldCreditLimit:
		return m.AddedCreditLimit()
	case creditscore.FieldOutstandingBalance:
		return m.AddedOutstandingBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creditscore.FieldCustomerID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCustomerID(v)
		return nil
	case creditscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case creditscore.FieldCreditLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditLimit(v)
		return nil
	case creditscore.FieldOutstandingBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutstandingBalance(v)
		return nil
	}
	return fmt.Errorf("unknown CreditScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditscore.FieldHoldReason) {
		fields = append(fields, creditscore.FieldHoldReason)
	}
	if m.FieldCleared(creditscore.FieldFactors) {
		fields = append(fields, creditscore.FieldFactors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditScoreMutation) ClearField(name string) error {
	switch name {
	case creditscore.FieldHoldReason:
		m.ClearHoldReason()
		return nil
	case creditscore.FieldFactors:
		m.ClearFactors()
		return nil
	}
	return fmt.Errorf("unknown CreditScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditScoreMutation) ResetField(name string) error {
	switch name {
	case creditscore.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case creditscore.FieldScore:
		m.ResetScore()
		return nil
	case creditscore.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case creditscore.FieldCreditLimit:
		m.ResetCreditLimit()
		return nil
	case creditscore.FieldOutstandingBalance:
		m.ResetOutstandingBalance()
		return nil
	case creditscore.FieldHoldActive:
		m.ResetHoldActive()
		return nil
	case creditscore.FieldHoldReason:
		m.ResetHoldReason()
		return nil
	case creditscore.FieldFactors:
		m.ResetFactors()
		return nil
	case creditscore.FieldCalculatedAt:
		m.ResetCalculatedAt()
		return nil
	case creditscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CreditScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CreditScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CreditScore edge %s", name)
}

// DailyDigestMutation represents an operation that mutates the DailyDigest nodes in the graph.
type DailyDigestMutation struct {
	config
	op              Op
	typ             string
	id              *string
	digest_date     *time.Time
	user_role       *dailydigest.UserRole
	headline        *string
	sections        *[]map[string]interface{}
	appendsections  []map[string]interface{}
	delivery_status *dailydigest.DeliveryStatus
	tokens_used     *int
	addtokens_used  *int
	created_at      *time.Time
	delivered_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*DailyDigest, error)
	predicates      []predicate.DailyDigest
}

var _ ent.Mutation = (*DailyDigestMutation)(nil)

// dailydigestOption allows management of the mutation configuration using functional options.
type dailydigestOption func(*DailyDigestMutation)

// newDailyDigestMutation creates new mutation for the DailyDigest entity.
func newDailyDigestMutation(c config, op Op, opts ...dailydigestOption) *DailyDigestMutation {
	m := &DailyDigestMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyDigest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyDigestID sets the ID field of the mutation.
func withDailyDigestID(id string) dailydigestOption {
	return func(m *DailyDigestMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyDigest
		)
		m.oldValue = func(ctx context.Context) (*DailyDigest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyDigest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyDigest sets the old DailyDigest of the mutation.
func withDailyDigest(node *DailyDigest) dailydigestOption {
	return func(m *DailyDigestMutation) {
		m.oldValue = func(context.Context) (*DailyDigest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyDigestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyDigestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyDigest entities.
func (m *DailyDigestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyDigestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyDigestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyDigest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDigestDate sets the "digest_date" field.
func (m *DailyDigestMutation) SetDigestDate(t time.Time) {
	m.digest_date = &t
}

// DigestDate returns the value of the "digest_date" field in the mutation.
func (m *DailyDigestMutation) DigestDate() (r time.Time, exists bool) {
	v := m.digest_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDigestDate returns the old "digest_date" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldDigestDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDigestDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDigestDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDigestDate: %w", err)
	}
	return oldValue.DigestDate, nil
}

// ResetDigestDate resets all changes to the "digest_date" field.
func (m *DailyDigestMutation) ResetDigestDate() {
	m.digest_date = nil
}

// SetUserRole sets the "user_role" field.
func (m *DailyDigestMutation) SetUserRole(dr dailydigest.UserRole) {
	m.user_role = &dr
}

// UserRole returns the value of the "user_role" field in the mutation.
func (m *DailyDigestMutation) UserRole() (r dailydigest.UserRole, exists bool) {
	v := m.user_role
	if v == nil {
		return
	}
	return *v, true
}

// OldUserRole returns the old "user_role" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldUserRole(ctx context.Context) (v dailydigest.UserRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserRole: %w", err)
	}
	return oldValue.UserRole, nil
}

// ResetUserRole resets all changes to the "user_role" field.
func (m *DailyDigestMutation) ResetUserRole() {
	m.user_role = nil
}

// SetHeadline sets the "headline" field.
func (m *DailyDigestMutation) SetHeadline(s string) {
	m.headline = &s
}

// Headline returns the value of the "headline" field in the mutation.
func (m *DailyDigestMutation) Headline() (r string, exists bool) {
	v := m.headline
	if v == nil {
		return
	}
	return *v, true
}

// OldHeadline returns the old "headline" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldHeadline(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeadline: %w", err)
	}
	return oldValue.Headline, nil
}

// ResetHeadline resets all changes to the "headline" field.
func (m *DailyDigestMutation) ResetHeadline() {
	m.headline = nil
}

// SetSections sets the "sections" field.
func (m *DailyDigestMutation) SetSections(value []map[string]interface{}) {
	m.sections = &value
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *DailyDigestMutation) Sections() (r []map[string]interface{}, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldSections(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds value to the "sections" field.
func (m *DailyDigestMutation) AppendSections(value []map[string]interface{}) {
	m.appendsections = append(m.appendsections, value...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *DailyDigestMutation) AppendedSections() ([]map[string]interface{}, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ResetSections resets all changes to the "sections" field.
func (m *DailyDigestMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
}

// SetDeliveryStatus sets the "delivery_status" field.
func (m *DailyDigestMutation) SetDeliveryStatus(ds dailydigest.DeliveryStatus) {
	m.delivery_status = &ds
}

// DeliveryStatus returns the value of the "delivery_status" field in the mutation.
func (m *DailyDigestMutation) DeliveryStatus() (r dailydigest.DeliveryStatus, exists bool) {
	v := m.delivery_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryStatus returns the old "delivery_status" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldDeliveryStatus(ctx context.Context) (v dailydigest.DeliveryStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryStatus: %w", err)
	}
	return oldValue.DeliveryStatus, nil
}

// ResetDeliveryStatus resets all changes to the "delivery_status" field.
func (m *DailyDigestMutation) ResetDeliveryStatus() {
	m.delivery_status = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *DailyDigestMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *DailyDigestMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *DailyDigestMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *DailyDigestMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *DailyDigestMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DailyDigestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DailyDigestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DailyDigestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *DailyDigestMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *DailyDigestMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the DailyDigest entity.
// If the DailyDigest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyDigestMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *DailyDigestMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[dailydigest.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *DailyDigestMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[dailydigest.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *DailyDigestMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, dailydigest.FieldDeliveredAt)
}

// Where appends a list predicates to the DailyDigestMutation builder.
func (m *DailyDigestMutation) Where(ps ...predicate.DailyDigest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyDigestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyDigestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyDigest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyDigestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyDigestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyDigest).
func (m *DailyDigestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyDigestMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.digest_date != nil {
		fields = append(fields, dailydigest.FieldDigestDate)
	}
	if m.user_role != nil {
		fields = append(fields, dailydigest.FieldUserRole)
	}
	if m.headline != nil {
		fields = append(fields, dailydigest.FieldHeadline)
	}
	if m.sections != nil {
		fields = append(fields, dailydigest.FieldSections)
	}
	if m.delivery_status != nil {
		fields = append(fields, dailydigest.FieldDeliveryStatus)
	}
	if m.tokens_used != nil {
		fields = append(fields, dailydigest.FieldTokensUsed)
	}
	if m.created_at != nil {
		fields = append(fields, dailydigest.FieldCreatedAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, dailydigest.FieldDeliveredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyDigestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailydigest.FieldDigestDate:
		return m.DigestDate()
	case dailydigest.FieldUserRole:
		return m.UserRole()
	case dailydigest.FieldHeadline:
		return m.Headline()
	case dailydigest.FieldSections:
		return m.Sections()
	case dailydigest.FieldDeliveryStatus:
		return m.DeliveryStatus()
	case dailydigest.FieldTokensUsed:
		return m.TokensUsed()
	case dailydigest.FieldCreatedAt:
		return m.CreatedAt()
	case dailydigest.FieldDeliveredAt:
		return m.DeliveredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyDigestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailydigest.FieldDigestDate:
		return m.OldDigestDate(ctx)
	case dailydigest.FieldUserRole:
		return m.OldUserRole(ctx)
	case dailydigest.FieldHeadline:
		return m.OldHeadline(ctx)
	case dailydigest.FieldSections:
		return m.OldSections(ctx)
	case dailydigest.FieldDeliveryStatus:
		return m.OldDeliveryStatus(ctx)
	case dailydigest.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case dailydigest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dailydigest.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	}
	return nil, fmt.Errorf("unknown DailyDigest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyDigestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailydigest.FieldDigestDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDigestDate(v)
		return nil
	case dailydigest.FieldUserRole:
		v, ok := value.(dailydigest.UserRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserRole(v)
		return nil
	case dailydigest.FieldHeadline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeadline(v)
		return nil
	case dailydigest.FieldSections:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case dailydigest.FieldDeliveryStatus:
		v, ok := value.(dailydigest.DeliveryStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryStatus(v)
		return nil
	case dailydigest.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case dailydigest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dailydigest.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	}
	return fmt.Errorf("unknown DailyDigest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyDigestMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, dailydigest.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyDigestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailydigest.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyDigestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailydigest.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown DailyDigest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyDigestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dailydigest.FieldDeliveredAt) {
		fields = append(fields, dailydigest.FieldDeliveredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyDigestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyDigestMutation) ClearField(name string) error {
	switch name {
	case dailydigest.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown DailyDigest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyDigestMutation) ResetField(name string) error {
	switch name {
	case dailydigest.FieldDigestDate:
		m.ResetDigestDate()
		return nil
	case dailydigest.FieldUserRole:
		m.ResetUserRole()
		return nil
	case dailydigest.FieldHeadline:
		m.ResetHeadline()
		return nil
	case dailydigest.FieldSections:
		m.ResetSections()
		return nil
	case dailydigest.FieldDeliveryStatus:
		m.ResetDeliveryStatus()
		return nil
	case dailydigest.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case dailydigest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dailydigest.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown DailyDigest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyDigestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyDigestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyDigestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyDigestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyDigestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyDigestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyDigestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyDigest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyDigestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyDigest edge %s", name)
}

// DedupScanMutation represents an operation that mutates the DedupScan nodes in the graph.
type DedupScanMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	scan_type          *string
	status             *dedupscan.Status
	records_scanned    *int
	addrecords_scanned *int
	groups_found       *int
	addgroups_found    *int
	created_at         *time.Time
	completed_at       *time.Time
	error_message      *string
	clearedFields      map[string]struct{}
	groups             map[string]struct{}
	removedgroups      map[string]struct{}
	clearedgroups      bool
	done               bool
	oldValue           func(context.Context) (*DedupScan, error)
	predicates         []predicate.DedupScan
}

var _ ent.Mutation = (*DedupScanMutation)(nil)

// dedupscanOption allows management of the mutation configuration using functional options.
type dedupscanOption func(*DedupScanMutation)

// newDedupScanMutation creates new mutation for the DedupScan entity.
func newDedupScanMutation(c config, op Op, opts ...dedupscanOption) *DedupScanMutation {
	m := &DedupScanMutation{
		config:        c,
		op:            op,
		typ:           TypeDedupScan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDedupScanID sets the ID field of the mutation.
func withDedupScanID(id string) dedupscanOption {
	return func(m *DedupScanMutation) {
		var (
			err   error
			once  sync.Once
			value *DedupScan
		)
		m.oldValue = func(ctx context.Context) (*DedupScan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DedupScan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDedupScan sets the old DedupScan of the mutation.
func withDedupScan(node *DedupScan) dedupscanOption {
	return func(m *DedupScanMutation) {
		m.oldValue = func(context.Context) (*DedupScan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DedupScanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DedupScanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DedupScan entities.
func (m *DedupScanMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DedupScanMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DedupScanMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DedupScan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanType sets the "scan_type" field.
func (m *DedupScanMutation) SetScanType(s string) {
	m.scan_type = &s
}

// ScanType returns the value of the "scan_type" field in the mutation.
func (m *DedupScanMutation) ScanType() (r string, exists bool) {
	v := m.scan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScanType returns the old "scan_type" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldScanType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanType: %w", err)
	}
	return oldValue.ScanType, nil
}

// ResetScanType resets all changes to the "scan_type" field.
func (m *DedupScanMutation) ResetScanType() {
	m.scan_type = nil
}

// SetStatus sets the "status" field.
func (m *DedupScanMutation) SetStatus(d dedupscan.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DedupScanMutation) Status() (r dedupscan.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldStatus(ctx context.Context) (v dedupscan.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DedupScanMutation) ResetStatus() {
	m.status = nil
}

// SetRecordsScanned sets the "records_scanned" field.
func (m *DedupScanMutation) SetRecordsScanned(i int) {
	m.records_scanned = &i
	m.addrecords_scanned = nil
}

// RecordsScanned returns the value of the "records_scanned" field in the mutation.
func (m *DedupScanMutation) RecordsScanned() (r int, exists bool) {
	v := m.records_scanned
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsScanned returns the old "records_scanned" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldRecordsScanned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsScanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsScanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsScanned: %w", err)
	}
	return oldValue.RecordsScanned, nil
}

// AddRecordsScanned adds i to the "records_scanned" field.
func (m *DedupScanMutation) AddRecordsScanned(i int) {
	if m.addrecords_scanned != nil {
		*m.addrecords_scanned += i
	} else {
		m.addrecords_scanned = &i
	}
}

// AddedRecordsScanned returns the value that was added to the "records_scanned" field in this mutation.
func (m *DedupScanMutation) AddedRecordsScanned() (r int, exists bool) {
	v := m.addrecords_scanned
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordsScanned resets all changes to the "records_scanned" field.
func (m *DedupScanMutation) ResetRecordsScanned() {
	m.records_scanned = nil
	m.addrecords_scanned = nil
}

// SetGroupsFound sets the "groups_found" field.
func (m *DedupScanMutation) SetGroupsFound(i int) {
	m.groups_found = &i
	m.addgroups_found = nil
}

// GroupsFound returns the value of the "groups_found" field in the mutation.
func (m *DedupScanMutation) GroupsFound() (r int, exists bool) {
	v := m.groups_found
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupsFound returns the old "groups_found" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldGroupsFound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupsFound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupsFound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupsFound: %w", err)
	}
	return oldValue.GroupsFound, nil
}

// AddGroupsFound adds i to the "groups_found" field.
func (m *DedupScanMutation) AddGroupsFound(i int) {
	if m.addgroups_found != nil {
		*m.addgroups_found += i
	} else {
		m.addgroups_found = &i
	}
}

// AddedGroupsFound returns the value that was added to the "groups_found" field in this mutation.
func (m *DedupScanMutation) AddedGroupsFound() (r int, exists bool) {
	v := m.addgroups_found
	if v == nil {
		return
	}
	return *v, true
}

// ResetGroupsFound resets all changes to the "groups_found" field.
func (m *DedupScanMutation) ResetGroupsFound() {
	m.groups_found = nil
	m.addgroups_found = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DedupScanMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DedupScanMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DedupScanMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DedupScanMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DedupScanMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DedupScanMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[dedupscan.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DedupScanMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[dedupscan.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DedupScanMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, dedupscan.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *DedupScanMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DedupScanMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DedupScan entity.
// If the DedupScan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupScanMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DedupScanMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[dedupscan.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DedupScanMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[dedupscan.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DedupScanMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, dedupscan.FieldErrorMessage)
}

// AddGroupIDs adds the "groups" edge to the DuplicateGroup entity by ids.
func (m *DedupScanMutation) AddGroupIDs(ids ...string) {
	if m.groups == nil {
		m.groups = make(map[string]struct{})
	}
	for i := range ids {
		m.groups[ids[i]] = struct{}{}
	}
}

// ClearGroups clears the "groups" edge to the DuplicateGroup entity.
func (m *DedupScanMutation) ClearGroups() {
	m.clearedgroups = true
}

// GroupsCleared reports if the "groups" edge to the DuplicateGroup entity was cleared.
func (m *DedupScanMutation) GroupsCleared() bool {
	return m.clearedgroups
}

// RemoveGroupIDs removes the "groups" edge to the DuplicateGroup entity by IDs.
func (m *DedupScanMutation) RemoveGroupIDs(ids ...string) {
	if m.removedgroups == nil {
		m.removedgroups = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.groups, ids[i])
		m.removedgroups[ids[i]] = struct{}{}
	}
}

// RemovedGroups returns the removed IDs of the "groups" edge to the DuplicateGroup entity.
func (m *DedupScanMutation) RemovedGroupsIDs() (ids []string) {
	for id := range m.removedgroups {
		ids = append(ids, id)
	}
	return
}

// GroupsIDs returns the "groups" edge IDs in the mutation.
func (m *DedupScanMutation) GroupsIDs() (ids []string) {
	for id := range m.groups {
		ids = append(ids, id)
	}
	return
}

// ResetGroups resets all changes to the "groups" edge.
func (m *DedupScanMutation) ResetGroups() {
	m.groups = nil
	m.clearedgroups = false
	m.removedgroups = nil
}

// Where appends a list predicates to the DedupScanMutation builder.
func (m *DedupScanMutation) Where(ps ...predicate.DedupScan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DedupScanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DedupScanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DedupScan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DedupScanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DedupScanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DedupScan).
func (m *DedupScanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DedupScanMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.scan_type != nil {
		fields = append(fields, dedupscan.FieldScanType)
	}
	if m.status != nil {
		fields = append(fields, dedupscan.FieldStatus)
	}
	if m.records_scanned != nil {
		fields = append(fields, dedupscan.FieldRecordsScanned)
	}
	if m.groups_found != nil {
		fields = append(fields, dedupscan.FieldGroupsFound)
	}
	if m.created_at != nil {
		fields = append(fields, dedupscan.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, dedupscan.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, dedupscan.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DedupScanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dedupscan.FieldScanType:
		return m.ScanType()
	case dedupscan.FieldStatus:
		return m.Status()
	case dedupscan.FieldRecordsScanned:
		return m.RecordsScanned()
	case dedupscan.FieldGroupsFound:
		return m.GroupsFound()
	case dedupscan.FieldCreatedAt:
		return m.CreatedAt()
	case dedupscan.FieldCompletedAt:
		return m.CompletedAt()
	case dedupscan.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DedupScanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dedupscan.FieldScanType:
		return m.OldScanType(ctx)
	case dedupscan.FieldStatus:
		return m.OldStatus(ctx)
	case dedupscan.FieldRecordsScanned:
		return m.OldRecordsScanned(ctx)
	case dedupscan.FieldGroupsFound:
		return m.OldGroupsFound(ctx)
	case dedupscan.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dedupscan.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case dedupscan.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown DedupScan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DedupScanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dedupscan.FieldScanType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanType(v)
		return nil
	case dedupscan.FieldStatus:
		v, ok := value.(dedupscan.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dedupscan.FieldRecordsScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsScanned(v)
		return nil
	case dedupscan.FieldGroupsFound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupsFound(v)
		return nil
	case dedupscan.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dedupscan.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case dedupscan.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown DedupScan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DedupScanMutation) AddedFields() []string {
	var fields []string
	if m.addrecords_scanned != nil {
		fields = append(fields, dedupscan.FieldRecordsScanned)
	}
	if m.addgroups_found != nil {
		fields = append(fields, dedupscan.FieldGroupsFound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DedupScanMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dedupscan.FieldRecordsScanned:
		return m.AddedRecordsScanned()
	case dedupscan.FieldGroupsFound:
		return m.AddedGroupsFound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DedupScanMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dedupscan.FieldRecordsScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsScanned(v)
		return nil
	case dedupscan.FieldGroupsFound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGroupsFound(v)
		return nil
	}
	return fmt.Errorf("unknown DedupScan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DedupScanMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dedupscan.FieldCompletedAt) {
		fields = append(fields, dedupscan.FieldCompletedAt)
	}
	if m.FieldCleared(dedupscan.FieldErrorMessage) {
		fields = append(fields, dedupscan.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DedupScanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DedupScanMutation) ClearField(name string) error {
	switch name {
	case dedupscan.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case dedupscan.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DedupScan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DedupScanMutation) ResetField(name string) error {
	switch name {
	case dedupscan.FieldScanType:
		m.ResetScanType()
		return nil
	case dedupscan.FieldStatus:
		m.ResetStatus()
		return nil
	case dedupscan.FieldRecordsScanned:
		m.ResetRecordsScanned()
		return nil
	case dedupscan.FieldGroupsFound:
		m.ResetGroupsFound()
		return nil
	case dedupscan.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dedupscan.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case dedupscan.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DedupScan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DedupScanMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.groups != nil {
		edges = append(edges, dedupscan.EdgeGroups)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DedupScanMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dedupscan.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.groups))
		for id := range m.groups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DedupScanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgroups != nil {
		edges = append(edges, dedupscan.EdgeGroups)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DedupScanMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dedupscan.EdgeGroups:
		ids := make([]ent.Value, 0, len(m.removedgroups))
		for id := range m.removedgroups {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DedupScanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroups {
		edges = append(edges, dedupscan.EdgeGroups)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DedupScanMutation) EdgeCleared(name string) bool {
	switch name {
	case dedupscan.EdgeGroups:
		return m.clearedgroups
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DedupScanMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DedupScan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DedupScanMutation) ResetEdge(name string) error {
	switch name {
	case dedupscan.EdgeGroups:
		m.ResetGroups()
		return nil
	}
	return fmt.Errorf("unknown DedupScan edge %s", name)
}

// DisruptionPredictionMutation represents an operation that mutates the DisruptionPrediction nodes in the graph.
type DisruptionPredictionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	supplier_id             *int64
	addsupplier_id          *int64
	purchase_order_id       *int64
	addpurchase_order_id    *int64
	disruption_type         *disruptionprediction.DisruptionType
	probability             *float64
	addprobability          *float64
	predicted_date          *time.Time
	rationale               *string
	suggested_actions       *[]map[string]interface{}
	appendsuggested_actions []map[string]interface{}
	status                  *disruptionprediction.Status
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DisruptionPrediction, error)
	predicates              []predicate.DisruptionPrediction
}

var _ ent.Mutation = (*DisruptionPredictionMutation)(nil)

// disruptionpredictionOption allows management of the mutation configuration using functional options.
type disruptionpredictionOption func(*DisruptionPredictionMutation)

// newDisruptionPredictionMutation creates new mutation for the DisruptionPrediction entity.
func newDisruptionPredictionMutation(c config, op Op, opts ...disruptionpredictionOption) *DisruptionPredictionMutation {
	m := &DisruptionPredictionMutation{
		config:        c,
		op:            op,
		typ:           TypeDisruptionPrediction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDisruptionPredictionID sets the ID field of the mutation.
func withDisruptionPredictionID(id string) disruptionpredictionOption {
	return func(m *DisruptionPredictionMutation) {
		var (
			err   error
			once  sync.Once
			value *DisruptionPrediction
		)
		m.oldValue = func(ctx context.Context) (*DisruptionPrediction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DisruptionPrediction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDisruptionPrediction sets the old DisruptionPrediction of the mutation.
func withDisruptionPrediction(node *DisruptionPrediction) disruptionpredictionOption {
	return func(m *DisruptionPredictionMutation) {
		m.oldValue = func(context.Context) (*DisruptionPrediction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DisruptionPredictionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DisruptionPredictionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DisruptionPrediction entities.
func (m *DisruptionPredictionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DisruptionPredictionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DisruptionPredictionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DisruptionPrediction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierID sets the "supplier_id" field.
func (m *DisruptionPredictionMutation) SetSupplierID(i int64) {
	m.supplier_id = &i
	m.addsupplier_id = nil
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *DisruptionPredictionMutation) SupplierID() (r int64, exists bool) {
	v := m.supplier_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldSupplierID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// AddSupplierID adds i to the "supplier_id" field.
func (m *DisruptionPredictionMutation) AddSupplierID(i int64) {
	if m.addsupplier_id != nil {
		*m.addsupplier_id += i
	} else {
		m.addsupplier_id = &i
	}
}

// AddedSupplierID returns the value that was added to the "supplier_id" field in this mutation.
func (m *DisruptionPredictionMutation) AddedSupplierID() (r int64, exists bool) {
	v := m.addsupplier_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *DisruptionPredictionMutation) ResetSupplierID() {
	m.supplier_id = nil
	m.addsupplier_id = nil
}

// SetPurchaseOrderID sets the "purchase_order_id" field.
func (m *DisruptionPredictionMutation) SetPurchaseOrderID(i int64) {
	m.purchase_order_id = &i
	m.addpurchase_order_id = nil
}

// PurchaseOrderID returns the value of the "purchase_order_id" field in the mutation.
func (m *DisruptionPredictionMutation) PurchaseOrderID() (r int64, exists bool) {
	v := m.purchase_order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseOrderID returns the old "purchase_order_id" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldPurchaseOrderID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseOrderID: %w", err)
	}
	return oldValue.PurchaseOrderID, nil
}

// AddPurchaseOrderID adds i to the "purchase_order_id" field.
func (m *DisruptionPredictionMutation) AddPurchaseOrderID(i int64) {
	if m.addpurchase_order_id != nil {
		*m.addpurchase_order_id += i
	} else {
		m.addpurchase_order_id = &i
	}
}

// AddedPurchaseOrderID returns the value that was added to the "purchase_order_id" field in this mutation.
func (m *DisruptionPredictionMutation) AddedPurchaseOrderID() (r int64, exists bool) {
	v := m.addpurchase_order_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearPurchaseOrderID clears the value of the "purchase_order_id" field.
func (m *DisruptionPredictionMutation) ClearPurchaseOrderID() {
	m.purchase_order_id = nil
	m.addpurchase_order_id = nil
	m.clearedFields[disruptionprediction.FieldPurchaseOrderID] = struct{}{}
}

// PurchaseOrderIDCleared returns if the "purchase_order_id" field was cleared in this mutation.
func (m *DisruptionPredictionMutation) PurchaseOrderIDCleared() bool {
	_, ok := m.clearedFields[disruptionprediction.FieldPurchaseOrderID]
	return ok
}

// ResetPurchaseOrderID resets all changes to the "purchase_order_id" field.
func (m *DisruptionPredictionMutation) ResetPurchaseOrderID() {
	m.purchase_order_id = nil
	m.addpurchase_order_id = nil
	delete(m.clearedFields, disruptionprediction.FieldPurchaseOrderID)
}

// SetDisruptionType sets the "disruption_type" field.
func (m *DisruptionPredictionMutation) SetDisruptionType(dt disruptionprediction.DisruptionType) {
	m.disruption_type = &dt
}

// DisruptionType returns the value of the "disruption_type" field in the mutation.
func (m *DisruptionPredictionMutation) DisruptionType() (r disruptionprediction.DisruptionType, exists bool) {
	v := m.disruption_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDisruptionType returns the old "disruption_type" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldDisruptionType(ctx context.Context) (v disruptionprediction.DisruptionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisruptionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisruptionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisruptionType: %w", err)
	}
	return oldValue.DisruptionType, nil
}

// ResetDisruptionType resets all changes to the "disruption_type" field.
func (m *DisruptionPredictionMutation) ResetDisruptionType() {
	m.disruption_type = nil
}

// SetProbability sets the "probability" field.
func (m *DisruptionPredictionMutation) SetProbability(f float64) {
	m.probability = &f
	m.addprobability = nil
}

// Probability returns the value of the "probability" field in the mutation.
func (m *DisruptionPredictionMutation) Probability() (r float64, exists bool) {
	v := m.probability
	if v == nil {
		return
	}
	return *v, true
}

// OldProbability returns the old "probability" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbability: %w", err)
	}
	return oldValue.Probability, nil
}

// AddProbability adds f to the "probability" field.
func (m *DisruptionPredictionMutation) AddProbability(f float64) {
	if m.addprobability != nil {
		*m.addprobability += f
	} else {
		m.addprobability = &f
	}
}

// AddedProbability returns the value that was added to the "probability" field in this mutation.
func (m *DisruptionPredictionMutation) AddedProbability() (r float64, exists bool) {
	v := m.addprobability
	if v == nil {
		return
	}
	return *v, true
}

// ResetProbability resets all changes to the "probability" field.
func (m *DisruptionPredictionMutation) ResetProbability() {
	m.probability = nil
	m.addprobability = nil
}

// SetPredictedDate sets the "predicted_date" field.
func (m *DisruptionPredictionMutation) SetPredictedDate(t time.Time) {
	m.predicted_date = &t
}

// PredictedDate returns the value of the "predicted_date" field in the mutation.
func (m *DisruptionPredictionMutation) PredictedDate() (r time.Time, exists bool) {
	v := m.predicted_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictedDate returns the old "predicted_date" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldPredictedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictedDate: %w", err)
	}
	return oldValue.PredictedDate, nil
}

// ClearPredictedDate clears the value of the "predicted_date" field.
func (m *DisruptionPredictionMutation) ClearPredictedDate() {
	m.predicted_date = nil
	m.clearedFields[disruptionprediction.FieldPredictedDate] = struct{}{}
}

// PredictedDateCleared returns if the "predicted_date" field was cleared in this mutation.
func (m *DisruptionPredictionMutation) PredictedDateCleared() bool {
	_, ok := m.clearedFields[disruptionprediction.FieldPredictedDate]
	return ok
}

// ResetPredictedDate resets all changes to the "predicted_date" field.
func (m *DisruptionPredictionMutation) ResetPredictedDate() {
	m.predicted_date = nil
	delete(m.clearedFields, disruptionprediction.FieldPredictedDate)
}

// SetRationale sets the "rationale" field.
func (m *DisruptionPredictionMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *DisruptionPredictionMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *DisruptionPredictionMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[disruptionprediction.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *DisruptionPredictionMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[disruptionprediction.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *DisruptionPredictionMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, disruptionprediction.FieldRationale)
}

// SetSuggestedActions sets the "suggested_actions" field.
func (m *DisruptionPredictionMutation) SetSuggestedActions(value []map[string]interface{}) {
	m.suggested_actions = &value
	m.appendsuggested_actions = nil
}

// SuggestedActions returns the value of the "suggested_actions" field in the mutation.
func (m *DisruptionPredictionMutation) SuggestedActions() (r []map[string]interface{}, exists bool) {
	v := m.suggested_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedActions returns the old "suggested_actions" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldSuggestedActions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedActions: %w", err)
	}
	return oldValue.SuggestedActions, nil
}

// AppendSuggestedActions adds value to the "suggested_actions" field.
func (m *DisruptionPredictionMutation) AppendSuggestedActions(value []map[string]interface{}) {
	m.appendsuggested_actions = append(m.appendsuggested_actions, value...)
}

// AppendedSuggestedActions returns the list of values that were appended to the "suggested_actions" field in this mutation.
func (m *DisruptionPredictionMutation) AppendedSuggestedActions() ([]map[string]interface{}, bool) {
	if len(m.appendsuggested_actions) == 0 {
		return nil, false
	}
	return m.appendsuggested_actions, true
}

// ClearSuggestedActions clears the value of the "suggested_actions" field.
func (m *DisruptionPredictionMutation) ClearSuggestedActions() {
	m.suggested_actions = nil
	m.appendsuggested_actions = nil
	m.clearedFields[disruptionprediction.FieldSuggestedActions] = struct{}{}
}

// SuggestedActionsCleared returns if the "suggested_actions" field was cleared in this mutation.
func (m *DisruptionPredictionMutation) SuggestedActionsCleared() bool {
	_, ok := m.clearedFields[disruptionprediction.FieldSuggestedActions]
	return ok
}

// ResetSuggestedActions resets all changes to the "suggested_actions" field.
func (m *DisruptionPredictionMutation) ResetSuggestedActions() {
	m.suggested_actions = nil
	m.appendsuggested_actions = nil
	delete(m.clearedFields, disruptionprediction.FieldSuggestedActions)
}

// SetStatus sets the "status" field.
func (m *DisruptionPredictionMutation) SetStatus(d disruptionprediction.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DisruptionPredictionMutation) Status() (r disruptionprediction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldStatus(ctx context.Context) (v disruptionprediction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DisruptionPredictionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DisruptionPredictionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DisruptionPredictionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DisruptionPrediction entity.
// If the DisruptionPrediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DisruptionPredictionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DisruptionPredictionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DisruptionPredictionMutation builder.
func (m *DisruptionPredictionMutation) Where(ps ...predicate.DisruptionPrediction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DisruptionPredictionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DisruptionPredictionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DisruptionPrediction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DisruptionPredictionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DisruptionPredictionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DisruptionPrediction).
func (m *DisruptionPredictionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DisruptionPredictionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.supplier_id != nil {
		fields = append(fields, disruptionprediction.FieldSupplierID)
	}
	if m.purchase_order_id != nil {
		fields = append(fields, disruptionprediction.FieldPurchaseOrderID)
	}
	if m.disruption_type != nil {
		fields = append(fields, disruptionprediction.FieldDisruptionType)
	}
	if m.probability != nil {
		fields = append(fields, disruptionprediction.FieldProbability)
	}
	if m.predicted_date != nil {
		fields = append(fields, disruptionprediction.FieldPredictedDate)
	}
	if m.rationale != nil {
		fields = append(fields, disruptionprediction.FieldRationale)
	}
	if m.suggested_actions != nil {
		fields = append(fields, disruptionprediction.FieldSuggestedActions)
	}
	if m.status != nil {
		fields = append(fields, disruptionprediction.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, disruptionprediction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DisruptionPredictionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case disruptionprediction.FieldSupplierID:
		return m.SupplierID()
	case disruptionprediction.FieldPurchaseOrderID:
		return m.PurchaseOrderID()
	case disruptionprediction.FieldDisruptionType:
		return m.DisruptionType()
	case disruptionprediction.FieldProbability:
		return m.Probability()
	case disruptionprediction.FieldPredictedDate:
		return m.PredictedDate()
	case disruptionprediction.FieldRationale:
		return m.Rationale()
	case disruptionprediction.FieldSuggestedActions:
		return m.SuggestedActions()
	case disruptionprediction.FieldStatus:
		return m.Status()
	case disruptionprediction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DisruptionPredictionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case disruptionprediction.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case disruptionprediction.FieldPurchaseOrderID:
		return m.OldPurchaseOrderID(ctx)
	case disruptionprediction.FieldDisruptionType:
		return m.OldDisruptionType(ctx)
	case disruptionprediction.FieldProbability:
		return m.OldProbability(ctx)
	case disruptionprediction.FieldPredictedDate:
		return m.OldPredictedDate(ctx)
	case disruptionprediction.FieldRationale:
		return m.OldRationale(ctx)
	case disruptionprediction.FieldSuggestedActions:
		return m.OldSuggestedActions(ctx)
	case disruptionprediction.FieldStatus:
		return m.OldStatus(ctx)
	case disruptionprediction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DisruptionPrediction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DisruptionPredictionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case disruptionprediction.FieldSupplierID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case disruptionprediction.FieldPurchaseOrderID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseOrderID(v)
		return nil
	case disruptionprediction.FieldDisruptionType:
		v, ok := value.(disruptionprediction.DisruptionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisruptionType(v)
		return nil
	case disruptionprediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbability(v)
		return nil
	case disruptionprediction.FieldPredictedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictedDate(v)
		return nil
	case disruptionprediction.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case disruptionprediction.FieldSuggestedActions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedActions(v)
		return nil
	case disruptionprediction.FieldStatus:
		v, ok := value.(disruptionprediction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case disruptionprediction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DisruptionPrediction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DisruptionPredictionMutation) AddedFields() []string {
	var fields []string
	if m.addsupplier_id != nil {
		fields = append(fields, disruptionprediction.FieldSupplierID)
	}
	if m.addpurchase_order_id != nil {
		fields = append(fields, disruptionprediction.FieldPurchaseOrderID)
	}
	if m.addprobability != nil {
		fields = append(fields, disruptionprediction.FieldProbability)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DisruptionPredictionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case disruptionprediction.FieldSupplierID:
		return m.AddedSupplierID()
	case disruptionprediction.FieldPurchaseOrderID:
		return m.AddedPurchaseOrderID()
	case disruptionprediction.FieldProbability:
		return m.AddedProbability()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DisruptionPredictionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case disruptionprediction.FieldSupplierID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierID(v)
		return nil
	case disruptionprediction.FieldPurchaseOrderID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPurchaseOrderID(v)
		return nil
	case disruptionprediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProbability(v)
		return nil
	}
	return fmt.Errorf("unknown DisruptionPrediction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DisruptionPredictionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(disruptionprediction.FieldPurchaseOrderID) {
		fields = append(fields, disruptionprediction.FieldPurchaseOrderID)
	}
	if m.FieldCleared(disruptionprediction.FieldPredictedDate) {
		fields = append(fields, disruptionprediction.FieldPredictedDate)
	}
	if m.FieldCleared(disruptionprediction.FieldRationale) {
		fields = append(fields, disruptionprediction.FieldRationale)
	}
	if m.FieldCleared(disruptionprediction.FieldSuggestedActions) {
		fields = append(fields, disruptionprediction.FieldSuggestedActions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DisruptionPredictionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DisruptionPredictionMutation) ClearField(name string) error {
	switch name {
	case disruptionprediction.FieldPurchaseOrderID:
		m.ClearPurchaseOrderID()
		return nil
	case disruptionprediction.FieldPredictedDate:
		m.ClearPredictedDate()
		return nil
	case disruptionprediction.FieldRationale:
		m.ClearRationale()
		return nil
	case disruptionprediction.FieldSuggestedActions:
		m.ClearSuggestedActions()
		return nil
	}
	return fmt.Errorf("unknown DisruptionPrediction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DisruptionPredictionMutation) ResetField(name string) error {
	switch name {
	case disruptionprediction.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case disruptionprediction.FieldPurchaseOrderID:
		m.ResetPurchaseOrderID()
		return nil
	case disruptionprediction.FieldDisruptionType:
		m.ResetDisruptionType()
		return nil
	case disruptionprediction.FieldProbability:
		m.ResetProbability()
		return nil
	case disruptionprediction.FieldPredictedDate:
		m.ResetPredictedDate()
		return nil
	case disruptionprediction.FieldRationale:
		m.ResetRationale()
		return nil
	case disruptionprediction.FieldSuggestedActions:
		m.ResetSuggestedActions()
		return nil
	case disruptionprediction.FieldStatus:
		m.ResetStatus()
		return nil
	case disruptionprediction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DisruptionPrediction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DisruptionPredictionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DisruptionPredictionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DisruptionPredictionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DisruptionPredictionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DisruptionPredictionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DisruptionPredictionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DisruptionPredictionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DisruptionPrediction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DisruptionPredictionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DisruptionPrediction edge %s", name)
}

// DocumentJobMutation represents an operation that mutates the DocumentJob nodes in the graph.
type DocumentJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	document_type        *documentjob.DocumentType
	source_attachment    *string
	status               *documentjob.Status
	extracted_fields     *map[string]interface{}
	confidence           *float64
	addconfidence        *float64
	created_record_id    *int64
	addcreated_record_id *int64
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	corrections          map[string]struct{}
	removedcorrections   map[string]struct{}
	clearedcorrections   bool
	done                 bool
	oldValue             func(context.Context) (*DocumentJob, error)
	predicates           []predicate.DocumentJob
}

var _ ent.Mutation = (*DocumentJobMutation)(nil)

// documentjobOption allows management of the mutation configuration using functional options.
type documentjobOption func(*DocumentJobMutation)

// newDocumentJobMutation creates new mutation for the DocumentJob entity.
func newDocumentJobMutation(c config, op Op, opts ...documentjobOption) *DocumentJobMutation {
	m := &DocumentJobMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentJobID sets the ID field of the mutation.
func withDocumentJobID(id string) documentjobOption {
	return func(m *DocumentJobMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentJob
		)
		m.oldValue = func(ctx context.Context) (*DocumentJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentJob sets the old DocumentJob of the mutation.
func withDocumentJob(node *DocumentJob) documentjobOption {
	return func(m *DocumentJobMutation) {
		m.oldValue = func(context.Context) (*DocumentJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentJob entities.
func (m *DocumentJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentJobMutation) SetDocumentType(dt documentjob.DocumentType) {
	m.document_type = &dt
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentJobMutation) DocumentType() (r documentjob.DocumentType, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldDocumentType(ctx context.Context) (v documentjob.DocumentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentJobMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetSourceAttachment sets the "source_attachment" field.
func (m *DocumentJobMutation) SetSourceAttachment(s string) {
	m.source_attachment = &s
}

// SourceAttachment returns the value of the "source_attachment" field in the mutation.
func (m *DocumentJobMutation) SourceAttachment() (r string, exists bool) {
	v := m.source_attachment
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAttachment returns the old "source_attachment" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldSourceAttachment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAttachment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAttachment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAttachment: %w", err)
	}
	return oldValue.SourceAttachment, nil
}

// ResetSourceAttachment resets all changes to the "source_attachment" field.
func (m *DocumentJobMutation) ResetSourceAttachment() {
	m.source_attachment = nil
}

// SetStatus sets the "status" field.
func (m *DocumentJobMutation) SetStatus(d documentjob.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentJobMutation) Status() (r documentjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldStatus(ctx context.Context) (v documentjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentJobMutation) ResetStatus() {
	m.status = nil
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *DocumentJobMutation) SetExtractedFields(value map[string]interface{}) {
	m.extracted_fields = &value
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *DocumentJobMutation) ExtractedFields() (r map[string]interface{}, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldExtractedFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *DocumentJobMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.clearedFields[documentjob.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *DocumentJobMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[documentjob.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *DocumentJobMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	delete(m.clearedFields, documentjob.FieldExtractedFields)
}

// SetConfidence sets the "confidence" field.
func (m *DocumentJobMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocumentJobMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DocumentJobMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DocumentJobMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *DocumentJobMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[documentjob.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *DocumentJobMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[documentjob.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocumentJobMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, documentjob.FieldConfidence)
}

// SetCreatedRecordID sets the "created_record_id" field.
func (m *DocumentJobMutation) SetCreatedRecordID(i int64) {
	m.created_record_id = &i
	m.addcreated_record_id = nil
}

// CreatedRecordID returns the value of the "created_record_id" field in the mutation.
func (m *DocumentJobMutation) CreatedRecordID() (r int64, exists bool) {
	v := m.created_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedRecordID returns the old "created_record_id" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldCreatedRecordID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedRecordID: %w", err)
	}
	return oldValue.CreatedRecordID, nil
}

// AddCreatedRecordID adds i to the "created_record_id" field.
func (m *DocumentJobMutation) AddCreatedRecordID(i int64) {
	if m.addcreated_record_id != nil {
		*m.addcreated_record_id += i
	} else {
		m.addcreated_record_id = &i
	}
}

// AddedCreatedRecordID returns the value that was added to the "created_record_id" field in this mutation.
func (m *DocumentJobMutation) AddedCreatedRecordID() (r int64, exists bool) {
	v := m.addcreated_record_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCreatedRecordID clears the value of the "created_record_id" field.
func (m *DocumentJobMutation) ClearCreatedRecordID() {
	m.created_record_id = nil
	m.addcreated_record_id = nil
	m.clearedFields[documentjob.FieldCreatedRecordID] = struct{}{}
}

// CreatedRecordIDCleared returns if the "created_record_id" field was cleared in this mutation.
func (m *DocumentJobMutation) CreatedRecordIDCleared() bool {
	_, ok := m.clearedFields[documentjob.FieldCreatedRecordID]
	return ok
}

// ResetCreatedRecordID resets all changes to the "created_record_id" field.
func (m *DocumentJobMutation) ResetCreatedRecordID() {
	m.created_record_id = nil
	m.addcreated_record_id = nil
	delete(m.clearedFields, documentjob.FieldCreatedRecordID)
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[documentjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[documentjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, documentjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DocumentJob entity.
// If the DocumentJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCorrectionIDs adds the "corrections" edge to the ExtractionCorrection entity by ids.
func (m *DocumentJobMutation) AddCorrectionIDs(ids ...string) {
	if m.corrections == nil {
		m.corrections = make(map[string]struct{})
	}
	for i := range ids {
		m.corrections[ids[i]] = struct{}{}
	}
}

// ClearCorrections clears the "corrections" edge to the ExtractionCorrection entity.
func (m *DocumentJobMutation) ClearCorrections() {
	m.clearedcorrections = true
}

// CorrectionsCleared reports if the "corrections" edge to the ExtractionCorrection entity was cleared.
func (m *DocumentJobMutation) CorrectionsCleared() bool {
	return m.clearedcorrections
}

// RemoveCorrectionIDs removes the "corrections" edge to the ExtractionCorrection entity by IDs.
func (m *DocumentJobMutation) RemoveCorrectionIDs(ids ...string) {
	if m.removedcorrections == nil {
		m.removedcorrections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.corrections, ids[i])
		m.removedcorrections[ids[i]] = struct{}{}
	}
}

// RemovedCorrections returns the removed IDs of the "corrections" edge to the ExtractionCorrection entity.
func (m *DocumentJobMutation) RemovedCorrectionsIDs() (ids []string) {
	for id := range m.removedcorrections {
		ids = append(ids, id)
	}
	return
}

// CorrectionsIDs returns the "corrections" edge IDs in the mutation.
func (m *DocumentJobMutation) CorrectionsIDs() (ids []string) {
	for id := range m.corrections {
		ids = append(ids, id)
	}
	return
}

// ResetCorrections resets all changes to the "corrections" edge.
func (m *DocumentJobMutation) ResetCorrections() {
	m.corrections = nil
	m.clearedcorrections = false
	m.removedcorrections = nil
}

// Where appends a list predicates to the DocumentJobMutation builder.
func (m *DocumentJobMutation) Where(ps ...predicate.DocumentJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentJob).
func (m *DocumentJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document_type != nil {
		fields = append(fields, documentjob.FieldDocumentType)
	}
	if m.source_attachment != nil {
		fields = append(fields, documentjob.FieldSourceAttachment)
	}
	if m.status != nil {
		fields = append(fields, documentjob.FieldStatus)
	}
	if m.extracted_fields != nil {
		fields = append(fields, documentjob.FieldExtractedFields)
	}
	if m.confidence != nil {
		fields = append(fields, documentjob.FieldConfidence)
	}
	if m.created_record_id != nil {
		fields = append(fields, documentjob.FieldCreatedRecordID)
	}
	if m.error_message != nil {
		fields = append(fields, documentjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, documentjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, documentjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentjob.FieldDocumentType:
		return m.DocumentType()
	case documentjob.FieldSourceAttachment:
		return m.SourceAttachment()
	case documentjob.FieldStatus:
		return m.Status()
	case documentjob.FieldExtractedFields:
		return m.ExtractedFields()
	case documentjob.FieldConfidence:
		return m.Confidence()
	case documentjob.FieldCreatedRecordID:
		return m.CreatedRecordID()
	case documentjob.FieldErrorMessage:
		return m.ErrorMessage()
	case documentjob.FieldCreatedAt:
		return m.CreatedAt()
	case documentjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentjob.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case documentjob.FieldSourceAttachment:
		return m.OldSourceAttachment(ctx)
	case documentjob.FieldStatus:
		return m.OldStatus(ctx)
	case documentjob.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case documentjob.FieldConfidence:
		return m.OldConfidence(ctx)
	case documentjob.FieldCreatedRecordID:
		return m.OldCreatedRecordID(ctx)
	case documentjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case documentjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case documentjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentjob.FieldDocumentType:
		v, ok := value.(documentjob.DocumentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case documentjob.FieldSourceAttachment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAttachment(v)
		return nil
	case documentjob.FieldStatus:
		v, ok := value.(documentjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case documentjob.FieldExtractedFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case documentjob.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case documentjob.FieldCreatedRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedRecordID(v)
		return nil
	case documentjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case documentjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case documentjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentJobMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, documentjob.FieldConfidence)
	}
	if m.addcreated_record_id != nil {
		fields = append(fields, documentjob.FieldCreatedRecordID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentjob.FieldConfidence:
		return m.AddedConfidence()
	case documentjob.FieldCreatedRecordID:
		return m.AddedCreatedRecordID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentjob.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case documentjob.FieldCreatedRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedRecordID(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentjob.FieldExtractedFields) {
		fields = append(fields, documentjob.FieldExtractedFields)
	}
	if m.FieldCleared(documentjob.FieldConfidence) {
		fields = append(fields, documentjob.FieldConfidence)
	}
	if m.FieldCleared(documentjob.FieldCreatedRecordID) {
		fields = append(fields, documentjob.FieldCreatedRecordID)
	}
	if m.FieldCleared(documentjob.FieldErrorMessage) {
		fields = append(fields, documentjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentJobMutation) ClearField(name string) error {
	switch name {
	case documentjob.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case documentjob.FieldConfidence:
		m.ClearConfidence()
		return nil
	case documentjob.FieldCreatedRecordID:
		m.ClearCreatedRecordID()
		return nil
	case documentjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown DocumentJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentJobMutation) ResetField(name string) error {
	switch name {
	case documentjob.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case documentjob.FieldSourceAttachment:
		m.ResetSourceAttachment()
		return nil
	case documentjob.FieldStatus:
		m.ResetStatus()
		return nil
	case documentjob.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case documentjob.FieldConfidence:
		m.ResetConfidence()
		return nil
	case documentjob.FieldCreatedRecordID:
		m.ResetCreatedRecordID()
		return nil
	case documentjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case documentjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case documentjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.corrections != nil {
		edges = append(edges, documentjob.EdgeCorrections)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentjob.EdgeCorrections:
		ids := make([]ent.Value, 0, len(m.corrections))
		for id := range m.corrections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcorrections != nil {
		edges = append(edges, documentjob.EdgeCorrections)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentjob.EdgeCorrections:
		ids := make([]ent.Value, 0, len(m.removedcorrections))
		for id := range m.removedcorrections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcorrections {
		edges = append(edges, documentjob.EdgeCorrections)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentJobMutation) EdgeCleared(name string) bool {
	switch name {
	case documentjob.EdgeCorrections:
		return m.clearedcorrections
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DocumentJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentJobMutation) ResetEdge(name string) error {
	switch name {
	case documentjob.EdgeCorrections:
		m.ResetCorrections()
		return nil
	}
	return fmt.Errorf("unknown DocumentJob edge %s", name)
}

// DuplicateGroupMutation represents an operation that mutates the DuplicateGroup nodes in the graph.
type DuplicateGroupMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	entity_type          *string
	record_ids           *[]int64
	appendrecord_ids     []int64
	master_record_id     *int64
	addmaster_record_id  *int64
	similarity_score     *float64
	addsimilarity_score  *float64
	matched_fields       *[]string
	appendmatched_fields []string
	resolution           *duplicategroup.Resolution
	resolved_by          *string
	resolved_at          *time.Time
	clearedFields        map[string]struct{}
	scan                 *string
	clearedscan          bool
	done                 bool
	oldValue             func(context.Context) (*DuplicateGroup, error)
	predicates           []predicate.DuplicateGroup
}

var _ ent.Mutation = (*DuplicateGroupMutation)(nil)

// duplicategroupOption allows management of the mutation configuration using functional options.
type duplicategroupOption func(*DuplicateGroupMutation)

// newDuplicateGroupMutation creates new mutation for the DuplicateGroup entity.
func newDuplicateGroupMutation(c config, op Op, opts ...duplicategroupOption) *DuplicateGroupMutation {
	m := &DuplicateGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeDuplicateGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDuplicateGroupID sets the ID field of the mutation.
func withDuplicateGroupID(id string) duplicategroupOption {
	return func(m *DuplicateGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *DuplicateGroup
		)
		m.oldValue = func(ctx context.Context) (*DuplicateGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DuplicateGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDuplicateGroup sets the old DuplicateGroup of the mutation.
func withDuplicateGroup(node *DuplicateGroup) duplicategroupOption {
	return func(m *DuplicateGroupMutation) {
		m.oldValue = func(context.Context) (*DuplicateGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DuplicateGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DuplicateGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DuplicateGroup entities.
func (m *DuplicateGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DuplicateGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DuplicateGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DuplicateGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScanID sets the "scan_id" field.
func (m *DuplicateGroupMutation) SetScanID(s string) {
	m.scan = &s
}

// ScanID returns the value of the "scan_id" field in the mutation.
func (m *DuplicateGroupMutation) ScanID() (r string, exists bool) {
	v := m.scan
	if v == nil {
		return
	}
	return *v, true
}

// OldScanID returns the old "scan_id" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldScanID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanID: %w", err)
	}
	return oldValue.ScanID, nil
}

// ResetScanID resets all changes to the "scan_id" field.
func (m *DuplicateGroupMutation) ResetScanID() {
	m.scan = nil
}

// SetEntityType sets the "entity_type" field.
func (m *DuplicateGroupMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *DuplicateGroupMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *DuplicateGroupMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetRecordIds sets the "record_ids" field.
func (m *DuplicateGroupMutation) SetRecordIds(i []int64) {
	m.record_ids = &i
	m.appendrecord_ids = nil
}

// RecordIds returns the value of the "record_ids" field in the mutation.
func (m *DuplicateGroupMutation) RecordIds() (r []int64, exists bool) {
	v := m.record_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordIds returns the old "record_ids" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldRecordIds(ctx context.Context) (v []int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordIds: %w", err)
	}
	return oldValue.RecordIds, nil
}

// AppendRecordIds adds i to the "record_ids" field.
func (m *DuplicateGroupMutation) AppendRecordIds(i []int64) {
	m.appendrecord_ids = append(m.appendrecord_ids, i...)
}

// AppendedRecordIds returns the list of values that were appended to the "record_ids" field in this mutation.
func (m *DuplicateGroupMutation) AppendedRecordIds() ([]int64, bool) {
	if len(m.appendrecord_ids) == 0 {
		return nil, false
	}
	return m.appendrecord_ids, true
}

// ResetRecordIds resets all changes to the "record_ids" field.
func (m *DuplicateGroupMutation) ResetRecordIds() {
	m.record_ids = nil
	m.appendrecord_ids = nil
}

// SetMasterRecordID sets the "master_record_id" field.
func (m *DuplicateGroupMutation) SetMasterRecordID(i int64) {
	m.master_record_id = &i
	m.addmaster_record_id = nil
}

// MasterRecordID returns the value of the "master_record_id" field in the mutation.
func (m *DuplicateGroupMutation) MasterRecordID() (r int64, exists bool) {
	v := m.master_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMasterRecordID returns the old "master_record_id" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldMasterRecordID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasterRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasterRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasterRecordID: %w", err)
	}
	return oldValue.MasterRecordID, nil
}

// AddMasterRecordID adds i to the "master_record_id" field.
func (m *DuplicateGroupMutation) AddMasterRecordID(i int64) {
	if m.addmaster_record_id != nil {
		*m.addmaster_record_id += i
	} else {
		m.addmaster_record_id = &i
	}
}

// AddedMasterRecordID returns the value that was added to the "master_record_id" field in this mutation.
func (m *DuplicateGroupMutation) AddedMasterRecordID() (r int64, exists bool) {
	v := m.addmaster_record_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasterRecordID resets all changes to the "master_record_id" field.
func (m *DuplicateGroupMutation) ResetMasterRecordID() {
	m.master_record_id = nil
	m.addmaster_record_id = nil
}

// SetSimilarityScore sets the "similarity_score" field.
func (m *DuplicateGroupMutation) SetSimilarityScore(f float64) {
	m.similarity_score = &f
	m.addsimilarity_score = nil
}

// SimilarityScore returns the value of the "similarity_score" field in the mutation.
func (m *DuplicateGroupMutation) SimilarityScore() (r float64, exists bool) {
	v := m.similarity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarityScore returns the old "similarity_score" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldSimilarityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarityScore: %w", err)
	}
	return oldValue.SimilarityScore, nil
}

// AddSimilarityScore adds f to the "similarity_score" field.
func (m *DuplicateGroupMutation) AddSimilarityScore(f float64) {
	if m.addsimilarity_score != nil {
		*m.addsimilarity_score += f
	} else {
		m.addsimilarity_score = &f
	}
}

// AddedSimilarityScore returns the value that was added to the "similarity_score" field in this mutation.
func (m *DuplicateGroupMutation) AddedSimilarityScore() (r float64, exists bool) {
	v := m.addsimilarity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarityScore resets all changes to the "similarity_score" field.
func (m *DuplicateGroupMutation) ResetSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
}

// SetMatchedFields sets the "matched_fields" field.
func (m *DuplicateGroupMutation) SetMatchedFields(s []string) {
	m.matched_fields = &s
	m.appendmatched_fields = nil
}

// MatchedFields returns the value of the "matched_fields" field in the mutation.
func (m *DuplicateGroupMutation) MatchedFields() (r []string, exists bool) {
	v := m.matched_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedFields returns the old "matched_fields" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldMatchedFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedFields: %w", err)
	}
	return oldValue.MatchedFields, nil
}

// AppendMatchedFields adds s to the "matched_fields" field.
func (m *DuplicateGroupMutation) AppendMatchedFields(s []string) {
	m.appendmatched_fields = append(m.appendmatched_fields, s...)
}

// AppendedMatchedFields returns the list of values that were appended to the "matched_fields" field in this mutation.
func (m *DuplicateGroupMutation) AppendedMatchedFields() ([]string, bool) {
	if len(m.appendmatched_fields) == 0 {
		return nil, false
	}
	return m.appendmatched_fields, true
}

// ClearMatchedFields clears the value of the "matched_fields" field.
func (m *DuplicateGroupMutation) ClearMatchedFields() {
	m.matched_fields = nil
	m.appendmatched_fields = nil
	m.clearedFields[duplicategroup.FieldMatchedFields] = struct{}{}
}

// MatchedFieldsCleared returns if the "matched_fields" field was cleared in this mutation.
func (m *DuplicateGroupMutation) MatchedFieldsCleared() bool {
	_, ok := m.clearedFields[duplicategroup.FieldMatchedFields]
	return ok
}

// ResetMatchedFields resets all changes to the "matched_fields" field.
func (m *DuplicateGroupMutation) ResetMatchedFields() {
	m.matched_fields = nil
	m.appendmatched_fields = nil
	delete(m.clearedFields, duplicategroup.FieldMatchedFields)
}

// SetResolution sets the "resolution" field.
func (m *DuplicateGroupMutation) SetResolution(d duplicategroup.Resolution) {
	m.resolution = &d
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *DuplicateGroupMutation) Resolution() (r duplicategroup.Resolution, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldResolution(ctx context.Context) (v duplicategroup.Resolution, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ResetResolution resets all changes to the "resolution" field.
func (m *DuplicateGroupMutation) ResetResolution() {
	m.resolution = nil
}

// SetResolvedBy sets the "resolved_by" field.
func (m *DuplicateGroupMutation) SetResolvedBy(s string) {
	m.resolved_by = &s
}

// ResolvedBy returns the value of the "resolved_by" field in the mutation.
func (m *DuplicateGroupMutation) ResolvedBy() (r string, exists bool) {
	v := m.resolved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedBy returns the old "resolved_by" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldResolvedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedBy: %w", err)
	}
	return oldValue.ResolvedBy, nil
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (m *DuplicateGroupMutation) ClearResolvedBy() {
	m.resolved_by = nil
	m.clearedFields[duplicategroup.FieldResolvedBy] = struct{}{}
}

// ResolvedByCleared returns if the "resolved_by" field was cleared in this mutation.
func (m *DuplicateGroupMutation) ResolvedByCleared() bool {
	_, ok := m.clearedFields[duplicategroup.FieldResolvedBy]
	return ok
}

// ResetResolvedBy resets all changes to the "resolved_by" field.
func (m *DuplicateGroupMutation) ResetResolvedBy() {
	m.resolved_by = nil
	delete(m.clearedFields, duplicategroup.FieldResolvedBy)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *DuplicateGroupMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *DuplicateGroupMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *DuplicateGroupMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[duplicategroup.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *DuplicateGroupMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[duplicategroup.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *DuplicateGroupMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, duplicategroup.FieldResolvedAt)
}

// ClearScan clears the "scan" edge to the DedupScan entity.
func (m *DuplicateGroupMutation) ClearScan() {
	m.clearedscan = true
	m.clearedFields[duplicategroup.FieldScanID] = struct{}{}
}

// ScanCleared reports if the "scan" edge to the DedupScan entity was cleared.
func (m *DuplicateGroupMutation) ScanCleared() bool {
	return m.clearedscan
}

// ScanIDs returns the "scan" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScanID instead. It exists only for internal usage by the builders.
func (m *DuplicateGroupMutation) ScanIDs() (ids []string) {
	if id := m.scan; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScan resets all changes to the "scan" edge.
func (m *DuplicateGroupMutation) ResetScan() {
	m.scan = nil
	m.clearedscan = false
}

// Where appends a list predicates to the DuplicateGroupMutation builder.
func (m *DuplicateGroupMutation) Where(ps ...predicate.DuplicateGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DuplicateGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DuplicateGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DuplicateGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DuplicateGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DuplicateGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DuplicateGroup).
func (m *DuplicateGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DuplicateGroupMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.scan != nil {
		fields = append(fields, duplicategroup.FieldScanID)
	}
	if m.entity_type != nil {
		fields = append(fields, duplicategroup.FieldEntityType)
	}
	if m.record_ids != nil {
		fields = append(fields, duplicategroup.FieldRecordIds)
	}
	if m.master_record_id != nil {
		fields = append(fields, duplicategroup.FieldMasterRecordID)
	}
	if m.similarity_score != nil {
		fields = append(fields, duplicategroup.FieldSimilarityScore)
	}
	if m.matched_fields != nil {
		fields = append(fields, duplicategroup.FieldMatchedFields)
	}
	if m.resolution != nil {
		fields = append(fields, duplicategroup.FieldResolution)
	}
	if m.resolved_by != nil {
		fields = append(fields, duplicategroup.FieldResolvedBy)
	}
	if m.resolved_at != nil {
		fields = append(fields, duplicategroup.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DuplicateGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case duplicategroup.FieldScanID:
		return m.ScanID()
	case duplicategroup.FieldEntityType:
		return m.EntityType()
	case duplicategroup.FieldRecordIds:
		return m.RecordIds()
	case duplicategroup.FieldMasterRecordID:
		return m.MasterRecordID()
	case duplicategroup.FieldSimilarityScore:
		return m.SimilarityScore()
	case duplicategroup.FieldMatchedFields:
		return m.MatchedFields()
	case duplicategroup.FieldResolution:
		return m.Resolution()
	case duplicategroup.FieldResolvedBy:
		return m.ResolvedBy()
	case duplicategroup.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DuplicateGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case duplicategroup.FieldScanID:
		return m.OldScanID(ctx)
	case duplicategroup.FieldEntityType:
		return m.OldEntityType(ctx)
	case duplicategroup.FieldRecordIds:
		return m.OldRecordIds(ctx)
	case duplicategroup.FieldMasterRecordID:
		return m.OldMasterRecordID(ctx)
	case duplicategroup.FieldSimilarityScore:
		return m.OldSimilarityScore(ctx)
	case duplicategroup.FieldMatchedFields:
		return m.OldMatchedFields(ctx)
	case duplicategroup.FieldResolution:
		return m.OldResolution(ctx)
	case duplicategroup.FieldResolvedBy:
		return m.OldResolvedBy(ctx)
	case duplicategroup.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DuplicateGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case duplicategroup.FieldScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanID(v)
		return nil
	case duplicategroup.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case duplicategroup.FieldRecordIds:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordIds(v)
		return nil
	case duplicategroup.FieldMasterRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasterRecordID(v)
		return nil
	case duplicategroup.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarityScore(v)
		return nil
	case duplicategroup.FieldMatchedFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedFields(v)
		return nil
	case duplicategroup.FieldResolution:
		v, ok := value.(duplicategroup.Resolution)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case duplicategroup.FieldResolvedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedBy(v)
		return nil
	case duplicategroup.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DuplicateGroupMutation) AddedFields() []string {
	var fields []string
	if m.addmaster_record_id != nil {
		fields = append(fields, duplicategroup.FieldMasterRecordID)
	}
	if m.addsimilarity_score != nil {
		fields = append(fields, duplicategroup.FieldSimilarityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DuplicateGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case duplicategroup.FieldMasterRecordID:
		return m.AddedMasterRecordID()
	case duplicategroup.FieldSimilarityScore:
		return m.AddedSimilarityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case duplicategroup.FieldMasterRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasterRecordID(v)
		return nil
	case duplicategroup.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarityScore(v)
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DuplicateGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(duplicategroup.FieldMatchedFields) {
		fields = append(fields, duplicategroup.FieldMatchedFields)
	}
	if m.FieldCleared(duplicategroup.FieldResolvedBy) {
		fields = append(fields, duplicategroup.FieldResolvedBy)
	}
	if m.FieldCleared(duplicategroup.FieldResolvedAt) {
		fields = append(fields, duplicategroup.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DuplicateGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DuplicateGroupMutation) ClearField(name string) error {
	switch name {
	case duplicategroup.FieldMatchedFields:
		m.ClearMatchedFields()
		return nil
	case duplicategroup.FieldResolvedBy:
		m.ClearResolvedBy()
		return nil
	case duplicategroup.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DuplicateGroupMutation) ResetField(name string) error {
	switch name {
	case duplicategroup.FieldScanID:
		m.ResetScanID()
		return nil
	case duplicategroup.FieldEntityType:
		m.ResetEntityType()
		return nil
	case duplicategroup.FieldRecordIds:
		m.ResetRecordIds()
		return nil
	case duplicategroup.FieldMasterRecordID:
		m.ResetMasterRecordID()
		return nil
	case duplicategroup.FieldSimilarityScore:
		m.ResetSimilarityScore()
		return nil
	case duplicategroup.FieldMatchedFields:
		m.ResetMatchedFields()
		return nil
	case duplicategroup.FieldResolution:
		m.ResetResolution()
		return nil
	case duplicategroup.FieldResolvedBy:
		m.ResetResolvedBy()
		return nil
	case duplicategroup.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DuplicateGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.scan != nil {
		edges = append(edges, duplicategroup.EdgeScan)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DuplicateGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case duplicategroup.EdgeScan:
		if id := m.scan; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DuplicateGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DuplicateGroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DuplicateGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedscan {
		edges = append(edges, duplicategroup.EdgeScan)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DuplicateGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case duplicategroup.EdgeScan:
		return m.clearedscan
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DuplicateGroupMutation) ClearEdge(name string) error {
	switch name {
	case duplicategroup.EdgeScan:
		m.ClearScan()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DuplicateGroupMutation) ResetEdge(name string) error {
	switch name {
	case duplicategroup.EdgeScan:
		m.ResetScan()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup edge %s", name)
}

// ExtractionCorrectionMutation represents an operation that mutates the ExtractionCorrection nodes in the graph.
type ExtractionCorrectionMutation struct {
	config
	op              Op
	typ             string
	id              *string
	field_name      *string
	extracted_value *string
	corrected_value *string
	corrected_by    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	job             *string
	clearedjob      bool
	done            bool
	oldValue        func(context.Context) (*ExtractionCorrection, error)
	predicates      []predicate.ExtractionCorrection
}

var _ ent.Mutation = (*ExtractionCorrectionMutation)(nil)

// extractioncorrectionOption allows management of the mutation configuration using functional options.
type extractioncorrectionOption func(*ExtractionCorrectionMutation)

// newExtractionCorrectionMutation creates new mutation for the ExtractionCorrection entity.
func newExtractionCorrectionMutation(c config, op Op, opts ...extractioncorrectionOption) *ExtractionCorrectionMutation {
	m := &ExtractionCorrectionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionCorrection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionCorrectionID sets the ID field of the mutation.
func withExtractionCorrectionID(id string) extractioncorrectionOption {
	return func(m *ExtractionCorrectionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionCorrection
		)
		m.oldValue = func(ctx context.Context) (*ExtractionCorrection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionCorrection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionCorrection sets the old ExtractionCorrection of the mutation.
func withExtractionCorrection(node *ExtractionCorrection) extractioncorrectionOption {
	return func(m *ExtractionCorrectionMutation) {
		m.oldValue = func(context.Context) (*ExtractionCorrection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionCorrectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionCorrectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionCorrection entities.
func (m *ExtractionCorrectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionCorrectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionCorrectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionCorrection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ExtractionCorrectionMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ExtractionCorrectionMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ExtractionCorrection entity.
// If the ExtractionCorrection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionCorrectionMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ExtractionCorrectionMutation) ResetJobID() {
	m.job = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractionCorrectionMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractionCorrectionMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ExtractionCorrection entity.
// If the ExtractionCorrection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionCorrectionMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractionCorrectionMutation) ResetFieldName() {
	m.field_name = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ExtractionCorrectionMutation) SetExtractedValue(s string) {
	m.extracted_value = &s
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ExtractionCorrectionMutation) ExtractedValue() (r string, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ExtractionCorrection entity.
// If the ExtractionCorrection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionCorrectionMutation) OldExtractedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (m *ExtractionCorrectionMutation) ClearExtractedValue() {
	m.extracted_value = nil
	m.clearedFields[extractioncorrection.FieldExtractedValue] = struct{}{}
}

// ExtractedValueCleared returns if the "extracted_value" field was cleared in this mutation.
func (m *ExtractionCorrectionMutation) ExtractedValueCleared() bool {
	_, ok := m.clearedFields[extractioncorrection.FieldExtractedValue]
	return ok
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ExtractionCorrectionMutation) ResetExtractedValue() {
	m.extracted_value = nil
	delete(m.clearedFields, extractioncorrection.FieldExtractedValue)
}

// SetCorrectedValue sets the "corrected_value" field.
func (m *ExtractionCorrectionMutation) SetCorrectedValue(s string) {
	m.corrected_value = &s
}

// CorrectedValue returns the value of the "corrected_value" field in the mutation.
func (m *ExtractionCorrectionMutation) CorrectedValue() (r string, exists bool) {
	v := m.corrected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedValue returns the old "corrected_value" field's value of the ExtractionCorrection entity.
// If the ExtractionCorrection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionCorrectionMutation) OldCorrectedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedValue: %w", err)
	}
	return oldValue.CorrectedValue, nil
}

// ResetCorrectedValue resets all changes to the "corrected_value" field.
func (m *ExtractionCorrectionMutation) ResetCorrectedValue() {
	m.corrected_value = nil
}

// SetCorrectedBy sets the "corrected_by" field.
func (m *ExtractionCorrectionMutation) SetCorrectedBy(s string) {
	m.corrected_by = &s
}

// CorrectedBy returns the value of the "corrected_by" field in the mutation.
func (m *ExtractionCorrectionMutation) CorrectedBy() (r string, exists bool) {
	v := m.corrected_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedBy returns the old "corrected_by" field's value of the ExtractionCorrection entity.
// If the ExtractionCorrection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionCorrectionMutation) OldCorrectedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedBy: %w", err)
	}
	return oldValue.CorrectedBy, nil
}

// ClearCorrectedBy clears the value of the "corrected_by" field.
func (m *ExtractionCorrectionMutation) ClearCorrectedBy() {
	m.corrected_by = nil
	m.clearedFields[extractioncorrection.FieldCorrectedBy] = struct{}{}
}

// CorrectedByCleared returns if the "corrected_by" field was cleared in this mutation.
func (m *ExtractionCorrectionMutation) CorrectedByCleared() bool {
	_, ok := m.clearedFields[extractioncorrection.FieldCorrectedBy]
	return ok
}

// ResetCorrectedBy resets all changes to the "corrected_by" field.
func (m *ExtractionCorrectionMutation) ResetCorrectedBy() {
	m.corrected_by = nil
	delete(m.clearedFields, extractioncorrection.FieldCorrectedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionCorrectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionCorrectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionCorrection entity.
// If the ExtractionCorrection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionCorrectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionCorrectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the DocumentJob entity.
func (m *ExtractionCorrectionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[extractioncorrection.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the DocumentJob entity was cleared.
func (m *ExtractionCorrectionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ExtractionCorrectionMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ExtractionCorrectionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ExtractionCorrectionMutation builder.
func (m *ExtractionCorrectionMutation) Where(ps ...predicate.ExtractionCorrection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionCorrectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionCorrectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionCorrection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionCorrectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionCorrectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionCorrection).
func (m *ExtractionCorrectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionCorrectionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, extractioncorrection.FieldJobID)
	}
	if m.field_name != nil {
		fields = append(fields, extractioncorrection.FieldFieldName)
	}
	if m.extracted_value != nil {
		fields = append(fields, extractioncorrection.FieldExtractedValue)
	}
	if m.corrected_value != nil {
		fields = append(fields, extractioncorrection.FieldCorrectedValue)
	}
	if m.corrected_by != nil {
		fields = append(fields, extractioncorrection.FieldCorrectedBy)
	}
	if m.created_at != nil {
		fields = append(fields, extractioncorrection.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionCorrectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractioncorrection.FieldJobID:
		return m.JobID()
	case extractioncorrection.FieldFieldName:
		return m.FieldName()
	case extractioncorrection.FieldExtractedValue:
		return m.ExtractedValue()
	case extractioncorrection.FieldCorrectedValue:
		return m.CorrectedValue()
	case extractioncorrection.FieldCorrectedBy:
		return m.CorrectedBy()
	case extractioncorrection.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionCorrectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractioncorrection.FieldJobID:
		return m.OldJobID(ctx)
	case extractioncorrection.FieldFieldName:
		return m.OldFieldName(ctx)
	case extractioncorrection.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case extractioncorrection.FieldCorrectedValue:
		return m.OldCorrectedValue(ctx)
	case extractioncorrection.FieldCorrectedBy:
		return m.OldCorrectedBy(ctx)
	case extractioncorrection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionCorrection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionCorrectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractioncorrection.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case extractioncorrection.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extractioncorrection.FieldExtractedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case extractioncorrection.FieldCorrectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedValue(v)
		return nil
	case extractioncorrection.FieldCorrectedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedBy(v)
		return nil
	case extractioncorrection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionCorrection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionCorrectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionCorrectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionCorrectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionCorrection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionCorrectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractioncorrection.FieldExtractedValue) {
		fields = append(fields, extractioncorrection.FieldExtractedValue)
	}
	if m.FieldCleared(extractioncorrection.FieldCorrectedBy) {
		fields = append(fields, extractioncorrection.FieldCorrectedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionCorrectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionCorrectionMutation) ClearField(name string) error {
	switch name {
	case extractioncorrection.FieldExtractedValue:
		m.ClearExtractedValue()
		return nil
	case extractioncorrection.FieldCorrectedBy:
		m.ClearCorrectedBy()
		return nil
	}
	return fmt.Errorf("unknown ExtractionCorrection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionCorrectionMutation) ResetField(name string) error {
	switch name {
	case extractioncorrection.FieldJobID:
		m.ResetJobID()
		return nil
	case extractioncorrection.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extractioncorrection.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case extractioncorrection.FieldCorrectedValue:
		m.ResetCorrectedValue()
		return nil
	case extractioncorrection.FieldCorrectedBy:
		m.ResetCorrectedBy()
		return nil
	case extractioncorrection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionCorrection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionCorrectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, extractioncorrection.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionCorrectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractioncorrection.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionCorrectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionCorrectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionCorrectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, extractioncorrection.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionCorrectionMutation) EdgeCleared(name string) bool {
	switch name {
	case extractioncorrection.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionCorrectionMutation) ClearEdge(name string) error {
	switch name {
	case extractioncorrection.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ExtractionCorrection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionCorrectionMutation) ResetEdge(name string) error {
	switch name {
	case extractioncorrection.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ExtractionCorrection edge %s", name)
}

// ForecastAccuracyLogMutation represents an operation that mutates the ForecastAccuracyLog nodes in the graph.
type ForecastAccuracyLogMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	forecast_id          *string
	target_date          *time.Time
	projected_balance    *float64
	addprojected_balance *float64
	actual_balance       *float64
	addactual_balance    *float64
	error_pct            *float64
	adderror_pct         *float64
	evaluated_at         *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ForecastAccuracyLog, error)
	predicates           []predicate.ForecastAccuracyLog
}

var _ ent.Mutation = (*ForecastAccuracyLogMutation)(nil)

// forecastaccuracylogOption allows management of the mutation configuration using functional options.
type forecastaccuracylogOption func(*ForecastAccuracyLogMutation)

// newForecastAccuracyLogMutation creates new mutation for the ForecastAccuracyLog entity.
func newForecastAccuracyLogMutation(c config, op Op, opts ...forecastaccuracylogOption) *ForecastAccuracyLogMutation {
	m := &ForecastAccuracyLogMutation{
		config:        c,
		op:            op,
		typ:           TypeForecastAccuracyLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withForecastAccuracyLogID sets the ID field of the mutation.
func withForecastAccuracyLogID(id string) forecastaccuracylogOption {
	return func(m *ForecastAccuracyLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ForecastAccuracyLog
		)
		m.oldValue = func(ctx context.Context) (*ForecastAccuracyLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ForecastAccuracyLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withForecastAccuracyLog sets the old ForecastAccuracyLog of the mutation.
func withForecastAccuracyLog(node *ForecastAccuracyLog) forecastaccuracylogOption {
	return func(m *ForecastAccuracyLogMutation) {
		m.oldValue = func(context.Context) (*ForecastAccuracyLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ForecastAccuracyLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ForecastAccuracyLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ForecastAccuracyLog entities.
func (m *ForecastAccuracyLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ForecastAccuracyLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ForecastAccuracyLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ForecastAccuracyLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetForecastID sets the "forecast_id" field.
func (m *ForecastAccuracyLogMutation) SetForecastID(s string) {
	m.forecast_id = &s
}

// ForecastID returns the value of the "forecast_id" field in the mutation.
func (m *ForecastAccuracyLogMutation) ForecastID() (r string, exists bool) {
	v := m.forecast_id
	if v == nil {
		return
	}
	return *v, true
}

// OldForecastID returns the old "forecast_id" field's value of the ForecastAccuracyLog entity.
// If the ForecastAccuracyLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastAccuracyLogMutation) OldForecastID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForecastID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForecastID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForecastID: %w", err)
	}
	return oldValue.ForecastID, nil
}

// ResetForecastID resets all changes to the "forecast_id" field.
func (m *ForecastAccuracyLogMutation) ResetForecastID() {
	m.forecast_id = nil
}

// SetTargetDate sets the "target_date" field.
func (m *ForecastAccuracyLogMutation) SetTargetDate(t time.Time) {
	m.target_date = &t
}

// TargetDate returns the value of the "target_date" field in the mutation.
func (m *ForecastAccuracyLogMutation) TargetDate() (r time.Time, exists bool) {
	v := m.target_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDate returns the old "target_date" field's value of the ForecastAccuracyLog entity.
// If the ForecastAccuracyLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastAccuracyLogMutation) OldTargetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDate: %w", err)
	}
	return oldValue.TargetDate, nil
}

// ResetTargetDate resets all changes to the "target_date" field.
func (m *ForecastAccuracyLogMutation) ResetTargetDate() {
	m.target_date = nil
}

// SetProjectedBalance sets the "projected_balance" field.
func (m *ForecastAccuracyLogMutation) SetProjectedBalance(f float64) {
	m.projected_balance = &f
	m.addprojected_balance = nil
}

// ProjectedBalance returns the value of the "projected_balance" field in the mutation.
func (m *ForecastAccuracyLogMutation) ProjectedBalance() (r float64, exists bool) {
	v := m.projected_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectedBalance returns the old "projected_balance" field's value of the ForecastAccuracyLog entity.
// If the ForecastAccuracyLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastAccuracyLogMutation) OldProjectedBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectedBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectedBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectedBalance: %w", err)
	}
	return oldValue.ProjectedBalance, nil
}

// AddProjectedBalance adds f to the "projected_balance" field.
func (m *ForecastAccuracyLogMutation) AddProjectedBalance(f float64) {
	if m.addprojected_balance != nil {
		*m.addprojected_balance += f
	} else {
		m.addprojected_balance = &f
	}
}

// AddedProjectedBalance returns the value that was added to the "projected_balance" field in this mutation.
func (m *ForecastAccuracyLogMutation) AddedProjectedBalance() (r float64, exists bool) {
	v := m.addprojected_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectedBalance resets all changes to the "projected_balance" field.
func (m *ForecastAccuracyLogMutation) ResetProjectedBalance() {
	m.projected_balance = nil
	m.addprojected_balance = nil
}

// SetActualBalance sets the "actual_balance" field.
func (m *ForecastAccuracyLogMutation) SetActualBalance(f float64) {
	m.actual_balance = &f
	m.addactual_balance = nil
}

// ActualBalance returns the value of the "actual_balance" field in the mutation.
func (m *ForecastAccuracyLogMutation) ActualBalance() (r float64, exists bool) {
	v := m.actual_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldActualBalance returns the old "actual_balance" field's value of the ForecastAccuracyLog entity.
// If the ForecastAccuracyLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastAccuracyLogMutation) OldActualBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualBalance: %w", err)
	}
	return oldValue.ActualBalance, nil
}

// AddActualBalance adds f to the "actual_balance" field.
func (m *ForecastAccuracyLogMutation) AddActualBalance(f float64) {
	if m.addactual_balance != nil {
		*m.addactual_balance += f
	} else {
		m.addactual_balance = &f
	}
}

// AddedActualBalance returns the value that was added to the "actual_balance" field in this mutation.
func (m *ForecastAccuracyLogMutation) AddedActualBalance() (r float64, exists bool) {
	v := m.addactual_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualBalance resets all changes to the "actual_balance" field.
func (m *ForecastAccuracyLogMutation) ResetActualBalance() {
	m.actual_balance = nil
	m.addactual_balance = nil
}

// SetErrorPct sets the "error_pct" field.
func (m *ForecastAccuracyLogMutation) SetErrorPct(f float64) {
	m.error_pct = &f
	m.adderror_pct = nil
}

// ErrorPct returns the value of the "error_pct" field in the mutation.
func (m *ForecastAccuracyLogMutation) ErrorPct() (r float64, exists bool) {
	v := m.error_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorPct returns the old "error_pct" field's value of the ForecastAccuracyLog entity.
// If the ForecastAccuracyLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastAccuracyLogMutation) OldErrorPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorPct: %w", err)
	}
	return oldValue.ErrorPct, nil
}

// AddErrorPct adds f to the "error_pct" field.
func (m *ForecastAccuracyLogMutation) AddErrorPct(f float64) {
	if m.adderror_pct != nil {
		*m.adderror_pct += f
	} else {
		m.adderror_pct = &f
	}
}

// AddedErrorPct returns the value that was added to the "error_pct" field in this mutation.
func (m *ForecastAccuracyLogMutation) AddedErrorPct() (r float64, exists bool) {
	v := m.adderror_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrorPct resets all changes to the "error_pct" field.
func (m *ForecastAccuracyLogMutation) ResetErrorPct() {
	m.error_pct = nil
	m.adderror_pct = nil
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *ForecastAccuracyLogMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *ForecastAccuracyLogMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the ForecastAccuracyLog entity.
// If the ForecastAccuracyLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastAccuracyLogMutation) OldEvaluatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *ForecastAccuracyLogMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
}

// Where appends a list predicates to the ForecastAccuracyLogMutation builder.
func (m *ForecastAccuracyLogMutation) Where(ps ...predicate.ForecastAccuracyLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ForecastAccuracyLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ForecastAccuracyLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ForecastAccuracyLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ForecastAccuracyLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ForecastAccuracyLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ForecastAccuracyLog).
func (m *ForecastAccuracyLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ForecastAccuracyLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.forecast_id != nil {
		fields = append(fields, forecastaccuracylog.FieldForecastID)
	}
	if m.target_date != nil {
		fields = append(fields, forecastaccuracylog.FieldTargetDate)
	}
	if m.projected_balance != nil {
		fields = append(fields, forecastaccuracylog.FieldProjectedBalance)
	}
	if m.actual_balance != nil {
		fields = append(fields, forecastaccuracylog.FieldActualBalance)
	}
	if m.error_pct != nil {
		fields = append(fields, forecastaccuracylog.FieldErrorPct)
	}
	if m.evaluated_at != nil {
		fields = append(fields, forecastaccuracylog.FieldEvaluatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ForecastAccuracyLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case forecastaccuracylog.FieldForecastID:
		return m.ForecastID()
	case forecastaccuracylog.FieldTargetDate:
		return m.TargetDate()
	case forecastaccuracylog.FieldProjectedBalance:
		return m.ProjectedBalance()
	case forecastaccuracylog.FieldActualBalance:
		return m.ActualBalance()
	case forecastaccuracylog.FieldErrorPct:
		return m.ErrorPct()
	case forecastaccuracylog.FieldEvaluatedAt:
		return m.EvaluatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ForecastAccuracyLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case forecastaccuracylog.FieldForecastID:
		return m.OldForecastID(ctx)
	case forecastaccuracylog.FieldTargetDate:
		return m.OldTargetDate(ctx)
	case forecastaccuracylog.FieldProjectedBalance:
		return m.OldProjectedBalance(ctx)
	case forecastaccuracylog.FieldActualBalance:
		return m.OldActualBalance(ctx)
	case forecastaccuracylog.FieldErrorPct:
		return m.OldErrorPct(ctx)
	case forecastaccuracylog.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ForecastAccuracyLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ForecastAccuracyLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case forecastaccuracylog.FieldForecastID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForecastID(v)
		return nil
	case forecastaccuracylog.FieldTargetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDate(v)
		return nil
	case forecastaccuracylog.FieldProjectedBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectedBalance(v)
		return nil
	case forecastaccuracylog.FieldActualBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualBalance(v)
		return nil
	case forecastaccuracylog.FieldErrorPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorPct(v)
		return nil
	case forecastaccuracylog.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ForecastAccuracyLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ForecastAccuracyLogMutation) AddedFields() []string {
	var fields []string
	if m.addprojected_balance != nil {
		fields = append(fields, forecastaccuracylog.FieldProjectedBalance)
	}
	if m.addactual_balance != nil {
		fields = append(fields, forecastaccuracylog.FieldActualBalance)
	}
	if m.adderror_pct != nil {
		fields = append(fields, forecastaccuracylog.FieldErrorPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ForecastAccuracyLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case forecastaccuracylog.FieldProjectedBalance:
		return m.AddedProjectedBalance()
	case forecastaccuracylog.FieldActualBalance:
		return m.AddedActualBalance()
	case forecastaccuracylog.FieldErrorPct:
		return m.AddedErrorPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ForecastAccuracyLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case forecastaccuracylog.FieldProjectedBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectedBalance(v)
		return nil
	case forecastaccuracylog.FieldActualBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualBalance(v)
		return nil
	case forecastaccuracylog.FieldErrorPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrorPct(v)
		return nil
	}
	return fmt.Errorf("unknown ForecastAccuracyLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ForecastAccuracyLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ForecastAccuracyLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ForecastAccuracyLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ForecastAccuracyLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ForecastAccuracyLogMutation) ResetField(name string) error {
	switch name {
	case forecastaccuracylog.FieldForecastID:
		m.ResetForecastID()
		return nil
	case forecastaccuracylog.FieldTargetDate:
		m.ResetTargetDate()
		return nil
	case forecastaccuracylog.FieldProjectedBalance:
		m.ResetProjectedBalance()
		return nil
	case forecastaccuracylog.FieldActualBalance:
		m.ResetActualBalance()
		return nil
	case forecastaccuracylog.FieldErrorPct:
		m.ResetErrorPct()
		return nil
	case forecastaccuracylog.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	}
	return fmt.Errorf("unknown ForecastAccuracyLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ForecastAccuracyLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ForecastAccuracyLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ForecastAccuracyLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ForecastAccuracyLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ForecastAccuracyLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ForecastAccuracyLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ForecastAccuracyLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ForecastAccuracyLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ForecastAccuracyLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ForecastAccuracyLog edge %s", name)
}

// ForecastScenarioMutation represents an operation that mutates the ForecastScenario nodes in the graph.
type ForecastScenarioMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	adjustments          *[]map[string]interface{}
	appendadjustments    []map[string]interface{}
	projected_balance    *float64
	addprojected_balance *float64
	delta                *float64
	adddelta             *float64
	clearedFields        map[string]struct{}
	forecast             *string
	clearedforecast      bool
	done                 bool
	oldValue             func(context.Context) (*ForecastScenario, error)
	predicates           []predicate.ForecastScenario
}

var _ ent.Mutation = (*ForecastScenarioMutation)(nil)

// forecastscenarioOption allows management of the mutation configuration using functional options.
type forecastscenarioOption func(*ForecastScenarioMutation)

// newForecastScenarioMutation creates new mutation for the ForecastScenario entity.
func newForecastScenarioMutation(c config, op Op, opts ...forecastscenarioOption) *ForecastScenarioMutation {
	m := &ForecastScenarioMutation{
		config:        c,
		op:            op,
		typ:           TypeForecastScenario,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withForecastScenarioID sets the ID field of the mutation.
func withForecastScenarioID(id string) forecastscenarioOption {
	return func(m *ForecastScenarioMutation) {
		var (
			err   error
			once  sync.Once
			value *ForecastScenario
		)
		m.oldValue = func(ctx context.Context) (*ForecastScenario, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ForecastScenario.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withForecastScenario sets the old ForecastScenario of the mutation.
func withForecastScenario(node *ForecastScenario) forecastscenarioOption {
	return func(m *ForecastScenarioMutation) {
		m.oldValue = func(context.Context) (*ForecastScenario, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ForecastScenarioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ForecastScenarioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ForecastScenario entities.
func (m *ForecastScenarioMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ForecastScenarioMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ForecastScenarioMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ForecastScenario.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetForecastID sets the "forecast_id" field.
func (m *ForecastScenarioMutation) SetForecastID(s string) {
	m.forecast = &s
}

// ForecastID returns the value of the "forecast_id" field in the mutation.
func (m *ForecastScenarioMutation) ForecastID() (r string, exists bool) {
	v := m.forecast
	if v == nil {
		return
	}
	return *v, true
}

// OldForecastID returns the old "forecast_id" field's value of the ForecastScenario entity.
// If the ForecastScenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastScenarioMutation) OldForecastID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForecastID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForecastID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForecastID: %w", err)
	}
	return oldValue.ForecastID, nil
}

// ResetForecastID resets all changes to the "forecast_id" field.
func (m *ForecastScenarioMutation) ResetForecastID() {
	m.forecast = nil
}

// SetName sets the "name" field.
func (m *ForecastScenarioMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ForecastScenarioMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ForecastScenario entity.
// If the ForecastScenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastScenarioMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ForecastScenarioMutation) ResetName() {
	m.name = nil
}

// SetAdjustments sets the "adjustments" field.
func (m *ForecastScenarioMutation) SetAdjustments(value []map[string]interface{}) {
	m.adjustments = &value
	m.appendadjustments = nil
}

// Adjustments returns the value of the "adjustments" field in the mutation.
func (m *ForecastScenarioMutation) Adjustments() (r []map[string]interface{}, exists bool) {
	v := m.adjustments
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjustments returns the old "adjustments" field's value of the ForecastScenario entity.
// If the ForecastScenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastScenarioMutation) OldAdjustments(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjustments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjustments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjustments: %w", err)
	}
	return oldValue.Adjustments, nil
}

// AppendAdjustments adds value to the "adjustments" field.
func (m *ForecastScenarioMutation) AppendAdjustments(value []map[string]interface{}) {
	m.appendadjustments = append(m.appendadjustments, value...)
}

// AppendedAdjustments returns the list of values that were appended to the "adjustments" field in this mutation.
func (m *ForecastScenarioMutation) AppendedAdjustments() ([]map[string]interface{}, bool) {
	if len(m.appendadjustments) == 0 {
		return nil, false
	}
	return m.appendadjustments, true
}

// ResetAdjustments resets all changes to the "adjustments" field.
func (m *ForecastScenarioMutation) ResetAdjustments() {
	m.adjustments = nil
	m.appendadjustments = nil
}

// SetProjectedBalance sets the "projected_balance" field.
func (m *ForecastScenarioMutation) SetProjectedBalance(f float64) {
	m.projected_balance = &f
	m.addprojected_balance = nil
}

// ProjectedBalance returns the value of the "projected_balance" field in the mutation.
func (m *ForecastScenarioMutation) ProjectedBalance() (r float64, exists bool) {
	v := m.projected_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectedBalance returns the old "projected_balance" field's value of the ForecastScenario entity.
// If the ForecastScenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastScenarioMutation) OldProjectedBalance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectedBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectedBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectedBalance: %w", err)
	}
	return oldValue.ProjectedBalance, nil
}

// AddProjectedBalance adds f to the "projected_balance" field.
func (m *ForecastScenarioMutation) AddProjectedBalance(f float64) {
	if m.addprojected_balance != nil {
		*m.addprojected_balance += f
	} else {
		m.addprojected_balance = &f
	}
}

// AddedProjectedBalance returns the value that was added to the "projected_balance" field in this mutation.
func (m *ForecastScenarioMutation) AddedProjectedBalance() (r float64, exists bool) {
	v := m.addprojected_balance
	if v == nil {
		return
	}
	return *v, true
}

// ResetProjectedBalance resets all changes to the "projected_balance" field.
func (m *ForecastScenarioMutation) ResetProjectedBalance() {
	m.projected_balance = nil
	m.addprojected_balance = nil
}

// SetDelta sets the "delta" field.
func (m *ForecastScenarioMutation) SetDelta(f float64) {
	m.delta = &f
	m.adddelta = nil
}

// Delta returns the value of the "delta" field in the mutation.
func (m *ForecastScenarioMutation) Delta() (r float64, exists bool) {
	v := m.delta
	if v == nil {
		return
	}
	return *v, true
}

// OldDelta returns the old "delta" field's value of the ForecastScenario entity.
// If the ForecastScenario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ForecastScenarioMutation) OldDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelta: %w", err)
	}
	return oldValue.Delta, nil
}

// AddDelta adds f to the "delta" field.
func (m *ForecastScenarioMutation) AddDelta(f float64) {
	if m.adddelta != nil {
		*m.adddelta += f
	} else {
		m.adddelta = &f
	}
}

// AddedDelta returns the value that was added to the "delta" field in this mutation.
func (m *ForecastScenarioMutation) AddedDelta() (r float64, exists bool) {
	v := m.adddelta
	if v == nil {
		return
	}
	return *v, true
}

// ResetDelta resets all changes to the "delta" field.
func (m *ForecastScenarioMutation) ResetDelta() {
	m.delta = nil
	m.adddelta = nil
}

// ClearForecast clears the "forecast" edge to the CashForecast entity.
func (m *ForecastScenarioMutation) ClearForecast() {
	m.clearedforecast = true
	m.clearedFields[forecastscenario.FieldForecastID] = struct{}{}
}

// ForecastCleared reports if the "forecast" edge to the CashForecast entity was cleared.
func (m *ForecastScenarioMutation) ForecastCleared() bool {
	return m.clearedforecast
}

// ForecastIDs returns the "forecast" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ForecastID instead. It exists only for internal usage by the builders.
func (m *ForecastScenarioMutation) ForecastIDs() (ids []string) {
	if id := m.forecast; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetForecast resets all changes to the "forecast" edge.
func (m *ForecastScenarioMutation) ResetForecast() {
	m.forecast = nil
	m.clearedforecast = false
}

// Where appends a list predicates to the ForecastScenarioMutation builder.
func (m *ForecastScenarioMutation) Where(ps ...predicate.ForecastScenario) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ForecastScenarioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ForecastScenarioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ForecastScenario, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ForecastScenarioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ForecastScenarioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ForecastScenario).
func (m *ForecastScenarioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ForecastScenarioMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.forecast != nil {
		fields = append(fields, forecastscenario.FieldForecastID)
	}
	if m.name != nil {
		fields = append(fields, forecastscenario.FieldName)
	}
	if m.adjustments != nil {
		fields = append(fields, forecastscenario.FieldAdjustments)
	}
	if m.projected_balance != nil {
		fields = append(fields, forecastscenario.FieldProjectedBalance)
	}
	if m.delta != nil {
		fields = append(fields, forecastscenario.FieldDelta)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ForecastScenarioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case forecastscenario.FieldForecastID:
		return m.ForecastID()
	case forecastscenario.FieldName:
		return m.Name()
	case forecastscenario.FieldAdjustments:
		return m.Adjustments()
	case forecastscenario.FieldProjectedBalance:
		return m.ProjectedBalance()
	case forecastscenario.FieldDelta:
		return m.Delta()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ForecastScenarioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case forecastscenario.FieldForecastID:
		return m.OldForecastID(ctx)
	case forecastscenario.FieldName:
		return m.OldName(ctx)
	case forecastscenario.FieldAdjustments:
		return m.OldAdjustments(ctx)
	case forecastscenario.FieldProjectedBalance:
		return m.OldProjectedBalance(ctx)
	case forecastscenario.FieldDelta:
		return m.OldDelta(ctx)
	}
	return nil, fmt.Errorf("unknown ForecastScenario field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ForecastScenarioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case forecastscenario.FieldForecastID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForecastID(v)
		return nil
	case forecastscenario.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case forecastscenario.FieldAdjustments:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjustments(v)
		return nil
	case forecastscenario.FieldProjectedBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectedBalance(v)
		return nil
	case forecastscenario.FieldDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelta(v)
		return nil
	}
	return fmt.Errorf("unknown ForecastScenario field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ForecastScenarioMutation) AddedFields() []string {
	var fields []string
	if m.addprojected_balance != nil {
		fields = append(fields, forecastscenario.FieldProjectedBalance)
	}
	if m.adddelta != nil {
		fields = append(fields, forecastscenario.FieldDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ForecastScenarioMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case forecastscenario.FieldProjectedBalance:
		return m.AddedProjectedBalance()
	case forecastscenario.FieldDelta:
		return m.AddedDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ForecastScenarioMutation) AddField(name string, value ent.Value) error {
	switch name {
	case forecastscenario.FieldProjectedBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProjectedBalance(v)
		return nil
	case forecastscenario.FieldDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDelta(v)
		return nil
	}
	return fmt.Errorf("unknown ForecastScenario numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ForecastScenarioMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ForecastScenarioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ForecastScenarioMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ForecastScenario nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ForecastScenarioMutation) ResetField(name string) error {
	switch name {
	case forecastscenario.FieldForecastID:
		m.ResetForecastID()
		return nil
	case forecastscenario.FieldName:
		m.ResetName()
		return nil
	case forecastscenario.FieldAdjustments:
		m.ResetAdjustments()
		return nil
	case forecastscenario.FieldProjectedBalance:
		m.ResetProjectedBalance()
		return nil
	case forecastscenario.FieldDelta:
		m.ResetDelta()
		return nil
	}
	return fmt.Errorf("unknown ForecastScenario field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ForecastScenarioMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.forecast != nil {
		edges = append(edges, forecastscenario.EdgeForecast)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ForecastScenarioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case forecastscenario.EdgeForecast:
		if id := m.forecast; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ForecastScenarioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ForecastScenarioMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ForecastScenarioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedforecast {
		edges = append(edges, forecastscenario.EdgeForecast)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ForecastScenarioMutation) EdgeCleared(name string) bool {
	switch name {
	case forecastscenario.EdgeForecast:
		return m.clearedforecast
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ForecastScenarioMutation) ClearEdge(name string) error {
	switch name {
	case forecastscenario.EdgeForecast:
		m.ClearForecast()
		return nil
	}
	return fmt.Errorf("unknown ForecastScenario unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ForecastScenarioMutation) ResetEdge(name string) error {
	switch name {
	case forecastscenario.EdgeForecast:
		m.ResetForecast()
		return nil
	}
	return fmt.Errorf("unknown ForecastScenario edge %s", name)
}

// MonthEndClosingMutation represents an operation that mutates the MonthEndClosing nodes in the graph.
type MonthEndClosingMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	period             *string
	status             *monthendclosing.Status
	readiness_score    *float64
	addreadiness_score *float64
	summary            *map[string]interface{}
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	steps              map[string]struct{}
	removedsteps       map[string]struct{}
	clearedsteps       bool
	done               bool
	oldValue           func(context.Context) (*MonthEndClosing, error)
	predicates         []predicate.MonthEndClosing
}

var _ ent.Mutation = (*MonthEndClosingMutation)(nil)

// monthendclosingOption allows management of the mutation configuration using functional options.
type monthendclosingOption func(*MonthEndClosingMutation)

// newMonthEndClosingMutation creates new mutation for the MonthEndClosing entity.
func newMonthEndClosingMutation(c config, op Op, opts ...monthendclosingOption) *MonthEndClosingMutation {
	m := &MonthEndClosingMutation{
		config:        c,
		op:            op,
		typ:           TypeMonthEndClosing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonthEndClosingID sets the ID field of the mutation.
func withMonthEndClosingID(id string) monthendclosingOption {
	return func(m *MonthEndClosingMutation) {
		var (
			err   error
			once  sync.Once
			value *MonthEndClosing
		)
		m.oldValue = func(ctx context.Context) (*MonthEndClosing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonthEndClosing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonthEndClosing sets the old MonthEndClosing of the mutation.
func withMonthEndClosing(node *MonthEndClosing) monthendclosingOption {
	return func(m *MonthEndClosingMutation) {
		m.oldValue = func(context.Context) (*MonthEndClosing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonthEndClosingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonthEndClosingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MonthEndClosing entities.
func (m *MonthEndClosingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonthEndClosingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonthEndClosingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonthEndClosing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPeriod sets the "period" field.
func (m *MonthEndClosingMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *MonthEndClosingMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the MonthEndClosing entity.
// If the MonthEndClosing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthEndClosingMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *MonthEndClosingMutation) ResetPeriod() {
	m.period = nil
}

// SetStatus sets the "status" field.
func (m *MonthEndClosingMutation) SetStatus(value monthendclosing.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MonthEndClosingMutation) Status() (r monthendclosing.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MonthEndClosing entity.
// If the MonthEndClosing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthEndClosingMutation) OldStatus(ctx context.Context) (v monthendclosing.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MonthEndClosingMutation) ResetStatus() {
	m.status = nil
}

// SetReadinessScore sets the "readiness_score" field.
func (m *MonthEndClosingMutation) SetReadinessScore(f float64) {
	m.readiness_score = &f
	m.addreadiness_score = nil
}

// ReadinessScore returns the value of the "readiness_score" field in the mutation.
func (m *MonthEndClosingMutation) ReadinessScore() (r float64, exists bool) {
	v := m.readiness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReadinessScore returns the old "readiness_score" field's value of the MonthEndClosing entity.
// If the MonthEndClosing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthEndClosingMutation) OldReadinessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadinessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadinessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadinessScore: %w", err)
	}
	return oldValue.ReadinessScore, nil
}

// AddReadinessScore adds f to the "readiness_score" field.
func (m *MonthEndClosingMutation) AddReadinessScore(f float64) {
	if m.addreadiness_score != nil {
		*m.addreadiness_score += f
	} else {
		m.addreadiness_score = &f
	}
}

// AddedReadinessScore returns the value that was added to the "readiness_score" field in this mutation.
func (m *MonthEndClosingMutation) AddedReadinessScore() (r float64, exists bool) {
	v := m.addreadiness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReadinessScore resets all changes to the "readiness_score" field.
func (m *MonthEndClosingMutation) ResetReadinessScore() {
	m.readiness_score = nil
	m.addreadiness_score = nil
}

// SetSummary sets the "summary" field.
func (m *MonthEndClosingMutation) SetSummary(value map[string]interface{}) {
	m.summary = &value
}

// Summary returns the value of the "summary" field in the mutation.
func (m *MonthEndClosingMutation) Summary() (r map[string]interface{}, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the MonthEndClosing entity.
// If the MonthEndClosing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthEndClosingMutation) OldSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *MonthEndClosingMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[monthendclosing.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *MonthEndClosingMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[monthendclosing.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *MonthEndClosingMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, monthendclosing.FieldSummary)
}

// SetStartedAt sets the "started_at" field.
func (m *MonthEndClosingMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MonthEndClosingMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the MonthEndClosing entity.
// If the MonthEndClosing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthEndClosingMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MonthEndClosingMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *MonthEndClosingMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *MonthEndClosingMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the MonthEndClosing entity.
// If the MonthEndClosing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonthEndClosingMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *MonthEndClosingMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[monthendclosing.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *MonthEndClosingMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[monthendclosing.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *MonthEndClosingMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, monthendclosing.FieldCompletedAt)
}

// AddStepIDs adds the "steps" edge to the ClosingStep entity by ids.
func (m *MonthEndClosingMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the ClosingStep entity.
func (m *MonthEndClosingMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the ClosingStep entity was cleared.
func (m *MonthEndClosingMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the ClosingStep entity by IDs.
func (m *MonthEndClosingMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the ClosingStep entity.
func (m *MonthEndClosingMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *MonthEndClosingMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *MonthEndClosingMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// Where appends a list predicates to the MonthEndClosingMutation builder.
func (m *MonthEndClosingMutation) Where(ps ...predicate.MonthEndClosing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonthEndClosingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonthEndClosingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonthEndClosing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonthEndClosingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonthEndClosingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonthEndClosing).
func (m *MonthEndClosingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonthEndClosingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.period != nil {
		fields = append(fields, monthendclosing.FieldPeriod)
	}
	if m.status != nil {
		fields = append(fields, monthendclosing.FieldStatus)
	}
	if m.readiness_score != nil {
		fields = append(fields, monthendclosing.FieldReadinessScore)
	}
	if m.summary != nil {
		fields = append(fields, monthendclosing.FieldSummary)
	}
	if m.started_at != nil {
		fields = append(fields, monthendclosing.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, monthendclosing.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonthEndClosingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monthendclosing.FieldPeriod:
		return m.Period()
	case monthendclosing.FieldStatus:
		return m.Status()
	case monthendclosing.FieldReadinessScore:
		return m.ReadinessScore()
	case monthendclosing.FieldSummary:
		return m.Summary()
	case monthendclosing.FieldStartedAt:
		return m.StartedAt()
	case monthendclosing.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonthEndClosingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monthendclosing.FieldPeriod:
		return m.OldPeriod(ctx)
	case monthendclosing.FieldStatus:
		return m.OldStatus(ctx)
	case monthendclosing.FieldReadinessScore:
		return m.OldReadinessScore(ctx)
	case monthendclosing.FieldSummary:
		return m.OldSummary(ctx)
	case monthendclosing.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case monthendclosing.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonthEndClosing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonthEndClosingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monthendclosing.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case monthendclosing.FieldStatus:
		v, ok := value.(monthendclosing.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case monthendclosing.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadinessScore(v)
		return nil
	case monthendclosing.FieldSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case monthendclosing.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case monthendclosing.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonthEndClosing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonthEndClosingMutation) AddedFields() []string {
	var fields []string
	if m.addreadiness_score != nil {
		fields = append(fields, monthendclosing.FieldReadinessScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonthEndClosingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monthendclosing.FieldReadinessScore:
		return m.AddedReadinessScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonthEndClosingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monthendclosing.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadinessScore(v)
		return nil
	}
	return fmt.Errorf("unknown MonthEndClosing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonthEndClosingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monthendclosing.FieldSummary) {
		fields = append(fields, monthendclosing.FieldSummary)
	}
	if m.FieldCleared(monthendclosing.FieldCompletedAt) {
		fields = append(fields, monthendclosing.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonthEndClosingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonthEndClosingMutation) ClearField(name string) error {
	switch name {
	case monthendclosing.FieldSummary:
		m.ClearSummary()
		return nil
	case monthendclosing.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MonthEndClosing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonthEndClosingMutation) ResetField(name string) error {
	switch name {
	case monthendclosing.FieldPeriod:
		m.ResetPeriod()
		return nil
	case monthendclosing.FieldStatus:
		m.ResetStatus()
		return nil
	case monthendclosing.FieldReadinessScore:
		m.ResetReadinessScore()
		return nil
	case monthendclosing.FieldSummary:
		m.ResetSummary()
		return nil
	case monthendclosing.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case monthendclosing.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown MonthEndClosing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonthEndClosingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.steps != nil {
		edges = append(edges, monthendclosing.EdgeSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonthEndClosingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case monthendclosing.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonthEndClosingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsteps != nil {
		edges = append(edges, monthendclosing.EdgeSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonthEndClosingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case monthendclosing.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonthEndClosingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsteps {
		edges = append(edges, monthendclosing.EdgeSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonthEndClosingMutation) EdgeCleared(name string) bool {
	switch name {
	case monthendclosing.EdgeSteps:
		return m.clearedsteps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonthEndClosingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MonthEndClosing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonthEndClosingMutation) ResetEdge(name string) error {
	switch name {
	case monthendclosing.EdgeSteps:
		m.ResetSteps()
		return nil
	}
	return fmt.Errorf("unknown MonthEndClosing edge %s", name)
}

// ReconciliationSessionMutation represents an operation that mutates the ReconciliationSession nodes in the graph.
type ReconciliationSessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	user_id             *int64
	adduser_id          *int64
	journal_id          *int64
	addjournal_id       *int64
	status              *reconciliationsession.Status
	total_lines         *int
	addtotal_lines      *int
	auto_matched        *int
	addauto_matched     *int
	manually_matched    *int
	addmanually_matched *int
	skipped             *int
	addskipped          *int
	remaining           *int
	addremaining        *int
	learned_rules       *[]map[string]interface{}
	appendlearned_rules []map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ReconciliationSession, error)
	predicates          []predicate.ReconciliationSession
}

var _ ent.Mutation = (*ReconciliationSessionMutation)(nil)

// reconciliationsessionOption allows management of the mutation configuration using functional options.
type reconciliationsessionOption func(*ReconciliationSessionMutation)

// newReconciliationSessionMutation creates new mutation for the ReconciliationSession entity.
func newReconciliationSessionMutation(c config, op Op, opts ...reconciliationsessionOption) *ReconciliationSessionMutation {
	m := &ReconciliationSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeReconciliationSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReconciliationSessionID sets the ID field of the mutation.
func withReconciliationSessionID(id string) reconciliationsessionOption {
	return func(m *ReconciliationSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReconciliationSession
		)
		m.oldValue = func(ctx context.Context) (*ReconciliationSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReconciliationSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReconciliationSession sets the old ReconciliationSession of the mutation.
func withReconciliationSession(node *ReconciliationSession) reconciliationsessionOption {
	return func(m *ReconciliationSessionMutation) {
		m.oldValue = func(context.Context) (*ReconciliationSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReconciliationSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReconciliationSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReconciliationSession entities.
func (m *ReconciliationSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReconciliationSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReconciliationSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReconciliationSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReconciliationSessionMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReconciliationSessionMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ReconciliationSessionMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ReconciliationSessionMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReconciliationSessionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetJournalID sets the "journal_id" field.
func (m *ReconciliationSessionMutation) SetJournalID(i int64) {
	m.journal_id = &i
	m.addjournal_id = nil
}

// JournalID returns the value of the "journal_id" field in the mutation.
func (m *ReconciliationSessionMutation) JournalID() (r int64, exists bool) {
	v := m.journal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJournalID returns the old "journal_id" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldJournalID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJournalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJournalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJournalID: %w", err)
	}
	return oldValue.JournalID, nil
}

// AddJournalID adds i to the "journal_id" field.
func (m *ReconciliationSessionMutation) AddJournalID(i int64) {
	if m.addjournal_id != nil {
		*m.addjournal_id += i
	} else {
		m.addjournal_id = &i
	}
}

// AddedJournalID returns the value that was added to the "journal_id" field in this mutation.
func (m *ReconciliationSessionMutation) AddedJournalID() (r int64, exists bool) {
	v := m.addjournal_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetJournalID resets all changes to the "journal_id" field.
func (m *ReconciliationSessionMutation) ResetJournalID() {
	m.journal_id = nil
	m.addjournal_id = nil
}

// SetStatus sets the "status" field.
func (m *ReconciliationSessionMutation) SetStatus(r reconciliationsession.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReconciliationSessionMutation) Status() (r reconciliationsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldStatus(ctx context.Context) (v reconciliationsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReconciliationSessionMutation) ResetStatus() {
	m.status = nil
}

// SetTotalLines sets the "total_lines" field.
func (m *ReconciliationSessionMutation) SetTotalLines(i int) {
	m.total_lines = &i
	m.addtotal_lines = nil
}

// TotalLines returns the value of the "total_lines" field in the mutation.
func (m *ReconciliationSessionMutation) TotalLines() (r int, exists bool) {
	v := m.total_lines
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLines returns the old "total_lines" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldTotalLines(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLines: %w", err)
	}
	return oldValue.TotalLines, nil
}

// AddTotalLines adds i to the "total_lines" field.
func (m *ReconciliationSessionMutation) AddTotalLines(i int) {
	if m.addtotal_lines != nil {
		*m.addtotal_lines += i
	} else {
		m.addtotal_lines = &i
	}
}

// AddedTotalLines returns the value that was added to the "total_lines" field in this mutation.
func (m *ReconciliationSessionMutation) AddedTotalLines() (r int, exists bool) {
	v := m.addtotal_lines
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLines resets all changes to the "total_lines" field.
func (m *ReconciliationSessionMutation) ResetTotalLines() {
	m.total_lines = nil
	m.addtotal_lines = nil
}

// SetAutoMatched sets the "auto_matched" field.
func (m *ReconciliationSessionMutation) SetAutoMatched(i int) {
	m.auto_matched = &i
	m.addauto_matched = nil
}

// AutoMatched returns the value of the "auto_matched" field in the mutation.
func (m *ReconciliationSessionMutation) AutoMatched() (r int, exists bool) {
	v := m.auto_matched
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoMatched returns the old "auto_matched" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldAutoMatched(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoMatched: %w", err)
	}
	return oldValue.AutoMatched, nil
}

// AddAutoMatched adds i to the "auto_matched" field.
func (m *ReconciliationSessionMutation) AddAutoMatched(i int) {
	if m.addauto_matched != nil {
		*m.addauto_matched += i
	} else {
		m.addauto_matched = &i
	}
}

// AddedAutoMatched returns the value that was added to the "auto_matched" field in this mutation.
func (m *ReconciliationSessionMutation) AddedAutoMatched() (r int, exists bool) {
	v := m.addauto_matched
	if v == nil {
		return
	}
	return *v, true
}

// ResetAutoMatched resets all changes to the "auto_matched" field.
func (m *ReconciliationSessionMutation) ResetAutoMatched() {
	m.auto_matched = nil
	m.addauto_matched = nil
}

// SetManuallyMatched sets the "manually_matched" field.
func (m *ReconciliationSessionMutation) SetManuallyMatched(i int) {
	m.manually_matched = &i
	m.addmanually_matched = nil
}

// ManuallyMatched returns the value of the "manually_matched" field in the mutation.
func (m *ReconciliationSessionMutation) ManuallyMatched() (r int, exists bool) {
	v := m.manually_matched
	if v == nil {
		return
	}
	return *v, true
}

// OldManuallyMatched returns the old "manually_matched" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldManuallyMatched(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManuallyMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManuallyMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManuallyMatched: %w", err)
	}
	return oldValue.ManuallyMatched, nil
}

// AddManuallyMatched adds i to the "manually_matched" field.
func (m *ReconciliationSessionMutation) AddManuallyMatched(i int) {
	if m.addmanually_matched != nil {
		*m.addmanually_matched += i
	} else {
		m.addmanually_matched = &i
	}
}

// AddedManuallyMatched returns the value that was added to the "manually_matched" field in this mutation.
func (m *ReconciliationSessionMutation) AddedManuallyMatched() (r int, exists bool) {
	v := m.addmanually_matched
	if v == nil {
		return
	}
	return *v, true
}

// ResetManuallyMatched resets all changes to the "manually_matched" field.
func (m *ReconciliationSessionMutation) ResetManuallyMatched() {
	m.manually_matched = nil
	m.addmanually_matched = nil
}

// SetSkipped sets the "skipped" field.
func (m *ReconciliationSessionMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *ReconciliationSessionMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *ReconciliationSessionMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *ReconciliationSessionMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *ReconciliationSessionMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetRemaining sets the "remaining" field.
func (m *ReconciliationSessionMutation) SetRemaining(i int) {
	m.remaining = &i
	m.addremaining = nil
}

// Remaining returns the value of the "remaining" field in the mutation.
func (m *ReconciliationSessionMutation) Remaining() (r int, exists bool) {
	v := m.remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldRemaining returns the old "remaining" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemaining: %w", err)
	}
	return oldValue.Remaining, nil
}

// AddRemaining adds i to the "remaining" field.
func (m *ReconciliationSessionMutation) AddRemaining(i int) {
	if m.addremaining != nil {
		*m.addremaining += i
	} else {
		m.addremaining = &i
	}
}

// AddedRemaining returns the value that was added to the "remaining" field in this mutation.
func (m *ReconciliationSessionMutation) AddedRemaining() (r int, exists bool) {
	v := m.addremaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetRemaining resets all changes to the "remaining" field.
func (m *ReconciliationSessionMutation) ResetRemaining() {
	m.remaining = nil
	m.addremaining = nil
}

// SetLearnedRules sets the "learned_rules" field.
func (m *ReconciliationSessionMutation) SetLearnedRules(value []map[string]interface{}) {
	m.learned_rules = &value
	m.appendlearned_rules = nil
}

// LearnedRules returns the value of the "learned_rules" field in the mutation.
func (m *ReconciliationSessionMutation) LearnedRules() (r []map[string]interface{}, exists bool) {
	v := m.learned_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnedRules returns the old "learned_rules" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldLearnedRules(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnedRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnedRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnedRules: %w", err)
	}
	return oldValue.LearnedRules, nil
}

// AppendLearnedRules adds value to the "learned_rules" field.
func (m *ReconciliationSessionMutation) AppendLearnedRules(value []map[string]interface{}) {
	m.appendlearned_rules = append(m.appendlearned_rules, value...)
}

// AppendedLearnedRules returns the list of values that were appended to the "learned_rules" field in this mutation.
func (m *ReconciliationSessionMutation) AppendedLearnedRules() ([]map[string]interface{}, bool) {
	if len(m.appendlearned_rules) == 0 {
		return nil, false
	}
	return m.appendlearned_rules, true
}

// ClearLearnedRules clears the value of the "learned_rules" field.
func (m *ReconciliationSessionMutation) ClearLearnedRules() {
	m.learned_rules = nil
	m.appendlearned_rules = nil
	m.clearedFields[reconciliationsession.FieldLearnedRules] = struct{}{}
}

// LearnedRulesCleared returns if the "learned_rules" field was cleared in this mutation.
func (m *ReconciliationSessionMutation) LearnedRulesCleared() bool {
	_, ok := m.clearedFields[reconciliationsession.FieldLearnedRules]
	return ok
}

// ResetLearnedRules resets all changes to the "learned_rules" field.
func (m *ReconciliationSessionMutation) ResetLearnedRules() {
	m.learned_rules = nil
	m.appendlearned_rules = nil
	delete(m.clearedFields, reconciliationsession.FieldLearnedRules)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReconciliationSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReconciliationSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReconciliationSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReconciliationSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReconciliationSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReconciliationSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ReconciliationSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ReconciliationSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ReconciliationSession entity.
// If the ReconciliationSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReconciliationSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ReconciliationSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[reconciliationsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ReconciliationSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[reconciliationsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ReconciliationSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, reconciliationsession.FieldCompletedAt)
}

// Where appends a list predicates to the ReconciliationSessionMutation builder.
func (m *ReconciliationSessionMutation) Where(ps ...predicate.ReconciliationSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReconciliationSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReconciliationSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReconciliationSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReconciliationSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReconciliationSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReconciliationSession).
func (m *ReconciliationSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReconciliationSessionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, reconciliationsession.FieldUserID)
	}
	if m.journal_id != nil {
		fields = append(fields, reconciliationsession.FieldJournalID)
	}
	if m.status != nil {
		fields = append(fields, reconciliationsession.FieldStatus)
	}
	if m.total_lines != nil {
		fields = append(fields, reconciliationsession.FieldTotalLines)
	}
	if m.auto_matched != nil {
		fields = append(fields, reconciliationsession.FieldAutoMatched)
	}
	if m.manually_matched != nil {
		fields = append(fields, reconciliationsession.FieldManuallyMatched)
	}
	if m.skipped != nil {
		fields = append(fields, reconciliationsession.FieldSkipped)
	}
	if m.remaining != nil {
		fields = append(fields, reconciliationsession.FieldRemaining)
	}
	if m.learned_rules != nil {
		fields = append(fields, reconciliationsession.FieldLearnedRules)
	}
	if m.created_at != nil {
		fields = append(fields, reconciliationsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reconciliationsession.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, reconciliationsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReconciliationSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reconciliationsession.FieldUserID:
		return m.UserID()
	case reconciliationsession.FieldJournalID:
		return m.JournalID()
	case reconciliationsession.FieldStatus:
		return m.Status()
	case reconciliationsession.FieldTotalLines:
		return m.TotalLines()
	case reconciliationsession.FieldAutoMatched:
		return m.AutoMatched()
	case reconciliationsession.FieldManuallyMatched:
		return m.ManuallyMatched()
	case reconciliationsession.FieldSkipped:
		return m.Skipped()
	case reconciliationsession.FieldRemaining:
		return m.Remaining()
	case reconciliationsession.FieldLearnedRules:
		return m.LearnedRules()
	case reconciliationsession.FieldCreatedAt:
		return m.CreatedAt()
	case reconciliationsession.FieldUpdatedAt:
		return m.UpdatedAt()
	case reconciliationsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReconciliationSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reconciliationsession.FieldUserID:
		return m.OldUserID(ctx)
	case reconciliationsession.FieldJournalID:
		return m.OldJournalID(ctx)
	case reconciliationsession.FieldStatus:
		return m.OldStatus(ctx)
	case reconciliationsession.FieldTotalLines:
		return m.OldTotalLines(ctx)
	case reconciliationsession.FieldAutoMatched:
		return m.OldAutoMatched(ctx)
	case reconciliationsession.FieldManuallyMatched:
		return m.OldManuallyMatched(ctx)
	case reconciliationsession.FieldSkipped:
		return m.OldSkipped(ctx)
	case reconciliationsession.FieldRemaining:
		return m.OldRemaining(ctx)
	case reconciliationsession.FieldLearnedRules:
		return m.OldLearnedRules(ctx)
	case reconciliationsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reconciliationsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reconciliationsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReconciliationSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReconciliationSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reconciliationsession.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reconciliationsession.FieldJournalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJournalID(v)
		return nil
	case reconciliationsession.FieldStatus:
		v, ok := value.(reconciliationsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reconciliationsession.FieldTotalLines:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLines(v)
		return nil
	case reconciliationsession.FieldAutoMatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoMatched(v)
		return nil
	case reconciliationsession.FieldManuallyMatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManuallyMatched(v)
		return nil
	case reconciliationsession.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case reconciliationsession.FieldRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemaining(v)
		return nil
	case reconciliationsession.FieldLearnedRules:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnedRules(v)
		return nil
	case reconciliationsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reconciliationsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reconciliationsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReconciliationSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReconciliationSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, reconciliationsession.FieldUserID)
	}
	if m.addjournal_id != nil {
		fields = append(fields, reconciliationsession.FieldJournalID)
	}
	if m.addtotal_lines != nil {
		fields = append(fields, reconciliationsession.FieldTotalLines)
	}
	if m.addauto_matched != nil {
		fields = append(fields, reconciliationsession.FieldAutoMatched)
	}
	if m.addmanually_matched != nil {
		fields = append(fields, reconciliationsession.FieldManuallyMatched)
	}
	if m.addskipped != nil {
		fields = append(fields, reconciliationsession.FieldSkipped)
	}
	if m.addremaining != nil {
		fields = append(fields, reconciliationsession.FieldRemaining)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReconciliationSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reconciliationsession.FieldUserID:
		return m.AddedUserID()
	case reconciliationsession.FieldJournalID:
		return m.AddedJournalID()
	case reconciliationsession.FieldTotalLines:
		return m.AddedTotalLines()
	case reconciliationsession.FieldAutoMatched:
		return m.AddedAutoMatched()
	case reconciliationsession.FieldManuallyMatched:
		return m.AddedManuallyMatched()
	case reconciliationsession.FieldSkipped:
		return m.AddedSkipped()
	case reconciliationsession.FieldRemaining:
		return m.AddedRemaining()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReconciliationSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reconciliationsession.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case reconciliationsession.FieldJournalID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJournalID(v)
		return nil
	case reconciliationsession.FieldTotalLines:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLines(v)
		return nil
	case reconciliationsession.FieldAutoMatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoMatched(v)
		return nil
	case reconciliationsession.FieldManuallyMatched:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddManuallyMatched(v)
		return nil
	case reconciliationsession.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	case reconciliationsession.FieldRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemaining(v)
		return nil
	}
	return fmt.Errorf("unknown ReconciliationSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReconciliationSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reconciliationsession.FieldLearnedRules) {
		fields = append(fields, reconciliationsession.FieldLearnedRules)
	}
	if m.FieldCleared(reconciliationsession.FieldCompletedAt) {
		fields = append(fields, reconciliationsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReconciliationSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReconciliationSessionMutation) ClearField(name string) error {
	switch name {
	case reconciliationsession.FieldLearnedRules:
		m.ClearLearnedRules()
		return nil
	case reconciliationsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ReconciliationSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReconciliationSessionMutation) ResetField(name string) error {
	switch name {
	case reconciliationsession.FieldUserID:
		m.ResetUserID()
		return nil
	case reconciliationsession.FieldJournalID:
		m.ResetJournalID()
		return nil
	case reconciliationsession.FieldStatus:
		m.ResetStatus()
		return nil
	case reconciliationsession.FieldTotalLines:
		m.ResetTotalLines()
		return nil
	case reconciliationsession.FieldAutoMatched:
		m.ResetAutoMatched()
		return nil
	case reconciliationsession.FieldManuallyMatched:
		m.ResetManuallyMatched()
		return nil
	case reconciliationsession.FieldSkipped:
		m.ResetSkipped()
		return nil
	case reconciliationsession.FieldRemaining:
		m.ResetRemaining()
		return nil
	case reconciliationsession.FieldLearnedRules:
		m.ResetLearnedRules()
		return nil
	case reconciliationsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reconciliationsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reconciliationsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ReconciliationSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReconciliationSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReconciliationSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReconciliationSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReconciliationSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReconciliationSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReconciliationSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReconciliationSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReconciliationSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReconciliationSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReconciliationSession edge %s", name)
}

// ReportJobMutation represents an operation that mutates the ReportJob nodes in the graph.
type ReportJobMutation struct {
	config
	op             Op
	typ            string
	id             *string
	query          *string
	requested_by   *string
	status         *reportjob.Status
	plan           *map[string]interface{}
	result         *map[string]interface{}
	narrative      *string
	tokens_used    *int
	addtokens_used *int
	error_message  *string
	created_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ReportJob, error)
	predicates     []predicate.ReportJob
}

var _ ent.Mutation = (*ReportJobMutation)(nil)

// reportjobOption allows management of the mutation configuration using functional options.
type reportjobOption func(*ReportJobMutation)

// newReportJobMutation creates new mutation for the ReportJob entity.
func newReportJobMutation(c config, op Op, opts ...reportjobOption) *ReportJobMutation {
	m := &ReportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeReportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportJobID sets the ID field of the mutation.
func withReportJobID(id string) reportjobOption {
	return func(m *ReportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportJob
		)
		m.oldValue = func(ctx context.Context) (*ReportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportJob sets the old ReportJob of the mutation.
func withReportJob(node *ReportJob) reportjobOption {
	return func(m *ReportJobMutation) {
		m.oldValue = func(context.Context) (*ReportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportJob entities.
func (m *ReportJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuery sets the "query" field.
func (m *ReportJobMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *ReportJobMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *ReportJobMutation) ResetQuery() {
	m.query = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *ReportJobMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *ReportJobMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *ReportJobMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.clearedFields[reportjob.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *ReportJobMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *ReportJobMutation) ResetRequestedBy() {
	m.requested_by = nil
	delete(m.clearedFields, reportjob.FieldRequestedBy)
}

// SetStatus sets the "status" field.
func (m *ReportJobMutation) SetStatus(r reportjob.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportJobMutation) Status() (r reportjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldStatus(ctx context.Context) (v reportjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReportJobMutation) ResetStatus() {
	m.status = nil
}

// SetPlan sets the "plan" field.
func (m *ReportJobMutation) SetPlan(value map[string]interface{}) {
	m.plan = &value
}

// Plan returns the value of the "plan" field in the mutation.
func (m *ReportJobMutation) Plan() (r map[string]interface{}, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *ReportJobMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[reportjob.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *ReportJobMutation) PlanCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *ReportJobMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, reportjob.FieldPlan)
}

// SetResult sets the "result" field.
func (m *ReportJobMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ReportJobMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ReportJobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[reportjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ReportJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ReportJobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, reportjob.FieldResult)
}

// SetNarrative sets the "narrative" field.
func (m *ReportJobMutation) SetNarrative(s string) {
	m.narrative = &s
}

// Narrative returns the value of the "narrative" field in the mutation.
func (m *ReportJobMutation) Narrative() (r string, exists bool) {
	v := m.narrative
	if v == nil {
		return
	}
	return *v, true
}

// OldNarrative returns the old "narrative" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldNarrative(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNarrative is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNarrative requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNarrative: %w", err)
	}
	return oldValue.Narrative, nil
}

// ClearNarrative clears the value of the "narrative" field.
func (m *ReportJobMutation) ClearNarrative() {
	m.narrative = nil
	m.clearedFields[reportjob.FieldNarrative] = struct{}{}
}

// NarrativeCleared returns if the "narrative" field was cleared in this mutation.
func (m *ReportJobMutation) NarrativeCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldNarrative]
	return ok
}

// ResetNarrative resets all changes to the "narrative" field.
func (m *ReportJobMutation) ResetNarrative() {
	m.narrative = nil
	delete(m.clearedFields, reportjob.FieldNarrative)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ReportJobMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ReportJobMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ReportJobMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ReportJobMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ReportJobMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ReportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[reportjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, reportjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ReportJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ReportJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ReportJob entity.
// If the ReportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ReportJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[reportjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ReportJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[reportjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ReportJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, reportjob.FieldCompletedAt)
}

// Where appends a list predicates to the ReportJobMutation builder.
func (m *ReportJobMutation) Where(ps ...predicate.ReportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportJob).
func (m *ReportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.query != nil {
		fields = append(fields, reportjob.FieldQuery)
	}
	if m.requested_by != nil {
		fields = append(fields, reportjob.FieldRequestedBy)
	}
	if m.status != nil {
		fields = append(fields, reportjob.FieldStatus)
	}
	if m.plan != nil {
		fields = append(fields, reportjob.FieldPlan)
	}
	if m.result != nil {
		fields = append(fields, reportjob.FieldResult)
	}
	if m.narrative != nil {
		fields = append(fields, reportjob.FieldNarrative)
	}
	if m.tokens_used != nil {
		fields = append(fields, reportjob.FieldTokensUsed)
	}
	if m.error_message != nil {
		fields = append(fields, reportjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, reportjob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, reportjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportjob.FieldQuery:
		return m.Query()
	case reportjob.FieldRequestedBy:
		return m.RequestedBy()
	case reportjob.FieldStatus:
		return m.Status()
	case reportjob.FieldPlan:
		return m.Plan()
	case reportjob.FieldResult:
		return m.Result()
	case reportjob.FieldNarrative:
		return m.Narrative()
	case reportjob.FieldTokensUsed:
		return m.TokensUsed()
	case reportjob.FieldErrorMessage:
		return m.ErrorMessage()
	case reportjob.FieldCreatedAt:
		return m.CreatedAt()
	case reportjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportjob.FieldQuery:
		return m.OldQuery(ctx)
	case reportjob.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case reportjob.FieldStatus:
		return m.OldStatus(ctx)
	case reportjob.FieldPlan:
		return m.OldPlan(ctx)
	case reportjob.FieldResult:
		return m.OldResult(ctx)
	case reportjob.FieldNarrative:
		return m.OldNarrative(ctx)
	case reportjob.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case reportjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case reportjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reportjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportjob.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case reportjob.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case reportjob.FieldStatus:
		v, ok := value.(reportjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reportjob.FieldPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case reportjob.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case reportjob.FieldNarrative:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNarrative(v)
		return nil
	case reportjob.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case reportjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case reportjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reportjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportJobMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, reportjob.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportjob.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportjob.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ReportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reportjob.FieldRequestedBy) {
		fields = append(fields, reportjob.FieldRequestedBy)
	}
	if m.FieldCleared(reportjob.FieldPlan) {
		fields = append(fields, reportjob.FieldPlan)
	}
	if m.FieldCleared(reportjob.FieldResult) {
		fields = append(fields, reportjob.FieldResult)
	}
	if m.FieldCleared(reportjob.FieldNarrative) {
		fields = append(fields, reportjob.FieldNarrative)
	}
	if m.FieldCleared(reportjob.FieldErrorMessage) {
		fields = append(fields, reportjob.FieldErrorMessage)
	}
	if m.FieldCleared(reportjob.FieldCompletedAt) {
		fields = append(fields, reportjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportJobMutation) ClearField(name string) error {
	switch name {
	case reportjob.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	case reportjob.FieldPlan:
		m.ClearPlan()
		return nil
	case reportjob.FieldResult:
		m.ClearResult()
		return nil
	case reportjob.FieldNarrative:
		m.ClearNarrative()
		return nil
	case reportjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case reportjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportJobMutation) ResetField(name string) error {
	switch name {
	case reportjob.FieldQuery:
		m.ResetQuery()
		return nil
	case reportjob.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case reportjob.FieldStatus:
		m.ResetStatus()
		return nil
	case reportjob.FieldPlan:
		m.ResetPlan()
		return nil
	case reportjob.FieldResult:
		m.ResetResult()
		return nil
	case reportjob.FieldNarrative:
		m.ResetNarrative()
		return nil
	case reportjob.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case reportjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case reportjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reportjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReportJob edge %s", name)
}

// SupplierRiskFactorMutation represents an operation that mutates the SupplierRiskFactor nodes in the graph.
type SupplierRiskFactorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	factor_name       *string
	weight            *float64
	addweight         *float64
	value             *float64
	addvalue          *float64
	evidence          *map[string]interface{}
	clearedFields     map[string]struct{}
	risk_score        *string
	clearedrisk_score bool
	done              bool
	oldValue          func(context.Context) (*SupplierRiskFactor, error)
	predicates        []predicate.SupplierRiskFactor
}

var _ ent.Mutation = (*SupplierRiskFactorMutation)(nil)

// supplierriskfactorOption allows management of the mutation configuration using functional options.
type supplierriskfactorOption func(*SupplierRiskFactorMutation)

// newSupplierRiskFactorMutation creates new mutation for the SupplierRiskFactor entity.
func newSupplierRiskFactorMutation(c config, op Op, opts ...supplierriskfactorOption) *SupplierRiskFactorMutation {
	m := &SupplierRiskFactorMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplierRiskFactor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierRiskFactorID sets the ID field of the mutation.
func withSupplierRiskFactorID(id string) supplierriskfactorOption {
	return func(m *SupplierRiskFactorMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplierRiskFactor
		)
		m.oldValue = func(ctx context.Context) (*SupplierRiskFactor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplierRiskFactor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplierRiskFactor sets the old SupplierRiskFactor of the mutation.
func withSupplierRiskFactor(node *SupplierRiskFactor) supplierriskfactorOption {
	return func(m *SupplierRiskFactorMutation) {
		m.oldValue = func(context.Context) (*SupplierRiskFactor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierRiskFactorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierRiskFactorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplierRiskFactor entities.
func (m *SupplierRiskFactorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierRiskFactorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierRiskFactorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplierRiskFactor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRiskScoreID sets the "risk_score_id" field.
func (m *SupplierRiskFactorMutation) SetRiskScoreID(s string) {
	m.risk_score = &s
}

// RiskScoreID returns the value of the "risk_score_id" field in the mutation.
func (m *SupplierRiskFactorMutation) RiskScoreID() (r string, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScoreID returns the old "risk_score_id" field's value of the SupplierRiskFactor entity.
// If the SupplierRiskFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskFactorMutation) OldRiskScoreID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScoreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScoreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScoreID: %w", err)
	}
	return oldValue.RiskScoreID, nil
}

// ResetRiskScoreID resets all changes to the "risk_score_id" field.
func (m *SupplierRiskFactorMutation) ResetRiskScoreID() {
	m.risk_score = nil
}

// SetFactorName sets the "factor_name" field.
func (m *SupplierRiskFactorMutation) SetFactorName(s string) {
	m.factor_name = &s
}

// FactorName returns the value of the "factor_name" field in the mutation.
func (m *SupplierRiskFactorMutation) FactorName() (r string, exists bool) {
	v := m.factor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFactorName returns the old "factor_name" field's value of the SupplierRiskFactor entity.
// If the SupplierRiskFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskFactorMutation) OldFactorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactorName: %w", err)
	}
	return oldValue.FactorName, nil
}

// ResetFactorName resets all changes to the "factor_name" field.
func (m *SupplierRiskFactorMutation) ResetFactorName() {
	m.factor_name = nil
}

// SetWeight sets the "weight" field.
func (m *SupplierRiskFactorMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *SupplierRiskFactorMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the SupplierRiskFactor entity.
// If the SupplierRiskFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskFactorMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *SupplierRiskFactorMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *SupplierRiskFactorMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *SupplierRiskFactorMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetValue sets the "value" field.
func (m *SupplierRiskFactorMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *SupplierRiskFactorMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the SupplierRiskFactor entity.
// If the SupplierRiskFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskFactorMutation) OldValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *SupplierRiskFactorMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *SupplierRiskFactorMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *SupplierRiskFactorMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// SetEvidence sets the "evidence" field.
func (m *SupplierRiskFactorMutation) SetEvidence(value map[string]interface{}) {
	m.evidence = &value
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *SupplierRiskFactorMutation) Evidence() (r map[string]interface{}, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the SupplierRiskFactor entity.
// If the SupplierRiskFactor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskFactorMutation) OldEvidence(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *SupplierRiskFactorMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[supplierriskfactor.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *SupplierRiskFactorMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[supplierriskfactor.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *SupplierRiskFactorMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, supplierriskfactor.FieldEvidence)
}

// ClearRiskScore clears the "risk_score" edge to the SupplierRiskScore entity.
func (m *SupplierRiskFactorMutation) ClearRiskScore() {
	m.clearedrisk_score = true
	m.clearedFields[supplierriskfactor.FieldRiskScoreID] = struct{}{}
}

// RiskScoreCleared reports if the "risk_score" edge to the SupplierRiskScore entity was cleared.
func (m *SupplierRiskFactorMutation) RiskScoreCleared() bool {
	return m.clearedrisk_score
}

// RiskScoreIDs returns the "risk_score" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RiskScoreID instead. It exists only for internal usage by the builders.
func (m *SupplierRiskFactorMutation) RiskScoreIDs() (ids []string) {
	if id := m.risk_score; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRiskScore resets all changes to the "risk_score" edge.
func (m *SupplierRiskFactorMutation) ResetRiskScore() {
	m.risk_score = nil
	m.clearedrisk_score = false
}

// Where appends a list predicates to the SupplierRiskFactorMutation builder.
func (m *SupplierRiskFactorMutation) Where(ps ...predicate.SupplierRiskFactor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierRiskFactorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierRiskFactorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplierRiskFactor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierRiskFactorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierRiskFactorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplierRiskFactor).
func (m *SupplierRiskFactorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierRiskFactorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.risk_score != nil {
		fields = append(fields, supplierriskfactor.FieldRiskScoreID)
	}
	if m.factor_name != nil {
		fields = append(fields, supplierriskfactor.FieldFactorName)
	}
	if m.weight != nil {
		fields = append(fields, supplierriskfactor.FieldWeight)
	}
	if m.value != nil {
		fields = append(fields, supplierriskfactor.FieldValue)
	}
	if m.evidence != nil {
		fields = append(fields, supplierriskfactor.FieldEvidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierRiskFactorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplierriskfactor.FieldRiskScoreID:
		return m.RiskScoreID()
	case supplierriskfactor.FieldFactorName:
		return m.FactorName()
	case supplierriskfactor.FieldWeight:
		return m.Weight()
	case supplierriskfactor.FieldValue:
		return m.Value()
	case supplierriskfactor.FieldEvidence:
		return m.Evidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierRiskFactorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplierriskfactor.FieldRiskScoreID:
		return m.OldRiskScoreID(ctx)
	case supplierriskfactor.FieldFactorName:
		return m.OldFactorName(ctx)
	case supplierriskfactor.FieldWeight:
		return m.OldWeight(ctx)
	case supplierriskfactor.FieldValue:
		return m.OldValue(ctx)
	case supplierriskfactor.FieldEvidence:
		return m.OldEvidence(ctx)
	}
	return nil, fmt.Errorf("unknown SupplierRiskFactor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierRiskFactorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplierriskfactor.FieldRiskScoreID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScoreID(v)
		return nil
	case supplierriskfactor.FieldFactorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactorName(v)
		return nil
	case supplierriskfactor.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case supplierriskfactor.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case supplierriskfactor.FieldEvidence:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskFactor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierRiskFactorMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, supplierriskfactor.FieldWeight)
	}
	if m.addvalue != nil {
		fields = append(fields, supplierriskfactor.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierRiskFactorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case supplierriskfactor.FieldWeight:
		return m.AddedWeight()
	case supplierriskfactor.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierRiskFactorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case supplierriskfactor.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case supplierriskfactor.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskFactor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierRiskFactorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplierriskfactor.FieldEvidence) {
		fields = append(fields, supplierriskfactor.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierRiskFactorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierRiskFactorMutation) ClearField(name string) error {
	switch name {
	case supplierriskfactor.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskFactor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierRiskFactorMutation) ResetField(name string) error {
	switch name {
	case supplierriskfactor.FieldRiskScoreID:
		m.ResetRiskScoreID()
		return nil
	case supplierriskfactor.FieldFactorName:
		m.ResetFactorName()
		return nil
	case supplierriskfactor.FieldWeight:
		m.ResetWeight()
		return nil
	case supplierriskfactor.FieldValue:
		m.ResetValue()
		return nil
	case supplierriskfactor.FieldEvidence:
		m.ResetEvidence()
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskFactor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierRiskFactorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.risk_score != nil {
		edges = append(edges, supplierriskfactor.EdgeRiskScore)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierRiskFactorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supplierriskfactor.EdgeRiskScore:
		if id := m.risk_score; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierRiskFactorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierRiskFactorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierRiskFactorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrisk_score {
		edges = append(edges, supplierriskfactor.EdgeRiskScore)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierRiskFactorMutation) EdgeCleared(name string) bool {
	switch name {
	case supplierriskfactor.EdgeRiskScore:
		return m.clearedrisk_score
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierRiskFactorMutation) ClearEdge(name string) error {
	switch name {
	case supplierriskfactor.EdgeRiskScore:
		m.ClearRiskScore()
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskFactor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierRiskFactorMutation) ResetEdge(name string) error {
	switch name {
	case supplierriskfactor.EdgeRiskScore:
		m.ResetRiskScore()
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskFactor edge %s", name)
}

// SupplierRiskScoreMutation represents an operation that mutates the SupplierRiskScore nodes in the graph.
type SupplierRiskScoreMutation struct {
	config
	op             Op
	typ            string
	id             *string
	supplier_id    *int64
	addsupplier_id *int64
	score          *float64
	addscore       *float64
	risk_tier      *supplierriskscore.RiskTier
	calculated_at  *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	factors        map[string]struct{}
	removedfactors map[string]struct{}
	clearedfactors bool
	done           bool
	oldValue       func(context.Context) (*SupplierRiskScore, error)
	predicates     []predicate.SupplierRiskScore
}

var _ ent.Mutation = (*SupplierRiskScoreMutation)(nil)

// supplierriskscoreOption allows management of the mutation configuration using functional options.
type supplierriskscoreOption func(*SupplierRiskScoreMutation)

// newSupplierRiskScoreMutation creates new mutation for the SupplierRiskScore entity.
func newSupplierRiskScoreMutation(c config, op Op, opts ...supplierriskscoreOption) *SupplierRiskScoreMutation {
	m := &SupplierRiskScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplierRiskScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierRiskScoreID sets the ID field of the mutation.
func withSupplierRiskScoreID(id string) supplierriskscoreOption {
	return func(m *SupplierRiskScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplierRiskScore
		)
		m.oldValue = func(ctx context.Context) (*SupplierRiskScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplierRiskScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplierRiskScore sets the old SupplierRiskScore of the mutation.
func withSupplierRiskScore(node *SupplierRiskScore) supplierriskscoreOption {
	return func(m *SupplierRiskScoreMutation) {
		m.oldValue = func(context.Context) (*SupplierRiskScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierRiskScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierRiskScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplierRiskScore entities.
func (m *SupplierRiskScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierRiskScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierRiskScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplierRiskScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierID sets the "supplier_id" field.
func (m *SupplierRiskScoreMutation) SetSupplierID(i int64) {
	m.supplier_id = &i
	m.addsupplier_id = nil
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *SupplierRiskScoreMutation) SupplierID() (r int64, exists bool) {
	v := m.supplier_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the SupplierRiskScore entity.
// If the SupplierRiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskScoreMutation) OldSupplierID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// AddSupplierID adds i to the "supplier_id" field.
func (m *SupplierRiskScoreMutation) AddSupplierID(i int64) {
	if m.addsupplier_id != nil {
		*m.addsupplier_id += i
	} else {
		m.addsupplier_id = &i
	}
}

// AddedSupplierID returns the value that was added to the "supplier_id" field in this mutation.
func (m *SupplierRiskScoreMutation) AddedSupplierID() (r int64, exists bool) {
	v := m.addsupplier_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *SupplierRiskScoreMutation) ResetSupplierID() {
	m.supplier_id = nil
	m.addsupplier_id = nil
}

// SetScore sets the "score" field.
func (m *SupplierRiskScoreMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SupplierRiskScoreMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SupplierRiskScore entity.
// If the SupplierRiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskScoreMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *SupplierRiskScoreMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SupplierRiskScoreMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SupplierRiskScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetRiskTier sets the "risk_tier" field.
func (m *SupplierRiskScoreMutation) SetRiskTier(st supplierriskscore.RiskTier) {
	m.risk_tier = &st
}

// RiskTier returns the value of the "risk_tier" field in the mutation.
func (m *SupplierRiskScoreMutation) RiskTier() (r supplierriskscore.RiskTier, exists bool) {
	v := m.risk_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskTier returns the old "risk_tier" field's value of the SupplierRiskScore entity.
// If the SupplierRiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskScoreMutation) OldRiskTier(ctx context.Context) (v supplierriskscore.RiskTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskTier: %w", err)
	}
	return oldValue.RiskTier, nil
}

// ResetRiskTier resets all changes to the "risk_tier" field.
func (m *SupplierRiskScoreMutation) ResetRiskTier() {
	m.risk_tier = nil
}

// SetCalculatedAt sets the "calculated_at" field.
func (m *SupplierRiskScoreMutation) SetCalculatedAt(t time.Time) {
	m.calculated_at = &t
}

// CalculatedAt returns the value of the "calculated_at" field in the mutation.
func (m *SupplierRiskScoreMutation) CalculatedAt() (r time.Time, exists bool) {
	v := m.calculated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedAt returns the old "calculated_at" field's value of the SupplierRiskScore entity.
// If the SupplierRiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskScoreMutation) OldCalculatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedAt: %w", err)
	}
	return oldValue.CalculatedAt, nil
}

// ResetCalculatedAt resets all changes to the "calculated_at" field.
func (m *SupplierRiskScoreMutation) ResetCalculatedAt() {
	m.calculated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupplierRiskScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupplierRiskScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SupplierRiskScore entity.
// If the SupplierRiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierRiskScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupplierRiskScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFactorIDs adds the "factors" edge to the SupplierRiskFactor entity by ids.
func (m *SupplierRiskScoreMutation) AddFactorIDs(ids ...string) {
	if m.factors == nil {
		m.factors = make(map[string]struct{})
	}
	for i := range ids {
		m.factors[ids[i]] = struct{}{}
	}
}

// ClearFactors clears the "factors" edge to the SupplierRiskFactor entity.
func (m *SupplierRiskScoreMutation) ClearFactors() {
	m.clearedfactors = true
}

// FactorsCleared reports if the "factors" edge to the SupplierRiskFactor entity was cleared.
func (m *SupplierRiskScoreMutation) FactorsCleared() bool {
	return m.clearedfactors
}

// RemoveFactorIDs removes the "factors" edge to the SupplierRiskFactor entity by IDs.
func (m *SupplierRiskScoreMutation) RemoveFactorIDs(ids ...string) {
	if m.removedfactors == nil {
		m.removedfactors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.factors, ids[i])
		m.removedfactors[ids[i]] = struct{}{}
	}
}

// RemovedFactors returns the removed IDs of the "factors" edge to the SupplierRiskFactor entity.
func (m *SupplierRiskScoreMutation) RemovedFactorsIDs() (ids []string) {
	for id := range m.removedfactors {
		ids = append(ids, id)
	}
	return
}

// FactorsIDs returns the "factors" edge IDs in the mutation.
func (m *SupplierRiskScoreMutation) FactorsIDs() (ids []string) {
	for id := range m.factors {
		ids = append(ids, id)
	}
	return
}

// ResetFactors resets all changes to the "factors" edge.
func (m *SupplierRiskScoreMutation) ResetFactors() {
	m.factors = nil
	m.clearedfactors = false
	m.removedfactors = nil
}

// Where appends a list predicates to the SupplierRiskScoreMutation builder.
func (m *SupplierRiskScoreMutation) Where(ps ...predicate.SupplierRiskScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierRiskScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierRiskScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplierRiskScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierRiskScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierRiskScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplierRiskScore).
func (m *SupplierRiskScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierRiskScoreMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.supplier_id != nil {
		fields = append(fields, supplierriskscore.FieldSupplierID)
	}
	if m.score != nil {
		fields = append(fields, supplierriskscore.FieldScore)
	}
	if m.risk_tier != nil {
		fields = append(fields, supplierriskscore.FieldRiskTier)
	}
	if m.calculated_at != nil {
		fields = append(fields, supplierriskscore.FieldCalculatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supplierriskscore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierRiskScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplierriskscore.FieldSupplierID:
		return m.SupplierID()
	case supplierriskscore.FieldScore:
		return m.Score()
	case supplierriskscore.FieldRiskTier:
		return m.RiskTier()
	case supplierriskscore.FieldCalculatedAt:
		return m.CalculatedAt()
	case supplierriskscore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierRiskScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplierriskscore.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case supplierriskscore.FieldScore:
		return m.OldScore(ctx)
	case supplierriskscore.FieldRiskTier:
		return m.OldRiskTier(ctx)
	case supplierriskscore.FieldCalculatedAt:
		return m.OldCalculatedAt(ctx)
	case supplierriskscore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupplierRiskScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierRiskScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplierriskscore.FieldSupplierID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case supplierriskscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case supplierriskscore.FieldRiskTier:
		v, ok := value.(supplierriskscore.RiskTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskTier(v)
		return nil
	case supplierriskscore.FieldCalculatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedAt(v)
		return nil
	case supplierriskscore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierRiskScoreMutation) AddedFields() []string {
	var fields []string
	if m.addsupplier_id != nil {
		fields = append(fields, supplierriskscore.FieldSupplierID)
	}
	if m.addscore != nil {
		fields = append(fields, supplierriskscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierRiskScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case supplierriskscore.FieldSupplierID:
		return m.AddedSupplierID()
	case supplierriskscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierRiskScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case supplierriskscore.FieldSupplierID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierID(v)
		return nil
	case supplierriskscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierRiskScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierRiskScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierRiskScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SupplierRiskScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierRiskScoreMutation) ResetField(name string) error {
	switch name {
	case supplierriskscore.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case supplierriskscore.FieldScore:
		m.ResetScore()
		return nil
	case supplierriskscore.FieldRiskTier:
		m.ResetRiskTier()
		return nil
	case supplierriskscore.FieldCalculatedAt:
		m.ResetCalculatedAt()
		return nil
	case supplierriskscore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierRiskScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.factors != nil {
		edges = append(edges, supplierriskscore.EdgeFactors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierRiskScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case supplierriskscore.EdgeFactors:
		ids := make([]ent.Value, 0, len(m.factors))
		for id := range m.factors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierRiskScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedfactors != nil {
		edges = append(edges, supplierriskscore.EdgeFactors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierRiskScoreMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case supplierriskscore.EdgeFactors:
		ids := make([]ent.Value, 0, len(m.removedfactors))
		for id := range m.removedfactors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierRiskScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfactors {
		edges = append(edges, supplierriskscore.EdgeFactors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierRiskScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case supplierriskscore.EdgeFactors:
		return m.clearedfactors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierRiskScoreMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SupplierRiskScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierRiskScoreMutation) ResetEdge(name string) error {
	switch name {
	case supplierriskscore.EdgeFactors:
		m.ResetFactors()
		return nil
	}
	return fmt.Errorf("unknown SupplierRiskScore edge %s", name)
}

// SupplyChainAlertMutation represents an operation that mutates the SupplyChainAlert nodes in the graph.
type SupplyChainAlertMutation struct {
	config
	op              Op
	typ             string
	id              *string
	severity        *supplychainalert.Severity
	title           *string
	body            *string
	supplier_id     *int64
	addsupplier_id  *int64
	prediction_id   *string
	acknowledged    *bool
	acknowledged_by *string
	created_at      *time.Time
	acknowledged_at *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SupplyChainAlert, error)
	predicates      []predicate.SupplyChainAlert
}

var _ ent.Mutation = (*SupplyChainAlertMutation)(nil)

// supplychainalertOption allows management of the mutation configuration using functional options.
type supplychainalertOption func(*SupplyChainAlertMutation)

// newSupplyChainAlertMutation creates new mutation for the SupplyChainAlert entity.
func newSupplyChainAlertMutation(c config, op Op, opts ...supplychainalertOption) *SupplyChainAlertMutation {
	m := &SupplyChainAlertMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplyChainAlert,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplyChainAlertID sets the ID field of the mutation.
func withSupplyChainAlertID(id string) supplychainalertOption {
	return func(m *SupplyChainAlertMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplyChainAlert
		)
		m.oldValue = func(ctx context.Context) (*SupplyChainAlert, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplyChainAlert.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplyChainAlert sets the old SupplyChainAlert of the mutation.
func withSupplyChainAlert(node *SupplyChainAlert) supplychainalertOption {
	return func(m *SupplyChainAlertMutation) {
		m.oldValue = func(context.Context) (*SupplyChainAlert, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplyChainAlertMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplyChainAlertMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplyChainAlert entities.
func (m *SupplyChainAlertMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplyChainAlertMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplyChainAlertMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplyChainAlert.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSeverity sets the "severity" field.
func (m *SupplyChainAlertMutation) SetSeverity(s supplychainalert.Severity) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *SupplyChainAlertMutation) Severity() (r supplychainalert.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldSeverity(ctx context.Context) (v supplychainalert.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *SupplyChainAlertMutation) ResetSeverity() {
	m.severity = nil
}

// SetTitle sets the "title" field.
func (m *SupplyChainAlertMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SupplyChainAlertMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SupplyChainAlertMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *SupplyChainAlertMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *SupplyChainAlertMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *SupplyChainAlertMutation) ClearBody() {
	m.body = nil
	m.clearedFields[supplychainalert.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *SupplyChainAlertMutation) BodyCleared() bool {
	_, ok := m.clearedFields[supplychainalert.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *SupplyChainAlertMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, supplychainalert.FieldBody)
}

// SetSupplierID sets the "supplier_id" field.
func (m *SupplyChainAlertMutation) SetSupplierID(i int64) {
	m.supplier_id = &i
	m.addsupplier_id = nil
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *SupplyChainAlertMutation) SupplierID() (r int64, exists bool) {
	v := m.supplier_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldSupplierID(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// AddSupplierID adds i to the "supplier_id" field.
func (m *SupplyChainAlertMutation) AddSupplierID(i int64) {
	if m.addsupplier_id != nil {
		*m.addsupplier_id += i
	} else {
		m.addsupplier_id = &i
	}
}

// AddedSupplierID returns the value that was added to the "supplier_id" field in this mutation.
func (m *SupplyChainAlertMutation) AddedSupplierID() (r int64, exists bool) {
	v := m.addsupplier_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (m *SupplyChainAlertMutation) ClearSupplierID() {
	m.supplier_id = nil
	m.addsupplier_id = nil
	m.clearedFields[supplychainalert.FieldSupplierID] = struct{}{}
}

// SupplierIDCleared returns if the "supplier_id" field was cleared in this mutation.
func (m *SupplyChainAlertMutation) SupplierIDCleared() bool {
	_, ok := m.clearedFields[supplychainalert.FieldSupplierID]
	return ok
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *SupplyChainAlertMutation) ResetSupplierID() {
	m.supplier_id = nil
	m.addsupplier_id = nil
	delete(m.clearedFields, supplychainalert.FieldSupplierID)
}

// SetPredictionID sets the "prediction_id" field.
func (m *SupplyChainAlertMutation) SetPredictionID(s string) {
	m.prediction_id = &s
}

// PredictionID returns the value of the "prediction_id" field in the mutation.
func (m *SupplyChainAlertMutation) PredictionID() (r string, exists bool) {
	v := m.prediction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictionID returns the old "prediction_id" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldPredictionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictionID: %w", err)
	}
	return oldValue.PredictionID, nil
}

// ClearPredictionID clears the value of the "prediction_id" field.
func (m *SupplyChainAlertMutation) ClearPredictionID() {
	m.prediction_id = nil
	m.clearedFields[supplychainalert.FieldPredictionID] = struct{}{}
}

// PredictionIDCleared returns if the "prediction_id" field was cleared in this mutation.
func (m *SupplyChainAlertMutation) PredictionIDCleared() bool {
	_, ok := m.clearedFields[supplychainalert.FieldPredictionID]
	return ok
}

// ResetPredictionID resets all changes to the "prediction_id" field.
func (m *SupplyChainAlertMutation) ResetPredictionID() {
	m.prediction_id = nil
	delete(m.clearedFields, supplychainalert.FieldPredictionID)
}

// SetAcknowledged sets the "acknowledged" field.
func (m *SupplyChainAlertMutation) SetAcknowledged(b bool) {
	m.acknowledged = &b
}

// Acknowledged returns the value of the "acknowledged" field in the mutation.
func (m *SupplyChainAlertMutation) Acknowledged() (r bool, exists bool) {
	v := m.acknowledged
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledged returns the old "acknowledged" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldAcknowledged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledged: %w", err)
	}
	return oldValue.Acknowledged, nil
}

// ResetAcknowledged resets all changes to the "acknowledged" field.
func (m *SupplyChainAlertMutation) ResetAcknowledged() {
	m.acknowledged = nil
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (m *SupplyChainAlertMutation) SetAcknowledgedBy(s string) {
	m.acknowledged_by = &s
}

// AcknowledgedBy returns the value of the "acknowledged_by" field in the mutation.
func (m *SupplyChainAlertMutation) AcknowledgedBy() (r string, exists bool) {
	v := m.acknowledged_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedBy returns the old "acknowledged_by" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldAcknowledgedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedBy: %w", err)
	}
	return oldValue.AcknowledgedBy, nil
}

// ClearAcknowledgedBy clears the value of the "acknowledged_by" field.
func (m *SupplyChainAlertMutation) ClearAcknowledgedBy() {
	m.acknowledged_by = nil
	m.clearedFields[supplychainalert.FieldAcknowledgedBy] = struct{}{}
}

// AcknowledgedByCleared returns if the "acknowledged_by" field was cleared in this mutation.
func (m *SupplyChainAlertMutation) AcknowledgedByCleared() bool {
	_, ok := m.clearedFields[supplychainalert.FieldAcknowledgedBy]
	return ok
}

// ResetAcknowledgedBy resets all changes to the "acknowledged_by" field.
func (m *SupplyChainAlertMutation) ResetAcknowledgedBy() {
	m.acknowledged_by = nil
	delete(m.clearedFields, supplychainalert.FieldAcknowledgedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplyChainAlertMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplyChainAlertMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplyChainAlertMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (m *SupplyChainAlertMutation) SetAcknowledgedAt(t time.Time) {
	m.acknowledged_at = &t
}

// AcknowledgedAt returns the value of the "acknowledged_at" field in the mutation.
func (m *SupplyChainAlertMutation) AcknowledgedAt() (r time.Time, exists bool) {
	v := m.acknowledged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcknowledgedAt returns the old "acknowledged_at" field's value of the SupplyChainAlert entity.
// If the SupplyChainAlert object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplyChainAlertMutation) OldAcknowledgedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcknowledgedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcknowledgedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcknowledgedAt: %w", err)
	}
	return oldValue.AcknowledgedAt, nil
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (m *SupplyChainAlertMutation) ClearAcknowledgedAt() {
	m.acknowledged_at = nil
	m.clearedFields[supplychainalert.FieldAcknowledgedAt] = struct{}{}
}

// AcknowledgedAtCleared returns if the "acknowledged_at" field was cleared in this mutation.
func (m *SupplyChainAlertMutation) AcknowledgedAtCleared() bool {
	_, ok := m.clearedFields[supplychainalert.FieldAcknowledgedAt]
	return ok
}

// ResetAcknowledgedAt resets all changes to the "acknowledged_at" field.
func (m *SupplyChainAlertMutation) ResetAcknowledgedAt() {
	m.acknowledged_at = nil
	delete(m.clearedFields, supplychainalert.FieldAcknowledgedAt)
}

// Where appends a list predicates to the SupplyChainAlertMutation builder.
func (m *SupplyChainAlertMutation) Where(ps ...predicate.SupplyChainAlert) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplyChainAlertMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplyChainAlertMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplyChainAlert, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplyChainAlertMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplyChainAlertMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplyChainAlert).
func (m *SupplyChainAlertMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplyChainAlertMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.severity != nil {
		fields = append(fields, supplychainalert.FieldSeverity)
	}
	if m.title != nil {
		fields = append(fields, supplychainalert.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, supplychainalert.FieldBody)
	}
	if m.supplier_id != nil {
		fields = append(fields, supplychainalert.FieldSupplierID)
	}
	if m.prediction_id != nil {
		fields = append(fields, supplychainalert.FieldPredictionID)
	}
	if m.acknowledged != nil {
		fields = append(fields, supplychainalert.FieldAcknowledged)
	}
	if m.acknowledged_by != nil {
		fields = append(fields, supplychainalert.FieldAcknowledgedBy)
	}
	if m.created_at != nil {
		fields = append(fields, supplychainalert.FieldCreatedAt)
	}
	if m.acknowledged_at != nil {
		fields = append(fields, supplychainalert.FieldAcknowledgedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplyChainAlertMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplychainalert.FieldSeverity:
		return m.Severity()
	case supplychainalert.FieldTitle:
		return m.Title()
	case supplychainalert.FieldBody:
		return m.Body()
	case supplychainalert.FieldSupplierID:
		return m.SupplierID()
	case supplychainalert.FieldPredictionID:
		return m.PredictionID()
	case supplychainalert.FieldAcknowledged:
		return m.Acknowledged()
	case supplychainalert.FieldAcknowledgedBy:
		return m.AcknowledgedBy()
	case supplychainalert.FieldCreatedAt:
		return m.CreatedAt()
	case supplychainalert.FieldAcknowledgedAt:
		return m.AcknowledgedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplyChainAlertMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplychainalert.FieldSeverity:
		return m.OldSeverity(ctx)
	case supplychainalert.FieldTitle:
		return m.OldTitle(ctx)
	case supplychainalert.FieldBody:
		return m.OldBody(ctx)
	case supplychainalert.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case supplychainalert.FieldPredictionID:
		return m.OldPredictionID(ctx)
	case supplychainalert.FieldAcknowledged:
		return m.OldAcknowledged(ctx)
	case supplychainalert.FieldAcknowledgedBy:
		return m.OldAcknowledgedBy(ctx)
	case supplychainalert.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supplychainalert.FieldAcknowledgedAt:
		return m.OldAcknowledgedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupplyChainAlert field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplyChainAlertMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplychainalert.FieldSeverity:
		v, ok := value.(supplychainalert.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case supplychainalert.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case supplychainalert.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case supplychainalert.FieldSupplierID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case supplychainalert.FieldPredictionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictionID(v)
		return nil
	case supplychainalert.FieldAcknowledged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledged(v)
		return nil
	case supplychainalert.FieldAcknowledgedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedBy(v)
		return nil
	case supplychainalert.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supplychainalert.FieldAcknowledgedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcknowledgedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupplyChainAlert field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplyChainAlertMutation) AddedFields() []string {
	var fields []string
	if m.addsupplier_id != nil {
		fields = append(fields, supplychainalert.FieldSupplierID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplyChainAlertMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case supplychainalert.FieldSupplierID:
		return m.AddedSupplierID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplyChainAlertMutation) AddField(name string, value ent.Value) error {
	switch name {
	case supplychainalert.FieldSupplierID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSupplierID(v)
		return nil
	}
	return fmt.Errorf("unknown SupplyChainAlert numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplyChainAlertMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplychainalert.FieldBody) {
		fields = append(fields, supplychainalert.FieldBody)
	}
	if m.FieldCleared(supplychainalert.FieldSupplierID) {
		fields = append(fields, supplychainalert.FieldSupplierID)
	}
	if m.FieldCleared(supplychainalert.FieldPredictionID) {
		fields = append(fields, supplychainalert.FieldPredictionID)
	}
	if m.FieldCleared(supplychainalert.FieldAcknowledgedBy) {
		fields = append(fields, supplychainalert.FieldAcknowledgedBy)
	}
	if m.FieldCleared(supplychainalert.FieldAcknowledgedAt) {
		fields = append(fields, supplychainalert.FieldAcknowledgedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplyChainAlertMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplyChainAlertMutation) ClearField(name string) error {
	switch name {
	case supplychainalert.FieldBody:
		m.ClearBody()
		return nil
	case supplychainalert.FieldSupplierID:
		m.ClearSupplierID()
		return nil
	case supplychainalert.FieldPredictionID:
		m.ClearPredictionID()
		return nil
	case supplychainalert.FieldAcknowledgedBy:
		m.ClearAcknowledgedBy()
		return nil
	case supplychainalert.FieldAcknowledgedAt:
		m.ClearAcknowledgedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplyChainAlert nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplyChainAlertMutation) ResetField(name string) error {
	switch name {
	case supplychainalert.FieldSeverity:
		m.ResetSeverity()
		return nil
	case supplychainalert.FieldTitle:
		m.ResetTitle()
		return nil
	case supplychainalert.FieldBody:
		m.ResetBody()
		return nil
	case supplychainalert.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case supplychainalert.FieldPredictionID:
		m.ResetPredictionID()
		return nil
	case supplychainalert.FieldAcknowledged:
		m.ResetAcknowledged()
		return nil
	case supplychainalert.FieldAcknowledgedBy:
		m.ResetAcknowledgedBy()
		return nil
	case supplychainalert.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supplychainalert.FieldAcknowledgedAt:
		m.ResetAcknowledgedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplyChainAlert field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplyChainAlertMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplyChainAlertMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplyChainAlertMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplyChainAlertMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplyChainAlertMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplyChainAlertMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplyChainAlertMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SupplyChainAlert unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplyChainAlertMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SupplyChainAlert edge %s", name)
}

// WebhookEventMutation represents an operation that mutates the WebhookEvent nodes in the graph.
type WebhookEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	event_type    *webhookevent.EventType
	model         *string
	record_id     *int64
	addrecord_id  *int64
	payload       *map[string]interface{}
	payload_hash  *string
	received_at   *time.Time
	processed     *bool
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WebhookEvent, error)
	predicates    []predicate.WebhookEvent
}

var _ ent.Mutation = (*WebhookEventMutation)(nil)

// webhookeventOption allows management of the mutation configuration using functional options.
type webhookeventOption func(*WebhookEventMutation)

// newWebhookEventMutation creates new mutation for the WebhookEvent entity.
func newWebhookEventMutation(c config, op Op, opts ...webhookeventOption) *WebhookEventMutation {
	m := &WebhookEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEventID sets the ID field of the mutation.
func withWebhookEventID(id string) webhookeventOption {
	return func(m *WebhookEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEvent
		)
		m.oldValue = func(ctx context.Context) (*WebhookEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEvent sets the old WebhookEvent of the mutation.
func withWebhookEvent(node *WebhookEvent) webhookeventOption {
	return func(m *WebhookEventMutation) {
		m.oldValue = func(context.Context) (*WebhookEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEvent entities.
func (m *WebhookEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *WebhookEventMutation) SetEventType(wt webhookevent.EventType) {
	m.event_type = &wt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookEventMutation) EventType() (r webhookevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldEventType(ctx context.Context) (v webhookevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetModel sets the "model" field.
func (m *WebhookEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *WebhookEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *WebhookEventMutation) ResetModel() {
	m.model = nil
}

// SetRecordID sets the "record_id" field.
func (m *WebhookEventMutation) SetRecordID(i int64) {
	m.record_id = &i
	m.addrecord_id = nil
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *WebhookEventMutation) RecordID() (r int64, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldRecordID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// AddRecordID adds i to the "record_id" field.
func (m *WebhookEventMutation) AddRecordID(i int64) {
	if m.addrecord_id != nil {
		*m.addrecord_id += i
	} else {
		m.addrecord_id = &i
	}
}

// AddedRecordID returns the value that was added to the "record_id" field in this mutation.
func (m *WebhookEventMutation) AddedRecordID() (r int64, exists bool) {
	v := m.addrecord_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *WebhookEventMutation) ResetRecordID() {
	m.record_id = nil
	m.addrecord_id = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *WebhookEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[webhookevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *WebhookEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, webhookevent.FieldPayload)
}

// SetPayloadHash sets the "payload_hash" field.
func (m *WebhookEventMutation) SetPayloadHash(s string) {
	m.payload_hash = &s
}

// PayloadHash returns the value of the "payload_hash" field in the mutation.
func (m *WebhookEventMutation) PayloadHash() (r string, exists bool) {
	v := m.payload_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadHash returns the old "payload_hash" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldPayloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadHash: %w", err)
	}
	return oldValue.PayloadHash, nil
}

// ResetPayloadHash resets all changes to the "payload_hash" field.
func (m *WebhookEventMutation) ResetPayloadHash() {
	m.payload_hash = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *WebhookEventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *WebhookEventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *WebhookEventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetProcessed sets the "processed" field.
func (m *WebhookEventMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *WebhookEventMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *WebhookEventMutation) ResetProcessed() {
	m.processed = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *WebhookEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WebhookEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WebhookEvent entity.
// If the WebhookEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEventMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WebhookEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[webhookevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WebhookEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[webhookevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WebhookEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, webhookevent.FieldErrorMessage)
}

// Where appends a list predicates to the WebhookEventMutation builder.
func (m *WebhookEventMutation) Where(ps ...predicate.WebhookEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEvent).
func (m *WebhookEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.event_type != nil {
		fields = append(fields, webhookevent.FieldEventType)
	}
	if m.model != nil {
		fields = append(fields, webhookevent.FieldModel)
	}
	if m.record_id != nil {
		fields = append(fields, webhookevent.FieldRecordID)
	}
	if m.payload != nil {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.payload_hash != nil {
		fields = append(fields, webhookevent.FieldPayloadHash)
	}
	if m.received_at != nil {
		fields = append(fields, webhookevent.FieldReceivedAt)
	}
	if m.processed != nil {
		fields = append(fields, webhookevent.FieldProcessed)
	}
	if m.error_message != nil {
		fields = append(fields, webhookevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldEventType:
		return m.EventType()
	case webhookevent.FieldModel:
		return m.Model()
	case webhookevent.FieldRecordID:
		return m.RecordID()
	case webhookevent.FieldPayload:
		return m.Payload()
	case webhookevent.FieldPayloadHash:
		return m.PayloadHash()
	case webhookevent.FieldReceivedAt:
		return m.ReceivedAt()
	case webhookevent.FieldProcessed:
		return m.Processed()
	case webhookevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookevent.FieldEventType:
		return m.OldEventType(ctx)
	case webhookevent.FieldModel:
		return m.OldModel(ctx)
	case webhookevent.FieldRecordID:
		return m.OldRecordID(ctx)
	case webhookevent.FieldPayload:
		return m.OldPayload(ctx)
	case webhookevent.FieldPayloadHash:
		return m.OldPayloadHash(ctx)
	case webhookevent.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case webhookevent.FieldProcessed:
		return m.OldProcessed(ctx)
	case webhookevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldEventType:
		v, ok := value.(webhookevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case webhookevent.FieldRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case webhookevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookevent.FieldPayloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadHash(v)
		return nil
	case webhookevent.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case webhookevent.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case webhookevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEventMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_id != nil {
		fields = append(fields, webhookevent.FieldRecordID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookevent.FieldRecordID:
		return m.AddedRecordID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookevent.FieldRecordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordID(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookevent.FieldPayload) {
		fields = append(fields, webhookevent.FieldPayload)
	}
	if m.FieldCleared(webhookevent.FieldErrorMessage) {
		fields = append(fields, webhookevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEventMutation) ClearField(name string) error {
	switch name {
	case webhookevent.FieldPayload:
		m.ClearPayload()
		return nil
	case webhookevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEventMutation) ResetField(name string) error {
	switch name {
	case webhookevent.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookevent.FieldModel:
		m.ResetModel()
		return nil
	case webhookevent.FieldRecordID:
		m.ResetRecordID()
		return nil
	case webhookevent.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookevent.FieldPayloadHash:
		m.ResetPayloadHash()
		return nil
	case webhookevent.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case webhookevent.FieldProcessed:
		m.ResetProcessed()
		return nil
	case webhookevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WebhookEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WebhookEvent edge %s", name)
}
