package automations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/reconciliationsession"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/matching"
	"github.com/steward-ai/steward/pkg/services"
)

// DefaultAutoMatchThreshold gates which suggestions the scan applies
// without a human in the loop.
const DefaultAutoMatchThreshold = 0.90

// Reconciliation drives fuzzy bank reconciliation: stateful sessions with
// suggestion scoring, manual match recording with rule learning, and an
// auto-match scan for high-confidence exact pairs.
type Reconciliation struct {
	client        *ent.Client
	erp           erp.Client
	autoThreshold float64
}

// NewReconciliation creates the reconciliation automation.
// autoMatchThreshold <= 0 selects the default.
func NewReconciliation(client *ent.Client, erpClient erp.Client, autoMatchThreshold float64) *Reconciliation {
	if client == nil {
		panic("NewReconciliation: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewReconciliation: erp client must not be nil")
	}
	if autoMatchThreshold <= 0 {
		autoMatchThreshold = DefaultAutoMatchThreshold
	}
	return &Reconciliation{client: client, erp: erpClient, autoThreshold: autoMatchThreshold}
}

// Type implements automation.Automation.
func (r *Reconciliation) Type() string { return "reconciliation" }

// WatchedModels implements automation.Automation.
func (r *Reconciliation) WatchedModels() []string { return []string{"account.bank.statement.line"} }

// Handlers implements automation.Automation.
func (r *Reconciliation) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "account.bank.statement.line"}: r.onStatementLine,
	}
}

// Scans implements automation.Automation.
func (r *Reconciliation) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_auto_reconcile": r.scanAutoReconcile,
	}
}

// Execute implements automation.Automation: applies a gated match by
// reconciling the bank line with the journal entry in the ERP.
func (r *Reconciliation) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	if action.Name != "reconcile_match" {
		return nil, fmt.Errorf("reconciliation: unknown action %q", action.Name)
	}
	entryID := erp.Int(action.Changes["entry_id"])
	if entryID == 0 {
		return nil, services.NewValidationError("entry_id", "missing from changes")
	}
	if err := r.applyMatch(ctx, action.RecordID, entryID); err != nil {
		return nil, err
	}
	r.attributeAutoMatch(ctx, action.RecordID)
	return map[string]interface{}{
		"bank_line_id": action.RecordID,
		"entry_id":     entryID,
		"reconciled":   true,
	}, nil
}

// attributeAutoMatch advances the counters of the active session covering
// the reconciled line's journal. Auto-matches outside any session are not
// attributed. Best effort: the ERP pair is already reconciled, so a counter
// failure must not fail the action.
func (r *Reconciliation) attributeAutoMatch(ctx context.Context, bankLineID int64) {
	rec, err := r.erp.Read(ctx, "account.bank.statement.line", bankLineID, []string{"journal_id"})
	if err != nil {
		slog.Warn("auto-match attribution: reading bank line failed",
			"bank_line_id", bankLineID, "error", err)
		return
	}
	journalID, _ := erp.Many2One(rec["journal_id"])
	if journalID == 0 {
		return
	}

	sess, err := r.client.ReconciliationSession.Query().
		Where(
			reconciliationsession.StatusEQ(reconciliationsession.StatusActive),
			reconciliationsession.JournalIDEQ(journalID),
			reconciliationsession.RemainingGT(0),
		).
		Order(ent.Desc(reconciliationsession.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("auto-match attribution: session lookup failed",
				"journal_id", journalID, "error", err)
		}
		return
	}

	if _, err := sess.Update().
		AddAutoMatched(1).
		AddRemaining(-1).
		Save(ctx); err != nil {
		slog.Warn("auto-match attribution: counter update failed",
			"session_id", sess.ID, "error", err)
	}
}

// onStatementLine scores a fresh statement line against open entries and
// proposes the best match through the confidence gate.
func (r *Reconciliation) onStatementLine(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	line := matching.BankLine{
		ID:      ev.RecordID,
		Ref:     erp.Str(ev.Values["payment_ref"]),
		Amount:  erp.Float(ev.Values["amount"]),
		Partner: erp.Str(ev.Values["partner_name"]),
	}
	journalID, _ := erp.Many2One(ev.Values["journal_id"])

	candidates, err := r.openEntries(ctx, journalID)
	if err != nil {
		return nil, err
	}

	suggestions := matching.SuggestMatches([]matching.BankLine{line}, candidates, nil)
	if len(suggestions) == 0 {
		return &automation.Result{
			Success:     true,
			ActionName:  "reconcile_match",
			Confidence:  0.10,
			Reasoning:   fmt.Sprintf("no candidate entry matches bank line %d", line.ID),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	best := suggestions[0]
	return &automation.Result{
		Success:    true,
		ActionName: "reconcile_match",
		RecordID:   line.ID,
		Confidence: best.Confidence,
		Reasoning: fmt.Sprintf("bank line %d matches entry %d (%s, %.2f)",
			line.ID, best.MatchedEntryID, best.MatchType, best.Confidence),
		ChangesMade: map[string]interface{}{
			"entry_id":   best.MatchedEntryID,
			"match_type": string(best.MatchType),
		},
	}, nil
}

// StartSession opens a reconciliation batch over a journal's unreconciled
// statement lines.
func (r *Reconciliation) StartSession(ctx context.Context, userID, journalID int64) (*ent.ReconciliationSession, error) {
	if userID <= 0 {
		return nil, services.NewValidationError("user_id", "must be positive")
	}
	if journalID <= 0 {
		return nil, services.NewValidationError("journal_id", "must be positive")
	}

	total, err := r.erp.SearchCount(ctx, "account.bank.statement.line",
		unreconciledLinesDomain(journalID))
	if err != nil {
		return nil, fmt.Errorf("counting statement lines: %w", err)
	}

	return r.client.ReconciliationSession.Create().
		SetID(uuid.NewString()).
		SetUserID(userID).
		SetJournalID(journalID).
		SetTotalLines(total).
		SetRemaining(total).
		Save(ctx)
}

// GetSession returns one session or ErrNotFound.
func (r *Reconciliation) GetSession(ctx context.Context, sessionID string) (*ent.ReconciliationSession, error) {
	sess, err := r.client.ReconciliationSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

// Suggestions scores the session's open bank lines against open entries.
// Pagination is positional over the line list (page starts at 1).
func (r *Reconciliation) Suggestions(ctx context.Context, sessionID string, page, limit int) ([]matching.Suggestion, error) {
	sess, err := r.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	lines, err := r.openLines(ctx, sess.JournalID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	candidates, err := r.openEntries(ctx, sess.JournalID)
	if err != nil {
		return nil, err
	}

	return matching.SuggestMatches(lines, candidates, decodeRules(sess.LearnedRules)), nil
}

// Match records a manual match: the ERP pair is reconciled, the session
// counters advance, and a learned rule is derived from the pair.
func (r *Reconciliation) Match(ctx context.Context, sessionID string, bankLineID, entryID int64) (*ent.ReconciliationSession, error) {
	sess, err := r.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Remaining <= 0 {
		return nil, fmt.Errorf("session %s has no remaining lines: %w", sessionID, services.ErrInvalidTransition)
	}

	line, entry, err := r.readPair(ctx, bankLineID, entryID)
	if err != nil {
		return nil, err
	}
	if err := r.applyMatch(ctx, bankLineID, entryID); err != nil {
		return nil, err
	}

	rule := matching.NewLearnedRule(line, entry, time.Now().Format(time.RFC3339))
	rules := append(sess.LearnedRules, encodeRule(rule))

	return sess.Update().
		AddManuallyMatched(1).
		AddRemaining(-1).
		SetLearnedRules(rules).
		Save(ctx)
}

// Skip marks the current line as skipped and advances the counters.
func (r *Reconciliation) Skip(ctx context.Context, sessionID string) (*ent.ReconciliationSession, error) {
	sess, err := r.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Remaining <= 0 {
		return nil, fmt.Errorf("session %s has no remaining lines: %w", sessionID, services.ErrInvalidTransition)
	}
	return sess.Update().
		AddSkipped(1).
		AddRemaining(-1).
		Save(ctx)
}

// Complete closes a session. The learned rules stay on the row for future
// sessions to seed from.
func (r *Reconciliation) Complete(ctx context.Context, sessionID string) (*ent.ReconciliationSession, error) {
	sess, err := r.activeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Update().
		SetStatus(reconciliationsession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
}

// scanAutoReconcile proposes exact matches for unreconciled lines across
// all journals. Only suggestions at or above the auto-match threshold are
// emitted; the gate decides on execution.
func (r *Reconciliation) scanAutoReconcile(ctx context.Context, _ time.Time) ([]*automation.Result, error) {
	lines, err := r.openLines(ctx, 0, 0, 200)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	candidates, err := r.openEntries(ctx, 0)
	if err != nil {
		return nil, err
	}

	rules := r.sessionRules(ctx)
	suggestions := matching.SuggestMatches(lines, candidates, rules)

	var results []*automation.Result
	for _, s := range suggestions {
		if s.Confidence < r.autoThreshold {
			continue
		}
		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "reconcile_match",
			Model:      "account.bank.statement.line",
			RecordID:   s.BankLineID,
			Confidence: s.Confidence,
			Reasoning: fmt.Sprintf("auto-reconcile: line %d matches entry %d (%s)",
				s.BankLineID, s.MatchedEntryID, s.MatchType),
			ChangesMade: map[string]interface{}{
				"entry_id":   s.MatchedEntryID,
				"match_type": string(s.MatchType),
			},
		})
	}
	return results, nil
}

// sessionRules merges the learned rules of recently completed sessions.
func (r *Reconciliation) sessionRules(ctx context.Context) []matching.LearnedRule {
	sessions, err := r.client.ReconciliationSession.Query().
		Where(reconciliationsession.StatusEQ(reconciliationsession.StatusCompleted)).
		Order(ent.Desc(reconciliationsession.FieldCompletedAt)).
		Limit(20).
		All(ctx)
	if err != nil {
		return nil
	}
	var rules []matching.LearnedRule
	for _, sess := range sessions {
		rules = append(rules, decodeRules(sess.LearnedRules)...)
	}
	return rules
}

func (r *Reconciliation) activeSession(ctx context.Context, sessionID string) (*ent.ReconciliationSession, error) {
	sess, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != reconciliationsession.StatusActive {
		return nil, fmt.Errorf("session %s is %s: %w", sessionID, sess.Status, services.ErrInvalidTransition)
	}
	return sess, nil
}

// applyMatch reconciles the pair in the ERP.
func (r *Reconciliation) applyMatch(ctx context.Context, bankLineID, entryID int64) error {
	_, err := r.erp.ExecuteMethod(ctx, "account.bank.statement.line", "reconcile",
		[]int64{bankLineID}, entryID)
	if err != nil {
		return fmt.Errorf("reconciling line %d with entry %d: %w", bankLineID, entryID, err)
	}
	return nil
}

func (r *Reconciliation) readPair(ctx context.Context, bankLineID, entryID int64) (matching.BankLine, matching.CandidateEntry, error) {
	lineRec, err := r.erp.Read(ctx, "account.bank.statement.line", bankLineID,
		[]string{"payment_ref", "amount", "partner_name", "date"})
	if err != nil {
		return matching.BankLine{}, matching.CandidateEntry{}, fmt.Errorf("reading bank line %d: %w", bankLineID, err)
	}
	entryRec, err := r.erp.Read(ctx, "account.move.line", entryID,
		[]string{"ref", "amount_residual", "partner_id"})
	if err != nil {
		return matching.BankLine{}, matching.CandidateEntry{}, fmt.Errorf("reading entry %d: %w", entryID, err)
	}

	_, partnerName := erp.Many2One(entryRec["partner_id"])
	line := matching.BankLine{
		ID:      bankLineID,
		Ref:     erp.Str(lineRec["payment_ref"]),
		Amount:  erp.Float(lineRec["amount"]),
		Partner: erp.Str(lineRec["partner_name"]),
		Date:    erp.Str(lineRec["date"]),
	}
	entry := matching.CandidateEntry{
		ID:             entryID,
		Ref:            erp.Str(entryRec["ref"]),
		AmountResidual: erp.Float(entryRec["amount_residual"]),
		Partner:        partnerName,
	}
	return line, entry, nil
}

// openLines reads unreconciled statement lines. journalID 0 means all
// journals.
func (r *Reconciliation) openLines(ctx context.Context, journalID int64, offset, limit int) ([]matching.BankLine, error) {
	domain := unreconciledLinesDomain(journalID)
	records, err := r.erp.SearchRead(ctx, "account.bank.statement.line", domain,
		erp.SearchOptions{
			Fields: []string{"id", "payment_ref", "amount", "partner_name", "date"},
			Limit:  offset + limit,
			Order:  "date asc, id asc",
		})
	if err != nil {
		return nil, fmt.Errorf("reading statement lines: %w", err)
	}
	if offset > 0 {
		if offset >= len(records) {
			return nil, nil
		}
		records = records[offset:]
	}

	lines := make([]matching.BankLine, 0, len(records))
	for _, rec := range records {
		lines = append(lines, matching.BankLine{
			ID:      erp.Int(rec["id"]),
			Ref:     erp.Str(rec["payment_ref"]),
			Amount:  erp.Float(rec["amount"]),
			Partner: erp.Str(rec["partner_name"]),
			Date:    erp.Str(rec["date"]),
		})
	}
	return lines, nil
}

// openEntries reads unreconciled receivable/payable entries as candidates.
// journalID 0 means all journals.
func (r *Reconciliation) openEntries(ctx context.Context, journalID int64) ([]matching.CandidateEntry, error) {
	domain := erp.NewDomain(
		erp.Condition("reconciled", "=", false),
		erp.Condition("account_id.reconcile", "=", true),
		erp.Condition("parent_state", "=", "posted"),
	)
	if journalID > 0 {
		domain = domain.And("journal_id", "=", journalID)
	}
	records, err := r.erp.SearchRead(ctx, "account.move.line", domain,
		erp.SearchOptions{
			Fields: []string{"id", "ref", "amount_residual", "partner_id"},
			Order:  "id asc",
		})
	if err != nil {
		return nil, fmt.Errorf("reading candidate entries: %w", err)
	}

	entries := make([]matching.CandidateEntry, 0, len(records))
	for _, rec := range records {
		_, partnerName := erp.Many2One(rec["partner_id"])
		entries = append(entries, matching.CandidateEntry{
			ID:             erp.Int(rec["id"]),
			Ref:            erp.Str(rec["ref"]),
			AmountResidual: erp.Float(rec["amount_residual"]),
			Partner:        partnerName,
		})
	}
	return entries, nil
}

func unreconciledLinesDomain(journalID int64) erp.Domain {
	domain := erp.NewDomain(erp.Condition("is_reconciled", "=", false))
	if journalID > 0 {
		domain = domain.And("journal_id", "=", journalID)
	}
	return domain
}

// encodeRule / decodeRules bridge matching.LearnedRule and the JSON shape
// stored on the session row.
func encodeRule(r matching.LearnedRule) map[string]interface{} {
	return map[string]interface{}{
		"bank_ref_pattern":      r.BankRefPattern,
		"bank_partner_pattern":  r.BankPartnerPattern,
		"entry_ref_pattern":     r.EntryRefPattern,
		"entry_partner_pattern": r.EntryPartnerPattern,
		"created_at":            r.CreatedAt,
	}
}

func decodeRules(raw []map[string]interface{}) []matching.LearnedRule {
	rules := make([]matching.LearnedRule, 0, len(raw))
	for _, m := range raw {
		rules = append(rules, matching.LearnedRule{
			BankRefPattern:      erp.Str(m["bank_ref_pattern"]),
			BankPartnerPattern:  erp.Str(m["bank_partner_pattern"]),
			EntryRefPattern:     erp.Str(m["entry_ref_pattern"]),
			EntryPartnerPattern: erp.Str(m["entry_partner_pattern"]),
			CreatedAt:           erp.Str(m["created_at"]),
		})
	}
	return rules
}
