package automations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/ent/dailydigest"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/pkg/period"
)

// composeDigestTool is the structured output contract for digest writing.
var composeDigestTool = llm.ToolDefinition{
	Name:        "compose_digest",
	Description: "Compose a role-targeted daily digest from business metrics",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"headline": map[string]interface{}{"type": "string"},
			"sections": map[string]interface{}{"type": "array"},
		},
		"required": []interface{}{"headline", "sections"},
	},
}

// digestRoles are the roles a daily digest is produced for.
var digestRoles = []dailydigest.UserRole{
	dailydigest.UserRoleCfo,
	dailydigest.UserRoleAccountant,
	dailydigest.UserRoleSalesManager,
	dailydigest.UserRoleOperations,
}

// Digest produces one daily briefing per configured role from audit
// activity and ERP aggregates, and delivers it to the notification channel.
type Digest struct {
	client   *ent.Client
	erp      erp.Client
	llm      llm.Client
	notifier *notify.Service
}

// NewDigest creates the digest automation. notifier may be a
// channel-disabled service.
func NewDigest(client *ent.Client, erpClient erp.Client, llmClient llm.Client, notifier *notify.Service) *Digest {
	if client == nil {
		panic("NewDigest: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewDigest: erp client must not be nil")
	}
	if llmClient == nil {
		panic("NewDigest: llm client must not be nil")
	}
	return &Digest{client: client, erp: erpClient, llm: llmClient, notifier: notifier}
}

// Type implements automation.Automation.
func (d *Digest) Type() string { return "digest" }

// WatchedModels implements automation.Automation. Digests are purely
// scheduled; no events are watched.
func (d *Digest) WatchedModels() []string { return nil }

// Handlers implements automation.Automation.
func (d *Digest) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{}
}

// Scans implements automation.Automation.
func (d *Digest) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_daily_digest": d.scanDailyDigest,
	}
}

// Execute implements automation.Automation. Digest generation has no ERP
// side effect to replay.
func (d *Digest) Execute(_ context.Context, action automation.Action) (map[string]interface{}, error) {
	return nil, fmt.Errorf("digest: unknown action %q", action.Name)
}

// Generate produces (or returns the already-generated) digest for one role
// and day, then attempts delivery. The (day, role) pair is unique; calling
// twice the same day is a no-op returning the existing row.
func (d *Digest) Generate(ctx context.Context, role dailydigest.UserRole, day time.Time) (*ent.DailyDigest, error) {
	bucket := period.DayBucket(day)

	existing, err := d.client.DailyDigest.Query().
		Where(
			dailydigest.DigestDate(bucket),
			dailydigest.UserRoleEQ(role),
		).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	metrics, err := d.collectMetrics(ctx, role, bucket)
	if err != nil {
		return nil, err
	}
	payload, _ := json.Marshal(metrics)

	completion, err := d.llm.Complete(ctx, llm.Request{
		System: fmt.Sprintf("Write a concise daily digest for the %s role using the compose_digest tool.", role),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(payload)},
		},
		Tools: []llm.ToolDefinition{composeDigestTool},
	})
	if err != nil {
		return nil, fmt.Errorf("composing %s digest: %w", role, err)
	}
	call, err := firstToolCall(completion, composeDigestTool)
	if err != nil {
		return nil, err
	}

	headline := erp.Str(call.Input["headline"])
	sections := decodeSections(call.Input["sections"])

	digest, err := d.client.DailyDigest.Create().
		SetID(uuid.NewString()).
		SetDigestDate(bucket).
		SetUserRole(role).
		SetHeadline(headline).
		SetSections(sections).
		SetTokensUsed(completion.TokensIn + completion.TokensOut).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	return d.deliver(ctx, digest)
}

// deliver sends the digest and records the delivery outcome.
func (d *Digest) deliver(ctx context.Context, digest *ent.DailyDigest) (*ent.DailyDigest, error) {
	outcome := d.notifier.Send(ctx, notify.Message{
		Title: fmt.Sprintf("Daily digest (%s)", digest.UserRole),
		Text:  digest.Headline,
		Fields: map[string]string{
			"date":     digest.DigestDate.Format("2006-01-02"),
			"sections": fmt.Sprintf("%d", len(digest.Sections)),
		},
	})

	update := digest.Update()
	switch outcome.Status {
	case notify.StatusDelivered:
		update.SetDeliveryStatus(dailydigest.DeliveryStatusDelivered).SetDeliveredAt(time.Now())
	case notify.StatusChannelDisabled:
		update.SetDeliveryStatus(dailydigest.DeliveryStatusChannelDisabled)
	default:
		update.SetDeliveryStatus(dailydigest.DeliveryStatusFailed)
	}
	return update.Save(ctx)
}

func (d *Digest) scanDailyDigest(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	var results []*automation.Result
	for _, role := range digestRoles {
		digest, err := d.Generate(ctx, role, day)
		if err != nil {
			results = append(results, automation.Failed("generate_digest", "", 0, err))
			continue
		}
		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "generate_digest",
			Confidence: 0.40,
			Reasoning: fmt.Sprintf("%s digest for %s: %s (delivery %s)",
				role, digest.DigestDate.Format("2006-01-02"), digest.Headline, digest.DeliveryStatus),
			ChangesMade: map[string]interface{}{},
			TokensUsed:  digest.TokensUsed,
		})
	}
	return results, nil
}

// collectMetrics gathers the raw numbers a digest is written from. The mix
// varies by role.
func (d *Digest) collectMetrics(ctx context.Context, role dailydigest.UserRole, day time.Time) (map[string]interface{}, error) {
	since := day.AddDate(0, 0, -1)

	decided, err := d.client.AuditLog.Query().
		Where(auditlog.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := d.client.AuditLog.Query().
		Where(auditlog.StatusEQ(auditlog.StatusPending)).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	metrics := map[string]interface{}{
		"role":              string(role),
		"date":              day.Format("2006-01-02"),
		"decisions_24h":     decided,
		"approvals_pending": pending,
	}

	switch role {
	case dailydigest.UserRoleCfo, dailydigest.UserRoleAccountant:
		overdue, err := d.erp.SearchCount(ctx, "account.move",
			erp.NewDomain(
				erp.Condition("move_type", "=", "out_invoice"),
				erp.Condition("state", "=", "posted"),
				erp.Condition("amount_residual", ">", 0),
				erp.Condition("invoice_date_due", "<", day.Format("2006-01-02")),
			))
		if err != nil {
			return nil, fmt.Errorf("counting overdue invoices: %w", err)
		}
		metrics["overdue_invoices"] = overdue
	case dailydigest.UserRoleSalesManager:
		openOrders, err := d.erp.SearchCount(ctx, "sale.order",
			erp.NewDomain(erp.Condition("state", "in", []any{"draft", "sent"})))
		if err != nil {
			return nil, fmt.Errorf("counting open orders: %w", err)
		}
		metrics["open_orders"] = openOrders
	case dailydigest.UserRoleOperations:
		openPOs, err := d.erp.SearchCount(ctx, "purchase.order",
			erp.NewDomain(erp.Condition("state", "=", "purchase")))
		if err != nil {
			return nil, fmt.Errorf("counting open purchase orders: %w", err)
		}
		metrics["open_purchase_orders"] = openPOs
	}
	return metrics, nil
}

// decodeSections coerces the model's sections array into the stored shape.
func decodeSections(raw interface{}) []map[string]interface{} {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	sections := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			sections = append(sections, m)
		}
	}
	return sections
}
