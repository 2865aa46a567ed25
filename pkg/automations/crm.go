package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
)

// staleLeadDays is how long a lead may sit without movement before the
// stale-lead scan flags it.
const staleLeadDays = 14

// LeadInput is the subset of lead fields the scorer looks at.
type LeadInput struct {
	HasEmail        bool
	HasPhone        bool
	HasContactName  bool
	ExpectedRevenue float64
	SourceKnown     bool
	Probability     float64
}

// ScoreLead rates a lead 0-100. Contact completeness and deal size carry
// most of the weight; the ERP's own probability contributes the rest.
func ScoreLead(in LeadInput) float64 {
	var score float64
	if in.HasEmail {
		score += 15
	}
	if in.HasPhone {
		score += 10
	}
	if in.HasContactName {
		score += 10
	}
	if in.SourceKnown {
		score += 10
	}
	score += clamp(in.ExpectedRevenue/1000, 0, 40)
	score += clamp(in.Probability, 0, 100) * 0.15
	return clamp(score, 0, 100)
}

// leadPriority maps a score onto the ERP's 0-3 priority scale.
func leadPriority(score float64) string {
	switch {
	case score >= 75:
		return "3"
	case score >= 50:
		return "2"
	case score >= 25:
		return "1"
	default:
		return "0"
	}
}

// CRM scores incoming leads and chases the ones that have gone quiet.
type CRM struct {
	erp erp.Client
}

// NewCRM creates the CRM automation.
func NewCRM(erpClient erp.Client) *CRM {
	if erpClient == nil {
		panic("NewCRM: erp client must not be nil")
	}
	return &CRM{erp: erpClient}
}

// Type implements automation.Automation.
func (c *CRM) Type() string { return "crm" }

// WatchedModels implements automation.Automation.
func (c *CRM) WatchedModels() []string { return []string{"crm.lead"} }

// Handlers implements automation.Automation.
func (c *CRM) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "crm.lead"}: c.onLeadChanged,
		{EventType: "write", Model: "crm.lead"}:  c.onLeadChanged,
	}
}

// Scans implements automation.Automation.
func (c *CRM) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_stale_leads": c.scanStaleLeads,
	}
}

// Execute implements automation.Automation.
func (c *CRM) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "score_lead":
		changes := map[string]interface{}{
			"priority": action.Changes["priority"],
		}
		if err := c.erp.Write(ctx, action.Model, []int64{action.RecordID}, changes); err != nil {
			return nil, fmt.Errorf("updating lead %d priority: %w", action.RecordID, err)
		}
		return map[string]interface{}{"lead_id": action.RecordID, "priority": action.Changes["priority"]}, nil
	case "schedule_followup":
		activityID, err := c.erp.Create(ctx, "mail.activity", map[string]interface{}{
			"res_model":     action.Model,
			"res_id":        action.RecordID,
			"summary":       action.Changes["summary"],
			"date_deadline": action.Changes["date_deadline"],
		})
		if err != nil {
			return nil, fmt.Errorf("scheduling follow-up on lead %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"activity_id": activityID, "lead_id": action.RecordID}, nil
	default:
		return nil, fmt.Errorf("crm: unknown action %q", action.Name)
	}
}

// onLeadChanged rescores the lead from its current field values. Writes
// that touch none of the scoring inputs pass through as notes.
func (c *CRM) onLeadChanged(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	if ev.Type == "write" && !touchesScoringFields(ev.Values) {
		return &automation.Result{
			Success:     true,
			ActionName:  "score_lead",
			Confidence:  0.10,
			Reasoning:   "lead update does not affect scoring inputs",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	// Writes carry only changed fields; read the full record either way so
	// the score always reflects current state.
	records, err := c.erp.SearchRead(ctx, "crm.lead",
		erp.NewDomain(erp.Condition("id", "=", ev.RecordID)),
		erp.SearchOptions{Fields: []string{
			"id", "email_from", "phone", "contact_name", "partner_name",
			"expected_revenue", "source_id", "probability",
		}})
	if err != nil {
		return nil, fmt.Errorf("reading lead %d: %w", ev.RecordID, err)
	}
	if len(records) == 0 {
		return &automation.Result{
			Success:     true,
			ActionName:  "score_lead",
			Confidence:  0.10,
			Reasoning:   fmt.Sprintf("lead %d no longer exists", ev.RecordID),
			ChangesMade: map[string]interface{}{},
		}, nil
	}
	lead := records[0]

	sourceID, _ := erp.Many2One(lead["source_id"])
	score := ScoreLead(LeadInput{
		HasEmail:        erp.Str(lead["email_from"]) != "",
		HasPhone:        erp.Str(lead["phone"]) != "",
		HasContactName:  erp.Str(lead["contact_name"]) != "" || erp.Str(lead["partner_name"]) != "",
		ExpectedRevenue: erp.Float(lead["expected_revenue"]),
		SourceKnown:     sourceID != 0,
		Probability:     erp.Float(lead["probability"]),
	})

	return &automation.Result{
		Success:    true,
		ActionName: "score_lead",
		Model:      "crm.lead",
		RecordID:   ev.RecordID,
		Confidence: 0.93,
		Reasoning:  fmt.Sprintf("lead %d scored %.0f from contact completeness, revenue and probability", ev.RecordID, score),
		ChangesMade: map[string]interface{}{
			"lead_score": score,
			"priority":   leadPriority(score),
		},
	}, nil
}

// scanStaleLeads proposes follow-up activities for open leads that have
// not moved in staleLeadDays.
func (c *CRM) scanStaleLeads(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	cutoff := day.AddDate(0, 0, -staleLeadDays)

	stale, err := c.erp.SearchRead(ctx, "crm.lead",
		erp.NewDomain(
			erp.Condition("active", "=", true),
			erp.Condition("probability", ">", 0),
			erp.Condition("probability", "<", 100),
			erp.Condition("write_date", "<", cutoff.Format("2006-01-02 15:04:05")),
		),
		erp.SearchOptions{Fields: []string{"id", "name", "write_date", "expected_revenue"}})
	if err != nil {
		return nil, fmt.Errorf("finding stale leads: %w", err)
	}

	results := make([]*automation.Result, 0, len(stale))
	for _, lead := range stale {
		id := erp.Int(lead["id"])
		daysStale := staleLeadDays
		if lastWrite, ok := parseERPDate(erp.Str(lead["write_date"])); ok {
			daysStale = int(day.Sub(lastWrite).Hours() / 24)
		}

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "schedule_followup",
			Model:      "crm.lead",
			RecordID:   id,
			Confidence: 0.88,
			Reasoning: fmt.Sprintf("lead %d (%s) untouched for %d days with %.2f expected revenue",
				id, erp.Str(lead["name"]), daysStale, erp.Float(lead["expected_revenue"])),
			ChangesMade: map[string]interface{}{
				"summary":       fmt.Sprintf("Follow up: no activity for %d days", daysStale),
				"date_deadline": day.AddDate(0, 0, 2).Format("2006-01-02"),
			},
		})
	}
	return results, nil
}

// touchesScoringFields reports whether a write payload includes any field
// the lead score depends on.
func touchesScoringFields(values map[string]interface{}) bool {
	for _, f := range []string{
		"email_from", "phone", "contact_name", "partner_name",
		"expected_revenue", "source_id", "probability", "stage_id",
	} {
		if _, ok := values[f]; ok {
			return true
		}
	}
	return false
}
