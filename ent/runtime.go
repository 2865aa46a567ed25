// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/ent/agentsuspension"
	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/ent/automationrule"
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/ent/dailydigest"
	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/disruptionprediction"
	"github.com/steward-ai/steward/ent/documentjob"
	"github.com/steward-ai/steward/ent/extractioncorrection"
	"github.com/steward-ai/steward/ent/forecastaccuracylog"
	"github.com/steward-ai/steward/ent/monthendclosing"
	"github.com/steward-ai/steward/ent/reconciliationsession"
	"github.com/steward-ai/steward/ent/reportjob"
	"github.com/steward-ai/steward/ent/schema"
	"github.com/steward-ai/steward/ent/supplierriskscore"
	"github.com/steward-ai/steward/ent/supplychainalert"
	"github.com/steward-ai/steward/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentdecisionFields := schema.AgentDecision{}.Fields()
	_ = agentdecisionFields
	// agentdecisionDescConfidence is the schema descriptor for confidence field.
	agentdecisionDescConfidence := agentdecisionFields[5].Descriptor()
	// agentdecision.DefaultConfidence holds the default value on creation for the confidence field.
	agentdecision.DefaultConfidence = agentdecisionDescConfidence.Default.(float64)
	// agentdecisionDescTokensIn is the schema descriptor for tokens_in field.
	agentdecisionDescTokensIn := agentdecisionFields[6].Descriptor()
	// agentdecision.DefaultTokensIn holds the default value on creation for the tokens_in field.
	agentdecision.DefaultTokensIn = agentdecisionDescTokensIn.Default.(int)
	// agentdecisionDescTokensOut is the schema descriptor for tokens_out field.
	agentdecisionDescTokensOut := agentdecisionFields[7].Descriptor()
	// agentdecision.DefaultTokensOut holds the default value on creation for the tokens_out field.
	agentdecision.DefaultTokensOut = agentdecisionDescTokensOut.Default.(int)
	// agentdecisionDescCreatedAt is the schema descriptor for created_at field.
	agentdecisionDescCreatedAt := agentdecisionFields[9].Descriptor()
	// agentdecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentdecision.DefaultCreatedAt = agentdecisionDescCreatedAt.Default.(func() time.Time)
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[5].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	// agentrunDescTotalSteps is the schema descriptor for total_steps field.
	agentrunDescTotalSteps := agentrunFields[8].Descriptor()
	// agentrun.DefaultTotalSteps holds the default value on creation for the total_steps field.
	agentrun.DefaultTotalSteps = agentrunDescTotalSteps.Default.(int)
	// agentrunDescTokenUsage is the schema descriptor for token_usage field.
	agentrunDescTokenUsage := agentrunFields[9].Descriptor()
	// agentrun.DefaultTokenUsage holds the default value on creation for the token_usage field.
	agentrun.DefaultTokenUsage = agentrunDescTokenUsage.Default.(int)
	agentstepFields := schema.AgentStep{}.Fields()
	_ = agentstepFields
	// agentstepDescDurationMs is the schema descriptor for duration_ms field.
	agentstepDescDurationMs := agentstepFields[6].Descriptor()
	// agentstep.DefaultDurationMs holds the default value on creation for the duration_ms field.
	agentstep.DefaultDurationMs = agentstepDescDurationMs.Default.(int)
	// agentstepDescTokens is the schema descriptor for tokens field.
	agentstepDescTokens := agentstepFields[8].Descriptor()
	// agentstep.DefaultTokens holds the default value on creation for the tokens field.
	agentstep.DefaultTokens = agentstepDescTokens.Default.(int)
	// agentstepDescCreatedAt is the schema descriptor for created_at field.
	agentstepDescCreatedAt := agentstepFields[9].Descriptor()
	// agentstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentstep.DefaultCreatedAt = agentstepDescCreatedAt.Default.(func() time.Time)
	agentsuspensionFields := schema.AgentSuspension{}.Fields()
	_ = agentsuspensionFields
	// agentsuspensionDescSuspendedAt is the schema descriptor for suspended_at field.
	agentsuspensionDescSuspendedAt := agentsuspensionFields[6].Descriptor()
	// agentsuspension.DefaultSuspendedAt holds the default value on creation for the suspended_at field.
	agentsuspension.DefaultSuspendedAt = agentsuspensionDescSuspendedAt.Default.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[1].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescConfidence is the schema descriptor for confidence field.
	auditlogDescConfidence := auditlogFields[7].Descriptor()
	// auditlog.DefaultConfidence holds the default value on creation for the confidence field.
	auditlog.DefaultConfidence = auditlogDescConfidence.Default.(float64)
	// auditlogDescTokensUsed is the schema descriptor for tokens_used field.
	auditlogDescTokensUsed := auditlogFields[15].Descriptor()
	// auditlog.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	auditlog.DefaultTokensUsed = auditlogDescTokensUsed.Default.(int)
	automationruleFields := schema.AutomationRule{}.Fields()
	_ = automationruleFields
	// automationruleDescActionName is the schema descriptor for action_name field.
	automationruleDescActionName := automationruleFields[2].Descriptor()
	// automationrule.DefaultActionName holds the default value on creation for the action_name field.
	automationrule.DefaultActionName = automationruleDescActionName.Default.(string)
	// automationruleDescEnabled is the schema descriptor for enabled field.
	automationruleDescEnabled := automationruleFields[3].Descriptor()
	// automationrule.DefaultEnabled holds the default value on creation for the enabled field.
	automationrule.DefaultEnabled = automationruleDescEnabled.Default.(bool)
	// automationruleDescConfidenceThreshold is the schema descriptor for confidence_threshold field.
	automationruleDescConfidenceThreshold := automationruleFields[4].Descriptor()
	// automationrule.DefaultConfidenceThreshold holds the default value on creation for the confidence_threshold field.
	automationrule.DefaultConfidenceThreshold = automationruleDescConfidenceThreshold.Default.(float64)
	// automationruleDescAutoApproveThreshold is the schema descriptor for auto_approve_threshold field.
	automationruleDescAutoApproveThreshold := automationruleFields[5].Descriptor()
	// automationrule.DefaultAutoApproveThreshold holds the default value on creation for the auto_approve_threshold field.
	automationrule.DefaultAutoApproveThreshold = automationruleDescAutoApproveThreshold.Default.(float64)
	// automationruleDescCreatedAt is the schema descriptor for created_at field.
	automationruleDescCreatedAt := automationruleFields[7].Descriptor()
	// automationrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	automationrule.DefaultCreatedAt = automationruleDescCreatedAt.Default.(func() time.Time)
	// automationruleDescUpdatedAt is the schema descriptor for updated_at field.
	automationruleDescUpdatedAt := automationruleFields[8].Descriptor()
	// automationrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	automationrule.DefaultUpdatedAt = automationruleDescUpdatedAt.Default.(func() time.Time)
	// automationrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	automationrule.UpdateDefaultUpdatedAt = automationruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	cashforecastFields := schema.CashForecast{}.Fields()
	_ = cashforecastFields
	// cashforecastDescCreatedAt is the schema descriptor for created_at field.
	cashforecastDescCreatedAt := cashforecastFields[9].Descriptor()
	// cashforecast.DefaultCreatedAt holds the default value on creation for the created_at field.
	cashforecast.DefaultCreatedAt = cashforecastDescCreatedAt.Default.(func() time.Time)
	closingstepFields := schema.ClosingStep{}.Fields()
	_ = closingstepFields
	creditscoreFields := schema.CreditScore{}.Fields()
	_ = creditscoreFields
	// creditscoreDescCreditLimit is the schema descriptor for credit_limit field.
	creditscoreDescCreditLimit := creditscoreFields[4].Descriptor()
	// creditscore.DefaultCreditLimit holds the default value on creation for the credit_limit field.
	creditscore.DefaultCreditLimit = creditscoreDescCreditLimit.Default.(float64)
	// creditscoreDescOutstandingBalance is the schema descriptor for outstanding_balance field.
	creditscoreDescOutstandingBalance := creditscoreFields[5].Descriptor()
	// creditscore.DefaultOutstandingBalance holds the default value on creation for the outstanding_balance field.
	creditscore.DefaultOutstandingBalance = creditscoreDescOutstandingBalance.Default.(float64)
	// creditscoreDescHoldActive is the schema descriptor for hold_active field.
	creditscoreDescHoldActive := creditscoreFields[6].Descriptor()
	// creditscore.DefaultHoldActive holds the default value on creation for the hold_active field.
	creditscore.DefaultHoldActive = creditscoreDescHoldActive.Default.(bool)
	// creditscoreDescCalculatedAt is the schema descriptor for calculated_at field.
	creditscoreDescCalculatedAt := creditscoreFields[9].Descriptor()
	// creditscore.DefaultCalculatedAt holds the default value on creation for the calculated_at field.
	creditscore.DefaultCalculatedAt = creditscoreDescCalculatedAt.Default.(func() time.Time)
	// creditscoreDescUpdatedAt is the schema descriptor for updated_at field.
	creditscoreDescUpdatedAt := creditscoreFields[10].Descriptor()
	// creditscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditscore.DefaultUpdatedAt = creditscoreDescUpdatedAt.Default.(func() time.Time)
	// creditscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditscore.UpdateDefaultUpdatedAt = creditscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	dailydigestFields := schema.DailyDigest{}.Fields()
	_ = dailydigestFields
	// dailydigestDescTokensUsed is the schema descriptor for tokens_used field.
	dailydigestDescTokensUsed := dailydigestFields[6].Descriptor()
	// dailydigest.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	dailydigest.DefaultTokensUsed = dailydigestDescTokensUsed.Default.(int)
	// dailydigestDescCreatedAt is the schema descriptor for created_at field.
	dailydigestDescCreatedAt := dailydigestFields[7].Descriptor()
	// dailydigest.DefaultCreatedAt holds the default value on creation for the created_at field.
	dailydigest.DefaultCreatedAt = dailydigestDescCreatedAt.Default.(func() time.Time)
	dedupscanFields := schema.DedupScan{}.Fields()
	_ = dedupscanFields
	// dedupscanDescRecordsScanned is the schema descriptor for records_scanned field.
	dedupscanDescRecordsScanned := dedupscanFields[3].Descriptor()
	// dedupscan.DefaultRecordsScanned holds the default value on creation for the records_scanned field.
	dedupscan.DefaultRecordsScanned = dedupscanDescRecordsScanned.Default.(int)
	// dedupscanDescGroupsFound is the schema descriptor for groups_found field.
	dedupscanDescGroupsFound := dedupscanFields[4].Descriptor()
	// dedupscan.DefaultGroupsFound holds the default value on creation for the groups_found field.
	dedupscan.DefaultGroupsFound = dedupscanDescGroupsFound.Default.(int)
	// dedupscanDescCreatedAt is the schema descriptor for created_at field.
	dedupscanDescCreatedAt := dedupscanFields[5].Descriptor()
	// dedupscan.DefaultCreatedAt holds the default value on creation for the created_at field.
	dedupscan.DefaultCreatedAt = dedupscanDescCreatedAt.Default.(func() time.Time)
	disruptionpredictionFields := schema.DisruptionPrediction{}.Fields()
	_ = disruptionpredictionFields
	// disruptionpredictionDescCreatedAt is the schema descriptor for created_at field.
	disruptionpredictionDescCreatedAt := disruptionpredictionFields[9].Descriptor()
	// disruptionprediction.DefaultCreatedAt holds the default value on creation for the created_at field.
	disruptionprediction.DefaultCreatedAt = disruptionpredictionDescCreatedAt.Default.(func() time.Time)
	documentjobFields := schema.DocumentJob{}.Fields()
	_ = documentjobFields
	// documentjobDescCreatedAt is the schema descriptor for created_at field.
	documentjobDescCreatedAt := documentjobFields[8].Descriptor()
	// documentjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentjob.DefaultCreatedAt = documentjobDescCreatedAt.Default.(func() time.Time)
	// documentjobDescUpdatedAt is the schema descriptor for updated_at field.
	documentjobDescUpdatedAt := documentjobFields[9].Descriptor()
	// documentjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documentjob.DefaultUpdatedAt = documentjobDescUpdatedAt.Default.(func() time.Time)
	// documentjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documentjob.UpdateDefaultUpdatedAt = documentjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	duplicategroupFields := schema.DuplicateGroup{}.Fields()
	_ = duplicategroupFields
	extractioncorrectionFields := schema.ExtractionCorrection{}.Fields()
	_ = extractioncorrectionFields
	// extractioncorrectionDescCreatedAt is the schema descriptor for created_at field.
	extractioncorrectionDescCreatedAt := extractioncorrectionFields[6].Descriptor()
	// extractioncorrection.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractioncorrection.DefaultCreatedAt = extractioncorrectionDescCreatedAt.Default.(func() time.Time)
	forecastaccuracylogFields := schema.ForecastAccuracyLog{}.Fields()
	_ = forecastaccuracylogFields
	// forecastaccuracylogDescEvaluatedAt is the schema descriptor for evaluated_at field.
	forecastaccuracylogDescEvaluatedAt := forecastaccuracylogFields[6].Descriptor()
	// forecastaccuracylog.DefaultEvaluatedAt holds the default value on creation for the evaluated_at field.
	forecastaccuracylog.DefaultEvaluatedAt = forecastaccuracylogDescEvaluatedAt.Default.(func() time.Time)
	monthendclosingFields := schema.MonthEndClosing{}.Fields()
	_ = monthendclosingFields
	// monthendclosingDescReadinessScore is the schema descriptor for readiness_score field.
	monthendclosingDescReadinessScore := monthendclosingFields[3].Descriptor()
	// monthendclosing.DefaultReadinessScore holds the default value on creation for the readiness_score field.
	monthendclosing.DefaultReadinessScore = monthendclosingDescReadinessScore.Default.(float64)
	// monthendclosingDescStartedAt is the schema descriptor for started_at field.
	monthendclosingDescStartedAt := monthendclosingFields[5].Descriptor()
	// monthendclosing.DefaultStartedAt holds the default value on creation for the started_at field.
	monthendclosing.DefaultStartedAt = monthendclosingDescStartedAt.Default.(func() time.Time)
	reconciliationsessionFields := schema.ReconciliationSession{}.Fields()
	_ = reconciliationsessionFields
	// reconciliationsessionDescTotalLines is the schema descriptor for total_lines field.
	reconciliationsessionDescTotalLines := reconciliationsessionFields[4].Descriptor()
	// reconciliationsession.DefaultTotalLines holds the default value on creation for the total_lines field.
	reconciliationsession.DefaultTotalLines = reconciliationsessionDescTotalLines.Default.(int)
	// reconciliationsessionDescAutoMatched is the schema descriptor for auto_matched field.
	reconciliationsessionDescAutoMatched := reconciliationsessionFields[5].Descriptor()
	// reconciliationsession.DefaultAutoMatched holds the default value on creation for the auto_matched field.
	reconciliationsession.DefaultAutoMatched = reconciliationsessionDescAutoMatched.Default.(int)
	// reconciliationsessionDescManuallyMatched is the schema descriptor for manually_matched field.
	reconciliationsessionDescManuallyMatched := reconciliationsessionFields[6].Descriptor()
	// reconciliationsession.DefaultManuallyMatched holds the default value on creation for the manually_matched field.
	reconciliationsession.DefaultManuallyMatched = reconciliationsessionDescManuallyMatched.Default.(int)
	// reconciliationsessionDescSkipped is the schema descriptor for skipped field.
	reconciliationsessionDescSkipped := reconciliationsessionFields[7].Descriptor()
	// reconciliationsession.DefaultSkipped holds the default value on creation for the skipped field.
	reconciliationsession.DefaultSkipped = reconciliationsessionDescSkipped.Default.(int)
	// reconciliationsessionDescRemaining is the schema descriptor for remaining field.
	reconciliationsessionDescRemaining := reconciliationsessionFields[8].Descriptor()
	// reconciliationsession.DefaultRemaining holds the default value on creation for the remaining field.
	reconciliationsession.DefaultRemaining = reconciliationsessionDescRemaining.Default.(int)
	// reconciliationsessionDescCreatedAt is the schema descriptor for created_at field.
	reconciliationsessionDescCreatedAt := reconciliationsessionFields[10].Descriptor()
	// reconciliationsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	reconciliationsession.DefaultCreatedAt = reconciliationsessionDescCreatedAt.Default.(func() time.Time)
	// reconciliationsessionDescUpdatedAt is the schema descriptor for updated_at field.
	reconciliationsessionDescUpdatedAt := reconciliationsessionFields[11].Descriptor()
	// reconciliationsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reconciliationsession.DefaultUpdatedAt = reconciliationsessionDescUpdatedAt.Default.(func() time.Time)
	// reconciliationsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reconciliationsession.UpdateDefaultUpdatedAt = reconciliationsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	reportjobFields := schema.ReportJob{}.Fields()
	_ = reportjobFields
	// reportjobDescTokensUsed is the schema descriptor for tokens_used field.
	reportjobDescTokensUsed := reportjobFields[7].Descriptor()
	// reportjob.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	reportjob.DefaultTokensUsed = reportjobDescTokensUsed.Default.(int)
	// reportjobDescCreatedAt is the schema descriptor for created_at field.
	reportjobDescCreatedAt := reportjobFields[9].Descriptor()
	// reportjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportjob.DefaultCreatedAt = reportjobDescCreatedAt.Default.(func() time.Time)
	supplierriskscoreFields := schema.SupplierRiskScore{}.Fields()
	_ = supplierriskscoreFields
	// supplierriskscoreDescCalculatedAt is the schema descriptor for calculated_at field.
	supplierriskscoreDescCalculatedAt := supplierriskscoreFields[4].Descriptor()
	// supplierriskscore.DefaultCalculatedAt holds the default value on creation for the calculated_at field.
	supplierriskscore.DefaultCalculatedAt = supplierriskscoreDescCalculatedAt.Default.(func() time.Time)
	// supplierriskscoreDescUpdatedAt is the schema descriptor for updated_at field.
	supplierriskscoreDescUpdatedAt := supplierriskscoreFields[5].Descriptor()
	// supplierriskscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplierriskscore.DefaultUpdatedAt = supplierriskscoreDescUpdatedAt.Default.(func() time.Time)
	// supplierriskscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplierriskscore.UpdateDefaultUpdatedAt = supplierriskscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	supplychainalertFields := schema.SupplyChainAlert{}.Fields()
	_ = supplychainalertFields
	// supplychainalertDescAcknowledged is the schema descriptor for acknowledged field.
	supplychainalertDescAcknowledged := supplychainalertFields[6].Descriptor()
	// supplychainalert.DefaultAcknowledged holds the default value on creation for the acknowledged field.
	supplychainalert.DefaultAcknowledged = supplychainalertDescAcknowledged.Default.(bool)
	// supplychainalertDescCreatedAt is the schema descriptor for created_at field.
	supplychainalertDescCreatedAt := supplychainalertFields[8].Descriptor()
	// supplychainalert.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplychainalert.DefaultCreatedAt = supplychainalertDescCreatedAt.Default.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[6].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
	// webhookeventDescProcessed is the schema descriptor for processed field.
	webhookeventDescProcessed := webhookeventFields[7].Descriptor()
	// webhookevent.DefaultProcessed holds the default value on creation for the processed field.
	webhookevent.DefaultProcessed = webhookeventDescProcessed.Default.(bool)
}
