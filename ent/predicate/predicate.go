// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentDecision is the predicate function for agentdecision builders.
type AgentDecision func(*sql.Selector)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AgentStep is the predicate function for agentstep builders.
type AgentStep func(*sql.Selector)

// AgentSuspension is the predicate function for agentsuspension builders.
type AgentSuspension func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// AutomationRule is the predicate function for automationrule builders.
type AutomationRule func(*sql.Selector)

// CashForecast is the predicate function for cashforecast builders.
type CashForecast func(*sql.Selector)

// ClosingStep is the predicate function for closingstep builders.
type ClosingStep func(*sql.Selector)

// CreditScore is the predicate function for creditscore builders.
type CreditScore func(*sql.Selector)

// DailyDigest is the predicate function for dailydigest builders.
type DailyDigest func(*sql.Selector)

// DedupScan is the predicate function for dedupscan builders.
type DedupScan func(*sql.Selector)

// DisruptionPrediction is the predicate function for disruptionprediction builders.
type DisruptionPrediction func(*sql.Selector)

// DocumentJob is the predicate function for documentjob builders.
type DocumentJob func(*sql.Selector)

// DuplicateGroup is the predicate function for duplicategroup builders.
type DuplicateGroup func(*sql.Selector)

// ExtractionCorrection is the predicate function for extractioncorrection builders.
type ExtractionCorrection func(*sql.Selector)

// ForecastAccuracyLog is the predicate function for forecastaccuracylog builders.
type ForecastAccuracyLog func(*sql.Selector)

// ForecastScenario is the predicate function for forecastscenario builders.
type ForecastScenario func(*sql.Selector)

// MonthEndClosing is the predicate function for monthendclosing builders.
type MonthEndClosing func(*sql.Selector)

// ReconciliationSession is the predicate function for reconciliationsession builders.
type ReconciliationSession func(*sql.Selector)

// ReportJob is the predicate function for reportjob builders.
type ReportJob func(*sql.Selector)

// SupplierRiskFactor is the predicate function for supplierriskfactor builders.
type SupplierRiskFactor func(*sql.Selector)

// SupplierRiskScore is the predicate function for supplierriskscore builders.
type SupplierRiskScore func(*sql.Selector)

// SupplyChainAlert is the predicate function for supplychainalert builders.
type SupplyChainAlert func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
