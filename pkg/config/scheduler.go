package config

// SchedulerConfig holds cron expressions for the periodic jobs. Standard
// five-field cron syntax, evaluated in the server's local time zone.
type SchedulerConfig struct {
	// OverdueScan drives the overdue-invoice collection scan.
	OverdueScan string `yaml:"overdue_scan"`

	// DigestGeneration produces the per-role daily digests.
	DigestGeneration string `yaml:"digest_generation"`

	// CreditRecalc recalculates credit scores for active customers.
	CreditRecalc string `yaml:"credit_recalc"`

	// SupplierRiskRescore recalculates supplier risk scores.
	SupplierRiskRescore string `yaml:"supplier_risk_rescore"`

	// CashForecast refreshes the rolling cash projection.
	CashForecast string `yaml:"cash_forecast"`

	// SuspensionSweep fails suspended runs whose timeout has passed.
	SuspensionSweep string `yaml:"suspension_sweep"`
}

// DefaultSchedulerConfig returns the built-in schedule.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		OverdueScan:         "0 6 * * *",
		DigestGeneration:    "0 7 * * *",
		CreditRecalc:        "30 5 * * *",
		SupplierRiskRescore: "0 5 * * 1",
		CashForecast:        "15 6 * * *",
		SuspensionSweep:     "*/15 * * * *",
	}
}
