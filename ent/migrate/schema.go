// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentDecisionsColumns holds the columns for the "agent_decisions" table.
	AgentDecisionsColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "prompt_fingerprint", Type: field.TypeString},
		{Name: "response_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt, Default: 0},
		{Name: "tools_invoked", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "step_id", Type: field.TypeString},
	}
	// AgentDecisionsTable holds the schema information for the "agent_decisions" table.
	AgentDecisionsTable = &schema.Table{
		Name:       "agent_decisions",
		Columns:    AgentDecisionsColumns,
		PrimaryKey: []*schema.Column{AgentDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_decisions_agent_steps_decisions",
				Columns:    []*schema.Column{AgentDecisionsColumns[9]},
				RefColumns: []*schema.Column{AgentStepsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentdecision_step_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentDecisionsColumns[9], AgentDecisionsColumns[8]},
			},
			{
				Name:    "agentdecision_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentDecisionsColumns[1]},
			},
		},
	}
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "trigger_type", Type: field.TypeString},
		{Name: "trigger_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "suspended", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_steps", Type: field.TypeInt, Default: 0},
		{Name: "token_usage", Type: field.TypeInt, Default: 0},
		{Name: "initial_state", Type: field.TypeJSON, Nullable: true},
		{Name: "final_state", Type: field.TypeJSON, Nullable: true},
		{Name: "current_step", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_agent_type",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1]},
			},
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4]},
			},
			{
				Name:    "agentrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[6]},
			},
			{
				Name:    "agentrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4], AgentRunsColumns[5]},
			},
			{
				Name:    "agentrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[4], AgentRunsColumns[15]},
			},
		},
	}
	// AgentStepsColumns holds the columns for the "agent_steps" table.
	AgentStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "input_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "output_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentStepsTable holds the schema information for the "agent_steps" table.
	AgentStepsTable = &schema.Table{
		Name:       "agent_steps",
		Columns:    AgentStepsColumns,
		PrimaryKey: []*schema.Column{AgentStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_steps_agent_runs_steps",
				Columns:    []*schema.Column{AgentStepsColumns[9]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstep_run_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{AgentStepsColumns[9], AgentStepsColumns[2]},
			},
			{
				Name:    "agentstep_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentStepsColumns[9]},
			},
			{
				Name:    "agentstep_status",
				Unique:  false,
				Columns: []*schema.Column{AgentStepsColumns[6]},
			},
		},
	}
	// AgentSuspensionsColumns holds the columns for the "agent_suspensions" table.
	AgentSuspensionsColumns = []*schema.Column{
		{Name: "suspension_id", Type: field.TypeString, Unique: true},
		{Name: "resume_condition", Type: field.TypeString},
		{Name: "suspended_at_step", Type: field.TypeString},
		{Name: "timeout_at", Type: field.TypeTime},
		{Name: "resume_data", Type: field.TypeJSON, Nullable: true},
		{Name: "suspended_at", Type: field.TypeTime},
		{Name: "resumed_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// AgentSuspensionsTable holds the schema information for the "agent_suspensions" table.
	AgentSuspensionsTable = &schema.Table{
		Name:       "agent_suspensions",
		Columns:    AgentSuspensionsColumns,
		PrimaryKey: []*schema.Column{AgentSuspensionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_suspensions_agent_runs_suspensions",
				Columns:    []*schema.Column{AgentSuspensionsColumns[7]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsuspension_run_id",
				Unique:  false,
				Columns: []*schema.Column{AgentSuspensionsColumns[7]},
			},
			{
				Name:    "agentsuspension_timeout_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSuspensionsColumns[3]},
			},
			{
				Name:    "agentsuspension_resumed_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSuspensionsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "resumed_at IS NULL",
				},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "audit_log_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "automation_type", Type: field.TypeString},
		{Name: "action_name", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "record_id", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "executed", "rejected", "failed"}, Default: "pending"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "output_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "changes_made", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "scan_day", Type: field.TypeTime, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_status",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
			{
				Name:    "auditlog_automation_type_action_name",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[3]},
			},
			{
				Name:    "auditlog_model_record_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4], AuditLogsColumns[5]},
			},
		},
	}
	// AutomationRulesColumns holds the columns for the "automation_rules" table.
	AutomationRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "automation_type", Type: field.TypeString},
		{Name: "action_name", Type: field.TypeString, Default: ""},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "confidence_threshold", Type: field.TypeFloat64, Default: 0.85},
		{Name: "auto_approve_threshold", Type: field.TypeFloat64, Default: 0.95},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AutomationRulesTable holds the schema information for the "automation_rules" table.
	AutomationRulesTable = &schema.Table{
		Name:       "automation_rules",
		Columns:    AutomationRulesColumns,
		PrimaryKey: []*schema.Column{AutomationRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "automationrule_automation_type_action_name",
				Unique:  true,
				Columns: []*schema.Column{AutomationRulesColumns[1], AutomationRulesColumns[2]},
			},
		},
	}
	// CashForecastsColumns holds the columns for the "cash_forecasts" table.
	CashForecastsColumns = []*schema.Column{
		{Name: "forecast_id", Type: field.TypeString, Unique: true},
		{Name: "forecast_date", Type: field.TypeTime},
		{Name: "target_date", Type: field.TypeTime},
		{Name: "opening_balance", Type: field.TypeFloat64},
		{Name: "expected_inflows", Type: field.TypeFloat64},
		{Name: "expected_outflows", Type: field.TypeFloat64},
		{Name: "projected_balance", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CashForecastsTable holds the schema information for the "cash_forecasts" table.
	CashForecastsTable = &schema.Table{
		Name:       "cash_forecasts",
		Columns:    CashForecastsColumns,
		PrimaryKey: []*schema.Column{CashForecastsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cashforecast_forecast_date_target_date",
				Unique:  false,
				Columns: []*schema.Column{CashForecastsColumns[1], CashForecastsColumns[2]},
			},
			{
				Name:    "cashforecast_target_date",
				Unique:  false,
				Columns: []*schema.Column{CashForecastsColumns[2]},
			},
		},
	}
	// ClosingStepsColumns holds the columns for the "closing_steps" table.
	ClosingStepsColumns = []*schema.Column{
		{Name: "closing_step_id", Type: field.TypeString, Unique: true},
		{Name: "step_name", Type: field.TypeString},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "blocked", "skipped"}, Default: "pending"},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "blocked_reason", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "closing_id", Type: field.TypeString},
	}
	// ClosingStepsTable holds the schema information for the "closing_steps" table.
	ClosingStepsTable = &schema.Table{
		Name:       "closing_steps",
		Columns:    ClosingStepsColumns,
		PrimaryKey: []*schema.Column{ClosingStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "closing_steps_month_end_closings_steps",
				Columns:    []*schema.Column{ClosingStepsColumns[7]},
				RefColumns: []*schema.Column{MonthEndClosingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "closingstep_closing_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{ClosingStepsColumns[7], ClosingStepsColumns[2]},
			},
			{
				Name:    "closingstep_status",
				Unique:  false,
				Columns: []*schema.Column{ClosingStepsColumns[3]},
			},
		},
	}
	// CreditScoresColumns holds the columns for the "credit_scores" table.
	CreditScoresColumns = []*schema.Column{
		{Name: "credit_score_id", Type: field.TypeString, Unique: true},
		{Name: "customer_id", Type: field.TypeInt64, Unique: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "credit_limit", Type: field.TypeFloat64, Default: 0},
		{Name: "outstanding_balance", Type: field.TypeFloat64, Default: 0},
		{Name: "hold_active", Type: field.TypeBool, Default: false},
		{Name: "hold_reason", Type: field.TypeString, Nullable: true},
		{Name: "factors", Type: field.TypeJSON, Nullable: true},
		{Name: "calculated_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CreditScoresTable holds the schema information for the "credit_scores" table.
	CreditScoresTable = &schema.Table{
		Name:       "credit_scores",
		Columns:    CreditScoresColumns,
		PrimaryKey: []*schema.Column{CreditScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "creditscore_hold_active",
				Unique:  false,
				Columns: []*schema.Column{CreditScoresColumns[6]},
			},
			{
				Name:    "creditscore_risk_tier",
				Unique:  false,
				Columns: []*schema.Column{CreditScoresColumns[3]},
			},
		},
	}
	// DailyDigestsColumns holds the columns for the "daily_digests" table.
	DailyDigestsColumns = []*schema.Column{
		{Name: "digest_id", Type: field.TypeString, Unique: true},
		{Name: "digest_date", Type: field.TypeTime},
		{Name: "user_role", Type: field.TypeEnum, Enums: []string{"cfo", "accountant", "sales_manager", "operations"}},
		{Name: "headline", Type: field.TypeString},
		{Name: "sections", Type: field.TypeJSON},
		{Name: "delivery_status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "channel_disabled", "failed"}, Default: "pending"},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
	}
	// DailyDigestsTable holds the schema information for the "daily_digests" table.
	DailyDigestsTable = &schema.Table{
		Name:       "daily_digests",
		Columns:    DailyDigestsColumns,
		PrimaryKey: []*schema.Column{DailyDigestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailydigest_digest_date_user_role",
				Unique:  true,
				Columns: []*schema.Column{DailyDigestsColumns[1], DailyDigestsColumns[2]},
			},
		},
	}
	// DedupScansColumns holds the columns for the "dedup_scans" table.
	DedupScansColumns = []*schema.Column{
		{Name: "scan_id", Type: field.TypeString, Unique: true},
		{Name: "scan_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "records_scanned", Type: field.TypeInt, Default: 0},
		{Name: "groups_found", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// DedupScansTable holds the schema information for the "dedup_scans" table.
	DedupScansTable = &schema.Table{
		Name:       "dedup_scans",
		Columns:    DedupScansColumns,
		PrimaryKey: []*schema.Column{DedupScansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dedupscan_scan_type",
				Unique:  false,
				Columns: []*schema.Column{DedupScansColumns[1]},
			},
			{
				Name:    "dedupscan_created_at",
				Unique:  false,
				Columns: []*schema.Column{DedupScansColumns[5]},
			},
		},
	}
	// DisruptionPredictionsColumns holds the columns for the "disruption_predictions" table.
	DisruptionPredictionsColumns = []*schema.Column{
		{Name: "prediction_id", Type: field.TypeString, Unique: true},
		{Name: "supplier_id", Type: field.TypeInt64},
		{Name: "purchase_order_id", Type: field.TypeInt64, Nullable: true},
		{Name: "disruption_type", Type: field.TypeEnum, Enums: []string{"late_delivery", "stockout", "price_spike", "quality"}},
		{Name: "probability", Type: field.TypeFloat64},
		{Name: "predicted_date", Type: field.TypeTime, Nullable: true},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "suggested_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "confirmed", "dismissed", "expired"}, Default: "open"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DisruptionPredictionsTable holds the schema information for the "disruption_predictions" table.
	DisruptionPredictionsTable = &schema.Table{
		Name:       "disruption_predictions",
		Columns:    DisruptionPredictionsColumns,
		PrimaryKey: []*schema.Column{DisruptionPredictionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "disruptionprediction_supplier_id",
				Unique:  false,
				Columns: []*schema.Column{DisruptionPredictionsColumns[1]},
			},
			{
				Name:    "disruptionprediction_status",
				Unique:  false,
				Columns: []*schema.Column{DisruptionPredictionsColumns[8]},
			},
			{
				Name:    "disruptionprediction_disruption_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{DisruptionPredictionsColumns[3], DisruptionPredictionsColumns[9]},
			},
		},
	}
	// DocumentJobsColumns holds the columns for the "document_jobs" table.
	DocumentJobsColumns = []*schema.Column{
		{Name: "document_job_id", Type: field.TypeString, Unique: true},
		{Name: "document_type", Type: field.TypeEnum, Enums: []string{"vendor_bill", "expense_receipt", "sales_order"}},
		{Name: "source_attachment", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "extracting", "extracted", "validated", "posted", "failed"}, Default: "pending"},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_record_id", Type: field.TypeInt64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentJobsTable holds the schema information for the "document_jobs" table.
	DocumentJobsTable = &schema.Table{
		Name:       "document_jobs",
		Columns:    DocumentJobsColumns,
		PrimaryKey: []*schema.Column{DocumentJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documentjob_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentJobsColumns[3]},
			},
			{
				Name:    "documentjob_document_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentJobsColumns[1], DocumentJobsColumns[8]},
			},
		},
	}
	// DuplicateGroupsColumns holds the columns for the "duplicate_groups" table.
	DuplicateGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "record_ids", Type: field.TypeJSON},
		{Name: "master_record_id", Type: field.TypeInt64},
		{Name: "similarity_score", Type: field.TypeFloat64},
		{Name: "matched_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "resolution", Type: field.TypeEnum, Enums: []string{"pending", "merged", "dismissed"}, Default: "pending"},
		{Name: "resolved_by", Type: field.TypeString, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "scan_id", Type: field.TypeString},
	}
	// DuplicateGroupsTable holds the schema information for the "duplicate_groups" table.
	DuplicateGroupsTable = &schema.Table{
		Name:       "duplicate_groups",
		Columns:    DuplicateGroupsColumns,
		PrimaryKey: []*schema.Column{DuplicateGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "duplicate_groups_dedup_scans_groups",
				Columns:    []*schema.Column{DuplicateGroupsColumns[9]},
				RefColumns: []*schema.Column{DedupScansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "duplicategroup_scan_id",
				Unique:  false,
				Columns: []*schema.Column{DuplicateGroupsColumns[9]},
			},
			{
				Name:    "duplicategroup_resolution",
				Unique:  false,
				Columns: []*schema.Column{DuplicateGroupsColumns[6]},
			},
		},
	}
	// ExtractionCorrectionsColumns holds the columns for the "extraction_corrections" table.
	ExtractionCorrectionsColumns = []*schema.Column{
		{Name: "correction_id", Type: field.TypeString, Unique: true},
		{Name: "field_name", Type: field.TypeString},
		{Name: "extracted_value", Type: field.TypeString, Nullable: true},
		{Name: "corrected_value", Type: field.TypeString},
		{Name: "corrected_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// ExtractionCorrectionsTable holds the schema information for the "extraction_corrections" table.
	ExtractionCorrectionsTable = &schema.Table{
		Name:       "extraction_corrections",
		Columns:    ExtractionCorrectionsColumns,
		PrimaryKey: []*schema.Column{ExtractionCorrectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_corrections_document_jobs_corrections",
				Columns:    []*schema.Column{ExtractionCorrectionsColumns[6]},
				RefColumns: []*schema.Column{DocumentJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractioncorrection_job_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionCorrectionsColumns[6]},
			},
			{
				Name:    "extractioncorrection_field_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractionCorrectionsColumns[1]},
			},
		},
	}
	// ForecastAccuracyLogsColumns holds the columns for the "forecast_accuracy_logs" table.
	ForecastAccuracyLogsColumns = []*schema.Column{
		{Name: "accuracy_log_id", Type: field.TypeString, Unique: true},
		{Name: "forecast_id", Type: field.TypeString},
		{Name: "target_date", Type: field.TypeTime},
		{Name: "projected_balance", Type: field.TypeFloat64},
		{Name: "actual_balance", Type: field.TypeFloat64},
		{Name: "error_pct", Type: field.TypeFloat64},
		{Name: "evaluated_at", Type: field.TypeTime},
	}
	// ForecastAccuracyLogsTable holds the schema information for the "forecast_accuracy_logs" table.
	ForecastAccuracyLogsTable = &schema.Table{
		Name:       "forecast_accuracy_logs",
		Columns:    ForecastAccuracyLogsColumns,
		PrimaryKey: []*schema.Column{ForecastAccuracyLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "forecastaccuracylog_forecast_id",
				Unique:  false,
				Columns: []*schema.Column{ForecastAccuracyLogsColumns[1]},
			},
			{
				Name:    "forecastaccuracylog_target_date",
				Unique:  false,
				Columns: []*schema.Column{ForecastAccuracyLogsColumns[2]},
			},
		},
	}
	// ForecastScenariosColumns holds the columns for the "forecast_scenarios" table.
	ForecastScenariosColumns = []*schema.Column{
		{Name: "scenario_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "adjustments", Type: field.TypeJSON},
		{Name: "projected_balance", Type: field.TypeFloat64},
		{Name: "delta", Type: field.TypeFloat64},
		{Name: "forecast_id", Type: field.TypeString},
	}
	// ForecastScenariosTable holds the schema information for the "forecast_scenarios" table.
	ForecastScenariosTable = &schema.Table{
		Name:       "forecast_scenarios",
		Columns:    ForecastScenariosColumns,
		PrimaryKey: []*schema.Column{ForecastScenariosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "forecast_scenarios_cash_forecasts_scenarios",
				Columns:    []*schema.Column{ForecastScenariosColumns[5]},
				RefColumns: []*schema.Column{CashForecastsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "forecastscenario_forecast_id",
				Unique:  false,
				Columns: []*schema.Column{ForecastScenariosColumns[5]},
			},
		},
	}
	// MonthEndClosingsColumns holds the columns for the "month_end_closings" table.
	MonthEndClosingsColumns = []*schema.Column{
		{Name: "closing_id", Type: field.TypeString, Unique: true},
		{Name: "period", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "review", "completed", "failed"}, Default: "in_progress"},
		{Name: "readiness_score", Type: field.TypeFloat64, Default: 0},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// MonthEndClosingsTable holds the schema information for the "month_end_closings" table.
	MonthEndClosingsTable = &schema.Table{
		Name:       "month_end_closings",
		Columns:    MonthEndClosingsColumns,
		PrimaryKey: []*schema.Column{MonthEndClosingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "monthendclosing_period",
				Unique:  true,
				Columns: []*schema.Column{MonthEndClosingsColumns[1]},
			},
			{
				Name:    "monthendclosing_status",
				Unique:  false,
				Columns: []*schema.Column{MonthEndClosingsColumns[2]},
			},
		},
	}
	// ReconciliationSessionsColumns holds the columns for the "reconciliation_sessions" table.
	ReconciliationSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "journal_id", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "cancelled"}, Default: "active"},
		{Name: "total_lines", Type: field.TypeInt, Default: 0},
		{Name: "auto_matched", Type: field.TypeInt, Default: 0},
		{Name: "manually_matched", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "remaining", Type: field.TypeInt, Default: 0},
		{Name: "learned_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReconciliationSessionsTable holds the schema information for the "reconciliation_sessions" table.
	ReconciliationSessionsTable = &schema.Table{
		Name:       "reconciliation_sessions",
		Columns:    ReconciliationSessionsColumns,
		PrimaryKey: []*schema.Column{ReconciliationSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reconciliationsession_status",
				Unique:  false,
				Columns: []*schema.Column{ReconciliationSessionsColumns[3]},
			},
			{
				Name:    "reconciliationsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{ReconciliationSessionsColumns[1]},
			},
		},
	}
	// ReportJobsColumns holds the columns for the "report_jobs" table.
	ReportJobsColumns = []*schema.Column{
		{Name: "report_job_id", Type: field.TypeString, Unique: true},
		{Name: "query", Type: field.TypeString, Size: 2147483647},
		{Name: "requested_by", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "planning", "running", "completed", "failed"}, Default: "pending"},
		{Name: "plan", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "narrative", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReportJobsTable holds the schema information for the "report_jobs" table.
	ReportJobsTable = &schema.Table{
		Name:       "report_jobs",
		Columns:    ReportJobsColumns,
		PrimaryKey: []*schema.Column{ReportJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportjob_status",
				Unique:  false,
				Columns: []*schema.Column{ReportJobsColumns[3]},
			},
			{
				Name:    "reportjob_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportJobsColumns[9]},
			},
		},
	}
	// SupplierRiskFactorsColumns holds the columns for the "supplier_risk_factors" table.
	SupplierRiskFactorsColumns = []*schema.Column{
		{Name: "risk_factor_id", Type: field.TypeString, Unique: true},
		{Name: "factor_name", Type: field.TypeString},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "value", Type: field.TypeFloat64},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_score_id", Type: field.TypeString},
	}
	// SupplierRiskFactorsTable holds the schema information for the "supplier_risk_factors" table.
	SupplierRiskFactorsTable = &schema.Table{
		Name:       "supplier_risk_factors",
		Columns:    SupplierRiskFactorsColumns,
		PrimaryKey: []*schema.Column{SupplierRiskFactorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "supplier_risk_factors_supplier_risk_scores_factors",
				Columns:    []*schema.Column{SupplierRiskFactorsColumns[5]},
				RefColumns: []*schema.Column{SupplierRiskScoresColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "supplierriskfactor_risk_score_id_factor_name",
				Unique:  true,
				Columns: []*schema.Column{SupplierRiskFactorsColumns[5], SupplierRiskFactorsColumns[1]},
			},
		},
	}
	// SupplierRiskScoresColumns holds the columns for the "supplier_risk_scores" table.
	SupplierRiskScoresColumns = []*schema.Column{
		{Name: "supplier_risk_id", Type: field.TypeString, Unique: true},
		{Name: "supplier_id", Type: field.TypeInt64, Unique: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "risk_tier", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "calculated_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SupplierRiskScoresTable holds the schema information for the "supplier_risk_scores" table.
	SupplierRiskScoresTable = &schema.Table{
		Name:       "supplier_risk_scores",
		Columns:    SupplierRiskScoresColumns,
		PrimaryKey: []*schema.Column{SupplierRiskScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supplierriskscore_risk_tier",
				Unique:  false,
				Columns: []*schema.Column{SupplierRiskScoresColumns[3]},
			},
			{
				Name:    "supplierriskscore_score",
				Unique:  false,
				Columns: []*schema.Column{SupplierRiskScoresColumns[2]},
			},
		},
	}
	// SupplyChainAlertsColumns holds the columns for the "supply_chain_alerts" table.
	SupplyChainAlertsColumns = []*schema.Column{
		{Name: "sc_alert_id", Type: field.TypeString, Unique: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "critical"}},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "supplier_id", Type: field.TypeInt64, Nullable: true},
		{Name: "prediction_id", Type: field.TypeString, Nullable: true},
		{Name: "acknowledged", Type: field.TypeBool, Default: false},
		{Name: "acknowledged_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "acknowledged_at", Type: field.TypeTime, Nullable: true},
	}
	// SupplyChainAlertsTable holds the schema information for the "supply_chain_alerts" table.
	SupplyChainAlertsTable = &schema.Table{
		Name:       "supply_chain_alerts",
		Columns:    SupplyChainAlertsColumns,
		PrimaryKey: []*schema.Column{SupplyChainAlertsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supplychainalert_severity",
				Unique:  false,
				Columns: []*schema.Column{SupplyChainAlertsColumns[1]},
			},
			{
				Name:    "supplychainalert_acknowledged",
				Unique:  false,
				Columns: []*schema.Column{SupplyChainAlertsColumns[6]},
			},
			{
				Name:    "supplychainalert_created_at",
				Unique:  false,
				Columns: []*schema.Column{SupplyChainAlertsColumns[8]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "webhook_event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"create", "write", "unlink"}},
		{Name: "model", Type: field.TypeString},
		{Name: "record_id", Type: field.TypeInt64},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "payload_hash", Type: field.TypeString},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_event_type_model_record_id_payload_hash",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[2], WebhookEventsColumns[3], WebhookEventsColumns[5]},
			},
			{
				Name:    "webhookevent_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[6]},
			},
			{
				Name:    "webhookevent_processed",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentDecisionsTable,
		AgentRunsTable,
		AgentStepsTable,
		AgentSuspensionsTable,
		AuditLogsTable,
		AutomationRulesTable,
		CashForecastsTable,
		ClosingStepsTable,
		CreditScoresTable,
		DailyDigestsTable,
		DedupScansTable,
		DisruptionPredictionsTable,
		DocumentJobsTable,
		DuplicateGroupsTable,
		ExtractionCorrectionsTable,
		ForecastAccuracyLogsTable,
		ForecastScenariosTable,
		MonthEndClosingsTable,
		ReconciliationSessionsTable,
		ReportJobsTable,
		SupplierRiskFactorsTable,
		SupplierRiskScoresTable,
		SupplyChainAlertsTable,
		WebhookEventsTable,
	}
)

func init() {
	AgentDecisionsTable.ForeignKeys[0].RefTable = AgentStepsTable
	AgentStepsTable.ForeignKeys[0].RefTable = AgentRunsTable
	AgentSuspensionsTable.ForeignKeys[0].RefTable = AgentRunsTable
	ClosingStepsTable.ForeignKeys[0].RefTable = MonthEndClosingsTable
	DuplicateGroupsTable.ForeignKeys[0].RefTable = DedupScansTable
	ExtractionCorrectionsTable.ForeignKeys[0].RefTable = DocumentJobsTable
	ForecastScenariosTable.ForeignKeys[0].RefTable = CashForecastsTable
	SupplierRiskFactorsTable.ForeignKeys[0].RefTable = SupplierRiskScoresTable
}
