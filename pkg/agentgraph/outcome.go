package agentgraph

// OutcomeKind is the terminal (or parked) state of one execution attempt.
type OutcomeKind string

const (
	// OutcomeCompleted: the graph reached END.
	OutcomeCompleted OutcomeKind = "completed"
	// OutcomeSuspended: the run is parked waiting for an external event.
	OutcomeSuspended OutcomeKind = "suspended"
	// OutcomeFailed: a node errored or a guardrail fired.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeCancelled: the run's context was cancelled mid-execution.
	OutcomeCancelled OutcomeKind = "cancelled"
)

// GuardrailKind identifies which hard limit stopped the run.
type GuardrailKind string

const (
	GuardrailStepLimit   GuardrailKind = "step_limit"
	GuardrailTokenBudget GuardrailKind = "token_budget"
	GuardrailLoop        GuardrailKind = "loop_detected"
)

// RunOutcome is the runtime's verdict on one execution attempt. Guardrail
// violations are a terminal failed outcome, not a panic or error value.
type RunOutcome struct {
	Kind       OutcomeKind
	Guardrail  GuardrailKind // set when Kind is failed because a limit fired
	Error      string        // set when Kind is failed
	FinalState State         // last merged state, also on failure
}
