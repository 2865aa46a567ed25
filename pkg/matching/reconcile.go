// Package matching implements the two matching cores: the fuzzy bank
// reconciliation scorer and the cross-entity deduplication clusterer.
package matching

import (
	"math"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Signal weights of the reconciliation scorer. They sum to 1.0 including
// the learned-rule bonus.
const (
	weightReference = 0.40
	weightAmount    = 0.35
	weightPartner   = 0.15
	weightRule      = 0.10
)

// Scorer thresholds.
const (
	refRatioThreshold     = 70
	partnerFullThreshold  = 85
	partnerHalfThreshold  = 65
	ruleRatioThreshold    = 80
	amountExactTolerance  = 0.01
	amountAbsTolerance    = 0.50
	amountRelTight        = 0.02
	amountRelMax          = 0.10
	scoreExactThreshold   = 0.90
	scoreLearnedThreshold = 0.50
	scorePartialThreshold = 0.30
)

// MatchType classifies a reconciliation suggestion.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchLearned MatchType = "learned"
	MatchFuzzy   MatchType = "fuzzy"
	MatchPartial MatchType = "partial"
	MatchNone    MatchType = "none"
)

// BankLine is one bank statement line awaiting reconciliation.
type BankLine struct {
	ID      int64
	Ref     string
	Amount  float64
	Partner string
	Date    string
}

// CandidateEntry is a journal entry that could clear a bank line.
type CandidateEntry struct {
	ID             int64
	Ref            string
	AmountResidual float64
	Partner        string
}

// Suggestion is the scored outcome for one bank line.
type Suggestion struct {
	BankLineID     int64
	MatchedEntryID int64
	Confidence     float64
	MatchType      MatchType
	RuleApplied    bool
}

// LearnedRule is a pattern derived from a manual match, biasing future
// scoring toward similar pairs.
type LearnedRule struct {
	BankRefPattern      string `json:"bank_ref_pattern"`
	BankPartnerPattern  string `json:"bank_partner_pattern"`
	EntryRefPattern     string `json:"entry_ref_pattern"`
	EntryPartnerPattern string `json:"entry_partner_pattern"`
	CreatedAt           string `json:"created_at"`
}

// NewLearnedRule derives a rule from a manually confirmed match.
// createdAt is an RFC3339 timestamp supplied by the caller.
func NewLearnedRule(line BankLine, entry CandidateEntry, createdAt string) LearnedRule {
	return LearnedRule{
		BankRefPattern:      normalize(line.Ref),
		BankPartnerPattern:  normalize(line.Partner),
		EntryRefPattern:     normalize(entry.Ref),
		EntryPartnerPattern: normalize(entry.Partner),
		CreatedAt:           createdAt,
	}
}

// matches reports whether all four patterns resemble the pair at >= 80%.
func (r LearnedRule) matches(line BankLine, entry CandidateEntry) bool {
	return ratio(r.BankRefPattern, normalize(line.Ref)) >= ruleRatioThreshold &&
		ratio(r.BankPartnerPattern, normalize(line.Partner)) >= ruleRatioThreshold &&
		ratio(r.EntryRefPattern, normalize(entry.Ref)) >= ruleRatioThreshold &&
		ratio(r.EntryPartnerPattern, normalize(entry.Partner)) >= ruleRatioThreshold
}

// Score computes the multi-signal score for a (line, candidate) pair.
// The returned MatchType classifies the total.
func Score(line BankLine, entry CandidateEntry, rules []LearnedRule) Suggestion {
	refScore, refExact := scoreReference(line.Ref, entry.Ref)
	amtScore, amtExact := scoreAmount(line.Amount, entry.AmountResidual)

	// Exact reference plus exact amount is conclusive on its own.
	if refExact && amtExact {
		return Suggestion{
			BankLineID:     line.ID,
			MatchedEntryID: entry.ID,
			Confidence:     1.0,
			MatchType:      MatchExact,
		}
	}

	partnerScore := scorePartner(line.Partner, entry.Partner)

	ruleApplied := false
	ruleScore := 0.0
	for _, r := range rules {
		if r.matches(line, entry) {
			ruleApplied = true
			ruleScore = weightRule
			break
		}
	}

	total := refScore + amtScore + partnerScore + ruleScore
	total = math.Min(total, 1.0)

	return Suggestion{
		BankLineID:     line.ID,
		MatchedEntryID: entry.ID,
		Confidence:     total,
		MatchType:      classify(total, ruleApplied, refScore, amtScore),
		RuleApplied:    ruleApplied,
	}
}

// SuggestMatches greedily allocates candidates to lines in input order.
// A candidate consumed by an earlier line is skipped for later lines.
// Lines whose best candidate classifies as "none" get no suggestion.
func SuggestMatches(lines []BankLine, candidates []CandidateEntry, rules []LearnedRule) []Suggestion {
	consumed := make(map[int64]bool, len(candidates))
	suggestions := make([]Suggestion, 0, len(lines))

	for _, line := range lines {
		best := Suggestion{BankLineID: line.ID, MatchType: MatchNone}
		for _, entry := range candidates {
			if consumed[entry.ID] {
				continue
			}
			s := Score(line, entry, rules)
			if s.Confidence > best.Confidence {
				best = s
			}
		}
		if best.MatchType == MatchNone || best.MatchedEntryID == 0 {
			continue
		}
		consumed[best.MatchedEntryID] = true
		suggestions = append(suggestions, best)
	}
	return suggestions
}

func classify(total float64, ruleApplied bool, refScore, amtScore float64) MatchType {
	switch {
	case total >= scoreExactThreshold:
		return MatchExact
	case ruleApplied && total >= scoreLearnedThreshold:
		return MatchLearned
	case refScore > 0 || amtScore > 0:
		return MatchFuzzy
	case total >= scorePartialThreshold:
		return MatchPartial
	default:
		return MatchNone
	}
}

// scoreReference scores the reference signal. Exact (normalised) equality
// earns the full weight; token-sort similarity above threshold or substring
// containment earns a scaled share.
func scoreReference(a, b string) (score float64, exact bool) {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return 0, false
	}
	if na == nb {
		return weightReference, true
	}
	r := ratio(na, nb)
	contained := strings.Contains(na, nb) || strings.Contains(nb, na)
	if r >= refRatioThreshold || contained {
		if contained && r < refRatioThreshold {
			r = refRatioThreshold
		}
		return weightReference * float64(r) / 100.0, false
	}
	return 0, false
}

// scoreAmount scores the amount signal with tiered tolerances.
func scoreAmount(lineAmount, residual float64) (score float64, exact bool) {
	diff := math.Abs(math.Abs(lineAmount) - math.Abs(residual))
	if diff < amountExactTolerance {
		return weightAmount, true
	}
	if diff <= amountAbsTolerance {
		return 0.30, false
	}
	base := math.Max(math.Abs(lineAmount), math.Abs(residual))
	if base == 0 {
		return 0, false
	}
	rel := diff / base
	if rel <= amountRelTight {
		return 0.28, false
	}
	if rel <= amountRelMax {
		// Linear decay from 0.28 at 2% down to 0 at 10%.
		return 0.28 * (amountRelMax - rel) / (amountRelMax - amountRelTight), false
	}
	return 0, false
}

// scorePartner scores the partner-name signal. Symmetric by construction
// (token-sort ratio is order-insensitive).
func scorePartner(a, b string) float64 {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	r := ratio(na, nb)
	switch {
	case r >= partnerFullThreshold:
		return weightPartner
	case r >= partnerHalfThreshold:
		return weightPartner / 2
	default:
		return 0
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.TokenSortRatio(a, b)
}
