// Package underwriting implements the rule-based BHPH credit scoring engine.
// Scoring is a pure function over an application snapshot: identical inputs
// always produce identical scores, tiers, decisions, and explanations, which
// keeps every stored result reproducible and explainable rule by rule.
package underwriting

import (
	"fmt"
	"strings"
)

// RiskTier is the coarse underwriting bucket derived from the score.
type RiskTier string

const (
	TierA       RiskTier = "A"
	TierB       RiskTier = "B"
	TierC       RiskTier = "C"
	TierD       RiskTier = "D"
	TierUnknown RiskTier = "Unknown"
)

// Decision is the recommended action for an application.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionCounter Decision = "Counter"
	DecisionReview  Decision = "Review"
	DecisionDecline Decision = "Decline"
)

const (
	// Base score - applications start at 50 and rules add or subtract.
	baseScore = 50

	// downPaymentOKThreshold doubles as the tier-D Counter/Decline
	// tie-break. The coupling is intentional store policy.
	downPaymentOKThreshold     = 999.0
	downPaymentStrongThreshold = 1500.0

	stipPenaltyEach = 3
	stipPenaltyCap  = 12
)

// Snapshot is the financial and credit profile the engine scores.
// Numeric fields are expected non-negative; the engine tolerates zero or
// negative values via the PTI guard and the final clamp.
type Snapshot struct {
	NetMonthlyIncome    float64
	GrossMonthlyIncome  float64
	JobTimeMonths       int
	ResidenceTimeMonths int
	RentOrMortgage      float64
	OtherMonthlyDebt    float64
	DesiredPayment      float64
	DownPayment         float64

	HasRepo        bool
	HasBankruptcy  bool
	FirstTimeBuyer bool
	SelfEmployed   bool

	DLOnFile         bool
	POIOnFile        bool
	POROnFile        bool
	ReferencesOnFile bool
}

// Result is the scoring output stored on a finance application.
type Result struct {
	Score       int
	Tier        RiskTier
	Decision    Decision
	Explanation string
}

// ComputePTI returns the payment-to-income ratio. A non-positive net income
// is treated as maximal risk (1.0) to avoid division by zero. Standalone so
// queue and detail views report the same ratio the engine scored with.
func ComputePTI(netIncome, desiredPayment float64) float64 {
	if netIncome <= 0 {
		return 1.0
	}
	return desiredPayment / netIncome
}

// Score evaluates the snapshot against the store's underwriting rules.
// Rules run in a fixed order and each appends one sentence to the
// explanation. There is no error path.
func Score(app Snapshot) Result {
	notes := make([]string, 0, 12)
	score := baseScore

	// Income strength
	switch {
	case app.NetMonthlyIncome >= 2500:
		score += 15
		notes = append(notes, "Net income strong (>= $2,500).")
	case app.NetMonthlyIncome >= 2000:
		score += 10
		notes = append(notes, "Net income good (>= $2,000).")
	case app.NetMonthlyIncome >= 1500:
		score += 5
		notes = append(notes, "Net income moderate (>= $1,500).")
	default:
		score -= 10
		notes = append(notes, "Net income low (< $1,500).")
	}

	// Payment-to-income
	pti := ComputePTI(app.NetMonthlyIncome, app.DesiredPayment)
	switch {
	case pti <= 0.20:
		score += 15
		notes = append(notes, fmt.Sprintf("PTI excellent (%s).", formatPercent(pti)))
	case pti <= 0.25:
		score += 10
		notes = append(notes, fmt.Sprintf("PTI good (%s).", formatPercent(pti)))
	case pti <= 0.30:
		notes = append(notes, fmt.Sprintf("PTI borderline (%s).", formatPercent(pti)))
	default:
		score -= 15
		notes = append(notes, fmt.Sprintf("PTI high (%s).", formatPercent(pti)))
	}

	// Job time
	switch {
	case app.JobTimeMonths >= 24:
		score += 10
		notes = append(notes, "Job time strong (>= 24 mo).")
	case app.JobTimeMonths >= 12:
		score += 5
		notes = append(notes, "Job time ok (>= 12 mo).")
	default:
		score -= 10
		notes = append(notes, "Job time short (< 12 mo).")
	}

	// Residence time
	switch {
	case app.ResidenceTimeMonths >= 24:
		score += 8
		notes = append(notes, "Residence time strong (>= 24 mo).")
	case app.ResidenceTimeMonths >= 12:
		score += 4
		notes = append(notes, "Residence time ok (>= 12 mo).")
	default:
		score -= 6
		notes = append(notes, "Residence time short (< 12 mo).")
	}

	// Down payment
	switch {
	case app.DownPayment >= downPaymentStrongThreshold:
		score += 10
		notes = append(notes, "Down payment strong (>= $1,500).")
	case app.DownPayment >= downPaymentOKThreshold:
		score += 6
		notes = append(notes, "Down payment ok (>= $999).")
	case app.DownPayment > 0:
		score += 2
		notes = append(notes, "Down payment low (< $999).")
	default:
		score -= 8
		notes = append(notes, "No down payment.")
	}

	// Red flags
	if app.HasRepo {
		score -= 6
		notes = append(notes, "Repo history flagged.")
	}
	if app.HasBankruptcy {
		score -= 6
		notes = append(notes, "Bankruptcy history flagged.")
	}
	if app.SelfEmployed {
		score -= 2
		notes = append(notes, "Self-employed: verify income carefully.")
	}
	if app.FirstTimeBuyer {
		score -= 1
		notes = append(notes, "First-time buyer.")
	}

	// Missing stips penalty
	missing := missingStips(app)
	if len(missing) > 0 {
		penalty := stipPenaltyEach * len(missing)
		if penalty > stipPenaltyCap {
			penalty = stipPenaltyCap
		}
		score -= penalty
		notes = append(notes, fmt.Sprintf("Missing stips: %s.", strings.Join(missing, ", ")))
	}

	score = clamp(score)

	tier, decision := classify(score, app.DownPayment)

	return Result{
		Score:       score,
		Tier:        tier,
		Decision:    decision,
		Explanation: strings.Join(notes, " "),
	}
}

func missingStips(app Snapshot) []string {
	missing := make([]string, 0, 4)
	if !app.DLOnFile {
		missing = append(missing, "DL")
	}
	if !app.POIOnFile {
		missing = append(missing, "POI")
	}
	if !app.POROnFile {
		missing = append(missing, "POR")
	}
	if !app.ReferencesOnFile {
		missing = append(missing, "Refs")
	}
	return missing
}

func classify(score int, downPayment float64) (RiskTier, Decision) {
	switch {
	case score >= 80:
		return TierA, DecisionApprove
	case score >= 65:
		return TierB, DecisionApprove
	case score >= 50:
		return TierC, DecisionReview
	default:
		if downPayment < downPaymentOKThreshold {
			return TierD, DecisionCounter
		}
		return TierD, DecisionDecline
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
