package underwriting

import (
	"strings"
	"testing"
)

func TestScoreStrongApplicant(t *testing.T) {
	res := Score(Snapshot{
		NetMonthlyIncome:    2000,
		DesiredPayment:      450,
		JobTimeMonths:       12,
		ResidenceTimeMonths: 12,
		DownPayment:         999,
		DLOnFile:            true,
		POIOnFile:           true,
		POROnFile:           true,
		ReferencesOnFile:    true,
	})

	if res.Score != 85 {
		t.Fatalf("expected score 85, got %d", res.Score)
	}
	if res.Tier != TierA {
		t.Fatalf("expected tier A, got %s", res.Tier)
	}
	if res.Decision != DecisionApprove {
		t.Fatalf("expected Approve, got %s", res.Decision)
	}
	if !strings.Contains(res.Explanation, "Net income good (>= $2,000).") {
		t.Fatalf("explanation missing income note: %q", res.Explanation)
	}
	if !strings.Contains(res.Explanation, "PTI good (22%).") {
		t.Fatalf("explanation missing PTI note: %q", res.Explanation)
	}
}

func TestFormatPercentRoundsHalfToEven(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{0.225, "22%"},
		{0.235, "24%"},
		{0.20, "20%"},
		{1.0, "100%"},
	}
	for _, tc := range cases {
		if got := formatPercent(tc.ratio); got != tc.want {
			t.Fatalf("formatPercent(%v) = %q, want %q", tc.ratio, got, tc.want)
		}
	}
}

func TestScoreWorstCaseClampsToZero(t *testing.T) {
	res := Score(Snapshot{
		NetMonthlyIncome:    0,
		DesiredPayment:      500,
		JobTimeMonths:       0,
		ResidenceTimeMonths: 0,
		DownPayment:         0,
		HasRepo:             true,
		HasBankruptcy:       true,
		FirstTimeBuyer:      true,
		SelfEmployed:        true,
	})

	if res.Score != 0 {
		t.Fatalf("expected clamped score 0, got %d", res.Score)
	}
	if res.Tier != TierD {
		t.Fatalf("expected tier D, got %s", res.Tier)
	}
	if res.Decision != DecisionCounter {
		t.Fatalf("expected Counter for low down payment, got %s", res.Decision)
	}
	if !strings.Contains(res.Explanation, "Missing stips: DL, POI, POR, Refs.") {
		t.Fatalf("explanation missing stips note: %q", res.Explanation)
	}
}

func TestScoreTierDDeclineWithDownPayment(t *testing.T) {
	// Same weak profile but with cash down at the threshold: the store
	// declines instead of countering because there is nothing to counter to.
	res := Score(Snapshot{
		NetMonthlyIncome: 800,
		DesiredPayment:   500,
		DownPayment:      999,
		HasRepo:          true,
		HasBankruptcy:    true,
	})

	if res.Tier != TierD {
		t.Fatalf("expected tier D, got %s", res.Tier)
	}
	if res.Decision != DecisionDecline {
		t.Fatalf("expected Decline, got %s", res.Decision)
	}
}

func TestScoreBounds(t *testing.T) {
	best := Score(Snapshot{
		NetMonthlyIncome:    10000,
		DesiredPayment:      100,
		JobTimeMonths:       120,
		ResidenceTimeMonths: 120,
		DownPayment:         5000,
		DLOnFile:            true,
		POIOnFile:           true,
		POROnFile:           true,
		ReferencesOnFile:    true,
	})
	if best.Score < 0 || best.Score > 100 {
		t.Fatalf("score out of bounds: %d", best.Score)
	}
	if best.Tier != TierA || best.Decision != DecisionApprove {
		t.Fatalf("expected A/Approve, got %s/%s", best.Tier, best.Decision)
	}
}

func TestScoreDeterministic(t *testing.T) {
	snap := Snapshot{
		NetMonthlyIncome:    1800,
		DesiredPayment:      400,
		JobTimeMonths:       18,
		ResidenceTimeMonths: 6,
		DownPayment:         500,
		SelfEmployed:        true,
		DLOnFile:            true,
		POIOnFile:           true,
	}
	a := Score(snap)
	b := Score(snap)
	if a != b {
		t.Fatalf("score not deterministic: %+v vs %+v", a, b)
	}
}

func TestScoreIncomeMonotonic(t *testing.T) {
	base := Snapshot{
		DesiredPayment:      300,
		JobTimeMonths:       24,
		ResidenceTimeMonths: 24,
		DownPayment:         1500,
		DLOnFile:            true,
		POIOnFile:           true,
		POROnFile:           true,
		ReferencesOnFile:    true,
	}
	prev := -1
	for _, income := range []float64{1000, 1500, 2000, 2500, 4000} {
		snap := base
		snap.NetMonthlyIncome = income
		got := Score(snap).Score
		if got < prev {
			t.Fatalf("score decreased when income rose to %.0f: %d < %d", income, got, prev)
		}
		prev = got
	}
}

func TestComputePTI(t *testing.T) {
	if got := ComputePTI(0, 400); got != 1.0 {
		t.Fatalf("expected 1.0 for zero income, got %v", got)
	}
	if got := ComputePTI(-500, 400); got != 1.0 {
		t.Fatalf("expected 1.0 for negative income, got %v", got)
	}
	if got := ComputePTI(1000, 250); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
}

func TestTierPartition(t *testing.T) {
	cases := []struct {
		score int
		tier  RiskTier
	}{
		{100, TierA}, {80, TierA},
		{79, TierB}, {65, TierB},
		{64, TierC}, {50, TierC},
		{49, TierD}, {0, TierD},
	}
	for _, tc := range cases {
		tier, _ := classify(tc.score, 0)
		if tier != tc.tier {
			t.Fatalf("score %d: expected tier %s, got %s", tc.score, tc.tier, tier)
		}
	}
}
