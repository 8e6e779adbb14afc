package repository

import (
	"strings"
	"testing"
)

func TestUnderwritingQueueQueryPicksLatestApplicationPerLead(t *testing.T) {
	query := strings.ToLower(underwritingQueueQuery)

	requiredFragments := []string{
		"select distinct on (lead_id)",
		"order by lead_id, created_at desc, id desc",
		"join leads l on l.id = a.lead_id",
	}

	for _, fragment := range requiredFragments {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected queue query fragment %q to be present", fragment)
		}
	}
}

func TestUnderwritingQueueQueryOrdersRiskiestFirst(t *testing.T) {
	query := strings.ToLower(underwritingQueueQuery)

	if !strings.Contains(query, "order by a.score asc, a.risk_tier asc, a.created_at desc") {
		t.Fatal("queue query should sort by score ascending, then tier ascending")
	}
}
