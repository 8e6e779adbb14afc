package events

// LeadCreated fires when a lead is created through the API.
type LeadCreated struct {
	BaseEvent
	LeadID int64  `json:"leadId"`
	Source string `json:"source"`
}

// EventName identifies the event type.
func (LeadCreated) EventName() string { return "leads.created" }

// LeadImported fires once per completed import batch.
type LeadImported struct {
	BaseEvent
	Imported int `json:"imported"`
	Rejected int `json:"rejected"`
}

// EventName identifies the event type.
func (LeadImported) EventName() string { return "leads.imported" }

// ApplicationScored fires after the underwriting engine stores a result,
// both on initial scoring and on rescore.
type ApplicationScored struct {
	BaseEvent
	LeadID        int64  `json:"leadId"`
	ApplicationID int64  `json:"applicationId"`
	Score         int    `json:"score"`
	RiskTier      string `json:"riskTier"`
	Decision      string `json:"decision"`
}

// EventName identifies the event type.
func (ApplicationScored) EventName() string { return "underwriting.application_scored" }
