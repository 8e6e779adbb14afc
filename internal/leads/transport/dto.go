package transport

import (
	"strings"
	"time"
)

// LeadStatus is the sales temperature of a lead.
type LeadStatus string

const (
	LeadStatusHot  LeadStatus = "Hot"
	LeadStatusWarm LeadStatus = "Warm"
	LeadStatusCold LeadStatus = "Cold"
)

// NormalizeLeadStatus coerces arbitrary input to a valid status. Anything
// that is not exactly Hot, Warm, or Cold after trimming becomes Warm, the
// store default. Same rule for API writes and CSV imports.
func NormalizeLeadStatus(s string) LeadStatus {
	switch LeadStatus(strings.TrimSpace(s)) {
	case LeadStatusHot:
		return LeadStatusHot
	case LeadStatusCold:
		return LeadStatusCold
	default:
		return LeadStatusWarm
	}
}

// PayFrequency is how often the applicant is paid.
type PayFrequency string

const (
	PayWeekly   PayFrequency = "weekly"
	PayBiweekly PayFrequency = "biweekly"
	PayMonthly  PayFrequency = "monthly"
)

// Request DTOs
type CreateLeadRequest struct {
	FirstName  string `json:"firstName" validate:"max=100"`
	LastName   string `json:"lastName" validate:"max=100"`
	Phone      string `json:"phone" validate:"max=30"`
	Phone2     string `json:"phone2" validate:"max=30"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Address1   string `json:"address1" validate:"max=200"`
	Address2   string `json:"address2" validate:"max=200"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=50"`
	Zip        string `json:"zip" validate:"max=20"`
	Source     string `json:"source" validate:"max=100"`
	Status     string `json:"status" validate:"max=20"`
	AssignedTo string `json:"assignedTo" validate:"max=100"`
}

type UpdateLeadRequest struct {
	FirstName  *string `json:"firstName,omitempty" validate:"omitempty,max=100"`
	LastName   *string `json:"lastName,omitempty" validate:"omitempty,max=100"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Phone2     *string `json:"phone2,omitempty" validate:"omitempty,max=30"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Address1   *string `json:"address1,omitempty" validate:"omitempty,max=200"`
	Address2   *string `json:"address2,omitempty" validate:"omitempty,max=200"`
	City       *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State      *string `json:"state,omitempty" validate:"omitempty,max=50"`
	Zip        *string `json:"zip,omitempty" validate:"omitempty,max=20"`
	Source     *string `json:"source,omitempty" validate:"omitempty,max=100"`
	Status     *string `json:"status,omitempty" validate:"omitempty,max=20"`
	AssignedTo *string `json:"assignedTo,omitempty" validate:"omitempty,max=100"`
}

type ReplaceTagsRequest struct {
	Tags []string `json:"tags" validate:"required,dive,min=1,max=100"`
}

type AddNoteRequest struct {
	Body      string `json:"body" validate:"required,min=1,max=5000"`
	CreatedBy string `json:"createdBy,omitempty" validate:"max=100"`
}

type CreateApplicationRequest struct {
	GrossMonthlyIncome  float64 `json:"grossMonthlyIncome" validate:"min=0"`
	NetMonthlyIncome    float64 `json:"netMonthlyIncome" validate:"min=0"`
	JobTimeMonths       int     `json:"jobTimeMonths" validate:"min=0"`
	Employer            string  `json:"employer,omitempty" validate:"max=200"`
	PayFrequency        string  `json:"payFrequency,omitempty" validate:"omitempty,oneof=weekly biweekly monthly"`
	ResidenceTimeMonths int     `json:"residenceTimeMonths" validate:"min=0"`
	RentOrMortgage      float64 `json:"rentOrMortgage" validate:"min=0"`
	OtherMonthlyDebt    float64 `json:"otherMonthlyDebt" validate:"min=0"`
	DesiredPayment      float64 `json:"desiredPayment" validate:"min=0"`
	DownPayment         float64 `json:"downPayment" validate:"min=0"`
	HasRepo             bool    `json:"hasRepo"`
	HasBankruptcy       bool    `json:"hasBankruptcy"`
	FirstTimeBuyer      bool    `json:"firstTimeBuyer"`
	SelfEmployed        bool    `json:"selfEmployed"`
	DLOnFile            bool    `json:"dlOnFile"`
	POIOnFile           bool    `json:"poiOnFile"`
	POROnFile           bool    `json:"porOnFile"`
	ReferencesOnFile    bool    `json:"referencesOnFile"`
	// RunScore defaults to true; pass false to store without scoring.
	RunScore *bool `json:"runScore,omitempty"`
}

type ListLeadsRequest struct {
	Status     string `form:"status" validate:"omitempty,oneof=Hot Warm Cold"`
	Source     string `form:"source" validate:"max=100"`
	AssignedTo string `form:"assignedTo" validate:"max=100"`
	Search     string `form:"search" validate:"max=100"`
	Page       int    `form:"page" validate:"min=0"`
	PageSize   int    `form:"pageSize" validate:"min=0,max=200"`
	SortBy     string `form:"sortBy" validate:"omitempty,oneof=createdAt status firstName lastName"`
	SortOrder  string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Response DTOs
type LeadResponse struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Phone      string     `json:"phone,omitempty"`
	Phone2     string     `json:"phone2,omitempty"`
	Email      string     `json:"email,omitempty"`
	Address1   string     `json:"address1,omitempty"`
	Address2   string     `json:"address2,omitempty"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	Zip        string     `json:"zip,omitempty"`
	Source     string     `json:"source,omitempty"`
	Status     LeadStatus `json:"status"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type LeadDetailResponse struct {
	LeadResponse
	NoteCount        int `json:"noteCount"`
	ApplicationCount int `json:"applicationCount"`
}

type LeadListResponse struct {
	Items      []LeadResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

type LeadStatsResponse struct {
	Total int `json:"total"`
	Hot   int `json:"hot"`
	Warm  int `json:"warm"`
	Cold  int `json:"cold"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"leadId"`
	Body      string    `json:"body"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ApplicationResponse struct {
	ID                  int64     `json:"id"`
	LeadID              int64     `json:"leadId"`
	GrossMonthlyIncome  float64   `json:"grossMonthlyIncome"`
	NetMonthlyIncome    float64   `json:"netMonthlyIncome"`
	JobTimeMonths       int       `json:"jobTimeMonths"`
	Employer            string    `json:"employer,omitempty"`
	PayFrequency        string    `json:"payFrequency,omitempty"`
	ResidenceTimeMonths int       `json:"residenceTimeMonths"`
	RentOrMortgage      float64   `json:"rentOrMortgage"`
	OtherMonthlyDebt    float64   `json:"otherMonthlyDebt"`
	DesiredPayment      float64   `json:"desiredPayment"`
	DownPayment         float64   `json:"downPayment"`
	HasRepo             bool      `json:"hasRepo"`
	HasBankruptcy       bool      `json:"hasBankruptcy"`
	FirstTimeBuyer      bool      `json:"firstTimeBuyer"`
	SelfEmployed        bool      `json:"selfEmployed"`
	DLOnFile            bool      `json:"dlOnFile"`
	POIOnFile           bool      `json:"poiOnFile"`
	POROnFile           bool      `json:"porOnFile"`
	ReferencesOnFile    bool      `json:"referencesOnFile"`
	Score               int       `json:"score"`
	RiskTier            string    `json:"riskTier"`
	Decision            string    `json:"decision"`
	ScoringNotes        string    `json:"scoringNotes,omitempty"`
	PTI                 float64   `json:"pti"`
	CreatedAt           time.Time `json:"createdAt"`
}

type QueueItemResponse struct {
	LeadID        int64     `json:"leadId"`
	LeadName      string    `json:"leadName"`
	Phone         string    `json:"phone,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	ApplicationID int64     `json:"applicationId"`
	Score         int       `json:"score"`
	RiskTier      string    `json:"riskTier"`
	Decision      string    `json:"decision"`
	PTI           float64   `json:"pti"`
	NetIncome     float64   `json:"netIncome"`
	DownPayment   float64   `json:"downPayment"`
	ScoredAt      time.Time `json:"scoredAt"`
}

type TagSuggestionsResponse struct {
	Tags []string `json:"tags"`
}
