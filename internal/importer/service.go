// Package importer provides the CSV lead import pipeline. A batch never
// fails as a whole: bad rows are rejected individually with the line
// number and reason, good rows are imported.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/logger"
)

// ErrUnreadableCSV means the file or its header row could not be parsed at
// all. Row-level problems never produce this error.
var ErrUnreadableCSV = errors.New("could not read CSV file")

// LeadCreator is the slice of the lead service the importer needs.
type LeadCreator interface {
	Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error)
}

// importColumns are the recognized header names. Unknown columns are
// ignored; absent columns import as empty.
var importColumns = []string{
	"first_name", "last_name", "phone", "phone2", "email",
	"address1", "address2", "city", "state", "zip",
	"source", "status", "assigned_to",
}

type RejectedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type Result struct {
	Imported int           `json:"imported"`
	Rejected []RejectedRow `json:"rejected"`
}

type Service struct {
	creator LeadCreator
	bus     events.Bus
	log     *logger.Logger
}

func New(creator LeadCreator, bus events.Bus, log *logger.Logger) *Service {
	return &Service{creator: creator, bus: bus, log: log}
}

// ImportCSV reads the whole file and imports row by row. The first row must
// be a header containing at least one recognized column.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, ErrUnreadableCSV
	}

	columns := mapHeader(header)
	if len(columns) == 0 {
		return Result{}, ErrUnreadableCSV
	}

	result := Result{Rejected: make([]RejectedRow, 0)}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedRow{Line: line, Reason: "unparseable row"})
			continue
		}

		req := buildRequest(columns, record)
		if _, err := s.creator.Create(ctx, req); err != nil {
			result.Rejected = append(result.Rejected, RejectedRow{Line: line, Reason: err.Error()})
			continue
		}
		result.Imported++
	}

	s.log.Info("lead import finished",
		"imported", result.Imported,
		"rejected", len(result.Rejected),
	)
	s.bus.Publish(ctx, events.LeadImported{
		BaseEvent: events.NewBaseEvent(),
		Imported:  result.Imported,
		Rejected:  len(result.Rejected),
	})

	return result, nil
}

// mapHeader resolves recognized column names to their positions.
// Matching is case-insensitive and whitespace-tolerant.
func mapHeader(header []string) map[string]int {
	known := make(map[string]struct{}, len(importColumns))
	for _, name := range importColumns {
		known[name] = struct{}{}
	}

	columns := make(map[string]int)
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if _, ok := known[name]; ok {
			columns[name] = i
		}
	}
	return columns
}

func buildRequest(columns map[string]int, record []string) transport.CreateLeadRequest {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	return transport.CreateLeadRequest{
		FirstName:  field("first_name"),
		LastName:   field("last_name"),
		Phone:      field("phone"),
		Phone2:     field("phone2"),
		Email:      field("email"),
		Address1:   field("address1"),
		Address2:   field("address2"),
		City:       field("city"),
		State:      field("state"),
		Zip:        field("zip"),
		Source:     field("source"),
		Status:     field("status"),
		AssignedTo: field("assigned_to"),
	}
}
