package importer

import (
	"context"
	"strings"
	"testing"

	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/internal/leads/service"
	"bhph_crm_backend/internal/leads/transport"
	"bhph_crm_backend/platform/logger"
)

type fakeCreator struct {
	created []transport.CreateLeadRequest
}

func (f *fakeCreator) Create(_ context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	if strings.TrimSpace(req.FirstName) == "" && strings.TrimSpace(req.LastName) == "" {
		return transport.LeadResponse{}, service.ErrNameRequired
	}
	f.created = append(f.created, req)
	return transport.LeadResponse{FirstName: req.FirstName, LastName: req.LastName}, nil
}

func newTestService(creator LeadCreator) *Service {
	log := logger.New("test")
	return New(creator, events.NewInMemoryBus(log), log)
}

func TestImportCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"first_name,last_name,phone,status,unknown_col",
		"Maria,Lopez,555-0101,Hot,ignored",
		"James,Carter,555-0102,,x",
		",,555-0103,Warm,x",
	}, "\n")

	creator := &fakeCreator{}
	result, err := newTestService(creator).ImportCSV(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d", result.Imported)
	}
	if len(result.Rejected) != 1 {
		t.Fatalf("expected 1 rejected, got %d", len(result.Rejected))
	}
	if result.Rejected[0].Line != 4 {
		t.Fatalf("expected rejection on line 4, got %d", result.Rejected[0].Line)
	}

	if creator.created[0].FirstName != "Maria" || creator.created[0].Status != "Hot" {
		t.Fatalf("unexpected first row: %+v", creator.created[0])
	}
	// Blank status passes through; the lead service coerces it to Warm.
	if creator.created[1].Status != "" {
		t.Fatalf("expected blank status passthrough, got %q", creator.created[1].Status)
	}
}

func TestImportCSVSubsetOfColumns(t *testing.T) {
	csvData := "last_name\nRivera\n"

	creator := &fakeCreator{}
	result, err := newTestService(creator).ImportCSV(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d", result.Imported)
	}
	if creator.created[0].LastName != "Rivera" || creator.created[0].Phone != "" {
		t.Fatalf("unexpected request: %+v", creator.created[0])
	}
}

func TestImportCSVUnrecognizedHeader(t *testing.T) {
	csvData := "foo,bar\n1,2\n"

	_, err := newTestService(&fakeCreator{}).ImportCSV(context.Background(), strings.NewReader(csvData))
	if err != ErrUnreadableCSV {
		t.Fatalf("expected ErrUnreadableCSV, got %v", err)
	}
}

func TestImportCSVEmptyFile(t *testing.T) {
	_, err := newTestService(&fakeCreator{}).ImportCSV(context.Background(), strings.NewReader(""))
	if err != ErrUnreadableCSV {
		t.Fatalf("expected ErrUnreadableCSV, got %v", err)
	}
}
