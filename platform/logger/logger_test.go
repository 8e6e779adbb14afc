package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(buf, nil))}
}

func TestApplicationScoredEmitsDecisionFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.ApplicationScored(7, 42, 85, "A", "Approve")

	out := buf.String()
	for _, want := range []string{
		`"msg":"application_scored"`,
		`"lead_id":7`,
		`"application_id":42`,
		`"score":85`,
		`"risk_tier":"A"`,
		`"decision":"Approve"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log output to contain %s, got %s", want, out)
		}
	}
}
