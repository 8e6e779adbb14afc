package scheduler

import "testing"

func TestRescoreTaskRoundTrip(t *testing.T) {
	task, err := NewRescoreTask(RescorePayload{ApplicationID: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TaskRescoreApplication {
		t.Fatalf("unexpected task type %q", task.Type())
	}

	payload, err := ParseRescorePayload(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.ApplicationID != 99 {
		t.Fatalf("expected application id 99, got %d", payload.ApplicationID)
	}
}
