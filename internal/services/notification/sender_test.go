package notification

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogSenderSend(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	err := sender.Send(
		"member@example.com",
		"Reimbursement Status Update",
		"Your reimbursement has been approved",
	)
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"member@example.com",
		"Reimbursement Status Update",
		"Your reimbursement has been approved",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
