package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

func withOutputFormat(t *testing.T, format string) {
	t.Helper()
	previous := outputFormat
	outputFormat = format
	t.Cleanup(func() { outputFormat = previous })
}

func TestPrintResultFormats(t *testing.T) {
	resp := &types.PaymentTracking{PaymentId: "pay-1", Outcome: "paid", Polls: 2}
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "tracking pay-1\n")
		return err
	}

	cases := []struct {
		format string
		want   string
	}{
		{format: "text", want: "tracking pay-1\n"},
		{format: "json", want: `"payment_id": "pay-1"`},
		{format: "yaml", want: "payment_id: pay-1"},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			withOutputFormat(t, tc.format)
			var buf bytes.Buffer
			if err := printResult(&buf, resp, text); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Fatalf("expected %q in output, got %q", tc.want, buf.String())
			}
		})
	}
}

func TestPrintResultRejectsUnknownFormat(t *testing.T) {
	withOutputFormat(t, "xml")
	err := printResult(io.Discard, struct{}{}, func(io.Writer) error { return nil })
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestFormatCents(t *testing.T) {
	if got := formatCents(2000); got != "R$ 20,00" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := formatCents(505); got != "R$ 5,05" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestWriteLookupErrorListsParams(t *testing.T) {
	var buf bytes.Buffer
	err := writeLookupError(&buf, &types.LookupErrorResponse{
		Error:  "payment id missing",
		Params: map[string]string{"status": "ok"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "status = ok") {
		t.Fatalf("expected params in output, got %q", buf.String())
	}
}
