package tool

import (
	"context"
	"errors"
	"fmt"
	"testing"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
)

func TestCreditCheckSuccess(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		creditReport: contractx.CreditReport{
			BuyerName:   "3M Global",
			CompanyName: "3M Global Inc.",
			CreditScore: 720,
			RiskLevel:   "Low",
		},
	}
	executor := testExecutor(gateway, &fakeExtractor{})

	out, err := executor(context.Background(), ToolCreditCheck, map[string]any{"buyername": " 3M Global "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("unexpected tool error: %s", out.Error)
	}
	if gateway.lastBuyerName != "3M Global" {
		t.Fatalf("gateway received buyer name %q", gateway.lastBuyerName)
	}

	result, ok := out.Result.(CreditCheckOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	want := "Credit check result for 3M Global:\nCompany: 3M Global Inc.\nCredit Score: 720\nRisk Level: Low"
	if result.Message != want {
		t.Fatalf("message = %q, want %q", result.Message, want)
	}
}

func TestCreditCheckBlankBuyerName(t *testing.T) {
	t.Parallel()

	executor := testExecutor(&fakeGateway{}, &fakeExtractor{})
	out, err := executor(context.Background(), ToolCreditCheck, map[string]any{"buyername": "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "No valid buyer name provided" {
		t.Fatalf("error = %q", out.Error)
	}
}

func TestCreditCheckTransportErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{
			fmt.Errorf("%w: dial tcp: connect: connection refused", contractx.ErrServiceUnavailable),
			"Failed to connect to credit check service: Connection refused",
		},
		{
			fmt.Errorf("%w: context deadline exceeded", contractx.ErrServiceTimeout),
			"Credit check service timed out",
		},
		{
			errors.New("unexpected status 500 from /buyer_credit_check"),
			"Credit check failed: unexpected status 500 from /buyer_credit_check",
		},
	}
	for _, tt := range tests {
		executor := testExecutor(&fakeGateway{creditErr: tt.err}, &fakeExtractor{})
		out, err := executor(context.Background(), ToolCreditCheck, map[string]any{"buyername": "3M Global"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Error != tt.want {
			t.Fatalf("error = %q, want %q", out.Error, tt.want)
		}
	}
}
