package tool

import (
	"context"
	"errors"
	"testing"
)

func TestContractTermsSuccess(t *testing.T) {
	t.Parallel()

	extractor := &fakeExtractor{terms: "Net 90 Days"}
	executor := testExecutor(&fakeGateway{}, extractor)

	out, err := executor(context.Background(), ToolContractPaymentTerms, map[string]any{
		"query": "What are the payment terms?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "" {
		t.Fatalf("unexpected tool error: %s", out.Error)
	}
	if extractor.lastQuery != "What are the payment terms?" {
		t.Fatalf("extractor received query %q", extractor.lastQuery)
	}

	result, ok := out.Result.(ContractTermsOutput)
	if !ok {
		t.Fatalf("unexpected result type: %T", out.Result)
	}
	if result.PaymentTerms != "Net 90 Days" {
		t.Fatalf("payment terms = %q", result.PaymentTerms)
	}
}

func TestContractTermsBlankQuery(t *testing.T) {
	t.Parallel()

	executor := testExecutor(&fakeGateway{}, &fakeExtractor{})
	out, err := executor(context.Background(), ToolContractPaymentTerms, map[string]any{"query": "  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error != "query must be a non-empty string" {
		t.Fatalf("error = %q", out.Error)
	}
}

func TestContractTermsExtractorFailure(t *testing.T) {
	t.Parallel()

	extractor := &fakeExtractor{err: errors.New("document retrieval failed: search contracts: collection missing")}
	executor := testExecutor(&fakeGateway{}, extractor)

	out, err := executor(context.Background(), ToolContractPaymentTerms, map[string]any{"query": "terms"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Payment terms lookup failed: document retrieval failed: search contracts: collection missing"
	if out.Error != want {
		t.Fatalf("error = %q, want %q", out.Error, want)
	}
}
