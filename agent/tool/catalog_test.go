package tool

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
)

type fakeGateway struct {
	creditReport contractx.CreditReport
	creditErr    error
	stock        contractx.StockAvailability
	stockErr     error
	quote        contractx.PriceQuote
	quoteErr     error

	lastBuyerName string
	lastStockReq  contractx.StockCheckRequest
	lastPriceReq  contractx.PriceCheckRequest
}

func (f *fakeGateway) BuyerCreditCheck(ctx context.Context, buyerName string) (contractx.CreditReport, error) {
	f.lastBuyerName = buyerName
	return f.creditReport, f.creditErr
}

func (f *fakeGateway) CheckStock(ctx context.Context, req contractx.StockCheckRequest) (contractx.StockAvailability, error) {
	f.lastStockReq = req
	return f.stock, f.stockErr
}

func (f *fakeGateway) CheckPrice(ctx context.Context, req contractx.PriceCheckRequest) (contractx.PriceQuote, error) {
	f.lastPriceReq = req
	return f.quote, f.quoteErr
}

type fakeExtractor struct {
	terms     string
	err       error
	lastQuery string
}

func (f *fakeExtractor) ExtractPaymentTerms(ctx context.Context, query string) (string, error) {
	f.lastQuery = query
	return f.terms, f.err
}

func testExecutor(gateway *fakeGateway, extractor *fakeExtractor) Executor {
	return NewExecutor(contractx.AgentTypeProcurement, Dependencies{
		Gateway: gateway,
		Terms:   extractor,
	})
}

func TestBuildForAgentProcurement(t *testing.T) {
	t.Parallel()

	infos, executor := BuildForAgent(contractx.AgentTypeProcurement, Dependencies{
		Gateway: &fakeGateway{},
		Terms:   &fakeExtractor{},
	})
	if len(infos) != 4 {
		t.Fatalf("expected 4 tool infos, got %d", len(infos))
	}
	wantNames := []string{ToolCreditCheck, ToolInventoryCheck, ToolPriceCheck, ToolContractPaymentTerms}
	for i, want := range wantNames {
		if infos[i].Name != want {
			t.Fatalf("tool[%d] = %s, want %s", i, infos[i].Name, want)
		}
	}
	if executor == nil {
		t.Fatal("executor must not be nil")
	}
}

func TestBuildForAgentUnknownType(t *testing.T) {
	t.Parallel()

	infos, _ := BuildForAgent(contractx.AgentType("unknown"), Dependencies{})
	if infos != nil {
		t.Fatalf("expected nil infos, got %v", infos)
	}
}

func TestDefaultExecutorUnavailableMessage(t *testing.T) {
	t.Parallel()

	executor := DefaultExecutor(contractx.AgentTypeProcurement)
	out, err := executor(context.Background(), "no.such_tool", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Tool != "no.such_tool" {
		t.Fatalf("unexpected tool: %s", out.Tool)
	}
	if out.Error == "" {
		t.Fatal("expected non-empty error message")
	}
}

func TestExecutorFallsBackForUnknownTool(t *testing.T) {
	t.Parallel()

	executor := testExecutor(&fakeGateway{}, &fakeExtractor{})
	out, err := executor(context.Background(), "no.such_tool", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Error == "" {
		t.Fatal("expected unavailable-tool error")
	}
}

func TestExecutorMissingStringArgs(t *testing.T) {
	t.Parallel()

	executor := testExecutor(&fakeGateway{}, &fakeExtractor{})

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{ToolCreditCheck, nil, "buyername is required"},
		{ToolCreditCheck, map[string]any{"buyername": 42}, "buyername must be a string"},
		{ToolInventoryCheck, nil, "input_str is required"},
		{ToolPriceCheck, map[string]any{"input_str": 1.5}, "input_str must be a string"},
		{ToolContractPaymentTerms, nil, "query is required"},
	}
	for _, tt := range tests {
		out, err := executor(context.Background(), tt.tool, tt.args)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.tool, err)
		}
		if out.Error != tt.want {
			t.Fatalf("%s: error = %q, want %q", tt.tool, out.Error, tt.want)
		}
	}
}

func TestExecutorErrorsAreValuesNotFaults(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{
		creditErr: errors.New("boom"),
		stockErr:  errors.New("boom"),
		quoteErr:  errors.New("boom"),
	}
	executor := testExecutor(gateway, &fakeExtractor{err: errors.New("boom")})

	calls := []struct {
		tool string
		args map[string]any
	}{
		{ToolCreditCheck, map[string]any{"buyername": "3M Global"}},
		{ToolInventoryCheck, map[string]any{"input_str": `buyer_part_number="A", order_quantity="1", requested_fulfillment_date="5/1/25"`}},
		{ToolPriceCheck, map[string]any{"input_str": `buyer_part_number="A", po_price="1.00"`}},
		{ToolContractPaymentTerms, map[string]any{"query": "payment terms"}},
	}
	for _, call := range calls {
		out, err := executor(context.Background(), call.tool, call.args)
		if err != nil {
			t.Fatalf("%s: expected failure as value, got error %v", call.tool, err)
		}
		if out.Error == "" {
			t.Fatalf("%s: expected error message", call.tool)
		}
	}
}
