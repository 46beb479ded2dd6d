package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
)

const ToolContractPaymentTerms = "contract.payment_terms"

type ContractTermsOutput struct {
	Query        string `json:"query"`
	PaymentTerms string `json:"payment_terms"`
}

func executeContractTerms(ctx context.Context, extractor contractx.TermsExtractor, args map[string]any) (contractx.ToolResult, error) {
	query, errMsg := stringArg(args, "query")
	if errMsg != "" {
		return contractx.ToolResult{Tool: ToolContractPaymentTerms, Error: errMsg}, nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return contractx.ToolResult{
			Tool:  ToolContractPaymentTerms,
			Error: "query must be a non-empty string",
		}, nil
	}

	terms, err := extractor.ExtractPaymentTerms(ctx, query)
	if err != nil {
		return contractx.ToolResult{
			Tool:  ToolContractPaymentTerms,
			Error: fmt.Sprintf("Payment terms lookup failed: %v", err),
		}, nil
	}

	return contractx.ToolResult{
		Tool: ToolContractPaymentTerms,
		Result: ContractTermsOutput{
			Query:        query,
			PaymentTerms: terms,
		},
	}, nil
}
