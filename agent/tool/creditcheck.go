package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
)

const ToolCreditCheck = "credit.check"

type CreditCheckOutput struct {
	contractx.CreditReport
	Message string `json:"message"`
}

func executeCreditCheck(ctx context.Context, gateway contractx.ProcurementGateway, args map[string]any) (contractx.ToolResult, error) {
	buyerName, errMsg := stringArg(args, "buyername")
	if errMsg != "" {
		return contractx.ToolResult{Tool: ToolCreditCheck, Error: errMsg}, nil
	}

	buyerName = strings.TrimSpace(buyerName)
	if buyerName == "" {
		return contractx.ToolResult{
			Tool:  ToolCreditCheck,
			Error: "No valid buyer name provided",
		}, nil
	}

	report, err := gateway.BuyerCreditCheck(ctx, buyerName)
	if err != nil {
		return contractx.ToolResult{
			Tool:  ToolCreditCheck,
			Error: creditErrorMessage(err),
		}, nil
	}

	message := fmt.Sprintf(
		"Credit check result for %s:\nCompany: %s\nCredit Score: %d\nRisk Level: %s",
		buyerName, report.CompanyName, report.CreditScore, report.RiskLevel,
	)
	return contractx.ToolResult{
		Tool: ToolCreditCheck,
		Result: CreditCheckOutput{
			CreditReport: report,
			Message:      message,
		},
	}, nil
}

// Connection and timeout failures get their own wording so the end user
// can tell a dead service from a slow one.
func creditErrorMessage(err error) string {
	switch {
	case errors.Is(err, contractx.ErrServiceUnavailable):
		return "Failed to connect to credit check service: Connection refused"
	case errors.Is(err, contractx.ErrServiceTimeout):
		return "Credit check service timed out"
	default:
		return fmt.Sprintf("Credit check failed: %v", err)
	}
}
