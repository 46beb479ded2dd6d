// Package tool declares the procurement tool catalog exposed to the agent
// host and the executor that dispatches tool calls to the injected
// collaborators.
package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
)

// Dependencies are the collaborators the tools call out to. Tools never
// construct clients themselves.
type Dependencies struct {
	Gateway contractx.ProcurementGateway
	Terms   contractx.TermsExtractor
}

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

func BuildForAgent(agentType contractx.AgentType, deps Dependencies) ([]*schema.ToolInfo, Executor) {
	return infosForAgent(agentType), NewExecutor(agentType, deps)
}

func NewExecutor(agentType contractx.AgentType, deps Dependencies) Executor {
	fallback := DefaultExecutor(agentType)
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolCreditCheck:
			return executeCreditCheck(ctx, deps.Gateway, args)
		case ToolInventoryCheck:
			return executeInventoryCheck(ctx, deps.Gateway, args)
		case ToolPriceCheck:
			return executePriceCheck(ctx, deps.Gateway, args)
		case ToolContractPaymentTerms:
			return executeContractTerms(ctx, deps.Terms, args)
		default:
			return fallback(ctx, tool, args)
		}
	}
}

func DefaultExecutor(agentType contractx.AgentType) Executor {
	return func(ctx context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for agent=%s", tool, agentType),
		}, nil
	}
}

func infosForAgent(agentType contractx.AgentType) []*schema.ToolInfo {
	switch agentType {
	case contractx.AgentTypeProcurement:
		return []*schema.ToolInfo{
			{
				Name: ToolCreditCheck,
				Desc: "Fetches credit score and risk level for a given buyer name.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"buyername": {
						Type:     schema.String,
						Desc:     "The name of the buyer (e.g., '3M Global') to check credit for.",
						Required: true,
					},
				}),
			},
			{
				Name: ToolInventoryCheck,
				Desc: "Checks inventory availability for a part, quantity, and fulfillment date.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"input_str": {
						Type:     schema.String,
						Desc:     `Input in the format: buyer_part_number="some part", order_quantity="some qty", requested_fulfillment_date="MM/DD/YY or YYYY" (e.g., buyer_part_number="3010228002", order_quantity="32100.000", requested_fulfillment_date="02/13/2025").`,
						Required: true,
					},
				}),
			},
			{
				Name: ToolPriceCheck,
				Desc: "Checks price for a given buyer part number against a PO price.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"input_str": {
						Type:     schema.String,
						Desc:     `Input in the format: buyer_part_number="some part", po_price="some price" (e.g., buyer_part_number="3010228002", po_price="125.50").`,
						Required: true,
					},
				}),
			},
			{
				Name: ToolContractPaymentTerms,
				Desc: "Extracts payment terms from indexed procurement contracts.",
				ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
					"query": {
						Type:     schema.String,
						Desc:     "The query to search for payment terms in contracts (e.g., 'What are the payment terms?').",
						Required: true,
					},
				}),
			},
		}
	default:
		return nil
	}
}

// stringArg extracts a required string argument. The second return value
// is a user-facing error message, empty on success.
func stringArg(args map[string]any, name string) (string, string) {
	raw, ok := args[name]
	if !ok {
		return "", name + " is required"
	}
	value, ok := raw.(string)
	if !ok {
		return "", name + " must be a string"
	}
	return value, ""
}
