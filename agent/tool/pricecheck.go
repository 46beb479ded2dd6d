package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
	"github.com/nexgen-labs/procure-agent/agent/structured"
)

const ToolPriceCheck = "price.check"

var priceSchema = structured.Schema{
	Fields: []structured.Field{
		{Name: "buyer_part_number", Kind: structured.NonEmptyString},
		{Name: "po_price", Kind: structured.PositiveFloat},
	},
}

type PriceCheckOutput struct {
	BuyerPartNumber string  `json:"buyer_part_number"`
	POPrice         float64 `json:"po_price"`
	Message         string  `json:"message"`
}

func executePriceCheck(ctx context.Context, gateway contractx.ProcurementGateway, args map[string]any) (contractx.ToolResult, error) {
	input, errMsg := stringArg(args, "input_str")
	if errMsg != "" {
		return contractx.ToolResult{Tool: ToolPriceCheck, Error: errMsg}, nil
	}

	record, perr := structured.Parse(input, priceSchema)
	if perr != nil {
		return contractx.ToolResult{Tool: ToolPriceCheck, Error: perr.Message}, nil
	}

	req := contractx.PriceCheckRequest{
		BuyerPartNumber: strings.TrimSpace(record["buyer_part_number"].(string)),
		POPrice:         record["po_price"].(float64),
	}

	quote, err := gateway.CheckPrice(ctx, req)
	if err != nil {
		return contractx.ToolResult{
			Tool:  ToolPriceCheck,
			Error: fmt.Sprintf("Price check failed: %v", err),
		}, nil
	}

	message := quote.Message
	if strings.TrimSpace(message) == "" {
		message = "No message returned from /check_price endpoint."
	}

	return contractx.ToolResult{
		Tool: ToolPriceCheck,
		Result: PriceCheckOutput{
			BuyerPartNumber: req.BuyerPartNumber,
			POPrice:         req.POPrice,
			Message:         fmt.Sprintf("Price check for %s: %s", req.BuyerPartNumber, message),
		},
	}, nil
}
