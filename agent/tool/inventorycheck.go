package tool

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/nexgen-labs/procure-agent/agent/contract"
	"github.com/nexgen-labs/procure-agent/agent/structured"
)

const ToolInventoryCheck = "inventory.check"

var inventorySchema = structured.Schema{
	Fields: []structured.Field{
		{Name: "buyer_part_number", Kind: structured.NonEmptyString},
		{Name: "order_quantity", Kind: structured.PositiveInteger},
		{Name: "requested_fulfillment_date", Kind: structured.Date},
	},
}

type InventoryCheckOutput struct {
	BuyerPartNumber string `json:"buyer_part_number"`
	OrderQuantity   int    `json:"order_quantity"`
	FulfillmentDate string `json:"requested_fulfillment_date"`
	Message         string `json:"message"`
}

func executeInventoryCheck(ctx context.Context, gateway contractx.ProcurementGateway, args map[string]any) (contractx.ToolResult, error) {
	input, errMsg := stringArg(args, "input_str")
	if errMsg != "" {
		return contractx.ToolResult{Tool: ToolInventoryCheck, Error: errMsg}, nil
	}

	record, perr := structured.Parse(input, inventorySchema)
	if perr != nil {
		return contractx.ToolResult{Tool: ToolInventoryCheck, Error: perr.Message}, nil
	}

	req := contractx.StockCheckRequest{
		BuyerPartNumber: strings.TrimSpace(record["buyer_part_number"].(string)),
		OrderQuantity:   record["order_quantity"].(int),
		FulfillmentDate: record["requested_fulfillment_date"].(string),
	}

	availability, err := gateway.CheckStock(ctx, req)
	if err != nil {
		return contractx.ToolResult{
			Tool:  ToolInventoryCheck,
			Error: fmt.Sprintf("Stock check failed: %v", err),
		}, nil
	}

	restockInfo := ""
	if availability.ExpectedRestockDate != "" {
		restockInfo = fmt.Sprintf(" Expected restock date: %s", availability.ExpectedRestockDate)
	}

	var message string
	if availability.InStock {
		message = fmt.Sprintf("Stock is available for %s (Quantity: %d).%s",
			req.BuyerPartNumber, req.OrderQuantity, restockInfo)
	} else {
		message = fmt.Sprintf("Stock is NOT available for %s (Quantity: %d).%s, please ask_human on how to proceed",
			req.BuyerPartNumber, req.OrderQuantity, restockInfo)
	}

	return contractx.ToolResult{
		Tool: ToolInventoryCheck,
		Result: InventoryCheckOutput{
			BuyerPartNumber: req.BuyerPartNumber,
			OrderQuantity:   req.OrderQuantity,
			FulfillmentDate: req.FulfillmentDate,
			Message:         message,
		},
	}, nil
}
