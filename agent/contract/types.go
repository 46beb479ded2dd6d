package contract

// AgentType selects which tool catalog an agent is wired with.
type AgentType string

const (
	AgentTypeProcurement AgentType = "procurement"
)

// ToolRequest is one tool invocation planned by the agent.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult carries either a tool's structured result or a user-facing
// error message. Exactly one of Result and Error is populated; input-shape
// problems are values here, never Go errors.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CreditReport is the backend's answer to a buyer credit check.
type CreditReport struct {
	BuyerName   string `json:"buyername"`
	CompanyName string `json:"company"`
	CreditScore int    `json:"credit_score"`
	RiskLevel   string `json:"risk_level"`
}

// StockCheckRequest asks whether a part can be fulfilled in a given
// quantity by a given date. FulfillmentDate is an ISO YYYY-MM-DD string.
type StockCheckRequest struct {
	BuyerPartNumber string `json:"buyer_part_number"`
	OrderQuantity   int    `json:"order_quantity"`
	FulfillmentDate string `json:"requested_fulfillment_date"`
}

// StockAvailability is the backend's answer to a stock check.
type StockAvailability struct {
	InStock             bool   `json:"ItemsInStock"`
	ExpectedRestockDate string `json:"expected_restock_date,omitempty"`
}

// PriceCheckRequest compares a PO price against the backend's price book.
type PriceCheckRequest struct {
	BuyerPartNumber string  `json:"buyer_part_number"`
	POPrice         float64 `json:"po_price"`
}

// PriceQuote is the backend's answer to a price check.
type PriceQuote struct {
	Message string `json:"message"`
}
