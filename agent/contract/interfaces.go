package contract

import "context"

// ProcurementGateway is the outbound HTTP collaborator behind the credit,
// stock, and price tools. Implementations map transport failures to the
// ErrServiceUnavailable / ErrServiceTimeout sentinels so tools can render
// distinct user-facing messages.
type ProcurementGateway interface {
	BuyerCreditCheck(ctx context.Context, buyerName string) (CreditReport, error)
	CheckStock(ctx context.Context, req StockCheckRequest) (StockAvailability, error)
	CheckPrice(ctx context.Context, req PriceCheckRequest) (PriceQuote, error)
}

// TermsExtractor answers free-form payment-terms queries against the
// indexed contract corpus.
type TermsExtractor interface {
	ExtractPaymentTerms(ctx context.Context, query string) (string, error)
}
