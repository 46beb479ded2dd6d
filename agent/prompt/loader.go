package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/payment_terms.txt
	paymentTermsRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	PaymentTerms string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		PaymentTerms: strings.TrimSpace(paymentTermsRaw),
	}
}
