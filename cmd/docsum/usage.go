package main

import (
	"fmt"

	"github.com/fwojciec/docsum"
)

// Run executes the usage command.
func (c *UsageCmd) Run(deps *Dependencies) error {
	total, err := deps.Usage.Usage(deps.Ctx)
	if err != nil {
		return fmt.Errorf("failed to read usage: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Documents checked: %d\n", total)
	fmt.Fprintf(deps.Stdout, "Billing summary: %d %s\n",
		total*docsum.BillingRatePerDocument, docsum.BillingCurrency)

	return nil
}
