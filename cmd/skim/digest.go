package main

import (
	"fmt"

	"github.com/fwojciec/skim"
)

// Run executes the digest command.
func (c *DigestCmd) Run(deps *Dependencies) error {
	result, err := deps.Digester.Run(deps.Ctx, c.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skim.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, skim.FormatSummaries(result.Summaries))

	if result.Duplicates > 0 || result.Suppressed > 0 {
		fmt.Fprintf(deps.Stderr, "skipped %d duplicate documents, suppressed %d repeated sentences\n",
			result.Duplicates, result.Suppressed)
	}

	return nil
}
