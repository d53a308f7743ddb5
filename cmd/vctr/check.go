// Check command validates values against the percent kind.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <value>...",
	Short: "Validate values against the percent kind",
	Long: `Check runs the given values through checked construction. Values must
be numbers in [0, 1]; NA marks a missing element and is exempt from the
range check.

Example:
  vctr check 0 0.5 1
  vctr check 0.25 NA 0.75`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	x, err := percentFromArgs(args)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.Marshal(map[string]any{
			"ok":     true,
			"kind":   x.Tag(),
			"length": x.Len(),
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("ok: %d %s value(s)\n", x.Len(), x.Tag())
	return nil
}
