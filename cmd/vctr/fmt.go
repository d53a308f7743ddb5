// Fmt command prints a percent vector's display form.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <value>...",
	Short: "Format values as a percent vector",
	Long: `Fmt builds a checked percent vector and prints its banner and
formatted elements.

Example:
  vctr fmt 0 0.3333 0.6666 1 NA`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func runFmt(cmd *cobra.Command, args []string) error {
	x, err := percentFromArgs(args)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.Marshal(map[string]any{
			"kind":   x.Tag(),
			"values": x.Format(),
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	x.Print(os.Stdout)
	return nil
}
