// Table command renders values as a one-column frame.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijlyttle/vctrs/pkg/frame"
)

var tableName string

var tableCmd = &cobra.Command{
	Use:   "table <value>...",
	Short: "Render values as a one-column frame",
	Long: `Table builds a checked percent vector, wraps it as the sole column of
a frame, and renders it with the styled viewer. The column name
defaults to the vector's kind tag.

Example:
  vctr table 0.1 0.9 NA
  vctr table --name score 0.1 0.9`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTable,
}

func init() {
	tableCmd.Flags().StringVar(&tableName, "name", "", "column name (default: kind tag)")
}

func runTable(cmd *cobra.Command, args []string) error {
	x, err := percentFromArgs(args)
	if err != nil {
		return err
	}

	var f *frame.Frame
	if tableName == "" {
		f = frame.FromVector(x)
	} else {
		f = frame.FromVectorNamed(x, tableName)
	}

	if flagJSON {
		out, err := json.Marshal(f)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(newRenderer().Render(f))
	return nil
}
