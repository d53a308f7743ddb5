// Version command for the vctr CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vctr version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vctr", vctrs.Version)
	},
}
