// Delete command removes a stored frame.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <frame-name>",
	Short: "Delete a stored frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	if err := st.DeleteFrame(args[0]); err != nil {
		return fmt.Errorf("delete frame: %w", err)
	}

	if !flagJSON {
		fmt.Printf("deleted %q\n", args[0])
	}
	return nil
}
