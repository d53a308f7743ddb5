// Load command renders a stored frame.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <frame-name>",
	Short: "Load and display a stored frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	f, err := st.LoadFrame(args[0])
	if err != nil {
		return fmt.Errorf("load frame: %w", err)
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
