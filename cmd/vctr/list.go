// List command shows all stored frames.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored frames",
	Args:  cobra.NoArgs,
	RunE:  runFrameList,
}

func runFrameList(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	infos, err := st.ListFrames()
	if err != nil {
		return fmt.Errorf("list frames: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if len(infos) == 0 {
		fmt.Println("no frames stored")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %d x %d  %s\n", info.Name, info.Rows, info.Cols,
			info.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
