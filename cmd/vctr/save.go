// Save command stores values as a named one-column frame.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ijlyttle/vctrs/pkg/frame"
)

var saveColumnName string

var saveCmd = &cobra.Command{
	Use:   "save <frame-name> <value>...",
	Short: "Save values as a named frame",
	Long: `Save builds a checked percent vector, wraps it in a one-column frame,
and stores it under the given name, replacing any previous frame with
that name.

Example:
  vctr save q3-report 0.12 0.56 NA 0.98
  vctr save q3-report --column share 0.12 0.56`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&saveColumnName, "column", "", "column name (default: kind tag)")
}

func runSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	x, err := percentFromArgs(args[1:])
	if err != nil {
		return err
	}

	var f *frame.Frame
	if saveColumnName == "" {
		f = frame.FromVector(x)
	} else {
		f = frame.FromVectorNamed(x, saveColumnName)
	}

	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	id, err := st.SaveFrame(name, f)
	if err != nil {
		return fmt.Errorf("save frame: %w", err)
	}

	if flagJSON {
		out, err := json.Marshal(map[string]any{"name": name, "frame_id": id})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("saved %q (%d rows)\n", name, f.NumRows())
	return nil
}
