// Shared helpers for vctr CLI commands.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ijlyttle/vctrs/internal/paths"
	"github.com/ijlyttle/vctrs/internal/render"
	"github.com/ijlyttle/vctrs/internal/store"
	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

// parseValues converts CLI arguments into a float64 slice. The token
// "NA" (case-insensitive) becomes the missing marker; anything else
// must parse as a number.
func parseValues(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		if strings.EqualFold(arg, vctrs.MissingToken) {
			out[i] = vctrs.Missing()
			continue
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number or %s: %w", arg, vctrs.MissingToken, vctrs.ErrType)
		}
		out[i] = v
	}
	return out, nil
}

// percentFromArgs builds a checked percent vector from CLI arguments.
func percentFromArgs(args []string) (*vctrs.Vector, error) {
	values, err := parseValues(args)
	if err != nil {
		return nil, err
	}
	return vctrs.NewPercent(values)
}

// attachStore resolves the data directory and attaches a frame store.
// The caller must defer st.Detach().
func attachStore() (*store.Store, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, cliConfig.dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st := store.New(newLogger())
	if err := st.Attach(store.Config{DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return st, nil
}

// newRenderer builds the frame viewer from the loaded config.
func newRenderer() *render.Renderer {
	return render.New(render.Options{
		MaxRows: cliConfig.maxRows,
		NoColor: cliConfig.noColor,
	})
}
