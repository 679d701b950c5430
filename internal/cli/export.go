package cli

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/rileyhilliard/tally/internal/tracker"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// exportCommand writes the whole state (habits, grid, start) in the chosen
// format. The JSON form is the same shape the store persists.
func exportCommand(ctx context.Context, w io.Writer, format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != FormatJSON && format != FormatYAML {
		return errors.New(errors.ErrInput,
			"Unknown export format: "+format,
			"Use --format json or --format yaml")
	}

	a, err := openApp(ctx, appOptions{})
	if err != nil {
		return err
	}
	defer a.Close()

	return writeState(w, format, a.tracker.State())
}

func writeState(w io.Writer, format string, s tracker.State) error {
	if s.Habits == nil {
		s.Habits = []string{}
	}
	if s.Grid == nil {
		s.Grid = [][]bool{}
	}

	var err error
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(s)
		if err == nil {
			err = enc.Close()
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(s)
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Failed to write export",
			"Check the output destination is writable")
	}
	return nil
}
