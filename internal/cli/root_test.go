package cli

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/rileyhilliard/tally/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnknownCommandError(t *testing.T) {
	assert.True(t, isUnknownCommandError(stderrors.New(`unknown command "togle" for "tally"`)))
	assert.True(t, isUnknownCommandError(stderrors.New(`unknown flag: --jsn`)))
	assert.False(t, isUnknownCommandError(stderrors.New("habit 4 is out of range")))
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{`unknown command "togle" for "tally"`, "togle"},
		{`unknown command "show-all" for "tally"`, "show-all"},
		{"unknown command togle", ""},
		{`unknown command "togle`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(stderrors.New(tt.msg)))
		})
	}
}

func TestUnknownCommandError(t *testing.T) {
	err := unknownCommandError(stderrors.New(`unknown command "togle" for "tally"`))
	assert.Equal(t, errors.ErrInput, err.Code)
	assert.Equal(t, "Unknown command 'togle'", err.Message)
	assert.Equal(t, "Did you mean 'toggle'?", err.Suggestion)

	err = unknownCommandError(stderrors.New(`unknown command "zzzzzz" for "tally"`))
	assert.Contains(t, err.Suggestion, "tally --help")

	err = unknownCommandError(stderrors.New(`unknown flag: --jsn`))
	assert.Equal(t, "unknown flag: --jsn", err.Message)
	assert.Contains(t, err.Suggestion, "available flags")
}

func TestUnknownCommand_ReturnsError(t *testing.T) {
	setupWorkspace(t)

	_, err := runCLI(t, "togle", "1", "1")
	require.Error(t, err)
	assert.True(t, isUnknownCommandError(err))
	assert.Equal(t, "togle", extractUnknownCommand(err))
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"board", "show", "stats", "toggle", "rename", "start", "reset", "chart", "export", "init", "config", "completion", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "no-color", "ephemeral", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New(errors.ErrInput, "No habit named 'Swim'", "Run 'tally show' to list habits"))

	out := buf.String()
	assert.Contains(t, out, "✗ No habit named 'Swim'")
	assert.Contains(t, out, "Run 'tally show' to list habits")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"), "trailing newline of the error isn't doubled")
}
