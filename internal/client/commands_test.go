package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    command
		wantErr error
	}{
		{name: "empty", line: "   ", want: command{}},
		{name: "no args", line: "users", want: command{name: "users", args: []string{}}},
		{name: "case and spaces", line: "  LOGIN  a@b.c   pw ", want: command{name: "login", args: []string{"a@b.c", "pw"}}},
		{name: "exit alias", line: "exit", want: command{name: "quit", args: []string{}}},
		{name: "unknown", line: "dance now", wantErr: ErrUnknownCommand},
		{name: "missing args", line: "login a@b.c", wantErr: ErrUsage},
		{name: "send needs text", line: "send", wantErr: ErrUsage},
		{name: "profile needs value", line: "profile bio", wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand_Rest(t *testing.T) {
	cmd, err := parseCommand("signup bob@example.com pw Bob   The Builder")
	require.NoError(t, err)

	assert.Equal(t, "Bob The Builder", cmd.rest(2))
	assert.Equal(t, "", cmd.rest(10))
}

func TestHelpText_ListsEveryCommand(t *testing.T) {
	text := helpText()
	for name, info := range commands {
		assert.Contains(t, text, info.usage, name)
	}
	assert.Len(t, commandOrder, len(commands))
}
