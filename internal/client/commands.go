package client

import (
	"fmt"
	"strings"
)

// command is one parsed input line: a lower-cased verb and its
// whitespace-separated arguments.
type command struct {
	name string
	args []string
}

// rest joins the arguments starting at i back into free text.
func (c command) rest(i int) string {
	if i >= len(c.args) {
		return ""
	}
	return strings.Join(c.args[i:], " ")
}

type commandInfo struct {
	usage   string
	minArgs int
	help    string
}

var commands = map[string]commandInfo{
	"help":    {usage: "help", help: "show this help"},
	"version": {usage: "version", help: "show build information"},
	"signup":  {usage: "signup <email> <password> <full name>", minArgs: 3, help: "create an account and log in"},
	"login":   {usage: "login <email> <password>", minArgs: 2, help: "log in"},
	"logout":  {usage: "logout", help: "log out and forget the stored session"},
	"whoami":  {usage: "whoami", help: "show the current user"},
	"profile": {usage: "profile name|bio <text>", minArgs: 2, help: "update the profile"},
	"users":   {usage: "users [filter]", help: "refresh and list peers, optionally filtered by name"},
	"online":  {usage: "online", help: "list peers that are online"},
	"open":    {usage: "open <peer id>", minArgs: 1, help: "open the conversation with a peer"},
	"close":   {usage: "close", help: "close the current conversation"},
	"send":    {usage: "send <text>", minArgs: 1, help: "send a message to the open conversation"},
	"image":   {usage: "image <path> [caption]", minArgs: 1, help: "send an image file to the open conversation"},
	"history": {usage: "history", help: "print the open conversation"},
	"media":   {usage: "media", help: "list images of the open conversation"},
	"quit":    {usage: "quit", help: "exit"},
}

var commandOrder = []string{
	"signup", "login", "logout", "whoami", "profile",
	"users", "online", "open", "close", "send", "image", "history", "media",
	"version", "help", "quit",
}

// parseCommand splits line into a command. An empty line yields a zero
// command and no error.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, nil
	}

	cmd := command{name: strings.ToLower(fields[0]), args: fields[1:]}
	if cmd.name == "exit" {
		cmd.name = "quit"
	}

	info, ok := commands[cmd.name]
	if !ok {
		return command{}, fmt.Errorf("%w: %q, type 'help'", ErrUnknownCommand, fields[0])
	}
	if len(cmd.args) < info.minArgs {
		return command{}, fmt.Errorf("%w: usage: %s", ErrUsage, info.usage)
	}

	return cmd, nil
}

func helpText() string {
	var b strings.Builder
	for _, name := range commandOrder {
		info := commands[name]
		fmt.Fprintf(&b, "  %-40s %s\n", info.usage, info.help)
	}
	return b.String()
}
