package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrNoPeerSelected = errors.New("no conversation open")
)
