package blockfall

import (
	"errors"
	"fmt"
	"strings"
)

// Command is an abstract player input.
type Command int

const (
	MoveLeft Command = iota + 1
	MoveRight
	SoftDropStep
	HardDrop
	RotateCW
	RotateCCW
	Restart
)

var commandNames = map[Command]string{
	MoveLeft:     "left",
	MoveRight:    "right",
	SoftDropStep: "down",
	HardDrop:     "drop",
	RotateCW:     "cw",
	RotateCCW:    "ccw",
	Restart:      "restart",
}

// aliases accepted on the wire besides the canonical names
var commandAliases = map[string]Command{
	"rotate":   RotateCW,
	"harddrop": HardDrop,
	"up":       HardDrop,
}

var ErrUnknownCommand = errors.New("unknown command")

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps an input key name to a command.
func ParseCommand(s string) (Command, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, name := range commandNames {
		if name == key {
			return c, nil
		}
	}
	if c, ok := commandAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}
