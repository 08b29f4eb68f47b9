package tetris

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Command -trimprefix=Cmd

// Command is a discrete input accepted by Game.Apply.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotateCW
	CmdRotateCCW
	CmdHardDrop
	CmdRestart
)

// Commands returns every command except CmdNone.
func Commands() []Command {
	return []Command{CmdMoveLeft, CmdMoveRight, CmdSoftDrop, CmdRotateCW, CmdRotateCCW, CmdHardDrop, CmdRestart}
}

// ParseCommand matches a command name such as "MoveLeft" or "hard-drop".
func ParseCommand(s string) (Command, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, c := range Commands() {
		if strings.ToLower(c.String()) == key {
			return c, nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", s)
}

// Apply runs cmd against the game. Unknown commands are ignored.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case CmdMoveLeft:
		g.Move(-1)
	case CmdMoveRight:
		g.Move(1)
	case CmdSoftDrop:
		g.SoftDrop()
	case CmdRotateCW:
		g.Rotate(1)
	case CmdRotateCCW:
		g.Rotate(-1)
	case CmdHardDrop:
		g.HardDrop()
	case CmdRestart:
		g.Restart()
	}
}
