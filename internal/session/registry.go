package session

import (
	"fmt"
	"strings"
)

// cmdFunc runs a command. args excludes the command name itself.
// It returns true when the session should end.
type cmdFunc func(s *Session, args []string) bool

type command struct {
	Name  string
	Usage string
	Desc  string

	// NeedsValues gates the command on a non-empty list. When the list is
	// empty the line is treated as a number instead, so "a" with nothing
	// entered yet is just invalid input.
	NeedsValues bool

	// TakesArg allows tokens after the name. Other commands only match a
	// line holding the bare name.
	TakesArg bool

	Run cmdFunc
}

type registry struct {
	commands map[string]command
	order    []string
}

func newRegistry() *registry {
	return &registry{commands: make(map[string]command)}
}

func (r *registry) register(cmd command) error {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return fmt.Errorf("session registry: empty command name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("session registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.commands[cmd.Name]; ok {
		return fmt.Errorf("session registry: duplicate command %q", cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	return nil
}

// resolve looks a command up by its exact name.
func (r *registry) resolve(name string) (command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// names returns the command names in registration order.
func (r *registry) names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func mustRegister(r *registry, cmds ...command) {
	for _, cmd := range cmds {
		if err := r.register(cmd); err != nil {
			panic(err)
		}
	}
}
