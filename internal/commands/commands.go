package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

const prefix = "cmd "

// ErrMissing is returned by Execute when the line has no subcommand.
var ErrMissing = errors.New("missing subcommand")

// Command is a subcommand with its own flags. Run is called after the flags parse and reads them.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand under name (the first token after "cmd"). fs may be nil for
// commands without flags. Flag parse errors are returned by Execute rather than printed.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
	}
	fs.SetOutput(io.Discard)
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Help returns one line per command: name, flags and summary.
func (r *Registry) Help() []string {
	var out []string
	for _, n := range r.Names() {
		c := r.cmds[n]
		var flags []string
		c.FlagSet.VisitAll(func(f *flag.Flag) {
			flags = append(flags, "-"+f.Name)
		})
		line := n
		if len(flags) > 0 {
			line += " " + strings.Join(flags, " ")
		}
		if c.Summary != "" {
			line += ": " + c.Summary
		}
		out = append(out, line)
	}
	return out
}

// Parse interprets a console line. If it starts with "cmd " the rest is split on spaces
// and ok is true. Otherwise it returns nil, false.
func Parse(line string) (args []string, ok bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if rest == "" {
		return nil, true
	}
	return strings.Fields(rest), true
}

// Execute runs args[0] with args[1:] as its flags.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissing
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	// A FlagSet keeps values from the previous Execute; start each run from the defaults.
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run()
}
