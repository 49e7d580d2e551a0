package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
	"github.com/AbdulrahmanFiala/Tayeb/renderer"
	"github.com/google/subcommands"
)

// --- Log Command ---

type logCmd struct {
	head int
	tail int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list all commands in the journal" }
func (*logCmd) Usage() string {
	return `log [-head <n>] [-tail <n>]

  Lists the commands recorded in the journal, with options for limiting
  the output.
`
}
func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N commands.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N commands.")
}
func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	commands := j.Commands()
	if c.head > 0 && len(commands) > c.head {
		commands = commands[:c.head]
	}
	if c.tail > 0 && len(commands) > c.tail {
		commands = commands[len(commands)-c.tail:]
	}

	var md strings.Builder
	md.WriteString("# Journal\n\n")
	for _, cmd := range commands {
		env := cmd.CallEnv()
		fmt.Fprintf(&md, "- `%d` %s: %s\n", env.Height, env.From, renderer.Command(cmd))
	}
	printMarkdown(md.String())

	return subcommands.ExitSuccess
}

// --- Fmt Command ---

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the journal file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt

  Validates and formats the journal file. The command replays the whole
  journal to check that it still applies cleanly, then rewrites it
  in-place in canonical JSONL encoding.

Usage Examples:
# Rewrites the default journal file.
$ tyb fmt
`
}
func (*fmtCmd) SetFlags(f *flag.FlagSet) {}
func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := loadJournal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, err := j.Replay(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: journal does not replay cleanly: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := tayeb.SaveJournal(*journalFile, j); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", *journalFile)
	return subcommands.ExitSuccess
}
