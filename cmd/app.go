// Package cmd implements the CLI application to operate a Tayeb platform.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerAssetCmd{}, "assets")
	c.Register(&removeAssetCmd{}, "assets")
	c.Register(&assetsCmd{}, "assets")
	c.Register(&screenImportCmd{}, "assets")

	c.Register(&depositCmd{}, "ledger")
	c.Register(&balanceCmd{}, "ledger")
	c.Register(&investOnceCmd{}, "ledger")

	c.Register(&createBasketCmd{}, "baskets")
	c.Register(&createTemplateCmd{}, "baskets")
	c.Register(&subscribeCmd{}, "baskets")
	c.Register(&investCmd{}, "baskets")
	c.Register(&basketsCmd{}, "baskets")
	c.Register(&templatesCmd{}, "baskets")

	c.Register(&dcaCreateCmd{}, "dca")
	c.Register(&dcaExecuteCmd{}, "dca")
	c.Register(&dcaCancelCmd{}, "dca")
	c.Register(&dcaOrdersCmd{}, "dca")

	c.Register(&logCmd{}, "journal")
	c.Register(&fmtCmd{}, "journal")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "tayeb.jsonl", "Path to the journal file containing platform commands (JSONL format)")
var actor = flag.String("as", defaultActor(), "Account performing the command")
var blockHeight = flag.Int64("height", -1, "Block height of the command. Defaults to the journal length, one block per command")
var timestamp = flag.Int64("now", 0, "Unix-milli timestamp of the command. Defaults to the current time")

func defaultActor() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "owner"
}

// loadJournal reads the app journal file. If the file does not exist,
// it starts a new journal owned by the current actor and writes its
// init command to disk.
func loadJournal() (*tayeb.Journal, error) {
	j, err := tayeb.LoadJournal(*journalFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, journal %q does not exist, starting a new one owned by %q", *journalFile, *actor)
		j = tayeb.NewJournal(callEnv(nil, tayeb.Amount{}))
		if err := tayeb.SaveJournal(*journalFile, j); err != nil {
			return nil, err
		}
		return j, nil
	}
	return j, err
}

// loadPlatform replays the app journal into the current platform state.
func loadPlatform() (*tayeb.Platform, error) {
	j, err := loadJournal()
	if err != nil {
		return nil, err
	}
	return j.Replay()
}

// callEnv builds the execution context for a new command, honoring the
// -as, -height and -now overrides.
func callEnv(j *tayeb.Journal, value tayeb.Amount) tayeb.CallEnv {
	var height uint32
	if j != nil {
		height = uint32(j.Len())
	}
	if *blockHeight >= 0 {
		height = uint32(*blockHeight)
	}
	now := uint64(time.Now().UnixMilli())
	if *timestamp > 0 {
		now = uint64(*timestamp)
	}
	return tayeb.CallEnv{From: tayeb.AccountID(*actor), Height: height, Now: now, Value: value}
}

// appendCommand validates a command against the replayed state and, on
// success, appends it to the app journal file. A command that fails
// validation leaves the file untouched.
func appendCommand(j *tayeb.Journal, cmd tayeb.Command) subcommands.ExitStatus {
	p, err := j.Replay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying journal %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	if err := cmd.Apply(p); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	j.Append(cmd)

	if err := tayeb.AppendCommand(*journalFile, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s to %s\n", cmd.What(), *journalFile)
	return subcommands.ExitSuccess
}
