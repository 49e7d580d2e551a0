package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
	"github.com/google/subcommands"
)

// screenImportCmd imports a screening provider feed into the registry.
type screenImportCmd struct {
	url string
}

func (*screenImportCmd) Name() string     { return "screen-import" }
func (*screenImportCmd) Synopsis() string { return "import compliant assets from a screening feed" }
func (*screenImportCmd) Usage() string {
	return `screen-import -url <feed_url>

  Fetches a screening provider feed and registers every compliant
  verdict as an asset. Each registration is one journal command, so an
  import is replayable. Owner only.
`
}
func (c *screenImportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "URL of the screening feed (JSON)")
}
func (c *screenImportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	records, err := tayeb.FetchScreeningFeed(http.DefaultClient, c.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching screening feed: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: the feed contains no compliant verdicts.")
		return subcommands.ExitSuccess
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for _, r := range records {
		cmd := tayeb.NewRegisterAsset(callEnv(j, tayeb.Amount{}), r.ID, r.Name, r.Symbol, r.ComplianceReason)
		if status := appendCommand(j, cmd); status != subcommands.ExitSuccess {
			return status
		}
	}

	fmt.Printf("Imported %d compliant assets.\n", len(records))
	return subcommands.ExitSuccess
}
