package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
	"github.com/AbdulrahmanFiala/Tayeb/renderer"
	"github.com/google/subcommands"
)

// --- Register Asset Command ---

type registerAssetCmd struct {
	id     string
	name   string
	symbol string
	reason string
}

func (*registerAssetCmd) Name() string     { return "register-asset" }
func (*registerAssetCmd) Synopsis() string { return "register an asset as Sharia-compliant" }
func (*registerAssetCmd) Usage() string {
	return `register-asset -id <id> -name <name> -symbol <symbol> -reason <rationale>

  Registers an asset in the compliant-asset registry, or overwrites its
  record if the id is already registered. Owner only.
`
}
func (c *registerAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset identifier (e.g. BTC)")
	f.StringVar(&c.name, "name", "", "Full asset name")
	f.StringVar(&c.symbol, "symbol", "", "Trading symbol")
	f.StringVar(&c.reason, "reason", "", "Why the asset passed Sharia screening")
}
func (c *registerAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewRegisterAsset(callEnv(j, tayeb.Amount{}), c.id, c.name, c.symbol, c.reason)
	return appendCommand(j, cmd)
}

// --- Remove Asset Command ---

type removeAssetCmd struct {
	id string
}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "remove an asset from the compliant registry" }
func (*removeAssetCmd) Usage() string {
	return `remove-asset -id <id>

  Removes an asset from the compliant-asset registry. Existing baskets
  keep their allocations; the asset can no longer appear in new ones.
  Owner only.
`
}
func (c *removeAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset identifier to remove")
}
func (c *removeAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewRemoveAsset(callEnv(j, tayeb.Amount{}), c.id)
	return appendCommand(j, cmd)
}

// --- Assets Command ---

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the compliant-asset registry" }
func (*assetsCmd) Usage() string {
	return `assets

  Lists all registered Sharia-compliant assets in registration order.
`
}
func (*assetsCmd) SetFlags(f *flag.FlagSet) {}
func (*assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPlatform()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Assets(p.Assets()))
	return subcommands.ExitSuccess
}
