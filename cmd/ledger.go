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

// --- Deposit Command ---

type depositCmd struct {
	amount string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit funds into the caller's balance" }
func (*depositCmd) Usage() string {
	return `deposit -a <amount>

  Credits the caller's free balance with the attached amount.
`
}
func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount to deposit")
}
func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := tayeb.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	if amount.IsZero() {
		f.Usage()
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewDeposit(callEnv(j, amount))
	return appendCommand(j, cmd)
}

// --- Balance Command ---

type balanceCmd struct {
	account string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show an account's free balance" }
func (*balanceCmd) Usage() string {
	return `balance [-account <id>]

  Shows the free balance of an account. Defaults to the current actor.
`
}
func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to inspect. Defaults to the -as actor")
}
func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account := tayeb.AccountID(c.account)
	if account == "" {
		account = tayeb.AccountID(*actor)
	}

	p, err := loadPlatform()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Balance(account, p.BalanceOf(account)))
	return subcommands.ExitSuccess
}

// --- Invest Once Command ---

type investOnceCmd struct {
	asset  string
	amount string
}

func (*investOnceCmd) Name() string     { return "invest-once" }
func (*investOnceCmd) Synopsis() string { return "make a one-time investment in a compliant asset" }
func (*investOnceCmd) Usage() string {
	return `invest-once -asset <id> -a <amount>

  Debits the caller's balance for a one-time investment in a single
  compliant asset, outside of any basket.
`
}
func (c *investOnceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Compliant asset to invest in")
	f.StringVar(&c.amount, "a", "", "Amount to invest")
}
func (c *investOnceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := tayeb.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewInvestOnce(callEnv(j, tayeb.Amount{}), c.asset, amount)
	return appendCommand(j, cmd)
}
