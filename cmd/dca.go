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

// --- DCA Create Command ---

type dcaCreateCmd struct {
	asset    string
	amount   string
	interval uint64
	total    uint64
	start    uint64
}

func (*dcaCreateCmd) Name() string     { return "dca-create" }
func (*dcaCreateCmd) Synopsis() string { return "create a dollar-cost-averaging order" }
func (*dcaCreateCmd) Usage() string {
	return `dca-create -asset <id> -a <amount> -interval <blocks> [-total <n>] [-start <unix_milli>]

  Creates an order that invests a fixed amount into a compliant asset
  every <interval> blocks. A total of 0 runs until cancelled. The start
  timestamp must not be in the past.
`
}
func (c *dcaCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "asset", "", "Compliant asset to invest in")
	f.StringVar(&c.amount, "a", "", "Amount invested at each interval")
	f.Uint64Var(&c.interval, "interval", 0, "Blocks between executions")
	f.Uint64Var(&c.total, "total", 0, "Total number of intervals, 0 for unbounded")
	f.Uint64Var(&c.start, "start", 0, "Earliest execution time (unix-milli). Defaults to now")
}
func (c *dcaCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.interval == 0 {
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
	env := callEnv(j, tayeb.Amount{})
	start := c.start
	if start == 0 {
		start = env.Now
	}
	cmd := tayeb.NewDCACreate(env, c.asset, amount, uint32(c.interval), uint32(c.total), start)
	return appendCommand(j, cmd)
}

// --- DCA Execute Command ---

type dcaExecuteCmd struct {
	order uint64
}

func (*dcaExecuteCmd) Name() string     { return "dca-execute" }
func (*dcaExecuteCmd) Synopsis() string { return "execute a due dollar-cost-averaging order" }
func (*dcaExecuteCmd) Usage() string {
	return `dca-execute -order <id>

  Executes one interval of a due order. Anyone may trigger the
  execution; the debit always hits the order owner's balance.
`
}
func (c *dcaExecuteCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.order, "order", 0, "Order identifier")
}
func (c *dcaExecuteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.order == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewDCAExecute(callEnv(j, tayeb.Amount{}), uint32(c.order))
	return appendCommand(j, cmd)
}

// --- DCA Cancel Command ---

type dcaCancelCmd struct {
	order uint64
}

func (*dcaCancelCmd) Name() string     { return "dca-cancel" }
func (*dcaCancelCmd) Synopsis() string { return "cancel a dollar-cost-averaging order" }
func (*dcaCancelCmd) Usage() string {
	return `dca-cancel -order <id>

  Deactivates an order. Only the order owner may cancel; cancelling an
  already inactive order is a no-op.
`
}
func (c *dcaCancelCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.order, "order", 0, "Order identifier")
}
func (c *dcaCancelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.order == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewDCACancel(callEnv(j, tayeb.Amount{}), uint32(c.order))
	return appendCommand(j, cmd)
}

// --- DCA Orders Command ---

type dcaOrdersCmd struct {
	account string
}

func (*dcaOrdersCmd) Name() string     { return "dca-orders" }
func (*dcaOrdersCmd) Synopsis() string { return "list an account's dollar-cost-averaging orders" }
func (*dcaOrdersCmd) Usage() string {
	return `dca-orders [-account <id>]

  Lists the orders owned by an account with their progress and status.
  Defaults to the current actor.
`
}
func (c *dcaOrdersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to inspect. Defaults to the -as actor")
}
func (c *dcaOrdersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account := tayeb.AccountID(c.account)
	if account == "" {
		account = tayeb.AccountID(*actor)
	}

	p, err := loadPlatform()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Orders(p.UserOrders(account)))
	return subcommands.ExitSuccess
}
