package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
	"github.com/AbdulrahmanFiala/Tayeb/renderer"
	"github.com/google/subcommands"
)

// parseAllocations parses the -alloc flag format "BTC:60,ETH:40".
func parseAllocations(s string) ([]tayeb.Allocation, error) {
	var allocations []tayeb.Allocation
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		asset, percent, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid allocation %q, expected <asset>:<percent>", part)
		}
		pct, err := strconv.ParseUint(strings.TrimSpace(percent), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage in allocation %q: %w", part, err)
		}
		allocations = append(allocations, tayeb.Allocation{Asset: strings.TrimSpace(asset), Percent: uint8(pct)})
	}
	if len(allocations) == 0 {
		return nil, fmt.Errorf("no allocations given")
	}
	return allocations, nil
}

// --- Create Basket Command ---

type createBasketCmd struct {
	name        string
	description string
	alloc       string
}

func (*createBasketCmd) Name() string     { return "create-basket" }
func (*createBasketCmd) Synopsis() string { return "create a custom basket of compliant assets" }
func (*createBasketCmd) Usage() string {
	return `create-basket -name <name> -alloc <asset:pct,...> [-desc <description>]

  Creates a basket owned by the caller. The percentages must sum to 100
  and every asset must be registered as compliant.

Usage Examples:
$ tyb create-basket -name "My Halal Mix" -alloc "BTC:60,ETH:40"
`
}
func (c *createBasketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Basket name")
	f.StringVar(&c.description, "desc", "", "An optional description")
	f.StringVar(&c.alloc, "alloc", "", "Comma-separated allocations, e.g. BTC:60,ETH:40")
}
func (c *createBasketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.alloc == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	allocations, err := parseAllocations(c.alloc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewCreateBasket(callEnv(j, tayeb.Amount{}), c.name, c.description, allocations)
	return appendCommand(j, cmd)
}

// --- Create Template Command ---

type createTemplateCmd struct {
	name        string
	description string
	alloc       string
}

func (*createTemplateCmd) Name() string     { return "create-template" }
func (*createTemplateCmd) Synopsis() string { return "create a curated basket template" }
func (*createTemplateCmd) Usage() string {
	return `create-template -name <name> -alloc <asset:pct,...> [-desc <description>]

  Creates a template that any user can subscribe to. Owner only.
`
}
func (c *createTemplateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Template name")
	f.StringVar(&c.description, "desc", "", "An optional description")
	f.StringVar(&c.alloc, "alloc", "", "Comma-separated allocations, e.g. BTC:50,ETH:50")
}
func (c *createTemplateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.alloc == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	allocations, err := parseAllocations(c.alloc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	j, err := loadJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cmd := tayeb.NewCreateTemplate(callEnv(j, tayeb.Amount{}), c.name, c.description, allocations)
	return appendCommand(j, cmd)
}

// --- Subscribe Command ---

type subscribeCmd struct {
	template uint64
	amount   string
}

func (*subscribeCmd) Name() string     { return "subscribe" }
func (*subscribeCmd) Synopsis() string { return "subscribe to a template, creating a funded basket" }
func (*subscribeCmd) Usage() string {
	return `subscribe -template <id> [-a <amount>]

  Copies a template's allocations into a new basket owned by the
  caller, funding it from the caller's balance. A zero amount creates
  an empty basket.
`
}
func (c *subscribeCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.template, "template", 0, "Template identifier")
	f.StringVar(&c.amount, "a", "0", "Initial investment, taken from the caller's balance")
}
func (c *subscribeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.template == 0 {
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
	cmd := tayeb.NewSubscribe(callEnv(j, tayeb.Amount{}), uint32(c.template), amount)
	return appendCommand(j, cmd)
}

// --- Invest Command ---

type investCmd struct {
	basket uint64
	amount string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "invest additional funds into an owned basket" }
func (*investCmd) Usage() string {
	return `invest -basket <id> -a <amount>

  Debits the caller's balance and grows the basket's total value.
  The basket must be owned by the caller.
`
}
func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.basket, "basket", 0, "Basket identifier")
	f.StringVar(&c.amount, "a", "", "Amount to invest")
}
func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.basket == 0 {
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
	cmd := tayeb.NewInvest(callEnv(j, tayeb.Amount{}), uint32(c.basket), amount)
	return appendCommand(j, cmd)
}

// --- Baskets Command ---

type basketsCmd struct {
	account string
}

func (*basketsCmd) Name() string     { return "baskets" }
func (*basketsCmd) Synopsis() string { return "list an account's baskets" }
func (*basketsCmd) Usage() string {
	return `baskets [-account <id>]

  Lists the baskets owned by an account. Defaults to the current actor.
`
}
func (c *basketsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to inspect. Defaults to the -as actor")
}
func (c *basketsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account := tayeb.AccountID(c.account)
	if account == "" {
		account = tayeb.AccountID(*actor)
	}

	p, err := loadPlatform()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Baskets("Baskets", p.UserBaskets(account)))
	return subcommands.ExitSuccess
}

// --- Templates Command ---

type templatesCmd struct{}

func (*templatesCmd) Name() string     { return "templates" }
func (*templatesCmd) Synopsis() string { return "list the available basket templates" }
func (*templatesCmd) Usage() string {
	return `templates

  Lists all curated basket templates, built-in and owner-created.
`
}
func (*templatesCmd) SetFlags(f *flag.FlagSet) {}
func (*templatesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := loadPlatform()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Baskets("Templates", p.Templates()))
	return subcommands.ExitSuccess
}
