// Package renderer formats platform state as markdown reports. It is
// pure string building: no I/O, no state.
package renderer

import (
	"fmt"
	"strings"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
)

// mdRenderer accumulates a markdown report.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// Assets renders the compliant-asset registry as a markdown table, in
// registration order.
func Assets(records []tayeb.AssetRecord) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("## Compliant Assets\n\n")
	if len(records) == 0 {
		r.Printf("No assets registered.\n")
		return r.String()
	}
	r.Printf("| ID | Name | Symbol | Compliance Rationale |\n")
	r.Printf("|:---|:---|:---|:---|\n")
	for _, rec := range records {
		r.Printf("| %s | %s | %s | %s |\n", rec.ID, rec.Name, rec.Symbol, rec.ComplianceReason)
	}
	return r.String()
}

// Baskets renders a list of baskets (templates or user positions) as a
// markdown table. Allocations are folded into a compact "BTC 40% ETH 60%"
// form.
func Baskets(title string, baskets []tayeb.Basket) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("## %s\n\n", title)
	if len(baskets) == 0 {
		r.Printf("None.\n")
		return r.String()
	}
	r.Printf("| ID | Name | Allocations | Total Value |\n")
	r.Printf("|---:|:---|:---|---:|\n")
	for _, b := range baskets {
		r.Printf("| %d | %s | %s | %s |\n", b.ID, b.Name, allocations(b.Allocations), b.TotalValue)
	}
	return r.String()
}

// Basket renders a single basket in full, description included.
func Basket(b tayeb.Basket) string {
	r := &mdRenderer{&strings.Builder{}}
	kind := "Basket"
	if b.IsTemplate {
		kind = "Template"
	}
	r.Printf("## %s %d: %s\n\n", kind, b.ID, b.Name)
	if b.Description != "" {
		r.Printf("%s\n\n", b.Description)
	}
	r.Printf("- Creator: %s\n", b.Creator)
	r.Printf("- Total value: %s\n\n", b.TotalValue)
	r.Printf("| Asset | Percent |\n")
	r.Printf("|:---|---:|\n")
	for _, a := range b.Allocations {
		r.Printf("| %s | %d%% |\n", a.Asset, a.Percent)
	}
	return r.String()
}

// Orders renders DCA orders as a markdown table.
func Orders(orders []tayeb.DCAOrder) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("## DCA Orders\n\n")
	if len(orders) == 0 {
		r.Printf("None.\n")
		return r.String()
	}
	r.Printf("| ID | Asset | Per Interval | Every | Done | Next Height | Status |\n")
	r.Printf("|---:|:---|---:|---:|:---|---:|:---|\n")
	for _, o := range orders {
		r.Printf("| %d | %s | %s | %d blocks | %s | %d | %s |\n",
			o.ID, o.Asset, o.AmountPerInterval, o.IntervalBlocks,
			progress(o), o.NextExecutionHeight, status(o))
	}
	return r.String()
}

// Balance renders a single account balance line.
func Balance(account tayeb.AccountID, balance tayeb.Amount) string {
	return fmt.Sprintf("Balance of %s: **%s**\n", account, balance)
}

// Command renders a one-line description of a journal command.
func Command(cmd tayeb.Command) string {
	switch v := cmd.(type) {
	case tayeb.Init:
		return fmt.Sprintf("Platform initialized by %s", v.Caller)
	case tayeb.RegisterAsset:
		return fmt.Sprintf("Registered compliant asset %s (%s)", v.Asset, v.Name)
	case tayeb.RemoveAsset:
		return fmt.Sprintf("Removed asset %s", v.Asset)
	case tayeb.Deposit:
		return fmt.Sprintf("Deposited %s to %s", v.Amount, v.Caller)
	case tayeb.CreateBasket:
		return fmt.Sprintf("Created basket %q with %d allocations", v.Name, len(v.Allocations))
	case tayeb.CreateTemplate:
		return fmt.Sprintf("Created template %q with %d allocations", v.Name, len(v.Allocations))
	case tayeb.Subscribe:
		return fmt.Sprintf("Subscribed to template %d for %s", v.Template, v.Investment)
	case tayeb.Invest:
		return fmt.Sprintf("Invested %s into basket %d", v.Amount, v.Basket)
	case tayeb.InvestOnce:
		return fmt.Sprintf("One-off investment of %s into %s", v.Amount, v.Asset)
	case tayeb.DCACreate:
		return fmt.Sprintf("Created DCA order: %s of %s every %d blocks", v.AmountPerInterval, v.Asset, v.IntervalBlocks)
	case tayeb.DCAExecute:
		return fmt.Sprintf("Executed DCA order %d", v.Order)
	case tayeb.DCACancel:
		return fmt.Sprintf("Cancelled DCA order %d", v.Order)
	default:
		return string(cmd.What())
	}
}

func allocations(as []tayeb.Allocation) string {
	parts := make([]string, 0, len(as))
	for _, a := range as {
		parts = append(parts, fmt.Sprintf("%s %d%%", a.Asset, a.Percent))
	}
	return strings.Join(parts, " ")
}

func progress(o tayeb.DCAOrder) string {
	if o.TotalIntervals == 0 {
		return fmt.Sprintf("%d/∞", o.IntervalsCompleted)
	}
	return fmt.Sprintf("%d/%d", o.IntervalsCompleted, o.TotalIntervals)
}

func status(o tayeb.DCAOrder) string {
	if o.IsActive {
		return "active"
	}
	return "inactive"
}
