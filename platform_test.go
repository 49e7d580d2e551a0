package tayeb

import (
	"errors"
	"testing"
)

func TestNewSeedsTemplates(t *testing.T) {
	p := New(owner)

	templates := p.Templates()
	if len(templates) != 3 {
		t.Fatalf("new platform has %d templates, want 3", len(templates))
	}

	wantNames := []string{"Major Sharia Coins ETF", "Sharia Stablecoins ETF", "DeFi Sharia ETF"}
	for i, tmpl := range templates {
		if tmpl.Name != wantNames[i] {
			t.Errorf("template %d is %q, want %q", i, tmpl.Name, wantNames[i])
		}
		if tmpl.ID != uint32(i+1) {
			t.Errorf("template %q has id %d, want %d", tmpl.Name, tmpl.ID, i+1)
		}
		if !tmpl.IsTemplate {
			t.Errorf("template %q is not flagged as a template", tmpl.Name)
		}
		if tmpl.Creator != owner {
			t.Errorf("template %q creator = %q, want the owner", tmpl.Name, tmpl.Creator)
		}
		var total int
		for _, a := range tmpl.Allocations {
			total += int(a.Percent)
		}
		if total != 100 {
			t.Errorf("template %q allocations sum to %d, want 100", tmpl.Name, total)
		}
	}
}

func TestDeposit(t *testing.T) {
	p := New(owner)

	p.Deposit(envValue(user, 1, 1000, A(250)))
	p.Deposit(envValue(user, 2, 2000, A(50)))
	if got := p.BalanceOf(user); !got.Equal(A(300)) {
		t.Errorf("balance = %v, want 300", got)
	}
	if !p.BalanceOf(other).IsZero() {
		t.Error("deposits must only credit the caller")
	}
}

func TestInvestOnce(t *testing.T) {
	p := newTestPlatform(t)
	fund(p, user, A(100))

	if err := p.InvestOnce(env(user, 2, 2000), "DOGE", A(10)); !errors.Is(err, ErrNotShariaCompliant) {
		t.Errorf("investment in unknown asset = %v, want ErrNotShariaCompliant", err)
	}
	if err := p.InvestOnce(env(user, 2, 2000), "BTC", A(150)); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("over-investment = %v, want ErrInsufficientBalance", err)
	}
	if got := p.BalanceOf(user); !got.Equal(A(100)) {
		t.Errorf("failed investments should not move funds, balance = %v", got)
	}

	if err := p.InvestOnce(env(user, 2, 2000), "BTC", A(60)); err != nil {
		t.Fatalf("InvestOnce failed: %v", err)
	}
	if got := p.BalanceOf(user); !got.Equal(A(40)) {
		t.Errorf("balance after investment = %v, want 40", got)
	}
}
