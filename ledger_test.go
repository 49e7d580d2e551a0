package tayeb

import (
	"errors"
	"testing"
)

func TestLedgerCreditAndBalance(t *testing.T) {
	l := make(ledger)

	if !l.balanceOf(user).IsZero() {
		t.Error("unknown account should read as zero")
	}

	l.credit(user, A(100))
	l.credit(user, A(50.25))
	if got := l.balanceOf(user); !got.Equal(A(150.25)) {
		t.Errorf("balance = %v, want 150.25", got)
	}
	if !l.balanceOf(other).IsZero() {
		t.Error("crediting one account must not touch another")
	}
}

func TestLedgerDebitIfSufficient(t *testing.T) {
	l := make(ledger)
	l.credit(user, A(100))

	if err := l.debitIfSufficient(user, A(60)); err != nil {
		t.Fatalf("debit within balance failed: %v", err)
	}
	if got := l.balanceOf(user); !got.Equal(A(40)) {
		t.Errorf("balance after debit = %v, want 40", got)
	}

	// Exact drain is allowed.
	if err := l.debitIfSufficient(user, A(40)); err != nil {
		t.Fatalf("exact debit failed: %v", err)
	}
	if !l.balanceOf(user).IsZero() {
		t.Error("balance should be zero after exact drain")
	}

	// One over is refused and leaves the balance untouched.
	l.credit(user, A(10))
	if err := l.debitIfSufficient(user, A(10.01)); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("over-debit = %v, want ErrInsufficientBalance", err)
	}
	if got := l.balanceOf(user); !got.Equal(A(10)) {
		t.Errorf("failed debit changed the balance: %v, want 10", got)
	}

	// Unknown accounts cannot be debited at all.
	if err := l.debitIfSufficient(other, A(1)); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("debit of unknown account = %v, want ErrInsufficientBalance", err)
	}
}
