package tayeb

// ledger is the balance ledger: the sole source of truth for spendable
// funds, keyed by account. Unknown accounts read as zero.
//
// Every spending operation on the platform goes through
// debitIfSufficient, which is what keeps the no-negative-balance
// invariant out of the hands of the individual managers.
type ledger map[AccountID]Amount

// balanceOf returns the current balance, zero for unknown accounts.
func (l ledger) balanceOf(account AccountID) Amount {
	return l[account]
}

// credit unconditionally adds funds. Only the deposit path calls it,
// driven by value actually transferred to the host.
func (l ledger) credit(account AccountID, amount Amount) {
	l[account] = l[account].Add(amount)
}

// debitIfSufficient atomically checks the current stored balance and
// subtracts. It never leaves a partial update: either the full amount
// is taken or ErrInsufficientBalance is returned and nothing changed.
func (l ledger) debitIfSufficient(account AccountID, amount Amount) error {
	balance := l[account]
	if balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	l[account] = balance.Sub(amount)
	return nil
}
