package tayeb

// DCAOrder is a recurring instruction to spend a fixed amount of the
// owner's balance into a single compliant asset every IntervalBlocks
// blocks, up to TotalIntervals times (zero means unlimited).
//
// IsActive transitions true to false exactly once: on the execution
// that reaches the interval limit, or on cancellation by the owner.
type DCAOrder struct {
	ID                  uint32    `json:"id"`
	Owner               AccountID `json:"owner"`
	Asset               string    `json:"asset"`
	AmountPerInterval   Amount    `json:"amountPerInterval"`
	IntervalBlocks      uint32    `json:"intervalBlocks"`
	IntervalsCompleted  uint32    `json:"intervalsCompleted"`
	TotalIntervals      uint32    `json:"totalIntervals"`
	NextExecutionHeight uint32    `json:"nextExecutionHeight"`
	StartTimestamp      uint64    `json:"startTimestamp"`
	IsActive            bool      `json:"isActive"`
}

// CreateDCAOrder registers a recurring purchase order for the caller.
// No funds are reserved: sufficiency is checked fresh at each
// execution. The first execution becomes possible IntervalBlocks after
// the current height, and never before startTimestamp.
func (p *Platform) CreateDCAOrder(env Env, assetID string, amountPerInterval Amount, intervalBlocks, totalIntervals uint32, startTimestamp uint64) (uint32, error) {
	if !p.IsCompliant(assetID) {
		return 0, ErrNotShariaCompliant
	}
	if startTimestamp < env.Timestamp() {
		return 0, ErrInvalidStartTime
	}
	owner := env.Caller()
	id := p.nextOrderID
	p.nextOrderID++
	p.orders[id] = DCAOrder{
		ID:                  id,
		Owner:               owner,
		Asset:               assetID,
		AmountPerInterval:   amountPerInterval,
		IntervalBlocks:      intervalBlocks,
		TotalIntervals:      totalIntervals,
		NextExecutionHeight: env.BlockHeight() + intervalBlocks,
		StartTimestamp:      startTimestamp,
		IsActive:            true,
	}
	p.userOrders[owner] = append(p.userOrders[owner], id)
	return id, nil
}

// ExecuteDCAOrder runs one interval of an order. Anyone may call it:
// the owner pre-authorized the flow by creating the order, and funds
// only ever move from the owner's own balance, so letting a third
// party pay for the trigger is safe.
func (p *Platform) ExecuteDCAOrder(env Env, orderID uint32) error {
	order, ok := p.orders[orderID]
	if !ok {
		return ErrDCAOrderNotFound
	}
	if !order.IsActive {
		return ErrOrderInactive
	}
	if env.Timestamp() < order.StartTimestamp {
		return ErrOrderNotReady
	}
	if env.BlockHeight() < order.NextExecutionHeight {
		return ErrOrderNotReady
	}
	if err := p.balances.debitIfSufficient(order.Owner, order.AmountPerInterval); err != nil {
		return err
	}
	order.IntervalsCompleted++
	order.NextExecutionHeight = env.BlockHeight() + order.IntervalBlocks
	if order.TotalIntervals > 0 && order.IntervalsCompleted >= order.TotalIntervals {
		order.IsActive = false
	}
	p.orders[orderID] = order
	return nil
}

// CancelDCAOrder deactivates an order. Only the owner may cancel.
// Cancelling an already-inactive order succeeds silently.
func (p *Platform) CancelDCAOrder(env Env, orderID uint32) error {
	order, ok := p.orders[orderID]
	if !ok {
		return ErrDCAOrderNotFound
	}
	if order.Owner != env.Caller() {
		return ErrUnauthorized
	}
	order.IsActive = false
	p.orders[orderID] = order
	return nil
}

// Order returns a DCA order by id.
func (p *Platform) Order(id uint32) (DCAOrder, bool) {
	o, ok := p.orders[id]
	return o, ok
}

// UserOrders returns the DCA orders an account created, in creation
// order. The index is append-only: completed and cancelled orders stay
// listed.
func (p *Platform) UserOrders(account AccountID) []DCAOrder {
	ids := p.userOrders[account]
	orders := make([]DCAOrder, 0, len(ids))
	for _, id := range ids {
		if o, ok := p.orders[id]; ok {
			orders = append(orders, o)
		}
	}
	return orders
}
