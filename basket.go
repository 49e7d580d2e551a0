package tayeb

// Allocation is one slice of a basket: an asset id and the percentage
// of the basket it represents.
type Allocation struct {
	Asset   string `json:"asset"`
	Percent uint8  `json:"percent"`
}

// Basket is a named collection of compliant assets with fixed
// percentage allocations. A basket is either a reusable template
// (owner-created, never funded) or a user position whose TotalValue
// grows with each investment.
type Basket struct {
	ID          uint32       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Creator     AccountID    `json:"creator"`
	Allocations []Allocation `json:"allocations"`
	IsTemplate  bool         `json:"isTemplate,omitempty"`
	TotalValue  Amount       `json:"totalValue"`
}

// validateAllocations checks the two creation-time gates: percentages
// sum to exactly 100, and every referenced asset is compliant right
// now. Nothing is allocated or mutated before both pass.
func (p *Platform) validateAllocations(allocations []Allocation) error {
	var total int
	for _, a := range allocations {
		total += int(a.Percent)
	}
	if total != 100 {
		return ErrInvalidAllocation
	}
	for _, a := range allocations {
		if !p.IsCompliant(a.Asset) {
			return ErrInvalidCoinInAllocation
		}
	}
	return nil
}

// CreateBasket creates a user basket from caller-supplied allocations.
// The basket id is allocated only after validation passes, so a failed
// submission never consumes an id.
func (p *Platform) CreateBasket(env Env, name, description string, allocations []Allocation) (uint32, error) {
	if err := p.validateAllocations(allocations); err != nil {
		return 0, err
	}
	creator := env.Caller()
	id := p.nextBasketID
	p.nextBasketID++
	p.baskets[id] = Basket{
		ID:          id,
		Name:        name,
		Description: description,
		Creator:     creator,
		Allocations: allocations,
	}
	p.userBaskets[creator] = append(p.userBaskets[creator], id)
	return id, nil
}

// CreateTemplate creates a reusable template basket. Owner only; same
// allocation validation as CreateBasket. Templates belong to the owner
// and are not appended to any user index.
func (p *Platform) CreateTemplate(env Env, name, description string, allocations []Allocation) (uint32, error) {
	if err := p.ensureOwner(env); err != nil {
		return 0, err
	}
	if err := p.validateAllocations(allocations); err != nil {
		return 0, err
	}
	id := p.nextBasketID
	p.nextBasketID++
	template := Basket{
		ID:          id,
		Name:        name,
		Description: description,
		Creator:     p.owner,
		Allocations: allocations,
		IsTemplate:  true,
	}
	p.templates[id] = template
	p.templateIDs = append(p.templateIDs, id)
	return id, nil
}

// SubscribeToTemplate instantiates a template as a user basket, copying
// its name, description and allocations, and funds it with the given
// investment. A zero investment skips the debit entirely.
func (p *Platform) SubscribeToTemplate(env Env, templateID uint32, investment Amount) (uint32, error) {
	template, ok := p.templates[templateID]
	if !ok {
		return 0, ErrETFNotFound
	}
	creator := env.Caller()
	if p.balances.balanceOf(creator).LessThan(investment) {
		return 0, ErrInsufficientBalance
	}
	if !investment.IsZero() {
		// Cannot fail: sufficiency was just checked and nothing ran in
		// between (single-threaded host).
		if err := p.balances.debitIfSufficient(creator, investment); err != nil {
			return 0, err
		}
	}
	id := p.nextBasketID
	p.nextBasketID++
	p.baskets[id] = Basket{
		ID:          id,
		Name:        template.Name,
		Description: template.Description,
		Creator:     creator,
		Allocations: append([]Allocation(nil), template.Allocations...),
		TotalValue:  investment,
	}
	p.userBaskets[creator] = append(p.userBaskets[creator], id)
	return id, nil
}

// Invest adds funds to a basket the caller created. This is the only
// path that increases a basket's TotalValue after creation.
func (p *Platform) Invest(env Env, basketID uint32, amount Amount) error {
	basket, ok := p.baskets[basketID]
	if !ok {
		return ErrETFNotFound
	}
	caller := env.Caller()
	if basket.Creator != caller {
		return ErrETFNotOwnedByUser
	}
	if err := p.balances.debitIfSufficient(caller, amount); err != nil {
		return err
	}
	basket.TotalValue = basket.TotalValue.Add(amount)
	p.baskets[basketID] = basket
	return nil
}

// Basket returns a user basket by id.
func (p *Platform) Basket(id uint32) (Basket, bool) {
	b, ok := p.baskets[id]
	return b, ok
}

// Templates returns all template baskets in creation order.
func (p *Platform) Templates() []Basket {
	templates := make([]Basket, 0, len(p.templateIDs))
	for _, id := range p.templateIDs {
		if t, ok := p.templates[id]; ok {
			templates = append(templates, t)
		}
	}
	return templates
}

// UserBaskets returns the baskets an account created or subscribed to,
// in subscription order. Ids that no longer resolve are skipped
// defensively; none should occur under correct operation.
func (p *Platform) UserBaskets(account AccountID) []Basket {
	ids := p.userBaskets[account]
	baskets := make([]Basket, 0, len(ids))
	for _, id := range ids {
		if b, ok := p.baskets[id]; ok {
			baskets = append(baskets, b)
		}
	}
	return baskets
}
