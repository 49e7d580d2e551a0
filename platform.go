package tayeb

// Platform holds the whole state of the investment platform: the
// compliant-asset registry, the balance ledger, baskets and templates,
// and DCA orders, together with the per-account indexes and the two
// monotonic id allocators.
//
// All mutating methods take an Env and follow the same discipline:
// authorize, validate everything, then mutate. The host guarantees one
// call runs at a time, so there are no internal locks.
type Platform struct {
	owner AccountID

	assets   map[string]AssetRecord
	assetIDs []string // registration order

	balances ledger

	baskets      map[uint32]Basket
	templates    map[uint32]Basket
	templateIDs  []uint32 // creation order
	nextBasketID uint32   // shared by templates and user baskets

	orders      map[uint32]DCAOrder
	nextOrderID uint32

	userBaskets map[AccountID][]uint32 // append-only
	userOrders  map[AccountID][]uint32 // append-only
}

// New creates a platform owned by the given account and seeds the three
// stock template baskets every deployment starts with.
func New(owner AccountID) *Platform {
	p := &Platform{
		owner:        owner,
		assets:       make(map[string]AssetRecord),
		balances:     make(ledger),
		baskets:      make(map[uint32]Basket),
		templates:    make(map[uint32]Basket),
		nextBasketID: 1,
		orders:       make(map[uint32]DCAOrder),
		nextOrderID:  1,
		userBaskets:  make(map[AccountID][]uint32),
		userOrders:   make(map[AccountID][]uint32),
	}
	p.seedTemplates()
	return p
}

// seedTemplates installs the initial template baskets. Seeding bypasses
// the compliance gate on purpose: the referenced assets are registered
// by the owner after deployment, and template compliance is only
// enforced when a template is created through CreateTemplate.
func (p *Platform) seedTemplates() {
	seed := []Basket{
		{
			Name:        "Major Sharia Coins ETF",
			Description: "Diversified portfolio of major Sharia-compliant cryptocurrencies",
			Allocations: []Allocation{{"BTC", 40}, {"ETH", 30}, {"BNB", 15}, {"XRP", 15}},
		},
		{
			Name:        "Sharia Stablecoins ETF",
			Description: "Portfolio focused on Sharia-compliant stablecoins",
			Allocations: []Allocation{{"USDT", 50}, {"USDC", 30}, {"DAI", 20}},
		},
		{
			Name:        "DeFi Sharia ETF",
			Description: "Decentralized finance tokens that comply with Sharia principles",
			Allocations: []Allocation{{"ETH", 50}, {"BNB", 25}, {"ADA", 15}, {"DOT", 10}},
		},
	}
	for _, b := range seed {
		b.ID = p.nextBasketID
		p.nextBasketID++
		b.Creator = p.owner
		b.IsTemplate = true
		p.templates[b.ID] = b
		p.templateIDs = append(p.templateIDs, b.ID)
	}
}

// Owner returns the platform owner account.
func (p *Platform) Owner() AccountID { return p.owner }

// ensureOwner gates the privileged operations.
func (p *Platform) ensureOwner(env Env) error {
	if env.Caller() != p.owner {
		return ErrUnauthorized
	}
	return nil
}

// Deposit credits the caller's balance with the value attached to the
// call. The host is responsible for actually having received that
// value; the core only records it.
func (p *Platform) Deposit(env Env) {
	p.balances.credit(env.Caller(), env.TransferredValue())
}

// InvestOnce performs a standalone compliance-gated investment: it
// debits the caller without creating a basket or an order record.
func (p *Platform) InvestOnce(env Env, assetID string, amount Amount) error {
	if !p.IsCompliant(assetID) {
		return ErrNotShariaCompliant
	}
	return p.balances.debitIfSufficient(env.Caller(), amount)
}

// BalanceOf returns the spendable balance of an account. Unknown
// accounts read as zero.
func (p *Platform) BalanceOf(account AccountID) Amount {
	return p.balances.balanceOf(account)
}
