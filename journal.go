package tayeb

import (
	"fmt"
)

// CommandType is a typed string identifying a journal command.
type CommandType string

// Command types, one per mutating platform operation.
const (
	CmdInit           CommandType = "init"
	CmdRegisterAsset  CommandType = "register-asset"
	CmdRemoveAsset    CommandType = "remove-asset"
	CmdDeposit        CommandType = "deposit"
	CmdCreateBasket   CommandType = "create-basket"
	CmdCreateTemplate CommandType = "create-template"
	CmdSubscribe      CommandType = "subscribe"
	CmdInvest         CommandType = "invest"
	CmdInvestOnce     CommandType = "invest-once"
	CmdDCACreate      CommandType = "dca-create"
	CmdDCAExecute     CommandType = "dca-execute"
	CmdDCACancel      CommandType = "dca-cancel"
)

// Command is one recorded platform mutation. A command captures the
// full call context (caller, height, timestamp, attached value), so
// applying the same journal to a fresh platform always rebuilds the
// same state.
type Command interface {
	What() CommandType // What returns the command type ("deposit", "invest", ...).
	CallEnv() CallEnv  // CallEnv returns the execution context the command was admitted with.
	Apply(*Platform) error
}

// baseCmd carries the fields shared by every command.
type baseCmd struct {
	Command CommandType `json:"command"`
	Caller  AccountID   `json:"caller"`
	Height  uint32      `json:"height"`
	Time    uint64      `json:"time"`
}

func (c baseCmd) What() CommandType { return c.Command }

func (c baseCmd) CallEnv() CallEnv {
	return CallEnv{From: c.Caller, Height: c.Height, Now: c.Time}
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (c baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", c.Command)
	w.Append("caller", c.Caller)
	w.Append("height", c.Height)
	w.Append("time", c.Time)
	return w.MarshalJSON()
}

func newBase(what CommandType, env Env) baseCmd {
	return baseCmd{Command: what, Caller: env.Caller(), Height: env.BlockHeight(), Time: env.Timestamp()}
}

// Init is the first command of every journal; it fixes the platform
// owner.
type Init struct {
	baseCmd
}

// NewInit creates the journal's opening command.
func NewInit(env Env) Init {
	return Init{newBase(CmdInit, env)}
}

// Apply is a no-op: the owner is consumed by Replay when constructing
// the platform.
func (c Init) Apply(p *Platform) error { return nil }

// RegisterAsset records an owner registration of a compliant asset.
type RegisterAsset struct {
	baseCmd
	Asset  string `json:"asset"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Reason string `json:"reason,omitempty"`
}

// NewRegisterAsset creates a RegisterAsset command.
func NewRegisterAsset(env Env, asset, name, symbol, reason string) RegisterAsset {
	return RegisterAsset{newBase(CmdRegisterAsset, env), asset, name, symbol, reason}
}

func (c RegisterAsset) Apply(p *Platform) error {
	return p.RegisterAsset(c.CallEnv(), c.Asset, c.Name, c.Symbol, c.Reason)
}

// MarshalJSON implements the json.Marshaler interface for RegisterAsset.
func (c RegisterAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("asset", c.Asset)
	w.Append("name", c.Name)
	w.Append("symbol", c.Symbol)
	w.Optional("reason", c.Reason)
	return w.MarshalJSON()
}

// RemoveAsset records an owner de-listing of an asset.
type RemoveAsset struct {
	baseCmd
	Asset string `json:"asset"`
}

// NewRemoveAsset creates a RemoveAsset command.
func NewRemoveAsset(env Env, asset string) RemoveAsset {
	return RemoveAsset{newBase(CmdRemoveAsset, env), asset}
}

func (c RemoveAsset) Apply(p *Platform) error {
	return p.RemoveAsset(c.CallEnv(), c.Asset)
}

// MarshalJSON implements the json.Marshaler interface for RemoveAsset.
func (c RemoveAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("asset", c.Asset)
	return w.MarshalJSON()
}

// Deposit records value transferred to the caller's balance.
type Deposit struct {
	baseCmd
	Amount Amount `json:"amount"`
}

// NewDeposit creates a Deposit command. The deposited amount is the
// value attached to the call.
func NewDeposit(env Env) Deposit {
	return Deposit{newBase(CmdDeposit, env), env.TransferredValue()}
}

// CallEnv restores the attached value alongside the base context.
func (c Deposit) CallEnv() CallEnv {
	env := c.baseCmd.CallEnv()
	env.Value = c.Amount
	return env
}

func (c Deposit) Apply(p *Platform) error {
	p.Deposit(c.CallEnv())
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (c Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("amount", c.Amount)
	return w.MarshalJSON()
}

// CreateBasket records a user basket creation.
type CreateBasket struct {
	baseCmd
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Allocations []Allocation `json:"allocations"`
}

// NewCreateBasket creates a CreateBasket command.
func NewCreateBasket(env Env, name, description string, allocations []Allocation) CreateBasket {
	return CreateBasket{newBase(CmdCreateBasket, env), name, description, allocations}
}

func (c CreateBasket) Apply(p *Platform) error {
	_, err := p.CreateBasket(c.CallEnv(), c.Name, c.Description, c.Allocations)
	return err
}

// MarshalJSON implements the json.Marshaler interface for CreateBasket.
func (c CreateBasket) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("name", c.Name)
	w.Optional("description", c.Description)
	w.Append("allocations", c.Allocations)
	return w.MarshalJSON()
}

// CreateTemplate records an owner template creation.
type CreateTemplate struct {
	baseCmd
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Allocations []Allocation `json:"allocations"`
}

// NewCreateTemplate creates a CreateTemplate command.
func NewCreateTemplate(env Env, name, description string, allocations []Allocation) CreateTemplate {
	return CreateTemplate{newBase(CmdCreateTemplate, env), name, description, allocations}
}

func (c CreateTemplate) Apply(p *Platform) error {
	_, err := p.CreateTemplate(c.CallEnv(), c.Name, c.Description, c.Allocations)
	return err
}

// MarshalJSON implements the json.Marshaler interface for CreateTemplate.
func (c CreateTemplate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("name", c.Name)
	w.Optional("description", c.Description)
	w.Append("allocations", c.Allocations)
	return w.MarshalJSON()
}

// Subscribe records a template subscription.
type Subscribe struct {
	baseCmd
	Template   uint32 `json:"template"`
	Investment Amount `json:"investment"`
}

// NewSubscribe creates a Subscribe command.
func NewSubscribe(env Env, template uint32, investment Amount) Subscribe {
	return Subscribe{newBase(CmdSubscribe, env), template, investment}
}

func (c Subscribe) Apply(p *Platform) error {
	_, err := p.SubscribeToTemplate(c.CallEnv(), c.Template, c.Investment)
	return err
}

// MarshalJSON implements the json.Marshaler interface for Subscribe.
func (c Subscribe) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("template", c.Template)
	w.Append("investment", c.Investment)
	return w.MarshalJSON()
}

// Invest records a funding of an existing basket.
type Invest struct {
	baseCmd
	Basket uint32 `json:"basket"`
	Amount Amount `json:"amount"`
}

// NewInvest creates an Invest command.
func NewInvest(env Env, basket uint32, amount Amount) Invest {
	return Invest{newBase(CmdInvest, env), basket, amount}
}

func (c Invest) Apply(p *Platform) error {
	return p.Invest(c.CallEnv(), c.Basket, c.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Invest.
func (c Invest) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("basket", c.Basket)
	w.Append("amount", c.Amount)
	return w.MarshalJSON()
}

// InvestOnce records a standalone compliance-gated investment.
type InvestOnce struct {
	baseCmd
	Asset  string `json:"asset"`
	Amount Amount `json:"amount"`
}

// NewInvestOnce creates an InvestOnce command.
func NewInvestOnce(env Env, asset string, amount Amount) InvestOnce {
	return InvestOnce{newBase(CmdInvestOnce, env), asset, amount}
}

func (c InvestOnce) Apply(p *Platform) error {
	return p.InvestOnce(c.CallEnv(), c.Asset, c.Amount)
}

// MarshalJSON implements the json.Marshaler interface for InvestOnce.
func (c InvestOnce) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("asset", c.Asset)
	w.Append("amount", c.Amount)
	return w.MarshalJSON()
}

// DCACreate records the creation of a recurring purchase order.
type DCACreate struct {
	baseCmd
	Asset             string `json:"asset"`
	AmountPerInterval Amount `json:"amountPerInterval"`
	IntervalBlocks    uint32 `json:"intervalBlocks"`
	TotalIntervals    uint32 `json:"totalIntervals,omitempty"`
	Start             uint64 `json:"start"`
}

// NewDCACreate creates a DCACreate command.
func NewDCACreate(env Env, asset string, amountPerInterval Amount, intervalBlocks, totalIntervals uint32, start uint64) DCACreate {
	return DCACreate{newBase(CmdDCACreate, env), asset, amountPerInterval, intervalBlocks, totalIntervals, start}
}

func (c DCACreate) Apply(p *Platform) error {
	_, err := p.CreateDCAOrder(c.CallEnv(), c.Asset, c.AmountPerInterval, c.IntervalBlocks, c.TotalIntervals, c.Start)
	return err
}

// MarshalJSON implements the json.Marshaler interface for DCACreate.
func (c DCACreate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("asset", c.Asset)
	w.Append("amountPerInterval", c.AmountPerInterval)
	w.Append("intervalBlocks", c.IntervalBlocks)
	w.Optional("totalIntervals", c.TotalIntervals)
	w.Append("start", c.Start)
	return w.MarshalJSON()
}

// DCAExecute records one executed interval of an order.
type DCAExecute struct {
	baseCmd
	Order uint32 `json:"order"`
}

// NewDCAExecute creates a DCAExecute command.
func NewDCAExecute(env Env, order uint32) DCAExecute {
	return DCAExecute{newBase(CmdDCAExecute, env), order}
}

func (c DCAExecute) Apply(p *Platform) error {
	return p.ExecuteDCAOrder(c.CallEnv(), c.Order)
}

// MarshalJSON implements the json.Marshaler interface for DCAExecute.
func (c DCAExecute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("order", c.Order)
	return w.MarshalJSON()
}

// DCACancel records an owner cancellation of an order.
type DCACancel struct {
	baseCmd
	Order uint32 `json:"order"`
}

// NewDCACancel creates a DCACancel command.
func NewDCACancel(env Env, order uint32) DCACancel {
	return DCACancel{newBase(CmdDCACancel, env), order}
}

func (c DCACancel) Apply(p *Platform) error {
	return p.CancelDCAOrder(c.CallEnv(), c.Order)
}

// MarshalJSON implements the json.Marshaler interface for DCACancel.
func (c DCACancel) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(c.baseCmd)
	w.Append("order", c.Order)
	return w.MarshalJSON()
}

// Journal is the ordered record of every admitted command. The first
// command is always Init, which fixes the platform owner.
type Journal struct {
	commands []Command
}

// NewJournal starts a journal owned by the caller of env.
func NewJournal(env Env) *Journal {
	return &Journal{commands: []Command{NewInit(env)}}
}

// Owner returns the account recorded by the opening Init command.
func (j *Journal) Owner() (AccountID, error) {
	if len(j.commands) == 0 {
		return "", fmt.Errorf("journal is empty: missing init command")
	}
	init, ok := j.commands[0].(Init)
	if !ok {
		return "", fmt.Errorf("journal does not start with an init command, got %q", j.commands[0].What())
	}
	return init.Caller, nil
}

// Append adds commands to the journal. It does not apply them; use
// Platform methods or Replay for that.
func (j *Journal) Append(cmds ...Command) {
	j.commands = append(j.commands, cmds...)
}

// Commands returns the recorded commands in admission order.
func (j *Journal) Commands() []Command { return j.commands }

// Len returns the number of recorded commands, including Init. The CLI
// host uses it as the default block height.
func (j *Journal) Len() int { return len(j.commands) }

// Replay rebuilds the platform state by applying every command in
// order. A command that fails to apply means the journal file was
// tampered with or produced by an incompatible version.
func (j *Journal) Replay() (*Platform, error) {
	owner, err := j.Owner()
	if err != nil {
		return nil, err
	}
	p := New(owner)
	for i, cmd := range j.commands {
		if err := cmd.Apply(p); err != nil {
			return nil, fmt.Errorf("replay: command %d (%s) failed: %w", i, cmd.What(), err)
		}
	}
	return p, nil
}
