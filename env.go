package tayeb

// AccountID identifies an account on the platform. The hosting
// environment decides the actual format (the reference host uses
// 0x-prefixed hex addresses); the core only compares ids for equality.
type AccountID string

// String implements the fmt.Stringer interface.
func (a AccountID) String() string { return string(a) }

// Env supplies the execution context of a single call: who is calling,
// when (block height and unix-milli timestamp), and how much value is
// attached to the call. The hosting environment builds one Env per
// admitted call; the journal rebuilds it verbatim on replay.
type Env interface {
	Caller() AccountID
	BlockHeight() uint32
	Timestamp() uint64
	TransferredValue() Amount
}

// CallEnv is a plain-value Env used by hosts, tests and journal replay.
type CallEnv struct {
	From   AccountID
	Height uint32
	Now    uint64
	Value  Amount
}

func (e CallEnv) Caller() AccountID        { return e.From }
func (e CallEnv) BlockHeight() uint32      { return e.Height }
func (e CallEnv) Timestamp() uint64        { return e.Now }
func (e CallEnv) TransferredValue() Amount { return e.Value }
