package tayeb

import "errors"

// The error kinds returned by platform operations. Every operation
// returns nil or exactly one of these (possibly wrapped with context);
// callers test them with errors.Is.
var (
	// ErrUnauthorized is returned when a caller attempts an operation
	// reserved to the platform owner, or to the owner of a record.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAssetNotFound is returned when removing an asset that was never
	// registered.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNotShariaCompliant is returned when an operation references an
	// asset that is not currently registered as compliant.
	ErrNotShariaCompliant = errors.New("asset is not sharia compliant")

	// ErrETFNotFound is returned when a basket or template id does not
	// resolve.
	ErrETFNotFound = errors.New("etf not found")

	// ErrETFNotOwnedByUser is returned when investing into a basket
	// created by another account.
	ErrETFNotOwnedByUser = errors.New("etf not owned by user")

	// ErrInvalidAllocation is returned when basket allocation
	// percentages do not sum to exactly 100.
	ErrInvalidAllocation = errors.New("allocation percentages must sum to 100")

	// ErrInvalidCoinInAllocation is returned when a basket allocation
	// references a non-compliant asset.
	ErrInvalidCoinInAllocation = errors.New("allocation references a non-compliant asset")

	// ErrInsufficientBalance is returned by every spending path when the
	// account balance cannot cover the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDCAOrderNotFound is returned when a DCA order id does not
	// resolve.
	ErrDCAOrderNotFound = errors.New("dca order not found")

	// ErrOrderInactive is returned when executing a completed or
	// cancelled DCA order.
	ErrOrderInactive = errors.New("dca order is inactive")

	// ErrOrderNotReady is returned when a DCA order is executed before
	// its start time or before its next execution height.
	ErrOrderNotReady = errors.New("dca order is not ready for execution")

	// ErrInvalidStartTime is returned when a DCA order is created with a
	// start time in the past.
	ErrInvalidStartTime = errors.New("start time is in the past")
)
