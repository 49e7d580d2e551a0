// Package tayeb implements the state-transition core of a
// Sharia-compliant investment platform: a registry of vetted assets, a
// per-account balance ledger, basket (ETF) positions built from
// compliant allocations, and recurring DCA purchase orders.
//
// The package is deliberately free of I/O and concurrency: the hosting
// environment admits one call at a time and supplies the caller
// identity, the current block height and timestamp, and any value
// attached to the call through the Env interface. Every operation
// validates completely before mutating anything, so a returned error
// always means the platform state is unchanged.
//
// State is persisted as an append-only journal of commands (see
// Command); replaying a journal rebuilds the exact same platform state.
package tayeb
