package tayeb

import "testing"

// Common accounts used across tests.
const (
	owner AccountID = "alice"
	user  AccountID = "bob"
	other AccountID = "carol"
)

// env builds the call context for a test call.
func env(caller AccountID, height uint32, now uint64) CallEnv {
	return CallEnv{From: caller, Height: height, Now: now}
}

// envValue builds the call context for a test call carrying value.
func envValue(caller AccountID, height uint32, now uint64, value Amount) CallEnv {
	return CallEnv{From: caller, Height: height, Now: now, Value: value}
}

// newTestPlatform creates a platform owned by alice with a few
// compliant assets already registered.
func newTestPlatform(t *testing.T) *Platform {
	t.Helper()
	p := New(owner)
	for _, id := range []string{"BTC", "ETH", "BNB", "XRP"} {
		if err := p.RegisterAsset(env(owner, 1, 1000), id, id, id, "screened"); err != nil {
			t.Fatalf("RegisterAsset(%s) failed: %v", id, err)
		}
	}
	return p
}

// fund credits an account through the deposit path.
func fund(p *Platform, account AccountID, amount Amount) {
	p.Deposit(envValue(account, 1, 1000, amount))
}
