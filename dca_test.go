package tayeb

import (
	"errors"
	"testing"
)

func TestCreateDCAOrder(t *testing.T) {
	p := newTestPlatform(t)

	if _, err := p.CreateDCAOrder(env(user, 10, 5000), "DOGE", A(50), 100, 0, 5000); !errors.Is(err, ErrNotShariaCompliant) {
		t.Errorf("order on unknown asset = %v, want ErrNotShariaCompliant", err)
	}
	if _, err := p.CreateDCAOrder(env(user, 10, 5000), "BTC", A(50), 100, 0, 4999); !errors.Is(err, ErrInvalidStartTime) {
		t.Errorf("order starting in the past = %v, want ErrInvalidStartTime", err)
	}

	id, err := p.CreateDCAOrder(env(user, 10, 5000), "BTC", A(50), 100, 12, 5000)
	if err != nil {
		t.Fatalf("CreateDCAOrder failed: %v", err)
	}
	if id != 1 {
		t.Errorf("first order id = %d, want 1", id)
	}

	o, ok := p.Order(id)
	if !ok {
		t.Fatal("created order should be readable")
	}
	if o.Owner != user || o.Asset != "BTC" || !o.IsActive {
		t.Errorf("unexpected order: %+v", o)
	}
	if o.NextExecutionHeight != 110 {
		t.Errorf("first execution height = %d, want creation height + interval = 110", o.NextExecutionHeight)
	}
	if o.IntervalsCompleted != 0 {
		t.Errorf("new order has %d completed intervals, want 0", o.IntervalsCompleted)
	}
}

func TestExecuteDCAOrder(t *testing.T) {
	p := newTestPlatform(t)
	fund(p, user, A(100))

	id, err := p.CreateDCAOrder(env(user, 10, 5000), "BTC", A(40), 100, 2, 6000)
	if err != nil {
		t.Fatalf("CreateDCAOrder failed: %v", err)
	}

	if err := p.ExecuteDCAOrder(env(other, 110, 7000), 99); !errors.Is(err, ErrDCAOrderNotFound) {
		t.Errorf("execution of unknown order = %v, want ErrDCAOrderNotFound", err)
	}
	// Start time not reached yet.
	if err := p.ExecuteDCAOrder(env(other, 110, 5500), id); !errors.Is(err, ErrOrderNotReady) {
		t.Errorf("execution before start time = %v, want ErrOrderNotReady", err)
	}
	// Height not reached yet.
	if err := p.ExecuteDCAOrder(env(other, 109, 7000), id); !errors.Is(err, ErrOrderNotReady) {
		t.Errorf("execution before due height = %v, want ErrOrderNotReady", err)
	}

	// Execution is permissionless: a third party triggers it, the
	// owner pays.
	if err := p.ExecuteDCAOrder(env(other, 110, 7000), id); err != nil {
		t.Fatalf("first execution failed: %v", err)
	}
	if got := p.BalanceOf(user); !got.Equal(A(60)) {
		t.Errorf("owner balance = %v, want 60", got)
	}
	if !p.BalanceOf(other).IsZero() {
		t.Error("the triggering caller must not be debited")
	}

	o, _ := p.Order(id)
	if o.IntervalsCompleted != 1 || !o.IsActive {
		t.Errorf("after first execution: %+v", o)
	}
	if o.NextExecutionHeight != 210 {
		t.Errorf("next execution height = %d, want 210", o.NextExecutionHeight)
	}

	// Second and final interval deactivates the order.
	if err := p.ExecuteDCAOrder(env(user, 210, 8000), id); err != nil {
		t.Fatalf("second execution failed: %v", err)
	}
	o, _ = p.Order(id)
	if o.IntervalsCompleted != 2 || o.IsActive {
		t.Errorf("bounded order should deactivate on its last interval: %+v", o)
	}

	if err := p.ExecuteDCAOrder(env(user, 310, 9000), id); !errors.Is(err, ErrOrderInactive) {
		t.Errorf("execution of completed order = %v, want ErrOrderInactive", err)
	}
}

func TestExecuteDCAOrderInsufficientBalance(t *testing.T) {
	p := newTestPlatform(t)
	fund(p, user, A(30))

	id, err := p.CreateDCAOrder(env(user, 10, 5000), "BTC", A(40), 100, 0, 5000)
	if err != nil {
		t.Fatalf("CreateDCAOrder failed: %v", err)
	}

	if err := p.ExecuteDCAOrder(env(user, 110, 6000), id); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("under-funded execution = %v, want ErrInsufficientBalance", err)
	}

	// A failed execution changes nothing: the order stays due.
	o, _ := p.Order(id)
	if o.IntervalsCompleted != 0 || o.NextExecutionHeight != 110 || !o.IsActive {
		t.Errorf("failed execution mutated the order: %+v", o)
	}

	// Topping up makes the same execution succeed.
	fund(p, user, A(20))
	if err := p.ExecuteDCAOrder(env(user, 110, 6000), id); err != nil {
		t.Fatalf("execution after top-up failed: %v", err)
	}
}

func TestUnboundedDCAOrderStaysActive(t *testing.T) {
	p := newTestPlatform(t)
	fund(p, user, A(1000))

	id, err := p.CreateDCAOrder(env(user, 0, 5000), "ETH", A(10), 10, 0, 5000)
	if err != nil {
		t.Fatalf("CreateDCAOrder failed: %v", err)
	}

	height := uint32(10)
	for i := 0; i < 50; i++ {
		if err := p.ExecuteDCAOrder(env(user, height, 6000), id); err != nil {
			t.Fatalf("execution %d failed: %v", i, err)
		}
		height += 10
	}
	o, _ := p.Order(id)
	if !o.IsActive || o.IntervalsCompleted != 50 {
		t.Errorf("unbounded order after 50 executions: %+v", o)
	}
	if got := p.BalanceOf(user); !got.Equal(A(500)) {
		t.Errorf("balance = %v, want 500", got)
	}
}

func TestCancelDCAOrder(t *testing.T) {
	p := newTestPlatform(t)
	fund(p, user, A(100))

	id, err := p.CreateDCAOrder(env(user, 10, 5000), "BTC", A(10), 100, 0, 5000)
	if err != nil {
		t.Fatalf("CreateDCAOrder failed: %v", err)
	}

	if err := p.CancelDCAOrder(env(user, 11, 5100), 99); !errors.Is(err, ErrDCAOrderNotFound) {
		t.Errorf("cancel of unknown order = %v, want ErrDCAOrderNotFound", err)
	}
	if err := p.CancelDCAOrder(env(other, 11, 5100), id); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("cancel by non-owner = %v, want ErrUnauthorized", err)
	}

	if err := p.CancelDCAOrder(env(user, 11, 5100), id); err != nil {
		t.Fatalf("CancelDCAOrder failed: %v", err)
	}
	o, _ := p.Order(id)
	if o.IsActive {
		t.Error("cancelled order should be inactive")
	}

	// Cancelling again is a no-op, not an error.
	if err := p.CancelDCAOrder(env(user, 12, 5200), id); err != nil {
		t.Errorf("second cancel = %v, want nil", err)
	}

	if err := p.ExecuteDCAOrder(env(user, 110, 6000), id); !errors.Is(err, ErrOrderInactive) {
		t.Errorf("execution of cancelled order = %v, want ErrOrderInactive", err)
	}

	// Cancelled orders stay listed in the owner's index.
	orders := p.UserOrders(user)
	if len(orders) != 1 || orders[0].IsActive {
		t.Errorf("user index should keep the cancelled order, got %+v", orders)
	}
}
