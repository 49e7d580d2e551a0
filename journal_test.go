package tayeb

import (
	"bytes"
	"strings"
	"testing"
)

// testJournal builds a journal exercising every command type.
func testJournal(t *testing.T) *Journal {
	t.Helper()
	j := NewJournal(env(owner, 0, 1000))
	j.Append(
		NewRegisterAsset(env(owner, 1, 1100), "BTC", "Bitcoin", "BTC", "screened"),
		NewRegisterAsset(env(owner, 2, 1200), "ETH", "Ethereum", "ETH", "screened"),
		NewRegisterAsset(env(owner, 3, 1300), "DOGE", "Dogecoin", "DOGE", ""),
		NewRemoveAsset(env(owner, 4, 1400), "DOGE"),
		NewDeposit(envValue(user, 5, 1500, A(1000))),
		NewCreateBasket(env(user, 6, 1600), "My Mix", "long term", []Allocation{{"BTC", 60}, {"ETH", 40}}),
		NewCreateTemplate(env(owner, 7, 1700), "Blue Chip", "", []Allocation{{"BTC", 50}, {"ETH", 50}}),
		NewSubscribe(env(user, 8, 1800), 1, A(250)),
		NewInvest(env(user, 9, 1900), 4, A(100)),
		NewInvestOnce(env(user, 10, 2000), "BTC", A(25.5)),
		NewDCACreate(env(user, 11, 2100), "ETH", A(10), 5, 3, 2100),
		NewDCAExecute(env(other, 16, 2200), 1),
		NewDCACancel(env(user, 17, 2300), 1),
	)
	return j
}

func TestJournalReplay(t *testing.T) {
	j := testJournal(t)

	p, err := j.Replay()
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	if p.Owner() != owner {
		t.Errorf("owner = %q, want %q", p.Owner(), owner)
	}
	if p.IsCompliant("DOGE") {
		t.Error("DOGE was removed, should not be compliant")
	}
	// 1000 - 250 (subscribe) - 100 (invest) - 25.5 (once) - 10 (dca) = 614.5
	if got := p.BalanceOf(user); !got.Equal(A(614.5)) {
		t.Errorf("user balance = %v, want 614.5", got)
	}

	baskets := p.UserBaskets(user)
	if len(baskets) != 2 {
		t.Fatalf("user has %d baskets, want 2", len(baskets))
	}
	if !baskets[1].TotalValue.Equal(A(250)) {
		t.Errorf("subscribed basket value = %v, want 250", baskets[1].TotalValue)
	}

	o, ok := p.Order(1)
	if !ok {
		t.Fatal("DCA order should exist")
	}
	if o.IntervalsCompleted != 1 || o.IsActive {
		t.Errorf("order should be executed once then cancelled: %+v", o)
	}
}

func TestJournalEncodeDecodeReplay(t *testing.T) {
	j := testJournal(t)

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, j); err != nil {
		t.Fatalf("EncodeJournal failed: %v", err)
	}

	decoded, err := DecodeJournal(&buf)
	if err != nil {
		t.Fatalf("DecodeJournal failed: %v", err)
	}
	if decoded.Len() != j.Len() {
		t.Fatalf("decoded %d commands, want %d", decoded.Len(), j.Len())
	}

	// Replaying the decoded journal reaches the exact same state.
	p1, err := j.Replay()
	if err != nil {
		t.Fatalf("Replay of original failed: %v", err)
	}
	p2, err := decoded.Replay()
	if err != nil {
		t.Fatalf("Replay of decoded failed: %v", err)
	}
	if !p1.BalanceOf(user).Equal(p2.BalanceOf(user)) {
		t.Errorf("balances diverge: %v vs %v", p1.BalanceOf(user), p2.BalanceOf(user))
	}
	if len(p1.Assets()) != len(p2.Assets()) {
		t.Error("registries diverge after decode")
	}
	if len(p1.UserBaskets(user)) != len(p2.UserBaskets(user)) {
		t.Error("basket indexes diverge after decode")
	}

	// Canonical encoding is stable.
	var buf2 bytes.Buffer
	if err := EncodeJournal(&buf2, decoded); err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	var buf1 bytes.Buffer
	if err := EncodeJournal(&buf1, j); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if buf1.String() != buf2.String() {
		t.Error("re-encoding a decoded journal should be byte-identical")
	}
}

func TestJournalEncoding(t *testing.T) {
	j := NewJournal(env(owner, 0, 1000))
	j.Append(NewDeposit(envValue(user, 1, 1100, A(500))))

	var buf bytes.Buffer
	if err := EncodeJournal(&buf, j); err != nil {
		t.Fatalf("EncodeJournal failed: %v", err)
	}

	want := `{"command":"init","caller":"alice","height":0,"time":1000}
{"command":"deposit","caller":"bob","height":1,"time":1100,"amount":500}
`
	if buf.String() != want {
		t.Errorf("encoding mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestDecodeJournalErrors(t *testing.T) {
	if _, err := DecodeJournal(strings.NewReader(`{"command":"warp"}`)); err == nil {
		t.Error("unknown command type should fail to decode")
	}
	if _, err := DecodeJournal(strings.NewReader(`not json`)); err == nil {
		t.Error("malformed line should fail to decode")
	}

	// Empty lines are tolerated.
	j, err := DecodeJournal(strings.NewReader("\n{\"command\":\"init\",\"caller\":\"alice\",\"height\":0,\"time\":1}\n\n"))
	if err != nil {
		t.Fatalf("decode with empty lines failed: %v", err)
	}
	if j.Len() != 1 {
		t.Errorf("decoded %d commands, want 1", j.Len())
	}
}

func TestJournalOwner(t *testing.T) {
	j := &Journal{}
	if _, err := j.Owner(); err == nil {
		t.Error("empty journal should have no owner")
	}

	j = &Journal{commands: []Command{NewDeposit(envValue(user, 1, 1100, A(1)))}}
	if _, err := j.Owner(); err == nil {
		t.Error("journal not starting with init should have no owner")
	}
	if _, err := j.Replay(); err == nil {
		t.Error("journal not starting with init should not replay")
	}

	j = NewJournal(env(owner, 0, 1000))
	got, err := j.Owner()
	if err != nil {
		t.Fatalf("Owner failed: %v", err)
	}
	if got != owner {
		t.Errorf("owner = %q, want %q", got, owner)
	}
}

func TestReplayReportsFailingCommand(t *testing.T) {
	j := NewJournal(env(owner, 0, 1000))
	// Asset was never registered: the basket creation cannot apply.
	j.Append(NewCreateBasket(env(user, 1, 1100), "bad", "", []Allocation{{"BTC", 100}}))

	if _, err := j.Replay(); err == nil || !strings.Contains(err.Error(), "command 1") {
		t.Errorf("replay error should name the failing command, got %v", err)
	}
}
