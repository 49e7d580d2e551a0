package tayeb

import (
	"errors"
	"testing"
)

func TestRegisterAsset(t *testing.T) {
	p := New(owner)

	if err := p.RegisterAsset(env(owner, 1, 1000), "BTC", "Bitcoin", "BTC", "screened"); err != nil {
		t.Fatalf("RegisterAsset failed: %v", err)
	}
	rec, ok := p.Asset("BTC")
	if !ok {
		t.Fatal("asset BTC should exist")
	}
	if !rec.Verified || rec.Name != "Bitcoin" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if !p.IsCompliant("BTC") {
		t.Error("registered asset should be compliant")
	}
	if p.IsCompliant("DOGE") {
		t.Error("unknown asset should not be compliant")
	}
}

func TestRegisterAssetUnauthorized(t *testing.T) {
	p := New(owner)

	if err := p.RegisterAsset(env(user, 1, 1000), "BTC", "Bitcoin", "BTC", ""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("non-owner registration = %v, want ErrUnauthorized", err)
	}
	if _, ok := p.Asset("BTC"); ok {
		t.Error("refused registration should not create the asset")
	}
}

func TestRegisterAssetOverwrite(t *testing.T) {
	p := newTestPlatform(t)

	// Re-registering updates the record in place without duplicating
	// the registration-order index.
	if err := p.RegisterAsset(env(owner, 2, 2000), "BTC", "Bitcoin", "XBT", "rescreened"); err != nil {
		t.Fatalf("re-registration failed: %v", err)
	}
	rec, _ := p.Asset("BTC")
	if rec.Symbol != "XBT" || rec.ComplianceReason != "rescreened" {
		t.Errorf("record not overwritten: %+v", rec)
	}
	assets := p.Assets()
	if len(assets) != 4 {
		t.Fatalf("registry has %d entries, want 4", len(assets))
	}
	if assets[0].ID != "BTC" {
		t.Errorf("overwrite should keep registration order, got %q first", assets[0].ID)
	}
}

func TestRemoveAsset(t *testing.T) {
	p := newTestPlatform(t)

	if err := p.RemoveAsset(env(user, 2, 2000), "BTC"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("non-owner removal = %v, want ErrUnauthorized", err)
	}
	if err := p.RemoveAsset(env(owner, 2, 2000), "DOGE"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("removal of unknown asset = %v, want ErrAssetNotFound", err)
	}

	if err := p.RemoveAsset(env(owner, 2, 2000), "ETH"); err != nil {
		t.Fatalf("RemoveAsset failed: %v", err)
	}
	if p.IsCompliant("ETH") {
		t.Error("removed asset should no longer be compliant")
	}

	// The remaining entries keep their relative order.
	want := []string{"BTC", "BNB", "XRP"}
	assets := p.Assets()
	if len(assets) != len(want) {
		t.Fatalf("registry has %d entries, want %d", len(assets), len(want))
	}
	for i, id := range want {
		if assets[i].ID != id {
			t.Errorf("assets[%d] = %q, want %q", i, assets[i].ID, id)
		}
	}
}
