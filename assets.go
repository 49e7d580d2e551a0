package tayeb

import "slices"

// AssetRecord describes an asset vetted by the platform authority.
// The verification itself happens off-platform; the registry only
// records the verdict and the reason given for it.
type AssetRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Symbol           string `json:"symbol"`
	Verified         bool   `json:"verified"`
	ComplianceReason string `json:"complianceReason,omitempty"`
}

// RegisterAsset records an asset as compliant. Owner only. Registering
// an existing id overwrites its record (idempotent upsert); the
// registration-order index gains the id at most once.
func (p *Platform) RegisterAsset(env Env, id, name, symbol, reason string) error {
	if err := p.ensureOwner(env); err != nil {
		return err
	}
	p.assets[id] = AssetRecord{
		ID:               id,
		Name:             name,
		Symbol:           symbol,
		Verified:         true,
		ComplianceReason: reason,
	}
	if !slices.Contains(p.assetIDs, id) {
		p.assetIDs = append(p.assetIDs, id)
	}
	return nil
}

// RemoveAsset de-lists an asset. Owner only. Existing baskets that
// reference the asset are untouched: compliance is checked at creation
// time, not retroactively.
func (p *Platform) RemoveAsset(env Env, id string) error {
	if err := p.ensureOwner(env); err != nil {
		return err
	}
	if _, ok := p.assets[id]; !ok {
		return ErrAssetNotFound
	}
	delete(p.assets, id)
	if i := slices.Index(p.assetIDs, id); i >= 0 {
		p.assetIDs = slices.Delete(p.assetIDs, i, i+1)
	}
	return nil
}

// Assets returns all registered assets in registration order. The
// order is stable across removals of other entries.
func (p *Platform) Assets() []AssetRecord {
	records := make([]AssetRecord, 0, len(p.assetIDs))
	for _, id := range p.assetIDs {
		if rec, ok := p.assets[id]; ok {
			records = append(records, rec)
		}
	}
	return records
}

// Asset returns the record for an asset id.
func (p *Platform) Asset(id string) (AssetRecord, bool) {
	rec, ok := p.assets[id]
	return rec, ok
}

// IsCompliant reports whether an asset is currently registered and
// verified. An unknown asset is simply not compliant; this never errors.
func (p *Platform) IsCompliant(id string) bool {
	rec, ok := p.assets[id]
	return ok && rec.Verified
}
