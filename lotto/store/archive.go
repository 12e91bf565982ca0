package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/smartplay-ai/smartplay/lotto"
)

// storedDraw is the JSON archive form of a DrawRecord.
type storedDraw struct {
	MainNumbers   []int `json:"main_numbers"`
	SpecialNumber int   `json:"special_number,omitempty"`
}

// DrawArchive manages per-game draw histories over a KVStore.
// Keys are `draws/<game>/<seq>` with a zero-padded sequence index so a
// prefix listing returns records oldest to newest.
type DrawArchive struct {
	kv KVStore
}

// NewDrawArchive wraps an existing KVStore.
func NewDrawArchive(kv KVStore) *DrawArchive {
	return &DrawArchive{kv: kv}
}

// OpenDrawArchive opens a Badger-backed archive at dir.
func OpenDrawArchive(dir string) (*DrawArchive, error) {
	kv, err := NewBadgerStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open draw archive at %s: %w", dir, err)
	}
	return NewDrawArchive(kv), nil
}

// Close releases the underlying store.
func (a *DrawArchive) Close() error {
	return a.kv.Close()
}

func drawKey(game string, seq int) string {
	return fmt.Sprintf("draws/%s/%08d", game, seq)
}

func drawPrefix(game string) string {
	return fmt.Sprintf("draws/%s/", game)
}

// StoreDraws replaces the archived history for a game with records,
// preserving their order as the archive sequence.
func (a *DrawArchive) StoreDraws(game string, records []lotto.DrawRecord) error {
	if err := a.clear(game); err != nil {
		return err
	}
	for i, rec := range records {
		data, err := json.Marshal(storedDraw{MainNumbers: rec.MainNumbers, SpecialNumber: rec.SpecialNumber})
		if err != nil {
			return fmt.Errorf("marshal draw %d for %s: %w", i, game, err)
		}
		if err := a.kv.Set(drawKey(game, i), data); err != nil {
			return fmt.Errorf("store draw %d for %s: %w", i, game, err)
		}
	}
	return nil
}

// LoadDraws returns the archived history for a game, oldest to newest.
// An empty archive yields an empty slice and no error.
func (a *DrawArchive) LoadDraws(game string) ([]lotto.DrawRecord, error) {
	pairs, err := a.kv.List(drawPrefix(game))
	if err != nil {
		return nil, fmt.Errorf("list draws for %s: %w", game, err)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })

	records := make([]lotto.DrawRecord, 0, len(pairs))
	for _, p := range pairs {
		var sd storedDraw
		if err := json.Unmarshal(p.Value, &sd); err != nil {
			return nil, fmt.Errorf("unmarshal draw %s: %w", p.Key, err)
		}
		records = append(records, lotto.DrawRecord{
			MainNumbers:   sd.MainNumbers,
			SpecialNumber: sd.SpecialNumber,
			SequenceIndex: len(records),
		})
	}
	return records, nil
}

// Count returns the number of archived draws for a game.
func (a *DrawArchive) Count(game string) (int, error) {
	pairs, err := a.kv.List(drawPrefix(game))
	if err != nil {
		return 0, err
	}
	return len(pairs), nil
}

func (a *DrawArchive) clear(game string) error {
	pairs, err := a.kv.List(drawPrefix(game))
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if err := a.kv.Delete(p.Key); err != nil {
			return err
		}
	}
	return nil
}
