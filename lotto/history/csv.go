// Package history loads historical drawings from CSV for the estimator.
// Absent or malformed history is a recoverable condition: callers log a
// notice and fall back to simulated history, never fail.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/smartplay-ai/smartplay/lotto"
)

// Load reads draw records from a CSV file, ordered oldest to newest.
//
// Row layout: date,n1,...,nk[,special] with k = MainPickCount and the special
// column required only for games with a special pool. A header row is
// detected and skipped. Rows that fail to parse are skipped with a debug log;
// a file yielding zero valid rows is reported as an error so the caller can
// fall back to simulation.
func Load(path string, profile lotto.GameProfile) ([]lotto.DrawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read draw history %s: %w", path, err)
	}

	records := make([]lotto.DrawRecord, 0, len(rows))
	for i, row := range rows {
		rec, ok := parseRow(row, profile)
		if !ok {
			if i == 0 {
				continue // header
			}
			logrus.Debugf("skipping malformed draw row %d in %s", i+1, path)
			continue
		}
		rec.SequenceIndex = len(records)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no parseable draw rows in %s", path)
	}
	return records, nil
}

// parseRow converts one CSV row to a DrawRecord. The leading date column is
// carried for provenance only and not validated beyond being non-numeric or
// date-like; the engine orders records by file position.
func parseRow(row []string, profile lotto.GameProfile) (lotto.DrawRecord, bool) {
	want := 1 + profile.MainPickCount
	if profile.HasSpecial() {
		want++
	}
	if len(row) < want {
		return lotto.DrawRecord{}, false
	}

	mains := make([]int, 0, profile.MainPickCount)
	seen := make(map[int]bool, profile.MainPickCount)
	for _, field := range row[1 : 1+profile.MainPickCount] {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || v < 1 || v > profile.MainPoolSize || seen[v] {
			return lotto.DrawRecord{}, false
		}
		seen[v] = true
		mains = append(mains, v)
	}

	rec := lotto.DrawRecord{MainNumbers: mains}
	if profile.HasSpecial() {
		sp, err := strconv.Atoi(strings.TrimSpace(row[1+profile.MainPickCount]))
		if err != nil || sp < 1 || sp > profile.SpecialPoolSize {
			return lotto.DrawRecord{}, false
		}
		rec.SpecialNumber = sp
	}
	return rec, true
}
