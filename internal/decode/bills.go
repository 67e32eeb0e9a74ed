package decode

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Bill is one LEGISinfo list item.
type Bill struct {
	BillNumber     string
	LegisinfoID    *int
	Parliament     *int
	Session        *int
	TitleEn        *string
	TitleFr        *string
	Status         *string
	IntroducedDate *time.Time
	LatestActivity *time.Time
	SponsorName    *string
	SourceHash     string
}

// Bills decodes the LEGISinfo bills feed. Items without a formatted bill
// number are dropped. Each item's source hash covers its canonical
// (sorted-key) JSON encoding so unchanged items hash identically across
// fetches.
func Bills(body []byte) ([]Bill, error) {
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: bills json: %v", ErrDecodeFailed, err)
	}

	out := make([]Bill, 0, len(items))
	for _, item := range items {
		number := jsonString(item, "BillNumberFormatted")
		if number == "" {
			continue
		}
		b := Bill{
			BillNumber:  number,
			LegisinfoID: jsonInt(item, "BillId"),
			Parliament:  jsonInt(item, "ParliamentNumber"),
			Session:     jsonInt(item, "SessionNumber"),
			TitleEn:     jsonOptString(item, "LongTitleEn", "ShortTitleEn"),
			TitleFr:     jsonOptString(item, "LongTitleFr", "ShortTitleFr"),
			Status:      jsonOptString(item, "CurrentStatusEn"),
			SponsorName: jsonOptString(item, "SponsorEn"),
			SourceHash:  canonicalHash(item),
			IntroducedDate: FirstDate(
				jsonString(item, "PassedHouseFirstReadingDateTime"),
				jsonString(item, "PassedSenateFirstReadingDateTime"),
			),
		}
		if t, ok := ParseDateTime(jsonString(item, "LatestActivityDateTime")); ok {
			b.LatestActivity = &t
		}
		out = append(out, b)
	}
	return out, nil
}

// FirstDate parses the given datetime renderings and returns the earliest
// one truncated to its date, nil when none parse.
func FirstDate(values ...string) *time.Time {
	var times []time.Time
	for _, v := range values {
		if v == "" {
			continue
		}
		if t, ok := ParseDateTime(v); ok {
			times = append(times, t)
		}
	}
	if len(times) == 0 {
		return nil
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	d := times[0].Truncate(24 * time.Hour)
	return &d
}

// canonicalHash hashes the sorted-key JSON encoding of the item.
func canonicalHash(item map[string]any) string {
	encoded, err := json.Marshal(item)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}

func jsonString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func jsonOptString(m map[string]any, keys ...string) *string {
	for _, key := range keys {
		if v := jsonString(m, key); v != "" {
			return &v
		}
	}
	return nil
}

func jsonInt(m map[string]any, key string) *int {
	switch v := m[key].(type) {
	case float64:
		n := int(v)
		return &n
	case string:
		return ParseOptionalInt(v)
	}
	return nil
}
