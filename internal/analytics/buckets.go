package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

// MaxBuckets caps how many periods TimeBucketedTotals returns.
const MaxBuckets = 5

// Granularity is the width of a time bucket.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity parses a granularity name.
func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case Daily, Monthly, Yearly:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// BucketKey identifies a period independently of any display locale.
// Fields finer than the granularity are zero.
type BucketKey struct {
	Year  int
	Month time.Month
	Day   int
}

// Bucket is the spending total for one period.
type Bucket struct {
	Key   BucketKey
	Start time.Time
	Label string
	Total decimal.Decimal
	Count int
}

// TimeBucketedTotals groups spending into periods, most recent first, at most MaxBuckets.
func TimeBucketedTotals(txns []domain.Transaction, g Granularity, loc *time.Location) []Bucket {
	if loc == nil {
		loc = time.Local
	}

	index := make(map[BucketKey]int)
	buckets := make([]Bucket, 0)

	for _, t := range txns {
		key := bucketKey(t.Date.In(loc), g)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			start := key.start(loc)
			buckets = append(buckets, Bucket{
				Key:   key,
				Start: start,
				Label: bucketLabel(start, g),
				Total: decimal.Zero,
			})
		}
		buckets[i].Total = buckets[i].Total.Add(t.Amount)
		buckets[i].Count++
	}

	slices.SortStableFunc(buckets, func(a, b Bucket) int {
		return b.Start.Compare(a.Start)
	})

	if len(buckets) > MaxBuckets {
		buckets = buckets[:MaxBuckets]
	}
	return buckets
}

func bucketKey(t time.Time, g Granularity) BucketKey {
	switch g {
	case Yearly:
		return BucketKey{Year: t.Year()}
	case Monthly:
		return BucketKey{Year: t.Year(), Month: t.Month()}
	default:
		return BucketKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
	}
}

func (k BucketKey) start(loc *time.Location) time.Time {
	month, day := k.Month, k.Day
	if month == 0 {
		month = time.January
	}
	if day == 0 {
		day = 1
	}
	return time.Date(k.Year, month, day, 0, 0, 0, 0, loc)
}

func bucketLabel(start time.Time, g Granularity) string {
	switch g {
	case Yearly:
		return start.Format("2006")
	case Monthly:
		return start.Format("Jan 2006")
	default:
		return start.Format("Jan 2")
	}
}
