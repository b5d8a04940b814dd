// Package analytics holds the derived-statistics computations behind the
// reporting endpoints. Everything here is a pure function of the rows passed
// in; handlers re-query the store on every call, nothing is cached.
package analytics

import (
	"math"
	"sort"
	"time"
)

// Independent is the company label used for truckers without one.
const Independent = "Independent"

type MonthlyCount struct {
	Month string `json:"date"`
	Count int    `json:"count"`
}

type CompanyShare struct {
	CompanyName string  `json:"company_name"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// MonthlyBuckets groups registration dates by YYYY-MM and returns the
// buckets in chronological order.
func MonthlyBuckets(dates []time.Time) []MonthlyCount {
	counts := map[string]int{}
	for _, d := range dates {
		counts[d.Format("2006-01")]++
	}
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)
	buckets := make([]MonthlyCount, 0, len(months))
	for _, m := range months {
		buckets = append(buckets, MonthlyCount{Month: m, Count: counts[m]})
	}
	return buckets
}

// AverageMonthlyGrowth is the mean bucket count, 0.0 when there are no
// buckets.
func AverageMonthlyGrowth(buckets []MonthlyCount) float64 {
	if len(buckets) == 0 {
		return 0.0
	}
	sum := 0
	for _, b := range buckets {
		sum += b.Count
	}
	return float64(sum) / float64(len(buckets))
}

// ProjectNextMonth fits a least-squares line of count vs. bucket index and
// evaluates it at the next index, clamped to zero and rounded to the nearest
// integer. Fewer than two buckets gives no projection.
func ProjectNextMonth(buckets []MonthlyCount) *int {
	n := len(buckets)
	if n < 2 {
		return nil
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, b := range buckets {
		x, y := float64(i), float64(b.Count)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return nil
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn
	projected := int(math.Round(slope*fn + intercept))
	if projected < 0 {
		projected = 0
	}
	return &projected
}

// CompanyDistribution counts truckers per company (nil company coalesced to
// Independent) and computes each company's share of the total. Shares are
// ordered by descending count, then company name, so output is stable.
// The most common company breaks count ties lexicographically.
func CompanyDistribution(companies []*string) (shares []CompanyShare, mostCommon *string) {
	counts := map[string]int{}
	for _, c := range companies {
		name := Independent
		if c != nil && *c != "" {
			name = *c
		}
		counts[name]++
	}
	total := len(companies)
	shares = make([]CompanyShare, 0, len(counts))
	for name, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = Round2(float64(count) / float64(total) * 100)
		}
		shares = append(shares, CompanyShare{CompanyName: name, Count: count, Percentage: pct})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].CompanyName < shares[j].CompanyName
	})
	if len(shares) > 0 {
		mostCommon = &shares[0].CompanyName
	}
	return shares, mostCommon
}

// ChurnRate is archived / (archived + live) as a percentage, 0.0 when there
// have never been any records.
func ChurnRate(archived, live int64) float64 {
	total := archived + live
	if total == 0 {
		return 0.0
	}
	return Round2(float64(archived) / float64(total) * 100)
}

// ComplianceRate is verified live documents over all documents ever
// uploaded, live and archived.
func ComplianceRate(verified, live, archived int64) float64 {
	total := live + archived
	if total == 0 {
		return 0.0
	}
	return Round2(float64(verified) / float64(total) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
