// Package report computes aggregate financial metrics over a set of
// transactions filtered by an inclusive calendar-date range. It is pure:
// no I/O, no state, no clock.
package report

import (
	"math"
	"sort"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Transaction type tags.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Record carries the fields of a transaction that reporting needs.
type Record struct {
	Type     string  // "income" or "expense"
	Amount   float64 // non-negative by upstream invariant
	Category string
	Date     string // YYYY-MM-DD; a trailing Txx:xx:xx suffix is tolerated
}

// Range is an inclusive calendar-date interval. Both bounds are YYYY-MM-DD.
// When Start > End no date satisfies both bounds and the result is empty.
type Range struct {
	Start string
	End   string
}

// Metrics are the aggregate figures for a filtered transaction set.
type Metrics struct {
	Income               float64
	Expenses             float64
	Balance              float64 // Income - Expenses, may be negative
	CategorySpending     map[string]float64
	IncomeByCategory     map[string]float64
	DailySpending        map[string]float64 // keyed by YYYY-MM-DD, expenses only
	AverageDailySpending float64
	TransactionCount     int
}

// ComputeMetrics filters records to those dated within r (inclusive on both
// ends) and computes totals, per-category and per-day groupings. All dates
// are interpreted as calendar dates at UTC midnight, so a record dated
// exactly on either bound is always included regardless of the caller's
// timezone. Records whose date does not parse are excluded; non-finite
// amounts count as zero.
func ComputeMetrics(records []Record, r Range) Metrics {
	m := Metrics{
		CategorySpending: make(map[string]float64),
		IncomeByCategory: make(map[string]float64),
		DailySpending:    make(map[string]float64),
	}

	start, startOK := parseDay(r.Start)
	end, endOK := parseDay(r.End)
	if !startOK || !endOK {
		return m
	}

	for _, rec := range records {
		day := dayPart(rec.Date)
		date, ok := parseDay(day)
		if !ok || date.Before(start) || date.After(end) {
			continue
		}

		m.TransactionCount++
		amount := sanitizeAmount(rec.Amount)

		switch rec.Type {
		case TypeIncome:
			m.Income += amount
			m.IncomeByCategory[rec.Category] += amount
		case TypeExpense:
			m.Expenses += amount
			m.CategorySpending[rec.Category] += amount
			m.DailySpending[day] += amount
		}
	}

	m.Balance = m.Income - m.Expenses
	if days := len(m.DailySpending); days > 0 {
		m.AverageDailySpending = m.Expenses / float64(days)
	}

	return m
}

// SavingsRate returns the balance as a percentage of income. The second
// return is false when there is no income to measure against.
func SavingsRate(m Metrics) (float64, bool) {
	if m.Income <= 0 {
		return 0, false
	}
	return m.Balance / m.Income * 100, true
}

// CategoryShare is one category's contribution to a grouped total.
type CategoryShare struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// TopCategories returns up to n categories ordered by amount descending,
// ties broken by name. Percent is each category's share of the map's total.
// n <= 0 means no limit.
func TopCategories(byCategory map[string]float64, n int) []CategoryShare {
	var total float64
	for _, amount := range byCategory {
		total += amount
	}

	shares := make([]CategoryShare, 0, len(byCategory))
	for category, amount := range byCategory {
		share := CategoryShare{Category: category, Amount: amount}
		if total > 0 {
			share.Percent = amount / total * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount == shares[j].Amount {
			return shares[i].Category < shares[j].Category
		}
		return shares[i].Amount > shares[j].Amount
	})

	if n > 0 && len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// dayPart strips a time-of-day suffix from an ISO timestamp.
func dayPart(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sanitizeAmount maps NaN and infinities to zero so a single bad record
// cannot poison every aggregate.
func sanitizeAmount(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return a
}
