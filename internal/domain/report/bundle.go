package report

import (
	"math"
	"sort"
)

// Type identifies a report family.
type Type string

// Report types
const (
	TypeBookings  Type = "bookings"
	TypePayments  Type = "payments"
	TypeJobs      Type = "jobs"
	TypeLeaves    Type = "leaves"
	TypeInventory Type = "inventory"
	TypeUsers     Type = "users"
	TypeDashboard Type = "dashboard"
)

// AllTypes lists every single-collection report type (excludes the
// dashboard composite).
func AllTypes() []Type {
	return []Type{TypeBookings, TypePayments, TypeJobs, TypeLeaves, TypeInventory, TypeUsers}
}

// IsValid reports whether t names a known report type.
func (t Type) IsValid() bool {
	switch t {
	case TypeBookings, TypePayments, TypeJobs, TypeLeaves, TypeInventory, TypeUsers, TypeDashboard:
		return true
	}
	return false
}

// Row is a flattened, display-ready projection of a domain record.
// Field presence varies per report type; there is no shared row schema.
type Row map[string]any

// BreakdownEntry is one partition of a categorical grouping.
type BreakdownEntry struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // one-decimal precision share of total
	Amount     float64 `json:"amount,omitempty"`
}

// Breakdown is an ordered grouping of rows by a categorical field.
// Entries are ordered by descending count, ties broken by category name,
// so repeated aggregation over an unchanged store is deterministic.
type Breakdown []BreakdownEntry

// Bundle is the aggregated data object for one report request.
// It is created fresh per request and never persisted.
type Bundle struct {
	Rows       []Row                `json:"rows"`
	Summary    map[string]float64   `json:"summary"`
	Breakdowns map[string]Breakdown `json:"breakdowns"`
}

// NewBundle returns an empty bundle with non-nil collections so an empty
// filtered set serializes as [] / {} rather than null.
func NewBundle() *Bundle {
	return &Bundle{
		Rows:       make([]Row, 0),
		Summary:    make(map[string]float64),
		Breakdowns: make(map[string]Breakdown),
	}
}

// Percentage returns part's share of total as a percentage rounded to one
// decimal place. A zero total yields 0 rather than NaN.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, the precision used for money sums.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rate returns part/total*100 rounded to one decimal, with a zero total
// yielding 0. Used for completion/payment/approval rates in summaries.
func Rate(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return Round1(part / total * 100)
}

// BuildBreakdown partitions counted categories into an ordered breakdown.
// counts maps category to record count; amounts (optional, may be nil)
// maps category to a type-specific numeric extra carried on each entry.
func BuildBreakdown(counts map[string]int, amounts map[string]float64) Breakdown {
	total := 0
	for _, n := range counts {
		total += n
	}

	entries := make(Breakdown, 0, len(counts))
	for category, n := range counts {
		e := BreakdownEntry{
			Category:   category,
			Count:      n,
			Percentage: Percentage(n, total),
		}
		if amounts != nil {
			e.Amount = Round2(amounts[category])
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Category < entries[j].Category
	})

	return entries
}
