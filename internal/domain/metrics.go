package domain

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyBucket is an ephemeral (year, month) aggregation produced while
// computing a metrics response. Total is in cents; it is zero for
// entities without a monetary value.
type MonthlyBucket struct {
	Year  int
	Month time.Month
	Count int64
	Total int64
}

// CategoryTotal is the summed value and record count for one category label.
type CategoryTotal struct {
	Category string
	Total    int64
	Count    int64
}

// MinistryTotal is the summed value of transactions linked to one ministry.
type MinistryTotal struct {
	MinistryID uuid.UUID
	Name       string
	Total      int64
}

// MinistryActivity joins a ministry to its leader's name and its linked
// transactions. Ministries without transactions carry zero totals.
type MinistryActivity struct {
	MinistryID       uuid.UUID
	MinistryName     string
	Leader           string
	Total            int64
	TransactionCount int64
}

// MonthTotal is one point of a financial monthly time series.
type MonthTotal struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

// MonthComparison compares the current calendar month's income to the
// previous one.
type MonthComparison struct {
	CurrentMonth     string  `json:"current_month"`
	PreviousMonth    string  `json:"previous_month"`
	PercentageChange float64 `json:"percentage_change"`
}

// FinancialMetrics is the composed financial report for one owner.
type FinancialMetrics struct {
	TotalIncome    string            `json:"total_income"`
	ByCategory     map[string]string `json:"by_category"`
	MonthlySummary []MonthTotal      `json:"monthly_summary"`
	Comparison     MonthComparison   `json:"comparison"`
}

// AgeDistribution buckets members by whole-year age.
type AgeDistribution struct {
	Under18    int64 `json:"under_18"`
	From18To30 int64 `json:"18_30"`
	From31To50 int64 `json:"31_50"`
	Above50    int64 `json:"above_50"`
}

// BaptismStats summarizes recorded baptism dates.
type BaptismStats struct {
	TotalBaptized    int64 `json:"total_baptized"`
	PendingBaptism   int64 `json:"pending_baptism"`
	BaptismsThisYear int64 `json:"baptisms_this_year"`
}

// GrowthStats summarizes the latest month of membership growth.
type GrowthStats struct {
	NewMembersMonth  int64   `json:"new_members_month"`
	PercentageGrowth float64 `json:"percentage_growth"`
}

// MonthCount is one point of a membership monthly growth series.
type MonthCount struct {
	Month      string `json:"month"`
	NewMembers int64  `json:"new_members"`
}

// MembershipMetrics is the composed membership report for one owner.
type MembershipMetrics struct {
	TotalMembers    int64           `json:"total_members"`
	ActiveMembers   int64           `json:"active_members"`
	InactiveMembers int64           `json:"inactive_members"`
	Growth          GrowthStats     `json:"growth"`
	AgeDistribution AgeDistribution `json:"age_distribution"`
	BaptismStats    BaptismStats    `json:"baptism_stats"`
	MonthlyGrowth   []MonthCount    `json:"monthly_growth"`
}

// MinistryBreakdown is one ministry's row in the distribution report.
type MinistryBreakdown struct {
	MinistryName      string `json:"ministry_name"`
	Leader            string `json:"leader"`
	TotalTransactions string `json:"total_transactions"`
	TransactionCount  int64  `json:"transaction_count"`
}

// MinistryFinancialSummary aggregates ministry-linked spending. ByMinistry
// is keyed by ministry id.
type MinistryFinancialSummary struct {
	TotalSpent string            `json:"total_spent"`
	ByMinistry map[string]string `json:"by_ministry"`
}

// MinistryMetrics is the composed ministry report for one owner.
type MinistryMetrics struct {
	TotalMinistries     int64                    `json:"total_ministries"`
	ActiveMinistries    int64                    `json:"active_ministries"`
	InactiveMinistries  int64                    `json:"inactive_ministries"`
	MembersDistribution []MinistryBreakdown      `json:"members_distribution"`
	FinancialSummary    MinistryFinancialSummary `json:"financial_summary"`
}

// QuickStats carries dashboard headline counters.
type QuickStats struct {
	TotalActiveMembers    int64 `json:"total_active_members"`
	TotalActiveMinistries int64 `json:"total_active_ministries"`
}

// RecentActivity counts records touched in the trailing seven days.
type RecentActivity struct {
	NewMembersWeek      int64 `json:"new_members_week"`
	NewTransactionsWeek int64 `json:"new_transactions_week"`
	MinistryChanges     int64 `json:"ministry_changes"`
}

// FinancialHealth summarizes the current calendar month's money flow.
type FinancialHealth struct {
	TotalIncome   string `json:"total_income"`
	TotalInflows  string `json:"total_inflows"`
	TotalOutflows string `json:"total_outflows"`
}

// RankedCategory is one row of the dashboard top-categories ranking.
type RankedCategory struct {
	Name       string `json:"name"`
	Total      string `json:"total"`
	Percentage string `json:"percentage"`
}

// RankedMinistry is one row of the dashboard top-ministries ranking.
type RankedMinistry struct {
	Name              string `json:"name"`
	TotalTransactions string `json:"total_transactions"`
}

// DashboardMetrics is the composed landing-screen summary for one owner.
type DashboardMetrics struct {
	QuickStats      QuickStats       `json:"quick_stats"`
	RecentActivity  RecentActivity   `json:"recent_activity"`
	FinancialHealth FinancialHealth  `json:"financial_health"`
	TopCategories   []RankedCategory `json:"top_categories"`
	TopMinistries   []RankedMinistry `json:"top_ministries"`
}
