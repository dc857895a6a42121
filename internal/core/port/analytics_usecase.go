package port

import (
	"context"
	"time"

	"dmc-campaigns/internal/core/domain"
)

// AnalyticsSummary holds the headline counts returned with every
// analytics overview.
type AnalyticsSummary struct {
	TotalCampaigns int64     `json:"totalCampaigns"`
	TotalClients   int64     `json:"totalClients"`
	DateGenerated  time.Time `json:"dateGenerated"`
}

// CampaignMetricsView is one campaign's metrics in an analytics response.
// Absent counters are reported as zero, never omitted.
type CampaignMetricsView struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Metrics domain.Metrics `json:"metrics"`
}

// AnalyticsOverview is the top-level analytics payload: the summary
// counts, plus one campaign's metrics when a campaign id was requested.
type AnalyticsOverview struct {
	Summary  AnalyticsSummary     `json:"summary"`
	Campaign *CampaignMetricsView `json:"campaign,omitempty"`
}

// ClientAnalyticsTotals aggregates metrics over all of a client's active
// campaigns. Rates are percentages rounded to two decimals; a zero
// denominator yields zero.
type ClientAnalyticsTotals struct {
	TotalCampaigns        int     `json:"totalCampaigns"`
	TotalBudget           float64 `json:"totalBudget"`
	TotalImpressions      int64   `json:"totalImpressions"`
	TotalClicks           int64   `json:"totalClicks"`
	TotalConversions      int64   `json:"totalConversions"`
	AverageCTR            float64 `json:"averageCTR"`
	AverageConversionRate float64 `json:"averageConversionRate"`
}

// CampaignPerformance is one campaign row in a per-client analytics view.
type CampaignPerformance struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Status  domain.Status  `json:"status"`
	Metrics domain.Metrics `json:"metrics"`
}

// ClientAnalytics is the per-client analytics payload.
type ClientAnalytics struct {
	Client    ClientRef             `json:"client"`
	Summary   ClientAnalyticsTotals `json:"summary"`
	Campaigns []CampaignPerformance `json:"campaigns"`
}

// SummaryCounts are the ledger-wide counts of the summary statistics view.
// RecentCampaigns counts campaigns created in the last thirty days.
type SummaryCounts struct {
	TotalCampaigns  int64 `json:"totalCampaigns"`
	TotalClients    int64 `json:"totalClients"`
	ActiveCampaigns int64 `json:"activeCampaigns"`
	RecentCampaigns int64 `json:"recentCampaigns"`
}

// SummaryStats is the cross-campaign summary payload.
type SummaryStats struct {
	Counts            SummaryCounts           `json:"counts"`
	CampaignsByStatus map[domain.Status]int64 `json:"campaignsByStatus"`
	GeneratedAt       time.Time               `json:"generatedAt"`
}

// AnalyticsUseCase is the reporting service. It reads through the client
// and campaign repositories; soft-deleted records never count.
type AnalyticsUseCase interface {
	// Overview returns the headline counts, plus the named campaign's
	// metrics when campaignID is non-empty. NotFound when that campaign
	// is absent or inactive.
	Overview(ctx context.Context, campaignID string) (*AnalyticsOverview, error)
	// ClientAnalytics aggregates metrics over a client's active
	// campaigns. NotFound when the client is absent or inactive.
	ClientAnalytics(ctx context.Context, clientID string) (*ClientAnalytics, error)
	// Summary returns ledger-wide counts and a per-status breakdown.
	Summary(ctx context.Context) (*SummaryStats, error)
}
