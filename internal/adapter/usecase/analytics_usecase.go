package usecase

import (
	"context"
	"math"
	"time"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// recentWindow is the lookback for the recent-campaigns count.
const recentWindow = 30 * 24 * time.Hour

// AnalyticsUseCase implements the reporting operations. It reads through
// the campaign and client repositories; nothing here writes.
type AnalyticsUseCase struct {
	campaigns port.CampaignRepository
	clients   port.ClientRepository
}

// NewAnalyticsUseCase creates the analytics service.
func NewAnalyticsUseCase(campaigns port.CampaignRepository, clients port.ClientRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{campaigns: campaigns, clients: clients}
}

// Overview returns the active campaign and client counts, plus the named
// campaign's metrics when campaignID is non-empty.
func (u *AnalyticsUseCase) Overview(ctx context.Context, campaignID string) (*port.AnalyticsOverview, error) {
	totalCampaigns, err := u.campaigns.CountActive(ctx, port.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	totalClients, err := u.clients.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	overview := &port.AnalyticsOverview{
		Summary: port.AnalyticsSummary{
			TotalCampaigns: totalCampaigns,
			TotalClients:   totalClients,
			DateGenerated:  time.Now().UTC(),
		},
	}

	if campaignID != "" {
		campaign, err := u.campaigns.GetByID(ctx, campaignID)
		if err != nil {
			return nil, err
		}
		if campaign == nil || !campaign.IsActive {
			return nil, apperror.NotFound("Campaign not found")
		}
		overview.Campaign = &port.CampaignMetricsView{
			ID:      campaign.ID,
			Name:    campaign.Name,
			Metrics: zeroFilledMetrics(campaign.Metrics),
		}
	}
	return overview, nil
}

// ClientAnalytics aggregates budget and metrics over a client's active
// campaigns.
func (u *AnalyticsUseCase) ClientAnalytics(ctx context.Context, clientID string) (*port.ClientAnalytics, error) {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.IsActive {
		return nil, apperror.NotFound("Client not found")
	}

	campaigns, err := u.campaigns.AllByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	totals := port.ClientAnalyticsTotals{TotalCampaigns: len(campaigns)}
	rows := make([]port.CampaignPerformance, 0, len(campaigns))
	for _, c := range campaigns {
		totals.TotalBudget += c.Budget
		metrics := zeroFilledMetrics(c.Metrics)
		totals.TotalImpressions += *metrics.Impressions
		totals.TotalClicks += *metrics.Clicks
		totals.TotalConversions += *metrics.Conversions
		rows = append(rows, port.CampaignPerformance{
			ID:      c.ID,
			Name:    c.Name,
			Status:  c.Status,
			Metrics: metrics,
		})
	}
	if totals.TotalImpressions > 0 {
		totals.AverageCTR = roundRate(totals.TotalClicks, totals.TotalImpressions)
	}
	if totals.TotalClicks > 0 {
		totals.AverageConversionRate = roundRate(totals.TotalConversions, totals.TotalClicks)
	}

	return &port.ClientAnalytics{
		Client: port.ClientRef{
			ID:            client.ID,
			Name:          client.Name,
			ContactPerson: client.ContactPerson,
			Email:         client.Email,
		},
		Summary:   totals,
		Campaigns: rows,
	}, nil
}

// Summary returns ledger-wide counts and the per-status breakdown.
func (u *AnalyticsUseCase) Summary(ctx context.Context) (*port.SummaryStats, error) {
	totalCampaigns, err := u.campaigns.CountActive(ctx, port.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	totalClients, err := u.clients.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.Status]int64, 4)
	for _, s := range []domain.Status{domain.StatusDraft, domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled} {
		n, err := u.campaigns.CountActive(ctx, port.CampaignFilter{Status: string(s)})
		if err != nil {
			return nil, err
		}
		byStatus[s] = n
	}

	now := time.Now().UTC()
	recent, err := u.campaigns.CountCreatedSince(ctx, now.Add(-recentWindow))
	if err != nil {
		return nil, err
	}

	return &port.SummaryStats{
		Counts: port.SummaryCounts{
			TotalCampaigns:  totalCampaigns,
			TotalClients:    totalClients,
			ActiveCampaigns: byStatus[domain.StatusActive],
			RecentCampaigns: recent,
		},
		CampaignsByStatus: byStatus,
		GeneratedAt:       now,
	}, nil
}

// zeroFilledMetrics substitutes zero for absent counters so analytics rows
// always carry every field.
func zeroFilledMetrics(m domain.Metrics) domain.Metrics {
	out := m
	if out.Impressions == nil {
		out.Impressions = new(int64)
	}
	if out.Clicks == nil {
		out.Clicks = new(int64)
	}
	if out.Conversions == nil {
		out.Conversions = new(int64)
	}
	if out.ROI == nil {
		out.ROI = new(float64)
	}
	return out
}

// roundRate returns part/whole as a percentage rounded to two decimals.
func roundRate(part, whole int64) float64 {
	return math.Round(float64(part)/float64(whole)*100*100) / 100
}
