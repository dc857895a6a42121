package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// List-shaped and nested fields (objectives, target audience, channels,
// metrics, assets, team) are stored as jsonb so the entity round-trips
// whole; merges happen in the service layer, not in SQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, client_id, name, description, start_date, end_date, budget, status, objectives, target_audience, channels, metrics, assets, team, is_active, created_at, updated_at`

// campaignSortColumns maps logical sort fields onto columns. Unknown
// fields fall back to start date descending.
var campaignSortColumns = map[string]string{
	"name":      "name",
	"startDate": "start_date",
	"endDate":   "end_date",
	"budget":    "budget",
	"status":    "status",
	"createdAt": "created_at",
}

func scanCampaignFields(row pgx.Row) (domain.Campaign, error) {
	var (
		c                                       domain.Campaign
		objectivesRaw, audienceRaw, channelsRaw []byte
		metricsRaw, assetsRaw, teamRaw          []byte
	)
	err := row.Scan(&c.ID, &c.ClientID, &c.Name, &c.Description, &c.StartDate, &c.EndDate, &c.Budget, &c.Status,
		&objectivesRaw, &audienceRaw, &channelsRaw, &metricsRaw, &assetsRaw, &teamRaw,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	for raw, dst := range map[*[]byte]any{
		&objectivesRaw: &c.Objectives,
		&audienceRaw:   &c.TargetAudience,
		&channelsRaw:   &c.Channels,
		&metricsRaw:    &c.Metrics,
		&assetsRaw:     &c.Assets,
		&teamRaw:       &c.Team,
	} {
		if len(*raw) == 0 {
			continue
		}
		if err = json.Unmarshal(*raw, dst); err != nil {
			return c, err
		}
	}
	if c.Team == nil {
		c.Team = []string{}
	}
	return c, nil
}

func campaignArgs(c *domain.Campaign) (objectives, audience, channels, metrics, assets, team []byte, err error) {
	if objectives, err = json.Marshal(emptyIfNil(c.Objectives)); err != nil {
		return
	}
	if c.TargetAudience != nil {
		if audience, err = json.Marshal(c.TargetAudience); err != nil {
			return
		}
	}
	if channels, err = json.Marshal(emptyIfNil(c.Channels)); err != nil {
		return
	}
	if metrics, err = json.Marshal(c.Metrics); err != nil {
		return
	}
	if assets, err = json.Marshal(emptyIfNil(c.Assets)); err != nil {
		return
	}
	team, err = json.Marshal(emptyIfNil(c.Team))
	return
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Create inserts a new campaign record.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	objectives, audience, channels, metrics, assets, team, err := campaignArgs(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns (id, client_id, name, description, start_date, end_date, budget, status, objectives, target_audience, channels, metrics, assets, team, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		c.ID, c.ClientID, c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status,
		objectives, audience, channels, metrics, assets, team, c.IsActive, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaignFields(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const campaignListWhere = `WHERE is_active = TRUE AND ($1 = '' OR name ILIKE '%' || $1 || '%') AND ($2 = '' OR status = $2) AND ($3 = '' OR client_id = $3)`

// List returns active campaigns matching the filter, sorted and paged,
// plus the total match count.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter, sort port.Sort, page port.PageRequest) (port.Page[domain.Campaign], error) {
	var result port.Page[domain.Campaign]

	col, ok := campaignSortColumns[sort.Field]
	dir := "DESC"
	if !ok {
		col = "start_date"
	} else if !sort.Desc {
		dir = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM campaigns %s ORDER BY %s %s LIMIT $4 OFFSET $5`, campaignColumns, campaignListWhere, col, dir)
	rows, err := r.pool.Query(ctx, query, f.Name, f.Status, f.ClientID, page.Limit, page.Offset())
	if err != nil {
		return result, err
	}
	result.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaignFields(row)
	})
	if err != nil {
		return result, err
	}

	result.Total, err = r.CountActive(ctx, f)
	return result, err
}

// AllByClient returns every active campaign of one client, newest start
// date first.
func (r *CampaignRepository) AllByClient(ctx context.Context, clientID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE is_active = TRUE AND client_id = $1 ORDER BY start_date DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaignFields(row)
	})
}

// CountActive counts active campaigns matching the filter.
func (r *CampaignRepository) CountActive(ctx context.Context, f port.CampaignFilter) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0) FROM campaigns `+campaignListWhere, f.Name, f.Status, f.ClientID).Scan(&n)
	return n, err
}

// CountCreatedSince counts active campaigns created at or after since.
func (r *CampaignRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0) FROM campaigns WHERE is_active = TRUE AND created_at >= $1`, since).Scan(&n)
	return n, err
}

// Update overwrites the stored record.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	objectives, audience, channels, metrics, assets, team, err := campaignArgs(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE campaigns SET client_id = $2, name = $3, description = $4, start_date = $5, end_date = $6, budget = $7, status = $8, objectives = $9, target_audience = $10, channels = $11, metrics = $12, assets = $13, team = $14, is_active = $15, updated_at = $16 WHERE id = $1`,
		c.ID, c.ClientID, c.Name, c.Description, c.StartDate, c.EndDate, c.Budget, c.Status,
		objectives, audience, channels, metrics, assets, team, c.IsActive, c.UpdatedAt)
	return err
}
