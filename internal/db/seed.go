package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"dmc-campaigns/internal/auth"
	"dmc-campaigns/internal/core/domain"
)

// Seed inserts demo data: an admin account, a handful of clients and a few
// campaigns per client. Existing rows are left alone, so seeding is safe
// to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()

	adminHash, err := auth.HashPassword("admin12345")
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,TRUE,$6,$6) ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), "Admin", "admin@example.com", adminHash, domain.RoleAdmin, now)
	if err != nil {
		return err
	}

	industries := []string{"retail", "media", "finance"}
	for i := 1; i <= 3; i++ {
		clientID := uuid.NewString()
		name := fmt.Sprintf("Demo Client %d", i)
		tag, err := pool.Exec(ctx, `INSERT INTO clients (id, name, contact_person, email, phone, industry, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,TRUE,$7,$7) ON CONFLICT (name) DO NOTHING`,
			clientID, name, fmt.Sprintf("Contact %d", i), fmt.Sprintf("client%d@example.com", i), fmt.Sprintf("+1-555-010%d", i), industries[i-1], now)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// client already seeded, skip its campaigns too
			continue
		}

		for j := 1; j <= 2; j++ {
			start := now.AddDate(0, 0, -7*j)
			end := start.AddDate(0, 1, 0)
			_, err = pool.Exec(ctx, `INSERT INTO campaigns (id, client_id, name, description, start_date, end_date, budget, status, objectives, metrics, team, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'{}','[]',TRUE,$10,$10) ON CONFLICT DO NOTHING`,
				uuid.NewString(), clientID,
				fmt.Sprintf("Campaign %d for %s", j, name),
				"Seeded demo campaign",
				start, end, float64(5000*j), domain.StatusActive,
				`["awareness","engagement"]`, now)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
