package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// ClientRepository implements port.ClientRepository using pgxpool. Nested
// structures (address, social handles) are stored as jsonb.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a new repository instance.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, name, contact_person, email, phone, address, industry, logo, website, social_media, notes, is_active, created_at, updated_at`

// clientSortColumns maps logical sort fields onto columns. Unknown fields
// fall back to creation time descending.
var clientSortColumns = map[string]string{
	"name":      "name",
	"industry":  "industry",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func scanClientFields(row pgx.Row) (domain.Client, error) {
	var (
		c          domain.Client
		addrRaw    []byte
		handlesRaw []byte
	)
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone, &addrRaw, &c.Industry, &c.Logo, &c.Website, &handlesRaw, &c.Notes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if len(addrRaw) > 0 {
		if err = json.Unmarshal(addrRaw, &c.Address); err != nil {
			return c, err
		}
	}
	if len(handlesRaw) > 0 {
		if err = json.Unmarshal(handlesRaw, &c.SocialMediaHandles); err != nil {
			return c, err
		}
	}
	return c, nil
}

func clientArgs(c *domain.Client) ([]byte, []byte, error) {
	var addrRaw, handlesRaw []byte
	var err error
	if c.Address != nil {
		if addrRaw, err = json.Marshal(c.Address); err != nil {
			return nil, nil, err
		}
	}
	if c.SocialMediaHandles != nil {
		if handlesRaw, err = json.Marshal(c.SocialMediaHandles); err != nil {
			return nil, nil, err
		}
	}
	return addrRaw, handlesRaw, nil
}

// Create inserts a new client record.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	addrRaw, handlesRaw, err := clientArgs(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO clients (id, name, contact_person, email, phone, address, industry, logo, website, social_media, notes, is_active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.Name, c.ContactPerson, c.Email, c.Phone, addrRaw, c.Industry, c.Logo, c.Website, handlesRaw, c.Notes, c.IsActive, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetByID returns a client by id, or nil when absent.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	c, err := scanClientFields(r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByName returns a client by exact name match, or nil when absent.
func (r *ClientRepository) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	c, err := scanClientFields(r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns active clients matching the filter, sorted and paged, plus
// the total match count.
func (r *ClientRepository) List(ctx context.Context, f port.ClientFilter, sort port.Sort, page port.PageRequest) (port.Page[domain.Client], error) {
	var result port.Page[domain.Client]

	where := `WHERE is_active = TRUE AND ($1 = '' OR name ILIKE '%' || $1 || '%') AND ($2 = '' OR industry = $2)`

	col, ok := clientSortColumns[sort.Field]
	dir := "DESC"
	if !ok {
		col = "created_at"
	} else if !sort.Desc {
		dir = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM clients %s ORDER BY %s %s LIMIT $3 OFFSET $4`, clientColumns, where, col, dir)
	rows, err := r.pool.Query(ctx, query, f.Name, f.Industry, page.Limit, page.Offset())
	if err != nil {
		return result, err
	}
	result.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		return scanClientFields(row)
	})
	if err != nil {
		return result, err
	}

	err = r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0) FROM clients `+where, f.Name, f.Industry).Scan(&result.Total)
	return result, err
}

// CountActive counts active clients.
func (r *ClientRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(count(*),0) FROM clients WHERE is_active = TRUE`).Scan(&n)
	return n, err
}

// Update overwrites the stored record.
func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	addrRaw, handlesRaw, err := clientArgs(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE clients SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6, industry = $7, logo = $8, website = $9, social_media = $10, notes = $11, is_active = $12, updated_at = $13 WHERE id = $1`,
		c.ID, c.Name, c.ContactPerson, c.Email, c.Phone, addrRaw, c.Industry, c.Logo, c.Website, handlesRaw, c.Notes, c.IsActive, c.UpdatedAt)
	return err
}

// Delete physically removes the record, reporting whether a row was
// deleted.
func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
