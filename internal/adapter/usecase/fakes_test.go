package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// In-memory repository fakes. They store values, hand out copies and
// count writes, which is enough to observe persistence behavior without a
// database.

type fakeUserRepo struct {
	users   map[string]domain.User
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []string) ([]domain.User, error) {
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	r.users[u.ID] = *u
	r.updates++
	return nil
}

type fakeClientRepo struct {
	clients map[string]domain.Client
	updates int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]domain.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, c *domain.Client) error {
	r.clients[c.ID] = *c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := r.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeClientRepo) GetByName(_ context.Context, name string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List(_ context.Context, f port.ClientFilter, _ port.Sort, page port.PageRequest) (port.Page[domain.Client], error) {
	var matched []domain.Client
	for _, c := range r.clients {
		if !c.IsActive {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Industry != "" && c.Industry != f.Industry {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, page), nil
}

func (r *fakeClientRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, c := range r.clients {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *domain.Client) error {
	r.clients[c.ID] = *c
	r.updates++
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

type fakeCampaignRepo struct {
	campaigns map[string]domain.Campaign
	updates   int
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]domain.Campaign)}
}

func (r *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) error {
	r.campaigns[c.ID] = *c
	return nil
}

func (r *fakeCampaignRepo) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	if c, ok := r.campaigns[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeCampaignRepo) List(_ context.Context, f port.CampaignFilter, _ port.Sort, page port.PageRequest) (port.Page[domain.Campaign], error) {
	var matched []domain.Campaign
	for _, c := range r.campaigns {
		if !c.IsActive {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		if f.ClientID != "" && c.ClientID != f.ClientID {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartDate.After(matched[j].StartDate) })
	return paginate(matched, page), nil
}

func (r *fakeCampaignRepo) AllByClient(_ context.Context, clientID string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.IsActive && c.ClientID == clientID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *fakeCampaignRepo) CountActive(_ context.Context, f port.CampaignFilter) (int64, error) {
	var n int64
	for _, c := range r.campaigns {
		if !c.IsActive {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		if f.ClientID != "" && c.ClientID != f.ClientID {
			continue
		}
		n++
	}
	return n, nil
}

func (r *fakeCampaignRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, c := range r.campaigns {
		if c.IsActive && !c.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeCampaignRepo) Update(_ context.Context, c *domain.Campaign) error {
	r.campaigns[c.ID] = *c
	r.updates++
	return nil
}

func paginate[T any](items []T, page port.PageRequest) port.Page[T] {
	total := int64(len(items))
	start := page.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + page.Limit
	if page.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return port.Page[T]{Items: items[start:end], Total: total}
}
