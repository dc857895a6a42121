package domain

import "time"

// Status is the lifecycle state of a campaign. Any status may transition
// to any other; enum membership is the only constraint.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TargetAudience describes who a campaign is aimed at. Replaced wholesale
// on update.
type TargetAudience struct {
	Demographics string   `json:"demographics,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// Metrics holds campaign performance counters. Fields are independently
// nullable so that a partial update can set some counters while leaving the
// rest untouched.
type Metrics struct {
	Impressions *int64   `json:"impressions,omitempty"`
	Clicks      *int64   `json:"clicks,omitempty"`
	Conversions *int64   `json:"conversions,omitempty"`
	ROI         *float64 `json:"roi,omitempty"`
}

// Merge returns m overwritten by the fields present in p. Fields absent
// from p survive untouched; Metrics is never replaced wholesale.
func (m Metrics) Merge(p Metrics) Metrics {
	if p.Impressions != nil {
		m.Impressions = p.Impressions
	}
	if p.Clicks != nil {
		m.Clicks = p.Clicks
	}
	if p.Conversions != nil {
		m.Conversions = p.Conversions
	}
	if p.ROI != nil {
		m.ROI = p.ROI
	}
	return m
}

// Campaign is owned by exactly one client and references zero or more team
// members by user id. EndDate, when set, must not precede StartDate.
type Campaign struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	Budget         float64         `json:"budget"`
	Status         Status          `json:"status"`
	Objectives     []string        `json:"objectives"`
	TargetAudience *TargetAudience `json:"targetAudience,omitempty"`
	Channels       []string        `json:"channels,omitempty"`
	Metrics        Metrics         `json:"metrics"`
	Assets         []string        `json:"assets,omitempty"`
	Team           []string        `json:"team"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ValidDateRange reports whether end is on or after start. A nil end is
// always valid.
func ValidDateRange(start time.Time, end *time.Time) bool {
	return end == nil || !end.Before(start)
}

// CampaignUpdate is a partial update for Campaign. Nil fields are left
// untouched. Objectives, TargetAudience and Channels replace the stored
// value wholesale. Metrics and Team are excluded; they have dedicated
// merge operations.
type CampaignUpdate struct {
	ClientID       *string         `json:"client,omitempty"`
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	Budget         *float64        `json:"budget,omitempty"`
	Status         *Status         `json:"status,omitempty"`
	Objectives     []string        `json:"objectives,omitempty"`
	TargetAudience *TargetAudience `json:"targetAudience,omitempty"`
	Channels       []string        `json:"channels,omitempty"`
}

// Apply merges the partial onto c.
func (u CampaignUpdate) Apply(c *Campaign) {
	if u.ClientID != nil {
		c.ClientID = *u.ClientID
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.StartDate != nil {
		c.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		c.EndDate = u.EndDate
	}
	if u.Budget != nil {
		c.Budget = *u.Budget
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Objectives != nil {
		c.Objectives = u.Objectives
	}
	if u.TargetAudience != nil {
		c.TargetAudience = u.TargetAudience
	}
	if u.Channels != nil {
		c.Channels = u.Channels
	}
}
