package domain

import "time"

// Address is a client's postal address. It is replaced wholesale on update,
// never merged field by field.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// SocialMediaHandles groups a client's social account names. Replaced
// wholesale on update like Address.
type SocialMediaHandles struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Client is an advertiser record that campaigns reference. Name is unique
// across all clients, enforced at create and rename.
type Client struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	ContactPerson      string              `json:"contactPerson"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Address            *Address            `json:"address,omitempty"`
	Industry           string              `json:"industry,omitempty"`
	Logo               string              `json:"logo,omitempty"`
	Website            string              `json:"website,omitempty"`
	SocialMediaHandles *SocialMediaHandles `json:"socialMediaHandles,omitempty"`
	Notes              string              `json:"notes,omitempty"`
	IsActive           bool                `json:"isActive"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// ClientUpdate is a partial update for Client. Nil fields are left
// untouched; non-nil fields overwrite the stored value at the top level.
// Address and SocialMediaHandles replace the whole nested struct.
type ClientUpdate struct {
	Name               *string             `json:"name,omitempty"`
	ContactPerson      *string             `json:"contactPerson,omitempty"`
	Email              *string             `json:"email,omitempty"`
	Phone              *string             `json:"phone,omitempty"`
	Address            *Address            `json:"address,omitempty"`
	Industry           *string             `json:"industry,omitempty"`
	Logo               *string             `json:"logo,omitempty"`
	Website            *string             `json:"website,omitempty"`
	SocialMediaHandles *SocialMediaHandles `json:"socialMediaHandles,omitempty"`
	Notes              *string             `json:"notes,omitempty"`
}

// Apply merges the partial onto c.
func (u ClientUpdate) Apply(c *Client) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.ContactPerson != nil {
		c.ContactPerson = *u.ContactPerson
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Address != nil {
		c.Address = u.Address
	}
	if u.Industry != nil {
		c.Industry = *u.Industry
	}
	if u.Logo != nil {
		c.Logo = *u.Logo
	}
	if u.Website != nil {
		c.Website = *u.Website
	}
	if u.SocialMediaHandles != nil {
		c.SocialMediaHandles = u.SocialMediaHandles
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
}
