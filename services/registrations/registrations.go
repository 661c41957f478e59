// Package registrations covers the Registrations app: signups, categories and campuses.
package registrations

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

const basePath = "/registrations/v2"

type SignupAttributes struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	StartsAt    string `json:"starts_at,omitempty"`
	EndsAt      string `json:"ends_at,omitempty"`
	ArchivedAt  string `json:"archived_at,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Listed      bool   `json:"listed,omitempty"`
	Active      bool   `json:"active,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type CategoryAttributes struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type CampusAttributes struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type (
	Signup   = resources.Entity[SignupAttributes]
	Category = resources.Entity[CategoryAttributes]
	Campus   = resources.Entity[CampusAttributes]
)

// Service groups the Registrations app endpoints.
type Service struct {
	Signups    *resources.Resource[SignupAttributes]
	Categories *resources.Resource[CategoryAttributes]
	Campuses   *resources.Resource[CampusAttributes]
}

// New returns the Registrations app bound to client.
func New(client resources.Requester) *Service {
	return &Service{
		Signups:    resources.New[SignupAttributes](client, "Signup", basePath+"/signups"),
		Categories: resources.New[CategoryAttributes](client, "Category", basePath+"/categories"),
		Campuses:   resources.New[CampusAttributes](client, "Campus", basePath+"/campuses"),
	}
}

// ListSignupsInCategory lists the signups filed under one category.
func (s *Service) ListSignupsInCategory(ctx context.Context, categoryID string, opts *resources.ListOptions) (*resources.Document[[]Signup], error) {
	return resources.Under[SignupAttributes](s.Categories, "Signup", "category_id", categoryID, "signups").List(ctx, opts)
}
