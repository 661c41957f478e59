// Package calendar covers the Calendar app: events, event instances and tags.
package calendar

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

const basePath = "/calendar/v2"

// Common event instance filters.
const (
	FilterFuture   = "future"
	FilterApproved = "approved"
	FilterPending  = "pending"
	FilterRejected = "rejected"
)

type EventAttributes struct {
	Name                  string   `json:"name,omitempty"`
	Description           string   `json:"description,omitempty"`
	ApprovalStatus        string   `json:"approval_status,omitempty"`
	PercentApproved       *float64 `json:"percent_approved,omitempty"`
	PercentRejected       *float64 `json:"percent_rejected,omitempty"`
	VisibleInChurchCenter bool     `json:"visible_in_church_center,omitempty"`
	ImageURL              string   `json:"image_url,omitempty"`
	StartsAt              string   `json:"starts_at,omitempty"`
	EndsAt                string   `json:"ends_at,omitempty"`
	CreatedAt             string   `json:"created_at,omitempty"`
	UpdatedAt             string   `json:"updated_at,omitempty"`
}

type EventInstanceAttributes struct {
	StartsAt       string `json:"starts_at,omitempty"`
	EndsAt         string `json:"ends_at,omitempty"`
	AllDay         bool   `json:"all_day,omitempty"`
	Location       string `json:"location,omitempty"`
	Notes          string `json:"notes,omitempty"`
	ApprovalStatus string `json:"approval_status,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type TagAttributes struct {
	Name      string `json:"name,omitempty"`
	Color     string `json:"color,omitempty"`
	Position  *int   `json:"position,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type (
	Event         = resources.Entity[EventAttributes]
	EventInstance = resources.Entity[EventInstanceAttributes]
	Tag           = resources.Entity[TagAttributes]
)

// Service groups the Calendar app endpoints.
type Service struct {
	Events         *resources.Resource[EventAttributes]
	EventInstances *resources.Resource[EventInstanceAttributes]
	Tags           *resources.Resource[TagAttributes]
}

// New returns the Calendar app bound to client.
func New(client resources.Requester) *Service {
	return &Service{
		Events:         resources.New[EventAttributes](client, "Event", basePath+"/events"),
		EventInstances: resources.New[EventInstanceAttributes](client, "EventInstance", basePath+"/event_instances"),
		Tags:           resources.New[TagAttributes](client, "Tag", basePath+"/tags"),
	}
}

// ListInstancesBetween lists event instances starting in [from, to). Either bound may be
// empty. opts may carry further where clauses, filters and includes.
func (s *Service) ListInstancesBetween(ctx context.Context, from, to string, opts *resources.ListOptions) (*resources.Document[[]EventInstance], error) {
	var list resources.ListOptions
	if opts != nil {
		list = *opts
	}
	where := make(map[string]any, len(list.Where)+1)
	for k, v := range list.Where {
		where[k] = v
	}
	var bounds []resources.Comparison
	if from != "" {
		bounds = append(bounds, resources.Comparison{Op: resources.OpGreaterThanOrEqual, Value: from})
	}
	if to != "" {
		bounds = append(bounds, resources.Comparison{Op: resources.OpLessThan, Value: to})
	}
	if len(bounds) > 0 {
		where["starts_at"] = bounds
	}
	list.Where = where
	return s.EventInstances.List(ctx, &list)
}

// ListEventInstances lists the instances of one event.
func (s *Service) ListEventInstances(ctx context.Context, eventID string, opts *resources.ListOptions) (*resources.Document[[]EventInstance], error) {
	return resources.Under[EventInstanceAttributes](s.Events, "EventInstance", "event_id", eventID, "event_instances").List(ctx, opts)
}

// ListEventTags lists the tags attached to one event.
func (s *Service) ListEventTags(ctx context.Context, eventID string, opts *resources.ListOptions) (*resources.Document[[]Tag], error) {
	return resources.Under[TagAttributes](s.Events, "Tag", "event_id", eventID, "tags").List(ctx, opts)
}
