// Package groups covers the Groups app: groups, group types and tags.
package groups

import (
	"context"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

const basePath = "/groups/v2"

// Archive statuses accepted by where[archive_status].
const (
	ArchiveStatusNotArchived = "not_archived"
	ArchiveStatusOnly        = "only"
	ArchiveStatusInclude     = "include"
)

type GroupAttributes struct {
	Name                     string `json:"name,omitempty"`
	Description              string `json:"description,omitempty"`
	ArchivedAt               string `json:"archived_at,omitempty"`
	ContactEmail             string `json:"contact_email,omitempty"`
	EnrollmentOpen           bool   `json:"enrollment_open,omitempty"`
	EnrollmentStrategy       string `json:"enrollment_strategy,omitempty"`
	EventsVisibility         string `json:"events_visibility,omitempty"`
	LocationTypePreference   string `json:"location_type_preference,omitempty"`
	MembershipsCount         int    `json:"memberships_count,omitempty"`
	PublicChurchCenterWebURL string `json:"public_church_center_web_url,omitempty"`
	Schedule                 string `json:"schedule,omitempty"`
	VirtualLocationURL       string `json:"virtual_location_url,omitempty"`
	CreatedAt                string `json:"created_at,omitempty"`
}

type GroupTypeAttributes struct {
	Name                string `json:"name,omitempty"`
	Description         string `json:"description,omitempty"`
	ChurchCenterVisible bool   `json:"church_center_visible,omitempty"`
	Position            int    `json:"position,omitempty"`
	Color               string `json:"color,omitempty"`
}

type TagAttributes struct {
	Name     string `json:"name,omitempty"`
	Position int    `json:"position,omitempty"`
}

type (
	Group     = resources.Entity[GroupAttributes]
	GroupType = resources.Entity[GroupTypeAttributes]
	Tag       = resources.Entity[TagAttributes]
)

// GroupListOptions extends ListOptions with the group type and campus filters.
type GroupListOptions struct {
	resources.ListOptions
	// GroupTypes limits results to groups of these type ids.
	GroupTypes []string
	// Campuses limits results to groups at these campus ids.
	Campuses []string
}

// Service groups the Groups app endpoints.
type Service struct {
	groups     *resources.Resource[GroupAttributes]
	GroupTypes *resources.Resource[GroupTypeAttributes]
	Tags       *resources.Resource[TagAttributes]
}

// New returns the Groups app bound to client.
func New(client resources.Requester) *Service {
	return &Service{
		groups:     resources.New[GroupAttributes](client, "Group", basePath+"/groups"),
		GroupTypes: resources.New[GroupTypeAttributes](client, "GroupType", basePath+"/group_types"),
		Tags:       resources.New[TagAttributes](client, "Tag", basePath+"/tags"),
	}
}

// List fetches groups. A group type filter is sent as filter=group_type with
// group_type_id set to the joined ids, and likewise for campuses.
func (s *Service) List(ctx context.Context, opts *GroupListOptions) (*resources.Document[[]Group], error) {
	if opts == nil {
		return s.groups.List(ctx, nil)
	}
	list := opts.ListOptions
	params := make(map[string]string, len(list.Params)+2)
	for k, v := range list.Params {
		params[k] = v
	}
	filters := append([]string(nil), list.Filter...)
	if len(opts.GroupTypes) > 0 {
		filters = append(filters, "group_type")
		params["group_type_id"] = strings.Join(opts.GroupTypes, ",")
	}
	if len(opts.Campuses) > 0 {
		filters = append(filters, "campus")
		params["campus_id"] = strings.Join(opts.Campuses, ",")
	}
	list.Filter = filters
	list.Params = params
	return s.groups.List(ctx, &list)
}

func (s *Service) Get(ctx context.Context, groupID string, opts *resources.GetOptions) (*resources.Document[Group], error) {
	return s.groups.Get(ctx, groupID, opts)
}

// ListGroupsOfType lists the groups belonging to one group type.
func (s *Service) ListGroupsOfType(ctx context.Context, groupTypeID string, opts *resources.ListOptions) (*resources.Document[[]Group], error) {
	return resources.Under[GroupAttributes](s.GroupTypes, "Group", "group_type_id", groupTypeID, "groups").List(ctx, opts)
}
