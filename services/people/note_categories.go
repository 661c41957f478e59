package people

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

// NoteCategoriesService is /people/v2/note_categories.
type NoteCategoriesService struct {
	*resources.Resource[NoteCategoryAttributes]
}

func newNoteCategoriesService(client resources.Requester) *NoteCategoriesService {
	return &NoteCategoriesService{
		Resource: resources.New[NoteCategoryAttributes](client, "NoteCategory", basePath+"/note_categories",
			resources.WithIncludes("shares", "subscribers", "subscriptions")),
	}
}

func (s *NoteCategoriesService) ListShares(ctx context.Context, categoryID string, opts *resources.ListOptions) (*resources.Document[[]NoteCategoryShare], error) {
	return resources.Under[NoteCategoryShareAttributes](s.Resource, "NoteCategoryShare", "note_category_id", categoryID, "shares").List(ctx, opts)
}

// ListSubscribers lists the people subscribed to a category.
func (s *NoteCategoriesService) ListSubscribers(ctx context.Context, categoryID string, opts *resources.ListOptions) (*resources.Document[[]Person], error) {
	return resources.Under[PersonAttributes](s.Resource, "Person", "note_category_id", categoryID, "subscribers").List(ctx, opts)
}

func (s *NoteCategoriesService) ListSubscriptions(ctx context.Context, categoryID string, opts *resources.ListOptions) (*resources.Document[[]NoteCategorySubscription], error) {
	return resources.Under[NoteCategorySubscriptionAttributes](s.Resource, "NoteCategorySubscription", "note_category_id", categoryID, "subscriptions").List(ctx, opts)
}
