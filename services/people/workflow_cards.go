package people

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

// WorkflowCardsService is /people/v2/people/{person_id}/workflow_cards. The embedded
// Resource provides List, Get, Create, Update and Delete.
type WorkflowCardsService struct {
	*resources.Resource[WorkflowCardAttributes]
}

func newWorkflowCardsService(people *resources.Resource[PersonAttributes], personID string) *WorkflowCardsService {
	return &WorkflowCardsService{
		Resource: resources.Under[WorkflowCardAttributes](people, "WorkflowCard", "person_id", personID, "workflow_cards", resources.WithDefaultPerPage(0)),
	}
}

// GoBack moves the card to its previous step.
func (s *WorkflowCardsService) GoBack(ctx context.Context, cardID string) (*resources.Document[WorkflowCard], error) {
	return s.Action(ctx, cardID, "go_back", nil)
}

func (s *WorkflowCardsService) Promote(ctx context.Context, cardID string) (*resources.Document[WorkflowCard], error) {
	return s.Action(ctx, cardID, "promote", nil)
}

func (s *WorkflowCardsService) Remove(ctx context.Context, cardID string) (*resources.Document[WorkflowCard], error) {
	return s.Action(ctx, cardID, "remove", nil)
}

func (s *WorkflowCardsService) Restore(ctx context.Context, cardID string) (*resources.Document[WorkflowCard], error) {
	return s.Action(ctx, cardID, "restore", nil)
}

func (s *WorkflowCardsService) SkipStep(ctx context.Context, cardID string) (*resources.Document[WorkflowCard], error) {
	return s.Action(ctx, cardID, "skip_step", nil)
}

// Snooze hides the card for duration days.
func (s *WorkflowCardsService) Snooze(ctx context.Context, cardID string, duration int) (*resources.Document[WorkflowCard], error) {
	if duration < 1 {
		return nil, &resources.ValidationError{Field: "duration", Reason: "must be at least 1"}
	}
	return s.Action(ctx, cardID, "snooze", struct {
		Duration int `json:"duration"`
	}{duration})
}

func (s *WorkflowCardsService) Unsnooze(ctx context.Context, cardID string) (*resources.Document[WorkflowCard], error) {
	return s.Action(ctx, cardID, "unsnooze", nil)
}

// SendEmail emails the card's person. The API answers with no content.
func (s *WorkflowCardsService) SendEmail(ctx context.Context, cardID, subject, note string) error {
	if subject == "" {
		return &resources.ValidationError{Field: "subject", Reason: "is required"}
	}
	_, err := s.Action(ctx, cardID, "send_email", struct {
		Subject string `json:"subject"`
		Note    string `json:"note"`
	}{subject, note})
	return err
}

// Activities returns the activity log of one card.
func (s *WorkflowCardsService) Activities(cardID string) *resources.Resource[WorkflowCardActivityAttributes] {
	return resources.Under[WorkflowCardActivityAttributes](s.Resource, "WorkflowCardActivity", "workflow_card_id", cardID, "activities", resources.WithDefaultPerPage(0))
}

func (s *WorkflowCardsService) ListActivities(ctx context.Context, cardID string, opts *resources.ListOptions) (*resources.Document[[]WorkflowCardActivity], error) {
	return s.Activities(cardID).List(ctx, opts)
}

func (s *WorkflowCardsService) GetActivity(ctx context.Context, cardID, activityID string) (*resources.Document[WorkflowCardActivity], error) {
	return s.Activities(cardID).Get(ctx, activityID, nil)
}

func (s *WorkflowCardsService) DeleteActivity(ctx context.Context, cardID, activityID string) error {
	return s.Activities(cardID).Delete(ctx, activityID)
}

// Notes returns the notes written on one card.
func (s *WorkflowCardsService) Notes(cardID string) *resources.Resource[WorkflowCardNoteAttributes] {
	return resources.Under[WorkflowCardNoteAttributes](s.Resource, "WorkflowCardNote", "workflow_card_id", cardID, "notes", resources.WithDefaultPerPage(0))
}

func (s *WorkflowCardsService) ListNotes(ctx context.Context, cardID string, opts *resources.ListOptions) (*resources.Document[[]WorkflowCardNote], error) {
	return s.Notes(cardID).List(ctx, opts)
}

func (s *WorkflowCardsService) GetNote(ctx context.Context, cardID, noteID string) (*resources.Document[WorkflowCardNote], error) {
	return s.Notes(cardID).Get(ctx, noteID, nil)
}

// CreateNote adds a note to the card.
func (s *WorkflowCardsService) CreateNote(ctx context.Context, cardID, note string) (*resources.Document[WorkflowCardNote], error) {
	if note == "" {
		return nil, &resources.ValidationError{Field: "note", Reason: "is required"}
	}
	return s.Notes(cardID).Create(ctx, WorkflowCardNoteAttributes{Note: note})
}

func (s *WorkflowCardsService) CurrentStep(ctx context.Context, cardID string) (*resources.Document[WorkflowStep], error) {
	return resources.GetRelated[WorkflowStepAttributes](ctx, s.Resource, cardID, "current_step", nil)
}

func (s *WorkflowCardsService) Person(ctx context.Context, cardID string) (*resources.Document[Person], error) {
	return resources.GetRelated[PersonAttributes](ctx, s.Resource, cardID, "person", nil)
}

func (s *WorkflowCardsService) Workflow(ctx context.Context, cardID string) (*resources.Document[Workflow], error) {
	return resources.GetRelated[WorkflowAttributes](ctx, s.Resource, cardID, "workflow", nil)
}

// Assignee fetches the person the card is assigned to.
func (s *WorkflowCardsService) Assignee(ctx context.Context, cardID string) (*resources.Document[Person], error) {
	return resources.GetRelated[PersonAttributes](ctx, s.Resource, cardID, "assignee", nil)
}
