package people

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

// WorkflowsService is /people/v2/workflows. The embedded Resource provides List, Get,
// Create, Update and Delete.
type WorkflowsService struct {
	*resources.Resource[WorkflowAttributes]
}

func newWorkflowsService(client resources.Requester) *WorkflowsService {
	return &WorkflowsService{
		Resource: resources.New[WorkflowAttributes](client, "Workflow", basePath+"/workflows"),
	}
}

// Cards returns the cards of one workflow.
func (s *WorkflowsService) Cards(workflowID string) *resources.Resource[WorkflowCardAttributes] {
	return resources.Under[WorkflowCardAttributes](s.Resource, "WorkflowCard", "workflow_id", workflowID, "cards", resources.WithDefaultPerPage(0))
}

func (s *WorkflowsService) ListCards(ctx context.Context, workflowID string, opts *resources.ListOptions) (*resources.Document[[]WorkflowCard], error) {
	return s.Cards(workflowID).List(ctx, opts)
}

// CreateCard puts a person on the workflow. attributes.PersonID is required.
func (s *WorkflowsService) CreateCard(ctx context.Context, workflowID string, attributes WorkflowCardWriteAttributes) (*resources.Document[WorkflowCard], error) {
	if attributes.PersonID == "" {
		return nil, &resources.ValidationError{Field: "person_id", Reason: "is required"}
	}
	return s.Cards(workflowID).Create(ctx, attributes)
}

func (s *WorkflowsService) Category(ctx context.Context, workflowID string) (*resources.Document[WorkflowCategory], error) {
	return resources.GetRelated[WorkflowCategoryAttributes](ctx, s.Resource, workflowID, "category", nil)
}

// ListSharedPeople lists the people a workflow is shared with.
func (s *WorkflowsService) ListSharedPeople(ctx context.Context, workflowID string, opts *resources.ListOptions) (*resources.Document[[]Person], error) {
	return resources.Under[PersonAttributes](s.Resource, "Person", "workflow_id", workflowID, "shared_people", resources.WithDefaultPerPage(0)).List(ctx, opts)
}

// Steps returns the steps of one workflow.
func (s *WorkflowsService) Steps(workflowID string) *WorkflowStepsService {
	return &WorkflowStepsService{
		Resource: resources.Under[WorkflowStepAttributes](s.Resource, "WorkflowStep", "workflow_id", workflowID, "steps", resources.WithDefaultPerPage(0)),
	}
}

// Shares returns the shares of one workflow.
func (s *WorkflowsService) Shares(workflowID string) *WorkflowSharesService {
	return &WorkflowSharesService{
		Resource: resources.Under[WorkflowShareAttributes](s.Resource, "WorkflowShare", "workflow_id", workflowID, "shares", resources.WithDefaultPerPage(0)),
	}
}

// WorkflowStepsService is /people/v2/workflows/{workflow_id}/steps.
type WorkflowStepsService struct {
	*resources.Resource[WorkflowStepAttributes]
}

func (s *WorkflowStepsService) DefaultAssignee(ctx context.Context, stepID string) (*resources.Document[Person], error) {
	return resources.GetRelated[PersonAttributes](ctx, s.Resource, stepID, "default_assignee", nil)
}

// AssigneeSummaries reports ready and snoozed card counts per assignee of a step.
func (s *WorkflowStepsService) AssigneeSummaries(ctx context.Context, stepID string, opts *resources.ListOptions) (*resources.Document[[]WorkflowStepAssigneeSummary], error) {
	return resources.Under[WorkflowStepAssigneeSummaryAttributes](s.Resource, "WorkflowStepAssigneeSummary", "step_id", stepID, "assignee_summaries", resources.WithDefaultPerPage(0)).List(ctx, opts)
}

// WorkflowSharesService is /people/v2/workflows/{workflow_id}/shares.
type WorkflowSharesService struct {
	*resources.Resource[WorkflowShareAttributes]
}

func (s *WorkflowSharesService) Person(ctx context.Context, shareID string) (*resources.Document[Person], error) {
	return resources.GetRelated[PersonAttributes](ctx, s.Resource, shareID, "person", nil)
}
