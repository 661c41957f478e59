// Package people covers the People app: people, notes, note categories, message
// templates, workflows and the workflow cards attached to each person.
package people

import (
	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

const basePath = "/people/v2"

// PeoplePerPage is the page size sent for people and message template lists.
const PeoplePerPage = 100

// PersonIncludes are the related resources a person request may include.
var PersonIncludes = []string{
	"addresses",
	"emails",
	"field_data",
	"households",
	"inactive_reason",
	"marital_status",
	"name_prefix",
	"name_suffix",
	"organization",
	"person_apps",
	"phone_numbers",
	"platform_notifications",
	"primary_campus",
	"school",
	"social_profiles",
}

// Service groups the People app endpoints.
type Service struct {
	// People is /people/v2/people. Create and Update take PersonWriteAttributes.
	People           *resources.Resource[PersonAttributes]
	Notes            *NotesService
	NoteCategories   *NoteCategoriesService
	MessageTemplates *resources.Resource[MessageTemplateAttributes]
	Workflows        *WorkflowsService
}

// New returns the People app bound to client.
func New(client resources.Requester) *Service {
	people := resources.New[PersonAttributes](client, "Person", basePath+"/people",
		resources.WithDefaultPerPage(PeoplePerPage), resources.WithIncludes(PersonIncludes...))
	return &Service{
		People:           people,
		Notes:            newNotesService(client, people),
		NoteCategories:   newNoteCategoriesService(client),
		MessageTemplates: resources.New[MessageTemplateAttributes](client, "MessageTemplate", basePath+"/message_templates", resources.WithDefaultPerPage(PeoplePerPage)),
		Workflows:        newWorkflowsService(client),
	}
}

// WorkflowCards returns the workflow cards of one person.
func (s *Service) WorkflowCards(personID string) *WorkflowCardsService {
	return newWorkflowCardsService(s.People, personID)
}

// WorkflowShares returns the workflow shares granted to one person.
func (s *Service) WorkflowShares(personID string) *resources.Resource[WorkflowShareAttributes] {
	return resources.Under[WorkflowShareAttributes](s.People, "WorkflowShare", "person_id", personID, "workflow_shares", resources.WithDefaultPerPage(0))
}
