package people

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

// NoteIncludes are the related resources a note request may include.
var NoteIncludes = []string{"category"}

// NotesService is /people/v2/notes. Notes are created under a person with CreateForPerson.
type NotesService struct {
	notes  *resources.Resource[NoteAttributes]
	people *resources.Resource[PersonAttributes]
}

func newNotesService(client resources.Requester, people *resources.Resource[PersonAttributes]) *NotesService {
	return &NotesService{
		notes:  resources.New[NoteAttributes](client, "Note", basePath+"/notes", resources.WithIncludes(NoteIncludes...)),
		people: people,
	}
}

func (s *NotesService) List(ctx context.Context, opts *resources.ListOptions) (*resources.Document[[]Note], error) {
	return s.notes.List(ctx, opts)
}

func (s *NotesService) Get(ctx context.Context, noteID string, opts *resources.GetOptions) (*resources.Document[Note], error) {
	return s.notes.Get(ctx, noteID, opts)
}

func (s *NotesService) Update(ctx context.Context, noteID string, attributes NoteWriteAttributes) (*resources.Document[Note], error) {
	return s.notes.Update(ctx, noteID, attributes)
}

func (s *NotesService) Delete(ctx context.Context, noteID string) error {
	return s.notes.Delete(ctx, noteID)
}

// ListForPerson lists the notes written about one person.
func (s *NotesService) ListForPerson(ctx context.Context, personID string, opts *resources.ListOptions) (*resources.Document[[]Note], error) {
	return s.forPerson(personID).List(ctx, opts)
}

// CreateForPerson writes a note about a person. Note and NoteCategoryID are required.
func (s *NotesService) CreateForPerson(ctx context.Context, personID string, attributes NoteWriteAttributes) (*resources.Document[Note], error) {
	if attributes.Note == "" {
		return nil, &resources.ValidationError{Field: "note", Reason: "is required"}
	}
	if attributes.NoteCategoryID == "" {
		return nil, &resources.ValidationError{Field: "note_category_id", Reason: "is required"}
	}
	return s.forPerson(personID).Create(ctx, attributes)
}

func (s *NotesService) Category(ctx context.Context, noteID string) (*resources.Document[NoteCategory], error) {
	return resources.GetRelated[NoteCategoryAttributes](ctx, s.notes, noteID, "category", nil)
}

func (s *NotesService) CreatedBy(ctx context.Context, noteID string) (*resources.Document[Person], error) {
	return resources.GetRelated[PersonAttributes](ctx, s.notes, noteID, "created_by", nil)
}

func (s *NotesService) Person(ctx context.Context, noteID string) (*resources.Document[Person], error) {
	return resources.GetRelated[PersonAttributes](ctx, s.notes, noteID, "person", nil)
}

func (s *NotesService) forPerson(personID string) *resources.Resource[NoteAttributes] {
	return resources.Under[NoteAttributes](s.people, "Note", "person_id", personID, "notes", resources.WithIncludes(NoteIncludes...))
}
