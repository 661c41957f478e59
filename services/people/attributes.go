package people

import "github.com/deploymenttheory/go-api-sdk-planningcenter/resources"

// PersonAttributes are the readable attributes of a Person.
type PersonAttributes struct {
	FirstName               string `json:"first_name,omitempty"`
	LastName                string `json:"last_name,omitempty"`
	MiddleName              string `json:"middle_name,omitempty"`
	Nickname                string `json:"nickname,omitempty"`
	GivenName               string `json:"given_name,omitempty"`
	Birthdate               string `json:"birthdate,omitempty"`
	Anniversary             string `json:"anniversary,omitempty"`
	Gender                  string `json:"gender,omitempty"`
	Grade                   *int   `json:"grade,omitempty"`
	Child                   bool   `json:"child,omitempty"`
	Status                  string `json:"status,omitempty"`
	SchoolType              string `json:"school_type,omitempty"`
	SchoolTypeOther         string `json:"school_type_other,omitempty"`
	GraduationYear          *int   `json:"graduation_year,omitempty"`
	SiteAdministrator       bool   `json:"site_administrator,omitempty"`
	AccountingAdministrator bool   `json:"accounting_administrator,omitempty"`
	PeoplePermissions       string `json:"people_permissions,omitempty"`
	Membership              string `json:"membership,omitempty"`
	InactivatedAt           string `json:"inactivated_at,omitempty"`
	MedicalNotes            string `json:"medical_notes,omitempty"`
	DemographicAvatarURL    string `json:"demographic_avatar_url,omitempty"`
	DirectoryStatus         string `json:"directory_status,omitempty"`
	PassedBackgroundCheck   bool   `json:"passed_background_check,omitempty"`
	CanCreateForms          bool   `json:"can_create_forms,omitempty"`
	CreatedAt               string `json:"created_at,omitempty"`
	UpdatedAt               string `json:"updated_at,omitempty"`
}

// PersonWriteAttributes are accepted when creating or updating a Person.
// Unset fields are left out of the request.
type PersonWriteAttributes struct {
	FirstName                string `json:"first_name,omitempty"`
	LastName                 string `json:"last_name,omitempty"`
	MiddleName               string `json:"middle_name,omitempty"`
	Nickname                 string `json:"nickname,omitempty"`
	GivenName                string `json:"given_name,omitempty"`
	Birthdate                string `json:"birthdate,omitempty"`
	Anniversary              string `json:"anniversary,omitempty"`
	Gender                   string `json:"gender,omitempty"`
	GenderID                 string `json:"gender_id,omitempty"`
	Grade                    *int   `json:"grade,omitempty"`
	GraduationYear           *int   `json:"graduation_year,omitempty"`
	Child                    *bool  `json:"child,omitempty"`
	SiteAdministrator        *bool  `json:"site_administrator,omitempty"`
	AccountingAdministrator  *bool  `json:"accounting_administrator,omitempty"`
	PeoplePermissions        string `json:"people_permissions,omitempty"`
	Membership               string `json:"membership,omitempty"`
	InactivatedAt            string `json:"inactivated_at,omitempty"`
	MedicalNotes             string `json:"medical_notes,omitempty"`
	StripeCustomerIdentifier string `json:"stripe_customer_identifier,omitempty"`
	Avatar                   string `json:"avatar,omitempty"`
	PrimaryCampusID          string `json:"primary_campus_id,omitempty"`
	RemoteID                 string `json:"remote_id,omitempty"`
	Status                   string `json:"status,omitempty"`
	// CreatedByID is honoured on create only.
	CreatedByID string `json:"created_by_id,omitempty"`
}

type NoteAttributes struct {
	Note           string `json:"note,omitempty"`
	DisplayDate    string `json:"display_date,omitempty"`
	NoteCategoryID string `json:"note_category_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	PersonID       string `json:"person_id,omitempty"`
	CreatedByID    string `json:"created_by_id,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// NoteWriteAttributes create or update a Note. Note and NoteCategoryID are required on create.
type NoteWriteAttributes struct {
	Note           string `json:"note,omitempty"`
	NoteCategoryID string `json:"note_category_id,omitempty"`
	DisplayDate    string `json:"display_date,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type NoteCategoryAttributes struct {
	Name           string `json:"name,omitempty"`
	Locked         bool   `json:"locked,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type NoteCategoryWriteAttributes struct {
	Name string `json:"name,omitempty"`
}

type MessageTemplateAttributes struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

type WorkflowAttributes struct {
	Name                  string `json:"name,omitempty"`
	MyReadyCardCount      int    `json:"my_ready_card_count,omitempty"`
	TotalReadyCardCount   int    `json:"total_ready_card_count,omitempty"`
	CompletedCardCount    int    `json:"completed_card_count,omitempty"`
	TotalCardsCount       int    `json:"total_cards_count,omitempty"`
	TotalReadyAndSnoozed  int    `json:"total_ready_and_snoozed_card_count,omitempty"`
	TotalStepsCount       int    `json:"total_steps_count,omitempty"`
	TotalUnassignedSteps  int    `json:"total_unassigned_steps_count,omitempty"`
	TotalUnassignedCards  int    `json:"total_unassigned_card_count,omitempty"`
	TotalOverdueCardCount int    `json:"total_overdue_card_count,omitempty"`
	MyOverdueCardCount    int    `json:"my_overdue_card_count,omitempty"`
	MyDueSoonCardCount    int    `json:"my_due_soon_card_count,omitempty"`
	RecentlyViewed        bool   `json:"recently_viewed,omitempty"`
	CampusID              string `json:"campus_id,omitempty"`
	WorkflowCategoryID    string `json:"workflow_category_id,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
	DeletedAt             string `json:"deleted_at,omitempty"`
	ArchivedAt            string `json:"archived_at,omitempty"`
}

type WorkflowWriteAttributes struct {
	Name               string `json:"name,omitempty"`
	CampusID           string `json:"campus_id,omitempty"`
	WorkflowCategoryID string `json:"workflow_category_id,omitempty"`
}

type WorkflowCardAttributes struct {
	SnoozeUntil              string `json:"snooze_until,omitempty"`
	Overdue                  bool   `json:"overdue,omitempty"`
	Stage                    string `json:"stage,omitempty"`
	CalculatedDueAtInDaysAgo *int   `json:"calculated_due_at_in_days_ago,omitempty"`
	StickyAssignment         *bool  `json:"sticky_assignment,omitempty"`
	CompletedAt              string `json:"completed_at,omitempty"`
	FlaggedForNotificationAt string `json:"flagged_for_notification_at,omitempty"`
	RemovedAt                string `json:"removed_at,omitempty"`
	MovedToStepAt            string `json:"moved_to_step_at,omitempty"`
	CreatedAt                string `json:"created_at,omitempty"`
	UpdatedAt                string `json:"updated_at,omitempty"`
}

// WorkflowCardWriteAttributes create or update a WorkflowCard. PersonID is required
// when creating a card on a workflow.
type WorkflowCardWriteAttributes struct {
	PersonID         string `json:"person_id,omitempty"`
	AssigneeID       string `json:"assignee_id,omitempty"`
	StickyAssignment *bool  `json:"sticky_assignment,omitempty"`
}

type WorkflowCardActivityAttributes struct {
	Comment               string `json:"comment,omitempty"`
	Content               string `json:"content,omitempty"`
	ContentIsHTML         bool   `json:"content_is_html,omitempty"`
	FormSubmissionURL     string `json:"form_submission_url,omitempty"`
	AutomationURL         string `json:"automation_url,omitempty"`
	PersonAvatarURL       string `json:"person_avatar_url,omitempty"`
	PersonName            string `json:"person_name,omitempty"`
	ReassignedToAvatarURL string `json:"reassigned_to_avatar_url,omitempty"`
	ReassignedToName      string `json:"reassigned_to_name,omitempty"`
	Subject               string `json:"subject,omitempty"`
	Type                  string `json:"type,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
}

type WorkflowCardNoteAttributes struct {
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type WorkflowStepAttributes struct {
	Name                       string `json:"name,omitempty"`
	Sequence                   *int   `json:"sequence,omitempty"`
	Description                string `json:"description,omitempty"`
	ExpectedResponseTimeInDays *int   `json:"expected_response_time_in_days,omitempty"`
	DefaultAssigneeID          string `json:"default_assignee_id,omitempty"`
	AutoSnoozeValue            *int   `json:"auto_snooze_value,omitempty"`
	AutoSnoozeInterval         string `json:"auto_snooze_interval,omitempty"`
	CreatedAt                  string `json:"created_at,omitempty"`
	UpdatedAt                  string `json:"updated_at,omitempty"`
}

type WorkflowStepAssigneeSummaryAttributes struct {
	ReadyCount   int `json:"ready_count,omitempty"`
	SnoozedCount int `json:"snoozed_count,omitempty"`
}

type WorkflowShareAttributes struct {
	Group      string `json:"group,omitempty"`
	Permission string `json:"permission,omitempty"`
	PersonID   string `json:"person_id,omitempty"`
}

type NoteCategoryShareAttributes struct {
	Group      string `json:"group,omitempty"`
	Permission string `json:"permission,omitempty"`
}

type NoteCategorySubscriptionAttributes struct {
	CreatedAt string `json:"created_at,omitempty"`
}

type WorkflowCategoryAttributes struct {
	Name      string `json:"name,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type (
	Person                      = resources.Entity[PersonAttributes]
	Note                        = resources.Entity[NoteAttributes]
	NoteCategory                = resources.Entity[NoteCategoryAttributes]
	NoteCategoryShare           = resources.Entity[NoteCategoryShareAttributes]
	NoteCategorySubscription    = resources.Entity[NoteCategorySubscriptionAttributes]
	MessageTemplate             = resources.Entity[MessageTemplateAttributes]
	Workflow                    = resources.Entity[WorkflowAttributes]
	WorkflowCategory            = resources.Entity[WorkflowCategoryAttributes]
	WorkflowCard                = resources.Entity[WorkflowCardAttributes]
	WorkflowCardActivity        = resources.Entity[WorkflowCardActivityAttributes]
	WorkflowCardNote            = resources.Entity[WorkflowCardNoteAttributes]
	WorkflowStep                = resources.Entity[WorkflowStepAttributes]
	WorkflowStepAssigneeSummary = resources.Entity[WorkflowStepAssigneeSummaryAttributes]
	WorkflowShare               = resources.Entity[WorkflowShareAttributes]
)
