package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"voice-crm/internal/clients/hubspot"
	"voice-crm/internal/observability"
)

// CRMClient defines the HubSpot operations required by CRMProcessor
type CRMClient interface {
	SearchContactByEmail(ctx context.Context, email string) (*hubspot.Object, error)
	CreateContact(ctx context.Context, properties map[string]any) (hubspot.Object, error)
	UpdateContact(ctx context.Context, contactID string, properties map[string]any) (hubspot.Object, error)
	CreateNote(ctx context.Context, properties map[string]any) (hubspot.Object, error)
	CreateDeal(ctx context.Context, properties map[string]any) (hubspot.Object, error)
	CreateTask(ctx context.Context, properties map[string]any) (hubspot.Object, error)
	Associate(ctx context.Context, fromType, fromID, toType, toID string) error
}

// Locker serializes work on a key. The returned func releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// EventPublisher emits CRM events. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data map[string]any)
}

// Event types published after successful operations
const (
	EventContactCreated = "crm.contact.created"
	EventContactUpdated = "crm.contact.updated"
	EventNoteCreated    = "crm.note.created"
	EventDealCreated    = "crm.deal.created"
	EventTaskCreated    = "crm.task.created"
)

// Task priorities accepted by HubSpot
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

var (
	ErrEmailRequired            = errors.New("email is required")
	ErrContactReferenceRequired = errors.New("contact id or email is required")
	ErrContactNotFound          = errors.New("contact not found for email")
	ErrNoteBodyRequired         = errors.New("note body is required")
	ErrDealNameRequired         = errors.New("deal name is required")
	ErrTaskSubjectRequired      = errors.New("task subject is required")
	ErrTaskDueRequired          = errors.New("task due timestamp is required")
	ErrInvalidDueDate           = errors.New("invalid task due timestamp")
	ErrInvalidCloseDate         = errors.New("invalid deal close date")
	ErrInvalidPriority          = errors.New("invalid task priority")
)

type CRMProcessor struct {
	client CRMClient
	locker Locker
	events EventPublisher
	logger *observability.Logger
	now    func() time.Time
}

// New creates a CRMProcessor. A nil locker falls back to an in-process
// keyed mutex and a nil publisher disables events.
func New(client CRMClient, locker Locker, events EventPublisher, logger *observability.Logger) CRMProcessor {
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return CRMProcessor{
		client: client,
		locker: locker,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// ContactInput identifies a contact by email and carries optional attributes
type ContactInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

// ContactResult is the outcome of FindOrCreateContact
type ContactResult struct {
	ContactID  string `json:"contact_id"`
	Email      string `json:"email"`
	WasCreated bool   `json:"was_created"`
}

// NoteInput describes a note for an existing contact
type NoteInput struct {
	Body      string
	ContactID string
	Email     string
}

// NoteResult is the outcome of AddNoteToContact
type NoteResult struct {
	NoteID    string `json:"note_id"`
	ContactID string `json:"contact_id"`
}

// DealInput describes a deal, optionally associated to a contact
type DealInput struct {
	Name      string
	ContactID string
	Email     string
	Amount    *float64
	Pipeline  string
	Stage     string
	CloseDate string
}

// DealResult is the outcome of CreateDealForContact. ContactID is empty when
// the deal was created without an association.
type DealResult struct {
	DealID    string `json:"deal_id"`
	ContactID string `json:"contact_id,omitempty"`
}

// TaskInput describes a task, optionally associated to a contact
type TaskInput struct {
	Subject   string
	DueAt     string
	Body      string
	ContactID string
	Email     string
	Priority  string
}

// TaskResult is the outcome of CreateTaskForContact
type TaskResult struct {
	TaskID    string `json:"task_id"`
	ContactID string `json:"contact_id,omitempty"`
}

// NormalizeEmail trims and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindOrCreateContact returns the contact matching the email, creating it when
// absent. An existing contact only receives the non-empty fields supplied.
func (p *CRMProcessor) FindOrCreateContact(ctx context.Context, in ContactInput) (result ContactResult, err error) {
	defer func() { observability.ObserveCRMOperation("find_or_create_contact", err) }()

	email := NormalizeEmail(in.Email)
	if email == "" {
		return ContactResult{}, ErrEmailRequired
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	unlock, err := p.locker.Lock(ctx, "contact:"+email)
	if err != nil {
		p.logger.Error(ctx, "failed to acquire contact lock", err)
		return ContactResult{}, fmt.Errorf("failed to acquire contact lock: %w", err)
	}
	result, payload, err := p.upsertContact(ctx, email, in)
	unlock()
	if err != nil {
		return ContactResult{}, err
	}

	// published after unlock so a slow broker never extends the critical section
	if payload != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "contact_id", Value: result.ContactID})
		event := EventContactUpdated
		if result.WasCreated {
			event = EventContactCreated
		}
		p.publish(ctx, event, payload)
	}
	return result, nil
}

// upsertContact runs under the contact lock. The returned payload is nil when
// nothing changed in the CRM.
func (p *CRMProcessor) upsertContact(ctx context.Context, email string, in ContactInput) (ContactResult, map[string]any, error) {
	existing, err := p.client.SearchContactByEmail(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to search contact", err)
		return ContactResult{}, nil, fmt.Errorf("failed to search contact: %w", err)
	}

	patch := contactProperties(in)

	if existing != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "contact_id", Value: existing.ID})
		result := ContactResult{ContactID: existing.ID, Email: email, WasCreated: false}
		if len(patch) == 0 {
			p.logger.Info(ctx, "found existing contact")
			return result, nil, nil
		}
		if _, err := p.client.UpdateContact(ctx, existing.ID, patch); err != nil {
			p.logger.Error(ctx, "failed to update contact", err)
			return ContactResult{}, nil, fmt.Errorf("failed to update contact %s: %w", existing.ID, err)
		}
		p.logger.Info(ctx, "found existing contact")
		return result, map[string]any{"contact_id": existing.ID, "email": email, "properties": patch}, nil
	}

	patch["email"] = email
	created, err := p.client.CreateContact(ctx, patch)
	if err != nil {
		p.logger.Error(ctx, "failed to create contact", err)
		return ContactResult{}, nil, fmt.Errorf("failed to create contact: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "contact_id", Value: created.ID})
	p.logger.Info(ctx, "created contact")
	return ContactResult{ContactID: created.ID, Email: email, WasCreated: true},
		map[string]any{"contact_id": created.ID, "email": email}, nil
}

// AddNoteToContact creates a note and associates it to the referenced contact
func (p *CRMProcessor) AddNoteToContact(ctx context.Context, in NoteInput) (result NoteResult, err error) {
	defer func() { observability.ObserveCRMOperation("add_note_to_contact", err) }()

	if strings.TrimSpace(in.ContactID) == "" && strings.TrimSpace(in.Email) == "" {
		return NoteResult{}, ErrContactReferenceRequired
	}
	if strings.TrimSpace(in.Body) == "" {
		return NoteResult{}, ErrNoteBodyRequired
	}

	contactID, err := p.resolveContact(ctx, in.ContactID, in.Email)
	if err != nil {
		return NoteResult{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "contact_id", Value: contactID})

	note, err := p.client.CreateNote(ctx, map[string]any{
		"hs_note_body": in.Body,
		"hs_timestamp": p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create note", err)
		return NoteResult{}, fmt.Errorf("failed to create note: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "note_id", Value: note.ID})

	if err := p.client.Associate(ctx, hubspot.TypeNote, note.ID, hubspot.TypeContact, contactID); err != nil {
		p.logger.Error(ctx, "failed to associate note to contact", err)
		return NoteResult{}, fmt.Errorf("note %s created but association to contact %s failed: %w", note.ID, contactID, err)
	}

	p.logger.Info(ctx, "created note")
	p.publish(ctx, EventNoteCreated, map[string]any{"note_id": note.ID, "contact_id": contactID})

	return NoteResult{NoteID: note.ID, ContactID: contactID}, nil
}

// CreateDealForContact creates a deal and, when a contact is referenced,
// associates the deal to it
func (p *CRMProcessor) CreateDealForContact(ctx context.Context, in DealInput) (result DealResult, err error) {
	defer func() { observability.ObserveCRMOperation("create_deal_for_contact", err) }()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return DealResult{}, ErrDealNameRequired
	}
	closeDate := strings.TrimSpace(in.CloseDate)
	if closeDate != "" {
		if _, err := parseDate(closeDate); err != nil {
			return DealResult{}, fmt.Errorf("%w: %q", ErrInvalidCloseDate, closeDate)
		}
	}

	contactID, err := p.resolveOptionalContact(ctx, in.ContactID, in.Email)
	if err != nil {
		return DealResult{}, err
	}

	props := map[string]any{"dealname": name}
	if in.Amount != nil {
		props["amount"] = strconv.FormatFloat(*in.Amount, 'f', -1, 64)
	}
	setIfPresent(props, "pipeline", in.Pipeline)
	setIfPresent(props, "dealstage", in.Stage)
	setIfPresent(props, "closedate", closeDate)

	deal, err := p.client.CreateDeal(ctx, props)
	if err != nil {
		p.logger.Error(ctx, "failed to create deal", err)
		return DealResult{}, fmt.Errorf("failed to create deal: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "deal_id", Value: deal.ID})

	if contactID != "" {
		if err := p.client.Associate(ctx, hubspot.TypeDeal, deal.ID, hubspot.TypeContact, contactID); err != nil {
			p.logger.Error(ctx, "failed to associate deal to contact", err)
			return DealResult{}, fmt.Errorf("deal %s created but association to contact %s failed: %w", deal.ID, contactID, err)
		}
	}

	p.logger.Info(ctx, "created deal")
	p.publish(ctx, EventDealCreated, map[string]any{"deal_id": deal.ID, "contact_id": contactID, "dealname": name})

	return DealResult{DealID: deal.ID, ContactID: contactID}, nil
}

// CreateTaskForContact creates a task and, when a contact is referenced,
// associates the task to it
func (p *CRMProcessor) CreateTaskForContact(ctx context.Context, in TaskInput) (result TaskResult, err error) {
	defer func() { observability.ObserveCRMOperation("create_task_for_contact", err) }()

	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return TaskResult{}, ErrTaskSubjectRequired
	}
	dueRaw := strings.TrimSpace(in.DueAt)
	if dueRaw == "" {
		return TaskResult{}, ErrTaskDueRequired
	}
	due, err := parseDate(dueRaw)
	if err != nil {
		return TaskResult{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, dueRaw)
	}
	priority, err := normalizePriority(in.Priority)
	if err != nil {
		return TaskResult{}, err
	}

	contactID, err := p.resolveOptionalContact(ctx, in.ContactID, in.Email)
	if err != nil {
		return TaskResult{}, err
	}

	props := map[string]any{
		"hs_task_subject":  subject,
		"hs_timestamp":     due.UTC().Format(time.RFC3339),
		"hs_task_priority": priority,
	}
	setIfPresent(props, "hs_task_body", in.Body)

	task, err := p.client.CreateTask(ctx, props)
	if err != nil {
		p.logger.Error(ctx, "failed to create task", err)
		return TaskResult{}, fmt.Errorf("failed to create task: %w", err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "task_id", Value: task.ID})

	if contactID != "" {
		if err := p.client.Associate(ctx, hubspot.TypeTask, task.ID, hubspot.TypeContact, contactID); err != nil {
			p.logger.Error(ctx, "failed to associate task to contact", err)
			return TaskResult{}, fmt.Errorf("task %s created but association to contact %s failed: %w", task.ID, contactID, err)
		}
	}

	p.logger.Info(ctx, "created task")
	p.publish(ctx, EventTaskCreated, map[string]any{"task_id": task.ID, "contact_id": contactID, "subject": subject})

	return TaskResult{TaskID: task.ID, ContactID: contactID}, nil
}

// resolveOptionalContact returns "" when neither reference is supplied
func (p *CRMProcessor) resolveOptionalContact(ctx context.Context, contactID, email string) (string, error) {
	if strings.TrimSpace(contactID) == "" && strings.TrimSpace(email) == "" {
		return "", nil
	}
	return p.resolveContact(ctx, contactID, email)
}

// resolveContact prefers an explicit id and otherwise looks the email up.
// An email with no match is an error; nothing is created on its behalf.
func (p *CRMProcessor) resolveContact(ctx context.Context, contactID, email string) (string, error) {
	if id := strings.TrimSpace(contactID); id != "" {
		return id, nil
	}

	email = NormalizeEmail(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	found, err := p.client.SearchContactByEmail(ctx, email)
	if err != nil {
		p.logger.Error(ctx, "failed to search contact", err)
		return "", fmt.Errorf("failed to search contact: %w", err)
	}
	if found == nil {
		p.logger.Warn(ctx, "no contact matches email")
		return "", fmt.Errorf("%w: %s", ErrContactNotFound, email)
	}
	return found.ID, nil
}

func (p *CRMProcessor) publish(ctx context.Context, eventType string, data map[string]any) {
	if p.events == nil {
		return
	}
	p.events.Publish(ctx, eventType, data)
}

func contactProperties(in ContactInput) map[string]any {
	props := map[string]any{}
	setIfPresent(props, "firstname", in.FirstName)
	setIfPresent(props, "lastname", in.LastName)
	setIfPresent(props, "phone", in.Phone)
	return props
}

func setIfPresent(props map[string]any, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		props[key] = v
	}
}

func normalizePriority(priority string) (string, error) {
	switch p := strings.ToUpper(strings.TrimSpace(priority)); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
}

// parseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight)
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}
