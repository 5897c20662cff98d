package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"voice-crm/internal/apierrors"
	"voice-crm/internal/crm/processor"
	"voice-crm/internal/observability"

	"github.com/gin-gonic/gin"
)

// CRMService exposes the contact-centric CRM operations
type CRMService interface {
	FindOrCreateContact(ctx context.Context, in processor.ContactInput) (processor.ContactResult, error)
	AddNoteToContact(ctx context.Context, in processor.NoteInput) (processor.NoteResult, error)
	CreateDealForContact(ctx context.Context, in processor.DealInput) (processor.DealResult, error)
	CreateTaskForContact(ctx context.Context, in processor.TaskInput) (processor.TaskResult, error)
}

type Handler struct {
	service CRMService
	logger  *observability.Logger
}

func New(service CRMService, logger *observability.Logger) Handler {
	return Handler{
		service: service,
		logger:  logger,
	}
}

type ContactRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Phone     string `json:"phone" binding:"max=50"`
}

type NoteRequest struct {
	Body      string `json:"note_body" binding:"required"`
	ContactID string `json:"contact_id" binding:"required_without=Email"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type DealRequest struct {
	Name      string   `json:"dealname" binding:"required,max=255"`
	ContactID string   `json:"contact_id"`
	Email     string   `json:"email" binding:"omitempty,email"`
	Amount    *float64 `json:"amount" binding:"omitempty,gte=0"`
	Pipeline  string   `json:"pipeline"`
	Stage     string   `json:"dealstage"`
	CloseDate string   `json:"close_date_iso"`
}

type TaskRequest struct {
	Subject   string `json:"subject" binding:"required,max=255"`
	DueAt     string `json:"due_datetime_iso" binding:"required"`
	Body      string `json:"body"`
	ContactID string `json:"contact_id"`
	Email     string `json:"email" binding:"omitempty,email"`
	Priority  string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH low medium high"`
}

// HandleFindOrCreateContact handles POST /api/crm/contacts
func (h *Handler) HandleFindOrCreateContact(c *gin.Context) {
	ctx := c.Request.Context()

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.service.FindOrCreateContact(ctx, processor.ContactInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.WasCreated {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// HandleAddNote handles POST /api/crm/notes
func (h *Handler) HandleAddNote(c *gin.Context) {
	ctx := c.Request.Context()

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.service.AddNoteToContact(ctx, processor.NoteInput{
		Body:      req.Body,
		ContactID: req.ContactID,
		Email:     req.Email,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleCreateDeal handles POST /api/crm/deals
func (h *Handler) HandleCreateDeal(c *gin.Context) {
	ctx := c.Request.Context()

	var req DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.service.CreateDealForContact(ctx, processor.DealInput{
		Name:      req.Name,
		ContactID: req.ContactID,
		Email:     req.Email,
		Amount:    req.Amount,
		Pipeline:  req.Pipeline,
		Stage:     req.Stage,
		CloseDate: req.CloseDate,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// HandleCreateTask handles POST /api/crm/tasks
func (h *Handler) HandleCreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.service.CreateTaskForContact(ctx, processor.TaskInput{
		Subject:   req.Subject,
		DueAt:     req.DueAt,
		Body:      req.Body,
		ContactID: req.ContactID,
		Email:     req.Email,
		Priority:  req.Priority,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
