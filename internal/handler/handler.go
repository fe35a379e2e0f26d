package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/dto"
	"github.com/jrdxnra/eventflow-service/internal/repository"
	"github.com/jrdxnra/eventflow-service/internal/service"
)

type Handler struct {
	events    service.EventServicer
	roster    service.RosterServicer
	logistics service.LogisticsServicer
	workspace service.WorkspaceLoader
	router    *gin.Engine
	log       *zap.Logger
}

func NewHandler(events service.EventServicer, roster service.RosterServicer, logistics service.LogisticsServicer, workspace service.WorkspaceLoader, log *zap.Logger) *Handler {
	h := &Handler{
		events:    events,
		roster:    roster,
		logistics: logistics,
		workspace: workspace,
		router:    gin.Default(),
		log:       log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	h.router.POST("/events", h.createEvent)
	h.router.GET("/events", h.listEvents)
	h.router.GET("/events/:id", h.getEvent)
	h.router.PUT("/events/:id", h.updateEvent)
	h.router.DELETE("/events/:id", h.deleteEvent)

	h.router.GET("/events/:id/timeline", h.getTimeline)
	h.router.PUT("/events/:id/timeline", h.replaceTimeline)

	h.router.GET("/events/:id/logistics", h.getLogistics)
	h.router.PUT("/events/:id/logistics", h.replaceLogistics)

	h.router.POST("/events/:id/sync", h.requestSync)

	h.router.POST("/coaches", h.createCoach)
	h.router.GET("/coaches", h.listCoaches)
	h.router.GET("/coaches/:id", h.getCoach)
	h.router.PUT("/coaches/:id", h.updateCoach)
	h.router.DELETE("/coaches/:id", h.deleteCoach)

	h.router.POST("/contacts", h.createContact)
	h.router.GET("/contacts", h.listContacts)
	h.router.GET("/contacts/:id", h.getContact)
	h.router.PUT("/contacts/:id", h.updateContact)
	h.router.DELETE("/contacts/:id", h.deleteContact)

	h.router.GET("/workspace", h.getWorkspace)
}

// respondError maps service errors to the API error vocabulary: validation
// failures are 400 with field messages, missing documents are 404, anything
// else is a generic 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation_error",
			Fields: validation.Fields,
		})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "not_found",
		})
		return
	}

	h.log.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "internal_error",
		Message: err.Error(),
	})
}

func (h *Handler) bindError(c *gin.Context, err error) {
	h.log.Warn("Invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// --- events ---

func (h *Handler) createEvent(c *gin.Context) {
	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	event, err := h.events.CreateEvent(c.Request.Context(), req.ToDomain(""))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *Handler) getEvent(c *gin.Context) {
	event, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) updateEvent(c *gin.Context) {
	var req dto.SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	event, err := h.events.UpdateEvent(c.Request.Context(), req.ToDomain(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.events.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- timeline ---

func (h *Handler) getTimeline(c *gin.Context) {
	eventID := c.Param("id")

	items, err := h.events.GetTimeline(c.Request.Context(), eventID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimelineResponse{
		EventID: eventID,
		Items:   items,
	})
}

func (h *Handler) replaceTimeline(c *gin.Context) {
	eventID := c.Param("id")

	var req dto.ReplaceTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	items, err := h.events.ReplaceTimeline(c.Request.Context(), eventID, req.Items)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimelineResponse{
		EventID: eventID,
		Items:   items,
	})
}

// --- logistics ---

func (h *Handler) getLogistics(c *gin.Context) {
	bundle, err := h.logistics.GetLogistics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (h *Handler) replaceLogistics(c *gin.Context) {
	var req dto.ReplaceLogisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	bundle, err := h.logistics.ReplaceLogistics(c.Request.Context(), req.ToDomain(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// --- calendar sync ---

func (h *Handler) requestSync(c *gin.Context) {
	eventID := c.Param("id")

	if err := h.events.RequestCalendarSync(c.Request.Context(), eventID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.SyncRequestedResponse{
		EventID: eventID,
		Status:  "queued",
	})
}

// --- coaches ---

func (h *Handler) createCoach(c *gin.Context) {
	var req dto.SaveCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	coach, err := h.roster.CreateCoach(c.Request.Context(), req.ToDomain(""))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, coach)
}

func (h *Handler) listCoaches(c *gin.Context) {
	coaches, err := h.roster.ListCoaches(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coaches)
}

func (h *Handler) getCoach(c *gin.Context) {
	coach, err := h.roster.GetCoach(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coach)
}

func (h *Handler) updateCoach(c *gin.Context) {
	var req dto.SaveCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	coach, err := h.roster.UpdateCoach(c.Request.Context(), req.ToDomain(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, coach)
}

func (h *Handler) deleteCoach(c *gin.Context) {
	if err := h.roster.DeleteCoach(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- contacts ---

func (h *Handler) createContact(c *gin.Context) {
	var req dto.SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	contact, err := h.roster.CreateContact(c.Request.Context(), req.ToDomain(""))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.roster.ListContacts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) getContact(c *gin.Context) {
	contact, err := h.roster.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) updateContact(c *gin.Context) {
	var req dto.SaveContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	contact, err := h.roster.UpdateContact(c.Request.Context(), req.ToDomain(c.Param("id")))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) deleteContact(c *gin.Context) {
	if err := h.roster.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- workspace ---

func (h *Handler) getWorkspace(c *gin.Context) {
	c.JSON(http.StatusOK, h.workspace.LoadWorkspace(c.Request.Context()))
}
