package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mkravtsov/content-portal/internal/content"
	"github.com/mkravtsov/content-portal/internal/db"
)

type EventHandler struct {
	uc  *content.EventManager
	log *slog.Logger
}

func NewEventHandler(uc *content.EventManager, log *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:  uc,
		log: log,
	}
}

func (h *EventHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Register mounts the event routes on the given group (base path /api).
func (h *EventHandler) Register(g *echo.Group) {
	g.GET("/events", h.Events)
	g.GET("/event/:id", h.EventByID)
	g.POST("/event", h.CreateEvent)
	g.PUT("/event", h.UpdateEvent)
	g.DELETE("/event/:id", h.DeleteEvent)
}

// Events handles GET /api/events: the full collection, no filtering.
func (h *EventHandler) Events(c echo.Context) error {
	events, err := h.uc.Events(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewEvents(events))
}

// EventByID handles GET /api/event/:id
func (h *EventHandler) EventByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	event, err := h.uc.EventByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if event == nil {
		return c.String(http.StatusNotFound, "event not found")
	}

	return c.JSON(http.StatusOK, NewEvent(*event))
}

// CreateEvent handles POST /api/event and returns the created record
// with its database-assigned identifier.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req NewEventRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), content.NewEvent{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewEvent(*event))
}

// UpdateEvent handles PUT /api/event with a full record including the
// identifier, and returns the stored record.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req Event
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), content.Event{Event: db.Event{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
	}})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if event == nil {
		return c.String(http.StatusNotFound, "event not found")
	}

	return c.JSON(http.StatusOK, NewEvent(*event))
}

// DeleteEvent handles DELETE /api/event/:id and returns the record as
// it was before deletion.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	event, err := h.uc.DeleteEvent(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if event == nil {
		return c.String(http.StatusNotFound, "event not found")
	}

	return c.JSON(http.StatusOK, NewEvent(*event))
}
