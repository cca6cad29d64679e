package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hostaly/rooms-api/internal/api/metrics"
	"github.com/hostaly/rooms-api/internal/api/middleware"
	"github.com/hostaly/rooms-api/internal/core/domain"
	"github.com/hostaly/rooms-api/internal/core/ports"
	"github.com/hostaly/rooms-api/internal/core/service"
)

// RoomHandler handles HTTP requests for room and room type management.
type RoomHandler struct {
	rooms ports.RoomService
}

func NewRoomHandler(rooms ports.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

// CreateRoomType handles POST /api/v1/rooms-types (admin only).
//
// @Summary      Create a room type
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomTypeRequest  true  "Room type details"
// @Success      201   {object}  roomTypeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/rooms-types [post]
func (h *RoomHandler) CreateRoomType(c echo.Context) error {
	var req createRoomTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.rooms.CreateRoomType(h.actorCtx(c), ports.CreateRoomTypeInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		BasePrice:   req.BasePrice,
		Currency:    req.Currency,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRoomTypeExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "room type already exists"})
		}
		return err
	}

	metrics.InventoryMutationsTotal.WithLabelValues("room_type", "create").Inc()
	return c.JSON(http.StatusCreated, toRoomTypeResponse(created))
}

// ListRoomTypes handles GET /api/v1/rooms-types.
//
// @Summary      List room types
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  roomTypeResponse
// @Router       /api/v1/rooms-types [get]
func (h *RoomHandler) ListRoomTypes(c echo.Context) error {
	types, err := h.rooms.ListRoomTypes(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]roomTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, toRoomTypeResponse(&types[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// CreateRoom handles POST /api/v1/rooms (admin only).
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/v1/rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.rooms.CreateRoom(h.actorCtx(c), ports.CreateRoomInput{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
		Floor:      req.Floor,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "room already exists"})
		case errors.Is(err, domain.ErrRoomTypeNotFound):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "unknown room type"})
		}
		return err
	}

	metrics.InventoryMutationsTotal.WithLabelValues("room", "create").Inc()
	return c.JSON(http.StatusCreated, toRoomResponse(created))
}

// ListRooms handles GET /api/v1/rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {array}  roomResponse
// @Router       /api/v1/rooms [get]
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]roomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateRoom handles PATCH /api/v1/rooms/:roomId (admin only).
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        roomId  path      string             true  "Room id"
// @Param        body    body      updateRoomRequest  true  "Fields to change"
// @Success      200     {object}  roomResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /api/v1/rooms/{roomId} [patch]
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.rooms.UpdateRoom(h.actorCtx(c), c.Param("roomId"), ports.UpdateRoomInput{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
		Floor:      req.Floor,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		case errors.Is(err, domain.ErrRoomTypeNotFound):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "unknown room type"})
		case errors.Is(err, domain.ErrInvalidRoomStatus):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "invalid room status"})
		case errors.Is(err, domain.ErrRoomExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "room number already in use"})
		}
		return err
	}

	metrics.InventoryMutationsTotal.WithLabelValues("room", "update").Inc()
	return c.JSON(http.StatusOK, toRoomResponse(updated))
}

// DeleteRoom handles DELETE /api/v1/rooms/:roomId (admin only).
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        roomId  path  string  true  "Room id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/rooms/{roomId} [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	if err := h.rooms.DeleteRoom(h.actorCtx(c), c.Param("roomId")); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "room not found"})
		}
		return err
	}

	metrics.InventoryMutationsTotal.WithLabelValues("room", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// actorCtx tags the request context with the authenticated username so the
// service layer can attribute audit records.
func (h *RoomHandler) actorCtx(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if username, ok := c.Get(middleware.CtxUsername).(string); ok && username != "" {
		ctx = service.WithActor(ctx, username)
	}
	return ctx
}
