package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hostaly/rooms-api/internal/core/domain"
	"github.com/hostaly/rooms-api/internal/core/ports"
)

type stubRoomService struct {
	createTypeFn func(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error)
	listTypesFn  func(ctx context.Context) ([]domain.RoomType, error)
	createRoomFn func(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error)
	listRoomsFn  func(ctx context.Context) ([]domain.Room, error)
	updateRoomFn func(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error)
	deleteRoomFn func(ctx context.Context, id string) error
}

func (s *stubRoomService) CreateRoomType(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error) {
	return s.createTypeFn(ctx, input)
}

func (s *stubRoomService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.listTypesFn(ctx)
}

func (s *stubRoomService) CreateRoom(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	return s.createRoomFn(ctx, input)
}

func (s *stubRoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.listRoomsFn(ctx)
}

func (s *stubRoomService) UpdateRoom(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
	return s.updateRoomFn(ctx, id, input)
}

func (s *stubRoomService) DeleteRoom(ctx context.Context, id string) error {
	return s.deleteRoomFn(ctx, id)
}

func newRoomContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRoomHandler_CreateRoomType_Success(t *testing.T) {
	stub := &stubRoomService{
		createTypeFn: func(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error) {
			if input.Name != "double" || input.Capacity != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.RoomType{
				ID:        "rt1",
				Name:      input.Name,
				Capacity:  input.Capacity,
				BasePrice: input.BasePrice,
				Currency:  input.Currency,
				CreatedAt: time.Now(),
			}, nil
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodPost, "/api/v1/rooms-types",
		`{"name":"double","capacity":2,"base_price":120,"currency":"USD"}`)

	if err := handler.CreateRoomType(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "rt1" || resp["name"] != "double" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestRoomHandler_CreateRoomType_Validation(t *testing.T) {
	stub := &stubRoomService{
		createTypeFn: func(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodPost, "/api/v1/rooms-types",
		`{"name":"double","capacity":0,"base_price":120,"currency":"USD"}`)

	_ = handler.CreateRoomType(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoomHandler_CreateRoomType_Duplicate(t *testing.T) {
	stub := &stubRoomService{
		createTypeFn: func(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error) {
			return nil, domain.ErrRoomTypeExists
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodPost, "/api/v1/rooms-types",
		`{"name":"double","capacity":2,"base_price":120,"currency":"USD"}`)

	_ = handler.CreateRoomType(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRoomHandler_UpdateRoom_Success(t *testing.T) {
	stub := &stubRoomService{
		updateRoomFn: func(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
			if id != "room1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Status == nil || *input.Status != "maintenance" {
				t.Fatalf("status not forwarded: %+v", input)
			}
			if input.Number != nil {
				t.Fatalf("absent field should stay nil")
			}
			return &domain.Room{
				ID:     id,
				Number: "101",
				Status: domain.RoomMaintenance,
			}, nil
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodPatch, "/api/v1/rooms/room1",
		`{"status":"maintenance"}`)
	c.SetParamNames("roomId")
	c.SetParamValues("room1")

	if err := handler.UpdateRoom(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoomHandler_UpdateRoom_NotFound(t *testing.T) {
	stub := &stubRoomService{
		updateRoomFn: func(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
			return nil, domain.ErrRoomNotFound
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodPatch, "/api/v1/rooms/missing",
		`{"status":"maintenance"}`)
	c.SetParamNames("roomId")
	c.SetParamValues("missing")

	_ = handler.UpdateRoom(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRoomHandler_UpdateRoom_BadStatus(t *testing.T) {
	stub := &stubRoomService{
		updateRoomFn: func(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodPatch, "/api/v1/rooms/room1",
		`{"status":"demolished"}`)
	c.SetParamNames("roomId")
	c.SetParamValues("room1")

	_ = handler.UpdateRoom(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRoomHandler_DeleteRoom(t *testing.T) {
	deleted := ""
	stub := &stubRoomService{
		deleteRoomFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodDelete, "/api/v1/rooms/room1", "")
	c.SetParamNames("roomId")
	c.SetParamValues("room1")

	if err := handler.DeleteRoom(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "room1" {
		t.Fatalf("unexpected id: %s", deleted)
	}
}

func TestRoomHandler_DeleteRoom_NotFound(t *testing.T) {
	stub := &stubRoomService{
		deleteRoomFn: func(ctx context.Context, id string) error {
			return domain.ErrRoomNotFound
		},
	}
	handler := NewRoomHandler(stub)

	c, rec := newRoomContext(t, http.MethodDelete, "/api/v1/rooms/missing", "")
	c.SetParamNames("roomId")
	c.SetParamValues("missing")

	_ = handler.DeleteRoom(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
