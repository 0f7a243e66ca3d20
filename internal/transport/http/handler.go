package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cwrk-planet/rooms-api/internal/domain"
	"github.com/cwrk-planet/rooms-api/internal/transport/http/httputil"
	httpmw "github.com/cwrk-planet/rooms-api/internal/transport/http/middleware"
)

type RoomLister interface {
	ListRooms(ctx context.Context) ([]domain.RoomSummary, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	roomSvc RoomLister
	db      Pinger
}

// db может быть nil — тогда /healthz не проверяет базу.
func NewHandler(room RoomLister, db Pinger) *Handler {
	return &Handler{
		roomSvc: room,
		db:      db,
	}
}

// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	httpmw.L(r.Context()).Debug("get home")
	httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /rooms
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomSvc.ListRooms(r.Context())
	if err != nil {
		// ответ 504 пишет middleware.Timeout
		if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
			httpmw.L(r.Context()).Warn("handler.ListRooms: request timed out", slog.Any("err", err))
			return
		}
		httpmw.L(r.Context()).Error("handler.ListRooms", slog.Any("err", err))
		httputil.InternalError(w)
		return
	}

	httputil.JSON(w, http.StatusOK, toRoomItems(rooms))
}

// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			httpmw.L(r.Context()).Warn("handler.Health: db ping failed", slog.Any("err", err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db unavailable"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
