package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/internal/service/habit"
	"github.com/heartmarshall/habits-backend/internal/transport/dataloader"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

type habitService interface {
	Create(ctx context.Context, input habit.CreateInput) (*domain.Habit, error)
	List(ctx context.Context, archived bool) ([]domain.Habit, error)
	Get(ctx context.Context, habitID uuid.UUID) (*domain.Habit, error)
	Update(ctx context.Context, input habit.UpdateInput) (*domain.Habit, error)
	Archive(ctx context.Context, habitID uuid.UUID) error
	Unarchive(ctx context.Context, habitID uuid.UUID) error
	Delete(ctx context.Context, habitID uuid.UUID) error
	Reorder(ctx context.Context, input habit.ReorderInput) error
	Toggle(ctx context.Context, input habit.ToggleInput) (*domain.ToggleResult, error)
}

// HabitHandler serves the /habit/v1 endpoints. Categories and completion
// logs of the returned habits are batch loaded through the request's
// DataLoaders.
type HabitHandler struct {
	svc   habitService
	log   *slog.Logger
	clock func() time.Time
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(svc habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{svc: svc, log: logger.With("handler", "habit"), clock: time.Now}
}

type habitRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Emoji       *string   `json:"emoji"` // legacy name of icon
	Color       *string   `json:"color"`
	Categories  *[]string `json:"categories"`
}

func (req habitRequest) icon() *string {
	if req.Icon != nil {
		return req.Icon
	}
	return req.Emoji
}

type reorderItem struct {
	ID       uuid.UUID `json:"id"`
	Position int       `json:"position"`
}

type habitLogResponse struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type habitResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   *string            `json:"description"`
	Icon          string             `json:"icon"`
	Color         string             `json:"color"`
	Position      int                `json:"position"`
	IsActive      bool               `json:"isActive"`
	StreakBest    int                `json:"streakBest"`
	StreakCurrent int                `json:"streakCurrent"`
	HabitLogs     []habitLogResponse `json:"habitlogs"`
	Categories    []categoryResponse `json:"categories"`
}

type completionResponse struct {
	HabitID       string `json:"habitId"`
	Date          string `json:"date"`
	Completed     bool   `json:"completed"`
	Coins         int    `json:"coins"`
	StreakCurrent int    `json:"streakCurrent"`
	StreakBest    int    `json:"streakBest"`
}

const msgHabitNotFound = "Habit not found"

// Create handles POST /habit/v1/create-habit.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var categories []uuid.UUID
	if req.Categories != nil {
		ids, err := parseCategoryIDs(*req.Categories)
		if err != nil {
			handleError(w, r, h.log, "create habit", err)
			return
		}
		categories = ids
	}

	created, err := h.svc.Create(r.Context(), habit.CreateInput{
		Title:       deref(req.Title),
		Description: req.Description,
		Icon:        req.icon(),
		Color:       req.Color,
		Categories:  categories,
	})
	if err != nil {
		handleError(w, r, h.log, "create habit", err)
		return
	}

	h.writeHabit(w, r, http.StatusCreated, "Habit created successfully", created)
}

// List handles GET /habit/v1/get-habits.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false, "Habits fetched successfully")
}

// ListArchived handles GET /habit/v1/get-archived-habits.
func (h *HabitHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true, "Fetched archived habits")
}

func (h *HabitHandler) list(w http.ResponseWriter, r *http.Request, archived bool, message string) {
	habits, err := h.svc.List(r.Context(), archived)
	if err != nil {
		handleError(w, r, h.log, "list habits", err)
		return
	}

	out, err := h.present(r.Context(), habits)
	if err != nil {
		handleError(w, r, h.log, "list habits", err)
		return
	}

	writeSuccess(w, http.StatusOK, message, map[string]any{"habits": out})
}

// Get handles GET /habit/v1/get-habit/{id}.
func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgHabitNotFound)
	if !ok {
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, "get habit", err)
		return
	}

	h.writeHabit(w, r, http.StatusOK, "Habit fetched", found)
}

// Update handles PUT /habit/v1/update-habit/{id}.
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgHabitNotFound)
	if !ok {
		return
	}
	var req habitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := habit.UpdateInput{
		HabitID:     id,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.icon(),
		Color:       req.Color,
	}
	if req.Categories != nil {
		ids, err := parseCategoryIDs(*req.Categories)
		if err != nil {
			handleError(w, r, h.log, "update habit", err)
			return
		}
		input.Categories = &ids
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, "update habit", err)
		return
	}

	h.writeHabit(w, r, http.StatusOK, "Habit updated successfully", updated)
}

// Archive handles PUT /habit/v1/archive/{id}.
func (h *HabitHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Archive, "archive habit", "Habit archived successfully")
}

// Unarchive handles PUT /habit/v1/unarchive/{id}.
func (h *HabitHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Unarchive, "unarchive habit", "Habit unarchived successfully")
}

// Delete handles DELETE /habit/v1/delete/{id}.
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Delete, "delete habit", "Habit deleted")
}

func (h *HabitHandler) lifecycle(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) error,
	op, message string,
) {
	id, ok := pathID(w, r, msgHabitNotFound)
	if !ok {
		return
	}
	if err := fn(r.Context(), id); err != nil {
		handleError(w, r, h.log, op, err)
		return
	}
	writeSuccess(w, http.StatusOK, message, nil)
}

// Reorder handles POST /habit/v1/reorder. The body is a bare array of
// {id, position} pairs.
func (h *HabitHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var items []reorderItem
	if !decodeJSON(w, r, &items) {
		return
	}

	positions := make([]domain.HabitPosition, len(items))
	for i, it := range items {
		positions[i] = domain.HabitPosition{ID: it.ID, Position: it.Position}
	}

	if err := h.svc.Reorder(r.Context(), habit.ReorderInput{Positions: positions}); err != nil {
		handleError(w, r, h.log, "reorder habits", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Habits reordered", nil)
}

// Toggle handles PUT /habit/v1/toggle-completion/{id}. An optional
// ?date=YYYY-MM-DD selects the day; otherwise today in the caller's
// timezone is used.
func (h *HabitHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgHabitNotFound)
	if !ok {
		return
	}

	input := habit.ToggleInput{HabitID: id}
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err := domain.ParseDay(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = &day
	}

	res, err := h.svc.Toggle(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, "toggle completion", err)
		return
	}

	message := "Marked incomplete"
	if res.Completed {
		message = "Marked completed"
	}
	writeSuccess(w, http.StatusOK, message, map[string]any{
		"completion": completionResponse{
			HabitID:       res.HabitID.String(),
			Date:          res.Date.Format(domain.DayLayout),
			Completed:     res.Completed,
			Coins:         res.Coins,
			StreakCurrent: res.StreakCurrent,
			StreakBest:    res.StreakBest,
		},
	})
}

func (h *HabitHandler) writeHabit(w http.ResponseWriter, r *http.Request, status int, message string, hb *domain.Habit) {
	out, err := h.present(r.Context(), []domain.Habit{*hb})
	if err != nil {
		handleError(w, r, h.log, "load habit relations", err)
		return
	}
	writeSuccess(w, status, message, map[string]any{"habit": out[0]})
}

// present attaches categories and logs. All keys are queued before any
// thunk is awaited so each relation is fetched in one batch. Streaks are
// recomputed against the caller's today; the stored counters only move on
// toggle.
func (h *HabitHandler) present(ctx context.Context, habits []domain.Habit) ([]habitResponse, error) {
	loaders := dataloader.FromContext(ctx)

	catThunks := make([]func() ([]domain.Category, error), len(habits))
	logThunks := make([]func() ([]domain.CompletionLog, error), len(habits))
	for i, hb := range habits {
		catThunks[i] = loaders.CategoriesByHabitID.Load(ctx, hb.ID)
		logThunks[i] = loaders.LogsByHabitID.Load(ctx, hb.ID)
	}

	today := domain.DayOf(h.clock(), ctxutil.TimezoneFromCtx(ctx))
	out := make([]habitResponse, len(habits))
	for i, hb := range habits {
		categories, err := catThunks[i]()
		if err != nil {
			return nil, err
		}
		logs, err := logThunks[i]()
		if err != nil {
			return nil, err
		}
		out[i] = toHabitResponse(hb, categories, logs, today)
	}
	return out, nil
}

func toHabitResponse(hb domain.Habit, categories []domain.Category, logs []domain.CompletionLog, today time.Time) habitResponse {
	completed := make([]time.Time, 0, len(logs))
	for _, l := range logs {
		if l.Completed {
			completed = append(completed, l.Date)
		}
	}
	current, longest := domain.ComputeStreaks(completed, today)

	resp := habitResponse{
		ID:            hb.ID.String(),
		Title:         hb.Title,
		Description:   hb.Description,
		Icon:          hb.Icon,
		Color:         hb.Color,
		Position:      hb.Position,
		IsActive:      hb.IsActive,
		StreakBest:    max(hb.StreakBest, longest),
		StreakCurrent: current,
		HabitLogs:     make([]habitLogResponse, len(logs)),
		Categories:    make([]categoryResponse, len(categories)),
	}
	for i, l := range logs {
		resp.HabitLogs[i] = habitLogResponse{Date: l.Date.Format(domain.DayLayout), Completed: l.Completed}
	}
	for i, c := range categories {
		resp.Categories[i] = toCategoryResponse(c)
	}
	return resp
}

// parseCategoryIDs rejects ids that are not UUIDs with the same message the
// service uses for unknown ones.
func parseCategoryIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	var invalid []string
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			invalid = append(invalid, s)
			continue
		}
		ids = append(ids, id)
	}
	if len(invalid) > 0 {
		return nil, domain.WithMessage(domain.ErrValidation, "Invalid categories: "+strings.Join(invalid, ", "))
	}
	return ids, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
