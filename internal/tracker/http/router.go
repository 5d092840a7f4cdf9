package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/config"
	commonhttp "github.com/dkurenkov/exercise-tracker/backend/internal/common/http"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/logger"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/mapper"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/service"
)

type Handler struct {
	tracker *service.TrackerService
	errors  *commonhttp.ErrorHandler
	log     *logger.Logger
	timeout time.Duration
}

func NewHandler(tracker *service.TrackerService, cfg config.TrackerConfig, log *logger.Logger) http.Handler {
	h := &Handler{
		tracker: tracker,
		errors:  commonhttp.NewErrorHandler(log),
		log:     log,
		timeout: cfg.RequestTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("POST /api/users", h.createUser)
	mux.HandleFunc("GET /api/users", h.listUsers)
	mux.HandleFunc("POST /api/users/{id}/exercises", h.addExercise)
	mux.HandleFunc("GET /api/users/{id}/logs", h.getLog)

	return mux
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warnf("create user failed: invalid form body: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, err := h.tracker.CreateUser(ctx, service.CreateUserInput{
		Username: r.PostFormValue("username"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, mapper.UserToDTO(user))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	users, err := h.tracker.ListUsers(ctx)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, mapper.UsersToDTO(users))
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Warnf("add exercise failed: invalid form body: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	user, exercise, err := h.tracker.AddExercise(ctx, service.AddExerciseInput{
		UserID:      r.PathValue("id"),
		Description: r.PostFormValue("description"),
		Duration:    r.PostFormValue("duration"),
		Date:        r.PostFormValue("date"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, mapper.CreatedExerciseToDTO(user, exercise))
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	query := r.URL.Query()
	user, exercises, err := h.tracker.GetLog(ctx, service.LogInput{
		UserID: r.PathValue("id"),
		From:   query.Get("from"),
		To:     query.Get("to"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, mapper.LogToDTO(user, exercises))
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
