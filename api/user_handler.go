package api

import (
	"encoding/json"
	"net/http"

	"github.com/plateful-app/backend/config"
	"github.com/plateful-app/backend/database"
	"github.com/plateful-app/backend/errs"
	"github.com/plateful-app/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder     Responder
	logger        zerolog.Logger
	userRepo      *database.UserRepo
	limits        config.Limits
	users         services.UserService
	subscriptions services.SubscriptionService
	projector     services.Projector
}

func newUserHandler(db database.Database, limits config.Limits) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		userRepo:      db.UserRepo(),
		limits:        limits,
		users:         services.NewUserService(db),
		subscriptions: services.NewSubscriptionService(db),
		projector:     services.NewProjector(db),
	}
}

// register creates a new account
// @Summary Register user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "Registration data"
// @Success 201 {object} services.UserView "Created profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid registration data"
// @Failure 409 {object} ErrorResponse "Conflict - Username or email taken"
// @Router /api/users [post]
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.RegisterInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.Malformed("registration"))
			return
		}

		user, err := h.users.Register(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.projector.UserView(nil, user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, view)
	}
}

// getAllUsers retrieves user profiles with viewer-relative subscription flags
// @Summary Get all users
// @Tags Users
// @Produce json
// @Success 200 {object} PageResponse "Page of profiles"
// @Router /api/users [get]
func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pageParams(r, h.limits)

		users, err := h.userRepo.FindAll(limit, offset)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "users", err))
			return
		}

		views, err := h.projector.UserViews(currentUser(r.Context()), users)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, PageResponse{Count: int64(len(views)), Results: views})
	}
}

// getUser retrieves a specific profile by ID
// @Summary Get user
// @Tags Users
// @Produce json
// @Param userID path string true "User ID" format(uuid)
// @Success 200 {object} services.UserView "Profile"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Router /api/users/{userID} [get]
func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseUUIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFound("user"))
			return
		}

		view, err := h.projector.UserView(currentUser(r.Context()), user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// me retrieves the signed-in user's own profile
// @Summary Get own profile
// @Tags Users
// @Produce json
// @Success 200 {object} services.UserView "Profile"
// @Router /api/users/me [get]
func (h userHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r.Context())

		view, err := h.projector.UserView(user, user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, view)
	}
}

// subscribe follows an author
// @Summary Subscribe to author
// @Tags Users
// @Produce json
// @Param userID path string true "Author ID" format(uuid)
// @Param recipes_limit query int false "Truncate the author's recipe list"
// @Success 201 {object} services.AuthorView "Author profile with recipes"
// @Failure 400 {object} ErrorResponse "Bad Request - Self-subscription"
// @Failure 409 {object} ErrorResponse "Conflict - Already subscribed"
// @Router /api/users/{userID}/subscribe [post]
func (h userHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := parseUUIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.subscriptions.Subscribe(currentUser(r.Context()), authorID, intQueryParam(r, "recipes_limit"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, view)
	}
}

// unsubscribe unfollows an author
// @Summary Unsubscribe from author
// @Tags Users
// @Param userID path string true "Author ID" format(uuid)
// @Success 204 "Unsubscribed"
// @Failure 404 {object} ErrorResponse "Not Found - Not subscribed"
// @Router /api/users/{userID}/subscribe [delete]
func (h userHandler) unsubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := parseUUIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.subscriptions.Unsubscribe(currentUser(r.Context()), authorID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// getSubscriptions lists the authors the signed-in user follows
// @Summary Get subscriptions
// @Tags Users
// @Produce json
// @Param recipes_limit query int false "Truncate each author's recipe list"
// @Success 200 {object} PageResponse "Page of author profiles"
// @Router /api/users/subscriptions [get]
func (h userHandler) getSubscriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.subscriptions.Subscriptions(currentUser(r.Context()), intQueryParam(r, "recipes_limit"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, PageResponse{Count: int64(len(views)), Results: views})
	}
}
