package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/domain"
	"github.com/aussiebroadwan/userdeck/internal/service"
	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

// UserResponse is the public projection of a user record. The password hash
// never appears in any response.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserRequest creates a new user; IsAdmin defaults to false.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UpdateUserRequest is a partial update; absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"isAdmin"`
}

type UsersHandler struct {
	Users *service.UserService
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

// HandleList lists all users.
//
//	@Summary		List users
//	@Description	Returns all users ordered by id. Password hashes are never included.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		UserResponse	"All users"
//	@Failure		500	{object}	httpx.APIError	"Internal server error"
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.Users.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list users failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns a single user by id.
//
//	@Summary		Get a user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string			true	"User id"
//	@Success		200	{object}	UserResponse	"The user"
//	@Failure		404	{object}	httpx.APIError	"No such user"
//	@Failure		500	{object}	httpx.APIError	"Internal server error"
//	@Router			/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, err := h.Users.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("get user failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// HandleCreate creates a user.
//
//	@Summary		Create a user
//	@Description	Creates a new user with a hashed password. Requires an admin bearer token.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"New user"
//	@Success		201		{object}	UserResponse		"Created user, Location header set"
//	@Failure		400		{object}	httpx.APIError		"Missing or blank username/password"
//	@Failure		401		{object}	httpx.APIError		"Missing or invalid token"
//	@Failure		403		{object}	httpx.APIError		"Caller is not an admin"
//	@Failure		409		{object}	httpx.APIError		"Username already taken"
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.Users.Create(ctx, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlankUsername), errors.Is(err, service.ErrBlankPassword):
			httpx.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.ErrConflict.WriteError(w)
		default:
			log.Error("create user failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("user created", "user_id", u.ID, "username", u.Username)

	w.Header().Set("Location", "/users/"+u.ID)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// HandleUpdate applies a partial update to a user.
//
//	@Summary		Update a user
//	@Description	Partially updates a user. A provided password is re-hashed. Tokens already issued to the user keep their original claims until expiry.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string				true	"User id"
//	@Param			request	body	UpdateUserRequest	true	"Fields to change"
//	@Success		204		"Updated"
//	@Failure		400		{object}	httpx.APIError	"Empty patch or blank fields"
//	@Failure		401		{object}	httpx.APIError	"Missing or invalid token"
//	@Failure		403		{object}	httpx.APIError	"Caller is not an admin"
//	@Failure		404		{object}	httpx.APIError	"No such user"
//	@Failure		409		{object}	httpx.APIError	"Username already taken"
//	@Router			/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.Users.Update(ctx, r.PathValue("id"), service.UserUpdate{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate),
			errors.Is(err, service.ErrBlankUsername),
			errors.Is(err, service.ErrBlankPassword):
			httpx.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			httpx.ErrNotFound.WriteError(w)
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.ErrConflict.WriteError(w)
		default:
			log.Error("update user failed", "err", err)
			httpx.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a user.
//
//	@Summary		Delete a user
//	@Description	Deletes a user record. Outstanding tokens for the user remain valid until they expire.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	httpx.APIError	"Missing or invalid token"
//	@Failure		403	{object}	httpx.APIError	"Caller is not an admin"
//	@Failure		404	{object}	httpx.APIError	"No such user"
//	@Router			/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Users.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("delete user failed", "err", err)
		httpx.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
