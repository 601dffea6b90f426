package handlers

import (
	"net/http"

	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"mindwell-backend/internal/middleware"
	"mindwell-backend/pkg/api"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	client *supabase.Client
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler. The Supabase client may be nil,
// in which case the profile is built from the validated token claims alone.
func NewUserHandler(client *supabase.Client, logger *zap.Logger) *UserHandler {
	return &UserHandler{client: client, logger: logger}
}

// GetMe handles GET /api/v1/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile := api.UserResponse{ID: userID}

	token, ok := middleware.TokenFromContext(r.Context())
	if h.client != nil && ok {
		// GetUser does not take a context; the chained client carries the
		// caller's token on the underlying request.
		user, err := h.client.Auth.WithToken(token).GetUser()
		if err != nil {
			h.logger.Warn("auth profile lookup failed", zap.String("userId", userID), zap.Error(err))
			api.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		profile.ID = user.ID.String()
		profile.Email = user.Email
	}

	api.WriteSuccess(w, http.StatusOK, profile)
}
