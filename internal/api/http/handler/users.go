package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/accountability-atlas/user-service/internal/api/http/middleware"
	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
	"github.com/accountability-atlas/user-service/internal/service"
)

// Users handles profile lookups and the admin trust-tier operation.
type Users struct {
	users  *service.Users
	logger *logger.Logger
}

func NewUsers(users *service.Users, logger *logger.Logger) *Users {
	return &Users{users: users, logger: logger}
}

type userResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	DisplayName   string    `json:"displayName"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	TrustTier     string    `json:"trustTier"`
	CreatedAt     time.Time `json:"createdAt"`
}

type publicStatsResponse struct {
	SubmissionCount int `json:"submissionCount"`
	ApprovedCount   int `json:"approvedCount"`
}

type publicProfileResponse struct {
	ID          uuid.UUID            `json:"id"`
	DisplayName string               `json:"displayName"`
	AvatarURL   string               `json:"avatarUrl,omitempty"`
	TrustTier   string               `json:"trustTier"`
	CreatedAt   time.Time            `json:"createdAt"`
	Stats       *publicStatsResponse `json:"stats,omitempty"`
}

type updateTrustTierRequest struct {
	TrustTier string `json:"trustTier" binding:"required"`
	Reason    string `json:"reason"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		DisplayName:   user.DisplayName,
		AvatarURL:     user.AvatarURL,
		TrustTier:     string(user.TrustTier),
		CreatedAt:     user.CreatedAt,
	}
}

// Me returns the full record of the authenticated user.
func (h *Users) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody{Code: "INVALID_TOKEN", Message: "Invalid access token"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe is an API stub; profile editing is not wired up yet.
func (h *Users) UpdateMe(c *gin.Context) {
	writeNotImplemented(c)
}

// GetByID returns the public profile: no email, no rejected count.
func (h *Users) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidationError(c)
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	profile := publicProfileResponse{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		TrustTier:   string(user.TrustTier),
		CreatedAt:   user.CreatedAt,
	}

	if stats, err := h.users.GetStats(c.Request.Context(), id); err == nil {
		profile.Stats = &publicStatsResponse{
			SubmissionCount: stats.SubmissionCount,
			ApprovedCount:   stats.ApprovedCount,
		}
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateTrustTier moves a user to a new trust tier. Admin only.
func (h *Users) UpdateTrustTier(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody{Code: "INVALID_TOKEN", Message: "Invalid access token"})
		return
	}
	if claims.TrustTier != model.TrustTierAdmin {
		c.JSON(http.StatusForbidden, errorBody{Code: "FORBIDDEN", Message: "Admin access required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeValidationError(c)
		return
	}

	var req updateTrustTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c)
		return
	}

	tier, err := model.ParseTrustTier(req.TrustTier)
	if err != nil {
		writeValidationError(c)
		return
	}

	user, err := h.users.UpdateTrustTier(c.Request.Context(), id, tier, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
