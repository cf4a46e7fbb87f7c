package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miyabidining/table-reservation-api/internal/identity"
	"github.com/miyabidining/table-reservation-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe returns the platform profile. The booking form pre-fills the
// name field from it.
func (h *MeHandler) GetMe(c *gin.Context) {
	profileVal, exists := c.Get(middleware.ContextProfile)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "profile_not_in_context"})
		return
	}

	profile, ok := profileVal.(*identity.Profile)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_profile_type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          profile.UserID,
			"name":        profile.DisplayName,
			"picture_url": profile.PictureURL,
		},
	})
}
