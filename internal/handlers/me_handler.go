package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Not authenticated.")
		return
	}
	httpresp.OK(c, user)
}
