package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/middleware"
)

type MeHandler struct {
	accounts account.Repository
}

func NewMeHandler(accounts account.Repository) *MeHandler {
	return &MeHandler{accounts: accounts}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.accounts.GetByID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}
