package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/middleware"
	ucaccount "github.com/NovaMenteServices/clinic-manager/internal/usecase/account"
)

// UserHandler expõe a administração de contas; todas as rotas ficam
// atrás de RequireAdmin.
type UserHandler struct {
	list         *ucaccount.List
	get          *ucaccount.Get
	create       *ucaccount.Create
	update       *ucaccount.Update
	toggleActive *ucaccount.ToggleActive
	remove       *ucaccount.Delete
}

func NewUserHandler(
	list *ucaccount.List,
	get *ucaccount.Get,
	create *ucaccount.Create,
	update *ucaccount.Update,
	toggleActive *ucaccount.ToggleActive,
	remove *ucaccount.Delete,
) *UserHandler {
	return &UserHandler{
		list:         list,
		get:          get,
		create:       create,
		update:       update,
		toggleActive: toggleActive,
		remove:       remove,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	var in ucaccount.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.create.Execute(c.Request.Context(), in, actingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var in ucaccount.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.update.Execute(c.Request.Context(), id, in, actingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ToggleActive(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.toggleActive.Execute(c.Request.Context(), id, actingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, actingID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
