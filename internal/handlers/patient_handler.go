package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/middleware"
	ucpatient "github.com/NovaMenteServices/clinic-manager/internal/usecase/patient"
)

type PatientHandler struct {
	list         *ucpatient.List
	get          *ucpatient.Get
	create       *ucpatient.Create
	update       *ucpatient.Update
	toggleActive *ucpatient.ToggleActive
	remove       *ucpatient.Delete
}

func NewPatientHandler(
	list *ucpatient.List,
	get *ucpatient.Get,
	create *ucpatient.Create,
	update *ucpatient.Update,
	toggleActive *ucpatient.ToggleActive,
	remove *ucpatient.Delete,
) *PatientHandler {
	return &PatientHandler{
		list:         list,
		get:          get,
		create:       create,
		update:       update,
		toggleActive: toggleActive,
		remove:       remove,
	}
}

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	var in ucpatient.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.create.Execute(c.Request.Context(), in, actingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var in ucpatient.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.update.Execute(c.Request.Context(), id, in, actingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) ToggleActive(c *gin.Context) {
	actingID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.toggleActive.Execute(c.Request.Context(), id, actingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
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

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
