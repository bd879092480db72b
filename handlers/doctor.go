package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/doctor"
	"medicare/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	Doctors doctor.DoctorService
}

func NewDoctorHandler(ds doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Doctors: ds}
}

func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	res, err := h.Doctors.Create(c.Request.Context(), d)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	res, err := h.Doctors.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
