package handlers

import (
	"net/http"

	"medicare/models"
	"medicare/services/user"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// IssueToken handles GET /jwt?email=E.
func (h *UserHandler) IssueToken(c *gin.Context) {
	resp, err := h.UserService.IssueToken(c.Request.Context(), c.Query("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpsertUser handles POST /users.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	res, err := h.UserService.Upsert(c.Request.Context(), u)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.UserService.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /users/admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	status, err := h.UserService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// PromoteToAdmin handles PUT /users/admin/:id.
func (h *UserHandler) PromoteToAdmin(c *gin.Context) {
	id := c.Param("id")
	res, err := h.UserService.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("promotion failed", zap.String("userId", id), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
