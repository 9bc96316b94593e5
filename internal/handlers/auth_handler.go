package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NovaMenteServices/clinic-manager/internal/httperr"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	ucauth "github.com/NovaMenteServices/clinic-manager/internal/usecase/auth"
)

type AuthHandler struct {
	login      *ucauth.Login
	checkToken *ucauth.CheckToken
}

func NewAuthHandler(login *ucauth.Login, checkToken *ucauth.CheckToken) *AuthHandler {
	return &AuthHandler{login: login, checkToken: checkToken}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CheckTokenRequest struct {
	Token string `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, signed, err := h.login.Execute(c.Request.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_credentials"):
			httperr.Unauthorized(c, "invalid_credentials", "Email ou senha inválidos.")
		case httperr.IsBusiness(err, "user_deactivated"):
			httperr.Unauthorized(c, "user_deactivated", "Usuário desativado. Entre em contato com o administrador.")
		default:
			writeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": signed,
	})
}

func (h *AuthHandler) CheckToken(c *gin.Context) {
	var req CheckTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "missing_token", "Token não fornecido.")
		return
	}

	user, err := h.checkToken.Execute(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_token"):
			httperr.Unauthorized(c, "missing_token", "Token não fornecido.")
		case httperr.IsBusiness(err, "invalid_token"):
			httperr.Unauthorized(c, "invalid_token", "Token inválido.")
		case httperr.IsBusiness(err, "user_deactivated"):
			httperr.Unauthorized(c, "user_deactivated", "Usuário inválido ou desativado.")
		default:
			writeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}
