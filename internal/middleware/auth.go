package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NovaMenteServices/clinic-manager/internal/domain/account"
	"github.com/NovaMenteServices/clinic-manager/internal/models"
	"github.com/NovaMenteServices/clinic-manager/internal/token"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClaims   = "claims"
)

// Authenticate exige um header "Authorization: Bearer <token>" e valida
// assinatura e expiração. Não consulta o banco: a checagem de conta ativa
// é um passo separado (RequireActive), para que um token válido de uma
// conta desativada ainda falhe lá.
func Authenticate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "missing_authorization_header", "message": "Token não fornecido."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_authorization_header", "message": "Header de autorização inválido."})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token", "message": "Token inválido."})
			return
		}

		userID, err := claims.AccountID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error_code": "invalid_token", "message": "Token inválido."})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireActive busca a conta referida pelo token e barra contas
// removidas ou desativadas. Roda depois de Authenticate.
func RequireActive(accounts account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uint)

		user, err := accounts.GetByID(c.Request.Context(), userID)
		if err != nil || !user.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error_code": "user_deactivated", "message": "Usuário desativado. Entre em contato com o administrador."})
			return
		}

		c.Next()
	}
}

// RequireAdmin barra contas sem papel de administrador. A consulta é
// independente: o papel vem do banco, não do token.
func RequireAdmin(accounts account.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uint)

		user, err := accounts.GetByID(c.Request.Context(), userID)
		if err != nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error_code": "admin_only", "message": "Acesso negado. Apenas administradores podem acessar este recurso."})
			return
		}

		c.Next()
	}
}
