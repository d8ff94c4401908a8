package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/session"
)

const (
	ctxUser   = "sgsb.user"
	ctxClaims = "sgsb.claims"

	msgUnauthenticated = "Não autenticado"
	msgInactive        = "Usuário inativo"
	msgForbidden       = "Acesso negado. Apenas administradores e gestores podem realizar esta ação."

	roleAdmin   = "admin"
	roleDefault = "visualizador"
)

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if user := currentUser(c); user != nil {
			fields = append(fields, zap.String("user_id", user.ID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// corsMiddleware reflects the caller's origin so the session cookie is sent.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		} else {
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}

// sessionToken reads the session cookie, then the bearer header.
func (s *Server) sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(s.cfg.SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// authenticate resolves the session user when a valid token is present.
// Requests without one continue anonymously; requireUser rejects them later.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := s.sessionToken(c)
		if raw == "" {
			c.Next()
			return
		}
		claims, err := s.tokens.Parse(raw)
		if err != nil {
			s.logger.Debug("session token rejected", zap.Error(err))
			c.Next()
			return
		}

		ctx, cancel := s.requestContext(c)
		defer cancel()

		if s.revoker != nil {
			revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
			if err != nil {
				s.logger.Warn("session revocation check failed", zap.Error(err))
			} else if revoked {
				c.Next()
				return
			}
		}

		role := roleDefault
		if s.cfg.OwnerOpenID != "" && claims.Subject == s.cfg.OwnerOpenID {
			role = roleAdmin
		}
		if err := s.store.UpsertUser(ctx, claims.Identity(), role); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		user, err := s.store.GetUser(ctx, claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user not persisted"})
			return
		}
		if !user.Ativo {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgInactive})
			return
		}

		c.Set(ctxUser, user)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthenticated})
			return
		}
		c.Next()
	}
}

// requireManager admits admins and gestores.
func requireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentUser(c).IsManager() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgForbidden})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func currentClaims(c *gin.Context) *session.Claims {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*session.Claims)
	return claims
}
