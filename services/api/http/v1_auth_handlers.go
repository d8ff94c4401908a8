package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
)

// handleMe returns the session user, or null for anonymous callers.
// GET /api/v1/auth/me
func (s *Server) handleMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// handleLogout clears the cookie and revokes the token until it expires.
// POST /api/v1/auth/logout
func (s *Server) handleLogout(c *gin.Context) {
	if claims := currentClaims(c); claims != nil && s.revoker != nil && claims.ExpiresAt != nil {
		ctx, cancel := s.requestContext(c)
		defer cancel()
		if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
			s.logger.Warn("session revoke failed", zap.String("user_id", claims.Subject), zap.Error(err))
		}
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(s.cfg.SessionCookie, "", -1, "/", "", true, true)
	respondSuccess(c)
}

// GET /api/v1/users
func (s *Server) handleListUsers(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, users)
}

type roleInput struct {
	Role string `json:"role" binding:"required"`
}

// PUT /api/v1/users/:userId/role
func (s *Server) handleUpdateUserRole(c *gin.Context) {
	userID := c.Param("userId")
	var in roleInput
	if !bindBody(c, &in) {
		return
	}
	role, err := enum.UserRoles.Canonical(in.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "role"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateUserRole(ctx, userID, role); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "updateRole", "user", nil, userID+": "+role)
	respondSuccess(c)
}

// POST /api/v1/users/:userId/toggle
func (s *Server) handleToggleUserStatus(c *gin.Context) {
	userID := c.Param("userId")

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.ToggleUserStatus(ctx, userID); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "toggleStatus", "user", nil, userID)
	respondSuccess(c)
}
