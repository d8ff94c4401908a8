package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

type normalizer interface {
	Normalize() error
}

// bindBody decodes the JSON body into v and canonicalizes it. On failure it
// writes the 400 response and returns false.
func bindBody(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	n, ok := v.(normalizer)
	if !ok {
		return true
	}
	return normalizeInput(c, n)
}

// normalizeInput writes the 400 response for a rejected payload.
func normalizeInput(c *gin.Context, n normalizer) bool {
	if err := n.Normalize(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive id from the query string.
func queryID(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &id, true
}

// requiredQueryID is queryID for filters the store cannot run without.
func requiredQueryID(c *gin.Context, name string) (int64, bool) {
	id, ok := queryID(c, name)
	if !ok {
		return 0, false
	}
	if id == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return 0, false
	}
	return *id, true
}

func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return limit, true
}

func queryString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func respondList[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": items,
		"meta": gin.H{
			"count": len(items),
		},
	})
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func respondCreated(c *gin.Context, id int64) {
	c.JSON(http.StatusOK, gin.H{"id": id, "success": true})
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// audit records a mutation by the current user.
func (s *Server) audit(c *gin.Context, acao, entidade string, id *int64, detalhes string) {
	entry := models.AuditEntry{
		Acao:       acao,
		Entidade:   entidade,
		EntidadeID: id,
		Detalhes:   detalhes,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
	if user := currentUser(c); user != nil {
		entry.UsuarioID = user.ID
	}
	s.store.RecordAudit(c.Request.Context(), entry)
}
