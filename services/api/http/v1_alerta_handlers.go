package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/alertas?barragemId=&lido=
func (s *Server) handleListAlertas(c *gin.Context) {
	barragemID, ok := requiredQueryID(c, "barragemId")
	if !ok {
		return
	}
	var lido *bool
	if raw := c.Query("lido"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lido parameter"})
			return
		}
		lido = &val
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	alertas, err := s.store.ListAlertas(ctx, barragemID, lido)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, alertas)
}

// POST /api/v1/alertas/:id/lido
func (s *Server) handleMarkAlertaLido(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.MarkAlertaLido(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "markRead", "alerta", &id, "")
	respondSuccess(c)
}
