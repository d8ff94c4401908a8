package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// GET /api/v1/ocorrencias?barragemId=&status=
func (s *Server) handleListOcorrencias(c *gin.Context) {
	barragemID, ok := requiredQueryID(c, "barragemId")
	if !ok {
		return
	}
	status := queryString(c, "status")
	if status != nil {
		canon, err := enum.OcorrenciaStatus.Canonical(*status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "status"})
			return
		}
		status = &canon
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	ocorrencias, err := s.store.ListOcorrencias(ctx, barragemID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, ocorrencias)
}

// GET /api/v1/ocorrencias/:id
func (s *Server) handleGetOcorrencia(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	ocorrencia, err := s.store.GetOcorrencia(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if ocorrencia == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ocorrencia not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ocorrencia})
}

// handleCreateOcorrencia registers an incident. Severe ones raise an alert.
// POST /api/v1/ocorrencias
func (s *Server) handleCreateOcorrencia(c *gin.Context) {
	var in models.OcorrenciaInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	result, err := s.store.CreateOcorrencia(ctx, in, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "ocorrencia", &result.ID, in.Estrutura)

	out := gin.H{"id": result.ID, "success": true}
	if result.AlertaID != nil {
		out["alertaId"] = *result.AlertaID
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/v1/ocorrencias/:id
func (s *Server) handleUpdateOcorrencia(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.OcorrenciaPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateOcorrencia(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "ocorrencia", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/ocorrencias/:id
func (s *Server) handleDeleteOcorrencia(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteOcorrencia(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "ocorrencia", &id, "")
	respondSuccess(c)
}

// GET /api/v1/hidrometria?barragemId=&limit=
func (s *Server) handleListHidrometria(c *gin.Context) {
	barragemID, ok := requiredQueryID(c, "barragemId")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	items, err := s.store.ListHidrometria(ctx, barragemID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items)
}

// GET /api/v1/hidrometria/ultima?barragemId=
func (s *Server) handleUltimaHidrometria(c *gin.Context) {
	barragemID, ok := requiredQueryID(c, "barragemId")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	item, err := s.store.UltimaHidrometria(ctx, barragemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

// POST /api/v1/hidrometria
func (s *Server) handleCreateHidrometria(c *gin.Context) {
	var in models.HidrometriaInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateHidrometria(ctx, in, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "hidrometria", &id, in.DataLeitura)
	respondCreated(c, id)
}

// PUT /api/v1/hidrometria/:id
func (s *Server) handleUpdateHidrometria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.HidrometriaPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateHidrometria(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "hidrometria", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/hidrometria/:id
func (s *Server) handleDeleteHidrometria(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteHidrometria(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "hidrometria", &id, "")
	respondSuccess(c)
}
