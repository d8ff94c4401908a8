package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// GET /api/v1/barragens
func (s *Server) handleListBarragens(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	barragens, err := s.store.ListBarragens(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, barragens)
}

// GET /api/v1/barragens/:id
func (s *Server) handleGetBarragem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	barragem, err := s.store.GetBarragem(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if barragem == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barragem not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": barragem})
}

// POST /api/v1/barragens
func (s *Server) handleCreateBarragem(c *gin.Context) {
	var in models.BarragemInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateBarragem(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "barragem", &id, in.Nome)
	respondCreated(c, id)
}

// PUT /api/v1/barragens/:id
func (s *Server) handleUpdateBarragem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.BarragemPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateBarragem(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "barragem", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/barragens/:id
func (s *Server) handleDeleteBarragem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteBarragem(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "barragem", &id, "")
	respondSuccess(c)
}

// handleDashboard returns the overview of one dam.
// GET /api/v1/barragens/:id/dashboard
func (s *Server) handleDashboard(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	dashboard, err := s.store.Dashboard(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}

// GET /api/v1/barragens/:id/estruturas
func (s *Server) handleListEstruturas(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	estruturas, err := s.store.ListEstruturas(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, estruturas)
}

// POST /api/v1/estruturas
func (s *Server) handleCreateEstrutura(c *gin.Context) {
	var in models.EstruturaInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateEstrutura(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "estrutura", &id, in.Nome)
	respondCreated(c, id)
}

// PUT /api/v1/estruturas/:id
func (s *Server) handleUpdateEstrutura(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.EstruturaPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateEstrutura(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "estrutura", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/estruturas/:id
func (s *Server) handleDeleteEstrutura(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteEstrutura(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "estrutura", &id, "")
	respondSuccess(c)
}
