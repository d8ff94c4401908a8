package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// GET /api/v1/checklists?barragemId=&limit=
func (s *Server) handleListChecklists(c *gin.Context) {
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

	checklists, err := s.store.ListChecklists(ctx, barragemID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, checklists)
}

// handleGetChecklist returns the checklist together with its answers.
// GET /api/v1/checklists/:id
func (s *Server) handleGetChecklist(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	detalhe, err := s.store.GetChecklistDetalhe(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if detalhe.Checklist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checklist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detalhe})
}

// POST /api/v1/checklists
func (s *Server) handleCreateChecklist(c *gin.Context) {
	var in models.ChecklistInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateChecklist(ctx, in, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "checklist", &id, in.Tipo)
	respondCreated(c, id)
}

// PUT /api/v1/checklists/:id
func (s *Server) handleUpdateChecklist(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.ChecklistPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateChecklist(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "checklist", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/checklists/:id
func (s *Server) handleDeleteChecklist(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteChecklist(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "checklist", &id, "")
	respondSuccess(c)
}

// GET /api/v1/perguntas?barragemId=
func (s *Server) handleListPerguntas(c *gin.Context) {
	barragemID, ok := queryID(c, "barragemId")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	perguntas, err := s.store.ListPerguntas(ctx, barragemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, perguntas)
}

// POST /api/v1/perguntas
func (s *Server) handleCreatePergunta(c *gin.Context) {
	var in models.PerguntaInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreatePergunta(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "pergunta", &id, in.Categoria)
	respondCreated(c, id)
}

// POST /api/v1/respostas
func (s *Server) handleCreateResposta(c *gin.Context) {
	var in models.RespostaInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateResposta(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "resposta", &id, in.Resposta)
	respondCreated(c, id)
}
