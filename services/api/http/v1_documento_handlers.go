package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/sgsb-barragens/services/api/enum"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/storage"
)

// GET /api/v1/documentos?barragemId=&tipo=
func (s *Server) handleListDocumentos(c *gin.Context) {
	barragemID, ok := requiredQueryID(c, "barragemId")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	documentos, err := s.store.ListDocumentos(ctx, barragemID, queryString(c, "tipo"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, documentos)
}

// GET /api/v1/documentos/:id
func (s *Server) handleGetDocumento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	documento, err := s.store.GetDocumento(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if documento == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "documento not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": documento})
}

// POST /api/v1/documentos
func (s *Server) handleCreateDocumento(c *gin.Context) {
	var in models.DocumentoInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateDocumento(ctx, in, currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "documento", &id, in.Titulo)
	respondCreated(c, id)
}

// handleUploadDocumento stores a base64 file and returns where it lives.
// The document row is created separately with the returned url.
// POST /api/v1/documentos/upload
func (s *Server) handleUploadDocumento(c *gin.Context) {
	var in models.UploadInput
	if !bindBody(c, &in) {
		return
	}
	if s.blobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": storage.ErrNotConfigured.Error()})
		return
	}
	data, err := storage.DecodeUpload(in.FileData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	obj, err := s.blobs.Put(ctx, storage.NewKey(in.FileName, s.now()), data, in.ContentType)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	s.audit(c, "upload", "documento", nil, obj.Key)
	c.JSON(http.StatusOK, gin.H{"url": obj.URL, "key": obj.Key})
}

// PUT /api/v1/documentos/:id
func (s *Server) handleUpdateDocumento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.DocumentoPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateDocumento(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "documento", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/documentos/:id
func (s *Server) handleDeleteDocumento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteDocumento(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "documento", &id, "")
	respondSuccess(c)
}

// GET /api/v1/manutencoes?barragemId=&status=
func (s *Server) handleListManutencoes(c *gin.Context) {
	barragemID, ok := requiredQueryID(c, "barragemId")
	if !ok {
		return
	}
	status := queryString(c, "status")
	if status != nil {
		canon, err := enum.ManutencaoStatus.Canonical(*status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "status"})
			return
		}
		status = &canon
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	manutencoes, err := s.store.ListManutencoes(ctx, barragemID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, manutencoes)
}

// POST /api/v1/manutencoes
func (s *Server) handleCreateManutencao(c *gin.Context) {
	var in models.ManutencaoInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateManutencao(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "manutencao", &id, in.Titulo)
	respondCreated(c, id)
}

// PUT /api/v1/manutencoes/:id
func (s *Server) handleUpdateManutencao(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.ManutencaoPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateManutencao(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "manutencao", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/manutencoes/:id
func (s *Server) handleDeleteManutencao(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteManutencao(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "manutencao", &id, "")
	respondSuccess(c)
}
