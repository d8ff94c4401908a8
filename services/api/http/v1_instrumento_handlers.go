package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/sgsb-barragens/services/api/db"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// GET /api/v1/instrumentos?barragemId=
func (s *Server) handleListInstrumentos(c *gin.Context) {
	barragemID, ok := queryID(c, "barragemId")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	instrumentos, err := s.store.ListInstrumentos(ctx, barragemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, instrumentos)
}

// GET /api/v1/instrumentos/:id
func (s *Server) handleGetInstrumento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	instrumento, err := s.store.GetInstrumento(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if instrumento == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "instrumento not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": instrumento})
}

// handleGetInstrumentoByCodigo resolves a scanned QR or barcode.
// GET /api/v1/codigos/instrumentos/:codigo
func (s *Server) handleGetInstrumentoByCodigo(c *gin.Context) {
	codigo := c.Param("codigo")

	ctx, cancel := s.requestContext(c)
	defer cancel()

	instrumento, err := s.store.GetInstrumentoByCodigo(ctx, codigo)
	if err != nil {
		respondError(c, err)
		return
	}
	if instrumento == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "instrumento not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": instrumento})
}

// POST /api/v1/instrumentos
func (s *Server) handleCreateInstrumento(c *gin.Context) {
	var in models.InstrumentoInput
	if !bindBody(c, &in) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	id, err := s.store.CreateInstrumento(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "instrumento", &id, in.Codigo)
	respondCreated(c, id)
}

// PUT /api/v1/instrumentos/:id
func (s *Server) handleUpdateInstrumento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var p models.InstrumentoPatch
	if !bindBody(c, &p) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.UpdateInstrumento(ctx, id, &p); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "update", "instrumento", &id, "")
	respondSuccess(c)
}

// DELETE /api/v1/instrumentos/:id
func (s *Server) handleDeleteInstrumento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.store.DeleteInstrumento(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "delete", "instrumento", &id, "")
	respondSuccess(c)
}

// GET /api/v1/instrumentos/:id/leituras?limit=
func (s *Server) handleListLeituras(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	leituras, err := s.store.ListLeituras(ctx, id, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, leituras)
}

// GET /api/v1/instrumentos/:id/leituras/ultima
func (s *Server) handleUltimaLeitura(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	leitura, err := s.store.UltimaLeitura(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leitura})
}

// POST /api/v1/leituras
func (s *Server) handleCreateLeitura(c *gin.Context) {
	var in models.LeituraInput
	if !bindBody(c, &in) {
		return
	}
	s.createLeitura(c, in)
}

// instrumentoLeituraInput is LeituraInput without the instrument, which comes from the path.
type instrumentoLeituraInput struct {
	DataHora      string  `json:"dataHora" binding:"required"`
	Valor         string  `json:"valor" binding:"required"`
	NivelMontante *string `json:"nivelMontante"`
	Observacoes   *string `json:"observacoes"`
	Origem        *string `json:"origem"`
	Latitude      *string `json:"latitude"`
	Longitude     *string `json:"longitude"`
}

// POST /api/v1/instrumentos/:id/leituras
func (s *Server) handleCreateInstrumentoLeitura(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var body instrumentoLeituraInput
	if !bindBody(c, &body) {
		return
	}
	in := models.LeituraInput{
		InstrumentoID: id,
		DataHora:      body.DataHora,
		Valor:         body.Valor,
		NivelMontante: body.NivelMontante,
		Observacoes:   body.Observacoes,
		Origem:        body.Origem,
		Latitude:      body.Latitude,
		Longitude:     body.Longitude,
	}
	if !normalizeInput(c, &in) {
		return
	}
	s.createLeitura(c, in)
}

func (s *Server) createLeitura(c *gin.Context, in models.LeituraInput) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	user := currentUser(c)
	result, err := s.store.CreateLeitura(ctx, in, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	s.audit(c, "create", "leitura", &result.ID, fmt.Sprintf("instrumento %d: %s", in.InstrumentoID, in.Valor))
	c.JSON(http.StatusOK, leituraResponse(result))
}

func leituraResponse(r db.LeituraResult) gin.H {
	out := gin.H{
		"id":             r.ID,
		"success":        true,
		"inconsistencia": r.Inconsistencia,
	}
	if r.TipoInconsistencia != nil {
		out["tipoInconsistencia"] = *r.TipoInconsistencia
	}
	if r.AlertaID != nil {
		out["alertaId"] = *r.AlertaID
	}
	return out
}

// GET /api/v1/leituras/inconsistencias?barragemId=&limit=
func (s *Server) handleListInconsistencias(c *gin.Context) {
	barragemID, ok := queryID(c, "barragemId")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	items, err := s.store.ListLeiturasInconsistentes(ctx, barragemID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items)
}

// handleExportLeituras streams the instrument's readings as a workbook.
// GET /api/v1/instrumentos/:id/leituras/export?limit=
func (s *Server) handleExportLeituras(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	if limit == 0 {
		limit = exportLimit
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	instrumento, err := s.store.GetInstrumento(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if instrumento == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "instrumento not found"})
		return
	}
	leituras, err := s.store.ListLeituras(ctx, id, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := leiturasWorkbook(instrumento, leituras)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leituras-%s.xlsx", safeFileName(instrumento.Codigo)))
	c.Data(http.StatusOK, xlsxContentType, data)
}
