package http

// registerV1Routes sets up the /api/v1 surface.
// auth/me and auth/logout accept anonymous callers; everything else needs a
// session, and the manager group additionally needs role admin or gestor.
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header
	v1.Use(s.authenticate())

	auth := v1.Group("/auth")
	{
		auth.GET("/me", s.handleMe)
		auth.POST("/logout", s.handleLogout)
	}

	api := v1.Group("")
	api.Use(requireUser())

	admin := api.Group("")
	admin.Use(requireManager())

	// Users
	admin.GET("/users", s.handleListUsers)
	admin.PUT("/users/:userId/role", s.handleUpdateUserRole)
	admin.POST("/users/:userId/toggle", s.handleToggleUserStatus)

	// Dams and structures
	api.GET("/barragens", s.handleListBarragens)
	api.GET("/barragens/:id", s.handleGetBarragem)
	api.GET("/barragens/:id/dashboard", s.handleDashboard)
	api.GET("/barragens/:id/estruturas", s.handleListEstruturas)
	admin.POST("/barragens", s.handleCreateBarragem)
	admin.PUT("/barragens/:id", s.handleUpdateBarragem)
	admin.DELETE("/barragens/:id", s.handleDeleteBarragem)
	admin.POST("/estruturas", s.handleCreateEstrutura)
	admin.PUT("/estruturas/:id", s.handleUpdateEstrutura)
	admin.DELETE("/estruturas/:id", s.handleDeleteEstrutura)

	// Instruments and readings
	api.GET("/instrumentos", s.handleListInstrumentos)
	api.GET("/instrumentos/:id", s.handleGetInstrumento)
	api.GET("/codigos/instrumentos/:codigo", s.handleGetInstrumentoByCodigo)
	api.GET("/instrumentos/:id/leituras", s.handleListLeituras)
	api.POST("/instrumentos/:id/leituras", s.handleCreateInstrumentoLeitura)
	api.GET("/instrumentos/:id/leituras/ultima", s.handleUltimaLeitura)
	api.GET("/instrumentos/:id/leituras/export", s.handleExportLeituras)
	admin.POST("/instrumentos", s.handleCreateInstrumento)
	admin.PUT("/instrumentos/:id", s.handleUpdateInstrumento)
	admin.DELETE("/instrumentos/:id", s.handleDeleteInstrumento)
	api.POST("/leituras", s.handleCreateLeitura)
	api.GET("/leituras/inconsistencias", s.handleListInconsistencias)

	// Checklists
	api.GET("/checklists", s.handleListChecklists)
	api.POST("/checklists", s.handleCreateChecklist)
	api.GET("/checklists/:id", s.handleGetChecklist)
	api.PUT("/checklists/:id", s.handleUpdateChecklist)
	admin.DELETE("/checklists/:id", s.handleDeleteChecklist)
	api.GET("/perguntas", s.handleListPerguntas)
	admin.POST("/perguntas", s.handleCreatePergunta)
	api.POST("/respostas", s.handleCreateResposta)

	// Incidents and hydrometry
	api.GET("/ocorrencias", s.handleListOcorrencias)
	api.POST("/ocorrencias", s.handleCreateOcorrencia)
	api.GET("/ocorrencias/:id", s.handleGetOcorrencia)
	api.PUT("/ocorrencias/:id", s.handleUpdateOcorrencia)
	api.DELETE("/ocorrencias/:id", s.handleDeleteOcorrencia)
	api.GET("/hidrometria", s.handleListHidrometria)
	api.POST("/hidrometria", s.handleCreateHidrometria)
	api.GET("/hidrometria/ultima", s.handleUltimaHidrometria)
	api.PUT("/hidrometria/:id", s.handleUpdateHidrometria)
	api.DELETE("/hidrometria/:id", s.handleDeleteHidrometria)

	// Documents, maintenance and alerts
	api.GET("/documentos", s.handleListDocumentos)
	api.POST("/documentos", s.handleCreateDocumento)
	api.POST("/documentos/upload", s.handleUploadDocumento)
	api.GET("/documentos/:id", s.handleGetDocumento)
	api.PUT("/documentos/:id", s.handleUpdateDocumento)
	admin.DELETE("/documentos/:id", s.handleDeleteDocumento)
	api.GET("/manutencoes", s.handleListManutencoes)
	admin.POST("/manutencoes", s.handleCreateManutencao)
	admin.PUT("/manutencoes/:id", s.handleUpdateManutencao)
	admin.DELETE("/manutencoes/:id", s.handleDeleteManutencao)
	api.GET("/alertas", s.handleListAlertas)
	api.POST("/alertas/:id/lido", s.handleMarkAlertaLido)
}
