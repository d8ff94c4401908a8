package models

import "time"

// Alerta is raised by inconsistent readings and severe incidents.
type Alerta struct {
	ID            int64      `json:"id" db:"id"`
	BarragemID    int64      `json:"barragemId" db:"barragem_id"`
	Tipo          string     `json:"tipo" db:"tipo"`
	Severidade    string     `json:"severidade" db:"severidade"`
	Titulo        string     `json:"titulo" db:"titulo"`
	Mensagem      string     `json:"mensagem" db:"mensagem"`
	InstrumentoID *int64     `json:"instrumentoId" db:"instrumento_id"`
	LeituraID     *int64     `json:"leituraId" db:"leitura_id"`
	OcorrenciaID  *int64     `json:"ocorrenciaId" db:"ocorrencia_id"`
	Destinatarios *string    `json:"destinatarios" db:"destinatarios"`
	Lido          bool       `json:"lido" db:"lido"`
	DataLeitura   *time.Time `json:"dataLeitura" db:"data_leitura"`
	AcaoTomada    *string    `json:"acaoTomada" db:"acao_tomada"`
	DataAcao      *time.Time `json:"dataAcao" db:"data_acao"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

type Auditoria struct {
	ID         int64     `json:"id" db:"id"`
	UsuarioID  *string   `json:"usuarioId" db:"usuario_id"`
	Acao       string    `json:"acao" db:"acao"`
	Entidade   string    `json:"entidade" db:"entidade"`
	EntidadeID *int64    `json:"entidadeId" db:"entidade_id"`
	Detalhes   *string   `json:"detalhes" db:"detalhes"`
	IP         *string   `json:"ip" db:"ip"`
	UserAgent  *string   `json:"userAgent" db:"user_agent"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// AuditEntry is one audit record to write.
type AuditEntry struct {
	UsuarioID  string
	Acao       string
	Entidade   string
	EntidadeID *int64
	Detalhes   string
	IP         string
	UserAgent  string
}

// Dashboard summarizes the current state of a dam.
type Dashboard struct {
	UltimasInconsistencias []LeituraInconsistente `json:"ultimasInconsistencias"`
	UltimasOcorrencias     []Ocorrencia           `json:"ultimasOcorrencias"`
	UltimosChecklists      []Checklist            `json:"ultimosChecklists"`
	UltimaHidrometria      *Hidrometria           `json:"ultimaHidrometria"`
	AlertasNaoLidos        []Alerta               `json:"alertasNaoLidos"`
	Estatisticas           Estatisticas           `json:"estatisticas"`
}

// Estatisticas are the dashboard counters.
type Estatisticas struct {
	TotalInstrumentos    int64 `json:"totalInstrumentos"`
	OcorrenciasPendentes int64 `json:"ocorrenciasPendentes"`
	AlertasNaoLidos      int   `json:"alertasNaoLidos"`
}
