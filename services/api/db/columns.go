package db

import (
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Column lists match the db tags of the model structs, which pgx uses to
// scan rows by name.

const (
	barragemColumns = `
    id, codigo, nome, rio, bacia, municipio, estado, latitude, longitude, tipo, finalidade, altura,
    comprimento, volume_reservatorio, area_reservatorio, nivel_maximo_normal,
    nivel_maximo_maximorum, nivel_minimo, proprietario, operador, ano_inicio_construcao,
    ano_inicio_operacao, categoria_risco, dano_potencial_associado, status, observacoes, created_at,
    updated_at`
	estruturaColumns = `
    id, barragem_id, codigo, nome, tipo, descricao, localizacao, coordenadas, ativo, created_at,
    updated_at`
	instrumentoColumns = `
    id, barragem_id, estrutura_id, codigo, tipo, localizacao, estaca, cota, coordenadas,
    data_instalacao, fabricante, modelo, numero_serie, nivel_normal, nivel_alerta, nivel_critico,
    formula, unidade_medida, limite_inferior, limite_superior, frequencia_leitura, responsavel,
    qr_code, codigo_barras, status, observacoes, ativo, created_at, updated_at`
	leituraColumns = `
    id, instrumento_id, usuario_id, data_hora, valor, nivel_montante, inconsistencia,
    tipo_inconsistencia, observacoes, origem, latitude, longitude, created_at`
	checklistColumns = `
    id, barragem_id, usuario_id, data, tipo, inspetor, clima_condicoes, status, consultor_id,
    data_avaliacao, comentarios_consultor, observacoes_gerais, latitude, longitude, created_at,
    updated_at`
	perguntaColumns = `
    id, barragem_id, categoria, pergunta, ordem, ativo, created_at`
	respostaColumns = `
    id, checklist_id, pergunta_id, resposta, situacao_anterior, comentario, fotos, created_at`
	ocorrenciaColumns = `
    id, barragem_id, estrutura_id, usuario_registro_id, data_hora_registro, estrutura, relato,
    fotos, titulo, descricao, data_ocorrencia, local_ocorrencia, acao_imediata, responsavel,
    categoria, severidade, tipo, status, usuario_avaliacao_id, data_avaliacao,
    comentarios_avaliacao, data_conclusao, comentarios_conclusao, latitude, longitude, created_at,
    updated_at`
	hidrometriaColumns = `
    id, barragem_id, usuario_id, data_leitura, nivel_montante, nivel_jusante, nivel_reservatorio,
    vazao, vazao_afluente, vazao_defluente, vazao_vertedouro, volume_reservatorio,
    volume_armazenado, observacoes, created_at, updated_at`
	documentoColumns = `
    id, barragem_id, usuario_id, tipo, categoria, titulo, descricao, arquivo_url, arquivo_nome,
    arquivo_tamanho, arquivo_tipo, versao, documento_pai_id, data_validade, tags, created_at,
    updated_at`
	manutencaoColumns = `
    id, barragem_id, estrutura_id, ocorrencia_id, tipo, titulo, descricao, data_programada,
    responsavel, data_inicio, data_conclusao, status, custo_estimado, custo_real, observacoes,
    created_at, updated_at`
	alertaColumns = `
    id, barragem_id, tipo, severidade, titulo, mensagem, instrumento_id, leitura_id, ocorrencia_id,
    destinatarios, lido, data_leitura, acao_tomada, data_acao, created_at`
	userColumns = `
    id, name, email, login_method, role, ativo, created_at, updated_at, last_signed_in`
)

const (
	leituraColumnsL = `
    l.id, l.instrumento_id, l.usuario_id, l.data_hora, l.valor, l.nivel_montante, l.inconsistencia,
    l.tipo_inconsistencia, l.observacoes, l.origem, l.latitude, l.longitude, l.created_at`
	respostaColumnsR = `
    r.id, r.checklist_id, r.pergunta_id, r.resposta, r.situacao_anterior, r.comentario, r.fotos,
    r.created_at`
)

var barragemPatchColumns = []patch.Column[models.BarragemPatch]{
	{Name: "codigo", Get: func(p *models.BarragemPatch) patch.State { return p.Codigo.State() }},
	{Name: "nome", Get: func(p *models.BarragemPatch) patch.State { return p.Nome.State() }},
	{Name: "rio", Get: func(p *models.BarragemPatch) patch.State { return p.Rio.State() }},
	{Name: "bacia", Get: func(p *models.BarragemPatch) patch.State { return p.Bacia.State() }},
	{Name: "municipio", Get: func(p *models.BarragemPatch) patch.State { return p.Municipio.State() }},
	{Name: "estado", Get: func(p *models.BarragemPatch) patch.State { return p.Estado.State() }},
	{Name: "latitude", Get: func(p *models.BarragemPatch) patch.State { return p.Latitude.State() }},
	{Name: "longitude", Get: func(p *models.BarragemPatch) patch.State { return p.Longitude.State() }},
	{Name: "tipo", Get: func(p *models.BarragemPatch) patch.State { return p.Tipo.State() }},
	{Name: "finalidade", Get: func(p *models.BarragemPatch) patch.State { return p.Finalidade.State() }},
	{Name: "altura", Get: func(p *models.BarragemPatch) patch.State { return p.Altura.State() }},
	{Name: "comprimento", Get: func(p *models.BarragemPatch) patch.State { return p.Comprimento.State() }},
	{Name: "volume_reservatorio", Get: func(p *models.BarragemPatch) patch.State { return p.VolumeReservatorio.State() }},
	{Name: "area_reservatorio", Get: func(p *models.BarragemPatch) patch.State { return p.AreaReservatorio.State() }},
	{Name: "nivel_maximo_normal", Get: func(p *models.BarragemPatch) patch.State { return p.NivelMaximoNormal.State() }},
	{Name: "nivel_maximo_maximorum", Get: func(p *models.BarragemPatch) patch.State { return p.NivelMaximoMaximorum.State() }},
	{Name: "nivel_minimo", Get: func(p *models.BarragemPatch) patch.State { return p.NivelMinimo.State() }},
	{Name: "proprietario", Get: func(p *models.BarragemPatch) patch.State { return p.Proprietario.State() }},
	{Name: "operador", Get: func(p *models.BarragemPatch) patch.State { return p.Operador.State() }},
	{Name: "ano_inicio_construcao", Get: func(p *models.BarragemPatch) patch.State { return p.AnoInicioConstrucao.State() }},
	{Name: "ano_inicio_operacao", Get: func(p *models.BarragemPatch) patch.State { return p.AnoInicioOperacao.State() }},
	{Name: "categoria_risco", Get: func(p *models.BarragemPatch) patch.State { return p.CategoriaRisco.State() }},
	{Name: "dano_potencial_associado", Get: func(p *models.BarragemPatch) patch.State { return p.DanoPotencialAssociado.State() }},
	{Name: "status", Get: func(p *models.BarragemPatch) patch.State { return p.Status.State() }},
	{Name: "observacoes", Get: func(p *models.BarragemPatch) patch.State { return p.Observacoes.State() }},
}

var estruturaPatchColumns = []patch.Column[models.EstruturaPatch]{
	{Name: "codigo", Get: func(p *models.EstruturaPatch) patch.State { return p.Codigo.State() }},
	{Name: "nome", Get: func(p *models.EstruturaPatch) patch.State { return p.Nome.State() }},
	{Name: "tipo", Get: func(p *models.EstruturaPatch) patch.State { return p.Tipo.State() }},
	{Name: "descricao", Get: func(p *models.EstruturaPatch) patch.State { return p.Descricao.State() }},
	{Name: "localizacao", Get: func(p *models.EstruturaPatch) patch.State { return p.Localizacao.State() }},
	{Name: "coordenadas", Get: func(p *models.EstruturaPatch) patch.State { return p.Coordenadas.State() }},
	{Name: "ativo", Get: func(p *models.EstruturaPatch) patch.State { return p.Ativo.State() }},
}

var instrumentoPatchColumns = []patch.Column[models.InstrumentoPatch]{
	{Name: "codigo", Get: func(p *models.InstrumentoPatch) patch.State { return p.Codigo.State() }},
	{Name: "tipo", Get: func(p *models.InstrumentoPatch) patch.State { return p.Tipo.State() }},
	{Name: "localizacao", Get: func(p *models.InstrumentoPatch) patch.State { return p.Localizacao.State() }},
	{Name: "estaca", Get: func(p *models.InstrumentoPatch) patch.State { return p.Estaca.State() }},
	{Name: "cota", Get: func(p *models.InstrumentoPatch) patch.State { return p.Cota.State() }},
	{Name: "coordenadas", Get: func(p *models.InstrumentoPatch) patch.State { return p.Coordenadas.State() }},
	{Name: "data_instalacao", Get: func(p *models.InstrumentoPatch) patch.State { return p.DataInstalacao.State() }, Transform: patch.ToDate},
	{Name: "fabricante", Get: func(p *models.InstrumentoPatch) patch.State { return p.Fabricante.State() }},
	{Name: "modelo", Get: func(p *models.InstrumentoPatch) patch.State { return p.Modelo.State() }},
	{Name: "numero_serie", Get: func(p *models.InstrumentoPatch) patch.State { return p.NumeroSerie.State() }},
	{Name: "nivel_normal", Get: func(p *models.InstrumentoPatch) patch.State { return p.NivelNormal.State() }},
	{Name: "nivel_alerta", Get: func(p *models.InstrumentoPatch) patch.State { return p.NivelAlerta.State() }},
	{Name: "nivel_critico", Get: func(p *models.InstrumentoPatch) patch.State { return p.NivelCritico.State() }},
	{Name: "formula", Get: func(p *models.InstrumentoPatch) patch.State { return p.Formula.State() }},
	{Name: "unidade_medida", Get: func(p *models.InstrumentoPatch) patch.State { return p.UnidadeMedida.State() }},
	{Name: "limite_inferior", Get: func(p *models.InstrumentoPatch) patch.State { return p.LimiteInferior.State() }},
	{Name: "limite_superior", Get: func(p *models.InstrumentoPatch) patch.State { return p.LimiteSuperior.State() }},
	{Name: "frequencia_leitura", Get: func(p *models.InstrumentoPatch) patch.State { return p.FrequenciaLeitura.State() }},
	{Name: "responsavel", Get: func(p *models.InstrumentoPatch) patch.State { return p.Responsavel.State() }},
	{Name: "qr_code", Get: func(p *models.InstrumentoPatch) patch.State { return p.QRCode.State() }},
	{Name: "codigo_barras", Get: func(p *models.InstrumentoPatch) patch.State { return p.CodigoBarras.State() }},
	{Name: "status", Get: func(p *models.InstrumentoPatch) patch.State { return p.Status.State() }},
	{Name: "observacoes", Get: func(p *models.InstrumentoPatch) patch.State { return p.Observacoes.State() }},
	{Name: "ativo", Get: func(p *models.InstrumentoPatch) patch.State { return p.Ativo.State() }},
}

var checklistPatchColumns = []patch.Column[models.ChecklistPatch]{
	{Name: "tipo", Get: func(p *models.ChecklistPatch) patch.State { return p.Tipo.State() }},
	{Name: "inspetor", Get: func(p *models.ChecklistPatch) patch.State { return p.Inspetor.State() }},
	{Name: "clima_condicoes", Get: func(p *models.ChecklistPatch) patch.State { return p.ClimaCondicoes.State() }},
	{Name: "status", Get: func(p *models.ChecklistPatch) patch.State { return p.Status.State() }},
	{Name: "consultor_id", Get: func(p *models.ChecklistPatch) patch.State { return p.ConsultorID.State() }},
	{Name: "data_avaliacao", Get: func(p *models.ChecklistPatch) patch.State { return p.DataAvaliacao.State() }, Transform: patch.ToDate},
	{Name: "comentarios_consultor", Get: func(p *models.ChecklistPatch) patch.State { return p.ComentariosConsultor.State() }},
	{Name: "observacoes_gerais", Get: func(p *models.ChecklistPatch) patch.State { return p.ObservacoesGerais.State() }},
}

var ocorrenciaPatchColumns = []patch.Column[models.OcorrenciaPatch]{
	{Name: "status", Get: func(p *models.OcorrenciaPatch) patch.State { return p.Status.State() }},
	{Name: "severidade", Get: func(p *models.OcorrenciaPatch) patch.State { return p.Severidade.State() }},
	{Name: "tipo", Get: func(p *models.OcorrenciaPatch) patch.State { return p.Tipo.State() }},
	{Name: "usuario_avaliacao_id", Get: func(p *models.OcorrenciaPatch) patch.State { return p.UsuarioAvaliacaoID.State() }},
	{Name: "data_avaliacao", Get: func(p *models.OcorrenciaPatch) patch.State { return p.DataAvaliacao.State() }, Transform: patch.ToDate},
	{Name: "comentarios_avaliacao", Get: func(p *models.OcorrenciaPatch) patch.State { return p.ComentariosAvaliacao.State() }},
	{Name: "data_conclusao", Get: func(p *models.OcorrenciaPatch) patch.State { return p.DataConclusao.State() }, Transform: patch.ToDate},
	{Name: "comentarios_conclusao", Get: func(p *models.OcorrenciaPatch) patch.State { return p.ComentariosConclusao.State() }},
}

var hidrometriaPatchColumns = []patch.Column[models.HidrometriaPatch]{
	{Name: "data_leitura", Get: func(p *models.HidrometriaPatch) patch.State { return p.DataLeitura.State() }, Transform: patch.ToDate},
	{Name: "nivel_montante", Get: func(p *models.HidrometriaPatch) patch.State { return p.NivelMontante.State() }},
	{Name: "nivel_jusante", Get: func(p *models.HidrometriaPatch) patch.State { return p.NivelJusante.State() }},
	{Name: "nivel_reservatorio", Get: func(p *models.HidrometriaPatch) patch.State { return p.NivelReservatorio.State() }},
	{Name: "vazao_afluente", Get: func(p *models.HidrometriaPatch) patch.State { return p.VazaoAfluente.State() }},
	{Name: "vazao_defluente", Get: func(p *models.HidrometriaPatch) patch.State { return p.VazaoDefluente.State() }},
	{Name: "vazao_vertedouro", Get: func(p *models.HidrometriaPatch) patch.State { return p.VazaoVertedouro.State() }},
	{Name: "volume_armazenado", Get: func(p *models.HidrometriaPatch) patch.State { return p.VolumeArmazenado.State() }},
	{Name: "observacoes", Get: func(p *models.HidrometriaPatch) patch.State { return p.Observacoes.State() }},
}

var documentoPatchColumns = []patch.Column[models.DocumentoPatch]{
	{Name: "tipo", Get: func(p *models.DocumentoPatch) patch.State { return p.Tipo.State() }},
	{Name: "categoria", Get: func(p *models.DocumentoPatch) patch.State { return p.Categoria.State() }},
	{Name: "titulo", Get: func(p *models.DocumentoPatch) patch.State { return p.Titulo.State() }},
	{Name: "descricao", Get: func(p *models.DocumentoPatch) patch.State { return p.Descricao.State() }},
	{Name: "versao", Get: func(p *models.DocumentoPatch) patch.State { return p.Versao.State() }},
	{Name: "data_validade", Get: func(p *models.DocumentoPatch) patch.State { return p.DataValidade.State() }, Transform: patch.ToDate},
	{Name: "tags", Get: func(p *models.DocumentoPatch) patch.State { return p.Tags.State() }},
}

var manutencaoPatchColumns = []patch.Column[models.ManutencaoPatch]{
	{Name: "tipo", Get: func(p *models.ManutencaoPatch) patch.State { return p.Tipo.State() }},
	{Name: "titulo", Get: func(p *models.ManutencaoPatch) patch.State { return p.Titulo.State() }},
	{Name: "descricao", Get: func(p *models.ManutencaoPatch) patch.State { return p.Descricao.State() }},
	{Name: "data_programada", Get: func(p *models.ManutencaoPatch) patch.State { return p.DataProgramada.State() }, Transform: patch.ToDate},
	{Name: "data_inicio", Get: func(p *models.ManutencaoPatch) patch.State { return p.DataInicio.State() }, Transform: patch.ToDate},
	{Name: "data_conclusao", Get: func(p *models.ManutencaoPatch) patch.State { return p.DataConclusao.State() }, Transform: patch.ToDate},
	{Name: "status", Get: func(p *models.ManutencaoPatch) patch.State { return p.Status.State() }},
	{Name: "responsavel", Get: func(p *models.ManutencaoPatch) patch.State { return p.Responsavel.State() }},
	{Name: "custo_estimado", Get: func(p *models.ManutencaoPatch) patch.State { return p.CustoEstimado.State() }},
	{Name: "custo_real", Get: func(p *models.ManutencaoPatch) patch.State { return p.CustoReal.State() }},
	{Name: "observacoes", Get: func(p *models.ManutencaoPatch) patch.State { return p.Observacoes.State() }},
}
