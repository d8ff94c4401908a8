package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/02loveslollipop/sgsb-barragens/services/api/config"
	"github.com/02loveslollipop/sgsb-barragens/services/api/db"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
	"github.com/02loveslollipop/sgsb-barragens/services/api/storage"
)

type fakeBlobs struct {
	key         string
	data        []byte
	contentType string
}

func (f *fakeBlobs) Put(_ context.Context, key string, data []byte, contentType string) (storage.Object, error) {
	f.key, f.data, f.contentType = key, data, contentType
	return storage.Object{URL: "https://blob.example/" + key, Key: key}, nil
}

type fakeRevoker struct {
	revoked map[string]time.Time
}

func (f *fakeRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	f.revoked[jti] = until
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

func newTestServer(t *testing.T, revoker Revoker, blobs BlobStore) (*Server, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cfg := config.Config{JWTSecret: "test-secret", OwnerOpenID: "owner", SessionCookie: "app_session_id"}
	return New(cfg, db.NewWithDB(mock, nil), revoker, blobs, nil), mock
}

// rowsOf builds mock rows whose columns are the db tags of T.
func rowsOf[T any](items ...T) *pgxmock.Rows {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	var cols []string
	var idx []int
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("db"); tag != "" {
			cols = append(cols, tag)
			idx = append(idx, i)
		}
	}
	rows := pgxmock.NewRows(cols)
	for _, item := range items {
		v := reflect.ValueOf(item)
		vals := make([]any, 0, len(idx))
		for _, i := range idx {
			vals = append(vals, v.Field(i).Interface())
		}
		rows.AddRow(vals...)
	}
	return rows
}

// anyArgs matches n arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func ptr[T any](v T) *T {
	return &v
}

var (
	gestor       = models.User{ID: "user-gestor", Name: ptr("Gestora"), Role: "gestor", Ativo: true}
	visualizador = models.User{ID: "user-vis", Role: "visualizador", Ativo: true}
)

func tokenFor(t *testing.T, s *Server, openID string) string {
	t.Helper()
	raw, err := s.tokens.Sign(models.UserIdentity{OpenID: openID}, time.Hour)
	require.NoError(t, err)
	return raw
}

// expectSession queues the user upsert and lookup done by the auth middleware.
func expectSession(mock pgxmock.PgxPoolIface, user models.User, role string) {
	mock.ExpectExec("ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs(user.ID, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), role).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM sgsb.users WHERE id").
		WithArgs(user.ID).
		WillReturnRows(rowsOf(user))
}

func expectAudit(mock pgxmock.PgxPoolIface, acao, entidade string) {
	mock.ExpectExec("INSERT INTO sgsb.auditoria").
		WithArgs(pgxmock.AnyArg(), acao, entidade, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func doRequest(s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, nil, nil)
	w := doRequest(s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequiresSession(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)

	w := doRequest(s, http.MethodGet, "/api/v1/barragens", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Não autenticado", decode(t, w)["error"])
	assert.Equal(t, "v1", w.Header().Get("X-API-Version"))

	w = doRequest(s, http.MethodGet, "/api/v1/barragens", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMeAnonymous(t *testing.T) {
	s, _ := newTestServer(t, nil, nil)

	w := doRequest(s, http.MethodGet, "/api/v1/auth/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "data")
	assert.Nil(t, body["data"])
}

func TestMeFromCookie(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, gestor, "visualizador")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "app_session_id", Value: tokenFor(t, s, gestor.ID)})
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "gestor", data["role"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerGetsAdminRole(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	owner := models.User{ID: "owner", Role: "admin", Ativo: true}
	expectSession(mock, owner, "admin")

	w := doRequest(s, http.MethodGet, "/api/v1/auth/me", tokenFor(t, s, "owner"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInactiveUserForbidden(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	inactive := visualizador
	inactive.Ativo = false
	expectSession(mock, inactive, "visualizador")

	w := doRequest(s, http.MethodGet, "/api/v1/barragens", tokenFor(t, s, inactive.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Usuário inativo", decode(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerGuard(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")

	w := doRequest(s, http.MethodPost, "/api/v1/barragens", tokenFor(t, s, visualizador.ID),
		map[string]any{"codigo": "BR-01", "nome": "Serra Azul"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Acesso negado. Apenas administradores e gestores podem realizar esta ação.", decode(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBarragem(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, gestor, "visualizador")
	args := append([]any{"BR-01", "Serra Azul"}, anyArgs(19)...)
	args = append(args, ptr("A"))
	mock.ExpectQuery("INSERT INTO sgsb.barragens").
		WithArgs(append(args, anyArgs(3)...)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	expectAudit(mock, "create", "barragem")

	w := doRequest(s, http.MethodPost, "/api/v1/barragens", tokenFor(t, s, gestor.ID),
		map[string]any{"codigo": "BR-01", "nome": "Serra Azul", "categoriaRisco": "a"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, true, body["success"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBarragemNotFound(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	mock.ExpectQuery("FROM sgsb.barragens WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(rowsOf[models.Barragem]())

	w := doRequest(s, http.MethodGet, "/api/v1/barragens/404", tokenFor(t, s, visualizador.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListBarragens(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	mock.ExpectQuery("FROM sgsb.barragens ORDER BY nome").
		WillReturnRows(rowsOf(
			models.Barragem{ID: 1, Codigo: "BR-01", Nome: "Aurora", Status: "ativa"},
			models.Barragem{ID: 2, Codigo: "BR-02", Nome: "Serra Azul", Status: "ativa"},
		))

	w := doRequest(s, http.MethodGet, "/api/v1/barragens", tokenFor(t, s, visualizador.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 2)
	assert.Equal(t, float64(2), body["meta"].(map[string]any)["count"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChecklistRejectsUnknownTipo(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")

	w := doRequest(s, http.MethodPost, "/api/v1/checklists", tokenFor(t, s, visualizador.ID),
		map[string]any{"barragemId": 1, "data": "2024-03-01", "tipo": "semanal"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Valor inválido. Use um dos seguintes: mensal, especial, emergencial", body["error"])
	assert.Equal(t, "tipo", body["field"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateChecklistCanonicalizesTipo(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	mock.ExpectQuery("INSERT INTO sgsb.checklists").
		WithArgs(int64(1), visualizador.ID, pgxmock.AnyArg(), ptr("emergencial"), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
	expectAudit(mock, "create", "checklist")

	w := doRequest(s, http.MethodPost, "/api/v1/checklists", tokenFor(t, s, visualizador.ID),
		map[string]any{"barragemId": 1, "data": "2024-03-01", "tipo": "Emergêncial"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLeituraFromInstrumentPath(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	inst := models.Instrumento{ID: 7, BarragemID: 3, Codigo: "PZ-01", Tipo: "piezometro",
		NivelAlerta: ptr("10"), NivelCritico: ptr("20"), UnidadeMedida: ptr("m"), Status: "ativo", Ativo: true}
	mock.ExpectQuery("FROM sgsb.instrumentos WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(rowsOf(inst))
	mock.ExpectQuery("INSERT INTO sgsb.leituras").
		WithArgs(append([]any{int64(7), visualizador.ID, pgxmock.AnyArg(), "20", pgxmock.AnyArg(), true, ptr("Acima do nível crítico")},
			anyArgs(4)...)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectQuery("INSERT INTO sgsb.alertas").
		WithArgs(anyArgs(8)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))
	expectAudit(mock, "create", "leitura")

	w := doRequest(s, http.MethodPost, "/api/v1/instrumentos/7/leituras", tokenFor(t, s, visualizador.ID),
		map[string]any{"dataHora": "2024-03-01T10:00:00Z", "valor": "20"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, float64(41), body["id"])
	assert.Equal(t, true, body["inconsistencia"])
	assert.Equal(t, "Acima do nível crítico", body["tipoInconsistencia"])
	assert.Equal(t, float64(9), body["alertaId"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLeituraRejectsBadDate(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")

	w := doRequest(s, http.MethodPost, "/api/v1/leituras", tokenFor(t, s, visualizador.ID),
		map[string]any{"instrumentoId": 7, "dataHora": "ontem", "valor": "3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWithEmptyPayload(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	expectAudit(mock, "update", "ocorrencia")

	w := doRequest(s, http.MethodPut, "/api/v1/ocorrencias/5", tokenFor(t, s, visualizador.ID), map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadDocumento(t *testing.T) {
	blobs := &fakeBlobs{}
	s, mock := newTestServer(t, nil, blobs)
	expectSession(mock, visualizador, "visualizador")
	expectAudit(mock, "upload", "documento")

	w := doRequest(s, http.MethodPost, "/api/v1/documentos/upload", tokenFor(t, s, visualizador.ID),
		map[string]any{"fileName": "laudo.pdf", "fileData": "data:application/pdf;base64,JVBERg==", "contentType": "application/pdf"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.True(t, strings.HasPrefix(body["key"].(string), "documentos/"))
	assert.True(t, strings.HasSuffix(body["key"].(string), ".pdf"))
	assert.Equal(t, "https://blob.example/"+blobs.key, body["url"])
	assert.Equal(t, []byte("%PDF"), blobs.data)
	assert.Equal(t, "application/pdf", blobs.contentType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportLeituras(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	inst := models.Instrumento{ID: 7, BarragemID: 3, Codigo: "PZ 01", UnidadeMedida: ptr("m"), Status: "ativo"}
	mock.ExpectQuery("FROM sgsb.instrumentos WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(rowsOf(inst))
	mock.ExpectQuery("FROM sgsb.leituras WHERE instrumento_id").
		WithArgs(int64(7), exportLimit).
		WillReturnRows(rowsOf(models.Leitura{
			ID:                 1,
			InstrumentoID:      7,
			DataHora:           time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			Valor:              "15",
			Inconsistencia:     true,
			TipoInconsistencia: ptr("Acima do nível de alerta"),
			Origem:             "mobile",
		}))

	w := doRequest(s, http.MethodGet, "/api/v1/instrumentos/7/leituras/export", tokenFor(t, s, visualizador.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leituras-PZ_01.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(leiturasSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, leiturasExportHeader, rows[0])
	assert.Equal(t, []string{"2024-03-01 10:00:00", "15", "m", "", "Sim", "Acima do nível de alerta", "mobile"}, rows[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutRevokesToken(t *testing.T) {
	revoker := &fakeRevoker{revoked: map[string]time.Time{}}
	s, mock := newTestServer(t, revoker, nil)
	expectSession(mock, visualizador, "visualizador")
	token := tokenFor(t, s, visualizador.ID)

	w := doRequest(s, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, revoker.revoked, 1)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "app_session_id=;")

	// The revoked token no longer authenticates.
	w = doRequest(s, http.MethodGet, "/api/v1/barragens", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAlertaLido(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")
	mock.ExpectExec("UPDATE sgsb.alertas SET lido = TRUE").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	expectAudit(mock, "markRead", "alerta")

	w := doRequest(s, http.MethodPost, "/api/v1/alertas/5/lido", tokenFor(t, s, visualizador.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAlertasRequiresBarragem(t *testing.T) {
	s, mock := newTestServer(t, nil, nil)
	expectSession(mock, visualizador, "visualizador")

	w := doRequest(s, http.MethodGet, "/api/v1/alertas", tokenFor(t, s, visualizador.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
