package directus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type registro struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

func novoClienteTeste(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Token: "token-teste"}, zap.NewNop()), srv
}

func TestListarItens_EnviaFiltrosEToken(t *testing.T) {
	var recebida *http.Request
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		recebida = r.Clone(context.Background())
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []registro{{ID: "1", Name: "Acme"}},
		})
	})

	var out []registro
	err := c.ListarItens(context.Background(), "partner_logins", []Filtro{
		Eq("type", "partner"),
		Neq("status", "false"),
	}, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].Name)

	require.NotNil(t, recebida)
	assert.Equal(t, "/partner_logins", recebida.URL.Path)
	q := recebida.URL.Query()
	assert.Equal(t, "partner", q.Get("filter[type][_eq]"))
	assert.Equal(t, "false", q.Get("filter[status][_neq]"))
	assert.Equal(t, "Bearer token-teste", recebida.Header.Get("Authorization"))
}

func TestListarItens_NormalizaDataAusente(t *testing.T) {
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	var out []registro
	err := c.ListarItens(context.Background(), "clients", nil, &out)

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListarItens_NormalizaDataNull(t *testing.T) {
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null}`))
	})

	var out []registro
	err := c.ListarItens(context.Background(), "clients", nil, &out)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListarItens_ErroDoArmazemViraColecaoVazia(t *testing.T) {
	// "Sem linhas" nunca é erro: resposta de erro do Directus em listagem
	// é tratada como coleção vazia.
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"message":"forbidden"}]}`))
	})

	var out []registro
	err := c.ListarItens(context.Background(), "clients", nil, &out)

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuscarItem_NaoEncontrado(t *testing.T) {
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"message":"not found"}]}`))
	})

	var out registro
	err := c.BuscarItem(context.Background(), "partner_logins", "999", &out)

	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestBuscarItem_DataNullEhNaoEncontrado(t *testing.T) {
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null}`))
	})

	var out registro
	err := c.BuscarItem(context.Background(), "partner_logins", "999", &out)

	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestCriarItem_DecodificaEco(t *testing.T) {
	var metodo string
	var corpo map[string]interface{}
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		metodo = r.Method
		_ = json.NewDecoder(r.Body).Decode(&corpo)
		_, _ = w.Write([]byte(`{"data": {"id": 7, "name": "Acme"}}`))
	})

	var criado registro
	err := c.CriarItem(context.Background(), "partner_payments", map[string]string{"name": "Acme"}, &criado)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, metodo)
	assert.Equal(t, "Acme", corpo["name"])
	assert.Equal(t, ID("7"), criado.ID)
}

func TestAtualizarItem_UsaPatch(t *testing.T) {
	var metodo, path string
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		metodo = r.Method
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"data": {"id": "abc", "name": "Acme"}}`))
	})

	var out registro
	err := c.AtualizarItem(context.Background(), "partner_logins", "abc", map[string]bool{"status": true}, &out)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, metodo)
	assert.Equal(t, "/partner_logins/abc", path)
	assert.Equal(t, ID("abc"), out.ID)
}

func TestCriarItem_ErroDoArmazem(t *testing.T) {
	c, _ := novoClienteTeste(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	err := c.CriarItem(context.Background(), "partner_payments", map[string]string{}, nil)
	assert.Error(t, err)
}

func TestID_SerializaComoVeio(t *testing.T) {
	var numerico, texto registro
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &numerico))
	require.NoError(t, json.Unmarshal([]byte(`{"id": "uuid-1"}`), &texto))

	b, err := json.Marshal(numerico)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 42, "name": ""}`, string(b))

	b, err = json.Marshal(texto)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "uuid-1", "name": ""}`, string(b))
}
