package venda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homio-app/api-parceiros/internal/cliente"
	"github.com/homio-app/api-parceiros/internal/directus"
	"github.com/homio-app/api-parceiros/internal/parceiro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClientes struct {
	clientes []cliente.Cliente
	err      error
}

func (f *fakeClientes) ListarElegiveis(ctx context.Context) ([]cliente.Cliente, error) {
	return f.clientes, f.err
}

func (f *fakeClientes) ListarDoParceiro(ctx context.Context, nome string) ([]cliente.Cliente, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []cliente.Cliente{}
	for _, c := range f.clientes {
		if c.PartnerHpn == nome {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeParceiros struct {
	parceiros []parceiro.Parceiro
}

func (f *fakeParceiros) ListarPorTipo(ctx context.Context, tipo string) ([]parceiro.Parceiro, error) {
	return f.parceiros, nil
}

func (f *fakeParceiros) BuscarPorID(ctx context.Context, id string) (*parceiro.Parceiro, error) {
	return nil, directus.ErrNaoEncontrado
}

func (f *fakeParceiros) BuscarPorLogin(ctx context.Context, login string) (*parceiro.Parceiro, error) {
	return nil, directus.ErrNaoEncontrado
}

func (f *fakeParceiros) Criar(ctx context.Context, p parceiro.Parceiro) (*parceiro.Parceiro, error) {
	return &p, nil
}

func (f *fakeParceiros) AtualizarStatus(ctx context.Context, id string, status bool) (*parceiro.Parceiro, error) {
	return nil, directus.ErrNaoEncontrado
}

func (f *fakeParceiros) AtualizarSenha(ctx context.Context, id, senhaHash string) error {
	return nil
}

func pct(v float64) *float64 { return &v }

func TestListar(t *testing.T) {
	clientes := &fakeClientes{clientes: []cliente.Cliente{
		{ID: "1", Name: "Cliente A", PartnerHpn: "Acme", Plan: "pro", Status: "active", TotalAmountReceived: 1000},
		{ID: "2", Name: "Cliente B", PartnerHpn: "Fantasma", TotalAmountReceived: 500, CommissionPercentage: pct(40)},
	}}
	parceiros := &fakeParceiros{parceiros: []parceiro.Parceiro{{ID: "7", Name: "Acme"}}}
	h := NewHandler(clientes, parceiros, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/sales", nil)
	w := httptest.NewRecorder()
	h.Listar(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var vendas []VendaDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vendas))
	require.Len(t, vendas, 2)

	assert.Equal(t, "Cliente A", vendas[0].ClientName)
	assert.Equal(t, "Acme", vendas[0].PartnerName)
	assert.InDelta(t, 200, vendas[0].Commission, 1e-9)
	assert.InDelta(t, 20, vendas[0].CommissionPercentage, 1e-9)

	// partnerHpn órfão não descarta a linha, só fica sem nome resolvido
	assert.Equal(t, ParceiroNaoEncontrado, vendas[1].PartnerName)
	assert.InDelta(t, 200, vendas[1].Commission, 1e-9)
	assert.InDelta(t, 40, vendas[1].CommissionPercentage, 1e-9)
}

func TestListar_PrefereHomioID(t *testing.T) {
	clientes := &fakeClientes{clientes: []cliente.Cliente{
		{ID: "1", HomioID: "hp-123", Name: "Cliente A", PartnerHpn: "Acme"},
	}}
	h := NewHandler(clientes, &fakeParceiros{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/sales", nil)
	w := httptest.NewRecorder()
	h.Listar(w, req)

	var vendas []VendaDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vendas))
	require.Len(t, vendas, 1)
	assert.Equal(t, "hp-123", vendas[0].ID.String())
}

func TestListarClientesDoParceiro(t *testing.T) {
	clientes := &fakeClientes{clientes: []cliente.Cliente{
		{ID: "1", Name: "Cliente A", PartnerHpn: "Acme", Plan: "basic", TotalAmountReceived: 250},
		{ID: "2", Name: "Cliente B", PartnerHpn: "Outra", TotalAmountReceived: 900},
	}}
	h := NewHandler(clientes, &fakeParceiros{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/partner/clients?name=Acme", nil)
	w := httptest.NewRecorder()
	h.ListarClientesDoParceiro(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var saida []ClienteComComissaoDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saida))
	require.Len(t, saida, 1)

	assert.Equal(t, "Cliente A", saida[0].Name)
	assert.Equal(t, "basic", saida[0].Plan)
	assert.InDelta(t, 50, saida[0].Commission, 1e-9)
}

func TestListarClientesDoParceiro_NomeObrigatorio(t *testing.T) {
	h := NewHandler(&fakeClientes{}, &fakeParceiros{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/partner/clients", nil)
	w := httptest.NewRecorder()
	h.ListarClientesDoParceiro(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name é obrigatório")
}
