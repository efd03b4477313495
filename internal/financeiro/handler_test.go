package financeiro

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homio-app/api-parceiros/internal/directus"
	"github.com/homio-app/api-parceiros/internal/pagamento"
	"github.com/homio-app/api-parceiros/internal/parceiro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeParceiros struct {
	parceiros []parceiro.Parceiro
}

func (f *fakeParceiros) ListarPorTipo(ctx context.Context, tipo string) ([]parceiro.Parceiro, error) {
	return f.parceiros, nil
}

func (f *fakeParceiros) BuscarPorID(ctx context.Context, id string) (*parceiro.Parceiro, error) {
	for _, p := range f.parceiros {
		if p.ID.String() == id {
			cp := p
			return &cp, nil
		}
	}
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

type fakePagamentos struct {
	pagamentos []pagamento.Pagamento
	criado     *pagamento.Pagamento
	err        error
}

func (f *fakePagamentos) Listar(ctx context.Context) ([]pagamento.Pagamento, error) {
	return f.pagamentos, f.err
}

func (f *fakePagamentos) ListarDoParceiro(ctx context.Context, nome string) ([]pagamento.Pagamento, error) {
	return f.pagamentos, f.err
}

func (f *fakePagamentos) Criar(ctx context.Context, p pagamento.Pagamento) (*pagamento.Pagamento, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = "90"
	f.criado = &p
	return &p, nil
}

func TestListar(t *testing.T) {
	parceiros := &fakeParceiros{parceiros: []parceiro.Parceiro{{ID: "1", Name: "Acme"}}}
	pagamentos := &fakePagamentos{pagamentos: []pagamento.Pagamento{
		{ID: "10", PartnerHpn: "Acme", Amount: 150, PaymentDate: "2025-05-10", Description: "Repasse de maio"},
		{ID: "11", PartnerHpn: "Fantasma", Amount: 80, PaymentDate: "2025-05-11"},
	}}
	h := NewHandler(parceiros, pagamentos, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/payments", nil)
	w := httptest.NewRecorder()
	h.Listar(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var saida []PagamentoDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saida))
	require.Len(t, saida, 2)

	assert.Equal(t, "Acme", saida[0].PartnerName)
	assert.Equal(t, "2025-05-10", saida[0].Date)
	assert.Equal(t, pagamento.StatusPago, saida[0].Status)
	assert.Equal(t, "Repasse de maio", saida[0].Description)

	assert.Equal(t, "Parceiro não encontrado", saida[1].PartnerName)
}

func TestRegistrar(t *testing.T) {
	parceiros := &fakeParceiros{parceiros: []parceiro.Parceiro{{ID: "1", Name: "Acme"}}}
	pagamentos := &fakePagamentos{}
	h := NewHandler(parceiros, pagamentos, zap.NewNop())

	corpo, _ := json.Marshal(map[string]interface{}{
		"partnerId":   "1",
		"amount":      150.0,
		"date":        "2025-06-01",
		"description": "Repasse de junho",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/payments", bytes.NewReader(corpo))
	w := httptest.NewRecorder()
	h.Registrar(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// o vínculo no armazém é sempre o nome cadastrado do parceiro
	require.NotNil(t, pagamentos.criado)
	assert.Equal(t, "Acme", pagamentos.criado.PartnerHpn)
	assert.InDelta(t, 150, pagamentos.criado.Amount, 1e-9)
	assert.Equal(t, "2025-06-01", pagamentos.criado.PaymentDate)

	var resp PagamentoRegistradoDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Acme", resp.PartnerName)
	assert.Equal(t, pagamento.StatusPago, resp.Status)
}

func TestRegistrar_ParceiroInexistente(t *testing.T) {
	pagamentos := &fakePagamentos{}
	h := NewHandler(&fakeParceiros{}, pagamentos, zap.NewNop())

	corpo, _ := json.Marshal(map[string]interface{}{
		"partnerId": "404",
		"amount":    150.0,
		"date":      "2025-06-01",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/payments", bytes.NewReader(corpo))
	w := httptest.NewRecorder()
	h.Registrar(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Parceiro não encontrado")
	// nada chega ao armazém quando o parceiro não existe
	assert.Nil(t, pagamentos.criado)
}

func TestRegistrar_ValorNegativo(t *testing.T) {
	pagamentos := &fakePagamentos{}
	h := NewHandler(&fakeParceiros{parceiros: []parceiro.Parceiro{{ID: "1", Name: "Acme"}}}, pagamentos, zap.NewNop())

	corpo, _ := json.Marshal(map[string]interface{}{
		"partnerId": "1",
		"amount":    -10.0,
		"date":      "2025-06-01",
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/payments", bytes.NewReader(corpo))
	w := httptest.NewRecorder()
	h.Registrar(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, pagamentos.criado)
}
