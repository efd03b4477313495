// Package venda reformata clientes em linhas de venda com comissão, para a
// visão geral do admin e para a listagem de clientes do parceiro.
package venda

import (
	"net/http"

	"github.com/homio-app/api-parceiros/internal/cliente"
	"github.com/homio-app/api-parceiros/internal/parceiro"
	"github.com/homio-app/api-parceiros/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	Clientes  cliente.Repository
	Parceiros parceiro.Repository
	Log       *zap.Logger
}

func NewHandler(clientes cliente.Repository, parceiros parceiro.Repository, log *zap.Logger) *Handler {
	return &Handler{Clientes: clientes, Parceiros: parceiros, Log: log}
}

// Listar trata GET /admin/sales: todo cliente elegível vira uma venda com
// o nome do parceiro resolvido (ou o placeholder, quando o nome não bate
// com nenhum cadastro).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	g, ctx := errgroup.WithContext(r.Context())

	var clientes []cliente.Cliente
	var parceiros []parceiro.Parceiro
	g.Go(func() error {
		var err error
		clientes, err = h.Clientes.ListarElegiveis(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		parceiros, err = h.Parceiros.ListarPorTipo(ctx, parceiro.TipoParceiro)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Erro ao buscar vendas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	nomes := make(map[string]bool, len(parceiros))
	for _, p := range parceiros {
		nomes[p.Name] = true
	}

	vendas := make([]VendaDTO, 0, len(clientes))
	for _, c := range clientes {
		vendas = append(vendas, MontarVendaDTO(c, nomes))
	}

	utils.RespondJSON(w, http.StatusOK, vendas)
}

// ListarClientesDoParceiro trata GET /partner/clients?name=: os clientes de
// um parceiro com a comissão de cada um.
func (h *Handler) ListarClientesDoParceiro(w http.ResponseWriter, r *http.Request) {
	nome := r.URL.Query().Get("name")
	if nome == "" {
		utils.RespondErro(w, http.StatusBadRequest, "name é obrigatório")
		return
	}

	clientes, err := h.Clientes.ListarDoParceiro(r.Context(), nome)
	if err != nil {
		h.Log.Error("Erro ao buscar clientes do parceiro", zap.Error(err), zap.String("parceiro", nome))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	saida := make([]ClienteComComissaoDTO, 0, len(clientes))
	for _, c := range clientes {
		saida = append(saida, MontarClienteComComissaoDTO(c))
	}

	utils.RespondJSON(w, http.StatusOK, saida)
}
