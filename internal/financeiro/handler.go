// Package financeiro é a gestão de pagamentos do admin: o histórico com os
// nomes resolvidos e o registro de novos repasses.
package financeiro

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/homio-app/api-parceiros/internal/directus"
	"github.com/homio-app/api-parceiros/internal/pagamento"
	"github.com/homio-app/api-parceiros/internal/parceiro"
	"github.com/homio-app/api-parceiros/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

type registrarPagamentoRequest struct {
	PartnerID   directus.ID `json:"partnerId" validate:"required"`
	Amount      float64     `json:"amount" validate:"gte=0"`
	Date        string      `json:"date" validate:"required"` // YYYY-MM-DD
	Description string      `json:"description"`
}

// PagamentoDTO é a linha do histórico de pagamentos do admin.
type PagamentoDTO struct {
	ID          directus.ID `json:"id"`
	PartnerName string      `json:"partnerName"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
	Status      string      `json:"status"`
	Description string      `json:"description,omitempty"`
}

// PagamentoRegistradoDTO ecoa o pagamento recém-criado.
type PagamentoRegistradoDTO struct {
	ID          directus.ID `json:"id"`
	PartnerID   directus.ID `json:"partnerId"`
	PartnerName string      `json:"partnerName"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
	Status      string      `json:"status"`
	Description string      `json:"description,omitempty"`
}

type Handler struct {
	Parceiros  parceiro.Repository
	Pagamentos pagamento.Repository
	Log        *zap.Logger
}

func NewHandler(parceiros parceiro.Repository, pagamentos pagamento.Repository, log *zap.Logger) *Handler {
	return &Handler{Parceiros: parceiros, Pagamentos: pagamentos, Log: log}
}

// Listar trata GET /admin/payments: todos os repasses com o nome do
// parceiro resolvido pelo partnerHpn (placeholder quando não bate).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	g, ctx := errgroup.WithContext(r.Context())

	var pagamentos []pagamento.Pagamento
	var parceiros []parceiro.Parceiro
	g.Go(func() error {
		var err error
		pagamentos, err = h.Pagamentos.Listar(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		parceiros, err = h.Parceiros.ListarPorTipo(ctx, parceiro.TipoParceiro)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Erro ao buscar pagamentos", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	nomes := make(map[string]bool, len(parceiros))
	for _, p := range parceiros {
		nomes[p.Name] = true
	}

	saida := make([]PagamentoDTO, 0, len(pagamentos))
	for _, p := range pagamentos {
		nome := "Parceiro não encontrado"
		if nomes[p.PartnerHpn] {
			nome = p.PartnerHpn
		}
		saida = append(saida, PagamentoDTO{
			ID:          p.ID,
			PartnerName: nome,
			Amount:      p.Amount,
			Date:        p.PaymentDate,
			Status:      pagamento.StatusPago,
			Description: p.Description,
		})
	}

	utils.RespondJSON(w, http.StatusOK, saida)
}

// Registrar trata POST /admin/payments: confere se o parceiro existe (404
// caso contrário, sem efeito colateral) e persiste o repasse vinculado ao
// nome dele.
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req registrarPagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "partnerId e date são obrigatórios e amount não pode ser negativo")
		return
	}

	p, err := h.Parceiros.BuscarPorID(r.Context(), req.PartnerID.String())
	if err != nil {
		if errors.Is(err, directus.ErrNaoEncontrado) {
			utils.RespondErro(w, http.StatusNotFound, "Parceiro não encontrado")
			return
		}
		h.Log.Error("Erro ao buscar parceiro", zap.Error(err), zap.String("partnerId", req.PartnerID.String()))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	criado, err := h.Pagamentos.Criar(r.Context(), pagamento.Pagamento{
		PartnerHpn:  p.Name,
		Amount:      req.Amount,
		PaymentDate: req.Date,
		Description: req.Description,
	})
	if err != nil {
		h.Log.Error("Erro ao registrar pagamento", zap.Error(err), zap.String("parceiro", p.Name))
		utils.RespondErro(w, http.StatusBadRequest, "Erro ao registrar pagamento")
		return
	}

	utils.RespondJSON(w, http.StatusOK, PagamentoRegistradoDTO{
		ID:          criado.ID,
		PartnerID:   req.PartnerID,
		PartnerName: p.Name,
		Amount:      req.Amount,
		Date:        req.Date,
		Status:      pagamento.StatusPago,
		Description: req.Description,
	})
}
