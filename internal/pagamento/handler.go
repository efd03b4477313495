package pagamento

import (
	"encoding/json"
	"net/http"

	"github.com/homio-app/api-parceiros/internal/utils"
	"go.uber.org/zap"
)

// Handler expõe as rotas cruas de pagamento e o extrato do parceiro.
type Handler struct {
	Repository Repository
	Log        *zap.Logger
}

func NewHandler(repo Repository, log *zap.Logger) *Handler {
	return &Handler{Repository: repo, Log: log}
}

// Listar trata GET /payments, com query param opcional `partnerHpn`.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	partnerHpn := r.URL.Query().Get("partnerHpn")

	var (
		pagamentos []Pagamento
		err        error
	)
	if partnerHpn != "" {
		pagamentos, err = h.Repository.ListarDoParceiro(r.Context(), partnerHpn)
	} else {
		pagamentos, err = h.Repository.Listar(r.Context())
	}
	if err != nil {
		h.Log.Error("Erro ao buscar pagamentos", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.RespondJSON(w, http.StatusOK, pagamentos)
}

// Criar trata POST /payments: repasse direto do corpo para o armazém.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var p Pagamento
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	criado, err := h.Repository.Criar(r.Context(), p)
	if err != nil {
		h.Log.Error("Erro ao criar pagamento", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.RespondJSON(w, http.StatusOK, criado)
}

// ListarDoParceiro trata GET /partner/payments?name= e devolve o extrato
// formatado do parceiro.
func (h *Handler) ListarDoParceiro(w http.ResponseWriter, r *http.Request) {
	nome := r.URL.Query().Get("name")
	if nome == "" {
		utils.RespondErro(w, http.StatusBadRequest, "name é obrigatório")
		return
	}

	pagamentos, err := h.Repository.ListarDoParceiro(r.Context(), nome)
	if err != nil {
		h.Log.Error("Erro ao buscar pagamentos do parceiro", zap.Error(err), zap.String("parceiro", nome))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	formatados := make([]PagamentoFormatadoDTO, 0, len(pagamentos))
	for _, p := range pagamentos {
		formatados = append(formatados, MontarPagamentoFormatadoDTO(p))
	}

	utils.RespondJSON(w, http.StatusOK, formatados)
}
