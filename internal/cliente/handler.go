package cliente

import (
	"net/http"

	"github.com/homio-app/api-parceiros/internal/utils"
	"go.uber.org/zap"
)

// Handler expõe a listagem crua de clientes consumida pelo front-end.
type Handler struct {
	Repository Repository
	Log        *zap.Logger
}

func NewHandler(repo Repository, log *zap.Logger) *Handler {
	return &Handler{Repository: repo, Log: log}
}

// Listar trata GET /clients. Aceita um query param opcional `partnerHpn`
// para restringir a um parceiro; os filtros de elegibilidade valem sempre.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	partnerHpn := r.URL.Query().Get("partnerHpn")

	var (
		clientes []Cliente
		err      error
	)
	if partnerHpn != "" {
		clientes, err = h.Repository.ListarDoParceiro(r.Context(), partnerHpn)
	} else {
		clientes, err = h.Repository.ListarElegiveis(r.Context())
	}
	if err != nil {
		h.Log.Error("Erro ao buscar clientes", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.RespondJSON(w, http.StatusOK, clientes)
}
