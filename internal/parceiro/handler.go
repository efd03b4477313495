package parceiro

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/homio-app/api-parceiros/internal/auth"
	"github.com/homio-app/api-parceiros/internal/cliente"
	"github.com/homio-app/api-parceiros/internal/comissao"
	"github.com/homio-app/api-parceiros/internal/directus"
	"github.com/homio-app/api-parceiros/internal/pagamento"
	"github.com/homio-app/api-parceiros/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New()

// request DTOs
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type criarParceiroRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type atualizarStatusRequest struct {
	PartnerID directus.ID `json:"partnerId" validate:"required"`
	Status    bool        `json:"status"`
}

type alterarSenhaRequest struct {
	UserID          directus.ID `json:"userId" validate:"required"`
	CurrentPassword string      `json:"currentPassword" validate:"required"`
	NewPassword     string      `json:"newPassword" validate:"required"`
}

// Handler reúne as rotas de parceiro do admin, o painel do parceiro e o
// fluxo de sessão (as identidades moram todas em partner_logins).
type Handler struct {
	Repository Repository
	Clientes   cliente.Repository
	Pagamentos pagamento.Repository
	Tokens     *auth.Gerenciador
	Log        *zap.Logger
}

func NewHandler(repo Repository, clientes cliente.Repository, pagamentos pagamento.Repository, tokens *auth.Gerenciador, log *zap.Logger) *Handler {
	return &Handler{
		Repository: repo,
		Clientes:   clientes,
		Pagamentos: pagamentos,
		Tokens:     tokens,
		Log:        log,
	}
}

// ListarComEstatisticas trata GET /admin/partners: todos os parceiros com
// totalClients/totalRevenue/totalCommission derivados na hora.
func (h *Handler) ListarComEstatisticas(w http.ResponseWriter, r *http.Request) {
	g, ctx := errgroup.WithContext(r.Context())

	var parceiros []Parceiro
	var clientes []cliente.Cliente
	g.Go(func() error {
		var err error
		parceiros, err = h.Repository.ListarPorTipo(ctx, TipoParceiro)
		return err
	})
	g.Go(func() error {
		var err error
		clientes, err = h.Clientes.ListarElegiveis(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Erro ao buscar parceiros", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	saida := make([]ParceiroComEstatisticasDTO, 0, len(parceiros))
	for _, p := range parceiros {
		resumo := comissao.ResumoDoParceiro(p.Name, clientes, nil)
		saida = append(saida, MontarParceiroComEstatisticasDTO(p, resumo))
	}

	utils.RespondJSON(w, http.StatusOK, saida)
}

// Criar trata POST /admin/partners: cadastra o parceiro com a senha padrão
// (guardada como hash) e status inativo, aguardando ativação pelo admin.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarParceiroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "name e email são obrigatórios")
		return
	}

	hash, err := utils.HashSenha(SenhaPadrao)
	if err != nil {
		h.Log.Error("Erro ao gerar hash da senha padrão", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	novo := Parceiro{
		Login:    req.Email,
		Password: hash,
		Name:     req.Name,
		NameID:   gerarNameID(req.Name),
		Type:     TipoParceiro,
		Status:   false,
		CNPJ:     "",
		PixKey:   "",
	}

	criado, err := h.Repository.Criar(r.Context(), novo)
	if err != nil {
		h.Log.Error("Erro ao criar parceiro", zap.Error(err))
		utils.RespondErro(w, http.StatusBadRequest, "Erro ao criar parceiro")
		return
	}

	// A senha padrão volta em texto uma única vez, para o admin entregar
	// ao parceiro no primeiro acesso.
	utils.RespondJSON(w, http.StatusOK, ParceiroCriadoDTO{
		ParceiroDTO: MontarParceiroDTO(*criado),
		Password:    SenhaPadrao,
	})
}

// AtualizarStatus trata PATCH /admin/partners: ativa/desativa a conta.
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "partnerId é obrigatório")
		return
	}

	atualizado, err := h.Repository.AtualizarStatus(r.Context(), req.PartnerID.String(), req.Status)
	if err != nil {
		h.Log.Error("Erro ao atualizar parceiro", zap.Error(err), zap.String("partnerId", req.PartnerID.String()))
		utils.RespondErro(w, http.StatusBadRequest, "Erro ao atualizar status do parceiro")
		return
	}

	utils.RespondJSON(w, http.StatusOK, MontarParceiroDTO(*atualizado))
}

// Saldos trata GET /admin/partner-balances: quanto cada parceiro tem de
// comissão acumulada, quanto já recebeu e o pendente.
func (h *Handler) Saldos(w http.ResponseWriter, r *http.Request) {
	parceiros, clientes, pagamentos, err := h.buscarColecoes(r)
	if err != nil {
		h.Log.Error("Erro ao buscar saldos", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	saldos := make([]SaldoParceiroDTO, 0, len(parceiros))
	for _, p := range parceiros {
		resumo := comissao.ResumoDoParceiro(p.Name, clientes, pagamentos)
		saldos = append(saldos, SaldoParceiroDTO{
			PartnerID:       p.ID,
			PartnerName:     p.Name,
			TotalCommission: resumo.ComissaoTotal,
			TotalPaid:       resumo.TotalPago,
			PendingAmount:   resumo.SaldoPendente,
		})
	}

	utils.RespondJSON(w, http.StatusOK, saldos)
}

// EstatisticasGerais trata GET /admin/stats: totais do painel do admin.
func (h *Handler) EstatisticasGerais(w http.ResponseWriter, r *http.Request) {
	parceiros, clientes, pagamentos, err := h.buscarColecoes(r)
	if err != nil {
		h.Log.Error("Erro ao buscar estatísticas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	e := comissao.EstatisticasGerais(len(parceiros), clientes, pagamentos)
	utils.RespondJSON(w, http.StatusOK, EstatisticasGeraisDTO{
		TotalPartners:   e.TotalParceiros,
		TotalRevenue:    e.ReceitaTotal,
		TotalClients:    e.TotalClientes,
		PendingPayments: e.PagamentosPendentes,
	})
}

// Listar trata GET /partner: listagem crua de identidades, com filtro
// opcional por type e sem o campo de senha.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tipo := r.URL.Query().Get("type")

	parceiros, err := h.Repository.ListarPorTipo(r.Context(), tipo)
	if err != nil {
		h.Log.Error("Erro ao buscar parceiros", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	saida := make([]ParceiroDTO, 0, len(parceiros))
	for _, p := range parceiros {
		saida = append(saida, MontarParceiroDTO(p))
	}
	utils.RespondJSON(w, http.StatusOK, saida)
}

// CriarDireto trata POST /partner: repasse do cadastro como veio no corpo.
// Senha em texto no corpo vira hash antes de ir ao armazém.
func (h *Handler) CriarDireto(w http.ResponseWriter, r *http.Request) {
	var p Parceiro
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}

	if p.Password != "" {
		hash, err := utils.HashSenha(p.Password)
		if err != nil {
			h.Log.Error("Erro ao gerar hash de senha", zap.Error(err))
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		p.Password = hash
	}

	criado, err := h.Repository.Criar(r.Context(), p)
	if err != nil {
		h.Log.Error("Erro ao criar parceiro", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.RespondJSON(w, http.StatusOK, MontarParceiroDTO(*criado))
}

// Estatisticas trata GET /partner/stats?name=: painel restrito a um
// parceiro, reaproveitando o mesmo resumo do admin.
func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	nome := r.URL.Query().Get("name")
	if nome == "" {
		utils.RespondErro(w, http.StatusBadRequest, "name é obrigatório")
		return
	}

	g, ctx := errgroup.WithContext(r.Context())

	var clientes []cliente.Cliente
	var pagamentos []pagamento.Pagamento
	g.Go(func() error {
		var err error
		clientes, err = h.Clientes.ListarDoParceiro(ctx, nome)
		return err
	})
	g.Go(func() error {
		var err error
		pagamentos, err = h.Pagamentos.ListarDoParceiro(ctx, nome)
		return err
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("Erro ao buscar estatísticas do parceiro", zap.Error(err), zap.String("parceiro", nome))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	resumo := comissao.ResumoDoParceiro(nome, clientes, pagamentos)
	utils.RespondJSON(w, http.StatusOK, EstatisticasParceiroDTO{
		TotalClients:    resumo.TotalClientes,
		ChurnRate:       resumo.TaxaChurn,
		TotalCommission: resumo.ComissaoTotal,
		PendingPayment:  resumo.SaldoPendente,
	})
}

// Login trata POST /auth/login. A conta inativa de parceiro é um erro
// distinto (account_inactive) para o front-end orientar a ativação; admins
// nunca passam por essa checagem.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "email e password são obrigatórios")
		return
	}

	user, err := h.Repository.BuscarPorLogin(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, directus.ErrNaoEncontrado) {
			utils.RespondErro(w, http.StatusUnauthorized, "Usuário não encontrado")
			return
		}
		h.Log.Error("Erro no login", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao conectar com o servidor")
		return
	}

	if !utils.VerificarSenha(user.Password, req.Password) {
		utils.RespondErro(w, http.StatusUnauthorized, "Senha incorreta")
		return
	}

	if user.EhParceiro() && !user.Status {
		utils.RespondContaInativa(w)
		return
	}

	token, err := h.Tokens.GerarToken(user.ID, user.Type == TipoAdmin)
	if err != nil {
		h.Log.Error("Erro ao gerar token", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.RespondJSON(w, http.StatusOK, LoginResponse{
		User:    MontarParceiroDTO(*user),
		Token:   token,
		Message: "Login realizado com sucesso",
	})
}

// AlterarSenha trata POST /auth/change-password. Política de força fica no
// front-end; aqui só se confere a senha atual e grava o hash da nova.
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "JSON mal formado")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "userId, currentPassword e newPassword são obrigatórios")
		return
	}

	user, err := h.Repository.BuscarPorID(r.Context(), req.UserID.String())
	if err != nil {
		utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado")
		return
	}

	if !utils.VerificarSenha(user.Password, req.CurrentPassword) {
		utils.RespondErro(w, http.StatusUnauthorized, "Senha atual incorreta")
		return
	}

	hash, err := utils.HashSenha(req.NewPassword)
	if err != nil {
		h.Log.Error("Erro ao gerar hash de senha", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	if err := h.Repository.AtualizarSenha(r.Context(), req.UserID.String(), hash); err != nil {
		h.Log.Error("Erro ao atualizar senha", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar senha")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Senha alterada com sucesso"})
}

// buscarColecoes faz as três buscas independentes em paralelo; qualquer
// falha derruba a requisição inteira, sem agregado parcial.
func (h *Handler) buscarColecoes(r *http.Request) ([]Parceiro, []cliente.Cliente, []pagamento.Pagamento, error) {
	g, ctx := errgroup.WithContext(r.Context())

	var parceiros []Parceiro
	var clientes []cliente.Cliente
	var pagamentos []pagamento.Pagamento

	g.Go(func() error {
		var err error
		parceiros, err = h.Repository.ListarPorTipo(ctx, TipoParceiro)
		return err
	})
	g.Go(func() error {
		var err error
		clientes, err = h.Clientes.ListarElegiveis(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pagamentos, err = h.Pagamentos.Listar(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return parceiros, clientes, pagamentos, nil
}

// gerarNameID deriva o slug do parceiro: nome em minúsculas, sem espaços.
func gerarNameID(nome string) string {
	return strings.Join(strings.Fields(strings.ToLower(nome)), "")
}
