package parceiro

import (
	"github.com/homio-app/api-parceiros/internal/comissao"
	"github.com/homio-app/api-parceiros/internal/directus"
)

// ParceiroDTO é o parceiro sem o campo de senha.
type ParceiroDTO struct {
	ID     directus.ID `json:"id"`
	Login  string      `json:"login"`
	Name   string      `json:"name"`
	NameID string      `json:"nameId"`
	Type   string      `json:"type"`
	Status bool        `json:"status"`
	CNPJ   string      `json:"cnpj"`
	PixKey string      `json:"pixKey"`
}

// MontarParceiroDTO remove a senha do registro.
func MontarParceiroDTO(p Parceiro) ParceiroDTO {
	return ParceiroDTO{
		ID:     p.ID,
		Login:  p.Login,
		Name:   p.Name,
		NameID: p.NameID,
		Type:   p.Type,
		Status: p.Status,
		CNPJ:   p.CNPJ,
		PixKey: p.PixKey,
	}
}

// ParceiroComEstatisticasDTO é a linha da listagem de parceiros do admin:
// o cadastro mais os agregados derivados (nunca armazenados).
type ParceiroComEstatisticasDTO struct {
	ParceiroDTO
	TotalClients    int     `json:"totalClients"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCommission float64 `json:"totalCommission"`
}

// MontarParceiroComEstatisticasDTO junta o cadastro com o resumo calculado.
func MontarParceiroComEstatisticasDTO(p Parceiro, r comissao.Resumo) ParceiroComEstatisticasDTO {
	return ParceiroComEstatisticasDTO{
		ParceiroDTO:     MontarParceiroDTO(p),
		TotalClients:    r.TotalClientes,
		TotalRevenue:    r.ReceitaTotal,
		TotalCommission: r.ComissaoTotal,
	}
}

// SaldoParceiroDTO mostra, na gestão de pagamentos, quanto cada parceiro
// tem a receber.
type SaldoParceiroDTO struct {
	PartnerID       directus.ID `json:"partnerId"`
	PartnerName     string      `json:"partnerName"`
	TotalCommission float64     `json:"totalCommission"`
	TotalPaid       float64     `json:"totalPaid"`
	PendingAmount   float64     `json:"pendingAmount"`
}

// EstatisticasGeraisDTO é o painel global do dashboard do admin.
type EstatisticasGeraisDTO struct {
	TotalPartners   int     `json:"totalPartners"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalClients    int     `json:"totalClients"`
	PendingPayments float64 `json:"pendingPayments"`
}

// EstatisticasParceiroDTO é o painel do parceiro logado.
type EstatisticasParceiroDTO struct {
	TotalClients    int     `json:"totalClients"`
	ChurnRate       float64 `json:"churnRate"`
	TotalCommission float64 `json:"totalCommission"`
	PendingPayment  float64 `json:"pendingPayment"`
}

// ParceiroCriadoDTO ecoa o cadastro novo junto com a senha padrão em texto,
// para o admin repassar ao parceiro no primeiro acesso.
type ParceiroCriadoDTO struct {
	ParceiroDTO
	Password string `json:"password"`
}

// LoginResponse devolve a identidade autenticada (sem senha) e o token de
// sessão.
type LoginResponse struct {
	User    ParceiroDTO `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message"`
}
