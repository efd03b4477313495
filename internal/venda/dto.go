package venda

import (
	"github.com/homio-app/api-parceiros/internal/cliente"
	"github.com/homio-app/api-parceiros/internal/comissao"
	"github.com/homio-app/api-parceiros/internal/directus"
)

// ParceiroNaoEncontrado é o placeholder exibido quando o partnerHpn do
// cliente não corresponde a nenhum parceiro cadastrado. A linha não é
// descartada: só o nome fica sem resolução.
const ParceiroNaoEncontrado = "Parceiro não encontrado"

// VendaDTO é um cliente reformatado como venda para a visão do admin.
type VendaDTO struct {
	ID                   directus.ID `json:"id"`
	ClientName           string      `json:"clientName"`
	PartnerName          string      `json:"partnerName"`
	Plan                 string      `json:"plan"`
	Status               string      `json:"status"`
	TotalAmountReceived  float64     `json:"totalAmountReceived"`
	MonthlyAmount        float64     `json:"monthlyAmount"`
	StartDate            string      `json:"startDate"`
	Commission           float64     `json:"commission"`
	CommissionPercentage float64     `json:"commissionPercentage"`
}

// ClienteComComissaoDTO é a mesma linha na visão do parceiro, sem a coluna
// de parceiro.
type ClienteComComissaoDTO struct {
	ID                   directus.ID `json:"id"`
	Name                 string      `json:"name"`
	Plan                 string      `json:"plan"`
	Status               string      `json:"status"`
	TotalAmountReceived  float64     `json:"totalAmountReceived"`
	MonthlyAmount        float64     `json:"monthlyAmount"`
	StartDate            string      `json:"startDate"`
	Commission           float64     `json:"commission"`
	CommissionPercentage float64     `json:"commissionPercentage"`
}

// MontarVendaDTO reformata um cliente em linha de venda, resolvendo o nome
// do parceiro pelo mapa de nomes conhecidos.
func MontarVendaDTO(c cliente.Cliente, nomesParceiros map[string]bool) VendaDTO {
	nome := ParceiroNaoEncontrado
	if nomesParceiros[c.PartnerHpn] {
		nome = c.PartnerHpn
	}
	return VendaDTO{
		ID:                   c.IDExibicao(),
		ClientName:           c.Name,
		PartnerName:          nome,
		Plan:                 c.Plan,
		Status:               c.Status,
		TotalAmountReceived:  c.TotalAmountReceived,
		MonthlyAmount:        c.MonthlyAmount,
		StartDate:            c.StartDate,
		Commission:           comissao.ComissaoDoCliente(c),
		CommissionPercentage: comissao.PercentualExibicao(c),
	}
}

// MontarClienteComComissaoDTO reformata um cliente para o painel do parceiro.
func MontarClienteComComissaoDTO(c cliente.Cliente) ClienteComComissaoDTO {
	return ClienteComComissaoDTO{
		ID:                   c.IDExibicao(),
		Name:                 c.Name,
		Plan:                 c.Plan,
		Status:               c.Status,
		TotalAmountReceived:  c.TotalAmountReceived,
		MonthlyAmount:        c.MonthlyAmount,
		StartDate:            c.StartDate,
		Commission:           comissao.ComissaoDoCliente(c),
		CommissionPercentage: comissao.PercentualExibicao(c),
	}
}
