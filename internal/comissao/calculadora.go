// Package comissao concentra o cálculo de comissão e saldo dos parceiros.
// Tudo aqui é função pura sobre registros de cliente e pagamento: os
// handlers buscam as coleções e delegam a matemática para este pacote.
package comissao

import (
	"github.com/homio-app/api-parceiros/internal/cliente"
	"github.com/homio-app/api-parceiros/internal/pagamento"
)

// TaxaPadrao é a fração de comissão usada quando o cliente não tem
// commissionPercentage definido.
const TaxaPadrao = 0.20

// PercentualPadraoExibicao é o percentual mostrado ao usuário na ausência
// de commissionPercentage.
const PercentualPadraoExibicao = 20.0

// Taxa devolve a fração de comissão do cliente: commissionPercentage/100
// quando definido, senão a taxa padrão de 20%.
func Taxa(c cliente.Cliente) float64 {
	if c.CommissionPercentage != nil {
		return *c.CommissionPercentage / 100
	}
	return TaxaPadrao
}

// PercentualExibicao devolve o percentual de comissão para exibição.
func PercentualExibicao(c cliente.Cliente) float64 {
	if c.CommissionPercentage != nil {
		return *c.CommissionPercentage
	}
	return PercentualPadraoExibicao
}

// ComissaoDoCliente calcula a comissão devida pela receita vitalícia do
// cliente. Sempre devolve um número finito >= 0 para entradas não negativas.
func ComissaoDoCliente(c cliente.Cliente) float64 {
	return c.TotalAmountReceived * Taxa(c)
}

// Elegiveis filtra os clientes que contam para agregados, descartando a
// conta-casa e registros com useForMetrics=false. O armazém já aplica os
// mesmos filtros na consulta; repetir aqui mantém o invariante mesmo para
// coleções vindas de outra origem.
func Elegiveis(clientes []cliente.Cliente) []cliente.Cliente {
	out := make([]cliente.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if c.ContaParaMetricas() {
			out = append(out, c)
		}
	}
	return out
}

// Resumo agrega as finanças de um parceiro.
type Resumo struct {
	TotalClientes int
	ReceitaTotal  float64
	ComissaoTotal float64
	TotalPago     float64
	SaldoPendente float64
	TaxaChurn     float64
}

// ResumoDoParceiro filtra clientes e pagamentos pelo nome do parceiro e
// soma receita, comissão, pago e pendente. O saldo pendente nunca fica
// negativo: pagamento a maior é truncado em zero, não vira crédito.
func ResumoDoParceiro(nomeParceiro string, clientes []cliente.Cliente, pagamentos []pagamento.Pagamento) Resumo {
	var r Resumo
	cancelados := 0

	for _, c := range Elegiveis(clientes) {
		if c.PartnerHpn != nomeParceiro {
			continue
		}
		r.TotalClientes++
		r.ReceitaTotal += c.TotalAmountReceived
		r.ComissaoTotal += ComissaoDoCliente(c)
		if c.Status == cliente.StatusCancelado {
			cancelados++
		}
	}

	for _, p := range pagamentos {
		if p.PartnerHpn == nomeParceiro {
			r.TotalPago += p.Amount
		}
	}

	r.SaldoPendente = max(0, r.ComissaoTotal-r.TotalPago)
	if r.TotalClientes > 0 {
		r.TaxaChurn = float64(cancelados) / float64(r.TotalClientes) * 100
	}

	return r
}

// Estatisticas agrega o painel global do admin.
type Estatisticas struct {
	TotalParceiros      int
	ReceitaTotal        float64
	TotalClientes       int
	PagamentosPendentes float64
}

// EstatisticasGerais soma receita, comissão e pagamentos de todos os
// parceiros de uma vez. Clientes cujo partnerHpn não corresponde a nenhum
// parceiro cadastrado ainda entram nas somas: a agregação é por nome e não
// exige que o parceiro exista.
func EstatisticasGerais(totalParceiros int, clientes []cliente.Cliente, pagamentos []pagamento.Pagamento) Estatisticas {
	e := Estatisticas{TotalParceiros: totalParceiros}

	var comissaoTotal float64
	for _, c := range Elegiveis(clientes) {
		e.TotalClientes++
		e.ReceitaTotal += c.TotalAmountReceived
		comissaoTotal += ComissaoDoCliente(c)
	}

	var totalPago float64
	for _, p := range pagamentos {
		totalPago += p.Amount
	}

	e.PagamentosPendentes = max(0, comissaoTotal-totalPago)
	return e
}
