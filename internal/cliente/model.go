package cliente

import "github.com/homio-app/api-parceiros/internal/directus"

// ContaHomio é a conta-casa da operadora: clientes atendidos diretamente
// pela Homio ficam fora de toda economia de parceiro.
const ContaHomio = "Homio"

// StatusCancelado é o status que conta para a taxa de churn.
const StatusCancelado = "canceled"

// Colecao no Directus.
const Colecao = "clients"

// Cliente é uma assinatura de cliente final atribuída a um parceiro.
// O vínculo com o parceiro é o nome em partnerHpn, não um ID estável:
// o esquema do armazém é normativo e vem assim do Directus.
type Cliente struct {
	ID                   directus.ID `json:"id"`
	HomioID              directus.ID `json:"homioId,omitempty"`
	Name                 string      `json:"name"`
	PartnerHpn           string      `json:"partnerHpn"`
	Plan                 string      `json:"plan"`
	Status               string      `json:"status"` // active, canceled, trialing, paused, past_due
	TotalAmountReceived  float64     `json:"totalAmountReceived"`
	MonthlyAmount        float64     `json:"monthlyAmount"`
	StartDate            string      `json:"startDate"`
	CommissionPercentage *float64    `json:"commissionPercentage"` // ausente => taxa padrão de 20%
	UseForMetrics        *bool       `json:"useForMetrics"`        // false exclui de todos os agregados
}

// IDExibicao devolve o homioId quando presente, senão o id interno. É o
// identificador que o front-end mostra.
func (c Cliente) IDExibicao() directus.ID {
	if c.HomioID != "" {
		return c.HomioID
	}
	return c.ID
}

// ContaParaMetricas informa se o cliente entra nos agregados: fora ficam a
// conta-casa e registros com useForMetrics=false.
func (c Cliente) ContaParaMetricas() bool {
	if c.PartnerHpn == ContaHomio {
		return false
	}
	if c.UseForMetrics != nil && !*c.UseForMetrics {
		return false
	}
	return true
}
