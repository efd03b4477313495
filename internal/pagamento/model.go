package pagamento

import "github.com/homio-app/api-parceiros/internal/directus"

// Colecao no Directus.
const Colecao = "partner_payments"

// StatusPago é o único status que existe para pagamentos neste modelo.
const StatusPago = "paid"

// Pagamento é um repasse da operadora para um parceiro. Como nos clientes,
// o vínculo é o nome do parceiro em partnerHpn.
type Pagamento struct {
	ID          directus.ID `json:"id,omitempty"`
	PartnerHpn  string      `json:"partnerHpn"`
	Amount      float64     `json:"amount"`
	PaymentDate string      `json:"paymentDate"` // formato YYYY-MM-DD
	Description string      `json:"description,omitempty"`
}
