package pagamento

import "github.com/homio-app/api-parceiros/internal/directus"

// PagamentoFormatadoDTO é a linha de extrato vista pelo parceiro.
type PagamentoFormatadoDTO struct {
	ID          directus.ID `json:"id"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
	Status      string      `json:"status"`
	Description string      `json:"description,omitempty"`
}

// MontarPagamentoFormatadoDTO reformata um pagamento para exibição.
func MontarPagamentoFormatadoDTO(p Pagamento) PagamentoFormatadoDTO {
	return PagamentoFormatadoDTO{
		ID:          p.ID,
		Amount:      p.Amount,
		Date:        p.PaymentDate,
		Status:      StatusPago,
		Description: p.Description,
	}
}
