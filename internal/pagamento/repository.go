package pagamento

import (
	"context"

	"github.com/homio-app/api-parceiros/internal/directus"
)

type Repository interface {
	Listar(ctx context.Context) ([]Pagamento, error)
	ListarDoParceiro(ctx context.Context, nomeParceiro string) ([]Pagamento, error)
	Criar(ctx context.Context, p Pagamento) (*Pagamento, error)
}

type repositoryImpl struct {
	api *directus.Client
}

func NewRepository(api *directus.Client) Repository {
	return &repositoryImpl{api: api}
}

func (r *repositoryImpl) Listar(ctx context.Context) ([]Pagamento, error) {
	var pagamentos []Pagamento
	if err := r.api.ListarItens(ctx, Colecao, nil, &pagamentos); err != nil {
		return nil, err
	}
	return pagamentos, nil
}

func (r *repositoryImpl) ListarDoParceiro(ctx context.Context, nomeParceiro string) ([]Pagamento, error) {
	filtros := []directus.Filtro{directus.Eq("partnerHpn", nomeParceiro)}
	var pagamentos []Pagamento
	if err := r.api.ListarItens(ctx, Colecao, filtros, &pagamentos); err != nil {
		return nil, err
	}
	return pagamentos, nil
}

// Criar persiste o pagamento e devolve o registro ecoado pelo armazém.
// Não há primitiva condicional no Directus: submissões duplicadas criam
// registros duplicados.
func (r *repositoryImpl) Criar(ctx context.Context, p Pagamento) (*Pagamento, error) {
	var criado Pagamento
	if err := r.api.CriarItem(ctx, Colecao, p, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}
