package cliente

import (
	"context"

	"github.com/homio-app/api-parceiros/internal/directus"
)

type Repository interface {
	ListarElegiveis(ctx context.Context) ([]Cliente, error)
	ListarDoParceiro(ctx context.Context, nomeParceiro string) ([]Cliente, error)
}

type repositoryImpl struct {
	api *directus.Client
}

func NewRepository(api *directus.Client) Repository {
	return &repositoryImpl{api: api}
}

// filtros padrão: sempre excluir a conta-casa e registros fora de métricas.
func filtrosPadrao() []directus.Filtro {
	return []directus.Filtro{
		directus.Neq("partnerHpn", ContaHomio),
		directus.Neq("useForMetrics", "false"),
	}
}

// ListarElegiveis busca todos os clientes que contam para métricas.
func (r *repositoryImpl) ListarElegiveis(ctx context.Context) ([]Cliente, error) {
	var clientes []Cliente
	if err := r.api.ListarItens(ctx, Colecao, filtrosPadrao(), &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// ListarDoParceiro busca os clientes elegíveis de um parceiro pelo nome.
func (r *repositoryImpl) ListarDoParceiro(ctx context.Context, nomeParceiro string) ([]Cliente, error) {
	filtros := append(filtrosPadrao(), directus.Eq("partnerHpn", nomeParceiro))
	var clientes []Cliente
	if err := r.api.ListarItens(ctx, Colecao, filtros, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}
