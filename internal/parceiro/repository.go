package parceiro

import (
	"context"

	"github.com/homio-app/api-parceiros/internal/directus"
)

type Repository interface {
	ListarPorTipo(ctx context.Context, tipo string) ([]Parceiro, error)
	BuscarPorID(ctx context.Context, id string) (*Parceiro, error)
	BuscarPorLogin(ctx context.Context, login string) (*Parceiro, error)
	Criar(ctx context.Context, p Parceiro) (*Parceiro, error)
	AtualizarStatus(ctx context.Context, id string, status bool) (*Parceiro, error)
	AtualizarSenha(ctx context.Context, id, senhaHash string) error
}

type repositoryImpl struct {
	api *directus.Client
}

func NewRepository(api *directus.Client) Repository {
	return &repositoryImpl{api: api}
}

// ListarPorTipo lista identidades; tipo vazio traz a coleção inteira.
func (r *repositoryImpl) ListarPorTipo(ctx context.Context, tipo string) ([]Parceiro, error) {
	var filtros []directus.Filtro
	if tipo != "" {
		filtros = append(filtros, directus.Eq("type", tipo))
	}
	var parceiros []Parceiro
	if err := r.api.ListarItens(ctx, Colecao, filtros, &parceiros); err != nil {
		return nil, err
	}
	return parceiros, nil
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (*Parceiro, error) {
	var p Parceiro
	if err := r.api.BuscarItem(ctx, Colecao, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// BuscarPorLogin procura a identidade cujo login é exatamente igual ao
// e-mail informado. Sem normalização: o valor deve bater caractere a
// caractere.
func (r *repositoryImpl) BuscarPorLogin(ctx context.Context, login string) (*Parceiro, error) {
	filtros := []directus.Filtro{directus.Eq("login", login)}
	var parceiros []Parceiro
	if err := r.api.ListarItens(ctx, Colecao, filtros, &parceiros); err != nil {
		return nil, err
	}
	if len(parceiros) == 0 {
		return nil, directus.ErrNaoEncontrado
	}
	return &parceiros[0], nil
}

func (r *repositoryImpl) Criar(ctx context.Context, p Parceiro) (*Parceiro, error) {
	var criado Parceiro
	if err := r.api.CriarItem(ctx, Colecao, p, &criado); err != nil {
		return nil, err
	}
	return &criado, nil
}

// AtualizarStatus é a única transição de estado da conta:
// inativa -> ativa (e de volta), sempre por ação do admin.
func (r *repositoryImpl) AtualizarStatus(ctx context.Context, id string, status bool) (*Parceiro, error) {
	payload := map[string]bool{"status": status}
	var atualizado Parceiro
	if err := r.api.AtualizarItem(ctx, Colecao, id, payload, &atualizado); err != nil {
		return nil, err
	}
	return &atualizado, nil
}

func (r *repositoryImpl) AtualizarSenha(ctx context.Context, id, senhaHash string) error {
	payload := map[string]string{"password": senhaHash}
	return r.api.AtualizarItem(ctx, Colecao, id, payload, nil)
}
