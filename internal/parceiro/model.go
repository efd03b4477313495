package parceiro

import "github.com/homio-app/api-parceiros/internal/directus"

// Colecao no Directus.
const Colecao = "partner_logins"

// Tipos de identidade em partner_logins.
const (
	TipoAdmin    = "admin"
	TipoParceiro = "partner"
)

// SenhaPadrao é a senha inicial entregue ao parceiro na criação da conta.
// No armazém fica apenas o hash bcrypt dela.
const SenhaPadrao = "123456"

// Parceiro é uma identidade de partner_logins: contas de parceiro e de
// admin moram na mesma coleção, diferenciadas pelo campo type. O status só
// controla acesso de parceiros; admins nunca são bloqueados por ele.
type Parceiro struct {
	ID       directus.ID `json:"id"`
	Login    string      `json:"login"`
	Password string      `json:"password"` // hash bcrypt; nunca sai nas respostas (DTOs têm campos explícitos)
	Name     string      `json:"name"`
	NameID   string      `json:"nameId"`
	Type     string      `json:"type"`
	Status   bool        `json:"status"`
	CNPJ     string      `json:"cnpj"`
	PixKey   string      `json:"pixKey"`
}

// EhParceiro informa se a identidade é de um parceiro (e não admin).
func (p Parceiro) EhParceiro() bool { return p.Type == TipoParceiro }
