package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/homio-app/api-parceiros/internal/directus"
)

// Claims do token de sessão emitido no login.
type Claims struct {
	UserID  directus.ID `json:"userId"`
	IsAdmin bool        `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Gerenciador emite e valida tokens HS256. O segredo é injetado na
// construção; o pacote não lê ambiente.
type Gerenciador struct {
	segredo  []byte
	validade time.Duration
}

// NewGerenciador cria o emissor de tokens com a validade em horas.
func NewGerenciador(segredo string, validadeHoras int) *Gerenciador {
	if validadeHoras <= 0 {
		validadeHoras = 24
	}
	return &Gerenciador{
		segredo:  []byte(segredo),
		validade: time.Duration(validadeHoras) * time.Hour,
	}
}

// GerarToken gera um JWT para o usuário autenticado.
func (g *Gerenciador) GerarToken(userID directus.ID, isAdmin bool) (string, error) {
	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(g.validade)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.segredo)
}

// ValidarToken valida o token e devolve as claims.
func (g *Gerenciador) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return g.segredo, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
