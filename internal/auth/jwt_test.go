package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	g := NewGerenciador("segredo-de-teste", 1)

	token, err := g.GerarToken("42", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := g.ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID.String())
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidarToken_SegredoErrado(t *testing.T) {
	token, err := NewGerenciador("segredo-a", 1).GerarToken("1", false)
	require.NoError(t, err)

	_, err = NewGerenciador("segredo-b", 1).ValidarToken(token)
	assert.Error(t, err)
}

func TestValidarToken_Lixo(t *testing.T) {
	g := NewGerenciador("segredo-de-teste", 1)

	_, err := g.ValidarToken("nao-e-um-jwt")
	assert.Error(t, err)
}
