package utils

import (
	"encoding/json"
	"net/http"
)

// RespondJSON serializa v como corpo da resposta.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondErro escreve o envelope de erro {"error": mensagem}.
func RespondErro(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, map[string]string{"error": mensagem})
}

// RespondContaInativa sinaliza o caso distinto de conta ainda não ativada,
// para que o front-end mostre a orientação de ativação em vez de um erro
// genérico.
func RespondContaInativa(w http.ResponseWriter) {
	RespondJSON(w, http.StatusForbidden, map[string]string{
		"error":   "account_inactive",
		"message": "Sua conta ainda não foi ativada",
	})
}
