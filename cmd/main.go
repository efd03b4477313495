package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/homio-app/api-parceiros/internal/auth"
	"github.com/homio-app/api-parceiros/internal/cliente"
	"github.com/homio-app/api-parceiros/internal/config"
	"github.com/homio-app/api-parceiros/internal/directus"
	"github.com/homio-app/api-parceiros/internal/financeiro"
	"github.com/homio-app/api-parceiros/internal/logger"
	"github.com/homio-app/api-parceiros/internal/pagamento"
	"github.com/homio-app/api-parceiros/internal/parceiro"
	"github.com/homio-app/api-parceiros/internal/venda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}

	zapLog, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		log.Fatal("Erro ao iniciar logger:", err)
	}
	defer zapLog.Sync()

	// Gateway do armazém de dados externo
	api := directus.NewClient(directus.Config{
		BaseURL: cfg.Directus.BaseURL,
		Token:   cfg.Directus.Token,
	}, zapLog)

	// Repositórios
	parceiroRepo := parceiro.NewRepository(api)
	clienteRepo := cliente.NewRepository(api)
	pagamentoRepo := pagamento.NewRepository(api)

	// Sessão
	tokens := auth.NewGerenciador(cfg.JWT.Secret, cfg.JWT.ExpirationHours)

	// Handlers
	parceiroHandler := parceiro.NewHandler(parceiroRepo, clienteRepo, pagamentoRepo, tokens, zapLog)
	clienteHandler := cliente.NewHandler(clienteRepo, zapLog)
	pagamentoHandler := pagamento.NewHandler(pagamentoRepo, zapLog)
	vendaHandler := venda.NewHandler(clienteRepo, parceiroRepo, zapLog)
	financeiroHandler := financeiro.NewHandler(parceiroRepo, pagamentoRepo, zapLog)

	// Router
	r := mux.NewRouter()

	// Rotas de sessão
	r.HandleFunc("/auth/login", parceiroHandler.Login).Methods("POST")
	r.HandleFunc("/auth/change-password", parceiroHandler.AlterarSenha).Methods("POST")

	// Rotas do admin
	r.HandleFunc("/admin/partners", parceiroHandler.ListarComEstatisticas).Methods("GET")
	r.HandleFunc("/admin/partners", parceiroHandler.Criar).Methods("POST")
	r.HandleFunc("/admin/partners", parceiroHandler.AtualizarStatus).Methods("PATCH")
	r.HandleFunc("/admin/partner-balances", parceiroHandler.Saldos).Methods("GET")
	r.HandleFunc("/admin/stats", parceiroHandler.EstatisticasGerais).Methods("GET")
	r.HandleFunc("/admin/sales", vendaHandler.Listar).Methods("GET")
	r.HandleFunc("/admin/payments", financeiroHandler.Listar).Methods("GET")
	r.HandleFunc("/admin/payments", financeiroHandler.Registrar).Methods("POST")

	// Rotas do parceiro
	r.HandleFunc("/partner", parceiroHandler.Listar).Methods("GET")
	r.HandleFunc("/partner", parceiroHandler.CriarDireto).Methods("POST")
	r.HandleFunc("/partner/stats", parceiroHandler.Estatisticas).Methods("GET")
	r.HandleFunc("/partner/clients", vendaHandler.ListarClientesDoParceiro).Methods("GET")
	r.HandleFunc("/partner/payments", pagamentoHandler.ListarDoParceiro).Methods("GET")

	// Rotas cruas
	r.HandleFunc("/clients", clienteHandler.Listar).Methods("GET")
	r.HandleFunc("/payments", pagamentoHandler.Listar).Methods("GET")
	r.HandleFunc("/payments", pagamentoHandler.Criar).Methods("POST")

	// CORS: o consumidor é o front-end do portal em outra origem
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	addr := ":" + cfg.Server.Port
	zapLog.Info("Servidor rodando", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
	if err := http.ListenAndServe(addr, c.Handler(r)); err != nil {
		zapLog.Fatal("Erro ao subir servidor", zap.Error(err))
	}
}
