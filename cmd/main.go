package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/simulainvest/api-simulador/internal/auth"
	"github.com/simulainvest/api-simulador/internal/comparacao"
	"github.com/simulainvest/api-simulador/internal/mercado"
	"github.com/simulainvest/api-simulador/internal/projecao"
	"github.com/simulainvest/api-simulador/internal/relatorio"
	"github.com/simulainvest/api-simulador/internal/simulacao"
	"github.com/simulainvest/api-simulador/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := mercado.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := auth.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	if err := auth.SeedAdmin(database); err != nil {
		log.Fatal("Erro ao criar usuário admin:", err)
	}

	// Handlers
	simulacaoHandler := simulacao.NewHandler()
	projecaoHandler := projecao.NewHandler()
	comparacaoHandler := comparacao.NewHandler()
	relatorioHandler := relatorio.NewHandler()

	cliente := mercado.NewCliente(&http.Client{Timeout: 10 * time.Second})
	servico := mercado.NewServico(mercado.NewRepository(database), cliente)
	mercadoHandler := mercado.NewHandler(servico)

	// Router
	r := mux.NewRouter()

	// Rotas de simulação
	r.HandleFunc("/simulacoes", simulacaoHandler.Simular).Methods("POST")
	r.HandleFunc("/modalidades", simulacaoHandler.ListarModalidades).Methods("GET")
	r.HandleFunc("/simulacoes/relatorio", relatorioHandler.Gerar).Methods("POST")

	// Rotas de projeção e comparação
	r.HandleFunc("/projecoes", projecaoHandler.Projetar).Methods("POST")
	r.HandleFunc("/comparacoes", comparacaoHandler.Comparar).Methods("POST")

	// Rotas de taxas de mercado
	r.HandleFunc("/mercado/taxas", mercadoHandler.ListarTaxas).Methods("GET")
	r.Handle("/mercado/taxas/atualizar",
		auth.MiddlewareAutenticacao(auth.RequireAdmin(http.HandlerFunc(mercadoHandler.Atualizar)))).Methods("POST")

	// Autenticação
	r.HandleFunc("/login", auth.LoginHandler(database)).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
