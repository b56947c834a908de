package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/willjrcristo/boardcamp-api/docs" // Importa a pasta docs gerada

	// Nossos pacotes internos da aplicação!
	"github.com/willjrcristo/boardcamp-api/internal/config"
	httphandler "github.com/willjrcristo/boardcamp-api/internal/handler/http"
	"github.com/willjrcristo/boardcamp-api/internal/repository"
	"github.com/willjrcristo/boardcamp-api/internal/service"
)

// @title           Boardcamp API
// @version         1.0
// @description     API de uma locadora de jogos de tabuleiro: categorias, jogos, clientes e aluguéis.
//
// @contact.name   Will Cristo
// @contact.url    https://linkedin.com/in/willjrcristo
// @contact.email  willjrcristo@gmail.com
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:4000
// @BasePath  /
func main() {
	// --- 1. LOGGER E CONFIGURAÇÃO ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	slog.Info("🚀 Iniciando a Boardcamp API...")

	// O .env é opcional; em produção as variáveis vêm do ambiente.
	if err := godotenv.Load(); err == nil {
		slog.Info("Variáveis carregadas do .env")
	}
	cfg := config.Load()

	// --- 2. BANCO DE DADOS E MIGRAÇÕES ---
	db, err := repository.OpenDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Erro ao inicializar o banco de dados", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("💾 Banco de dados pronto", "path", cfg.DatabasePath)

	// --- 3. INJEÇÃO DE DEPENDÊNCIAS (WIRING) ---
	// DB -> Repositories -> Services -> Handlers
	categoryRepo := repository.NewCategoryRepository(db)
	gameRepo := repository.NewGameRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	rentalRepo := repository.NewRentalRepository(db)

	categoryService := service.NewCategoryService(categoryRepo)
	gameService := service.NewGameService(gameRepo, categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	rentalService := service.NewRentalService(db, rentalRepo, gameRepo, customerRepo)

	categoryHandler := httphandler.NewCategoryHandler(categoryService)
	gameHandler := httphandler.NewGameHandler(gameService)
	customerHandler := httphandler.NewCustomerHandler(customerService)
	rentalHandler := httphandler.NewRentalHandler(rentalService)

	// --- 4. ROTEADOR E ROTAS ---
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(prometheusMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Boardcamp API está no ar! 🎲"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/categories", categoryHandler.Routes())
	r.Mount("/games", gameHandler.Routes())
	r.Mount("/customers", customerHandler.Routes())
	r.Mount("/rentals", rentalHandler.Routes())
	slog.Info("🛰️  Rotas registradas", "entidades", "categories, games, customers, rentals")

	// --- 5. SERVIDOR HTTP COM SHUTDOWN GRACIOSO ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("✅ Servidor pronto para receber requisições", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Erro ao iniciar o servidor", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Encerrando o servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Erro no shutdown do servidor", "error", err)
	}
	slog.Info("Servidor encerrado")
}
