package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/sashakosti/snowstorm-bot/internal/config"
	"github.com/sashakosti/snowstorm-bot/internal/service"
	"github.com/sashakosti/snowstorm-bot/internal/storage"
	"github.com/sashakosti/snowstorm-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system variables")
	}

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := storage.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	if err := store.Ping(); err != nil {
		log.Fatalf("cannot ping DB: %v", err)
	}
	log.Println("✅ Connected to Postgres")

	svc := service.New(store, cfg.StartPoints, cfg.MaxEquip)

	bot, err := telegram.NewBot(cfg, svc)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	// Мелкий HTTP-эндпоинт для проверок аптайма на бесплатных хостингах.
	go func() {
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})
		if err := http.ListenAndServe(":"+cfg.HTTPPort, nil); err != nil {
			log.Printf("http server stopped: %v", err)
		}
	}()

	bot.Start()
}
