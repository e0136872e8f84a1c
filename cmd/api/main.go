package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/Minggyul/mbti-chat/internal/ai"
	"github.com/Minggyul/mbti-chat/internal/chat"
	"github.com/Minggyul/mbti-chat/internal/config"
	"github.com/Minggyul/mbti-chat/internal/db"
	"github.com/Minggyul/mbti-chat/internal/session"
	"github.com/Minggyul/mbti-chat/internal/store"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	if err := db.Init(database); err != nil {
		log.Fatal("❌ Failed to init DB schema:", err)
	}

	log.Println("✅ Connected to PostgreSQL!")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	client := ai.New(cfg.OpenAIKey, cfg.OpenAIModel)
	engine := chat.NewEngine(client, client)

	handler := chat.NewHandler(
		engine,
		store.NewConversationStore(database),
		store.NewCache(rdb),
		session.NewManager([]byte(cfg.SessionSecret)),
		database,
		cfg.MinMessages,
	)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- CHAT API -----
	mux.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handler.Chat(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handler.Session(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handler.Reset(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	log.Println("🚀 API server is running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, c.Handler(mux)))
}
