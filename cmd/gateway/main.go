package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/burundanga/burundanga-api/internal/api/http"
	"github.com/burundanga/burundanga-api/internal/assessment"
	"github.com/burundanga/burundanga-api/internal/audit"
	auth "github.com/burundanga/burundanga-api/internal/auth/middleware"
	"github.com/burundanga/burundanga-api/internal/config"
	"github.com/burundanga/burundanga-api/internal/db"
	"github.com/burundanga/burundanga-api/internal/feedback"
	"github.com/burundanga/burundanga-api/internal/forum"
	"github.com/burundanga/burundanga-api/internal/rbac"
	"github.com/burundanga/burundanga-api/internal/session"
)

func main() {
	cfg := config.FromEnv()

	// Catalog integrity is a startup invariant, not a request-time concern.
	if err := assessment.Validate(); err != nil {
		log.Fatalf("catalog invalid: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	events := audit.NewEventRepo(dbh)
	posts := forum.NewSQLStore(dbh)
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	var gen feedback.Generator = feedback.Disabled{}
	if cfg.GeminiAPIKey != "" {
		g, err := feedback.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
		gen = g
	} else {
		log.Printf("GEMINI_API_KEY not set; feedback generation disabled")
	}
	sessions := session.NewManager(gen)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, err.Error(), 503)
			return
		}
		w.WriteHeader(200)
	})

	// Accounts
	r.Post("/auth/register", api.RegisterHandler(dbh, authSvc, events))
	r.Post("/auth/login", api.LoginHandler(dbh, authSvc))

	// Assessment catalog and sessions are anonymous: the wizard holds answers
	// and results in memory only, never tied to an account.
	r.Get("/tests", api.ListTestsHandler())
	r.Get("/tests/{testID}", api.GetTestHandler())

	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", api.CreateSessionHandler(sessions))
		sr.Get("/{sessionID}", api.GetSessionHandler(sessions))
		sr.Post("/{sessionID}/start", api.StartTestHandler(sessions))
		sr.Put("/{sessionID}/answers", api.SaveAnswerHandler(sessions))
		sr.Put("/{sessionID}/caregivers", api.SetCaregiversHandler(sessions))
		sr.Post("/{sessionID}/review", api.ReviewHandler(sessions))
		sr.Post("/{sessionID}/edit", api.EditHandler(sessions))
		sr.Post("/{sessionID}/submit", api.SubmitHandler(sessions, events))
		sr.Post("/{sessionID}/reset", api.ResetHandler(sessions))
	})

	// Forum reads are public; writes require a JWT, with the role refreshed
	// from the users table so promotions take effect without re-login.
	r.Get("/forum/posts", api.ListPostsHandler(posts))
	r.Get("/forum/posts/{postID}", api.GetPostHandler(posts))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Use(auth.AttachRoleFromDB(dbh))

		pr.Get("/auth/me", api.MeHandler(dbh))

		pr.With(rbac.Require("post:create")).
			Post("/forum/posts", api.CreatePostHandler(posts, events))
		pr.With(rbac.Require("post:upvote")).
			Post("/forum/posts/{postID}/upvote", api.UpvotePostHandler(posts))
		pr.With(rbac.RequireAny("post:delete-own", "post:delete-any")).
			Delete("/forum/posts/{postID}", api.DeletePostHandler(posts, events))
		pr.With(rbac.Require("post:pin")).
			Patch("/forum/posts/{postID}/pin", api.PinPostHandler(posts, events))

		pr.With(rbac.Require("reply:create")).
			Post("/forum/posts/{postID}/replies", api.CreateReplyHandler(posts, events))
		pr.With(rbac.Require("reply:upvote")).
			Post("/forum/replies/{replyID}/upvote", api.UpvoteReplyHandler(posts))
		pr.With(rbac.RequireAny("reply:delete-own", "reply:delete-any")).
			Delete("/forum/replies/{replyID}", api.DeleteReplyHandler(posts, events))

		pr.With(rbac.Require("events:list")).
			Get("/admin/events", api.ListEventsHandler(events))
	})

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
