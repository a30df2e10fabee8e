package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/burundanga/burundanga-api/internal/audit"
	auth "github.com/burundanga/burundanga-api/internal/auth/middleware"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
}

// RegisterHandler creates a member account. New users always get the member
// role; moderators and admins are promoted out of band.
func RegisterHandler(db *sql.DB, svc *auth.AuthService, events *audit.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
			http.Error(w, "username, email and a password of at least 8 characters required", 400)
			return
		}

		var exists int
		err := db.QueryRowContext(r.Context(),
			`SELECT 1 FROM users WHERE username=$1 OR email=$2`, req.Username, req.Email).Scan(&exists)
		if err == nil {
			http.Error(w, "username or email already taken", 409)
			return
		} else if !errors.Is(err, sql.ErrNoRows) {
			http.Error(w, err.Error(), 500)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		id := uuid.NewString()
		avatar := "https://api.dicebear.com/7.x/identicon/svg?seed=" + url.QueryEscape(req.Username)
		_, err = db.ExecContext(r.Context(),
			`INSERT INTO users (id, username, email, password_hash, role, avatar_url, created_at)
			 VALUES ($1,$2,$3,$4,'member',$5,$6)`,
			id, req.Username, req.Email, string(hash), avatar, time.Now().Unix())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), audit.TypeUserRegistered, id,
				map[string]any{"username": req.Username})
		}

		writeAuthResponse(w, svc, id, req.Username, req.Email, "member", avatar, 201)
	}
}

// LoginHandler checks credentials and issues a JWT. Username or email works
// as the login identifier.
func LoginHandler(db *sql.DB, svc *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Login    string `json:"login"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		var (
			id, username, email, hash, role string
			avatar                          sql.NullString
		)
		err := db.QueryRowContext(r.Context(),
			`SELECT id, username, email, password_hash, role, avatar_url
			   FROM users WHERE username=$1 OR email=$1`, strings.TrimSpace(req.Login)).
			Scan(&id, &username, &email, &hash, &role, &avatar)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "invalid credentials", 401)
			return
		} else if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			http.Error(w, "invalid credentials", 401)
			return
		}
		writeAuthResponse(w, svc, id, username, email, role, avatar.String, 200)
	}
}

// MeHandler returns the authenticated user's profile row.
func MeHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := auth.SubjectFromContext(r.Context())
		if sub == "" {
			http.Error(w, "unauthenticated", 401)
			return
		}
		var (
			id, username, email, role string
			avatar                    sql.NullString
		)
		err := db.QueryRowContext(r.Context(),
			`SELECT id, username, email, role, avatar_url FROM users WHERE id=$1`, sub).
			Scan(&id, &username, &email, &role, &avatar)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "user not found", 404)
			return
		} else if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": id, "username": username, "email": email, "role": role, "avatar_url": avatar.String,
		})
	}
}

func writeAuthResponse(w http.ResponseWriter, svc *auth.AuthService, id, username, email, role, avatar string, status int) {
	token, err := svc.IssueJWT(id, role)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	var resp authResponse
	resp.Token = token
	resp.User.ID = id
	resp.User.Username = username
	resp.User.Email = email
	resp.User.Role = role
	resp.User.AvatarURL = avatar
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
