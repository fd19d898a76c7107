package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cstortz/developer-artifacts/internal/hasher"
	"github.com/cstortz/developer-artifacts/internal/session"
	"github.com/cstortz/developer-artifacts/internal/user"
	"github.com/cstortz/developer-artifacts/pkg/apperrors"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

func (s *Server) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.New("invalid JSON body", http.StatusBadRequest, nil)
	}
	if err := s.validate.Struct(dst); err != nil {
		return apperrors.Validation("validation failed", validationDetails(err))
	}
	return nil
}

func validationDetails(err error) map[string]interface{} {
	details := map[string]interface{}{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			details[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return details
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	hash, err := hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("hashing password: %v", err)
		writeError(w, apperrors.Processing("could not create user"))
		return
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(r.Context(), u); err != nil {
		if errors.Is(err, user.ErrExists) {
			writeError(w, apperrors.New("user already exists", http.StatusConflict, nil))
			return
		}
		s.log.Error("creating user: %v", err)
		writeError(w, apperrors.Processing("could not create user"))
		return
	}

	writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Message: "user registered",
		Data:    map[string]string{"id": u.ID, "email": u.Email},
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	u, err := s.users.ByEmail(r.Context(), req.Email)
	if err != nil {
		// Same answer for unknown user and wrong password.
		writeError(w, apperrors.Authentication("invalid email or password"))
		return
	}

	if err := hasher.Compare(u.PasswordHash, req.Password); err != nil {
		writeError(w, apperrors.Authentication("invalid email or password"))
		return
	}

	pair, err := s.issueTokens(r, u.Email)
	if err != nil {
		s.log.Error("issuing tokens: %v", err)
		writeError(w, apperrors.Processing("could not issue tokens"))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "login successful",
		Data:    pair,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := s.sessions.Get(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, apperrors.Authentication("refresh token not found or revoked"))
		return
	}

	claims, err := s.tokens.Parse(req.RefreshToken)
	if err != nil {
		_ = s.sessions.Delete(r.Context(), req.RefreshToken)
		writeError(w, apperrors.Authentication("refresh token is invalid"))
		return
	}
	if claims.Email != sess.Email {
		_ = s.sessions.Delete(r.Context(), req.RefreshToken)
		writeError(w, apperrors.Authentication("refresh token is invalid"))
		return
	}

	// Rotation: the presented token is revoked before a new pair is issued.
	_ = s.sessions.Delete(r.Context(), req.RefreshToken)

	pair, err := s.issueTokens(r, sess.Email)
	if err != nil {
		s.log.Error("issuing tokens: %v", err)
		writeError(w, apperrors.Processing("could not issue tokens"))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "tokens refreshed",
		Data:    pair,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.sessions.Delete(r.Context(), req.RefreshToken); err != nil {
		writeError(w, apperrors.Authentication("refresh token not found or already revoked"))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "logged out",
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	email, err := s.bearerEmail(r)
	if err != nil {
		writeError(w, err)
		return
	}

	u, err := s.users.ByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeError(w, apperrors.NotFound("user not found"))
			return
		}
		s.log.Error("loading user: %v", err)
		writeError(w, apperrors.Processing("could not load user"))
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"created_at": u.CreatedAt,
		},
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]string{"status": "ok"},
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]string{
			"name":    s.cfg.APP.Name,
			"version": s.version,
			"env":     s.cfg.APP.Env,
		},
	})
}

func (s *Server) issueTokens(r *http.Request, email string) (tokenPair, error) {
	access, err := s.tokens.Access(email)
	if err != nil {
		return tokenPair{}, err
	}
	refresh, err := s.tokens.Refresh(email)
	if err != nil {
		return tokenPair{}, err
	}

	if err := s.sessions.Save(r.Context(), session.Session{
		Email:        email,
		RefreshToken: refresh,
		ExpiresAt:    s.tokens.RefreshExpiry(),
	}); err != nil {
		return tokenPair{}, err
	}

	return tokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(s.tokens.AccessTTL().Seconds()),
	}, nil
}

func (s *Server) bearerEmail(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.Authentication("missing Authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", apperrors.Authentication("malformed Authorization header")
	}

	claims, err := s.tokens.Parse(parts[1])
	if err != nil {
		return "", apperrors.Authentication("access token is invalid")
	}
	return claims.Email, nil
}
