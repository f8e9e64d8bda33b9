package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/notevault/notevault/internal/auth"
	"github.com/notevault/notevault/internal/models"
	"github.com/notevault/notevault/internal/store"
)

type createAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func CreateAccountHandler(st store.Store, jwtService *auth.JWTService, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "All fields required")
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "All fields required")
			return
		}

		_, err := st.UserByEmail(req.Email)
		if err == nil {
			respondError(w, http.StatusBadRequest, "Email already exists")
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			logger.WithError(err).Error("user lookup failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.WithError(err).Error("password hashing failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		user := &models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hashed),
		}
		if err := st.CreateUser(user); err != nil {
			// The UNIQUE constraint on email closes the race between
			// the existence check above and this insert.
			if errors.Is(err, store.ErrDuplicateEmail) {
				respondError(w, http.StatusBadRequest, "Email already exists")
				return
			}
			logger.WithError(err).Error("user creation failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		token, err := jwtService.GenerateToken(user.ID)
		if err != nil {
			logger.WithError(err).Error("token generation failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusCreated, envelope{
			"error":   false,
			"user":    user,
			"token":   token,
			"message": "Account created successfully",
		})
	}
}

func LoginHandler(st store.Store, jwtService *auth.JWTService, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Email and password are required")
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, err := st.UserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusBadRequest, "User not found")
				return
			}
			logger.WithError(err).Error("user lookup failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid Credentials")
			return
		}

		token, err := jwtService.GenerateToken(user.ID)
		if err != nil {
			logger.WithError(err).Error("token generation failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":       false,
			"email":       user.Email,
			"accessToken": token,
			"message":     "Login Successful",
		})
	}
}

func GetUserHandler(st store.Store, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		user, err := st.UserByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusUnauthorized, "User not found")
				return
			}
			logger.WithError(err).Error("user lookup failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"user":    user,
			"message": "User info retrieved successfully",
		})
	}
}
