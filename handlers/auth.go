// handlers/auth.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhun5568/Project-Aegis/config"
	"github.com/jhun5568/Project-Aegis/middleware"
	"github.com/jhun5568/Project-Aegis/models"
)

type registerReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	TenantCode string `json:"tenantCode"`
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var tenant models.Tenant
	if err := config.DB.Where("code = ? AND is_active = ?", req.TenantCode, true).First(&tenant).Error; err != nil {
		http.Error(w, "unknown tenant", http.StatusBadRequest)
		return
	}

	// hash pw
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	role := req.Role
	if role == "" {
		role = "staff"
	}
	u := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		TenantID:     tenant.ID,
		IsActive:     true,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "email or phone already taken", http.StatusConflict)
		} else {
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Tenant string `json:"tenant"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := config.DB.Preload("Tenant").Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := middleware.GenerateToken(user.ID.String(), user.Role, user.Name, user.TenantID.String())
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	tenantCode := ""
	if user.Tenant != nil {
		tenantCode = user.Tenant.Code
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(loginResp{
		Token: token,
		User: userPayload{
			ID:     user.ID.String(),
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Tenant: tenantCode,
		},
	})
}

// GetCurrentUser returns the profile for a valid bearer token. It sits on
// the public router, so the token is parsed here rather than by middleware.
func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ParseBearerToken(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := config.DB.Preload("Tenant").
		Where("id = ? AND is_active = ?", claims.UserID, true).
		First(&user).Error; err != nil {
		http.Error(w, "user not found or inactive", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
