package auth

import (
	"encoding/json"
	"net/http"

	"github.com/simulainvest/api-simulador/internal/utils"
	"gorm.io/gorm"
)

// LoginHandler trata POST /login e devolve um JWT
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON mal formado", http.StatusBadRequest)
			return
		}

		var user Usuario
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}
		if !utils.CheckSenha(user.Senha, req.Senha) {
			http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(user.ID, user.IsAdmin)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}
}
