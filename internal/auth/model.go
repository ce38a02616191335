package auth

import (
	"log"
	"os"
	"time"

	"github.com/simulainvest/api-simulador/internal/utils"
	"gorm.io/gorm"
)

// Usuario é a conta que pode forçar a atualização das taxas de mercado.
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Senha     string         `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool           `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela de usuários no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}

// SeedAdmin garante o usuário administrador definido por ADMIN_EMAIL e
// ADMIN_SENHA. Sem as variáveis, nenhum usuário é criado.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	senha := os.Getenv("ADMIN_SENHA")
	if email == "" || senha == "" {
		log.Println("ADMIN_EMAIL/ADMIN_SENHA não definidas; nenhum admin criado")
		return nil
	}

	var existente Usuario
	err := db.Where("email = ?", email).First(&existente).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		return err
	}
	return db.Create(&Usuario{Email: email, Senha: hash, IsAdmin: true}).Error
}
