package mercado

import (
	"time"

	"gorm.io/gorm"
)

// Séries do SGS do Banco Central usadas como benchmark.
const (
	SerieSelic   = 432
	SerieCDI     = 4389
	SerieIPCA12M = 13522
)

// TaxaReferencia é o cache persistido de uma série de benchmark do Banco
// Central. O valor é o percentual anual como publicado (12.75 = 12,75% a.a.).
type TaxaReferencia struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Serie          int            `gorm:"not null;uniqueIndex" json:"serie"`
	Nome           string         `gorm:"size:50;not null" json:"nome"`
	ValorAnual     float64        `gorm:"not null" json:"valorAnual"`
	DataReferencia string         `gorm:"size:20" json:"dataReferencia"`
	AtualizadoEm   time.Time      `json:"atualizadoEm"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Valores padrão usados quando a API do BC está fora e não há cache.
var padroes = map[int]TaxaReferencia{
	SerieSelic:   {Serie: SerieSelic, Nome: "Selic", ValorAnual: 12.75},
	SerieCDI:     {Serie: SerieCDI, Nome: "CDI", ValorAnual: 12.65},
	SerieIPCA12M: {Serie: SerieIPCA12M, Nome: "IPCA 12m", ValorAnual: 4.50},
}

// Migrate cria a tabela de cache no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TaxaReferencia{})
}
