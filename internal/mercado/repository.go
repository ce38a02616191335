// internal/mercado/repository.go
package mercado

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para TaxaReferencia
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorSerie retorna o cache de uma série, se existir
func (r *Repository) BuscarPorSerie(serie int) (*TaxaReferencia, error) {
	var taxa TaxaReferencia
	if err := r.DB.Where("serie = ?", serie).First(&taxa).Error; err != nil {
		return nil, err
	}
	return &taxa, nil
}

// Salvar grava ou atualiza o cache de uma série
func (r *Repository) Salvar(serie int, nome string, valor float64, dataRef string) (*TaxaReferencia, error) {
	var taxa TaxaReferencia
	err := r.DB.Where("serie = ?", serie).First(&taxa).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	taxa.Serie = serie
	taxa.Nome = nome
	taxa.ValorAnual = valor
	taxa.DataReferencia = dataRef
	taxa.AtualizadoEm = time.Now()

	if err := r.DB.Save(&taxa).Error; err != nil {
		return nil, err
	}
	return &taxa, nil
}
