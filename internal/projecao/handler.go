package projecao

import (
	"encoding/json"
	"net/http"

	"github.com/simulainvest/api-simulador/internal/simulacao"
)

// ProjecaoDTO é o corpo aceito em POST /projecoes.
type ProjecaoDTO struct {
	Modalidade   string  `json:"modalidade"`
	ValorInicial float64 `json:"valorInicial"`
	AporteMensal float64 `json:"aporteMensal"`
	Meta         float64 `json:"meta"`
	ConsiderarIR bool    `json:"considerarIR"`

	TaxaNominal float64 `json:"taxaNominal"`
	Benchmark   float64 `json:"benchmark"`
	Percentual  float64 `json:"percentual"`
	SpreadIPCA  float64 `json:"spreadIpca"`
}

// Handler gerencia as rotas de projeção
type Handler struct{}

// NewHandler cria um novo Handler
func NewHandler() *Handler {
	return &Handler{}
}

// Projetar trata POST /projecoes
func (h *Handler) Projetar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto ProjecaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	proj, err := Projetar(Parametros{
		Modalidade:   simulacao.Modalidade(dto.Modalidade),
		ValorInicial: dto.ValorInicial,
		AporteMensal: dto.AporteMensal,
		Meta:         dto.Meta,
		ConsiderarIR: dto.ConsiderarIR,
		Taxa: simulacao.TaxaInput{
			TaxaNominal: dto.TaxaNominal,
			Benchmark:   dto.Benchmark,
			Percentual:  dto.Percentual,
			SpreadIPCA:  dto.SpreadIPCA,
		},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(proj)
}
