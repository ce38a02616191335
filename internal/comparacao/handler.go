package comparacao

import (
	"encoding/json"
	"net/http"

	"github.com/simulainvest/api-simulador/internal/simulacao"
)

// ComparacaoDTO é o corpo aceito em POST /comparacoes.
type ComparacaoDTO struct {
	Modalidades  []string `json:"modalidades"`
	ValorInicial float64  `json:"valorInicial"`
	AporteMensal float64  `json:"aporteMensal"`
	Meta         float64  `json:"meta"`
	ConsiderarIR bool     `json:"considerarIR"`

	BenchmarkCDI   float64 `json:"benchmarkCdi"`
	BenchmarkSelic float64 `json:"benchmarkSelic"`
	BenchmarkIPCA  float64 `json:"benchmarkIpca"`
	SpreadIPCA     float64 `json:"spreadIpca"`
}

// Handler gerencia as rotas de comparação
type Handler struct{}

// NewHandler cria um novo Handler
func NewHandler() *Handler {
	return &Handler{}
}

// Comparar trata POST /comparacoes
func (h *Handler) Comparar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto ComparacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	modalidades := make([]simulacao.Modalidade, 0, len(dto.Modalidades))
	for _, m := range dto.Modalidades {
		modalidades = append(modalidades, simulacao.Modalidade(m))
	}

	itens, err := Comparar(Pedido{
		Modalidades:    modalidades,
		ValorInicial:   dto.ValorInicial,
		AporteMensal:   dto.AporteMensal,
		Meta:           dto.Meta,
		ConsiderarIR:   dto.ConsiderarIR,
		BenchmarkCDI:   dto.BenchmarkCDI,
		BenchmarkSelic: dto.BenchmarkSelic,
		BenchmarkIPCA:  dto.BenchmarkIPCA,
		SpreadIPCA:     dto.SpreadIPCA,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(itens)
}
