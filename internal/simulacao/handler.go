package simulacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
)

// Handler gerencia as rotas de simulação
type Handler struct{}

// NewHandler cria um novo Handler
func NewHandler() *Handler {
	return &Handler{}
}

// Simular trata POST /simulacoes
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto SimulacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ValorConhecido <= 0 {
		http.Error(w, "valorConhecido deve ser positivo", http.StatusBadRequest)
		return
	}

	resultado, err := Simular(dto.ParaRequest())
	if err != nil {
		ResponderErroMotor(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// ModalidadeListada é um item de GET /modalidades.
type ModalidadeListada struct {
	Codigo Modalidade `json:"codigo"`
	AtributosModalidade
}

// ListarModalidades trata GET /modalidades
func (h *Handler) ListarModalidades(w http.ResponseWriter, r *http.Request) {
	lista := make([]ModalidadeListada, 0, len(Catalogo))
	for codigo, attrs := range Catalogo {
		lista = append(lista, ModalidadeListada{Codigo: codigo, AtributosModalidade: attrs})
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].Codigo < lista[j].Codigo })

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// ResponderErroMotor traduz os erros do motor para códigos HTTP: entrada
// malformada vira 400, cenários numericamente impossíveis viram 422.
func ResponderErroMotor(w http.ResponseWriter, err error) {
	var (
		taxaInvalida *ErroTaxaInvalida
		horizonte    *ErroHorizonteInvalido
		estouro      *ErroEstouroNumerico
		degenerada   *ErroTaxaDegenerada
	)
	switch {
	case errors.Is(err, ErrModalidadeDesconhecida),
		errors.As(err, &taxaInvalida),
		errors.As(err, &horizonte):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &estouro), errors.As(err, &degenerada):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Erro ao simular investimento", http.StatusInternalServerError)
	}
}
