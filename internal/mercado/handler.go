package mercado

import (
	"encoding/json"
	"net/http"
)

// Handler gerencia as rotas de taxas de mercado
type Handler struct {
	Servico *Servico
}

// NewHandler cria um novo Handler
func NewHandler(servico *Servico) *Handler {
	return &Handler{Servico: servico}
}

// ListarTaxas trata GET /mercado/taxas
func (h *Handler) ListarTaxas(w http.ResponseWriter, r *http.Request) {
	taxas := h.Servico.ObterTaxas(r.Context(), false)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(taxas)
}

// Atualizar trata POST /mercado/taxas/atualizar (somente admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	taxas := h.Servico.ObterTaxas(r.Context(), true)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(taxas)
}
