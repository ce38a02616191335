package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/simulainvest/api-simulador/internal/projecao"
	"github.com/simulainvest/api-simulador/internal/simulacao"
)

// RelatorioDTO é o corpo aceito em POST /simulacoes/relatorio. A projeção é
// opcional e, quando presente, entra como evolução mensal no relatório.
type RelatorioDTO struct {
	Simulacao simulacao.SimulacaoDTO `json:"simulacao"`
	Projecao  *projecao.ProjecaoDTO  `json:"projecao,omitempty"`
}

// Handler gerencia a rota de relatório
type Handler struct{}

// NewHandler cria um novo Handler
func NewHandler() *Handler {
	return &Handler{}
}

// Gerar trata POST /simulacoes/relatorio
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto RelatorioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Simulacao.ValorConhecido <= 0 {
		http.Error(w, "valorConhecido deve ser positivo", http.StatusBadRequest)
		return
	}

	resultado, err := simulacao.Simular(dto.Simulacao.ParaRequest())
	if err != nil {
		simulacao.ResponderErroMotor(w, err)
		return
	}

	var proj *projecao.Projecao
	if dto.Projecao != nil {
		proj, err = projecao.Projetar(projecao.Parametros{
			Modalidade:   simulacao.Modalidade(dto.Projecao.Modalidade),
			ValorInicial: dto.Projecao.ValorInicial,
			AporteMensal: dto.Projecao.AporteMensal,
			Meta:         dto.Projecao.Meta,
			ConsiderarIR: dto.Projecao.ConsiderarIR,
			Taxa: simulacao.TaxaInput{
				TaxaNominal: dto.Projecao.TaxaNominal,
				Benchmark:   dto.Projecao.Benchmark,
				Percentual:  dto.Projecao.Percentual,
				SpreadIPCA:  dto.Projecao.SpreadIPCA,
			},
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(Gerar(resultado, proj, time.Now())))
}
