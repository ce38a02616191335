// internal/simulacao/dto.go
package simulacao

// SimulacaoDTO é o corpo aceito em POST /simulacoes.
type SimulacaoDTO struct {
	Modalidade     string  `json:"modalidade"`
	Modo           string  `json:"modo"`
	HorizonteDias  int     `json:"horizonteDias"`
	ValorConhecido float64 `json:"valorConhecido"`
	AlvoLiquido    bool    `json:"alvoLiquido"`

	TaxaNominal float64 `json:"taxaNominal"`
	Benchmark   float64 `json:"benchmark"`
	Percentual  float64 `json:"percentual"`
	SpreadIPCA  float64 `json:"spreadIpca"`
}

// ParaRequest converte o DTO no pacote imutável consumido pelo motor.
func (d SimulacaoDTO) ParaRequest() SimulacaoRequest {
	modo := ModoNormal
	if d.Modo == string(ModoReverso) {
		modo = ModoReverso
	}
	return SimulacaoRequest{
		Modalidade:     Modalidade(d.Modalidade),
		Modo:           modo,
		HorizonteDias:  d.HorizonteDias,
		ValorConhecido: d.ValorConhecido,
		AlvoLiquido:    d.AlvoLiquido,
		Taxa: TaxaInput{
			TaxaNominal: d.TaxaNominal,
			Benchmark:   d.Benchmark,
			Percentual:  d.Percentual,
			SpreadIPCA:  d.SpreadIPCA,
		},
	}
}
