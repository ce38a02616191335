package simulacao

import "math"

// TaxaInput carrega os valores numéricos já validados pela camada externa.
// Taxas são frações anuais (0.10 = 10% a.a.); Percentual é o multiplicador
// sobre o benchmark em pontos percentuais (110 = 110% do CDI).
type TaxaInput struct {
	TaxaNominal float64 `json:"taxaNominal"`
	Benchmark   float64 `json:"benchmark"`
	Percentual  float64 `json:"percentual"`
	SpreadIPCA  float64 `json:"spreadIpca"`
}

// Regra da poupança: com Selic acima do teto o rendimento é fixado em
// 0,5% ao mês (+TR, aqui tratada como zero); no teto ou abaixo, 70% da Selic.
const (
	tetoSelicPoupanca        = 0.085
	rendimentoMensalPoupanca = 0.005
)

// NormalizarTaxa converte a entrada nominal de uma modalidade na taxa efetiva
// anual usada pela capitalização. Função pura: benchmarks chegam prontos na
// entrada, nunca são buscados aqui.
func NormalizarTaxa(m Modalidade, in TaxaInput) (float64, error) {
	attrs, ok := Catalogo[m]
	if !ok {
		return 0, ErrModalidadeDesconhecida
	}

	if attrs.RegraPoupanca {
		if in.Benchmark < -1 {
			return 0, &ErroTaxaInvalida{Campo: "benchmark", Valor: in.Benchmark}
		}
		if in.Benchmark <= tetoSelicPoupanca {
			return 0.70 * in.Benchmark, nil
		}
		return math.Pow(1+rendimentoMensalPoupanca, 12) - 1, nil
	}

	switch attrs.Convencao {
	case PreFixada:
		if in.TaxaNominal < -1 {
			return 0, &ErroTaxaInvalida{Campo: "taxaNominal", Valor: in.TaxaNominal}
		}
		return in.TaxaNominal, nil

	case AtreladaCDI, AtreladaSelic:
		if in.Benchmark < -1 {
			return 0, &ErroTaxaInvalida{Campo: "benchmark", Valor: in.Benchmark}
		}
		if in.Percentual <= 0 {
			return 0, &ErroTaxaInvalida{Campo: "percentual", Valor: in.Percentual}
		}
		return in.Benchmark * (in.Percentual / 100), nil

	case AtreladaIPCA:
		if in.Benchmark < -1 {
			return 0, &ErroTaxaInvalida{Campo: "benchmark", Valor: in.Benchmark}
		}
		if in.SpreadIPCA < -1 {
			return 0, &ErroTaxaInvalida{Campo: "spreadIpca", Valor: in.SpreadIPCA}
		}
		// convenção aditiva sobre a inflação: (1+IPCA)×(1+spread)−1
		return (1+in.Benchmark)*(1+in.SpreadIPCA) - 1, nil
	}

	return 0, ErrModalidadeDesconhecida
}
