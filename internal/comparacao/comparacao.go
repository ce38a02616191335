// Package comparacao roda o mesmo cenário de investimento em várias
// modalidades e ordena pelo tempo até a meta.
package comparacao

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simulainvest/api-simulador/internal/projecao"
	"github.com/simulainvest/api-simulador/internal/simulacao"
)

// Pedido descreve uma comparação. Benchmarks valem para todas as modalidades;
// o percentual sobre o benchmark vem do catálogo de cada uma.
type Pedido struct {
	Modalidades  []simulacao.Modalidade
	ValorInicial float64
	AporteMensal float64
	Meta         float64
	ConsiderarIR bool

	BenchmarkCDI   float64
	BenchmarkSelic float64
	BenchmarkIPCA  float64
	SpreadIPCA     float64
}

// ItemComparativo é o desempenho de uma modalidade no cenário comparado.
type ItemComparativo struct {
	Modalidade   simulacao.Modalidade `json:"modalidade"`
	Nome         string               `json:"nome"`
	Risco        string               `json:"risco"`
	Meses        int                  `json:"meses"`
	MetaAtingida bool                 `json:"metaAtingida"`
	ValorFinal   decimal.Decimal      `json:"valorFinal"`
	TotalIR      decimal.Decimal      `json:"totalIR"`
}

// Espelha o comparativo rápido original: poupança, CDB, título público,
// letra isenta e renda variável.
var ModalidadesPadrao = []simulacao.Modalidade{
	simulacao.ModalidadePoupanca,
	simulacao.ModalidadeCDI,
	simulacao.ModalidadeTesouroSelic,
	simulacao.ModalidadeLCI,
	simulacao.ModalidadeRendaVariavel,
}

// Comparar projeta cada modalidade pedida e ordena da que atinge a meta mais
// cedo para a mais lenta; empates vão para o maior valor final.
func Comparar(p Pedido) ([]ItemComparativo, error) {
	modalidades := p.Modalidades
	if len(modalidades) == 0 {
		modalidades = ModalidadesPadrao
	}

	itens := make([]ItemComparativo, 0, len(modalidades))
	for _, m := range modalidades {
		attrs, ok := simulacao.Catalogo[m]
		if !ok {
			return nil, simulacao.ErrModalidadeDesconhecida
		}

		proj, err := projecao.Projetar(projecao.Parametros{
			Modalidade:   m,
			Taxa:         taxaPara(attrs, p),
			ValorInicial: p.ValorInicial,
			AporteMensal: p.AporteMensal,
			Meta:         p.Meta,
			ConsiderarIR: p.ConsiderarIR,
		})
		if err != nil {
			return nil, err
		}

		itens = append(itens, ItemComparativo{
			Modalidade:   m,
			Nome:         attrs.Nome,
			Risco:        attrs.Risco,
			Meses:        proj.Meses,
			MetaAtingida: proj.MetaAtingida,
			ValorFinal:   proj.ValorFinal,
			TotalIR:      proj.TotalIR,
		})
	}

	sort.Slice(itens, func(i, j int) bool {
		if itens[i].MetaAtingida != itens[j].MetaAtingida {
			return itens[i].MetaAtingida
		}
		if itens[i].Meses != itens[j].Meses {
			return itens[i].Meses < itens[j].Meses
		}
		return itens[i].ValorFinal.GreaterThan(itens[j].ValorFinal)
	})
	return itens, nil
}

func taxaPara(attrs simulacao.AtributosModalidade, p Pedido) simulacao.TaxaInput {
	taxa := simulacao.TaxaInput{Percentual: attrs.PercentualPadrao}
	switch attrs.Convencao {
	case simulacao.AtreladaSelic:
		taxa.Benchmark = p.BenchmarkSelic
	case simulacao.AtreladaIPCA:
		taxa.Benchmark = p.BenchmarkIPCA
		taxa.SpreadIPCA = p.SpreadIPCA
	case simulacao.PreFixada:
		taxa.TaxaNominal = p.BenchmarkCDI
	default:
		taxa.Benchmark = p.BenchmarkCDI
	}
	return taxa
}
