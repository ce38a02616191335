// Package projecao projeta mês a mês a evolução de um investimento com
// aportes mensais até atingir uma meta de patrimônio.
package projecao

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/simulainvest/api-simulador/internal/simulacao"
)

// Projeções param no limite mesmo que a meta não tenha sido atingida.
const LimiteMeses = 600

// Parametros descreve uma projeção com aportes.
type Parametros struct {
	Modalidade   simulacao.Modalidade
	Taxa         simulacao.TaxaInput
	ValorInicial float64
	AporteMensal float64
	Meta         float64
	ConsiderarIR bool
}

// LinhaMensal é uma linha do extrato projetado.
type LinhaMensal struct {
	Mes        int             `json:"mes"`
	Saldo      decimal.Decimal `json:"saldo"`
	Rendimento decimal.Decimal `json:"rendimento"`
	IR         decimal.Decimal `json:"ir"`
	Aporte     decimal.Decimal `json:"aporte"`
}

// Projecao é o resultado completo de uma projeção.
type Projecao struct {
	Modalidade      simulacao.Modalidade `json:"modalidade"`
	TaxaMensal      float64              `json:"taxaMensal"`
	Meses           int                  `json:"meses"`
	MetaAtingida    bool                 `json:"metaAtingida"`
	ValorFinal      decimal.Decimal      `json:"valorFinal"`
	TotalInvestido  decimal.Decimal      `json:"totalInvestido"`
	TotalRendimento decimal.Decimal      `json:"totalRendimento"`
	TotalIR         decimal.Decimal      `json:"totalIR"`
	Linhas          []LinhaMensal        `json:"linhas"`
}

// Projetar evolui o saldo mês a mês: rendimento pela taxa mensal, IR pela
// tabela da modalidade sobre os dias já decorridos, e então o aporte.
func Projetar(p Parametros) (*Projecao, error) {
	if p.ValorInicial <= 0 {
		return nil, fmt.Errorf("valor inicial deve ser positivo")
	}
	if p.AporteMensal < 0 {
		return nil, fmt.Errorf("aporte mensal não pode ser negativo")
	}
	if p.Meta <= p.ValorInicial {
		return nil, fmt.Errorf("meta deve ser maior que o valor inicial")
	}

	taxaAnual, err := simulacao.NormalizarTaxa(p.Modalidade, p.Taxa)
	if err != nil {
		return nil, err
	}
	taxaMensal := math.Pow(1+taxaAnual, 1.0/12) - 1

	attrs := simulacao.Catalogo[p.Modalidade]
	cobraIR := p.ConsiderarIR && !attrs.IsentaIR

	proj := &Projecao{Modalidade: p.Modalidade, TaxaMensal: taxaMensal}
	saldo := p.ValorInicial
	var totalRendimento, totalIR float64

	for mes := 1; saldo < p.Meta && mes <= LimiteMeses; mes++ {
		rendimento := saldo * taxaMensal
		var ir float64
		if cobraIR && rendimento > 0 {
			ir = rendimento * simulacao.AliquotaPara(p.Modalidade, (mes-1)*30)
		}
		saldo += rendimento - ir + p.AporteMensal
		totalRendimento += rendimento
		totalIR += ir

		proj.Meses = mes
		proj.Linhas = append(proj.Linhas, LinhaMensal{
			Mes:        mes,
			Saldo:      simulacao.Centavos(saldo),
			Rendimento: simulacao.Centavos(rendimento),
			IR:         simulacao.Centavos(ir),
			Aporte:     simulacao.Centavos(p.AporteMensal),
		})
	}

	proj.MetaAtingida = saldo >= p.Meta
	proj.ValorFinal = simulacao.Centavos(saldo)
	proj.TotalInvestido = simulacao.Centavos(p.ValorInicial + p.AporteMensal*float64(proj.Meses))
	proj.TotalRendimento = simulacao.Centavos(totalRendimento)
	proj.TotalIR = simulacao.Centavos(totalIR)
	return proj, nil
}
