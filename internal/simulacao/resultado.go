package simulacao

import "github.com/shopspring/decimal"

// ResultadoSimulacao é a saída imutável de uma simulação. Valores monetários
// são arredondados para centavos com arredondamento bancário (meio para par),
// evitando viés sistemático em simulações repetidas.
type ResultadoSimulacao struct {
	Modalidade        Modalidade      `json:"modalidade"`
	Modo              Modo            `json:"modo"`
	HorizonteDias     int             `json:"horizonteDias"`
	TaxaEfetivaAnual  float64         `json:"taxaEfetivaAnual"`
	AliquotaIR        float64         `json:"aliquotaIR"`
	Principal         decimal.Decimal `json:"principal"`
	RendimentoBruto   decimal.Decimal `json:"rendimentoBruto"`
	ValorIR           decimal.Decimal `json:"valorIR"`
	RendimentoLiquido decimal.Decimal `json:"rendimentoLiquido"`
	ValorFinal        decimal.Decimal `json:"valorFinal"`
}

// montarResultado é montagem pura de dados: nenhuma conta além da
// normalização para centavos.
func montarResultado(req SimulacaoRequest, c calculo) *ResultadoSimulacao {
	return &ResultadoSimulacao{
		Modalidade:        req.Modalidade,
		Modo:              req.Modo,
		HorizonteDias:     req.HorizonteDias,
		TaxaEfetivaAnual:  c.taxaEfetiva,
		AliquotaIR:        c.aliquota,
		Principal:         Centavos(c.principal),
		RendimentoBruto:   Centavos(c.bruto),
		ValorIR:           Centavos(c.ir),
		RendimentoLiquido: Centavos(c.liquido),
		ValorFinal:        Centavos(c.principal + c.bruto),
	}
}

// Centavos arredonda um valor monetário para duas casas com meio para par.
func Centavos(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).RoundBank(2)
}
