package simulacao

// TabelaIR identifica qual conjunto de faixas de alíquota uma modalidade usa.
type TabelaIR string

const (
	// TabelaRegressiva é a tabela oficial para renda fixa.
	TabelaRegressiva TabelaIR = "REGRESSIVA"
	// TabelaFundos cobre fundos DI e renda variável: 22,5% no curto prazo e
	// alíquota fixa de 15% acima de 180 dias.
	TabelaFundos TabelaIR = "FUNDOS"
)

// FaixaIR é uma faixa de alíquota por prazo de permanência.
// DiasMax é exclusivo; zero significa sem limite superior.
type FaixaIR struct {
	DiasMin  int
	DiasMax  int
	Aliquota float64
}

// As faixas de cada tabela são contíguas e cobrem [0, ∞), então a busca por
// prazo sempre encontra exatamente uma faixa.
var faixasPorTabela = map[TabelaIR][]FaixaIR{
	TabelaRegressiva: {
		{DiasMin: 0, DiasMax: 181, Aliquota: 0.225},
		{DiasMin: 181, DiasMax: 361, Aliquota: 0.20},
		{DiasMin: 361, DiasMax: 721, Aliquota: 0.175},
		{DiasMin: 721, Aliquota: 0.15},
	},
	TabelaFundos: {
		{DiasMin: 0, DiasMax: 181, Aliquota: 0.225},
		{DiasMin: 181, Aliquota: 0.15},
	},
}

// AliquotaPara devolve a alíquota de IR de uma modalidade para o prazo em
// dias. Modalidades isentas devolvem sempre zero.
func AliquotaPara(m Modalidade, dias int) float64 {
	attrs, ok := Catalogo[m]
	if !ok || attrs.IsentaIR {
		return 0
	}
	if dias < 0 {
		dias = 0
	}
	for _, faixa := range faixasPorTabela[attrs.TabelaIR] {
		if dias >= faixa.DiasMin && (faixa.DiasMax == 0 || dias < faixa.DiasMax) {
			return faixa.Aliquota
		}
	}
	// as faixas cobrem todo prazo não negativo
	return 0
}
