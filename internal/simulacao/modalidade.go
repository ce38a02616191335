package simulacao

// Convencao indica como a taxa nominal de uma modalidade é indexada.
type Convencao string

const (
	PreFixada     Convencao = "PRE_FIXADA"
	AtreladaCDI   Convencao = "ATRELADA_CDI"
	AtreladaSelic Convencao = "ATRELADA_SELIC"
	AtreladaIPCA  Convencao = "ATRELADA_IPCA"
)

// Modalidade identifica um tipo de investimento suportado pelo simulador.
type Modalidade string

const (
	ModalidadeCDI           Modalidade = "CDI_PERCENTUAL"
	ModalidadePoupanca      Modalidade = "POUPANCA"
	ModalidadeTesouroSelic  Modalidade = "TESOURO_SELIC"
	ModalidadeTesouroIPCA   Modalidade = "TESOURO_IPCA"
	ModalidadeLCI           Modalidade = "LCI"
	ModalidadeLCA           Modalidade = "LCA"
	ModalidadeCRI           Modalidade = "CRI"
	ModalidadeCRA           Modalidade = "CRA"
	ModalidadeDebenture     Modalidade = "DEBENTURE"
	ModalidadeRendaVariavel Modalidade = "RENDA_VARIAVEL"
	ModalidadeFundoDI       Modalidade = "FUNDO_DI"
	ModalidadePersonalizada Modalidade = "PERSONALIZADA"
)

// Bases de contagem de dias para conversão de taxa anual em diária.
const (
	BaseDiasUteis    = 252
	BaseDiasCorridos = 365
)

// AtributosModalidade reúne as regras fixas de uma modalidade. Incluir uma
// modalidade nova é uma mudança de dados nesta tabela, não de fluxo de código.
type AtributosModalidade struct {
	Nome             string     `json:"nome"`
	Convencao        Convencao  `json:"convencao"`
	IsentaIR         bool       `json:"isentaIR"`
	BaseDias         int        `json:"baseDias"`
	TabelaIR         TabelaIR   `json:"tabelaIR"`
	RegraPoupanca    bool       `json:"-"`
	PercentualPadrao float64    `json:"percentualPadrao"`
	Risco            string     `json:"risco"`
	Descricao        string     `json:"descricao"`
}

// Catalogo é a tabela fixa de modalidades, carregada uma vez e somente lida
// depois disso.
var Catalogo = map[Modalidade]AtributosModalidade{
	ModalidadeCDI: {
		Nome: "CDB / CDI", Convencao: AtreladaCDI,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 100, Risco: "Baixo",
		Descricao: "Renda fixa tradicional atrelada ao CDI",
	},
	ModalidadePoupanca: {
		Nome: "Poupança", Convencao: AtreladaSelic, IsentaIR: true,
		BaseDias: BaseDiasCorridos, TabelaIR: TabelaRegressiva,
		RegraPoupanca: true, PercentualPadrao: 70, Risco: "Baixo",
		Descricao: "Caderneta tradicional, rendimento definido pela regra da Selic",
	},
	ModalidadeTesouroSelic: {
		Nome: "Tesouro Selic", Convencao: AtreladaSelic,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 100, Risco: "Baixo",
		Descricao: "Título público pós-fixado",
	},
	ModalidadeTesouroIPCA: {
		Nome: "Tesouro IPCA+", Convencao: AtreladaIPCA,
		BaseDias: BaseDiasCorridos, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 105, Risco: "Médio",
		Descricao: "Título público protegido da inflação",
	},
	ModalidadeLCI: {
		Nome: "LCI", Convencao: AtreladaCDI, IsentaIR: true,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 90, Risco: "Baixo",
		Descricao: "Letra de crédito imobiliário, sem IR",
	},
	ModalidadeLCA: {
		Nome: "LCA", Convencao: AtreladaCDI, IsentaIR: true,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 90, Risco: "Baixo",
		Descricao: "Letra de crédito do agronegócio, sem IR",
	},
	ModalidadeCRI: {
		Nome: "CRI", Convencao: AtreladaCDI, IsentaIR: true,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 110, Risco: "Médio",
		Descricao: "Certificado de recebíveis imobiliários",
	},
	ModalidadeCRA: {
		Nome: "CRA", Convencao: AtreladaCDI, IsentaIR: true,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 110, Risco: "Médio",
		Descricao: "Certificado de recebíveis do agronegócio",
	},
	ModalidadeDebenture: {
		Nome: "Debêntures", Convencao: AtreladaCDI,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 115, Risco: "Médio",
		Descricao: "Títulos corporativos",
	},
	ModalidadeRendaVariavel: {
		Nome: "Renda Variável", Convencao: AtreladaCDI,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaFundos,
		PercentualPadrao: 150, Risco: "Alto",
		Descricao: "Ações e ETFs",
	},
	ModalidadeFundoDI: {
		Nome: "Fundos DI", Convencao: AtreladaCDI,
		BaseDias: BaseDiasUteis, TabelaIR: TabelaFundos,
		PercentualPadrao: 95, Risco: "Baixo",
		Descricao: "Fundos referenciados DI",
	},
	ModalidadePersonalizada: {
		Nome: "Personalizada", Convencao: PreFixada,
		BaseDias: BaseDiasCorridos, TabelaIR: TabelaRegressiva,
		PercentualPadrao: 100, Risco: "Variável",
		Descricao: "Taxa efetiva anual informada diretamente",
	},
}
