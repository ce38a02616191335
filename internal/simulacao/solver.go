package simulacao

// Modo de cálculo de uma simulação.
type Modo string

const (
	// ModoNormal parte do principal e deriva o rendimento.
	ModoNormal Modo = "NORMAL"
	// ModoReverso parte do rendimento desejado e deriva o principal.
	ModoReverso Modo = "REVERSO"
)

// SimulacaoRequest é o pacote imutável de entrada de uma simulação, montado
// pela camada externa e consumido uma única vez.
type SimulacaoRequest struct {
	Modalidade     Modalidade
	Taxa           TaxaInput
	HorizonteDias  int
	Modo           Modo
	ValorConhecido float64
	AlvoLiquido    bool
}

// valores numéricos brutos da simulação, antes do arredondamento monetário
type calculo struct {
	taxaEfetiva float64
	aliquota    float64
	principal   float64
	bruto       float64
	ir          float64
	liquido     float64
}

// Simular executa o pipeline de uma simulação: normalização de taxa,
// capitalização (direta ou invertida) e aplicação do IR. Ou devolve um
// resultado completo, ou falha atomicamente com um dos erros de validação.
func Simular(req SimulacaoRequest) (*ResultadoSimulacao, error) {
	c, err := resolver(req)
	if err != nil {
		return nil, err
	}
	return montarResultado(req, c), nil
}

func resolver(req SimulacaoRequest) (calculo, error) {
	attrs, ok := Catalogo[req.Modalidade]
	if !ok {
		return calculo{}, ErrModalidadeDesconhecida
	}

	taxaEfetiva, err := NormalizarTaxa(req.Modalidade, req.Taxa)
	if err != nil {
		return calculo{}, err
	}
	fator, err := FatorCrescimento(taxaEfetiva, attrs.BaseDias, req.HorizonteDias)
	if err != nil {
		return calculo{}, err
	}
	aliquota := AliquotaPara(req.Modalidade, req.HorizonteDias)

	c := calculo{taxaEfetiva: taxaEfetiva, aliquota: aliquota}

	switch req.Modo {
	case ModoReverso:
		if fator == 1 {
			return calculo{}, &ErroTaxaDegenerada{TaxaEfetiva: taxaEfetiva}
		}
		alvoBruto := req.ValorConhecido
		if req.AlvoLiquido && aliquota > 0 {
			// IR é linear no rendimento bruto, então o alvo líquido se
			// converte em alvo bruto por uma divisão
			alvoBruto = req.ValorConhecido / (1 - aliquota)
		}
		c.principal = alvoBruto / (fator - 1)

	default: // ModoNormal
		c.principal = req.ValorConhecido
	}

	c.bruto = c.principal * (fator - 1)
	if c.bruto > 0 {
		// IR incide apenas sobre o rendimento, nunca sobre o principal
		c.ir = c.bruto * aliquota
	}
	c.liquido = c.bruto - c.ir
	return c, nil
}
