package simulacao

import (
	"errors"
	"fmt"
)

// ErrModalidadeDesconhecida indica uma modalidade fora do catálogo.
var ErrModalidadeDesconhecida = errors.New("modalidade desconhecida")

// ErroTaxaInvalida indica taxa, benchmark ou multiplicador fora da faixa
// aceita pelo motor.
type ErroTaxaInvalida struct {
	Campo string
	Valor float64
}

func (e *ErroTaxaInvalida) Error() string {
	return fmt.Sprintf("taxa inválida: campo %q com valor %g", e.Campo, e.Valor)
}

// ErroHorizonteInvalido indica um prazo não positivo.
type ErroHorizonteInvalido struct {
	Dias int
}

func (e *ErroHorizonteInvalido) Error() string {
	return fmt.Sprintf("horizonte inválido: %d dias (prazo deve ser positivo)", e.Dias)
}

// ErroEstouroNumerico indica um prazo além do teto prático de capitalização.
type ErroEstouroNumerico struct {
	Dias   int
	Limite int
}

func (e *ErroEstouroNumerico) Error() string {
	return fmt.Sprintf("estouro numérico: %d dias excede o limite de %d dias", e.Dias, e.Limite)
}

// ErroTaxaDegenerada indica modo reverso com fator de crescimento igual a 1:
// nenhum principal finito produz rendimento positivo.
type ErroTaxaDegenerada struct {
	TaxaEfetiva float64
}

func (e *ErroTaxaDegenerada) Error() string {
	return fmt.Sprintf("taxa degenerada: taxa efetiva %g não gera rendimento para nenhum principal", e.TaxaEfetiva)
}
