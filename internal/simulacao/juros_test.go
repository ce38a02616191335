package simulacao

import (
	"errors"
	"math"
	"testing"
)

func TestFatorCrescimentoAnoCompleto(t *testing.T) {
	// 252 dias na base útil equivalem exatamente a um ano
	fator, err := FatorCrescimento(0.10, BaseDiasUteis, 252)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fator-1.10) > 1e-9 {
		t.Errorf("um ano a 10%% a.a.: fator %v, esperado 1.10", fator)
	}

	fator, err = FatorCrescimento(0.10, BaseDiasCorridos, 365)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fator-1.10) > 1e-9 {
		t.Errorf("365 corridos a 10%% a.a.: fator %v, esperado 1.10", fator)
	}
}

func TestFatorCrescimentoTaxaZero(t *testing.T) {
	fator, err := FatorCrescimento(0, BaseDiasUteis, 500)
	if err != nil {
		t.Fatal(err)
	}
	if fator != 1 {
		t.Errorf("taxa zero: fator %v, esperado exatamente 1", fator)
	}
}

func TestFatorCrescimentoHorizonteInvalido(t *testing.T) {
	for _, dias := range []int{0, -1, -252} {
		_, err := FatorCrescimento(0.10, BaseDiasUteis, dias)
		var horErr *ErroHorizonteInvalido
		if !errors.As(err, &horErr) {
			t.Errorf("dias=%d: esperado ErroHorizonteInvalido, veio %v", dias, err)
		}
	}
}

func TestFatorCrescimentoTetoDeHorizonte(t *testing.T) {
	// exatamente no teto passa, um dia além falha
	if _, err := FatorCrescimento(0.10, BaseDiasUteis, 100*BaseDiasUteis); err != nil {
		t.Errorf("no teto de 100 anos: erro inesperado %v", err)
	}
	_, err := FatorCrescimento(0.10, BaseDiasUteis, 100*BaseDiasUteis+1)
	var ovErr *ErroEstouroNumerico
	if !errors.As(err, &ovErr) {
		t.Errorf("acima do teto: esperado ErroEstouroNumerico, veio %v", err)
	}
}

func TestCapitalizarEInverter(t *testing.T) {
	casos := []struct {
		taxa float64
		base int
		dias int
	}{
		{0.10, BaseDiasUteis, 252},
		{0.1265, BaseDiasUteis, 500},
		{0.049, BaseDiasCorridos, 30},
		{0.085, BaseDiasCorridos, 1825},
		{-0.02, BaseDiasUteis, 360},
	}
	for _, c := range casos {
		bruto, err := Capitalizar(10000, c.taxa, c.base, c.dias)
		if err != nil {
			t.Fatal(err)
		}
		principal, err := PrincipalParaMeta(bruto, c.taxa, c.base, c.dias)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(principal-10000) > 1e-6 {
			t.Errorf("ida e volta taxa=%v dias=%d: principal %v, esperado 10000", c.taxa, c.dias, principal)
		}
	}
}

func TestTaxaDiariaComposta(t *testing.T) {
	// compor a diária pelo número de dias da base devolve a anual
	diaria := TaxaDiaria(0.1275, BaseDiasUteis)
	anual := math.Pow(1+diaria, BaseDiasUteis) - 1
	if math.Abs(anual-0.1275) > 1e-12 {
		t.Errorf("recomposição da taxa anual: %v, esperado 0.1275", anual)
	}
}
