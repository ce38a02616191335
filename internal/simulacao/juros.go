package simulacao

import "math"

// Teto prático de capitalização: prazos acima de 100 anos são recusados antes
// da exponenciação.
const anosMaximos = 100

// TaxaDiaria converte uma taxa efetiva anual na taxa diária equivalente para
// a base de contagem informada (252 dias úteis ou 365 corridos).
func TaxaDiaria(taxaAnual float64, baseDias int) float64 {
	return math.Pow(1+taxaAnual, 1/float64(baseDias)) - 1
}

// FatorCrescimento devolve (1+taxaDiária)^dias para o prazo informado.
func FatorCrescimento(taxaAnual float64, baseDias, dias int) (float64, error) {
	if dias <= 0 {
		return 0, &ErroHorizonteInvalido{Dias: dias}
	}
	limite := anosMaximos * baseDias
	if dias > limite {
		return 0, &ErroEstouroNumerico{Dias: dias, Limite: limite}
	}
	fator := math.Pow(1+TaxaDiaria(taxaAnual, baseDias), float64(dias))
	if math.IsInf(fator, 0) || math.IsNaN(fator) {
		return 0, &ErroEstouroNumerico{Dias: dias, Limite: limite}
	}
	return fator, nil
}

// Capitalizar acumula o principal pela taxa efetiva anual durante o prazo em
// dias, na base de contagem da modalidade.
func Capitalizar(principal, taxaAnual float64, baseDias, dias int) (float64, error) {
	fator, err := FatorCrescimento(taxaAnual, baseDias, dias)
	if err != nil {
		return 0, err
	}
	return principal * fator, nil
}

// PrincipalParaMeta inverte Capitalizar: devolve o principal que atinge o
// valor bruto desejado. A inversão é algébrica, sem busca numérica, porque a
// capitalização é uma exponencial monotônica.
func PrincipalParaMeta(valorBruto, taxaAnual float64, baseDias, dias int) (float64, error) {
	fator, err := FatorCrescimento(taxaAnual, baseDias, dias)
	if err != nil {
		return 0, err
	}
	return valorBruto / fator, nil
}
