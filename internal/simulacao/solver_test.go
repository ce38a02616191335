package simulacao

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimularNormalCDI(t *testing.T) {
	req := SimulacaoRequest{
		Modalidade:     ModalidadeCDI,
		Taxa:           TaxaInput{Benchmark: 0.10, Percentual: 100},
		HorizonteDias:  360,
		Modo:           ModoNormal,
		ValorConhecido: 10000,
	}
	res, err := Simular(req)
	if err != nil {
		t.Fatal(err)
	}

	fator := math.Pow(1.10, 360.0/252.0)
	bruto := 10000 * (fator - 1)
	ir := bruto * 0.20
	if res.AliquotaIR != 0.20 {
		t.Errorf("alíquota em 360 dias: %v, esperado 0.20", res.AliquotaIR)
	}
	if !res.RendimentoBruto.Equal(Centavos(bruto)) {
		t.Errorf("rendimento bruto: %s, esperado %s", res.RendimentoBruto, Centavos(bruto))
	}
	if !res.ValorIR.Equal(Centavos(ir)) {
		t.Errorf("IR: %s, esperado %s", res.ValorIR, Centavos(ir))
	}
	if !res.RendimentoLiquido.Equal(Centavos(bruto - ir)) {
		t.Errorf("rendimento líquido: %s, esperado %s", res.RendimentoLiquido, Centavos(bruto-ir))
	}
	if !res.ValorFinal.Equal(Centavos(10000 + bruto)) {
		t.Errorf("valor final: %s, esperado %s", res.ValorFinal, Centavos(10000+bruto))
	}
}

func TestSimularIsentaLiquidoIgualBruto(t *testing.T) {
	req := SimulacaoRequest{
		Modalidade:     ModalidadeLCI,
		Taxa:           TaxaInput{Benchmark: 0.1265, Percentual: 90},
		HorizonteDias:  360,
		Modo:           ModoNormal,
		ValorConhecido: 25000,
	}
	res, err := Simular(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.AliquotaIR != 0 {
		t.Errorf("LCI deveria ser isenta, alíquota %v", res.AliquotaIR)
	}
	if !res.ValorIR.Equal(decimal.Zero) {
		t.Errorf("IR de isenta: %s, esperado 0", res.ValorIR)
	}
	if !res.RendimentoLiquido.Equal(res.RendimentoBruto) {
		t.Errorf("isenta: líquido %s != bruto %s", res.RendimentoLiquido, res.RendimentoBruto)
	}
}

func TestSimularTaxaZeroRendimentoZero(t *testing.T) {
	req := SimulacaoRequest{
		Modalidade:     ModalidadePersonalizada,
		Taxa:           TaxaInput{TaxaNominal: 0},
		HorizonteDias:  365,
		Modo:           ModoNormal,
		ValorConhecido: 5000,
	}
	res, err := Simular(req)
	if err != nil {
		t.Fatal(err)
	}
	if !res.RendimentoBruto.Equal(decimal.Zero) || !res.ValorIR.Equal(decimal.Zero) {
		t.Errorf("taxa zero: bruto %s IR %s, esperado zero em ambos", res.RendimentoBruto, res.ValorIR)
	}
	if !res.ValorFinal.Equal(res.Principal) {
		t.Errorf("taxa zero: final %s != principal %s", res.ValorFinal, res.Principal)
	}
}

func TestSimularReversoTaxaDegenerada(t *testing.T) {
	req := SimulacaoRequest{
		Modalidade:     ModalidadePersonalizada,
		Taxa:           TaxaInput{TaxaNominal: 0},
		HorizonteDias:  365,
		Modo:           ModoReverso,
		ValorConhecido: 1000,
		AlvoLiquido:    true,
	}
	_, err := Simular(req)
	var degErr *ErroTaxaDegenerada
	if !errors.As(err, &degErr) {
		t.Fatalf("reverso com taxa zero: esperado ErroTaxaDegenerada, veio %v", err)
	}
}

func TestSimularReversoAlvoLiquido(t *testing.T) {
	// o principal devolvido pelo modo reverso tem que reproduzir o alvo
	// quando capitalizado no modo normal
	casos := []struct {
		m     Modalidade
		taxa  TaxaInput
		dias  int
		alvo  float64
	}{
		{ModalidadeCDI, TaxaInput{Benchmark: 0.1265, Percentual: 110}, 90, 500},
		{ModalidadeCDI, TaxaInput{Benchmark: 0.1265, Percentual: 100}, 720, 2000},
		{ModalidadeLCI, TaxaInput{Benchmark: 0.1265, Percentual: 90}, 360, 1500},
		{ModalidadeTesouroIPCA, TaxaInput{Benchmark: 0.045, SpreadIPCA: 0.055}, 1825, 10000},
		{ModalidadePersonalizada, TaxaInput{TaxaNominal: 0.08}, 30, 12.34},
	}
	for _, c := range casos {
		rev, err := Simular(SimulacaoRequest{
			Modalidade: c.m, Taxa: c.taxa, HorizonteDias: c.dias,
			Modo: ModoReverso, ValorConhecido: c.alvo, AlvoLiquido: true,
		})
		if err != nil {
			t.Fatal(err)
		}
		liquido, _ := rev.RendimentoLiquido.Float64()
		if math.Abs(liquido-c.alvo) > 0.01 {
			t.Errorf("%s %d dias: líquido recuperado %v, alvo %v", c.m, c.dias, liquido, c.alvo)
		}
	}
}

func TestSimularReversoAlvoBruto(t *testing.T) {
	rev, err := Simular(SimulacaoRequest{
		Modalidade:     ModalidadeCDI,
		Taxa:           TaxaInput{Benchmark: 0.10, Percentual: 100},
		HorizonteDias:  360,
		Modo:           ModoReverso,
		ValorConhecido: 1000,
		AlvoLiquido:    false,
	})
	if err != nil {
		t.Fatal(err)
	}
	bruto, _ := rev.RendimentoBruto.Float64()
	if math.Abs(bruto-1000) > 0.01 {
		t.Errorf("alvo bruto: recuperado %v, esperado 1000", bruto)
	}
	// com alvo bruto o líquido fica abaixo do alvo pela alíquota
	liquido, _ := rev.RendimentoLiquido.Float64()
	if math.Abs(liquido-800) > 0.01 {
		t.Errorf("líquido sob alvo bruto: %v, esperado 800", liquido)
	}
}

func TestSimularIRNuncaExcedeBruto(t *testing.T) {
	for _, dias := range []int{1, 180, 181, 360, 361, 720, 721, 3600} {
		res, err := Simular(SimulacaoRequest{
			Modalidade:     ModalidadeCDI,
			Taxa:           TaxaInput{Benchmark: 0.1265, Percentual: 100},
			HorizonteDias:  dias,
			Modo:           ModoNormal,
			ValorConhecido: 10000,
		})
		if err != nil {
			t.Fatal(err)
		}
		if res.ValorIR.GreaterThan(res.RendimentoBruto) {
			t.Errorf("dias=%d: IR %s maior que o bruto %s", dias, res.ValorIR, res.RendimentoBruto)
		}
		if res.RendimentoLiquido.IsNegative() {
			t.Errorf("dias=%d: líquido negativo %s", dias, res.RendimentoLiquido)
		}
	}
}

func TestSimularAliquotaNaoAumentaComPrazo(t *testing.T) {
	anterior := 1.0
	for _, dias := range []int{30, 180, 181, 360, 361, 720, 721, 1800} {
		res, err := Simular(SimulacaoRequest{
			Modalidade:     ModalidadeCDI,
			Taxa:           TaxaInput{Benchmark: 0.10, Percentual: 100},
			HorizonteDias:  dias,
			Modo:           ModoNormal,
			ValorConhecido: 10000,
		})
		if err != nil {
			t.Fatal(err)
		}
		if res.AliquotaIR > anterior {
			t.Errorf("dias=%d: alíquota %v subiu em relação ao prazo anterior %v", dias, res.AliquotaIR, anterior)
		}
		anterior = res.AliquotaIR
	}
}

func TestSimularModalidadeDesconhecida(t *testing.T) {
	_, err := Simular(SimulacaoRequest{
		Modalidade:     Modalidade("DOGE"),
		HorizonteDias:  100,
		Modo:           ModoNormal,
		ValorConhecido: 1000,
	})
	if !errors.Is(err, ErrModalidadeDesconhecida) {
		t.Errorf("esperado ErrModalidadeDesconhecida, veio %v", err)
	}
}

func TestCentavosMeioParaPar(t *testing.T) {
	// valores exatos em binário para não depender da representação do float
	casos := []struct {
		in   float64
		want string
	}{
		{2.125, "2.12"},
		{2.375, "2.38"},
		{-2.125, "-2.12"},
		{10, "10"},
	}
	for _, c := range casos {
		got := Centavos(c.in)
		if got.String() != c.want {
			t.Errorf("Centavos(%v) = %s, esperado %s", c.in, got, c.want)
		}
	}
}
