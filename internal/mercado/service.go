package mercado

import (
	"context"
	"log"
	"time"
)

// IntervaloAtualizacao é a janela de validade do cache de benchmarks.
const IntervaloAtualizacao = 12 * time.Hour

// Servico mantém as taxas de referência: busca no Banco Central quando o
// cache está vencido e cai para o cache (ou para os padrões) quando a API
// está fora. O motor de simulação nunca passa por aqui, os benchmarks chegam
// a ele já resolvidos na requisição.
type Servico struct {
	Repo    *Repository
	Cliente *Cliente
}

// NewServico cria um novo serviço de taxas de referência
func NewServico(repo *Repository, cliente *Cliente) *Servico {
	return &Servico{Repo: repo, Cliente: cliente}
}

// PrecisaAtualizar informa se um cache está vencido.
func PrecisaAtualizar(atualizadoEm time.Time, agora time.Time) bool {
	if atualizadoEm.IsZero() {
		return true
	}
	return agora.Sub(atualizadoEm) > IntervaloAtualizacao
}

// ObterTaxas retorna as taxas de todas as séries acompanhadas, atualizando
// as vencidas. Com forcar=true todas são rebuscadas.
func (s *Servico) ObterTaxas(ctx context.Context, forcar bool) []TaxaReferencia {
	agora := time.Now()
	taxas := make([]TaxaReferencia, 0, len(padroes))

	for _, serie := range []int{SerieSelic, SerieCDI, SerieIPCA12M} {
		padrao := padroes[serie]

		cache, err := s.Repo.BuscarPorSerie(serie)
		if err == nil && !forcar && !PrecisaAtualizar(cache.AtualizadoEm, agora) {
			taxas = append(taxas, *cache)
			continue
		}

		valor, dataRef, err := s.Cliente.BuscarSerie(ctx, serie)
		if err != nil {
			log.Printf("mercado: série %d indisponível: %v", serie, err)
			if cache != nil {
				taxas = append(taxas, *cache)
			} else {
				taxas = append(taxas, padrao)
			}
			continue
		}

		salva, err := s.Repo.Salvar(serie, padrao.Nome, valor, dataRef)
		if err != nil {
			log.Printf("mercado: falha ao salvar cache da série %d: %v", serie, err)
			padrao.ValorAnual = valor
			padrao.DataReferencia = dataRef
			padrao.AtualizadoEm = agora
			taxas = append(taxas, padrao)
			continue
		}
		taxas = append(taxas, *salva)
	}
	return taxas
}
