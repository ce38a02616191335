// Package relatorio monta o relatório detalhado em texto de uma simulação,
// consumindo apenas resultados prontos do motor.
package relatorio

import (
	"fmt"
	"strings"
	"time"

	"github.com/simulainvest/api-simulador/internal/projecao"
	"github.com/simulainvest/api-simulador/internal/simulacao"
)

const largura = 78

// Gerar produz o relatório em texto plano. A projeção é opcional; quando
// presente, acrescenta a evolução mensal (últimos 12 meses).
func Gerar(res *simulacao.ResultadoSimulacao, proj *projecao.Projecao, agora time.Time) string {
	attrs := simulacao.Catalogo[res.Modalidade]

	var b strings.Builder
	divisor := strings.Repeat("=", largura) + "\n"

	b.WriteString(divisor)
	b.WriteString("              RELATÓRIO DE SIMULAÇÃO DE INVESTIMENTO\n")
	b.WriteString(divisor)

	b.WriteString("\nINFORMAÇÕES GERAIS:\n")
	fmt.Fprintf(&b, "   - Data/Hora: %s\n", agora.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "   - Modalidade: %s\n", attrs.Nome)
	fmt.Fprintf(&b, "   - Modo de cálculo: %s\n", res.Modo)
	fmt.Fprintf(&b, "   - Prazo: %d dias\n", res.HorizonteDias)

	b.WriteString("\nRESUMO FINANCEIRO:\n")
	fmt.Fprintf(&b, "   - Principal: R$ %s\n", res.Principal.StringFixed(2))
	fmt.Fprintf(&b, "   - Rendimento bruto: R$ %s\n", res.RendimentoBruto.StringFixed(2))
	fmt.Fprintf(&b, "   - IR retido: R$ %s\n", res.ValorIR.StringFixed(2))
	fmt.Fprintf(&b, "   - Rendimento líquido: R$ %s\n", res.RendimentoLiquido.StringFixed(2))
	fmt.Fprintf(&b, "   - Valor final: R$ %s\n", res.ValorFinal.StringFixed(2))

	b.WriteString("\nANÁLISE DE PERFORMANCE:\n")
	fmt.Fprintf(&b, "   - Taxa efetiva anual: %.4f%%\n", res.TaxaEfetivaAnual*100)
	fmt.Fprintf(&b, "   - Alíquota de IR aplicada: %.1f%%\n", res.AliquotaIR*100)

	b.WriteString("\nCARACTERÍSTICAS DA MODALIDADE:\n")
	fmt.Fprintf(&b, "   - Descrição: %s\n", attrs.Descricao)
	fmt.Fprintf(&b, "   - Risco: %s\n", attrs.Risco)
	if attrs.IsentaIR {
		b.WriteString("   - Tributação: isenta de IR\n")
	} else {
		b.WriteString("   - Tributação: tabela regressiva de IR\n")
	}
	fmt.Fprintf(&b, "   - Base de contagem: %d dias\n", attrs.BaseDias)

	if proj != nil && len(proj.Linhas) > 0 {
		inicio := 0
		if len(proj.Linhas) > 12 {
			inicio = len(proj.Linhas) - 12
		}
		fmt.Fprintf(&b, "\nEVOLUÇÃO MENSAL (últimos %d meses):\n", len(proj.Linhas)-inicio)
		b.WriteString(strings.Repeat("-", largura) + "\n")
		fmt.Fprintf(&b, "%4s | %16s | %14s | %12s | %12s\n", "Mês", "Saldo", "Rendimento", "IR", "Aporte")
		b.WriteString(strings.Repeat("-", largura) + "\n")
		for _, linha := range proj.Linhas[inicio:] {
			fmt.Fprintf(&b, "%4d | %16s | %14s | %12s | %12s\n",
				linha.Mes,
				linha.Saldo.StringFixed(2),
				linha.Rendimento.StringFixed(2),
				linha.IR.StringFixed(2),
				linha.Aporte.StringFixed(2))
		}
		if proj.MetaAtingida {
			fmt.Fprintf(&b, "\nMeta atingida em %d meses; valor final R$ %s\n",
				proj.Meses, proj.ValorFinal.StringFixed(2))
		} else {
			fmt.Fprintf(&b, "\nMeta não atingida em %d meses\n", proj.Meses)
		}
	}

	b.WriteString("\n" + divisor)
	b.WriteString("OBSERVAÇÕES:\n")
	b.WriteString("   - Simulação baseada nas taxas de referência informadas\n")
	b.WriteString("   - IR calculado conforme tabela regressiva oficial\n")
	b.WriteString("   - Valores sujeitos a oscilações do mercado financeiro\n")
	b.WriteString("   - Consulte sempre um consultor financeiro qualificado\n")
	b.WriteString(divisor)

	return b.String()
}
