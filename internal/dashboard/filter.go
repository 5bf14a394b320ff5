// Package dashboard contém o motor de filtro e agregação da tela de leads.
// Funções puras: nenhum I/O, nenhuma mutação da entrada.
package dashboard

import (
	"strings"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

type Tab string

const (
	TabAll     Tab = "all"
	TabPaid    Tab = "paid"
	TabPending Tab = "pending"
	TabNotPaid Tab = "not-paid"
)

// ValidTab informa se o valor veio de uma aba conhecida do dashboard.
func ValidTab(t Tab) bool {
	switch t {
	case TabAll, TabPaid, TabPending, TabNotPaid:
		return true
	}
	return false
}

type FilterSelection struct {
	Search string `json:"search"`
	Tab    Tab    `json:"tab"`
}

type Stats struct {
	Total   int `json:"total"`
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
	NotPaid int `json:"notPaid"`
}

// FilterAndAggregate aplica busca + aba sobre a lista completa de leads e
// calcula as estatísticas SEMPRE sobre o resultado filtrado, nunca sobre a
// lista bruta. A ordem original é preservada.
//
// Paid + Pending + NotPaid pode ser menor que Total: leads com status fora do
// conjunto conhecido contam só no total. Isso é intencional.
func FilterAndAggregate(leads []entity.Lead, sel FilterSelection) ([]entity.Lead, Stats) {
	filtered := make([]entity.Lead, 0, len(leads))

	search := strings.ToLower(strings.TrimSpace(sel.Search))
	for _, lead := range leads {
		if search != "" && !matchesSearch(lead, search) {
			continue
		}
		if !matchesTab(lead, sel.Tab) {
			continue
		}
		filtered = append(filtered, lead)
	}

	stats := Stats{Total: len(filtered)}
	for _, lead := range filtered {
		if lead.IsConfirmadoPago {
			stats.Paid++
		}
		if isPendingStatus(lead.StatusPagamento) {
			stats.Pending++
		}
		if isNotPaid(lead) {
			stats.NotPaid++
		}
	}

	return filtered, stats
}

func matchesSearch(lead entity.Lead, search string) bool {
	return strings.Contains(strings.ToLower(lead.Name), search) ||
		strings.Contains(strings.ToLower(lead.Email), search) ||
		strings.Contains(strings.ToLower(lead.Phone), search)
}

func matchesTab(lead entity.Lead, tab Tab) bool {
	switch tab {
	case TabPaid:
		return lead.IsConfirmadoPago
	case TabPending:
		// A aba usa só "Pendente"; a contagem de pendentes reconhece as três
		// variantes. A assimetria vem do comportamento original e fica assim
		// até o dono do produto confirmar que é defeito.
		return lead.StatusPagamento == entity.StatusPendente
	case TabNotPaid:
		return isNotPaid(lead)
	default:
		return true
	}
}

func isPendingStatus(status string) bool {
	switch status {
	case entity.StatusPendente, entity.StatusPendenteStripe, entity.StatusPendenteInfinitePay:
		return true
	}
	return false
}

// isNotPaid cobre o bucket "não pagou": sem confirmação E com status
// explicitamente negativo ou vazio. Status desconhecidos não entram.
func isNotPaid(lead entity.Lead) bool {
	if lead.IsConfirmadoPago {
		return false
	}
	switch lead.StatusPagamento {
	case entity.StatusNaoPagou, entity.StatusRedirecionadoInfinitePay, "":
		return true
	}
	return false
}
