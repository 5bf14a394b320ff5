package queue

import "sync"

// Dedupe é um conjunto de IDs já processados no escopo do processo. Evita
// notificação duplicada quando o broker reentrega a mesma mensagem; não é
// garantia de exatamente-uma-vez e some no restart.
type Dedupe struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDedupe() *Dedupe {
	return &Dedupe{seen: make(map[string]struct{})}
}

// MarkOnce devolve true na primeira vez que vê o ID, false nas seguintes.
func (d *Dedupe) MarkOnce(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return false
	}
	d.seen[id] = struct{}{}
	return true
}
