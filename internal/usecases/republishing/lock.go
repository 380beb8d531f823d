package republishing

import "sync"

// lockRegistry garante uma única execução do fluxo por annonce. O guarda é
// local ao processo: o fluxo é de sessão única por desenho.
type lockRegistry struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func newLockRegistry() *lockRegistry {
	return &lockRegistry{
		running: make(map[string]struct{}),
	}
}

// Acquire tenta reservar a annonce; devolve false quando já existe uma
// execução em andamento para ela.
func (r *lockRegistry) Acquire(listID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.running[listID]; ok {
		return false
	}

	r.running[listID] = struct{}{}
	return true
}

func (r *lockRegistry) Release(listID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.running, listID)
}
