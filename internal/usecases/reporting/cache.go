package reporting

import (
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// resultCache guarda a última tabela carregada do warehouse, compartilhada
// entre todos os usuários do processo. O relógio é injetado para permitir
// testes determinísticos de expiração.
type resultCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	table    *domain.ResultTable
	loadedAt time.Time
}

func newResultCache(ttl time.Duration, now func() time.Time) *resultCache {
	if now == nil {
		now = time.Now
	}
	return &resultCache{
		ttl: ttl,
		now: now,
	}
}

// Get retorna a tabela cacheada quando ela existe e ainda não expirou
func (c *resultCache) Get() (*domain.ResultTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return nil, false
	}

	if c.now().Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}

	return c.table, true
}

// Set substitui a tabela cacheada e reinicia a janela de TTL
func (c *resultCache) Set(table *domain.ResultTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = table
	c.loadedAt = c.now()
}

// Invalidate descarta a tabela cacheada, forçando nova consulta no próximo acesso
func (c *resultCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = nil
}
