package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SurveyURLEntry: template survey yang sudah di-resolve, plus project id
// kanoniknya (dibutuhkan untuk baris respondent/redirect tanpa query ulang).
type SurveyURLEntry struct {
	ProjectID uuid.UUID
	Template  string

	storedAt time.Time
}

// SurveyURLCache: cache process-local template survey, dibaca-tulis lintas
// request. Entri kedaluwarsa dianggap tidak ada di Get (expiry-on-read),
// tapi sengaja tidak dibuang: GetStale memakainya sebagai fallback kalau
// lookup DB gagal setelah entri pernah ada. Dibangun di composition root dan
// di-inject ke controller supaya test bisa pakai clock palsu.
type SurveyURLCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]SurveyURLEntry
}

func NewSurveyURLCache(ttl time.Duration) *SurveyURLCache {
	return NewSurveyURLCacheWithClock(ttl, time.Now)
}

func NewSurveyURLCacheWithClock(ttl time.Duration, now func() time.Time) *SurveyURLCache {
	return &SurveyURLCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]SurveyURLEntry),
	}
}

// Get mengembalikan entri yang masih segar. Entri basi = miss.
func (c *SurveyURLCache) Get(key string) (SurveyURLEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		return SurveyURLEntry{}, false
	}
	return e, true
}

// GetStale mengabaikan TTL — hanya untuk fallback saat DB lookup gagal.
func (c *SurveyURLCache) GetStale(key string) (SurveyURLEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// Put menyimpan entri di bawah semua key yang diberikan (key input caller DAN
// project id/code kanonik, supaya hit dari jalur manapun).
func (c *SurveyURLCache) Put(entry SurveyURLEntry, keys ...string) {
	entry.storedAt = c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		if k == "" {
			continue
		}
		c.entries[k] = entry
	}
}
