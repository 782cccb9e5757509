package cookiefake

import (
	"sync"
	"time"

	"github.com/jrsteele09/go-backoffice/cookies"
)

var _ cookies.Store = (*Jar)(nil)

type entry struct {
	value   string
	expires time.Time
}

// Jar is an in-memory cookies.Store that honours expiry against an injectable clock.
type Jar struct {
	lock    sync.RWMutex
	entries map[string]entry
	Now     func() time.Time
}

func NewJar() *Jar {
	return &Jar{
		entries: make(map[string]entry),
		Now:     time.Now,
	}
}

func (j *Jar) Get(name string) (string, bool) {
	j.lock.RLock()
	defer j.lock.RUnlock()

	e, ok := j.entries[name]
	if !ok || !e.expires.After(j.Now()) {
		return "", false
	}
	return e.value, true
}

func (j *Jar) Set(name, value string, days int) {
	j.lock.Lock()
	defer j.lock.Unlock()

	j.entries[name] = entry{
		value:   value,
		expires: j.Now().Add(time.Duration(days) * 24 * time.Hour),
	}
}

func (j *Jar) Remove(name string) {
	j.lock.Lock()
	defer j.lock.Unlock()

	j.entries[name] = entry{expires: time.Unix(0, 0)}
}

// Expiry returns the expiry time recorded for name, including already-expired records.
func (j *Jar) Expiry(name string) (time.Time, bool) {
	j.lock.RLock()
	defer j.lock.RUnlock()

	e, ok := j.entries[name]
	return e.expires, ok
}
