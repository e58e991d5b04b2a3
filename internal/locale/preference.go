package locale

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"morinolab/site/internal/domain"
	"morinolab/site/internal/storage"
)

const DefaultStorageKey = "locale"

// Preference is the user's chosen locale, persisted as a plain string in the
// same storage as the scroll positions.
type Preference struct {
	mu       sync.RWMutex
	current  domain.Locale
	fallback domain.Locale
	storage  storage.Storage
	key      string
}

func NewPreference(st storage.Storage, key string, fallback domain.Locale) *Preference {
	if key == "" {
		key = DefaultStorageKey
	}
	if _, ok := domain.ParseLocale(fallback.String()); !ok {
		fallback = domain.DefaultLocale
	}
	return &Preference{
		current:  fallback,
		fallback: fallback,
		storage:  st,
		key:      key,
	}
}

// Load reads the stored locale; absent or invalid values leave the fallback in place
func (p *Preference) Load(ctx context.Context) domain.Locale {
	raw, err := p.storage.Get(ctx, p.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Errorf("❌ [Locale] Failed to read stored locale: %v", err)
		}
		return p.Current()
	}

	l, ok := domain.ParseLocale(raw)
	if !ok {
		log.Warnf("⚠️ [Locale] Ignoring invalid stored locale %q", raw)
		return p.Current()
	}

	p.mu.Lock()
	p.current = l
	p.mu.Unlock()
	return l
}

// Init loads the stored locale, or detects one from acceptLanguage and stores
// it when nothing was stored yet.
func (p *Preference) Init(ctx context.Context, acceptLanguage string) domain.Locale {
	raw, err := p.storage.Get(ctx, p.key)
	if err == nil {
		if _, ok := domain.ParseLocale(raw); ok {
			return p.Load(ctx)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Errorf("❌ [Locale] Failed to read stored locale: %v", err)
		return p.Current()
	}

	if acceptLanguage == "" {
		return p.Current()
	}
	detected := Detect(acceptLanguage, p.fallback)
	p.Set(ctx, detected)
	return detected
}

func (p *Preference) Current() domain.Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set switches the locale and persists it. Storage failures are logged only.
func (p *Preference) Set(ctx context.Context, l domain.Locale) {
	if _, ok := domain.ParseLocale(l.String()); !ok {
		log.Warnf("⚠️ [Locale] Refusing to set unsupported locale %q", l)
		return
	}

	p.mu.Lock()
	p.current = l
	p.mu.Unlock()

	if err := p.storage.Set(ctx, p.key, l.String()); err != nil {
		log.Errorf("❌ [Locale] Failed to persist locale: %v", err)
	}
}

func (p *Preference) Toggle(ctx context.Context) domain.Locale {
	next := p.Current().Other()
	p.Set(ctx, next)
	return next
}
