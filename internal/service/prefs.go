package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ich-youness/Financial-Services-OS/internal/config"
	"github.com/ich-youness/Financial-Services-OS/internal/domain"
	"github.com/ich-youness/Financial-Services-OS/internal/port/cache"
	"github.com/ich-youness/Financial-Services-OS/internal/port/prefs"
)

const sidebarCacheKey = "prefs:sidebar-width"

// PrefsService manages persisted UI preferences. Reads go through an
// optional L1 cache; writes go to the store and refresh the cache.
type PrefsService struct {
	store prefs.Store
	cache cache.Cache
	cfg   config.Sidebar
	ttl   time.Duration
}

// NewPrefsService creates a PrefsService. cache may be nil.
func NewPrefsService(store prefs.Store, c cache.Cache, cfg config.Sidebar, ttl time.Duration) *PrefsService {
	return &PrefsService{store: store, cache: c, cfg: cfg, ttl: ttl}
}

// SidebarWidth returns the persisted sidebar width clamped into the
// configured range, or the default width when nothing is stored.
func (s *PrefsService) SidebarWidth(ctx context.Context) (int, error) {
	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, sidebarCacheKey); err == nil && ok {
			if w, err := strconv.Atoi(string(data)); err == nil {
				return s.clamp(w), nil
			}
		}
	}

	w, found, err := s.store.GetSidebarWidth(ctx)
	if err != nil {
		return 0, fmt.Errorf("load sidebar width: %w", err)
	}
	if !found {
		return s.cfg.DefaultWidth, nil
	}

	w = s.clamp(w)
	s.cacheWidth(ctx, w)
	return w, nil
}

// SetSidebarWidth validates and persists the sidebar width. Out-of-range
// values are rejected rather than silently clamped so the client learns
// about its mistake.
func (s *PrefsService) SetSidebarWidth(ctx context.Context, width int) error {
	if width < s.cfg.MinWidth || width > s.cfg.MaxWidth {
		return fmt.Errorf("sidebar width %d outside [%d, %d]: %w",
			width, s.cfg.MinWidth, s.cfg.MaxWidth, domain.ErrValidation)
	}

	if err := s.store.SetSidebarWidth(ctx, width); err != nil {
		return fmt.Errorf("save sidebar width: %w", err)
	}

	s.cacheWidth(ctx, width)
	return nil
}

func (s *PrefsService) clamp(w int) int {
	if w < s.cfg.MinWidth {
		return s.cfg.MinWidth
	}
	if w > s.cfg.MaxWidth {
		return s.cfg.MaxWidth
	}
	return w
}

func (s *PrefsService) cacheWidth(ctx context.Context, w int) {
	if s.cache != nil {
		_ = s.cache.Set(ctx, sidebarCacheKey, []byte(strconv.Itoa(w)), s.ttl)
	}
}
