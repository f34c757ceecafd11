// Package prefs defines the store port for persisted UI preferences.
package prefs

import "context"

// Store is the port interface for preference persistence.
type Store interface {
	// GetSidebarWidth returns the stored sidebar width in pixels.
	// Returns found=false when no width has been persisted yet.
	GetSidebarWidth(ctx context.Context) (width int, found bool, err error)

	// SetSidebarWidth persists the sidebar width in pixels.
	SetSidebarWidth(ctx context.Context, width int) error
}
