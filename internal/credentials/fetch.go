package credentials

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kmorris/wifitester/internal/driver"
	"github.com/kmorris/wifitester/internal/logging"
)

// Fetch loads saved credentials through the richest capability the driver
// offers. Exactly one path runs per call:
//
//  1. PasswordReader: full entries with whatever keys the backend exposed.
//  2. ProfileLister: names only, every password nil.
//  3. Neither (or nil driver): no entries.
//
// A backend fault is returned, not swallowed; the dialog renders it as a
// failed load rather than an empty list.
func Fetch(ctx context.Context, d driver.Driver) ([]Entry, error) {
	if d == nil {
		return nil, nil
	}

	if pr, ok := d.(driver.PasswordReader); ok {
		creds, err := pr.SavedPasswords(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading saved passwords: %w", err)
		}
		entries := make([]Entry, 0, len(creds))
		for name, pw := range creds {
			entries = append(entries, Entry{Name: name, Password: pw})
		}
		Sort(entries)
		logging.Info("credentials loaded",
			zap.String("driver", d.Name()),
			zap.Int("profiles", len(entries)),
		)
		return entries, nil
	}

	if pl, ok := d.(driver.ProfileLister); ok {
		profiles, err := pl.SavedProfiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing saved profiles: %w", err)
		}
		entries := make([]Entry, 0, len(profiles))
		for _, name := range profiles {
			entries = append(entries, Entry{Name: name})
		}
		Sort(entries)
		logging.Info("profiles loaded without passwords",
			zap.String("driver", d.Name()),
			zap.Int("profiles", len(entries)),
		)
		return entries, nil
	}

	logging.Warn("driver offers no way to enumerate profiles", zap.String("driver", d.Name()))
	return nil, nil
}
