package arcs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Config carries the explicit settings the store, model and exporters need,
// instead of module-level globals.
type Config struct {
	// QuotesFile is the path of the persisted store.
	QuotesFile string
	// BundledFile is an optional read-only quotes file shipped with the
	// application, used when the user store does not exist yet.
	BundledFile string
	// DefaultCurrency applies to new quotes and to stored quotes that
	// predate the currency field.
	DefaultCurrency string
}

// UserDataDir returns the per-user data directory, creating it if needed.
func UserDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcsoftware")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create user data directory %q: %w", dir, err)
	}
	return dir, nil
}

// DefaultConfig resolves the default quotes file location: the
// project-relative data/quotes.json in development, the user data directory
// otherwise.
func DefaultConfig() Config {
	cfg := Config{DefaultCurrency: "USD"}
	devFile := filepath.Join("data", "quotes.json")
	if _, err := os.Stat(devFile); err == nil {
		cfg.QuotesFile = devFile
		return cfg
	}
	if dir, err := UserDataDir(); err == nil {
		cfg.QuotesFile = filepath.Join(dir, "quotes.json")
		cfg.BundledFile = devFile
		return cfg
	}
	cfg.QuotesFile = devFile
	return cfg
}

// LoadStore reads the persisted store described by cfg.
//
// A missing user store falls back to the bundled file, and to an empty store
// when that is missing too. A malformed file returns an empty store together
// with the parse error, so the caller can warn and keep going.
func LoadStore(cfg Config) (*Store, error) {
	store, err := loadStoreFile(cfg.QuotesFile, cfg.DefaultCurrency)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return NewStore(), err
	}

	if cfg.BundledFile != "" {
		store, berr := loadStoreFile(cfg.BundledFile, cfg.DefaultCurrency)
		if berr == nil {
			log.Printf("quotes file %q does not exist, loaded %d bundled quotes", cfg.QuotesFile, store.Len())
			return store, nil
		}
	}

	log.Printf("quotes file %q does not exist, starting with an empty store", cfg.QuotesFile)
	return NewStore(), nil
}

func loadStoreFile(path, currency string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	store, err := DecodeStore(f, currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode quotes file %q: %w", path, err)
	}
	return store, nil
}

// SaveStore serializes the full store to cfg.QuotesFile, overwriting the
// previous contents. The write goes to a temporary file in the same
// directory first and is renamed into place, so a failed save leaves the
// prior on-disk state untouched.
func SaveStore(cfg Config, store *Store) error {
	dir := filepath.Dir(cfg.QuotesFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for quotes file %q: %w", cfg.QuotesFile, err)
	}

	tmp, err := os.CreateTemp(dir, "quotes-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary quotes file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := EncodeStore(tmp, store); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary quotes file %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, cfg.QuotesFile); err != nil {
		return fmt.Errorf("could not replace quotes file %q: %w", cfg.QuotesFile, err)
	}
	return nil
}
