package db

import (
	"fmt"

	"github.com/javiermolinar/timegrid/internal/profile"
)

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Open returns the store for backend. path is the database file for
// sqlite and the state file for json.
func Open(backend, path string) (profile.Store, error) {
	switch backend {
	case BackendSQLite, "":
		return New(path)
	case BackendJSON:
		return NewFile(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
