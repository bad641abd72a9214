package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/database"
)

// storeFlags are the connection flags shared by commands that open the
// dictionary store directly.
type storeFlags struct {
	Driver string
	URL    string
}

func (f *storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.Driver, "driver", config.DefaultDatabaseDriver, "Database driver: sqlite or postgres")
	fs.StringVar(&f.URL, "db", config.DefaultDatabasePath, "SQLite file path or postgres connection URL")
}

func (f *storeFlags) open() (*database.Database, error) {
	db, err := database.NewDatabase(database.Options{Driver: f.Driver, DSN: f.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
