package toml

import "fmt"

const schemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Principal principalSchema `toml:"principal"`
	SavedAt   string          `toml:"saved_at,omitempty"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > schemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, schemaVersion)
	}

	return nil
}

type principalSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}
