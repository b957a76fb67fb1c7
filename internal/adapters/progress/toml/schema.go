package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version            int      `toml:"version"`
	CompletedWorkshops []string `toml:"completed_workshops"`
	UpdatedAt          string   `toml:"updated_at,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported progress schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
