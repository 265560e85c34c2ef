package config

import (
	"fmt"
	"os"

	"github.com/prefeitura-rio/app-attestation/internal/models"
	"gopkg.in/yaml.v3"
)

// reasonsFile is the on-disk layout of REASONS_FILE
type reasonsFile struct {
	Reasons []models.Reason `yaml:"reasons"`
}

// LoadReasons reads a YAML reason table.
//
//	reasons:
//	  - code: Travail
//	    text: Déplacements entre le domicile et ...
//
// Structural checks (duplicates, empty entries) are left to services.NewReasonTable.
func LoadReasons(path string) ([]models.Reason, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reasons file: %w", err)
	}

	var file reasonsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse reasons file: %w", err)
	}
	if len(file.Reasons) == 0 {
		return nil, fmt.Errorf("%w: no reasons defined in %s", models.ErrInvalidReasons, path)
	}

	return file.Reasons, nil
}
