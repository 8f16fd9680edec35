package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	domainConfig "github.com/regmon-lab/regmon/pkg/domain/model/config"
	"github.com/regmon-lab/regmon/pkg/domain/types"
)

// AppConfig represents the risk taxonomy configuration loaded from TOML
type AppConfig struct {
	Categories []Category   `toml:"category"`
	Likelihood []ScaleLevel `toml:"likelihood"`
	Impact     []ScaleLevel `toml:"impact"`
}

// Category represents a risk category configuration
type Category struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Category is valid
func (c *Category) Validate() error {
	id := types.CategoryID(c.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid category ID")
	}
	if c.Name == "" {
		return goerr.New("category name is required", goerr.V("id", c.ID))
	}
	return nil
}

// ScaleLevel represents one step of the likelihood or impact scale
type ScaleLevel struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Score       int    `toml:"score"`
}

// Validate checks if the ScaleLevel is valid
func (s *ScaleLevel) Validate() error {
	id := types.CategoryID(s.ID)
	if err := id.Validate(); err != nil {
		return goerr.Wrap(err, "invalid scale level ID")
	}
	if s.Name == "" {
		return goerr.New("scale level name is required", goerr.V("id", s.ID))
	}
	if s.Score < 1 || s.Score > 5 {
		return goerr.New("scale level score must be between 1 and 5", goerr.V("id", s.ID), goerr.V("score", s.Score))
	}
	return nil
}

func validateScale(levels []ScaleLevel) error {
	ids := make(map[string]bool)
	scores := make(map[int]bool)
	for i := range levels {
		level := &levels[i]
		if err := level.Validate(); err != nil {
			return goerr.Wrap(err, "invalid scale level")
		}
		if ids[level.ID] {
			return goerr.Wrap(ErrDuplicateScaleID, "scale level ID already defined", goerr.V("id", level.ID))
		}
		ids[level.ID] = true
		if scores[level.Score] {
			return goerr.Wrap(ErrDuplicateScaleScore, "scale level score already defined", goerr.V("score", level.Score))
		}
		scores[level.Score] = true
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	categoryIDs := make(map[string]bool)
	for i := range a.Categories {
		cat := &a.Categories[i]
		if err := cat.Validate(); err != nil {
			return goerr.Wrap(err, "invalid category")
		}
		if categoryIDs[cat.ID] {
			return goerr.Wrap(ErrDuplicateCategoryID, "category ID already defined", goerr.V("id", cat.ID))
		}
		categoryIDs[cat.ID] = true
	}

	if err := validateScale(a.Likelihood); err != nil {
		return goerr.Wrap(err, "invalid likelihood scale")
	}
	if err := validateScale(a.Impact); err != nil {
		return goerr.Wrap(err, "invalid impact scale")
	}

	return nil
}

// LoadAppConfiguration loads the risk taxonomy from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V("path", path))
	}

	return &config, nil
}

// ToDomainRiskConfig converts AppConfig to the domain RiskConfig
func (a *AppConfig) ToDomainRiskConfig() *domainConfig.RiskConfig {
	categories := make([]domainConfig.Category, len(a.Categories))
	for i, cat := range a.Categories {
		categories[i] = domainConfig.Category{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
		}
	}

	toLevels := func(levels []ScaleLevel) []domainConfig.ScaleLevel {
		result := make([]domainConfig.ScaleLevel, len(levels))
		for i, level := range levels {
			result[i] = domainConfig.ScaleLevel{
				ID:          level.ID,
				Name:        level.Name,
				Description: level.Description,
				Score:       level.Score,
			}
		}
		return result
	}

	return &domainConfig.RiskConfig{
		Categories: categories,
		Likelihood: toLevels(a.Likelihood),
		Impact:     toLevels(a.Impact),
	}
}
