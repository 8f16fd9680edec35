package config

// RiskConfig holds the organization's risk taxonomy: category definitions
// and the named 1-5 likelihood/impact scales the register validates against
type RiskConfig struct {
	Categories []Category
	Likelihood []ScaleLevel
	Impact     []ScaleLevel
}

// Category represents a risk category definition
type Category struct {
	ID          string
	Name        string
	Description string
}

// ScaleLevel represents one step of a likelihood or impact scale
type ScaleLevel struct {
	ID          string
	Name        string
	Description string
	Score       int
}
