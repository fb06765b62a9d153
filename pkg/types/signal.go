package types

// SignalCategory classifies a project signal by what kind of evidence
// produced it.
type SignalCategory string

const (
	CategoryDependency SignalCategory = "dependency"
	CategoryConfig     SignalCategory = "config"
	CategoryService    SignalCategory = "service"
	CategoryFramework  SignalCategory = "framework"
)

// Confidence expresses how strongly a signal's evidence supports it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Signal is a weighted observation about project composition: a declared
// dependency, a tool config file, a service integration, or a UI framework.
type Signal struct {
	Category   SignalCategory    `json:"category"`
	Name       string            `json:"name"`
	Source     string            `json:"source"`
	Confidence Confidence        `json:"confidence"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ValidateCategory checks that the category is one of the closed set.
func (s *Signal) ValidateCategory() error {
	switch s.Category {
	case CategoryDependency, CategoryConfig, CategoryService, CategoryFramework:
		return nil
	default:
		return ErrInvalidCategory
	}
}

// ValidateConfidence checks that the confidence is one of the closed set.
func (s *Signal) ValidateConfidence() error {
	switch s.Confidence {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return nil
	default:
		return ErrInvalidConfidence
	}
}

// Validate performs full validation of the signal.
func (s *Signal) Validate() error {
	if s.Name == "" {
		return ErrEmptySignalName
	}
	if err := s.ValidateCategory(); err != nil {
		return err
	}
	return s.ValidateConfidence()
}
