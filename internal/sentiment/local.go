package sentiment

import (
	"fmt"

	"github.com/spacesedan/sentilite/internal/models"
)

const (
	LOCAL_LEXICAL = "lexical"
	LOCAL_VADER   = "vader"
)

// LocalClassifier is a classifier that runs in process and cannot fail.
type LocalClassifier interface {
	Name() string
	Classify(text string) models.RawClassifierOutput
}

// NewLocalClassifier returns the named local classifier.
func NewLocalClassifier(name string) (LocalClassifier, error) {
	switch name {
	case "", LOCAL_LEXICAL:
		return NewLexical(), nil
	case LOCAL_VADER:
		return NewVader(), nil
	default:
		return nil, fmt.Errorf("unknown local classifier %q", name)
	}
}
