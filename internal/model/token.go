package model

// TokenType classifies a design token.
type TokenType string

const (
	TokenColor      TokenType = "color"
	TokenTypography TokenType = "typography"
	TokenSpacing    TokenType = "spacing"
	TokenShadow     TokenType = "shadow"
	TokenBorder     TokenType = "border"
)

// DesignToken is a flattened, serialization-agnostic design value.
type DesignToken struct {
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	Type        TokenType `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
}
