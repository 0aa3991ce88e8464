package palette

import (
	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/model"
)

// Semantic returns the success/warning/error/info row for sector. Unknown
// sectors use the tech row.
func Semantic(sector config.Sector) model.SemanticColors {
	switch sector {
	case config.SectorFinance:
		return model.SemanticColors{Success: "#059669", Warning: "#d97706", Error: "#dc2626", Info: "#2563eb"}
	case config.SectorHealth:
		return model.SemanticColors{Success: "#22c55e", Warning: "#eab308", Error: "#e11d48", Info: "#0ea5e9"}
	case config.SectorEducation:
		return model.SemanticColors{Success: "#16a34a", Warning: "#f97316", Error: "#dc2626", Info: "#6366f1"}
	case config.SectorRetail:
		return model.SemanticColors{Success: "#84cc16", Warning: "#fbbf24", Error: "#f43f5e", Info: "#06b6d4"}
	case config.SectorCreative:
		return model.SemanticColors{Success: "#14b8a6", Warning: "#f59e0b", Error: "#ec4899", Info: "#8b5cf6"}
	case config.SectorTech:
		fallthrough
	default:
		return model.SemanticColors{Success: "#10b981", Warning: "#f59e0b", Error: "#ef4444", Info: "#3b82f6"}
	}
}
