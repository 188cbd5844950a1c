package site

import "github.com/meur/gemwiki/internal/models"

// groupIcon is the Phosphor glyph shown in a section header
func groupIcon(g models.Group) string {
	switch g {
	case models.GroupStockCharacters:
		return "ph-users-three"
	case models.GroupReboldouex:
		return "ph-buildings"
	case models.GroupCoimbra:
		return "ph-anchor"
	case models.GroupAuch:
		return "ph-city"
	case models.GroupUstiur:
		return "ph-tree-palm"
	case models.GroupBahamar:
		return "ph-mountains"
	case models.GroupLosToldos:
		return "ph-skull"
	case models.GroupKatovic:
		return "ph-snowflake"
	case models.GroupGigante:
		return "ph-island"
	case models.GroupUnreleased:
		return "ph-lock-key"
	case models.GroupUnknown:
		return "ph-question"
	default:
		return "ph-caret-right"
	}
}

// groupColor is the accent of a section header
func groupColor(g models.Group) string {
	switch g {
	case models.GroupStockCharacters:
		return "text-accent-gold"
	case models.GroupUnreleased:
		return "text-accent-red"
	case models.GroupUnknown:
		return "text-gray-500"
	default:
		return "text-accent-blue"
	}
}

type cardStyle struct {
	Card  string
	Image string
	Label string
}

// styleFor dims unreleased characters until hovered
func styleFor(g models.Group) cardStyle {
	if g == models.GroupUnreleased {
		return cardStyle{
			Card:  "opacity-70 hover:opacity-100",
			Image: "grayscale group-hover:grayscale-0 transition-all",
			Label: "text-gray-400",
		}
	}
	return cardStyle{
		Image: "group-hover:scale-110 transition-transform",
		Label: "text-gray-300",
	}
}
