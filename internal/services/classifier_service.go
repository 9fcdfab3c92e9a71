package services

import (
	"strings"

	"skywatch/milmon/internal/models"
)

// squawkHijack always flags offensive regardless of category.
const squawkHijack = "7500"

// typeToCategory maps ICAO type-code prefixes to categories. Matching
// is longest-prefix-wins on the upper-cased type code.
var typeToCategory = map[string]models.Category{
	"F14": models.CategoryFighter, "F15": models.CategoryFighter,
	"F16": models.CategoryFighter, "F18": models.CategoryFighter,
	"F22": models.CategoryFighter, "F35": models.CategoryFighter,
	"FA18": models.CategoryFighter, "F/A": models.CategoryFighter,
	"TYPH": models.CategoryFighter, "EUFI": models.CategoryFighter,
	"TORN": models.CategoryFighter, "GRIP": models.CategoryFighter,
	"SU27": models.CategoryFighter, "SU30": models.CategoryFighter,
	"SU35": models.CategoryFighter, "SU57": models.CategoryFighter,
	"MIG29": models.CategoryFighter, "MIG31": models.CategoryFighter,
	"MIG35": models.CategoryFighter, "J20": models.CategoryFighter,

	"B1": models.CategoryBomber, "B2": models.CategoryBomber,
	"B52": models.CategoryBomber, "TU95": models.CategoryBomber,
	"TU160": models.CategoryBomber, "TU22": models.CategoryBomber,
	"H6": models.CategoryBomber,

	"KC10": models.CategoryTanker, "KC135": models.CategoryTanker,
	"KC46": models.CategoryTanker, "K35R": models.CategoryTanker,
	"A332": models.CategoryTanker, "IL78": models.CategoryTanker,
	"A310": models.CategoryTanker,

	"C130": models.CategoryTransport, "C17": models.CategoryTransport,
	"C5": models.CategoryTransport, "A400": models.CategoryTransport,
	"IL76": models.CategoryTransport, "AN12": models.CategoryTransport,
	"AN22": models.CategoryTransport, "AN124": models.CategoryTransport,
	"AN225": models.CategoryTransport,

	"E3": models.CategoryAwacs, "E8": models.CategoryAwacs,
	"A50": models.CategoryAwacs, "KJ": models.CategoryAwacs,
	"RJ35": models.CategoryAwacs,

	"RC135": models.CategorySpecial, "U2": models.CategorySpecial,
	"OC135": models.CategorySpecial, "WC135": models.CategorySpecial,

	"H60": models.CategoryHelicopter, "AH64": models.CategoryHelicopter,
	"CH47": models.CategoryHelicopter, "UH60": models.CategoryHelicopter,
	"KA52": models.CategoryHelicopter, "MI24": models.CategoryHelicopter,
	"MI28": models.CategoryHelicopter, "MI8": models.CategoryHelicopter,

	"RQ4": models.CategoryUAV, "MQ9": models.CategoryUAV,
	"GLOB": models.CategoryUAV, "REAP": models.CategoryUAV,
	"TB2": models.CategoryUAV, "WING": models.CategoryUAV,

	"T38": models.CategoryTrainer, "HAWK": models.CategoryTrainer,
	"L39": models.CategoryTrainer, "M346": models.CategoryTrainer,
}

// Classifier derives a category and offensive flag from an aircraft's
// type code and squawk. It is pure and holds no mutable state beyond
// its configured offensive set.
type Classifier struct {
	offensive map[models.Category]bool
}

// NewClassifier creates a classifier with the given offensive category
// set. A nil set falls back to {fighter, bomber}.
func NewClassifier(offensive map[models.Category]bool) *Classifier {
	if len(offensive) == 0 {
		offensive = map[models.Category]bool{
			models.CategoryFighter: true,
			models.CategoryBomber:  true,
		}
	}
	return &Classifier{offensive: offensive}
}

// Classify maps a type code and squawk to (category, offensive).
// An empty type code classifies as unknown; a type code matching no
// prefix classifies as other. Neither is an error.
func (c *Classifier) Classify(typeCode, squawk string) (models.Category, bool) {
	category := CategoryForType(typeCode)
	offensive := c.offensive[category] || squawk == squawkHijack
	return category, offensive
}

// CategoryForType maps an ICAO type code to a category using
// longest-prefix matching.
func CategoryForType(typeCode string) models.Category {
	typeCode = strings.ToUpper(strings.TrimSpace(typeCode))
	if typeCode == "" {
		return models.CategoryUnknown
	}

	var (
		best    models.Category
		bestLen int
	)
	for prefix, cat := range typeToCategory {
		if len(prefix) > bestLen && strings.HasPrefix(typeCode, prefix) {
			best = cat
			bestLen = len(prefix)
		}
	}
	if bestLen == 0 {
		return models.CategoryOther
	}
	return best
}
