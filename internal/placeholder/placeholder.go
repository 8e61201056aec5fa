// Package placeholder holds the fixed demo dataset served when no backing
// store is configured or reachable. It is a product decision (first-run and
// demo use), not a resilience mechanism.
package placeholder

import (
	"time"

	"github.com/maracujarp/rulebook-api/internal/models"
)

var seededAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Sections returns the fixed placeholder section tree, ordered by ordinal
// position. Callers receive a fresh copy on every call and may mutate it
// freely.
func Sections() []models.Section {
	return []models.Section{
		{
			ID:          "1",
			Title:       "Regole Generali",
			Description: "Regole fondamentali del server",
			Icon:        string(models.IconShield),
			OrderIndex:  1,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
			Rules: []models.Rule{
				{
					ID:         "1-1",
					SectionID:  "1",
					Title:      "Rispetto reciproco",
					Content:    "Tutti i giocatori devono trattarsi con rispetto reciproco. Non sono tollerati insulti, discriminazioni o comportamenti offensivi.",
					OrderIndex: 1,
					CreatedAt:  seededAt,
					UpdatedAt:  seededAt,
				},
				{
					ID:         "1-2",
					SectionID:  "1",
					Title:      "Divieto di cheating",
					Content:    "È severamente vietato l'uso di cheat, hack, mod non autorizzate o qualsiasi forma di vantaggio sleale.",
					OrderIndex: 2,
					CreatedAt:  seededAt,
					UpdatedAt:  seededAt,
				},
			},
		},
		{
			ID:          "2",
			Title:       "Roleplay",
			Description: "Regole per il gioco di ruolo",
			Icon:        string(models.IconUsers),
			OrderIndex:  2,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
			Rules: []models.Rule{
				{
					ID:         "2-1",
					SectionID:  "2",
					Title:      "Mantieni il personaggio",
					Content:    "Devi sempre rimanere nel personaggio (IC - In Character) durante il gioco. Evita riferimenti al mondo reale.",
					OrderIndex: 1,
					CreatedAt:  seededAt,
					UpdatedAt:  seededAt,
				},
				{
					ID:         "2-2",
					SectionID:  "2",
					Title:      "Divieto di metagaming",
					Content:    "Non utilizzare informazioni ottenute fuori dal gioco (OOC) per avvantaggiarti nel roleplay.",
					OrderIndex: 2,
					CreatedAt:  seededAt,
					UpdatedAt:  seededAt,
				},
			},
		},
		{
			ID:          "3",
			Title:       "Chat e Comunicazione",
			Description: "Regole per chat e comunicazione",
			Icon:        string(models.IconMessageCircle),
			OrderIndex:  3,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
			Rules: []models.Rule{
				{
					ID:         "3-1",
					SectionID:  "3",
					Title:      "Linguaggio appropriato",
					Content:    "Utilizza un linguaggio appropriato in tutte le chat. Evita spam, caps lock eccessivo e messaggi ripetitivi.",
					OrderIndex: 1,
					CreatedAt:  seededAt,
					UpdatedAt:  seededAt,
				},
			},
		},
	}
}
