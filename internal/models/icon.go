package models

// SectionIcon identifies one of the symbolic icons a section may display.
// The set is closed; anything outside it is rejected before persistence.
type SectionIcon string

const (
	IconShield        SectionIcon = "Shield"
	IconUsers         SectionIcon = "Users"
	IconHeart         SectionIcon = "Heart"
	IconAlertTriangle SectionIcon = "AlertTriangle"
	IconSettings      SectionIcon = "Settings"
	IconDatabase      SectionIcon = "Database"
	IconLock          SectionIcon = "Lock"
	IconGlobe         SectionIcon = "Globe"
	IconZap           SectionIcon = "Zap"
	IconStar          SectionIcon = "Star"
	IconCrown         SectionIcon = "Crown"
	IconAward         SectionIcon = "Award"
	IconMessageCircle SectionIcon = "MessageCircle"
)

var sectionIcons = map[SectionIcon]string{
	IconShield:        "Scudo",
	IconUsers:         "Utenti",
	IconHeart:         "Cuore",
	IconAlertTriangle: "Avviso",
	IconSettings:      "Impostazioni",
	IconDatabase:      "Database",
	IconLock:          "Lucchetto",
	IconGlobe:         "Globo",
	IconZap:           "Fulmine",
	IconStar:          "Stella",
	IconCrown:         "Corona",
	IconAward:         "Premio",
	IconMessageCircle: "Messaggio",
}

// ValidIcon reports whether name belongs to the closed icon set.
func ValidIcon(name string) bool {
	_, ok := sectionIcons[SectionIcon(name)]
	return ok
}

// IconLabel returns the display label for an icon, or the empty string for
// an unknown one.
func IconLabel(icon SectionIcon) string {
	return sectionIcons[icon]
}

// Icons lists the closed icon set in a stable order for clients that render
// a picker.
func Icons() []SectionIcon {
	return []SectionIcon{
		IconShield, IconUsers, IconHeart, IconAlertTriangle,
		IconSettings, IconDatabase, IconLock, IconGlobe,
		IconZap, IconStar, IconCrown, IconAward, IconMessageCircle,
	}
}
