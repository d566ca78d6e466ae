package domain

// local setting keys
const (
	SettingLastPersonaID = "last_persona_id"
)
