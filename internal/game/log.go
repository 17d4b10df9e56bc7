package game

// LogKind classifies an audit entry.
type LogKind string

const (
	LogGameStart LogKind = "game_start"
	LogUseAction LogKind = "use_action"
	LogSupport   LogKind = "play_support"
	LogField     LogKind = "play_field"
	LogEquip     LogKind = "equip"
	LogEvent     LogKind = "play_event"
	LogEndTurn   LogKind = "end_turn"
	LogTurnStart LogKind = "turn_start"
	LogBossRoll  LogKind = "boss_roll"
	LogGameOver  LogKind = "game_over"
)

// LogEntry is one append-only audit record. The reducer writes these but
// never reads them back; they exist for replay and display.
type LogEntry struct {
	Seq     int      `json:"seq"`
	Round   int      `json:"round"`
	Turn    Side     `json:"turn"`
	Kind    LogKind  `json:"kind"`
	Side    Side     `json:"side,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Action  string   `json:"action,omitempty"`
	Card    string   `json:"card,omitempty"`
	Mode    string   `json:"mode,omitempty"`
	Value   int      `json:"value,omitempty"`
	Die     int      `json:"die,omitempty"`
	RawDie  int      `json:"raw_die,omitempty"`
	RollNo  int      `json:"roll_no,omitempty"`
	Targets []string `json:"targets,omitempty"`
	Message string   `json:"message"`
}
