package constants

// Centralized constants for env keys, routes, JSON keys and log fields.
const (
	// Environment variable keys
	EnvConfigPath    = "BOSSCARDS_CONFIG"
	EnvDBPath        = "BOSSCARDS_DB"
	EnvAddress       = "BOSSCARDS_ADDR"
	EnvActionTimeout = "BOSSCARDS_ACTION_TIMEOUT"

	DefaultConfigPath = "./bosscards.yaml"
	DefaultDBPath     = "./data/bosscards.db"
	DefaultAddress    = ":8080"

	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteCards        = "/cards"
	RouteLeaderboard  = "/leaderboard"
	RouteVersion      = "/version"
	RouteGames        = "/games"
	RouteGameByID     = "/games/:gameID"
	RouteGameValidate = "/games/:gameID/validate"
	RouteGameAction   = "/games/:gameID/action"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyCode   = "code"
	JSONKeyGameID = "game_id"
	JSONKeyView   = "view"
	JSONKeyOK     = "ok"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidSide            = "Invalid side"
	ErrInvalidAction          = "Invalid action"
	ErrGameNotFound           = "Game not found"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrServerError            = "Server error"
	ErrSideControlledByAI     = "Side is controlled by the computer"
)

// Messages returned with a rejection code
const (
	ErrGameOver            = "Game is over"
	ErrNotYourTurn         = "Not your turn"
	ErrWrongPhase          = "Actions are not accepted in this phase"
	ErrUnitNotAvailable    = "Unit is not available"
	ErrActionNotFound      = "Unit has no such action"
	ErrAPNotEnough         = "Not enough action points"
	ErrCardNotInHand       = "Card is not in hand"
	ErrCardTypeMismatch    = "Card cannot be played this way"
	ErrSupportAlreadyUsed  = "A support card was already played this turn"
	ErrEquipTargetNotFound = "Equip target not found"
	ErrUnknownAction       = "Unknown action"
	ErrInvalidTarget       = "Invalid target"
	ErrBossNotFound        = "Unknown boss"
)

// Logging field names
const (
	LogFieldGameID = "game_id"
	LogFieldSide   = "side"
	LogFieldCode   = "code"
	LogFieldAction = "action"
	LogFieldStatus = "status"
	LogFieldRound  = "round"
	LogFieldSeed   = "seed"
	LogFieldBoss   = "boss"
	LogFieldAddr   = "addr"
	LogFieldPath   = "path"
	LogFieldCount  = "count"
)
