package constants

type (
	LoginMethod   string
	APIStatus     string
	StoragePrefix string
)

const (
	LoginMethodCredentials LoginMethod = "CREDENTIALS"
	LoginMethodX           LoginMethod = "X_OAUTH"

	APIStatusOk    APIStatus = "success"
	APIStatusError APIStatus = "error"

	// "local storage" survives until logout, "session storage" is scoped to one login attempt.
	StoragePrefixLocal   StoragePrefix = "local:"
	StoragePrefixSession StoragePrefix = "session:"
)

const (
	// KPIImpressionThreshold is the fixed impression count a post must reach to meet KPI.
	KPIImpressionThreshold = 1000

	// EarningsPerApprovedRecord is what a raider earns for each approved, KPI-met record.
	EarningsPerApprovedRecord = 10

	IdentityStorageKey = "user"
	AttemptStorageKey  = "x_login_attempt"

	ClientCookieName = "raid_client"

	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	AvatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)
