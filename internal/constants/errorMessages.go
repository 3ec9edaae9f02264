package constants

const (
	StatusError          = "Error"
	StatusUnauthorized   = "Not signed in"
	StatusForbidden      = "Insufficient role"
	StatusInvalidRequest = "Invalid request body"
	StatusIgnored        = "Submission ignored"
)

const (
	MsgXLoginFailed      = "X login failed. Please try again."
	MsgInvalidCallback   = "Invalid OAuth callback"
	MsgSessionRestore    = "Stored identity was unreadable and has been discarded"
	MsgNeedAdmin         = "Unauthorized. Need admin role"
	MsgNeedRaider        = "Unauthorized. Need raider role"
	MsgTooManyRequests   = "Too many requests"
	MsgReportUnavailable = "Failed to build daily report"
)
