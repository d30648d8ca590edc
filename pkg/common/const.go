package common

const (
	KEY_DEALS     = "deals:%d:%d"
	KEY_POSITIONS = "positions"
)

const (
	KEY_LOG_HOOK_SEND_ALERT = "send_alert"
)

const (
	DateLayout = "2006-01-02"
)
