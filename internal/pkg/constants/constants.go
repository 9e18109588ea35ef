package constants

const (
	ViperSecretKey        = "auth.secret"
	ViperAdminUsernameKey = "admin.username"
	ViperAdminPasswordKey = "admin.password"

	CookieKeySecretToken = "lwc_admin"
	CtxKeyAdmin          = "admin"
)

// Keys of the persisted key-value blobs.
const (
	StorageKeyPlaces   = "lwc_places"
	StorageKeyDesserts = "lwc_desserts"
	StorageKeyStats    = "lwc_stats"
	// StorageKeyDate is read for backward compatibility only; rollover never consumes it.
	StorageKeyDate = "lwc_date"
)
