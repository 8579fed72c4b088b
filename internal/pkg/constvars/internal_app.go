package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PORTAL_SESSION_ID_KEY    ContextKey = "portal_session_id"
	CONTEXT_SESSION_STORE_KEY        ContextKey = "session_store"
	CONTEXT_DURABLE_STORAGE_KEY      ContextKey = "durable_storage"
	CONTEXT_CURRENT_PATH_KEY         ContextKey = "current_path"
)

const (
	REQUEST_ID_PREFIX = "DOCAI_PORTAL_"
)

const (
	// Durable storage keys shared by the API client and the session store.
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

const (
	PortalSessionCookieName  = "docai_portal_sid"
	PortalSessionRedisFormat = "portal:session:%s:%s"
	PortalFlashRedisFormat   = "portal:flash:%s"
	DefaultCLISessionDir     = "docai"
	DefaultCLISessionFile    = "session.json"
)

const (
	DefaultPageLimit     = 10
	SessionActivityLimit = 20
	ReportTypeAll        = "all"
	ReportCacheKeyFormat = "reports/%s/%s.pdf"
)
