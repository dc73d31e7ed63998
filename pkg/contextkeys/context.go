package contextkeys

type ContextKey string

// DBContextKey holds the *gorm.DB for the current request. DBMiddleware sets
// it to the shared pool, or to a transaction when a test injected one.
const DBContextKey ContextKey = "db"
