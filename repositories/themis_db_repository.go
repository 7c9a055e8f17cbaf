package repositories

// ThemisDbRepository groups all data access to the application database.
// Methods take an Executor so that callers control transaction scope.
type ThemisDbRepository struct{}
