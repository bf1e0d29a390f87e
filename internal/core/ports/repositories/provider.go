package repositories

// RepositoryProvider bundles the concrete repositories handed to service
// construction.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	UserRepo        UserRepositoryFacade
}
