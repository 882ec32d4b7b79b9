package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Vendors() VendorRepository
	Orders() OrderRepository
	Messages() MessageRepository
	Reviews() ReviewRepository
	Wallets() WalletRepository
	Topups() TopupRepository
	RiderApplications() RiderApplicationRepository
}
