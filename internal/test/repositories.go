package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: model.RoleCustomer}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// Add seeds a prebuilt user into the stub.
func (s *UserRepositoryStub) Add(user *model.User) {
	if user.ID == 0 {
		user.ID = s.Next
		s.Next++
	} else if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
	s.Users[user.Email] = user
	s.ByID[user.ID] = user
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		out = append(out, *u)
	}
	return out, nil
}

// SetRole updates a stored user's role and vehicle.
func (s *UserRepositoryStub) SetRole(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Role = role
	user.VehicleType = vehicle
	return nil
}

// SetPushToken stores a device token on the user.
func (s *UserRepositoryStub) SetPushToken(ctx context.Context, userID int64, token string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PushToken = &token
	return nil
}

// VendorRepositoryStub stores vendor profiles in-memory for tests.
type VendorRepositoryStub struct {
	Vendors map[int64]*model.Vendor
	Next    int64
	Err     error
}

// NewVendorRepositoryStub constructs the stub with initialized state.
func NewVendorRepositoryStub() *VendorRepositoryStub {
	return &VendorRepositoryStub{Vendors: make(map[int64]*model.Vendor), Next: 1}
}

// Create stores the vendor and assigns an id.
func (s *VendorRepositoryStub) Create(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *vendor
	stored.ID = s.Next
	s.Next++
	s.Vendors[stored.ID] = &stored
	return &stored, nil
}

// Add seeds a prebuilt vendor into the stub.
func (s *VendorRepositoryStub) Add(vendor *model.Vendor) {
	if vendor.ID == 0 {
		vendor.ID = s.Next
		s.Next++
	} else if vendor.ID >= s.Next {
		s.Next = vendor.ID + 1
	}
	s.Vendors[vendor.ID] = vendor
}

// GetByID fetches vendor by identifier or returns not found.
func (s *VendorRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Vendor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if v, ok := s.Vendors[id]; ok {
		return v, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUser fetches the vendor owned by userID.
func (s *VendorRepositoryStub) GetByUser(ctx context.Context, userID int64) (*model.Vendor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, v := range s.Vendors {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored vendor.
func (s *VendorRepositoryStub) List(ctx context.Context) ([]model.Vendor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Vendor, 0, len(s.Vendors))
	for _, v := range s.Vendors {
		out = append(out, *v)
	}
	return out, nil
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn       func(context.Context, string) (*model.Order, error)
	ListAvailableFn func(context.Context, *float64) ([]model.Order, error)
	MarkReadyFn     func(context.Context, string, int64) (*model.Order, error)
	AssignFn        func(context.Context, string, int64) (*model.Order, error)
	CompleteFn      func(context.Context, string, int64) (*model.Order, error)
	ForceStatusFn   func(context.Context, string, model.OrderStatus) (*model.Order, error)

	Orders map[string]*model.Order
	Next   int
}

// NewOrderRepositoryStub constructs the stub with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order), Next: 1}
}

// Add seeds a prebuilt order into the stub.
func (s *OrderRepositoryStub) Add(order *model.Order) {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", s.Next)
		s.Next++
	}
	s.Orders[order.ID] = order
}

// Create stores the order and assigns an id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	stored := *order
	stored.ID = fmt.Sprintf("order-%d", s.Next)
	stored.CreatedAt = time.Now()
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if o, ok := s.Orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer filters stored orders by customer.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

// ListByVendor filters stored orders by owning vendor user.
func (s *OrderRepositoryStub) ListByVendor(ctx context.Context, vendorUserID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range s.Orders {
		if o.VendorUserID == vendorUserID {
			out = append(out, *o)
		}
	}
	return out, nil
}

// ListByRider filters stored orders by assigned rider.
func (s *OrderRepositoryStub) ListByRider(ctx context.Context, riderID int64) ([]model.Order, error) {
	var out []model.Order
	for _, o := range s.Orders {
		if o.RiderID != nil && *o.RiderID == riderID {
			out = append(out, *o)
		}
	}
	return out, nil
}

// ListAvailable filters unassigned ready orders, honoring the distance cap.
func (s *OrderRepositoryStub) ListAvailable(ctx context.Context, maxDistanceKm *float64) ([]model.Order, error) {
	if s.ListAvailableFn != nil {
		return s.ListAvailableFn(ctx, maxDistanceKm)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.Status != model.OrderStatusReadyForPickup || o.RiderID != nil {
			continue
		}
		if maxDistanceKm != nil && o.DistanceKm != nil && *o.DistanceKm > *maxDistanceKm {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		out = append(out, *o)
	}
	return out, nil
}

// MarkReady flips a pending order owned by vendorUserID to ready.
func (s *OrderRepositoryStub) MarkReady(ctx context.Context, orderID string, vendorUserID int64) (*model.Order, error) {
	if s.MarkReadyFn != nil {
		return s.MarkReadyFn(ctx, orderID, vendorUserID)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.VendorUserID != vendorUserID {
		return nil, domainErrors.ErrForbidden
	}
	if o.Status != model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidTransition
	}
	o.Status = model.OrderStatusReadyForPickup
	copied := *o
	return &copied, nil
}

// Assign performs the conditional rider assignment.
func (s *OrderRepositoryStub) Assign(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	if s.AssignFn != nil {
		return s.AssignFn(ctx, orderID, riderID)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != model.OrderStatusReadyForPickup || o.RiderID != nil {
		return nil, domainErrors.ErrOrderTaken
	}
	o.RiderID = &riderID
	o.Status = model.OrderStatusOutForDelivery
	copied := *o
	return &copied, nil
}

// Complete finalizes an out-for-delivery order.
func (s *OrderRepositoryStub) Complete(ctx context.Context, orderID string, riderID int64) (*model.Order, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, orderID, riderID)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if o.Status != model.OrderStatusOutForDelivery || o.RiderID == nil || *o.RiderID != riderID {
		return nil, domainErrors.ErrInvalidTransition
	}
	now := time.Now()
	o.Status = model.OrderStatusCompleted
	o.DeliveredAt = &now
	copied := *o
	return &copied, nil
}

// ForceStatus overrides the order status unconditionally.
func (s *OrderRepositoryStub) ForceStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.ForceStatusFn != nil {
		return s.ForceStatusFn(ctx, orderID, status)
	}
	o, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.Status = status
	copied := *o
	return &copied, nil
}

// MessageRepositoryStub stores chat messages in-memory for tests.
type MessageRepositoryStub struct {
	AppendFn func(context.Context, *model.Message) (*model.Message, error)
	Messages []model.Message
	Next     int64
}

// Append stores the message and assigns a sequence id.
func (s *MessageRepositoryStub) Append(ctx context.Context, msg *model.Message) (*model.Message, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, msg)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *msg
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Messages = append(s.Messages, stored)
	return &stored, nil
}

// ListByOrder returns the order's messages in append order.
func (s *MessageRepositoryStub) ListByOrder(ctx context.Context, orderID string) ([]model.Message, error) {
	var out []model.Message
	for _, m := range s.Messages {
		if m.OrderID == orderID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ReviewRepositoryStub stores reviews keyed by order for tests.
type ReviewRepositoryStub struct {
	CreateFn func(context.Context, *model.Review) (*model.Review, error)
	ByOrder  map[string]*model.Review
	Next     int64
}

// NewReviewRepositoryStub constructs the stub with initialized state.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{ByOrder: make(map[string]*model.Review), Next: 1}
}

// Create stores the review, enforcing one review per order.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	if _, exists := s.ByOrder[review.OrderID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *review
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.ByOrder[review.OrderID] = &stored
	return &stored, nil
}

// GetByOrder fetches the review for an order.
func (s *ReviewRepositoryStub) GetByOrder(ctx context.Context, orderID string) (*model.Review, error) {
	if r, ok := s.ByOrder[orderID]; ok {
		return r, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByVendor filters stored reviews by vendor.
func (s *ReviewRepositoryStub) ListByVendor(ctx context.Context, vendorID int64) ([]model.Review, error) {
	var out []model.Review
	for _, r := range s.ByOrder {
		if r.VendorID == vendorID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// WalletRepositoryStub tracks balances per user for tests.
type WalletRepositoryStub struct {
	GetSummaryFn func(context.Context, int64) (*model.WalletSummary, error)
	WithdrawFn   func(context.Context, int64, float64) error
	Balances     map[int64]*model.WalletSummary
	Entries      []model.WalletEntry
	Next         int64
}

// NewWalletRepositoryStub constructs the stub with initialized state.
func NewWalletRepositoryStub() *WalletRepositoryStub {
	return &WalletRepositoryStub{Balances: make(map[int64]*model.WalletSummary), Next: 1}
}

func (s *WalletRepositoryStub) summary(userID int64) *model.WalletSummary {
	sum, ok := s.Balances[userID]
	if !ok {
		sum = &model.WalletSummary{}
		s.Balances[userID] = sum
	}
	return sum
}

// GetSummary returns the user's balance snapshot.
func (s *WalletRepositoryStub) GetSummary(ctx context.Context, userID int64) (*model.WalletSummary, error) {
	if s.GetSummaryFn != nil {
		return s.GetSummaryFn(ctx, userID)
	}
	sum := s.summary(userID)
	copied := *sum
	return &copied, nil
}

// Credit adds to the balance and appends a ledger entry.
func (s *WalletRepositoryStub) Credit(ctx context.Context, userID int64, amount float64, orderID *string, note string) error {
	sum := s.summary(userID)
	sum.Balance += amount
	s.Entries = append(s.Entries, model.WalletEntry{
		ID: s.Next, UserID: userID, OrderID: orderID,
		Kind: model.EntryCredit, Amount: amount, Note: note, CreatedAt: time.Now(),
	})
	s.Next++
	return nil
}

// Withdraw debits the balance, rejecting overdrafts.
func (s *WalletRepositoryStub) Withdraw(ctx context.Context, userID int64, amount float64) error {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, userID, amount)
	}
	sum := s.summary(userID)
	if sum.Balance < amount {
		return domainErrors.ErrInsufficientBalance
	}
	sum.Balance -= amount
	sum.Withdrawn += amount
	s.Entries = append(s.Entries, model.WalletEntry{
		ID: s.Next, UserID: userID, Kind: model.EntryDebit, Amount: amount, CreatedAt: time.Now(),
	})
	s.Next++
	return nil
}

// ListEntries returns the user's ledger entries.
func (s *WalletRepositoryStub) ListEntries(ctx context.Context, userID int64) ([]model.WalletEntry, error) {
	var out []model.WalletEntry
	for _, e := range s.Entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// TopupRepositoryStub stores top-up requests for tests.
type TopupRepositoryStub struct {
	SelectFn func(context.Context, int) ([]model.Topup, error)
	SettleFn func(context.Context, int64, model.TopupStatus) error
	Topups   map[int64]*model.Topup
	Settled  []TopupSettleCall
	Next     int64
}

// TopupSettleCall records one settlement invocation.
type TopupSettleCall struct {
	TopupID int64
	Status  model.TopupStatus
}

// NewTopupRepositoryStub constructs the stub with initialized state.
func NewTopupRepositoryStub() *TopupRepositoryStub {
	return &TopupRepositoryStub{Topups: make(map[int64]*model.Topup), Next: 1}
}

// Create stores a new top-up in NEW state.
func (s *TopupRepositoryStub) Create(ctx context.Context, userID int64, reference string, amount float64) (*model.Topup, error) {
	topup := &model.Topup{
		ID: s.Next, UserID: userID, Reference: reference, Amount: amount,
		Status: model.TopupStatusNew, CreatedAt: time.Now(),
	}
	s.Next++
	s.Topups[topup.ID] = topup
	copied := *topup
	return &copied, nil
}

// SelectBatchForProcessing claims unsettled top-ups.
func (s *TopupRepositoryStub) SelectBatchForProcessing(ctx context.Context, limit int) ([]model.Topup, error) {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, limit)
	}
	var out []model.Topup
	for _, t := range s.Topups {
		if len(out) >= limit {
			break
		}
		if t.Status == model.TopupStatusNew || t.Status == model.TopupStatusProcessing {
			t.Status = model.TopupStatusProcessing
			out = append(out, *t)
		}
	}
	return out, nil
}

// Settle records the gateway's verdict.
func (s *TopupRepositoryStub) Settle(ctx context.Context, topupID int64, status model.TopupStatus) error {
	if s.SettleFn != nil {
		return s.SettleFn(ctx, topupID, status)
	}
	t, ok := s.Topups[topupID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	t.Status = status
	s.Settled = append(s.Settled, TopupSettleCall{TopupID: topupID, Status: status})
	return nil
}

// RiderApplicationRepositoryStub stores rider applications for tests. When
// Users is set, approval grants the rider role the way the real repository
// does inside its transaction.
type RiderApplicationRepositoryStub struct {
	Applications map[int64]*model.RiderApplication
	Users        *UserRepositoryStub
	DecideFn     func(context.Context, int64, model.ApplicationStatus) error
	Next         int64
}

// NewRiderApplicationRepositoryStub constructs the stub with initialized state.
func NewRiderApplicationRepositoryStub() *RiderApplicationRepositoryStub {
	return &RiderApplicationRepositoryStub{Applications: make(map[int64]*model.RiderApplication), Next: 1}
}

// Create stores the application in PENDING state.
func (s *RiderApplicationRepositoryStub) Create(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error) {
	stored := *app
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Applications[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches an application or returns not found.
func (s *RiderApplicationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.RiderApplication, error) {
	if a, ok := s.Applications[id]; ok {
		return a, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListPending returns applications awaiting review.
func (s *RiderApplicationRepositoryStub) ListPending(ctx context.Context) ([]model.RiderApplication, error) {
	var out []model.RiderApplication
	for _, a := range s.Applications {
		if a.Status == model.ApplicationStatusPending {
			out = append(out, *a)
		}
	}
	return out, nil
}

// Decide records the review decision.
func (s *RiderApplicationRepositoryStub) Decide(ctx context.Context, id int64, status model.ApplicationStatus) error {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, id, status)
	}
	a, ok := s.Applications[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	a.Status = status
	if status == model.ApplicationStatusApproved && s.Users != nil {
		if user, ok := s.Users.ByID[a.UserID]; ok {
			vehicle := a.VehicleType
			user.Role = model.RoleRider
			user.VehicleType = &vehicle
		}
	}
	return nil
}
