package usecase_test

import (
	"context"
	"testing"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	testhelpers "github.com/inkroute/inkroute/internal/test"
	"github.com/inkroute/inkroute/internal/usecase"
)

type orderFixture struct {
	orders    *testhelpers.OrderRepositoryStub
	vendors   *testhelpers.VendorRepositoryStub
	users     *testhelpers.UserRepositoryStub
	payments  *testhelpers.PaymentVerifierStub
	locations *testhelpers.LocationCacheStub
	uc        *usecase.OrderUseCase
}

func newOrderFixture(skipPayment bool) *orderFixture {
	f := &orderFixture{
		orders:    testhelpers.NewOrderRepositoryStub(),
		vendors:   testhelpers.NewVendorRepositoryStub(),
		users:     testhelpers.NewUserRepositoryStub(),
		payments:  &testhelpers.PaymentVerifierStub{},
		locations: testhelpers.NewLocationCacheStub(),
	}
	f.vendors.Add(&model.Vendor{ID: 1, UserID: 10, Name: "Siam Print", Latitude: 13.7563, Longitude: 100.5018})
	f.uc = usecase.NewOrderUseCase(f.orders, f.vendors, f.users, f.payments, f.locations, skipPayment)
	return f
}

func (f *orderFixture) addRider(id int64, vehicle model.VehicleType) {
	f.users.Add(&model.User{ID: id, Email: "rider@example.com", Role: model.RoleRider, VehicleType: &vehicle})
}

func placeInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		CustomerID:    5,
		CustomerEmail: "customer@example.com",
		VendorID:      1,
		Item:          model.PrintItem{Name: "Business cards", Quantity: 100, PaperSize: "A4", Finish: "Matte"},
		Subtotal:      1200,
		PaymentRef:    "pay-ref-1",
		CustomerLat:   ptr(13.7663),
		CustomerLng:   ptr(100.5018),
	}
}

func TestOrderUseCasePlaceFreezesPricing(t *testing.T) {
	f := newOrderFixture(false)

	order, err := f.uc.Place(context.Background(), placeInput())
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected order ID assigned")
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected PENDING, got %q", order.Status)
	}
	if order.DistanceKm == nil {
		t.Fatal("expected distance computed from the customer fix")
	}
	if *order.DistanceKm > 1.2 || *order.DistanceKm < 1.0 {
		t.Fatalf("unexpected distance: %v km", *order.DistanceKm)
	}
	// 400 + ~1.11*150 rounded up to the next 50.
	if order.DeliveryFee != 600 {
		t.Fatalf("unexpected fee: %v", order.DeliveryFee)
	}
	if order.GrandTotal != order.Subtotal+order.DeliveryFee {
		t.Fatalf("grand total mismatch: %+v", order)
	}
	if len(f.payments.Calls) != 1 || f.payments.Calls[0] != "pay-ref-1" {
		t.Fatalf("expected payment verification call, got %v", f.payments.Calls)
	}
}

func TestOrderUseCasePlaceWithoutFixFallsBack(t *testing.T) {
	f := newOrderFixture(false)
	in := placeInput()
	in.CustomerLat = nil
	in.CustomerLng = nil

	order, err := f.uc.Place(context.Background(), in)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if order.DistanceKm != nil {
		t.Fatal("expected unknown distance")
	}
	if order.DeliveryFee != usecase.FallbackDeliveryFee {
		t.Fatalf("expected fallback fee, got %v", order.DeliveryFee)
	}
}

func TestOrderUseCasePlacePaymentRejected(t *testing.T) {
	f := newOrderFixture(false)
	f.payments.Status = model.PaymentStatusFailed

	if _, err := f.uc.Place(context.Background(), placeInput()); err != domainErrors.ErrPaymentNotVerified {
		t.Fatalf("expected ErrPaymentNotVerified, got %v", err)
	}
	if len(f.orders.Orders) != 0 {
		t.Fatal("expected no order persisted")
	}
}

func TestOrderUseCasePlaceDebugSkipsVerification(t *testing.T) {
	f := newOrderFixture(true)

	if _, err := f.uc.Place(context.Background(), placeInput()); err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if len(f.payments.Calls) != 0 {
		t.Fatalf("expected no gateway calls, got %v", f.payments.Calls)
	}
}

func TestOrderUseCasePlaceInvalidItem(t *testing.T) {
	f := newOrderFixture(true)
	in := placeInput()
	in.Item.Quantity = 0

	if _, err := f.uc.Place(context.Background(), in); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderUseCaseAcceptEligibility(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		wantErr    error
	}{
		{name: "at the bicycle cap", distanceKm: 5.0, wantErr: nil},
		{name: "just past the cap", distanceKm: 5.1, wantErr: domainErrors.ErrVehicleNotEligible},
		{name: "well past the cap", distanceKm: 7.5, wantErr: domainErrors.ErrVehicleNotEligible},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(true)
			f.addRider(20, model.VehicleBicycle)
			km := tc.distanceKm
			f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, DistanceKm: &km, Status: model.OrderStatusReadyForPickup})

			order, err := f.uc.Accept(context.Background(), "ord-1", 20)
			if err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && order.Status != model.OrderStatusOutForDelivery {
				t.Fatalf("expected OUT_FOR_DELIVERY at the cap, got %q", order.Status)
			}
		})
	}
}

func TestOrderUseCaseAcceptAssignsRider(t *testing.T) {
	f := newOrderFixture(true)
	f.addRider(20, model.VehicleMotorcycle)
	far := 7.5
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, DistanceKm: &far, Status: model.OrderStatusReadyForPickup})

	order, err := f.uc.Accept(context.Background(), "ord-1", 20)
	if err != nil {
		t.Fatalf("accept returned error: %v", err)
	}
	if order.Status != model.OrderStatusOutForDelivery {
		t.Fatalf("expected OUT_FOR_DELIVERY, got %q", order.Status)
	}
	if order.RiderID == nil || *order.RiderID != 20 {
		t.Fatalf("expected rider assigned, got %+v", order)
	}
}

func TestOrderUseCaseAcceptAlreadyTaken(t *testing.T) {
	f := newOrderFixture(true)
	f.addRider(20, model.VehicleMotorcycle)
	f.addRider(21, model.VehicleMotorcycle)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, Status: model.OrderStatusReadyForPickup})

	if _, err := f.uc.Accept(context.Background(), "ord-1", 20); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}
	if _, err := f.uc.Accept(context.Background(), "ord-1", 21); err != domainErrors.ErrOrderTaken {
		t.Fatalf("expected ErrOrderTaken, got %v", err)
	}
}

func TestOrderUseCaseAcceptNonRider(t *testing.T) {
	f := newOrderFixture(true)
	f.users.Add(&model.User{ID: 30, Email: "c@example.com", Role: model.RoleCustomer})
	f.orders.Add(&model.Order{ID: "ord-1", Status: model.OrderStatusReadyForPickup})

	if _, err := f.uc.Accept(context.Background(), "ord-1", 30); err != domainErrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOrderUseCaseCompleteByRiderAndCustomer(t *testing.T) {
	f := newOrderFixture(true)
	rider := int64(20)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, RiderID: &rider, Status: model.OrderStatusOutForDelivery})
	f.orders.Add(&model.Order{ID: "ord-2", CustomerID: 5, VendorUserID: 10, RiderID: &rider, Status: model.OrderStatusOutForDelivery})

	byRider, err := f.uc.Complete(context.Background(), "ord-1", 20, model.RoleRider)
	if err != nil {
		t.Fatalf("rider completion failed: %v", err)
	}
	if byRider.Status != model.OrderStatusCompleted || byRider.DeliveredAt == nil {
		t.Fatalf("rider completion incomplete: %+v", byRider)
	}

	byCustomer, err := f.uc.Complete(context.Background(), "ord-2", 5, model.RoleCustomer)
	if err != nil {
		t.Fatalf("customer confirmation failed: %v", err)
	}
	if byCustomer.Status != model.OrderStatusCompleted {
		t.Fatalf("expected COMPLETED, got %q", byCustomer.Status)
	}
}

func TestOrderUseCaseCompleteWrongActor(t *testing.T) {
	f := newOrderFixture(true)
	rider := int64(20)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, RiderID: &rider, Status: model.OrderStatusOutForDelivery})

	if _, err := f.uc.Complete(context.Background(), "ord-1", 99, model.RoleRider); err != domainErrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden for foreign rider, got %v", err)
	}
	if _, err := f.uc.Complete(context.Background(), "ord-1", 10, model.RoleVendor); err != domainErrors.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition for vendor, got %v", err)
	}
}

func TestOrderUseCaseCompleteFromWrongState(t *testing.T) {
	f := newOrderFixture(true)
	rider := int64(20)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, RiderID: &rider, Status: model.OrderStatusPending})

	if _, err := f.uc.Complete(context.Background(), "ord-1", 20, model.RoleRider); err != domainErrors.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestOrderUseCaseListAvailableBicycleCap(t *testing.T) {
	f := newOrderFixture(true)
	f.addRider(20, model.VehicleBicycle)
	near, far := 2.0, 9.0
	f.orders.Add(&model.Order{ID: "near", DistanceKm: &near, Status: model.OrderStatusReadyForPickup})
	f.orders.Add(&model.Order{ID: "far", DistanceKm: &far, Status: model.OrderStatusReadyForPickup})

	orders, err := f.uc.ListAvailable(context.Background(), 20)
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "near" {
		t.Fatalf("expected only the near order, got %+v", orders)
	}
}

func TestOrderUseCaseGetByIDVisibility(t *testing.T) {
	f := newOrderFixture(true)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, Status: model.OrderStatusPending})

	if _, err := f.uc.GetByID(context.Background(), "ord-1", 99, model.RoleCustomer); err != domainErrors.ErrForbidden {
		t.Fatalf("expected ErrForbidden for outsider, got %v", err)
	}
	if _, err := f.uc.GetByID(context.Background(), "ord-1", 99, model.RoleAdmin); err != nil {
		t.Fatalf("admin should see any order: %v", err)
	}
	if _, err := f.uc.GetByID(context.Background(), "ord-1", 5, model.RoleCustomer); err != nil {
		t.Fatalf("participant should see the order: %v", err)
	}
}

func TestOrderUseCaseTrack(t *testing.T) {
	f := newOrderFixture(true)
	rider := int64(20)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, RiderID: &rider, Status: model.OrderStatusOutForDelivery})

	ctx := context.Background()
	if err := f.uc.UpdateRiderLocation(ctx, 20, 13.7663, 100.5018); err != nil {
		t.Fatalf("update location: %v", err)
	}

	info, err := f.uc.Track(ctx, "ord-1", 5, model.RoleCustomer, ptr(13.7563), ptr(100.5018))
	if err != nil {
		t.Fatalf("track returned error: %v", err)
	}
	if info.Status != model.OrderStatusOutForDelivery {
		t.Fatalf("unexpected status: %q", info.Status)
	}
	if info.RemainingKm == nil || *info.RemainingKm > 1.3 {
		t.Fatalf("unexpected remaining distance: %+v", info)
	}
	if info.ETAMinutes == nil || *info.ETAMinutes < 1 {
		t.Fatalf("unexpected eta: %+v", info)
	}
	if info.ProgressPercent <= 50 || info.ProgressPercent > 90 {
		t.Fatalf("unexpected progress for a nearby rider: %d", info.ProgressPercent)
	}
}

func TestOrderUseCaseTrackWithoutFix(t *testing.T) {
	f := newOrderFixture(true)
	rider := int64(20)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, RiderID: &rider, Status: model.OrderStatusOutForDelivery})

	info, err := f.uc.Track(context.Background(), "ord-1", 5, model.RoleCustomer, nil, nil)
	if err != nil {
		t.Fatalf("track returned error: %v", err)
	}
	if info.ProgressPercent != 50 {
		t.Fatalf("expected neutral midpoint without fixes, got %d", info.ProgressPercent)
	}
}

func TestOrderUseCaseTrackNoRiderLocation(t *testing.T) {
	f := newOrderFixture(true)
	rider := int64(20)
	f.orders.Add(&model.Order{ID: "ord-1", CustomerID: 5, VendorUserID: 10, RiderID: &rider, Status: model.OrderStatusOutForDelivery})

	info, err := f.uc.Track(context.Background(), "ord-1", 5, model.RoleCustomer, ptr(13.7563), ptr(100.5018))
	if err != nil {
		t.Fatalf("track returned error: %v", err)
	}
	if info.ProgressPercent != 50 {
		t.Fatalf("expected neutral midpoint without rider fix, got %d", info.ProgressPercent)
	}
}

func TestOrderUseCaseTrackTerminalStates(t *testing.T) {
	f := newOrderFixture(true)
	f.orders.Add(&model.Order{ID: "done", CustomerID: 5, VendorUserID: 10, Status: model.OrderStatusCompleted})
	f.orders.Add(&model.Order{ID: "ready", CustomerID: 5, VendorUserID: 10, Status: model.OrderStatusReadyForPickup})

	done, err := f.uc.Track(context.Background(), "done", 5, model.RoleCustomer, nil, nil)
	if err != nil {
		t.Fatalf("track returned error: %v", err)
	}
	if done.ProgressPercent != 100 {
		t.Fatalf("expected 100%% for completed, got %d", done.ProgressPercent)
	}

	ready, err := f.uc.Track(context.Background(), "ready", 5, model.RoleCustomer, nil, nil)
	if err != nil {
		t.Fatalf("track returned error: %v", err)
	}
	if ready.ProgressPercent != 10 {
		t.Fatalf("expected 10%% before pickup, got %d", ready.ProgressPercent)
	}
}

func TestOrderUseCaseForceStatus(t *testing.T) {
	f := newOrderFixture(true)
	f.orders.Add(&model.Order{ID: "ord-1", Status: model.OrderStatusPending})

	if _, err := f.uc.ForceStatus(context.Background(), "ord-1", "BROKEN"); err != domainErrors.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
	order, err := f.uc.ForceStatus(context.Background(), "ord-1", model.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("force status: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected CANCELLED, got %q", order.Status)
	}
}
