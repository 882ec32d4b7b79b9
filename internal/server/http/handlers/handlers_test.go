package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/server/http/dto"
	"github.com/inkroute/inkroute/internal/server/http/middleware"
	testhelpers "github.com/inkroute/inkroute/internal/test"
	"github.com/inkroute/inkroute/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64, role model.Role) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.UserRoleContextKey, role)
		c.Set(middleware.UserEmailContextKey, "user@example.com")
	}
}

func TestCurrentUserHelpers(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}
	if got := CurrentUserRole(c); got != "" {
		t.Fatalf("expected empty role when not set, got %q", got)
	}
	if got := CurrentUserEmail(c); got != "" {
		t.Fatalf("expected empty email when not set, got %q", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	c.Set(middleware.UserRoleContextKey, model.RoleRider)
	c.Set(middleware.UserEmailContextKey, "rider@example.com")
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := CurrentUserRole(c); got != model.RoleRider {
		t.Fatalf("unexpected role %q", got)
	}
	if got := CurrentUserEmail(c); got != "rider@example.com" {
		t.Fatalf("unexpected email %q", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	email := testhelpers.RandomASCIIString(7, 14) + "@example.com"
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Email: email, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotEmail, gotPassword string) (*model.User, string, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		return &model.User{ID: 7, Email: email, Role: model.RoleCustomer}, "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	var decoded dto.AuthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Token != "session-token" || decoded.User.Email != email {
		t.Fatalf("unexpected response: %+v", decoded)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "inkroute_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named inkroute_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"email":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "already exists", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Email: "user@example.com", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"b"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerMe(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{UserFn: func(ctx context.Context, id int64) (*model.User, error) {
		if id != 9 {
			t.Fatalf("unexpected user id %d", id)
		}
		return &model.User{ID: id, Email: "me@example.com", Role: model.RoleVendor}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/me", handler.Me, asUser(9, model.RoleVendor), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != 9 || decoded.Role != string(model.RoleVendor) {
		t.Fatalf("unexpected profile: %+v", decoded)
	}
}

func TestAuthHandlerApplyRider(t *testing.T) {
	body, _ := json.Marshal(dto.RiderApplicationRequest{Name: "Ade", Phone: "0801", VehicleType: "Motorcycle", PlateNumber: "ABC-123"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{ApplyFn: func(ctx context.Context, app *model.RiderApplication) (*model.RiderApplication, error) {
		if app.UserID != 5 || app.VehicleType != model.VehicleMotorcycle {
			t.Fatalf("unexpected application: %+v", app)
		}
		out := *app
		out.ID = 3
		out.Status = model.ApplicationStatusPending
		return &out, nil
	}})
	resp := performRequest(t, http.MethodPost, "/rider-application", handler.ApplyRider, asUser(5, model.RoleCustomer), body, nil)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", resp.Code)
	}
}

func TestOrderHandlerPlace(t *testing.T) {
	body, _ := json.Marshal(dto.PlaceOrderRequest{
		VendorID:   2,
		Item:       dto.PrintItemPayload{Name: "Flyers", Quantity: 100, PaperSize: "A5", Finish: "Glossy"},
		Subtotal:   1200,
		PaymentRef: "txn-1",
	})
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, in usecase.PlaceOrderInput) (*model.Order, error) {
		if in.CustomerID != 1 || in.VendorID != 2 || in.Item.Quantity != 100 {
			t.Fatalf("unexpected input: %+v", in)
		}
		return &model.Order{ID: "order-1", CustomerID: in.CustomerID, VendorID: in.VendorID, Status: model.OrderStatusPending}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Place, asUser(1, model.RoleCustomer), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerPlaceFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.PlaceOrderRequest{VendorID: 2, Subtotal: 100, PaymentRef: "txn-1"})
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "payment not verified", body: valid, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, usecase.PlaceOrderInput) (*model.Order, error) {
			return nil, domainErrors.ErrPaymentNotVerified
		}}, status: http.StatusPaymentRequired},
		{name: "unknown vendor", body: valid, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, usecase.PlaceOrderInput) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", body: valid, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, usecase.PlaceOrderInput) (*model.Order, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(tt.facade).Place, asUser(1, model.RoleCustomer), tt.body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerListScopesToRole(t *testing.T) {
	tests := []struct {
		name string
		role model.Role
	}{
		{name: "customer", role: model.RoleCustomer},
		{name: "vendor", role: model.RoleVendor},
		{name: "rider", role: model.RoleRider},
		{name: "admin", role: model.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := []model.Order{{ID: "order-1"}, {ID: "order-2"}}
			facade := testhelpers.OrderFacadeStub{
				ListFn: func(context.Context, int64) ([]model.Order, error) { return orders, nil },
				AllFn:  func(context.Context) ([]model.Order, error) { return orders, nil },
			}
			resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asUser(1, tt.role), nil, nil)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.Code)
			}
			var decoded []dto.OrderResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(decoded) != len(orders) {
				t.Fatalf("expected %d orders, got %d", len(orders), len(decoded))
			}
		})
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{ListFn: func(context.Context, int64) ([]model.Order, error) {
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asUser(1, model.RoleCustomer), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerAvailable(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/available", NewOrderHandler(testhelpers.OrderFacadeStub{}).Available, asUser(3, model.RoleRider), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Status != string(model.OrderStatusReadyForPickup) {
		t.Fatalf("unexpected feed: %+v", decoded)
	}
}

func TestOrderHandlerLifecycleActions(t *testing.T) {
	tests := []struct {
		name    string
		handler func(*OrderHandler) gin.HandlerFunc
		role    model.Role
		status  model.OrderStatus
	}{
		{name: "ready", handler: func(h *OrderHandler) gin.HandlerFunc { return h.Ready }, role: model.RoleVendor, status: model.OrderStatusReadyForPickup},
		{name: "accept", handler: func(h *OrderHandler) gin.HandlerFunc { return h.Accept }, role: model.RoleRider, status: model.OrderStatusOutForDelivery},
		{name: "complete", handler: func(h *OrderHandler) gin.HandlerFunc { return h.Complete }, role: model.RoleRider, status: model.OrderStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
			resp := performRequest(t, http.MethodPost, "/orders/:id/"+tt.name, tt.handler(handler), asUser(3, tt.role), nil, nil)
			if resp.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", resp.Code)
			}
			var decoded dto.OrderResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if decoded.Status != string(tt.status) {
				t.Fatalf("expected status %s, got %s", tt.status, decoded.Status)
			}
		})
	}
}

func TestOrderHandlerAcceptRace(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{AcceptFn: func(context.Context, string, int64) (*model.Order, error) {
		return nil, domainErrors.ErrOrderTaken
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/accept", NewOrderHandler(facade).Accept, asUser(3, model.RoleRider), nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestOrderHandlerForceStatus(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{ForceFn: func(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
		if status != model.OrderStatusCancelled {
			t.Fatalf("unexpected status %s", status)
		}
		return &model.Order{ID: orderID, Status: status}, nil
	}}
	body, _ := json.Marshal(dto.ForceStatusRequest{Status: "CANCELLED"})
	resp := performRequest(t, http.MethodPut, "/orders/:id/status", NewOrderHandler(facade).ForceStatus, asUser(4, model.RoleAdmin), body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	body, _ = json.Marshal(dto.ForceStatusRequest{Status: "TELEPORTED"})
	resp = performRequest(t, http.MethodPut, "/orders/:id/status", NewOrderHandler(facade).ForceStatus, asUser(4, model.RoleAdmin), body, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown status, got %d", resp.Code)
	}
}

func TestOrderHandlerLocation(t *testing.T) {
	var gotLat, gotLng float64
	facade := testhelpers.OrderFacadeStub{LocationFn: func(ctx context.Context, riderID int64, lat, lng float64) error {
		gotLat, gotLng = lat, lng
		return nil
	}}
	body, _ := json.Marshal(dto.LocationUpdateRequest{Latitude: 6.5244, Longitude: 3.3792})
	resp := performRequest(t, http.MethodPost, "/riders/location", NewOrderHandler(facade).Location, asUser(3, model.RoleRider), body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotLat != 6.5244 || gotLng != 3.3792 {
		t.Fatalf("unexpected fix %f %f", gotLat, gotLng)
	}
}

func TestOrderHandlerTrack(t *testing.T) {
	remaining := 1.2
	eta := 4
	facade := testhelpers.OrderFacadeStub{TrackFn: func(ctx context.Context, orderID string, requesterID int64, requesterRole model.Role, lat, lng *float64) (*usecase.TrackingInfo, error) {
		if lat == nil || *lat != 6.5 {
			t.Fatalf("expected lat query to reach facade, got %v", lat)
		}
		return &usecase.TrackingInfo{
			Status:          model.OrderStatusOutForDelivery,
			ProgressPercent: 70,
			RemainingKm:     &remaining,
			ETAMinutes:      &eta,
		}, nil
	}}
	router := gin.New()
	router.GET("/orders/:id/track", func(c *gin.Context) {
		asUser(1, model.RoleCustomer)(c)
		NewOrderHandler(facade).Track(c)
	})
	req := httptest.NewRequest(http.MethodGet, "/orders/order-1/track?lat=6.5&lng=3.3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var decoded dto.TrackResponse
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ProgressPercent != 70 || decoded.ETAMinutes == nil || *decoded.ETAMinutes != 4 {
		t.Fatalf("unexpected snapshot: %+v", decoded)
	}
}

func TestChatHandlerPost(t *testing.T) {
	body, _ := json.Marshal(dto.PostMessageRequest{Text: "where are you?"})
	facade := testhelpers.ChatFacadeStub{PostFn: func(ctx context.Context, orderID string, senderID int64, senderRole model.Role, senderName, text string, image *string) (*model.Message, error) {
		if senderID != 1 || text != "where are you?" {
			t.Fatalf("unexpected message args: %d %q", senderID, text)
		}
		return &model.Message{ID: 1, OrderID: orderID, SenderID: senderID, Text: text}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/messages", NewChatHandler(facade).Post, asUser(1, model.RoleCustomer), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestChatHandlerPostFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.PostMessageRequest{Text: "hi"})
	tests := []struct {
		name   string
		facade testhelpers.ChatFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "outsider", body: valid, facade: testhelpers.ChatFacadeStub{PostFn: func(context.Context, string, int64, model.Role, string, string, *string) (*model.Message, error) {
			return nil, domainErrors.ErrForbidden
		}}, status: http.StatusForbidden},
		{name: "empty", body: valid, facade: testhelpers.ChatFacadeStub{PostFn: func(context.Context, string, int64, model.Role, string, string, *string) (*model.Message, error) {
			return nil, domainErrors.ErrEmptyMessage
		}}, status: http.StatusBadRequest},
		{name: "oversized image", body: valid, facade: testhelpers.ChatFacadeStub{PostFn: func(context.Context, string, int64, model.Role, string, string, *string) (*model.Message, error) {
			return nil, domainErrors.ErrAttachmentTooLarge
		}}, status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders/:id/messages", NewChatHandler(tt.facade).Post, asUser(1, model.RoleCustomer), tt.body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestChatHandlerHistory(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/:id/messages", NewChatHandler(testhelpers.ChatFacadeStub{}).History, asUser(1, model.RoleCustomer), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	empty := testhelpers.ChatFacadeStub{HistoryFn: func(context.Context, string, int64, model.Role) ([]model.Message, error) {
		return nil, nil
	}}
	resp = performRequest(t, http.MethodGet, "/orders/:id/messages", NewChatHandler(empty).History, asUser(1, model.RoleCustomer), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestReviewHandlerSubmit(t *testing.T) {
	body, _ := json.Marshal(dto.ReviewRequest{VendorRating: 5, RiderRating: 4, Comment: "fast"})
	facade := testhelpers.ReviewFacadeStub{SubmitFn: func(ctx context.Context, orderID string, customerID int64, vendorRating, riderRating int, comment string) (*model.Review, error) {
		if vendorRating != 5 || riderRating != 4 {
			t.Fatalf("unexpected ratings %d %d", vendorRating, riderRating)
		}
		return &model.Review{ID: 1, OrderID: orderID, CustomerID: customerID, VendorRating: vendorRating, RiderRating: riderRating, Comment: comment}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/orders/:id/review", NewReviewHandler(facade).Submit, asUser(1, model.RoleCustomer), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestReviewHandlerSubmitFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.ReviewRequest{VendorRating: 5, RiderRating: 4})
	tests := []struct {
		name   string
		facade testhelpers.ReviewFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "not completed", body: valid, facade: testhelpers.ReviewFacadeStub{SubmitFn: func(context.Context, string, int64, int, int, string) (*model.Review, error) {
			return nil, domainErrors.ErrOrderNotCompleted
		}}, status: http.StatusConflict},
		{name: "duplicate", body: valid, facade: testhelpers.ReviewFacadeStub{SubmitFn: func(context.Context, string, int64, int, int, string) (*model.Review, error) {
			return nil, domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "bad rating", body: valid, facade: testhelpers.ReviewFacadeStub{SubmitFn: func(context.Context, string, int64, int, int, string) (*model.Review, error) {
			return nil, domainErrors.ErrInvalidRating
		}}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders/:id/review", NewReviewHandler(tt.facade).Submit, asUser(1, model.RoleCustomer), tt.body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestReviewHandlerForVendor(t *testing.T) {
	router := gin.New()
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{})
	router.GET("/vendors/:id/reviews", handler.ForVendor)

	req := httptest.NewRequest(http.MethodGet, "/vendors/12/reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/vendors/abc/reviews", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for non-numeric id, got %d", w.Code)
	}
}

func TestWalletHandlerSummary(t *testing.T) {
	summary := &model.WalletSummary{Balance: 3200, Withdrawn: 500}
	facade := testhelpers.WalletFacadeStub{SummaryFn: func(context.Context, int64) (*model.WalletSummary, error) {
		return summary, nil
	}}
	resp := performRequest(t, http.MethodGet, "/wallet", NewWalletHandler(facade).Summary, asUser(3, model.RoleRider), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.WalletResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Balance != summary.Balance || decoded.Withdrawn != summary.Withdrawn {
		t.Fatalf("unexpected summary: %+v", decoded)
	}
}

func TestWalletHandlerWithdraw(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.WalletFacadeStub
		body   []byte
		status int
	}{
		{name: "ok", body: []byte(`{"amount":500}`), status: http.StatusOK},
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "insufficient", body: []byte(`{"amount":500}`), facade: testhelpers.WalletFacadeStub{WithdrawFn: func(context.Context, int64, float64) error {
			return domainErrors.ErrInsufficientBalance
		}}, status: http.StatusPaymentRequired},
		{name: "non-positive", body: []byte(`{"amount":-1}`), facade: testhelpers.WalletFacadeStub{WithdrawFn: func(context.Context, int64, float64) error {
			return domainErrors.ErrInvalidAmount
		}}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/wallet/withdraw", NewWalletHandler(tt.facade).Withdraw, asUser(3, model.RoleRider), tt.body, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestWalletHandlerTopup(t *testing.T) {
	body, _ := json.Marshal(dto.TopupRequest{Amount: 2000})
	resp := performRequest(t, http.MethodPost, "/wallet/topup", NewWalletHandler(testhelpers.WalletFacadeStub{}).Topup, asUser(1, model.RoleCustomer), body, nil)
	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d", resp.Code)
	}
	var decoded dto.TopupResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Status != string(model.TopupStatusNew) {
		t.Fatalf("unexpected topup: %+v", decoded)
	}
}

func TestVendorHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.VendorRegisterRequest{Name: "Print Hub", Address: "12 Marina Rd", Latitude: 6.45, Longitude: 3.39})
	facade := testhelpers.VendorFacadeStub{RegisterFn: func(ctx context.Context, ownerID int64, name, address string, lat, lng float64) (*model.Vendor, error) {
		if ownerID != 8 || name != "Print Hub" {
			t.Fatalf("unexpected vendor args: %d %q", ownerID, name)
		}
		return &model.Vendor{ID: 1, UserID: ownerID, Name: name, Address: address, Latitude: lat, Longitude: lng}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/vendors", NewVendorHandler(facade).Register, asUser(8, model.RoleVendor), body, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestVendorHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/vendors", NewVendorHandler(testhelpers.VendorFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	empty := testhelpers.VendorFacadeStub{ListFn: func(context.Context) ([]model.Vendor, error) {
		return nil, nil
	}}
	resp = performRequest(t, http.MethodGet, "/vendors", NewVendorHandler(empty).List, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestAdminHandlerSetRole(t *testing.T) {
	router := gin.New()
	var gotRole model.Role
	var gotVehicle *model.VehicleType
	facade := testhelpers.AdminFacadeStub{SetRoleFn: func(ctx context.Context, userID int64, role model.Role, vehicle *model.VehicleType) error {
		gotRole = role
		gotVehicle = vehicle
		return nil
	}}
	router.PUT("/admin/users/:id/role", NewAdminHandler(facade).SetRole)

	body, _ := json.Marshal(dto.SetRoleRequest{Role: "rider", VehicleType: strPtr("Bicycle")})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/7/role", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotRole != model.RoleRider || gotVehicle == nil || *gotVehicle != model.VehicleBicycle {
		t.Fatalf("unexpected grant: %s %v", gotRole, gotVehicle)
	}

	body, _ = json.Marshal(dto.SetRoleRequest{Role: "superuser"})
	req = httptest.NewRequest(http.MethodPut, "/admin/users/7/role", bytes.NewReader(body))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown role, got %d", w.Code)
	}
}

func TestAdminHandlerDecide(t *testing.T) {
	router := gin.New()
	var gotID int64
	var gotApprove bool
	facade := testhelpers.AdminFacadeStub{DecideFn: func(ctx context.Context, id int64, approve bool) error {
		gotID = id
		gotApprove = approve
		return nil
	}}
	router.POST("/admin/rider-applications/:id", NewAdminHandler(facade).Decide)

	body, _ := json.Marshal(dto.ApplicationDecisionRequest{Approve: true})
	req := httptest.NewRequest(http.MethodPost, "/admin/rider-applications/3", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if gotID != 3 || !gotApprove {
		t.Fatalf("unexpected decision: %d %v", gotID, gotApprove)
	}
}

func TestAdminHandlerUsers(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/admin/users", NewAdminHandler(testhelpers.AdminFacadeStub{}).Users, asUser(4, model.RoleAdmin), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func strPtr(s string) *string {
	return &s
}
