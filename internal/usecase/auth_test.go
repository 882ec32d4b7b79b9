package usecase_test

import (
	"context"
	"testing"

	domainErrors "github.com/inkroute/inkroute/internal/domain/errors"
	"github.com/inkroute/inkroute/internal/domain/model"
	pkgAuth "github.com/inkroute/inkroute/internal/pkg/auth"
	testhelpers "github.com/inkroute/inkroute/internal/test"
	"github.com/inkroute/inkroute/internal/usecase"
)

func newAuthUseCase(users *testhelpers.UserRepositoryStub) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(users, testhelpers.NewRiderApplicationRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "Alice@Example.com", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleCustomer {
		t.Fatalf("expected new users to start as customers, got %q", user.Role)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected normalized email in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob@example.com", "secret"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterEmptyCredentials(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())

	if _, _, err := uc.Register(context.Background(), "  ", "password"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "a@b.c", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol@example.com", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@example.com", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol@example.com", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthUseCaseAuthenticateRoleInToken(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	vehicle := model.VehicleMotorcycle
	repo.Add(&model.User{Email: "rider@example.com", PasswordHash: "hash:pw", Role: model.RoleRider, VehicleType: &vehicle})
	uc := newAuthUseCase(repo)

	_, token, err := uc.Authenticate(context.Background(), "rider@example.com", "pw")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	claims, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != model.RoleRider {
		t.Fatalf("expected rider role in claims, got %q", claims.Role)
	}
}

func TestAuthUseCaseParseEmptyToken(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())
	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthUseCaseRegisterPushToken(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Add(&model.User{Email: "dave@example.com"})
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	if err := uc.RegisterPushToken(ctx, 1, "  "); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank token, got %v", err)
	}
	if err := uc.RegisterPushToken(ctx, 1, "device-token"); err != nil {
		t.Fatalf("register push token: %v", err)
	}
	stored, _ := repo.GetByID(ctx, 1)
	if stored.PushToken == nil || *stored.PushToken != "device-token" {
		t.Fatalf("push token not stored: %+v", stored)
	}
}

func TestAuthUseCaseApplyForRider(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	apps := testhelpers.NewRiderApplicationRepositoryStub()
	uc := usecase.NewAuthUseCase(repo, apps, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	if _, err := uc.ApplyForRider(ctx, &model.RiderApplication{UserID: 1, Name: "Nok", Phone: "0812345678", VehicleType: "Skateboard"}); err != domainErrors.ErrVehicleNotEligible {
		t.Fatalf("expected ErrVehicleNotEligible, got %v", err)
	}
	if _, err := uc.ApplyForRider(ctx, &model.RiderApplication{UserID: 1, VehicleType: model.VehicleBicycle}); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing contact, got %v", err)
	}

	app, err := uc.ApplyForRider(ctx, &model.RiderApplication{
		UserID: 1, Name: "Nok", Phone: "0812345678", VehicleType: model.VehicleBicycle,
	})
	if err != nil {
		t.Fatalf("apply returned error: %v", err)
	}
	if app.Status != model.ApplicationStatusPending {
		t.Fatalf("expected pending application, got %q", app.Status)
	}
}
