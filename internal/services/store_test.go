package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"mezcaltasting/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBeverageRepo implements domain.BeverageRepository for service tests.
type fakeBeverageRepo struct {
	beverages []*domain.Beverage
	listErr   error
	getErr    error
	updateErr error

	lastUpdateID    int
	lastUpdatePatch domain.BeveragePatch
}

func (f *fakeBeverageRepo) List(ctx context.Context) ([]*domain.Beverage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.beverages, nil
}

func (f *fakeBeverageRepo) GetByID(ctx context.Context, id int) (*domain.Beverage, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, b := range f.beverages {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBeverageRepo) Create(ctx context.Context, b *domain.Beverage) (*domain.Beverage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBeverageRepo) Update(ctx context.Context, id int, patch domain.BeveragePatch) (*domain.Beverage, error) {
	f.lastUpdateID = id
	f.lastUpdatePatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	b, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Stock != nil {
		b.Stock = *patch.Stock
	}
	return b, nil
}

func (f *fakeBeverageRepo) Delete(ctx context.Context, id int) error {
	return errors.New("not implemented")
}

func (f *fakeBeverageRepo) ListByCategory(ctx context.Context, categoryName string) ([]*domain.Beverage, error) {
	return nil, errors.New("not implemented")
}

// fakeReservationRepo implements domain.ReservationRepository for service tests.
type fakeReservationRepo struct {
	reservations []*domain.Reservation
	createErr    error
	deleteErr    error

	lastCreate createRecord
	lastDelete int
}

type createRecord struct {
	set bool
	res domain.NewReservation
}

func (f *fakeReservationRepo) List(ctx context.Context) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Create(ctx context.Context, res domain.NewReservation) (*domain.Reservation, error) {
	f.lastCreate = createRecord{set: true, res: res}
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := &domain.Reservation{
		ID:         len(f.reservations) + 1,
		Quantity:   res.Quantity,
		UserID:     res.UserID,
		BeverageID: res.BeverageID,
		CreatedAt:  time.Now(),
	}
	f.reservations = append(f.reservations, created)
	return created, nil
}

func (f *fakeReservationRepo) Delete(ctx context.Context, id int) error {
	f.lastDelete = id
	return f.deleteErr
}

// fakeTokenIssuer implements domain.TokenIssuer.
type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(userID int, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func espadin(stock int) *domain.Beverage {
	return &domain.Beverage{
		ID:    1,
		Name:  "Espadín Joven",
		Price: 450,
		Stock: stock,
	}
}

func newStoreFixture(beverages *fakeBeverageRepo, users *fakeUserRepo, reservations *fakeReservationRepo) domain.StoreService {
	return NewStoreService(beverages, users, reservations, &fakeTokenIssuer{token: "tok-1"}, discardLogger())
}

func TestDisplayedStock(t *testing.T) {
	tests := []struct {
		name   string
		stock  int
		staged int
		want   int
	}{
		{"no staging", 5, 0, 5},
		{"staged subtracts", 5, 3, 2},
		{"staged exhausts", 5, 5, 0},
		{"floored at zero", 5, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayedStock(espadin(tt.stock), tt.staged))
		})
	}

	assert.Equal(t, 0, DisplayedStock(nil, 0))
}

func TestListProducts_FillsCatalogDefaults(t *testing.T) {
	beverages := &fakeBeverageRepo{beverages: []*domain.Beverage{
		{ID: 1, Name: "Espadín", Price: 450},
		{ID: 2, Name: "Tobalá", Price: 900, Description: "Agave silvestre", Image: "assets/tobala.jpg"},
	}}
	svc := newStoreFixture(beverages, &fakeUserRepo{}, &fakeReservationRepo{})

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	bare := products[0]
	assert.Equal(t, "Mezcal artesanal de alta calidad", bare.Description)
	assert.Equal(t, "assets/productos/default.jpg", bare.Image)
	assert.Equal(t, "40% Vol.", bare.Volume)
	assert.Equal(t, "Oaxaca", bare.Origin)
	assert.Equal(t, 4.8, bare.Rating)

	full := products[1]
	assert.Equal(t, "Agave silvestre", full.Description)
	assert.Equal(t, "assets/tobala.jpg", full.Image)
}

func TestVerifyUser(t *testing.T) {
	users := &fakeUserRepo{users: []*domain.User{
		{ID: 4, Name: "Ana", Email: "Ana.Lopez@Example.com"},
		{ID: 5, Name: "Sin Correo"},
	}}

	tests := []struct {
		name    string
		userID  int
		email   string
		wantErr error
	}{
		{"exact match", 4, "Ana.Lopez@Example.com", nil},
		{"case-insensitive trimmed match", 4, "  ana.lopez@example.com  ", nil},
		{"wrong email", 4, "otra@example.com", domain.ErrEmailMismatch},
		{"empty entered email", 4, "   ", domain.ErrEmailMismatch},
		{"record without email", 5, "algo@example.com", domain.ErrEmailMismatch},
		{"unknown user", 99, "ana.lopez@example.com", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStoreFixture(&fakeBeverageRepo{}, users, &fakeReservationRepo{})
			token, user, err := svc.VerifyUser(context.Background(), tt.userID, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "tok-1", token)
			require.NotNil(t, user)
			assert.Equal(t, tt.userID, user.ID)
		})
	}
}

func TestReserve(t *testing.T) {
	t.Run("rejects quantity over displayed stock before any mutation", func(t *testing.T) {
		beverages := &fakeBeverageRepo{beverages: []*domain.Beverage{espadin(5)}}
		reservations := &fakeReservationRepo{}
		svc := newStoreFixture(beverages, &fakeUserRepo{}, reservations)

		// Stock 5 with 3 staged displays 2; asking for 3 must fail locally.
		_, _, err := svc.Reserve(context.Background(), 4, 1, 3, 3)
		require.ErrorIs(t, err, domain.ErrStockExceeded)
		assert.False(t, reservations.lastCreate.set, "no reservation call on local rejection")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		svc := newStoreFixture(&fakeBeverageRepo{}, &fakeUserRepo{}, &fakeReservationRepo{})
		_, _, err := svc.Reserve(context.Background(), 4, 1, 0, 0)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown beverage", func(t *testing.T) {
		svc := newStoreFixture(&fakeBeverageRepo{}, &fakeUserRepo{}, &fakeReservationRepo{})
		_, _, err := svc.Reserve(context.Background(), 4, 1, 1, 0)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("creates then decrements stock then reloads", func(t *testing.T) {
		beverages := &fakeBeverageRepo{beverages: []*domain.Beverage{espadin(5)}}
		reservations := &fakeReservationRepo{}
		svc := newStoreFixture(beverages, &fakeUserRepo{}, reservations)

		reservation, reloaded, err := svc.Reserve(context.Background(), 4, 1, 2, 0)
		require.NoError(t, err)
		require.NotNil(t, reservation)
		assert.Equal(t, 2, reservation.Quantity)
		assert.Equal(t, 4, reservation.UserID)

		require.NotNil(t, beverages.lastUpdatePatch.Stock)
		assert.Equal(t, 3, *beverages.lastUpdatePatch.Stock)
		require.Len(t, reloaded, 1)
		assert.Equal(t, 3, reloaded[0].Stock)
	})

	t.Run("stock patch failure is partial, reservation survives", func(t *testing.T) {
		beverages := &fakeBeverageRepo{
			beverages: []*domain.Beverage{espadin(5)},
			updateErr: errors.New("backend 500"),
		}
		svc := newStoreFixture(beverages, &fakeUserRepo{}, &fakeReservationRepo{})

		reservation, _, err := svc.Reserve(context.Background(), 4, 1, 2, 0)
		require.NotNil(t, reservation)
		var partial *domain.PartialFailure
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, "reservation created", partial.Done)
		assert.Equal(t, "stock not updated", partial.Failed)
	})

	t.Run("reload failure degrades to empty list, not an error", func(t *testing.T) {
		beverages := &fakeBeverageRepo{beverages: []*domain.Beverage{espadin(5)}}
		svc := newStoreFixture(beverages, &fakeUserRepo{}, &fakeReservationRepo{})

		// GetByID and Update read the slice directly; only List fails.
		beverages.listErr = errors.New("reload failed")
		reservation, reloaded, err := svc.Reserve(context.Background(), 4, 1, 2, 0)
		require.NoError(t, err)
		require.NotNil(t, reservation)
		assert.Empty(t, reloaded)
	})
}

func TestCancelReservation(t *testing.T) {
	t.Run("deletes then restores stock then reloads", func(t *testing.T) {
		beverages := &fakeBeverageRepo{beverages: []*domain.Beverage{espadin(3)}}
		reservations := &fakeReservationRepo{}
		svc := newStoreFixture(beverages, &fakeUserRepo{}, reservations)

		reloaded, err := svc.CancelReservation(context.Background(), 9, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 9, reservations.lastDelete)
		require.NotNil(t, beverages.lastUpdatePatch.Stock)
		assert.Equal(t, 5, *beverages.lastUpdatePatch.Stock)
		require.Len(t, reloaded, 1)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		reservations := &fakeReservationRepo{deleteErr: domain.ErrNotFound}
		svc := newStoreFixture(&fakeBeverageRepo{}, &fakeUserRepo{}, reservations)
		_, err := svc.CancelReservation(context.Background(), 9, 1, 2)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("restore failure after delete is partial", func(t *testing.T) {
		beverages := &fakeBeverageRepo{
			beverages: []*domain.Beverage{espadin(3)},
			updateErr: errors.New("backend 500"),
		}
		svc := newStoreFixture(beverages, &fakeUserRepo{}, &fakeReservationRepo{})

		_, err := svc.CancelReservation(context.Background(), 9, 1, 2)
		var partial *domain.PartialFailure
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, "reservation deleted", partial.Done)
		assert.Equal(t, "stock not restored", partial.Failed)
	})
}

func TestListUserReservations(t *testing.T) {
	reservations := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, UserID: 4, Quantity: 2},
		{ID: 2, UserID: 7, Quantity: 1},
		{ID: 3, UserID: 4, Quantity: 3},
	}}
	svc := newStoreFixture(&fakeBeverageRepo{}, &fakeUserRepo{}, reservations)

	mine, err := svc.ListUserReservations(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)
}
