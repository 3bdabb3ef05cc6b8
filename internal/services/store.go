package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mezcaltasting/internal/domain"
)

// verificationTokenTTL bounds how long a passed email check stays valid.
const verificationTokenTTL = 30 * time.Minute

// Catalog display defaults filled in for beverages with missing fields.
const (
	defaultProductDescription = "Mezcal artesanal de alta calidad"
	defaultProductVolume      = "40% Vol."
	defaultProductOrigin      = "Oaxaca"
	defaultProductImage       = "assets/productos/default.jpg"
	defaultProductRating      = 4.8
)

// DisplayedStock is the stock shown to the user: the live stock minus the
// locally staged but unsubmitted quantity, floored at zero.
func DisplayedStock(b *domain.Beverage, staged int) int {
	if b == nil {
		return 0
	}
	stock := b.Stock - staged
	if stock < 0 {
		return 0
	}
	return stock
}

type storeService struct {
	beverageRepo    domain.BeverageRepository
	userRepo        domain.UserRepository
	reservationRepo domain.ReservationRepository
	tokens          domain.TokenIssuer
	logger          *slog.Logger
}

// NewStoreService creates a StoreService with the given repositories and
// verification-token issuer.
func NewStoreService(
	beverageRepo domain.BeverageRepository,
	userRepo domain.UserRepository,
	reservationRepo domain.ReservationRepository,
	tokens domain.TokenIssuer,
	logger *slog.Logger,
) domain.StoreService {
	return &storeService{
		beverageRepo:    beverageRepo,
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		tokens:          tokens,
		logger:          logger,
	}
}

func (s *storeService) ListBeverages(ctx context.Context) ([]*domain.Beverage, error) {
	return s.beverageRepo.List(ctx)
}

func (s *storeService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	beverages, err := s.beverageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(beverages))
	for _, b := range beverages {
		p := &domain.Product{
			ID:          b.ID,
			Name:        b.Name,
			Price:       b.Price,
			Description: b.Description,
			Volume:      defaultProductVolume,
			Origin:      defaultProductOrigin,
			Image:       b.Image,
			Rating:      defaultProductRating,
		}
		if p.Description == "" {
			p.Description = defaultProductDescription
		}
		if p.Image == "" {
			p.Image = defaultProductImage
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *storeService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// VerifyUser compares the entered email against the user record,
// case-insensitive and trimmed. On match it issues a short-lived
// verification token. This is a UX confirmation gate, not an access-control
// mechanism.
func (s *storeService) VerifyUser(ctx context.Context, userID int, email string) (string, *domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("list users: %w", err)
	}
	var user *domain.User
	for _, u := range users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		return "", nil, domain.ErrNotFound
	}

	entered := strings.ToLower(strings.TrimSpace(email))
	stored := strings.ToLower(strings.TrimSpace(user.Email))
	if entered == "" || stored == "" || entered != stored {
		s.logger.Warn("store verification failed", "user_id", userID)
		return "", nil, domain.ErrEmailMismatch
	}

	token, err := s.tokens.Issue(user.ID, user.Email, verificationTokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("issue verification token: %w", err)
	}
	return token, user, nil
}

// Reserve creates the reservation, then decrements the beverage stock, then
// reloads the beverage list so only server-confirmed state is returned. The
// preconditions run before any network mutation.
func (s *storeService) Reserve(ctx context.Context, userID, beverageID, quantity, staged int) (*domain.Reservation, []*domain.Beverage, error) {
	if quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: quantity must be greater than zero", domain.ErrInvalidInput)
	}
	if staged < 0 {
		staged = 0
	}

	beverage, err := s.beverageRepo.GetByID(ctx, beverageID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get beverage: %w", err)
	}
	if quantity > DisplayedStock(beverage, staged) {
		return nil, nil, domain.ErrStockExceeded
	}

	reservation, err := s.reservationRepo.Create(ctx, domain.NewReservation{
		Quantity:   quantity,
		UserID:     userID,
		BeverageID: beverageID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create reservation: %w", err)
	}

	newStock := beverage.Stock - quantity
	if _, err := s.beverageRepo.Update(ctx, beverageID, domain.BeveragePatch{Stock: &newStock}); err != nil {
		return reservation, nil, &domain.PartialFailure{
			Done:   "reservation created",
			Failed: "stock not updated",
			Err:    err,
		}
	}

	beverages, err := s.beverageRepo.List(ctx)
	if err != nil {
		// The mutation chain succeeded; a failed reload only degrades the
		// returned snapshot.
		s.logger.Warn("reload beverages after reserve failed", "err", err)
		beverages = []*domain.Beverage{}
	}
	return reservation, beverages, nil
}

// CancelReservation mirrors Reserve in reverse: delete the reservation,
// fetch the beverage's current stock, patch it up by the reserved quantity,
// and reload the list. Each step's failure is reported distinctly.
func (s *storeService) CancelReservation(ctx context.Context, reservationID, beverageID, quantity int) ([]*domain.Beverage, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", domain.ErrInvalidInput)
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete reservation: %w", err)
	}

	beverage, err := s.beverageRepo.GetByID(ctx, beverageID)
	if err != nil {
		return nil, &domain.PartialFailure{
			Done:   "reservation deleted",
			Failed: "stock not restored",
			Err:    err,
		}
	}

	restored := beverage.Stock + quantity
	if _, err := s.beverageRepo.Update(ctx, beverageID, domain.BeveragePatch{Stock: &restored}); err != nil {
		return nil, &domain.PartialFailure{
			Done:   "reservation deleted",
			Failed: "stock not restored",
			Err:    err,
		}
	}

	beverages, err := s.beverageRepo.List(ctx)
	if err != nil {
		s.logger.Warn("reload beverages after cancel failed", "err", err)
		beverages = []*domain.Beverage{}
	}
	return beverages, nil
}

func (s *storeService) ListUserReservations(ctx context.Context, userID int) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}
