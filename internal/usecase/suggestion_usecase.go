package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
	"Wayn-App/internal/domain/service"
)

// ErrIdentityNotFound means the request carried no identity that
// resolves to a user record.
var ErrIdentityNotFound = errors.New("المعرّف غير موجود، يرجى تحديث الصفحة.")

// SuggestionUseCase serves one suggestion request end to end: quota
// check, catalog selection, image resolution, counter settlement.
type SuggestionUseCase interface {
	GetSuggestions(ctx context.Context, identity model.Identity, query *model.SuggestionQuery) (*model.SuggestionResponse, error)
}

type suggestionUseCaseImpl struct {
	users    repository.UsersRepository
	places   repository.PlacesRepository
	ledger   *service.QuotaLedger
	selector *service.SuggestionSelector
	images   *service.ImageResolver
	now      func() time.Time
}

// NewSuggestionUseCase creates a new SuggestionUseCase.
func NewSuggestionUseCase(
	users repository.UsersRepository,
	places repository.PlacesRepository,
	ledger *service.QuotaLedger,
	selector *service.SuggestionSelector,
	images *service.ImageResolver,
) SuggestionUseCase {
	return &suggestionUseCaseImpl{
		users:    users,
		places:   places,
		ledger:   ledger,
		selector: selector,
		images:   images,
		now:      time.Now,
	}
}

// GetSuggestions runs the whole request. Counter mutations happen on
// one in-memory user and become durable only through the single Save
// at the end; every deny path returns before it.
//
// Two concurrent requests for the same user can still race that Save
// (last write wins). Accepted: the stakes are a point or two and the
// load is light.
func (u *suggestionUseCaseImpl) GetSuggestions(ctx context.Context, identity model.Identity, query *model.SuggestionQuery) (*model.SuggestionResponse, error) {
	if identity.Kind == model.IdentityMissing {
		return nil, ErrIdentityNotFound
	}

	user, err := u.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrIdentityNotFound
	}

	if err := u.ledger.Authorize(user, query.SpendPoints, u.now()); err != nil {
		return nil, err
	}

	matched, err := u.places.FindActiveByCategories(ctx, query.Interests)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	candidates := u.selector.Filter(matched, query)
	picked, err := u.selector.Pick(candidates)
	if err != nil {
		return nil, err
	}

	// Resolve both images concurrently; each resolution degrades to a
	// fallback URL on its own, so no error surfaces here.
	cards := make([]model.PlaceCard, len(picked))
	var wg sync.WaitGroup
	for i := range picked {
		wg.Add(1)
		go func(idx int, place model.Place) {
			defer wg.Done()
			imageURL := u.images.Resolve(ctx, &place)
			cards[idx] = place.ToCard(imageURL)
		}(i, picked[i])
	}
	wg.Wait()

	u.ledger.Settle(user, query.SpendPoints, u.now())

	if err := u.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist user counters: %w", err)
	}

	log.Printf("✅ served %d suggestions to user %s (points=%d, attempts=%d)",
		len(cards), user.ID, user.Points, user.DailyAttempts)

	return &model.SuggestionResponse{
		Suggestions:   cards,
		Points:        user.Points,
		DailyAttempts: user.DailyAttempts,
	}, nil
}
