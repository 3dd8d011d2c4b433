package services_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/models"
	"gamestore/internal/repositories"
	"gamestore/internal/services"
)

// Concurrent purchases of the same (user, game) must not both succeed, and
// top-ups interleaved with a purchase must not corrupt the balance. The
// purchase and user services share one per-user lock; this races them over
// the in-memory backend.
func TestPurchaseService_ConcurrentPurchasesAndTopUps(t *testing.T) {
	store := repositories.NewMemoryStore()
	userRepo := repositories.NewMockUserRepository(store)
	gameRepo := repositories.NewMockGameRepository(store)
	wishlistRepo := repositories.NewMockWishlistRepository(store)
	purchaseRepo := repositories.NewMockPurchaseRepository(store)

	locker := services.NewUserLocker()
	userService := services.NewUserService(userRepo, gameRepo, locker)
	purchaseService := services.NewPurchaseService(purchaseRepo, userRepo, gameRepo, wishlistRepo, locker, nil)

	alice := &models.User{Username: "alice", BalanceCents: 5000}
	require.NoError(t, userRepo.Create(alice))
	hades := &models.Game{Name: "Hades"}
	require.NoError(t, gameRepo.Create(hades))

	const (
		purchaseAttempts = 10
		topUps           = 5
		topUpCents       = 100
		priceCents       = 1999
	)

	var wg sync.WaitGroup
	var succeeded, conflicted atomic.Int64

	for i := 0; i < purchaseAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := purchaseService.Create(alice.ID, hades.ID, priceCents); err != nil {
				conflicted.Add(1)
			} else {
				succeeded.Add(1)
			}
		}()
	}
	for i := 0; i < topUps; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := userService.TopUpBalance(alice.ID, topUpCents)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), succeeded.Load())
	assert.Equal(t, int64(purchaseAttempts-1), conflicted.Load())

	final, err := userRepo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000-priceCents+topUps*topUpCents), final.BalanceCents)
	assert.True(t, final.OwnsGame(hades.ID))

	history, err := purchaseRepo.GetByUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
