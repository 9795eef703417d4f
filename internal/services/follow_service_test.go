package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tareqmahmud/connecthub/backend/internal/models"
)

func setupFollowDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// sqlite :memory: gives every pool connection its own empty database;
	// one connection keeps all queries on the same schema and serializes
	// concurrent transactions the way postgres row locks would.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Follow{}))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []models.User {
	t.Helper()
	users := make([]models.User, len(names))
	for i, name := range names {
		users[i] = models.User{
			DisplayName: name,
			Username:    fmt.Sprintf("%s_%d", name, i),
			Email:       fmt.Sprintf("%s%d@example.com", name, i),
		}
	}
	require.NoError(t, db.Create(&users).Error)
	return users
}

func counts(t *testing.T, svc *FollowService, userID uint) models.FollowCounts {
	t.Helper()
	c, err := svc.GetCounts(context.Background(), userID)
	require.NoError(t, err)
	return c
}

func TestFollowCreatesEdgeAndBumpsCounters(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	result, err := svc.Follow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.FollowCreated, result)

	following, err := svc.IsFollowing(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.True(t, following)

	// Directed edge: bob does not follow alice.
	reverse, err := svc.IsFollowing(ctx, users[1].ID, users[0].ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	assert.Equal(t, models.FollowCounts{Followers: 0, Following: 1}, counts(t, svc, users[0].ID))
	assert.Equal(t, models.FollowCounts{Followers: 1, Following: 0}, counts(t, svc, users[1].ID))
}

func TestFollowIsIdempotent(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	first, err := svc.Follow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.FollowCreated, first)

	second, err := svc.Follow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.FollowAlreadyThere, second)

	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)

	assert.Equal(t, models.FollowCounts{Followers: 0, Following: 1}, counts(t, svc, users[0].ID))
	assert.Equal(t, models.FollowCounts{Followers: 1, Following: 0}, counts(t, svc, users[1].ID))
}

func TestSelfFollowRejected(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice")
	ctx := context.Background()

	_, err := svc.Follow(ctx, users[0].ID, users[0].ID)
	assert.ErrorIs(t, err, ErrSelfFollow)

	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Zero(t, edges)
	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[0].ID))
}

func TestFollowUnknownUser(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice")
	ctx := context.Background()

	_, err := svc.Follow(ctx, users[0].ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Follow(ctx, 9999, users[0].ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Rolled back entirely: no edge, no counter movement.
	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Zero(t, edges)
	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[0].ID))
}

func TestUnfollowRestoresPriorState(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	_, err := svc.Follow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)

	result, err := svc.Unfollow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.FollowRemoved, result)

	following, err := svc.IsFollowing(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.False(t, following)

	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[0].ID))
	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[1].ID))
}

func TestUnfollowWhenNotFollowingIsNoOp(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	// Repeated unfollows must never drive a counter below zero.
	for i := 0; i < 3; i++ {
		result, err := svc.Unfollow(ctx, users[0].ID, users[1].ID)
		require.NoError(t, err)
		assert.Equal(t, models.FollowNotThere, result)
	}

	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[0].ID))
	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[1].ID))
}

func TestUnfollowClampsCorruptedCounterAtZero(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	// Simulate pre-existing corruption: an edge with both counters at zero.
	edge := models.Follow{
		ID:         "corrupt-edge",
		FollowerID: users[0].ID,
		FolloweeID: users[1].ID,
	}
	require.NoError(t, db.Create(&edge).Error)

	result, err := svc.Unfollow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)
	assert.Equal(t, models.FollowRemoved, result)

	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[0].ID))
	assert.Equal(t, models.FollowCounts{}, counts(t, svc, users[1].ID))
}

func TestGetCountsUnknownUserReadsZero(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)

	c, err := svc.GetCounts(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.FollowCounts{}, c)
}

func TestEdgeKeepsNameSnapshot(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	_, err := svc.Follow(ctx, users[0].ID, users[1].ID)
	require.NoError(t, err)

	// Rename after the edge exists; the snapshot stays stale on purpose.
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", users[1].ID).
		Update("display_name", "robert").Error)

	var edge models.Follow
	require.NoError(t, db.Where("follower_id = ?", users[0].ID).First(&edge).Error)
	assert.Equal(t, "alice", edge.FollowerName)
	assert.Equal(t, "bob", edge.FolloweeName)
}

func TestConcurrentFollowsCreateOneEdge(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob")
	ctx := context.Background()

	const n = 16
	results := make([]models.FollowResult, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Follow(ctx, users[0].ID, users[1].ID)
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		if results[i] == models.FollowCreated {
			created++
		} else {
			assert.Equal(t, models.FollowAlreadyThere, results[i])
		}
	}
	assert.Equal(t, 1, created)

	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)

	assert.Equal(t, models.FollowCounts{Followers: 0, Following: 1}, counts(t, svc, users[0].ID))
	assert.Equal(t, models.FollowCounts{Followers: 1, Following: 0}, counts(t, svc, users[1].ID))
}

func TestFollowGraphScenario(t *testing.T) {
	db := setupFollowDB(t)
	svc := NewFollowService(db)
	users := seedUsers(t, db, "alice", "bob", "carol")
	a, b, c := users[0].ID, users[1].ID, users[2].ID
	ctx := context.Background()

	_, err := svc.Follow(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, counts(t, svc, b).Followers)
	assert.Equal(t, 1, counts(t, svc, a).Following)

	_, err = svc.Follow(ctx, c, b)
	require.NoError(t, err)
	assert.Equal(t, 2, counts(t, svc, b).Followers)

	_, err = svc.Unfollow(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, counts(t, svc, b).Followers)
	assert.Equal(t, 0, counts(t, svc, a).Following)

	followers, err := svc.ListFollowers(ctx, b)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, c, followers[0].ID)
}
