package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tareqmahmud/connecthub/backend/internal/models"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Follow{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		DisplayName:     name,
		Username:        name,
		Email:           name + "@example.com",
		Role:            "member",
		ProfileImageURL: "https://img.example.com/" + name + ".png",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedEdge(t *testing.T, db *gorm.DB, follower, followee models.User, at time.Time) {
	t.Helper()
	edge := models.Follow{
		ID:           fmt.Sprintf("edge-%d-%d", follower.ID, followee.ID),
		FollowerID:   follower.ID,
		FolloweeID:   followee.ID,
		FollowerName: follower.DisplayName,
		FolloweeName: followee.DisplayName,
		CreatedAt:    at,
	}
	require.NoError(t, db.Create(&edge).Error)
}

func TestListFollowersOrderedMostRecentFirst(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostgresFollowRepository(db)

	target := seedUser(t, db, "target")
	carol := seedUser(t, db, "carol")
	dave := seedUser(t, db, "dave")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedEdge(t, db, carol, target, base)
	seedEdge(t, db, dave, target, base.Add(time.Hour))

	followers, err := repo.ListFollowers(target.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	// dave followed after carol, so dave comes first.
	assert.Equal(t, dave.ID, followers[0].ID)
	assert.Equal(t, carol.ID, followers[1].ID)

	assert.Equal(t, "dave", followers[0].DisplayName)
	assert.Equal(t, "member", followers[0].Role)
	assert.Equal(t, "https://img.example.com/dave.png", followers[0].ProfileImageURL)
}

func TestListFollowingOrderedMostRecentFirst(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostgresFollowRepository(db)

	viewer := seedUser(t, db, "viewer")
	first := seedUser(t, db, "first")
	second := seedUser(t, db, "second")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedEdge(t, db, viewer, first, base)
	seedEdge(t, db, viewer, second, base.Add(time.Minute))

	following, err := repo.ListFollowing(viewer.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	assert.Equal(t, second.ID, following[0].ID)
	assert.Equal(t, first.ID, following[1].ID)
}

func TestInsertDuplicateEdgeAffectsNoRows(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostgresFollowRepository(db)

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	n, err := repo.Insert(&models.Follow{ID: "e1", FollowerID: a.ID, FolloweeID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Insert(&models.Follow{ID: "e2", FollowerID: a.ID, FolloweeID: b.ID})
	require.NoError(t, err)
	assert.Zero(t, n)

	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.Equal(t, int64(1), edges)
}

func TestRemoveReportsAffectedRows(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostgresFollowRepository(db)

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")
	seedEdge(t, db, a, b, time.Now())

	n, err := repo.Remove(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Remove(a.ID, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFollowingIDs(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewPostgresFollowRepository(db)

	viewer := seedUser(t, db, "viewer")
	x := seedUser(t, db, "x")
	y := seedUser(t, db, "y")
	seedEdge(t, db, viewer, x, time.Now())
	seedEdge(t, db, viewer, y, time.Now())
	seedEdge(t, db, x, viewer, time.Now()) // inbound, must not appear

	ids, err := repo.FollowingIDs(viewer.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{x.ID, y.ID}, ids)
}
