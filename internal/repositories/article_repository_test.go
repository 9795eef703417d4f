package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tareqmahmud/connecthub/backend/internal/models"
)

func TestArticleCRUDAndAuthorListing(t *testing.T) {
	db := setupRepoDB(t)
	require.NoError(t, db.AutoMigrate(&models.Article{}))
	repo := NewPostgresArticleRepository(db)

	author := seedUser(t, db, "writer")

	first := &models.Article{AuthorID: author.ID, Title: "First", Body: "body one"}
	second := &models.Article{AuthorID: author.ID, Title: "Second", Body: "body two"}
	require.NoError(t, repo.CreateArticle(first))
	require.NoError(t, repo.CreateArticle(second))

	got, err := repo.GetArticleByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	got.Title = "First, revised"
	require.NoError(t, repo.UpdateArticle(got))

	byAuthor, err := repo.GetArticlesByAuthorID(author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)

	require.NoError(t, repo.DeleteArticle(first.ID))
	remaining, _, err := repo.GetArticles(1, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Second", remaining[0].Title)
}
