package postgres

import (
	"context"
	"testing"

	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLCaptureRepo opens a dry-run database that builds SQL without
// executing it, and hooks the query pipeline to record every generated
// statement. This pins the shape of the repository's queries.
func newSQLCaptureRepo(t *testing.T) (repository.ListingRepository, *[]string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DryRun: true,
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	captured := &[]string{}
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return NewListingRepository(db), captured
}

func lastSQL(t *testing.T, captured *[]string) string {
	t.Helper()
	require.NotEmpty(t, *captured)

	return (*captured)[len(*captured)-1]
}

func TestListingRepository_DefaultReadsExcludeArchived(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name string
		read func(repo repository.ListingRepository)
	}{
		{"FindByID", func(repo repository.ListingRepository) {
			_, _ = repo.FindByID(ctx, id)
		}},
		{"ListActive", func(repo repository.ListingRepository) {
			_, _ = repo.ListActive(ctx)
		}},
		{"ListActiveByOwner", func(repo repository.ListingRepository) {
			_, _ = repo.ListActiveByOwner(ctx, id)
		}},
		{"ListActiveByActivity", func(repo repository.ListingRepository) {
			_, _ = repo.ListActiveByActivity(ctx, "restaurante")
		}},
		{"ListActiveOrderedByScore", func(repo repository.ListingRepository) {
			_, _ = repo.ListActiveOrderedByScore(ctx, true)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, captured := newSQLCaptureRepo(t)

			tt.read(repo)

			sql := lastSQL(t, captured)
			assert.Contains(t, sql, "is_archived", "default read must filter archived rows")
			assert.Contains(t, sql, "listings")
		})
	}
}

func TestListingRepository_FindByIDAnyIncludesArchived(t *testing.T) {
	repo, captured := newSQLCaptureRepo(t)

	_, _ = repo.FindByIDAny(context.Background(), uuid.New())

	sql := lastSQL(t, captured)
	assert.NotContains(t, sql, "is_archived", "lifecycle lookup must see archived rows")
}

func TestListingRepository_ScoreOrderClause(t *testing.T) {
	repo, captured := newSQLCaptureRepo(t)
	ctx := context.Background()

	_, _ = repo.ListActiveOrderedByScore(ctx, true)
	assert.Contains(t, lastSQL(t, captured), "average_score DESC")

	_, _ = repo.ListActiveOrderedByScore(ctx, false)
	assert.Contains(t, lastSQL(t, captured), "average_score ASC")
}

func TestListingRepository_ActivityMatchIsCaseInsensitiveSubstring(t *testing.T) {
	repo, captured := newSQLCaptureRepo(t)

	_, _ = repo.ListActiveByActivity(context.Background(), "bar_100%")

	sql := lastSQL(t, captured)
	assert.Contains(t, sql, "activity_type ILIKE")
}
