package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"pet-shelter-hub/internal/domain/favorites"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepo_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO favorite_toggle_journal")).
		WithArgs("j-1", "u-1", "pets", "pet-1", true, "reverted", "boom", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewJournalRepo(db).Record(context.Background(), favorites.JournalEntry{
		ID:        "j-1",
		UserID:    "u-1",
		Kind:      favorites.KindPets,
		EntityID:  "pet-1",
		Desired:   true,
		Outcome:   favorites.OutcomeReverted,
		Error:     "boom",
		CreatedAt: at,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_RecordError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO favorite_toggle_journal").WillReturnError(errors.New("conn reset"))

	err = NewJournalRepo(db).Record(context.Background(), favorites.JournalEntry{ID: "j-1"})
	assert.ErrorContains(t, err, "conn reset")
}

func TestJournalRepo_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "kind", "entity_id", "desired", "outcome", "error", "created_at"}).
		AddRow("j-2", "u-1", "shelters", "sh-1", false, "confirmed", "", at.Add(time.Minute)).
		AddRow("j-1", "u-1", "pets", "pet-1", true, "reverted", "boom", at)

	mock.ExpectQuery(regexp.QuoteMeta("FROM favorite_toggle_journal")).
		WithArgs("u-1", 2).
		WillReturnRows(rows)

	got, err := NewJournalRepo(db).ListByUser(context.Background(), "u-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, favorites.KindShelters, got[0].Kind)
	assert.Equal(t, favorites.OutcomeConfirmed, got[0].Outcome)
	assert.Equal(t, "boom", got[1].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS favorite_toggle_journal")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
