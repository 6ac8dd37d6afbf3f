package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/huh-boost/storefront/collection"
	"github.com/huh-boost/storefront/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collectionColumns = []string{"id", "title", "description", "handle", "image_url"}

func setupMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db.SetForTesting(mockDB)
	return mock
}

func TestMigrate(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS Collection").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery("SELECT id, title, description, handle, image_url FROM Collection ORDER BY position, title").
		WillReturnRows(sqlmock.NewRows(collectionColumns).
			AddRow("1", "Valorant", "Tactical shooter", "valorant", "https://cdn.example/valorant.png").
			AddRow("2", "Apex Legends", "", "apex-legends", ""))

	list, err := List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "valorant", list[0].Handle)
	require.NotNil(t, list[0].Image)
	assert.Equal(t, "https://cdn.example/valorant.png", list[0].Image.URL)
	assert.Nil(t, list[1].Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyIsNotNil(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery("SELECT .* FROM Collection").
		WillReturnRows(sqlmock.NewRows(collectionColumns))

	list, err := List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestList_QueryError(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery("SELECT .* FROM Collection").WillReturnError(errors.New("disk I/O error"))

	_, err := List(context.Background())
	assert.Error(t, err)
}

func TestUpsert(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectExec("INSERT INTO Collection").
		WithArgs("1", "Valorant", "Tactical shooter", "valorant", "https://cdn.example/v.png", 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := Upsert(context.Background(), collection.Collection{
		ID:          "1",
		Title:       "Valorant",
		Description: "Tactical shooter",
		Handle:      "valorant",
		Image:       &collection.Image{URL: "https://cdn.example/v.png"},
	}, 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_RejectsInvalid(t *testing.T) {
	setupMock(t)

	err := Upsert(context.Background(), collection.Collection{ID: "1", Handle: "x"}, 0)
	assert.ErrorIs(t, err, collection.ErrEmptyTitle)

	err = Upsert(context.Background(), collection.Collection{ID: "1", Title: "X"}, 0)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectExec("DELETE FROM Collection WHERE handle = \\?").
		WithArgs("valorant").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM Collection WHERE handle = \\?").
		WithArgs("zelda").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Delete(context.Background(), "valorant"))
	assert.ErrorIs(t, Delete(context.Background(), "zelda"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
