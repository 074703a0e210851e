package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/creatorconnect/backend/internal/pkg/dealevents"
	"github.com/creatorconnect/backend/internal/pkg/dealflow"
)

func TestDealUniquenessKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UniquenessPair, DealUniquenessKey("pair"))
	assert.Equal(t, UniquenessCampaign, DealUniquenessKey("campaign"))

	// unknown values fall back to the stricter per-pair mode
	assert.Equal(t, UniquenessPair, DealUniquenessKey(""))
	assert.Equal(t, UniquenessPair, DealUniquenessKey("per-campaign"))
}

// newMockedDealRepository backs the repository with a sqlmock connection
// so transaction behavior can be tested without a MySQL instance.
func newMockedDealRepository(t *testing.T) (*dealRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return &dealRepository{
		db:         db,
		uniqueness: UniquenessPair,
		events:     dealevents.NewDispatcher(),
	}, mock
}

// A second writer committing between the read and the guarded update
// must roll the whole unit back, even on a re-entrant edge where stage
// and status stay the same and only the metadata document moved.
func TestApplyTransitionLostRace(t *testing.T) {
	t.Parallel()

	repo, mock := newMockedDealRepository(t)

	var published bool
	repo.events.Subscribe(dealevents.SubscriberFunc(func(e dealevents.Event) { published = true }))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `deals` WHERE `deals`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "uuid", "brand_id", "creator_id", "title", "current_stage", "stage_metadata", "status"}).
			AddRow(7, "3b1f3f70-0000-0000-0000-000000000007", 1, 2, "Spring launch", "signing", "{}", "active"))

	// the guard re-checks the exact metadata document the merge ran
	// against; zero rows affected means another writer got there first
	mock.ExpectExec("UPDATE `deals` SET .* WHERE id = \\? AND current_stage = \\? AND status = \\? AND stage_metadata = CAST\\(\\? AS JSON\\)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	updated, err := repo.ApplyTransition(7, 1, dealflow.StageSigning, map[string]interface{}{dealflow.MetaBrandSigned: true}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Nil(t, updated)
	assert.False(t, published, "no event may leak from a rolled back transition")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Terminating twice loses the race on the status guard.
func TestTerminateLostRace(t *testing.T) {
	t.Parallel()

	repo, mock := newMockedDealRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `deals` WHERE `deals`\\.`id` = \\?").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "uuid", "brand_id", "creator_id", "title", "current_stage", "stage_metadata", "status"}).
			AddRow(7, "3b1f3f70-0000-0000-0000-000000000007", 1, 2, "Spring launch", "logistics", "{}", "active"))
	mock.ExpectExec("UPDATE `deals` SET .* WHERE id = \\? AND current_stage = \\? AND status = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	updated, err := repo.Terminate(7, 1, "changed my mind")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.Nil(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
