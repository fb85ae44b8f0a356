package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"github.com/sbilibin2017/gw-event-planner/internal/schema"
	"github.com/sbilibin2017/gw-event-planner/internal/transactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, schema.Provision(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func seedUser(t *testing.T, repo *UserRepository, username string) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), models.User{
		FirstName:    "First " + username,
		LastName:     "Last " + username,
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "hash-" + username,
		Active:       true,
	})
	require.NoError(t, err)
	return id
}

func newEvent(title string, createdBy int64) models.Event {
	start := time.Date(2025, 9, 1, 18, 30, 0, 0, time.UTC)
	return models.Event{
		Title:         title,
		StartDatetime: start,
		EndDatetime:   start.Add(3 * time.Hour),
		CreatedBy:     createdBy,
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// --- Users ---
func TestUserRepository_Postgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewUserRepository(db, nil)

	ada := models.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@x.com",
		Username:     "ada",
		PasswordHash: "hash",
		Active:       true,
	}

	id, err := repo.Create(ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		want := ada
		want.ID = id
		assert.Equal(t, &want, got)
	})

	t.Run("partial update keeps other columns", func(t *testing.T) {
		updated, err := repo.Update(ctx, id, models.UserUpdate{Email: models.Some("ada@y.com")})
		require.NoError(t, err)
		assert.Equal(t, id, updated)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "ada@y.com", got.Email)
		assert.Equal(t, "ada", got.Username)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "hash", got.PasswordHash)
	})

	t.Run("empty update leaves row unchanged", func(t *testing.T) {
		before, err := repo.GetByID(ctx, id)
		require.NoError(t, err)

		_, err = repo.Update(ctx, id, models.UserUpdate{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)

		after, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("duplicate email and username", func(t *testing.T) {
		dup := ada
		dup.Email = "ada@y.com"
		dup.Username = "someone-else"
		_, err := repo.Create(ctx, dup)
		assert.Equal(t, "23505", pgCode(err))

		dup.Email = "other@x.com"
		dup.Username = "ada"
		_, err = repo.Create(ctx, dup)
		assert.Equal(t, "23505", pgCode(err))
	})

	t.Run("absent ids", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.Update(ctx, 999, models.UserUpdate{FirstName: models.Some("x")})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.Delete(ctx, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		other := seedUser(t, repo, "grace")
		deleted, err := repo.Delete(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, other, deleted)
		_, err = repo.GetByID(ctx, other)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// --- Events ---
func TestEventRepository_Postgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	users := NewUserRepository(db, nil)
	repo := NewEventRepository(db, nil)

	t.Run("empty table", func(t *testing.T) {
		events, err := repo.List(ctx, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, events)

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("unknown creator is a foreign key violation", func(t *testing.T) {
		_, err := repo.Create(ctx, newEvent("Orphan", 999))
		assert.Equal(t, "23503", pgCode(err))

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	owner := seedUser(t, users, "owner")

	t.Run("round trip with optional fields", func(t *testing.T) {
		description := "Annual meetup"
		location := "Main hall"
		maxAttendees := 80
		event := newEvent("Meetup", owner)
		event.Description = &description
		event.Location = &location
		event.MaxAttendees = &maxAttendees

		id, err := repo.Create(ctx, event)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		event.ID = id
		assert.Equal(t, &event, got)

		_, err = repo.Update(ctx, id, models.EventUpdate{
			Location:     models.Null[string](),
			MaxAttendees: models.Some(0),
		})
		require.NoError(t, err)

		got, err = repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.Location)
		require.NotNil(t, got.MaxAttendees)
		assert.Equal(t, 0, *got.MaxAttendees)
		assert.Equal(t, &description, got.Description)
		assert.Equal(t, "Meetup", got.Title)

		_, err = repo.Delete(ctx, id)
		require.NoError(t, err)
	})

	t.Run("pagination", func(t *testing.T) {
		for i := 0; i < 25; i++ {
			_, err := repo.Create(ctx, newEvent(fmt.Sprintf("Event %02d", i), owner))
			require.NoError(t, err)
		}

		page1, err := repo.List(ctx, 1, 10)
		require.NoError(t, err)
		page2, err := repo.List(ctx, 2, 10)
		require.NoError(t, err)
		both, err := repo.List(ctx, 1, 20)
		require.NoError(t, err)
		page3, err := repo.List(ctx, 3, 10)
		require.NoError(t, err)
		beyond, err := repo.List(ctx, 10, 10)
		require.NoError(t, err)

		assert.Len(t, page1, 10)
		assert.Len(t, page2, 10)
		assert.Len(t, page3, 5)
		assert.Empty(t, beyond)

		seen := map[int64]bool{}
		for _, e := range page1 {
			seen[e.ID] = true
		}
		for _, e := range page2 {
			assert.False(t, seen[e.ID], "pages must be disjoint")
		}
		assert.Equal(t, append(append([]models.Event{}, page1...), page2...), both)

		for i := 1; i < len(both); i++ {
			assert.Less(t, both[i-1].ID, both[i].ID)
		}

		total, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 25)
	})
}

// --- Attendances and tasks ---
func TestAttendanceAndTaskRepositories_Postgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	users := NewUserRepository(db, nil)
	events := NewEventRepository(db, nil)
	attendances := NewAttendanceRepository(db, nil)
	tasks := NewTaskRepository(db, nil)

	owner := seedUser(t, users, "host")
	guest := seedUser(t, users, "guest")
	eventID, err := events.Create(ctx, newEvent("Party", owner))
	require.NoError(t, err)

	t.Run("attendance", func(t *testing.T) {
		notes := "plus one"
		id, err := attendances.Create(ctx, models.Attendance{UserID: guest, EventID: eventID, Status: models.StatusMaybe, Notes: &notes})
		require.NoError(t, err)

		_, err = attendances.Update(ctx, id, models.AttendanceUpdate{Status: models.Some(models.StatusGoing)})
		require.NoError(t, err)

		got, err := attendances.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, &models.Attendance{ID: id, UserID: guest, EventID: eventID, Status: models.StatusGoing, Notes: &notes}, got)

		list, err := attendances.ListByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = attendances.Create(ctx, models.Attendance{UserID: guest, EventID: 12345, Status: models.StatusGoing})
		assert.Equal(t, "23503", pgCode(err))

		_, err = attendances.Delete(ctx, id)
		require.NoError(t, err)
		_, err = attendances.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("task", func(t *testing.T) {
		due := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
		task := models.Task{Title: "Buy snacks", AssignedTo: &guest, CreatedBy: owner, DueDate: &due, EventID: &eventID}

		id, err := tasks.Create(ctx, task)
		require.NoError(t, err)

		got, err := tasks.GetByID(ctx, id)
		require.NoError(t, err)
		task.ID = id
		assert.Equal(t, &task, got)

		_, err = tasks.Update(ctx, id, models.TaskUpdate{Completed: models.Some(true), AssignedTo: models.Null[int64]()})
		require.NoError(t, err)

		got, err = tasks.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.Nil(t, got.AssignedTo)
		assert.Equal(t, "Buy snacks", got.Title)

		list, err := tasks.ListByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		none, err := tasks.ListByEvent(ctx, eventID+100)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

// --- Transaction boundary ---
func TestTransactionBoundary_Postgres(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	users := NewUserRepository(db, transactions.FromContext)
	events := NewEventRepository(db, transactions.FromContext)
	tm := transactions.NewManager(db, nil)

	err := tm.Do(ctx, func(ctx context.Context) error {
		owner, err := users.Create(ctx, models.User{
			FirstName: "A", LastName: "B", Email: "atomic@example.com",
			Username: "atomic", PasswordHash: "hash", Active: true,
		})
		if err != nil {
			return err
		}
		if _, err := events.Create(ctx, newEvent("first", owner)); err != nil {
			return err
		}
		_, err = events.Create(ctx, newEvent("broken", 4242))
		return err
	})
	assert.Equal(t, "23503", pgCode(err))

	total, err := events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total, "aborted scope must not persist partial writes")

	_, err = NewUserRepository(db, nil).GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
