package postgres_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidytask/tidytask-api/internal/domain"
	"github.com/tidytask/tidytask-api/internal/platform/postgres"
	"github.com/tidytask/tidytask-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// openTestDB connects to the database named by DATABASE_URL, skipping the
// test when the variable is unset. The schema must already be migrated.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	require.NoError(t, db.PingContext(context.Background()))
	return db
}

func newTestUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser(uuid.NewString()+"@example.com", "password123")
	require.NoError(t, err)
	return user
}

func TestPostgresUserStore_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, log)

	t.Run("create and fetch", func(t *testing.T) {
		user := newTestUser(t)
		email := user.Email
		require.NoError(t, userStore.Create(ctx, user))
		t.Cleanup(func() { _ = userStore.Delete(ctx, user.ID) })

		// The plaintext is cleared and the hash populated on insert
		assert.Empty(t, user.Password)
		assert.NotEmpty(t, user.HashedPassword)

		byID, err := userStore.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, email, byID.Email)

		byEmail, err := userStore.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(byEmail.HashedPassword), []byte("password123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := newTestUser(t)
		require.NoError(t, userStore.Create(ctx, user))
		t.Cleanup(func() { _ = userStore.Delete(ctx, user.ID) })

		dup, err := domain.NewUser(user.Email, "password456")
		require.NoError(t, err)
		err = userStore.Create(ctx, dup)
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("delete cascades to tasks", func(t *testing.T) {
		user := newTestUser(t)
		require.NoError(t, userStore.Create(ctx, user))

		taskStore := postgres.NewPostgresTaskStore(db, log)
		task, err := domain.NewTask(user.ID, "Cascade victim", "", domain.TaskStatusPending, nil)
		require.NoError(t, err)
		require.NoError(t, taskStore.Create(ctx, task))

		require.NoError(t, userStore.Delete(ctx, user.ID))

		_, err = userStore.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		_, err = taskStore.GetForUser(ctx, task.ID, user.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := userStore.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		err = userStore.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresTaskStore_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)

	owner := newTestUser(t)
	require.NoError(t, userStore.Create(ctx, owner))
	t.Cleanup(func() { _ = userStore.Delete(ctx, owner.ID) })

	stranger := newTestUser(t)
	require.NoError(t, userStore.Create(ctx, stranger))
	t.Cleanup(func() { _ = userStore.Delete(ctx, stranger.ID) })

	t.Run("create and list", func(t *testing.T) {
		deadline := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		first, err := domain.NewTask(owner.ID, "First", "desc", domain.TaskStatusPending, &deadline)
		require.NoError(t, err)
		require.NoError(t, taskStore.Create(ctx, first))

		second, err := domain.NewTask(owner.ID, "Second", "", domain.TaskStatusCompleted, nil)
		require.NoError(t, err)
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		require.NoError(t, taskStore.Create(ctx, second))

		tasks, err := taskStore.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)

		// Newest first
		assert.Equal(t, second.ID, tasks[0].ID)
		assert.Equal(t, first.ID, tasks[1].ID)

		// Nullable columns round-trip
		assert.Equal(t, "desc", tasks[1].Description)
		require.NotNil(t, tasks[1].Deadline)
		assert.Empty(t, tasks[0].Description)
		assert.Nil(t, tasks[0].Deadline)
	})

	t.Run("ownership scoping", func(t *testing.T) {
		task, err := domain.NewTask(owner.ID, "Scoped", "", domain.TaskStatusPending, nil)
		require.NoError(t, err)
		require.NoError(t, taskStore.Create(ctx, task))

		_, err = taskStore.GetForUser(ctx, task.ID, stranger.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		err = taskStore.DeleteForUser(ctx, task.ID, stranger.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		got, err := taskStore.GetForUser(ctx, task.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
	})

	t.Run("update overwrites fields", func(t *testing.T) {
		deadline := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
		task, err := domain.NewTask(owner.ID, "Before", "will be cleared", domain.TaskStatusPending, &deadline)
		require.NoError(t, err)
		require.NoError(t, taskStore.Create(ctx, task))

		task.Title = "After"
		task.Description = ""
		task.Status = domain.TaskStatusCompleted
		task.Deadline = nil
		require.NoError(t, taskStore.UpdateForUser(ctx, task))

		got, err := taskStore.GetForUser(ctx, task.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", got.Title)
		assert.Empty(t, got.Description)
		assert.Equal(t, domain.TaskStatusCompleted, got.Status)
		assert.Nil(t, got.Deadline)
	})

	t.Run("summary counts", func(t *testing.T) {
		counter := newTestUser(t)
		require.NoError(t, userStore.Create(ctx, counter))
		t.Cleanup(func() { _ = userStore.Delete(ctx, counter.ID) })

		for i, status := range []domain.TaskStatus{
			domain.TaskStatusPending,
			domain.TaskStatusPending,
			domain.TaskStatusCompleted,
		} {
			task, err := domain.NewTask(counter.ID, "Counted", "", status, nil)
			require.NoError(t, err)
			task.CreatedAt = task.CreatedAt.Add(time.Duration(i) * time.Millisecond)
			require.NoError(t, taskStore.Create(ctx, task))
		}

		summary, err := taskStore.CountSummary(ctx, counter.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 1, summary.Completed)

		counts, err := taskStore.CountByStatus(ctx, counter.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, counts[domain.TaskStatusPending])
		assert.Equal(t, 1, counts[domain.TaskStatusCompleted])
	})

	t.Run("orphan task rejected", func(t *testing.T) {
		task, err := domain.NewTask(uuid.New(), "No such owner", "", domain.TaskStatusPending, nil)
		require.NoError(t, err)
		err = taskStore.Create(ctx, task)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}
