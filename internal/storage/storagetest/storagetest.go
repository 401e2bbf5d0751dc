// Package storagetest is a conformance suite for storage.Storage
// implementations. Each backend's tests call Run with a constructor that
// returns an empty store.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/its-api/internal/storage"
	"github.com/aanand-mishra/its-api/internal/types"
)

// Student returns a fully populated student with the given id and email.
func Student(id, email string) types.Student {
	return types.Student{
		Member: types.Member{
			ID:       id,
			Name:     "Student " + id,
			Mobile:   "9000000000",
			Address:  "12 Park Street",
			Email:    email,
			College:  "XYZ College",
			Password: "p",
		},
		InternshipDomain: "SE",
	}
}

// Faculty returns a fully populated faculty with the given id and email.
func Faculty(id, email string) types.Faculty {
	return types.Faculty{Member: types.Member{
		ID:       id,
		Name:     "Faculty " + id,
		Mobile:   "9100000000",
		Address:  "1 Campus Road",
		Email:    email,
		College:  "XYZ College",
		Password: "f",
	}}
}

// Task returns a task with the fields the admin UI requires.
func Task(title string) types.Task {
	return types.Task{
		Title:      ptr(title),
		AssignedTo: ptr("Asha"),
		DueDate:    ptr("2024-06-10"),
	}
}

func ptr[T any](v T) *T { return &v }

// Run exercises every table of the store returned by newStore.
func Run(t *testing.T, newStore func(t *testing.T) storage.Storage) {
	t.Run("students", func(t *testing.T) {
		runMemberTable(t, func(t *testing.T) storage.MemberTable[types.Student] {
			return newStore(t).Students()
		}, Student)
	})

	t.Run("faculties", func(t *testing.T) {
		runMemberTable(t, func(t *testing.T) storage.MemberTable[types.Faculty] {
			return newStore(t).Faculties()
		}, Faculty)
	})

	t.Run("tasks", func(t *testing.T) {
		runTaskTable(t, func(t *testing.T) storage.TaskTable {
			return newStore(t).Tasks()
		})
	})
}

func runMemberTable[T types.Entity[T]](
	t *testing.T,
	newTable func(t *testing.T) storage.MemberTable[T],
	build func(id, email string) T,
) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		table := newTable(t)

		all, err := table.SelectAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("insert and select", func(t *testing.T) {
		table := newTable(t)
		first := build("id-1", "a@a.com")
		second := build("id-2", "b@b.com")

		require.NoError(t, table.Insert(ctx, first))
		require.NoError(t, table.Insert(ctx, second))

		all, err := table.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, first, all[0], "storage order")
		assert.Equal(t, second, all[1])

		got, err := table.SelectByID(ctx, "id-2")
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("duplicate id", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Insert(ctx, build("dup", "a@a.com")))
		assert.Error(t, table.Insert(ctx, build("dup", "b@b.com")))
	})

	t.Run("select by id missing", func(t *testing.T) {
		table := newTable(t)
		_, err := table.SelectByID(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("select by email", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Insert(ctx, build("id-1", "same@a.com")))
		require.NoError(t, table.Insert(ctx, build("id-2", "other@a.com")))
		require.NoError(t, table.Insert(ctx, build("id-3", "same@a.com")))

		found, err := table.SelectByEmail(ctx, "same@a.com")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "id-1", found[0].Base().ID)
		assert.Equal(t, "id-3", found[1].Base().ID)

		none, err := table.SelectByEmail(ctx, "nobody@a.com")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("update active", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Insert(ctx, build("id-1", "a@a.com")))

		require.NoError(t, table.UpdateActive(ctx, "id-1", true))
		got, err := table.SelectByID(ctx, "id-1")
		require.NoError(t, err)
		assert.True(t, bool(got.Base().IsActive))

		// Setting the same value still matches the row.
		require.NoError(t, table.UpdateActive(ctx, "id-1", true))

		require.NoError(t, table.UpdateActive(ctx, "id-1", false))
		got, err = table.SelectByID(ctx, "id-1")
		require.NoError(t, err)
		assert.False(t, bool(got.Base().IsActive))

		assert.ErrorIs(t, table.UpdateActive(ctx, "missing", true), storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		table := newTable(t)
		require.NoError(t, table.Insert(ctx, build("id-1", "a@a.com")))
		require.NoError(t, table.Insert(ctx, build("id-2", "b@b.com")))

		require.NoError(t, table.Delete(ctx, "id-1"))
		assert.ErrorIs(t, table.Delete(ctx, "id-1"), storage.ErrNotFound)

		_, err := table.SelectByID(ctx, "id-1")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		all, err := table.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "id-2", all[0].Base().ID)
	})
}

func runTaskTable(t *testing.T, newTable func(t *testing.T) storage.TaskTable) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		all, err := newTable(t).SelectAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("insert assigns increasing ids", func(t *testing.T) {
		table := newTable(t)

		full := types.Task{
			Title:        ptr("Build login page"),
			Description:  ptr("Use the shared form component"),
			AssignedTo:   ptr("Asha"),
			Priority:     ptr(types.PriorityHigh),
			Status:       ptr(types.TaskInProgress),
			AssignedDate: ptr("2024-06-01"),
			DueDate:      ptr("2024-06-10"),
		}
		partial := types.Task{
			Title:      ptr("Write report"),
			AssignedTo: ptr("Ravi"),
			DueDate:    ptr("2024-07-01"),
		}

		firstID, err := table.Insert(ctx, full)
		require.NoError(t, err)
		secondID, err := table.Insert(ctx, partial)
		require.NoError(t, err)
		assert.Greater(t, secondID, firstID)

		all, err := table.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		full.ID = firstID
		partial.ID = secondID
		assert.Equal(t, full, all[0])
		assert.Equal(t, partial, all[1])
		assert.Nil(t, all[1].Description)
		assert.Nil(t, all[1].Priority)
	})

	t.Run("empty task", func(t *testing.T) {
		table := newTable(t)
		id, err := table.Insert(ctx, types.Task{})
		require.NoError(t, err)

		all, err := table.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, types.Task{ID: id}, all[0])
	})
}
