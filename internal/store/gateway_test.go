package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"employeedesk/internal/store"
	"employeedesk/internal/types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatewayFactories lists every Gateway implementation the contract runs against.
func gatewayFactories() map[string]func(t *testing.T) store.Gateway {
	return map[string]func(t *testing.T) store.Gateway{
		"sqlite": func(t *testing.T) store.Gateway {
			return store.NewSQLiteStore("sqlite", filepath.Join(t.TempDir(), "employees.db"), time.Second)
		},
		"memory": func(t *testing.T) store.Gateway {
			return store.NewMemoryStore()
		},
	}
}

func forEachGateway(t *testing.T, fn func(t *testing.T, gw store.Gateway)) {
	for name, factory := range gatewayFactories() {
		t.Run(name, func(t *testing.T) {
			gw := factory(t)
			require.NoError(t, gw.Init(context.Background()))
			fn(t, gw)
		})
	}
}

func TestGateway_InsertAssignsIDsAndRoundTrips(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		ada := types.Employee{Name: "Ada", Sex: "F", Email: "ada@example.com"}
		alan := types.Employee{Name: "Alan", Sex: "M", Email: "alan@example.com"}

		id1, err := gw.Insert(ctx, ada)
		require.NoError(t, err)
		id2, err := gw.Insert(ctx, alan)
		require.NoError(t, err)
		assert.Greater(t, id2, id1)

		got, err := gw.List(ctx)
		require.NoError(t, err)

		ada.ID, alan.ID = id1, id2
		want := []types.Employee{ada, alan}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGateway_ListEmpty(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		got, err := gw.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGateway_DuplicateEmailRejected(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		_, err := gw.Insert(ctx, types.Employee{Name: "A", Sex: "F", Email: "dup@example.com"})
		require.NoError(t, err)

		_, err = gw.Insert(ctx, types.Employee{Name: "B", Sex: "M", Email: "dup@example.com"})
		require.Error(t, err)

		var se *store.Error
		require.True(t, errors.As(err, &se), "expected *store.Error, got %T", err)
		assert.Equal(t, store.OpInsert, se.Op)

		rows, err := gw.List(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestGateway_UpdateKeepsIDAndOtherRows(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		id1, err := gw.Insert(ctx, types.Employee{Name: "Grace", Sex: "F", Email: "grace@example.com"})
		require.NoError(t, err)
		id2, err := gw.Insert(ctx, types.Employee{Name: "Linus", Sex: "M", Email: "linus@example.com"})
		require.NoError(t, err)

		updated := types.Employee{ID: id1, Name: "Grace Hopper", Sex: "F", Email: "hopper@example.com"}
		require.NoError(t, gw.Update(ctx, updated))

		got, err := gw.List(ctx)
		require.NoError(t, err)
		want := []types.Employee{
			updated,
			{ID: id2, Name: "Linus", Sex: "M", Email: "linus@example.com"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("List() after update mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGateway_UpdateToTakenEmailFails(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		id1, err := gw.Insert(ctx, types.Employee{Name: "A", Sex: "F", Email: "a@example.com"})
		require.NoError(t, err)
		_, err = gw.Insert(ctx, types.Employee{Name: "B", Sex: "M", Email: "b@example.com"})
		require.NoError(t, err)

		err = gw.Update(ctx, types.Employee{ID: id1, Name: "A", Sex: "F", Email: "b@example.com"})
		require.Error(t, err)

		rows, err := gw.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", rows[0].Email)
	})
}

func TestGateway_UpdateSameEmailAllowed(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		id, err := gw.Insert(ctx, types.Employee{Name: "A", Sex: "F", Email: "a@example.com"})
		require.NoError(t, err)
		require.NoError(t, gw.Update(ctx, types.Employee{ID: id, Name: "A2", Sex: "F", Email: "a@example.com"}))
	})
}

func TestGateway_MissingRowIsNotFound(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		err := gw.Update(ctx, types.Employee{ID: 99, Name: "x", Sex: "y", Email: "z"})
		assert.True(t, store.IsNotFound(err), "update: %v", err)

		err = gw.Delete(ctx, 99)
		assert.True(t, store.IsNotFound(err), "delete: %v", err)

		var se *store.Error
		require.True(t, errors.As(err, &se))
		assert.Equal(t, store.OpDelete, se.Op)
	})
}

func TestGateway_DeleteRemovesExactlyOne(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		var ids []int64
		for _, email := range []string{"1@x.io", "2@x.io", "3@x.io"} {
			id, err := gw.Insert(ctx, types.Employee{Name: "n", Sex: "s", Email: email})
			require.NoError(t, err)
			ids = append(ids, id)
		}

		require.NoError(t, gw.Delete(ctx, ids[1]))

		rows, err := gw.List(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, ids[0], rows[0].ID)
		assert.Equal(t, ids[2], rows[1].ID)
	})
}

func TestGateway_IDsNotReusedAfterDelete(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()

		id1, err := gw.Insert(ctx, types.Employee{Name: "n", Sex: "s", Email: "1@x.io"})
		require.NoError(t, err)
		require.NoError(t, gw.Delete(ctx, id1))

		id2, err := gw.Insert(ctx, types.Employee{Name: "n", Sex: "s", Email: "2@x.io"})
		require.NoError(t, err)
		assert.Greater(t, id2, id1)
	})
}

func TestGateway_InitIsIdempotent(t *testing.T) {
	forEachGateway(t, func(t *testing.T, gw store.Gateway) {
		ctx := context.Background()
		_, err := gw.Insert(ctx, types.Employee{Name: "n", Sex: "s", Email: "keep@x.io"})
		require.NoError(t, err)

		require.NoError(t, gw.Init(ctx))

		rows, err := gw.List(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
