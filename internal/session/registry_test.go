package session

import (
	"bytes"
	stderrors "errors"
	"log"
	"sync"
	"testing"

	"github.com/google/uuid"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRegistry_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(log.New(&buf, "", 0))

	id, g := r.Create()
	_, err := uuid.Parse(id)
	testutil.AssertNoError(t, err, "id is a uuid")
	testutil.AssertEqual(t, r.Len(), 1)

	got, err := r.Get(id)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got == g, "Get returns the registered game")

	testutil.AssertNoError(t, r.Delete(id))
	testutil.AssertEqual(t, r.Len(), 0)

	_, err = r.Get(id)
	testutil.AssertTrue(t, stderrors.Is(err, chesserrors.ErrUnknownGame))
	err = r.Delete(id)
	testutil.AssertTrue(t, stderrors.Is(err, chesserrors.ErrUnknownGame))

	testutil.AssertContains(t, buf.String(), "created")
	testutil.AssertContains(t, buf.String(), "deleted")
}

func TestRegistry_CreateFromFEN(t *testing.T) {
	r := NewRegistry(nil)

	id, g, err := r.CreateFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.ExportNotation(), "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	testutil.AssertEqual(t, r.IDs(), []string{id})

	_, _, err = r.CreateFromFEN("bogus")
	testutil.AssertTrue(t, stderrors.Is(err, chesserrors.ErrInvalidFEN))
	testutil.AssertEqual(t, r.Len(), 1)
}

func TestRegistry_GamesAreIndependent(t *testing.T) {
	r := NewRegistry(nil)
	_, a := r.Create()
	_, b := r.Create()

	testutil.AssertNoError(t, a.MakeMoveText("e2e4"))
	testutil.AssertEqual(t, len(a.History()), 1)
	testutil.AssertEqual(t, len(b.History()), 0)
}

func TestRegistry_ConcurrentCreate(t *testing.T) {
	r := NewRegistry(nil)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, g := r.Create()
			g.MakeMoveText("e2e4")
			if _, err := r.Get(id); err != nil {
				t.Errorf("Get(%s) failed: %v", id, err)
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, r.Len(), n)
	testutil.AssertEqual(t, len(r.IDs()), n)
}
