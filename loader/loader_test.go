package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/huh-boost/storefront/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, l *Loader) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Wait(ctx))
}

func TestLoader_Success(t *testing.T) {
	want := []collection.Collection{{ID: "1", Title: "Valorant", Handle: "valorant"}}
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) {
		return want, nil
	}))

	assert.Equal(t, Loading, l.Snapshot().Status)
	l.Start(context.Background())
	waitFor(t, l)

	snap := l.Snapshot()
	assert.Equal(t, Success, snap.Status)
	assert.Equal(t, want, snap.Collections)
	assert.Equal(t, want, l.Collections())
}

func TestLoader_FailureLeavesListEmpty(t *testing.T) {
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) {
		return nil, errors.New("connection refused")
	}))

	l.Start(context.Background())
	waitFor(t, l)

	snap := l.Snapshot()
	assert.Equal(t, Failure, snap.Status)
	assert.Error(t, snap.Err)
	assert.Empty(t, l.Collections())
}

func TestLoader_EmptySuccessIsNotNil(t *testing.T) {
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) {
		return nil, nil
	}))

	l.Start(context.Background())
	waitFor(t, l)

	snap := l.Snapshot()
	assert.Equal(t, Success, snap.Status)
	assert.NotNil(t, snap.Collections)
	assert.Empty(t, snap.Collections)
}

func TestLoader_StopDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) {
		<-release
		return []collection.Collection{{ID: "1", Title: "Late"}}, nil
	}))

	l.Start(context.Background())
	l.Stop()
	close(release)
	waitFor(t, l)

	assert.Equal(t, Loading, l.Snapshot().Status)
	assert.Empty(t, l.Collections())
}

func TestLoader_StopCancelsContext(t *testing.T) {
	cancelled := make(chan struct{})
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	}))

	l.Start(context.Background())
	l.Stop()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch context was not cancelled")
	}
}

func TestLoader_RestartDiscardsPreviousGeneration(t *testing.T) {
	first := make(chan struct{})
	var calls atomic.Int32
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) {
		if calls.Add(1) == 1 {
			<-first
			return []collection.Collection{{ID: "old", Title: "Old"}}, nil
		}
		return []collection.Collection{{ID: "new", Title: "New"}}, nil
	}))

	l.Start(context.Background())
	// the first fetch goroutine must be running before the second Start
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	l.Start(context.Background())
	waitFor(t, l)
	close(first)

	// give the stale goroutine a chance to try to apply
	time.Sleep(20 * time.Millisecond)
	snap := l.Snapshot()
	require.Equal(t, Success, snap.Status)
	require.Len(t, snap.Collections, 1)
	assert.Equal(t, "new", snap.Collections[0].ID)
}

func TestLoader_ApplyRejectsStaleGeneration(t *testing.T) {
	l := New(FetchFunc(func(ctx context.Context) ([]collection.Collection, error) { return nil, nil }))
	l.gen = 3

	assert.False(t, l.apply(2, []collection.Collection{{ID: "x", Title: "X"}}, nil))
	assert.True(t, l.apply(3, []collection.Collection{{ID: "y", Title: "Y"}}, nil))
	assert.Equal(t, "y", l.Collections()[0].ID)
}

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   error
		wantCount int
	}{
		{
			name:      "ok",
			status:    http.StatusOK,
			body:      `{"collections":[{"id":"1","title":"Valorant","handle":"valorant"},{"id":"2","title":"Apex Legends","handle":"apex","image":{"url":"https://cdn/apex.png"}}]}`,
			wantCount: 2,
		},
		{
			name:      "missing collections field",
			status:    http.StatusOK,
			body:      `{}`,
			wantCount: 0,
		},
		{
			name:      "invalid entries dropped",
			status:    http.StatusOK,
			body:      `{"collections":[{"id":"1","title":""},{"id":"2","title":"Apex"}]}`,
			wantCount: 1,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: ErrStatus,
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/collections", r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL+"/", time.Second)
			list, err := client.Fetch(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, list, tt.wantCount)
		})
	}
}

func TestClient_FetchNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 500*time.Millisecond).Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_FetchHonoursContext(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, 5*time.Second).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
