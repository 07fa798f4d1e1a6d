package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHAPublisherPostsEvent(t *testing.T) {
	var calls int32
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewHAPublisher(srv.URL)
	p.Token = func() string { return "secret" }

	p.Publish(context.Background(), "pos_sale", SaleCompleted{ResellerID: "R1", Total: 42})

	require.EqualValues(t, 1, calls)
	assert.Equal(t, "/events/pos_sale", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestHAPublisherNoTokenIsNoop(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	p := NewHAPublisher(srv.URL)
	p.Token = func() string { return "" }

	p.Publish(context.Background(), "pos_sale", SaleCompleted{})

	assert.EqualValues(t, 0, calls, "missing credential degrades to a no-op")
}

func TestHAPublisherSwallowsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHAPublisher(srv.URL)
	p.Token = func() string { return "secret" }

	// must not panic and has nothing to return
	p.Publish(context.Background(), "pos_sale", SaleCompleted{})
}

func TestHAPublisherSwallowsNetworkError(t *testing.T) {
	p := NewHAPublisher("http://127.0.0.1:1")
	p.Token = func() string { return "secret" }

	p.Publish(context.Background(), "pos_sale", SaleCompleted{})
}

func TestFanout(t *testing.T) {
	var names []string
	a := publisherFunc(func(name string) { names = append(names, "a:"+name) })
	b := publisherFunc(func(name string) { names = append(names, "b:"+name) })

	Fanout{a, b}.Publish(context.Background(), "pos_sale", nil)

	assert.Equal(t, []string{"a:pos_sale", "b:pos_sale"}, names)
}

type publisherFunc func(name string)

func (f publisherFunc) Publish(ctx context.Context, name string, payload any) { f(name) }
