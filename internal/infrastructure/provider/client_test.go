package provider_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorsantos08-ui/API/internal/domain/port"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/provider"
)

func fastOptions() provider.Options {
	return provider.Options{
		Retries:    3,
		Timeout:    100 * time.Millisecond,
		RetryDelay: 10 * time.Millisecond,
	}
}

func TestUserClient_FetchUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 2,
			"name": "Ervin Howell",
			"email": "Shanna@melissa.tv",
			"address": {"city": "Wisokyburgh", "zipcode": "90566-7771"}
		}`))
	}))
	defer server.Close()

	client := provider.NewUserClient(server.URL, fastOptions(), slog.Default())

	user, err := client.FetchUser(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "Ervin Howell", user.Name)
	assert.Equal(t, "Shanna@melissa.tv", user.Email)
	assert.Equal(t, "Wisokyburgh", user.City)
}

func TestProductClient_FetchProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 5,
			"title": "Silver Dragon Bracelet",
			"price": 695.5,
			"category": "jewelery"
		}`))
	}))
	defer server.Close()

	client := provider.NewProductClient(server.URL, fastOptions(), slog.Default())

	product, err := client.FetchProduct(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 5, product.ID)
	assert.Equal(t, "Silver Dragon Bracelet", product.Title)
	assert.Equal(t, "695.5", product.Price.String())
	assert.Equal(t, "jewelery", product.Category)
}

func TestFetch_NotFoundDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := provider.NewUserClient(server.URL, fastOptions(), slog.Default())

	_, err := client.FetchUser(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_ServerErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := provider.NewProductClient(server.URL, fastOptions(), slog.Default())

	_, err := client.FetchProduct(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_MalformedBodyDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"id": `))
	}))
	defer server.Close()

	client := provider.NewUserClient(server.URL, fastOptions(), slog.Default())

	_, err := client.FetchUser(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_TimeoutRetriesThenReportsAbsence(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := provider.NewUserClient(server.URL, fastOptions(), slog.Default())

	start := time.Now()
	_, err := client.FetchUser(context.Background(), 1)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "timed out after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
	// Three 100ms attempts plus two 10ms delays.
	assert.Less(t, elapsed, time.Second)
}

func TestFetch_TimeoutThenSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
			return
		}
		_, _ = w.Write([]byte(`{"id": 1, "name": "Leanne Graham", "email": "Sincere@april.biz", "address": {"city": "Gwenborough"}}`))
	}))
	defer server.Close()

	client := provider.NewUserClient(server.URL, fastOptions(), slog.Default())

	user, err := client.FetchUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Gwenborough", user.City)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_ContextCancellationStopsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	opts := provider.Options{Retries: 3, Timeout: 50 * time.Millisecond, RetryDelay: 5 * time.Second}
	client := provider.NewUserClient(server.URL, opts, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := client.FetchUser(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrRecordNotFound)
	// The 5s retry delay must be cut short by the cancelled context.
	assert.Less(t, time.Since(start), time.Second)
}
