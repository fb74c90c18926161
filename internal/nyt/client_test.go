package nyt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mauv0809/wordle-tally/internal/nyt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/svc/wordle/v2/2024-04-06.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2042,"solution":"crane","print_date":"2024-04-06","days_since_launch":1024,"editor":"Tracy Bennett"}`))
	}))
	defer server.Close()

	client := nyt.NewClient().(*nyt.APIClient)
	client.BaseURL = server.URL

	day := time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)
	meta, err := client.GetMetadata(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, 2042, meta.ID)
	assert.Equal(t, "crane", meta.Solution)
	assert.Equal(t, "2024-04-06", meta.PrintDate)
	assert.Equal(t, 1024, meta.DaysSinceLaunch)
}

func TestGetMetadataNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := nyt.NewClient().(*nyt.APIClient)
	client.BaseURL = server.URL

	day := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.GetMetadata(context.Background(), day)
	assert.Error(t, err)
}

func TestGetMetadataInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := nyt.NewClient().(*nyt.APIClient)
	client.BaseURL = server.URL

	day := time.Date(2024, 4, 6, 0, 0, 0, 0, time.UTC)
	_, err := client.GetMetadata(context.Background(), day)
	assert.Error(t, err)
}
