package solvedac

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_RandomProblem(t *testing.T) {
	t.Run("queries the tier code and returns a pick", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = fmt.Fprint(w, `{"items":[
				{"problemId":1234,"titleKo":"첫 번째"},
				{"problemId":5678,"titleKo":"두 번째"}
			]}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		client.pick = func(n int) int { return 1 }

		rec, err := client.RandomProblem(context.Background(), "g3")
		require.NoError(t, err)

		// g3 maps to tier code 13.
		assert.Equal(t, "query=*%20tier:13", gotQuery)
		assert.Equal(t, 5678, rec.ProblemID)
		assert.Equal(t, "두 번째", rec.Title)
		assert.Equal(t, "g3", rec.Tier)
		assert.Equal(t, "https://www.acmicpc.net/problem/5678", rec.URL)
	})

	t.Run("rejects an unknown tier before any request", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", time.Second)

		_, err := client.RandomProblem(context.Background(), "x9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid tier")
		assert.Contains(t, err.Error(), "b1")
	})

	t.Run("empty result set is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `{"items":[]}`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		_, err := client.RandomProblem(context.Background(), "r")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no problems found")
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		_, err := client.RandomProblem(context.Background(), "b1")
		require.Error(t, err)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = fmt.Fprint(w, `not json`)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		_, err := client.RandomProblem(context.Background(), "b1")
		require.Error(t, err)
	})
}

func TestValidTiers(t *testing.T) {
	tiers := ValidTiers()
	assert.Len(t, tiers, 18)
	assert.Contains(t, tiers, "b4")
	assert.Contains(t, tiers, "d")
	assert.Contains(t, tiers, "r")
}
