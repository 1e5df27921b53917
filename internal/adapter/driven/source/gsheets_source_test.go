package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

func TestGSheetsSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/d/sheet-123/gviz/tq", r.URL.Path)
		assert.Equal(t, "out:csv", r.URL.Query().Get("tqx"))

		switch r.URL.Query().Get("sheet") {
		case "Brand freshness grouped":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("\"tidy_country_code\",\"brand_count\"\n\"US\",\"10\"\n"))
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	src := newGSheetsSource(server.URL+"/", "sheet-123", server.Client())

	table, err := src.Fetch(context.Background(), "Brand freshness grouped")
	require.NoError(t, err)
	assert.Equal(t, []string{"tidy_country_code", "brand_count"}, table.Columns)
	assert.Equal(t, [][]string{{"US", "10"}}, table.Rows)

	_, err = src.Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrTableNotFound)

	_, err = src.Fetch(context.Background(), "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")

	assert.Equal(t, "google sheet sheet-123", src.Describe())
}

func TestNewGSheetsSource_RequiresID(t *testing.T) {
	_, err := NewGSheetsSource("")
	assert.ErrorIs(t, err, types.ErrUnsupportedSource)
}
