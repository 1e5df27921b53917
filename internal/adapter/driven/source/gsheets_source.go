package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/entity"
	"github.com/diillson/brand-freshness-dashboard-go/internal/domain/repository"
	"github.com/diillson/brand-freshness-dashboard-go/internal/shared/types"
)

const defaultSheetsBaseURL = "https://docs.google.com"

// GSheetsSourceImpl lê abas de uma planilha Google publicada, via exportação CSV.
type GSheetsSourceImpl struct {
	baseURL string
	sheetID string
	client  *http.Client
}

// NewGSheetsSource cria uma fonte para a planilha informada.
func NewGSheetsSource(sheetID string) (repository.SourceRepository, error) {
	if sheetID == "" {
		return nil, fmt.Errorf("%w: gsheets source needs --sheet-id", types.ErrUnsupportedSource)
	}
	return newGSheetsSource(defaultSheetsBaseURL, sheetID, &http.Client{Timeout: 30 * time.Second}), nil
}

func newGSheetsSource(baseURL, sheetID string, client *http.Client) *GSheetsSourceImpl {
	return &GSheetsSourceImpl{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		sheetID: sheetID,
		client:  client,
	}
}

func (r *GSheetsSourceImpl) exportURL(tableName string) string {
	query := url.Values{}
	query.Set("tqx", "out:csv")
	query.Set("sheet", tableName)
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?%s", r.baseURL, url.PathEscape(r.sheetID), query.Encode())
}

func (r *GSheetsSourceImpl) Fetch(ctx context.Context, tableName string) (entity.SourceTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.exportURL(tableName), nil)
	if err != nil {
		return entity.SourceTable{}, fmt.Errorf("error building sheet request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return entity.SourceTable{}, fmt.Errorf("error fetching sheet %q: %w", tableName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entity.SourceTable{}, fmt.Errorf("%w: sheet %q", types.ErrTableNotFound, tableName)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return entity.SourceTable{}, fmt.Errorf("sheet %q: unexpected status %d: %s", tableName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return readCSVTable(tableName, resp.Body)
}

func (r *GSheetsSourceImpl) Describe() string {
	return "google sheet " + r.sheetID
}
