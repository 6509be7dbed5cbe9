package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/heartmarshall/myfrench-backend/internal/config"
	"github.com/heartmarshall/myfrench-backend/internal/domain"
)

// Client reads vocabulary rows from one Google spreadsheet. It holds the
// authenticated sheets service built once at construction; every fetch
// reuses it. The client keeps no row data between calls.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	readRange     string
	headerRow     int
	fetchTimeout  time.Duration
	log           *slog.Logger
}

// New creates a Client. The credential is resolved here, so a missing or
// malformed credential fails startup with domain.ErrCredentials.
func New(ctx context.Context, cfg config.SheetsConfig, logger *slog.Logger) (*Client, error) {
	cred, err := credentialOption(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := sheets.NewService(ctx, cred, option.WithScopes(readonlyScope))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %v: %w", err, domain.ErrCredentials)
	}

	return newClient(svc, cfg, logger), nil
}

// NewWithEndpoint creates a Client against a custom unauthenticated API
// endpoint (for testing).
func NewWithEndpoint(ctx context.Context, cfg config.SheetsConfig, endpoint string, logger *slog.Logger) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithoutAuthentication(), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return newClient(svc, cfg, logger), nil
}

func newClient(svc *sheets.Service, cfg config.SheetsConfig, logger *slog.Logger) *Client {
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		readRange:     cfg.Range,
		headerRow:     cfg.HeaderRow,
		fetchTimeout:  cfg.FetchTimeout,
		log:           logger.With("adapter", "sheets"),
	}
}

// SourceKey identifies the fetched range, for cache keying.
func (c *Client) SourceKey() string {
	return c.spreadsheetID + "!" + c.rangeRef()
}

// FetchRows fetches the configured range and maps every row after the
// header row onto a Record. The fetch is all-or-nothing: any remote
// rejection surfaces immediately as domain.ErrSheetAccess, with no retry
// and no partial result.
func (c *Client) FetchRows(ctx context.Context) ([]domain.Record, error) {
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	rangeRef := c.rangeRef()
	c.log.DebugContext(ctx, "fetching sheet", slog.String("range", rangeRef))

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeRef).Context(ctx).Do()
	if err != nil {
		c.log.ErrorContext(ctx, "sheet fetch failed",
			slog.String("range", rangeRef),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("sheets: fetch %s: %v: %w", rangeRef, err, domain.ErrSheetAccess)
	}

	values := resp.Values
	if len(values) == 0 {
		c.log.WarnContext(ctx, "no data found in sheet", slog.String("range", rangeRef))
		return []domain.Record{}, nil
	}
	if c.headerRow > len(values) {
		c.log.WarnContext(ctx, "header row beyond returned rows",
			slog.Int("header_row", c.headerRow),
			slog.Int("rows", len(values)),
		)
		return []domain.Record{}, nil
	}

	headers := make([]string, len(values[c.headerRow-1]))
	for i, cell := range values[c.headerRow-1] {
		headers[i] = cellString(cell)
	}

	rows := values[c.headerRow:]
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec := make(domain.Record, len(headers))
		for i, h := range headers {
			// Pad short rows; drop cells beyond the header width.
			if i < len(row) {
				rec[h] = cellString(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	c.log.DebugContext(ctx, "fetched sheet",
		slog.String("range", rangeRef),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// rangeRef builds the A1 range notation. Sheet names containing a space
// or hyphen must be single-quoted.
func (c *Client) rangeRef() string {
	name := c.sheetName
	if strings.ContainsAny(name, " -") {
		name = "'" + name + "'"
	}
	return name + "!" + c.readRange
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
