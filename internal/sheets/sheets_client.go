package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-timeoff/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const appendPath = "/spreadsheets/{spreadsheetId}/values/{range}:append"

var ErrNoSpreadsheet = errors.New("no spreadsheet configured")

type appendRequest struct {
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

type appendResponse struct {
	SpreadsheetID string `json:"spreadsheetId"`
	TableRange    string `json:"tableRange"`
	Updates       struct {
		UpdatedRange string `json:"updatedRange"`
		UpdatedRows  int    `json:"updatedRows"`
	} `json:"updates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client appends rows through the Sheets REST values:append endpoint.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg config.SheetsConfig, logger ...*zap.Logger) *Client {
	l := zap.L().Named("sheets.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheets.client")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(15*time.Second).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &Client{http: client, logger: l}
}

// AppendRow adds row below the last filled row of tab. Cells are sent as
// USER_ENTERED so dates and numbers keep the sheet's formatting.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, tab string, row []string) error {
	if spreadsheetID == "" {
		return ErrNoSpreadsheet
	}

	var (
		result  appendResponse
		failure apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"spreadsheetId": spreadsheetID,
			"range":         A1Range(tab),
		}).
		SetQueryParams(map[string]string{
			"valueInputOption": "USER_ENTERED",
			"insertDataOption": "INSERT_ROWS",
		}).
		SetBody(appendRequest{MajorDimension: "ROWS", Values: [][]string{row}}).
		SetResult(&result).
		SetError(&failure).
		Post(appendPath)
	if err != nil {
		return fmt.Errorf("append row to %q: %w", tab, err)
	}

	if resp.IsError() {
		c.logger.Warn("sheets append rejected",
			zap.String("tab", tab),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("status", failure.Error.Status),
			zap.String("message", failure.Error.Message),
		)
		return fmt.Errorf("append row to %q: %d %s", tab, resp.StatusCode(), failure.Error.Message)
	}

	c.logger.Debug("sheets row appended",
		zap.String("tab", tab),
		zap.String("updated_range", result.Updates.UpdatedRange),
	)
	return nil
}

// A1Range quotes a tab name for A1 notation: Day Off Requests -> 'Day Off Requests'!A1.
func A1Range(tab string) string {
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'!A1"
}
