package avoinna

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"vuorovahti/internal/model"
)

const (
	apiURL    = "https://avoinna24.fi/api/slot"
	subdomain = "arenacenter"

	// The API rejects requests without a browser user-agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4.1 Safari/605.1.15"
)

// Client is a minimal avoinna24.fi slot search client. The endpoint needs
// no authentication beyond the X-Subdomain header. One Client is built at
// startup and reused; it is safe for concurrent use.
type Client struct {
	hc      *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: apiURL,
		logger:  logger,
	}
}

// Slot is one entry of the provider response. Any attribute may be
// absent; timestamps are RFC 3339 UTC strings when present.
type Slot struct {
	ProductID *string `json:"product_id"`
	StartTime *string `json:"starttime"`
	EndTime   *string `json:"endtime"`
}

type slotItem struct {
	Attributes Slot `json:"attributes"`
}

type slotResponse struct {
	Data []slotItem `json:"data"`
}

// Slots runs one slot search and returns the records in response order.
// A non-2xx status yields *StatusError, an undecodable body *DecodeError;
// neither is ever collapsed into an empty result.
func (c *Client) Slots(ctx context.Context, q model.SlotQuery) ([]Slot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build slot request: %w", err)
	}

	params := url.Values{}
	params.Set("filter[ismultibooking]", "false")
	params.Set("filter[branch_id]", q.BranchID)
	params.Set("filter[group_id]", q.GroupID)
	params.Set("filter[product_id]", q.ProductID)
	params.Set("filter[user_id]", q.UserID)
	// The search is a single-day window: date, start and end all carry
	// the same resolved date.
	params.Set("filter[date]", q.Date)
	params.Set("filter[start]", q.Date)
	params.Set("filter[end]", q.Date)
	req.URL.RawQuery = params.Encode()

	req.Header.Set("X-Subdomain", subdomain)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("Fetching slots",
		zap.String("date", q.Date),
		zap.String("user_id", q.UserID))

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slot request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read slot response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var sr slotResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &DecodeError{Err: err}
	}

	slots := make([]Slot, 0, len(sr.Data))
	for _, item := range sr.Data {
		slots = append(slots, item.Attributes)
	}
	return slots, nil
}
