// Package tcmb fetches the central bank's daily exchange-rate table.
// The feed publishes one XML document per business day: a fixed today.xml
// for the current day and a YYYYMM/DDMMYYYY.xml path for past days. Weekend
// and holiday dates simply do not exist (404), so callers walk backward to
// the previous business day.
package tcmb

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/birikimsoft/defter_backend/internal/core/domain"
	"github.com/birikimsoft/defter_backend/internal/utils/dateutil"
)

// DefaultBaseURL is the production feed location.
const DefaultBaseURL = "https://www.tcmb.gov.tr/kurlar"

// Client is the HTTP client for the daily rate feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. timeout bounds every request; callers may
// tighten it further per call through the context deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type rateDocument struct {
	Currencies []struct {
		Code            string `xml:"Kod,attr"`
		BanknoteSelling string `xml:"BanknoteSelling"`
	} `xml:"Currency"`
}

// FetchDaily fetches and parses the rate table for date, returning the USD
// and EUR banknote selling prices. Both currencies must parse as positive
// numbers; a miss on either fails the whole fetch.
func (c *Client) FetchDaily(ctx context.Context, date time.Time) (*domain.RatePair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dailyURL(date), nil)
	if err != nil {
		return nil, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rate table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate table for %s: unexpected status %d", dateutil.ISODate(date), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading rate table: %w", err)
	}

	return parseRateDocument(body)
}

// dailyURL builds the feed URL: today.xml for the current date, the dated
// archive path otherwise.
func (c *Client) dailyURL(date time.Time) string {
	if dateutil.SameDate(date, time.Now()) {
		return c.baseURL + "/today.xml"
	}
	return fmt.Sprintf("%s/%d%02d/%02d%02d%d.xml",
		c.baseURL, date.Year(), int(date.Month()), date.Day(), int(date.Month()), date.Year())
}

func parseRateDocument(body []byte) (*domain.RatePair, error) {
	var doc rateDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing rate table: %w", err)
	}

	var pair domain.RatePair
	for _, cur := range doc.Currencies {
		switch cur.Code {
		case "USD":
			pair.USD = parsePrice(cur.BanknoteSelling)
		case "EUR":
			pair.EUR = parsePrice(cur.BanknoteSelling)
		}
	}

	if pair.USD <= 0 || pair.EUR <= 0 {
		return nil, fmt.Errorf("rate table missing banknote selling price (usd=%v eur=%v)", pair.USD, pair.EUR)
	}
	return &pair, nil
}

// parsePrice normalizes the feed's comma decimal separator. Unparseable
// values become 0 and are rejected by the completeness check above.
func parsePrice(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
