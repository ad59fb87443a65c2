package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/finsight-core/server/internal/assistant/model"
)

// YahooClient is a thin REST client for the Yahoo Finance quote endpoints.
// The provider is an external collaborator: this client only normalizes its
// responses into the snapshot shape the branches consume.
type YahooClient struct {
	baseURL string
	client  *http.Client
}

func NewYahooClient(cfg model.MarketDataConfig) *YahooClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &YahooClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			Price struct {
				LongName              string    `json:"longName"`
				Currency              string    `json:"currency"`
				RegularMarketPrice    rawNumber `json:"regularMarketPrice"`
				RegularMarketDayHigh  rawNumber `json:"regularMarketDayHigh"`
				RegularMarketDayLow   rawNumber `json:"regularMarketDayLow"`
				RegularMarketVolume   rawNumber `json:"regularMarketVolume"`
				RegularMarketPrevious rawNumber `json:"regularMarketPreviousClose"`
				MarketCap             rawNumber `json:"marketCap"`
			} `json:"price"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				LongName             string  `json:"longName"`
				Currency             string  `json:"currency"`
				RegularMarketPrice   float64 `json:"regularMarketPrice"`
				PreviousClose        float64 `json:"chartPreviousClose"`
				FiftyTwoWeekHigh     float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow      float64 `json:"fiftyTwoWeekLow"`
				RegularMarketDayHigh float64 `json:"regularMarketDayHigh"`
				RegularMarketDayLow  float64 `json:"regularMarketDayLow"`
				RegularMarketVolume  int64   `json:"regularMarketVolume"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"chart"`
}

type searchResponse struct {
	News []struct {
		Title               string `json:"title"`
		Publisher           string `json:"publisher"`
		Link                string `json:"link"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

type rawNumber struct {
	Raw float64 `json:"raw"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (c *YahooClient) TickerInfo(ctx context.Context, ticker string) (map[string]any, error) {
	var out quoteSummaryResponse
	path := fmt.Sprintf("/v10/finance/quoteSummary/%s?modules=assetProfile,price", url.PathEscape(ticker))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if e := out.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("quote summary for %s: %s", ticker, e.Description)
	}
	if len(out.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quote summary data for ticker %s", ticker)
	}

	r := out.QuoteSummary.Result[0]
	return map[string]any{
		"ticker":        ticker,
		"longName":      r.Price.LongName,
		"currency":      r.Price.Currency,
		"sector":        r.AssetProfile.Sector,
		"industry":      r.AssetProfile.Industry,
		"marketCap":     r.Price.MarketCap.Raw,
		"currentPrice":  r.Price.RegularMarketPrice.Raw,
		"previousClose": r.Price.RegularMarketPrevious.Raw,
		"dayHigh":       r.Price.RegularMarketDayHigh.Raw,
		"dayLow":        r.Price.RegularMarketDayLow.Raw,
		"volume":        r.Price.RegularMarketVolume.Raw,
	}, nil
}

func (c *YahooClient) Snapshot(ctx context.Context, ticker string) (*model.Snapshot, error) {
	var chart chartResponse
	path := fmt.Sprintf("/v8/finance/chart/%s?range=6mo&interval=1d", url.PathEscape(ticker))
	if err := c.getJSON(ctx, path, &chart); err != nil {
		return nil, err
	}
	if e := chart.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart for %s: %s", ticker, e.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for ticker %s", ticker)
	}

	r := chart.Chart.Result[0]
	snap := &model.Snapshot{
		Ticker: ticker,
		Quote: model.FastQuote{
			LongName:         r.Meta.LongName,
			Currency:         r.Meta.Currency,
			LastPrice:        r.Meta.RegularMarketPrice,
			PreviousClose:    r.Meta.PreviousClose,
			DayHigh:          r.Meta.RegularMarketDayHigh,
			DayLow:           r.Meta.RegularMarketDayLow,
			FiftyTwoWeekHigh: r.Meta.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  r.Meta.FiftyTwoWeekLow,
			Volume:           r.Meta.RegularMarketVolume,
		},
	}

	if len(r.Indicators.Quote) > 0 {
		q := r.Indicators.Quote[0]
		for i, ts := range r.Timestamp {
			if i >= len(q.Close) {
				break
			}
			snap.PriceHistory = append(snap.PriceHistory, model.PricePoint{
				Date:   time.Unix(ts, 0).UTC().Format("2006-01-02"),
				Open:   at(q.Open, i),
				High:   at(q.High, i),
				Low:    at(q.Low, i),
				Close:  at(q.Close, i),
				Volume: atInt(q.Volume, i),
			})
		}
	}

	var search searchResponse
	newsPath := fmt.Sprintf("/v1/finance/search?q=%s&newsCount=10&quotesCount=0", url.QueryEscape(ticker))
	if err := c.getJSON(ctx, newsPath, &search); err == nil {
		for _, n := range search.News {
			article := model.NewsArticle{
				Title:     n.Title,
				Publisher: n.Publisher,
				URL:       n.Link,
			}
			if n.ProviderPublishTime > 0 {
				article.PublishedAt = time.Unix(n.ProviderPublishTime, 0).UTC().Format(time.RFC3339)
			}
			snap.News = append(snap.News, article)
		}
	}
	// News is best-effort: a failed search never fails the snapshot.

	return snap, nil
}

func (c *YahooClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "finsight-core/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market data request %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func atInt(values []int64, i int) int64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

var _ MarketData = (*YahooClient)(nil)
