package fmp

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/seenimoa/fmpkit/pkg/utils"
)

// recorder answers every request with an empty list and keeps the last URL.
type recorder struct {
	path  string
	query url.Values
}

func (r *recorder) handler(w http.ResponseWriter, req *http.Request) {
	r.path = req.URL.Path
	r.query = req.URL.Query()
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`[]`))
}

func TestWrapperRequests(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, utils.NewYork)
	to := time.Date(2024, 3, 28, 0, 0, 0, 0, utils.NewYork)
	saturday := time.Date(2024, 7, 6, 12, 0, 0, 0, utils.NewYork)

	tests := []struct {
		name      string
		call      func(c *Client) error
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:     "key executives",
			call:     func(c *Client) error { _, err := c.KeyExecutives(ctx, "aapl"); return err },
			wantPath: "/api/v3/key-executives/AAPL",
		},
		{
			name:      "historical market cap",
			call:      func(c *Client) error { _, err := c.HistoricalMarketCap(ctx, "AAPL", 5); return err },
			wantPath:  "/api/v3/historical-market-capitalization/AAPL",
			wantQuery: map[string]string{"limit": "5"},
		},
		{
			name:      "employee count",
			call:      func(c *Client) error { _, err := c.EmployeeCount(ctx, "AAPL"); return err },
			wantPath:  "/api/v4/historical/employee_count",
			wantQuery: map[string]string{"symbol": "AAPL"},
		},
		{
			name:      "delisted companies",
			call:      func(c *Client) error { _, err := c.DelistedCompanies(ctx, 2); return err },
			wantPath:  "/api/v3/delisted-companies",
			wantQuery: map[string]string{"page": "2"},
		},
		{
			name:     "institutional holders",
			call:     func(c *Client) error { _, err := c.InstitutionalHolders(ctx, "AAPL"); return err },
			wantPath: "/api/v3/institutional-holder/AAPL",
		},
		{
			name: "insider trading by company",
			call: func(c *Client) error {
				_, err := c.InsiderTrading(ctx, InsiderTrades{CompanyCIK: "0000320193"})
				return err
			},
			wantPath:  "/api/v4/insider-trading",
			wantQuery: map[string]string{"companyCik": "0000320193", "page": "0"},
		},
		{
			name:      "esg sector benchmark",
			call:      func(c *Client) error { _, err := c.ESGSectorBenchmark(ctx, 2023); return err },
			wantPath:  "/api/v4/esg-environmental-social-governance-sector-benchmark",
			wantQuery: map[string]string{"year": "2023"},
		},
		{
			name: "annual balance sheet",
			call: func(c *Client) error {
				_, err := c.BalanceSheet(ctx, StatementQuery{Symbol: "msft", Period: PeriodAnnual, Limit: 4})
				return err
			},
			wantPath:  "/api/v3/balance-sheet-statement/MSFT",
			wantQuery: map[string]string{"period": "annual", "limit": "4"},
		},
		{
			name:      "ratios default period",
			call:      func(c *Client) error { _, err := c.Ratios(ctx, StatementQuery{Symbol: "AAPL"}); return err },
			wantPath:  "/api/v3/ratios/AAPL",
			wantQuery: map[string]string{"period": "quarter"},
		},
		{
			name:     "key metrics ttm",
			call:     func(c *Client) error { _, err := c.KeyMetricsTTM(ctx, "AAPL"); return err },
			wantPath: "/api/v3/key-metrics-ttm/AAPL",
		},
		{
			name:      "sec filings by form",
			call:      func(c *Client) error { _, err := c.SECFilings(ctx, "AAPL", "10-K"); return err },
			wantPath:  "/api/v3/sec_filings/AAPL",
			wantQuery: map[string]string{"type": "10-K"},
		},
		{
			name:      "social sentiment",
			call:      func(c *Client) error { _, err := c.SocialSentiment(ctx, "AAPL", 1); return err },
			wantPath:  "/api/v4/historical/social-sentiment",
			wantQuery: map[string]string{"symbol": "AAPL", "page": "1"},
		},
		{
			name:      "historical prices range",
			call:      func(c *Client) error { _, err := c.HistoricalPrices(ctx, "AAPL", from, to); return err },
			wantPath:  "/api/v3/historical-price-full/AAPL",
			wantQuery: map[string]string{"from": "2024-01-02", "to": "2024-03-28"},
		},
		{
			name: "intraday chart",
			call: func(c *Client) error {
				_, err := c.IntradayChart(ctx, "AAPL", "5min", time.Time{}, time.Time{})
				return err
			},
			wantPath: "/api/v3/historical-chart/5min/AAPL",
		},
		{
			name:      "technical indicator default interval",
			call:      func(c *Client) error { _, err := c.TechnicalIndicator(ctx, "AAPL", "", "rsi", 14); return err },
			wantPath:  "/api/v3/technical_indicator/daily/AAPL",
			wantQuery: map[string]string{"type": "rsi", "period": "14"},
		},
		{
			name:     "historical dividends",
			call:     func(c *Client) error { _, err := c.HistoricalDividends(ctx, "AAPL"); return err },
			wantPath: "/api/v3/historical-price-full/stock_dividend/AAPL",
		},
		{
			name:      "split calendar",
			call:      func(c *Client) error { _, err := c.SplitCalendar(ctx, from, to); return err },
			wantPath:  "/api/v3/stock_split_calendar",
			wantQuery: map[string]string{"from": "2024-01-02", "to": "2024-03-28"},
		},
		{
			name:     "sp500 constituents",
			call:     func(c *Client) error { _, err := c.Constituents(ctx, "sp500"); return err },
			wantPath: "/api/v3/sp500_constituent",
		},
		{
			name:      "sector pe on a weekend",
			call:      func(c *Client) error { _, err := c.SectorPE(ctx, saturday, ""); return err },
			wantPath:  "/api/v4/sector_price_earning_ratio",
			wantQuery: map[string]string{"date": "2024-07-05", "exchange": "NYSE"},
		},
		{
			name:      "search",
			call:      func(c *Client) error { _, err := c.Search(ctx, "apple", 10, "NASDAQ"); return err },
			wantPath:  "/api/v3/search",
			wantQuery: map[string]string{"query": "apple", "limit": "10", "exchange": "NASDAQ"},
		},
		{
			name:      "stock news for tickers",
			call:      func(c *Client) error { _, err := c.StockNews(ctx, 5, "aapl", "msft", "AAPL"); return err },
			wantPath:  "/api/v3/stock_news",
			wantQuery: map[string]string{"tickers": "AAPL,MSFT", "limit": "5", "page": "0"},
		},
		{
			name: "economic indicator",
			call: func(c *Client) error {
				_, err := c.EconomicIndicator(ctx, "GDP", time.Time{}, time.Time{})
				return err
			},
			wantPath:  "/api/v4/economic",
			wantQuery: map[string]string{"name": "GDP"},
		},
		{
			name:     "gainers",
			call:     func(c *Client) error { _, err := c.Gainers(ctx); return err },
			wantPath: "/api/v3/stock_market/gainers",
		},
		{
			name:      "price targets",
			call:      func(c *Client) error { _, err := c.PriceTargets(ctx, "AAPL"); return err },
			wantPath:  "/api/v4/price-target",
			wantQuery: map[string]string{"symbol": "AAPL"},
		},
		{
			name:      "senate trading",
			call:      func(c *Client) error { _, err := c.SenateTrading(ctx, "AAPL"); return err },
			wantPath:  "/api/v4/senate-trading",
			wantQuery: map[string]string{"symbol": "AAPL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := newTestClient(t, rec.handler)
			if err := tt.call(c); err != nil {
				t.Fatalf("call: %v", err)
			}
			if rec.path != tt.wantPath {
				t.Errorf("path: got %q, want %q", rec.path, tt.wantPath)
			}
			if rec.query.Get("apikey") != "test-key" {
				t.Errorf("apikey: got %q", rec.query.Get("apikey"))
			}
			for k, want := range tt.wantQuery {
				if got := rec.query.Get(k); got != want {
					t.Errorf("query %s: got %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestInsiderTradingNeedsAFilter(t *testing.T) {
	rec := &recorder{}
	c := newTestClient(t, rec.handler)
	if _, err := c.InsiderTrading(context.Background(), InsiderTrades{Page: 1}); err == nil {
		t.Fatal("expected error without any filter")
	}
	if rec.path != "" {
		t.Errorf("no request expected, got %q", rec.path)
	}
}

func TestRecordWrappersReportNoData(t *testing.T) {
	rec := &recorder{}
	c := newTestClient(t, rec.handler)
	ctx := context.Background()

	if _, err := c.Rating(ctx, "AAPL"); err == nil {
		t.Error("Rating: expected ErrNoData")
	}
	if _, err := c.EarningsCallTranscript(ctx, "AAPL", 2024, 3); err == nil {
		t.Error("EarningsCallTranscript: expected ErrNoData")
	}
	if rec.query.Get("quarter") != "3" || rec.query.Get("year") != "2024" {
		t.Errorf("transcript query: got %v", rec.query)
	}
}
