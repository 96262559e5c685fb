package fmp

import (
	"context"
	"strconv"
	"time"

	"github.com/seenimoa/fmpkit/pkg/frame"
	"github.com/seenimoa/fmpkit/pkg/utils"
)

func dateParams(p QueryParams, from, to time.Time) QueryParams {
	if p == nil {
		p = QueryParams{}
	}
	if s := utils.FormatDate(from); s != "" {
		p[pFrom] = s
	}
	if s := utils.FormatDate(to); s != "" {
		p[pTo] = s
	}
	return p
}

// --- Prices ---

// Quote returns real-time quotes for one or more symbols indexed by symbol.
func (c *Client) Quote(ctx context.Context, symbols ...string) (*frame.Table, error) {
	return c.Table(ctx, "quote", QueryParams{pSymbol: utils.JoinSymbols(symbols...)})
}

// Price returns the last traded price of symbol.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	return c.Float(ctx, "quote-short", symbolParams(symbol), "0.price")
}

// HistoricalPrices returns daily OHLCV bars. Zero from/to leave the range to
// the API.
func (c *Client) HistoricalPrices(ctx context.Context, symbol string, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "historical-price-full", dateParams(symbolParams(symbol), from, to), opts...)
}

// IntradayChart returns bars for interval (1min, 5min, 15min, 30min, 1hour, 4hour).
func (c *Client) IntradayChart(ctx context.Context, symbol, interval string, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	p := dateParams(symbolParams(symbol), from, to)
	p["interval"] = interval
	return c.Table(ctx, "historical-chart", p, opts...)
}

// TechnicalIndicator returns an indicator series such as sma or rsi.
func (c *Client) TechnicalIndicator(ctx context.Context, symbol, interval, indicator string, period int, opts ...frame.Option) (*frame.Table, error) {
	p := symbolParams(symbol)
	p["type"] = indicator
	if interval != "" {
		p["interval"] = interval
	}
	if period > 0 {
		p[pPeriod] = strconv.Itoa(period)
	}
	return c.Table(ctx, "technical-indicator", p, opts...)
}

func (c *Client) HistoricalDividends(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "historical-dividends", symbolParams(symbol), opts...)
}

func (c *Client) HistoricalSplits(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "historical-stock-split", symbolParams(symbol), opts...)
}

// --- Calendars ---

func (c *Client) EarningCalendar(ctx context.Context, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "earning-calendar", dateParams(nil, from, to), opts...)
}

func (c *Client) IPOCalendar(ctx context.Context, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "ipo-calendar", dateParams(nil, from, to), opts...)
}

func (c *Client) DividendCalendar(ctx context.Context, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "stock-dividend-calendar", dateParams(nil, from, to), opts...)
}

func (c *Client) SplitCalendar(ctx context.Context, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "stock-split-calendar", dateParams(nil, from, to), opts...)
}

func (c *Client) EconomicCalendar(ctx context.Context, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "economic-calendar", dateParams(nil, from, to), opts...)
}

// --- Indexes and market performance ---

// Constituents returns the members of "sp500", "nasdaq" or "dowjones".
func (c *Client) Constituents(ctx context.Context, index string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, index+"-constituent", nil, opts...)
}

func (c *Client) SectorPerformance(ctx context.Context, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "sector-performance", nil, opts...)
}

// SectorPE returns sector P/E ratios for date. A zero date or a non-trading
// day resolves to the last NYSE trading day. An empty exchange means NYSE.
func (c *Client) SectorPE(ctx context.Context, date time.Time, exchange string, opts ...frame.Option) (*frame.Table, error) {
	if date.IsZero() {
		date = utils.NowNewYork()
	}
	p := QueryParams{"date": utils.FormatDate(utils.LastTradingDay(date))}
	if exchange != "" {
		p["exchange"] = exchange
	}
	return c.Table(ctx, "sector-price-earning-ratio", p, opts...)
}

func (c *Client) Gainers(ctx context.Context, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "gainers", nil, opts...)
}

func (c *Client) Losers(ctx context.Context, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "losers", nil, opts...)
}

func (c *Client) Actives(ctx context.Context, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "actives", nil, opts...)
}

// --- Lists and look-up ---

func (c *Client) StockList(ctx context.Context, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "stock-list", nil, opts...)
}

// Search finds symbols by ticker or company name.
func (c *Client) Search(ctx context.Context, query string, limit int, exchange string, opts ...frame.Option) (*frame.Table, error) {
	p := QueryParams{"query": query}
	if limit > 0 {
		p[pLimit] = strconv.Itoa(limit)
	}
	if exchange != "" {
		p["exchange"] = exchange
	}
	return c.Table(ctx, "search", p, opts...)
}

// --- News ---

// StockNews returns the latest news, optionally restricted to symbols.
func (c *Client) StockNews(ctx context.Context, limit int, symbols ...string) (*frame.Table, error) {
	p := QueryParams{}
	if tickers := utils.JoinSymbols(symbols...); tickers != "" {
		p["tickers"] = tickers
	}
	if limit > 0 {
		p[pLimit] = strconv.Itoa(limit)
	}
	return c.Table(ctx, "stock-news", p)
}

// --- Economics ---

func (c *Client) Treasury(ctx context.Context, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "treasury", dateParams(nil, from, to), opts...)
}

// EconomicIndicator returns a series such as GDP, CPI or unemploymentRate.
func (c *Client) EconomicIndicator(ctx context.Context, name string, from, to time.Time, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "economic", dateParams(QueryParams{pName: name}, from, to), opts...)
}

func (c *Client) MarketRiskPremium(ctx context.Context, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "market-risk-premium", nil, opts...)
}

// --- Analysts and disclosures ---

func (c *Client) SenateTrading(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "senate-trading", symbolParams(symbol), opts...)
}

func (c *Client) PriceTargets(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "price-target", symbolParams(symbol), opts...)
}

// PriceTargetConsensus returns the high, low, median and consensus targets.
func (c *Client) PriceTargetConsensus(ctx context.Context, symbol string) (frame.Record, error) {
	return c.Record(ctx, "price-target-consensus", symbolParams(symbol))
}

func (c *Client) UpgradesDowngrades(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "upgrades-downgrades", symbolParams(symbol), opts...)
}

func (c *Client) UpgradesDowngradesConsensus(ctx context.Context, symbol string) (frame.Record, error) {
	return c.Record(ctx, "upgrades-downgrades-consensus", symbolParams(symbol))
}
