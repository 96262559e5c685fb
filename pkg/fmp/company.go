package fmp

import (
	"context"
	"strconv"

	"github.com/seenimoa/fmpkit/pkg/frame"
	"github.com/seenimoa/fmpkit/pkg/utils"
)

func symbolParams(symbol string) QueryParams {
	return QueryParams{pSymbol: utils.NormalizeSymbol(symbol)}
}

// Profile returns the company profile as a snake_case record.
func (c *Client) Profile(ctx context.Context, symbol string) (frame.Record, error) {
	return c.Record(ctx, "profile", symbolParams(symbol))
}

// KeyExecutives returns the first listed executive as a one-row table.
func (c *Client) KeyExecutives(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "key-executives", symbolParams(symbol), opts...)
}

// MarketCap returns the current market capitalization.
func (c *Client) MarketCap(ctx context.Context, symbol string) (float64, error) {
	return c.Float(ctx, "market-capitalization", symbolParams(symbol), "0.marketCap")
}

// HistoricalMarketCap returns daily market capitalization, newest first.
func (c *Client) HistoricalMarketCap(ctx context.Context, symbol string, limit int, opts ...frame.Option) (*frame.Table, error) {
	p := symbolParams(symbol)
	if limit > 0 {
		p[pLimit] = strconv.Itoa(limit)
	}
	return c.Table(ctx, "historical-market-capitalization", p, opts...)
}

// Peers returns the symbols FMP considers peers of symbol.
func (c *Client) Peers(ctx context.Context, symbol string) ([]string, error) {
	return c.Strings(ctx, "stock-peers", symbolParams(symbol), "0.peersList")
}

// CoreInformation returns CIK, exchange and address data.
func (c *Client) CoreInformation(ctx context.Context, symbol string) (frame.Record, error) {
	return c.Record(ctx, "company-core-information", symbolParams(symbol))
}

// EmployeeCount returns the historical number of employees.
func (c *Client) EmployeeCount(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "employee-count", symbolParams(symbol), opts...)
}

// DelistedCompanies returns one page of delisted companies indexed by symbol.
func (c *Client) DelistedCompanies(ctx context.Context, page int, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "delisted-companies", QueryParams{pPage: strconv.Itoa(page)}, opts...)
}

// --- Fund holdings ---

// InstitutionalHolders returns the institutional holders of symbol.
func (c *Client) InstitutionalHolders(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "institutional-holder", symbolParams(symbol), opts...)
}

func (c *Client) MutualFundHolders(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "mutual-fund-holder", symbolParams(symbol), opts...)
}

func (c *Client) ETFSectorWeightings(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "etf-sector-weightings", symbolParams(symbol), opts...)
}

func (c *Client) ETFCountryWeightings(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "etf-country-weightings", symbolParams(symbol), opts...)
}

// --- Insider trading ---

// InsiderTrades filters insider trades. At least one of the filter fields
// must be set.
type InsiderTrades struct {
	Symbol          string
	ReportingCIK    string
	CompanyCIK      string
	TransactionType string
	Page            int
}

func (f InsiderTrades) params() QueryParams {
	p := QueryParams{pPage: strconv.Itoa(f.Page)}
	if f.Symbol != "" {
		p[pSymbol] = utils.NormalizeSymbol(f.Symbol)
	}
	if f.ReportingCIK != "" {
		p["reportingCik"] = f.ReportingCIK
	}
	if f.CompanyCIK != "" {
		p["companyCik"] = f.CompanyCIK
	}
	if f.TransactionType != "" {
		p["transactionType"] = f.TransactionType
	}
	return p
}

// InsiderTrading returns insider trades matching the filter.
func (c *Client) InsiderTrading(ctx context.Context, filter InsiderTrades, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "insider-trading", filter.params(), opts...)
}

// InsiderRoasterStatistic returns yearly insider buy/sell statistics.
func (c *Client) InsiderRoasterStatistic(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "insider-roaster-statistic", symbolParams(symbol), opts...)
}

// --- ESG ---

// ESGScore returns ESG scores indexed by filing date.
func (c *Client) ESGScore(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "esg-score", symbolParams(symbol), opts...)
}

// ESGRatings returns yearly ESG risk ratings.
func (c *Client) ESGRatings(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "esg-ratings", symbolParams(symbol), opts...)
}

// ESGSectorBenchmark returns sector ESG averages for one year.
func (c *Client) ESGSectorBenchmark(ctx context.Context, year int, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "esg-sector-benchmark", QueryParams{pYear: strconv.Itoa(year)}, opts...)
}
