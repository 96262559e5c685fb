package fmp

import (
	"context"
	"strconv"

	"github.com/seenimoa/fmpkit/pkg/frame"
)

// Period selects annual or quarterly statements.
type Period string

const (
	PeriodAnnual  Period = "annual"
	PeriodQuarter Period = "quarter"
)

// StatementQuery narrows a statement request. The zero value asks for the
// endpoint defaults (quarterly, 120 periods).
type StatementQuery struct {
	Symbol string
	Period Period
	Limit  int
}

func (q StatementQuery) params() QueryParams {
	p := symbolParams(q.Symbol)
	if q.Period != "" {
		p[pPeriod] = string(q.Period)
	}
	if q.Limit > 0 {
		p[pLimit] = strconv.Itoa(q.Limit)
	}
	return p
}

// IncomeStatement returns income statements transposed so that line items are
// rows and fiscal dates are columns.
func (c *Client) IncomeStatement(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "income-statement", q.params(), opts...)
}

// BalanceSheet returns balance sheet statements, transposed.
func (c *Client) BalanceSheet(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "balance-sheet-statement", q.params(), opts...)
}

// CashFlowStatement returns cash flow statements, transposed.
func (c *Client) CashFlowStatement(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "cash-flow-statement", q.params(), opts...)
}

func (c *Client) Ratios(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "ratios", q.params(), opts...)
}

// RatiosTTM returns trailing twelve month ratios as a one-row table.
func (c *Client) RatiosTTM(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "ratios-ttm", symbolParams(symbol), opts...)
}

func (c *Client) KeyMetrics(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "key-metrics", q.params(), opts...)
}

// KeyMetricsTTM returns trailing twelve month key metrics as a one-row table.
func (c *Client) KeyMetricsTTM(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "key-metrics-ttm", symbolParams(symbol), opts...)
}

func (c *Client) EnterpriseValues(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "enterprise-values", q.params(), opts...)
}

func (c *Client) FinancialGrowth(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "financial-growth", q.params(), opts...)
}

// DCF returns the latest discounted cash flow value of symbol.
func (c *Client) DCF(ctx context.Context, symbol string) (float64, error) {
	return c.Float(ctx, "discounted-cash-flow", symbolParams(symbol), "0.dcf")
}

// Rating returns the current company rating.
func (c *Client) Rating(ctx context.Context, symbol string) (frame.Record, error) {
	return c.Record(ctx, "rating", symbolParams(symbol))
}

// Score returns the Altman Z and Piotroski scores.
func (c *Client) Score(ctx context.Context, symbol string) (frame.Record, error) {
	return c.Record(ctx, "score", symbolParams(symbol))
}

// SECFilings returns SEC filings indexed by filing date.
func (c *Client) SECFilings(ctx context.Context, symbol, formType string, opts ...frame.Option) (*frame.Table, error) {
	p := symbolParams(symbol)
	if formType != "" {
		p["type"] = formType
	}
	return c.Table(ctx, "sec-filings", p, opts...)
}

// EarningsCallTranscript returns one transcript.
func (c *Client) EarningsCallTranscript(ctx context.Context, symbol string, year, quarter int) (frame.Record, error) {
	p := symbolParams(symbol)
	p[pYear] = strconv.Itoa(year)
	p["quarter"] = strconv.Itoa(quarter)
	return c.Record(ctx, "earning-call-transcript", p)
}

// --- Statistics ---

func (c *Client) AnalystEstimates(ctx context.Context, q StatementQuery, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "analyst-estimates", q.params(), opts...)
}

func (c *Client) EarningsSurprises(ctx context.Context, symbol string, opts ...frame.Option) (*frame.Table, error) {
	return c.Table(ctx, "earnings-surprises", symbolParams(symbol), opts...)
}

// SocialSentiment returns one page of historical social sentiment.
func (c *Client) SocialSentiment(ctx context.Context, symbol string, page int, opts ...frame.Option) (*frame.Table, error) {
	p := symbolParams(symbol)
	p[pPage] = strconv.Itoa(page)
	return c.Table(ctx, "social-sentiment", p, opts...)
}
