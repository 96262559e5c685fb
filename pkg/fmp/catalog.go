package fmp

import (
	"github.com/seenimoa/fmpkit/internal/endpoint"
)

// Endpoint families.
const (
	FamilyCompany     = "company"
	FamilyCrypto      = "crypto"
	FamilyForex       = "forex"
	FamilyCommodities = "commodities"
	FamilyEuronext    = "euronext"
	FamilyTSX         = "tsx"
	FamilyEconomics   = "economics"
	FamilyFunds       = "funds"
	FamilyInsider     = "insider"
	FamilyFundamental = "fundamentals"
	FamilyAnalysis    = "analysis"
	FamilyCalendars   = "calendars"
	FamilyIndexes     = "indexes"
	FamilyPerformance = "performance"
	FamilyLists       = "lists"
	FamilyStatistics  = "statistics"
	FamilyUpgrades    = "upgrades"
	FamilyPrivate     = "private"
	FamilyPriceTarget = "price-target"
	FamilySenate      = "senate"
	FamilyLookup      = "lookup"
	FamilyNews        = "news"
	FamilyPrices      = "prices"
	FamilyESG         = "esg"
	FamilyAdvanced    = "advanced"
)

type (
	Endpoint    = endpoint.Endpoint
	QueryParams = endpoint.QueryParams
)

const (
	pSymbol = endpoint.ParamSymbol
	pFrom   = endpoint.ParamFrom
	pTo     = endpoint.ParamTo
	pPage   = endpoint.ParamPage
	pLimit  = endpoint.ParamLimit
	pPeriod = endpoint.ParamPeriod
	pYear   = endpoint.ParamYear
	pCIK    = endpoint.ParamCIK
	pName   = endpoint.ParamName
)

var (
	symbolOnly = []string{pSymbol}
	dateRange  = []string{pFrom, pTo}
	pageOnly   = []string{pPage}
)

// Catalog returns every FMP endpoint known to the client.
func Catalog() []Endpoint {
	var out []Endpoint
	for _, group := range [][]Endpoint{
		companyEndpoints, marketEndpoints, economicsEndpoints, fundEndpoints,
		insiderEndpoints, fundamentalEndpoints, analysisEndpoints, calendarEndpoints,
		indexEndpoints, statisticsEndpoints, newsEndpoints, priceEndpoints,
		esgEndpoints, advancedEndpoints,
	} {
		out = append(out, group...)
	}
	return out
}

// DefaultRegistry returns a registry loaded with Catalog.
func DefaultRegistry() *endpoint.Registry {
	r := endpoint.NewRegistry()
	if err := r.Register(Catalog()...); err != nil {
		panic(err)
	}
	return r
}

// --- Company ---

var companyEndpoints = []Endpoint{
	{Name: "profile", Family: FamilyCompany, Description: "Company profile", Path: "profile/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "key-executives", Family: FamilyCompany, Description: "Key executives", Path: "key-executives/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "market-capitalization", Family: FamilyCompany, Description: "Current market capitalization", Path: "market-capitalization/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "historical-market-capitalization", Family: FamilyCompany, Description: "Daily market capitalization history", Path: "historical-market-capitalization/{symbol}", Optional: []string{pLimit, pFrom, pTo}},
	{Name: "company-outlook", Family: FamilyCompany, Description: "Profile, metrics, ratios and filings in one document", Version: endpoint.V4, Path: "company-outlook", Required: symbolOnly, Shape: endpoint.ShapeRaw},
	{Name: "stock-peers", Family: FamilyCompany, Description: "Peer group of a company", Version: endpoint.V4, Path: "stock_peers", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "market-hours", Family: FamilyCompany, Description: "NYSE holidays and trading hours", Path: "is-the-market-open", Shape: endpoint.ShapeRaw},
	{Name: "delisted-companies", Family: FamilyCompany, Description: "Delisted companies", Path: "delisted-companies", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}, Index: "symbol"},
	{Name: "symbol-change", Family: FamilyCompany, Description: "Ticker symbol changes", Version: endpoint.V4, Path: "symbol_change"},
	{Name: "company-core-information", Family: FamilyCompany, Description: "CIK, exchange and addresses", Version: endpoint.V4, Path: "company-core-information", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "employee-count", Family: FamilyCompany, Description: "Historical number of employees", Version: endpoint.V4, Path: "historical/employee_count", Required: symbolOnly},
}

// --- Crypto, forex, commodities, Euronext, TSX ---

var marketEndpoints = []Endpoint{
	{Name: "cryptocurrencies", Family: FamilyCrypto, Description: "Available cryptocurrencies", Path: "symbol/available-cryptocurrencies", Index: "symbol"},
	{Name: "crypto-quotes", Family: FamilyCrypto, Description: "Quotes for all cryptocurrencies", Path: "quotes/crypto", Index: "symbol"},
	{Name: "fx", Family: FamilyForex, Description: "Forex rates", Path: "fx", Index: "ticker"},
	{Name: "fx-pair", Family: FamilyForex, Description: "Forex rate for one pair", Path: "fx/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "forex-quotes", Family: FamilyForex, Description: "Quotes for all forex pairs", Path: "quotes/forex", Index: "symbol"},
	{Name: "commodities", Family: FamilyCommodities, Description: "Available commodities", Path: "symbol/available-commodities", Index: "symbol"},
	{Name: "commodity-quotes", Family: FamilyCommodities, Description: "Quotes for all commodities", Path: "quotes/commodity", Index: "symbol"},
	{Name: "euronext-symbols", Family: FamilyEuronext, Description: "Available Euronext symbols", Path: "symbol/available-euronext", Index: "symbol"},
	{Name: "euronext-quotes", Family: FamilyEuronext, Description: "Quotes for all Euronext symbols", Path: "quotes/euronext", Index: "symbol"},
	{Name: "tsx-symbols", Family: FamilyTSX, Description: "Available TSX symbols", Path: "symbol/available-tsx", Index: "symbol"},
	{Name: "tsx-quotes", Family: FamilyTSX, Description: "Quotes for all TSX symbols", Path: "quotes/tsx", Index: "symbol"},
}

// --- Economics ---

var economicsEndpoints = []Endpoint{
	{Name: "market-risk-premium", Family: FamilyEconomics, Description: "Market risk premium per country", Version: endpoint.V4, Path: "market_risk_premium", Index: "country"},
	{Name: "treasury", Family: FamilyEconomics, Description: "Treasury rates", Version: endpoint.V4, Path: "treasury", Optional: dateRange},
	{Name: "economic", Family: FamilyEconomics, Description: "Economic indicator series (GDP, CPI, ...)", Version: endpoint.V4, Path: "economic", Required: []string{pName}, Optional: dateRange},
}

// --- Fund holdings ---

var fundEndpoints = []Endpoint{
	{Name: "etf-info", Family: FamilyFunds, Description: "ETF information", Version: endpoint.V4, Path: "etf-info", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "institutional-holder", Family: FamilyFunds, Description: "Institutional holders of a stock", Path: "institutional-holder/{symbol}", Index: "holder"},
	{Name: "mutual-fund-holder", Family: FamilyFunds, Description: "Mutual fund holders of a stock", Path: "mutual-fund-holder/{symbol}", Index: "holder"},
	{Name: "etf-sector-weightings", Family: FamilyFunds, Description: "ETF sector weightings", Path: "etf-sector-weightings/{symbol}", Index: "sector"},
	{Name: "etf-country-weightings", Family: FamilyFunds, Description: "ETF country weightings", Path: "etf-country-weightings/{symbol}", Index: "country"},
	{Name: "etf-stock-exposure", Family: FamilyFunds, Description: "ETFs holding a stock", Path: "etf-stock-exposure/{symbol}", Index: "etf_symbol"},
	{Name: "cik-list", Family: FamilyFunds, Description: "All 13F filer CIKs", Path: "cik_list", Index: "cik"},
	{Name: "cik-search", Family: FamilyFunds, Description: "Search 13F filers by name", Path: "cik-search/{name}", Index: "cik"},
	{Name: "cik", Family: FamilyFunds, Description: "Company name for a CIK", Path: "cik/{cik}", Shape: endpoint.ShapeRecord},
	{Name: "form-thirteen", Family: FamilyFunds, Description: "Form 13F holdings", Path: "form-thirteen/{cik}", Required: []string{endpoint.ParamDate}},
	{Name: "form-thirteen-date", Family: FamilyFunds, Description: "Form 13F filing dates", Path: "form-thirteen-date/{cik}", Shape: endpoint.ShapeRaw},
	{Name: "cusip", Family: FamilyFunds, Description: "CUSIP mapping", Path: "cusip/{cik}", Shape: endpoint.ShapeRaw},
}

// --- Insider trading and senate disclosures ---

var insiderEndpoints = []Endpoint{
	{Name: "insider-trading-transaction-type", Family: FamilyInsider, Description: "Insider transaction type codes", Version: endpoint.V4, Path: "insider-trading-transaction-type", Shape: endpoint.ShapeRaw},
	{Name: "insider-trading", Family: FamilyInsider, Description: "Insider trades", Version: endpoint.V4, Path: "insider-trading", AnyOf: []string{"transactionType", pSymbol, "reportingCik", "companyCik"}, Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "mapper-cik-company", Family: FamilyInsider, Description: "CIK for a company symbol", Version: endpoint.V4, Path: "mapper-cik-company/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "mapper-cik-name", Family: FamilyInsider, Description: "CIK mapping of reporting names", Version: endpoint.V4, Path: "mapper-cik-name", Optional: []string{pPage, pName}, Defaults: map[string]string{pPage: "0"}},
	{Name: "insider-roaster", Family: FamilyInsider, Description: "Insiders of a company", Version: endpoint.V4, Path: "insider-roaster", Required: symbolOnly},
	{Name: "insider-roaster-statistic", Family: FamilyInsider, Description: "Insider buy/sell statistics", Version: endpoint.V4, Path: "insider-roaster-statistic", Required: symbolOnly, Index: "year"},
	{Name: "insider-trading-rss-feed", Family: FamilyInsider, Description: "Latest insider trades", Version: endpoint.V4, Path: "insider-trading-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "fail-to-deliver", Family: FamilyInsider, Description: "Fail to deliver records", Version: endpoint.V4, Path: "fail_to_deliver", Required: symbolOnly, Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "senate-trading", Family: FamilySenate, Description: "Senate trades for a symbol", Version: endpoint.V4, Path: "senate-trading", Required: symbolOnly, Optional: pageOnly},
	{Name: "senate-trading-rss-feed", Family: FamilySenate, Description: "Latest senate trades", Version: endpoint.V4, Path: "senate-trading-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "senate-disclosure", Family: FamilySenate, Description: "House disclosures for a symbol", Version: endpoint.V4, Path: "senate-disclosure", Required: symbolOnly, Optional: pageOnly},
	{Name: "senate-disclosure-rss-feed", Family: FamilySenate, Description: "Latest house disclosures", Version: endpoint.V4, Path: "senate-disclosure-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
}

// --- Fundamentals ---

var statementDefaults = map[string]string{pLimit: "120", pPeriod: "quarter"}

var fundamentalEndpoints = []Endpoint{
	{Name: "financial-statement-symbol-lists", Family: FamilyFundamental, Description: "Symbols with financial statements", Path: "financial-statement-symbol-lists", Shape: endpoint.ShapeRaw},
	{Name: "income-statement", Family: FamilyFundamental, Description: "Income statements", Path: "income-statement/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: statementDefaults, Transpose: true},
	{Name: "balance-sheet-statement", Family: FamilyFundamental, Description: "Balance sheet statements", Path: "balance-sheet-statement/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: statementDefaults, Transpose: true},
	{Name: "cash-flow-statement", Family: FamilyFundamental, Description: "Cash flow statements", Path: "cash-flow-statement/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: statementDefaults, Transpose: true},
	{Name: "income-statement-as-reported", Family: FamilyFundamental, Description: "Income statements as reported", Path: "income-statement-as-reported/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: statementDefaults, Transpose: true},
	{Name: "balance-sheet-statement-as-reported", Family: FamilyFundamental, Description: "Balance sheets as reported", Path: "balance-sheet-statement-as-reported/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: statementDefaults, Transpose: true},
	{Name: "cash-flow-statement-as-reported", Family: FamilyFundamental, Description: "Cash flow statements as reported", Path: "cash-flow-statement-as-reported/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: statementDefaults, Transpose: true},
	{Name: "shares-float", Family: FamilyFundamental, Description: "Shares float of a company", Version: endpoint.V4, Path: "shares_float", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "shares-float-all", Family: FamilyFundamental, Description: "Shares float of all companies", Version: endpoint.V4, Path: "shares_float/all", Index: "symbol"},
	{Name: "earning-call-transcript-dates", Family: FamilyFundamental, Description: "Available transcripts as [quarter, year, date]", Version: endpoint.V4, Path: "earning_call_transcript", Required: symbolOnly, Shape: endpoint.ShapeRaw},
	{Name: "earning-call-transcript", Family: FamilyFundamental, Description: "Earnings call transcript", Path: "earning_call_transcript/{symbol}", Required: []string{endpoint.ParamQuarter, pYear}, Shape: endpoint.ShapeRecord},
	{Name: "batch-earning-call-transcript", Family: FamilyFundamental, Description: "All transcripts of a year", Version: endpoint.V4, Path: "batch_earning_call_transcript/{symbol}", Required: []string{pYear}},
	{Name: "sec-filings", Family: FamilyFundamental, Description: "SEC filings", Path: "sec_filings/{symbol}", Optional: []string{pPage, endpoint.ParamType, pLimit}, Index: "filing_date"},
	{Name: "company-notes", Family: FamilyFundamental, Description: "Company notes due", Version: endpoint.V4, Path: "company-notes", Required: symbolOnly},
	{Name: "revenue-product-segmentation", Family: FamilyFundamental, Description: "Revenue by product", Version: endpoint.V4, Path: "revenue-product-segmentation", Required: symbolOnly, Optional: []string{pPeriod, "structure"}, Defaults: map[string]string{pPeriod: "quarter", "structure": "flat"}, Shape: endpoint.ShapeRaw},
	{Name: "revenue-geographic-segmentation", Family: FamilyFundamental, Description: "Revenue by geography", Version: endpoint.V4, Path: "revenue-geographic-segmentation", Required: symbolOnly, Optional: []string{pPeriod, "structure"}, Defaults: map[string]string{pPeriod: "quarter", "structure": "flat"}, Shape: endpoint.ShapeRaw},
	{Name: "financial-reports-dates", Family: FamilyFundamental, Description: "Available 10-K/10-Q report dates", Version: endpoint.V4, Path: "financial-reports-dates", Required: symbolOnly},
	{Name: "sec-rss-feed", Family: FamilyFundamental, Description: "Latest SEC filings", Path: "rss_feed", Optional: []string{pPage, pLimit, endpoint.ParamType, pFrom, pTo, "isDone"}, Defaults: map[string]string{pPage: "0", pLimit: "50"}},
	{Name: "financial-reports-json", Family: FamilyFundamental, Description: "Form 10-K as JSON", Version: endpoint.V4, Path: "financial-reports-json", Required: []string{pSymbol, pYear}, Optional: []string{pPeriod}, Defaults: map[string]string{pPeriod: "FY"}, Shape: endpoint.ShapeRaw},
	{Name: "rss-feed-8k", Family: FamilyFundamental, Description: "Latest 8-K filings", Version: endpoint.V4, Path: "rss_feed_8k", Optional: []string{pPage, pFrom, pTo, "hasFinancial"}, Defaults: map[string]string{pPage: "0"}},
}

// --- Fundamentals analysis ---

var analysisEndpoints = []Endpoint{
	{Name: "ratios-ttm", Family: FamilyAnalysis, Description: "Trailing twelve month ratios", Path: "ratios-ttm/{symbol}", Shape: endpoint.ShapeRecord, TTM: true},
	{Name: "ratios", Family: FamilyAnalysis, Description: "Financial ratios", Path: "ratios/{symbol}", Optional: []string{pPeriod, pLimit}, Defaults: map[string]string{pPeriod: "quarter"}},
	{Name: "score", Family: FamilyAnalysis, Description: "Altman Z and Piotroski scores", Version: endpoint.V4, Path: "score", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "owner-earnings", Family: FamilyAnalysis, Description: "Owner earnings", Version: endpoint.V4, Path: "owner_earnings", Required: symbolOnly},
	{Name: "enterprise-values", Family: FamilyAnalysis, Description: "Enterprise values", Path: "enterprise-values/{symbol}", Optional: []string{pPeriod, pLimit}, Defaults: map[string]string{pPeriod: "quarter"}},
	{Name: "income-statement-growth", Family: FamilyAnalysis, Description: "Income statement growth", Path: "income-statement-growth/{symbol}", Optional: []string{pLimit, pPeriod}},
	{Name: "balance-sheet-statement-growth", Family: FamilyAnalysis, Description: "Balance sheet growth", Path: "balance-sheet-statement-growth/{symbol}", Optional: []string{pLimit, pPeriod}},
	{Name: "cash-flow-statement-growth", Family: FamilyAnalysis, Description: "Cash flow growth", Path: "cash-flow-statement-growth/{symbol}", Optional: []string{pLimit, pPeriod}},
	{Name: "key-metrics-ttm", Family: FamilyAnalysis, Description: "Trailing twelve month key metrics", Path: "key-metrics-ttm/{symbol}", Shape: endpoint.ShapeRecord, TTM: true},
	{Name: "key-metrics", Family: FamilyAnalysis, Description: "Key metrics", Path: "key-metrics/{symbol}", Optional: []string{pPeriod, pLimit}, Defaults: map[string]string{pPeriod: "quarter"}},
	{Name: "financial-growth", Family: FamilyAnalysis, Description: "Financial statement growth", Path: "financial-growth/{symbol}", Optional: []string{pPeriod, pLimit}, Defaults: map[string]string{pPeriod: "quarter"}},
	{Name: "rating", Family: FamilyAnalysis, Description: "Company rating", Path: "rating/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "historical-rating", Family: FamilyAnalysis, Description: "Daily rating history", Path: "historical-rating/{symbol}", Optional: []string{pLimit}},
	{Name: "discounted-cash-flow", Family: FamilyAnalysis, Description: "Discounted cash flow value", Path: "discounted-cash-flow/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "advanced-discounted-cash-flow", Family: FamilyAnalysis, Description: "Advanced DCF model", Version: endpoint.V4, Path: "advanced_discounted_cash_flow", Required: symbolOnly, Index: "year"},
	{Name: "advanced-levered-discounted-cash-flow", Family: FamilyAnalysis, Description: "Advanced levered DCF model", Version: endpoint.V4, Path: "advanced_levered_discounted_cash_flow", Required: symbolOnly, Index: "year"},
	{Name: "historical-daily-discounted-cash-flow", Family: FamilyAnalysis, Description: "Daily DCF history", Path: "historical-daily-discounted-cash-flow/{symbol}", Optional: []string{pLimit}},
	{Name: "historical-discounted-cash-flow-statement", Family: FamilyAnalysis, Description: "DCF history per statement period", Path: "historical-discounted-cash-flow-statement/{symbol}", Optional: []string{pPeriod, pLimit}},
}

// --- Calendars ---

var calendarEndpoints = []Endpoint{
	{Name: "earning-calendar", Family: FamilyCalendars, Description: "Earnings calendar", Path: "earning_calendar", Optional: dateRange, Index: "symbol"},
	{Name: "historical-earning-calendar", Family: FamilyCalendars, Description: "Past and upcoming earnings of a company", Path: "historical/earning_calendar/{symbol}", Optional: []string{pLimit}, Defaults: map[string]string{pLimit: "80"}},
	{Name: "earning-calendar-confirmed", Family: FamilyCalendars, Description: "Confirmed earnings dates", Version: endpoint.V4, Path: "earning-calendar-confirmed", Optional: dateRange, Index: "symbol"},
	{Name: "ipo-calendar", Family: FamilyCalendars, Description: "IPO calendar", Path: "ipo_calendar", Optional: dateRange, Index: "symbol"},
	{Name: "ipo-calendar-prospectus", Family: FamilyCalendars, Description: "IPO prospectus filings", Version: endpoint.V4, Path: "ipo-calendar-prospectus", Optional: dateRange, Index: "symbol"},
	{Name: "ipo-calendar-confirmed", Family: FamilyCalendars, Description: "Confirmed IPOs", Version: endpoint.V4, Path: "ipo-calendar-confirmed", Optional: dateRange, Index: "symbol"},
	{Name: "stock-split-calendar", Family: FamilyCalendars, Description: "Stock split calendar", Path: "stock_split_calendar", Optional: dateRange, Index: "symbol"},
	{Name: "stock-dividend-calendar", Family: FamilyCalendars, Description: "Dividend calendar", Path: "stock_dividend_calendar", Optional: dateRange, Index: "symbol"},
	{Name: "historical-dividends", Family: FamilyCalendars, Description: "Dividend history of a company", Path: "historical-price-full/stock_dividend/{symbol}", DataPath: "historical"},
	{Name: "economic-calendar", Family: FamilyCalendars, Description: "Economic events calendar", Path: "economic_calendar", Optional: dateRange},
}

// --- Indexes, market performance, lists, look-up ---

var indexEndpoints = []Endpoint{
	{Name: "index-quotes", Family: FamilyIndexes, Description: "Quotes for all indexes", Path: "quotes/index", Index: "symbol"},
	{Name: "sp500-constituent", Family: FamilyIndexes, Description: "S&P 500 constituents", Path: "sp500_constituent", Index: "symbol"},
	{Name: "historical-sp500-constituent", Family: FamilyIndexes, Description: "S&P 500 membership changes", Path: "historical/sp500_constituent"},
	{Name: "nasdaq-constituent", Family: FamilyIndexes, Description: "Nasdaq 100 constituents", Path: "nasdaq_constituent", Index: "symbol"},
	{Name: "dowjones-constituent", Family: FamilyIndexes, Description: "Dow Jones constituents", Path: "dowjones_constituent", Index: "symbol"},
	{Name: "historical-dowjones-constituent", Family: FamilyIndexes, Description: "Dow Jones membership changes", Path: "historical/dowjones_constituent"},
	{Name: "available-indexes", Family: FamilyIndexes, Description: "Available index symbols", Path: "symbol/available-indexes", Index: "symbol"},

	{Name: "sector-price-earning-ratio", Family: FamilyPerformance, Description: "Sector P/E ratios", Version: endpoint.V4, Path: "sector_price_earning_ratio", Required: []string{endpoint.ParamDate}, Optional: []string{endpoint.ParamExchange}, Defaults: map[string]string{endpoint.ParamExchange: "NYSE"}, Index: "sector"},
	{Name: "industry-price-earning-ratio", Family: FamilyPerformance, Description: "Industry P/E ratios", Version: endpoint.V4, Path: "industry_price_earning_ratio", Required: []string{endpoint.ParamDate}, Optional: []string{endpoint.ParamExchange}, Defaults: map[string]string{endpoint.ParamExchange: "NYSE"}, Index: "industry"},
	{Name: "sector-performance", Family: FamilyPerformance, Description: "Current sector performance", Path: "sector-performance", Index: "sector"},
	{Name: "historical-sectors-performance", Family: FamilyPerformance, Description: "Daily sector performance", Path: "historical-sectors-performance", Optional: []string{pLimit}},
	{Name: "gainers", Family: FamilyPerformance, Description: "Biggest gainers", Path: "stock_market/gainers", Index: "symbol"},
	{Name: "losers", Family: FamilyPerformance, Description: "Biggest losers", Path: "stock_market/losers", Index: "symbol"},
	{Name: "actives", Family: FamilyPerformance, Description: "Most active stocks", Path: "stock_market/actives", Index: "symbol"},

	{Name: "stock-list", Family: FamilyLists, Description: "All stock symbols", Path: "stock/list", Index: "symbol"},
	{Name: "tradable-list", Family: FamilyLists, Description: "Tradable symbols", Path: "available-traded/list", Index: "symbol"},
	{Name: "etf-list", Family: FamilyLists, Description: "All ETF symbols", Path: "etf/list", Index: "symbol"},

	{Name: "search", Family: FamilyLookup, Description: "Search by symbol or name", Path: "search", Required: []string{endpoint.ParamQuery}, Optional: []string{pLimit, endpoint.ParamExchange}, Index: "symbol"},
	{Name: "search-name", Family: FamilyLookup, Description: "Search by company name", Path: "search-name", Required: []string{endpoint.ParamQuery}, Optional: []string{pLimit, endpoint.ParamExchange}, Index: "symbol"},
	{Name: "search-ticker", Family: FamilyLookup, Description: "Search by ticker", Path: "search-ticker", Required: []string{endpoint.ParamQuery}, Optional: []string{pLimit, endpoint.ParamExchange}, Index: "symbol"},
	{Name: "countries", Family: FamilyLookup, Description: "All supported countries", Path: "get-all-countries", Shape: endpoint.ShapeRaw},
}

// --- Statistics, upgrades, price targets, private companies ---

var statisticsEndpoints = []Endpoint{
	{Name: "social-sentiment", Family: FamilyStatistics, Description: "Historical social sentiment", Version: endpoint.V4, Path: "historical/social-sentiment", Required: symbolOnly, Optional: pageOnly},
	{Name: "social-sentiment-trending", Family: FamilyStatistics, Description: "Trending social sentiment", Version: endpoint.V4, Path: "social-sentiment/trending", Optional: []string{endpoint.ParamType, "source"}, Index: "symbol"},
	{Name: "grade", Family: FamilyStatistics, Description: "Analyst grades", Path: "grade/{symbol}", Optional: []string{pLimit}, Defaults: map[string]string{pLimit: "500"}},
	{Name: "earnings-surprises", Family: FamilyStatistics, Description: "Earnings surprises", Path: "earnings-surprises/{symbol}"},
	{Name: "analyst-estimates", Family: FamilyStatistics, Description: "Analyst estimates", Path: "analyst-estimates/{symbol}", Optional: []string{pLimit, pPeriod}, Defaults: map[string]string{pPeriod: "quarter"}},
	{Name: "mergers-acquisitions-rss-feed", Family: FamilyStatistics, Description: "Latest M&A", Version: endpoint.V4, Path: "mergers-acquisitions-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "mergers-acquisitions-search", Family: FamilyStatistics, Description: "Search M&A by company name", Version: endpoint.V4, Path: "mergers-acquisitions/search", Required: []string{pName}, Optional: pageOnly},

	{Name: "upgrades-downgrades", Family: FamilyUpgrades, Description: "Upgrades and downgrades of a symbol", Version: endpoint.V4, Path: "upgrades-downgrades", Required: symbolOnly},
	{Name: "upgrades-downgrades-rss-feed", Family: FamilyUpgrades, Description: "Latest upgrades and downgrades", Version: endpoint.V4, Path: "upgrades-downgrades-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "upgrades-downgrades-consensus", Family: FamilyUpgrades, Description: "Upgrades and downgrades consensus", Version: endpoint.V4, Path: "upgrades-downgrades-consensus", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "upgrades-downgrades-grading-company", Family: FamilyUpgrades, Description: "Grades issued by one company", Version: endpoint.V4, Path: "upgrades-downgrades-grading-company", Required: []string{"company"}},

	{Name: "price-target", Family: FamilyPriceTarget, Description: "Price targets of a symbol", Version: endpoint.V4, Path: "price-target", Required: symbolOnly},
	{Name: "price-target-summary", Family: FamilyPriceTarget, Description: "Price target summary", Version: endpoint.V4, Path: "price-target-summary", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "price-target-analyst-name", Family: FamilyPriceTarget, Description: "Price targets by analyst", Version: endpoint.V4, Path: "price-target-analyst-name", Required: []string{pName}},
	{Name: "price-target-analyst-company", Family: FamilyPriceTarget, Description: "Price targets by analyst company", Version: endpoint.V4, Path: "price-target-analyst-company", Required: []string{"company"}},
	{Name: "price-target-consensus", Family: FamilyPriceTarget, Description: "Price target consensus", Version: endpoint.V4, Path: "price-target-consensus", Required: symbolOnly, Shape: endpoint.ShapeRecord},
	{Name: "price-target-rss-feed", Family: FamilyPriceTarget, Description: "Latest price targets", Version: endpoint.V4, Path: "price-target-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},

	{Name: "crowdfunding-offerings-rss-feed", Family: FamilyPrivate, Description: "Latest crowdfunding offerings", Version: endpoint.V4, Path: "crowdfunding-offerings-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "crowdfunding-offerings-search", Family: FamilyPrivate, Description: "Search crowdfunding offerings", Version: endpoint.V4, Path: "crowdfunding-offerings/search", Required: []string{pName}},
	{Name: "crowdfunding-offerings", Family: FamilyPrivate, Description: "Crowdfunding offerings of a CIK", Version: endpoint.V4, Path: "crowdfunding-offerings", Required: []string{pCIK}},
	{Name: "fundraising-rss-feed", Family: FamilyPrivate, Description: "Latest equity offerings", Version: endpoint.V4, Path: "fundraising-rss-feed", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "fundraising-search", Family: FamilyPrivate, Description: "Search equity offerings", Version: endpoint.V4, Path: "fundraising/search", Required: []string{pName}},
	{Name: "fundraising", Family: FamilyPrivate, Description: "Equity offerings of a CIK", Version: endpoint.V4, Path: "fundraising", Required: []string{pCIK}},
}

// --- News ---

var newsEndpoints = []Endpoint{
	{Name: "fmp-articles", Family: FamilyNews, Description: "FMP articles", Path: "fmp/articles", Optional: []string{pPage, "size"}, Defaults: map[string]string{pPage: "0", "size": "5"}, DataPath: "content"},
	{Name: "stock-news", Family: FamilyNews, Description: "Stock news", Path: "stock_news", Optional: []string{"tickers", pPage, pLimit}, Defaults: map[string]string{pPage: "0", pLimit: "50"}},
	{Name: "stock-news-sentiments", Family: FamilyNews, Description: "Stock news with sentiment", Version: endpoint.V4, Path: "stock-news-sentiments-rss-feed", Optional: []string{pPage, pLimit}, Defaults: map[string]string{pPage: "0"}, Index: "symbol"},
	{Name: "crypto-news", Family: FamilyNews, Description: "Crypto news", Version: endpoint.V4, Path: "crypto_news", Optional: []string{pPage, pSymbol}, Defaults: map[string]string{pPage: "0"}},
	{Name: "forex-news", Family: FamilyNews, Description: "Forex news", Version: endpoint.V4, Path: "forex_news", Optional: []string{pPage, pSymbol}, Defaults: map[string]string{pPage: "0"}},
	{Name: "general-news", Family: FamilyNews, Description: "General news", Version: endpoint.V4, Path: "general_news", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
	{Name: "press-releases", Family: FamilyNews, Description: "Press releases", Path: "press-releases/{symbol}", Optional: pageOnly, Defaults: map[string]string{pPage: "0"}},
}

// --- Prices ---

var priceEndpoints = []Endpoint{
	{Name: "quote", Family: FamilyPrices, Description: "Quote for one or more comma separated symbols", Path: "quote/{symbol}", Index: "symbol"},
	{Name: "otc-real-time-price", Family: FamilyPrices, Description: "OTC real-time prices", Path: "otc/real-time-price/{symbol}", Index: "symbol"},
	{Name: "stock-price-change", Family: FamilyPrices, Description: "Price change over standard horizons", Path: "stock-price-change/{symbol}", Index: "symbol"},
	{Name: "quote-short", Family: FamilyPrices, Description: "Real-time price and volume", Path: "quote-short/{symbol}", Shape: endpoint.ShapeRecord},
	{Name: "exchange-quotes", Family: FamilyPrices, Description: "Quotes for an exchange", Path: "quotes/{exchange}", Defaults: map[string]string{endpoint.ParamExchange: "nyse"}, Index: "symbol"},
	{Name: "historical-price-full", Family: FamilyPrices, Description: "Daily price history", Path: "historical-price-full/{symbol}", Optional: []string{pFrom, pTo, "serietype", "timeseries"}, DataPath: "historical"},
	{Name: "historical-price-batch", Family: FamilyPrices, Description: "Daily price history of several symbols", Path: "historical-price-full/{symbol}", Optional: []string{pFrom, pTo, "timeseries"}, DataPath: "historicalStockList", Shape: endpoint.ShapeRaw},
	{Name: "historical-chart", Family: FamilyPrices, Description: "Intraday price history", Path: "historical-chart/{interval}/{symbol}", Optional: dateRange},
	{Name: "historical-stock-split", Family: FamilyPrices, Description: "Stock split history", Path: "historical-price-full/stock_split/{symbol}", DataPath: "historical"},
	{Name: "survivorship-bias-free-eod", Family: FamilyPrices, Description: "End of day prices including delisted symbols", Version: endpoint.V4, Path: "historical-price-full/{symbol}/{date}", Shape: endpoint.ShapeRecord},
	{Name: "technical-indicator", Family: FamilyPrices, Description: "Technical indicator series", Path: "technical_indicator/{interval}/{symbol}", Required: []string{endpoint.ParamType}, Optional: []string{"period"}, Defaults: map[string]string{endpoint.ParamInterval: "daily"}},
}

// --- ESG and advanced data ---

var esgEndpoints = []Endpoint{
	{Name: "esg-score", Family: FamilyESG, Description: "ESG scores", Version: endpoint.V4, Path: "esg-environmental-social-governance-data", Required: symbolOnly, Index: "date", Ignore: []string{"symbol", "cik", "url", "company_name"}},
	{Name: "esg-ratings", Family: FamilyESG, Description: "ESG risk ratings", Version: endpoint.V4, Path: "esg-environmental-social-governance-data-ratings", Required: symbolOnly, Index: "year", Ignore: []string{"symbol", "cik", "company_name"}},
	{Name: "esg-sector-benchmark", Family: FamilyESG, Description: "ESG sector benchmarks", Version: endpoint.V4, Path: "esg-environmental-social-governance-sector-benchmark", Required: []string{pYear}, Index: "year"},
}

var advancedEndpoints = []Endpoint{
	{Name: "standard-industrial-classification", Family: FamilyAdvanced, Description: "SIC lookup by symbol, CIK or code", Version: endpoint.V4, Path: "standard_industrial_classification", AnyOf: []string{pSymbol, pCIK, "sicCode"}},
	{Name: "standard-industrial-classification-all", Family: FamilyAdvanced, Description: "SIC of all companies", Version: endpoint.V4, Path: "standard_industrial_classification/all", Index: "symbol"},
	{Name: "standard-industrial-classification-list", Family: FamilyAdvanced, Description: "All SIC codes", Version: endpoint.V4, Path: "standard_industrial_classification_list", Index: "sic_code"},
	{Name: "commitment-of-traders-report-list", Family: FamilyAdvanced, Description: "Commitment of traders symbols", Version: endpoint.V4, Path: "commitment_of_traders_report/list", Index: "trading_symbol"},
}
