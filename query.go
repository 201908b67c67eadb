package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"go-storefront/browse"
	"go-storefront/cache"
	"go-storefront/source"
	"go-storefront/urlstate"
)

var queryFlags struct {
	url       string
	search    string
	category  string
	minPrice  float64
	maxPrice  float64
	minRating float64
	sort      string
	page      int
	fromCache bool
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run one catalog query and print the page",
	Long: `Runs the catalog query once and prints the requested page.

Filters come either from flags or from a storefront URL:
  storefront query --category electronics --sort price-desc
  storefront query --url "/productos?search=ssd&page=1"`,
	RunE: runQuery,
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryFlags.url, "url", "", "read the query from a storefront URL")
	f.StringVar(&queryFlags.search, "search", "", "search text")
	f.StringVar(&queryFlags.category, "category", "", "category key")
	f.Float64Var(&queryFlags.minPrice, "min-price", 0, "minimum price in CLP")
	f.Float64Var(&queryFlags.maxPrice, "max-price", 0, "maximum price in CLP")
	f.Float64Var(&queryFlags.minRating, "min-rating", 0, "minimum rating")
	f.StringVar(&queryFlags.sort, "sort", "", "default, price-asc, price-desc, rating or name")
	f.IntVar(&queryFlags.page, "page", 1, "page number")
	f.BoolVar(&queryFlags.fromCache, "from-cache", false, "read the catalog snapshot saved in Redis by a running server")
}

// queryLocation turns the query flags into a storefront URL
func queryLocation() (string, error) {
	if queryFlags.url != "" {
		state, err := urlstate.ParseURL(queryFlags.url)
		if err != nil {
			return "", fmt.Errorf("invalid --url: %w", err)
		}
		return urlstate.Serialize("/", state), nil
	}

	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	number := func(key string, v float64) {
		if v > 0 {
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	set(urlstate.ParamSearch, queryFlags.search)
	set(urlstate.ParamCategory, queryFlags.category)
	number(urlstate.ParamMinPrice, queryFlags.minPrice)
	number(urlstate.ParamMaxPrice, queryFlags.maxPrice)
	number(urlstate.ParamMinRating, queryFlags.minRating)
	set(urlstate.ParamSort, queryFlags.sort)
	set(urlstate.ParamPage, strconv.Itoa(queryFlags.page))
	return urlstate.Serialize("/", urlstate.Parse(values)), nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, zapcore.WarnLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	location, err := queryLocation()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	src := newSource(cfg)
	if queryFlags.fromCache {
		store, err := newStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		src = cache.NewSnapshot(store)
	}

	loader := source.NewLoader(src, logger)
	b := browse.New(loader, urlstate.NewMemoryHistory(location), os.Stdout, logger)
	return b.Render(ctx)
}
