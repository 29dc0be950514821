// Command league-server is an MCP server for a fantasy-football dynasty
// league: dynasty trade valuation, simulated playoff odds, weekly scoring
// recaps, and the current standings table, backed by the Sleeper league API
// and FantasyCalc trade values.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"dynasty-league-mcp/internal/config"
	"dynasty-league-mcp/internal/logging"
	"dynasty-league-mcp/internal/matcher"
	"dynasty-league-mcp/internal/metrics"
	"dynasty-league-mcp/internal/sleeper"
	"dynasty-league-mcp/internal/trade"
	"dynasty-league-mcp/internal/valuation"
)

// serverDeps bundles what the tool handlers need.
type serverDeps struct {
	cfg    config.Config
	log    *zap.Logger
	trades *trade.Evaluator
	league *sleeper.Client
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	var (
		addr        = flag.String("addr", "", "HTTP listen address (default from HTTP_ADDR)")
		mcpPath     = flag.String("path", "", "HTTP path for MCP endpoint (default from MCP_PATH)")
		requireAuth = flag.Bool("require-auth", true, "require API key auth via LEAGUE_MCP_API_KEY")
		strictMatch = flag.Bool("strict-match", false, "use token matching instead of substring matching for asset names")
	)
	flag.Parse()

	cfg := config.Load()
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}
	if *mcpPath != "" {
		cfg.MCPPath = *mcpPath
	}

	log, err := logging.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		stdlog.Fatal(err)
	}
	defer log.Sync()

	if *requireAuth && cfg.APIKey == "" {
		log.Fatal("LEAGUE_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}
	if !*requireAuth {
		cfg.APIKey = ""
	}

	prices := valuation.NewClient()
	prices.BaseURL = cfg.FantasyCalcBaseURL
	cache := valuation.NewCache(prices)
	cache.TTL = cfg.ValuationTTL

	var healthFn metrics.HealthFunc
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, valuation snapshots disabled", zap.Error(err))
		} else {
			cache.Store = valuation.NewRedisStore(rdb, cfg.ValuationTTL)
			healthFn = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	var match matcher.Strategy = matcher.Substring{}
	if *strictMatch {
		match = matcher.Token{}
	}

	league := sleeper.NewClient()
	league.BaseURL = cfg.SleeperBaseURL

	deps := serverDeps{
		cfg:    cfg,
		log:    log,
		trades: trade.NewEvaluator(cache, match),
		league: league,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "dynasty-league-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "trade_analyzer",
		Description: "Dynasty trade valuation with a win/loss verdict (FantasyCalc values)",
	}, instrument("trade_analyzer", func(ctx context.Context, args TradeAnalyzerArgs) (any, error) {
		return buildTradeAnalysis(ctx, deps, args)
	}))

	addTool(server, &registry, &mcp.Tool{
		Name:        "playoff_odds",
		Description: "Simulated playoff qualification odds per team",
	}, instrument("playoff_odds", func(ctx context.Context, args PlayoffOddsArgs) (any, error) {
		return buildPlayoffOdds(ctx, deps, args)
	}))

	addTool(server, &registry, &mcp.Tool{
		Name:        "weekly_report",
		Description: "Weekly recap: top/lowest scorer, league average, biggest underperformance",
	}, instrument("weekly_report", func(ctx context.Context, args WeeklyReportArgs) (any, error) {
		return buildWeeklyReport(ctx, deps, args)
	}))

	addTool(server, &registry, &mcp.Tool{
		Name:        "league_standings",
		Description: "Current standings table (wins, then points tie-break)",
	}, instrument("league_standings", func(ctx context.Context, args LeagueStandingsArgs) (any, error) {
		return buildLeagueStandings(ctx, deps, args)
	}))

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(apiKeyAuth(cfg.APIKey, cfg.AuthHeader))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/tools", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	})
	r.Handle(cfg.MCPPath, handler)

	metricsSrv := metrics.StartServer(cfg.MetricsAddr, healthFn)
	defer metricsSrv.Close()

	log.Info("MCP HTTP server listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("path", cfg.MCPPath),
	)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// instrument wraps a build function into an MCP tool handler with an outcome
// counter. Build errors become tool errors, not protocol errors.
func instrument[T any](tool string, fn func(context.Context, T) (any, error)) func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		out, err := fn(ctx, args)
		if err != nil {
			metrics.ToolCalls.WithLabelValues(tool, "error").Inc()
			return toolError(err), nil, nil
		}
		metrics.ToolCalls.WithLabelValues(tool, "ok").Inc()
		return toolMarshal(out)
	}
}

func toolMarshal(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
