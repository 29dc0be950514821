package main

import (
	"context"
	"fmt"

	"dynasty-league-mcp/internal/trade"
)

// TradeAnalyzerArgs are the input arguments for the trade_analyzer tool.
type TradeAnalyzerArgs struct {
	Give string `json:"give" jsonschema:"Comma-separated assets you give away (players or picks)"`
	Get  string `json:"get" jsonschema:"Comma-separated assets you receive"`
}

// TradeAnalysis is the output of the trade_analyzer tool.
type TradeAnalysis struct {
	GiveValue     int      `json:"give_value"`
	GetValue      int      `json:"get_value"`
	Diff          int      `json:"diff"`
	Verdict       string   `json:"verdict"`
	UnmatchedGive []string `json:"unmatched_give,omitempty"`
	UnmatchedGet  []string `json:"unmatched_get,omitempty"`
}

func buildTradeAnalysis(ctx context.Context, deps serverDeps, args TradeAnalyzerArgs) (*TradeAnalysis, error) {
	give := trade.SplitAssets(args.Give)
	get := trade.SplitAssets(args.Get)
	if len(give) == 0 && len(get) == 0 {
		return nil, fmt.Errorf("give or get is required")
	}

	res, err := deps.trades.Evaluate(ctx, give, get)
	if err != nil {
		return nil, err
	}
	return &TradeAnalysis{
		GiveValue:     res.GiveValue,
		GetValue:      res.GetValue,
		Diff:          res.Diff,
		Verdict:       res.Verdict,
		UnmatchedGive: res.UnmatchedGive,
		UnmatchedGet:  res.UnmatchedGet,
	}, nil
}
