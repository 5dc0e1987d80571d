package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"fortune/internal/analytics"
	"fortune/internal/assistant"
	apperrors "fortune/internal/errors"
	"fortune/internal/valuation"
)

var commands = []subcommands.Command{
	&viewCmd{},
	&riskCmd{},
	&compareCmd{},
	&sellCmd{},
	&historyCmd{},
	&realizedCmd{},
	&pricesCmd{},
}

// run opens the app, executes fn and maps its error to an exit status.
func run(ctx context.Context, fn func(ctx context.Context, a *app) error) subcommands.ExitStatus {
	a, err := newApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer a.close()

	if err := fn(ctx, a); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", appErr.Code, appErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "value a client's holdings and show the summary" }
func (*viewCmd) Usage() string {
	return `dashboard view <clientId>

  Prices every holding at a simulated market price and prints the holdings
  table, portfolio totals and top and under performers.
`
}
func (*viewCmd) SetFlags(*flag.FlagSet) {}

func (*viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dashboard view <clientId>")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, a *app) error {
		snap, err := a.ctrl.LoadClient(ctx, f.Arg(0))
		if err != nil {
			return err
		}
		writeHoldings(os.Stdout, snap.Holdings)

		s := a.ctrl.Summary()
		fmt.Printf("\nInvested %s  Market value %s  Unrealized %s (%.2f%%)\n",
			assistant.FormatMoney(s.Invested), assistant.FormatMoney(s.MarketValue),
			assistant.FormatMoney(s.UnrealizedPnL), s.UnrealizedPct)

		p := a.ctrl.Performers()
		fmt.Println("\nTop performers")
		writeHoldings(os.Stdout, p.Top)
		fmt.Println("\nUnder performers")
		writeHoldings(os.Stdout, p.Under)
		return nil
	})
}

func writeHoldings(w io.Writer, holdings []valuation.EnrichedHolding) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "HOLDING\tSYMBOL\tCATEGORY\tQTY\tAVG\tPRICE\tVALUE\tP&L\tP&L %\t")
	for _, h := range holdings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			h.HoldingID, h.Asset.Symbol, h.Asset.Category, h.Quantity,
			h.AvgBuyPrice, h.CurrentPrice, h.MarketValue, h.PnL, h.PnLPct)
	}
	_ = tw.Flush()
}

type riskCmd struct{}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "show beta, VaR, exposure and P&L distribution" }
func (*riskCmd) Usage() string    { return "dashboard risk <clientId>\n" }
func (*riskCmd) SetFlags(*flag.FlagSet) {}

func (*riskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dashboard risk <clientId>")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, a *app) error {
		if _, err := a.ctrl.LoadClient(ctx, f.Arg(0)); err != nil {
			return err
		}
		risk, err := a.ctrl.Risk()
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, struct {
			Risk         *analytics.RiskSnapshot `json:"risk"`
			Distribution analytics.Distribution  `json:"distribution"`
		}{risk, a.ctrl.Distribution()})
	})
}

type compareCmd struct{}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the portfolios of two clients" }
func (*compareCmd) Usage() string    { return "dashboard compare <clientA> <clientB>\n" }
func (*compareCmd) SetFlags(*flag.FlagSet) {}

func (*compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: dashboard compare <clientA> <clientB>")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, a *app) error {
		cmp, err := a.ctrl.Compare(ctx, f.Arg(0), f.Arg(1))
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, cmp)
	})
}

type sellCmd struct {
	price string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a holding and record the realized trade" }
func (*sellCmd) Usage() string {
	return `dashboard sell [-price <price>] <holdingId>

  Without -price the holding is sold at a simulated market price.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "Custom sell price.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dashboard sell [-price <price>] <holdingId>")
		return subcommands.ExitUsageError
	}
	var price *float64
	if c.price != "" {
		p, err := strconv.ParseFloat(c.price, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid price %q\n", c.price)
			return subcommands.ExitUsageError
		}
		price = &p
	}
	return run(ctx, func(ctx context.Context, a *app) error {
		trade, err := a.ctrl.Sell(ctx, f.Arg(0), price)
		if err != nil {
			return err
		}
		fmt.Printf("Sold %g %s at %.2f, realized %s\n", trade.Qty, trade.Symbol, trade.Sell, assistant.FormatMoney(trade.Profit))
		return nil
	})
}

type historyCmd struct {
	clear bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list or clear realized trades" }
func (*historyCmd) Usage() string    { return "dashboard history [-clear]\n" }

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Delete every recorded trade.")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		if c.clear {
			return a.ctrl.ClearTrades(ctx)
		}
		trades, err := a.ctrl.Trades(ctx)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tSYMBOL\tTYPE\tQTY\tBUY\tSELL\tPROFIT")
		for _, t := range trades {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%.2f\t%.2f\t%.2f\n",
				t.Date.Format(time.DateOnly), t.Symbol, t.Type, t.Qty, t.Buy, t.Sell, t.Profit)
		}
		return tw.Flush()
	})
}

type realizedCmd struct{}

func (*realizedCmd) Name() string     { return "realized" }
func (*realizedCmd) Synopsis() string { return "aggregate realized P&L by month and asset" }
func (*realizedCmd) Usage() string    { return "dashboard realized\n" }
func (*realizedCmd) SetFlags(*flag.FlagSet) {}

func (*realizedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, func(ctx context.Context, a *app) error {
		summary, err := a.ctrl.Realized(ctx, time.Now())
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, summary)
	})
}

type pricesCmd struct {
	priceRange string
	base       float64
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show a symbol's price history" }
func (*pricesCmd) Usage() string {
	return `dashboard prices [-range 3M] [-base <price>] <symbol>

  Falls back to a synthetic weekly series around -base when the server has no
  recorded prices.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.priceRange, "range", "3M", "Range: 1W, 1M, 3M, 6M or 1Y.")
	f.Float64Var(&c.base, "base", 0, "Starting price of a synthetic series.")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dashboard prices [-range 3M] <symbol>")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, a *app) error {
		series, synthetic, err := a.ctrl.PriceHistory(ctx, f.Arg(0), c.priceRange, c.base)
		if err != nil {
			return err
		}
		if synthetic {
			fmt.Fprintln(os.Stderr, "no recorded prices; showing a synthetic series")
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for i, label := range series.Labels {
			fmt.Fprintf(tw, "%s\t%.2f\n", label, series.Prices[i])
		}
		return tw.Flush()
	})
}
