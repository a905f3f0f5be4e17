package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"cardtracker/internal/http/web"
	"cardtracker/internal/model"
	"cardtracker/internal/repository/postgres"
	"cardtracker/internal/service"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Prints inventory totals.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			svc := service.NewCardService(postgres.NewCardPostgres(e.db), nil, nil, e.log)
			st, err := svc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), st, e.cfg.Currency)
			return nil
		},
	}
}

// renderStats writes the totals table followed by the per-status counts.
func renderStats(w io.Writer, st *service.Stats, currency string) {
	money := web.MoneyFormatter(currency)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Total cards", st.TotalCards},
		{"Total invested", money(st.TotalInvested)},
		{"Total revenue", money(st.TotalRevenue)},
		{"Total profit", money(st.TotalProfit)},
		{"Cards sold", st.SoldCount},
		{"Average days to sell", fmt.Sprintf("%.1f", st.AverageDaysToSell)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.SetStyle(table.StyleRounded)
	t.Render()

	s := table.NewWriter()
	s.SetOutputMirror(w)
	s.AppendHeader(table.Row{"Status", "Cards"})
	for _, status := range model.Statuses {
		s.AppendRow(table.Row{status, st.ByStatus[status]})
	}
	s.SetStyle(table.StyleRounded)
	s.Render()
}
