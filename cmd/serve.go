package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/EaseCHAOS/easechaos/pkg/config"
	"github.com/EaseCHAOS/easechaos/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve timetable layouts over HTTP",
	Long: `Start an HTTP server with a JSON API and an HTML timetable page.

  GET /                       timetable page (?dept=CE&year=3&view=day&day=Monday&theme=dark)
  GET /api/v1/timetable       the same layout as JSON
  GET /api/v1/exams           grouped exams (?class=CE+3A&range=week)
  GET /api/v1/departments     departments and years
  GET /healthz                liveness`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		maxRequests, _ := cmd.Flags().GetInt("max-requests")

		d, err := loadDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		srv := server.New(d.client, d.engine, server.Config{
			Draft:       d.cfg.DraftName(),
			ExamDraft:   d.cfg.ExamDraftName(),
			Department:  d.cfg.Department,
			Year:        d.cfg.Year,
			MaxRequests: maxRequests,
			Location:    d.loc,
		}, log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", config.DefaultAddr, "Address to listen on")
	serveCmd.Flags().Int("max-requests", 120, "Requests per minute allowed from one IP, 0 for no limit")
}
