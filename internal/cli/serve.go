package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/matzehuels/wikireader/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve articles and editions over HTTP",
		Long: `Serve the reader API:

  GET /api/article/{title}   transformed article markup
  GET /api/edition           the current monthly edition
  GET /api/search?q=         title suggestions
  GET /api/styles            stylesheet bundle URL
  GET /healthz, /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = maxprocs.Set(maxprocs.Logger(c.Logger.Debugf))

			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			server.NewMetrics(reg).Install()

			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			srv := server.New(a.cfg, server.Deps{
				Articles: a.articles,
				Editions: a.editions,
				Search:   a.wikipedia,
				Registry: reg,
			}, c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
