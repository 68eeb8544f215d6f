package main

import (
	"net/http"
	"os"

	"blayer/calculator"
	"blayer/renderer"
	"blayer/server"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type options struct {
	conf   string
	output string
	addr   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	var cfg calculator.Config

	root := &cobra.Command{
		Use:           "blayer",
		Short:         "Laminar flat-plate boundary-layer velocity profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = calculator.LoadConfig(opts.conf); err != nil {
				return err
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.conf, "conf", "conf/config.ini", "path of the ini config file")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Compute the profile and write the figure to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" {
				cfg.Output = opts.output
			}
			profile := calculator.NewCalculator(cfg).Run()
			return renderer.Save(cfg.Output, profile, cfg.Figure)
		},
	}
	plotCmd.Flags().StringVarP(&opts.output, "output", "o", "", "figure file, format taken from the extension")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the figure over http and the profile over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.addr != "" {
				cfg.Addr = opts.addr
			}
			upgrader.CheckOrigin = func(r *http.Request) bool {
				return true
			}
			s := server.NewServer(cfg.Addr, upgrader, calculator.NewCalculator(cfg), cfg.Figure)
			return s.Serve()
		},
	}
	serveCmd.Flags().StringVar(&opts.addr, "addr", "", "listen address")

	root.AddCommand(plotCmd, serveCmd)
	root.RunE = plotCmd.RunE
	root.Flags().AddFlagSet(plotCmd.Flags())
	return root
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
