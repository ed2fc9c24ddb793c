package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/ftlog"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "FTEXPLORER"

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(1)
	}
}

// newRootCmd wires flags and FTEXPLORER_* environment variables into one viper instance.
// Flags win over the environment.
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "ftexplorer [dir]",
		Short: "Terminal file explorer",
		Long: `ftexplorer browses folders in the terminal.

It keeps a back/forward history of visited folders, filters the current
folder by name and opens files with the system default application.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("start-dir", args[0])
			}
			return explore(v)
		},
	}

	flags := cmd.Flags()
	flags.String("log-file", "", "append logs to `file` (logging is off when empty)")
	flags.String("log-level", "info", "log level: trace, debug, info, warn or error")
	flags.Bool("no-mouse", false, "disable mouse support")
	flags.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	cobra.CheckErr(v.BindPFlags(flags))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("start-dir", "~")
	return cmd
}

func explore(v *viper.Viper) error {
	logger, closeLog, err := ftlog.Open(v.GetString("log-file"), ftlog.ParseLevel(v.GetString("log-level")))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = closeLog()
	}()

	if addr := v.GetString("pprof"); addr != "" {
		go func() {
			if err := httpListenAndServe(addr, nil); err != nil {
				logger.Error().Err(err).Str("addr", addr).Msg("pprof server error")
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("recovered from panic")
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			osExit(1)
		}
	}()

	app := newApp(explorer.Options{
		StartDir: v.GetString("start-dir"),
		NoMouse:  v.GetBool("no-mouse"),
		Logger:   logger,
	})
	return run(app)
}

var setupApp = func(app *tview.Application, options explorer.Options) {
	explorer.SetupApp(app, options)
}

var newApp = func(options explorer.Options) application {
	app := tview.NewApplication()
	setupApp(app, options)
	return app
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}
