package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"morinolab/site/internal/config"
	"morinolab/site/internal/container"
	"morinolab/site/internal/scroll"
)

var (
	cfgFile  string
	scrollY  int
	app      *container.Container
	viewport *scroll.MemoryViewport
)

var rootCmd = &cobra.Command{
	Use:   "morinolab",
	Short: "Content runtime for the Morino Lab website",
	Long: `morinolab loads the lab website's localized content (news, members,
publications, awards, research themes, lectures, careers) from the exported site and
keeps the per-page scroll positions and language preference in durable storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := config.ConfigureLogging(cfg.Log); err != nil {
			return err
		}

		viewport = scroll.NewMemoryViewport(scrollY)
		app, err = container.New(cmd.Context(), cfg, viewport)
		return err
	},
}

// closeContainer is swapped out in tests
var closeContainer = func(c *container.Container) error {
	return c.Close()
}

// run executes one command and always releases the container, including
// when the command itself failed.
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)

	if app != nil {
		if closeErr := closeContainer(app); closeErr != nil {
			log.Warnf("⚠️ Failed to close container: %v", closeErr)
			if err == nil {
				err = closeErr
			}
		}
		app = nil
	}
	return err
}

func Execute() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().IntVar(&scrollY, "scroll-y", 0, "vertical offset of the page currently shown")

	rootCmd.AddCommand(loadCmd, newsCmd, articleCmd, navigateCmd, scrollCmd, localeCmd)
}
