package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"morinolab/site/internal/domain"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Show or change the saved language preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.Locale.Current())
		return nil
	},
}

var localeSetCmd = &cobra.Command{
	Use:   "set <ja|en>",
	Short: "Persist a language preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, ok := domain.ParseLocale(args[0])
		if !ok {
			return fmt.Errorf("unsupported locale %q", args[0])
		}
		app.Locale.Set(cmd.Context(), l)
		fmt.Fprintln(cmd.OutOrStdout(), l)
		return nil
	},
}

var localeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between ja and en",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.Locale.Toggle(cmd.Context()))
		return nil
	},
}

var localeDetectCmd = &cobra.Command{
	Use:   "detect <accept-language>",
	Short: "Initialize the preference from an Accept-Language value unless one is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), app.Locale.Init(cmd.Context(), args[0]))
		return nil
	},
}

func init() {
	localeCmd.AddCommand(localeSetCmd, localeToggleCmd, localeDetectCmd)
}
