package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"morinolab/site/internal/client"
	"morinolab/site/internal/domain"
)

var (
	fieldName  string
	localeFlag string
)

var loadCmd = &cobra.Command{
	Use:   "load <content-type>",
	Short: "List the records of a content type in the active locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contentType := domain.ContentType(args[0])
		l, err := activeLocale()
		if err != nil {
			return err
		}

		records, err := app.Client.Load(cmd.Context(), contentType)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d)\n", contentType.GetDisplayName().Resolve(l), len(records))
		for _, r := range records {
			fmt.Fprintf(out, "%s\t%s\n", r.ID, client.ResolveLocalizedField(r, fieldName, l))
		}
		return nil
	},
}

var articleCmd = &cobra.Command{
	Use:   "article <content-type> <id>",
	Short: "Render an item's article as HTML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		article, err := app.Client.LoadArticle(cmd.Context(), domain.ContentType(args[0]), args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), article.HTML)
		return nil
	},
}

var navigateCmd = &cobra.Command{
	Use:   "navigate <url> [content-type...]",
	Short: "Leave the current page for url, loading its sections and restoring its scroll offset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		types := make([]domain.ContentType, 0, len(args)-1)
		for _, a := range args[1:] {
			types = append(types, domain.ContentType(a))
		}

		if from, _ := cmd.Flags().GetString("from"); from != "" {
			app.Scroll.RouteChanged(from)
		}

		page, err := app.Site.Navigate(ctx, args[0], types...)
		if err != nil {
			return err
		}
		time.Sleep(app.Scroll.Delay() + 10*time.Millisecond)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s [%s] scroll=%d\n", page.Path, page.Locale, viewport.ScrollY())
		for _, ct := range types {
			fmt.Fprintf(out, "  %s: %d\n", ct, len(page.Records(ct)))
		}
		return nil
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List news items newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := activeLocale()
		if err != nil {
			return err
		}

		news, err := app.Catalog.News(cmd.Context())
		if err != nil {
			return err
		}
		domain.SortByDateDesc(news)

		out := cmd.OutOrStdout()
		for _, n := range news {
			date := "----------"
			if !n.Date.IsZero() {
				date = n.Date.Format("2006-01-02")
			}
			fmt.Fprintf(out, "%s\t%d\t%s\n", date, n.ID, n.Name.Resolve(l))
		}
		return nil
	},
}

func activeLocale() (domain.Locale, error) {
	if localeFlag == "" {
		return app.Locale.Current(), nil
	}
	l, ok := domain.ParseLocale(localeFlag)
	if !ok {
		return "", fmt.Errorf("unsupported locale %q", localeFlag)
	}
	return l, nil
}

func init() {
	loadCmd.Flags().StringVar(&fieldName, "field", "name", "localized field to print")
	loadCmd.Flags().StringVar(&localeFlag, "locale", "", "locale to render (ja or en), defaults to the saved preference")
	newsCmd.Flags().StringVar(&localeFlag, "locale", "", "locale to render (ja or en), defaults to the saved preference")
	navigateCmd.Flags().String("from", "", "path currently shown, saved before leaving")
}
