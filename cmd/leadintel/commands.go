package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quotable/leadintel/internal/app"
	"github.com/quotable/leadintel/internal/domain"
	"github.com/quotable/leadintel/internal/service/campaign"
	"github.com/quotable/leadintel/internal/service/lead"
	"github.com/quotable/leadintel/internal/tracking"
)

// appLoader builds the services a command runs against.
type appLoader func(ctx context.Context) (*app.App, error)

func newRootCmd(load appLoader) *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:           "leadintel",
		Short:         "Operate the lead intelligence backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	// withApp opens the backends for one command and closes them after.
	withApp := func(run func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return run(cmd, a, args)
		}
	}

	root.AddCommand(
		newLeadsCmd(withApp, &asJSON),
		newCampaignsCmd(withApp, &asJSON),
		newOptimizeCmd(withApp, &asJSON),
		newTrackLinksCmd(withApp),
	)
	return root
}

type appRunner func(run func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error

func newLeadsCmd(withApp appRunner, asJSON *bool) *cobra.Command {
	leadsCmd := &cobra.Command{
		Use:   "leads",
		Short: "Work with leads",
	}

	var opts lead.GenerateOptions
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and store synthetic leads",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, _ []string) error {
			leads, err := a.Leads.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), leads)
			}
			return printLeads(cmd.OutOrStdout(), leads)
		}),
	}
	generateCmd.Flags().IntVarP(&opts.Count, "count", "n", 5, "number of leads")
	generateCmd.Flags().StringVar(&opts.Region, "region", "", "target region (default: any)")
	generateCmd.Flags().StringVar(&opts.Industry, "industry", "", "industry tag")

	leadsCmd.AddCommand(generateCmd)
	return leadsCmd
}

func newCampaignsCmd(withApp appRunner, asJSON *bool) *cobra.Command {
	campaignsCmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Work with campaigns",
	}

	var status string
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, _ []string) error {
			cs, err := a.Campaigns.List(cmd.Context(), campaign.ListFilter{
				Status: domain.CampaignStatus(status),
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), cs)
			}
			return printCampaigns(cmd.OutOrStdout(), cs)
		}),
	}
	listCmd.Flags().StringVar(&status, "status", "", "filter by status (draft, active, paused, completed)")
	listCmd.Flags().IntVar(&limit, "limit", 50, "maximum campaigns to show")

	campaignsCmd.AddCommand(listCmd)
	return campaignsCmd
}

func newOptimizeCmd(withApp appRunner, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Run one optimization sweep and print the recommendations",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, _ []string) error {
			report, err := a.Sweeper.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printReport(cmd.OutOrStdout(), report)
		}),
	}
}

func newTrackLinksCmd(withApp appRunner) *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "track-links CAMPAIGN_ID LEAD_ID MESSAGE_ID [TARGET_URL]",
		Short: "Print signed open pixel and click-through URLs for a message",
		Args:  cobra.RangeArgs(3, 4),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			if baseURL == "" {
				baseURL = a.Config.Tracking.BaseURL
			}
			links := tracking.Links{BaseURL: baseURL, Signer: a.Signer}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "open: ", links.Open(args[0], args[1], args[2]))
			if len(args) == 4 {
				fmt.Fprintln(out, "click:", links.Click(args[0], args[1], args[2], args[3]))
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public URL of the API server (default: tracking.base_url)")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLeads(w io.Writer, leads []domain.Lead) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tCOMPANY\tLOCATION\tSCORE\tSTATUS")
	for _, l := range leads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			l.ID, l.Name, l.Title, l.Company, l.Location, l.ConfidenceScore, l.Status)
	}
	return tw.Flush()
}

func printCampaigns(w io.Writer, cs []domain.Campaign) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tREGION\tSTATUS\tLEADS\tOPEN%\tCLICK%\tRESP%")
	for _, c := range cs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\n",
			c.ID, c.Name, c.TargetRegion, c.Status, c.LeadsCount, c.OpenRate, c.ClickRate, c.ResponseRate)
	}
	return tw.Flush()
}

func printReport(w io.Writer, r *domain.OptimizationReport) error {
	fmt.Fprintf(w, "%d recommendations (%d high priority), projected impact %.0f%%\n",
		r.RecommendationsCount, r.HighPriorityCount, r.ProjectedImpact)
	if r.CampaignsSkipped > 0 {
		fmt.Fprintf(w, "%d campaigns skipped\n", r.CampaignsSkipped)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRIORITY\tIMPROVEMENT\tTITLE")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(tw, "%s\t+%.1f%%\t%s\n", rec.Priority, rec.ExpectedImprovement, rec.Title)
	}
	return tw.Flush()
}
