package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"exam-results/config"
	"exam-results/internal/aggregator"
	"exam-results/internal/entities"
	"exam-results/internal/mapper"
	"exam-results/internal/repository"
	"exam-results/internal/transport/http/server/views"
	"exam-results/internal/usecase"
	"exam-results/pkg/logger"

	"github.com/spf13/cobra"
)

func newLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Print the result of a registration number",
		RunE:  runLookup,
	}

	cmd.Flags().StringP("reg-no", "r", "", "Registration number")
	cmd.Flags().StringP("semester", "s", entities.AllSemesters, "Semester key or \"all\"")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("reg-no")

	return cmd
}

func runLookup(cmd *cobra.Command, _ []string) error {
	regNo, _ := cmd.Flags().GetString("reg-no")
	semester, _ := cmd.Flags().GetString("semester")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	repo, err := repository.New(cfg.Results.Backend, log, cfg)
	if err != nil {
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		return err
	}
	defer func() { _ = repo.OnStop(ctx) }()

	uc := usecase.New(log, repo, cfg.Catalogue(), aggregator.New(cfg.Results.BacklogGrades), cfg.HTTP.RequestTimeout)
	res, err := uc.LookupResult(ctx, regNo, semester)
	if err != nil {
		if entities.OutcomeOf(err) == entities.OutcomeLoadFailure {
			return err
		}
		return errors.New(mapper.Message(err))
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printResult(cmd.OutOrStdout(), res)
}

func printResult(w io.Writer, res *entities.StudentResult) error {
	fmt.Fprintf(w, "%s (%s) - %s\n", res.Name, res.RegistrationNo, res.Semester.Label)
	fmt.Fprintf(w, "Status: %s\n", res.Aggregate.Status)
	fmt.Fprintf(w, "Total credits: %s\n", views.FormatNumber(res.Aggregate.TotalCredits))
	fmt.Fprintf(w, "Backlogs: %d\n\n", res.Aggregate.BacklogCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tGRADE\tCREDITS")
	for _, r := range res.Aggregate.DisplayRows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.SubjectName, r.Grade, views.FormatCredits(r.Credits))
	}
	return tw.Flush()
}
