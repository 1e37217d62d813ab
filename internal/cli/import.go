package cli

import (
	"fmt"

	"exam-results/config"
	"exam-results/internal/repository/postgres"
	"exam-results/internal/repository/xlsx"
	"exam-results/pkg/logger"

	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a semester spreadsheet into PostgreSQL",
		RunE:  runImport,
	}

	cmd.Flags().StringP("semester", "s", "", "Semester key the rows belong to")
	cmd.Flags().StringP("file", "f", "", "Path to the xlsx file")
	_ = cmd.MarkFlagRequired("semester")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	semester, _ := cmd.Flags().GetString("semester")
	file, _ := cmd.Flags().GetString("file")

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sems, err := cfg.Catalogue().Resolve(semester)
	if err != nil {
		return err
	}
	if len(sems) != 1 {
		return fmt.Errorf("import needs a single semester, got %q", semester)
	}

	rows, err := xlsx.ReadTable(file)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store := postgres.New(log, cfg)
	if err := store.OnStart(ctx); err != nil {
		return err
	}
	defer func() { _ = store.OnStop(ctx) }()

	n, err := store.ImportRows(ctx, sems[0], rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows into semester %s\n", n, sems[0].Key)
	return nil
}
