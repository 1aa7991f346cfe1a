package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/config"
	"github.com/akyairhashvil/deliverydesk/internal/database"
	"github.com/akyairhashvil/deliverydesk/internal/engine"
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

var projectFlag string

var rootCmd = &cobra.Command{
	Use:   "deliverydesk",
	Short: "A delivery board and client portal backend",
	Long: `deliverydesk tracks work items, sprints, milestones, and client
change requests for a services delivery project. Run without a subcommand
to open the interactive board.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Project slug (defaults to the configured project)")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sprintCmd)
	rootCmd.AddCommand(milestoneCmd)
	rootCmd.AddCommand(crCmd)
}

// portal bundles everything a subcommand needs after setup.
type portal struct {
	cfg     *config.Config
	db      *database.Database
	svc     *engine.Service
	project models.Project
}

func (p *portal) close() {
	_ = p.db.Close()
}

// openPortal loads config, opens the database, and resolves the target
// project. The caller must close the returned portal.
func openPortal(ctx context.Context) (*portal, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	slug := projectFlag
	if slug == "" {
		slug = cfg.DefaultProject
	}

	var projectID int64
	if slug == config.DefaultProjectSlug {
		projectID, err = db.EnsureDefaultProject(ctx)
		if err != nil {
			db.Close()
			return nil, err
		}
	} else {
		id, ok, err := db.GetProjectIDBySlug(ctx, slug)
		if err != nil {
			db.Close()
			return nil, err
		}
		if !ok {
			db.Close()
			return nil, fmt.Errorf("no project with slug %q", slug)
		}
		projectID = id
	}

	projects, err := db.GetProjects(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	var project models.Project
	for _, p := range projects {
		if p.ID == projectID {
			project = p
			break
		}
	}

	return &portal{
		cfg:     cfg,
		db:      db,
		svc:     engine.New(db),
		project: project,
	}, nil
}
