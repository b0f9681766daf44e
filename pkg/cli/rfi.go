package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/utils/safe"
)

func cmdRFI() *cli.Command {
	var projectID string
	var createdBy string
	var regenerate bool
	var listOnly bool
	var cfgs appConfigs

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "project-id",
			Usage:       "Project to generate RFIs for",
			Required:    true,
			Sources:     cli.EnvVars("TENDERBASE_PROJECT_ID"),
			Destination: &projectID,
		},
		&cli.StringFlag{
			Name:        "created-by",
			Usage:       "Name recorded as the RFI author",
			Destination: &createdBy,
		},
		&cli.BoolFlag{
			Name:        "regenerate",
			Usage:       "Discard the existing RFI set and generate a new one",
			Destination: &regenerate,
		},
		&cli.BoolFlag{
			Name:        "list",
			Usage:       "List the existing RFI set instead of generating",
			Destination: &listOnly,
		},
	}
	flags = append(flags, cfgs.flags()...)

	return &cli.Command{
		Name:  "rfi",
		Usage: "Generate or list clarification requests for a project",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := cfgs.build(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			pid := types.ProjectID(projectID)

			if listOnly {
				items, err := uc.RFI.List(ctx, pid)
				if err != nil {
					return err
				}
				for _, item := range items {
					priorityColor := color.New(color.FgYellow)
					switch item.Priority {
					case types.RFIPriorityCritical:
						priorityColor = color.New(color.FgRed, color.Bold)
					case types.RFIPriorityHigh:
						priorityColor = color.New(color.FgRed)
					case types.RFIPriorityLow:
						priorityColor = color.New(color.FgGreen)
					}
					priorityColor.Printf("[%s]", item.Priority)
					fmt.Printf(" %s (%s)\n", item.Question, item.Category)
				}
				fmt.Printf("\n%d RFI items\n", len(items))
				return nil
			}

			generate := uc.RFI.Generate
			if regenerate {
				generate = uc.RFI.Regenerate
			}
			result, err := generate(ctx, pid, createdBy)
			if err != nil {
				return err
			}

			if !result.Success {
				color.Yellow("%s", result.Message)
				return nil
			}

			color.Green("%s", result.Message)
			for cat, count := range result.Categories {
				fmt.Printf("  %s: %d\n", cat, count)
			}
			return nil
		},
	}
}
