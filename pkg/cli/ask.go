package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/utils/safe"
)

func cmdAsk() *cli.Command {
	var projectID string
	var forceRefresh bool
	var cfgs appConfigs

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "project-id",
			Usage:       "Project to ask about",
			Required:    true,
			Sources:     cli.EnvVars("TENDERBASE_PROJECT_ID"),
			Destination: &projectID,
		},
		&cli.BoolFlag{
			Name:        "refresh",
			Usage:       "Rebuild the knowledge base before answering",
			Destination: &forceRefresh,
		},
	}
	flags = append(flags, cfgs.flags()...)

	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask a question about a project's tender documents",
		ArgsUsage: "<question>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			questionText := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(questionText) == "" {
				return goerr.New("question is required as an argument")
			}

			uc, repo, err := cfgs.build(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			result, err := uc.Answer.Ask(ctx, types.ProjectID(projectID), questionText, forceRefresh)
			if err != nil {
				return err
			}

			if !result.Success {
				color.Red("✗ %s", result.Error)
				return goerr.New("question could not be answered")
			}

			ans := result.Answer
			color.New(color.Bold).Println(ans.Text)

			printList := func(title string, items []string) {
				if len(items) == 0 {
					return
				}
				fmt.Println()
				color.Cyan("%s:", title)
				for _, item := range items {
					fmt.Printf("  - %s\n", item)
				}
			}

			printList("Key findings", ans.KeyFindings)
			printList("Document references", ans.DocumentReferences)
			printList("Cross references", ans.CrossReferences)
			printList("Recommendations", ans.Recommendations)
			printList("Follow-up questions", ans.FollowUpQuestions)

			fmt.Println()
			confColor := color.New(color.FgGreen)
			if ans.Confidence < 70 {
				confColor = color.New(color.FgYellow)
			}
			confColor.Printf("Confidence: %d%%", ans.Confidence)
			fmt.Printf("  (%d/%d documents, %s)\n",
				result.Stats.ProcessedDocuments,
				result.Stats.TotalDocuments,
				result.ProcessingTime.Round(10*time.Millisecond),
			)

			return nil
		},
	}
}
