package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/construct-hq/tenderbase/pkg/cache"
	"github.com/construct-hq/tenderbase/pkg/cli/config"
	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/service/extract"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
	"github.com/construct-hq/tenderbase/pkg/usecase"
	"github.com/construct-hq/tenderbase/pkg/utils/logging"
)

// appConfigs groups the flag sets shared by every command that touches
// documents or the generative model.
type appConfigs struct {
	repo       config.Repository
	gemini     config.Gemini
	sharepoint config.SharePoint
	knowledge  config.Knowledge
	taxonomy   config.Taxonomy
}

func (a *appConfigs) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, a.repo.Flags()...)
	flags = append(flags, a.gemini.Flags()...)
	flags = append(flags, a.sharepoint.Flags()...)
	flags = append(flags, a.knowledge.Flags()...)
	flags = append(flags, a.taxonomy.Flags()...)
	return flags
}

// build assembles the use case layer. The caller owns the returned
// repository and must Close it.
func (a *appConfigs) build(ctx context.Context) (*usecase.UseCases, interfaces.Repository, error) {
	repo, err := a.repo.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}

	store, err := a.sharepoint.Configure(ctx)
	if err != nil {
		repo.Close() //nolint:errcheck // already failing
		return nil, nil, goerr.Wrap(err, "failed to configure document store")
	}
	if store == nil {
		logging.Default().Warn("SharePoint connection not configured, document features are disabled")
	}

	categorizer := knowledge.NewCategorizer()
	extra, err := a.taxonomy.Configure()
	if err != nil {
		repo.Close() //nolint:errcheck // already failing
		return nil, nil, goerr.Wrap(err, "failed to load taxonomy keywords")
	}
	if extra != nil {
		categorizer.Extend(extra)
	}

	var folderStore interfaces.FolderStore
	if store != nil {
		folderStore = store
	}

	builder := knowledge.NewBuilder(
		folderStore,
		cache.NewMemory(),
		extract.New(),
		categorizer,
		a.knowledge.Limits(),
	)

	llmClient, err := a.gemini.Configure(ctx)
	if err != nil {
		repo.Close() //nolint:errcheck // already failing
		return nil, nil, goerr.Wrap(err, "failed to configure LLM client")
	}
	if llmClient == nil {
		logging.Default().Warn("Gemini not configured, generative features are disabled")
	}

	var opts []usecase.Option
	if llmClient != nil {
		opts = append(opts, usecase.WithLLMClient(llmClient))
	}

	return usecase.New(repo, builder, opts...), repo, nil
}
