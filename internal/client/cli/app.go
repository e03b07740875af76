package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userform/internal/client/client"
	"github.com/dmitrijs2005/userform/internal/client/config"
	"github.com/dmitrijs2005/userform/internal/client/services"
	"github.com/dmitrijs2005/userform/internal/logging"
)

// App is the interactive user form client.
type App struct {
	config  *config.Config
	profile *services.ProfileService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the HTTP client and the profile controller for cfg.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	ps := services.NewProfileService(apiClient, logger)

	return &App{
		config:  c,
		profile: ps,
		logger:  logger.With("module", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run loads the user list and blocks in the REPL until the user exits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("User form (type 'help' for commands)"))
	a.logger.Info(ctx, "Using API", "url", a.config.APIBaseURL)

	_ = a.Refresh(ctx)

	runREPL(ctx, a, a.status, a.reader)
}

// status describes the form for the prompt: hidden, new or the id being
// edited.
func (a *App) status() string {
	if !a.profile.FormVisible() {
		return ""
	}
	if id := a.profile.SelectedUserID(); id != "" {
		return "edit " + id
	}
	return "new"
}
