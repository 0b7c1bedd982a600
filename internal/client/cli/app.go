// Package cli contains the terminal screens of the Lovebird client. Screens
// collect input, call session manager operations and render the results;
// all session state changes happen inside the manager.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/nmorozova/lovebird/internal/client/api"
	"github.com/nmorozova/lovebird/internal/client/config"
	"github.com/nmorozova/lovebird/internal/client/models"
	"github.com/nmorozova/lovebird/internal/client/repositories/credentials"
	"github.com/nmorozova/lovebird/internal/client/session"
	"github.com/nmorozova/lovebird/internal/client/storage"
	"github.com/nmorozova/lovebird/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionManager is the slice of session.Manager the screens use.
// Tests substitute a stub.
type sessionManager interface {
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, username, password string) bool
	Register(ctx context.Context, req api.RegisterRequest) session.RegisterResult
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error)
	Snapshot() session.Snapshot
}

type App struct {
	config  *config.Config
	session sessionManager
	api     api.Client
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	creds := credentials.NewSQLiteRepository(db)
	manager := session.NewManager(apiClient, creds, log)

	return &App{
		config:  c,
		session: manager,
		api:     apiClient,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run performs the startup token check and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Bootstrap(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return session.StackFor(a.session.Snapshot()) == session.StackMain
}

func (a *App) status() string {
	snap := a.session.Snapshot()
	if snap.Profile != nil {
		return "(" + snap.Profile.Nickname + ")"
	}
	return ""
}
