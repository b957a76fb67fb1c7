package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bnema/omp-cli/internal/adapters/api"
	"github.com/bnema/omp-cli/internal/adapters/checkout"
	chainstore "github.com/bnema/omp-cli/internal/adapters/credentials/chain"
	filestore "github.com/bnema/omp-cli/internal/adapters/credentials/file"
	passstore "github.com/bnema/omp-cli/internal/adapters/credentials/pass"
	"github.com/bnema/omp-cli/internal/adapters/facebook"
	sqliteprogress "github.com/bnema/omp-cli/internal/adapters/progress/sqlite"
	tomlprogress "github.com/bnema/omp-cli/internal/adapters/progress/toml"
	"github.com/bnema/omp-cli/internal/application"
	"github.com/bnema/omp-cli/internal/config"
	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/logger"
	"github.com/bnema/omp-cli/internal/ports"
	"github.com/spf13/viper"
)

var errNotSignedIn = errors.New("not signed in: run `omp auth login` first")

type profileResolver interface {
	Profile(ctx context.Context, accessToken string) (domain.FacebookProfile, error)
}

type app struct {
	settings      config.Settings
	logger        *slog.Logger
	tokens        ports.TokenStore
	client        *api.Client
	session       *application.Session
	conversations *application.ConversationManager
	progress      *application.ProgressTracker
	catalog       *application.WorkshopCatalog
	payments      *application.PaymentController
	facebook      profileResolver
	now           func() time.Time
	closers       []func() error
}

type wireOptions struct {
	configDir string
	envFile   string
	verbose   bool
	stdout    io.Writer
	stderr    io.Writer
}

func wireApp(ctx context.Context, opts wireOptions) (*app, error) {
	cfg, settings, err := config.Load(config.Options{ConfigDir: opts.configDir, EnvFile: opts.envFile})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := settings.LogLevel
	if opts.verbose {
		level = "debug"
	}
	log, err := logger.Setup(opts.stderr, logger.Options{Level: level, Format: settings.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	tokens, err := wireTokenStore(settings)
	if err != nil {
		return nil, fmt.Errorf("wire credential store: %w", err)
	}

	a := &app{settings: settings, logger: log, tokens: tokens, now: time.Now}

	progressStore, closer, err := wireProgressStore(ctx, cfg, settings)
	if err != nil {
		return nil, fmt.Errorf("wire progress store: %w", err)
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:       settings.APIURL,
		Timeout:       settings.APITimeout,
		RatePerSecond: settings.RatePerSecond,
		Burst:         settings.Burst,
	}, tokens, http.DefaultClient, log)
	if err != nil {
		_ = a.close()
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	card := checkout.StripeConfirmer{
		CheckoutURL: settings.CheckoutStripeURL,
		ListenAddr:  settings.CheckoutListen,
		Timeout:     settings.CheckoutTimeout,
		Out:         opts.stdout,
	}
	paypal := checkout.PaypalApprover{
		ListenAddr: settings.CheckoutListen,
		Timeout:    settings.CheckoutTimeout,
		Out:        opts.stdout,
	}

	a.client = client
	a.session = application.NewSession(client, tokens, log)
	a.conversations = application.NewConversationManager(client, ports.SystemClock{}, settings.Location, log)
	a.progress = application.NewProgressTracker(progressStore, log)
	a.catalog = application.NewWorkshopCatalog(client, a.progress, log)
	a.payments = application.NewPaymentController(client, card, paypal, log)
	a.facebook = facebook.GraphClient{BaseURL: settings.FacebookGraphURL}

	return a, nil
}

func wireTokenStore(settings config.Settings) (ports.TokenStore, error) {
	switch settings.CredentialBackend {
	case config.CredentialBackendFile:
		return filestore.NewStore(settings.CredentialDir), nil
	case config.CredentialBackendPass:
		return passstore.NewStore(passstore.DefaultEntry), nil
	default:
		store, err := chainstore.NewStore(passstore.NewStore(passstore.DefaultEntry), filestore.NewStore(settings.CredentialDir))
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

func wireProgressStore(ctx context.Context, cfg *viper.Viper, settings config.Settings) (ports.ProgressStore, func() error, error) {
	if settings.ProgressBackend == config.ProgressBackendSQLite {
		store, err := sqliteprogress.Open(ctx, settings.ProgressPath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	store, err := tomlprogress.NewStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, nil, nil
}

// requireIdentity restores the session from the stored token and fails with a
// hint to log in when it ends up anonymous.
func (a *app) requireIdentity(ctx context.Context) (domain.Identity, error) {
	if err := a.session.Init(ctx); err != nil {
		return domain.Identity{}, err
	}

	identity, ok := a.session.Identity()
	if !ok {
		return domain.Identity{}, errNotSignedIn
	}
	return identity, nil
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
