// @title Site CMS API
// @version 1.0
// @description Content management API for the multilingual site dashboard.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"sitecms/config"
	_ "sitecms/docs"
	"sitecms/internal/adapters/auth"
	"sitecms/internal/adapters/cache"
	"sitecms/internal/adapters/codec"
	"sitecms/internal/adapters/email"
	httpdelivery "sitecms/internal/delivery/http"
	"sitecms/internal/delivery/http/controllers"
	"sitecms/internal/delivery/http/middleware"
	"sitecms/internal/domain"
	"sitecms/internal/i18n"
	"sitecms/internal/repository/postgres"
	"sitecms/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("application error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.DBUrl, postgres.DefaultDBConfig())
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	imageCache, closeCache, err := newImageCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()
	imageCodec := cache.NewCachingCodec(codec.New(), imageCache, logger)

	// Content
	committee := services.NewContentService(domain.KindCommitteeMember,
		postgres.NewContentRepository(db, postgres.MemberTable()), imageCodec, cfg.ValidateImageUploads)
	showcases := make([]*controllers.ContentController[*domain.Showcase], 0, len(domain.ShowcaseKinds))
	for _, kind := range domain.ShowcaseKinds {
		repo := postgres.NewContentRepository(db, postgres.ShowcaseTable(postgres.TableNames[kind]))
		svc := services.NewContentService(kind, repo, imageCodec, cfg.ValidateImageUploads)
		showcases = append(showcases, controllers.NewShowcaseController(logger, svc, catalog))
	}

	// Auth
	passwords := auth.NewPasswordVerifier(bcrypt.DefaultCost, cfg.AllowPlaintextPasswords)
	passwords.OnPlaintextMatch = func() {
		logger.Warn("system user signed in with a plaintext password; rehash it with the admin tool")
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	authSvc := services.NewAuthService(services.AuthConfig{
		Users:       postgres.NewSystemUserRepository(db),
		Passwords:   passwords,
		Tokens:      auth.NewJWTIssuer(cfg.JWTSecret),
		TokenExpiry: cfg.JWTExpiry,
		Emails:      services.NewEmailService(mailer, email.NewTemplateRenderer(), logger),
		LoginAlerts: cfg.LoginAlerts,
		Logger:      logger,
	})

	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}

	routerCfg := httpdelivery.RouterConfig{
		Logger:         logger,
		Catalog:        catalog,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: proxies,
		StaticDir:      cfg.StaticDir,
		Committee:      controllers.NewMemberController(logger, committee, catalog),
		Showcases:      showcases,
		Auth:           controllers.NewAuthController(logger, authSvc, catalog, cfg.JWTExpiry, cfg.SecureCookies()),
		Preferences:    controllers.NewPreferencesController(logger, catalog, cfg.SecureCookies()),
		Health:         controllers.NewHealthController(logger, db),
		LoginLimiter:   middleware.NewLoginRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst, catalog, logger),
	}
	if cfg.APIAuthRequired {
		routerCfg.WriteVerifier = auth.NewJWTVerifier(cfg.JWTSecret, domain.AdminRole)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpdelivery.NewRouter(routerCfg),
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newImageCache returns Redis when configured, otherwise the in-process LRU.
func newImageCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.ImageCache, func(), error) {
	if !cfg.UseRedisCache() {
		return cache.NewMemoryCache(cfg.CacheMaxEntries, cfg.CacheTTL), func() {}, nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rc, err := cache.NewRedisCache(pingCtx, cache.RedisOptions{
		URL:    cfg.RedisURL,
		Prefix: cfg.CachePrefix,
		TTL:    cfg.CacheTTL,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis cache: %w", err)
	}
	logger.Info("using redis image cache")
	return rc, func() { _ = rc.Close() }, nil
}
