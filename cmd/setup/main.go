package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	appRepos "github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/bootstrap"
	"github.com/gocode/elearning/internal/config"
	"github.com/gocode/elearning/internal/db"
	"github.com/gocode/elearning/internal/pkg/logger"
	"github.com/gocode/elearning/internal/seed"
)

var errAborted = errors.New("aborted")

// Admin password used by bootstrap when none is configured
const defaultAdminPassword = "password"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Setup failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "elearning-setup",
		Usage: "provision the database and administrative accounts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML configuration file",
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:  "migrations",
				Usage: "directory holding the SQL migrations",
				Value: bootstrap.DefaultMigrationsDir,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "createdb",
				Usage: "create the application database",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "drop", Usage: "drop the database first"},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
				},
				Action: createDB,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending migrations",
				Action: migrate,
			},
			{
				Name:  "createsuperuser",
				Usage: "create an admin account, prompting for missing values",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "username"},
					&cli.StringFlag{Name: "password", EnvVars: []string{"SUPERUSER_PASSWORD"}},
				},
				Action: createSuperuser,
			},
			{
				Name:  "bootstrap",
				Usage: "create the database, migrate and seed the configured admin",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "reset", Usage: "drop and recreate the database"},
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
				},
				Action: bootstrapAll,
			},
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, zerolog.Logger, error) {
	return bootstrap.LoadConfigAndSetupLogger(c.String("config"))
}

func createDB(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}
	return provision(c, cfg, lgr, c.Bool("drop"))
}

func provision(c *cli.Context, cfg *config.Config, lgr zerolog.Logger, drop bool) error {
	ctx := c.Context
	p := db.NewProvisioner(cfg, lgr)
	if err := p.WaitForServer(ctx, 5, 2*time.Second); err != nil {
		return err
	}

	if drop {
		question := fmt.Sprintf("Drop database %q and all of its data?", cfg.Database.DBName)
		if !c.Bool("yes") && !confirm(c.App.Reader, c.App.Writer, question) {
			return errAborted
		}
		if err := p.Drop(ctx); err != nil {
			return err
		}
	}

	_, err := p.Create(ctx)
	return err
}

func migrate(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return db.Explain(err)
	}
	defer pool.Close()

	return bootstrap.RunMigrations(c.Context, pool, c.String("migrations"), lgr)
}

func createSuperuser(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	in := bufio.NewReader(c.App.Reader)
	params := seed.AdminParams{
		Email:    c.String("email"),
		Username: c.String("username"),
		Password: c.String("password"),
	}
	params.Email = promptIfEmpty(in, c.App.Writer, "Email", params.Email)
	params.Username = promptIfEmpty(in, c.App.Writer, "Username", params.Username)
	params.Password = promptIfEmpty(in, c.App.Writer, "Password", params.Password)
	if err := params.Validate(); err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return db.Explain(err)
	}
	defer pool.Close()

	created, err := seed.CreateSuperuser(c.Context, appRepos.NewUserRepository(pool), params, lgr)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(c.App.Writer, "A user with email %s already exists\n", params.Email)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Superuser %s created\n", params.Username)
	return nil
}

func bootstrapAll(c *cli.Context) error {
	cfg, lgr, err := loadConfig(c)
	if err != nil {
		return err
	}

	if err := provision(c, cfg, lgr, c.Bool("reset")); err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return db.Explain(err)
	}
	defer pool.Close()

	ctx := c.Context
	if err := bootstrap.RunMigrations(ctx, pool, c.String("migrations"), lgr); err != nil {
		return err
	}
	params := bootstrap.AdminParams(cfg)
	if params.Password == "" {
		lgr.Warn().Str("username", params.Username).Msg("No admin password configured, using the default one; change it after first login")
		params.Password = defaultAdminPassword
	}
	return seed.CreateDefaultData(ctx, pool, params, lgr)
}

// confirm asks a yes/no question; anything but y or yes is a no
func confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func promptIfEmpty(in *bufio.Reader, w io.Writer, label, value string) string {
	if value != "" {
		return value
	}
	fmt.Fprintf(w, "%s: ", label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
