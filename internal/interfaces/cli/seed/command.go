package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"shieldtrack/internal/domain/access"
	areaDomain "shieldtrack/internal/domain/area"
	clientDomain "shieldtrack/internal/domain/client"
	userDomain "shieldtrack/internal/domain/user"
	"shieldtrack/internal/infrastructure/auth"
	"shieldtrack/internal/infrastructure/config"
	"shieldtrack/internal/infrastructure/database"
	"shieldtrack/internal/infrastructure/repository"
	"shieldtrack/internal/shared/errors"
	"shieldtrack/internal/shared/id"
	"shieldtrack/internal/shared/logger"
)

var (
	env  string
	file string
)

// fixture is the YAML schema for seed data.
type fixture struct {
	Clients []clientFixture `yaml:"clients"`
	Users   []userFixture   `yaml:"users"`
}

type clientFixture struct {
	Name     string   `yaml:"name"`
	TenantID string   `yaml:"tenant_id"`
	Areas    []string `yaml:"areas"`
}

type userFixture struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	TenantID string `yaml:"tenant_id"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data from a YAML fixture",
		Long:  `Load clients, areas and users from a YAML fixture file. Existing rows are skipped, so the command is safe to rerun.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seed.yaml", "Path to the seed fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("failed to parse fixture file: %w", err)
	}

	ctx := context.Background()
	db := database.Get()

	clientRepo := repository.NewClientRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	userRepo := repository.NewUserRepository(db)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	clientIDs, err := seedClients(ctx, clientRepo, areaRepo, fx.Clients)
	if err != nil {
		return err
	}

	if err := seedUsers(ctx, userRepo, hasher, fx.Users, clientIDs); err != nil {
		return err
	}

	logger.Info("seed completed", "clients", len(fx.Clients), "users", len(fx.Users))
	return nil
}

// seedClients creates clients and their areas, returning tenant id to
// database id mappings for user binding.
func seedClients(
	ctx context.Context,
	clientRepo clientDomain.Repository,
	areaRepo areaDomain.Repository,
	fixtures []clientFixture,
) (map[string]uint, error) {
	clientIDs := make(map[string]uint, len(fixtures))

	for _, cf := range fixtures {
		c, err := clientDomain.NewClient(id.NewClientSID(), cf.Name, cf.TenantID)
		if err != nil {
			return nil, fmt.Errorf("invalid client fixture %q: %w", cf.Name, err)
		}

		if err := clientRepo.Save(ctx, c); err != nil {
			if errors.IsDuplicateError(err) {
				logger.Info("client already exists, skipping", "tenant_id", cf.TenantID)
				continue
			}
			return nil, fmt.Errorf("failed to seed client %q: %w", cf.Name, err)
		}

		clientIDs[cf.TenantID] = c.ID()

		for _, areaName := range cf.Areas {
			a, err := areaDomain.NewArea(id.NewAreaSID(), c.ID(), areaName)
			if err != nil {
				return nil, fmt.Errorf("invalid area fixture %q: %w", areaName, err)
			}
			if err := areaRepo.Save(ctx, a); err != nil {
				return nil, fmt.Errorf("failed to seed area %q: %w", areaName, err)
			}
		}

		logger.Info("client seeded", "tenant_id", cf.TenantID, "areas", len(cf.Areas))
	}

	return clientIDs, nil
}

func seedUsers(
	ctx context.Context,
	userRepo userDomain.Repository,
	hasher *auth.BcryptPasswordHasher,
	fixtures []userFixture,
	clientIDs map[string]uint,
) error {
	for _, uf := range fixtures {
		if _, err := userRepo.FindByEmail(ctx, uf.Email); err == nil {
			logger.Info("user already exists, skipping", "email", uf.Email)
			continue
		} else if !errors.IsNotFoundError(err) {
			return fmt.Errorf("failed to check user %q: %w", uf.Email, err)
		}

		hash, err := hasher.Hash(uf.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", uf.Email, err)
		}

		var clientID *uint
		if uf.TenantID != "" {
			cid, ok := clientIDs[uf.TenantID]
			if !ok {
				return fmt.Errorf("user %q references unknown tenant %q", uf.Email, uf.TenantID)
			}
			clientID = &cid
		}

		u, err := userDomain.NewUser(id.NewUserSID(), uf.Email, hash, uf.Name, access.ParseRole(uf.Role), clientID)
		if err != nil {
			return fmt.Errorf("invalid user fixture %q: %w", uf.Email, err)
		}

		if err := userRepo.Save(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", uf.Email, err)
		}

		logger.Info("user seeded", "email", uf.Email, "role", uf.Role)
	}

	return nil
}
