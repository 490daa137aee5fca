package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accessApp "shieldtrack/internal/application/access"
	areaUsecases "shieldtrack/internal/application/area/usecases"
	authUsecases "shieldtrack/internal/application/auth/usecases"
	clientUsecases "shieldtrack/internal/application/client/usecases"
	findingUsecases "shieldtrack/internal/application/finding/usecases"
	projectUsecases "shieldtrack/internal/application/project/usecases"
	settingUsecases "shieldtrack/internal/application/setting/usecases"
	userUsecases "shieldtrack/internal/application/user/usecases"
	areaDomain "shieldtrack/internal/domain/area"
	clientDomain "shieldtrack/internal/domain/client"
	findingDomain "shieldtrack/internal/domain/finding"
	projectDomain "shieldtrack/internal/domain/project"
	settingDomain "shieldtrack/internal/domain/setting"
	userDomain "shieldtrack/internal/domain/user"
	"shieldtrack/internal/infrastructure/auth"
	"shieldtrack/internal/infrastructure/config"
	"shieldtrack/internal/infrastructure/email"
	"shieldtrack/internal/infrastructure/permission"
	"shieldtrack/internal/infrastructure/repository"
	areahandlers "shieldtrack/internal/interfaces/http/handlers/area"
	authhandlers "shieldtrack/internal/interfaces/http/handlers/auth"
	clienthandlers "shieldtrack/internal/interfaces/http/handlers/client"
	findinghandlers "shieldtrack/internal/interfaces/http/handlers/finding"
	projecthandlers "shieldtrack/internal/interfaces/http/handlers/project"
	settinghandlers "shieldtrack/internal/interfaces/http/handlers/setting"
	userhandlers "shieldtrack/internal/interfaces/http/handlers/user"
	"shieldtrack/internal/interfaces/http/middleware"
	"shieldtrack/internal/shared/logger"
	"shieldtrack/internal/shared/services/markdown"
)

// repositories groups the persistence implementations behind their domain
// interfaces.
type repositories struct {
	clients     clientDomain.Repository
	areas       areaDomain.Repository
	assignments areaDomain.AssignmentRepository
	projects    projectDomain.Repository
	findings    findingDomain.Repository
	users       userDomain.Repository
	settings    settingDomain.Repository
}

// handlers groups the HTTP handlers for route registration.
type handlers struct {
	auth    *authhandlers.AuthHandler
	client  *clienthandlers.ClientHandler
	area    *areahandlers.AreaHandler
	project *projecthandlers.ProjectHandler
	finding *findinghandlers.FindingHandler
	user    *userhandlers.UserHandler
	setting *settinghandlers.SettingHandler
}

// Container wires repositories, use cases, handlers and middleware together.
type Container struct {
	db    *gorm.DB
	cfg   *config.Config
	log   logger.Interface
	redis *redis.Client

	repos *repositories
	hdlrs *handlers

	authMiddleware       *middleware.AuthMiddleware
	principalMiddleware  *middleware.PrincipalMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
}

// NewContainer builds the full dependency graph. The redis client may be nil,
// in which case rate limiting is disabled.
func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:    db,
		cfg:   cfg,
		log:   log,
		redis: redisClient,
	}

	c.buildRepositories()

	if err := c.buildMiddleware(); err != nil {
		return nil, err
	}

	c.buildHandlers()

	return c, nil
}

func (c *Container) buildRepositories() {
	projectRepo := repository.NewProjectRepository(c.db)

	c.repos = &repositories{
		clients:     repository.NewClientRepository(c.db),
		areas:       repository.NewAreaRepository(c.db),
		assignments: repository.NewAssignmentRepository(c.db),
		projects:    projectRepo,
		findings:    repository.NewFindingRepository(c.db, projectRepo),
		users:       repository.NewUserRepository(c.db),
		settings:    repository.NewSettingRepository(c.db),
	}
}

func (c *Container) buildMiddleware() error {
	jwtSvc := auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)

	resolver := accessApp.NewPrincipalService(c.repos.users, c.repos.assignments, c.log)

	enforcer, err := permission.NewEnforcer(c.db, "configs/rbac_model.conf", c.log)
	if err != nil {
		return fmt.Errorf("failed to build permission enforcer: %w", err)
	}
	if err := permission.InitAccessPolicies(enforcer.Raw(), c.log); err != nil {
		return fmt.Errorf("failed to seed access policies: %w", err)
	}

	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, c.log)
	c.principalMiddleware = middleware.NewPrincipalMiddleware(resolver, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	if c.cfg.RateLimit.Enabled && c.redis != nil {
		c.rateLimiter = middleware.NewRateLimiter(c.redis, c.cfg.RateLimit.RequestsPerMinute, rateLimitWindow)
	}

	return nil
}

func (c *Container) buildHandlers() {
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)
	markdownSvc := markdown.NewService()
	emailSender := email.NewSender()

	authHandler := authhandlers.NewAuthHandler(
		authUsecases.NewLoginUseCase(c.repos.users, hasher, jwtSvc, c.log),
		authUsecases.NewRefreshTokenUseCase(c.repos.users, jwtSvc, c.log),
	)

	clientHandler := clienthandlers.NewClientHandler(
		clientUsecases.NewCreateClientUseCase(c.repos.clients, c.log),
		clientUsecases.NewGetClientUseCase(c.repos.clients, c.log),
		clientUsecases.NewListClientsUseCase(c.repos.clients, c.log),
		clientUsecases.NewUpdateClientUseCase(c.repos.clients, c.log),
		clientUsecases.NewDeactivateClientUseCase(c.repos.clients, c.log),
		clientUsecases.NewDeleteClientUseCase(c.repos.clients, c.log),
	)

	areaHandler := areahandlers.NewAreaHandler(
		areaUsecases.NewCreateAreaUseCase(c.repos.areas, c.repos.clients, c.log),
		areaUsecases.NewGetAreaUseCase(c.repos.areas, c.log),
		areaUsecases.NewListAreasUseCase(c.repos.areas, c.repos.clients, c.log),
		areaUsecases.NewUpdateAreaUseCase(c.repos.areas, c.log),
		areaUsecases.NewAssignUserUseCase(c.repos.areas, c.repos.assignments, c.repos.users, c.log),
		areaUsecases.NewRevokeAssignmentUseCase(c.repos.areas, c.repos.assignments, c.repos.users, c.log),
		areaUsecases.NewListAssignmentsUseCase(c.repos.areas, c.repos.assignments, c.log),
	)

	projectHandler := projecthandlers.NewProjectHandler(
		projectUsecases.NewCreateProjectUseCase(c.repos.projects, c.repos.areas, c.log),
		projectUsecases.NewGetProjectUseCase(c.repos.projects, c.log),
		projectUsecases.NewListProjectsUseCase(c.repos.projects, c.log),
		projectUsecases.NewUpdateProjectUseCase(c.repos.projects, c.log),
		projectUsecases.NewCloseProjectUseCase(c.repos.projects, c.log),
		projectUsecases.NewArchiveProjectUseCase(c.repos.projects, c.log),
		projectUsecases.NewDeleteProjectUseCase(c.repos.projects, c.repos.findings, c.log),
	)

	findingHandler := findinghandlers.NewFindingHandler(
		findingUsecases.NewCreateFindingUseCase(c.repos.findings, c.repos.projects, c.log),
		findingUsecases.NewGetFindingUseCase(c.repos.findings, c.log),
		findingUsecases.NewListFindingsUseCase(c.repos.findings, c.repos.projects, c.log),
		findingUsecases.NewUpdateFindingUseCase(c.repos.findings, c.repos.projects, c.log),
		findingUsecases.NewConfirmFindingUseCase(c.repos.findings, c.repos.projects, c.log),
		findingUsecases.NewCloseFindingUseCase(c.repos.findings, c.repos.projects, c.log),
		findingUsecases.NewDeleteFindingUseCase(c.repos.findings, c.repos.projects, c.log),
		findingUsecases.NewRenderFindingHTMLUseCase(c.repos.findings, markdownSvc, c.log),
	)

	userHandler := userhandlers.NewUserHandler(
		userUsecases.NewCreateUserUseCase(c.repos.users, c.repos.clients, hasher, c.log),
		userUsecases.NewGetUserUseCase(c.repos.users, c.log),
		userUsecases.NewListUsersUseCase(c.repos.users, c.log),
		userUsecases.NewUpdateUserUseCase(c.repos.users, hasher, c.log),
		userUsecases.NewDeactivateUserUseCase(c.repos.users, c.log),
	)

	settingHandler := settinghandlers.NewSettingHandler(
		settingUsecases.NewGetSMTPSettingsUseCase(c.repos.settings, c.log),
		settingUsecases.NewUpdateSMTPSettingsUseCase(c.repos.settings, c.log),
		settingUsecases.NewSendTestEmailUseCase(c.repos.settings, emailSender, c.log),
	)

	c.hdlrs = &handlers{
		auth:    authHandler,
		client:  clientHandler,
		area:    areaHandler,
		project: projectHandler,
		finding: findingHandler,
		user:    userHandler,
		setting: settingHandler,
	}
}
