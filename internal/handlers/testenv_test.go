package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yolda/logistics-api/internal/middleware"
	"github.com/yolda/logistics-api/internal/models"
	"github.com/yolda/logistics-api/internal/repository"
	"github.com/yolda/logistics-api/internal/services"
	"github.com/yolda/logistics-api/internal/token"
)

type testEnv struct {
	db         *gorm.DB
	router     *gin.Engine
	tokens     *token.Manager
	auth       *services.AuthService
	membership *services.MembershipService
	orgs       *services.OrganizationService
	addresses  *services.AddressService
}

// setupTestEnv builds an in-memory database and the full route tree, the
// same wiring the server uses.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.OrgUser{},
		&models.Address{},
		&models.Vehicle{},
		&models.Load{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	orgUserRepo := repository.NewOrgUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	loadRepo := repository.NewLoadRepository(db)
	addressRepo := repository.NewAddressRepository(db)

	tokens := token.NewManager("test-secret", time.Hour, 24*time.Hour)
	membershipService := services.NewMembershipService(orgUserRepo)
	authService := services.NewAuthService(userRepo, tokens)
	orgService := services.NewOrganizationService(orgRepo, userRepo, membershipService)
	vehicleService := services.NewVehicleService(vehicleRepo, membershipService)
	loadService := services.NewLoadService(loadRepo, addressRepo, membershipService)
	addressService := services.NewAddressService(addressRepo)

	authHandler := NewAuthHandler(authService)
	orgHandler := NewOrganizationHandler(orgService)
	vehicleHandler := NewVehicleHandler(vehicleService)
	loadHandler := NewLoadHandler(loadService)
	addressHandler := NewAddressHandler(addressService)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.RequireAuth(tokens, userRepo), authHandler.GetCurrentUser)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens, userRepo))

	orgs := protected.Group("/orgs")
	orgs.GET("", orgHandler.List)
	orgs.POST("", orgHandler.Create)
	orgs.GET("/:id", orgHandler.Get)
	orgs.PATCH("/:id", orgHandler.Update)
	orgs.DELETE("/:id", orgHandler.Delete)
	orgs.GET("/:id/members", orgHandler.ListMembers)
	orgs.PUT("/:id/members", orgHandler.AssignMember)

	vehicles := protected.Group("/vehicles")
	vehicles.GET("", vehicleHandler.List)
	vehicles.POST("", vehicleHandler.Create)
	vehicles.GET("/:id", vehicleHandler.Get)
	vehicles.PATCH("/:id", vehicleHandler.Update)
	vehicles.DELETE("/:id", vehicleHandler.Delete)

	loads := protected.Group("/loads")
	loads.GET("", loadHandler.List)
	loads.POST("", loadHandler.Create)
	loads.GET("/:id", loadHandler.Get)
	loads.PATCH("/:id", loadHandler.Update)
	loads.DELETE("/:id", loadHandler.Delete)

	addressGroup := protected.Group("/addresses")
	addressGroup.GET("", addressHandler.List)
	addressGroup.POST("", addressHandler.Create)
	addressGroup.GET("/:id", addressHandler.Get)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:         db,
		router:     r,
		tokens:     tokens,
		auth:       authService,
		membership: membershipService,
		orgs:       orgService,
		addresses:  addressService,
	}
}

// registerUser creates a user through the service and returns it.
func (env *testEnv) registerUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := env.auth.Register(services.RegisterInput{
		Email:    email,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return user
}

// accessToken issues a valid access token for a user.
func (env *testEnv) accessToken(t *testing.T, userID uint64) string {
	t.Helper()
	pair, err := env.tokens.IssuePair(userID)
	require.NoError(t, err)
	return pair.AccessToken
}

// do performs a request against the test router. A non-empty token is sent
// as a bearer header; a nil body sends no payload.
func (env *testEnv) do(t *testing.T, method, url string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// createAddress seeds a lookup address for load tests.
func (env *testEnv) createAddress(t *testing.T, country string) *models.Address {
	t.Helper()
	address := &models.Address{Country: country}
	require.NoError(t, env.db.Create(address).Error)
	return address
}
