//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "squadhub/internal/auth/model"
	eventModel "squadhub/internal/event/model"
	inviteModel "squadhub/internal/invite/model"
	lineupModel "squadhub/internal/lineup/model"
	orgModel "squadhub/internal/org/model"
	teamModel "squadhub/internal/team/model"
)

// E2ETestSuite contains test infrastructure. It starts a PostgreSQL
// container and the application container next to it; migrations are
// applied by the application on startup.
type E2ETestSuite struct {
	suite.Suite
	ctx          context.Context
	pgContainer  *postgres.PostgresContainer
	db           *gorm.DB
	appContainer testcontainers.Container
	baseURL      string
	httpClient   *http.Client
}

// SetupSuite runs once before all tests
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	// Connection for test assertions only; the application applies the
	// migrations itself on startup.
	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// The application container needs the internal address of the
	// PostgreSQL container, not the host-mapped one.
	containerName, err := pgContainer.Name(s.ctx)
	require.NoError(s.T(), err, "failed to get PostgreSQL container name")

	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	require.NoError(s.T(), err, "failed to create Docker client")
	defer dockerClient.Close()

	containerNameClean := strings.TrimPrefix(containerName, "/")
	containerInfo, err := dockerClient.ContainerInspect(s.ctx, containerNameClean)
	require.NoError(s.T(), err, "failed to inspect PostgreSQL container")

	var dbHost string
	for _, network := range containerInfo.NetworkSettings.Networks {
		dbHost = network.IPAddress
		break
	}
	if dbHost == "" {
		dbHost = containerNameClean
	}

	appContainer, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "squadhub-e2e:test",
			ExposedPorts: []string{"8080/tcp"},
			Env: map[string]string{
				"DB_HOST":                dbHost,
				"DB_PORT":                "5432",
				"DB_USER":                "testuser",
				"DB_PASSWORD":            "testpass",
				"DB_NAME":                "testdb",
				"DB_SSLMODE":             "disable",
				"DB_TIMEZONE":            "UTC",
				"DB_RETRY_MAX_ATTEMPTS":  "5",
				"DB_RETRY_INITIAL_DELAY": "1s",
				"DB_RETRY_MAX_DELAY":     "30s",
				"SERVER_PORT":            ":8080",
				"GIN_MODE":               "release",
				"LOG_LEVEL":              "info",
				"LOG_FORMAT":             "json",
				"LOG_OUTPUT":             "stdout",
				"MIGRATIONS_PATH":        "migrations",
				"AUTO_MIGRATE":           "true",
				"AUTH_JWT_SECRET":        "e2e-test-secret",
				"AUTH_ACCESS_TOKEN_TTL":  "1h",
				"AUTH_LOGIN_CODE_TTL":    "10m",
				"AUTH_BCRYPT_COST":       "4",
			},
			WaitingFor: wait.ForHTTP("/health").
				WithPort("8080/tcp").
				WithStartupTimeout(120 * time.Second).
				WithPollInterval(2 * time.Second),
		},
		Started: true,
	})
	require.NoError(s.T(), err, "failed to start application container")
	s.appContainer = appContainer

	host, err := appContainer.Host(s.ctx)
	require.NoError(s.T(), err, "failed to get container host")
	port, err := appContainer.MappedPort(s.ctx, "8080")
	require.NoError(s.T(), err, "failed to get container port")

	s.baseURL = fmt.Sprintf("http://%s:%s", host, port.Port())
	s.httpClient = &http.Client{Timeout: 30 * time.Second}
}

// TearDownSuite runs once after all tests
func (s *E2ETestSuite) TearDownSuite() {
	if s.appContainer != nil {
		_ = s.appContainer.Terminate(s.ctx)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test
func (s *E2ETestSuite) SetupTest() {
	s.cleanDatabase()
}

// cleanDatabase truncates mutable tables. Reference data seeded by the
// migrations (positions, lineup templates) is left in place.
func (s *E2ETestSuite) cleanDatabase() {
	tables := []string{
		"lineup_slots", "lineups",
		"event_rsvps", "events",
		"team_kit_numbers", "team_kits",
		"team_player_positions", "team_player_profiles",
		"invites", "team_members", "teams", "orgs",
		"login_codes", "sessions", "profiles", "accounts",
	}
	for _, table := range tables {
		s.db.Exec("TRUNCATE TABLE " + table + " CASCADE")
	}
}

// doRequest performs an HTTP request with an optional bearer token and
// returns the response with its body read.
func (s *E2ETestSuite) doRequest(method, path, token string, body interface{}) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(s.T(), err, "failed to marshal request body")
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	require.NoError(s.T(), err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// signUp registers an account and returns the issued token.
func (s *E2ETestSuite) signUp(email, password, displayName string) *authModel.TokenResponse {
	resp, respBody := s.doRequest("POST", "/auth/signup", "", &authModel.SignUpRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "sign-up should succeed: %s", string(respBody))

	var token authModel.TokenResponse
	s.Require().NoError(json.Unmarshal(respBody, &token))
	return &token
}

// createOrg creates an organization via HTTP API.
func (s *E2ETestSuite) createOrg(token, name string) *orgModel.Org {
	resp, respBody := s.doRequest("POST", "/orgs", token, &orgModel.CreateOrgRequest{Name: name})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "org creation should succeed: %s", string(respBody))

	var org orgModel.Org
	s.Require().NoError(json.Unmarshal(respBody, &org))
	return &org
}

// createTeam creates a team via HTTP API.
func (s *E2ETestSuite) createTeam(token string, req *teamModel.CreateTeamRequest) *teamModel.Team {
	resp, respBody := s.doRequest("POST", "/teams", token, req)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "team creation should succeed: %s", string(respBody))

	var team teamModel.Team
	s.Require().NoError(json.Unmarshal(respBody, &team))
	return &team
}

// createInvite creates an invite via HTTP API.
func (s *E2ETestSuite) createInvite(token, teamID string, req *inviteModel.CreateInviteRequest) *inviteModel.Invite {
	resp, respBody := s.doRequest("POST", "/teams/"+teamID+"/invites", token, req)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "invite creation should succeed: %s", string(respBody))

	var invite inviteModel.Invite
	s.Require().NoError(json.Unmarshal(respBody, &invite))
	return &invite
}

// redeemInvite redeems an invite code via HTTP API.
func (s *E2ETestSuite) redeemInvite(token, code string) (*http.Response, []byte) {
	return s.doRequest("POST", "/invites/redeem", token, &inviteModel.RedeemRequest{Code: code})
}

// createEvent creates an event via HTTP API.
func (s *E2ETestSuite) createEvent(token, teamID string, req *eventModel.CreateEventRequest) *eventModel.Event {
	resp, respBody := s.doRequest("POST", "/teams/"+teamID+"/events", token, req)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "event creation should succeed: %s", string(respBody))

	var event eventModel.Event
	s.Require().NoError(json.Unmarshal(respBody, &event))
	return &event
}

// createLineup creates a lineup from a template via HTTP API.
func (s *E2ETestSuite) createLineup(token, teamID string, req *lineupModel.CreateFromTemplateRequest) *lineupModel.Lineup {
	resp, respBody := s.doRequest("POST", "/teams/"+teamID+"/lineups", token, req)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "lineup creation should succeed: %s", string(respBody))

	var lineup lineupModel.Lineup
	s.Require().NoError(json.Unmarshal(respBody, &lineup))
	return &lineup
}

// parseErrorResponse extracts the error code and message from an error body.
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) (string, string) {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(respBody, &errResp), "failed to unmarshal error response")
	return errResp.Error.Code, errResp.Error.Message
}
