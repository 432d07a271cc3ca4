package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"mailops-backend/internal/auth"
	"mailops-backend/internal/database/models"
	"mailops-backend/internal/seed"
	"mailops-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const sampleYAML = `
teams:
  - name: falcon
    description: EU sending pool
accounts:
  - display_name: Root
    email: Root@Example.com
    role: admin
  - display_name: Falcon Lead
    email: lead@example.com
    role: team-leader
    team_name: falcon
`

type SeedTestSuite struct {
	suite.Suite
	db  *gorm.DB
	dir string
}

func (suite *SeedTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.dir = suite.T().TempDir()
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "seed.yaml"), []byte(sampleYAML), 0o600))
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "README.txt"), []byte("ignored"), 0o600))
}

func (suite *SeedTestSuite) TestReadDirMergesYAMLFiles() {
	extra := "teams:\n  - name: hawk\n"
	suite.Require().NoError(os.WriteFile(filepath.Join(suite.dir, "more.yml"), []byte(extra), 0o600))

	file, err := seed.ReadDir(suite.dir)

	suite.Require().NoError(err)
	suite.Len(file.Teams, 2)
	suite.Len(file.Accounts, 2)
}

func (suite *SeedTestSuite) TestLoadIsIdempotent() {
	file, err := seed.ReadDir(suite.dir)
	suite.Require().NoError(err)

	stats, err := seed.Load(suite.db, file, "bootstrap-password")
	suite.Require().NoError(err)
	suite.Equal(1, stats.TeamsCreated)
	suite.Equal(2, stats.AccountsCreated)

	stats, err = seed.Load(suite.db, file, "bootstrap-password")
	suite.Require().NoError(err)
	suite.Zero(stats.TeamsCreated)
	suite.Zero(stats.AccountsCreated)

	var admin models.Profile
	suite.Require().NoError(suite.db.Where("email = ?", "root@example.com").First(&admin).Error)
	suite.Equal(models.RoleAdmin, admin.Role)
	suite.Nil(admin.TeamID)
	suite.True(auth.VerifyPassword(admin.PasswordHash, "bootstrap-password"))

	var lead models.Profile
	suite.Require().NoError(suite.db.Where("email = ?", "lead@example.com").First(&lead).Error)
	suite.Require().NotNil(lead.TeamID)
}

func (suite *SeedTestSuite) TestLoadRefusals() {
	_, err := seed.Load(suite.db, &seed.File{Accounts: []seed.AccountData{{Email: "a@example.com", Role: "admin"}}}, "short")
	suite.ErrorContains(err, seed.PasswordEnv)

	_, err = seed.Load(suite.db, &seed.File{Accounts: []seed.AccountData{{Email: "m@example.com", Role: "mailer", TeamName: "nowhere"}}}, "long-enough")
	suite.ErrorContains(err, "nowhere")

	_, err = seed.Load(suite.db, &seed.File{Accounts: []seed.AccountData{{Email: "p@example.com", Role: "pending_approval"}}}, "long-enough")
	suite.ErrorContains(err, "cannot be seeded")

	_, err = seed.Load(suite.db, &seed.File{Teams: []seed.TeamData{{Name: "  "}}}, "")
	suite.ErrorContains(err, "name is required")
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}
