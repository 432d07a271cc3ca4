// Package seed loads teams and bootstrap accounts from YAML files so a fresh
// database has someone able to approve signups.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mailops-backend/internal/auth"
	"mailops-backend/internal/database/models"
	"mailops-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// PasswordEnv names the variable holding the initial password of seeded accounts.
// Passwords never live in the YAML files.
const PasswordEnv = "SEED_ACCOUNT_PASSWORD"

type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type AccountData struct {
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	Role        string `yaml:"role"`
	TeamName    string `yaml:"team_name,omitempty"`
}

// File is the layout of every *.yaml file under the data directory
type File struct {
	Teams    []TeamData    `yaml:"teams"`
	Accounts []AccountData `yaml:"accounts"`
}

// Stats counts rows created by a Load; existing rows are left untouched
type Stats struct {
	TeamsCreated    int
	AccountsCreated int
}

// ReadDir merges every YAML file found under dataDir
func ReadDir(dataDir string) (*File, error) {
	merged := &File{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		merged.Teams = append(merged.Teams, file.Teams...)
		merged.Accounts = append(merged.Accounts, file.Accounts...)
		return nil
	})
	return merged, err
}

// Load creates the missing teams, then the missing accounts.
// Rows are matched by team name and account email, so running it twice is harmless.
func Load(db *gorm.DB, file *File, password string) (*Stats, error) {
	if len(file.Accounts) > 0 && len(password) < 8 {
		return nil, fmt.Errorf("%s must hold at least 8 characters", PasswordEnv)
	}

	stats := &Stats{}
	teams := make(map[string]*models.Team, len(file.Teams))
	for _, data := range file.Teams {
		team, created, err := ensureTeam(db, data)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", data.Name, err)
		}
		teams[team.Name] = team
		if created {
			stats.TeamsCreated++
		}
	}

	var hash string
	for _, data := range file.Accounts {
		if hash == "" {
			var err error
			if hash, err = auth.HashPassword(password); err != nil {
				return nil, err
			}
		}
		created, err := ensureAccount(db, data, teams, hash)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", data.Email, err)
		}
		if created {
			stats.AccountsCreated++
		}
	}

	logger.New().WithFields(map[string]interface{}{
		"teams_created":    stats.TeamsCreated,
		"accounts_created": stats.AccountsCreated,
	}).Info("seed data loaded")
	return stats, nil
}

func ensureTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return nil, false, errors.New("name is required")
	}

	var team models.Team
	err := db.Where("name = ?", name).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{Name: name, Description: data.Description}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func ensureAccount(db *gorm.DB, data AccountData, teams map[string]*models.Team, hash string) (bool, error) {
	role, err := models.ParseRole(data.Role)
	if err != nil {
		return false, err
	}
	if !role.IsApproved() {
		return false, fmt.Errorf("role %q cannot be seeded", role)
	}
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var existing models.Profile
	err = db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query profile: %w", err)
	}

	profile := models.Profile{
		DisplayName:  data.DisplayName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if role != models.RoleAdmin {
		team := teams[data.TeamName]
		if team == nil {
			return false, fmt.Errorf("team %q not found", data.TeamName)
		}
		profile.TeamID = &team.ID
	}

	if err := db.Create(&profile).Error; err != nil {
		return false, fmt.Errorf("failed to create profile: %w", err)
	}
	return true, nil
}
