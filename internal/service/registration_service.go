package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/futebol/internal/auth"
	"github.com/mmynk/futebol/internal/models"
	"github.com/mmynk/futebol/internal/storage"
)

var (
	ErrMissingField         = errors.New("required field is empty")
	ErrInvalidSex           = errors.New("sex must be M, F or O")
	ErrInvalidBirthDate     = errors.New("birth date must be in YYYY-MM-DD format")
	ErrInvalidID            = errors.New("id must be positive")
	ErrEmailTaken           = errors.New("email already registered")
	ErrAcronymTaken         = errors.New("acronym already registered")
	ErrUserNotFound         = errors.New("user does not exist")
	ErrOfficialTeamNotFound = errors.New("official team does not exist")
	ErrPlayerNotFound       = errors.New("player does not exist")
	ErrUserTeamNotFound     = errors.New("user team does not exist")
	ErrAlreadyRostered      = errors.New("player is already on this team")
)

// RegistrationStore is the storage surface needed to register records.
type RegistrationStore interface {
	storage.Writer
	storage.Reader
}

// NewUser is the input for RegisterUser.
type NewUser struct {
	Name      string
	Email     string
	Password  string
	Sex       string
	BirthDate string

	// Optional. Empty strings are stored as NULL.
	Phone         string
	PreferredTeam string
}

// NewOfficialTeam is the input for RegisterOfficialTeam.
type NewOfficialTeam struct {
	Name      string
	Acronym   string
	ShortName string // defaults to Name
}

// NewPlayer is the input for RegisterPlayer.
type NewPlayer struct {
	Name     string
	Position string

	// OfficialTeamID of 0 registers a free agent.
	OfficialTeamID int64
}

// RegistrationService validates and stores new league records. IDs are
// assigned as one more than the highest existing ID of the collection.
type RegistrationService struct {
	store  RegistrationStore
	hasher *auth.Hasher
	logger *slog.Logger
}

// NewRegistrationService creates a RegistrationService. A nil logger uses
// slog.Default().
func NewRegistrationService(store RegistrationStore, hasher *auth.Hasher, logger *slog.Logger) *RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistrationService{store: store, hasher: hasher, logger: logger}
}

func required(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return value, nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// RegisterUser validates the input, hashes the password and stores the user.
func (s *RegistrationService) RegisterUser(ctx context.Context, in NewUser) (*models.User, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return nil, err
	}
	email, err := required("email", in.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, fmt.Errorf("%w: password", ErrMissingField)
	}

	sex := strings.ToUpper(strings.TrimSpace(in.Sex))
	if !models.ValidSex(sex) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSex, in.Sex)
	}

	birthDate := strings.TrimSpace(in.BirthDate)
	if _, err := time.Parse(models.BirthDateLayout, birthDate); err != nil {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidBirthDate, in.BirthDate)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.store.NextID(ctx, storage.CollectionUsers)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:            id,
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		Sex:           sex,
		Phone:         optional(in.Phone),
		BirthDate:     birthDate,
		PreferredTeam: optional(in.PreferredTeam),
	}
	if err := s.store.InsertUsers(ctx, []models.User{user}); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Warn("User registration rejected", "email", email, "reason", "duplicate email")
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return &user, nil
}

// RegisterOfficialTeam stores a new official team. The acronym is stored
// upper-cased.
func (s *RegistrationService) RegisterOfficialTeam(ctx context.Context, in NewOfficialTeam) (*models.OfficialTeam, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return nil, err
	}
	acronym, err := required("acronym", in.Acronym)
	if err != nil {
		return nil, err
	}
	acronym = strings.ToUpper(acronym)

	shortName := strings.TrimSpace(in.ShortName)
	if shortName == "" {
		shortName = name
	}

	id, err := s.store.NextID(ctx, storage.CollectionOfficialTeams)
	if err != nil {
		return nil, err
	}

	team := models.OfficialTeam{ID: id, Name: name, Acronym: acronym, ShortName: shortName}
	if err := s.store.InsertOfficialTeams(ctx, []models.OfficialTeam{team}); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Warn("Official team registration rejected", "acronym", acronym, "reason", "duplicate acronym")
			return nil, fmt.Errorf("%w: %s", ErrAcronymTaken, acronym)
		}
		return nil, err
	}

	s.logger.Info("Official team registered", "team_id", team.ID, "acronym", team.Acronym)
	return &team, nil
}

// RegisterPlayer stores a new player, either affiliated with an existing
// official team or as a free agent.
func (s *RegistrationService) RegisterPlayer(ctx context.Context, in NewPlayer) (*models.Player, error) {
	name, err := required("name", in.Name)
	if err != nil {
		return nil, err
	}
	position, err := required("position", in.Position)
	if err != nil {
		return nil, err
	}

	var teamID *int64
	switch {
	case in.OfficialTeamID < 0:
		return nil, fmt.Errorf("%w: official team %d", ErrInvalidID, in.OfficialTeamID)
	case in.OfficialTeamID > 0:
		if _, err := s.store.GetOfficialTeam(ctx, in.OfficialTeamID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrOfficialTeamNotFound, in.OfficialTeamID)
			}
			return nil, err
		}
		id := in.OfficialTeamID
		teamID = &id
	}

	id, err := s.store.NextID(ctx, storage.CollectionPlayers)
	if err != nil {
		return nil, err
	}

	player := models.Player{ID: id, Name: name, Position: position, OfficialTeamID: teamID}
	if err := s.store.InsertPlayers(ctx, []models.Player{player}); err != nil {
		return nil, err
	}

	s.logger.Info("Player registered", "player_id", player.ID, "free_agent", teamID == nil)
	return &player, nil
}

// CreateUserTeam creates a fantasy team owned by an existing user.
func (s *RegistrationService) CreateUserTeam(ctx context.Context, userID int64, name string) (*models.UserTeam, error) {
	name, err := required("name", name)
	if err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user %d", ErrInvalidID, userID)
	}

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUserNotFound, userID)
		}
		return nil, err
	}

	id, err := s.store.NextID(ctx, storage.CollectionUserTeams)
	if err != nil {
		return nil, err
	}

	team := models.UserTeam{ID: id, Name: name, UserID: userID}
	if err := s.store.InsertUserTeams(ctx, []models.UserTeam{team}); err != nil {
		return nil, err
	}

	s.logger.Info("User team created", "user_team_id", team.ID, "user_id", userID)
	return &team, nil
}

// AddRosterPlayer puts an existing player on an existing fantasy team. A
// player can be on a given fantasy team only once.
func (s *RegistrationService) AddRosterPlayer(ctx context.Context, userTeamID, playerID int64) (*models.UserTeamPlayer, error) {
	if userTeamID <= 0 || playerID <= 0 {
		return nil, fmt.Errorf("%w: user team %d, player %d", ErrInvalidID, userTeamID, playerID)
	}

	if _, err := s.store.GetUserTeam(ctx, userTeamID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUserTeamNotFound, userTeamID)
		}
		return nil, err
	}
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, playerID)
		}
		return nil, err
	}

	exists, err := s.store.RosterContains(ctx, userTeamID, playerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: player %d, user team %d", ErrAlreadyRostered, playerID, userTeamID)
	}

	id, err := s.store.NextID(ctx, storage.CollectionUserTeamPlayers)
	if err != nil {
		return nil, err
	}

	entry := models.UserTeamPlayer{ID: id, UserTeamID: userTeamID, PlayerID: playerID}
	if err := s.store.InsertUserTeamPlayers(ctx, []models.UserTeamPlayer{entry}); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, fmt.Errorf("%w: player %d, user team %d", ErrAlreadyRostered, playerID, userTeamID)
		}
		return nil, err
	}

	s.logger.Info("Player added to user team", "user_team_id", userTeamID, "player_id", playerID)
	return &entry, nil
}
