package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mmynk/futebol/internal/report"
	"github.com/mmynk/futebol/internal/service"
)

func (e *env) addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "register a record",
		Subcommands: []*cli.Command{
			{
				Name:  "user",
				Usage: "register a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"FUTEBOL_PASSWORD"}},
					&cli.StringFlag{Name: "sex", Required: true, Usage: "M, F or O"},
					&cli.StringFlag{Name: "birth-date", Required: true, Usage: "YYYY-MM-DD"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "preferred-team", Usage: "short name of an official team"},
				},
				Action: e.action(e.addUser),
			},
			{
				Name:  "team",
				Usage: "register an official team",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "acronym", Required: true},
					&cli.StringFlag{Name: "short-name", Usage: "defaults to --name"},
				},
				Action: e.action(e.addTeam),
			},
			{
				Name:  "player",
				Usage: "register a player",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "position", Required: true},
					&cli.Int64Flag{Name: "team", Usage: "official team id, omit for a free agent"},
				},
				Action: e.action(e.addPlayer),
			},
			{
				Name:  "user-team",
				Usage: "create a fantasy team",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
				},
				Action: e.action(e.addUserTeam),
			},
			{
				Name:  "roster",
				Usage: "add a player to a fantasy team",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user-team", Required: true},
					&cli.Int64Flag{Name: "player", Required: true},
				},
				Action: e.action(e.addRoster),
			},
		},
	}
}

func (e *env) addUser(c *cli.Context) error {
	user, err := e.registration.RegisterUser(c.Context, service.NewUser{
		Name:          c.String("name"),
		Email:         c.String("email"),
		Password:      c.String("password"),
		Sex:           c.String("sex"),
		BirthDate:     c.String("birth-date"),
		Phone:         c.String("phone"),
		PreferredTeam: c.String("preferred-team"),
	})
	if err != nil {
		return err
	}
	return e.printer.Message("✓ Usuário cadastrado (id %d).", user.ID)
}

func (e *env) addTeam(c *cli.Context) error {
	team, err := e.registration.RegisterOfficialTeam(c.Context, service.NewOfficialTeam{
		Name:      c.String("name"),
		Acronym:   c.String("acronym"),
		ShortName: c.String("short-name"),
	})
	if err != nil {
		return err
	}
	return e.printer.Message("✓ Time oficial cadastrado (id %d).", team.ID)
}

func (e *env) addPlayer(c *cli.Context) error {
	player, err := e.registration.RegisterPlayer(c.Context, service.NewPlayer{
		Name:           c.String("name"),
		Position:       c.String("position"),
		OfficialTeamID: c.Int64("team"),
	})
	if err != nil {
		return err
	}
	return e.printer.Message("✓ Jogador cadastrado (id %d).", player.ID)
}

func (e *env) addUserTeam(c *cli.Context) error {
	team, err := e.registration.CreateUserTeam(c.Context, c.Int64("user"), c.String("name"))
	if err != nil {
		return err
	}
	return e.printer.Message("✓ Time de usuário criado (id %d).", team.ID)
}

func (e *env) addRoster(c *cli.Context) error {
	entry, err := e.registration.AddRosterPlayer(c.Context, c.Int64("user-team"), c.Int64("player"))
	if err != nil {
		return err
	}
	return e.printer.Message("✓ Jogador adicionado ao elenco (id %d).", entry.ID)
}

func (e *env) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "print the records of a collection",
		Subcommands: []*cli.Command{
			{
				Name:   "users",
				Usage:  "list users without their password hashes",
				Action: e.action(e.listUsers),
			},
			{
				Name:   "teams",
				Usage:  "list official teams",
				Action: e.action(e.listTeams),
			},
			{
				Name:   "players",
				Usage:  "list players with their official team",
				Action: e.action(e.listPlayers),
			},
			{
				Name:   "user-teams",
				Usage:  "list fantasy teams with their rosters",
				Action: e.action(e.listUserTeams),
			},
		},
	}
}

func (e *env) listUsers(c *cli.Context) error {
	users, err := e.store.ListUsers(c.Context)
	if err != nil {
		return err
	}
	return e.printer.Print(report.Users(users))
}

func (e *env) listTeams(c *cli.Context) error {
	teams, err := e.store.ListOfficialTeams(c.Context)
	if err != nil {
		return err
	}
	return e.printer.Print(report.OfficialTeams(teams))
}

func (e *env) listPlayers(c *cli.Context) error {
	players, err := e.store.ListPlayers(c.Context)
	if err != nil {
		return err
	}
	return e.printer.Print(report.Players(players))
}

func (e *env) listUserTeams(c *cli.Context) error {
	teams, err := e.store.ListUserTeams(c.Context)
	if err != nil {
		return err
	}
	return e.printer.Print(report.UserTeams(teams))
}
