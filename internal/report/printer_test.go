package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/futebol/internal/models"
)

func strPtr(s string) *string { return &s }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatBlock},
		{in: "block", want: FormatBlock},
		{in: " TABLE ", want: FormatTable},
		{in: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatBlock).Banner("Q4: Listar jogadores sem time oficial"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", 80), lines[0])
	assert.Equal(t, "Q4: Listar jogadores sem time oficial", lines[1])
	assert.Equal(t, lines[0], lines[2])
}

func TestPrintTable(t *testing.T) {
	t.Run("aligns columns and separates header", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, FormatTable)
		section := UnaffiliatedPlayers([]models.UnaffiliatedPlayer{{ID: 4, Name: "Jogador D", Position: "Goleiro"}})
		require.NoError(t, p.Print(section))

		want := strings.Join([]string{
			strings.Repeat("=", 80),
			Titles[Q4],
			strings.Repeat("=", 80),
			"ID | Nome      | Posição",
			"---+-----------+--------",
			"4  | Jogador D | Goleiro",
			"",
			"",
		}, "\n")
		assert.Equal(t, want, buf.String())
	})

	t.Run("renders nil cells as NULL", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, FormatTable)
		section := PlayersWithTeams([]models.PlayerWithTeam{
			{ID: 4, Name: "Jogador D", Position: "Goleiro"},
			{ID: 1, Name: "Jogador A", Position: "Atacante", OfficialTeam: strPtr("Furia Esports")},
		})
		require.NoError(t, p.Print(section))

		out := buf.String()
		assert.Contains(t, out, "4  | Jogador D | Goleiro  | NULL         ")
		assert.Contains(t, out, "1  | Jogador A | Atacante | Furia Esports")
	})

	t.Run("empty section prints placeholder", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable).Print(PositionCounts(nil)))
		assert.Contains(t, buf.String(), EmptyMessage+"\n")
		assert.NotContains(t, buf.String(), "Quantidade")
	})
}

func TestPrintBlock(t *testing.T) {
	t.Run("one mapping per record with explicit null", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, "")
		assert.Equal(t, FormatBlock, p.Format())

		section := PlayersWithTeams([]models.PlayerWithTeam{{ID: 4, Name: "Jogador D", Position: "Goleiro"}})
		require.NoError(t, p.Print(section))

		out := buf.String()
		assert.Contains(t, out, "id: 4\nname: Jogador D\nposition: Goleiro\nofficial_team: null\n")
	})

	t.Run("multiple records", func(t *testing.T) {
		var buf bytes.Buffer
		section := PreferredTeamOverlap([]models.PreferredTeamOverlap{
			{User: "Eduardo Fontes", PreferredTeam: "FURIA", Players: 2},
			{User: "Larissa", PreferredTeam: "LOUD", Players: 1},
		})
		require.NoError(t, NewPrinter(&buf, FormatBlock).Print(section))

		out := buf.String()
		assert.Contains(t, out, "user: Eduardo Fontes\npreferred_team: FURIA\nplayers_from_preferred_team: 2\n")
		assert.Contains(t, out, "user: Larissa\npreferred_team: LOUD\nplayers_from_preferred_team: 1\n")
		assert.Less(t, strings.Index(out, "Eduardo"), strings.Index(out, "Larissa"))
	})

	t.Run("empty section prints only the banner", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatBlock).Print(UnaffiliatedPlayers(nil)))
		assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
	})
}

func TestUsersSectionOmitsPassword(t *testing.T) {
	section := Users([]models.User{{ID: 1, Name: "Larissa", Email: "lari@example.com", PasswordHash: "secret", Sex: "F", BirthDate: "2001-03-10"}})

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatBlock).Print(section))
	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), "phone: null\n")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(section))
	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), "NULL")
}
