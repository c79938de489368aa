package services

import (
	"context"
	"testing"

	"github.com/Adfay-Inc/Puntus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	roster := []string{"Ana", "Bo", "Cy", "Dee"}

	t.Run("normalizes and stores the team", func(t *testing.T) {
		var created *models.Team
		teamRepo := &stubTeamRepo{
			create: func(ctx context.Context, team *models.Team) error {
				created = team
				return nil
			},
		}
		svc := NewTeamService(teamRepo, nil)

		team, err := svc.CreateTeam(context.Background(), TeamInput{
			Name:    "  Night Owls ",
			Tag:     "owl",
			Players: roster,
		}, 42)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "Night Owls", team.Name)
		assert.Equal(t, "OWL", team.Tag, "tag is upper-cased")
		assert.Equal(t, 42, team.CreatorID)
	})

	t.Run("roster size limits", func(t *testing.T) {
		svc := NewTeamService(&stubTeamRepo{}, nil)

		_, err := svc.CreateTeam(context.Background(), TeamInput{
			Name: "x", Tag: "X", Players: []string{"a", "b", "c"},
		}, 1)
		assert.ErrorIs(t, err, ErrRosterSizeInvalid)

		_, err = svc.CreateTeam(context.Background(), TeamInput{
			Name: "x", Tag: "X", Players: []string{"a", "b", "c", "d", "e", "f", "g"},
		}, 1)
		assert.ErrorIs(t, err, ErrRosterSizeInvalid)
	})

	t.Run("tag length limit", func(t *testing.T) {
		svc := NewTeamService(&stubTeamRepo{}, nil)

		_, err := svc.CreateTeam(context.Background(), TeamInput{
			Name: "x", Tag: "TOOLONG", Players: roster,
		}, 1)
		assert.ErrorIs(t, err, ErrTeamTagInvalid)

		_, err = svc.CreateTeam(context.Background(), TeamInput{
			Name: "x", Tag: "", Players: roster,
		}, 1)
		assert.ErrorIs(t, err, ErrTeamTagInvalid)
	})

	t.Run("blank names in the starting four are rejected", func(t *testing.T) {
		svc := NewTeamService(&stubTeamRepo{}, nil)

		_, err := svc.CreateTeam(context.Background(), TeamInput{
			Name: "x", Tag: "X", Players: []string{"Ana", "  ", "Cy", "Dee"},
		}, 1)
		assert.ErrorIs(t, err, ErrPlayerNameRequired)
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewTeamService(&stubTeamRepo{}, nil)

		_, err := svc.CreateTeam(context.Background(), TeamInput{
			Name: "  ", Tag: "X", Players: roster,
		}, 1)
		assert.ErrorIs(t, err, ErrTeamNameRequired)
	})
}

func TestUpdateTeamOwnership(t *testing.T) {
	teamRepo := &stubTeamRepo{
		getByID: func(ctx context.Context, id int) (*models.Team, error) {
			return &models.Team{ID: id, CreatorID: 42, Players: []string{"a", "b", "c", "d"}}, nil
		},
	}
	svc := NewTeamService(teamRepo, nil)

	_, err := svc.UpdateTeam(context.Background(), 1, TeamInput{
		Name: "x", Tag: "X", Players: []string{"a", "b", "c", "d"},
	}, 99)
	assert.ErrorIs(t, err, ErrForbiddenOperation)
}
