package service

import (
	"context"
	"fmt"

	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"
	"coaching-roster-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MembershipService keeps Team.AthleteIDs and Athlete.TeamID in agreement.
// Every change reads the team and athlete rows with FOR UPDATE inside one
// transaction, validates the whole request and then writes both sides.
type MembershipService struct {
	tx repository.TransactorInterface
}

// NewMembershipService creates a new membership service
func NewMembershipService(tx repository.TransactorInterface) *MembershipService {
	return &MembershipService{tx: tx}
}

// RosterChangeRequest lists athletes to add to or remove from a team
type RosterChangeRequest struct {
	AthleteIDs []uuid.UUID `json:"athleteIds"`
}

// RosterChangeResponse reports how many athletes actually changed
type RosterChangeResponse struct {
	TeamID     uuid.UUID `json:"teamId"`
	Changed    int       `json:"changed"`
	RosterSize int       `json:"rosterSize"`
}

// AssignRoster makes requested the complete roster of team. It must run inside
// a transaction in which team was read with a row lock (or is being created).
// The caller persists team afterwards.
func (s *MembershipService) AssignRoster(ctx context.Context, repos repository.Repositories, team *models.Team, requested []uuid.UUID, ownerID uuid.UUID) error {
	requested = uniqueIDs(requested)

	wanted := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		wanted[id] = struct{}{}
	}

	var toAdd, toRemove []uuid.UUID
	for _, id := range requested {
		if !team.HasAthlete(id) {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range team.AthleteIDs {
		if _, ok := wanted[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	if len(toAdd) > 0 {
		athletes, err := repos.Athletes.GetByIDsForUpdate(ctx, toAdd)
		if err != nil {
			return fmt.Errorf("failed to load athletes: %w", err)
		}

		violations := checkAdmission(toAdd, indexAthletes(athletes), team.ID, ownerID)
		if len(violations) > 0 {
			return &apperrors.MembershipError{Violations: violations}
		}

		if err := repos.Athletes.SetTeam(ctx, toAdd, &team.ID); err != nil {
			return fmt.Errorf("failed to assign athletes: %w", err)
		}
	}
	if len(toRemove) > 0 {
		if _, err := repos.Athletes.UnlinkFromTeam(ctx, toRemove, team.ID); err != nil {
			return fmt.Errorf("failed to unassign athletes: %w", err)
		}
	}

	team.AthleteIDs = datatypes.JSONSlice[uuid.UUID](requested)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": team.ID,
		"added":   len(toAdd),
		"removed": len(toRemove),
	}).Debug("Roster assigned")
	return nil
}

// AddAthletes puts athletes on a team. Athletes already on this team are skipped.
func (s *MembershipService) AddAthletes(ctx context.Context, teamID, ownerID uuid.UUID, ids []uuid.UUID) (*RosterChangeResponse, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("athleteIds", "must be a non-empty array")
	}

	var resp *RosterChangeResponse
	err := s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		team, err := lockOwnedTeam(ctx, repos, teamID, ownerID)
		if err != nil {
			return err
		}

		athletes, err := repos.Athletes.GetByIDsForUpdate(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load athletes: %w", err)
		}
		byID := indexAthletes(athletes)

		violations := checkAdmission(ids, byID, team.ID, ownerID)
		if len(violations) > 0 {
			return &apperrors.MembershipError{Violations: violations}
		}

		var toAdd []uuid.UUID
		for _, id := range ids {
			if byID[id].BelongsTo(team.ID) && team.HasAthlete(id) {
				continue
			}
			toAdd = append(toAdd, id)
		}

		resp = &RosterChangeResponse{TeamID: team.ID, Changed: len(toAdd), RosterSize: len(team.AthleteIDs)}
		if len(toAdd) == 0 {
			return nil
		}

		if err := repos.Athletes.SetTeam(ctx, toAdd, &team.ID); err != nil {
			return fmt.Errorf("failed to assign athletes: %w", err)
		}

		roster := make(datatypes.JSONSlice[uuid.UUID], 0, len(team.AthleteIDs)+len(toAdd))
		roster = append(roster, team.AthleteIDs...)
		for _, id := range toAdd {
			if !team.HasAthlete(id) {
				roster = append(roster, id)
			}
		}
		team.AthleteIDs = roster
		team.Version++
		if err := repos.Teams.Update(ctx, team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}

		resp.RosterSize = len(team.AthleteIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RemoveAthletes takes athletes off a team. Every athlete must currently be a member.
func (s *MembershipService) RemoveAthletes(ctx context.Context, teamID, ownerID uuid.UUID, ids []uuid.UUID) (*RosterChangeResponse, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("athleteIds", "must be a non-empty array")
	}

	var resp *RosterChangeResponse
	err := s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		team, err := lockOwnedTeam(ctx, repos, teamID, ownerID)
		if err != nil {
			return err
		}

		athletes, err := repos.Athletes.GetByIDsForUpdate(ctx, ids)
		if err != nil {
			return fmt.Errorf("failed to load athletes: %w", err)
		}
		byID := indexAthletes(athletes)

		var violations []apperrors.Violation
		for _, id := range ids {
			athlete, ok := byID[id]
			switch {
			case !ok:
				violations = append(violations, notFoundViolation(id))
			case athlete.UserID != ownerID:
				violations = append(violations, forbiddenViolation(id))
			case !athlete.BelongsTo(team.ID):
				violations = append(violations, apperrors.Violation{
					AthleteID: id,
					Reason:    apperrors.ReasonConflict,
					Message:   "athlete is not a member of this team",
				})
			}
		}
		if len(violations) > 0 {
			return &apperrors.MembershipError{Violations: violations}
		}

		changed, err := repos.Athletes.UnlinkFromTeam(ctx, ids, team.ID)
		if err != nil {
			return fmt.Errorf("failed to unassign athletes: %w", err)
		}

		removed := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			removed[id] = struct{}{}
		}
		roster := make(datatypes.JSONSlice[uuid.UUID], 0, len(team.AthleteIDs))
		for _, id := range team.AthleteIDs {
			if _, ok := removed[id]; !ok {
				roster = append(roster, id)
			}
		}
		team.AthleteIDs = roster
		team.Version++
		if err := repos.Teams.Update(ctx, team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}

		resp = &RosterChangeResponse{TeamID: team.ID, Changed: int(changed), RosterSize: len(team.AthleteIDs)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// checkAdmission validates every candidate and returns all violations in request order
func checkAdmission(ids []uuid.UUID, byID map[uuid.UUID]*models.Athlete, teamID, ownerID uuid.UUID) []apperrors.Violation {
	var violations []apperrors.Violation
	for _, id := range ids {
		athlete, ok := byID[id]
		switch {
		case !ok:
			violations = append(violations, notFoundViolation(id))
		case athlete.UserID != ownerID:
			violations = append(violations, forbiddenViolation(id))
		case athlete.IsAssigned() && !athlete.BelongsTo(teamID):
			violations = append(violations, apperrors.Violation{
				AthleteID: id,
				Reason:    apperrors.ReasonConflict,
				Message:   "athlete is already assigned to another team",
			})
		}
	}
	return violations
}

func notFoundViolation(id uuid.UUID) apperrors.Violation {
	return apperrors.Violation{AthleteID: id, Reason: apperrors.ReasonNotFound, Message: "athlete not found"}
}

func forbiddenViolation(id uuid.UUID) apperrors.Violation {
	return apperrors.Violation{AthleteID: id, Reason: apperrors.ReasonForbidden, Message: "access to this athlete is forbidden"}
}

func indexAthletes(athletes []models.Athlete) map[uuid.UUID]*models.Athlete {
	byID := make(map[uuid.UUID]*models.Athlete, len(athletes))
	for i := range athletes {
		byID[athletes[i].ID] = &athletes[i]
	}
	return byID
}

// lockOwnedTeam reads a team with a row lock and checks the owner
func lockOwnedTeam(ctx context.Context, repos repository.Repositories, teamID, ownerID uuid.UUID) (*models.Team, error) {
	team, err := repos.Teams.GetByIDForUpdate(ctx, teamID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if team.UserID != ownerID {
		return nil, apperrors.ErrTeamForbidden
	}
	return team, nil
}
