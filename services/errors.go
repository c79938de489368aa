package services

import "errors"

// Shared errors used across services and the HTTP mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrTeamTagInvalid       = errors.New("team tag must be 1 to 4 characters")
	ErrRosterSizeInvalid    = errors.New("team roster must have between 4 and 6 players")
	ErrPlayerNameRequired   = errors.New("the first four roster slots need player names")
	ErrScrimNameRequired    = errors.New("scrim name is required")
	ErrScrimMapsRequired    = errors.New("scrim needs at least one map in the rotation")
	ErrScrimTeamLimits      = errors.New("scrim team limits must be between 2 and 12")
	ErrScrimNotJoinable     = errors.New("scrim is not accepting registrations")
	ErrScrimFull            = errors.New("scrim has reached its team limit")
	ErrScrimNotEnoughTeams  = errors.New("scrim does not have enough registered teams")
	ErrScrimPasswordInvalid = errors.New("invalid scrim password")
	ErrGameNumberInvalid    = errors.New("game number is out of the map rotation range")
	ErrMatchNotStartable    = errors.New("match cannot be started in its current state")
	ErrMatchNotEndable      = errors.New("match cannot be ended in its current state")
	ErrPlacementInvalid     = errors.New("placement is outside the valid range")
	ErrKillsInvalid         = errors.New("kill count cannot be negative")

	// Conflicts
	ErrUserEmailConflict      = errors.New("email address is already in use")
	ErrUserNicknameConflict   = errors.New("nickname is already in use")
	ErrTeamTagConflict        = errors.New("team tag is already in use")
	ErrTeamAlreadyInScrim     = errors.New("team is already registered in a scrim")
	ErrRegistrationConflict   = errors.New("team is already registered for this scrim")
	ErrGameNumberConflict     = errors.New("game number already exists for this scrim")
	ErrResultPlacementTaken   = errors.New("placement is already taken in this match")
	ErrResultAlreadyReported  = errors.New("team already has a result for this match")
	ErrScrimStatusTransition  = errors.New("invalid scrim status transition")
	ErrRosterLockedByStatus   = errors.New("scrim roster can only change while pending")
	ErrResultsLockedByStatus  = errors.New("results can only be recorded while the scrim is active")
	ErrMatchesLockedByStatus  = errors.New("matches can only be managed before the scrim completes")
	ErrDetailedStatsDisabled  = errors.New("per-player stats are disabled for this scrim")
	ErrAuthenticationFailed   = errors.New("authentication failed")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")
	ErrCreatorActionForbidden = errors.New("only the scrim creator can perform this action")

	// Entity-specific not-found errors
	ErrUserNotFound   = errors.New("user not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrScrimNotFound  = errors.New("scrim not found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrResultNotFound = errors.New("match result not found")
)
