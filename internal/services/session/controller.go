package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rpsgame/rpsgame-go/internal/commitment"
	"github.com/rpsgame/rpsgame-go/internal/dependencies/clock"
	"github.com/rpsgame/rpsgame-go/internal/dependencies/random"
	"github.com/rpsgame/rpsgame-go/internal/model"
	"github.com/rpsgame/rpsgame-go/internal/services/scoring"
	"github.com/rpsgame/rpsgame-go/internal/storage"
)

const (
	// SessionCodeLength is the length of generated session codes
	SessionCodeLength = 6
	// SessionCodeAlphabet is the characters used in session codes (avoid confusing chars)
	SessionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller drives a session through its commit, reveal and scoring phases.
// It owns all state transitions; the commitment and scoring packages stay
// pure and side-effect free.
type Controller struct {
	storage        storage.Storage
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// CreateSession creates a new empty session in the joining state
func (c *Controller) CreateSession(ctx context.Context) (*model.Session, error) {
	now := c.clock.Now()

	// Generate unique session code
	var code model.SessionCode
	for {
		code = model.SessionCode(c.random.String(SessionCodeLength, SessionCodeAlphabet))
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	session := &model.Session{
		Code:      code,
		State:     model.SessionStateJoining,
		Round:     1,
		Players:   []model.PlayerEntry{},
		Scores:    map[string]int{},
		Rounds:    []model.RoundSummary{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session created", slog.String("session", string(code)))

	return session, nil
}

// GetSession retrieves a session by code
func (c *Controller) GetSession(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	return c.storage.GetSession(ctx, code)
}

// Join adds a named player to a session. Names are freeform but must be
// unique within the session; the roster is only open before round 1 starts.
func (c *Controller) Join(ctx context.Context, code model.SessionCode, name string) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.State != model.SessionStateJoining {
		return nil, model.ErrSessionNotJoining
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}
	if session.GetPlayer(name) != nil {
		return nil, model.ErrNameTaken
	}

	now := c.clock.Now()
	session.Players = append(session.Players, model.PlayerEntry{
		Name:     name,
		Choice:   model.ChoiceEmpty,
		Phase:    model.PhaseAwaitingCommit,
		JoinedAt: now,
	})
	// Score table keys mirror the roster exactly: one entry per player,
	// created at zero, never removed.
	session.Scores[name] = 0
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("player joined",
		slog.String("session", string(code)),
		slog.String("player", name),
		slog.Int("player_count", len(session.Players)),
	)

	return session, nil
}

// Start locks the roster and opens the commit phase for round 1
func (c *Controller) Start(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.State != model.SessionStateJoining {
		return nil, model.ErrSessionNotJoining
	}
	if len(session.Players) < 2 {
		return nil, model.ErrInsufficientPlayers
	}

	session.State = model.SessionStateCommitting
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session", string(code)),
		slog.Int("player_count", len(session.Players)),
	)

	return session, nil
}

// Commit stores a player's commitment for the current round. Once every
// player has committed the reveal phase opens; until then no reveal is
// accepted, so nobody can see a choice before all choices are locked in.
func (c *Controller) Commit(ctx context.Context, code model.SessionCode, name string, digest model.Commitment) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.State != model.SessionStateCommitting {
		return nil, model.ErrCommitsClosed
	}

	player := session.GetPlayer(name)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if player.Phase != model.PhaseAwaitingCommit {
		return nil, model.ErrAlreadyCommitted
	}

	player.Commitment = digest
	player.Phase = model.PhaseAwaitingReveal
	session.UpdatedAt = c.clock.Now()

	if session.AllCommitted() {
		session.State = model.SessionStateRevealing
		c.logger.Info("reveal phase opened",
			slog.String("session", string(code)),
			slog.Int("round", session.Round),
		)
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Reveal checks a player's claimed (choice, salt) pair against their stored
// commitment. A failed reveal leaves all state untouched, including the
// commitment itself; the caller may retry with a corrected pair.
func (c *Controller) Reveal(ctx context.Context, code model.SessionCode, name, choiceStr, salt string) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.State != model.SessionStateRevealing {
		return nil, model.ErrRevealsNotOpen
	}

	player := session.GetPlayer(name)
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}
	if player.Phase == model.PhaseRevealed {
		return nil, model.ErrAlreadyRevealed
	}

	// An unparseable choice is rejected outright rather than treated as a
	// legal "no move"; the player is expected to retry.
	choice, err := model.ParseChoice(choiceStr)
	if err != nil {
		return nil, err
	}

	// The digest is recomputed over the string exactly as the player
	// supplied it, since that is what they hashed at commit time.
	if !commitment.Verify(player.Commitment, choiceStr, salt) {
		c.logger.Info("reveal rejected",
			slog.String("session", string(code)),
			slog.String("player", name),
		)
		return nil, model.ErrRevealMismatch
	}

	player.Choice = choice
	player.Phase = model.PhaseRevealed
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("choice revealed",
		slog.String("session", string(code)),
		slog.String("player", name),
		slog.String("choice", string(choice)),
	)

	return session, nil
}

// ScoreRound resolves the current round once every player has revealed,
// folds the deltas into the accumulated score table and records a round
// summary. Scores only ever increase; the table is never reset within a
// session.
func (c *Controller) ScoreRound(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.State != model.SessionStateRevealing || !session.AllRevealed() {
		return nil, model.ErrRoundNotComplete
	}

	deltas, err := c.scoringService.Score(session.RevealedChoices())
	if err != nil {
		return nil, err
	}

	for name, delta := range deltas {
		session.Scores[name] += delta
	}

	winner := c.scoringService.Winner(deltas)

	choices := make(map[string]model.Choice, len(session.Players))
	for _, p := range session.Players {
		choices[p.Name] = p.Choice
	}

	now := c.clock.Now()
	session.Rounds = append(session.Rounds, model.RoundSummary{
		Number:   session.Round,
		Winner:   winner,
		Choices:  choices,
		Deltas:   deltas,
		ScoredAt: now,
	})
	session.State = model.SessionStateScored
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("round scored",
		slog.String("session", string(code)),
		slog.Int("round", session.Round),
		slog.String("winner", winner),
	)

	return session, nil
}

// NextRound opens a fresh commit phase. Commitments and choices reset;
// the score table carries over untouched. Each round needs a freshly
// chosen salt per player, or their old reveal gives the new choice away.
func (c *Controller) NextRound(ctx context.Context, code model.SessionCode) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	if session.State != model.SessionStateScored {
		return nil, model.ErrRoundNotScored
	}

	session.Round++
	for i := range session.Players {
		session.Players[i].Commitment = model.Commitment{}
		session.Players[i].Choice = model.ChoiceEmpty
		session.Players[i].Phase = model.PhaseAwaitingCommit
	}
	session.State = model.SessionStateCommitting
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("next round opened",
		slog.String("session", string(code)),
		slog.Int("round", session.Round),
	)

	return session, nil
}

// Scores returns a copy of the accumulated score table
func (c *Controller) Scores(ctx context.Context, code model.SessionCode) (map[string]int, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]int, len(session.Scores))
	for name, score := range session.Scores {
		scores[name] = score
	}
	return scores, nil
}
