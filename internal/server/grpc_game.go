package server

import (
	"context"
	"errors"
	"time"

	"github.com/theduelx/duel-server-go/internal/card"
	"github.com/theduelx/duel-server-go/internal/game"
	pb "github.com/theduelx/duel-server-go/pkg/proto/duel/v1"
	"go.uber.org/zap"
)

// placeholderOpponentID seats the second player until real matchmaking
// exists; it gets the catalog default deck.
const placeholderOpponentID int32 = 999

// CreateGame builds a match for the requesting player against the
// placeholder opponent.
func (s *duelServer) CreateGame(ctx context.Context, req *pb.CreateGameRequest) (*pb.CreateGameResponse, error) {
	deck, err := s.resolveDeck(ctx, req.GetDeckCardIds())
	if err != nil {
		s.logger.Error("failed to resolve deck",
			zap.Int32("player_id", req.GetPlayerId()),
			zap.Error(err),
		)
		return &pb.CreateGameResponse{Success: false, Message: "internal server error"}, nil
	}

	opponentDeck, err := s.decks.DeckForPlayer(ctx, placeholderOpponentID)
	if err != nil {
		s.logger.Error("failed to resolve opponent deck", zap.Error(err))
		return &pb.CreateGameResponse{Success: false, Message: "internal server error"}, nil
	}

	match := s.matchMgr.CreateMatch(req.GetPlayerId(), placeholderOpponentID, deck, opponentDeck)

	return &pb.CreateGameResponse{
		GameId:  match.ID,
		Success: true,
		Message: "game created",
	}, nil
}

// JoinGame returns the current match view for the joining player.
func (s *duelServer) JoinGame(ctx context.Context, req *pb.JoinGameRequest) (*pb.JoinGameResponse, error) {
	match, ok := s.matchMgr.GetMatch(req.GetGameId())
	if !ok {
		return &pb.JoinGameResponse{Success: false, Message: "game not found"}, nil
	}

	s.logger.Info("player joined game",
		zap.String("game_id", match.ID),
		zap.Int32("player_id", req.GetPlayerId()),
	)

	return &pb.JoinGameResponse{
		Success:   true,
		Message:   "joined game",
		GameState: matchViewToProto(match.View(req.GetPlayerId())),
	}, nil
}

// PlayCard submits a play-card action.
func (s *duelServer) PlayCard(ctx context.Context, req *pb.PlayCardRequest) (*pb.GameActionResponse, error) {
	cardID := req.GetCardId()
	action := game.Action{
		MatchID:   req.GetGameId(),
		PlayerID:  req.GetPlayerId(),
		Type:      game.ActionPlayCard,
		CardID:    &cardID,
		Timestamp: time.Now(),
	}
	if req.TargetId != nil {
		targetID := req.GetTargetId()
		action.TargetID = &targetID
	}
	if req.Position != nil {
		position := req.GetPosition()
		action.Position = &position
	}

	return s.processAction(req.GetGameId(), req.GetPlayerId(), action), nil
}

// Attack submits an attack action. Target zero is the opposing face.
func (s *duelServer) Attack(ctx context.Context, req *pb.AttackRequest) (*pb.GameActionResponse, error) {
	attackerID := req.GetAttackerId()
	targetID := req.GetTargetId()
	action := game.Action{
		MatchID:   req.GetGameId(),
		PlayerID:  req.GetPlayerId(),
		Type:      game.ActionAttack,
		CardID:    &attackerID,
		TargetID:  &targetID,
		Timestamp: time.Now(),
	}

	return s.processAction(req.GetGameId(), req.GetPlayerId(), action), nil
}

// EndTurn passes the turn to the opponent.
func (s *duelServer) EndTurn(ctx context.Context, req *pb.EndTurnRequest) (*pb.GameActionResponse, error) {
	action := game.Action{
		MatchID:   req.GetGameId(),
		PlayerID:  req.GetPlayerId(),
		Type:      game.ActionEndTurn,
		Timestamp: time.Now(),
	}

	return s.processAction(req.GetGameId(), req.GetPlayerId(), action), nil
}

// Concede ends the match with the opponent as winner.
func (s *duelServer) Concede(ctx context.Context, req *pb.ConcedeRequest) (*pb.GameActionResponse, error) {
	action := game.Action{
		MatchID:   req.GetGameId(),
		PlayerID:  req.GetPlayerId(),
		Type:      game.ActionConcede,
		Timestamp: time.Now(),
	}

	return s.processAction(req.GetGameId(), req.GetPlayerId(), action), nil
}

// GetGameState returns the redacted match view; an unknown game yields an
// empty response.
func (s *duelServer) GetGameState(ctx context.Context, req *pb.GetGameStateRequest) (*pb.GameStateResponse, error) {
	match, ok := s.matchMgr.GetMatch(req.GetGameId())
	if !ok {
		return &pb.GameStateResponse{}, nil
	}

	return &pb.GameStateResponse{
		GameState: matchViewToProto(match.View(req.GetPlayerId())),
	}, nil
}

// SubscribeToGameUpdates streams match snapshots at the configured interval
// until the client cancels. The match lock is held only while each snapshot
// is read.
func (s *duelServer) SubscribeToGameUpdates(req *pb.GameUpdatesRequest, stream pb.DuelService_SubscribeToGameUpdatesServer) error {
	ticker := time.NewTicker(s.config.Match.StreamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stream.Context().Done():
			// Client cancellation is an expected termination, not an error.
			s.logger.Info("game updates stream closed",
				zap.String("game_id", req.GetGameId()),
				zap.Int32("player_id", req.GetPlayerId()),
			)
			return nil

		case <-ticker.C:
			match, ok := s.matchMgr.GetMatch(req.GetGameId())
			if !ok {
				continue
			}

			view := match.View(req.GetPlayerId())
			update := &pb.GameUpdateMessage{
				UpdateType:       updateTypeFor(view),
				Message:          "game state updated",
				GameState:        matchViewToProto(view),
				AffectedPlayerId: req.GetPlayerId(),
			}

			if err := stream.Send(update); err != nil {
				s.logger.Debug("failed to push game update",
					zap.String("game_id", req.GetGameId()),
					zap.Error(err),
				)
				return err
			}
		}
	}
}

func updateTypeFor(view game.MatchView) pb.GameUpdateType {
	if view.Status == game.StatusEnded.String() {
		return pb.GameUpdateType_GAME_UPDATE_TYPE_GAME_ENDED
	}
	return pb.GameUpdateType_GAME_UPDATE_TYPE_STATE_CHANGED
}

// processAction runs one engine action and attaches the updated view.
func (s *duelServer) processAction(gameID string, playerID int32, action game.Action) *pb.GameActionResponse {
	match, _ := s.matchMgr.GetMatch(gameID)
	result := s.processor.Process(match, action)

	response := &pb.GameActionResponse{
		Success: result.Success,
		Message: result.Message,
	}
	if match != nil {
		response.UpdatedState = matchViewToProto(match.View(playerID))
	}
	return response
}

// resolveDeck looks up every requested card ID; unknown IDs are skipped.
func (s *duelServer) resolveDeck(ctx context.Context, cardIDs []int32) ([]*card.Template, error) {
	deck := make([]*card.Template, 0, len(cardIDs))
	for _, id := range cardIDs {
		t, err := s.catalog.Lookup(ctx, id)
		if err != nil {
			if errors.Is(err, card.ErrNotFound) {
				s.logger.Debug("deck request references unknown card", zap.Int32("card_id", id))
				continue
			}
			return nil, err
		}
		deck = append(deck, t)
	}
	return deck, nil
}
