package server

import (
	"github.com/theduelx/duel-server-go/internal/card"
	"github.com/theduelx/duel-server-go/internal/config"
	"github.com/theduelx/duel-server-go/internal/game"
	pb "github.com/theduelx/duel-server-go/pkg/proto/duel/v1"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// duelServer implements the DuelService gRPC service. It is a thin boundary
// adapter: the registry locates the match, the processor mutates it, and the
// handlers translate engine results to wire messages.
type duelServer struct {
	pb.UnimplementedDuelServiceServer

	config    *config.Config
	logger    *zap.Logger
	matchMgr  *game.Manager
	processor *game.Processor
	catalog   card.Catalog
	decks     card.DeckSource
}

// NewDuelServer creates a new duel server instance.
func NewDuelServer(
	cfg *config.Config,
	matchMgr *game.Manager,
	processor *game.Processor,
	catalog card.Catalog,
	decks card.DeckSource,
	logger *zap.Logger,
) pb.DuelServiceServer {
	return &duelServer{
		config:    cfg,
		logger:    logger,
		matchMgr:  matchMgr,
		processor: processor,
		catalog:   catalog,
		decks:     decks,
	}
}

// ==================== View Conversion Helpers ====================

func matchViewToProto(view game.MatchView) *pb.GameState {
	state := &pb.GameState{
		GameId:          view.MatchID,
		Player1Id:       view.Player1ID,
		Player2Id:       view.Player2ID,
		CurrentPlayerId: view.CurrentPlayerID,
		TurnNumber:      int32(view.TurnNumber),
		Status:          statusToProto(view.Status),
		WinnerId:        view.WinnerID,
		Player1Board:    boardViewToProto(view.Player1Board),
		Player2Board:    boardViewToProto(view.Player2Board),
		CreatedAt:       timestamppb.New(view.CreatedAt),
	}
	if view.EndedAt != nil {
		state.EndedAt = timestamppb.New(*view.EndedAt)
	}
	return state
}

func boardViewToProto(view game.BoardView) *pb.PlayerBoard {
	return &pb.PlayerBoard{
		PlayerId:      view.PlayerID,
		Health:        int32(view.Health),
		Mana:          int32(view.Mana),
		MaxMana:       int32(view.MaxMana),
		DeckSize:      int32(view.DeckSize),
		GraveyardSize: int32(view.GraveyardSize),
		HandCount:     int32(view.HandCount),
		Hand:          cardViewsToProto(view.Hand),
		Field:         cardViewsToProto(view.Field),
	}
}

func cardViewsToProto(views []game.CardView) []*pb.Card {
	if len(views) == 0 {
		return nil
	}

	cards := make([]*pb.Card, 0, len(views))
	for _, v := range views {
		cards = append(cards, &pb.Card{
			Id:          v.ID,
			Name:        v.Name,
			Description: v.Text,
			ManaCost:    int32(v.ManaCost),
			Attack:      int32(v.Attack),
			Health:      int32(v.Health),
			Type:        cardTypeToProto(v.Type),
			Rarity:      cardRarityToProto(v.Rarity),
		})
	}
	return cards
}

func statusToProto(status string) pb.GameStatus {
	switch status {
	case game.StatusInProgress.String():
		return pb.GameStatus_GAME_STATUS_IN_PROGRESS
	case game.StatusEnded.String():
		return pb.GameStatus_GAME_STATUS_ENDED
	case game.StatusDisconnected.String():
		return pb.GameStatus_GAME_STATUS_DISCONNECTED
	default:
		return pb.GameStatus_GAME_STATUS_WAITING_FOR_PLAYERS
	}
}

func cardTypeToProto(cardType string) pb.CardType {
	switch cardType {
	case card.TypeSpell.String():
		return pb.CardType_CARD_TYPE_SPELL
	case card.TypeArtifact.String():
		return pb.CardType_CARD_TYPE_ARTIFACT
	default:
		return pb.CardType_CARD_TYPE_CREATURE
	}
}

func cardRarityToProto(rarity string) pb.CardRarity {
	switch rarity {
	case card.RarityUncommon.String():
		return pb.CardRarity_CARD_RARITY_UNCOMMON
	case card.RarityRare.String():
		return pb.CardRarity_CARD_RARITY_RARE
	case card.RarityEpic.String():
		return pb.CardRarity_CARD_RARITY_EPIC
	case card.RarityLegendary.String():
		return pb.CardRarity_CARD_RARITY_LEGENDARY
	default:
		return pb.CardRarity_CARD_RARITY_COMMON
	}
}
