package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/alovak/testcards/internal/config"
	"github.com/alovak/testcards/internal/expiry"
	"github.com/alovak/testcards/server/models"
	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid request")

// uniqueRetries bounds how often a duplicate card number is regenerated.
const uniqueRetries = 10

type Service struct {
	gen *cardgen.Generator
	cfg *config.Config
	now func() time.Time
}

func NewService(gen *cardgen.Generator, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if gen == nil {
		gen = cardgen.NewGenerator(cardgen.WithYearsAhead(cfg.YearsAhead))
	}
	return &Service{
		gen: gen,
		cfg: cfg,
		now: time.Now,
	}
}

// Types lists the supported card types.
func (s *Service) Types() []models.CardType {
	types := cardgen.Types()
	out := make([]models.CardType, len(types))
	for i, ct := range types {
		out[i] = models.CardType{Key: ct.Key, Name: ct.Name}
	}
	return out
}

// IssueCards generates the cards described by req.
func (s *Service) IssueCards(req models.IssueCards) (*models.Batch, error) {
	if req.Count < 1 || req.Count > s.cfg.MaxBatch {
		return nil, fmt.Errorf("count must be 1..%d (got %d): %w", s.cfg.MaxBatch, req.Count, ErrInvalidRequest)
	}
	if req.Years < 0 || req.Years > cardgen.MaxYearsAhead {
		return nil, fmt.Errorf("years must be 0..%d (got %d): %w", cardgen.MaxYearsAhead, req.Years, ErrInvalidRequest)
	}

	gen := s.gen.Horizon(req.Years)
	var (
		cards []*cardgen.Card
		err   error
	)
	if req.Unique {
		cards, err = gen.GenerateUniqueBatch(req.Count, req.Type, uniqueRetries)
	} else {
		cards, err = gen.GenerateBatch(req.Count, req.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("generating cards: %w", err)
	}

	return &models.Batch{
		ID:    uuid.New().String(),
		Count: len(cards),
		Cards: cards,
	}, nil
}

// Validate checks number against the Luhn checksum. When cardFace (MM/YY or MMYY) is
// not empty the result also says whether that expiry has passed.
func (s *Service) Validate(number, cardFace string) (*models.Validation, error) {
	res := &models.Validation{
		Number: number,
		Valid:  cardgen.ValidateLuhn(number),
	}
	if ct, ok := cardgen.Identify(number); ok {
		res.CardType = ct.Name
	}

	if cardFace != "" {
		yymm, err := expiry.ParseCardFace(cardFace)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidRequest)
		}
		expired, err := expiry.IsExpired(yymm, s.now(), nil)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidRequest)
		}
		res.Expired = &expired
	}
	return res, nil
}
