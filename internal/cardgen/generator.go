package cardgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/alovak/testcards/internal/expiry"
)

// DefaultYearsAhead bounds the expiry offset when none is configured.
const DefaultYearsAhead = 2

// MaxYearsAhead is the largest accepted expiry horizon.
const MaxYearsAhead = 100

var ErrYearsAheadOutOfRange = fmt.Errorf("years ahead must be 1..%d", MaxYearsAhead)

// Rand is the source of uniform choices. *rand.Rand satisfies it; a *rand.Rand is
// not safe for concurrent use, so callers sharing a Generator across goroutines
// should leave the default in place.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Card is one synthesized test card. Field order is the serialization order.
type Card struct {
	Type            string `json:"card_type"`
	Number          string `json:"card_number"`
	NumberFormatted string `json:"card_number_formatted"`
	CVV             string `json:"cvv"`
	ExpiryMonth     string `json:"expiry_month"`
	ExpiryYear      string `json:"expiry_year"`
	ExpiryYearFull  string `json:"expiry_year_full"`
	ExpiryDate      string `json:"expiry_date"`
	CardholderName  string `json:"cardholder_name"`

	TypeKey string `json:"-"`
	Digits  []int  `json:"-"`
	// Expires is the computed expiry instant; only its month and year are printed.
	Expires time.Time `json:"-"`
}

// Generator synthesizes cards. It keeps no state between calls beyond its
// configuration.
type Generator struct {
	rnd        Rand
	now        func() time.Time
	yearsAhead int
}

type Option func(*Generator)

func WithRand(r Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithYearsAhead sets the expiry horizon used by GenerateBatch and by Generate when
// it is passed a non-positive value. Values above MaxYearsAhead are clamped.
func WithYearsAhead(years int) Option {
	return func(g *Generator) {
		if years > 0 {
			g.yearsAhead = min(years, MaxYearsAhead)
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rnd:        globalRand{},
		now:        time.Now,
		yearsAhead: DefaultYearsAhead,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Horizon returns a copy of g whose configured expiry horizon is years. A
// non-positive value keeps the current horizon.
func (g *Generator) Horizon(years int) *Generator {
	cp := *g
	if years > 0 {
		cp.yearsAhead = min(years, MaxYearsAhead)
	}
	return &cp
}

// Generate builds one card of the type named by key, or of a random type when key is
// empty. The expiry falls 1..yearsAhead*12 approximate months after now.
func (g *Generator) Generate(key string, yearsAhead int) (*Card, error) {
	ct, err := Resolve(key, g.rnd)
	if err != nil {
		return nil, err
	}
	if yearsAhead <= 0 {
		yearsAhead = g.yearsAhead
	}
	if yearsAhead > MaxYearsAhead {
		return nil, fmt.Errorf("%w, got %d", ErrYearsAheadOutOfRange, yearsAhead)
	}

	digits := ct.Prefix(g.rnd.Intn(len(ct.Prefixes)))
	fill := ct.Length - len(digits) - 1
	for i := 0; i < fill; i++ {
		digits = append(digits, g.rnd.Intn(10))
	}
	digits = append(digits, CheckDigit(digits))
	number := JoinDigits(digits)

	cvv := g.randomDigits(ct.CVVLength)
	months := 1 + g.rnd.Intn(yearsAhead*12)
	exp := expiry.AddApproxMonths(g.now(), months)

	return &Card{
		Type:            ct.Name,
		Number:          number,
		NumberFormatted: ct.Format(number),
		CVV:             cvv,
		ExpiryMonth:     expiry.Month(exp),
		ExpiryYear:      expiry.Year2(exp),
		ExpiryYearFull:  expiry.Year4(exp),
		ExpiryDate:      expiry.CardFace(exp),
		CardholderName:  g.cardholderName(),
		TypeKey:         ct.Key,
		Digits:          digits,
		Expires:         exp,
	}, nil
}

// GenerateBatch calls Generate count times. Without a key every card gets its own
// random type. An unknown key fails before any card is produced.
func (g *Generator) GenerateBatch(count int, key string) ([]*Card, error) {
	cards := make([]*Card, 0, max(count, 0))
	for i := 0; i < count; i++ {
		card, err := g.Generate(key, g.yearsAhead)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// GenerateUniqueBatch is GenerateBatch with no repeated card numbers in the result.
// Each slot is retried up to maxRetries times before giving up.
func (g *Generator) GenerateUniqueBatch(count int, key string, maxRetries int) ([]*Card, error) {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	seen := make(map[string]struct{}, max(count, 0))
	cards := make([]*Card, 0, max(count, 0))
	for len(cards) < count {
		var card *Card
		for attempt := 0; ; attempt++ {
			if attempt > maxRetries {
				return nil, fmt.Errorf("failed to generate unique card after %d retries", maxRetries)
			}
			c, err := g.Generate(key, g.yearsAhead)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[c.Number]; !dup {
				card = c
				break
			}
		}
		seen[card.Number] = struct{}{}
		cards = append(cards, card)
	}
	return cards, nil
}

func (g *Generator) randomDigits(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte('0' + byte(g.rnd.Intn(10)))
	}
	return sb.String()
}

func (g *Generator) cardholderName() string {
	first := firstNames[g.rnd.Intn(len(firstNames))]
	last := lastNames[g.rnd.Intn(len(lastNames))]
	return strings.ToUpper(first + " " + last)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
