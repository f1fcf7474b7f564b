package output

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/alovak/testcards/internal/expiry"
	"github.com/moov-io/iso8583"
	"github.com/moov-io/iso8583/specs"
)

const (
	authorizationRequestMTI = "0100"
	purchaseProcessingCode  = "000000"
	testAmount              = "000000000100"
	currencyUSD             = "840"
)

var now = time.Now

// AuthorizationRequest builds an ISO 8583 (1987, ASCII) authorization request carrying
// the card's PAN and expiry. stan is the system trace audit number, 1..999999.
func AuthorizationRequest(c *cardgen.Card, stan int) (*iso8583.Message, error) {
	msg := iso8583.NewMessage(specs.Spec87ASCII)
	msg.MTI(authorizationRequestMTI)

	fields := []struct {
		id  int
		val string
	}{
		{2, c.Number},
		{3, purchaseProcessingCode},
		{4, testAmount},
		{7, now().UTC().Format("0102150405")},
		{11, fmt.Sprintf("%06d", stan%1000000)},
		{14, expiry.YYMM(c.Expires)},
		{49, currencyUSD},
	}
	for _, f := range fields {
		if err := msg.Field(f.id, f.val); err != nil {
			return nil, fmt.Errorf("setting field %d: %w", f.id, err)
		}
	}
	return msg, nil
}

// renderISO8583 writes one packed authorization request per card as upper-case hex.
func renderISO8583(w io.Writer, cards []*cardgen.Card) error {
	lines := make([]string, 0, len(cards))
	for i, c := range cards {
		msg, err := AuthorizationRequest(c, i+1)
		if err != nil {
			return err
		}
		packed, err := msg.Pack()
		if err != nil {
			return fmt.Errorf("packing message for card #%d: %w", i+1, err)
		}
		lines = append(lines, strings.ToUpper(hex.EncodeToString(packed)))
	}
	return renderLines(w, lines)
}
