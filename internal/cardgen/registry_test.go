package cardgen_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/stretchr/testify/require"
)

func TestResolve_CaseInsensitive(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	upper, err := cardgen.Resolve("VISA", rnd)
	require.NoError(t, err)
	lower, err := cardgen.Resolve("visa", rnd)
	require.NoError(t, err)

	require.Equal(t, lower, upper)
	require.Equal(t, "visa", upper.Key)
	require.Equal(t, "Visa", upper.Name)
}

func TestResolve_Unknown(t *testing.T) {
	_, err := cardgen.Resolve("unknown_type", rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, cardgen.ErrUnknownCardType)

	var unknown *cardgen.UnknownCardTypeError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "unknown_type", unknown.Key)
	require.Equal(t, []string{"visa", "mastercard", "amex", "discover", "jcb", "diners"}, unknown.Valid)
	require.Equal(t,
		"unknown card type: unknown_type. Valid types: visa, mastercard, amex, discover, jcb, diners",
		err.Error())
}

func TestResolve_EmptyPicksEveryType(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	seen := map[string]bool{}
	for i := 0; i < 600; i++ {
		ct, err := cardgen.Resolve("", rnd)
		require.NoError(t, err)
		seen[ct.Key] = true
	}
	require.Len(t, seen, 6)
}

func TestTypes_Table(t *testing.T) {
	want := []struct {
		key, name   string
		prefixes    [][]int
		length, cvv int
	}{
		{"visa", "Visa", [][]int{{4}}, 16, 3},
		{"mastercard", "Mastercard", [][]int{{5, 1}, {5, 2}, {5, 3}, {5, 4}, {5, 5}}, 16, 3},
		{"amex", "American Express", [][]int{{3, 4}, {3, 7}}, 15, 4},
		{"discover", "Discover", [][]int{{6, 0, 1, 1}}, 16, 3},
		{"jcb", "JCB", [][]int{{3, 5, 2, 8}, {3, 5, 2, 9}}, 16, 3},
		{"diners", "Diners Club", [][]int{{3, 6}, {3, 8}}, 14, 3},
	}

	types := cardgen.Types()
	require.Len(t, types, len(want))
	for i, w := range want {
		ct := types[i]
		require.Equal(t, w.key, ct.Key)
		require.Equal(t, w.name, ct.Name)
		require.Equal(t, w.prefixes, ct.Prefixes)
		require.Equal(t, w.length, ct.Length)
		require.Equal(t, w.cvv, ct.CVVLength)

		for _, p := range ct.Prefixes {
			require.Greater(t, ct.Length, len(p)+1, "%s needs room for a filler and check digit", ct.Key)
		}
	}
}

func TestCardType_Format(t *testing.T) {
	amex, err := cardgen.Resolve("amex", nil)
	require.NoError(t, err)
	require.Equal(t, "3782 822463 10005", amex.Format("378282246310005"))

	diners, err := cardgen.Resolve("diners", nil)
	require.NoError(t, err)
	require.Equal(t, "3056 930902 5904", diners.Format("30569309025904"))

	visa, err := cardgen.Resolve("visa", nil)
	require.NoError(t, err)
	require.Equal(t, "4111 1111 1111 1111", visa.Format("4111111111111111"))
	require.Equal(t, "4111 1111 1", visa.Format("411111111"))
}

func TestTypes_ReturnsCopy(t *testing.T) {
	types := cardgen.Types()
	types[0].Name = "changed"
	require.Equal(t, "Visa", cardgen.Types()[0].Name)
}

func TestIdentify(t *testing.T) {
	cases := []struct {
		number string
		key    string
		ok     bool
	}{
		{"4111 1111 1111 1111", "visa", true},
		{"5555-5555-5555-4444", "mastercard", true},
		{"378282246310005", "amex", true},
		{"6011111111111117", "discover", true},
		{"3528000000000007", "jcb", true},
		{"30569309025904", "", false},
		{"36000000000008", "diners", true},
		{"411111111111", "", false},
		{"abc", "", false},
	}
	for _, c := range cases {
		ct, ok := cardgen.Identify(c.number)
		require.Equal(t, c.ok, ok, c.number)
		require.Equal(t, c.key, ct.Key, c.number)
	}
}
