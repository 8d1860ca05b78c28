package tcggo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCards_Formas(t *testing.T) {
	list, err := decodeCards([]byte(`[{"name":"Pikachu"}]`))
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = decodeCards([]byte(`{"cards":[{"name":"Pikachu"}]}`))
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = decodeCards([]byte(`{"data":[{"name":"Pikachu"},{"name":"Mew"}]}`))
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = decodeCards([]byte(`{"otra":"cosa"}`))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExtractCardmarketPrice_OrdenDePreferencia(t *testing.T) {
	card := map[string]any{
		"prices": map[string]any{
			"cardmarket": map[string]any{
				"trendPrice":  3.5,
				"30d_average": 2.25,
			},
		},
	}
	assert.Equal(t, "2.25", extractCardmarketPrice(card), "30d_average gana sobre trendPrice")
}

func TestExtractCardmarketPrice_SaltaCeros(t *testing.T) {
	card := map[string]any{
		"prices": map[string]any{
			"cardmarket": map[string]any{
				"30d_average":      0.0,
				"trendPrice":       "0",
				"lowest_near_mint": 1.1,
			},
		},
	}
	assert.Equal(t, "1.10", extractCardmarketPrice(card))
}

func TestExtractCardmarketPrice_SinPrecios(t *testing.T) {
	assert.Empty(t, extractCardmarketPrice(map[string]any{}))
	assert.Empty(t, extractCardmarketPrice(map[string]any{"prices": map[string]any{}}))
}

func TestCardImageURL_Alternativas(t *testing.T) {
	assert.Equal(t, "http://img/large.png", cardImageURL(map[string]any{
		"images": map[string]any{"large": "http://img/large.png"},
		"image":  "http://img/plain.png",
	}))
	assert.Equal(t, "http://img/plain.png", cardImageURL(map[string]any{
		"image": "http://img/plain.png",
	}))
	assert.Empty(t, cardImageURL(map[string]any{}))
}

func TestSetLogoURL_EpisodeYSet(t *testing.T) {
	assert.Equal(t, "http://logo.png", setLogoURL(map[string]any{
		"episode": map[string]any{"images": map[string]any{"logo": "http://logo.png"}},
	}))
	assert.Equal(t, "http://logo2.png", setLogoURL(map[string]any{
		"set": map[string]any{"logo": "http://logo2.png"},
	}))
	assert.Empty(t, setLogoURL(map[string]any{}))
}
