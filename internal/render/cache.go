package render

import (
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/messianicchords/mc/internal/chords"
	"github.com/zeebo/blake3"
)

// ChartCache keeps parsed charts keyed by the hash of their text, so
// re-rendering a sheet at a new transposition does not parse it again.
// It is safe for concurrent use.
type ChartCache struct {
	charts *lru.Cache[string, chords.Chart]
}

func NewChartCache(size int) (*ChartCache, error) {
	c, err := lru.New[string, chords.Chart](size)
	if err != nil {
		return nil, err
	}
	return &ChartCache{charts: c}, nil
}

// HashText returns the cache key of a chart text.
func HashText(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Chart returns the parsed form of text. A nil cache parses every time.
func (c *ChartCache) Chart(text string) chords.Chart {
	if c == nil {
		return chords.ParseChart(text)
	}
	key := HashText(text)
	if chart, ok := c.charts.Get(key); ok {
		return chart
	}
	chart := chords.ParseChart(text)
	c.charts.Add(key, chart)
	return chart
}

func (c *ChartCache) Len() int {
	if c == nil {
		return 0
	}
	return c.charts.Len()
}
